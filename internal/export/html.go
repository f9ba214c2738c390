// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/legalchat/internal/markdown"
	"github.com/jeranaias/legalchat/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports conversations to a standalone HTML page with
// embedded CSS. Assistant replies are converted block by block from the
// parsed Markdown; every piece of text is escaped.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a conversation to HTML format.
func (e *HTMLExporter) Export(conv *model.Conversation) ([]byte, error) {
	if err := checkConversation(conv); err != nil {
		return nil, err
	}

	lang := conv.Language
	if lang == "" {
		lang = "en"
	}
	dir := "ltr"
	if lang == "ur" {
		dir = "rtl"
	}
	theme := e.options.Theme
	if theme != "light" {
		theme = "dark"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, "<html lang=\"%s\" dir=\"%s\">\n", html.EscapeString(lang), dir)
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", html.EscapeString(conv.GetTitle()))
	sb.WriteString("    <meta name=\"generator\" content=\"legalchat\">\n")
	fmt.Fprintf(&sb, "    <meta name=\"date\" content=\"%s\">\n", conv.CreatedAt.Format(time.RFC3339))
	sb.WriteString(htmlCSS)
	sb.WriteString("</head>\n")
	fmt.Fprintf(&sb, "<body class=\"%s-theme\">\n", theme)
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(conv))
	}

	sb.WriteString("        <main class=\"conversation\">\n")
	for _, msg := range conv.Messages {
		sb.WriteString(e.renderMessage(msg))
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	fmt.Fprintf(&sb, "            <p>Exported from <strong>legalchat</strong> on %s. General legal information, not legal advice.</p>\n",
		time.Now().Format("January 2, 2006 at 3:04 PM"))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// renderHeader renders the header section with metadata.
func (e *HTMLExporter) renderHeader(conv *model.Conversation) string {
	var sb strings.Builder
	sb.WriteString("        <header class=\"header\">\n")
	fmt.Fprintf(&sb, "            <h1>%s</h1>\n", html.EscapeString(conv.GetTitle()))
	sb.WriteString("            <div class=\"metadata\">\n")
	fmt.Fprintf(&sb, "                <span class=\"meta-item\"><strong>Created:</strong> %s</span>\n", formatTimestamp(conv.CreatedAt))
	fmt.Fprintf(&sb, "                <span class=\"meta-item\"><strong>Messages:</strong> %d</span>\n", len(conv.Messages))
	sb.WriteString("            </div>\n")
	sb.WriteString("        </header>\n")
	return sb.String()
}

// renderMessage renders a single message.
func (e *HTMLExporter) renderMessage(msg *model.Message) string {
	var sb strings.Builder

	class := string(msg.Role)
	if msg.IsError {
		class += " error"
	}
	fmt.Fprintf(&sb, "            <div class=\"message %s-message\">\n", class)

	sb.WriteString("                <div class=\"message-header\">\n")
	fmt.Fprintf(&sb, "                    <span class=\"role-label\">%s</span>\n", html.EscapeString(msg.Role.DisplayName()))
	if e.options.IncludeTimestamps && !msg.Timestamp.IsZero() {
		fmt.Fprintf(&sb, "                    <span class=\"timestamp\">%s</span>\n", formatShortTimestamp(msg.Timestamp))
	}
	sb.WriteString("                </div>\n")

	sb.WriteString("                <div class=\"message-content\">\n")
	if msg.Role == model.RoleAssistant && !msg.IsError {
		sb.WriteString(BlocksToHTML(markdown.Parse(msg.Content, nil)))
	} else {
		sb.WriteString(plainToHTML(msg.Content))
	}
	sb.WriteString("                </div>\n")
	sb.WriteString("            </div>\n")

	return sb.String()
}

// BlocksToHTML converts parsed Markdown blocks into HTML elements.
// Consecutive list items of the same kind share one <ul> or <ol>.
func BlocksToHTML(blocks []markdown.Block) string {
	var sb strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			fmt.Fprintf(&sb, "</%s>\n", openList)
			openList = ""
		}
	}

	for _, b := range blocks {
		item, isItem := b.(markdown.ListItem)
		if !isItem {
			closeList()
		}

		switch b := b.(type) {
		case markdown.Header:
			level := min(max(b.Level, 1), 6)
			fmt.Fprintf(&sb, "<h%d>%s</h%d>\n", level, styledToHTML(b.Content), level)

		case markdown.Paragraph:
			fmt.Fprintf(&sb, "<p>%s</p>\n", styledToHTML(b.Content))

		case markdown.ListItem:
			kind, value := listKind(item.Bullet)
			if kind != openList {
				closeList()
				fmt.Fprintf(&sb, "<%s>\n", kind)
				openList = kind
			}
			if value != "" {
				fmt.Fprintf(&sb, "<li value=\"%s\">%s</li>\n", value, styledToHTML(b.Content))
			} else {
				fmt.Fprintf(&sb, "<li>%s</li>\n", styledToHTML(b.Content))
			}

		case markdown.Blockquote:
			fmt.Fprintf(&sb, "<blockquote>%s</blockquote>\n", styledToHTML(b.Content))

		case markdown.CodeBlock:
			sb.WriteString("<div class=\"code-block\">")
			if b.Language != "" {
				fmt.Fprintf(&sb, "<div class=\"code-lang\">%s</div>", html.EscapeString(b.Language))
				fmt.Fprintf(&sb, "<pre><code class=\"language-%s\">", html.EscapeString(b.Language))
			} else {
				sb.WriteString("<pre><code>")
			}
			sb.WriteString(html.EscapeString(b.Content))
			sb.WriteString("</code></pre></div>\n")

		case markdown.Table:
			sb.WriteString(tableToHTML(b))

		case markdown.Divider:
			sb.WriteString("<hr>\n")
		}
	}
	closeList()

	return sb.String()
}

// listKind maps a bullet to its list element and, for ordered items, the
// item number.
func listKind(bullet string) (kind, value string) {
	digits := strings.TrimSuffix(bullet, ".")
	if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return "ul", ""
	}
	if n, err := strconv.Atoi(digits); err == nil {
		return "ol", strconv.Itoa(n)
	}
	// Out of int range: still ordered, numbered by position.
	return "ol", ""
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

func tableToHTML(t markdown.Table) string {
	var sb strings.Builder
	sb.WriteString("<table>\n<thead><tr>")
	for _, h := range t.Headers {
		fmt.Fprintf(&sb, "<th>%s</th>", styledToHTML(h))
	}
	sb.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&sb, "<td>%s</td>", styledToHTML(cell))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String()
}

// styledToHTML escapes each run and wraps it in its emphasis element.
// Newlines inside a run become <br>.
func styledToHTML(text markdown.StyledText) string {
	var sb strings.Builder
	for _, run := range text {
		escaped := strings.ReplaceAll(html.EscapeString(run.Text), "\n", "<br>")
		switch run.Style {
		case markdown.Bold:
			fmt.Fprintf(&sb, "<strong>%s</strong>", escaped)
		case markdown.Italic:
			fmt.Fprintf(&sb, "<em>%s</em>", escaped)
		case markdown.InlineCode:
			fmt.Fprintf(&sb, "<code class=\"inline-code\">%s</code>", escaped)
		default:
			sb.WriteString(escaped)
		}
	}
	return sb.String()
}

// plainToHTML renders user text: escaped, one paragraph per blank-line
// separated chunk, single newlines kept as <br>.
func plainToHTML(s string) string {
	var sb strings.Builder
	for _, para := range strings.Split(strings.TrimSpace(s), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(&sb, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
	}
	return sb.String()
}

// =============================================================================
// EMBEDDED CSS
// =============================================================================

const htmlCSS = `    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", "Noto Sans", Roboto, Arial, sans-serif;
            --font-mono: "SF Mono", "Monaco", "Fira Code", "Source Code Pro", monospace;
        }

        .dark-theme {
            --bg-primary: #1a1b26;
            --bg-secondary: #24283b;
            --bg-tertiary: #414868;
            --text-primary: #c0caf5;
            --text-muted: #565f89;
            --border-color: #414868;
            --code-bg: #1a1b26;
            --accent-user: #7aa2f7;
            --accent-assistant: #9ece6a;
            --accent-system: #e0af68;
            --accent-error: #f7768e;
        }

        .light-theme {
            --bg-primary: #ffffff;
            --bg-secondary: #f7f8fa;
            --bg-tertiary: #e1e4e8;
            --text-primary: #24292e;
            --text-muted: #6a737d;
            --border-color: #e1e4e8;
            --code-bg: #f6f8fa;
            --accent-user: #0366d6;
            --accent-assistant: #22863a;
            --accent-system: #b08800;
            --accent-error: #d73a49;
        }

        body {
            font-family: var(--font-sans);
            line-height: 1.6;
            color: var(--text-primary);
            background: var(--bg-primary);
            padding: 20px;
        }

        .container { max-width: 900px; margin: 0 auto; background: var(--bg-secondary); border-radius: 12px; overflow: hidden; }
        .header { padding: 32px; background: var(--bg-tertiary); }
        .header h1 { font-size: 26px; margin-bottom: 12px; }
        .metadata { display: flex; gap: 16px; font-size: 14px; color: var(--text-muted); }
        .conversation { padding: 24px 32px; }

        .message { margin-bottom: 24px; padding: 20px; border-radius: 8px; border-left: 4px solid transparent; }
        .user-message { border-left-color: var(--accent-user); }
        .assistant-message { border-left-color: var(--accent-assistant); }
        .system-message { border-left-color: var(--accent-system); }
        .message.error { border-left-color: var(--accent-error); }
        .message-header { display: flex; justify-content: space-between; margin-bottom: 12px; font-size: 14px; }
        .role-label { font-weight: 600; }
        .timestamp { color: var(--text-muted); font-family: var(--font-mono); }

        .message-content p, .message-content ul, .message-content ol,
        .message-content blockquote, .message-content table { margin-bottom: 12px; }
        .message-content ul, .message-content ol { padding-left: 24px; }
        .message-content blockquote { padding-left: 12px; border-left: 3px solid var(--border-color); font-style: italic; }
        .message-content table { border-collapse: collapse; }
        .message-content th, .message-content td { border: 1px solid var(--border-color); padding: 4px 10px; }
        .message-content hr { border: none; border-top: 1px solid var(--border-color); margin: 16px 0; }

        .code-block { margin: 16px 0; border-radius: 8px; overflow: hidden; background: var(--code-bg); border: 1px solid var(--border-color); }
        .code-lang { padding: 6px 16px; background: var(--bg-tertiary); font-size: 12px; text-transform: uppercase; }
        .code-block pre { padding: 16px; overflow-x: auto; }
        .code-block code, .inline-code { font-family: var(--font-mono); font-size: 14px; }
        .inline-code { padding: 2px 6px; background: var(--code-bg); border: 1px solid var(--border-color); border-radius: 4px; }

        .footer { padding: 20px 32px; text-align: center; font-size: 14px; color: var(--text-muted); border-top: 1px solid var(--border-color); }

        @media print {
            body { padding: 0; }
            .message { page-break-inside: avoid; }
        }
    </style>
`
