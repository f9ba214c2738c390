// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/legalchat/internal/markdown"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// DefaultRenderWidth is used when a renderer has no width set.
const DefaultRenderWidth = 80

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// MarkdownRenderer turns assistant Markdown into styled terminal text.
// Cache is optional; when set, repeated renders of the same text skip
// parsing.
type MarkdownRenderer struct {
	Theme *styles.Theme
	Width int
	Cache *markdown.Cache
}

// NewMarkdownRenderer creates a renderer with a default-size parse cache.
func NewMarkdownRenderer(theme *styles.Theme, width int) *MarkdownRenderer {
	return &MarkdownRenderer{
		Theme: theme,
		Width: width,
		Cache: markdown.NewDefaultCache(),
	}
}

// Blocks parses text with the theme's inline code highlight.
func (r *MarkdownRenderer) Blocks(text string) []markdown.Block {
	highlight := r.theme().CodeHighlight
	if r.Cache != nil {
		return r.Cache.Parse(text, highlight)
	}
	return markdown.Parse(text, highlight)
}

// Render renders text block by block. Consecutive list items sit on
// adjacent lines; every other block is separated by a blank line.
func (r *MarkdownRenderer) Render(text string) string {
	blocks := r.Blocks(text)

	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
			_, prevItem := blocks[i-1].(markdown.ListItem)
			_, curItem := b.(markdown.ListItem)
			if !(prevItem && curItem) {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(r.RenderBlock(b))
	}
	return sb.String()
}

// RenderBlock renders a single block at the renderer's width.
func (r *MarkdownRenderer) RenderBlock(b markdown.Block) string {
	theme := r.theme()
	width := r.width()

	switch b := b.(type) {
	case markdown.Header:
		style := theme.HeaderStyle(b.Level)
		return wrap(r.RenderStyled(b.Content, style), width)

	case markdown.Paragraph:
		return wrap(r.RenderStyled(b.Content, theme.Body), width)

	case markdown.ListItem:
		bullet := theme.Bullet.Render(b.Bullet) + " "
		body := wrap(r.RenderStyled(b.Content, theme.Body), width-lipgloss.Width(bullet))
		return lipgloss.JoinHorizontal(lipgloss.Top, bullet, body)

	case markdown.Blockquote:
		// Width counts padding but not the border.
		return theme.Quote.Width(max(width-1, 1)).Render(r.RenderStyled(b.Content, lipgloss.NewStyle()))

	case markdown.CodeBlock:
		cb := NewCodeBlock(b.Language, b.Content, theme)
		cb.SetMaxWidth(width)
		return cb.Render()

	case markdown.Table:
		return r.renderTable(b)

	case markdown.Divider:
		return theme.Divider.Render(styles.Rule(width))
	}
	return ""
}

// RenderStyled renders runs on top of base. Inline code takes its
// background from the run's highlight token.
func (r *MarkdownRenderer) RenderStyled(text markdown.StyledText, base lipgloss.Style) string {
	theme := r.theme()

	var sb strings.Builder
	for _, run := range text {
		var style lipgloss.Style
		switch run.Style {
		case markdown.Bold:
			style = theme.Bold.Inherit(base)
		case markdown.Italic:
			style = theme.Italic.Inherit(base)
		case markdown.InlineCode:
			style = theme.InlineCode
			if run.Highlight != nil {
				style = style.Background(run.Highlight)
			}
		default:
			style = base
		}
		sb.WriteString(renderLines(style, run.Text))
	}
	return sb.String()
}

// renderTable lays a table out with lipgloss/table. Rows shorter than the
// header get empty cells; longer rows widen the table.
func (r *MarkdownRenderer) renderTable(t markdown.Table) string {
	theme := r.theme()

	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = r.RenderStyled(h, lipgloss.NewStyle())
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = r.RenderStyled(cell, lipgloss.NewStyle())
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})

	out := tbl.String()
	if lipgloss.Width(out) > r.width() {
		out = tbl.Width(r.width()).String()
	}
	return out
}

func (r *MarkdownRenderer) theme() *styles.Theme {
	if r.Theme == nil {
		r.Theme = styles.NewTheme()
	}
	return r.Theme
}

func (r *MarkdownRenderer) width() int {
	if r.Width <= 0 {
		return DefaultRenderWidth
	}
	return r.Width
}

// =============================================================================
// HELPERS
// =============================================================================

// wrap word-wraps already styled text to width cells.
func wrap(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// renderLines styles each line separately so a newline inside a run does
// not carry escape codes across lines.
func renderLines(style lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return style.Render(text)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
