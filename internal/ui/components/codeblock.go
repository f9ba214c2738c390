// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders a fenced code block in a bordered box.
type CodeBlock struct {
	Language    string
	Code        string
	MaxWidth    int
	LineNumbers bool
	theme       *styles.Theme
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(language, code string, theme *styles.Theme) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
		theme:    theme,
	}
}

// SetMaxWidth sets the maximum width for the code block.
func (c *CodeBlock) SetMaxWidth(width int) {
	c.MaxWidth = width
}

// Render renders the code block with styling.
func (c CodeBlock) Render() string {
	theme := c.theme
	if theme == nil {
		theme = styles.NewTheme()
	}

	code := strings.TrimRight(c.Code, "\n")
	highlighted := HighlightCode(code, c.Language, theme.SyntaxStyle, theme.ColorProfile)

	if c.LineNumbers {
		lines := strings.Split(highlighted, "\n")
		numStyle := theme.Muted.Width(4).Align(lipgloss.Right).MarginRight(1)
		for i, line := range lines {
			lines[i] = numStyle.Render(strconv.Itoa(i+1)) + line
		}
		highlighted = strings.Join(lines, "\n")
	}

	if c.Language != "" {
		highlighted = theme.CodeLang.Render(c.Language) + "\n" + highlighted
	}

	maxWidth := c.MaxWidth
	if maxWidth < 20 {
		maxWidth = 20
	}
	box := theme.CodeBlock
	frame := box.GetHorizontalFrameSize()
	if lipgloss.Width(highlighted)+frame > maxWidth {
		// Width covers padding but not the border; long lines wrap inside it.
		box = box.Width(maxWidth - box.GetHorizontalBorderSize())
	}
	return box.Render(highlighted)
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// HighlightCode applies chroma syntax highlighting for the given color
// profile. Unknown languages are guessed from the code; plain ASCII
// terminals get the code back untouched.
func HighlightCode(code, language, styleName string, profile termenv.Profile) string {
	formatterName := formatterFor(profile)
	if formatterName == "" || code == "" {
		return code
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get(formatterName)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// formatterFor maps a terminal color profile to a chroma formatter name.
func formatterFor(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}
