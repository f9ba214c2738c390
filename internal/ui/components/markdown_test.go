// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/legalchat/internal/markdown"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

func TestMain(m *testing.M) {
	// Plain output keeps assertions independent of the terminal running the tests.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newRenderer(width int) *MarkdownRenderer {
	theme := styles.NewThemeForMode(styles.ModeDark)
	theme.ColorProfile = termenv.Ascii
	return NewMarkdownRenderer(theme, width)
}

// =============================================================================
// BLOCK RENDERING
// =============================================================================

func TestMarkdownRenderer_Header(t *testing.T) {
	out := newRenderer(60).Render("## Anticipatory Bail")

	assert.Contains(t, out, "Anticipatory Bail")
	assert.NotContains(t, out, "#")
}

func TestMarkdownRenderer_InlineDelimitersRemoved(t *testing.T) {
	out := newRenderer(80).Render("File under **Section 437** with *care* and `Form 2`.")

	assert.Equal(t, "File under Section 437 with care and Form 2.", out)
}

func TestMarkdownRenderer_ListItemsAreAdjacent(t *testing.T) {
	out := newRenderer(60).Render("* Aadhaar card\n* Rent agreement\n\nBring originals.")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "• Aadhaar card"))
	assert.True(t, strings.HasPrefix(lines[1], "• Rent agreement"))
	assert.Equal(t, "", strings.TrimSpace(lines[2]))
	assert.Equal(t, "Bring originals.", lines[3])
}

func TestMarkdownRenderer_OrderedBullet(t *testing.T) {
	out := newRenderer(60).Render("12. Visit the registrar")

	assert.True(t, strings.HasPrefix(out, "12. Visit the registrar"))
}

func TestMarkdownRenderer_ListItemHangingIndent(t *testing.T) {
	out := newRenderer(20).Render("- one two three four five six seven")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "• "))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "continuation %q should be indented", line)
	}
}

func TestMarkdownRenderer_ParagraphWraps(t *testing.T) {
	text := "The tenant must receive written notice before the landlord can begin eviction proceedings in court."
	out := newRenderer(30).Render(text)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30, "line %q too wide", line)
	}
}

func TestMarkdownRenderer_Blockquote(t *testing.T) {
	out := newRenderer(60).Render("> No person shall be deprived\n> of life or personal liberty")

	assert.Contains(t, out, "No person shall be deprived")
	assert.Contains(t, out, "of life or personal liberty")
	assert.Contains(t, out, "┃")
	assert.NotContains(t, out, ">")
}

func TestMarkdownRenderer_CodeBlock(t *testing.T) {
	out := newRenderer(60).Render("```go\nfmt.Println(\"hi\")\n```")

	assert.Contains(t, out, "go")
	assert.Contains(t, out, `fmt.Println("hi")`)
	assert.Contains(t, out, "╭")
	assert.NotContains(t, out, "```")
}

func TestMarkdownRenderer_Table(t *testing.T) {
	md := "| Offence | Section |\n|---|---|\n| Cheating | 420 |\n| Theft |"
	out := newRenderer(60).Render(md)

	for _, want := range []string{"Offence", "Section", "Cheating", "420", "Theft", "│"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "---|")
}

func TestMarkdownRenderer_Divider(t *testing.T) {
	out := newRenderer(20).Render("above\n\n---\n\nbelow")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, styles.Rule(20), lines[2])
}

func TestMarkdownRenderer_EmptyInput(t *testing.T) {
	assert.Equal(t, "", newRenderer(40).Render(""))
	assert.Equal(t, "", newRenderer(40).Render("\n\n  \n"))
}

func TestMarkdownRenderer_UsesCache(t *testing.T) {
	r := newRenderer(40)
	r.Render("**hello**")
	r.Render("**hello**")

	assert.Equal(t, 1, r.Cache.Len())
}

func TestMarkdownRenderer_ZeroValue(t *testing.T) {
	var r MarkdownRenderer
	r.Theme = styles.NewThemeForMode(styles.ModeLight)

	out := r.Render("plain words")
	assert.Equal(t, "plain words", out)
	assert.Nil(t, r.Cache)
}

func TestMarkdownRenderer_BlocksUseThemeHighlight(t *testing.T) {
	r := newRenderer(40)
	blocks := r.Blocks("use `code`")

	require.Len(t, blocks, 1)
	para := blocks[0].(markdown.Paragraph)
	require.Len(t, para.Content, 2)
	assert.Equal(t, r.Theme.CodeHighlight, para.Content[1].Highlight)
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

func TestHighlightCode(t *testing.T) {
	code := "package main\n\nfunc main() {}"

	assert.Equal(t, code, HighlightCode(code, "go", "monokai", termenv.Ascii))
	assert.Equal(t, "", HighlightCode("", "go", "monokai", termenv.TrueColor))

	colored := HighlightCode(code, "go", "monokai", termenv.TrueColor)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "main")

	// Unknown style and language still produce output.
	assert.Contains(t, HighlightCode("x = 1", "no-such-lang", "no-such-style", termenv.ANSI256), "x")
}

func TestFormatterFor(t *testing.T) {
	assert.Equal(t, "terminal16m", formatterFor(termenv.TrueColor))
	assert.Equal(t, "terminal256", formatterFor(termenv.ANSI256))
	assert.Equal(t, "terminal16", formatterFor(termenv.ANSI))
	assert.Equal(t, "", formatterFor(termenv.Ascii))
}

func TestCodeBlockWrapsLongLinesInsideBorder(t *testing.T) {
	code := "curl -X POST https://example.org/api/v1/cases/filing?court=high&state=MH " +
		strings.Repeat("x", 70)
	cb := NewCodeBlock("sh", code, newRenderer(40).Theme)
	cb.SetMaxWidth(40)

	out := cb.Render()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4, "long line should wrap onto several rows")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, "line %q", line)
		assert.Regexp(t, `[│╮╯]$`, line, "right border kept on %q", line)
	}
	assert.Equal(t, strings.Count(code, "x"), strings.Count(out, "x"), "no code is dropped")
}

func TestCodeBlockShortCodeStaysCompact(t *testing.T) {
	cb := NewCodeBlock("", "s. 138", newRenderer(40).Theme)
	cb.SetMaxWidth(40)

	lines := strings.Split(cb.Render(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, len("s. 138")+4, lipgloss.Width(lines[1]))
}

func TestCodeBlockLineNumbers(t *testing.T) {
	cb := NewCodeBlock("", "a\nb", newRenderer(40).Theme)
	cb.LineNumbers = true

	out := cb.Render()
	assert.Contains(t, out, "1 a")
	assert.Contains(t, out, "2 b")
}
