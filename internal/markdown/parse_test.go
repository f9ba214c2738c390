// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHighlight = lipgloss.Color("#313244")

func plain(s string) StyledText {
	return StyledText{{Text: s, Style: Plain}}
}

func cellTexts(cells []StyledText) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

// =============================================================================
// CODE FENCES
// =============================================================================

func TestParse_FenceConsumption(t *testing.T) {
	blocks := Parse("```\nfoo\nbar\n```", testHighlight)

	require.Len(t, blocks, 1)
	assert.Equal(t, CodeBlock{Content: "foo\nbar"}, blocks[0])
}

func TestParse_FenceLanguageAndTrailingText(t *testing.T) {
	blocks := Parse("```go\nx := 1\n```\nafter", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, CodeBlock{Content: "x := 1", Language: "go"}, blocks[0])
	assert.Equal(t, Paragraph{Content: plain("after")}, blocks[1])
}

func TestParse_UnterminatedFenceRunsToEnd(t *testing.T) {
	blocks := Parse("intro\n\n```\na\n# not a header\n", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, Paragraph{Content: plain("intro")}, blocks[0])
	assert.Equal(t, CodeBlock{Content: "a\n# not a header\n"}, blocks[1])
}

func TestParse_FenceContentIsVerbatim(t *testing.T) {
	blocks := Parse("```\n**x** and `y`\n```", testHighlight)

	require.Len(t, blocks, 1)
	assert.Equal(t, "**x** and `y`", blocks[0].(CodeBlock).Content)
}

func TestParse_EmptyFence(t *testing.T) {
	blocks := Parse("```\n```", testHighlight)

	require.Len(t, blocks, 1)
	assert.Equal(t, CodeBlock{}, blocks[0])
}

// =============================================================================
// HEADERS, LISTS, DIVIDERS
// =============================================================================

func TestParse_HeaderLevels(t *testing.T) {
	tests := []struct {
		input string
		level int
		text  string
	}{
		{"# A", 1, "A"},
		{"## Two", 2, "Two"},
		{"### Title", 3, "Title"},
		{"######   Six  ", 6, "Six"},
		{"####### Seven", 7, "Seven"},
		{"#", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			blocks := Parse(tt.input, testHighlight)
			require.Len(t, blocks, 1)

			h, ok := blocks[0].(Header)
			require.True(t, ok, "expected Header, got %T", blocks[0])
			assert.Equal(t, tt.level, h.Level)
			assert.Equal(t, tt.text, h.Content.String())
		})
	}
}

func TestParse_HeaderInline(t *testing.T) {
	blocks := Parse("## The **Indian** Penal Code", testHighlight)

	require.Len(t, blocks, 1)
	assert.Equal(t, Header{
		Level: 2,
		Content: StyledText{
			{Text: "The ", Style: Plain},
			{Text: "Indian", Style: Bold},
			{Text: " Penal Code", Style: Plain},
		},
	}, blocks[0])
}

func TestParse_UnorderedList(t *testing.T) {
	blocks := Parse("* one\n- two\n-three", testHighlight)

	require.Len(t, blocks, 3)
	assert.Equal(t, ListItem{Content: plain("one"), Bullet: "•"}, blocks[0])
	assert.Equal(t, ListItem{Content: plain("two"), Bullet: "•"}, blocks[1])
	// "-three" has no space after the marker.
	assert.Equal(t, Paragraph{Content: plain("-three")}, blocks[2])
}

func TestParse_OrderedList(t *testing.T) {
	blocks := Parse("3. Do this\n10.  Then *that*", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, ListItem{Content: plain("Do this"), Bullet: "3."}, blocks[0])
	assert.Equal(t, ListItem{
		Content: StyledText{
			{Text: "Then ", Style: Plain},
			{Text: "that", Style: Italic},
		},
		Bullet: "10.",
	}, blocks[1])
}

func TestParse_Divider(t *testing.T) {
	tests := []struct {
		input   string
		divider bool
	}{
		{"---", true},
		{"  -----  ", true},
		{"\t---", true},
		{"--", false},
		{"- - -", false},
		{"---x", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			blocks := Parse(tt.input, testHighlight)
			require.Len(t, blocks, 1)
			_, isDivider := blocks[0].(Divider)
			assert.Equal(t, tt.divider, isDivider, "got %#v", blocks[0])
		})
	}
}

// =============================================================================
// BLOCK QUOTES AND PARAGRAPHS
// =============================================================================

func TestParse_BlockquoteMergesContiguousLines(t *testing.T) {
	blocks := Parse("> first\n>second\n> *third*\nafter", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, Blockquote{Content: StyledText{
		{Text: "first\nsecond\n", Style: Plain},
		{Text: "third", Style: Italic},
	}}, blocks[0])
	assert.Equal(t, Paragraph{Content: plain("after")}, blocks[1])
}

func TestParse_SeparatedBlockquotes(t *testing.T) {
	blocks := Parse("> a\n\n> b", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, Blockquote{Content: plain("a")}, blocks[0])
	assert.Equal(t, Blockquote{Content: plain("b")}, blocks[1])
}

func TestParse_BlankLineTerminatesParagraph(t *testing.T) {
	blocks := Parse("line1\nline2\n\nline3", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, Paragraph{Content: plain("line1 line2")}, blocks[0])
	assert.Equal(t, Paragraph{Content: plain("line3")}, blocks[1])
}

func TestParse_ParagraphStopsAtBlockStart(t *testing.T) {
	tests := []struct {
		name string
		next string
		kind BlockKind
	}{
		{"header", "# H", KindHeader},
		{"quote", "> q", KindBlockquote},
		{"star list", "* item", KindListItem},
		{"dash list", "- item", KindListItem},
		{"ordered", "1. item", KindListItem},
		{"divider", "---", KindDivider},
		{"fence", "```", KindCodeBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse("some text\n"+tt.next, testHighlight)
			require.Len(t, blocks, 2)
			assert.Equal(t, Paragraph{Content: plain("some text")}, blocks[0])
			assert.Equal(t, tt.kind, blocks[1].Kind())
		})
	}
}

func TestParse_ParagraphStopsAtTableRow(t *testing.T) {
	blocks := Parse("intro\n| A | B |\n|---|---|\n| 1 | 2 |", testHighlight)

	require.Len(t, blocks, 2)
	assert.Equal(t, Paragraph{Content: plain("intro")}, blocks[0])
	assert.Equal(t, KindTable, blocks[1].Kind())
}

func TestParse_BlankAndEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n   \n\t\n"} {
		assert.Empty(t, Parse(input, testHighlight), "input %q", input)
	}
}

func TestParse_LineEndings(t *testing.T) {
	for _, input := range []string{"a\r\nb\r\n\r\nc", "a\rb\r\rc", "a\nb\n\nc"} {
		blocks := Parse(input, testHighlight)
		require.Len(t, blocks, 2, "input %q", input)
		assert.Equal(t, "a b", blocks[0].(Paragraph).Content.String())
		assert.Equal(t, "c", blocks[1].(Paragraph).Content.String())
	}
}

// =============================================================================
// TABLES
// =============================================================================

func TestParse_TableExtraction(t *testing.T) {
	blocks := Parse("| A | B |\n|---|---|\n| 1 | 2 |", testHighlight)

	require.Len(t, blocks, 1)
	table, ok := blocks[0].(Table)
	require.True(t, ok, "expected Table, got %T", blocks[0])
	assert.Equal(t, []string{"A", "B"}, cellTexts(table.Headers))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "2"}, cellTexts(table.Rows[0]))
}

func TestParse_TableDoesNotAbsorbTrailingLines(t *testing.T) {
	input := "| Act | Year |\n| :-- | --: |\n| IPC | 1860 |\n| CrPC | 1973 |\nSee above."
	blocks := Parse(input, testHighlight)

	require.Len(t, blocks, 2)
	table := blocks[0].(Table)
	assert.Equal(t, []string{"Act", "Year"}, cellTexts(table.Headers))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"CrPC", "1973"}, cellTexts(table.Rows[1]))
	assert.Equal(t, Paragraph{Content: plain("See above.")}, blocks[1])
}

func TestParse_TableRaggedRows(t *testing.T) {
	blocks := Parse("| A | B |\n|---|---|\n| 1 |\n| 1 | 2 | 3 |", testHighlight)

	require.Len(t, blocks, 1)
	table := blocks[0].(Table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1"}, cellTexts(table.Rows[0]))
	assert.Equal(t, []string{"1", "2", "3"}, cellTexts(table.Rows[1]))
}

func TestParse_TableHeaderOnly(t *testing.T) {
	blocks := Parse("| A | B |\n|---|---|", testHighlight)

	require.Len(t, blocks, 1)
	table := blocks[0].(Table)
	assert.Equal(t, []string{"A", "B"}, cellTexts(table.Headers))
	assert.Empty(t, table.Rows)
}

func TestParse_TableWithoutOuterPipes(t *testing.T) {
	// Outer fields are dropped even when there is no outer pipe.
	blocks := Parse("a | b | c\n---|---|---\nx | y | z", testHighlight)

	require.Len(t, blocks, 2)
	table := blocks[0].(Table)
	assert.Equal(t, []string{"b"}, cellTexts(table.Headers))
	assert.Empty(t, table.Rows)
	// "x | y | z" neither starts nor ends with a pipe.
	assert.Equal(t, KindParagraph, blocks[1].Kind())
}

func TestParse_MalformedTableFallsThrough(t *testing.T) {
	blocks := Parse("| A | B |\nnot a separator", testHighlight)

	require.Len(t, blocks, 1)
	assert.Equal(t, Paragraph{Content: plain("| A | B | not a separator")}, blocks[0])
}

func TestParse_TableCellsAreInlineParsed(t *testing.T) {
	blocks := Parse("| **A** | `b` |\n|---|---|", testHighlight)

	require.Len(t, blocks, 1)
	table := blocks[0].(Table)
	assert.Equal(t, []StyledText{
		{{Text: "A", Style: Bold}},
		{{Text: "b", Style: InlineCode, Highlight: testHighlight}},
	}, table.Headers)
}

// =============================================================================
// WHOLE DOCUMENTS
// =============================================================================

func TestParse_DocumentOrder(t *testing.T) {
	input := strings.Join([]string{
		"# Tenant Rights",
		"",
		"Under the **Rent Control Act** you may:",
		"1. Request repairs",
		"2. Withhold rent *only* with notice",
		"",
		"> Consult a lawyer.",
		"",
		"---",
		"```",
		"Section 106",
		"```",
		"| Step | Days |",
		"|------|------|",
		"| Notice | 15 |",
	}, "\n")

	blocks := Parse(input, testHighlight)

	kinds := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind()
	}
	assert.Equal(t, []BlockKind{
		KindHeader,
		KindParagraph,
		KindListItem,
		KindListItem,
		KindBlockquote,
		KindDivider,
		KindCodeBlock,
		KindTable,
	}, kinds)
}

func TestParse_ArbitraryInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		"```", "|", "||", "|\n|", "| a |\n|", "#", ">", "* ", "1.", "1. ",
		"**", "*", "`", "``", "***", "\x00\xff", "日本語 **太字**",
		"| A | B |\n|---|---|\n```\n| x |",
		strings.Repeat("> ", 50), strings.Repeat("|", 100) + "\n" + strings.Repeat("|", 100),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Parse(input, testHighlight) }, "input %q", input)
	}
}

func TestParse_ConcurrentCalls(t *testing.T) {
	input := "# H\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\ntext **bold**"
	want := Parse(input, testHighlight)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Parse(input, testHighlight))
		}()
	}
	wg.Wait()
}
