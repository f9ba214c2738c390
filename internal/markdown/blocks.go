// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// INLINE RUNS
// =============================================================================

// Style is the inline style of a Run.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
	InlineCode
)

// String returns the lowercase name of the style.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case InlineCode:
		return "code"
	default:
		return "unknown"
	}
}

// Run is a contiguous span of text carrying one style.
type Run struct {
	Text  string
	Style Style

	// Highlight is the background token for InlineCode runs, passed through
	// unchanged from the parser call. Nil for every other style.
	Highlight lipgloss.TerminalColor
}

// StyledText is an ordered sequence of runs.
type StyledText []Run

// String concatenates the text of every run. Emphasis delimiters are not
// part of the result.
func (t StyledText) String() string {
	switch len(t) {
	case 0:
		return ""
	case 1:
		return t[0].Text
	}
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the text has no visible content.
func (t StyledText) IsEmpty() bool {
	for _, r := range t {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// BLOCKS
// =============================================================================

// BlockKind identifies a Block variant.
type BlockKind int

const (
	KindHeader BlockKind = iota
	KindParagraph
	KindListItem
	KindBlockquote
	KindCodeBlock
	KindTable
	KindDivider
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list_item"
	case KindBlockquote:
		return "blockquote"
	case KindCodeBlock:
		return "code_block"
	case KindTable:
		return "table"
	case KindDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// Block is a top-level structural unit of a parsed response.
// The set of implementations is closed: Header, Paragraph, ListItem,
// Blockquote, CodeBlock, Table and Divider.
type Block interface {
	Kind() BlockKind
	block()
}

// Header is an ATX heading. Level is the number of leading '#' characters
// and is not clamped; renderers decide how to display levels above 6.
type Header struct {
	Level   int
	Content StyledText
}

// Paragraph is one or more consecutive text lines joined with spaces.
type Paragraph struct {
	Content StyledText
}

// ListItem is a single list entry. Bullet is "•" for unordered items and the
// ordinal label (for example "3.") for ordered ones.
type ListItem struct {
	Content StyledText
	Bullet  string
}

// Blockquote is a run of consecutive '>' lines joined with newlines.
type Blockquote struct {
	Content StyledText
}

// CodeBlock is fenced content kept verbatim. Language holds the info string
// that followed the opening fence, if any.
type CodeBlock struct {
	Content  string
	Language string
}

// Table is a pipe table. Rows may have a different cell count than Headers.
type Table struct {
	Headers []StyledText
	Rows    [][]StyledText
}

// Divider is a horizontal rule.
type Divider struct{}

func (Header) Kind() BlockKind     { return KindHeader }
func (Paragraph) Kind() BlockKind  { return KindParagraph }
func (ListItem) Kind() BlockKind   { return KindListItem }
func (Blockquote) Kind() BlockKind { return KindBlockquote }
func (CodeBlock) Kind() BlockKind  { return KindCodeBlock }
func (Table) Kind() BlockKind      { return KindTable }
func (Divider) Kind() BlockKind    { return KindDivider }

func (Header) block()     {}
func (Paragraph) block()  {}
func (ListItem) block()   {}
func (Blockquote) block() {}
func (CodeBlock) block()  {}
func (Table) block()      {}
func (Divider) block()    {}

// UnorderedBullet is the glyph used for "* " and "- " list items.
const UnorderedBullet = "•"
