// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fence = "```"

var (
	orderedItemPattern = regexp.MustCompile(`^(\d+\.)\s(.*)$`)
	dividerPattern     = regexp.MustCompile(`^\s*---+\s*$`)
)

// Parse segments markdown into blocks and inline-parses every textual field.
// codeHighlight is attached to inline code runs and is otherwise unused.
//
// Parse is total: malformed constructs degrade to lower-priority block kinds
// and, at worst, to paragraphs.
func Parse(markdown string, codeHighlight lipgloss.TerminalColor) []Block {
	s := segmenter{
		lines:     splitLines(markdown),
		highlight: codeHighlight,
	}
	return s.run()
}

// splitLines splits on "\n", "\r\n" and "\r".
func splitLines(text string) []string {
	if strings.IndexByte(text, '\r') >= 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return strings.Split(text, "\n")
}

// =============================================================================
// SEGMENTER
// =============================================================================

// segmenter walks an immutable line list. Every branch of run returns the
// index of the first line it did not consume.
type segmenter struct {
	lines     []string
	highlight lipgloss.TerminalColor
	blocks    []Block
}

func (s *segmenter) run() []Block {
	i := 0
	for i < len(s.lines) {
		i = s.step(i)
	}
	return s.blocks
}

// step classifies lines[i] in priority order and consumes it.
func (s *segmenter) step(i int) int {
	line := s.lines[i]

	switch {
	case strings.HasPrefix(line, fence):
		return s.codeBlock(i)

	case isTableStart(s.lines, i):
		table, next := parseTable(s.lines, i, s.highlight)
		s.emit(table)
		return next

	case strings.HasPrefix(line, "#"):
		level := len(line) - len(strings.TrimLeft(line, "#"))
		s.emit(Header{
			Level:   level,
			Content: s.inline(strings.TrimSpace(line[level:])),
		})
		return i + 1

	case strings.HasPrefix(line, ">"):
		return s.blockquote(i)

	case strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- "):
		s.emit(ListItem{
			Content: s.inline(strings.TrimSpace(line[2:])),
			Bullet:  UnorderedBullet,
		})
		return i + 1

	case orderedItemPattern.MatchString(line):
		m := orderedItemPattern.FindStringSubmatch(line)
		s.emit(ListItem{
			Content: s.inline(strings.TrimSpace(m[2])),
			Bullet:  m[1],
		})
		return i + 1

	case dividerPattern.MatchString(line):
		s.emit(Divider{})
		return i + 1

	case !isBlank(line):
		return s.paragraph(i)
	}

	// Blank line outside any multi-line construct.
	return i + 1
}

// codeBlock consumes a fenced block. A missing closing fence extends the
// block to the end of the document.
func (s *segmenter) codeBlock(i int) int {
	end := i + 1
	for end < len(s.lines) && s.lines[end] != fence {
		end++
	}
	s.emit(CodeBlock{
		Content:  strings.Join(s.lines[i+1:end], "\n"),
		Language: strings.TrimSpace(strings.TrimPrefix(s.lines[i], fence)),
	})
	if end < len(s.lines) {
		end++ // closing fence
	}
	return end
}

// blockquote merges the maximal run of '>' lines into one block.
func (s *segmenter) blockquote(i int) int {
	var parts []string
	end := i
	for end < len(s.lines) && strings.HasPrefix(s.lines[end], ">") {
		parts = append(parts, strings.TrimSpace(strings.TrimPrefix(s.lines[end], ">")))
		end++
	}
	s.emit(Blockquote{Content: s.inline(strings.Join(parts, "\n"))})
	return end
}

// paragraph accumulates lines until a blank line or the start of another
// block, joining them with single spaces.
func (s *segmenter) paragraph(i int) int {
	end := i + 1
	for end < len(s.lines) && !isBlank(s.lines[end]) && !isBlockStart(s.lines[end]) {
		end++
	}
	s.emit(Paragraph{Content: s.inline(strings.Join(s.lines[i:end], " "))})
	return end
}

func (s *segmenter) emit(b Block) {
	s.blocks = append(s.blocks, b)
}

func (s *segmenter) inline(text string) StyledText {
	return ParseInline(text, s.highlight)
}

// =============================================================================
// LINE CLASSIFICATION
// =============================================================================

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isBlockStart reports whether line would open a block other than a
// paragraph. Used to end paragraph accumulation.
func isBlockStart(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, ">") ||
		strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, fence) ||
		orderedItemPattern.MatchString(line) ||
		dividerPattern.MatchString(line) ||
		strings.HasPrefix(strings.TrimSpace(line), "|")
}
