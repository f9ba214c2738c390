// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// PERFORMANCE: Pre-compiled once at startup.
//
// Alternation order matters: at any position bold wins over italic, and the
// engine's leftmost-first semantics make the earliest-starting span win
// across kinds. Spans never nest and never cross a newline.
var inlinePattern = regexp.MustCompile("\\*\\*(.*?)\\*\\*|\\*(.*?)\\*|`(.*?)`")

// submatch group index -> style
var inlineGroups = [...]Style{Bold, Italic, InlineCode}

// ParseInline splits text into styled runs.
//
// Literal stretches between spans become Plain runs. Bold, italic and code
// spans contribute their inner text with the delimiters removed. Unmatched
// delimiters are kept as literal text. Inline code runs carry codeHighlight
// unchanged. Empty input yields zero runs.
func ParseInline(text string, codeHighlight lipgloss.TerminalColor) StyledText {
	if text == "" {
		return nil
	}

	matches := inlinePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return StyledText{{Text: text, Style: Plain}}
	}

	runs := make(StyledText, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			runs = append(runs, Run{Text: text[last:start], Style: Plain})
		}
		last = end

		for g, style := range inlineGroups {
			lo, hi := m[2+2*g], m[3+2*g]
			if lo < 0 {
				continue
			}
			// "**" or "``" with nothing inside: delimiters are consumed,
			// nothing is emitted.
			if lo == hi {
				break
			}
			run := Run{Text: text[lo:hi], Style: style}
			if style == InlineCode {
				run.Highlight = codeHighlight
			}
			runs = append(runs, run)
			break
		}
	}
	if last < len(text) {
		runs = append(runs, Run{Text: text[last:], Style: Plain})
	}
	return runs
}
