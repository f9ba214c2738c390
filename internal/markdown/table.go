// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tableSeparatorPattern = regexp.MustCompile(`^[|\s:-]+$`)

// isTableStart reports whether lines[i] is a table header followed by a
// separator row. Both lines must contain more than one pipe.
func isTableStart(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	header := strings.TrimSpace(lines[i])
	separator := strings.TrimSpace(lines[i+1])
	return strings.Count(header, "|") > 1 &&
		strings.Count(separator, "|") > 1 &&
		tableSeparatorPattern.MatchString(separator)
}

// isTableRow reports whether a line continues a table.
func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") || strings.HasSuffix(trimmed, "|")
}

// splitTableRow splits a row on '|', trims every field and drops the first
// and last fields, which hold whatever sits outside the outer pipes.
//
//	"| a | b |" -> ["", "a", "b", ""] -> ["a", "b"]
func splitTableRow(line string) []string {
	fields := strings.Split(line, "|")
	if len(fields) <= 2 {
		return []string{}
	}
	cells := fields[1 : len(fields)-1]
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// parseTable consumes the table starting at lines[start], which must satisfy
// isTableStart. The header and separator rows are always consumed; data rows
// continue while isTableRow holds. Returns the table and the index of the
// first line after it.
func parseTable(lines []string, start int, codeHighlight lipgloss.TerminalColor) (Table, int) {
	end := start + 2
	for end < len(lines) && isTableRow(lines[end]) {
		end++
	}

	table := Table{Headers: parseCells(splitTableRow(lines[start]), codeHighlight)}
	for _, line := range lines[start+2 : end] {
		// Ragged rows are kept as they are.
		table.Rows = append(table.Rows, parseCells(splitTableRow(line), codeHighlight))
	}
	return table, end
}

func parseCells(cells []string, codeHighlight lipgloss.TerminalColor) []StyledText {
	out := make([]StyledText, len(cells))
	for i, c := range cells {
		out[i] = ParseInline(c, codeHighlight)
	}
	return out
}
