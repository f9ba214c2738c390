// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/legalchat/internal/markdown"
	"github.com/jeranaias/legalchat/internal/ui/components"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// RENDER COMMAND
// =============================================================================

// Render prints Markdown from a file or stdin as formatted terminal text,
// or with --blocks as the parsed block structure.
func (a *App) Render() error {
	text, err := a.readInput(a.Args.File)
	if err != nil {
		return err
	}

	if a.Args.Blocks {
		blocks := BlocksJSON(markdown.Parse(text, nil))
		if a.Args.JSON {
			return NewJSONResponse("render", blocks).Write(a.Stdout)
		}
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(blocks)
	}

	ConfigureColor(a.Stdout)
	out, err := a.renderMarkdown(text, a.Args.Engine)
	if err != nil {
		return err
	}

	if a.Args.JSON {
		return NewJSONResponse("render", map[string]string{"output": out}).Write(a.Stdout)
	}
	fmt.Fprintln(a.Stdout, out)
	return nil
}

// renderMarkdown renders text with the selected engine.
func (a *App) renderMarkdown(text, engine string) (string, error) {
	theme := a.Theme()
	width := a.wrapWidth()

	switch engine {
	case "", EngineBuiltin:
		return components.NewMarkdownRenderer(theme, width).Render(text), nil
	case EngineGlamour:
		return renderGlamour(text, theme, width, ColorsEnabled(a.Stdout))
	default:
		return "", NewValidationErrorWithExample("engine", engine,
			"unknown renderer", "--engine "+EngineGlamour)
	}
}

// renderGlamour renders text with glamour's standard style for the theme.
func renderGlamour(text string, theme *styles.Theme, width int, color bool) (string, error) {
	style := "light"
	switch {
	case !color:
		style = "notty"
	case theme.IsDark:
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create glamour renderer: %w", err)
	}

	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// =============================================================================
// BLOCK STRUCTURE DUMP
// =============================================================================

// RunJSON is one styled run in the --blocks dump.
type RunJSON struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// BlockJSON is one block in the --blocks dump. Only the fields of the
// block's kind are set.
type BlockJSON struct {
	Kind     string        `json:"kind"`
	Level    int           `json:"level,omitempty"`
	Bullet   string        `json:"bullet,omitempty"`
	Language string        `json:"language,omitempty"`
	Code     string        `json:"code,omitempty"`
	Content  []RunJSON     `json:"content,omitempty"`
	Headers  [][]RunJSON   `json:"headers,omitempty"`
	Rows     [][][]RunJSON `json:"rows,omitempty"`
}

// BlocksJSON converts parsed blocks to their JSON form.
func BlocksJSON(blocks []markdown.Block) []BlockJSON {
	out := make([]BlockJSON, 0, len(blocks))
	for _, b := range blocks {
		bj := BlockJSON{Kind: b.Kind().String()}
		switch v := b.(type) {
		case markdown.Header:
			bj.Level = v.Level
			bj.Content = runsJSON(v.Content)
		case markdown.Paragraph:
			bj.Content = runsJSON(v.Content)
		case markdown.ListItem:
			bj.Bullet = v.Bullet
			bj.Content = runsJSON(v.Content)
		case markdown.Blockquote:
			bj.Content = runsJSON(v.Content)
		case markdown.CodeBlock:
			bj.Language = v.Language
			bj.Code = v.Content
		case markdown.Table:
			for _, h := range v.Headers {
				bj.Headers = append(bj.Headers, runsJSON(h))
			}
			for _, row := range v.Rows {
				cells := make([][]RunJSON, 0, len(row))
				for _, cell := range row {
					cells = append(cells, runsJSON(cell))
				}
				bj.Rows = append(bj.Rows, cells)
			}
		}
		out = append(out, bj)
	}
	return out
}

func runsJSON(text markdown.StyledText) []RunJSON {
	runs := make([]RunJSON, 0, len(text))
	for _, r := range text {
		runs = append(runs, RunJSON{Text: r.Text, Style: r.Style.String()})
	}
	return runs
}
