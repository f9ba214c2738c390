// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown turns assistant responses into render-ready blocks.
//
// Parsing happens in two stages. The block segmenter walks the text line by
// line and groups lines into typed blocks (headers, paragraphs, list items,
// block quotes, fenced code, tables and dividers). Every textual field of a
// block is then run through the inline parser, which splits it into styled
// runs (plain, bold, italic and inline code).
//
// The parser is deliberately small. It is not a CommonMark implementation:
// there is no nesting, no links or images, no HTML and no strikethrough.
// In exchange it is total over every input string, never panics, and runs in
// a single forward pass, which makes it cheap enough to re-run on every frame
// while a response is still arriving.
//
// # Key Types
//
//   - Block: closed set of block variants (Header, Paragraph, ListItem,
//     Blockquote, CodeBlock, Table, Divider)
//   - StyledText: ordered runs of inline-styled text
//   - Cache: bounded memoization of Parse keyed by text and highlight color
//
// # Usage
//
//	blocks := markdown.Parse(response, styles.CodeHighlight)
//	for _, b := range blocks {
//	    switch b := b.(type) {
//	    case markdown.Header:
//	        fmt.Println(b.Level, b.Content.String())
//	    }
//	}
package markdown
