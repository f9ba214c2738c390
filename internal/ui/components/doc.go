// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the legalchat TUI.
//
// # Key Types
//
//   - MarkdownRenderer: parses assistant replies and styles each block
//   - CodeBlock: bordered, chroma-highlighted fenced code
//   - MessageBubble: a single chat message
//   - MessageList: a conversation sharing one renderer and parse cache
//
// # Usage
//
//	theme := styles.NewTheme()
//	r := components.NewMarkdownRenderer(theme, 80)
//	fmt.Println(r.Render("## Bail\n\n* Apply under **Section 437**"))
package components
