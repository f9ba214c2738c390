// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the legalchat TUI.

Colors are defined as lipgloss AdaptiveColor pairs in colors.go. A Theme
resolves every pair to its dark or light side once, so a user who picks
"light" gets light colors even on a terminal that reports a dark background.

	theme := styles.NewThemeForMode(styles.ModeLight)
	title := theme.HeaderStyle(1).Render("Bail")
	blocks := markdown.Parse(text, theme.CodeHighlight)

Header levels map onto three tiers: 1, 2, and 3 or deeper.
*/
package styles
