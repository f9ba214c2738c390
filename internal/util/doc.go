// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the legalchat packages.
//
// # Key Functions
//
// Display width (terminal columns, via go-runewidth):
//   - DisplayWidth: column width of a string, CJK and Devanagari aware
//   - TruncateDisplay: cut a string to a column budget with an ellipsis
//   - PadDisplay: right-pad to a column width
//
// Text:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - CollapseWhitespace: fold runs of whitespace (newlines included) to one space
//
// Files:
//   - AtomicWriteFile: crash-safe write with fsync and rename
//
// # Usage
//
//	title := util.TruncateRunes(util.CollapseWhitespace(question), 60)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
