// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes conversations to files for keeping or sharing.
//
// # Supported Formats
//
//   - md: Markdown with YAML frontmatter
//   - html: standalone page, assistant replies converted from Markdown
//   - json: the stored conversation structure
//   - txt: the plain "You: / AI:" share transcript
//
// # Usage
//
//	path, err := export.ExportConversation(conv, "html", export.DefaultOptions())
package export
