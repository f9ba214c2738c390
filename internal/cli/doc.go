// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the legalchat command line: argument parsing,
// the one-shot and line-based chat commands, Markdown rendering, history
// and configuration management.
//
// # Commands
//
//   - ask: one question, rendered reply (builtin renderer or glamour)
//   - chat: liner-based REPL with persistent input history
//   - render: Markdown from a file or stdin, or its block structure as JSON
//   - history: list, show, search, delete, clear and export conversations
//   - config: show, get, set, path and keys
//   - lawyer: web search link for lawyers in a city
//
// # Exit Codes
//
// Errors map to exit codes through GetExitCode: usage errors exit 2,
// config errors 3, unreachable service 5, missing conversations 7,
// timeouts 8 and interrupted requests 130.
//
// # Usage
//
//	cmd, args := cli.Parse()
//	os.Exit(cli.Run(ctx, cmd, args))
package cli
