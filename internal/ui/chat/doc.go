// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat view for the TUI.
//
// The view is a Bubble Tea model built from a text input, a scrolling
// viewport of message bubbles and a spinner shown while a question is in
// flight. Questions are sent through an Asker on a background command;
// Esc cancels the request through its context and Ctrl+C quits.
//
// # Slash Commands
//
//	/new, /history, /open N, /delete N, /theme [mode], /lang [code],
//	/share, /export md|html|json, /lawyer CITY [AREA], /help, /quit
//
// Command output is shown as transient notices and is never saved with
// the conversation.
//
// # Usage
//
//	m := chat.New(chat.Options{Client: client, Store: store, Prefs: prefs, Config: cfg})
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package chat
