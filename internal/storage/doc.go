// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides persistence for legalchat.
//
// # Key Types
//
//   - ConversationStore: one JSON file per conversation, atomic writes,
//     newest-first listing, search and a history cap
//   - Prefs: SQLite key-value store for theme, language and the last open
//     conversation
//
// # Usage
//
//	store, err := storage.NewConversationStore(storage.ConversationsDir(dataDir), 100)
//	err = store.Save(conv)
//	metas, err := store.List()
//	conv, err := store.Resolve("2")
//
//	prefs, err := storage.OpenPrefs(storage.PrefsPath(dataDir))
//	defer prefs.Close()
//	theme := prefs.Theme("auto")
//
// # Storage Location
//
// Conversations are stored in ~/.legalchat/conversations/ as JSON files and
// preferences in ~/.legalchat/prefs.db, unless storage.dir says otherwise.
package storage
