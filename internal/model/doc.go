// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// # Key Types
//
//   - Conversation: a chat session with its messages, title and language
//   - Message: one message with role, content and timestamp
//   - Role: user, assistant or system
//
// IDs are random UUIDs. The first question asked in a conversation becomes
// its title.
//
// # Usage
//
//	conv := model.NewConversation("New Chat", "en")
//	conv.AddUserMessage("Can my landlord keep the deposit?")
//	conv.AddAssistantMessage(answer)
//	text := conv.ShareText()
package model
