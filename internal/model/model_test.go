// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_AssignsUUID(t *testing.T) {
	a := NewUserMessage("one")
	b := NewUserMessage("two")

	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Error("message IDs should be unique")
	}
	if a.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestMessage_IsFromUser(t *testing.T) {
	if !NewUserMessage("q").IsFromUser() {
		t.Error("user message should report IsFromUser")
	}
	if NewAssistantMessage("a").IsFromUser() {
		t.Error("assistant message should not report IsFromUser")
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "AI"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.role.DisplayName(); got != tt.want {
			t.Errorf("%s.DisplayName() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("line one\nline two")
	if got := msg.Preview(100); got != "line one line two" {
		t.Errorf("Preview = %q", got)
	}
	if got := msg.Preview(8); got != "line ..." {
		t.Errorf("Preview(8) = %q, want %q", got, "line ...")
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation(t *testing.T) {
	conv := NewConversation("नई चैट", "hi")

	if _, err := uuid.Parse(conv.ID); err != nil {
		t.Errorf("ID %q is not a UUID", conv.ID)
	}
	if conv.Title != "नई चैट" || conv.Language != "hi" {
		t.Errorf("got title %q lang %q", conv.Title, conv.Language)
	}
	if !conv.IsEmpty() {
		t.Error("new conversation should be empty")
	}
}

func TestConversation_FirstQuestionBecomesTitle(t *testing.T) {
	conv := NewConversation("New Chat", "en")
	conv.AddUserMessage("What is\nSection 498A?")
	conv.AddAssistantMessage("It deals with cruelty.")
	conv.AddUserMessage("Is it bailable?")

	if conv.Title != "What is Section 498A?" {
		t.Errorf("Title = %q, want first question", conv.Title)
	}
	if conv.MessageCount() != 3 {
		t.Errorf("MessageCount = %d, want 3", conv.MessageCount())
	}
}

func TestTitleFrom(t *testing.T) {
	long := strings.Repeat("a", 100)
	if got := TitleFrom(long); len([]rune(got)) != MaxTitleRunes || !strings.HasSuffix(got, "...") {
		t.Errorf("TitleFrom(long) = %q", got)
	}

	// "e" + combining acute composes to a single rune under NFC.
	if got := TitleFrom("cafe\u0301"); got != "caf\u00e9" {
		t.Errorf("TitleFrom did not normalize: %q", got)
	}

	if got := TitleFrom("  spaced\t\tout  "); got != "spaced out" {
		t.Errorf("TitleFrom = %q", got)
	}
}

func TestConversation_GetTitleDefault(t *testing.T) {
	conv := NewConversation("", "en")
	if conv.GetTitle() != DefaultTitle {
		t.Errorf("GetTitle() = %q, want %q", conv.GetTitle(), DefaultTitle)
	}
}

func TestConversation_ShareText(t *testing.T) {
	conv := NewConversation("New Chat", "en")
	conv.AddUserMessage("Can I appeal?")
	conv.AddSystemMessage("Theme changed")
	conv.AddAssistantMessage("Yes, within **30 days**.")

	want := "You: Can I appeal?\n\nAI: Yes, within **30 days**."
	if got := conv.ShareText(); got != want {
		t.Errorf("ShareText() = %q, want %q", got, want)
	}

	if got := NewConversation("x", "en").ShareText(); got != "" {
		t.Errorf("empty ShareText() = %q", got)
	}
}

func TestConversation_LastMessages(t *testing.T) {
	conv := NewConversation("t", "en")
	if conv.GetLastMessage() != nil || conv.GetLastUserMessage() != nil || conv.GetLastAssistantMessage() != nil {
		t.Fatal("empty conversation should have no last messages")
	}

	u := conv.AddUserMessage("q")
	a := conv.AddAssistantMessage("a")
	e := conv.AddErrorMessage("failed")

	if conv.GetLastMessage() != e || !e.IsError {
		t.Error("GetLastMessage should be the error message")
	}
	if conv.GetLastUserMessage() != u {
		t.Error("GetLastUserMessage mismatch")
	}
	if conv.GetLastAssistantMessage() != e {
		t.Error("GetLastAssistantMessage should include error replies")
	}
	if !conv.RemoveMessage(e.ID) || conv.GetLastAssistantMessage() != a {
		t.Error("RemoveMessage did not remove the error message")
	}
	if conv.RemoveMessage("missing") {
		t.Error("RemoveMessage(missing) should be false")
	}
}

func TestConversation_Clone(t *testing.T) {
	conv := NewConversation("t", "en")
	conv.AddUserMessage("original")

	clone := conv.Clone()
	clone.Messages[0].Content = "changed"
	clone.AddAssistantMessage("extra")

	if conv.Messages[0].Content != "original" {
		t.Error("Clone shares message pointers")
	}
	if conv.MessageCount() != 1 {
		t.Error("Clone shares the message slice")
	}
}

func TestConversation_PruneKeepsSystemMessages(t *testing.T) {
	conv := NewConversation("t", "en")
	conv.AddSystemMessage("notice")
	for i := 0; i < MaxMessages+10; i++ {
		conv.AddUserMessage("q")
	}

	if conv.MessageCount() != MaxMessages+1 {
		t.Errorf("MessageCount = %d, want %d", conv.MessageCount(), MaxMessages+1)
	}
	if conv.Messages[0].Role != RoleSystem {
		t.Error("system message should be kept first")
	}
}

func TestConversation_GetMeta(t *testing.T) {
	conv := NewConversation("New Chat", "ta")
	conv.AddUserMessage("Property dispute")

	meta := conv.GetMeta()
	if meta.ID != conv.ID || meta.Title != "Property dispute" || meta.Language != "ta" {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if meta.MessageCount != 1 || meta.Preview != "Property dispute" {
		t.Errorf("unexpected meta counts: %+v", meta)
	}
}
