// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

func TestMessageBubble_User(t *testing.T) {
	msg := model.NewUserMessage("What is the limitation period for a civil suit?")
	bubble := NewMessageBubble(msg, styles.NewThemeForMode(styles.ModeDark), nil)
	bubble.SetWidth(60)
	bubble.ShowTimestamp = false

	out := bubble.View()
	assert.Contains(t, out, "You")
	assert.Contains(t, out, "limitation")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestMessageBubble_AssistantRendersMarkdown(t *testing.T) {
	msg := model.NewAssistantMessage("See **Section 498A** and:\n\n* file an FIR")
	msg.Duration = 1500 * time.Millisecond
	bubble := NewMessageBubble(msg, styles.NewThemeForMode(styles.ModeDark), nil)

	out := bubble.View()
	assert.Contains(t, out, "AI")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "Section 498A")
	assert.Contains(t, out, "• file an FIR")
	assert.NotContains(t, out, "**")
}

func TestMessageBubble_Error(t *testing.T) {
	msg := model.NewAssistantMessage("Sorry, an error occurred: timeout")
	msg.IsError = true

	out := NewMessageBubble(msg, styles.NewThemeForMode(styles.ModeLight), nil).View()
	assert.Contains(t, out, "an error occurred: timeout")
}

func TestMessageBubble_NilMessage(t *testing.T) {
	bubble := NewMessageBubble(nil, styles.NewThemeForMode(styles.ModeDark), nil)
	assert.NotPanics(t, func() { bubble.View() })
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "9:05 AM", FormatTimestamp(time.Date(2025, 6, 10, 9, 5, 0, 0, time.UTC), now))
	assert.Equal(t, "Jun 9, 11:30 PM", FormatTimestamp(time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC), now))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "850ms", FormatDuration(850*time.Millisecond))
	assert.Equal(t, "2.4s", FormatDuration(2400*time.Millisecond))
}

func TestMessageList(t *testing.T) {
	list := NewMessageList(styles.NewThemeForMode(styles.ModeDark))
	list.EmptyText = "No messages yet"
	assert.Contains(t, list.View(), "No messages yet")

	conv := model.NewConversation("", "en")
	conv.AddUserMessage("Is a verbal will valid?")
	conv.AddAssistantMessage("Generally **no**, with narrow exceptions.")
	list.SetMessages(conv.Messages)
	list.SetWidth(90)

	out := list.View()
	assert.Contains(t, out, "verbal will")
	assert.Contains(t, out, "Generally no, with narrow exceptions.")

	list.SetTheme(styles.NewThemeForMode(styles.ModeLight))
	assert.Contains(t, list.View(), "verbal will")
}
