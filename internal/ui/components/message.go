// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat message. User messages are plain text
// aligned right; assistant messages go through the Markdown renderer.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
	renderer      *MarkdownRenderer
}

// NewMessageBubble creates a new MessageBubble. renderer may be nil, in
// which case an uncached one is created per render.
func NewMessageBubble(msg *model.Message, theme *styles.Theme, renderer *MarkdownRenderer) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Role: model.RoleSystem}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
		renderer:      renderer,
	}
}

// SetWidth sets the bubble width
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble
func (b *MessageBubble) View() string {
	if b.theme == nil {
		b.theme = styles.NewTheme()
	}
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderUserBubble()
	case model.RoleAssistant:
		return b.renderAssistantBubble()
	default:
		return b.renderSystemBubble()
	}
}

// contentWidth is the text width inside a bubble frame (border plus padding).
func (b *MessageBubble) contentWidth() int {
	return max(styles.BubbleWidthFor(b.Width)-4, 10)
}

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if strings.TrimSpace(content) == "" {
		content = "..."
	}

	width := b.contentWidth()
	text := content
	if lipgloss.Width(text) > width {
		text = lipgloss.NewStyle().Width(width).Render(text)
	}

	bubble := b.theme.UserBubble.Render(text)
	header := b.header()

	block := lipgloss.JoinVertical(lipgloss.Right, header, bubble)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block)
}

func (b *MessageBubble) renderAssistantBubble() string {
	width := b.contentWidth()

	if b.Message.IsError {
		text := lipgloss.NewStyle().Width(width).Render(b.Message.Content)
		return b.header() + "\n" + b.theme.ErrorBubble.Render(text)
	}

	renderer := b.renderer
	if renderer == nil {
		renderer = &MarkdownRenderer{Theme: b.theme}
	}
	renderer.Theme = b.theme
	renderer.Width = width

	body := renderer.Render(b.Message.Content)
	if body == "" {
		body = "..."
	}
	return b.header() + "\n" + b.theme.AssistantBubble.Render(body)
}

func (b *MessageBubble) renderSystemBubble() string {
	text := lipgloss.NewStyle().Width(b.contentWidth()).Render(b.Message.Content)
	bubble := b.theme.SystemBubble.Render(text)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Center, bubble)
}

// header renders the role label, timestamp and answer time.
func (b *MessageBubble) header() string {
	parts := []string{b.theme.RoleLabel.Render(b.Message.Role.DisplayName())}
	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		parts = append(parts, b.theme.Timestamp.Render(FormatTimestamp(b.Message.Timestamp, time.Now())))
	}
	if b.Message.Duration > 0 {
		parts = append(parts, b.theme.Timestamp.Render(FormatDuration(b.Message.Duration)))
	}
	return strings.Join(parts, " ")
}

// ==========================================================================
// UTILITY FUNCTIONS
// ==========================================================================

// FormatTimestamp formats ts as "3:04 PM" when it falls on the same day as
// now and "Jan 5, 3:04 PM" otherwise.
func FormatTimestamp(ts, now time.Time) string {
	if ts.Year() == now.Year() && ts.YearDay() == now.YearDay() {
		return ts.Format("3:04 PM")
	}
	return ts.Format("Jan 2, 3:04 PM")
}

// FormatDuration formats an answer time as "850ms" or "2.4s".
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders a whole conversation. All bubbles share one
// Markdown renderer and its parse cache.
type MessageList struct {
	Messages       []*model.Message
	Width          int
	ShowTimestamps bool
	EmptyText      string
	theme          *styles.Theme
	renderer       *MarkdownRenderer
}

// NewMessageList creates a new MessageList
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width:          80,
		ShowTimestamps: true,
		theme:          theme,
		renderer:       NewMarkdownRenderer(theme, 80),
	}
}

// SetMessages sets the messages to display
func (ml *MessageList) SetMessages(messages []*model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// SetTheme swaps the theme for subsequent renders.
func (ml *MessageList) SetTheme(theme *styles.Theme) {
	ml.theme = theme
	ml.renderer.Theme = theme
}

// View renders all messages
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		return ml.theme.Muted.
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(ml.EmptyText)
	}

	bubbles := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme, ml.renderer)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubbles = append(bubbles, bubble.View())
	}
	return strings.Join(bubbles, "\n\n")
}
