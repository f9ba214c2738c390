// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the chat view: header, messages, input, disclaimer, status.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
		m.renderDisclaimer(),
		m.renderStatusBar(),
	)
}

// refresh re-renders the message list into the viewport and keeps the
// newest message in view.
func (m *Model) refresh() {
	width := m.width
	if width <= 0 {
		width = 80
	}

	if m.height > 0 {
		chrome := lipgloss.Height(m.renderHeader()) +
			lipgloss.Height(m.renderInput()) +
			lipgloss.Height(m.renderDisclaimer()) +
			lipgloss.Height(m.renderStatusBar())
		m.viewport.Height = max(m.height-chrome, 1)
	}
	m.viewport.Width = width

	messages := make([]*model.Message, 0, len(m.conversation.Messages)+len(m.notices))
	messages = append(messages, m.conversation.Messages...)
	messages = append(messages, m.notices...)

	wrap := width
	if m.cfg != nil && m.cfg.UI.WordWrap > 0 {
		wrap = min(width, m.cfg.UI.WordWrap)
	}
	m.list.SetMessages(messages)
	m.list.SetWidth(wrap)
	m.list.EmptyText = i18n.T(m.lang, i18n.KeyWelcomeMessage)

	m.viewport.SetContent(m.list.View())
	m.viewport.GotoBottom()
}

// =============================================================================
// COMPONENTS
// =============================================================================

func (m Model) renderHeader() string {
	title := i18n.T(m.lang, i18n.KeyAppTitle)
	subtitle := i18n.T(m.lang, i18n.KeyAppSubtitle)
	if m.width > 0 {
		subtitle = util.TruncateDisplay(subtitle, max(m.width-util.DisplayWidth(title)-4, 0))
	}
	line := m.theme.HeaderTitle.Render(title) + "  " + m.theme.HeaderSubtitle.Render(subtitle)
	return m.fitLine(m.theme.Header, line)
}

func (m Model) renderInput() string {
	if m.state == StateWaiting {
		return m.spinner.View() + " " + m.theme.ThinkingText.Render(i18n.T(m.lang, i18n.KeyThinking))
	}
	return m.input.View()
}

func (m Model) renderDisclaimer() string {
	text := i18n.T(m.lang, i18n.KeyDisclaimer)
	if m.width > 0 {
		text = util.TruncateDisplay(text, m.width)
	}
	return m.theme.Disclaimer.Render(text)
}

// renderStatusBar shows the conversation title, language, theme and either
// the last status message or the key hints.
func (m Model) renderStatusBar() string {
	sep := m.theme.Muted.Render(" | ")

	left := []string{
		util.TruncateDisplay(m.conversation.GetTitle(), 30),
		i18n.DisplayName(m.lang),
		string(m.theme.Mode),
	}

	var right string
	if m.statusMsg != "" {
		right = m.statusMsg
	} else {
		hints := make([]string, 0, len(m.keyMap.ShortHelp()))
		for _, b := range m.keyMap.ShortHelp() {
			h := b.Help()
			hints = append(hints, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
		}
		right = strings.Join(hints, "  ")
	}

	return m.fitLine(m.theme.StatusBar, strings.Join(left, sep)+sep+right)
}

// fitLine renders a styled line at full width, clipped to one row.
func (m Model) fitLine(style lipgloss.Style, line string) string {
	if m.width <= 0 {
		return style.Render(line)
	}
	return style.Width(m.width).MaxHeight(1).Render(line)
}
