// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/legalchat/internal/assistant"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// errNoClient is reported when the view has no assistant wired in.
var errNoClient = errors.New("no assistant configured")

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// AskCmd sends question to client and reports the answer as an AnswerMsg.
func AskCmd(ctx context.Context, client Asker, question string, seq int) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return AnswerMsg{Seq: seq, Err: errNoClient}
		}
		start := time.Now()
		content, err := client.Ask(ctx, question)
		return AnswerMsg{
			Seq:      seq,
			Content:  content,
			Duration: time.Since(start),
			Err:      err,
		}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnswerMsg:
		return m.handleAnswer(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case ExportCompleteMsg:
		return m.handleExportComplete(msg)

	case spinner.TickMsg:
		if m.state != StateWaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes key presses to bindings, then to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.cancelMgr.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Cancel):
		if m.state == StateWaiting {
			m.cancelPending()
			m.statusMsg = "request canceled"
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		if strings.HasPrefix(value, "/") {
			return m.handleCommand(value)
		}
		if m.state == StateWaiting {
			return m, nil
		}
		m.input.Reset()
		return m.submit(value)

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit appends the question, saves, and dispatches the request.
func (m Model) submit(question string) (tea.Model, tea.Cmd) {
	m.notices = nil
	m.statusMsg = ""
	m.conversation.AddUserMessage(question)
	m.save()

	m.seq++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelMgr.set(cancel)
	m.state = StateWaiting
	m.refresh()

	log.Printf("CHAT_ASK | conversation=%s seq=%d chars=%d", m.conversation.ID, m.seq, len(question))
	return m, tea.Batch(AskCmd(ctx, m.client, question, m.seq), m.spinner.Tick)
}

// cancelPending abandons the in-flight request. Its answer, if one still
// arrives, no longer matches m.seq and is dropped.
func (m *Model) cancelPending() {
	m.cancelMgr.cancel()
	if m.state == StateWaiting {
		m.seq++
		m.state = StateReady
	}
}

// handleAnswer appends the reply, or a localized error message, and saves.
func (m Model) handleAnswer(msg AnswerMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq || m.state != StateWaiting {
		return m, nil
	}
	m.cancelMgr.cancel()
	m.state = StateReady

	switch {
	case assistant.IsCanceled(msg.Err):
		m.statusMsg = "request canceled"
	case msg.Err != nil:
		log.Printf("CHAT_ANSWER_ERROR | conversation=%s error=%v", m.conversation.ID, msg.Err)
		m.conversation.AddErrorMessage(i18n.Tf(m.lang, i18n.KeyErrorMessage, msg.Err.Error()))
	default:
		reply := m.conversation.AddAssistantMessage(msg.Content)
		reply.Duration = msg.Duration
	}

	m.save()
	m.refresh()
	return m, nil
}

// handleConfigReloaded applies display settings from a reloaded config.
// Assistant settings take effect on the next start.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.statusMsg = "config reload failed: " + msg.Err.Error()
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	old := m.cfg
	m.cfg = msg.Config
	ui := msg.Config.UI

	if old == nil || ui.Theme != old.UI.Theme {
		if mode, err := styles.ParseMode(ui.Theme); err == nil {
			m.applyTheme(mode)
		}
	}
	if old == nil || ui.Language != old.UI.Language {
		m.applyLanguage(i18n.Match(ui.Language))
	}
	if style := syntaxOverride(msg.Config); style != "" {
		m.theme.SyntaxStyle = style
	}
	m.list.ShowTimestamps = ui.ShowTimestamps

	m.statusMsg = "config reloaded"
	m.refresh()
	return m, nil
}

func (m Model) handleExportComplete(msg ExportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.addNotice(styles.RenderError("Export failed: " + msg.Err.Error()))
	} else {
		m.addNotice(styles.RenderSuccess("Saved " + msg.Format + " to " + msg.Path))
	}
	m.refresh()
	return m, nil
}

// =============================================================================
// LAYOUT
// =============================================================================

// resize fits the viewport between the header and the input area.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.input.Width = max(width-4, 10)
	m.refresh()
}

// applyTheme swaps in a new theme at the current size.
func (m *Model) applyTheme(mode styles.Mode) {
	m.theme = styles.NewThemeForMode(mode)
	if style := syntaxOverride(m.cfg); style != "" {
		m.theme.SyntaxStyle = style
	}
	m.theme.SetSize(m.width, m.height)
	m.list.SetTheme(m.theme)
	m.input.PromptStyle = m.theme.InputPrompt
	m.spinner.Style = m.theme.Spinner
}

// applyLanguage switches UI strings. An untouched conversation is retitled.
func (m *Model) applyLanguage(lang string) {
	m.lang = lang
	m.input.Placeholder = i18n.T(lang, i18n.KeyAskAnything)
	if m.conversation.IsEmpty() {
		m.conversation = m.newConversation()
	}
}
