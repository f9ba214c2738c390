// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/components"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateWaiting              // A question is in flight
)

// Asker answers a question. *assistant.Client satisfies it.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Options wires the chat view to its collaborators. Store and Prefs may be
// nil, in which case nothing is persisted.
type Options struct {
	Theme  *styles.Theme
	Client Asker
	Store  *storage.ConversationStore
	Prefs  *storage.Prefs
	Config *config.Config

	// Language overrides the stored and configured UI language.
	Language string

	// ExportDir receives /export and /share files. Default: current directory.
	ExportDir string

	// Resume reopens the last conversation recorded in Prefs.
	Resume bool
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	state State

	theme  *styles.Theme
	width  int
	height int

	conversation *model.Conversation
	// notices are command outputs shown after the conversation but never saved.
	notices []*model.Message

	client    Asker
	store     *storage.ConversationStore
	prefs     *storage.Prefs
	cfg       *config.Config
	lang      string
	exportDir string

	seq       int
	cancelMgr *cancelManager

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	list     *components.MessageList
	keyMap   KeyMap

	statusMsg string
}

// New creates a chat model from opts.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	theme := opts.Theme
	if theme == nil {
		mode, err := styles.ParseMode(cfg.UI.Theme)
		if err != nil {
			mode = styles.ModeAuto
		}
		if opts.Prefs != nil {
			if stored, err := styles.ParseMode(opts.Prefs.Theme(string(mode))); err == nil {
				mode = stored
			}
		}
		theme = styles.NewThemeForMode(mode)
	}
	if style := syntaxOverride(cfg); style != "" {
		theme.SyntaxStyle = style
	}

	lang := i18n.Match(cfg.UI.Language)
	if opts.Prefs != nil {
		lang = i18n.Match(opts.Prefs.Language(lang))
	}
	if opts.Language != "" {
		lang = i18n.Match(opts.Language)
	}

	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.Placeholder = i18n.T(lang, i18n.KeyAskAnything)
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = styles.DotsSpinner.Bubble()
	sp.Style = theme.Spinner

	list := components.NewMessageList(theme)
	list.ShowTimestamps = cfg.UI.ShowTimestamps

	m := Model{
		state:     StateReady,
		theme:     theme,
		client:    opts.Client,
		store:     opts.Store,
		prefs:     opts.Prefs,
		cfg:       cfg,
		lang:      lang,
		exportDir: exportDir,
		cancelMgr: newCancelManager(),
		viewport:  vp,
		input:     ti,
		spinner:   sp,
		list:      list,
		keyMap:    DefaultKeyMap(),
	}
	m.conversation = m.newConversation()

	if opts.Resume {
		m.resumeLast()
	}
	m.refresh()
	return m
}

// newConversation starts an empty conversation in the current language.
func (m *Model) newConversation() *model.Conversation {
	return model.NewConversation(i18n.T(m.lang, i18n.KeyNewChat), m.lang)
}

// syntaxOverride returns the configured chroma style when it differs from
// the default, which would otherwise be applied to light themes too.
func syntaxOverride(cfg *config.Config) string {
	if cfg == nil || cfg.UI.CodeHighlightStyle == styles.DarkSyntaxStyle {
		return ""
	}
	return cfg.UI.CodeHighlightStyle
}

// resumeLast loads the conversation recorded in Prefs, if it still exists.
func (m *Model) resumeLast() {
	if m.prefs == nil || m.store == nil {
		return
	}
	id := m.prefs.LastConversation()
	if id == "" {
		return
	}
	conv, err := m.store.Load(id)
	if err != nil {
		log.Printf("CHAT_RESUME_SKIPPED | id=%s error=%v", id, err)
		return
	}
	m.conversation = conv
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Conversation returns the active conversation.
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// State returns the current chat state.
func (m Model) State() State {
	return m.state
}

// Language returns the active UI language code.
func (m Model) Language() string {
	return m.lang
}

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// Notices returns the transient command output currently shown.
func (m Model) Notices() []*model.Message {
	return m.notices
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// save writes the active conversation and records it as the last one.
// Failures are logged and surfaced in the status bar only.
func (m *Model) save() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.conversation); err != nil {
		log.Printf("CHAT_SAVE_FAILED | id=%s error=%v", m.conversation.ID, err)
		m.statusMsg = "save failed: " + err.Error()
		return
	}
	if m.prefs != nil && !m.conversation.IsEmpty() {
		if err := m.prefs.SetLastConversation(m.conversation.ID); err != nil {
			log.Printf("PREFS_WRITE_FAILED | key=last_conversation error=%v", err)
		}
	}
}

// setPref stores one preference, logging failures.
func (m *Model) setPref(set func(string) error, key, value string) {
	if m.prefs == nil {
		return
	}
	if err := set(value); err != nil {
		log.Printf("PREFS_WRITE_FAILED | key=%s error=%v", key, err)
	}
}
