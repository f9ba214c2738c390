// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/legalchat/internal/assistant"
	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeAsker struct {
	answer    string
	err       error
	questions []string
}

func (f *fakeAsker) Ask(ctx context.Context, question string) (string, error) {
	f.questions = append(f.questions, question)
	return f.answer, f.err
}

type fixture struct {
	store *storage.ConversationStore
	prefs *storage.Prefs
	dir   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewConversationStoreWithDir(filepath.Join(dir, "conversations"))
	require.NoError(t, err)
	prefs, err := storage.OpenPrefs(filepath.Join(dir, "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { prefs.Close() })
	return fixture{store: store, prefs: prefs, dir: dir}
}

func newModel(t *testing.T, f fixture, client Asker) Model {
	t.Helper()
	return New(Options{
		Theme:     styles.NewThemeForMode(styles.ModeDark),
		Client:    client,
		Store:     f.store,
		Prefs:     f.prefs,
		Config:    config.Default(),
		ExportDir: f.dir,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func enter(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// ask submits a question and feeds back the answer the client produces.
func ask(t *testing.T, m Model, client Asker, question string) Model {
	t.Helper()
	m, cmd := enter(t, m, question)
	require.NotNil(t, cmd)
	require.Equal(t, StateWaiting, m.State())

	msg := AskCmd(context.Background(), client, question, m.seq)()
	m, _ = send(t, m, msg)
	return m
}

func lastNotice(m Model) string {
	if len(m.notices) == 0 {
		return ""
	}
	return m.notices[len(m.notices)-1].Content
}

// =============================================================================
// MODEL TESTS
// =============================================================================

func TestNew_Defaults(t *testing.T) {
	m := newModel(t, newFixture(t), nil)

	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, "en", m.Language())
	assert.True(t, m.Conversation().IsEmpty())
	assert.Equal(t, "New Chat", m.Conversation().Title)
	assert.Equal(t, "Loading...", m.View())
}

func TestNew_UsesStoredPreferences(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.prefs.SetLanguage("ta"))
	require.NoError(t, f.prefs.SetTheme("light"))

	m := New(Options{Store: f.store, Prefs: f.prefs, Config: config.Default()})
	assert.Equal(t, "ta", m.Language())
	assert.Equal(t, styles.ModeLight, m.Theme().Mode)

	m = New(Options{Prefs: f.prefs, Config: config.Default(), Language: "hi-IN", Theme: styles.NewThemeForMode(styles.ModeDark)})
	assert.Equal(t, "hi", m.Language())
}

func TestSubmit_AnswerAppendedAndSaved(t *testing.T) {
	f := newFixture(t)
	client := &fakeAsker{answer: "## Bail\n\n**Bail** is temporary release."}
	m := newModel(t, f, client)

	m = ask(t, m, client, "What is bail?")

	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, []string{"What is bail?"}, client.questions)
	require.Len(t, m.Conversation().Messages, 2)
	assert.Equal(t, "What is bail?", m.Conversation().Title)
	reply := m.Conversation().Messages[1]
	assert.Equal(t, client.answer, reply.Content)
	assert.False(t, reply.IsError)
	assert.Empty(t, m.input.Value())

	loaded, err := f.store.Load(m.Conversation().ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Messages, 2)
	assert.Equal(t, m.Conversation().ID, f.prefs.LastConversation())
}

func TestSubmit_IgnoresBlankAndBusy(t *testing.T) {
	m := newModel(t, newFixture(t), &fakeAsker{})

	m, cmd := enter(t, m, "   ")
	assert.Nil(t, cmd)
	assert.True(t, m.Conversation().IsEmpty())

	m, _ = enter(t, m, "first")
	require.Equal(t, StateWaiting, m.State())

	m, cmd = enter(t, m, "second")
	assert.Nil(t, cmd)
	assert.Len(t, m.Conversation().Messages, 1)
}

func TestAnswer_ErrorIsLocalized(t *testing.T) {
	client := &fakeAsker{err: errors.New("boom")}
	m := newModel(t, newFixture(t), client)
	m, _ = enter(t, m, "/lang hi")

	m = ask(t, m, client, "मेरा सवाल")

	last := m.Conversation().GetLastMessage()
	require.NotNil(t, last)
	assert.True(t, last.IsError)
	assert.Equal(t, i18n.Tf("hi", i18n.KeyErrorMessage, "boom"), last.Content)
}

func TestAnswer_CanceledAddsNothing(t *testing.T) {
	client := &fakeAsker{err: assistant.ErrCanceled}
	m := newModel(t, newFixture(t), client)

	m = ask(t, m, client, "q")

	assert.Len(t, m.Conversation().Messages, 1)
	assert.Equal(t, "request canceled", m.statusMsg)
}

func TestCancel_DropsLateAnswer(t *testing.T) {
	m := newModel(t, newFixture(t), &fakeAsker{})
	m, _ = enter(t, m, "q")
	staleSeq := m.seq

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateReady, m.State())
	assert.False(t, m.cancelMgr.cancel(), "cancel func should already be cleared")

	m, _ = send(t, m, AnswerMsg{Seq: staleSeq, Content: "late"})
	assert.Len(t, m.Conversation().Messages, 1)
}

func TestQuitKey(t *testing.T) {
	m := newModel(t, newFixture(t), nil)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAskCmd_NoClient(t *testing.T) {
	msg := AskCmd(context.Background(), nil, "q", 3)()
	answer, ok := msg.(AnswerMsg)
	require.True(t, ok)
	assert.Equal(t, 3, answer.Seq)
	assert.ErrorIs(t, answer.Err, errNoClient)
}

func TestView_RendersChrome(t *testing.T) {
	m := newModel(t, newFixture(t), nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "VakeelNow")
	assert.Contains(t, view, "Welcome")
	assert.Contains(t, view, "not legal advice")
	assert.LessOrEqual(t, lipgloss.Height(view), 30)
}

func TestResumeLastConversation(t *testing.T) {
	f := newFixture(t)
	client := &fakeAsker{answer: "answer"}
	m := ask(t, newModel(t, f, client), client, "Tenant deposit")
	id := m.Conversation().ID

	resumed := New(Options{Store: f.store, Prefs: f.prefs, Config: config.Default(), Resume: true,
		Theme: styles.NewThemeForMode(styles.ModeDark)})
	assert.Equal(t, id, resumed.Conversation().ID)
}

// =============================================================================
// COMMAND TESTS
// =============================================================================

func TestCommand_HelpAndUnknown(t *testing.T) {
	m := newModel(t, newFixture(t), nil)

	m, _ = enter(t, m, "/help")
	assert.Contains(t, lastNotice(m), "/export")
	assert.Empty(t, m.input.Value())

	m, _ = enter(t, m, "/frobnicate")
	assert.Contains(t, lastNotice(m), "Unknown command '/frobnicate'")
	assert.True(t, m.Conversation().IsEmpty(), "notices are not conversation messages")
}

func TestCommand_Quit(t *testing.T) {
	m := newModel(t, newFixture(t), nil)
	_, cmd := enter(t, m, "/quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCommand_New(t *testing.T) {
	client := &fakeAsker{answer: "a"}
	m := ask(t, newModel(t, newFixture(t), client), client, "q")
	old := m.Conversation().ID
	m, _ = enter(t, m, "/help")

	m, _ = enter(t, m, "/new")
	assert.NotEqual(t, old, m.Conversation().ID)
	assert.True(t, m.Conversation().IsEmpty())
	assert.Empty(t, m.Notices())
}

func TestCommand_HistoryOpenDelete(t *testing.T) {
	f := newFixture(t)
	client := &fakeAsker{answer: "a"}
	m := ask(t, newModel(t, f, client), client, "Cheque bounce notice")
	saved := m.Conversation().ID

	m, _ = enter(t, m, "/history")
	assert.Contains(t, lastNotice(m), "Recent Chats")
	assert.Contains(t, lastNotice(m), "Cheque bounce notice")

	m, _ = enter(t, m, "/new")
	m, _ = enter(t, m, "/open")
	assert.Contains(t, lastNotice(m), "Usage: /open N")

	m, _ = enter(t, m, "/open 1")
	assert.Equal(t, saved, m.Conversation().ID)
	assert.Equal(t, saved, f.prefs.LastConversation())

	m, _ = enter(t, m, "/open 7")
	assert.Contains(t, lastNotice(m), "not found")

	m, _ = enter(t, m, "/delete 1")
	assert.Contains(t, lastNotice(m), "Deleted Cheque bounce notice")
	assert.NotEqual(t, saved, m.Conversation().ID)

	metas, err := f.store.List()
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestCommand_HistoryWithoutStore(t *testing.T) {
	m := New(Options{Theme: styles.NewThemeForMode(styles.ModeDark)})
	m, _ = enter(t, m, "/history")
	assert.Contains(t, lastNotice(m), "not available")
}

func TestCommand_Theme(t *testing.T) {
	f := newFixture(t)
	m := newModel(t, f, nil)

	m, _ = enter(t, m, "/theme")
	assert.Contains(t, lastNotice(m), "Theme: dark")

	m, _ = enter(t, m, "/theme light")
	assert.Equal(t, styles.ModeLight, m.Theme().Mode)
	assert.Equal(t, "light", f.prefs.Theme(""))

	m, _ = enter(t, m, "/theme neon")
	assert.Contains(t, lastNotice(m), "[X]")
	assert.Equal(t, styles.ModeLight, m.Theme().Mode)
}

func TestCommand_Lang(t *testing.T) {
	f := newFixture(t)
	m := newModel(t, f, nil)

	m, _ = enter(t, m, "/lang")
	assert.Contains(t, lastNotice(m), "हिन्दी")

	m, _ = enter(t, m, "/lang ta_IN")
	assert.Equal(t, "ta", m.Language())
	assert.Equal(t, "ta", f.prefs.Language(""))
	assert.Equal(t, "ta", m.Conversation().Language)
	assert.Equal(t, i18n.T("ta", i18n.KeyAskAnything), m.input.Placeholder)

	m, _ = enter(t, m, "/lang xx")
	assert.Contains(t, lastNotice(m), "Unsupported language: xx")
	assert.Equal(t, "ta", m.Language())

	m, _ = enter(t, m, "/lang en-GB")
	assert.Equal(t, "en", m.Language())
}

func TestCommand_Lawyer(t *testing.T) {
	m := newModel(t, newFixture(t), nil)

	m, _ = enter(t, m, "/lawyer")
	assert.Contains(t, lastNotice(m), "Usage: /lawyer CITY [AREA]")
	assert.Contains(t, lastNotice(m), "Intellectual Property")

	m, _ = enter(t, m, "/lawyer New Delhi family")
	assert.Contains(t, lastNotice(m), "Find a Local Lawyer")
	assert.Contains(t, lastNotice(m), "https://www.google.com/search?q=Family+lawyer+in+New+Delhi")

	m, _ = enter(t, m, "/find Pune, Maritime")
	assert.Contains(t, lastNotice(m), "[X]")
	assert.Contains(t, lastNotice(m), "unknown area of law")

	m, _ = enter(t, m, "/lang hi")
	m, _ = enter(t, m, "/lawyer Jaipur")
	assert.Contains(t, lastNotice(m), "स्थानीय वकील खोजें")
	assert.Contains(t, lastNotice(m), "q=Civil+lawyer+in+Jaipur")
	assert.True(t, m.Conversation().IsEmpty())
}

func TestCommand_ExportAndShare(t *testing.T) {
	f := newFixture(t)
	client := &fakeAsker{answer: "**Section 138** applies."}
	m := newModel(t, f, client)

	m, cmd := enter(t, m, "/export html")
	assert.Nil(t, cmd)
	assert.Contains(t, lastNotice(m), "Nothing to export")

	m = ask(t, m, client, "Cheque bounce")

	m, cmd = enter(t, m, "/export pdf")
	assert.Nil(t, cmd)
	assert.Contains(t, lastNotice(m), "unsupported export format")

	for _, tc := range []struct {
		command string
		ext     string
	}{
		{"/export html", ".html"},
		{"/export", ".md"},
		{"/share", ".txt"},
	} {
		m, cmd = enter(t, m, tc.command)
		require.NotNil(t, cmd, tc.command)

		done, ok := cmd().(ExportCompleteMsg)
		require.True(t, ok)
		require.NoError(t, done.Err)
		assert.Equal(t, f.dir, filepath.Dir(done.Path))
		assert.Equal(t, tc.ext, filepath.Ext(done.Path))
		assert.FileExists(t, done.Path)

		m, _ = send(t, m, done)
		assert.True(t, strings.HasPrefix(lastNotice(m), "[OK] Saved"))
	}
}

// =============================================================================
// CONFIG RELOAD TESTS
// =============================================================================

func TestConfigReloaded(t *testing.T) {
	m := newModel(t, newFixture(t), nil)

	cfg := config.Default()
	cfg.UI.Theme = "light"
	cfg.UI.Language = "bn"
	cfg.UI.ShowTimestamps = false
	cfg.UI.CodeHighlightStyle = "dracula"

	m, _ = send(t, m, ConfigReloadedMsg{Config: cfg})
	assert.Equal(t, styles.ModeLight, m.Theme().Mode)
	assert.Equal(t, "bn", m.Language())
	assert.Equal(t, "dracula", m.Theme().SyntaxStyle)
	assert.False(t, m.list.ShowTimestamps)
	assert.Equal(t, "config reloaded", m.statusMsg)

	m, _ = send(t, m, ConfigReloadedMsg{Err: errors.New("bad toml")})
	assert.Equal(t, "config reload failed: bad toml", m.statusMsg)
	assert.Equal(t, "bn", m.Language())
}
