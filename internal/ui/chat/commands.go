// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/legalchat/internal/export"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/lawyer"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// CommandHandler handles one slash command. It mutates m and returns the
// follow-up command, if any.
type CommandHandler func(m *Model, args []string) tea.Cmd

// commandHandlers maps command names and aliases to handlers.
var commandHandlers = map[string]CommandHandler{
	"help":     handleHelpCommand,
	"h":        handleHelpCommand,
	"?":        handleHelpCommand,
	"quit":     handleQuitCommand,
	"q":        handleQuitCommand,
	"exit":     handleQuitCommand,
	"new":      handleNewCommand,
	"n":        handleNewCommand,
	"history":  handleHistoryCommand,
	"hist":     handleHistoryCommand,
	"open":     handleOpenCommand,
	"o":        handleOpenCommand,
	"delete":   handleDeleteCommand,
	"del":      handleDeleteCommand,
	"theme":    handleThemeCommand,
	"lang":     handleLangCommand,
	"language": handleLangCommand,
	"share":    handleShareCommand,
	"export":   handleExportCommand,
	"e":        handleExportCommand,
	"lawyer":   handleLawyerCommand,
	"find":     handleLawyerCommand,
}

// handleCommand runs a slash command line.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return m, nil
	}
	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	handler, ok := commandHandlers[name]
	if !ok {
		m.addNotice(styles.RenderError("Unknown command '" + parts[0] + "'. Type /help for available commands."))
		m.refresh()
		return m, nil
	}

	log.Printf("CHAT_COMMAND | name=%s args=%d", name, len(args))
	cmd := handler(&m, args)
	m.refresh()
	return m, cmd
}

// addNotice shows transient command output below the conversation.
func (m *Model) addNotice(text string) {
	m.notices = append(m.notices, model.NewSystemMessage(text))
}

// =============================================================================
// HELP AND META COMMANDS
// =============================================================================

func handleHelpCommand(m *Model, args []string) tea.Cmd {
	m.addNotice(i18n.T(m.lang, i18n.KeyHelp))
	return nil
}

func handleQuitCommand(m *Model, args []string) tea.Cmd {
	m.cancelMgr.cancel()
	return tea.Quit
}

// =============================================================================
// CONVERSATION COMMANDS
// =============================================================================

func handleNewCommand(m *Model, args []string) tea.Cmd {
	m.cancelPending()
	m.notices = nil
	m.statusMsg = ""
	m.conversation = m.newConversation()
	return nil
}

func handleHistoryCommand(m *Model, args []string) tea.Cmd {
	if m.store == nil {
		m.addNotice(styles.RenderWarning("History is not available."))
		return nil
	}
	metas, err := m.store.List()
	if err != nil {
		m.addNotice(styles.RenderError("Could not list conversations: " + err.Error()))
		return nil
	}
	list := storage.FormatList(metas, i18n.T(m.lang, i18n.KeyNoHistory))
	m.addNotice(i18n.T(m.lang, i18n.KeyRecentChats) + "\n\n" + strings.TrimRight(list, "\n"))
	return nil
}

func handleOpenCommand(m *Model, args []string) tea.Cmd {
	conv, ok := m.resolveConversation("open", args)
	if !ok {
		return nil
	}
	m.cancelPending()
	m.notices = nil
	m.conversation = conv
	m.statusMsg = "opened " + conv.GetTitle()
	if m.prefs != nil {
		m.setPref(m.prefs.SetLastConversation, storage.PrefLastConversation, conv.ID)
	}
	return nil
}

func handleDeleteCommand(m *Model, args []string) tea.Cmd {
	conv, ok := m.resolveConversation("delete", args)
	if !ok {
		return nil
	}
	if err := m.store.Delete(conv.ID); err != nil {
		m.addNotice(styles.RenderError("Delete failed: " + err.Error()))
		return nil
	}
	if conv.ID == m.conversation.ID {
		m.cancelPending()
		m.conversation = m.newConversation()
	}
	m.addNotice(styles.RenderSuccess("Deleted " + conv.GetTitle()))
	return nil
}

// resolveConversation looks up the conversation named by args[0], a list
// number or an ID prefix, reporting problems as notices.
func (m *Model) resolveConversation(verb string, args []string) (*model.Conversation, bool) {
	if m.store == nil {
		m.addNotice(styles.RenderWarning("History is not available."))
		return nil, false
	}
	if len(args) == 0 {
		m.addNotice(styles.RenderWarning(fmt.Sprintf("Usage: /%s N (see /history)", verb)))
		return nil, false
	}
	conv, err := m.store.Resolve(args[0])
	if err != nil {
		m.addNotice(styles.RenderError(err.Error()))
		return nil, false
	}
	return conv, true
}

// =============================================================================
// SETTINGS COMMANDS
// =============================================================================

func handleThemeCommand(m *Model, args []string) tea.Cmd {
	if len(args) == 0 {
		m.addNotice(fmt.Sprintf("%s: %s (auto, dark, light)", i18n.T(m.lang, i18n.KeyTheme), m.theme.Mode))
		return nil
	}
	mode, err := styles.ParseMode(args[0])
	if err != nil {
		m.addNotice(styles.RenderError(err.Error()))
		return nil
	}
	m.applyTheme(mode)
	if m.prefs != nil {
		m.setPref(m.prefs.SetTheme, storage.PrefTheme, string(mode))
	}
	m.statusMsg = "theme " + string(mode)
	return nil
}

func handleLangCommand(m *Model, args []string) tea.Cmd {
	if len(args) == 0 {
		m.addNotice(i18n.T(m.lang, i18n.KeyLanguage) + "\n\n" + strings.TrimRight(i18n.FormatLanguageList(m.lang), "\n"))
		return nil
	}
	lang := i18n.Match(args[0])
	if lang == i18n.DefaultLanguage && !strings.HasPrefix(strings.ToLower(args[0]), i18n.DefaultLanguage) {
		m.addNotice(styles.RenderError("Unsupported language: " + args[0]))
		return nil
	}
	m.applyLanguage(lang)
	if m.prefs != nil {
		m.setPref(m.prefs.SetLanguage, storage.PrefLanguage, lang)
	}
	m.statusMsg = i18n.DisplayName(lang)
	return nil
}

// =============================================================================
// LAWYER SEARCH
// =============================================================================

func handleLawyerCommand(m *Model, args []string) tea.Cmd {
	if len(args) == 0 {
		m.addNotice(styles.RenderWarning(fmt.Sprintf("Usage: /lawyer CITY [AREA]\n%s: %s",
			i18n.T(m.lang, i18n.KeyAreaOfLaw), lawyer.AreaList())))
		return nil
	}
	q, err := lawyer.ParseQuery(args)
	if err != nil {
		m.addNotice(styles.RenderError(err.Error()))
		return nil
	}
	log.Printf("LAWYER_SEARCH | area=%s", q.Area)
	m.addNotice(fmt.Sprintf("%s\n\n%s: %s\n%s: %s\n%s: %s",
		i18n.T(m.lang, i18n.KeyFindLocalLawyer),
		i18n.T(m.lang, i18n.KeyEnterCity), q.City,
		i18n.T(m.lang, i18n.KeyAreaOfLaw), q.Area,
		i18n.T(m.lang, i18n.KeySearch), q.URL()))
	return nil
}

// =============================================================================
// EXPORT COMMANDS
// =============================================================================

func handleShareCommand(m *Model, args []string) tea.Cmd {
	return m.exportCmd("txt")
}

func handleExportCommand(m *Model, args []string) tea.Cmd {
	format := "md"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	if _, err := export.NewExporter(format, nil); err != nil {
		m.addNotice(styles.RenderError(err.Error()))
		return nil
	}
	return m.exportCmd(format)
}

// exportCmd writes a snapshot of the conversation in the background.
func (m *Model) exportCmd(format string) tea.Cmd {
	if m.conversation.IsEmpty() {
		m.addNotice(styles.RenderWarning("Nothing to export yet."))
		return nil
	}

	conv := m.conversation.Clone()
	opts := export.DefaultOptions()
	opts.OutputDir = m.exportDir
	if m.theme.Mode == styles.ModeLight || (m.theme.Mode == styles.ModeAuto && !m.theme.IsDark) {
		opts.Theme = "light"
	}
	m.statusMsg = "exporting " + format + "..."

	return func() tea.Msg {
		path, err := export.ExportConversation(conv, format, opts)
		return ExportCompleteMsg{Format: format, Path: path, Err: err}
	}
}
