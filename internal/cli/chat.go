// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/lawyer"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Indigo).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// LineReader reads one line of user input.
type LineReader interface {
	ReadInput(prompt string) (string, error)
	Close()
}

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// ChatHistoryPath returns the REPL history file under the data directory.
func ChatHistoryPath(dataDir string) string {
	return filepath.Join(dataDir, "chat_history")
}

// NewChatCLI creates a line editor that persists history to historyFile.
func NewChatCLI(historyFile string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history to file with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT SESSION
// =============================================================================

// ChatSession is a line-based conversation with the assistant.
type ChatSession struct {
	app          *App
	input        LineReader
	lang         string
	conversation *model.Conversation
}

// NewChatSession starts a session with a fresh conversation.
func NewChatSession(app *App, input LineReader) *ChatSession {
	s := &ChatSession{app: app, input: input, lang: app.Language()}
	s.reset()
	return s
}

// Conversation returns the current conversation.
func (s *ChatSession) Conversation() *model.Conversation {
	return s.conversation
}

// Language returns the session language.
func (s *ChatSession) Language() string {
	return s.lang
}

func (s *ChatSession) reset() {
	s.conversation = model.NewConversation(i18n.T(s.lang, i18n.KeyNewChat), s.lang)
}

// Run reads questions until /quit, Ctrl+C or end of input.
func (s *ChatSession) Run(ctx context.Context) error {
	out := s.app.Stdout
	if !s.app.Args.Quiet {
		fmt.Fprintln(out, welcomeStyle.Render(i18n.T(s.lang, i18n.KeyAppTitle)))
		fmt.Fprintln(out, infoStyle.Render(i18n.T(s.lang, i18n.KeyDisclaimer)))
		fmt.Fprintln(out, infoStyle.Render("Type /help for commands, /quit to exit."))
		fmt.Fprintln(out)
	}

	for {
		line, err := s.input.ReadInput(promptStyle.Render("> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := s.HandleLine(ctx, line)
		if err != nil {
			fmt.Fprintln(s.app.Stderr, styles.RenderError(err.Error()))
		}
		if quit || ctx.Err() != nil {
			return nil
		}
	}
}

// HandleLine processes one line of input. It reports whether the session
// should end.
func (s *ChatSession) HandleLine(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, "/") {
		return s.handleCommand(line)
	}
	return false, s.ask(ctx, line)
}

func (s *ChatSession) handleCommand(line string) (bool, error) {
	out := s.app.Stdout
	parts := strings.Fields(line)
	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	switch name {
	case "quit", "q", "exit":
		return true, nil

	case "help", "h", "?":
		fmt.Fprintln(out, i18n.T(s.lang, i18n.KeyHelp))

	case "new", "n":
		s.reset()
		fmt.Fprintln(out, styles.RenderInfo(i18n.T(s.lang, i18n.KeyStartNewChat)))

	case "history", "hist":
		if s.app.Store == nil {
			return false, errors.New("history is not available")
		}
		metas, err := s.app.Store.List()
		if err != nil {
			return false, err
		}
		fmt.Fprint(out, storage.FormatList(metas, i18n.T(s.lang, i18n.KeyNoHistory)+"\n"))

	case "lang", "language":
		if len(args) == 0 {
			fmt.Fprintln(out, i18n.FormatLanguageList(s.lang))
			return false, nil
		}
		code := strings.ToLower(args[0])
		if !i18n.IsSupported(code) {
			return false, NewValidationError("language", args[0], "unsupported language")
		}
		s.lang = code
		if s.conversation.IsEmpty() {
			s.reset()
		}
		if s.app.Prefs != nil {
			if err := s.app.Prefs.SetLanguage(code); err != nil {
				log.Printf("PREFS_WRITE_FAILED | key=language error=%v", err)
			}
		}
		fmt.Fprintln(out, styles.RenderSuccess(fmt.Sprintf("%s: %s", i18n.T(s.lang, i18n.KeyLanguage), i18n.DisplayName(code))))

	case "lawyer", "find":
		q, err := lawyer.ParseQuery(args)
		if err != nil {
			return false, NewValidationError("lawyer", strings.Join(args, " "), err.Error())
		}
		fmt.Fprintln(out, styles.RenderInfo(i18n.T(s.lang, i18n.KeyFindLocalLawyer)))
		fmt.Fprintln(out, q.URL())

	default:
		return false, NewValidationError("command", "/"+name, "unknown command (type /help)")
	}
	return false, nil
}

// ask sends question and prints the reply. Ctrl+C while waiting cancels
// the request but keeps the session.
func (s *ChatSession) ask(ctx context.Context, question string) error {
	if s.app.Client == nil {
		return errors.New("assistant client is not configured")
	}

	reqCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	s.conversation.AddUserMessage(question)
	s.app.saveConversation(s.conversation)

	if !s.app.Args.Quiet {
		fmt.Fprintln(s.app.Stdout, infoStyle.Render(i18n.T(s.lang, i18n.KeyThinking)))
	}

	start := time.Now()
	reply, err := s.app.Client.Ask(reqCtx, question)
	if err != nil {
		s.conversation.AddErrorMessage(i18n.Tf(s.lang, i18n.KeyErrorMessage, err))
		s.app.saveConversation(s.conversation)
		return err
	}

	msg := s.conversation.AddAssistantMessage(reply)
	msg.Duration = time.Since(start)
	s.app.saveConversation(s.conversation)

	return s.app.displayResponse(reply)
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// Chat runs the interactive line-based chat on the terminal.
func (a *App) Chat(ctx context.Context) error {
	dataDir, err := config.ConfigDir()
	if a.Config != nil {
		dataDir, err = a.Config.DataDir()
	}
	if err != nil {
		dataDir = os.TempDir()
	}

	input := NewChatCLI(ChatHistoryPath(dataDir))
	defer input.Close()

	return NewChatSession(a, input).Run(ctx)
}
