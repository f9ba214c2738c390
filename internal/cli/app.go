// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/legalchat/internal/assistant"
	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// Asker answers a question. *assistant.Client satisfies it.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// =============================================================================
// APP
// =============================================================================

// App carries the collaborators every command shares. Store, Prefs and
// Client may be nil; commands that need them report an error.
type App struct {
	Args Args

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config     *config.Config
	ConfigPath string
	Store      *storage.ConversationStore
	Prefs      *storage.Prefs
	Client     Asker
}

// OpenApp loads configuration and opens the conversation store and
// preferences. A broken config file is logged and defaults are used.
func OpenApp(args Args) (*App, error) {
	cfg, err := config.Load()
	if cfg == nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err != nil {
		log.Printf("CONFIG_WARNING | error=%v", err)
		fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("Config ignored: %v", err)))
	}

	app := &App{
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: cfg,
		Client: assistant.NewClientWithConfig(assistant.ConfigFrom(cfg)),
	}

	if path, err := config.ActivePath(); err == nil {
		app.ConfigPath = path
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewConversationStore(storage.ConversationsDir(dataDir), cfg.Storage.MaxConversations)
	if err != nil {
		log.Printf("STORE_OPEN_FAILED | dir=%s error=%v", dataDir, err)
	} else {
		app.Store = store
	}

	prefs, err := storage.OpenPrefs(storage.PrefsPath(dataDir))
	if err != nil {
		log.Printf("PREFS_OPEN_FAILED | dir=%s error=%v", dataDir, err)
	} else {
		app.Prefs = prefs
	}

	return app, nil
}

// Close releases the preferences database.
func (a *App) Close() error {
	if a.Prefs == nil {
		return nil
	}
	return a.Prefs.Close()
}

// Language resolves the UI language: --lang, then the stored preference,
// then the configured language.
func (a *App) Language() string {
	lang := i18n.DefaultLanguage
	if a.Config != nil {
		lang = i18n.Match(a.Config.UI.Language)
	}
	if a.Prefs != nil {
		lang = i18n.Match(a.Prefs.Language(lang))
	}
	if a.Args.Lang != "" {
		lang = i18n.Match(a.Args.Lang)
	}
	return lang
}

// Theme resolves the theme from the stored preference or the config.
func (a *App) Theme() *styles.Theme {
	mode := styles.ModeAuto
	if a.Config != nil {
		if m, err := styles.ParseMode(a.Config.UI.Theme); err == nil {
			mode = m
		}
	}
	if a.Prefs != nil {
		if m, err := styles.ParseMode(a.Prefs.Theme(string(mode))); err == nil {
			mode = m
		}
	}
	theme := styles.NewThemeForMode(mode)
	theme.ColorProfile = GetColorProfile(a.Stdout)
	if a.Config != nil && a.Config.UI.CodeHighlightStyle != "" && a.Config.UI.CodeHighlightStyle != styles.DarkSyntaxStyle {
		theme.SyntaxStyle = a.Config.UI.CodeHighlightStyle
	}
	return theme
}

// wrapWidth is the render width for output to Stdout.
func (a *App) wrapWidth() int {
	width := terminalWidth(a.Stdout)
	if a.Config != nil && a.Config.UI.WordWrap > 0 && a.Config.UI.WordWrap < width {
		width = a.Config.UI.WordWrap
	}
	return width
}

// TUILogName is the log file written while the TUI owns the terminal.
const TUILogName = "legalchat.log"

// StartTUILog sends the standard logger to TUILogName in the data
// directory. The alternate screen hides stderr, so on any failure logging
// is discarded instead. Close the returned closer on exit.
func (a *App) StartTUILog() io.Closer {
	f, err := a.openTUILog()
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	return f
}

func (a *App) openTUILog() (*os.File, error) {
	if a.Config == nil {
		return nil, fmt.Errorf("no configuration")
	}
	dataDir, err := a.Config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return tea.LogToFile(filepath.Join(dataDir, TUILogName), "")
}

// readInput returns the contents of path, or of Stdin when path is "" or "-".
func (a *App) readInput(path string) (string, error) {
	if path == "" || path == "-" {
		if a.Stdin == nil {
			return "", NewValidationError("input", "", "no file given and stdin is unavailable")
		}
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
