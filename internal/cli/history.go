// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jeranaias/legalchat/internal/export"
	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/storage"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// errNoStore is returned when history commands run without a store.
var errNoStore = errors.New("conversation history is not available")

// =============================================================================
// HISTORY COMMAND
// =============================================================================

// History dispatches the history subcommands.
func (a *App) History() error {
	if a.Store == nil {
		return errNoStore
	}

	switch a.Args.Subcommand {
	case "", "list", "ls":
		return a.historyList()
	case "show", "view":
		return a.historyShow()
	case "delete", "rm", "del":
		return a.historyDelete()
	case "clear":
		return a.historyClear()
	case "search", "find":
		return a.historySearch()
	case "export":
		return a.historyExport()
	default:
		return NewValidationErrorWithExample("history subcommand", a.Args.Subcommand,
			"expected list, show, delete, clear, search or export", "legalchat history show 1")
	}
}

// ref returns the first positional argument or a usage error.
func (a *App) ref(action string) (string, error) {
	if len(a.Args.Raw) == 0 {
		return "", NewValidationErrorWithExample("conversation", "", "missing conversation number or id",
			"legalchat history "+action+" 1")
	}
	return a.Args.Raw[0], nil
}

func (a *App) historyList() error {
	metas, err := a.Store.List()
	if err != nil {
		return NewCommandError("history", "list", "could not read conversations", err)
	}
	return a.printMetas("history list", metas)
}

func (a *App) historySearch() error {
	query := strings.Join(a.Args.Raw, " ")
	metas, err := a.Store.Search(query)
	if err != nil {
		return NewCommandError("history", "search", "could not read conversations", err)
	}
	return a.printMetas("history search", metas)
}

func (a *App) printMetas(command string, metas []model.ConversationMeta) error {
	if a.Args.JSON {
		if metas == nil {
			metas = []model.ConversationMeta{}
		}
		return NewJSONResponse(command, metas).Write(a.Stdout)
	}
	fmt.Fprint(a.Stdout, storage.FormatList(metas, i18n.T(a.Language(), i18n.KeyNoHistory)+"\n"))
	return nil
}

func (a *App) historyShow() error {
	ref, err := a.ref("show")
	if err != nil {
		return err
	}
	conv, err := a.Store.Resolve(ref)
	if err != nil {
		return err
	}

	if a.Args.JSON {
		return NewJSONResponse("history show", conv).Write(a.Stdout)
	}

	ConfigureColor(a.Stdout)
	theme := a.Theme()
	fmt.Fprintln(a.Stdout, theme.HeaderTitle.Render(conv.GetTitle()))
	fmt.Fprintln(a.Stdout, theme.Muted.Render(conv.UpdatedAt.Format("2006-01-02 15:04")))
	fmt.Fprintln(a.Stdout)

	for _, msg := range conv.Messages {
		fmt.Fprintln(a.Stdout, theme.Muted.Render(msg.Role.DisplayName()+":"))
		if msg.Role == model.RoleAssistant && !msg.IsError && isTerminal(a.Stdout) {
			out, err := a.renderMarkdown(msg.Content, a.Args.Engine)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.Stdout, out)
		} else {
			fmt.Fprintln(a.Stdout, msg.Content)
		}
		fmt.Fprintln(a.Stdout)
	}
	return nil
}

func (a *App) historyDelete() error {
	ref, err := a.ref("delete")
	if err != nil {
		return err
	}
	conv, err := a.Store.Resolve(ref)
	if err != nil {
		return err
	}
	if err := a.Store.Delete(conv.ID); err != nil {
		return NewCommandError("history", "delete", conv.ID, err)
	}
	if a.Prefs != nil && a.Prefs.LastConversation() == conv.ID {
		if err := a.Prefs.Delete(storage.PrefLastConversation); err != nil {
			log.Printf("PREFS_WRITE_FAILED | key=last_conversation error=%v", err)
		}
	}

	if a.Args.JSON {
		return NewJSONResponse("history delete", map[string]string{"id": conv.ID, "title": conv.GetTitle()}).Write(a.Stdout)
	}
	if !a.Args.Quiet {
		fmt.Fprintln(a.Stdout, styles.RenderSuccess("Deleted "+conv.GetTitle()))
	}
	return nil
}

func (a *App) historyClear() error {
	if !a.Args.Confirm {
		return NewValidationErrorWithExample("history clear", "", "refusing to delete all conversations without --confirm",
			"legalchat history clear --confirm")
	}
	removed, err := a.Store.Clear()
	if err != nil {
		return NewCommandError("history", "clear", "could not delete conversations", err)
	}
	if a.Prefs != nil {
		if err := a.Prefs.Delete(storage.PrefLastConversation); err != nil {
			log.Printf("PREFS_WRITE_FAILED | key=last_conversation error=%v", err)
		}
	}

	if a.Args.JSON {
		return NewJSONResponse("history clear", map[string]int{"removed": removed}).Write(a.Stdout)
	}
	if !a.Args.Quiet {
		fmt.Fprintln(a.Stdout, styles.RenderSuccess(fmt.Sprintf("Deleted %d conversation(s)", removed)))
	}
	return nil
}

func (a *App) historyExport() error {
	ref, err := a.ref("export")
	if err != nil {
		return err
	}
	format := "md"
	if len(a.Args.Raw) > 1 {
		format = strings.ToLower(a.Args.Raw[1])
	}

	conv, err := a.Store.Resolve(ref)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.OutputDir = "."
	if a.Theme().IsDark {
		opts.Theme = "dark"
	} else {
		opts.Theme = "light"
	}

	exporter, err := export.NewExporter(format, opts)
	if err != nil {
		return NewValidationErrorWithExample("format", format, "unsupported export format",
			"legalchat history export 1 html")
	}
	path, err := export.ExportToFile(conv, exporter, opts)
	if err != nil {
		return NewCommandError("history", "export", format, err)
	}

	if a.Args.JSON {
		return NewJSONResponse("history export", map[string]string{"path": path, "format": format}).Write(a.Stdout)
	}
	fmt.Fprintln(a.Stdout, path)
	return nil
}
