// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

// =============================================================================
// COMMAND DISPATCH
// =============================================================================

// Run executes a non-TUI command and returns the process exit code.
func Run(ctx context.Context, cmd Command, args Args) int {
	switch cmd {
	case CmdVersion:
		if args.JSON {
			_ = NewJSONResponse("version", VersionInfo()).Write(os.Stdout)
		} else {
			PrintVersion(os.Stdout)
		}
		return ExitSuccess
	case CmdHelp:
		PrintUsage(os.Stdout)
		return ExitSuccess
	case CmdTUI:
		fmt.Fprintln(os.Stderr, "the TUI is started by the main program")
		return ExitUsageError
	}

	app, err := OpenApp(args)
	if err != nil {
		DisplayError(os.Stderr, cmd.String(), err, false)
		return GetExitCode(err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("APP_CLOSE_FAILED | error=%v", err)
		}
	}()

	return app.Execute(ctx, cmd)
}

// Execute runs cmd against the app and returns the exit code. Errors are
// written to Stderr, or to Stdout as a JSON error response in JSON mode.
func (a *App) Execute(ctx context.Context, cmd Command) int {
	var err error
	switch cmd {
	case CmdAsk:
		err = a.Ask(ctx)
	case CmdChat:
		err = a.Chat(ctx)
	case CmdRender:
		err = a.Render()
	case CmdHistory:
		err = a.History()
	case CmdConfig:
		err = a.ConfigCmd()
	case CmdLawyer:
		err = a.Lawyer()
	default:
		err = NewValidationError("command", cmd.String(), "not runnable here")
	}

	if err != nil {
		log.Printf("COMMAND_FAILED | command=%s error=%v", cmd, err)
		var w io.Writer = a.Stderr
		if a.Args.JSON {
			w = a.Stdout
		}
		DisplayError(w, cmd.String(), err, a.Args.JSON)
	}
	return GetExitCode(err)
}

// VersionInfo returns build metadata for --json version output.
func VersionInfo() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
	}
}
