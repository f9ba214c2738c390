// legalchat - terminal chat for general legal information.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/legalchat/internal/cli"
	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	if cmd == cli.CmdTUI {
		os.Exit(runTUI(args))
	}

	// Logs go to stderr only when asked for; command output owns stdout.
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if args.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	if cmd == cli.CmdAsk {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	code := cli.Run(ctx, cmd, args)
	if code != cli.ExitSuccess {
		os.Exit(code)
	}
}

// runTUI starts the chat interface and returns the exit code.
func runTUI(args cli.Args) int {
	app, err := cli.OpenApp(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.GetExitCode(err)
	}
	defer app.Close()

	logFile := app.StartTUILog()
	defer logFile.Close()
	log.Printf("TUI_START | version=%s", Version)

	m := chat.New(chat.Options{
		Client:   app.Client,
		Store:    app.Store,
		Prefs:    app.Prefs,
		Config:   app.Config,
		Language: args.Lang,
		Resume:   args.Resume,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.ConfigPath != "" {
		err := config.Watch(ctx, app.ConfigPath, func(cfg *config.Config, err error) {
			p.Send(chat.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", app.ConfigPath, err)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return cli.ExitGeneralError
	}
	log.Printf("TUI_EXIT | version=%s", Version)
	return cli.ExitSuccess
}
