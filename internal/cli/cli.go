// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdRender
	CmdHistory
	CmdConfig
	CmdLawyer
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdAsk:
		return "ask"
	case CmdChat:
		return "chat"
	case CmdRender:
		return "render"
	case CmdHistory:
		return "history"
	case CmdConfig:
		return "config"
	case CmdLawyer:
		return "lawyer"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Engines accepted by --engine.
const (
	EngineBuiltin = "builtin"
	EngineGlamour = "glamour"
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool   // Output in JSON format
	Lang    string // UI language override

	// Command-specific
	Query      string
	File       string
	ConfigKey  string
	ConfigVal  string
	Subcommand string
	Engine     string
	RawOutput  bool // ask: print the reply without rendering
	Blocks     bool // render: dump the parsed block structure
	Confirm    bool
	Resume     bool   // tui: reopen the last conversation
	Area       string // lawyer: area of law

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `legalchat - terminal chat for general legal information

Ask questions about Indian law and read the answers as formatted text.
Answers are general legal information, not legal advice.

Usage:
  legalchat                      Start the chat TUI (default)
  legalchat tui [--resume]       Start the chat TUI
  legalchat ask "question"       Ask a single question
  legalchat chat                 Line-based interactive chat
  legalchat render [FILE]        Render Markdown from FILE or stdin
  legalchat history [subcommand] Saved conversations
  legalchat config [subcommand]  Configuration
  legalchat lawyer CITY [AREA]   Search link for lawyers in CITY
  legalchat version              Show version information
  legalchat help                 Show this help

Ask Options:
  --raw               Print the reply without formatting
  --engine NAME       Renderer: builtin (default) or glamour
  -f, --file PATH     Append the contents of PATH to the question

Render Options:
  --blocks            Print the parsed block structure as JSON
  --engine NAME       Renderer: builtin (default) or glamour

Lawyer Options:
  --area NAME         Civil (default), Criminal, Family, Corporate, Tax,
                      Intellectual Property

History Commands:
  legalchat history list            List saved conversations
  legalchat history show N          Print conversation N (number or id prefix)
  legalchat history delete N        Delete conversation N
  legalchat history clear --confirm Delete all conversations
  legalchat history export N FORMAT Export conversation N (md, html, json, txt)

Config Commands:
  legalchat config show             Show the current configuration
  legalchat config get KEY          Print one value (e.g. ui.theme)
  legalchat config set KEY VALUE    Change one value
  legalchat config path             Print the config file location

Global Flags:
  -q, --quiet         Minimal output
  -v, --verbose       Debug logging to stderr
  --json              Output in JSON format
  --lang CODE         Interface language (en, hi, bn, gu, pa, kn, ml, or, ur, ta, te)

Examples:
  legalchat ask "What is anticipatory bail?"
  legalchat --lang hi ask "किरायेदार के अधिकार क्या हैं?"
  echo "**bold** and *italic*" | legalchat render
  legalchat render notes.md --blocks
  legalchat config set ui.theme light
  legalchat lawyer "New Delhi" Family

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "legalchat version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses command-line arguments and returns the command and args.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		parseTUIArgs(&parsedArgs, remaining)
		return CmdTUI, parsedArgs

	case "ask", "a":
		parseAskArgs(&parsedArgs, remaining)
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "render", "r":
		parseRenderArgs(&parsedArgs, remaining)
		return CmdRender, parsedArgs

	case "history", "hist":
		parseHistoryArgs(&parsedArgs, remaining)
		return CmdHistory, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "lawyer", "find-lawyer":
		parseLawyerArgs(&parsedArgs, remaining)
		return CmdLawyer, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Anything else is treated as a question.
		parseAskArgs(&parsedArgs, append([]string{cmd}, remaining...))
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--lang":
			if i+1 < len(args) {
				i++
				parsedArgs.Lang = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--lang=") {
				parsedArgs.Lang = strings.TrimPrefix(arg, "--lang=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}

// parseTUIArgs parses tui command specific arguments.
func parseTUIArgs(args *Args, remaining []string) {
	for _, arg := range remaining {
		if arg == "--resume" || arg == "-r" {
			args.Resume = true
		}
	}
}

// parseAskArgs parses ask command specific arguments. A lone "-" reads the
// question from stdin.
func parseAskArgs(args *Args, remaining []string) {
	var query []string

	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]

		switch arg {
		case "-f", "--file":
			if i+1 < len(remaining) {
				i++
				args.File = remaining[i]
			}
		case "--engine", "-e":
			if i+1 < len(remaining) {
				i++
				args.Engine = strings.ToLower(remaining[i])
			}
		case "--raw":
			args.RawOutput = true
		case "-":
			query = append(query, arg)
		default:
			switch {
			case strings.HasPrefix(arg, "--file="):
				args.File = strings.TrimPrefix(arg, "--file=")
			case strings.HasPrefix(arg, "--engine="):
				args.Engine = strings.ToLower(strings.TrimPrefix(arg, "--engine="))
			case !strings.HasPrefix(arg, "-"):
				query = append(query, arg)
			}
		}
	}

	args.Query = strings.Join(query, " ")
}

// parseRenderArgs parses render command specific arguments.
func parseRenderArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]

		switch arg {
		case "--blocks", "-b":
			args.Blocks = true
		case "--engine", "-e":
			if i+1 < len(remaining) {
				i++
				args.Engine = strings.ToLower(remaining[i])
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--engine="):
				args.Engine = strings.ToLower(strings.TrimPrefix(arg, "--engine="))
			case arg == "-" || !strings.HasPrefix(arg, "-"):
				if args.File == "" {
					args.File = arg
				}
			}
		}
	}
}

// parseHistoryArgs parses history command specific arguments.
func parseHistoryArgs(args *Args, remaining []string) {
	var positional []string
	for _, arg := range remaining {
		switch arg {
		case "--confirm", "-y", "--yes":
			args.Confirm = true
		default:
			positional = append(positional, arg)
		}
	}
	args.Subcommand = "list"
	if len(positional) > 0 {
		args.Subcommand = strings.ToLower(positional[0])
		args.Raw = positional[1:]
	} else {
		args.Raw = nil
	}
}

// parseLawyerArgs parses lawyer command specific arguments. Positional
// words form "CITY [AREA]".
func parseLawyerArgs(args *Args, remaining []string) {
	var words []string
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		switch {
		case arg == "--area" || arg == "-a":
			if i+1 < len(remaining) {
				i++
				args.Area = remaining[i]
			}
		case strings.HasPrefix(arg, "--area="):
			args.Area = strings.TrimPrefix(arg, "--area=")
		default:
			words = append(words, arg)
		}
	}
	args.Query = strings.Join(words, " ")
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	args.Subcommand = "show"
	if len(remaining) > 0 {
		args.Subcommand = strings.ToLower(remaining[0])
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = strings.Join(remaining[2:], " ")
		}
	}
}
