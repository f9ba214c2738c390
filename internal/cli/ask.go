// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// AskResult is the --json payload of the ask command.
type AskResult struct {
	ConversationID string `json:"conversation_id"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	DurationMs     int64  `json:"duration_ms"`
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// Ask sends a single question and prints the reply. The exchange is saved
// to history like a chat conversation.
func (a *App) Ask(ctx context.Context) error {
	question, err := a.question()
	if err != nil {
		return err
	}
	if a.Client == nil {
		return errors.New("assistant client is not configured")
	}

	lang := a.Language()
	conv := model.NewConversation(i18n.T(lang, i18n.KeyNewChat), lang)
	conv.AddUserMessage(question)

	if !a.Args.Quiet && !a.Args.JSON && isTerminal(a.Stderr) {
		fmt.Fprintln(a.Stderr, styles.RenderInfo(i18n.T(lang, i18n.KeyThinking)))
	}

	start := time.Now()
	reply, err := a.Client.Ask(ctx, question)
	elapsed := time.Since(start)
	if err != nil {
		conv.AddErrorMessage(i18n.Tf(lang, i18n.KeyErrorMessage, err))
		a.saveConversation(conv)
		return fmt.Errorf("ask failed: %w", err)
	}

	msg := conv.AddAssistantMessage(reply)
	msg.Duration = elapsed
	a.saveConversation(conv)

	if a.Args.JSON {
		return NewJSONResponse("ask", AskResult{
			ConversationID: conv.ID,
			Question:       question,
			Answer:         reply,
			DurationMs:     elapsed.Milliseconds(),
		}).Write(a.Stdout)
	}

	return a.displayResponse(reply)
}

// question assembles the question from arguments, --file and stdin.
func (a *App) question() (string, error) {
	query := strings.TrimSpace(a.Args.Query)

	if query == "-" {
		text, err := a.readInput("-")
		if err != nil {
			return "", err
		}
		query = strings.TrimSpace(text)
	}

	if a.Args.File != "" {
		content, err := a.readInput(a.Args.File)
		if err != nil {
			return "", err
		}
		content = strings.TrimSpace(content)
		if query == "" {
			query = content
		} else if content != "" {
			query += "\n\n" + content
		}
	}

	if query == "" {
		return "", NewValidationErrorWithExample("question", "", "question is empty",
			`legalchat ask "What is anticipatory bail?"`)
	}
	return query, nil
}

// displayResponse prints the reply. Formatting is applied only on a
// terminal; piped output and --raw get the text as received.
func (a *App) displayResponse(reply string) error {
	if a.Args.RawOutput || !isTerminal(a.Stdout) {
		fmt.Fprintln(a.Stdout, reply)
		return nil
	}

	ConfigureColor(a.Stdout)
	out, err := a.renderMarkdown(reply, a.Args.Engine)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Stdout, out)
	return nil
}

// saveConversation stores conv and records it as the last conversation.
// Failures are logged; the answer has already been received.
func (a *App) saveConversation(conv *model.Conversation) {
	if a.Store == nil {
		return
	}
	if err := a.Store.Save(conv); err != nil {
		log.Printf("CONVERSATION_SAVE_FAILED | id=%s error=%v", conv.ID, err)
		return
	}
	if a.Prefs != nil {
		if err := a.Prefs.SetLastConversation(conv.ID); err != nil {
			log.Printf("PREFS_WRITE_FAILED | key=last_conversation error=%v", err)
		}
	}
}
