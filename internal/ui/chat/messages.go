// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/jeranaias/legalchat/internal/config"
)

// =============================================================================
// ASSISTANT MESSAGES
// =============================================================================

// AnswerMsg carries the result of one question. Seq ties it to the request
// that produced it; answers for a superseded request are dropped.
type AnswerMsg struct {
	Seq      int
	Content  string
	Duration time.Duration
	Err      error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent when the config file changes on disk. Err is
// set when the new file failed to load or validate.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportCompleteMsg reports where an export or share file was written.
type ExportCompleteMsg struct {
	Format string
	Path   string
	Err    error
}
