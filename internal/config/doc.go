// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for legalchat.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - AssistantConfig: endpoint, base prompt, timeout, retries, pacing
//   - UIConfig: theme, language, wrap width, code highlight style
//   - StorageConfig: data directory and history cap
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LEGALCHAT_*)
//   - ~/.legalchat/config.toml
//   - ~/.legalchat/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Printf("CONFIG_WARNING | error=%v", err)
//	}
//
//	_ = cfg.Set("ui.theme", "light")
//	_ = config.Save(cfg)
//
// Watch the active file and react to edits:
//
//	config.Watch(ctx, path, func(cfg *config.Config, err error) { ... })
package config
