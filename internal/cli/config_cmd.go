// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/legalchat/internal/config"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

// ConfigCmd dispatches the config subcommands.
func (a *App) ConfigCmd() error {
	switch a.Args.Subcommand {
	case "", "show":
		return a.configShow()
	case "get":
		return a.configGet()
	case "set":
		return a.configSet()
	case "path":
		return a.configPath()
	case "keys":
		return a.configKeys()
	default:
		return NewValidationErrorWithExample("config subcommand", a.Args.Subcommand,
			"expected show, get, set, path or keys", "legalchat config get ui.theme")
	}
}

// effective returns the loaded configuration, or defaults.
func (a *App) effective() *config.Config {
	if a.Config != nil {
		return a.Config
	}
	return config.Default()
}

func (a *App) configShow() error {
	cfg := a.effective()
	if a.Args.JSON {
		return NewJSONResponse("config show", cfg).Write(a.Stdout)
	}
	if err := toml.NewEncoder(a.Stdout).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func (a *App) configGet() error {
	if a.Args.ConfigKey == "" {
		return NewValidationErrorWithExample("key", "", "missing config key", "legalchat config get ui.theme")
	}
	value, err := a.effective().Get(a.Args.ConfigKey)
	if err != nil {
		return NewValidationError("key", a.Args.ConfigKey, err.Error())
	}
	if a.Args.JSON {
		return NewJSONResponse("config get", map[string]interface{}{
			"key":   a.Args.ConfigKey,
			"value": value,
		}).Write(a.Stdout)
	}
	fmt.Fprintf(a.Stdout, "%v\n", value)
	return nil
}

// configSet changes one key in the config file. The file is read without
// environment overrides so they are not written back.
func (a *App) configSet() error {
	key, value := a.Args.ConfigKey, a.Args.ConfigVal
	if key == "" || value == "" {
		return NewValidationErrorWithExample("arguments", strings.TrimSpace(key+" "+value),
			"config set needs a key and a value", "legalchat config set ui.theme light")
	}

	path, err := a.configFile()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if strings.HasSuffix(path, ".json") {
			err = config.LoadJSON(cfg, path)
		} else {
			err = config.LoadTOML(cfg, path)
		}
		if err != nil {
			return NewCommandError("config", "set", "could not read "+path, err)
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return NewValidationError("key", key, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveTo(cfg, path); err != nil {
		return NewCommandError("config", "set", "could not write "+path, err)
	}

	if a.Args.JSON {
		return NewJSONResponse("config set", map[string]string{"key": key, "value": value, "path": path}).Write(a.Stdout)
	}
	if !a.Args.Quiet {
		fmt.Fprintln(a.Stdout, styles.RenderSuccess(fmt.Sprintf("%s = %s", key, value)))
	}
	return nil
}

func (a *App) configPath() error {
	path, err := a.configFile()
	if err != nil {
		return err
	}
	if a.Args.JSON {
		return NewJSONResponse("config path", map[string]string{"path": path}).Write(a.Stdout)
	}
	fmt.Fprintln(a.Stdout, path)
	return nil
}

func (a *App) configKeys() error {
	keys := config.GetAllKeys()
	if a.Args.JSON {
		return NewJSONResponse("config keys", keys).Write(a.Stdout)
	}
	fmt.Fprintln(a.Stdout, strings.Join(keys, "\n"))
	return nil
}

// configFile returns the file config commands read and write.
func (a *App) configFile() (string, error) {
	if a.ConfigPath != "" {
		return a.ConfigPath, nil
	}
	path, err := config.ActivePath()
	if err != nil {
		return "", fmt.Errorf("could not locate the config file: %w", err)
	}
	return path, nil
}
