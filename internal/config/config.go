// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/legalchat/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete legalchat configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Assistant endpoint and request behavior
	Assistant AssistantConfig `toml:"assistant" json:"assistant"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Conversation storage
	Storage StorageConfig `toml:"storage" json:"storage"`
}

// AssistantConfig controls how questions reach the text-generation endpoint.
type AssistantConfig struct {
	// Endpoint is the base URL; the prompt is appended as a path segment.
	Endpoint string `toml:"endpoint" json:"endpoint"`
	// BasePrompt is prepended to every question.
	BasePrompt string `toml:"base_prompt" json:"base_prompt"`
	// TimeoutSecs bounds a single HTTP attempt.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// MaxRetries is the number of extra attempts after a transient failure.
	MaxRetries int `toml:"max_retries" json:"max_retries"`
	// RequestsPerMinute paces outgoing requests. 0 disables pacing.
	RequestsPerMinute int `toml:"requests_per_minute" json:"requests_per_minute"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
	// Language is the UI language code, e.g. "en" or "hi"
	Language string `toml:"language" json:"language"`
	// WordWrap is the maximum rendered width of a message body
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
	// ShowTimestamps shows message times in the chat view
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// CodeHighlightStyle is the chroma style name for fenced code
	CodeHighlightStyle string `toml:"code_highlight_style" json:"code_highlight_style"`
}

// StorageConfig controls where conversations and preferences live.
type StorageConfig struct {
	// Dir holds conversations/, prefs.db and the log file. Empty means ConfigDir().
	Dir string `toml:"dir" json:"dir"`
	// MaxConversations caps the saved history; oldest are pruned first.
	MaxConversations int `toml:"max_conversations" json:"max_conversations"`
}

// DefaultBasePrompt frames every question as a request for general legal
// information under Indian law.
const DefaultBasePrompt = "I need legal advice regarding a personal issue. " +
	"Please act as a knowledgeable legal assistant specializing in Indian law and the Indian Constitution. " +
	"Do not provide a definitive legal opinion, but rather explain the relevant legal principles, " +
	"key points to consider, and suggest the typical next steps. " +
	"Explain the relevant legal context, including applicable Acts, Sections, and landmark court judgments, " +
	"while also highlighting important considerations and potential challenges. " +
	"Remember, this is for informational purposes only and is not a substitute for advice from a qualified lawyer. " +
	"Here is my situation:"

// Valid option values.
var (
	ValidThemes = []string{"auto", "dark", "light"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Assistant: AssistantConfig{
			Endpoint:          "https://text.pollinations.ai",
			BasePrompt:        DefaultBasePrompt,
			TimeoutSecs:       60,
			MaxRetries:        2,
			RequestsPerMinute: 20,
		},

		UI: UIConfig{
			Theme:              "auto",
			Language:           "en",
			WordWrap:           100,
			ShowTimestamps:     true,
			CodeHighlightStyle: "monokai",
		},

		Storage: StorageConfig{
			Dir:              "",
			MaxConversations: 100,
		},
	}
}

// Timeout returns the per-attempt request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Assistant.TimeoutSecs) * time.Second
}

// DataDir returns the storage directory, resolving the empty default.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return expandHome(c.Storage.Dir)
	}
	return ConfigDir()
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the legalchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".legalchat"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ActivePath returns the config file Load would read: the TOML file if it
// exists, else the JSON file if it exists, else the TOML path.
func ActivePath() (string, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
//
// A file that fails to decode does not abort startup: defaults are returned
// together with the decode error so the caller can warn.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg, err := LoadFromPath(tomlPath)
			if err == nil {
				return cfg, nil
			}
			loadErr = err
		}
	}

	if loadErr == nil {
		if jsonPath, err := ConfigPathJSON(); err == nil {
			if _, statErr := os.Stat(jsonPath); statErr == nil {
				cfg, err := LoadFromPath(jsonPath)
				if err == nil {
					return cfg, nil
				}
				loadErr = err
			}
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Missing keys keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func finalize(cfg *Config) error {
	if err := cfg.Migrate(); err != nil {
		return fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf strings.Builder
	buf.WriteString("# legalchat configuration file\n")
	buf.WriteString("# Generated by legalchat - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveTo writes cfg in the format implied by the path's extension.
func SaveTo(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Assistant
	u, err := url.Parse(c.Assistant.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "assistant.endpoint",
			Message: fmt.Sprintf("invalid URL '%s', must be an http(s) URL with a host", c.Assistant.Endpoint),
		})
	}
	if c.Assistant.TimeoutSecs < 1 || c.Assistant.TimeoutSecs > 600 {
		errs = append(errs, ValidationError{
			Field:   "assistant.timeout_secs",
			Message: fmt.Sprintf("must be between 1 and 600, got %d", c.Assistant.TimeoutSecs),
		})
	}
	if c.Assistant.MaxRetries < 0 || c.Assistant.MaxRetries > 10 {
		errs = append(errs, ValidationError{
			Field:   "assistant.max_retries",
			Message: fmt.Sprintf("must be between 0 and 10, got %d", c.Assistant.MaxRetries),
		})
	}
	if c.Assistant.RequestsPerMinute < 0 {
		errs = append(errs, ValidationError{
			Field:   "assistant.requests_per_minute",
			Message: fmt.Sprintf("must not be negative, got %d", c.Assistant.RequestsPerMinute),
		})
	}

	// UI
	if !contains(ValidThemes, c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", c.UI.Theme, strings.Join(ValidThemes, ", ")),
		})
	}
	if c.UI.WordWrap < 20 || c.UI.WordWrap > 1000 {
		errs = append(errs, ValidationError{
			Field:   "ui.word_wrap",
			Message: fmt.Sprintf("must be between 20 and 1000, got %d", c.UI.WordWrap),
		})
	}
	if c.UI.Language == "" {
		errs = append(errs, ValidationError{Field: "ui.language", Message: "must not be empty"})
	}

	// Storage
	if c.Storage.MaxConversations < 1 {
		errs = append(errs, ValidationError{
			Field:   "storage.max_conversations",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Storage.MaxConversations),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values left by a sparse config file.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Assistant.Endpoint == "" {
		c.Assistant.Endpoint = defaults.Assistant.Endpoint
	}
	if c.Assistant.BasePrompt == "" {
		c.Assistant.BasePrompt = defaults.Assistant.BasePrompt
	}
	if c.Assistant.TimeoutSecs == 0 {
		c.Assistant.TimeoutSecs = defaults.Assistant.TimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.Language == "" {
		c.UI.Language = defaults.UI.Language
	}
	if c.UI.WordWrap == 0 {
		c.UI.WordWrap = defaults.UI.WordWrap
	}
	if c.UI.CodeHighlightStyle == "" {
		c.UI.CodeHighlightStyle = defaults.UI.CodeHighlightStyle
	}
	if c.Storage.MaxConversations == 0 {
		c.Storage.MaxConversations = defaults.Storage.MaxConversations
	}
}

// Migrate normalizes values written by older versions.
func (c *Config) Migrate() error {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "system" {
		c.UI.Theme = "auto"
	}

	// Locale tags were once stored as "hi_IN"; the UI wants the base code.
	lang := strings.ToLower(strings.TrimSpace(c.UI.Language))
	if i := strings.IndexAny(lang, "_-"); i > 0 {
		lang = lang[:i]
	}
	c.UI.Language = lang

	c.Assistant.Endpoint = strings.TrimRight(strings.TrimSpace(c.Assistant.Endpoint), "/")
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LEGALCHAT_ENDPOINT: overrides assistant.endpoint
//   - LEGALCHAT_THEME: overrides ui.theme
//   - LEGALCHAT_LANG: overrides ui.language
//   - LEGALCHAT_DIR: overrides storage.dir
func (c *Config) ApplyEnvOverrides() {
	if endpoint := os.Getenv("LEGALCHAT_ENDPOINT"); endpoint != "" {
		c.Assistant.Endpoint = endpoint
	}
	if theme := os.Getenv("LEGALCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if lang := os.Getenv("LEGALCHAT_LANG"); lang != "" {
		c.UI.Language = lang
	}
	if dir := os.Getenv("LEGALCHAT_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if field.Kind() == reflect.Struct {
		return fmt.Errorf("cannot set section '%s'", key)
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a section", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				switch strings.ToLower(strVal) {
				case "yes", "on":
					boolVal = true
				case "no", "off":
					boolVal = false
				default:
					return fmt.Errorf("invalid boolean value: %q", strVal)
				}
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && field.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation, sorted.
func GetAllKeys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Config{}), "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("toml"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, prefix+name+".", keys)
			continue
		}
		*keys = append(*keys, prefix+name)
	}
}

// Clone returns a copy of the config. Config holds only value fields.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the config as indented JSON for display.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
