// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Preference keys.
const (
	PrefTheme            = "theme"
	PrefLanguage         = "language"
	PrefLastConversation = "last_conversation"
)

const prefsSchema = `
CREATE TABLE IF NOT EXISTS prefs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// PrefsPath returns the preferences database path under a data directory.
func PrefsPath(dataDir string) string {
	return filepath.Join(dataDir, "prefs.db")
}

// =============================================================================
// PREFERENCES STORE
// =============================================================================

// Prefs is a small key-value store for user choices that outlive a session:
// theme, language and the last open conversation. It is backed by SQLite
// so concurrent legalchat processes do not clobber each other.
type Prefs struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// OpenPrefs opens (creating if needed) the preferences database at path.
func OpenPrefs(path string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := db.Exec(prefsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize preferences schema: %w", err)
	}

	return &Prefs{db: db}, nil
}

// Get returns the stored value for key, or def if it was never set.
func (p *Prefs) Get(key, def string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return def, ErrPrefsClosed
	}

	var value string
	err := p.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key.
func (p *Prefs) Set(key, value string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPrefsClosed
	}

	_, err := p.db.Exec(`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *Prefs) Delete(key string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPrefsClosed
	}

	if _, err := p.db.Exec("DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (p *Prefs) All() (map[string]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrPrefsClosed
	}

	rows, err := p.db.Query("SELECT key, value FROM prefs ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		all[k] = v
	}
	return all, rows.Err()
}

// Close releases the database. Further calls return ErrPrefsClosed.
func (p *Prefs) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}

// =============================================================================
// TYPED HELPERS
// =============================================================================

// Theme returns the saved theme, or def.
func (p *Prefs) Theme(def string) string {
	v, _ := p.Get(PrefTheme, def)
	return v
}

// SetTheme saves the theme.
func (p *Prefs) SetTheme(theme string) error {
	return p.Set(PrefTheme, theme)
}

// Language returns the saved UI language, or def.
func (p *Prefs) Language(def string) string {
	v, _ := p.Get(PrefLanguage, def)
	return v
}

// SetLanguage saves the UI language.
func (p *Prefs) SetLanguage(lang string) error {
	return p.Set(PrefLanguage, lang)
}

// LastConversation returns the ID of the conversation open at last exit.
func (p *Prefs) LastConversation() string {
	v, _ := p.Get(PrefLastConversation, "")
	return v
}

// SetLastConversation records the open conversation. An empty id clears it.
func (p *Prefs) SetLastConversation(id string) error {
	if id == "" {
		return p.Delete(PrefLastConversation)
	}
	return p.Set(PrefLastConversation, id)
}
