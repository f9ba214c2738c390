// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed messages kept by NewDefaultCache.
const DefaultCacheSize = 256

type cacheKey struct {
	text  string
	color string
}

// Cache memoizes Parse results keyed by input text and highlight color.
// The chat view re-renders every message on each frame, so without it the
// same response would be parsed many times per second.
//
// Cached block slices are shared between callers and must not be modified.
// Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, []Block]
}

// NewCache creates a cache holding at most size parsed messages.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("markdown cache size must be positive, got %d", size)
	}
	entries, err := lru.New[cacheKey, []Block](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// NewDefaultCache creates a cache with DefaultCacheSize entries.
func NewDefaultCache() *Cache {
	c, err := NewCache(DefaultCacheSize)
	if err != nil {
		// Unreachable: DefaultCacheSize is positive.
		panic(err)
	}
	return c
}

// Parse returns the cached result of Parse(text, codeHighlight), parsing and
// storing it on a miss. A nil Cache parses without memoizing.
func (c *Cache) Parse(text string, codeHighlight lipgloss.TerminalColor) []Block {
	if c == nil {
		return Parse(text, codeHighlight)
	}
	key := cacheKey{text: text, color: colorKey(codeHighlight)}
	if blocks, ok := c.entries.Get(key); ok {
		return blocks
	}
	blocks := Parse(text, codeHighlight)
	c.entries.Add(key, blocks)
	return blocks
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	if c != nil {
		c.entries.Purge()
	}
}

// colorKey gives a comparable identity to any TerminalColor implementation.
func colorKey(c lipgloss.TerminalColor) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%T:%+v", c, c)
}
