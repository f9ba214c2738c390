// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/legalchat/internal/model"
	"github.com/jeranaias/legalchat/internal/util"
)

// DefaultMaxConversations is the history cap used when none is configured.
const DefaultMaxConversations = 100

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// ConversationStore persists conversations as one JSON file each.
type ConversationStore struct {
	// BaseDir is the directory for storing conversations
	// Default: ~/.legalchat/conversations/
	BaseDir string

	// MaxConversations limits stored conversations (0 = unlimited)
	MaxConversations int

	mu sync.Mutex
}

// ConversationsDir returns the conversation directory under a data directory.
func ConversationsDir(dataDir string) string {
	return filepath.Join(dataDir, "conversations")
}

// NewConversationStore creates a store in dir, creating it if needed.
func NewConversationStore(dir string, maxConversations int) (*ConversationStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create conversation directory: %w", err)
	}
	return &ConversationStore{
		BaseDir:          dir,
		MaxConversations: maxConversations,
	}, nil
}

// NewConversationStoreWithDir creates a store with the default history cap.
func NewConversationStoreWithDir(dir string) (*ConversationStore, error) {
	return NewConversationStore(dir, DefaultMaxConversations)
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save persists a conversation, replacing any earlier version.
// Conversations without messages are not written.
func (s *ConversationStore) Save(conv *model.Conversation) error {
	if conv == nil || conv.IsEmpty() {
		return nil
	}
	if !validID(conv.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, conv.ID)
	}
	if conv.UpdatedAt.IsZero() {
		conv.UpdatedAt = time.Now()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = conv.UpdatedAt
	}

	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(s.filePath(conv.ID), data, 0600); err != nil {
		return fmt.Errorf("failed to save conversation %s: %w", conv.ID, err)
	}

	if s.MaxConversations > 0 {
		s.enforceLimit()
	}
	return nil
}

// enforceLimit removes oldest conversations if over limit. Caller holds s.mu.
func (s *ConversationStore) enforceLimit() {
	metas, err := s.list()
	if err != nil || len(metas) <= s.MaxConversations {
		return
	}

	// list is newest first
	for _, meta := range metas[s.MaxConversations:] {
		os.Remove(s.filePath(meta.ID))
	}
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load retrieves a conversation by ID.
func (s *ConversationStore) Load(id string) (*model.Conversation, error) {
	if !validID(id) {
		return nil, ErrConversationNotFound
	}

	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to read conversation %s: %w", id, err)
	}

	var conv model.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversation %s: %w", id, err)
	}
	return &conv, nil
}

// LoadByIndex loads a conversation by its index in the list (0 = most recent).
func (s *ConversationStore) LoadByIndex(index int) (*model.Conversation, error) {
	metas, err := s.List()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(metas) {
		return nil, ErrConversationNotFound
	}
	return s.Load(metas[index].ID)
}

// Resolve finds a conversation by full ID, unique ID prefix, or 1-based
// list position as shown by FormatList.
func (s *ConversationStore) Resolve(ref string) (*model.Conversation, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		return s.LoadByIndex(n - 1)
	}

	metas, err := s.List()
	if err != nil {
		return nil, err
	}
	var match string
	for _, meta := range metas {
		if meta.ID == ref {
			return s.Load(ref)
		}
		if ref != "" && strings.HasPrefix(meta.ID, ref) {
			if match != "" {
				return nil, fmt.Errorf("%w: %q matches more than one conversation", ErrAmbiguousID, ref)
			}
			match = meta.ID
		}
	}
	if match == "" {
		return nil, ErrConversationNotFound
	}
	return s.Load(match)
}

// =============================================================================
// LIST OPERATIONS
// =============================================================================

// List returns all saved conversations (most recent first).
// Unreadable files are skipped.
func (s *ConversationStore) List() ([]model.ConversationMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list()
}

func (s *ConversationStore) list() ([]model.ConversationMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.ConversationMeta{}, nil
		}
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	metas := make([]model.ConversationMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		conv, err := s.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		metas = append(metas, conv.GetMeta())
	}

	sort.Slice(metas, func(i, j int) bool {
		if metas[i].UpdatedAt.Equal(metas[j].UpdatedAt) {
			return metas[i].ID < metas[j].ID
		}
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
	return metas, nil
}

// Search finds conversations whose title or any message contains query,
// case-insensitively. An empty query matches everything.
func (s *ConversationStore) Search(query string) ([]model.ConversationMeta, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	var results []model.ConversationMeta
	for _, meta := range all {
		if strings.Contains(strings.ToLower(meta.Title), query) {
			results = append(results, meta)
			continue
		}
		conv, err := s.Load(meta.ID)
		if err != nil {
			continue
		}
		for _, msg := range conv.Messages {
			if strings.Contains(strings.ToLower(msg.Content), query) {
				results = append(results, meta)
				break
			}
		}
	}
	return results, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a conversation by ID.
func (s *ConversationStore) Delete(id string) error {
	if !validID(id) {
		return ErrConversationNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("failed to delete conversation %s: %w", id, err)
	}
	return nil
}

// Clear removes all saved conversations and returns how many were removed.
func (s *ConversationStore) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list conversations: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.BaseDir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// filePath returns the file path for a conversation ID.
func (s *ConversationStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// validID rejects IDs that could escape BaseDir.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\:`)
}

// =============================================================================
// LIST FORMATTING
// =============================================================================

// FormatList formats conversations as a numbered table for terminal output.
// emptyText is returned when there is nothing to list.
func FormatList(metas []model.ConversationMeta, emptyText string) string {
	if len(metas) == 0 {
		return emptyText
	}

	var sb strings.Builder
	sb.WriteString(util.PadDisplay("#", 4) + util.PadDisplay("ID", 10) + util.PadDisplay("Updated", 18) +
		util.PadDisplay("Msgs", 6) + "Title\n")

	for i, m := range metas {
		id := m.ID
		if len(id) > 8 {
			id = id[:8]
		}
		sb.WriteString(util.PadDisplay(strconv.Itoa(i+1), 4) +
			util.PadDisplay(id, 10) +
			util.PadDisplay(m.UpdatedAt.Format("2006-01-02 15:04"), 18) +
			util.PadDisplay(strconv.Itoa(m.MessageCount), 6) +
			util.TruncateDisplay(m.Title, 48) + "\n")
	}
	return sb.String()
}
