// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// =============================================================================
// ERRORS
// =============================================================================

// Sentinel errors. Use errors.Is to check for them.
var (
	ErrConversationNotFound = &StoreError{Message: "conversation not found"}
	ErrInvalidID            = &StoreError{Message: "invalid conversation id"}
	ErrAmbiguousID          = &StoreError{Message: "ambiguous conversation id"}
	ErrPrefsClosed          = &StoreError{Message: "preferences store is closed"}
)

// StoreError represents a storage error.
// It implements the error interface and can be compared using errors.Is.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing storage errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
