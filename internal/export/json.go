// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"github.com/jeranaias/legalchat/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports the complete conversation in the same shape the
// conversation store writes, so an export can be copied back into the
// store directory.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a conversation to JSON format.
func (e *JSONExporter) Export(conv *model.Conversation) ([]byte, error) {
	if err := checkConversation(conv); err != nil {
		return nil, err
	}
	return json.MarshalIndent(conv, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}

// =============================================================================
// SHARE EXPORTER
// =============================================================================

// ShareExporter writes the plain "You: ... / AI: ..." transcript used for
// sharing a conversation by message or mail.
type ShareExporter struct{}

// NewShareExporter creates a new share-text exporter.
func NewShareExporter() *ShareExporter {
	return &ShareExporter{}
}

// Export returns the conversation's share text.
func (e *ShareExporter) Export(conv *model.Conversation) ([]byte, error) {
	if err := checkConversation(conv); err != nil {
		return nil, err
	}
	return []byte(conv.ShareText() + "\n"), nil
}

// FileExtension returns the file extension for plain text.
func (e *ShareExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *ShareExporter) MimeType() string {
	return "text/plain"
}
