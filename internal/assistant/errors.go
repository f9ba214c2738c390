// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"errors"
	"strconv"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the assistant client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *ClientError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg += " (HTTP " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches any ClientError of the same Type, so errors.Is(err, ErrTimeout)
// holds for every timeout regardless of message or cause.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	return ok && t.Type == e.Type
}

// Retryable reports whether another attempt could succeed.
func (e *ClientError) Retryable() bool {
	switch e.Type {
	case ErrTypeTimeout, ErrTypeUnavailable, ErrTypeRateLimited:
		return true
	}
	return false
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeInvalidRequest
	ErrTypeTimeout
	ErrTypeUnavailable
	ErrTypeRateLimited
	ErrTypeRejected
	ErrTypeEmptyResponse
	ErrTypeCanceled
)

// String returns a short name for logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidRequest:
		return "invalid_request"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeUnavailable:
		return "unavailable"
	case ErrTypeRateLimited:
		return "rate_limited"
	case ErrTypeRejected:
		return "rejected"
	case ErrTypeEmptyResponse:
		return "empty_response"
	case ErrTypeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Sentinel errors for easy checking.
var (
	ErrEmptyQuestion = &ClientError{Type: ErrTypeInvalidRequest, Message: "question is empty"}
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnavailable   = &ClientError{Type: ErrTypeUnavailable, Message: "assistant service unavailable"}
	ErrRateLimited   = &ClientError{Type: ErrTypeRateLimited, Message: "rate limited by assistant service"}
	ErrRejected      = &ClientError{Type: ErrTypeRejected, Message: "request rejected"}
	ErrEmptyResponse = &ClientError{Type: ErrTypeEmptyResponse, Message: "assistant returned an empty response"}
	ErrCanceled      = &ClientError{Type: ErrTypeCanceled, Message: "request canceled"}
)

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error came from a cancelled request.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsUnavailable checks if the service could not be reached or failed.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
