// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import "fmt"

// =============================================================================
// Error Taxonomy
// =============================================================================

// BackendErrorType categorizes backend failures so callers can branch on
// failure class without string matching.
type BackendErrorType string

const (
	// ErrorTypeNoModel means no suitable model is installed on the backend.
	ErrorTypeNoModel BackendErrorType = "no_model"

	// ErrorTypeUnreachable means the backend could not be reached at all
	// (connection refused, DNS failure, service down).
	ErrorTypeUnreachable BackendErrorType = "unreachable"

	// ErrorTypeTimeout means the backend was reached but did not answer
	// within the deadline. Kept distinct from generic transport failure so
	// operators can tell latency from outage.
	ErrorTypeTimeout BackendErrorType = "timeout"

	// ErrorTypeBadStatus means the backend answered with a non-200 status.
	ErrorTypeBadStatus BackendErrorType = "bad_status"

	// ErrorTypeMalformedPayload means the backend answered 200 with a body
	// that could not be decoded.
	ErrorTypeMalformedPayload BackendErrorType = "malformed_payload"

	// ErrorTypeTransport covers every other transport-level failure.
	ErrorTypeTransport BackendErrorType = "transport"
)

// BackendError is a categorized backend failure. Internal code passes these
// around as values; the handler boundary renders them to user-facing
// display strings and never lets one escape a request.
type BackendError struct {
	Type       BackendErrorType
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface with an operator-facing message.
// User-facing rendering happens separately at the handler boundary.
func (e *BackendError) Error() string {
	switch e.Type {
	case ErrorTypeBadStatus:
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
	case ErrorTypeNoModel:
		return "no suitable model installed"
	default:
		if e.Err != nil {
			return fmt.Sprintf("backend %s: %v", e.Type, e.Err)
		}
		return fmt.Sprintf("backend %s", e.Type)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// ErrType extracts the backend error category, or ErrorTypeTransport for
// non-categorized errors. A nil error has no category; callers must check
// for nil first.
func ErrType(err error) BackendErrorType {
	if be, ok := err.(*BackendError); ok {
		return be.Type
	}
	return ErrorTypeTransport
}
