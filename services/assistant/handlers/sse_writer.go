// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"fmt"
	"net/http"
	"sync"
)

// =============================================================================
// Interface Definition
// =============================================================================

// SSEWriter writes the plain-text event stream of the answer endpoint.
//
// # Description
//
// The wire format is deliberately minimal: every unit is one
// `data: <text>\n\n` frame. Successful streams end with the literal
// `data: [END]\n\n` frame; failed streams end with a free-text error
// frame whose text begins with "Error". There is no JSON envelope and no
// event-type line; browser EventSource clients consume the data lines
// directly.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use. The terminal guard is
// part of the contract: after WriteEnd or WriteError has succeeded once,
// every further write is a silent no-op, so a stream can never carry two
// terminal markers regardless of caller races.
//
// # Assumptions
//
//   - Caller has set Content-Type: text/event-stream before writing
type SSEWriter interface {
	// WriteChunk writes one content frame and flushes it immediately.
	// Chunk text must not contain newlines; callers split multi-line
	// content into one chunk per line.
	WriteChunk(text string) error

	// WriteEnd writes the terminal success marker. At most one terminal
	// frame is ever written; later calls are no-ops.
	WriteEnd() error

	// WriteError writes a terminal failure frame with a user-safe
	// message. At most one terminal frame is ever written; later calls
	// are no-ops.
	WriteError(message string) error
}

// =============================================================================
// Struct Definition
// =============================================================================

// sseWriter implements SSEWriter over an http.ResponseWriter.
//
// # Fields
//
//   - writer: Underlying http.ResponseWriter
//   - flusher: http.Flusher for immediate delivery of each frame
//   - mu: Serializes writes and protects the terminal flag
//   - terminated: Set once a terminal frame has been written
type sseWriter struct {
	writer     http.ResponseWriter
	flusher    http.Flusher
	mu         sync.Mutex
	terminated bool
}

var _ SSEWriter = (*sseWriter)(nil)

// endMarker is the terminal success frame payload.
const endMarker = "[END]"

// =============================================================================
// Constructor
// =============================================================================

// NewSSEWriter creates an SSEWriter over w. The ResponseWriter must
// implement http.Flusher; unbuffered delivery is part of the streaming
// contract, so a non-flushable writer is a configuration error.
func NewSSEWriter(w http.ResponseWriter) (SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support flushing")
	}
	return &sseWriter{writer: w, flusher: flusher}, nil
}

// =============================================================================
// Methods
// =============================================================================

// WriteChunk writes one content frame. Writes after a terminal frame are
// dropped silently.
func (s *sseWriter) WriteChunk(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminated {
		return nil
	}
	return s.writeFrame(text)
}

// WriteEnd writes the [END] terminal frame, at most once.
func (s *sseWriter) WriteEnd() error {
	return s.writeTerminal(endMarker)
}

// WriteError writes a terminal error frame, at most once.
func (s *sseWriter) WriteError(message string) error {
	return s.writeTerminal(message)
}

// writeTerminal writes a frame and latches the terminal flag. The flag is
// set before the write so a failed write still counts as terminated: a
// broken connection must not invite a second terminal frame.
func (s *sseWriter) writeTerminal(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminated {
		return nil
	}
	s.terminated = true
	return s.writeFrame(text)
}

// writeFrame writes one `data:` frame and flushes. Callers hold s.mu.
func (s *sseWriter) writeFrame(text string) error {
	if _, err := fmt.Fprintf(s.writer, "data: %s\n\n", text); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
