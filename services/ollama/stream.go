// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// =============================================================================
// Streaming Defaults
// =============================================================================

const (
	streamTimeout     = 120 * time.Second
	streamTemperature = 0.7

	// maxStreamLine bounds a single NDJSON line. 1 MiB is far beyond any
	// sane token fragment but keeps a misbehaving upstream from growing
	// the scanner buffer without limit.
	maxStreamLine = 1 << 20
)

// StreamHandler receives one content fragment per call, in upstream
// arrival order. Returning a non-nil error aborts the stream; the usual
// cause is the downstream consumer going away.
type StreamHandler func(fragment string) error

// =============================================================================
// Stream
// =============================================================================

// Stream proxies a streaming text completion, pushing content fragments to
// emit as they arrive.
//
// # Description
//
// The backend emits one JSON object per line. Each line is decoded and its
// fragment extracted by the ordered shape detectors; a line that fails to
// decode, or decodes to a shape carrying no text, is forwarded verbatim so
// lossy upstream formats never vanish silently. Extracted fragments that
// contain embedded newlines are split, one emit call per piece, because
// downstream framing carries one logical chunk per event.
//
// Emission is unbuffered: each fragment goes out as soon as its line is
// read, in arrival order. Cancelling ctx (including a downstream
// disconnect propagated through a request context) interrupts the body
// read and releases the upstream connection.
//
// # Inputs
//
//   - ctx: Caller context, typically the inbound request context so a
//     downstream disconnect tears down the upstream read. A 120 second
//     ceiling is layered on top.
//   - model: Resolved model name. Callers check model availability as a
//     precondition; Stream does not re-resolve.
//   - prompt: Fully assembled prompt text.
//   - emit: Fragment sink.
//
// # Outputs
//
//   - error: nil on clean upstream end-of-stream. A *BackendError for
//     backend failures, or the emit callback's own error when it aborted
//     the stream. The caller owns terminal-marker emission and must send
//     exactly one marker based on this result.
func (c *Client) Stream(ctx context.Context, model, prompt string, emit StreamHandler) error {
	ctx, span := tracer.Start(ctx, "ollama.Stream")
	defer span.End()
	span.SetAttributes(
		attribute.String("ollama.model", model),
		attribute.Int("ollama.prompt_length", len(prompt)),
	)

	payload, err := json.Marshal(generateRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  true,
		Options: generateOptions{Temperature: streamTemperature},
	})
	if err != nil {
		return &BackendError{Type: ErrorTypeTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return &BackendError{Type: ErrorTypeTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		berr := classifyTransport(err)
		span.RecordError(berr)
		span.SetStatus(codes.Error, berr.Error())
		return berr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		berr := &BackendError{Type: ErrorTypeBadStatus, StatusCode: resp.StatusCode}
		span.SetStatus(codes.Error, berr.Error())
		return berr
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := emitLine(line, emit); err != nil {
			span.SetStatus(codes.Error, "emit aborted")
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		// Prefer the context's verdict: deadline expiry and downstream
		// cancellation both surface here as read errors on the body.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		berr := classifyTransport(err)
		span.RecordError(berr)
		span.SetStatus(codes.Error, berr.Error())
		return berr
	}
	return nil
}

// emitLine decodes one NDJSON line and forwards its content. Undecodable
// lines and recognized-but-empty shapes pass through as the raw line.
func emitLine(line string, emit StreamHandler) error {
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return emit(line)
	}
	text, _ := extractText(streamShapes, payload)
	if text == "" {
		return emit(line)
	}
	for _, fragment := range strings.Split(text, "\n") {
		if err := emit(fragment); err != nil {
			return err
		}
	}
	return nil
}
