// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"log/slog"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/assistant/observability"
)

// Precondition error frames for the streaming endpoint. Each short-circuit
// produces exactly one terminal frame and nothing else.
const (
	streamEmptyMessage     = "Error: empty message"
	streamBackendDown      = "Error: Ollama not running. Start with 'ollama serve'."
	streamNoModelAvailable = "Error: No model available."
)

// =============================================================================
// Streaming Assistant
// =============================================================================

// HandleStream answers POST /api/ai-stream with an SSE stream.
//
// # Description
//
// The outbound stream is plain-text framed: `data: <chunk>\n\n` per
// content chunk, `data: [END]\n\n` on success, a free-text error frame on
// failure. Exactly one terminal frame is written per request; the writer
// enforces the guard even when emission and failure race.
//
// Preconditions (non-empty message, reachable backend, resolvable model)
// are checked before the upstream connection opens; each failure
// short-circuits to a single error frame. The upstream call runs on the
// request context, so a client disconnect cancels the upstream read and
// releases the backend connection.
func (h *AssistantHandler) HandleStream(c *gin.Context) {
	start := time.Now()
	endpoint := observability.EndpointStream
	requestID := uuid.NewString()

	ctx, span := h.tracer.Start(c.Request.Context(), "HandleStream")
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	// SSE headers go out before any frame.
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	writer, err := NewSSEWriter(c.Writer)
	if err != nil {
		span.SetStatus(codes.Error, "response writer not flushable")
		slog.Error("streaming unsupported by response writer",
			"error", err,
			"requestId", requestID,
		)
		c.String(http.StatusInternalServerError, "streaming unsupported")
		return
	}

	if m := observability.DefaultMetrics; m != nil {
		m.StreamStarted(endpoint)
		defer m.StreamEnded(endpoint)
	}

	success := false
	defer func() {
		if m := observability.DefaultMetrics; m != nil {
			m.RecordRequest(endpoint, success)
			m.RecordStreamDuration(endpoint, time.Since(start).Seconds(), success)
		}
	}()

	// Step 1: Parse request; an empty message is a terminal error frame,
	// not an HTTP error.
	var req datatypes.AssistantRequest
	_ = c.ShouldBindJSON(&req)
	message := strings.TrimSpace(req.Message)
	if message == "" {
		span.SetStatus(codes.Error, "empty message")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeValidation)
		}
		_ = writer.WriteError(streamEmptyMessage)
		return
	}

	// Step 2: Probe backend reachability.
	if !h.client.IsRunning(ctx) {
		span.SetStatus(codes.Error, "backend unreachable")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeBackend)
		}
		_ = writer.WriteError(streamBackendDown)
		return
	}

	// Step 3: Resolve the model before opening the stream.
	model := h.client.BestTextModel(ctx)
	if model == "" {
		span.SetStatus(codes.Error, "no text model")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeNoModel)
		}
		_ = writer.WriteError(streamNoModelAvailable)
		return
	}
	span.SetAttributes(attribute.String("ollama.model", model))

	// Step 4: Proxy the upstream stream, chunk by chunk.
	firstChunk := true
	chunks := 0
	streamErr := h.client.Stream(ctx, model, streamPrompt(message), func(fragment string) error {
		if firstChunk {
			firstChunk = false
			if m := observability.DefaultMetrics; m != nil {
				m.RecordTimeToFirstChunk(endpoint, time.Since(start).Seconds())
			}
		}
		chunks++
		return writer.WriteChunk(fragment)
	})
	span.SetAttributes(attribute.Int("stream.chunks", chunks))

	// Step 5: Exactly one terminal frame, chosen by the stream outcome.
	if streamErr == nil {
		success = true
		_ = writer.WriteEnd()
		slog.Info("stream completed",
			"requestId", requestID,
			"chunks", chunks,
			"durationMs", time.Since(start).Milliseconds(),
		)
		return
	}

	span.RecordError(streamErr)
	span.SetStatus(codes.Error, streamErr.Error())
	if c.Request.Context().Err() != nil {
		// Downstream went away; the terminal write below is best-effort
		// and will land on a dead connection.
		if m := observability.DefaultMetrics; m != nil {
			m.RecordClientDisconnect(endpoint)
		}
	} else if m := observability.DefaultMetrics; m != nil {
		m.RecordError(endpoint, errorCodeFor(streamErr))
	}
	slog.Error("stream failed",
		"error", streamErr,
		"requestId", requestID,
		"chunks", chunks,
	)
	_ = writer.WriteError(streamErrorMessage(streamErr))
}
