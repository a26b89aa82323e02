// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the HTTP surface of the assistant service:
// the question answering endpoints (single-shot, SSE streaming, vision),
// the backend status probe, and the catalogue endpoints.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"log/slog"

	"github.com/khemetlabs/khemet/services/assistant/catalog"
	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/assistant/observability"
	"github.com/khemetlabs/khemet/services/ollama"
)

// =============================================================================
// Handler Definition
// =============================================================================

// AssistantHandler serves the question answering endpoints. One instance
// is shared by all requests; it holds only immutable references (the
// backend client owns the single piece of shared mutable state, its model
// cache).
//
// # Fields
//
//   - client: Inference backend client, shared for its model cache.
//   - entries: The artifact catalogue, read-only.
//   - tracer: Package tracer for handler spans.
type AssistantHandler struct {
	client  *ollama.Client
	entries []datatypes.Artifact
	tracer  trace.Tracer
}

// NewAssistantHandler creates the handler over a backend client and a
// catalogue.
func NewAssistantHandler(client *ollama.Client, entries []datatypes.Artifact) *AssistantHandler {
	return &AssistantHandler{
		client:  client,
		entries: entries,
		tracer:  otel.Tracer("khemet/services/assistant/handlers"),
	}
}

// emptyMessageReply answers requests that carry no question.
const emptyMessageReply = "Please send a question."

// datasetMatchHeader introduces the appended catalogue summary when the
// matcher recognizes an artifact in a model answer.
const datasetMatchHeader = "\n\n🎯 POSSIBLE DATASET MATCH:\n"

// =============================================================================
// Non-Streaming Assistant
// =============================================================================

// HandleAssistant answers POST /api/ai-assistant.
//
// # Description
//
// Always responds HTTP 200 with {"response", "source"}; failures surface
// through the source tag, never through status codes, so the frontend has
// a single rendering path. Resolution order:
//
//  1. Empty message: fixed reply, source "none".
//  2. Dataset resolver: catalogue card or greeting, source "dataset" or
//     "fallback".
//  3. Backend unreachable: canned notice, source "error", no model call.
//  4. Model completion, with a catalogue match appended when the answer
//     mentions a known artifact: source "ollama", or "error" when the
//     call failed.
func (h *AssistantHandler) HandleAssistant(c *gin.Context) {
	start := time.Now()
	endpoint := observability.EndpointAssistant
	requestID := uuid.NewString()

	ctx, span := h.tracer.Start(c.Request.Context(), "HandleAssistant")
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	success := false
	defer func() {
		if m := observability.DefaultMetrics; m != nil {
			m.RecordRequest(endpoint, success)
		}
	}()

	// Step 1: Parse request. A malformed body is treated the same as an
	// absent question rather than rejected; this endpoint never 400s.
	var req datatypes.AssistantRequest
	_ = c.ShouldBindJSON(&req)
	message := strings.TrimSpace(req.Message)
	if message == "" {
		success = true
		h.respond(c, span, datatypes.AssistantResponse{
			Response: emptyMessageReply,
			Source:   datatypes.SourceNone,
		})
		return
	}
	span.SetAttributes(attribute.Int("request.message_length", len(message)))

	// Step 2: Try the dataset resolver before touching the backend.
	if res, ok := catalog.Resolve(message, h.entries); ok {
		success = true
		h.respond(c, span, datatypes.AssistantResponse{
			Response: res.Answer,
			Source:   res.Source,
		})
		return
	}

	// Step 3: Probe reachability before the expensive call.
	if !h.client.IsRunning(ctx) {
		slog.Warn("assistant backend unreachable", "requestId", requestID)
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeBackend)
		}
		h.respond(c, span, datatypes.AssistantResponse{
			Response: ollamaNotRunningMessage,
			Source:   datatypes.SourceError,
		})
		return
	}

	// Step 4: Delegate to the model.
	answer, err := h.client.Complete(ctx, textPrompt(message))
	if err != nil {
		span.RecordError(err)
		slog.Error("assistant completion failed",
			"error", err,
			"requestId", requestID,
		)
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, errorCodeFor(err))
		}
		h.respond(c, span, datatypes.AssistantResponse{
			Response: textErrorMessage(err),
			Source:   datatypes.SourceError,
		})
		return
	}

	// Step 5: Cross-reference the answer against the catalogue.
	if match := catalog.MatchArtifact(answer, h.entries); match != nil {
		answer += datasetMatchHeader + catalog.Summarize(match)
	}

	success = true
	slog.Info("assistant answer delivered",
		"requestId", requestID,
		"durationMs", time.Since(start).Milliseconds(),
	)
	h.respond(c, span, datatypes.AssistantResponse{
		Response: answer,
		Source:   datatypes.SourceOllama,
	})
}

// respond writes the uniform 200 response and records the source tag.
func (h *AssistantHandler) respond(c *gin.Context, span trace.Span, resp datatypes.AssistantResponse) {
	span.SetAttributes(attribute.String("response.source", string(resp.Source)))
	if m := observability.DefaultMetrics; m != nil {
		m.RecordAnswerSource(string(resp.Source))
	}
	c.JSON(http.StatusOK, resp)
}
