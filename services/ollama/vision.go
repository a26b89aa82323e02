// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// =============================================================================
// Vision Defaults
// =============================================================================

const (
	visionTimeout     = 120 * time.Second
	visionNumPredict  = 500
	visionTemperature = 0.3
)

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Model    string          `json:"model"`
	Messages []chatMessage   `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  generateOptions `json:"options"`
}

type chatMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// =============================================================================
// Identify
// =============================================================================

// Identify runs a vision completion over raw image bytes.
//
// # Description
//
// The image is base64-encoded and embedded in a single user message to the
// chat endpoint. The reply is taken from message.content, falling back to
// a top-level response field, falling back to the raw body, mirroring the
// tolerance of the text client. The vision model has no text fallback: if
// nothing vision-capable is installed this is an ErrorTypeNoModel error.
//
// # Inputs
//
//   - ctx: Caller context; a 120 second budget is layered on top.
//   - image: Raw image bytes, already validated by the caller.
//   - prompt: Analysis instruction for the model.
//
// # Outputs
//
//   - string: The model's analysis text.
//   - error: A *BackendError on any failure.
func (c *Client) Identify(ctx context.Context, image []byte, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "ollama.Identify")
	defer span.End()

	model := c.BestVisionModel(ctx)
	if model == "" {
		span.SetStatus(codes.Error, "no vision model")
		return "", &BackendError{Type: ErrorTypeNoModel}
	}
	span.SetAttributes(
		attribute.String("ollama.model", model),
		attribute.Int("ollama.image_bytes", len(image)),
	)

	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{{
			Role:    "user",
			Content: prompt,
			Images:  []string{base64.StdEncoding.EncodeToString(image)},
		}},
		Stream: false,
		Options: generateOptions{
			Temperature: visionTemperature,
			NumPredict:  visionNumPredict,
		},
	})
	if err != nil {
		return "", &BackendError{Type: ErrorTypeTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, visionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", &BackendError{Type: ErrorTypeTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		berr := classifyTransport(err)
		span.RecordError(berr)
		span.SetStatus(codes.Error, berr.Error())
		return "", berr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(err)
	}
	if resp.StatusCode != http.StatusOK {
		berr := &BackendError{
			Type:       ErrorTypeBadStatus,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		span.SetStatus(codes.Error, berr.Error())
		return "", berr
	}

	return parseChatBody(body)
}

// parseChatBody extracts the reply text from a 200 chat body:
// message.content, then a response field, then the raw body verbatim.
func parseChatBody(body []byte) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		var anything any
		if json.Unmarshal(body, &anything) == nil {
			return strings.TrimSpace(string(body)), nil
		}
		return "", &BackendError{Type: ErrorTypeMalformedPayload, Err: err}
	}
	if msg, ok := payload["message"].(map[string]any); ok {
		if s, _ := msg["content"].(string); s != "" {
			return s, nil
		}
	}
	if s, _ := payload["response"].(string); s != "" {
		return s, nil
	}
	return strings.TrimSpace(string(body)), nil
}
