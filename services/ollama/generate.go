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
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// =============================================================================
// Text Generation Defaults
// =============================================================================

const (
	textTimeout     = 90 * time.Second
	textNumPredict  = 350
	textTemperature = 0.7
)

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// =============================================================================
// Complete
// =============================================================================

// Complete runs a single-shot text completion.
//
// # Description
//
// The text model is resolved from the cached directory; a missing model is
// an ErrorTypeNoModel error, not a transport failure. Response parsing
// tolerates the native Ollama shape and the OpenAI-compatible choices
// shape; an unrecognized 200 body is returned verbatim rather than
// rejected, so odd upstream formats degrade to a readable answer instead
// of an error.
//
// # Inputs
//
//   - ctx: Caller context. A 90 second completion budget is layered on
//     top of it.
//   - prompt: The fully assembled prompt text.
//
// # Outputs
//
//   - string: The completion text on success.
//   - error: A *BackendError on any failure. Never panics.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "ollama.Complete")
	defer span.End()

	model := c.BestTextModel(ctx)
	if model == "" {
		span.SetStatus(codes.Error, "no text model")
		return "", &BackendError{Type: ErrorTypeNoModel}
	}
	span.SetAttributes(
		attribute.String("ollama.model", model),
		attribute.Int("ollama.prompt_length", len(prompt)),
	)

	body, err := c.postGenerate(ctx, generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: textTemperature,
			NumPredict:  textNumPredict,
		},
	}, textTimeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	text, err := parseGenerateBody(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return text, nil
}

// postGenerate sends one generate request and returns the 200 response
// body. All failures come back as *BackendError.
func (c *Client) postGenerate(ctx context.Context, reqBody generateRequest, timeout time.Duration) ([]byte, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &BackendError{Type: ErrorTypeTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, &BackendError{Type: ErrorTypeTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &BackendError{
			Type:       ErrorTypeBadStatus,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return body, nil
}

// parseGenerateBody extracts completion text from a 200 generate body
// using the ordered shape detectors. Non-object JSON and unrecognized
// objects fall back to the raw body text.
func parseGenerateBody(body []byte) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		// Non-object JSON (a bare string or number) is still valid
		// upstream output and passes through verbatim.
		var anything any
		if json.Unmarshal(body, &anything) == nil {
			return strings.TrimSpace(string(body)), nil
		}
		return "", &BackendError{Type: ErrorTypeMalformedPayload, Err: err}
	}
	if text, ok := extractText(generateShapes, payload); ok {
		return text, nil
	}
	return strings.TrimSpace(string(body)), nil
}
