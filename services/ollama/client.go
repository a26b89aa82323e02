// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ollama is the client for a local Ollama-compatible inference
// backend. It covers model discovery (with a TTL cache), model selection,
// single-shot text generation, NDJSON streaming generation, and vision
// chat calls.
//
// The backend is treated as an untrusted, possibly-unavailable network
// dependency: every operation takes a context, returns categorized errors
// (see BackendError), and tolerates heterogeneous response shapes.
package ollama

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("khemet/services/ollama")

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultBaseURL is the standard local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// probeTimeout bounds the reachability check so a down backend fails
	// fast instead of stalling the request that asked.
	probeTimeout = 2 * time.Second

	// tagsTimeout bounds the model directory fetch.
	tagsTimeout = 3 * time.Second

	// modelCacheTTL is how long a fetched model directory stays valid.
	modelCacheTTL = 20 * time.Second
)

// =============================================================================
// Client
// =============================================================================

// Client talks to one Ollama-compatible backend.
//
// # Description
//
// The client owns the model directory cache, so a single Client should be
// shared across requests. All methods are safe for concurrent use. Per-call
// deadlines are applied through request contexts rather than on the shared
// http.Client, since each operation has its own budget.
//
// # Limitations
//
//   - Concurrent callers racing past an expired cache TTL may both fetch
//     the directory. Duplicate fetches are tolerated; correctness needs
//     only bounded staleness, not single-flight.
type Client struct {
	baseURL string
	http    *http.Client

	cacheMu     sync.Mutex
	cachedNames []string
	cacheFilled bool
	cacheTime   time.Time

	// now is the clock used for cache expiry. Injected for tests.
	now func() time.Time
}

// NewClient creates a client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		now:     time.Now,
	}
}

// NewClientFromEnv creates a client configured from OLLAMA_BASE_URL,
// logging a warning and using the default when the variable is unset.
func NewClientFromEnv() *Client {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		slog.Warn("OLLAMA_BASE_URL not set, using default",
			"default", DefaultBaseURL)
		baseURL = DefaultBaseURL
	}
	return NewClient(baseURL)
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// Reachability
// =============================================================================

// IsRunning reports whether the backend answers its model-listing endpoint
// within the probe timeout. The probe bypasses the model cache: it is a
// liveness question, not a directory question.
func (c *Client) IsRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// =============================================================================
// Transport Error Classification
// =============================================================================

// classifyTransport maps a transport-level error from http.Client.Do onto
// the backend error taxonomy. Deadline expiry counts as a timeout whether
// it surfaces as context.DeadlineExceeded or a url.Error timeout; other
// url.Error failures (connection refused, DNS) mean the backend is
// unreachable.
func classifyTransport(err error) *BackendError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &BackendError{Type: ErrorTypeTimeout, Err: err}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return &BackendError{Type: ErrorTypeTimeout, Err: err}
		}
		return &BackendError{Type: ErrorTypeUnreachable, Err: err}
	}
	return &BackendError{Type: ErrorTypeTransport, Err: err}
}
