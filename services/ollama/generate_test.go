// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// Test Helpers
// =============================================================================

// generateServer serves /api/tags with one llama model and /api/generate
// with the given handler.
func generateServer(t *testing.T, generate http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"}]}`))
	})
	mux.HandleFunc("/api/generate", generate)
	return httptest.NewServer(mux)
}

// =============================================================================
// Complete Tests
// =============================================================================

// TestComplete_ResponseShape verifies the native Ollama response shape and
// the request payload the client sends.
func TestComplete_ResponseShape(t *testing.T) {
	t.Parallel()

	var captured generateRequest
	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"response":"The Rosetta Stone is a granodiorite stele."}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Complete(context.Background(), "Tell me about the Rosetta Stone")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "The Rosetta Stone is a granodiorite stele." {
		t.Errorf("Unexpected completion: %q", got)
	}
	if captured.Model != "llama3.2:latest" {
		t.Errorf("Expected resolved model in request, got %q", captured.Model)
	}
	if captured.Stream {
		t.Error("Expected stream=false")
	}
	if captured.Options.Temperature != 0.7 || captured.Options.NumPredict != 350 {
		t.Errorf("Unexpected options: %+v", captured.Options)
	}
}

// TestComplete_ChoicesShape verifies the OpenAI-compatible choices shape.
func TestComplete_ChoicesShape(t *testing.T) {
	t.Parallel()

	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"text":"It unlocked hieroglyphs."}]}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "It unlocked hieroglyphs." {
		t.Errorf("Unexpected completion: %q", got)
	}
}

// TestComplete_EmptyResponseField verifies a present-but-empty response
// field yields the empty string, not the raw body.
func TestComplete_EmptyResponseField(t *testing.T) {
	t.Parallel()

	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"","done":true}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty completion, got %q", got)
	}
}

// TestComplete_UnrecognizedShapePassesThrough verifies unknown 200 bodies
// come back verbatim instead of failing.
func TestComplete_UnrecognizedShapePassesThrough(t *testing.T) {
	t.Parallel()

	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":"something new"}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if !strings.Contains(got, "something new") {
		t.Errorf("Expected raw body passthrough, got %q", got)
	}
}

// TestComplete_NoModel verifies an empty directory yields the typed
// no-model error without touching the generate endpoint.
func TestComplete_NoModel(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[]}`))
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		t.Error("generate endpoint must not be called without a model")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for empty directory")
	}
	if ErrType(err) != ErrorTypeNoModel {
		t.Errorf("Expected no_model error, got %v", ErrType(err))
	}
}

// TestComplete_BadStatus verifies non-200 responses carry the status code
// and body in the typed error.
func TestComplete_BadStatus(t *testing.T) {
	t.Parallel()

	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model exploded"))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	_, err := client.Complete(context.Background(), "prompt")
	be, ok := err.(*BackendError)
	if !ok {
		t.Fatalf("Expected *BackendError, got %v", err)
	}
	if be.Type != ErrorTypeBadStatus || be.StatusCode != 500 {
		t.Errorf("Unexpected error: %+v", be)
	}
	if be.Body != "model exploded" {
		t.Errorf("Expected upstream body in error, got %q", be.Body)
	}
}

// TestComplete_MalformedBody verifies undecodable 200 bodies yield the
// malformed payload error.
func TestComplete_MalformedBody(t *testing.T) {
	t.Parallel()

	server := generateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": not json`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	_, err := client.Complete(context.Background(), "prompt")
	if ErrType(err) != ErrorTypeMalformedPayload {
		t.Errorf("Expected malformed_payload, got %v (err=%v)", ErrType(err), err)
	}
}
