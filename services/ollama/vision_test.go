// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// visionServer serves /api/tags with one llava model and /api/chat with
// the given handler.
func visionServer(t *testing.T, chat http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llava:7b"}]}`))
	})
	mux.HandleFunc("/api/chat", chat)
	return httptest.NewServer(mux)
}

// =============================================================================
// Identify Tests
// =============================================================================

// TestIdentify_SendsBase64ImageAndExtractsContent verifies the chat
// payload shape and the message.content extraction.
func TestIdentify_SendsBase64ImageAndExtractsContent(t *testing.T) {
	t.Parallel()

	image := []byte{0x89, 'P', 'N', 'G'}
	var captured chatRequest
	server := visionServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":{"content":"A limestone bust."}}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Identify(context.Background(), image, "What is this?")
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if got != "A limestone bust." {
		t.Errorf("Unexpected analysis: %q", got)
	}

	if captured.Model != "llava:7b" {
		t.Errorf("Expected vision model, got %q", captured.Model)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("Expected one user message, got %+v", captured.Messages)
	}
	wantImage := base64.StdEncoding.EncodeToString(image)
	if len(captured.Messages[0].Images) != 1 || captured.Messages[0].Images[0] != wantImage {
		t.Errorf("Expected base64 image in message, got %v", captured.Messages[0].Images)
	}
	if captured.Options.Temperature != 0.3 || captured.Options.NumPredict != 500 {
		t.Errorf("Unexpected options: %+v", captured.Options)
	}
}

// TestIdentify_ResponseFieldFallback verifies the response-field fallback
// when message.content is absent.
func TestIdentify_ResponseFieldFallback(t *testing.T) {
	t.Parallel()

	server := visionServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"A granite statue."}`))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	got, err := client.Identify(context.Background(), []byte{1}, "prompt")
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if got != "A granite statue." {
		t.Errorf("Unexpected analysis: %q", got)
	}
}

// TestIdentify_NoVisionModel verifies a text-only directory yields the
// typed no-model error.
func TestIdentify_NoVisionModel(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"}]}`))
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		t.Error("chat endpoint must not be called without a vision model")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	_, err := client.Identify(context.Background(), []byte{1}, "prompt")
	if ErrType(err) != ErrorTypeNoModel {
		t.Errorf("Expected no_model error, got %v", err)
	}
}

// TestIdentify_BadStatus verifies non-200 chat responses carry status and
// body.
func TestIdentify_BadStatus(t *testing.T) {
	t.Parallel()

	server := visionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("overloaded"))
	})
	defer server.Close()

	now := time.Now()
	client := newTestClient(server.URL, &now)
	_, err := client.Identify(context.Background(), []byte{1}, "prompt")
	be, ok := err.(*BackendError)
	if !ok || be.Type != ErrorTypeBadStatus || be.StatusCode != 503 || be.Body != "overloaded" {
		t.Errorf("Unexpected error: %v", err)
	}
}
