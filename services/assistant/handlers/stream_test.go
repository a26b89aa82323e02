// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khemetlabs/khemet/services/assistant/catalog"
	"github.com/khemetlabs/khemet/services/ollama"
)

// =============================================================================
// Test Helpers
// =============================================================================

// streamBackend is a fake Ollama server whose /api/generate emits the
// given NDJSON lines.
func streamBackend(t *testing.T, lines []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"}]}`))
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	})
	return httptest.NewServer(mux)
}

// newStreamRouter wires the streaming endpoint against a backend URL.
func newStreamRouter(backendURL string) *gin.Engine {
	handler := NewAssistantHandler(ollama.NewClient(backendURL), catalog.Default())
	router := gin.New()
	router.POST("/api/ai-stream", handler.HandleStream)
	return router
}

// postStream drives the endpoint and returns the raw SSE body.
func postStream(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ai-stream", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// countTerminalFrames counts terminal markers: the [END] frame plus any
// frame whose text starts with "Error".
func countTerminalFrames(body string) int {
	count := 0
	for _, frame := range strings.Split(body, "\n\n") {
		text, ok := strings.CutPrefix(frame, "data: ")
		if !ok {
			continue
		}
		if text == "[END]" || strings.HasPrefix(text, "Error") {
			count++
		}
	}
	return count
}

// =============================================================================
// Precondition Short-Circuit Tests
// =============================================================================

func TestHandleStream_EmptyMessage(t *testing.T) {
	t.Parallel()

	router := newStreamRouter("http://localhost:1")
	w := postStream(t, router, `{"message":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Equal(t, "data: Error: empty message\n\n", w.Body.String())
}

func TestHandleStream_BackendDown(t *testing.T) {
	t.Parallel()

	router := newStreamRouter("http://localhost:1")
	w := postStream(t, router, `{"message":"tell me things"}`)

	assert.Equal(t, "data: Error: Ollama not running. Start with 'ollama serve'.\n\n",
		w.Body.String())
	assert.Equal(t, 1, countTerminalFrames(w.Body.String()))
}

func TestHandleStream_NoModel(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[]}`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	router := newStreamRouter(backend.URL)
	w := postStream(t, router, `{"message":"tell me things"}`)

	assert.Equal(t, "data: Error: No model available.\n\n", w.Body.String())
}

// =============================================================================
// Streaming Tests
// =============================================================================

func TestHandleStream_ProxiesChunksAndEnds(t *testing.T) {
	t.Parallel()

	backend := streamBackend(t, []string{
		`{"response":"The "}`,
		`{"response":"Nile "}`,
		`{"response":"floods."}`,
	})
	defer backend.Close()

	router := newStreamRouter(backend.URL)
	w := postStream(t, router, `{"message":"Tell me about the Nile"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"data: The \n\ndata: Nile \n\ndata: floods.\n\ndata: [END]\n\n",
		w.Body.String())
	assert.Equal(t, 1, countTerminalFrames(w.Body.String()))
}

func TestHandleStream_SplitsMultiLineFragments(t *testing.T) {
	t.Parallel()

	backend := streamBackend(t, []string{
		`{"response":"first line\nsecond line"}`,
	})
	defer backend.Close()

	router := newStreamRouter(backend.URL)
	w := postStream(t, router, `{"message":"list two things"}`)

	assert.Equal(t,
		"data: first line\n\ndata: second line\n\ndata: [END]\n\n",
		w.Body.String())
}

func TestHandleStream_MalformedUpstreamLinePassesThrough(t *testing.T) {
	t.Parallel()

	backend := streamBackend(t, []string{
		`{"response":"good"}`,
		`garbage line`,
	})
	defer backend.Close()

	router := newStreamRouter(backend.URL)
	w := postStream(t, router, `{"message":"question"}`)

	body := w.Body.String()
	assert.Contains(t, body, "data: garbage line\n\n")
	assert.True(t, strings.HasSuffix(body, "data: [END]\n\n"))
	assert.Equal(t, 1, countTerminalFrames(body))
}

func TestHandleStream_UpstreamBadStatus(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"}]}`))
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	router := newStreamRouter(backend.URL)
	w := postStream(t, router, `{"message":"question"}`)

	assert.Equal(t, "data: Error from Ollama: 502\n\n", w.Body.String())
	assert.Equal(t, 1, countTerminalFrames(w.Body.String()))
}
