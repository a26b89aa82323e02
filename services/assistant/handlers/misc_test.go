// Copyright (C) 2025 Khemet Labs
// Tests for the status, catalogue, and health handlers.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khemetlabs/khemet/services/assistant/catalog"
	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/ollama"
)

// =============================================================================
// HealthCheck Tests
// =============================================================================

func TestHealthCheck_ReturnsOK(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

// =============================================================================
// Status Tests
// =============================================================================

func TestHandleStatus_BackendRunning(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"},{"name":"llava:7b"}]}`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	handler := NewAssistantHandler(ollama.NewClient(backend.URL), catalog.Default())
	router := gin.New()
	router.GET("/api/ollama-status", handler.HandleStatus)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/ollama-status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp datatypes.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Running)
	require.NotNil(t, resp.TextModel)
	assert.Equal(t, "llama3.2:latest", *resp.TextModel)
	require.NotNil(t, resp.VisionModel)
	assert.Equal(t, "llava:7b", *resp.VisionModel)
}

func TestHandleStatus_BackendDown(t *testing.T) {
	t.Parallel()

	handler := NewAssistantHandler(ollama.NewClient("http://localhost:1"), catalog.Default())
	router := gin.New()
	router.GET("/api/ollama-status", handler.HandleStatus)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/ollama-status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The model fields must render as JSON null, not empty strings.
	assert.JSONEq(t, `{"running":false,"text_model":null,"vision_model":null}`,
		w.Body.String())
}

// =============================================================================
// Catalogue Endpoint Tests
// =============================================================================

func newCatalogRouter() *gin.Engine {
	handler := NewCatalogHandler(catalog.Default())
	router := gin.New()
	router.GET("/api/artifacts", handler.HandleList)
	router.GET("/api/artifacts/:id", handler.HandleByID)
	router.GET("/api/statistics", handler.HandleStatistics)
	return router
}

func TestHandleList_ReturnsFullCatalogue(t *testing.T) {
	t.Parallel()

	router := newCatalogRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/artifacts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var artifacts []datatypes.Artifact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artifacts))
	assert.Len(t, artifacts, 47)
	assert.Equal(t, "Rosetta Stone", artifacts[0].Name)
}

func TestHandleByID(t *testing.T) {
	t.Parallel()

	router := newCatalogRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/artifacts/2", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var artifact datatypes.Artifact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artifact))
	assert.Equal(t, "Bust of Nefertiti", artifact.Name)

	for _, path := range []string{"/api/artifacts/9999", "/api/artifacts/abc"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %q", path)
	}
}

func TestHandleStatistics(t *testing.T) {
	t.Parallel()

	router := newCatalogRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/statistics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats datatypes.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 47, stats.TotalArtifacts)
	assert.Equal(t, stats.TotalArtifacts, stats.Contested+stats.Returned+stats.InEgypt)
	assert.Positive(t, stats.ByCountry["United Kingdom"])
}
