// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// =============================================================================
// Answer Source
// =============================================================================

// Source labels where an assistant answer came from.
type Source string

const (
	// SourceDataset means the answer was produced entirely from the
	// catalogue by the dataset resolver.
	SourceDataset Source = "dataset"

	// SourceFallback means a canned reply (the greeting) was returned
	// without consulting the backend.
	SourceFallback Source = "fallback"

	// SourceOllama means the answer came from the inference backend.
	SourceOllama Source = "ollama"

	// SourceError means the backend was reached but the call failed.
	SourceError Source = "error"

	// SourceNone means no answer was attempted (empty question).
	SourceNone Source = "none"
)

// =============================================================================
// Assistant Request / Response
// =============================================================================

// AssistantRequest is the body of POST /api/ai-assistant and
// POST /api/ai-stream.
//
// # Description
//
// The message field is optional at the binding layer: an absent or empty
// message is a well-defined request that yields the "Please send a
// question." reply (non-streaming) or an error frame (streaming), so no
// binding:"required" tag is used.
type AssistantRequest struct {
	Message string `json:"message"`
}

// AssistantResponse is the body of every POST /api/ai-assistant reply.
// The endpoint always returns HTTP 200 with this shape; failures are
// reported through the source tag, never through HTTP status codes.
type AssistantResponse struct {
	Response string `json:"response"`
	Source   Source `json:"source"`
}

// =============================================================================
// Vision Response
// =============================================================================

// VisionResponse is the body of every POST /api/ai-vision reply. Ok reports
// whether an analysis was produced; when false, Response carries a
// user-facing explanation.
type VisionResponse struct {
	Ok       bool   `json:"ok"`
	Response string `json:"response"`
}

// =============================================================================
// Backend Status
// =============================================================================

// StatusResponse is the body of GET /api/ollama-status. The model fields
// are pointers so that "no model of this kind" renders as JSON null rather
// than an empty string.
type StatusResponse struct {
	Running     bool    `json:"running"`
	TextModel   *string `json:"text_model"`
	VisionModel *string `json:"vision_model"`
}

// =============================================================================
// Catalogue Statistics
// =============================================================================

// Statistics is the body of GET /api/statistics: aggregate counts over the
// catalogue, computed per request.
type Statistics struct {
	TotalArtifacts int            `json:"total_artifacts"`
	Contested      int            `json:"contested"`
	Returned       int            `json:"returned"`
	InEgypt        int            `json:"in_egypt"`
	ByCountry      map[string]int `json:"by_country"`
}
