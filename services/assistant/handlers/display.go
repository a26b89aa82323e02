// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"fmt"

	"github.com/khemetlabs/khemet/services/assistant/observability"
	"github.com/khemetlabs/khemet/services/ollama"
)

// Backend errors stay typed inside the service and are rendered to
// user-facing strings only here, at the response boundary. The wording is
// part of the UI contract; the frontend matches on some of these strings.

// ollamaNotRunningMessage is the assistant reply when the backend probe
// fails before any model call.
const ollamaNotRunningMessage = "⚠️ Ollama is not running. Start it with: ollama serve"

// serverErrorMessage is the generic reply for unexpected failures. Detail
// is logged server-side, never sent to the client.
const serverErrorMessage = "Server error. Please try again."

// textErrorMessage renders a text completion failure.
func textErrorMessage(err error) string {
	be, ok := err.(*ollama.BackendError)
	if !ok {
		return fmt.Sprintf("Error calling Ollama: %v", err)
	}
	switch be.Type {
	case ollama.ErrorTypeNoModel:
		return "No text model available. Please install a Llama family model (e.g., llama3.2)."
	case ollama.ErrorTypeBadStatus:
		return fmt.Sprintf("Error from Ollama: %d - %s", be.StatusCode, be.Body)
	case ollama.ErrorTypeTimeout:
		return "⚠️ Ollama read timeout — the model took too long. Try again or use a simpler prompt."
	case ollama.ErrorTypeMalformedPayload:
		return "Invalid JSON received from Ollama."
	default:
		return fmt.Sprintf("Error calling Ollama: %v", err)
	}
}

// visionErrorMessage renders a vision completion failure.
func visionErrorMessage(err error) string {
	be, ok := err.(*ollama.BackendError)
	if !ok {
		return fmt.Sprintf("Vision error: %v", err)
	}
	switch be.Type {
	case ollama.ErrorTypeNoModel:
		return "No vision model available. Please pull/install a vision-capable model (e.g., llava)."
	case ollama.ErrorTypeBadStatus:
		return fmt.Sprintf("Ollama vision error: %d - %s", be.StatusCode, be.Body)
	case ollama.ErrorTypeMalformedPayload:
		return "Invalid JSON from Ollama vision."
	default:
		return fmt.Sprintf("Vision error: %v", err)
	}
}

// streamErrorMessage renders a mid-stream failure as a terminal error
// frame. Every message begins with "Error" per the stream contract.
func streamErrorMessage(err error) string {
	be, ok := err.(*ollama.BackendError)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	switch be.Type {
	case ollama.ErrorTypeBadStatus:
		return fmt.Sprintf("Error from Ollama: %d", be.StatusCode)
	case ollama.ErrorTypeTimeout:
		return "Error: Ollama read timeout during streaming."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// errorCodeFor maps a backend error to its metrics error code.
func errorCodeFor(err error) observability.ErrorCode {
	switch ollama.ErrType(err) {
	case ollama.ErrorTypeNoModel:
		return observability.ErrorCodeNoModel
	case ollama.ErrorTypeTimeout:
		return observability.ErrorCodeTimeout
	default:
		return observability.ErrorCodeBackend
	}
}
