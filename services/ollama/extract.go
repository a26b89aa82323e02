// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

// Upstream payload shapes vary between Ollama versions and compatible
// servers, so completion text is extracted by an ordered list of shape
// detectors instead of one fixed struct. Each detector reports whether it
// recognized the payload shape; recognition and emptiness are separate
// questions (a recognized shape may legitimately carry an empty fragment,
// e.g. the final done line of a stream).

// shapeExtractor inspects a decoded JSON object and, if it recognizes the
// shape, returns the completion text it carries.
type shapeExtractor func(payload map[string]any) (text string, recognized bool)

// streamShapes is the priority order for streamed NDJSON lines.
var streamShapes = []shapeExtractor{
	extractResponseField,
	extractTokenField,
	extractChoices,
	extractGeneric,
}

// generateShapes is the priority order for non-streaming generate
// responses.
var generateShapes = []shapeExtractor{
	extractResponseField,
	extractChoicesText,
}

// extractText runs the detectors in order and returns the first
// recognized shape's text.
func extractText(shapes []shapeExtractor, payload map[string]any) (string, bool) {
	for _, shape := range shapes {
		if text, ok := shape(payload); ok {
			return text, true
		}
	}
	return "", false
}

// extractResponseField handles the native Ollama {"response": "..."}
// shape. Key presence is the signal; an empty value is still a match.
func extractResponseField(payload map[string]any) (string, bool) {
	v, ok := payload["response"]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// extractTokenField handles servers that emit {"token": "..."} fragments.
func extractTokenField(payload map[string]any) (string, bool) {
	v, ok := payload["token"]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// extractChoices handles OpenAI-compatible shapes: choices[0].text for
// completions, choices[0].delta.content for chat stream deltas. Presence
// of the "choices" key recognizes the shape even when the array is empty
// or malformed.
func extractChoices(payload map[string]any) (string, bool) {
	if _, hasKey := payload["choices"]; !hasKey {
		return "", false
	}
	first := firstChoice(payload)
	if first == nil {
		return "", true
	}
	if s, _ := first["text"].(string); s != "" {
		return s, true
	}
	if delta, ok := first["delta"].(map[string]any); ok {
		if s, _ := delta["content"].(string); s != "" {
			return s, true
		}
	}
	return "", true
}

// extractChoicesText is the non-streaming variant: only choices[0].text.
func extractChoicesText(payload map[string]any) (string, bool) {
	if _, hasKey := payload["choices"]; !hasKey {
		return "", false
	}
	first := firstChoice(payload)
	if first == nil {
		return "", true
	}
	s, _ := first["text"].(string)
	return s, true
}

// firstChoice returns choices[0] as an object, or nil when the choices
// array is missing, empty, or not object-shaped.
func firstChoice(payload map[string]any) map[string]any {
	list, ok := payload["choices"].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	first, _ := list[0].(map[string]any)
	return first
}

// extractGeneric is the streaming last resort: a top-level "text" field or
// a chat-style message.content. Always recognizes the shape so it
// terminates the chain.
func extractGeneric(payload map[string]any) (string, bool) {
	if s, _ := payload["text"].(string); s != "" {
		return s, true
	}
	if msg, ok := payload["message"].(map[string]any); ok {
		if s, _ := msg["content"].(string); s != "" {
			return s, true
		}
	}
	return "", true
}
