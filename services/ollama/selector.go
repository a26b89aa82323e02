// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import "strings"

// =============================================================================
// Model Selection
// =============================================================================

// textModelFamilies are the preferred text model substrings, most specific
// first. Each pass scans the whole list before the next family is tried,
// so a llama3.2 anywhere in the directory beats a llama3 at the front.
var textModelFamilies = []string{"llama3.2", "llama3", "llama"}

// visionModelMarkers identify vision-capable models by name.
var visionModelMarkers = []string{"llava", "vision", "bakllava"}

// BestTextModel picks a text model from the directory listing.
//
// # Description
//
// Pure and deterministic in the list order. Three passes of decreasing
// specificity look for llama-family names that are not vision variants;
// if no family matches, the first installed model is returned as a last
// resort. An empty list yields the empty string.
func BestTextModel(models []string) string {
	if len(models) == 0 {
		return ""
	}
	for _, family := range textModelFamilies {
		for _, name := range models {
			lower := strings.ToLower(name)
			if strings.Contains(lower, family) && !strings.Contains(lower, "vision") {
				return name
			}
		}
	}
	return models[0]
}

// BestVisionModel picks the first vision-capable model from the directory
// listing, or the empty string when none is installed. Unlike the text
// selector there is no last-resort fallback: a text-only model cannot
// accept images.
func BestVisionModel(models []string) string {
	for _, name := range models {
		lower := strings.ToLower(name)
		for _, marker := range visionModelMarkers {
			if strings.Contains(lower, marker) {
				return name
			}
		}
	}
	return ""
}
