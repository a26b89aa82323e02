// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"fmt"
	"strings"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
)

// =============================================================================
// Scoring
// =============================================================================

// Score weights. Name hits dominate, type hits rank next, and material
// keywords act as weak corroboration.
const (
	scoreNameHit     = 12
	scoreTypeHit     = 6
	scoreMaterialHit = 3
)

// materialKeywords are the materials the matcher cross-references between
// the query text and an artifact's type field.
var materialKeywords = []string{
	"limestone",
	"granite",
	"sandstone",
	"alabaster",
	"gold",
	"bronze",
	"wood",
}

// MatchArtifact scores every catalogue entry against free text and returns
// the best match, or nil when nothing scores above zero.
//
// # Description
//
// Scoring is substring-based over the lowercased text:
//
//   - full artifact name contained in the text: +12
//   - full artifact type contained in the text: +6
//   - each material keyword present in both the text and the artifact
//     type: +3
//
// Ties resolve to the earliest catalogue entry: the scan keeps the first
// strictly greater score, so the returned artifact is stable for a given
// catalogue order.
//
// # Inputs
//
//   - text: Free-form text to match. Model output, user questions, and
//     vision analyses all pass through here.
//   - entries: Catalogue to score against, in priority order.
//
// # Outputs
//
//   - *datatypes.Artifact: Pointer into entries for the best match, or nil.
//
// # Assumptions
//
//   - entries is read-only for the duration of the call.
func MatchArtifact(text string, entries []datatypes.Artifact) *datatypes.Artifact {
	lowered := strings.ToLower(text)

	best := -1
	bestScore := 0
	for i := range entries {
		score := scoreEntry(lowered, &entries[i])
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return nil
	}
	return &entries[best]
}

// scoreEntry computes the match score of a single artifact against
// already-lowercased text.
func scoreEntry(lowered string, a *datatypes.Artifact) int {
	score := 0
	if name := strings.ToLower(a.Name); name != "" && strings.Contains(lowered, name) {
		score += scoreNameHit
	}
	typ := strings.ToLower(a.ArtifactType)
	if typ != "" && strings.Contains(lowered, typ) {
		score += scoreTypeHit
	}
	for _, material := range materialKeywords {
		if strings.Contains(lowered, material) && strings.Contains(typ, material) {
			score += scoreMaterialHit
		}
	}
	return score
}

// =============================================================================
// Summaries
// =============================================================================

// Summarize renders the short summary appended to model answers when the
// matcher recognizes an artifact in them.
func Summarize(a *datatypes.Artifact) string {
	return fmt.Sprintf("%s - %s\nLocation: %s\nStatus: %s",
		a.Name, a.ArtifactType, a.CurrentLocation, a.Status)
}
