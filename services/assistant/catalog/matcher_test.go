// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"strings"
	"testing"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
)

// testEntries is a small synthetic catalogue with known scores.
var testEntries = []datatypes.Artifact{
	{
		ID:              1,
		Name:            "Bust of Ramesses II",
		ArtifactType:    "Granite Bust",
		CurrentLocation: "British Museum, London",
		Status:          datatypes.StatusContested,
	},
	{
		ID:              2,
		Name:            "Golden Shrine",
		ArtifactType:    "Gold Shrine",
		CurrentLocation: "Egyptian Museum, Cairo",
		Status:          datatypes.StatusInEgypt,
	},
	{
		ID:              3,
		Name:            "Wooden Boat Model",
		ArtifactType:    "Wood Model",
		CurrentLocation: "Egyptian Museum, Cairo",
		Status:          datatypes.StatusInEgypt,
	},
}

// =============================================================================
// Scoring Tests
// =============================================================================

// TestMatchArtifact_NameTypeAndMaterial verifies the 12/6/3 weights stack:
// name, type, and the shared material keyword together.
func TestMatchArtifact_NameTypeAndMaterial(t *testing.T) {
	t.Parallel()

	// Name (+12), type (+6), material granite shared (+3).
	text := "This granite bust of Ramesses II is striking."
	got := MatchArtifact(text, testEntries)
	if got == nil || got.ID != 1 {
		t.Fatalf("Expected entry 1, got %+v", got)
	}
	if score := scoreEntry(strings.ToLower(text), &testEntries[0]); score != 21 {
		t.Errorf("Expected score 21, got %d", score)
	}
}

// TestMatchArtifact_MaterialRequiresBothSides verifies a material keyword
// counts only when present in the text and the entry type.
func TestMatchArtifact_MaterialRequiresBothSides(t *testing.T) {
	t.Parallel()

	// "granite" appears in the text but entry 2's type is gold: no
	// material points, and no name/type hit either.
	if score := scoreEntry("a granite object", &testEntries[1]); score != 0 {
		t.Errorf("Expected 0 for one-sided material, got %d", score)
	}
	// "gold" on both sides: 3.
	if score := scoreEntry("a gold object", &testEntries[1]); score != 3 {
		t.Errorf("Expected 3 for shared material, got %d", score)
	}
}

// TestMatchArtifact_NoMatch verifies zero-scoring text yields nil.
func TestMatchArtifact_NoMatch(t *testing.T) {
	t.Parallel()

	if got := MatchArtifact("a painting of sunflowers", testEntries); got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
	if got := MatchArtifact("", testEntries); got != nil {
		t.Errorf("Expected nil for empty text, got %+v", got)
	}
}

// TestMatchArtifact_TieBreaksToFirstEntry verifies equal top scores
// resolve to the earliest catalogue entry.
func TestMatchArtifact_TieBreaksToFirstEntry(t *testing.T) {
	t.Parallel()

	tied := []datatypes.Artifact{
		{ID: 10, Name: "First Stela", ArtifactType: "Limestone Stela"},
		{ID: 11, Name: "Second Stela", ArtifactType: "Limestone Stela"},
	}
	// Both score 3 via the limestone material keyword.
	got := MatchArtifact("a limestone fragment", tied)
	if got == nil || got.ID != 10 {
		t.Errorf("Expected first entry on tie, got %+v", got)
	}
}

// TestMatchArtifact_CaseInsensitive verifies matching ignores case on both
// sides.
func TestMatchArtifact_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got := MatchArtifact("THE BUST OF RAMESSES II", testEntries)
	if got == nil || got.ID != 1 {
		t.Errorf("Expected entry 1, got %+v", got)
	}
}

// TestMatchArtifact_AgainstFullCatalogue verifies the matcher works over
// the real dataset.
func TestMatchArtifact_AgainstFullCatalogue(t *testing.T) {
	t.Parallel()

	got := MatchArtifact("This appears to be the Rosetta Stone.", Default())
	if got == nil || got.Name != "Rosetta Stone" {
		t.Fatalf("Expected Rosetta Stone, got %+v", got)
	}
}

// =============================================================================
// Summary Tests
// =============================================================================

// TestSummarize verifies the appended summary layout.
func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(&testEntries[0])
	want := "Bust of Ramesses II - Granite Bust\nLocation: British Museum, London\nStatus: Contested"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
