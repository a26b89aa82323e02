// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestYear_MarshalSentinel verifies the zero year renders as the
// "Never Taken" sentinel string and non-zero years as JSON numbers.
func TestYear_MarshalSentinel(t *testing.T) {
	t.Parallel()

	taken, err := json.Marshal(Artifact{ID: 1, YearTaken: 1801})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(taken), `"year_taken":1801`) {
		t.Errorf("Expected numeric year, got %s", taken)
	}

	never, err := json.Marshal(Artifact{ID: 2})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(never), `"year_taken":"Never Taken"`) {
		t.Errorf("Expected sentinel string, got %s", never)
	}
}

// TestYear_UnmarshalBothForms verifies both wire forms round-trip.
func TestYear_UnmarshalBothForms(t *testing.T) {
	t.Parallel()

	var y Year
	if err := json.Unmarshal([]byte(`1912`), &y); err != nil || y != 1912 {
		t.Errorf("Expected 1912, got %v (err=%v)", y, err)
	}
	if err := json.Unmarshal([]byte(`"Never Taken"`), &y); err != nil || y != 0 {
		t.Errorf("Expected 0 for sentinel, got %v (err=%v)", y, err)
	}
}

// TestYear_String verifies display rendering.
func TestYear_String(t *testing.T) {
	t.Parallel()

	if got := Year(1801).String(); got != "1801" {
		t.Errorf("Expected 1801, got %q", got)
	}
	if got := Year(0).String(); got != YearNeverTaken {
		t.Errorf("Expected sentinel, got %q", got)
	}
}
