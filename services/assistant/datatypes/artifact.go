// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides data structures for the assistant service.
//
// This file contains the catalogue record type. For assistant request and
// response types, see assistant.go.
package datatypes

import (
	"encoding/json"
	"strconv"
)

// =============================================================================
// Repatriation Status
// =============================================================================

// Status describes where an artifact stands in the repatriation debate.
type Status string

const (
	// StatusContested marks artifacts whose ownership is disputed.
	StatusContested Status = "Contested"

	// StatusReturned marks artifacts that have been repatriated.
	StatusReturned Status = "Returned"

	// StatusInEgypt marks artifacts that remain in their source country.
	StatusInEgypt Status = "In Egypt"
)

// =============================================================================
// Year Taken
// =============================================================================

// YearNeverTaken is the sentinel rendered for artifacts that never left
// their source country.
const YearNeverTaken = "Never Taken"

// Year is the year an artifact was removed from Egypt. The zero value means
// it never was, and marshals as the "Never Taken" sentinel string so the
// JSON catalogue matches the published contract (a number or a string).
type Year int

// MarshalJSON renders the year as a JSON number, or as the sentinel string
// when the artifact was never taken.
func (y Year) MarshalJSON() ([]byte, error) {
	if y == 0 {
		return json.Marshal(YearNeverTaken)
	}
	return []byte(strconv.Itoa(int(y))), nil
}

// UnmarshalJSON accepts either the numeric form or the sentinel string.
func (y *Year) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Year(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// Any non-numeric string is treated as the sentinel.
	*y = 0
	return nil
}

// String renders the year for display in detail cards.
func (y Year) String() string {
	if y == 0 {
		return YearNeverTaken
	}
	return strconv.Itoa(int(y))
}

// =============================================================================
// Artifact Record
// =============================================================================

// Artifact is one catalogue record.
//
// # Description
//
// Artifacts are immutable once loaded: the catalogue is a fixed ordered
// sequence built at process start and shared by all requests without
// synchronization. Field names follow the published JSON contract of the
// /api/artifacts endpoint.
//
// # Fields
//
//   - ID: Unique positive integer identifier.
//   - Name, Museum, City, Country: Display metadata.
//   - Latitude, Longitude: Current location coordinates for the map view.
//   - Status: Repatriation status (Contested, Returned, In Egypt).
//   - YearTaken: Year of removal, zero meaning never taken.
//   - Description: Free-text historical context.
//   - ArtifactType: Material and form (e.g., "Granite Bust"), also used by
//     the matcher for material keyword scoring.
//   - CurrentLocation: Human-readable current holding institution.
//   - ImageURL, Images: Static image references served by the web layer.
type Artifact struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Museum          string   `json:"museum"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Status          Status   `json:"status"`
	YearTaken       Year     `json:"year_taken"`
	Description     string   `json:"description"`
	ArtifactType    string   `json:"artifact_type"`
	CurrentLocation string   `json:"current_location"`
	ImageURL        string   `json:"image_url"`
	Images          []string `json:"images"`
}
