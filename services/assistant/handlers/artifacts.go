// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
)

// =============================================================================
// Catalogue Handler
// =============================================================================

// CatalogHandler serves the read-only catalogue endpoints. Kept separate
// from AssistantHandler: these endpoints never touch the inference
// backend.
type CatalogHandler struct {
	entries []datatypes.Artifact
}

// NewCatalogHandler creates the handler over a catalogue.
func NewCatalogHandler(entries []datatypes.Artifact) *CatalogHandler {
	return &CatalogHandler{entries: entries}
}

// HandleList answers GET /api/artifacts with the full catalogue.
func (h *CatalogHandler) HandleList(c *gin.Context) {
	c.JSON(http.StatusOK, h.entries)
}

// HandleByID answers GET /api/artifacts/:id, 404 when the id is unknown
// or not numeric.
func (h *CatalogHandler) HandleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
		return
	}
	for i := range h.entries {
		if h.entries[i].ID == id {
			c.JSON(http.StatusOK, h.entries[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
}

// HandleStatistics answers GET /api/statistics with aggregate counts,
// computed per request over the fixed catalogue.
func (h *CatalogHandler) HandleStatistics(c *gin.Context) {
	stats := datatypes.Statistics{
		TotalArtifacts: len(h.entries),
		ByCountry:      make(map[string]int),
	}
	for i := range h.entries {
		a := &h.entries[i]
		switch a.Status {
		case datatypes.StatusContested:
			stats.Contested++
		case datatypes.StatusReturned:
			stats.Returned++
		case datatypes.StatusInEgypt:
			stats.InEgypt++
		}
		stats.ByCountry[a.Country]++
	}
	c.JSON(http.StatusOK, stats)
}
