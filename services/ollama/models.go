// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ollama

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// tagsResponse is the shape of GET /api/tags.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// =============================================================================
// Model Directory Cache
// =============================================================================

// Models returns the installed model names, refreshed from the backend at
// most once per TTL window.
//
// # Description
//
// A fetch failure is cached the same way as a success: the empty list is
// stored and the timestamp reset, so a down backend is probed at most once
// per window instead of on every request. Callers therefore see a stale or
// empty list for up to the TTL after the backend changes state; this
// bounded staleness is the accepted trade for not hammering a dead
// backend.
//
// The returned slice is shared with the cache and must not be mutated.
func (c *Client) Models(ctx context.Context) []string {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	now := c.now()
	if c.cacheFilled && now.Sub(c.cacheTime) < modelCacheTTL {
		return c.cachedNames
	}

	names := c.fetchModelNames(ctx)
	c.cachedNames = names
	c.cacheFilled = true
	c.cacheTime = now
	return names
}

// fetchModelNames performs one /api/tags call. Any failure, HTTP or
// decode, degrades to an empty list.
func (c *Client) fetchModelNames(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, tagsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil
	}
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("model directory fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("model directory fetch returned non-200",
			"status", resp.StatusCode)
		return nil
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		slog.Debug("model directory decode failed", "error", err)
		return nil
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	return names
}

// BestTextModel resolves the preferred text model from the cached
// directory. Empty string means no model is installed.
func (c *Client) BestTextModel(ctx context.Context) string {
	return BestTextModel(c.Models(ctx))
}

// BestVisionModel resolves a vision-capable model from the cached
// directory. Empty string means none is installed.
func (c *Client) BestVisionModel(ctx context.Context) string {
	return BestVisionModel(c.Models(ctx))
}
