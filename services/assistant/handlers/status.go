// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/assistant/observability"
)

// HandleStatus answers GET /api/ollama-status.
//
// # Description
//
// Probes backend reachability and, only when reachable, resolves the
// preferred models. A down backend reports running=false with both model
// fields null; model resolution against a dead backend would just burn
// the probe budget again.
func (h *AssistantHandler) HandleStatus(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "HandleStatus")
	defer span.End()

	if m := observability.DefaultMetrics; m != nil {
		defer m.RecordRequest(observability.EndpointStatus, true)
	}

	resp := datatypes.StatusResponse{Running: h.client.IsRunning(ctx)}
	if resp.Running {
		if name := h.client.BestTextModel(ctx); name != "" {
			resp.TextModel = &name
		}
		if name := h.client.BestVisionModel(ctx); name != "" {
			resp.VisionModel = &name
		}
	}
	c.JSON(http.StatusOK, resp)
}
