// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/assistant/handlers"
	"github.com/khemetlabs/khemet/services/ollama"
)

// SetupRoutes wires the HTTP surface: health and metrics at the root, the
// assistant and catalogue endpoints under /api.
func SetupRoutes(router *gin.Engine, client *ollama.Client, entries []datatypes.Artifact) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	assistant := handlers.NewAssistantHandler(client, entries)
	catalogue := handlers.NewCatalogHandler(entries)

	api := router.Group("/api")
	{
		api.POST("/ai-assistant", assistant.HandleAssistant)
		api.POST("/ai-stream", assistant.HandleStream)
		api.POST("/ai-vision", assistant.HandleVision)
		api.GET("/ollama-status", assistant.HandleStatus)

		api.GET("/artifacts", catalogue.HandleList)
		api.GET("/artifacts/:id", catalogue.HandleByID)
		api.GET("/statistics", catalogue.HandleStatistics)
	}
}
