// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"log/slog"

	"github.com/khemetlabs/khemet/services/assistant/catalog"
	"github.com/khemetlabs/khemet/services/assistant/datatypes"
	"github.com/khemetlabs/khemet/services/assistant/observability"
)

// =============================================================================
// Upload Validation
// =============================================================================

// maxUploadBytes caps the whole multipart body. Images beyond 8 MiB are
// rejected before any model work.
const maxUploadBytes = 8 << 20

// allowedImageExtensions are the accepted upload file extensions.
var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// allowedImageFile reports whether a filename carries an accepted
// extension.
func allowedImageFile(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}
	return allowedImageExtensions[strings.ToLower(filename[idx+1:])]
}

// =============================================================================
// Vision Assistant
// =============================================================================

// HandleVision answers POST /api/ai-vision.
//
// # Description
//
// Accepts a multipart upload: required file field "file", optional text
// field "question". The image is processed entirely in memory; nothing
// touches disk. Validation failures respond 400 with ok=false; a
// completed analysis attempt responds 200 with ok=true, carrying either
// the model's analysis or a displayable failure message. When the
// analysis mentions a catalogue artifact, a dataset match block is
// appended.
func (h *AssistantHandler) HandleVision(c *gin.Context) {
	start := time.Now()
	endpoint := observability.EndpointVision
	requestID := uuid.NewString()

	ctx, span := h.tracer.Start(c.Request.Context(), "HandleVision")
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	success := false
	defer func() {
		if m := observability.DefaultMetrics; m != nil {
			m.RecordRequest(endpoint, success)
		}
	}()

	// Step 1: Bound the body before touching the multipart reader.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	// Step 2: Validate the upload.
	fileHeader, err := c.FormFile("file")
	if err != nil {
		span.SetStatus(codes.Error, "no file provided")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeValidation)
		}
		c.JSON(http.StatusBadRequest, datatypes.VisionResponse{
			Ok: false, Response: "No file provided.",
		})
		return
	}
	if fileHeader.Filename == "" {
		span.SetStatus(codes.Error, "empty filename")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeValidation)
		}
		c.JSON(http.StatusBadRequest, datatypes.VisionResponse{
			Ok: false, Response: "No selected file.",
		})
		return
	}
	if !allowedImageFile(fileHeader.Filename) {
		span.SetStatus(codes.Error, "disallowed file type")
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, observability.ErrorCodeValidation)
		}
		c.JSON(http.StatusBadRequest, datatypes.VisionResponse{
			Ok: false, Response: "File type not allowed. Use PNG/JPG/GIF.",
		})
		return
	}

	// Step 3: Read the image into memory.
	file, err := fileHeader.Open()
	if err != nil {
		h.visionServerError(c, span, endpoint, requestID, err)
		return
	}
	image, err := io.ReadAll(file)
	_ = file.Close()
	if err != nil {
		h.visionServerError(c, span, endpoint, requestID, err)
		return
	}
	span.SetAttributes(attribute.Int("upload.bytes", len(image)))

	// Step 4: Run the analysis.
	question := strings.TrimSpace(c.PostForm("question"))
	if question == "" {
		question = defaultVisionQuestion
	}

	analysis, err := h.client.Identify(ctx, image, visionPrompt(question))
	if err != nil {
		// Backend failures still complete the request: the display
		// string is the analysis result the frontend renders.
		span.RecordError(err)
		slog.Error("vision analysis failed",
			"error", err,
			"requestId", requestID,
		)
		if m := observability.DefaultMetrics; m != nil {
			m.RecordError(endpoint, errorCodeFor(err))
		}
		c.JSON(http.StatusOK, datatypes.VisionResponse{
			Ok: true, Response: visionErrorMessage(err),
		})
		return
	}

	// Step 5: Cross-reference the analysis against the catalogue.
	if match := catalog.MatchArtifact(analysis, h.entries); match != nil {
		analysis += datasetMatchHeader + catalog.Summarize(match)
	}

	success = true
	slog.Info("vision analysis delivered",
		"requestId", requestID,
		"durationMs", time.Since(start).Milliseconds(),
	)
	c.JSON(http.StatusOK, datatypes.VisionResponse{Ok: true, Response: analysis})
}

// visionServerError reports an unexpected upload processing failure. The
// detail is logged; the client sees a generic message.
func (h *AssistantHandler) visionServerError(c *gin.Context, span trace.Span, endpoint observability.Endpoint, requestID string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "upload processing failed")
	slog.Error("vision upload processing failed",
		"error", err,
		"requestId", requestID,
	)
	if m := observability.DefaultMetrics; m != nil {
		m.RecordError(endpoint, observability.ErrorCodeInternal)
	}
	c.JSON(http.StatusInternalServerError, datatypes.VisionResponse{
		Ok: false, Response: serverErrorMessage,
	})
}
