// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package media exposes the admin upload endpoint for cover images.

Files land in the S3-compatible bucket under a covers/ prefix with a
generated name; the response carries the public URL the dashboard then
embeds in a blog or course record. An upload failure surfaces before any
dependent database write can happen.
*/
package media

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/middleware"
	"github.com/nexpad/nexpad/internal/platform/respond"
	"github.com/nexpad/nexpad/internal/platform/storage"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	// maxUploadSize bounds a single cover image (8 MiB).
	maxUploadSize = 8 << 20

	// keyPrefix namespaces cover uploads inside the bucket.
	keyPrefix = "covers/"
)

// allowedExtensions whitelists the image formats the dashboard produces.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// # Handler Implementation

// Handler implements the HTTP layer for cover-image uploads.
type Handler struct {
	store  *storage.Client
	logger *slog.Logger
}

// NewHandler constructs a new media [Handler]. A nil store means object
// storage is not configured; uploads then fail with a clear error instead
// of a panic.
func NewHandler(store *storage.Client, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// RegisterRoutes attaches the upload endpoint to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/media", handler.Upload)
		admin.Delete("/media/*", handler.Delete)
	})
}

// validKey reports whether key addresses an object this handler manages.
// Only single-segment names under the covers/ prefix are accepted.
func validKey(key string) bool {
	if !strings.HasPrefix(key, keyPrefix) {
		return false
	}
	name := strings.TrimPrefix(key, keyPrefix)
	return name != "" && !strings.ContainsAny(name, "/\\") && name != "." && name != ".."
}

/*
POST /api/media.

Description: Accepts a multipart form with a single "file" part, stores
it under covers/ with a generated name, and returns the public URL.

Request:
  - file: multipart part (jpg, jpeg, png, webp, gif; max 8 MiB)

Response:
  - 201: {url, key}: Public location of the stored object
  - 400: Missing part, oversized body, or unsupported format
  - 401: Authentication required
  - 502: Object storage rejected the upload
*/
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	if handler.store == nil {
		respond.Error(writer, request, apperr.Upstream("Object storage is not configured", nil))
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadSize)
	if err := request.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(writer, request, apperr.BadRequest("File exceeds the upload size limit"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("Missing 'file' form part"))
		return
	}
	defer file.Close()

	extension := strings.ToLower(path.Ext(header.Filename))
	contentType, ok := allowedExtensions[extension]
	if !ok {
		respond.Error(writer, request, apperr.BadRequest("Unsupported image format"))
		return
	}

	key := fmt.Sprintf("%s%s%s", keyPrefix, uuid.New(), extension)

	if err := handler.store.Upload(request.Context(), key, contentType, file, header.Size); err != nil {
		respond.Error(writer, request, apperr.Upstream("Failed to store the uploaded file", err))
		return
	}

	handler.logger.Info("cover_uploaded",
		slog.String("key", key),
		slog.Int64("size", header.Size),
	)

	respond.Created(writer, map[string]string{
		"url": handler.store.FileURL(key),
		"key": key,
	})
}

/*
DELETE /api/media/{key}.

Description: Removes a previously uploaded cover from the bucket, using
the key returned by the upload endpoint. The dashboard calls this when a
cover is replaced or its owning record is deleted.

Response:
  - 204: Deleted
  - 400: Key outside the covers/ namespace
  - 401: Authentication required
  - 502: Object storage rejected the delete
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	key := chi.URLParam(request, "*")
	if !validKey(key) {
		respond.Error(writer, request, apperr.BadRequest("Invalid object key"))
		return
	}

	if handler.store == nil {
		respond.Error(writer, request, apperr.Upstream("Object storage is not configured", nil))
		return
	}

	if err := handler.store.Delete(request.Context(), key); err != nil {
		respond.Error(writer, request, apperr.Upstream("Failed to delete the stored file", err))
		return
	}

	handler.logger.Info("cover_deleted", slog.String("key", key))

	respond.NoContent(writer)
}
