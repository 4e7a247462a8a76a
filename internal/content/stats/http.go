// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/middleware"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for dashboard statistics.
type Handler struct {
	service *Service
}

// NewHandler constructs a new stats [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the statistics endpoint to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Get("/stats", handler.Get)
	})
}

/*
GET /api/stats.

Description: Returns the dashboard snapshot: totals plus dense
12-element monthly arrays (all years combined, January = index 0).

Response:
  - 200: Stats: The snapshot
  - 401: Authentication required
  - 500: Storage failure
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.service.Compute(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, snapshot)
}
