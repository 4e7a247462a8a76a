// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/middleware"
	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for contact messages.
type Handler struct {
	service *Service
}

// NewHandler constructs a new message [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches message endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Public contact-form submission
	api.Post("/messages", handler.Create)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Get("/messages", handler.List)
		admin.Delete("/messages/{id}", handler.Delete)
	})
}

/*
POST /api/messages.

Description: Accepts an anonymous contact-form submission. Validation
failures return the full per-field detail map so the client can render
every problem at once.

Request:
  - body: Input (name, email, message — all required)

Response:
  - 201: Message: Stored submission
  - 400: Invalid payload or per-field validation failure
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
GET /api/messages.

Response:
  - 200: []Message: Full inbox, newest first
  - 401: Authentication required
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	messages, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messages)
}

/*
DELETE /api/messages/{id}.

Response:
  - 204: Deleted
  - 400: Malformed identifier
  - 401: Authentication required
  - 404: Message not found
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
