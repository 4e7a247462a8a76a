// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/middleware"
	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for category management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches category endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/categories", handler.List)
	api.Get("/categories/{id}", handler.Get)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/categories", handler.Create)
		admin.Put("/categories/{id}", handler.Update)
		admin.Delete("/categories/{id}", handler.Delete)
	})
}

/*
GET /api/categories.

Description: Returns every category, newest first, each annotated
with its computed blogCount.

Response:
  - 200: []Category: Full list
  - 500: Storage failure
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
GET /api/categories/{id}.

Response:
  - 200: Category: The category with its blogCount
  - 400: Malformed identifier
  - 404: Category not found
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
POST /api/categories.

Request:
  - body: Input (name + slug, both required)

Response:
  - 201: Category: Created record
  - 400: Invalid payload or validation failure
  - 401: Authentication required
  - 409: Slug already used
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
PUT /api/categories/{id}.

Request:
  - body: Input (name + slug, both required)

Response:
  - 200: Category: Updated record
  - 400: Malformed identifier or validation failure
  - 401: Authentication required
  - 404: Category not found
  - 409: Slug already used
*/
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
DELETE /api/categories/{id}.

Response:
  - 204: Deleted
  - 400: Malformed identifier
  - 401: Authentication required
  - 404: Category not found
  - 409: Category still referenced by blogs
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
