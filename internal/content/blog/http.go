// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package blog provides the HTTP interface for article management.

# Routing Strategy

  - Public: Discovery endpoints (GET /blogs, GET /blogs/{id}) and the
    PATCH view-increment fired by the public article page.
  - Restricted: Mutative endpoints (POST, PUT, DELETE) require a verified
    admin session; the guard is mounted in the router, never re-derived
    from how the calling page was reached.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/middleware"
	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for blog management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new blog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches blog endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/blogs", handler.List)
	api.Get("/blogs/{id}", handler.Get)

	// Public view tracking fired once per article render
	api.Patch("/blogs/{id}", handler.IncrementView)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/blogs", handler.Create)
		admin.Put("/blogs/{id}", handler.Update)
		admin.Delete("/blogs/{id}", handler.Delete)
	})
}

// # Blog Retrieval

/*
GET /api/blogs.

Description: Returns every blog, newest first. An optional category filter
restricts results to a single category; "all" disables the filter.

Request:
  - category: string (Query: category UUID or "all")

Response:
  - 200: []Blog: Full list
  - 500: Storage failure
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")

	blogs, err := handler.service.List(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blogs)
}

/*
GET /api/blogs/{id}.

Request:
  - id: string (UUID)

Response:
  - 200: Blog: The article
  - 400: Malformed identifier
  - 404: Blog not found
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

// # Blog Creation

/*
POST /api/blogs.

Request:
  - body: CreateInput

Response:
  - 201: Blog: Created article
  - 400: Invalid payload or validation failure
  - 401: Authentication required
  - 409: Category reference or slug conflict
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
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

// # Blog Mutation

/*
PUT /api/blogs/{id}.

Description: Partial patch; absent JSON fields leave stored values intact.

Request:
  - id: string (UUID)
  - body: UpdateInput

Response:
  - 200: Blog: Updated article
  - 400: Malformed identifier or invalid payload
  - 401: Authentication required
  - 404: Blog not found
*/
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
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
DELETE /api/blogs/{id}.

Response:
  - 204: Deleted
  - 400: Malformed identifier
  - 401: Authentication required
  - 404: Blog not found
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

/*
PATCH /api/blogs/{id}.

Description: Atomically increments the view counter and returns the fresh
article. Fired once per public page render; not deduplicated per visitor.

Response:
  - 200: Blog: Post-increment state
  - 400: Malformed identifier
  - 404: Blog not found
*/
func (handler *Handler) IncrementView(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.IncrementView(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}
