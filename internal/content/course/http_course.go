// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package course provides the HTTP interface for course and lesson management.

# Routing Strategy

  - Public: Course discovery, lesson sidebars, lesson bodies, and the
    first-lesson redirect resolver.
  - Restricted: All mutative endpoints require a verified admin session.

Lesson routes are nested under their owning course so the dual-id scoping
is visible in the URL shape itself.
*/
package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/middleware"
	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for course and lesson management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new course [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches course and lesson endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints
	api.Get("/courses", handler.ListCourses)
	api.Get("/courses/{id}", handler.GetCourse)
	api.Get("/courses/{id}/lessons", handler.ListLessons)
	api.Get("/courses/{id}/lessons/first", handler.FirstLesson)
	api.Get("/courses/{id}/lessons/{lessonId}", handler.GetLesson)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/courses", handler.CreateCourse)
		admin.Put("/courses/{id}", handler.UpdateCourse)
		admin.Delete("/courses/{id}", handler.DeleteCourse)
		admin.Post("/courses/{id}/lessons", handler.CreateLesson)
		admin.Put("/courses/{id}/lessons/{lessonId}", handler.UpdateLesson)
		admin.Delete("/courses/{id}/lessons/{lessonId}", handler.DeleteLesson)
	})
}

// # Course Endpoints

/*
GET /api/courses.

Description: Returns every course, newest first, each annotated with its
computed lessonsCount.

Response:
  - 200: []Course: Full list
  - 500: Storage failure
*/
func (handler *Handler) ListCourses(writer http.ResponseWriter, request *http.Request) {
	courses, err := handler.service.ListCourses(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, courses)
}

/*
GET /api/courses/{id}.

Response:
  - 200: Course: The course with its lessonsCount
  - 400: Malformed identifier
  - 404: Course not found
*/
func (handler *Handler) GetCourse(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.GetCourse(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
POST /api/courses.

Request:
  - body: CreateCourseInput (title + coverImage required)

Response:
  - 201: Course: Created record
  - 400: Invalid payload or validation failure
  - 401: Authentication required
*/
func (handler *Handler) CreateCourse(writer http.ResponseWriter, request *http.Request) {
	var input CreateCourseInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.CreateCourse(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/courses/{id}.

Description: Partial patch; the slug regenerates only when a non-empty
title is part of the patch.

Response:
  - 200: Course: Updated record
  - 400: Malformed identifier or invalid payload
  - 401: Authentication required
  - 404: Course not found
*/
func (handler *Handler) UpdateCourse(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateCourseInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.UpdateCourse(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
DELETE /api/courses/{id}.

Description: Removes the course and cascades to its lessons.

Response:
  - 204: Deleted
  - 400: Malformed identifier
  - 401: Authentication required
  - 404: Course not found
*/
func (handler *Handler) DeleteCourse(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCourse(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
