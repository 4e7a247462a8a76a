// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import (
	"net/http"

	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Lesson Endpoints

/*
GET /api/courses/{id}/lessons.

Description: Returns the sidebar projection {id, title, order} of every
lesson in the course, sorted by order ascending.

Response:
  - 200: []LessonSummary: Ordered projection
  - 400: Malformed course identifier
  - 404: Course not found
*/
func (handler *Handler) ListLessons(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lessons, err := handler.service.ListLessons(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lessons)
}

/*
GET /api/courses/{id}/lessons/{lessonId}.

Description: Returns the full lesson body. Both identifiers must match;
a lesson reached through the wrong course is treated as missing.

Response:
  - 200: Lesson: Full lesson body
  - 400: Malformed identifier
  - 404: Lesson not found in this course
*/
func (handler *Handler) GetLesson(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	lessonID, err := requestutil.UUID(request, "lessonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.GetLesson(request.Context(), courseID, lessonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
GET /api/courses/{id}/lessons/first.

Description: Resolves the canonical entry lesson (lowest order) the
course page redirects to.

Response:
  - 200: LessonSummary: The entry lesson
  - 400: Malformed course identifier
  - 404: Course not found, or EMPTY_COURSE when it has no lessons
*/
func (handler *Handler) FirstLesson(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.FirstLesson(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
POST /api/courses/{id}/lessons.

Request:
  - body: CreateLessonInput (title + content required, order optional)

Response:
  - 201: Lesson: Created record
  - 400: Invalid payload or validation failure
  - 401: Authentication required
  - 404: Course not found
*/
func (handler *Handler) CreateLesson(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateLessonInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.CreateLesson(request.Context(), courseID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/courses/{id}/lessons/{lessonId}.

Description: Partial patch of {title, content, order}; an empty patch is
rejected. A title change regenerates the slug with a collision suffix.

Response:
  - 200: Lesson: Updated record
  - 400: Malformed identifier, invalid payload, or empty patch
  - 401: Authentication required
  - 404: Lesson not found in this course
*/
func (handler *Handler) UpdateLesson(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	lessonID, err := requestutil.UUID(request, "lessonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateLessonInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.UpdateLesson(request.Context(), courseID, lessonID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
DELETE /api/courses/{id}/lessons/{lessonId}.

Response:
  - 204: Deleted
  - 400: Malformed identifier
  - 401: Authentication required
  - 404: Lesson not found in this course
*/
func (handler *Handler) DeleteLesson(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	lessonID, err := requestutil.UUID(request, "lessonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLesson(request.Context(), courseID, lessonID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
