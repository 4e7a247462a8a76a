// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/pointer"
	"github.com/nexpad/nexpad/pkg/slug"
	"github.com/nexpad/nexpad/pkg/uuid"
)

// ErrEmptyCourse signals a first-lesson lookup on a course without lessons.
// It is 404-class but carries a distinct code so the client can render a
// "coming soon" state instead of a broken link.
func ErrEmptyCourse() *apperr.AppError {
	return &apperr.AppError{
		Code:       "EMPTY_COURSE",
		Message:    "Course has no lessons yet",
		HTTPStatus: http.StatusNotFound,
	}
}

// # Lesson Operations

/*
ListLessons retrieves the sidebar projection of a course's lessons.

Description: Verifies the course exists first so an unknown course id
yields NotFound rather than an empty list.

Returns:
  - []*LessonSummary: Sorted by order ASC, stable for equal order
  - error: NotFound when the course is absent
*/
func (service *Service) ListLessons(context context.Context, courseID string) ([]*LessonSummary, error) {
	if _, err := service.courseRepo.FindCourseByID(context, courseID); err != nil {
		return nil, err
	}
	return service.lessonRepo.ListLessons(context, courseID)
}

/*
GetLesson retrieves the lesson matching BOTH the course and lesson id.

Returns:
  - *Lesson: Hydrated entity
  - error: NotFound when either id does not match
*/
func (service *Service) GetLesson(context context.Context, courseID, lessonID string) (*Lesson, error) {
	return service.lessonRepo.FindLesson(context, courseID, lessonID)
}

/*
CreateLesson validates and persists a new lesson under a course.

Description: The owning course must exist. The slug is derived from the
title and must be unique across ALL lessons; a collision is resolved by
appending the last four digits of the millisecond clock rather than
rejecting the write.

Parameters:
  - context: context.Context
  - courseID: string (Owner UUID)
  - input: CreateLessonInput

Returns:
  - *Lesson: The created record
  - error: NotFound when the course is absent, ValidationError on missing fields
*/
func (service *Service) CreateLesson(context context.Context, courseID string, input CreateLessonInput) (*Lesson, error) {

	// The owning course is the existence anchor
	if _, err := service.courseRepo.FindCourseByID(context, courseID); err != nil {
		return nil, err
	}

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title)
	validator.Required(FieldContent, input.Content)
	if input.Order != nil {
		validator.Custom("order", *input.Order < 0, "Order must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Globally unique slug with collision fallback
	lessonSlug, err := service.uniqueLessonSlug(context, input.Title, "")
	if err != nil {
		return nil, err
	}

	entity := &Lesson{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    input.Title,
		Slug:     lessonSlug,
		Content:  input.Content,
		Order:    pointer.Val(input.Order),
	}

	if err := service.lessonRepo.CreateLesson(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("lesson_created",
		slog.String("lesson_id", entity.ID),
		slog.String("course_id", courseID),
		slog.Int("order", entity.Order),
	)

	return entity, nil
}

/*
UpdateLesson applies a partial patch to a lesson, scoped to its course.

Description: An empty patch is rejected outright. When the title changes,
the slug is regenerated and re-checked for global uniqueness excluding
the lesson itself; collisions get the timestamp suffix.

Returns:
  - *Lesson: The updated record
  - error: NotFound, ValidationError on empty or blank patch
*/
func (service *Service) UpdateLesson(context context.Context, courseID, lessonID string, input UpdateLessonInput) (*Lesson, error) {

	if input.IsEmpty() {
		return nil, apperr.ValidationError("Nothing to update")
	}

	entity, err := service.lessonRepo.FindLesson(context, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	// Patch validation
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title)
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
	}
	if input.Order != nil {
		validator.Custom("order", *input.Order < 0, "Order must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Slug follows the title, excluding the lesson itself from the check
	if input.Title != nil && *input.Title != entity.Title {
		newSlug, err := service.uniqueLessonSlug(context, *input.Title, entity.ID)
		if err != nil {
			return nil, err
		}
		entity.Slug = newSlug
	}

	// Field merge
	entity.Title = pointer.Fallback(input.Title, entity.Title)
	entity.Content = pointer.Fallback(input.Content, entity.Content)
	entity.Order = pointer.Fallback(input.Order, entity.Order)

	if err := service.lessonRepo.UpdateLesson(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("lesson_updated",
		slog.String("lesson_id", entity.ID),
		slog.String("course_id", courseID),
	)

	return entity, nil
}

/*
DeleteLesson removes the lesson matching both ids.

Returns:
  - error: NotFound when either id does not match
*/
func (service *Service) DeleteLesson(context context.Context, courseID, lessonID string) error {
	if err := service.lessonRepo.DeleteLesson(context, courseID, lessonID); err != nil {
		return err
	}

	service.logger.Info("lesson_deleted",
		slog.String("lesson_id", lessonID),
		slog.String("course_id", courseID),
	)

	return nil
}

/*
FirstLesson resolves the canonical entry lesson for a course.

Description: The lowest-order lesson (stable for ties) is the entry
point the course page redirects to. A course without lessons yields the
distinct EMPTY_COURSE signal.

Returns:
  - *LessonSummary: The entry lesson projection
  - error: NotFound for an unknown course, EMPTY_COURSE when it has no lessons
*/
func (service *Service) FirstLesson(context context.Context, courseID string) (*LessonSummary, error) {

	lessons, err := service.ListLessons(context, courseID)
	if err != nil {
		return nil, err
	}

	if len(lessons) == 0 {
		return nil, ErrEmptyCourse()
	}

	// ListLessons is order ASC, so index 0 is the entry point
	return lessons[0], nil
}

// # Internal Helpers

// uniqueLessonSlug derives a slug from the title, appending a timestamp
// suffix when another lesson already holds the base form.
func (service *Service) uniqueLessonSlug(context context.Context, title, excludeID string) (string, error) {
	base := slug.From(title)
	if base == "" {
		return "", validate.RequiredError(FieldTitle, "Title must contain at least one letter or digit")
	}

	taken, err := service.lessonRepo.LessonSlugExists(context, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	return slug.WithTimestampSuffix(base), nil
}
