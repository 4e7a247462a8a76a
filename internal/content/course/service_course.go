// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import (
	"context"
	"log/slog"

	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/pointer"
	"github.com/nexpad/nexpad/pkg/slug"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldCoverImage = "coverImage"
)

// # Service Layer

// Service orchestrates the business logic for courses and lessons.
type Service struct {
	courseRepo CourseRepository
	lessonRepo LessonRepository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(courseRepo CourseRepository, lessonRepo LessonRepository, logger *slog.Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// # Course Operations

/*
ListCourses retrieves all courses, newest first, with lesson counts attached.

Returns:
  - []*Course: Hydrated courses
  - error: Storage failures
*/
func (service *Service) ListCourses(context context.Context) ([]*Course, error) {
	return service.courseRepo.ListCourses(context)
}

/*
GetCourse retrieves a single course with its lesson count.

Returns:
  - *Course: Hydrated entity
  - error: NotFound when absent
*/
func (service *Service) GetCourse(context context.Context, id string) (*Course, error) {
	return service.courseRepo.FindCourseByID(context, id)
}

/*
CreateCourse validates and persists a new course.

Description: Title and cover image are mandatory; the category label
falls back to "General". The slug is derived from the title through the
Persian-aware pipeline with a timestamp suffix on collision.

Parameters:
  - context: context.Context
  - input: CreateCourseInput

Returns:
  - *Course: The created record
  - error: ValidationError on missing fields
*/
func (service *Service) CreateCourse(context context.Context, input CreateCourseInput) (*Course, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title)
	validator.Required(FieldCoverImage, input.CoverImage)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Slug derivation with collision fallback
	courseSlug, err := service.uniqueCourseSlug(context, input.Title)
	if err != nil {
		return nil, err
	}

	entity := &Course{
		ID:          uuid.New(),
		Title:       input.Title,
		Slug:        courseSlug,
		Description: input.Description,
		Category:    input.Category,
		CoverImage:  input.CoverImage,
	}
	if entity.Category == "" {
		entity.Category = DefaultCategory
	}

	if err := service.courseRepo.CreateCourse(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("course_created",
		slog.String("course_id", entity.ID),
		slog.String("slug", entity.Slug),
	)

	return entity, nil
}

/*
UpdateCourse applies a partial patch to an existing course.

Description: Only the provided fields replace stored values. The slug is
regenerated only when a non-empty title is part of the patch.

Returns:
  - *Course: The updated record
  - error: NotFound when absent, ValidationError on blank mandatory patch
*/
func (service *Service) UpdateCourse(context context.Context, id string, input UpdateCourseInput) (*Course, error) {

	entity, err := service.courseRepo.FindCourseByID(context, id)
	if err != nil {
		return nil, err
	}

	// Patch validation: provided mandatory fields must not be blank
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title)
	}
	if input.CoverImage != nil {
		validator.Required(FieldCoverImage, *input.CoverImage)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Slug follows the title, but only when the title actually changes
	if input.Title != nil && *input.Title != entity.Title {
		newSlug, err := service.uniqueCourseSlug(context, *input.Title)
		if err != nil {
			return nil, err
		}
		entity.Slug = newSlug
	}

	// Field merge
	entity.Title = pointer.Fallback(input.Title, entity.Title)
	entity.Description = pointer.Fallback(input.Description, entity.Description)
	entity.Category = pointer.Fallback(input.Category, entity.Category)
	entity.CoverImage = pointer.Fallback(input.CoverImage, entity.CoverImage)

	if err := service.courseRepo.UpdateCourse(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("course_updated", slog.String("course_id", entity.ID))

	return entity, nil
}

/*
DeleteCourse removes a course permanently; its lessons cascade.

Returns:
  - error: NotFound when absent
*/
func (service *Service) DeleteCourse(context context.Context, id string) error {
	if err := service.courseRepo.DeleteCourse(context, id); err != nil {
		return err
	}

	service.logger.Info("course_deleted", slog.String("course_id", id))

	return nil
}

// # Internal Helpers

// uniqueCourseSlug derives a slug from the title, appending a timestamp
// suffix when the base form is already taken.
func (service *Service) uniqueCourseSlug(context context.Context, title string) (string, error) {
	base := slug.From(title)
	if base == "" {
		return "", validate.RequiredError(FieldTitle, "Title must contain at least one letter or digit")
	}

	taken, err := service.courseRepo.CourseSlugExists(context, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	return slug.WithTimestampSuffix(base), nil
}
