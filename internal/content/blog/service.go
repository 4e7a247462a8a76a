// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package blog

import (
	"context"
	"log/slog"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/pointer"
	"github.com/nexpad/nexpad/pkg/slug"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldCategory = "categoryId"
)

// # Service Layer

// Service orchestrates the business logic for blogs.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Blog Operations

/*
List retrieves all blogs, newest first, optionally restricted to one category.

Description: The sentinel "all" (or an empty filter) means no restriction,
matching the dashboard's category dropdown semantics. Any other value must
be a well-formed category id.

Parameters:
  - context: context.Context
  - category: string (Category UUID, "all", or "")

Returns:
  - []*Blog: Matching blogs, created_at DESC
  - error: BadRequest on a malformed filter, storage failures
*/
func (service *Service) List(context context.Context, category string) ([]*Blog, error) {
	if category == CategoryAll || category == "" {
		return service.repo.List(context, "")
	}
	if !validate.IsUUID(category) {
		return nil, apperr.BadRequest("Malformed category filter")
	}
	return service.repo.List(context, category)
}

/*
Get retrieves a single blog by its identifier.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Blog: The hydrated entity
  - error: NotFound when absent
*/
func (service *Service) Get(context context.Context, id string) (*Blog, error) {
	return service.repo.FindByID(context, id)
}

/*
Create validates and persists a new blog.

Description: The slug is derived from the title through the Persian-aware
slugify pipeline; a timestamp suffix resolves collisions instead of
rejecting the write. Author falls back to the anonymous sentinel and the
view counter starts at zero.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Blog: The created record
  - error: ValidationError on missing fields, Conflict on category issues
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Blog, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title)
	validator.Required(FieldContent, input.Content)
	validator.Required(FieldCategory, input.CategoryID)
	if input.CategoryID != "" {
		validator.UUID(FieldCategory, input.CategoryID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Slug derivation with collision fallback
	blogSlug, err := service.uniqueSlug(context, input.Title)
	if err != nil {
		return nil, err
	}

	entity := &Blog{
		ID:         uuid.New(),
		Title:      input.Title,
		Slug:       blogSlug,
		Content:    input.Content,
		Author:     input.Author,
		Tags:       input.Tags,
		CategoryID: input.CategoryID,
		CoverImage: input.CoverImage,
		Views:      0,
	}
	if entity.Author == "" {
		entity.Author = DefaultAuthor
	}
	if entity.Tags == nil {
		entity.Tags = []string{}
	}

	// Storage persistence
	if err := service.repo.Create(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("blog_created",
		slog.String("blog_id", entity.ID),
		slog.String("slug", entity.Slug),
		slog.String("category_id", entity.CategoryID),
	)

	return entity, nil
}

/*
Update applies a partial patch to an existing blog.

Description: Only the provided fields replace stored values; nil patch
fields leave the current state untouched. The slug is stable across
updates to keep published URLs alive.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *Blog: The updated record
  - error: NotFound when absent, ValidationError on empty title patch
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Blog, error) {

	// Load current state to merge the patch into
	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Patch validation: a provided title must not be blank
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title)
	}
	if input.CategoryID != nil {
		validator.UUID(FieldCategory, *input.CategoryID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Field merge
	entity.Title = pointer.Fallback(input.Title, entity.Title)
	entity.Content = pointer.Fallback(input.Content, entity.Content)
	entity.CategoryID = pointer.Fallback(input.CategoryID, entity.CategoryID)
	entity.Author = pointer.Fallback(input.Author, entity.Author)
	if input.CoverImage != nil {
		entity.CoverImage = input.CoverImage
	}
	if input.Tags != nil {
		entity.Tags = *input.Tags
	}

	if err := service.repo.Update(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("blog_updated", slog.String("blog_id", entity.ID))

	return entity, nil
}

/*
Delete removes a blog permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: NotFound when absent
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("blog_deleted", slog.String("blog_id", id))

	return nil
}

/*
IncrementView bumps the public view counter by exactly one.

Description: Delegates to the repository's atomic increment; the returned
entity reflects the post-increment state.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Blog: The row after the increment
  - error: NotFound when absent
*/
func (service *Service) IncrementView(context context.Context, id string) (*Blog, error) {
	return service.repo.IncrementView(context, id)
}

// # Internal Helpers

// uniqueSlug derives a slug from the title, appending a timestamp suffix
// when the base form is already taken.
func (service *Service) uniqueSlug(context context.Context, title string) (string, error) {
	base := slug.From(title)
	if base == "" {
		return "", validate.RequiredError(FieldTitle, "Title must contain at least one letter or digit")
	}

	taken, err := service.repo.SlugExists(context, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	return slug.WithTimestampSuffix(base), nil
}
