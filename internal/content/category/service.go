// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	FieldName = "name"
	FieldSlug = "slug"
)

// # Service Layer

// Service orchestrates the business logic for categories.
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

// # Category Operations

/*
List retrieves all categories, newest first, with blog counts attached.

Returns:
  - []*Category: Hydrated categories
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

/*
Get retrieves a single category with its blog count.

Returns:
  - *Category: Hydrated entity
  - error: NotFound when absent
*/
func (service *Service) Get(context context.Context, id string) (*Category, error) {
	return service.repo.FindByID(context, id)
}

/*
Create validates and persists a new category.

Description: The slug is checked explicitly before the insert so a
duplicate yields a deliberate Conflict message rather than leaking a
constraint error; the unique index still backs the check against races.

Parameters:
  - context: context.Context
  - input: Input (name and slug, both required)

Returns:
  - *Category: The created record
  - error: ValidationError on missing fields, Conflict on duplicate slug
*/
func (service *Service) Create(context context.Context, input Input) (*Category, error) {

	normalized, err := service.validateInput(input)
	if err != nil {
		return nil, err
	}

	// Explicit duplicate pre-check
	taken, err := service.repo.SlugExists(context, normalized.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("This slug is already used by another category")
	}

	entity := &Category{
		ID:   uuid.New(),
		Name: normalized.Name,
		Slug: normalized.Slug,
	}

	if err := service.repo.Create(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", entity.ID),
		slog.String("slug", entity.Slug),
	)

	return entity, nil
}

/*
Update renames a category and replaces its slug.

Description: Unlike blogs and courses there is no partial patch; both
fields are required on every update.

Returns:
  - *Category: The updated record
  - error: ValidationError, NotFound, or Conflict on duplicate slug
*/
func (service *Service) Update(context context.Context, id string, input Input) (*Category, error) {

	normalized, err := service.validateInput(input)
	if err != nil {
		return nil, err
	}

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// A slug change must not collide with a different category
	if normalized.Slug != entity.Slug {
		taken, err := service.repo.SlugExists(context, normalized.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("This slug is already used by another category")
		}
	}

	entity.Name = normalized.Name
	entity.Slug = normalized.Slug

	if err := service.repo.Update(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", entity.ID))

	return entity, nil
}

/*
Delete removes a category permanently.

Description: Deletion is refused while blogs still reference the
category; the caller must reassign or delete those articles first.

Returns:
  - error: NotFound when absent, Conflict while referenced
*/
func (service *Service) Delete(context context.Context, id string) error {

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if entity.BlogCount > 0 {
		return apperr.Conflict("Category still has blogs assigned to it")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("category_id", id))

	return nil
}

// # Internal Helpers

// validateInput enforces presence and slug format, lowercasing the slug.
func (service *Service) validateInput(input Input) (Input, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.Required(FieldSlug, input.Slug)
	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}

	if err := validator.Err(); err != nil {
		return Input{}, err
	}

	return input, nil
}
