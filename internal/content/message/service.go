// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package message

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// # Service Layer

// Service orchestrates the business logic for contact messages.
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

// # Message Operations

/*
Create validates and persists a contact-form submission.

Description: Every field is checked independently so the form can render
all failures at once instead of one per round-trip. The email is
lowercased and trimmed before it is stored.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Message: The created record
  - error: ValidationError carrying the full per-field detail map
*/
func (service *Service) Create(context context.Context, input Input) (*Message, error) {

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Message = strings.TrimSpace(input.Message)

	// Presence first, then bounds; each field reports independently
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldMessage, input.Message)
	if input.Name != "" {
		validator.MinLen(FieldName, input.Name, NameMinLen)
		validator.MaxLen(FieldName, input.Name, NameMaxLen)
	}
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if input.Message != "" {
		validator.MinLen(FieldMessage, input.Message, MessageMinLen)
		validator.MaxLen(FieldMessage, input.Message, MessageMaxLen)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := service.repo.Create(context, entity); err != nil {
		return nil, err
	}

	service.logger.Info("message_received", slog.String("message_id", entity.ID))

	return entity, nil
}

/*
List retrieves all messages, newest first.

Returns:
  - []*Message: Hydrated messages
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]*Message, error) {
	return service.repo.List(context)
}

/*
Delete removes a message permanently.

Returns:
  - error: NotFound when absent
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("message_deleted", slog.String("message_id", id))

	return nil
}
