// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/database/schema"
	"github.com/nexpad/nexpad/internal/platform/dberr"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed account store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
FindByEmail returns the account with the given email.

Returns:
  - *User: Hydrated account including the password hash
  - error: apperr.NotFound on absent rows
*/
func (repository *repository) FindByEmail(context context.Context, email string) (*User, error) {

	a := schema.Account
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, a.CreatedAt, a.UpdatedAt,
		a.Table,
		a.Email,
	)

	var user User
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres: failed to find account by email: %w", err)
	}

	return &user, nil
}

/*
Create inserts a new admin account.

Returns:
  - error: Conflict when the email unique index rejects the row
*/
func (repository *repository) Create(context context.Context, user *User) error {

	a := schema.Account
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		a.Table,
		a.ID, a.Email, a.PasswordHash, a.DisplayName,
		a.CreatedAt, a.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create account")
	}

	return nil
}
