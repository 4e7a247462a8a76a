// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package message

import (
	"context"
	"fmt"

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

// NewRepository constructs a PostgreSQL backed message store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
List retrieves all messages ordered by creation time descending.

Returns:
  - []*Message: Slice of hydrated messages
  - error: Storage failures
*/
func (repository *repository) List(context context.Context) ([]*Message, error) {

	m := schema.Message
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`, m.ID, m.Name, m.Email, m.Message, m.CreatedAt, m.Table, m.CreatedAt)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*Message{}
	for rows.Next() {
		var message Message
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Message,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan message: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, rows.Err()
}

/*
Create inserts a new message record.

Returns:
  - error: Storage failures
*/
func (repository *repository) Create(context context.Context, message *Message) error {

	m := schema.Message
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, m.Table, m.ID, m.Name, m.Email, m.Message, m.CreatedAt)

	err := repository.pool.QueryRow(context, query,
		message.ID,
		message.Name,
		message.Email,
		message.Message,
	).Scan(&message.CreatedAt)

	if err != nil {
		return dberr.Wrap(err, "create message")
	}

	return nil
}

/*
Delete removes a message permanently.

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) Delete(context context.Context, id string) error {

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Message.Table, schema.Message.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Message")
	}

	return nil
}
