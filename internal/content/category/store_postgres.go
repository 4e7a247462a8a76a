// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package category provides the PostgreSQL implementation for taxonomy data access.

The blogCount aggregate is resolved with a single LEFT JOIN + GROUP BY
round-trip for the whole list, instead of one COUNT query per category.
*/
package category

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

// NewRepository constructs a PostgreSQL backed category store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// countingSelect builds the joined SELECT resolving blogCount in one query.
func countingSelect() string {
	c := schema.Category
	b := schema.Blog
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, COUNT(b.%s) AS blog_count, c.%s, c.%s
		FROM %s c
		LEFT JOIN %s b ON b.%s = c.%s
	`,
		c.ID, c.Name, c.Slug, b.ID, c.CreatedAt, c.UpdatedAt,
		c.Table,
		b.Table, b.CategoryID, c.ID,
	)
}

// scanCategory hydrates a single joined row into a [Category].
func scanCategory(row pgx.Row) (*Category, error) {
	var category Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.BlogCount,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

/*
List retrieves all categories, newest first, with blog counts attached.

Returns:
  - []*Category: Slice of hydrated categories
  - error: Storage failures
*/
func (repository *repository) List(context context.Context) ([]*Category, error) {

	c := schema.Category
	query := countingSelect() + fmt.Sprintf(`
		GROUP BY c.%s
		ORDER BY c.%s DESC
	`, c.ID, c.CreatedAt)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

/*
FindByID returns a single category with its blog count.

Returns:
  - *Category: Hydrated entity
  - error: apperr.NotFound on absent rows
*/
func (repository *repository) FindByID(context context.Context, id string) (*Category, error) {

	c := schema.Category
	query := countingSelect() + fmt.Sprintf(`
		WHERE c.%s = $1
		GROUP BY c.%s
	`, c.ID, c.ID)

	category, err := scanCategory(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("postgres: failed to find category by id: %w", err)
	}

	return category, nil
}

/*
SlugExists reports whether the slug is already taken.

Returns:
  - bool: True when a row with this slug exists
  - error: Storage failures
*/
func (repository *repository) SlugExists(context context.Context, slug string) (bool, error) {

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Category.Table, schema.Category.Slug)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check category slug: %w", err)
	}

	return exists, nil
}

/*
Create inserts a new category record.

Returns:
  - error: Conflict when the slug unique index rejects the row
*/
func (repository *repository) Create(context context.Context, category *Category) error {

	c := schema.Category
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`, c.Table, c.ID, c.Name, c.Slug, c.CreatedAt, c.UpdatedAt)

	err := repository.pool.QueryRow(context, query,
		category.ID,
		category.Name,
		category.Slug,
	).Scan(&category.CreatedAt, &category.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create category")
	}

	return nil
}

/*
Update renames a category and replaces its slug.

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) Update(context context.Context, category *Category) error {

	c := schema.Category
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s
	`, c.Table, c.Name, c.Slug, c.UpdatedAt, c.ID, c.UpdatedAt)

	err := repository.pool.QueryRow(context, query,
		category.Name,
		category.Slug,
		category.ID,
	).Scan(&category.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Category")
		}
		return dberr.Wrap(err, "update category")
	}

	return nil
}

/*
Delete removes a category permanently.

Description: The blog foreign key is declared RESTRICT, so a delete while
articles still reference the category surfaces as Conflict through the
dberr bridge instead of silently orphaning those articles.

Returns:
  - error: apperr.NotFound if missing, Conflict while referenced
*/
func (repository *repository) Delete(context context.Context, id string) error {

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Category.Table, schema.Category.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete category")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
