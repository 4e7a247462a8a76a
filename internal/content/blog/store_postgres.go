// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package blog provides the PostgreSQL implementation for article data access.

It relies on native Postgres capabilities rather than application-level loops:
  - text[] columns: Tag lists stored and scanned without junction tables.
  - Atomic counters: 'views = views + 1 RETURNING *' eliminates the classic
    read-modify-write lost-update race on concurrent page views.
  - Foreign keys: Category references enforced at the storage boundary.
*/
package blog

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

// NewRepository constructs a PostgreSQL backed blog store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// blogColumns is the canonical SELECT column list in Scan order.
func blogColumns() string {
	t := schema.Blog
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Title, t.Slug, t.Content, t.Author, t.Tags,
		t.CategoryID, t.CoverImage, t.Views, t.CreatedAt, t.UpdatedAt)
}

// scanBlog hydrates a single row into a [Blog].
func scanBlog(row pgx.Row) (*Blog, error) {
	var blog Blog
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Content,
		&blog.Author,
		&blog.Tags,
		&blog.CategoryID,
		&blog.CoverImage,
		&blog.Views,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	return &blog, nil
}

/*
List retrieves all blogs ordered by creation time descending.

Description: Applies an optional category restriction. The full-list
contract is deliberate; the dashboard truncates client-side.

Parameters:
  - context: context.Context
  - categoryID: string ("" means unfiltered)

Returns:
  - []*Blog: Slice of hydrated blogs
  - error: Storage failures
*/
func (repository *repository) List(context context.Context, categoryID string) ([]*Blog, error) {

	// Query construction with optional category restriction
	query := fmt.Sprintf(`SELECT %s FROM %s`, blogColumns(), schema.Blog.Table)
	var args []any

	if categoryID != "" {
		query += fmt.Sprintf(" WHERE %s = $1", schema.Blog.CategoryID)
		args = append(args, categoryID)
	}
	query += fmt.Sprintf(" ORDER BY %s DESC", schema.Blog.CreatedAt)

	// Query execution
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list blogs: %w", err)
	}
	defer rows.Close()

	// Entity hydration
	blogs := []*Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	return blogs, rows.Err()
}

/*
FindByID returns a single blog by its identifier.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Blog: Hydrated entity
  - error: apperr.NotFound on absent rows
*/
func (repository *repository) FindByID(context context.Context, id string) (*Blog, error) {

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		blogColumns(), schema.Blog.Table, schema.Blog.ID)

	blog, err := scanBlog(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Blog")
		}
		return nil, fmt.Errorf("postgres: failed to find blog by id: %w", err)
	}

	return blog, nil
}

/*
SlugExists reports whether the slug is already taken.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - bool: True when a row with this slug exists
  - error: Storage failures
*/
func (repository *repository) SlugExists(context context.Context, slug string) (bool, error) {

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Blog.Table, schema.Blog.Slug)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check blog slug: %w", err)
	}

	return exists, nil
}

/*
Create inserts a new blog record.

Description: Unique-slug and category-reference violations surface as
Conflict through the dberr bridge rather than raw SQLSTATE errors.

Parameters:
  - context: context.Context
  - blog: *Blog

Returns:
  - error: Conflict or storage failure
*/
func (repository *repository) Create(context context.Context, blog *Blog) error {

	t := schema.Blog
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s
	`,
		t.Table,
		t.ID, t.Title, t.Slug, t.Content, t.Author, t.Tags, t.CategoryID, t.CoverImage, t.Views,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Author,
		blog.Tags,
		blog.CategoryID,
		blog.CoverImage,
		blog.Views,
	).Scan(&blog.CreatedAt, &blog.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create blog")
	}

	return nil
}

/*
Update overwrites the stored blog with the given entity state.

Parameters:
  - context: context.Context
  - blog: *Blog (merged state, all columns written)

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) Update(context context.Context, blog *Blog) error {

	t := schema.Blog
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $7
		RETURNING %s
	`,
		t.Table,
		t.Title, t.Content, t.Author, t.Tags, t.CategoryID, t.CoverImage, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		blog.Title,
		blog.Content,
		blog.Author,
		blog.Tags,
		blog.CategoryID,
		blog.CoverImage,
		blog.ID,
	).Scan(&blog.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Blog")
		}
		return dberr.Wrap(err, "update blog")
	}

	return nil
}

/*
Delete removes a blog permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) Delete(context context.Context, id string) error {

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Blog.Table, schema.Blog.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete blog: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Blog")
	}

	return nil
}

/*
IncrementView atomically bumps the view counter and returns the fresh row.

Description: A direct 'views = views + 1' update closes the lost-update
window that a load-increment-save cycle would leave open under concurrent
page views.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Blog: The row after the increment
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) IncrementView(context context.Context, id string) (*Blog, error) {

	t := schema.Blog
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + 1
		WHERE %s = $1
		RETURNING %s
	`, t.Table, t.Views, t.Views, t.ID, blogColumns())

	blog, err := scanBlog(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Blog")
		}
		return nil, fmt.Errorf("postgres: failed to increment blog views: %w", err)
	}

	return blog, nil
}
