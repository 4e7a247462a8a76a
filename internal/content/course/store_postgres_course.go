// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package course provides the PostgreSQL implementation for course and lesson
data access.

The lessonsCount aggregate is resolved with a single LEFT JOIN + GROUP BY
round-trip; the lesson foreign key is declared ON DELETE CASCADE, so
removing a course removes its lessons in the same statement.
*/
package course

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

// # PostgreSQL Repositories

// repository implements [CourseRepository] and [LessonRepository] using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed course and lesson store.
func NewRepository(pool *pgxpool.Pool) (CourseRepository, LessonRepository) {
	repo := &repository{pool: pool}
	return repo, repo
}

// countingSelect builds the joined SELECT resolving lessonsCount in one query.
func countingSelect() string {
	c := schema.Course
	l := schema.Lesson
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, COUNT(l.%s) AS lessons_count, c.%s, c.%s
		FROM %s c
		LEFT JOIN %s l ON l.%s = c.%s
	`,
		c.ID, c.Title, c.Slug, c.Description, c.Category, c.CoverImage, l.ID, c.CreatedAt, c.UpdatedAt,
		c.Table,
		l.Table, l.CourseID, c.ID,
	)
}

// scanCourse hydrates a single joined row into a [Course].
func scanCourse(row pgx.Row) (*Course, error) {
	var course Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.Category,
		&course.CoverImage,
		&course.LessonsCount,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

/*
ListCourses retrieves all courses, newest first, with lesson counts attached.

Returns:
  - []*Course: Slice of hydrated courses
  - error: Storage failures
*/
func (repository *repository) ListCourses(context context.Context) ([]*Course, error) {

	c := schema.Course
	query := countingSelect() + fmt.Sprintf(`
		GROUP BY c.%s
		ORDER BY c.%s DESC
	`, c.ID, c.CreatedAt)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []*Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

/*
FindCourseByID returns a single course with its lesson count.

Returns:
  - *Course: Hydrated entity
  - error: apperr.NotFound on absent rows
*/
func (repository *repository) FindCourseByID(context context.Context, id string) (*Course, error) {

	c := schema.Course
	query := countingSelect() + fmt.Sprintf(`
		WHERE c.%s = $1
		GROUP BY c.%s
	`, c.ID, c.ID)

	course, err := scanCourse(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		return nil, fmt.Errorf("postgres: failed to find course by id: %w", err)
	}

	return course, nil
}

/*
CourseSlugExists reports whether the slug is already taken.

Returns:
  - bool: True when a row with this slug exists
  - error: Storage failures
*/
func (repository *repository) CourseSlugExists(context context.Context, slug string) (bool, error) {

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Course.Table, schema.Course.Slug)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check course slug: %w", err)
	}

	return exists, nil
}

/*
CreateCourse inserts a new course record.

Returns:
  - error: Conflict when the slug unique index rejects the row
*/
func (repository *repository) CreateCourse(context context.Context, course *Course) error {

	c := schema.Course
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		c.Table,
		c.ID, c.Title, c.Slug, c.Description, c.Category, c.CoverImage,
		c.CreatedAt, c.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		course.ID,
		course.Title,
		course.Slug,
		course.Description,
		course.Category,
		course.CoverImage,
	).Scan(&course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create course")
	}

	return nil
}

/*
UpdateCourse overwrites the stored course with the given entity state.

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) UpdateCourse(context context.Context, course *Course) error {

	c := schema.Course
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $6
		RETURNING %s
	`,
		c.Table,
		c.Title, c.Slug, c.Description, c.Category, c.CoverImage, c.UpdatedAt,
		c.ID,
		c.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		course.Title,
		course.Slug,
		course.Description,
		course.Category,
		course.CoverImage,
		course.ID,
	).Scan(&course.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Course")
		}
		return dberr.Wrap(err, "update course")
	}

	return nil
}

/*
DeleteCourse removes a course permanently.

Description: The lesson foreign key cascades, so every owned lesson is
removed in the same statement rather than being silently orphaned.

Returns:
  - error: apperr.NotFound if targeting a missing row
*/
func (repository *repository) DeleteCourse(context context.Context, id string) error {

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Course.Table, schema.Course.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}

	return nil
}
