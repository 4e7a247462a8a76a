// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/database/schema"
	"github.com/nexpad/nexpad/internal/platform/dberr"
)

// lessonColumns is the canonical SELECT column list in Scan order.
func lessonColumns() string {
	l := schema.Lesson
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		l.ID, l.CourseID, l.Title, l.Slug, l.Content, l.Order, l.CreatedAt, l.UpdatedAt)
}

// scanLesson hydrates a single row into a [Lesson].
func scanLesson(row pgx.Row) (*Lesson, error) {
	var lesson Lesson
	err := row.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Slug,
		&lesson.Content,
		&lesson.Order,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

/*
ListLessons retrieves the sidebar projection of a course's lessons.

Description: Sorted by order ascending with creation time as tiebreaker,
so lessons sharing an order value keep a stable sequence between reads.

Returns:
  - []*LessonSummary: Projection rows
  - error: Storage failures
*/
func (repository *repository) ListLessons(context context.Context, courseID string) ([]*LessonSummary, error) {

	l := schema.Lesson
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`,
		l.ID, l.Title, l.Order,
		l.Table,
		l.CourseID,
		l.Order, l.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*LessonSummary{}
	for rows.Next() {
		var summary LessonSummary
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.Order); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan lesson summary: %w", err)
		}
		lessons = append(lessons, &summary)
	}

	return lessons, rows.Err()
}

/*
FindLesson returns the lesson matching BOTH the course and lesson id.

Description: The dual match is the authorization boundary; a valid lesson
id paired with the wrong course id behaves exactly like a missing row.

Returns:
  - *Lesson: Hydrated entity
  - error: apperr.NotFound when either id does not match
*/
func (repository *repository) FindLesson(context context.Context, courseID, lessonID string) (*Lesson, error) {

	l := schema.Lesson
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = $2
	`, lessonColumns(), l.Table, l.ID, l.CourseID)

	lesson, err := scanLesson(repository.pool.QueryRow(context, query, lessonID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Lesson")
		}
		return nil, fmt.Errorf("postgres: failed to find lesson: %w", err)
	}

	return lesson, nil
}

/*
LessonSlugExists reports whether a slug is taken by any other lesson.

Description: Slugs are unique across ALL lessons, not per course, so the
check spans the whole table. excludeID lets an update keep its own slug.

Returns:
  - bool: True when occupied
  - error: Storage failures
*/
func (repository *repository) LessonSlugExists(context context.Context, slug, excludeID string) (bool, error) {

	l := schema.Lesson
	query := fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)
	`, l.Table, l.Slug, l.ID)

	// A zero-valued UUID never matches a real row, so the exclusion
	// becomes a no-op when no id is given.
	if excludeID == "" {
		excludeID = "00000000-0000-0000-0000-000000000000"
	}

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check lesson slug: %w", err)
	}

	return exists, nil
}

/*
CreateLesson inserts a new lesson record.

Returns:
  - error: Conflict on slug collision or a vanished course reference
*/
func (repository *repository) CreateLesson(context context.Context, lesson *Lesson) error {

	l := schema.Lesson
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		l.Table,
		l.ID, l.CourseID, l.Title, l.Slug, l.Content, l.Order,
		l.CreatedAt, l.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		lesson.ID,
		lesson.CourseID,
		lesson.Title,
		lesson.Slug,
		lesson.Content,
		lesson.Order,
	).Scan(&lesson.CreatedAt, &lesson.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create lesson")
	}

	return nil
}

/*
UpdateLesson overwrites the lesson matching both ids with the entity state.

Returns:
  - error: apperr.NotFound when either id does not match
*/
func (repository *repository) UpdateLesson(context context.Context, lesson *Lesson) error {

	l := schema.Lesson
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $5 AND %s = $6
		RETURNING %s
	`,
		l.Table,
		l.Title, l.Slug, l.Content, l.Order, l.UpdatedAt,
		l.ID, l.CourseID,
		l.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		lesson.Title,
		lesson.Slug,
		lesson.Content,
		lesson.Order,
		lesson.ID,
		lesson.CourseID,
	).Scan(&lesson.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Lesson")
		}
		return dberr.Wrap(err, "update lesson")
	}

	return nil
}

/*
DeleteLesson removes the lesson matching both ids.

Returns:
  - error: apperr.NotFound when either id does not match
*/
func (repository *repository) DeleteLesson(context context.Context, courseID, lessonID string) error {

	l := schema.Lesson
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		l.Table, l.ID, l.CourseID)

	result, err := repository.pool.Exec(context, query, lessonID, courseID)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete lesson: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Lesson")
	}

	return nil
}
