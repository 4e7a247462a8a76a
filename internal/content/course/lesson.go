// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import "time"

// Lesson represents a single unit of course content.
//
// Every lesson access is scoped to its owning course: lookups must match
// both identifiers, which prevents reading another course's lesson by
// guessing ids.
type Lesson struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Slug     string `json:"slug"` // Unique across ALL lessons, not per course
	Content  string `json:"content"`
	Order    int    `json:"order"` // Display sequence, duplicates allowed

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LessonSummary is the sidebar projection of a lesson.
type LessonSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// # Input Shapes

// CreateLessonInput carries the fields accepted when creating a lesson.
type CreateLessonInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   *int   `json:"order"` // nil defaults to 0
}

// UpdateLessonInput carries a partial patch; nil fields are left unchanged.
// A patch with no fields at all is rejected.
type UpdateLessonInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

// IsEmpty reports whether the patch carries no fields.
func (input UpdateLessonInput) IsEmpty() bool {
	return input.Title == nil && input.Content == nil && input.Order == nil
}
