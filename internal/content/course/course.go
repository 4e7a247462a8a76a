// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package course defines the domain entities and business logic for NexPad
courses and their lessons.

A course owns its lessons by reference (one-to-many). Lessons carry an
integer sort order that drives sidebar navigation and the first-lesson
redirect; duplicate order values are allowed and resolved by a stable
sort at read time.

Core Responsibility:

  - Catalogue: Courses with a free-text category label (not a taxonomy FK).
  - Navigation: Ordered lesson projections and the canonical entry lesson.
  - Discovery: Persian-aware slugs, globally unique across all lessons.
*/
package course

import "time"

// DefaultCategory is the free-text label applied when a course is created
// without one. It is unrelated to the blog taxonomy.
const DefaultCategory = "General"

// # Core Entities

// Course represents a single published course.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`   // Free label, default "General"
	CoverImage  string `json:"coverImage"` // Required at creation

	// LessonsCount is derived on read by counting owned lessons.
	LessonsCount int64 `json:"lessonsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// # Input Shapes

// CreateCourseInput carries the fields accepted when creating a course.
type CreateCourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CoverImage  string `json:"coverImage"`
}

// UpdateCourseInput carries a partial patch; nil fields are left unchanged.
type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	CoverImage  *string `json:"coverImage"`
}
