// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package blog defines the domain entities and business logic for NexPad articles.

It manages the lifecycle of published posts: slug assignment, category
references, tag lists, and the public view counter used by the dashboard
statistics.

Core Responsibility:

  - Catalogue: Articles referencing a [category.Category] by id.
  - Discovery: Persian-aware URL slugs derived from titles.
  - Analytics: Atomic per-article view counting.
*/
package blog

import "time"

// DefaultAuthor is the sentinel shown when a post is created without an
// explicit author name ("anonymous" in Persian).
const DefaultAuthor = "ناشناس"

// CategoryAll is the filter sentinel meaning "no category restriction".
const CategoryAll = "all"

// # Core Entities

// Blog represents a single published article.
type Blog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"` // URL-safe identifier, unique across all blogs
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Tags       []string  `json:"tags"`
	CategoryID string    `json:"categoryId"`
	CoverImage *string   `json:"coverImage,omitempty"`
	Views      int64     `json:"views"` // Only ever increases, via IncrementView
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// # Input Shapes

// CreateInput carries the fields accepted when creating a blog.
type CreateInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryID string   `json:"categoryId"`
	CoverImage *string  `json:"coverImage"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
}

// UpdateInput carries a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CategoryID *string   `json:"categoryId"`
	CoverImage *string   `json:"coverImage"`
	Author     *string   `json:"author"`
	Tags       *[]string `json:"tags"`
}
