// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package category defines the taxonomy used to organise NexPad blogs.

A category is a flat label (no nesting) referenced by blogs. Its blogCount
is computed on read via a join aggregate, never stored, so it can never
drift from the actual number of referencing articles.
*/
package category

import "time"

// Category represents a single blog taxonomy entry.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"` // Unique, lowercase

	// BlogCount is derived on read by counting referencing blogs.
	BlogCount int64 `json:"blogCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input carries the fields accepted when creating or renaming a category.
// Both operations require the full pair; there is no partial patch.
type Input struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
