// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package category

import "context"

// # Category Data Access

// Repository defines the data access contract for categories.
type Repository interface {

	/*
		List returns all categories, newest first, each with its blog count.

		Returns:
		  - []*Category: Hydrated categories, created_at DESC
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Category, error)

	/*
		FindByID returns the category with the given ID, including its blog count.

		Returns:
		  - *Category: Hydrated entity
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Category, error)

	/*
		SlugExists reports whether any category already uses the given slug.

		Returns:
		  - bool: True when occupied
		  - error: Storage failures
	*/
	SlugExists(context context.Context, slug string) (bool, error)

	/*
		Create persists a new category.

		Returns:
		  - error: Conflict on slug collision
	*/
	Create(context context.Context, category *Category) error

	/*
		Update renames a category and replaces its slug.

		Returns:
		  - error: NotFound if missing, Conflict on slug collision
	*/
	Update(context context.Context, category *Category) error

	/*
		Delete removes a category permanently.

		Returns:
		  - error: NotFound if missing, Conflict while blogs still reference it
	*/
	Delete(context context.Context, id string) error
}
