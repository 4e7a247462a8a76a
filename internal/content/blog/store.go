// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package blog

import "context"

// # Blog Data Access

// Repository defines the data access contract for blogs.
type Repository interface {

	/*
		List returns all blogs, newest first, optionally restricted to one category.

		Parameters:
		  - context: context.Context
		  - categoryID: string ("" means unfiltered)

		Returns:
		  - []*Blog: Hydrated blogs, created_at DESC
		  - error: Storage failures
	*/
	List(context context.Context, categoryID string) ([]*Blog, error)

	/*
		FindByID returns the blog with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Blog: Hydrated entity
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Blog, error)

	/*
		SlugExists reports whether any blog already uses the given slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - bool: True when occupied
		  - error: Storage failures
	*/
	SlugExists(context context.Context, slug string) (bool, error)

	/*
		Create persists a new blog.

		Parameters:
		  - context: context.Context
		  - blog: *Blog

		Returns:
		  - error: Conflict on slug collision, Conflict on unknown category
	*/
	Create(context context.Context, blog *Blog) error

	/*
		Update persists changes to an existing blog.

		Parameters:
		  - context: context.Context
		  - blog: *Blog

		Returns:
		  - error: NotFound if the row no longer exists
	*/
	Update(context context.Context, blog *Blog) error

	/*
		Delete removes a blog permanently.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: NotFound if missing
	*/
	Delete(context context.Context, id string) error

	/*
		IncrementView atomically adds 1 to the view counter.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Blog: The row after the increment
		  - error: NotFound if missing
	*/
	IncrementView(context context.Context, id string) (*Blog, error)
}
