// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package stats

import "context"

// # Statistics Data Access

// Repository defines the read-only aggregation contract for statistics.
type Repository interface {

	/*
		Totals returns the whole-table aggregates in one round-trip.

		Returns:
		  - totalViews: int64 (Sum of views across all blogs)
		  - totalBlogs: int64
		  - totalCategories: int64
		  - error: Storage failures
	*/
	Totals(context context.Context) (totalViews, totalBlogs, totalCategories int64, err error)

	/*
		MonthlyBuckets returns per-calendar-month blog aggregates, all years
		combined. Months without data are simply absent from the result.

		Returns:
		  - []MonthBucket: One row per non-empty month (1-12)
		  - error: Storage failures
	*/
	MonthlyBuckets(context context.Context) ([]MonthBucket, error)
}
