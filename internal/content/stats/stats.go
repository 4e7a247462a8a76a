// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package stats aggregates the dashboard statistics.

All figures derive from the blog and category tables at read time; nothing
is stored or cached. Monthly buckets combine every year of history: an
article written in March 2024 and one written in March 2026 land in the
same bucket. The dashboard chart presents seasonality, not a timeline.
*/
package stats

import "time"

// MonthCount is the number of calendar-month buckets.
const MonthCount = 12

// Stats is the aggregate snapshot consumed by the admin dashboard.
type Stats struct {
	TotalViews      int64 `json:"totalViews"`
	TotalBlogs      int64 `json:"totalBlogs"`
	TotalCategories int64 `json:"totalCategories"`

	// MonthlyViews and MonthlyBlogs are indexed by calendar month 0-11
	// (January = 0); empty months hold zero.
	MonthlyViews []int64 `json:"monthlyViews"`
	MonthlyBlogs []int64 `json:"monthlyBlogs"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// MonthBucket is one row of the month aggregation as read from storage.
type MonthBucket struct {
	Month int   // Calendar month 1-12
	Views int64 // Summed views of blogs created in this month
	Blogs int64 // Count of blogs created in this month
}
