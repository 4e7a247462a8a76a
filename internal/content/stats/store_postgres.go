// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexpad/nexpad/internal/platform/database/schema"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed statistics store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
Totals computes the whole-table aggregates in a single query.

Description: The category count rides along as a scalar subquery so the
dashboard header needs exactly one round-trip.

Returns:
  - totalViews, totalBlogs, totalCategories: int64
  - error: Storage failures
*/
func (repository *repository) Totals(context context.Context) (int64, int64, int64, error) {

	b := schema.Blog
	c := schema.Category
	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(%s), 0) AS total_views,
			COUNT(*) AS total_blogs,
			(SELECT COUNT(*) FROM %s) AS total_categories
		FROM %s
	`, b.Views, c.Table, b.Table)

	var totalViews, totalBlogs, totalCategories int64
	err := repository.pool.QueryRow(context, query).Scan(&totalViews, &totalBlogs, &totalCategories)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("postgres: failed to compute totals: %w", err)
	}

	return totalViews, totalBlogs, totalCategories, nil
}

/*
MonthlyBuckets groups blogs by calendar month across all years.

Returns:
  - []MonthBucket: One row per non-empty month
  - error: Storage failures
*/
func (repository *repository) MonthlyBuckets(context context.Context) ([]MonthBucket, error) {

	b := schema.Blog
	query := fmt.Sprintf(`
		SELECT
			EXTRACT(MONTH FROM %s)::int AS month,
			COALESCE(SUM(%s), 0) AS views,
			COUNT(*) AS blogs
		FROM %s
		GROUP BY month
		ORDER BY month
	`, b.CreatedAt, b.Views, b.Table)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to compute monthly buckets: %w", err)
	}
	defer rows.Close()

	buckets := []MonthBucket{}
	for rows.Next() {
		var bucket MonthBucket
		if err := rows.Scan(&bucket.Month, &bucket.Views, &bucket.Blogs); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan month bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}
