// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package stats

import (
	"context"
	"log/slog"
	"time"
)

// # Service Layer

// Service assembles the dashboard statistics snapshot.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Compute builds the full statistics snapshot.

Description: Storage returns sparse month rows; this method spreads them
into dense 12-element arrays (January = index 0) so empty months render
as zero bars rather than gaps.

Returns:
  - *Stats: The assembled snapshot
  - error: Storage failures
*/
func (service *Service) Compute(context context.Context) (*Stats, error) {

	totalViews, totalBlogs, totalCategories, err := service.repo.Totals(context)
	if err != nil {
		return nil, err
	}

	buckets, err := service.repo.MonthlyBuckets(context)
	if err != nil {
		return nil, err
	}

	snapshot := &Stats{
		TotalViews:      totalViews,
		TotalBlogs:      totalBlogs,
		TotalCategories: totalCategories,
		MonthlyViews:    make([]int64, MonthCount),
		MonthlyBlogs:    make([]int64, MonthCount),
		GeneratedAt:     time.Now().UTC(),
	}

	// Sparse rows into dense month arrays; out-of-range rows are dropped
	for _, bucket := range buckets {
		if bucket.Month < 1 || bucket.Month > MonthCount {
			continue
		}
		snapshot.MonthlyViews[bucket.Month-1] = bucket.Views
		snapshot.MonthlyBlogs[bucket.Month-1] = bucket.Blogs
	}

	return snapshot, nil
}
