package stats

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository returns canned aggregation rows.
type fakeRepository struct {
	totalViews      int64
	totalBlogs      int64
	totalCategories int64
	buckets         []MonthBucket
	err             error
}

func (f *fakeRepository) Totals(_ context.Context) (int64, int64, int64, error) {
	if f.err != nil {
		return 0, 0, 0, f.err
	}
	return f.totalViews, f.totalBlogs, f.totalCategories, nil
}

func (f *fakeRepository) MonthlyBuckets(_ context.Context) ([]MonthBucket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets, nil
}

func TestCompute(t *testing.T) {
	t.Run("spreads sparse buckets into dense arrays", func(t *testing.T) {
		repo := &fakeRepository{
			totalViews:      150,
			totalBlogs:      7,
			totalCategories: 3,
			buckets: []MonthBucket{
				{Month: 1, Views: 40, Blogs: 2},
				{Month: 3, Views: 100, Blogs: 4},
				{Month: 12, Views: 10, Blogs: 1},
			},
		}
		service := NewService(repo, slog.Default())

		snapshot, err := service.Compute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(150), snapshot.TotalViews)
		assert.Equal(t, int64(7), snapshot.TotalBlogs)
		assert.Equal(t, int64(3), snapshot.TotalCategories)

		require.Len(t, snapshot.MonthlyViews, MonthCount)
		require.Len(t, snapshot.MonthlyBlogs, MonthCount)
		assert.Equal(t, int64(40), snapshot.MonthlyViews[0])
		assert.Equal(t, int64(100), snapshot.MonthlyViews[2])
		assert.Equal(t, int64(10), snapshot.MonthlyViews[11])
		assert.Equal(t, int64(2), snapshot.MonthlyBlogs[0])

		// February stays zero, not absent
		assert.Equal(t, int64(0), snapshot.MonthlyViews[1])
		assert.Equal(t, int64(0), snapshot.MonthlyBlogs[1])
	})

	t.Run("empty platform yields all zeroes", func(t *testing.T) {
		service := NewService(&fakeRepository{}, slog.Default())

		snapshot, err := service.Compute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(0), snapshot.TotalViews)
		for month := 0; month < MonthCount; month++ {
			assert.Equal(t, int64(0), snapshot.MonthlyViews[month])
			assert.Equal(t, int64(0), snapshot.MonthlyBlogs[month])
		}
	})

	t.Run("out of range bucket rows are dropped", func(t *testing.T) {
		repo := &fakeRepository{
			buckets: []MonthBucket{{Month: 13, Views: 99, Blogs: 9}},
		}
		service := NewService(repo, slog.Default())

		snapshot, err := service.Compute(context.Background())

		require.NoError(t, err)
		for month := 0; month < MonthCount; month++ {
			assert.Equal(t, int64(0), snapshot.MonthlyViews[month])
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		service := NewService(&fakeRepository{err: errors.New("connection reset")}, slog.Default())

		_, err := service.Compute(context.Background())

		require.Error(t, err)
	})
}
