package category

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	categories map[string]*Category
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{categories: map[string]*Category{}}
}

func (f *fakeRepository) List(_ context.Context) ([]*Category, error) {
	out := []*Category{}
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, category *Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeRepository) Update(_ context.Context, category *Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return apperr.NotFound("Category")
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return apperr.NotFound("Category")
	}
	delete(f.categories, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.Default()), repo
}

func TestCreate(t *testing.T) {
	t.Run("persists with lowercased slug", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), Input{
			Name: "برنامه‌نویسی",
			Slug: "  Programming  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "programming", created.Slug)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("rejects missing fields with per-field details", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Create(context.Background(), Input{})

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Len(t, appError.Details, 2)
	})

	t.Run("duplicate slug yields conflict and no second record", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.Create(context.Background(), Input{Name: "اول", Slug: "golang"})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), Input{Name: "دوم", Slug: "golang"})

		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
		assert.Len(t, repo.categories, 1)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("requires both fields", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), Input{Name: "قدیم", Slug: "old"})
		require.NoError(t, err)

		_, err = service.Update(context.Background(), created.ID, Input{Name: "جدید"})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("keeping own slug is not a conflict", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), Input{Name: "قدیم", Slug: "same"})
		require.NoError(t, err)

		updated, err := service.Update(context.Background(), created.ID, Input{Name: "جدید", Slug: "same"})

		require.NoError(t, err)
		assert.Equal(t, "جدید", updated.Name)
	})

	t.Run("taking another category's slug is a conflict", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Create(context.Background(), Input{Name: "اول", Slug: "taken"})
		require.NoError(t, err)
		second, err := service.Create(context.Background(), Input{Name: "دوم", Slug: "free"})
		require.NoError(t, err)

		_, err = service.Update(context.Background(), second.ID, Input{Name: "دوم", Slug: "taken"})

		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})
}

func TestDelete(t *testing.T) {
	t.Run("refused while blogs reference the category", func(t *testing.T) {
		service, repo := newTestService()

		created, err := service.Create(context.Background(), Input{Name: "پر", Slug: "busy"})
		require.NoError(t, err)
		repo.categories[created.ID].BlogCount = 3

		err = service.Delete(context.Background(), created.ID)

		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
		assert.Len(t, repo.categories, 1)
	})

	t.Run("empty category deletes cleanly", func(t *testing.T) {
		service, repo := newTestService()

		created, err := service.Create(context.Background(), Input{Name: "خالی", Slug: "empty"})
		require.NoError(t, err)

		require.NoError(t, service.Delete(context.Background(), created.ID))
		assert.Empty(t, repo.categories)
	})

	t.Run("missing category yields not found", func(t *testing.T) {
		service, _ := newTestService()

		err := service.Delete(context.Background(), "0195c9a2-0000-7000-8000-00000000dead")

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}
