package blog

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/pkg/pointer"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	blogs map[string]*Blog
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{blogs: map[string]*Blog{}}
}

func (f *fakeRepository) List(_ context.Context, categoryID string) ([]*Blog, error) {
	out := []*Blog{}
	for _, b := range f.blogs {
		if categoryID == "" || b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, b := range f.blogs {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, blog *Blog) error {
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeRepository) Update(_ context.Context, blog *Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return apperr.NotFound("Blog")
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return apperr.NotFound("Blog")
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeRepository) IncrementView(_ context.Context, id string) (*Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	b.Views++
	copied := *b
	return &copied, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.Default()), repo
}

const testCategoryID = "0195c9a2-0000-7000-8000-000000000001"

func TestCreate(t *testing.T) {
	t.Run("persists with derived slug and defaults", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title:      "آموزش گولنگ",
			Content:    "متن مقاله",
			CategoryID: testCategoryID,
		})

		require.NoError(t, err)
		assert.Equal(t, "آموزش-گولنگ", created.Slug)
		assert.Equal(t, DefaultAuthor, created.Author)
		assert.Equal(t, int64(0), created.Views)
		assert.NotNil(t, created.Tags)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("cover image is optional", func(t *testing.T) {
		service, repo := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title:      "بدون کاور",
			Content:    "متن",
			CategoryID: testCategoryID,
		})

		require.NoError(t, err)
		assert.Nil(t, created.CoverImage)
		assert.Nil(t, repo.blogs[created.ID].CoverImage, "nil cover reaches storage unchanged")

		withCover, err := service.Create(context.Background(), CreateInput{
			Title:      "با کاور",
			Content:    "متن",
			CategoryID: testCategoryID,
			CoverImage: pointer.To("https://cdn.nexpad.ir/covers/a.png"),
		})

		require.NoError(t, err)
		require.NotNil(t, withCover.CoverImage)
		assert.Equal(t, "https://cdn.nexpad.ir/covers/a.png", *withCover.CoverImage)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Create(context.Background(), CreateInput{
			Content:    "متن",
			CategoryID: testCategoryID,
		})

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("rejects malformed category id", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Create(context.Background(), CreateInput{
			Title:      "عنوان",
			Content:    "متن",
			CategoryID: "not-a-uuid",
		})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("suffixes slug on collision", func(t *testing.T) {
		service, _ := newTestService()

		first, err := service.Create(context.Background(), CreateInput{
			Title: "Hello World", Content: "a", CategoryID: testCategoryID,
		})
		require.NoError(t, err)

		second, err := service.Create(context.Background(), CreateInput{
			Title: "Hello World", Content: "b", CategoryID: testCategoryID,
		})
		require.NoError(t, err)

		assert.Equal(t, "hello-world", first.Slug)
		assert.True(t, strings.HasPrefix(second.Slug, "hello-world-"))
		assert.NotEqual(t, first.Slug, second.Slug)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title: "عنوان اول", Content: "متن اول", CategoryID: testCategoryID,
		})
		require.NoError(t, err)

		updated, err := service.Update(context.Background(), created.ID, UpdateInput{
			Content: pointer.To("متن دوم"),
		})

		require.NoError(t, err)
		assert.Equal(t, "عنوان اول", updated.Title)
		assert.Equal(t, "متن دوم", updated.Content)
		assert.Equal(t, created.Slug, updated.Slug, "slug stays stable across updates")
	})

	t.Run("rejects blank title patch", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), CreateInput{
			Title: "عنوان", Content: "متن", CategoryID: testCategoryID,
		})
		require.NoError(t, err)

		_, err = service.Update(context.Background(), created.ID, UpdateInput{
			Title: pointer.To("   "),
		})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("missing blog yields not found", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Update(context.Background(), "0195c9a2-0000-7000-8000-00000000dead", UpdateInput{})

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestList(t *testing.T) {
	t.Run("sentinel all disables the category filter", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.Create(context.Background(), CreateInput{
			Title: "اول", Content: "a", CategoryID: testCategoryID,
		})
		require.NoError(t, err)
		_, err = service.Create(context.Background(), CreateInput{
			Title: "دوم", Content: "b", CategoryID: "0195c9a2-0000-7000-8000-000000000002",
		})
		require.NoError(t, err)

		all, err := service.List(context.Background(), CategoryAll)
		require.NoError(t, err)
		assert.Len(t, all, len(repo.blogs))

		filtered, err := service.List(context.Background(), testCategoryID)
		require.NoError(t, err)
		assert.Len(t, filtered, 1)
	})

	t.Run("rejects a malformed category filter", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.List(context.Background(), "not-a-uuid")

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "BAD_REQUEST", appError.Code)
	})
}

func TestIncrementView(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), CreateInput{
		Title: "عنوان", Content: "متن", CategoryID: testCategoryID,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = service.IncrementView(context.Background(), created.ID)
		require.NoError(t, err)
	}

	fresh, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fresh.Views)
}
