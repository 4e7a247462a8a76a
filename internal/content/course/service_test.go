package course

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/pkg/pointer"
)

// fakeStore is an in-memory [CourseRepository] and [LessonRepository].
type fakeStore struct {
	courses map[string]*Course
	lessons map[string]*Lesson
	seq     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses: map[string]*Course{},
		lessons: map[string]*Lesson{},
	}
}

func (f *fakeStore) ListCourses(_ context.Context) ([]*Course, error) {
	out := []*Course{}
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) FindCourseByID(_ context.Context, id string) (*Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperr.NotFound("Course")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) CourseSlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range f.courses {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateCourse(_ context.Context, course *Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeStore) UpdateCourse(_ context.Context, course *Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperr.NotFound("Course")
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeStore) DeleteCourse(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return apperr.NotFound("Course")
	}
	delete(f.courses, id)
	for lessonID, lesson := range f.lessons {
		if lesson.CourseID == id {
			delete(f.lessons, lessonID)
		}
	}
	return nil
}

func (f *fakeStore) ListLessons(_ context.Context, courseID string) ([]*LessonSummary, error) {
	matched := []*Lesson{}
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			matched = append(matched, l)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Order != matched[j].Order {
			return matched[i].Order < matched[j].Order
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	out := []*LessonSummary{}
	for _, l := range matched {
		out = append(out, &LessonSummary{ID: l.ID, Title: l.Title, Order: l.Order})
	}
	return out, nil
}

func (f *fakeStore) FindLesson(_ context.Context, courseID, lessonID string) (*Lesson, error) {
	l, ok := f.lessons[lessonID]
	if !ok || l.CourseID != courseID {
		return nil, apperr.NotFound("Lesson")
	}
	copied := *l
	return &copied, nil
}

func (f *fakeStore) LessonSlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, l := range f.lessons {
		if l.Slug == slug && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateLesson(_ context.Context, lesson *Lesson) error {
	f.seq++
	lesson.CreatedAt = time.Unix(int64(f.seq), 0)
	f.lessons[lesson.ID] = lesson
	return nil
}

func (f *fakeStore) UpdateLesson(_ context.Context, lesson *Lesson) error {
	existing, ok := f.lessons[lesson.ID]
	if !ok || existing.CourseID != lesson.CourseID {
		return apperr.NotFound("Lesson")
	}
	lesson.CreatedAt = existing.CreatedAt
	f.lessons[lesson.ID] = lesson
	return nil
}

func (f *fakeStore) DeleteLesson(_ context.Context, courseID, lessonID string) error {
	l, ok := f.lessons[lessonID]
	if !ok || l.CourseID != courseID {
		return apperr.NotFound("Lesson")
	}
	delete(f.lessons, lessonID)
	return nil
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return NewService(store, store, slog.Default()), store
}

func mustCreateCourse(t *testing.T, service *Service, title string) *Course {
	t.Helper()
	created, err := service.CreateCourse(context.Background(), CreateCourseInput{
		Title:      title,
		CoverImage: "https://cdn.nexpad.ir/covers/x.webp",
	})
	require.NoError(t, err)
	return created
}

func TestCreateCourse(t *testing.T) {
	t.Run("applies defaults and persian slug", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.CreateCourse(context.Background(), CreateCourseInput{
			Title:      "دوره جامع Go",
			CoverImage: "https://cdn.nexpad.ir/covers/go.webp",
		})

		require.NoError(t, err)
		assert.Equal(t, DefaultCategory, created.Category)
		assert.Equal(t, "دوره-جامع-go", created.Slug)
	})

	t.Run("requires title and cover image", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.CreateCourse(context.Background(), CreateCourseInput{
			Description: "بدون عنوان",
		})

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Len(t, appError.Details, 2)
	})
}

func TestUpdateCourse(t *testing.T) {
	t.Run("slug regenerates only on title change", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "Docker Fundamentals")

		// Patch without a title keeps the slug
		updated, err := service.UpdateCourse(context.Background(), created.ID, UpdateCourseInput{
			Description: pointer.To("توضیحات جدید"),
		})
		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)

		// A title change replaces the slug
		updated, err = service.UpdateCourse(context.Background(), created.ID, UpdateCourseInput{
			Title: pointer.To("Kubernetes Fundamentals"),
		})
		require.NoError(t, err)
		assert.Equal(t, "kubernetes-fundamentals", updated.Slug)
		assert.Equal(t, "توضیحات جدید", updated.Description)
	})

	t.Run("blank cover image patch is rejected", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "Linux Basics")

		_, err := service.UpdateCourse(context.Background(), created.ID, UpdateCourseInput{
			CoverImage: pointer.To(""),
		})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestCreateLesson(t *testing.T) {
	t.Run("requires an existing course", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.CreateLesson(context.Background(), "0195c9a2-0000-7000-8000-00000000dead", CreateLessonInput{
			Title:   "مقدمه",
			Content: "متن",
		})

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("slug collisions across courses get a suffix", func(t *testing.T) {
		service, _ := newTestService()
		first := mustCreateCourse(t, service, "دوره اول")
		second := mustCreateCourse(t, service, "دوره دوم")

		lessonA, err := service.CreateLesson(context.Background(), first.ID, CreateLessonInput{
			Title: "مقدمه", Content: "متن اول",
		})
		require.NoError(t, err)

		lessonB, err := service.CreateLesson(context.Background(), second.ID, CreateLessonInput{
			Title: "مقدمه", Content: "متن دوم",
		})
		require.NoError(t, err)

		assert.Equal(t, "مقدمه", lessonA.Slug)
		assert.True(t, strings.HasPrefix(lessonB.Slug, "مقدمه-"))
		assert.NotEqual(t, lessonA.Slug, lessonB.Slug)
	})

	t.Run("order defaults to zero", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره")

		lesson, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "درس", Content: "متن",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, lesson.Order)
	})
}

func TestLessonScoping(t *testing.T) {
	service, _ := newTestService()
	owner := mustCreateCourse(t, service, "مالک")
	other := mustCreateCourse(t, service, "دیگری")

	lesson, err := service.CreateLesson(context.Background(), owner.ID, CreateLessonInput{
		Title: "درس خصوصی", Content: "متن",
	})
	require.NoError(t, err)

	t.Run("get through the wrong course is not found", func(t *testing.T) {
		_, err := service.GetLesson(context.Background(), other.ID, lesson.ID)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("delete through the wrong course is a no-op", func(t *testing.T) {
		err := service.DeleteLesson(context.Background(), other.ID, lesson.ID)
		require.Error(t, err)

		// Still reachable through its real owner
		_, err = service.GetLesson(context.Background(), owner.ID, lesson.ID)
		require.NoError(t, err)
	})
}

func TestUpdateLesson(t *testing.T) {
	t.Run("empty patch is rejected", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره")
		lesson, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "درس", Content: "متن",
		})
		require.NoError(t, err)

		_, err = service.UpdateLesson(context.Background(), created.ID, lesson.ID, UpdateLessonInput{})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("title change regenerates slug excluding self", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره")
		lesson, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "Old Title", Content: "متن",
		})
		require.NoError(t, err)

		// Renaming back and forth to its own slug must not self-collide
		updated, err := service.UpdateLesson(context.Background(), created.ID, lesson.ID, UpdateLessonInput{
			Title: pointer.To("New Title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new-title", updated.Slug)

		again, err := service.UpdateLesson(context.Background(), created.ID, lesson.ID, UpdateLessonInput{
			Title: pointer.To("New Title Two"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new-title-two", again.Slug)
	})
}

func TestFirstLesson(t *testing.T) {
	t.Run("returns the lowest order lesson", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره")

		_, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "بعدی", Content: "متن", Order: pointer.To(5),
		})
		require.NoError(t, err)
		entry, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "اولین", Content: "متن", Order: pointer.To(1),
		})
		require.NoError(t, err)

		first, err := service.FirstLesson(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, first.ID)
	})

	t.Run("empty course yields the distinct signal", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره خالی")

		_, err := service.FirstLesson(context.Background(), created.ID)

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "EMPTY_COURSE", appError.Code)
		assert.Equal(t, 404, appError.HTTPStatus)
	})

	t.Run("equal order resolves by creation time", func(t *testing.T) {
		service, _ := newTestService()
		created := mustCreateCourse(t, service, "دوره")

		older, err := service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "قدیمی", Content: "متن",
		})
		require.NoError(t, err)
		_, err = service.CreateLesson(context.Background(), created.ID, CreateLessonInput{
			Title: "جدید", Content: "متن",
		})
		require.NoError(t, err)

		first, err := service.FirstLesson(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, older.ID, first.ID)
	})
}
