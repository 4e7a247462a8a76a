package message

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	messages map[string]*Message
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{messages: map[string]*Message{}}
}

func (f *fakeRepository) List(_ context.Context) ([]*Message, error) {
	out := []*Message{}
	for _, m := range f.messages {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeRepository) Create(_ context.Context, message *Message) error {
	f.messages[message.ID] = message
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.messages[id]; !ok {
		return apperr.NotFound("Message")
	}
	delete(f.messages, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.Default()), repo
}

func TestCreate(t *testing.T) {
	t.Run("normalizes email before persist", func(t *testing.T) {
		service, _ := newTestService()

		created, err := service.Create(context.Background(), Input{
			Name:    "سارا محمدی",
			Email:   "  Sara.Mohammadi@Example.COM  ",
			Message: "سلام، سوالی درباره دوره دارم.",
		})

		require.NoError(t, err)
		assert.Equal(t, "sara.mohammadi@example.com", created.Email)
	})

	t.Run("reports every blank field at once", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.Create(context.Background(), Input{})

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Len(t, appError.Details, 3)
		assert.Empty(t, repo.messages)
	})

	t.Run("enforces length bounds", func(t *testing.T) {
		tests := []struct {
			name  string
			input Input
			field string
		}{
			{
				name:  "name too short",
				input: Input{Name: "آ", Email: "a@b.ir", Message: "پیام معتبر"},
				field: FieldName,
			},
			{
				name:  "name too long",
				input: Input{Name: strings.Repeat("x", 101), Email: "a@b.ir", Message: "پیام معتبر"},
				field: FieldName,
			},
			{
				name:  "message too short",
				input: Input{Name: "علی", Email: "a@b.ir", Message: "هی"},
				field: FieldMessage,
			},
			{
				name:  "message too long",
				input: Input{Name: "علی", Email: "a@b.ir", Message: strings.Repeat("م", 2001)},
				field: FieldMessage,
			},
			{
				name:  "invalid email",
				input: Input{Name: "علی", Email: "not-an-email", Message: "پیام معتبر"},
				field: FieldEmail,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, _ := newTestService()

				_, err := service.Create(context.Background(), tt.input)

				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				require.NotEmpty(t, appError.Details)
				assert.Equal(t, tt.field, appError.Details[0].Field)
			})
		}
	})

	t.Run("persian rune counting respects bounds", func(t *testing.T) {
		service, _ := newTestService()

		// Two Persian characters satisfy the 2-char minimum even though
		// the byte length is four.
		_, err := service.Create(context.Background(), Input{
			Name:    "لی",
			Email:   "a@b.ir",
			Message: "پیام معتبر",
		})

		require.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing message yields not found", func(t *testing.T) {
		service, _ := newTestService()

		err := service.Delete(context.Background(), "0195c9a2-0000-7000-8000-00000000dead")

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("removes an existing message", func(t *testing.T) {
		service, repo := newTestService()

		created, err := service.Create(context.Background(), Input{
			Name: "علی", Email: "a@b.ir", Message: "پیام معتبر",
		})
		require.NoError(t, err)

		require.NoError(t, service.Delete(context.Background(), created.ID))
		assert.Empty(t, repo.messages)
	})
}
