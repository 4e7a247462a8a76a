package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/sec"
)

// fakeRepository is an in-memory [Repository] keyed by email.
type fakeRepository struct {
	users map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[string]*User{}}
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	if _, ok := f.users[user.Email]; ok {
		return apperr.Conflict("A record with the same unique value already exists")
	}
	f.users[user.Email] = user
	return nil
}

// fakeSessionStore is an in-memory [SessionStore].
type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Save(_ context.Context, sessionID, userID string, _ time.Duration) error {
	f.sessions[sessionID] = userID
	return nil
}

func (f *fakeSessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	_, ok := f.sessions[sessionID]
	return ok, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T) (*Service, *fakeRepository, *fakeSessionStore) {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, "test.nexpad.ir")
	require.NoError(t, err)

	repo := newFakeRepository()
	sessions := newFakeSessionStore()
	return NewService(repo, sessions, tokens, slog.Default()), repo, sessions
}

func seedAdmin(t *testing.T, service *Service) {
	t.Helper()
	require.NoError(t, service.EnsureAdmin(context.Background(), "admin@nexpad.ir", "correct horse battery"))
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials open a verifiable session", func(t *testing.T) {
		service, _, sessions := newTestService(t)
		seedAdmin(t, service)

		token, user, err := service.Login(context.Background(), LoginInput{
			Email:    "  Admin@NexPad.IR ",
			Password: "correct horse battery",
		})

		require.NoError(t, err)
		assert.Equal(t, "admin@nexpad.ir", user.Email)
		assert.Len(t, sessions.sessions, 1)

		claims, err := service.VerifySession(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		service, _, _ := newTestService(t)
		seedAdmin(t, service)

		_, _, errWrongPassword := service.Login(context.Background(), LoginInput{
			Email: "admin@nexpad.ir", Password: "guess",
		})
		_, _, errUnknownEmail := service.Login(context.Background(), LoginInput{
			Email: "nobody@nexpad.ir", Password: "guess",
		})

		require.Error(t, errWrongPassword)
		require.Error(t, errUnknownEmail)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
		assert.Equal(t, 401, apperr.As(errWrongPassword).HTTPStatus)
	})

	t.Run("blank credentials fail validation before lookup", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, _, err := service.Login(context.Background(), LoginInput{})

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revokes the session immediately", func(t *testing.T) {
		service, _, _ := newTestService(t)
		seedAdmin(t, service)

		token, _, err := service.Login(context.Background(), LoginInput{
			Email: "admin@nexpad.ir", Password: "correct horse battery",
		})
		require.NoError(t, err)

		claims, err := service.VerifySession(context.Background(), token)
		require.NoError(t, err)

		require.NoError(t, service.Logout(context.Background(), claims))

		// The signature is still valid, but the session is gone
		_, err = service.VerifySession(context.Background(), token)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("anonymous logout is a no-op", func(t *testing.T) {
		service, _, _ := newTestService(t)
		assert.NoError(t, service.Logout(context.Background(), nil))
	})
}

func TestVerifySession(t *testing.T) {
	t.Run("rejects garbage tokens", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.VerifySession(context.Background(), "not.a.jwt")

		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		service, _, _ := newTestService(t)

		foreignTokens, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "test.nexpad.ir")
		require.NoError(t, err)
		foreign, err := foreignTokens.GenerateSessionToken("uid", "x@y.ir", "sid", time.Hour)
		require.NoError(t, err)

		_, err = service.VerifySession(context.Background(), foreign)
		require.Error(t, err)
	})
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("seeding twice creates one account", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		require.NoError(t, service.EnsureAdmin(context.Background(), "admin@nexpad.ir", "pw"))
		require.NoError(t, service.EnsureAdmin(context.Background(), "admin@nexpad.ir", "pw"))

		assert.Len(t, repo.users, 1)
	})

	t.Run("empty credentials skip seeding", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		require.NoError(t, service.EnsureAdmin(context.Background(), "", ""))

		assert.Empty(t, repo.users)
	})

	t.Run("stores a hash, not the password", func(t *testing.T) {
		service, repo, _ := newTestService(t)

		require.NoError(t, service.EnsureAdmin(context.Background(), "admin@nexpad.ir", "plain"))

		stored := repo.users["admin@nexpad.ir"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "plain", stored.PasswordHash)
		assert.True(t, sec.CheckPasswordHash("plain", stored.PasswordHash))
	})
}
