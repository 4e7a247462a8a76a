// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/constants"
	"github.com/nexpad/nexpad/internal/platform/sec"
	"github.com/nexpad/nexpad/internal/platform/validate"
	"github.com/nexpad/nexpad/pkg/uuid"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// errBadCredentials deliberately does not reveal whether the email or the
// password was wrong.
func errBadCredentials() *apperr.AppError {
	return apperr.Unauthorized("Invalid email or password")
}

// # Service Layer

// Service orchestrates admin authentication and session lifecycle.
type Service struct {
	repo     Repository
	sessions SessionStore
	tokens   *sec.TokenService
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its required collaborators.
func NewService(repo Repository, sessions SessionStore, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Authentication Operations

/*
Login verifies credentials and opens a new session.

Description: On success a fresh session id is registered in the session
store and embedded in a signed credential the handler sets as a cookie.
Lookup failure and password mismatch produce the same opaque error.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - string: The signed session credential
  - *User: The authenticated account
  - error: ValidationError on blanks, Unauthorized on bad credentials
*/
func (service *Service) Login(context context.Context, input LoginInput) (string, *User, error) {

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return "", nil, err
	}

	user, err := service.repo.FindByEmail(context, input.Email)
	if err != nil {
		if apperr.IsAppError(err) {
			return "", nil, errBadCredentials()
		}
		return "", nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.Warn("login_rejected", slog.String("email", input.Email))
		return "", nil, errBadCredentials()
	}

	// Open the revocable session
	sessionID := uuid.New()
	if err := service.sessions.Save(context, sessionID, user.ID, constants.SessionTTL); err != nil {
		return "", nil, err
	}

	token, err := service.tokens.GenerateSessionToken(user.ID, user.Email, sessionID, constants.SessionTTL)
	if err != nil {
		return "", nil, err
	}

	service.logger.Info("login_succeeded",
		slog.String("user_id", user.ID),
		slog.String("session_id", sessionID),
	)

	return token, user, nil
}

/*
Logout revokes the session behind the given claims.

Description: Revocation removes the session store entry, so the cookie
becomes worthless immediately even though its signature stays valid.

Returns:
  - error: Session store failures
*/
func (service *Service) Logout(context context.Context, claims *sec.SessionClaims) error {
	if claims == nil {
		return nil
	}

	if err := service.sessions.Delete(context, claims.SessionID); err != nil {
		return err
	}

	service.logger.Info("logout",
		slog.String("user_id", claims.UserID),
		slog.String("session_id", claims.SessionID),
	)

	return nil
}

/*
VerifySession validates a session credential end to end.

Description: Implements the middleware's SessionVerifier contract. A
credential passes only when its signature and expiry are valid AND its
session id is still live in the store.

Returns:
  - *sec.SessionClaims: The verified claims
  - error: Unauthorized on any failure
*/
func (service *Service) VerifySession(context context.Context, token string) (*sec.SessionClaims, error) {

	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session credential")
	}

	live, err := service.sessions.Exists(context, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	return claims, nil
}

// # Bootstrap

/*
EnsureAdmin seeds the bootstrap admin account when it does not exist yet.

Description: Called once at startup with credentials from the
environment. A present account (or empty credentials) is a no-op, so
repeated deploys are safe.

Returns:
  - error: Hashing or storage failures
*/
func (service *Service) EnsureAdmin(context context.Context, email, password string) error {

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := service.repo.FindByEmail(context, email)
	if err == nil {
		return nil
	}
	var appError *apperr.AppError
	if !errors.As(err, &appError) || appError.Code != "NOT_FOUND" {
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return err
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  "Admin",
	}
	if err := service.repo.Create(context, user); err != nil {
		return err
	}

	service.logger.Info("admin_account_seeded", slog.String("email", email))

	return nil
}
