// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/constants"
	requestutil "github.com/nexpad/nexpad/internal/platform/request"
	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for admin authentication.
type Handler struct {
	service      *Service
	secureCookie bool // Secure flag on the session cookie (off in development)
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{
		service:      service,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes attaches authentication endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Post("/auth/login", handler.Login)
	api.Post("/auth/logout", handler.Logout)
	api.Get("/auth/me", handler.Me)
}

// sessionCookie builds the session cookie with the given value and age.
func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

/*
POST /api/auth/login.

Description: Verifies credentials, opens a session, and sets the signed
credential as an HttpOnly SameSite=Strict cookie with a seven-day life.

Request:
  - body: LoginInput

Response:
  - 200: Profile: The authenticated account
  - 400: Missing email or password
  - 401: Invalid email or password
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, user, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.sessionCookie(token, int(constants.SessionTTL.Seconds())))
	respond.OK(writer, user.Profile())
}

/*
POST /api/auth/logout.

Description: Revokes the current session in the store and expires the
cookie. Safe to call without a session; the cookie is cleared either way.

Response:
  - 200: Logged out
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)

	if err := handler.service.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.sessionCookie("", -1))
	respond.OK(writer, map[string]string{"message": "Logged out"})
}

/*
GET /api/auth/me.

Description: Returns the identity behind the current session cookie.
The dashboard calls this on load to decide between login and admin views.

Response:
  - 200: Profile: The authenticated identity
  - 401: No live session
*/
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	respond.OK(writer, Profile{
		ID:    claims.UserID,
		Email: claims.Email,
	})
}
