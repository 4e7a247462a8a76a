// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package middleware

import (
	"context"
	"net/http"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/constants"
	"github.com/nexpad/nexpad/internal/platform/ctxkey"
	"github.com/nexpad/nexpad/internal/platform/respond"
	"github.com/nexpad/nexpad/internal/platform/sec"
)

// SessionVerifier defines the interface needed to verify session credentials.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject mocks during unit
// testing. The verifier checks both the JWT signature and the liveness of
// the session in the store, so a logged-out credential is rejected even
// before its expiry.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the session cookie.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify the credential via [SessionVerifier].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// An invalid or revoked cookie does not abort the request here; the request
// simply proceeds as anonymous and [RequireAdmin] rejects it on protected
// routes. This keeps public pages usable with a stale cookie.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifySession(request.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := context.WithValue(request.Context(), ctxkey.KeyUser, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that do not carry a verified admin session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Every mutating
// content route group mounts this guard; no handler relies on how the
// calling page was reached.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := GetUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// GetUser retrieves the [*sec.SessionClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.SessionClaims] if the request is authenticated.
//   - nil if the request is anonymous.
func GetUser(ctx context.Context) *sec.SessionClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
