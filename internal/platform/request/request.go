// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexpad/nexpad/internal/platform/apperr"
	"github.com/nexpad/nexpad/internal/platform/ctxutil"
	"github.com/nexpad/nexpad/internal/platform/sec"
	"github.com/nexpad/nexpad/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UUID retrieves a named URL parameter and verifies it is a well-formed UUID.

A malformed identifier is a client mistake distinct from a missing record,
so it maps to 400 rather than 404.

Returns:
  - string: The validated identifier
  - error: apperr.BadRequest when the value is not a UUID
*/
func UUID(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)
	if !validate.IsUUID(value) {
		return "", apperr.BadRequest("Invalid " + name)
	}
	return value, nil
}

/*
Claims extracts the authenticated session claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.SessionClaims {
	return ctxutil.GetAuthUser(request.Context())
}
