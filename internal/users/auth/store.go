// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// Repository defines the data access contract for admin accounts.
type Repository interface {

	/*
		FindByEmail returns the account with the given (lowercased) email.

		Returns:
		  - *User: Hydrated account including the password hash
		  - error: NotFound if missing
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a new admin account.

		Returns:
		  - error: Conflict on duplicate email
	*/
	Create(context context.Context, user *User) error
}

// # Session State

// SessionStore tracks which session ids are currently live.
//
// A credential whose session id is absent from the store is treated as
// revoked even when its signature and expiry are still valid.
type SessionStore interface {

	/*
		Save registers a live session for the given user.

		Parameters:
		  - sessionID: string (UUID, the JWT 'sid' claim)
		  - userID: string
		  - timeToLive: time.Duration (Matches the credential expiry)
	*/
	Save(context context.Context, sessionID, userID string, timeToLive time.Duration) error

	/*
		Exists reports whether the session id is still live.
	*/
	Exists(context context.Context, sessionID string) (bool, error)

	/*
		Delete revokes a session. Deleting an unknown id is not an error.
	*/
	Delete(context context.Context, sessionID string) error
}
