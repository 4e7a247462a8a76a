// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package auth manages the admin accounts and their sessions.

NexPad has no public registration: accounts exist only for dashboard
admins and are seeded at startup. A session is a signed credential
(HS256 JWT in an HttpOnly cookie) paired with a Redis entry keyed by the
session id, so logging out genuinely revokes the credential instead of
waiting out its seven-day expiry.
*/
package auth

import "time"

// User represents a dashboard admin account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt, never serialized
	DisplayName  string    `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public projection of an account, returned by login and
// the /me endpoint.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Profile projects the user into its public shape.
func (user *User) Profile() Profile {
	return Profile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}

// LoginInput carries the credentials posted to the login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
