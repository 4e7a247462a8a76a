// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package message handles public contact-form submissions.

Messages are write-once: created by anonymous visitors, listed and deleted
by admins, never updated. Validation is strict because this is the only
unauthenticated write path in the API.
*/
package message

import "time"

// Field length bounds enforced at the service boundary.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 5
	MessageMaxLen = 2000
)

// Message represents a single contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Lowercased and trimmed before persist
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input carries the fields accepted from the public contact form.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
