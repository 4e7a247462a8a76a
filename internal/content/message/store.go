// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package message

import "context"

// # Message Data Access

// Repository defines the data access contract for contact messages.
type Repository interface {

	/*
		List returns all messages, newest first.

		Returns:
		  - []*Message: Hydrated messages, created_at DESC
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Message, error)

	/*
		Create persists a new message.

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, message *Message) error

	/*
		Delete removes a message permanently.

		Returns:
		  - error: NotFound if missing
	*/
	Delete(context context.Context, id string) error
}
