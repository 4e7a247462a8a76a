// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexpad/nexpad/internal/platform/constants"
)

// # Redis Session Store

// sessionStore implements the [SessionStore] interface on Redis.
//
// Each live session is a single key (auth:session:<sid>) holding the user
// id, expiring together with the JWT it backs. Revocation is key deletion.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore constructs a Redis backed session store.
func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Save registers a live session under its id with a matching TTL.
func (store *sessionStore) Save(context context.Context, sessionID, userID string, timeToLive time.Duration) error {
	err := store.client.Set(context, sessionKey(sessionID), userID, timeToLive).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to save session: %w", err)
	}
	return nil
}

// Exists reports whether the session id is still live.
func (store *sessionStore) Exists(context context.Context, sessionID string) (bool, error) {
	count, err := store.client.Exists(context, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis: failed to check session: %w", err)
	}
	return count > 0, nil
}

// Delete revokes a session. Missing keys are silently ignored.
func (store *sessionStore) Delete(context context.Context, sessionID string) error {
	err := store.client.Del(context, sessionKey(sessionID)).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to delete session: %w", err)
	}
	return nil
}
