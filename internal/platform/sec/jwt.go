// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a session credential.
//
// # Why custom claims?
//
// By embedding the UserID, Email, and SessionID directly inside the JWT,
// the authentication middleware can reconstruct the admin context without
// querying the account table on every request. The SessionID is checked
// against the Redis session store so that logout genuinely revokes the
// credential before its 7-day expiry.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID    string `json:"uid"`
	Email     string `json:"eml"`
	SessionID string `json:"sid"`
}

// TokenService handles generation and verification of session JWTs using HS256.
//
// The signing secret comes from a single SESSION_SECRET environment variable;
// there is no key pair to distribute because only this process ever signs or
// verifies the credential.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the shared signing secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateSessionToken creates a new signed session credential.
func (service *TokenService) GenerateSessionToken(userID, email, sessionID string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:    userID,
		Email:     email,
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a session JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
