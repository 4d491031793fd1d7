// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It is injected into the session gate through the
// [TokenService] and consumed by the middleware through its VerifyToken method.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload embedded inside a session token.
//
// The token only proves which session the caller holds. Whether that session
// still carries the admin flag is decided by the flag store on every request,
// so a logout takes effect before the token expires.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Abbreviated keys keep the cookie small.
	SessionID string `json:"sid"`
	Role      string `json:"rol"`
}

// TokenService signs and verifies session tokens with HS256.
type TokenService struct {
	secret []byte
	issuer string
}

// ErrWeakSecret is returned when the signing secret is too short to be useful.
var ErrWeakSecret = errors.New("sec: session secret must be at least 32 bytes")

// NewTokenService creates a new TokenService from the configured session secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateSessionToken creates a signed token for a session.
func (service *TokenService) GenerateSessionToken(sessionID string, role UserRole, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		SessionID: sessionID,
		Role:      string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer and validity of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
