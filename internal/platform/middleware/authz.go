// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining it here decouples the middleware from [sec.TokenService] so tests
// can inject a stub.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.SessionClaims, error)
}

// AdminGate answers whether the session in a context still holds the admin flag.
type AdminGate interface {
	IsAdmin(ctx context.Context) bool
}

// Authenticate extracts and verifies the session token.
//
// # Flow
//  1. Prefer 'Authorization: Bearer <token>', fall back to the session cookie.
//  2. If neither is present the request proceeds as anonymous.
//  3. A malformed or invalid Bearer header is rejected with 401.
//  4. An invalid cookie is ignored so visitors with a stale cookie can still read.
//  5. Verified [*sec.SessionClaims] are injected into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Bearer header ──────────────────────────────────────────────
			if authHeader := request.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
					return
				}

				claims, err := verifier.VerifyToken(parts[1])
				if err != nil {
					respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
					return
				}

				next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(request.Context(), claims)))
				return
			}

			// ── 2. Session cookie ─────────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(request.Context(), claims)))
		})
	}
}

// RequireAdmin blocks requests whose session does not carry the admin flag.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. No session claims in context: 401 Unauthorized.
//  2. Claims present but the flag is gone (logged out or expired): 403 Forbidden.
func RequireAdmin(gate AdminGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetSession(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) || !gate.IsAdmin(request.Context()) {
				respond.Error(writer, request, apperr.Forbidden("Admin session required"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
