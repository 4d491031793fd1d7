// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/ctxkey"
	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Session

// WithSession returns a new context carrying verified session claims.
func WithSession(ctx context.Context, claims *sec.SessionClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, claims)
}

// GetSession retrieves the [*sec.SessionClaims] from the [context.Context].
// Returns nil for anonymous callers.
func GetSession(ctx context.Context) *sec.SessionClaims {
	claims, ok := ctx.Value(ctxkey.KeySession).(*sec.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// # Localization

// WithLocale returns a new context carrying the negotiated content locale.
func WithLocale(ctx context.Context, l locale.Locale) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLocale, l)
}

// GetLocale retrieves the negotiated locale, or [locale.Default].
func GetLocale(ctx context.Context) locale.Locale {
	l, ok := ctx.Value(ctxkey.KeyLocale).(locale.Locale)
	if !ok || l == "" {
		return locale.Default
	}
	return l
}
