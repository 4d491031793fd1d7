// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/pkg/uuid"
)

// TokenProvider signs session tokens.
type TokenProvider interface {
	GenerateSessionToken(sessionID string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// DraftCloser drops the edit session owned by the caller's session. Logout calls it.
type DraftCloser interface {
	Release(context context.Context)
}

// Messages resolves catalog keys in the caller's locale.
type Messages interface {
	Message(context context.Context, key string) string
}

// # Gate

// Gate answers whether the caller holds a live admin session.
type Gate struct {
	flags  FlagRepository
	logger *slog.Logger
}

// NewGate creates a Gate over the flag store.
func NewGate(flags FlagRepository, logger *slog.Logger) *Gate {
	return &Gate{flags: flags, logger: logger}
}

// IsAdmin is true when the context carries admin claims whose session flag
// is still stored. A flag store failure denies access.
func (gate *Gate) IsAdmin(context context.Context) bool {
	claims := ctxutil.GetSession(context)
	if claims == nil || !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		return false
	}

	ok, err := gate.flags.Exists(context, claims.SessionID)
	if err != nil {
		gate.logger.WarnContext(context, "session_flag_lookup_failed", slog.Any("error", err))
		return false
	}
	return ok
}

// # Service

// Service implements the login and logout use cases.
type Service struct {
	credentials Credentials
	flags       FlagRepository
	gate        *Gate
	tokens      TokenProvider
	drafts      DraftCloser
	messages    Messages
	ttl         time.Duration
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	credentials Credentials,
	flags FlagRepository,
	gate *Gate,
	tokens TokenProvider,
	drafts DraftCloser,
	messages Messages,
	ttl time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		credentials: credentials,
		flags:       flags,
		gate:        gate,
		tokens:      tokens,
		drafts:      drafts,
		messages:    messages,
		ttl:         ttl,
		logger:      logger,
	}
}

// TTL returns how long a session lives.
func (service *Service) TTL() time.Duration {
	return service.ttl
}

// Login checks the admin credentials and opens a session.
//
// # Returns
//   - A [*LoginSession] carrying the signed token.
//   - [apperr.Unauthorized] with the localized login error on a mismatch.
//
// # Flow
//  1. Compare username (constant time) and password (bcrypt).
//  2. Store the admin flag under a fresh session id.
//  3. Sign a token naming that session.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// ── 1. Credential Check ───────────────────────────────────────────────

	// Both checks always run so timing does not reveal which one failed.
	userOK := sec.EqualConstantTime(input.Username, service.credentials.Username)
	passwordOK := sec.CheckPasswordHash(input.Password, service.credentials.PasswordHash)
	if !userOK || !passwordOK {
		service.logger.InfoContext(context, "admin_login_rejected")
		return nil, apperr.Unauthorized(service.messages.Message(context, content.MsgLoginError))
	}

	// ── 2. Session Flag ───────────────────────────────────────────────────

	sessionID := uuid.New()
	if err := service.flags.Set(context, sessionID, service.ttl); err != nil {
		return nil, fmt.Errorf("auth_service_flag_set_failed: %w", err)
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokens.GenerateSessionToken(sessionID, sec.RoleAdmin, service.ttl)
	if err != nil {
		_ = service.flags.Delete(context, sessionID)
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(context, "admin_logged_in", slog.String("session_id", sessionID))

	return &LoginSession{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: time.Now().Add(service.ttl),
	}, nil
}

// Logout releases the draft owned by the caller's session and clears its admin flag.
// It is idempotent: an anonymous caller or a missing flag is not an error.
// The draft is released even when the flag has already expired.
func (service *Service) Logout(context context.Context) error {
	claims := ctxutil.GetSession(context)
	if claims == nil {
		return nil
	}

	// The flag may have expired already; the role alone decides.
	if sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		service.drafts.Release(context)
	}

	if err := service.flags.Delete(context, claims.SessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.InfoContext(context, "admin_logged_out", slog.String("session_id", claims.SessionID))
	return nil
}

// Status reports the caller's session state.
func (service *Service) Status(context context.Context) SessionStatus {
	return SessionStatus{
		Authenticated: ctxutil.GetSession(context) != nil,
		IsAdmin:       service.gate.IsAdmin(context),
	}
}
