// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/editor"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
)

const (
	adminUser     = "admin"
	adminPassword = "correct horse battery staple"
)

var (
	hashOnce sync.Once
	hashed   string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		hashed, err = sec.HashPassword(adminPassword)
		require.NoError(t, err)
	})
	return hashed
}

type fakeDrafts struct {
	mu       sync.Mutex
	released int
}

func (drafts *fakeDrafts) Release(context.Context) {
	drafts.mu.Lock()
	defer drafts.mu.Unlock()
	drafts.released++
}

type keyMessages struct{}

func (keyMessages) Message(_ context.Context, key string) string { return "msg:" + key }

type failingFlags struct{ auth.FlagRepository }

func (failingFlags) Exists(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

type fixture struct {
	service *auth.Service
	gate    *auth.Gate
	flags   *auth.MemoryFlagRepository
	tokens  *sec.TokenService
	drafts  *fakeDrafts
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return newFixtureWith(t, &fakeDrafts{}, time.Hour)
}

func newFixtureWith(t *testing.T, drafts auth.DraftCloser, ttl time.Duration) fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService(strings.Repeat("k", 32), constants.AuthIssuer)
	require.NoError(t, err)

	flags := auth.NewMemoryFlagRepository()
	gate := auth.NewGate(flags, logger)

	service := auth.NewService(
		auth.Credentials{Username: adminUser, PasswordHash: passwordHash(t)},
		flags, gate, tokens, drafts, keyMessages{}, ttl, logger,
	)
	f := fixture{service: service, gate: gate, flags: flags, tokens: tokens}
	if fake, ok := drafts.(*fakeDrafts); ok {
		f.drafts = fake
	}
	return f
}

type gateHolder struct{ gate *auth.Gate }

func (holder *gateHolder) IsAdmin(ctx context.Context) bool { return holder.gate.IsAdmin(ctx) }

type nopPersister struct{}

func (nopPersister) Save(context.Context, *content.AppContent) error { return nil }

// adminContext carries admin claims for sessionID without a signed token.
func adminContext(sessionID string) context.Context {
	return ctxutil.WithSession(context.Background(), &sec.SessionClaims{SessionID: sessionID, Role: string(sec.RoleAdmin)})
}

// sessionContext verifies token and returns a context carrying its claims.
func (f fixture) sessionContext(t *testing.T, token string) context.Context {
	t.Helper()
	claims, err := f.tokens.VerifyToken(token)
	require.NoError(t, err)
	return ctxutil.WithSession(context.Background(), claims)
}

/*
TestLogin_Success stores the flag and signs a token for the same session
without touching the draft.
*/
func TestLogin_Success(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Login(context.Background(), auth.LoginInput{Username: adminUser, Password: adminPassword})
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)

	ctx := f.sessionContext(t, session.Token)
	claims := ctxutil.GetSession(ctx)
	assert.Equal(t, session.SessionID, claims.SessionID)
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)

	exists, err := f.flags.Exists(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, f.gate.IsAdmin(ctx))
	assert.Equal(t, auth.SessionStatus{Authenticated: true, IsAdmin: true}, f.service.Status(ctx))
	assert.Zero(t, f.drafts.released)
}

/*
TestLogin_Rejected answers any mismatch with the same localized 401.
*/
func TestLogin_Rejected(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"wrong password", auth.LoginInput{Username: adminUser, Password: "nope"}},
		{"wrong username", auth.LoginInput{Username: "root", Password: adminPassword}},
		{"both wrong", auth.LoginInput{Username: "root", Password: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := f.service.Login(context.Background(), tt.input)

			assert.Nil(t, session)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
			assert.Equal(t, "msg:loginError", appErr.Message)
		})
	}
}

/*
TestLogout discards the draft, clears the flag and is idempotent.
*/
func TestLogout(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Login(context.Background(), auth.LoginInput{Username: adminUser, Password: adminPassword})
	require.NoError(t, err)
	ctx := f.sessionContext(t, session.Token)

	require.NoError(t, f.service.Logout(ctx))

	assert.Equal(t, 1, f.drafts.released)
	assert.False(t, f.gate.IsAdmin(ctx))
	assert.Equal(t, auth.SessionStatus{Authenticated: true, IsAdmin: false}, f.service.Status(ctx))

	// The token is still valid but the flag is gone; the draft is released again.
	require.NoError(t, f.service.Logout(ctx))
	assert.Equal(t, 2, f.drafts.released)

	require.NoError(t, f.service.Logout(context.Background()))
	assert.Equal(t, 2, f.drafts.released)
}

/*
TestLogout_ExpiredFlag closes the draft even after the session flag expired,
so the next session starts from a clean clone.
*/
func TestLogout_ExpiredFlag(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	// The gate is built by the fixture; the editor reads it through a holder.
	holder := &gateHolder{}
	contentEditor := editor.New(content.Default(), nopPersister{}, holder, logger)
	f := newFixtureWith(t, contentEditor, 50*time.Millisecond)
	holder.gate = f.gate

	session, err := f.service.Login(ctx, auth.LoginInput{Username: adminUser, Password: adminPassword})
	require.NoError(t, err)
	sessionCtx := adminContext(session.SessionID)

	require.NoError(t, contentEditor.StartEditing(sessionCtx))
	require.NoError(t, contentEditor.UpdateSettings(sessionCtx, content.Settings{FontFamilySans: "Lato", FontFamilySerif: "Lora", BaseFontSize: 18}))
	require.True(t, contentEditor.IsDirty())

	time.Sleep(100 * time.Millisecond)
	require.False(t, f.gate.IsAdmin(sessionCtx))

	require.NoError(t, f.service.Logout(sessionCtx))
	assert.False(t, contentEditor.IsEditing())

	next, err := f.service.Login(ctx, auth.LoginInput{Username: adminUser, Password: adminPassword})
	require.NoError(t, err)
	nextCtx := adminContext(next.SessionID)

	require.NoError(t, contentEditor.StartEditing(nextCtx))
	assert.False(t, contentEditor.IsDirty())
}

/*
TestGate_Denies covers the ways a request can fail the admin check.
*/
func TestGate_Denies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	flags := auth.NewMemoryFlagRepository()
	require.NoError(t, flags.Set(context.Background(), "s1", time.Hour))

	guest := ctxutil.WithSession(context.Background(), &sec.SessionClaims{SessionID: "s1", Role: string(sec.RoleGuest)})
	unknown := ctxutil.WithSession(context.Background(), &sec.SessionClaims{SessionID: "s2", Role: string(sec.RoleAdmin)})
	admin := ctxutil.WithSession(context.Background(), &sec.SessionClaims{SessionID: "s1", Role: string(sec.RoleAdmin)})

	gate := auth.NewGate(flags, logger)
	assert.False(t, gate.IsAdmin(context.Background()))
	assert.False(t, gate.IsAdmin(guest))
	assert.False(t, gate.IsAdmin(unknown))
	assert.True(t, gate.IsAdmin(admin))

	broken := auth.NewGate(failingFlags{flags}, logger)
	assert.False(t, broken.IsAdmin(admin))
}
