// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/editor"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/theme"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type stack struct {
	handler   http.Handler
	persister *content.Persister
	editor    *editor.Editor
}

func newStack(t *testing.T, checks ...api.Check) stack {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repository, err := content.OpenBolt(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close() })

	persister := content.NewPersister(repository, logger)
	doc, _ := persister.Load(ctx)

	tokens, err := sec.NewTokenService(strings.Repeat("k", 32), constants.AuthIssuer)
	require.NoError(t, err)

	hash, err := sec.HashPassword("secret")
	require.NoError(t, err)

	flags := auth.NewMemoryFlagRepository()
	gate := auth.NewGate(flags, logger)
	registry := theme.NewRegistry(doc.Settings, logger)
	ed := editor.New(doc, persister, gate, logger, editor.WithSettingsHook(registry.Apply))

	service := auth.NewService(
		auth.Credentials{Username: "admin", PasswordHash: hash},
		flags, gate, tokens, ed, ed, time.Hour, logger,
	)

	if len(checks) == 0 {
		checks = []api.Check{{Name: "content_store", Probe: persister.Ping}}
	}
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Checks: checks}, logger)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	server := api.NewServer(ctx, cfg, logger, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(service, false),
		Editor:    editor.NewHandler(ed, media.NewEncoder(1<<20), gate),
		Theme:     theme.NewHandler(registry, gate),
	})

	return stack{handler: server.Handler(), persister: persister, editor: ed}
}

func (s stack) do(t *testing.T, method, target string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	request := httptest.NewRequest(method, target, bytes.NewReader(raw))
	request.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)

	var payload envelope
	if strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json") && recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	}
	return recorder, payload
}

func (s stack) login(t *testing.T) *http.Cookie {
	t.Helper()

	recorder, _ := s.do(t, http.MethodPost, "/api/v1/auth/login", auth.LoginInput{Username: "admin", Password: "secret"}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func settingsOf(t *testing.T, payload envelope) content.Settings {
	t.Helper()

	var doc content.AppContent
	require.NoError(t, json.Unmarshal(payload.Data, &doc))
	return doc.Settings
}

func variablesOf(t *testing.T, payload envelope) theme.Variables {
	t.Helper()

	var variables theme.Variables
	require.NoError(t, json.Unmarshal(payload.Data, &variables))
	return variables
}

/*
TestServer_EditAndCommit drives a full admin session through the router:
login, draft edit, theme and content isolation, commit to the store and logout.
*/
func TestServer_EditAndCommit(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	// Anonymous callers cannot open a draft.
	recorder, _ := s.do(t, http.MethodPost, "/api/v1/editor/start", nil, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	cookie := s.login(t)

	recorder, _ = s.do(t, http.MethodPost, "/api/v1/editor/start", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)

	edited := content.Settings{FontFamilySans: "Lato", FontFamilySerif: "Lora", BaseFontSize: 18}
	recorder, _ = s.do(t, http.MethodPut, "/api/v1/editor/settings", edited, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Visitors keep the committed typography; the admin sees the draft.
	recorder, _ = s.do(t, http.MethodGet, "/theme.css", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "'Inter', sans-serif")
	assert.Contains(t, recorder.Body.String(), "'Playfair Display', serif")
	assert.Contains(t, recorder.Body.String(), "16px")
	assert.NotContains(t, recorder.Body.String(), "Lato")

	recorder, _ = s.do(t, http.MethodGet, "/theme.css", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "'Lato', sans-serif")
	assert.Contains(t, recorder.Body.String(), "'Lora', serif")
	assert.Contains(t, recorder.Body.String(), "18px")

	_, payload := s.do(t, http.MethodGet, "/api/v1/theme", nil, nil)
	assert.Equal(t, theme.FromSettings(content.Default().Settings), variablesOf(t, payload))

	_, payload = s.do(t, http.MethodGet, "/api/v1/theme", nil, cookie)
	assert.Equal(t, theme.FromSettings(edited), variablesOf(t, payload))

	// The same split holds for the document itself.
	_, payload = s.do(t, http.MethodGet, "/api/v1/content", nil, nil)
	assert.Equal(t, content.Default().Settings, settingsOf(t, payload))

	_, payload = s.do(t, http.MethodGet, "/api/v1/content", nil, cookie)
	assert.Equal(t, edited, settingsOf(t, payload))

	recorder, _ = s.do(t, http.MethodPost, "/api/v1/editor/commit", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)

	stored, source := s.persister.Load(ctx)
	assert.Equal(t, content.SourceStore, source)
	assert.Equal(t, edited, stored.Settings)

	_, payload = s.do(t, http.MethodGet, "/api/v1/content", nil, nil)
	assert.Equal(t, edited, settingsOf(t, payload))

	recorder, _ = s.do(t, http.MethodGet, "/theme.css", nil, nil)
	assert.Contains(t, recorder.Body.String(), "'Lato', sans-serif")

	// Logout closes the admin session for the same token.
	recorder, _ = s.do(t, http.MethodPost, "/api/v1/auth/logout", nil, cookie)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder, _ = s.do(t, http.MethodGet, "/api/v1/editor", nil, cookie)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

/*
TestServer_LogoutDiscardsDraft drops uncommitted edits when the admin leaves.
*/
func TestServer_LogoutDiscardsDraft(t *testing.T) {
	s := newStack(t)
	cookie := s.login(t)

	recorder, _ := s.do(t, http.MethodPost, "/api/v1/editor/start", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, _ = s.do(t, http.MethodDelete, "/api/v1/editor/skills/1?confirm=true", nil, cookie)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, s.editor.IsDirty())

	recorder, _ = s.do(t, http.MethodPost, "/api/v1/auth/logout", nil, cookie)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	assert.False(t, s.editor.IsDirty())
	_, found := s.editor.Canonical().FindSkillCategory(1)
	assert.True(t, found)
}

/*
TestServer_NewSessionStartsClean gives a later login a fresh clone instead
of the draft an earlier session abandoned.
*/
func TestServer_NewSessionStartsClean(t *testing.T) {
	s := newStack(t)
	abandoned := s.login(t)

	recorder, _ := s.do(t, http.MethodPost, "/api/v1/editor/start", nil, abandoned)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, _ = s.do(t, http.MethodDelete, "/api/v1/editor/skills/1?confirm=true", nil, abandoned)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.True(t, s.editor.IsDirty())

	cookie := s.login(t)
	recorder, payload := s.do(t, http.MethodPost, "/api/v1/editor/start", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)

	var state editor.State
	require.NoError(t, json.Unmarshal(payload.Data, &state))
	assert.True(t, state.IsEditing)
	assert.False(t, state.IsDirty)

	_, found := s.editor.Active().FindSkillCategory(1)
	assert.True(t, found)
}

/*
TestServer_Probes reports liveness and readiness.
*/
func TestServer_Probes(t *testing.T) {
	tests := []struct {
		name   string
		checks []api.Check
		want   int
	}{
		{
			name: "Ready",
			want: http.StatusOK,
		},
		{
			name: "Degraded",
			checks: []api.Check{
				{Name: "content_store", Probe: func(context.Context) error { return nil }},
				{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
			},
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStack(t, tt.checks...)

			recorder, _ := s.do(t, http.MethodGet, "/health", nil, nil)
			assert.Equal(t, http.StatusOK, recorder.Code)

			recorder, _ = s.do(t, http.MethodGet, "/ready", nil, nil)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
