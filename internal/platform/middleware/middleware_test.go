// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/sec"
)

type stubVerifier struct {
	valid string
}

func (v stubVerifier) VerifyToken(token string) (*sec.SessionClaims, error) {
	if token != v.valid {
		return nil, errors.New("bad token")
	}
	return &sec.SessionClaims{SessionID: "s-1", Role: string(sec.RoleAdmin)}, nil
}

type stubGate bool

func (g stubGate) IsAdmin(context.Context) bool { return bool(g) }

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := ctxutil.GetSession(r.Context()); claims != nil {
			_, _ = w.Write([]byte(claims.SessionID))
			return
		}
		_, _ = w.Write([]byte("anon"))
	})
}

/*
TestAuthenticate covers bearer and cookie transports.
*/
func TestAuthenticate(t *testing.T) {
	handler := middleware.Authenticate(stubVerifier{valid: "good"})(sessionEcho())

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{"anonymous", "", "", http.StatusOK, "anon"},
		{"valid bearer", "Bearer good", "", http.StatusOK, "s-1"},
		{"invalid bearer", "Bearer bad", "", http.StatusUnauthorized, ""},
		{"malformed header", "Token good", "", http.StatusUnauthorized, ""},
		{"valid cookie", "", "good", http.StatusOK, "s-1"},
		{"stale cookie stays anonymous", "", "bad", http.StatusOK, "anon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

/*
TestRequireAdmin distinguishes anonymous callers from revoked sessions.
*/
func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	run := func(gate middleware.AdminGate, token string) int {
		chain := middleware.Authenticate(stubVerifier{valid: "good"})(middleware.RequireAdmin(gate)(ok))
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, run(stubGate(true), ""))
	assert.Equal(t, http.StatusForbidden, run(stubGate(false), "good"))
	assert.Equal(t, http.StatusNoContent, run(stubGate(true), "good"))
}

/*
TestLocalize checks query precedence over Accept-Language.
*/
func TestLocalize(t *testing.T) {
	var seen locale.Locale
	handler := middleware.Localize()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/?lang=vn", nil)
	req.Header.Set("Accept-Language", "en-US")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, locale.Vietnamese, seen)
	assert.Equal(t, "vn", rec.Header().Get("Content-Language"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, locale.Vietnamese, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, locale.English, seen)
}

/*
TestRequestID generates an id when absent and echoes one when given.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constants.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "given")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "given", seen)
}

/*
TestRateLimitWith rejects requests beyond the burst.
*/
func TestRateLimitWith(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimitWith(ctx, 0, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

type corsConfig struct {
	dev    bool
	suffix string
}

func (c corsConfig) IsDevelopment() bool  { return c.dev }
func (c corsConfig) OriginSuffix() string { return c.suffix }

/*
TestCORS honours the configured origin suffix outside development.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(corsConfig{suffix: ".example.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://me.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://me.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.test")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
