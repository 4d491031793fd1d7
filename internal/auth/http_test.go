// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
)

func newRouter(f fixture) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(f.tokens))
	router.Route("/api/v1/auth", auth.NewHandler(f.service, true).RegisterRoutes)
	return router
}

func post(router http.Handler, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	request := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", constants.SessionCookieName)
	return nil
}

/*
TestHTTP_LoginSessionLogout sets a browser-session cookie, recognises it and
expires it on logout.
*/
func TestHTTP_LoginSessionLogout(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)

	recorder := post(router, "/api/v1/auth/login", auth.LoginInput{Username: adminUser, Password: adminPassword})
	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookie(t, recorder)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.Expires.IsZero())
	assert.Zero(t, cookie.MaxAge)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	request.AddCookie(cookie)
	status := httptest.NewRecorder()
	router.ServeHTTP(status, request)

	var payload struct {
		Data auth.SessionStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(status.Body.Bytes(), &payload))
	assert.True(t, payload.Data.IsAdmin)

	recorder = post(router, "/api/v1/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, -1, sessionCookie(t, recorder).MaxAge)
	assert.Equal(t, 1, f.drafts.released)
}

/*
TestHTTP_LoginRejected returns 401 without setting a cookie.
*/
func TestHTTP_LoginRejected(t *testing.T) {
	router := newRouter(newFixture(t))

	recorder := post(router, "/api/v1/auth/login", auth.LoginInput{Username: adminUser, Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())

	recorder = post(router, "/api/v1/auth/login", auth.LoginInput{Username: adminUser})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
