// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/constants"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Handler implements the session endpoints.
type Handler struct {
	service       *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler]. secureCookies marks the session
// cookie Secure and should be true outside development.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// RegisterRoutes mounts the session endpoints.
//
// # Endpoints
//   - POST /login   : Opens an admin session.
//   - POST /logout  : Closes it and discards any draft.
//   - GET  /session : Reports the caller's session state.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.session)
}

/*
POST /api/v1/auth/login.

Description: Checks the admin credentials. The token is returned in the body
and set as an HttpOnly cookie without Expires, so it lasts for the browser
session only.

Request (Body):
  - LoginInput

Response:
  - 200: LoginSession
  - 400: Missing username or password
  - 401: Localized login error
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {

	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	v := &validate.Validator{}
	v.Required("username", input.Username).Required("password", input.Password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	session, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	http.SetCookie(writer, handler.sessionCookie(session.Token, 0))
	respond.OK(writer, session)
}

/*
POST /api/v1/auth/logout.

Description: Releases the caller's draft, clears the admin flag and expires the
session cookie.

Response:
  - 204: No Content
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Logout(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.sessionCookie("", -1))
	respond.NoContent(writer)
}

func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Status(request.Context()))
}

// sessionCookie builds the session cookie. maxAge 0 leaves it a browser
// session cookie; -1 deletes it.
func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
