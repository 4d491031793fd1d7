// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theme

import (
	"context"
	"net/http"

	"github.com/taibuivan/folio/internal/platform/respond"
)

// AdminGate answers whether the caller holds a live admin session.
type AdminGate interface {
	IsAdmin(context context.Context) bool
}

// Handler serves the theme the caller should see.
type Handler struct {
	registry *Registry
	gate     AdminGate
}

// NewHandler creates a Handler over registry.
func NewHandler(registry *Registry, gate AdminGate) *Handler {
	return &Handler{registry: registry, gate: gate}
}

// Stylesheet handles GET /theme.css.
func (handler *Handler) Stylesheet(writer http.ResponseWriter, request *http.Request) {
	variables := handler.variablesFor(request)

	writer.Header().Set("Content-Type", "text/css; charset=utf-8")

	// Admins and visitors share the URL but not the content.
	writer.Header().Set("Cache-Control", "no-cache")
	writer.Header().Add("Vary", "Cookie, Authorization")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(variables.CSS()))
}

// Variables handles GET /api/v1/theme.
func (handler *Handler) Variables(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Add("Vary", "Cookie, Authorization")
	respond.OK(writer, handler.variablesFor(request))
}

func (handler *Handler) variablesFor(request *http.Request) Variables {
	return handler.registry.For(handler.gate.IsAdmin(request.Context()))
}
