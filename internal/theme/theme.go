// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package theme projects the document's typography settings onto the three
presentation variables the front end styles itself with.

The editor calls [Registry.Apply] every time the committed document or the
draft changes. Visitors are always served the committed projection.
*/
package theme

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/taibuivan/folio/internal/content"
)

// CSS custom property names.
const (
	VarFontSans  = "--font-sans"
	VarFontSerif = "--font-serif"
)

// Variables are the projected presentation values.
type Variables struct {
	FontSans     string `json:"fontSans"`
	FontSerif    string `json:"fontSerif"`
	RootFontSize string `json:"rootFontSize"`
}

// FromSettings is a pure projection of settings to variables.
func FromSettings(settings content.Settings) Variables {
	return Variables{
		FontSans:     fontStack(settings.FontFamilySans, "sans-serif"),
		FontSerif:    fontStack(settings.FontFamilySerif, "serif"),
		RootFontSize: strconv.FormatFloat(settings.BaseFontSize, 'f', -1, 64) + "px",
	}
}

// CSS renders the variables as a :root rule.
func (variables Variables) CSS() string {
	var builder strings.Builder
	builder.WriteString(":root {\n")
	fmt.Fprintf(&builder, "  %s: %s;\n", VarFontSans, variables.FontSans)
	fmt.Fprintf(&builder, "  %s: %s;\n", VarFontSerif, variables.FontSerif)
	builder.WriteString("}\n")
	fmt.Fprintf(&builder, "html {\n  font-size: %s;\n}\n", variables.RootFontSize)
	return builder.String()
}

// fontStack quotes family and appends the generic fallback. Characters that
// could end the declaration are dropped.
func fontStack(family, fallback string) string {
	family = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, strings.TrimSpace(family))

	if family == "" {
		return fallback
	}
	return "'" + family + "', " + fallback
}

// # Registry

// Registry holds the committed projection and, while a draft is open, the
// draft's projection. Only admins are served the draft.
type Registry struct {
	mu        sync.RWMutex
	canonical Variables
	draft     *Variables
	logger    *slog.Logger
}

// NewRegistry creates a Registry seeded with the committed settings.
func NewRegistry(settings content.Settings, logger *slog.Logger) *Registry {
	return &Registry{canonical: FromSettings(settings), logger: logger}
}

// Apply re-projects both documents. draft is nil when no draft is open.
// It has the signature of an editor settings hook.
func (registry *Registry) Apply(canonical content.Settings, draft *content.Settings) {
	nextCanonical := FromSettings(canonical)

	var nextDraft *Variables
	if draft != nil {
		projected := FromSettings(*draft)
		nextDraft = &projected
	}

	registry.mu.Lock()
	changed := nextCanonical != registry.canonical || !sameDraft(nextDraft, registry.draft)
	registry.canonical = nextCanonical
	registry.draft = nextDraft
	registry.mu.Unlock()

	if changed {
		registry.logger.Debug("theme_applied",
			slog.String("font_sans", nextCanonical.FontSans),
			slog.String("font_serif", nextCanonical.FontSerif),
			slog.String("root_font_size", nextCanonical.RootFontSize),
			slog.Bool("has_draft", nextDraft != nil),
		)
	}
}

// Canonical returns the projection of the committed document.
func (registry *Registry) Canonical() Variables {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.canonical
}

// For returns the draft projection for an admin while a draft is open,
// the committed one otherwise.
func (registry *Registry) For(isAdmin bool) Variables {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	if isAdmin && registry.draft != nil {
		return *registry.draft
	}
	return registry.canonical
}

func sameDraft(a, b *Variables) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
