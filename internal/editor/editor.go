// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package editor implements the draft/commit editing state machine.

States:

  - Viewing: no draft. Everyone reads the canonical document.
  - Editing: a deep clone of the canonical document is open as the draft.
    Every entity edit lands on the draft, never on canonical.

Editing ends with Commit (canonical := draft, then persist) or Discard
(draft dropped). Every operation holds one mutex, so readers never observe a
half-applied edit and concurrent image uploads cannot lose each other's
appends.
*/
package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
)

// # Collaborators

// Persister writes the canonical document. Only committed content reaches it.
type Persister interface {
	Save(context context.Context, doc *content.AppContent) error
}

// AdminGate answers whether the caller's session holds the admin flag.
type AdminGate interface {
	IsAdmin(context context.Context) bool
}

// SettingsHook receives the committed typography and, while a draft is
// open, the draft's typography. It fires on every change to either. Hooks
// run under the editor lock and must not call back into the [Editor].
type SettingsHook func(canonical content.Settings, draft *content.Settings)

// # Errors

var (
	// ErrNoDraft is the cause of every rejection made because no edit session is open.
	ErrNoDraft = errors.New("editor: no draft open")

	// ErrNotAdmin is the cause of a StartEditing call without the admin flag.
	ErrNotAdmin = errors.New("editor: admin session required")
)

// # Editing State

// EntityKind names the entity an open editor is bound to.
type EntityKind string

const (
	KindHero          EntityKind = "hero"
	KindProject       EntityKind = "project"
	KindExperience    EntityKind = "experience"
	KindSkillCategory EntityKind = "skill"
	KindContact       EntityKind = "contact"
)

// EditingItem is the entity editor currently open, if any.
type EditingItem struct {
	Kind  EntityKind `json:"kind"`
	ID    int        `json:"id,omitempty"`
	IsNew bool       `json:"isNew,omitempty"`
}

// State is the read model the front end polls.
type State struct {
	IsAdmin   bool         `json:"isAdmin"`
	IsEditing bool         `json:"isEditing"`
	IsDirty   bool         `json:"isDirty"`
	Editing   *EditingItem `json:"editing,omitempty"`

	// Warning carries the localized unsaved-changes prompt while dirty.
	Warning string `json:"warning,omitempty"`
}

// CommitResult reports the outcome of a commit.
//
// A commit always succeeds in memory. Persisted is false and Warning holds
// the localized storage error when the write-back failed.
type CommitResult struct {
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
}

// # Editor

// Editor owns the canonical document, the optional draft and the open entity editor.
type Editor struct {
	mu sync.Mutex

	canonical *content.AppContent
	draft     *content.AppContent
	owner     string
	open      *EditingItem

	persister Persister
	gate      AdminGate
	hooks     []SettingsHook
	ids       idSequence
	logger    *slog.Logger
}

// Option customises an [Editor].
type Option func(*Editor)

// WithClock replaces the time source used for id generation.
func WithClock(now func() time.Time) Option {
	return func(editor *Editor) { editor.ids.now = now }
}

// WithSettingsHook registers a hook fired whenever the committed settings or the draft change.
func WithSettingsHook(hook SettingsHook) Option {
	return func(editor *Editor) { editor.hooks = append(editor.hooks, hook) }
}

// New creates an editor in the Viewing state over canonical.
// The hooks fire once immediately with the canonical settings.
func New(canonical *content.AppContent, persister Persister, gate AdminGate, logger *slog.Logger, options ...Option) *Editor {
	editor := &Editor{
		canonical: canonical.Clone(),
		persister: persister,
		gate:      gate,
		ids:       idSequence{now: time.Now},
		logger:    logger,
	}
	for _, option := range options {
		option(editor)
	}

	editor.applySettings()
	return editor
}

// # Draft Lifecycle

// StartEditing opens a draft cloned from canonical.
//
// It is rejected without the admin flag. It is a no-op when the caller's
// session already owns the open draft. A draft left behind by another
// session is dropped and replaced by a fresh clone.
func (editor *Editor) StartEditing(context context.Context) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	if !editor.gate.IsAdmin(context) {
		return editor.reject(context, apperr.Forbidden(editor.translate(context)(content.MsgAdminRequired)), ErrNotAdmin)
	}

	session := sessionID(context)
	if editor.draft != nil {
		if editor.owner == session {
			return nil
		}
		editor.logger.WarnContext(context, "stale_draft_dropped",
			slog.String("owner_session_id", editor.owner),
			slog.Bool("had_changes", editor.dirty()),
		)
	}

	editor.draft = editor.canonical.Clone()
	editor.owner = session
	editor.open = nil
	editor.applySettings()

	editor.logger.InfoContext(context, "edit_session_started")
	return nil
}

// Commit replaces canonical with the draft and persists it.
//
// The swap is a single pointer assignment under the lock. A persistence
// failure never rolls it back: it is logged and reported through
// [CommitResult.Warning].
func (editor *Editor) Commit(context context.Context) (CommitResult, error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	if editor.draft == nil {
		return CommitResult{}, editor.noDraft(context)
	}

	editor.canonical = editor.draft
	editor.draft = nil
	editor.owner = ""
	editor.open = nil
	editor.applySettings()

	if err := editor.persister.Save(context, editor.canonical); err != nil {
		editor.logger.WarnContext(context, "content_persist_failed", slog.Any("error", err))
		return CommitResult{
			Persisted: false,
			Warning:   editor.translate(context)(content.MsgLocalStorageError),
		}, nil
	}

	editor.logger.InfoContext(context, "edit_session_committed")
	return CommitResult{Persisted: true}, nil
}

// Discard drops the draft and closes any open entity editor.
// Without a draft it does nothing.
func (editor *Editor) Discard(context context.Context) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	if editor.draft == nil && editor.open == nil {
		return
	}

	dirty := editor.dirty()
	editor.draft = nil
	editor.owner = ""
	editor.open = nil
	editor.applySettings()

	editor.logger.InfoContext(context, "edit_session_discarded", slog.Bool("had_changes", dirty))
}

// Release discards the draft when the caller's session owns it. Logout
// calls it, so it does not consult the admin flag, which may already have
// expired.
func (editor *Editor) Release(context context.Context) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	if editor.draft == nil || editor.owner != sessionID(context) {
		return
	}

	dirty := editor.dirty()
	editor.draft = nil
	editor.owner = ""
	editor.open = nil
	editor.applySettings()

	editor.logger.InfoContext(context, "edit_session_released", slog.Bool("had_changes", dirty))
}

// UpdateSettings replaces the draft's typography settings.
func (editor *Editor) UpdateSettings(context context.Context, settings content.Settings) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	if editor.draft == nil {
		return editor.noDraft(context)
	}
	if err := content.ValidateSettings(settings, editor.translate(context)); err != nil {
		return err
	}

	editor.draft.Settings = settings
	editor.applySettings()
	return nil
}

// CloseEdit closes the open entity editor without touching the draft.
func (editor *Editor) CloseEdit(context context.Context) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	editor.open = nil
}

// PersistCanonical writes the canonical document, typically once at startup
// so a default document is materialised in the store.
func (editor *Editor) PersistCanonical(context context.Context) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.persister.Save(context, editor.canonical)
}

// # Readers

// Active returns a copy of the draft while editing, otherwise of canonical.
func (editor *Editor) Active() *content.AppContent {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.active().Clone()
}

// ActiveFor returns what the caller should see: the draft for an admin
// while editing, canonical for everyone else.
func (editor *Editor) ActiveFor(context context.Context) *content.AppContent {
	isAdmin := editor.gate.IsAdmin(context)

	editor.mu.Lock()
	defer editor.mu.Unlock()

	if isAdmin && editor.draft != nil {
		return editor.draft.Clone()
	}
	return editor.canonical.Clone()
}

// Canonical returns a copy of the committed document.
func (editor *Editor) Canonical() *content.AppContent {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.canonical.Clone()
}

// IsEditing reports whether a draft is open.
func (editor *Editor) IsEditing() bool {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.draft != nil
}

// IsDirty reports whether the draft differs structurally from canonical.
func (editor *Editor) IsDirty() bool {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.dirty()
}

// State returns the read model for the caller.
func (editor *Editor) State(context context.Context) State {
	isAdmin := editor.gate.IsAdmin(context)

	editor.mu.Lock()
	defer editor.mu.Unlock()

	state := State{
		IsAdmin:   isAdmin,
		IsEditing: editor.draft != nil,
		IsDirty:   editor.dirty(),
	}
	if editor.open != nil {
		item := *editor.open
		state.Editing = &item
	}
	if state.IsDirty {
		state.Warning = editor.translate(context)(content.MsgUnsavedChangesWarning)
	}
	return state
}

// Message resolves a catalog key against the active document in the
// caller's locale.
func (editor *Editor) Message(context context.Context, key string) string {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.translate(context)(key)
}

// # Internals (caller holds the lock)

func (editor *Editor) active() *content.AppContent {
	if editor.draft != nil {
		return editor.draft
	}
	return editor.canonical
}

func (editor *Editor) dirty() bool {
	return editor.draft != nil && !content.Equal(editor.canonical, editor.draft)
}

func (editor *Editor) applySettings() {
	var draft *content.Settings
	if editor.draft != nil {
		settings := editor.draft.Settings
		draft = &settings
	}
	for _, hook := range editor.hooks {
		hook(editor.canonical.Settings, draft)
	}
}

// sessionID names the session a draft belongs to. Anonymous callers share "".
func sessionID(context context.Context) string {
	if claims := ctxutil.GetSession(context); claims != nil {
		return claims.SessionID
	}
	return ""
}

// translate resolves messages against the active document in the caller's locale.
func (editor *Editor) translate(context context.Context) content.Translator {
	return content.TranslatorFor(editor.active(), ctxutil.GetLocale(context))
}

func (editor *Editor) noDraft(context context.Context) error {
	return editor.reject(context, apperr.Conflict(editor.translate(context)(content.MsgNotEditing)), ErrNoDraft)
}

func (editor *Editor) reject(context context.Context, appErr *apperr.AppError, cause error) error {
	appErr.Cause = cause
	editor.logger.DebugContext(context, "editor_rejected", slog.String("reason", cause.Error()))
	return appErr
}

// requireDraft returns the draft or the localized no-draft error.
func (editor *Editor) requireDraft(context context.Context) (*content.AppContent, error) {
	if editor.draft == nil {
		return nil, editor.noDraft(context)
	}
	return editor.draft, nil
}
