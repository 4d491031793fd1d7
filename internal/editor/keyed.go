// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

// # Generic Entity Operations
//
// Projects, experiences and skill categories share one begin/save/delete
// flow. Go methods cannot take type parameters, so these are functions over
// the editor; the exported per-entity methods are thin wrappers.

type collectionOf[T entity[T]] func(doc *content.AppContent) keyedCollection[T]

type payloadRule[T any] func(pair content.Bilingual[T], t content.Translator) error

// beginKeyed opens the entity editor. id 0 opens an empty "new" form.
func beginKeyed[T entity[T]](editor *Editor, context context.Context, kind EntityKind, pick collectionOf[T], id int) (content.Bilingual[T], error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	var pair content.Bilingual[T]

	draft, err := editor.requireDraft(context)
	if err != nil {
		return pair, err
	}

	if id == 0 {
		editor.open = &EditingItem{Kind: kind, IsNew: true}
		return pair, nil
	}

	collection := pick(draft)
	enIndex, vnIndex := collection.find(id)
	if enIndex < 0 || vnIndex < 0 {
		return pair, apperr.NotFound(collection.resource)
	}

	editor.open = &EditingItem{Kind: kind, ID: id}
	pair.En = (*collection.en)[enIndex].Clone()
	pair.Vn = (*collection.vn)[vnIndex].Clone()
	return pair, nil
}

// saveKeyed merges pair into the draft and returns the entity id.
//
// Both ids zero creates; both ids equal and non-zero updates in place.
// Validation runs before anything is touched, so a rejected payload leaves
// the draft and the open editor as they were.
func saveKeyed[T entity[T]](editor *Editor, context context.Context, pick collectionOf[T], rule payloadRule[T], pair content.Bilingual[T]) (int, error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return 0, err
	}
	if err := rule(pair, editor.translate(context)); err != nil {
		return 0, err
	}

	collection := pick(draft)
	id := pair.En.EntityID()

	if id == 0 {
		id = editor.ids.next(collection.heldIDs()...)
		collection.create(pair, id)
		editor.logger.InfoContext(context, "entity_created", slog.String("resource", collection.resource), slog.Int("id", id))
	} else if !collection.update(pair) {
		return 0, apperr.NotFound(collection.resource)
	}

	editor.open = nil
	return id, nil
}

// deleteKeyed removes id from both language collections.
func deleteKeyed[T entity[T]](editor *Editor, context context.Context, pick collectionOf[T], id int) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return err
	}

	collection := pick(draft)
	if !collection.remove(id) {
		return apperr.NotFound(collection.resource)
	}

	if editor.open != nil && editor.open.ID == id {
		editor.open = nil
	}

	editor.logger.WarnContext(context, "entity_deleted", slog.String("resource", collection.resource), slog.Int("id", id))
	return nil
}
