// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"

	"github.com/taibuivan/folio/internal/content"
)

// BeginHero opens the hero editor with both current variants.
func (editor *Editor) BeginHero(context context.Context) (content.Bilingual[content.Hero], error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return content.Bilingual[content.Hero]{}, err
	}

	editor.open = &EditingItem{Kind: KindHero}
	return draft.HeroPair(), nil
}

// SaveHero writes both hero variants into the draft.
//
// The English imageUrl is written to both languages whatever the Vietnamese
// payload carried. Paragraph markup is sanitised.
func (editor *Editor) SaveHero(context context.Context, pair content.Bilingual[content.Hero]) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return err
	}

	en := pair.En.Clone()
	vn := pair.Vn.Clone()
	content.SanitizeAll(en.Paragraphs)
	content.SanitizeAll(vn.Paragraphs)
	vn.ImageURL = en.ImageURL

	draft.En.Hero = en
	draft.Vn.Hero = vn
	editor.open = nil
	return nil
}

// SetHeroImage replaces the shared hero image.
func (editor *Editor) SetHeroImage(context context.Context, image string) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return err
	}

	draft.En.Hero.ImageURL = image
	draft.Vn.Hero.ImageURL = image
	return nil
}

