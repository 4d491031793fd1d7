// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// ContactMethodPatch changes one contact method. Nil fields are left alone.
//
// Type and URL are shared and written to both languages. Label is written
// to the locale given alongside the patch only.
type ContactMethodPatch struct {
	Type  *content.ContactMethodType `json:"type,omitempty"`
	URL   *string                    `json:"url,omitempty"`
	Label *string                    `json:"label,omitempty"`
}

// BeginContact opens the contact editor with both current variants.
func (editor *Editor) BeginContact(context context.Context) (content.Bilingual[content.Contact], error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return content.Bilingual[content.Contact]{}, err
	}

	editor.open = &EditingItem{Kind: KindContact}
	return draft.ContactPair(), nil
}

// SaveContact writes both contact variants into the draft.
//
// The two method lists must have the same length. Type and URL of every
// method are taken from the English list.
func (editor *Editor) SaveContact(context context.Context, pair content.Bilingual[content.Contact]) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return err
	}
	if err := content.ValidateContact(pair, editor.translate(context)); err != nil {
		return err
	}

	en := pair.En.Clone()
	vn := pair.Vn.Clone()
	for index := range en.ContactMethods {
		vn.ContactMethods[index].Type = en.ContactMethods[index].Type
		vn.ContactMethods[index].URL = en.ContactMethods[index].URL
	}

	draft.En.Contact = en
	draft.Vn.Contact = vn
	editor.open = nil
	return nil
}

// AddContactMethod appends an identical email stub to both languages and
// returns its index.
func (editor *Editor) AddContactMethod(context context.Context) (int, error) {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.alignedContact(context)
	if err != nil {
		return 0, err
	}

	stub := content.ContactMethod{Type: content.ContactEmail}
	draft.En.Contact.ContactMethods = append(draft.En.Contact.ContactMethods, stub)
	draft.Vn.Contact.ContactMethods = append(draft.Vn.Contact.ContactMethods, stub)
	return len(draft.En.Contact.ContactMethods) - 1, nil
}

// RemoveContactMethod deletes the method at index from both languages.
func (editor *Editor) RemoveContactMethod(context context.Context, index int) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.alignedContact(context)
	if err != nil {
		return err
	}
	if err := checkMethodIndex(draft, index); err != nil {
		return err
	}

	draft.En.Contact.ContactMethods = slices.Delete(draft.En.Contact.ContactMethods, index, index+1)
	draft.Vn.Contact.ContactMethods = slices.Delete(draft.Vn.Contact.ContactMethods, index, index+1)
	return nil
}

// UpdateContactMethod applies patch to the method at index. The label goes
// to the l side only.
func (editor *Editor) UpdateContactMethod(context context.Context, index int, l locale.Locale, patch ContactMethodPatch) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.alignedContact(context)
	if err != nil {
		return err
	}
	if err := checkMethodIndex(draft, index); err != nil {
		return err
	}

	en := &draft.En.Contact.ContactMethods[index]
	vn := &draft.Vn.Contact.ContactMethods[index]

	kind, link := en.Type, en.URL
	if patch.Type != nil {
		kind = *patch.Type
	}
	if patch.URL != nil {
		link = *patch.URL
	}

	t := editor.translate(context)
	v := &validate.Validator{}
	content.ValidateContactMethod(v, fmt.Sprintf("%s[%d]", content.FieldContactMethods, index), kind, link, t)
	if err := v.ErrWithMessage(t(content.MsgValidationFailed)); err != nil {
		return err
	}

	en.Type, vn.Type = kind, kind
	en.URL, vn.URL = link, link
	if patch.Label != nil {
		draft.Language(l).Contact.ContactMethods[index].Label = *patch.Label
	}
	return nil
}

// alignedContact returns the draft after checking the two method lists line up.
func (editor *Editor) alignedContact(context context.Context) (*content.AppContent, error) {
	draft, err := editor.requireDraft(context)
	if err != nil {
		return nil, err
	}
	if len(draft.En.Contact.ContactMethods) != len(draft.Vn.Contact.ContactMethods) {
		t := editor.translate(context)
		return nil, validate.RequiredError(content.FieldContactMethods, t(content.MsgContactMisaligned))
	}
	return draft, nil
}

func checkMethodIndex(draft *content.AppContent, index int) error {
	if index < 0 || index >= len(draft.En.Contact.ContactMethods) {
		return validate.RequiredError(content.FieldContactMethods, fmt.Sprintf("index %d out of range", index))
	}
	return nil
}
