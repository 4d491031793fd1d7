// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// # Projects

// BeginProject opens the project editor. id 0 opens an empty form.
func (editor *Editor) BeginProject(context context.Context, id int) (content.Bilingual[content.Project], error) {
	return beginKeyed(editor, context, KindProject, projectsOf, id)
}

// SaveProject creates or updates a project in the draft.
//
// Cover image, detail images, URL and date are taken from the English
// variant for both languages. New projects are appended.
func (editor *Editor) SaveProject(context context.Context, pair content.Bilingual[content.Project]) (int, error) {
	pair.En.Description = content.SanitizeInline(pair.En.Description)
	pair.Vn.Description = content.SanitizeInline(pair.Vn.Description)
	return saveKeyed(editor, context, projectsOf, content.ValidateProject, pair)
}

// DeleteProject removes a project from both languages.
func (editor *Editor) DeleteProject(context context.Context, id int) error {
	return deleteKeyed(editor, context, projectsOf, id)
}

// # Project Images

// AppendProjectImages appends images to a project's detail gallery.
//
// The append is a read-modify-write over the current draft under the lock,
// so uploads finishing in any order all land.
func (editor *Editor) AppendProjectImages(context context.Context, id int, images []string) error {
	return editor.mutateProject(context, id, func(en *content.Project) error {
		en.DetailImages = append(en.DetailImages, images...)
		return nil
	})
}

// SetProjectCover replaces a project's cover image in both languages.
func (editor *Editor) SetProjectCover(context context.Context, id int, image string) error {
	return editor.mutateProject(context, id, func(en *content.Project) error {
		en.CoverImage = image
		return nil
	})
}

// RemoveProjectImage deletes one detail image by position in both languages.
func (editor *Editor) RemoveProjectImage(context context.Context, id int, index int) error {
	return editor.mutateProject(context, id, func(en *content.Project) error {
		if index < 0 || index >= len(en.DetailImages) {
			return validate.RequiredError("detailImages", fmt.Sprintf("index %d out of range", index))
		}
		en.DetailImages = slices.Delete(en.DetailImages, index, index+1)
		return nil
	})
}

// mutateProject applies change to the English project and mirrors the
// shared fields into the Vietnamese one.
func (editor *Editor) mutateProject(context context.Context, id int, change func(en *content.Project) error) error {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	draft, err := editor.requireDraft(context)
	if err != nil {
		return err
	}

	collection := projectsOf(draft)
	enIndex, vnIndex := collection.find(id)
	if enIndex < 0 || vnIndex < 0 {
		return apperr.NotFound(collection.resource)
	}

	en := (*collection.en)[enIndex].Clone()
	if err := change(&en); err != nil {
		return err
	}

	(*collection.en)[enIndex] = en
	(*collection.vn)[vnIndex] = collection.share(en, (*collection.vn)[vnIndex])
	return nil
}
