// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"

	"github.com/taibuivan/folio/internal/content"
)

// BeginExperience opens the experience editor. id 0 opens an empty form.
func (editor *Editor) BeginExperience(context context.Context, id int) (content.Bilingual[content.Experience], error) {
	return beginKeyed(editor, context, KindExperience, experiencesOf, id)
}

// SaveExperience creates or updates an experience entry in the draft.
// New entries are prepended so the list stays most-recent-first.
func (editor *Editor) SaveExperience(context context.Context, pair content.Bilingual[content.Experience]) (int, error) {
	pair.En.Description = content.SanitizeInline(pair.En.Description)
	pair.Vn.Description = content.SanitizeInline(pair.Vn.Description)
	return saveKeyed(editor, context, experiencesOf, content.ValidateExperience, pair)
}

// DeleteExperience removes an experience entry from both languages.
func (editor *Editor) DeleteExperience(context context.Context, id int) error {
	return deleteKeyed(editor, context, experiencesOf, id)
}
