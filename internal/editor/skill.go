// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"

	"github.com/taibuivan/folio/internal/content"
)

// BeginSkillCategory opens the skill category editor. id 0 opens an empty form.
func (editor *Editor) BeginSkillCategory(context context.Context, id int) (content.Bilingual[content.SkillCategory], error) {
	return beginKeyed(editor, context, KindSkillCategory, skillCategoriesOf, id)
}

// SaveSkillCategory creates or updates a skill category in the draft.
func (editor *Editor) SaveSkillCategory(context context.Context, pair content.Bilingual[content.SkillCategory]) (int, error) {
	return saveKeyed(editor, context, skillCategoriesOf, content.ValidateSkillCategory, pair)
}

// DeleteSkillCategory removes a skill category from both languages.
func (editor *Editor) DeleteSkillCategory(context context.Context, id int) error {
	return deleteKeyed(editor, context, skillCategoriesOf, id)
}
