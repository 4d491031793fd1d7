// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/locale"
)

/*
TestDefault checks the embedded document is complete and valid.
*/
func TestDefault(t *testing.T) {
	doc := content.Default()

	require.NoError(t, doc.Validate())
	assert.Equal(t, "Inter", doc.Settings.FontFamilySans)
	assert.Equal(t, "Playfair Display", doc.Settings.FontFamilySerif)
	assert.Equal(t, 16.0, doc.Settings.BaseFontSize)

	assert.Len(t, doc.En.ProjectsData, 4)
	assert.Len(t, doc.Vn.ProjectsData, 4)
	assert.Len(t, doc.En.ExperiencesData, 3)
	assert.Len(t, doc.En.SkillCategoriesData, 3)
	assert.Equal(t, "Tháng 8 2025 - Hiện tại", doc.Vn.ExperiencesData[0].Period)
	assert.Equal(t, doc.En.Hero.ImageURL, doc.Vn.Hero.ImageURL)
	assert.Len(t, doc.En.Contact.ContactMethods, 3)
	assert.Equal(t, "Invalid username or password.", doc.En.Modals[content.MsgLoginError])
}

/*
TestDefault_FreshCopies ensures callers cannot corrupt the built-in document.
*/
func TestDefault_FreshCopies(t *testing.T) {
	first := content.Default()
	first.En.ProjectsData[0].Title = "mutated"
	first.En.Modals[content.MsgLoginError] = "mutated"

	second := content.Default()
	assert.NotEqual(t, "mutated", second.En.ProjectsData[0].Title)
	assert.NotEqual(t, "mutated", second.En.Modals[content.MsgLoginError])
}

/*
TestClone_Independent verifies a clone shares no backing storage.
*/
func TestClone_Independent(t *testing.T) {
	original := content.Default()
	clone := original.Clone()

	require.True(t, content.Equal(original, clone))
	assert.Empty(t, cmp.Diff(original, clone))

	clone.En.ProjectsData[0].DetailImages = append(clone.En.ProjectsData[0].DetailImages[:0], "x")
	clone.En.ProjectsData[0].Technologies[0] = "changed"
	clone.Vn.Hero.Paragraphs[0] = "changed"
	clone.En.Contact.ContactMethods[0].Label = "changed"
	clone.En.NavLinks[0].Text = "changed"
	clone.Vn.SkillCategoriesData[0].Skills[0] = "changed"
	clone.En.Modals["loginTitle"] = "changed"

	assert.Equal(t, content.Default(), original)
	assert.False(t, content.Equal(original, clone))
}

/*
TestTreeEqual covers the structural comparison rules.
*/
func TestTreeEqual(t *testing.T) {
	decode := func(raw string) any {
		var value any
		require.NoError(t, json.Unmarshal([]byte(raw), &value))
		return value
	}

	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"primitives", `1`, `1`, true},
		{"different primitives", `"a"`, `"b"`, false},
		{"key order ignored", `{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, true},
		{"extra key", `{"a":1}`, `{"a":1,"b":2}`, false},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"array length", `[1]`, `[1,1]`, false},
		{"null vs empty array", `null`, `[]`, false},
		{"nested", `{"x":{"y":[{"z":true}]}}`, `{"x":{"y":[{"z":true}]}}`, true},
		{"type mismatch", `{"a":"1"}`, `{"a":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, content.TreeEqual(decode(tt.a), decode(tt.b)))
		})
	}
}

/*
TestEqual_FieldLevelChange flips the result on any single-field edit.
*/
func TestEqual_FieldLevelChange(t *testing.T) {
	base := content.Default()

	mutations := map[string]func(*content.AppContent){
		"settings":      func(c *content.AppContent) { c.Settings.BaseFontSize = 17 },
		"hero title":    func(c *content.AppContent) { c.Vn.Hero.Title = "x" },
		"project order": func(c *content.AppContent) { p := c.En.ProjectsData; p[0], p[1] = p[1], p[0] },
		"skill item":    func(c *content.AppContent) { c.En.SkillCategoriesData[2].Skills[0] = "x" },
		"modal":         func(c *content.AppContent) { c.Vn.Modals["loginTitle"] = "x" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed := base.Clone()
			mutate(changed)
			assert.False(t, content.Equal(base, changed))
		})
	}

	assert.True(t, content.Equal(nil, nil))
	assert.False(t, content.Equal(base, nil))
}

/*
TestFind locates entities on both sides and returns copies.
*/
func TestFind(t *testing.T) {
	doc := content.Default()

	pair, ok := doc.FindProject(2)
	require.True(t, ok)
	assert.Equal(t, 2, pair.En.ID)
	assert.Equal(t, 2, pair.Vn.ID)

	pair.En.Deliverables[0] = "mutated"
	assert.NotEqual(t, "mutated", doc.En.ProjectsData[1].Deliverables[0])

	doc.Vn.ProjectsData = doc.Vn.ProjectsData[:1]
	_, ok = doc.FindProject(2)
	assert.False(t, ok, "an id present on one side only is not found")

	_, ok = doc.FindExperience(99)
	assert.False(t, ok)
	_, ok = doc.FindSkillCategory(3)
	assert.True(t, ok)
	assert.Equal(t, -1, content.IndexOf(doc.En.ProjectsData, 42))
}

/*
TestValidate_DocumentInvariants rejects misaligned documents.
*/
func TestValidate_DocumentInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*content.AppContent)
	}{
		{"id only in en", func(c *content.AppContent) { c.Vn.ProjectsData = c.Vn.ProjectsData[1:] }},
		{"duplicate id", func(c *content.AppContent) { c.En.SkillCategoriesData[1].ID = 1; c.Vn.SkillCategoriesData[1].ID = 1 }},
		{"non-positive id", func(c *content.AppContent) { c.En.ExperiencesData[0].ID = 0; c.Vn.ExperiencesData[0].ID = 0 }},
		{"contact length", func(c *content.AppContent) { c.Vn.Contact.ContactMethods = c.Vn.Contact.ContactMethods[:2] }},
		{"contact url drift", func(c *content.AppContent) { c.Vn.Contact.ContactMethods[0].URL = "https://other.example" }},
		{"unknown contact type", func(c *content.AppContent) {
			c.En.Contact.ContactMethods[0].Type = "fax"
			c.Vn.Contact.ContactMethods[0].Type = "fax"
		}},
		{"font size", func(c *content.AppContent) { c.Settings.BaseFontSize = 30 }},
		{"empty font", func(c *content.AppContent) { c.Settings.FontFamilySans = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := content.Default()
			tt.mutate(doc)
			err := doc.Validate()
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestValidateProject returns localized messages per field.
*/
func TestValidateProject(t *testing.T) {
	doc := content.Default()
	vn := content.TranslatorFor(doc, locale.Vietnamese)

	err := content.ValidateProject(content.Pair(content.Project{Title: "Only English"}, content.Project{}), vn)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "vn.title", appErr.Details[0].Field)
	assert.Equal(t, "Tiêu đề là bắt buộc cho cả hai ngôn ngữ.", appErr.Details[0].Message)

	err = content.ValidateProject(content.Pair(content.Project{ID: 3, Title: "a"}, content.Project{Title: "b"}), vn)
	require.Error(t, err)
	assert.Equal(t, content.FieldID, apperr.As(err).Details[0].Field)

	for _, link := range []string{"javascript:alert(1)", " JavaScript:alert(1)", "java\tscript:alert(1)", "data:text/html,x"} {
		err = content.ValidateProject(content.Pair(content.Project{Title: "a", URL: link}, content.Project{Title: "b"}), vn)
		require.Error(t, err, link)
		assert.Equal(t, "en.url", apperr.As(err).Details[0].Field)
	}

	// Free-text links are kept as typed.
	for _, link := range []string{"https://x.dev", "github.com/x", "prototype, repo", ""} {
		assert.NoError(t, content.ValidateProject(content.Pair(content.Project{Title: "a", URL: link}, content.Project{Title: "b"}), vn), link)
		assert.NoError(t, content.ValidateExperience(content.Pair(content.Experience{Role: "a", URL: link}, content.Experience{Role: "b"}), vn), link)
	}
}

/*
TestValidateContact enforces equal method counts and known types.
*/
func TestValidateContact(t *testing.T) {
	en := content.TranslatorFor(nil, locale.English)

	misaligned := content.Pair(
		content.Contact{ContactMethods: []content.ContactMethod{{Type: content.ContactEmail}}},
		content.Contact{},
	)
	assert.Error(t, content.ValidateContact(misaligned, en))

	badType := content.Pair(
		content.Contact{ContactMethods: []content.ContactMethod{{Type: "fax"}}},
		content.Contact{ContactMethods: []content.ContactMethod{{Type: "fax"}}},
	)
	assert.Error(t, content.ValidateContact(badType, en))

	ok := content.Pair(
		content.Contact{ContactMethods: []content.ContactMethod{{Type: content.ContactPhone, URL: "tel:0123"}}},
		content.Contact{ContactMethods: []content.ContactMethod{{Type: content.ContactPhone}}},
	)
	assert.NoError(t, content.ValidateContact(ok, en))
}

/*
TestMessage falls back from the document to built-ins to English.
*/
func TestMessage(t *testing.T) {
	doc := content.Default()

	assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng.", doc.Message(locale.Vietnamese, content.MsgLoginError))
	assert.Equal(t, "Title is required for both languages.", doc.Message(locale.English, content.MsgTitleRequired))

	delete(doc.Vn.Modals, content.MsgLocalStorageError)
	assert.Equal(t, doc.En.Modals[content.MsgLocalStorageError], doc.Message(locale.Vietnamese, content.MsgLocalStorageError))

	assert.Equal(t, "no-such-key", doc.Message(locale.English, "no-such-key"))
}
