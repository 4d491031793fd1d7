// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Typography bounds offered by the theme editor.
const (
	MinBaseFontSize = 14.0
	MaxBaseFontSize = 20.0
)

// SansFonts and SerifFonts are the families the theme editor offers.
// Other families are accepted as long as they are non-empty.
var (
	SansFonts  = []string{"Inter", "Lato", "Roboto"}
	SerifFonts = []string{"Playfair Display", "Lora", "Merriweather"}
)

// Translator resolves a message key to text in the caller's locale.
type Translator func(key string) string

// TranslatorFor binds [AppContent.Message] to a locale.
func TranslatorFor(c *AppContent, l locale.Locale) Translator {
	return func(key string) string { return c.Message(l, key) }
}

// # Document Invariants

// Validate checks the structural invariants of a whole document:
// unique ids per collection, the same id set in both languages, aligned
// contact methods and in-range settings. It is run on every load.
func (c *AppContent) Validate() error {
	t := TranslatorFor(nil, locale.English)
	v := &validate.Validator{}

	checkSettings(v, c.Settings, t)

	checkIDs(v, "projectsData", idsOf(c.En.ProjectsData), idsOf(c.Vn.ProjectsData))
	checkIDs(v, "experiencesData", idsOf(c.En.ExperiencesData), idsOf(c.Vn.ExperiencesData))
	checkIDs(v, "skillCategoriesData", idsOf(c.En.SkillCategoriesData), idsOf(c.Vn.SkillCategoriesData))

	checkContactAlignment(v, c.En.Contact.ContactMethods, c.Vn.Contact.ContactMethods, t)

	return v.Err()
}

func idsOf[T identified](items []T) []int {
	ids := make([]int, len(items))
	for index, item := range items {
		ids[index] = item.EntityID()
	}
	return ids
}

func checkIDs(v *validate.Validator, field string, en, vn []int) {
	seen := make(map[int]bool, len(en))
	for _, id := range en {
		v.Custom(field, id <= 0, fmt.Sprintf("id %d must be positive", id))
		v.Custom(field, seen[id], fmt.Sprintf("id %d is duplicated", id))
		seen[id] = true
	}

	vnSeen := make(map[int]bool, len(vn))
	for _, id := range vn {
		v.Custom(field, vnSeen[id], fmt.Sprintf("id %d is duplicated", id))
		v.Custom(field, !seen[id], fmt.Sprintf("id %d exists only in vn", id))
		vnSeen[id] = true
	}

	for _, id := range en {
		v.Custom(field, !vnSeen[id], fmt.Sprintf("id %d exists only in en", id))
	}
}

func checkContactAlignment(v *validate.Validator, en, vn []ContactMethod, t Translator) {
	if len(en) != len(vn) {
		v.Custom(FieldContactMethods, true, t(MsgContactMisaligned))
		return
	}
	for index := range en {
		field := fmt.Sprintf("%s[%d]", FieldContactMethods, index)
		v.OneOf(field+"."+FieldType, string(en[index].Type), ContactMethodTypes...)
		v.Custom(field, en[index].Type != vn[index].Type || en[index].URL != vn[index].URL, t(MsgContactMisaligned))
	}
}

func checkSettings(v *validate.Validator, s Settings, t Translator) {
	v.Custom(FieldFontSans, strings.TrimSpace(s.FontFamilySans) == "", t(MsgFontRequired))
	v.Custom(FieldFontSerif, strings.TrimSpace(s.FontFamilySerif) == "", t(MsgFontRequired))
	v.Custom(FieldBaseFontSize, s.BaseFontSize < MinBaseFontSize || s.BaseFontSize > MaxBaseFontSize, t(MsgFontSizeOutOfRange))
}

// # Edit Payload Rules
//
// Each rule returns an apperr validation error whose messages come from t.
// Nothing is mutated, so a rejected save leaves the draft untouched.

// ValidateSettings checks a settings update.
func ValidateSettings(s Settings, t Translator) error {
	v := &validate.Validator{}
	checkSettings(v, s, t)
	return v.ErrWithMessage(t(MsgValidationFailed))
}

// ValidateProject requires a title in both languages and a link without a script scheme.
func ValidateProject(pair Bilingual[Project], t Translator) error {
	v := &validate.Validator{}
	v.Custom("en."+FieldTitle, strings.TrimSpace(pair.En.Title) == "", t(MsgTitleRequired))
	v.Custom("vn."+FieldTitle, strings.TrimSpace(pair.Vn.Title) == "", t(MsgTitleRequired))
	checkFreeLink(v, "en."+FieldURL, pair.En.URL, t)
	checkPairIDs(v, pair.En.ID, pair.Vn.ID, t)
	return v.ErrWithMessage(t(MsgValidationFailed))
}

// ValidateExperience requires a role in both languages and a link without a script scheme.
func ValidateExperience(pair Bilingual[Experience], t Translator) error {
	v := &validate.Validator{}
	v.Custom("en."+FieldRole, strings.TrimSpace(pair.En.Role) == "", t(MsgRoleRequired))
	v.Custom("vn."+FieldRole, strings.TrimSpace(pair.Vn.Role) == "", t(MsgRoleRequired))
	checkFreeLink(v, "en."+FieldURL, pair.En.URL, t)
	checkPairIDs(v, pair.En.ID, pair.Vn.ID, t)
	return v.ErrWithMessage(t(MsgValidationFailed))
}

// ValidateSkillCategory requires a title in both languages.
func ValidateSkillCategory(pair Bilingual[SkillCategory], t Translator) error {
	v := &validate.Validator{}
	v.Custom("en."+FieldTitle, strings.TrimSpace(pair.En.Title) == "", t(MsgTitleRequired))
	v.Custom("vn."+FieldTitle, strings.TrimSpace(pair.Vn.Title) == "", t(MsgTitleRequired))
	checkPairIDs(v, pair.En.ID, pair.Vn.ID, t)
	return v.ErrWithMessage(t(MsgValidationFailed))
}

// ValidateContact requires both method lists to have the same length and
// every method to carry a known type and a well-formed link. Only the en
// side's shared fields are checked because they overwrite vn on save.
func ValidateContact(pair Bilingual[Contact], t Translator) error {
	v := &validate.Validator{}
	if len(pair.En.ContactMethods) != len(pair.Vn.ContactMethods) {
		v.Custom(FieldContactMethods, true, t(MsgContactMisaligned))
		return v.ErrWithMessage(t(MsgValidationFailed))
	}
	for index, method := range pair.En.ContactMethods {
		field := fmt.Sprintf("%s[%d]", FieldContactMethods, index)
		ValidateContactMethod(v, field, method.Type, method.URL, t)
	}
	return v.ErrWithMessage(t(MsgValidationFailed))
}

// ValidateContactMethod adds the per-method rules to v.
func ValidateContactMethod(v *validate.Validator, field string, kind ContactMethodType, link string, t Translator) {
	known := false
	for _, allowed := range ContactMethodTypes {
		known = known || string(kind) == allowed
	}
	v.Custom(field+"."+FieldType, !known, t(MsgContactTypeInvalid))
	checkLink(v, field+"."+FieldURL, link, t)
}

// checkPairIDs rejects payloads where only one side carries an id, or the
// two sides disagree.
func checkPairIDs(v *validate.Validator, en, vn int, t Translator) {
	v.Custom(FieldID, en != vn || en < 0, t(MsgIDMismatch))
}

// blockedSchemes can run script when rendered as an href.
var blockedSchemes = []string{"javascript", "vbscript", "data"}

// checkFreeLink accepts free text such as "github.com/x" or "prototype, repo"
// and rejects only script-capable schemes.
func checkFreeLink(v *validate.Validator, field, link string, t Translator) {
	// Browsers ignore control characters and spaces inside a scheme.
	compact := strings.ToLower(strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, link))

	blocked := slices.ContainsFunc(blockedSchemes, func(scheme string) bool {
		return strings.HasPrefix(compact, scheme+":")
	})
	v.Custom(field, blocked, t(MsgInvalidURL))
}

func checkLink(v *validate.Validator, field, link string, t Translator) {
	strict := &validate.Validator{}
	strict.URL(field, link)
	v.Custom(field, strict.HasErrors(), t(MsgInvalidURL))
}
