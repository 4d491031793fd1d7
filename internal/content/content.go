// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content defines the bilingual portfolio document and its persistence.

The document ([AppContent]) is the unit of persistence and the unit of
draft/commit: it is loaded once at startup, replaced wholesale on commit and
written back to a single versioned key.

Two language trees (en, vn) are kept as parallel structures. Entities inside
them are matched by id, never by position, except contact methods which are
matched by index.
*/
package content

import "github.com/taibuivan/folio/internal/platform/locale"

// # Document

// AppContent is the whole bilingual document plus typography settings.
type AppContent struct {
	En       LanguageContent `json:"en"       yaml:"en"`
	Vn       LanguageContent `json:"vn"       yaml:"vn"`
	Settings Settings        `json:"settings" yaml:"settings"`
}

// Language returns a pointer to the tree for l. Unknown locales fall back to English.
func (c *AppContent) Language(l locale.Locale) *LanguageContent {
	if l == locale.Vietnamese {
		return &c.Vn
	}
	return &c.En
}

// Settings holds the typography choices applied to the rendered page.
type Settings struct {
	FontFamilySans  string  `json:"fontFamilySans"  yaml:"fontFamilySans"`
	FontFamilySerif string  `json:"fontFamilySerif" yaml:"fontFamilySerif"`
	BaseFontSize    float64 `json:"baseFontSize"    yaml:"baseFontSize"`
}

// LanguageContent is one locale's view of the whole page.
type LanguageContent struct {
	NavLinks            []NavLink       `json:"navLinks"            yaml:"navLinks"`
	Header              HeaderLabels    `json:"header"              yaml:"header"`
	Hero                Hero            `json:"hero"                yaml:"hero"`
	Projects            ProjectsSection `json:"projects"            yaml:"projects"`
	ProjectsData        []Project       `json:"projectsData"        yaml:"projectsData"`
	Experience          Section         `json:"experience"          yaml:"experience"`
	ExperiencesData     []Experience    `json:"experiencesData"     yaml:"experiencesData"`
	Skills              Section         `json:"skills"              yaml:"skills"`
	SkillCategoriesData []SkillCategory `json:"skillCategoriesData" yaml:"skillCategoriesData"`
	Contact             Contact         `json:"contact"             yaml:"contact"`
	Modals              Catalog         `json:"modals"              yaml:"modals"`
}

// # Page Chrome

// NavLink is a single anchor in the top navigation.
type NavLink struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// HeaderLabels are the admin controls rendered in the page header.
type HeaderLabels struct {
	Logout       string `json:"logout"       yaml:"logout"`
	AdminLogin   string `json:"adminLogin"   yaml:"adminLogin"`
	Save         string `json:"save"         yaml:"save"`
	Cancel       string `json:"cancel"       yaml:"cancel"`
	StartEditing string `json:"startEditing" yaml:"startEditing"`
}

// ProjectsSection holds the headings and field labels of the projects block.
type ProjectsSection struct {
	SectionTitle    string `json:"sectionTitle"    yaml:"sectionTitle"`
	Title           string `json:"title"           yaml:"title"`
	AddProject      string `json:"addProject"      yaml:"addProject"`
	ViewProjectLink string `json:"viewProjectLink" yaml:"viewProjectLink"`
	Overview        string `json:"overview"        yaml:"overview"`
	Role            string `json:"role"            yaml:"role"`
	Client          string `json:"client"          yaml:"client"`
	Deliverables    string `json:"deliverables"    yaml:"deliverables"`
	Date            string `json:"date"            yaml:"date"`
	Tools           string `json:"tools"           yaml:"tools"`
}

// Section holds the headings of the experience and skills blocks.
//
// The add-button label is stored under a different key per block, so both
// are declared and only one is set.
type Section struct {
	SectionTitle     string `json:"sectionTitle"               yaml:"sectionTitle"`
	Title            string `json:"title"                      yaml:"title"`
	Subtitle         string `json:"subtitle"                   yaml:"subtitle"`
	AddExperience    string `json:"addExperience,omitempty"    yaml:"addExperience,omitempty"`
	AddSkillCategory string `json:"addSkillCategory,omitempty" yaml:"addSkillCategory,omitempty"`
}

// # Editable Entities

// Hero is the page's opening block. ImageURL is shared across languages.
type Hero struct {
	Kicker     string   `json:"kicker"     yaml:"kicker"`
	Title      string   `json:"title"      yaml:"title"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
	ImageURL   string   `json:"imageUrl"   yaml:"imageUrl"`
}

// Project is a portfolio entry.
//
// Shared fields: ID, CoverImage, DetailImages, URL, Date.
type Project struct {
	ID           int      `json:"id"           yaml:"id"`
	Title        string   `json:"title"        yaml:"title"`
	Description  string   `json:"description"  yaml:"description"`
	Role         string   `json:"role"         yaml:"role"`
	Client       string   `json:"client"       yaml:"client"`
	Date         string   `json:"date"         yaml:"date"`
	Deliverables []string `json:"deliverables" yaml:"deliverables"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	CoverImage   string   `json:"coverImage"   yaml:"coverImage"`
	DetailImages []string `json:"detailImages" yaml:"detailImages"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
}

// Experience is a job or education entry. Shared fields: ID, URL.
type Experience struct {
	ID          int    `json:"id"            yaml:"id"`
	Role        string `json:"role"          yaml:"role"`
	Company     string `json:"company"       yaml:"company"`
	Period      string `json:"period"        yaml:"period"`
	Description string `json:"description"   yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// SkillCategory groups related skills. Only ID is shared.
type SkillCategory struct {
	ID     int      `json:"id"     yaml:"id"`
	Title  string   `json:"title"  yaml:"title"`
	Skills []string `json:"skills" yaml:"skills"`
}

// ContactMethodType enumerates the supported contact channels.
type ContactMethodType string

const (
	ContactLinkedIn ContactMethodType = "linkedin"
	ContactEmail    ContactMethodType = "email"
	ContactPhone    ContactMethodType = "phone"
)

// ContactMethodTypes lists every accepted [ContactMethodType].
var ContactMethodTypes = []string{string(ContactLinkedIn), string(ContactEmail), string(ContactPhone)}

// ContactMethod is one entry of the contact list. Type and URL are shared,
// Label is per-language.
type ContactMethod struct {
	Type  ContactMethodType `json:"type"  yaml:"type"`
	Label string            `json:"label" yaml:"label"`
	URL   string            `json:"url"   yaml:"url"`
}

// Contact is the closing block of the page.
type Contact struct {
	Title          string          `json:"title"          yaml:"title"`
	Subtitle       string          `json:"subtitle"       yaml:"subtitle"`
	ContactMethods []ContactMethod `json:"contactMethods" yaml:"contactMethods"`
}

// # Identity

// EntityID implements the editor's keyed-collection contract.
func (p Project) EntityID() int { return p.ID }

// WithID returns a copy carrying id.
func (p Project) WithID(id int) Project { p.ID = id; return p }

// EntityID implements the editor's keyed-collection contract.
func (e Experience) EntityID() int { return e.ID }

// WithID returns a copy carrying id.
func (e Experience) WithID(id int) Experience { e.ID = id; return e }

// EntityID implements the editor's keyed-collection contract.
func (s SkillCategory) EntityID() int { return s.ID }

// WithID returns a copy carrying id.
func (s SkillCategory) WithID(id int) SkillCategory { s.ID = id; return s }

// Global field names for validation
const (
	FieldTitle          = "title"
	FieldRole           = "role"
	FieldImageURL       = "imageUrl"
	FieldCoverImage     = "coverImage"
	FieldURL            = "url"
	FieldContactMethods = "contactMethods"
	FieldType           = "type"
	FieldSettings       = "settings"
	FieldFontSans       = "fontFamilySans"
	FieldFontSerif      = "fontFamilySerif"
	FieldBaseFontSize   = "baseFontSize"
	FieldID             = "id"
)
