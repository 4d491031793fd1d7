// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "github.com/taibuivan/folio/internal/platform/locale"

// Bilingual pairs the English and Vietnamese variants of one entity.
// It is the payload shape of every editor save.
type Bilingual[T any] struct {
	En T `json:"en"`
	Vn T `json:"vn"`
}

// Get returns the variant for l.
func (b Bilingual[T]) Get(l locale.Locale) T {
	if l == locale.Vietnamese {
		return b.Vn
	}
	return b.En
}

// Pair builds a [Bilingual] from two variants.
func Pair[T any](en, vn T) Bilingual[T] {
	return Bilingual[T]{En: en, Vn: vn}
}

// # Entity Lookup

// FindProject returns the project with id from both trees.
func (c *AppContent) FindProject(id int) (Bilingual[Project], bool) {
	return findPair(c.En.ProjectsData, c.Vn.ProjectsData, id)
}

// FindExperience returns the experience with id from both trees.
func (c *AppContent) FindExperience(id int) (Bilingual[Experience], bool) {
	return findPair(c.En.ExperiencesData, c.Vn.ExperiencesData, id)
}

// FindSkillCategory returns the skill category with id from both trees.
func (c *AppContent) FindSkillCategory(id int) (Bilingual[SkillCategory], bool) {
	return findPair(c.En.SkillCategoriesData, c.Vn.SkillCategoriesData, id)
}

// HeroPair returns both hero variants.
func (c *AppContent) HeroPair() Bilingual[Hero] {
	return Pair(c.En.Hero.Clone(), c.Vn.Hero.Clone())
}

// ContactPair returns both contact variants.
func (c *AppContent) ContactPair() Bilingual[Contact] {
	return Pair(c.En.Contact.Clone(), c.Vn.Contact.Clone())
}

type identified interface {
	EntityID() int
}

type keyed[T any] interface {
	identified
	Clone() T
}

// findPair scans each side independently. The pair is only reported when the
// id is present on both, and is returned as deep copies.
func findPair[T keyed[T]](en, vn []T, id int) (Bilingual[T], bool) {
	var pair Bilingual[T]

	enIndex := IndexOf(en, id)
	vnIndex := IndexOf(vn, id)
	if enIndex < 0 || vnIndex < 0 {
		return pair, false
	}

	pair.En = en[enIndex].Clone()
	pair.Vn = vn[vnIndex].Clone()
	return pair, true
}

// IndexOf returns the position of id in items, or -1.
func IndexOf[T identified](items []T, id int) int {
	for index, item := range items {
		if item.EntityID() == id {
			return index
		}
	}
	return -1
}
