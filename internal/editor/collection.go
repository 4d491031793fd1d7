// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"slices"

	"github.com/taibuivan/folio/internal/content"
)

// entity is the contract shared by projects, experiences and skill categories.
type entity[T any] interface {
	EntityID() int
	WithID(id int) T
	Clone() T
}

// placement decides where a created entity lands in its collection.
type placement int

const (
	appendLast placement = iota
	prependFirst
)

// keyedCollection describes one id-keyed collection living in both language trees.
type keyedCollection[T entity[T]] struct {
	resource string
	en       *[]T
	vn       *[]T

	// share copies the shared fields of en into vn and returns the result.
	share func(en, vn T) T

	placement placement
}

// find returns the position of id on each side, or -1.
func (collection keyedCollection[T]) find(id int) (int, int) {
	return content.IndexOf(*collection.en, id), content.IndexOf(*collection.vn, id)
}

// update replaces the entity with pair's id in place on both sides,
// preserving order. Nothing changes if either side lacks the id.
func (collection keyedCollection[T]) update(pair content.Bilingual[T]) bool {
	id := pair.En.EntityID()
	enIndex, vnIndex := collection.find(id)
	if enIndex < 0 || vnIndex < 0 {
		return false
	}

	en := pair.En.Clone()
	(*collection.en)[enIndex] = en
	(*collection.vn)[vnIndex] = collection.share(en, pair.Vn.Clone().WithID(id))
	return true
}

// create attaches id to both variants and inserts them according to placement.
func (collection keyedCollection[T]) create(pair content.Bilingual[T], id int) {
	en := pair.En.Clone().WithID(id)
	vn := collection.share(en, pair.Vn.Clone().WithID(id))

	switch collection.placement {
	case prependFirst:
		*collection.en = slices.Insert(*collection.en, 0, en)
		*collection.vn = slices.Insert(*collection.vn, 0, vn)
	default:
		*collection.en = append(*collection.en, en)
		*collection.vn = append(*collection.vn, vn)
	}
}

// remove deletes id from both sides independently and reports whether
// anything was removed.
func (collection keyedCollection[T]) remove(id int) bool {
	match := func(item T) bool { return item.EntityID() == id }

	enBefore, vnBefore := len(*collection.en), len(*collection.vn)
	*collection.en = slices.DeleteFunc(*collection.en, match)
	*collection.vn = slices.DeleteFunc(*collection.vn, match)

	return len(*collection.en) != enBefore || len(*collection.vn) != vnBefore
}

// heldIDs lists every id currently present on either side.
func (collection keyedCollection[T]) heldIDs() [][]int {
	return [][]int{idsOf(*collection.en), idsOf(*collection.vn)}
}

// # Collections Of A Document

func projectsOf(doc *content.AppContent) keyedCollection[content.Project] {
	return keyedCollection[content.Project]{
		resource: "Project",
		en:       &doc.En.ProjectsData,
		vn:       &doc.Vn.ProjectsData,
		share: func(en, vn content.Project) content.Project {
			vn.CoverImage = en.CoverImage
			vn.DetailImages = slices.Clone(en.DetailImages)
			vn.URL = en.URL
			vn.Date = en.Date
			return vn
		},
		placement: appendLast,
	}
}

func experiencesOf(doc *content.AppContent) keyedCollection[content.Experience] {
	return keyedCollection[content.Experience]{
		resource: "Experience",
		en:       &doc.En.ExperiencesData,
		vn:       &doc.Vn.ExperiencesData,
		share: func(en, vn content.Experience) content.Experience {
			vn.URL = en.URL
			return vn
		},
		// Most recent first.
		placement: prependFirst,
	}
}

func skillCategoriesOf(doc *content.AppContent) keyedCollection[content.SkillCategory] {
	return keyedCollection[content.SkillCategory]{
		resource: "Skill category",
		en:       &doc.En.SkillCategoriesData,
		vn:       &doc.Vn.SkillCategoriesData,
		share: func(en, vn content.SkillCategory) content.SkillCategory {
			return vn
		},
		placement: appendLast,
	}
}
