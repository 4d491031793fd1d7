// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "slices"

// # Deep Copy
//
// Every slice and map is copied so a clone never shares backing storage with
// its source. nil stays nil, so a clone is always structurally Equal to it.

// Clone returns a fully independent copy of the document.
func (c *AppContent) Clone() *AppContent {
	if c == nil {
		return nil
	}
	return &AppContent{
		En:       c.En.Clone(),
		Vn:       c.Vn.Clone(),
		Settings: c.Settings,
	}
}

// Clone returns a fully independent copy of one language tree.
func (l LanguageContent) Clone() LanguageContent {
	out := l
	out.NavLinks = slices.Clone(l.NavLinks)
	out.Hero = l.Hero.Clone()
	out.ProjectsData = cloneEach(l.ProjectsData)
	out.ExperiencesData = slices.Clone(l.ExperiencesData)
	out.SkillCategoriesData = cloneEach(l.SkillCategoriesData)
	out.Contact = l.Contact.Clone()
	out.Modals = l.Modals.Clone()
	return out
}

// Clone returns an independent copy of the hero.
func (h Hero) Clone() Hero {
	h.Paragraphs = slices.Clone(h.Paragraphs)
	return h
}

// Clone returns an independent copy of the project.
func (p Project) Clone() Project {
	p.Deliverables = slices.Clone(p.Deliverables)
	p.Technologies = slices.Clone(p.Technologies)
	p.DetailImages = slices.Clone(p.DetailImages)
	return p
}

// Clone is trivial for experiences; they hold no slices.
func (e Experience) Clone() Experience {
	return e
}

// Clone returns an independent copy of the skill category.
func (s SkillCategory) Clone() SkillCategory {
	s.Skills = slices.Clone(s.Skills)
	return s
}

// Clone returns an independent copy of the contact block.
func (c Contact) Clone() Contact {
	c.ContactMethods = slices.Clone(c.ContactMethods)
	return c
}

func cloneEach[T interface{ Clone() T }](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for index, item := range items {
		out[index] = item.Clone()
	}
	return out
}
