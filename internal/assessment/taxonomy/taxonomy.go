// Package taxonomy holds the static assessment taxonomy: six pillars, their
// key practices, and the aspect families that expandable practices rate in
// detail. The data never changes at runtime; only ratings and findings are
// persisted, keyed by the names defined here.
package taxonomy

import (
	"fmt"
	"strings"
)

// Aspect is one leaf-level rated item within a practice family.
type Aspect struct {
	// Name is the aspect's display name, unique within its practice. It is
	// also the suffix of the persisted composite practice_name.
	Name string
	// Description explains what the aspect evaluates.
	Description string
}

// Practice is a named capability within a pillar. A practice with aspects
// expands into a detail page and its stored rating is a rollup of the
// aspects' overall rating; a practice without aspects is rated directly.
type Practice struct {
	// Name is the display name shown on pillar cards.
	Name string
	// Key is the persisted practice_name value. Legacy rows were written
	// with inconsistent spacing and casing ("Business Alignment" but
	// "DataGovernance"), so keys are stored per practice instead of being
	// derived from the display name.
	Key string
	// Slug identifies the practice detail route.
	Slug string
	// Aspects is the family rated on the detail page; empty for leaf
	// practices.
	Aspects []Aspect
}

// HasAspects reports whether the practice expands into a detail page.
func (p Practice) HasAspects() bool {
	return len(p.Aspects) > 0
}

// AspectByName returns the named aspect.
func (p Practice) AspectByName(name string) (Aspect, bool) {
	for _, a := range p.Aspects {
		if a.Name == name {
			return a, true
		}
	}
	return Aspect{}, false
}

// Pillar is one top-level maturity category.
type Pillar struct {
	// Title is one of the six fixed pillar titles and part of every
	// persisted row's key.
	Title string
	// Description summarizes the pillar on the dashboard.
	Description string
	// Color is the pillar's display color.
	Color string
	// Practices are the pillar's key practices in display order.
	Practices []Practice
}

// PracticeByKey returns the practice persisted under key.
func (p Pillar) PracticeByKey(key string) (Practice, bool) {
	for _, practice := range p.Practices {
		if practice.Key == key {
			return practice, true
		}
	}
	return Practice{}, false
}

// Pillars returns the six pillars in dashboard order. The returned slice and
// everything it references are shared; callers must not mutate them.
func Pillars() []Pillar {
	return pillars
}

// PillarByTitle returns the pillar with the given title.
func PillarByTitle(title string) (Pillar, bool) {
	for _, p := range pillars {
		if p.Title == title {
			return p, true
		}
	}
	return Pillar{}, false
}

// PracticeBySlug resolves a practice detail route to its pillar and
// practice.
func PracticeBySlug(slug string) (Pillar, Practice, bool) {
	for _, pillar := range pillars {
		for _, practice := range pillar.Practices {
			if practice.Slug == slug {
				return pillar, practice, true
			}
		}
	}
	return Pillar{}, Practice{}, false
}

// Validate checks the structural invariants of the static data: unique
// pillar titles, unique practice keys and slugs, unique aspect names within
// each practice, and no colons in keys or names (the colon delimits the
// composite practice_name).
func Validate() error {
	titles := map[string]bool{}
	keys := map[string]bool{}
	slugs := map[string]bool{}
	for _, pillar := range pillars {
		if strings.TrimSpace(pillar.Title) == "" {
			return fmt.Errorf("pillar with empty title")
		}
		if titles[pillar.Title] {
			return fmt.Errorf("duplicate pillar title %q", pillar.Title)
		}
		titles[pillar.Title] = true
		if strings.TrimSpace(pillar.Description) == "" {
			return fmt.Errorf("pillar %q has no description", pillar.Title)
		}
		if len(pillar.Practices) == 0 {
			return fmt.Errorf("pillar %q has no practices", pillar.Title)
		}
		for _, practice := range pillar.Practices {
			if strings.TrimSpace(practice.Name) == "" || strings.TrimSpace(practice.Key) == "" {
				return fmt.Errorf("pillar %q has a practice with an empty name or key", pillar.Title)
			}
			if strings.Contains(practice.Key, ":") {
				return fmt.Errorf("practice key %q contains the aspect delimiter", practice.Key)
			}
			if keys[practice.Key] {
				return fmt.Errorf("duplicate practice key %q", practice.Key)
			}
			keys[practice.Key] = true
			if practice.HasAspects() {
				if strings.TrimSpace(practice.Slug) == "" {
					return fmt.Errorf("practice %q expands into aspects but has no slug", practice.Key)
				}
				if slugs[practice.Slug] {
					return fmt.Errorf("duplicate practice slug %q", practice.Slug)
				}
				slugs[practice.Slug] = true
			}
			names := map[string]bool{}
			for _, aspect := range practice.Aspects {
				if strings.TrimSpace(aspect.Name) == "" {
					return fmt.Errorf("practice %q has an aspect with an empty name", practice.Key)
				}
				if strings.TrimSpace(aspect.Description) == "" {
					return fmt.Errorf("aspect %q of practice %q has no description", aspect.Name, practice.Key)
				}
				if names[aspect.Name] {
					return fmt.Errorf("duplicate aspect %q in practice %q", aspect.Name, practice.Key)
				}
				names[aspect.Name] = true
			}
		}
	}
	return nil
}
