// Package planner proposes conversion targets for a classified language
package planner

import (
	"fmt"
	"strings"

	"langshift/internal/core/catalog"
)

// MaxSuggestions bounds every plan
const MaxSuggestions = 6

// maxPriority bounds the programming target list
const maxPriority = 3

// Suggestion describes one offered conversion
type Suggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

// Planner builds suggestions from catalog data only
type Planner struct {
	cat *catalog.Catalog
}

// New returns a planner bound to cat
func New(cat *catalog.Catalog) *Planner {
	if cat == nil {
		panic("planner.New requires a non nil catalog")
	}
	return &Planner{cat: cat}
}

// Suggest returns at most MaxSuggestions conversions for tag.
// Order is the ranking; nothing is returned for an empty tag or empty text.
func (p *Planner) Suggest(tag, text string) []Suggestion {
	if tag == "" || strings.TrimSpace(text) == "" {
		return nil
	}
	lang, ok := p.cat.Lookup(tag)
	if !ok {
		return nil
	}

	out := make([]Suggestion, 0, MaxSuggestions)
	seen := map[string]bool{tag: true}
	add := func(s Suggestion) {
		if seen[s.Target] {
			return
		}
		seen[s.Target] = true
		out = append(out, s)
	}

	switch lang.Category {
	case catalog.Programming:
		for _, to := range p.priority(lang) {
			add(p.build(lang, to, "Transform %s code to %s"))
		}
	case catalog.Data, catalog.Style:
		format := "Transform %s to %s"
		if lang.Category == catalog.Data {
			format += " format"
		}
		for _, to := range p.cat.InCategory(lang.Category) {
			add(p.build(lang, to, format))
		}
	}

	for _, l := range lang.Links {
		s := p.build(lang, l.To, "Transform %s to %s")
		if l.Name != "" {
			s.Name = l.Name
		}
		if l.Description != "" {
			s.Description = l.Description
		}
		add(s)
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// priority returns the declared list or the first other programming languages
func (p *Planner) priority(lang catalog.Language) []string {
	if len(lang.Targets) > 0 {
		if len(lang.Targets) > maxPriority {
			return lang.Targets[:maxPriority]
		}
		return lang.Targets
	}
	var out []string
	for _, tag := range p.cat.InCategory(catalog.Programming) {
		if tag == lang.Tag {
			continue
		}
		out = append(out, tag)
		if len(out) == maxPriority {
			break
		}
	}
	return out
}

func (p *Planner) build(from catalog.Language, to, descFormat string) Suggestion {
	target := p.cat.Display(to)
	return Suggestion{
		ID:          from.Tag + "-" + to,
		Name:        "Convert to " + target,
		Description: fmt.Sprintf(descFormat, from.Name, target),
		Icon:        p.cat.Icon(to),
		Source:      from.Tag,
		Target:      to,
	}
}
