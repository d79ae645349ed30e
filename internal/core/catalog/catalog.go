// Package catalog loads and compiles the language signature catalog from the embedded catalog.json.
// It prepares per-language regex patterns, display metadata and planner hints
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.json
var embedded []byte

// Category groups languages into planner families
type Category string

// Known categories
const (
	Programming Category = "programming"
	Data        Category = "data"
	Style       Category = "style"
	Markup      Category = "markup"
	Query       Category = "query"
	Infra       Category = "infra"
)

// Format selects the decoder for raw catalog bytes
type Format string

// Supported catalog encodings
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type rawLink struct {
	To          string `json:"to" yaml:"to"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type rawLanguage struct {
	Tag      string    `json:"tag" yaml:"tag"`
	Name     string    `json:"name" yaml:"name"`
	Icon     string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category string    `json:"category" yaml:"category"`
	Patterns []string  `json:"patterns" yaml:"patterns"`
	Targets  []string  `json:"targets,omitempty" yaml:"targets,omitempty"`
	Links    []rawLink `json:"links,omitempty" yaml:"links,omitempty"`
	Examples []string  `json:"examples,omitempty" yaml:"examples,omitempty"`
}

type rawExtra struct {
	Tag  string `json:"tag" yaml:"tag"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type rawCatalog struct {
	Version   int           `json:"version" yaml:"version"`
	Languages []rawLanguage `json:"languages" yaml:"languages"`
	Extras    []rawExtra    `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// Link is a one-off suggestion declared on a source language
type Link struct {
	To          string
	Name        string
	Description string
}

// Language is a compiled catalog entry
type Language struct {
	Tag      string
	Name     string
	Icon     string
	Category Category

	// Patterns are kept in declaration order; Sources[i] is the text of Patterns[i]
	Patterns []*regexp.Regexp
	Sources  []string

	Targets  []string
	Links    []Link
	Examples []string
}

// Catalog is an immutable, ordered set of languages
// registration order is the classifier tie-break order
type Catalog struct {
	Version   int
	Languages []Language

	index  map[string]int
	extras map[string]rawExtra
}

// Load returns the compiled catalog from the embedded catalog.json
func Load() (*Catalog, error) {
	return Parse(embedded, FormatJSON)
}

// MustLoad is Load that panics on error; the embedded catalog is covered by tests
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and compiles a catalog file, picking the format by extension
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Parse(b, FormatJSON)
	case ".yaml", ".yml":
		return Parse(b, FormatYAML)
	default:
		return nil, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
	}
}

// Parse compiles raw catalog bytes
func Parse(data []byte, f Format) (*Catalog, error) {
	var rc rawCatalog
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &rc); err != nil {
			return nil, fmt.Errorf("catalog: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rc); err != nil {
			return nil, fmt.Errorf("catalog: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("catalog: unknown format %q", f)
	}
	return compile(rc)
}

func compile(rc rawCatalog) (*Catalog, error) {
	if rc.Version != 1 {
		return nil, fmt.Errorf("catalog: unsupported version %d (want 1)", rc.Version)
	}
	if len(rc.Languages) == 0 {
		return nil, fmt.Errorf("catalog: no languages")
	}

	c := &Catalog{
		Version:   rc.Version,
		Languages: make([]Language, 0, len(rc.Languages)),
		index:     make(map[string]int, len(rc.Languages)),
		extras:    make(map[string]rawExtra, len(rc.Extras)),
	}

	for _, rl := range rc.Languages {
		tag := strings.TrimSpace(rl.Tag)
		if tag == "" {
			return nil, fmt.Errorf("catalog: language with empty tag")
		}
		if _, dup := c.index[tag]; dup {
			return nil, fmt.Errorf("catalog: duplicate tag %q", tag)
		}
		if len(rl.Patterns) == 0 {
			return nil, fmt.Errorf("catalog: %s: empty pattern list", tag)
		}

		lang := Language{
			Tag:      tag,
			Name:     strings.TrimSpace(rl.Name),
			Icon:     rl.Icon,
			Category: Category(strings.ToLower(strings.TrimSpace(rl.Category))),
			Patterns: make([]*regexp.Regexp, 0, len(rl.Patterns)),
			Sources:  make([]string, 0, len(rl.Patterns)),
			Targets:  rl.Targets,
			Examples: rl.Examples,
		}
		if lang.Name == "" {
			lang.Name = tag
		}
		for _, src := range rl.Patterns {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s: compile %q: %w", tag, src, err)
			}
			lang.Patterns = append(lang.Patterns, re)
			lang.Sources = append(lang.Sources, src)
		}
		for _, l := range rl.Links {
			if strings.TrimSpace(l.To) == "" {
				return nil, fmt.Errorf("catalog: %s: link with empty target", tag)
			}
			lang.Links = append(lang.Links, Link(l))
		}

		c.index[tag] = len(c.Languages)
		c.Languages = append(c.Languages, lang)
	}

	for _, e := range rc.Extras {
		if _, clash := c.index[e.Tag]; clash {
			return nil, fmt.Errorf("catalog: extra %q shadows a language", e.Tag)
		}
		c.extras[e.Tag] = e
	}
	return c, nil
}

// Lookup returns the language registered under tag
func (c *Catalog) Lookup(tag string) (Language, bool) {
	i, ok := c.index[tag]
	if !ok {
		return Language{}, false
	}
	return c.Languages[i], true
}

// PatternsFor returns the ordered signature patterns for tag, nil when unknown
func (c *Catalog) PatternsFor(tag string) []*regexp.Regexp {
	l, ok := c.Lookup(tag)
	if !ok {
		return nil
	}
	return l.Patterns
}

// Tags returns all detectable tags in registration order
func (c *Catalog) Tags() []string {
	out := make([]string, len(c.Languages))
	for i, l := range c.Languages {
		out[i] = l.Tag
	}
	return out
}

// InCategory returns tags of the given category in registration order
func (c *Catalog) InCategory(cat Category) []string {
	var out []string
	for _, l := range c.Languages {
		if l.Category == cat {
			out = append(out, l.Tag)
		}
	}
	return out
}

// Display returns the human name for any tag, including target-only extras
func (c *Catalog) Display(tag string) string {
	if l, ok := c.Lookup(tag); ok {
		return l.Name
	}
	if e, ok := c.extras[tag]; ok && e.Name != "" {
		return e.Name
	}
	return tag
}

// Icon returns the icon for any tag, empty when none is declared
func (c *Catalog) Icon(tag string) string {
	if l, ok := c.Lookup(tag); ok {
		return l.Icon
	}
	return c.extras[tag].Icon
}

// Known reports whether tag is a language or a declared extra
func (c *Catalog) Known(tag string) bool {
	if _, ok := c.index[tag]; ok {
		return true
	}
	_, ok := c.extras[tag]
	return ok
}
