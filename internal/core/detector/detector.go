// Package detector classifies text against the signature catalog
// scoring is a pure function over (text, catalog); no state survives a call
package detector

import (
	"strings"

	"langshift/internal/core/catalog"
)

// Score is the aggregate match count of one language
type Score struct {
	Tag   string
	Count int
}

// Detector scores text against a fixed catalog
type Detector struct {
	cat *catalog.Catalog
}

// New returns a detector bound to cat
func New(cat *catalog.Catalog) *Detector {
	if cat == nil {
		panic("detector.New requires a non nil catalog")
	}
	return &Detector{cat: cat}
}

// Scores counts every non overlapping match of every pattern, per language.
// Languages with zero matches are omitted. Empty or whitespace only text yields nil.
func (d *Detector) Scores(text string) map[string]int {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	out := make(map[string]int)
	for _, l := range d.cat.Languages {
		if n := count(l, text); n > 0 {
			out[l.Tag] = n
		}
	}
	return out
}

// Rank returns non zero scores, highest first.
// Equal counts keep catalog registration order; this tie order is an
// artifact of registration, not a stability guarantee.
func (d *Detector) Rank(text string) []Score {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []Score
	for _, l := range d.cat.Languages {
		n := count(l, text)
		if n == 0 {
			continue
		}
		// insertion keeps earlier registrations ahead on ties
		i := len(out)
		for i > 0 && out[i-1].Count < n {
			i--
		}
		out = append(out, Score{})
		copy(out[i+1:], out[i:])
		out[i] = Score{Tag: l.Tag, Count: n}
	}
	return out
}

// Detect returns the language with the strictly highest score.
// On ties the first registered language wins.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	best, bestN := "", 0
	for _, l := range d.cat.Languages {
		if n := count(l, text); n > bestN {
			best, bestN = l.Tag, n
		}
	}
	return best, bestN > 0
}

func count(l catalog.Language, text string) int {
	n := 0
	for _, re := range l.Patterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}
