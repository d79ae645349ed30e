// Package rewrite holds the pairwise text rewrite rules and their dispatch table.
// Rules are ordered textual substitutions; none of them parse the source.
package rewrite

import (
	"regexp"
	"strings"
)

// Rule turns source text into an approximation of the target language
type Rule interface {
	Rewrite(text string) (string, error)
}

// RuleFunc adapts a function to Rule
type RuleFunc func(text string) (string, error)

// Rewrite implements Rule
func (f RuleFunc) Rewrite(text string) (string, error) { return f(text) }

// Step is one substitution. Tmpl uses regexp expansion syntax ($1, ${name});
// Fn, when set, receives the full match followed by its submatches.
type Step struct {
	Name string
	Re   *regexp.Regexp
	Tmpl string
	Fn   func(m []string) string
}

// Sub builds a template step
func Sub(name, pattern, tmpl string) Step {
	return Step{Name: name, Re: regexp.MustCompile(pattern), Tmpl: tmpl}
}

// SubFunc builds a function step
func SubFunc(name, pattern string, fn func(m []string) string) Step {
	return Step{Name: name, Re: regexp.MustCompile(pattern), Fn: fn}
}

// Apply runs the step over text
func (s Step) Apply(text string) string {
	if s.Fn == nil {
		return s.Re.ReplaceAllString(text, s.Tmpl)
	}
	return replaceFunc(s.Re, text, s.Fn)
}

// Pipeline applies its steps in order; each step only sees the text left by
// the previous one
type Pipeline []Step

// Rewrite implements Rule
func (p Pipeline) Rewrite(text string) (string, error) {
	for _, s := range p {
		text = s.Apply(text)
	}
	return text, nil
}

// Then appends a post pass over the pipeline output
func (p Pipeline) Then(fn func(string) string) Rule {
	return RuleFunc(func(text string) (string, error) {
		out, err := p.Rewrite(text)
		if err != nil {
			return "", err
		}
		return fn(out), nil
	})
}

// replaceFunc is ReplaceAllStringFunc with submatches
func replaceFunc(re *regexp.Regexp, text string, fn func(m []string) string) string {
	idx := re.FindAllStringSubmatchIndex(text, -1)
	if idx == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range idx {
		b.WriteString(text[last:loc[0]])
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(m))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// splitList splits a comma separated parameter list, dropping empty items
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
