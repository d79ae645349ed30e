// Package normalize cleans untrusted input before it reaches the core.
// Pipeline order
// 1 size cap on the raw bytes
// 2 rejection of blocked fragments (script tags, eval, fs and network access, process spawning)
// 3 line endings folded to LF
// 4 invalid UTF-8 replaced, control characters other than tab and newline removed
// 5 surrounding whitespace trimmed
package normalize

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	perr "langshift/internal/platform/errors"
)

// DefaultMaxBytes caps a single input
const DefaultMaxBytes = 1 << 20

// Blocked is one rejected fragment
type Blocked struct {
	Name string
	Re   *regexp.Regexp
}

// DefaultBlocked lists the fragments rejected by New
var DefaultBlocked = []Blocked{
	{"script tag", regexp.MustCompile(`(?is)<script\b.*?</script>`)},
	{"eval", regexp.MustCompile(`(?i)\beval\s*\(`)},
	{"Function constructor", regexp.MustCompile(`(?i)\bFunction\s*\(`)},
	{"fs require", regexp.MustCompile(`(?i)require\s*\(\s*['"]fs['"]\s*\)`)},
	{"fs import", regexp.MustCompile(`(?i)import\s+.*\bfs\b`)},
	{"fetch", regexp.MustCompile(`(?i)fetch\s*\(`)},
	{"XMLHttpRequest", regexp.MustCompile(`(?i)XMLHttpRequest`)},
	{"exec", regexp.MustCompile(`(?i)exec\s*\(`)},
	{"spawn", regexp.MustCompile(`(?i)spawn\s*\(`)},
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// controls keeps tab and newline, everything else in Cc goes
var controls = runes.Predicate(func(r rune) bool {
	return r != '\t' && r != '\n' && unicode.IsControl(r)
})

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.ReplaceIllFormed(), // invalid UTF-8 to U+FFFD
			runes.Remove(controls),
		)
	},
}

// Sanitizer is safe for concurrent use
type Sanitizer struct {
	max     int
	blocked []Blocked
}

// Option configures a Sanitizer
type Option func(*Sanitizer)

// WithMaxBytes overrides DefaultMaxBytes; non-positive values are ignored
func WithMaxBytes(n int) Option {
	return func(s *Sanitizer) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithBlocked replaces the blocked fragment list; an empty list disables the check
func WithBlocked(b []Blocked) Option {
	return func(s *Sanitizer) { s.blocked = b }
}

// New constructs a Sanitizer
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{max: DefaultMaxBytes, blocked: DefaultBlocked}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MaxBytes returns the configured cap
func (s *Sanitizer) MaxBytes() int { return s.max }

// Clean validates text and returns its cleaned form.
// Oversized or blocked input fails with a validation error on field "text".
func (s *Sanitizer) Clean(text string) (string, error) {
	if len(text) > s.max {
		return "", perr.WithField(perr.Validationf("input too large: maximum size is %dKB", s.max/1024), "text")
	}
	for _, b := range s.blocked {
		if b.Re.MatchString(text) {
			return "", perr.WithField(perr.Validationf("input contains potentially dangerous code patterns (%s)", b.Name), "text")
		}
	}
	return Normalize(text), nil
}

// Normalize folds line endings, drops control characters and trims.
// It never fails and does not apply the size cap or blocked list.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = lineEndings.Replace(text)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, text)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// the chain only drops or replaces runes; keep the input on the impossible path
		out = text
	}
	return strings.TrimSpace(out)
}
