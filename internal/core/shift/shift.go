// Package shift is the entry point to the core: detect, suggest, convert, decode and encode
// over one loaded catalog. A Shift is immutable after New and safe for concurrent use.
package shift

import (
	"langshift/internal/core/catalog"
	"langshift/internal/core/codec"
	"langshift/internal/core/detector"
	"langshift/internal/core/planner"
	"langshift/internal/core/rewrite"
)

// Shift bundles the classifier, planner and rewrite engine
type Shift struct {
	cat    *catalog.Catalog
	det    *detector.Detector
	plan   *planner.Planner
	reg    *rewrite.Registry
	engine *rewrite.Engine
}

// Option configures New
type Option func(*options)

type options struct {
	rewrite []rewrite.Option
}

// WithIndentUnit sets the block indentation width used by rewrite rules
func WithIndentUnit(n int) Option {
	return func(o *options) { o.rewrite = append(o.rewrite, rewrite.WithIndentUnit(n)) }
}

// New wires the core over cat
func New(cat *catalog.Catalog, opts ...Option) *Shift {
	if cat == nil {
		panic("shift.New requires a non nil catalog")
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	reg := rewrite.Default(o.rewrite...)
	return &Shift{
		cat:    cat,
		det:    detector.New(cat),
		plan:   planner.New(cat),
		reg:    reg,
		engine: rewrite.NewEngine(reg, cat),
	}
}

// Catalog returns the catalog the core was built with
func (s *Shift) Catalog() *catalog.Catalog { return s.cat }

// Detect returns the best language for text, false when nothing scores
func (s *Shift) Detect(text string) (string, bool) { return s.det.Detect(text) }

// Rank returns every non-zero score, best first
func (s *Shift) Rank(text string) []detector.Score { return s.det.Rank(text) }

// Suggest returns at most planner.MaxSuggestions conversions for tag
func (s *Shift) Suggest(tag, text string) []planner.Suggestion { return s.plan.Suggest(tag, text) }

// Convert rewrites text along the suggestion's source and target
func (s *Shift) Convert(text string, sg planner.Suggestion) (rewrite.Result, error) {
	return s.engine.Convert(text, rewrite.Pair{From: sg.Source, To: sg.Target})
}

// ConvertPair rewrites text from one tag to another without a suggestion
func (s *Shift) ConvertPair(text, from, to string) (rewrite.Result, error) {
	return s.engine.Convert(text, rewrite.Pair{From: from, To: to})
}

// Decode parses structured text into the intermediate tree
func (s *Shift) Decode(text, format string) (codec.Value, error) { return codec.Decode(text, format) }

// Encode renders the intermediate tree in format
func (s *Shift) Encode(v codec.Value, format string) (string, error) { return codec.Encode(v, format) }

// Pairs lists every pair with a dedicated rule or codec
func (s *Shift) Pairs() []rewrite.Pair { return s.reg.Pairs() }

// KindOf reports how a pair would be served: dedicated rule, codec or fallback
func (s *Shift) KindOf(from, to string) rewrite.Kind {
	if _, k, ok := s.reg.Lookup(rewrite.Pair{From: from, To: to}); ok {
		return k
	}
	return rewrite.KindFallback
}
