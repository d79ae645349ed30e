package rewrite

import (
	"sort"

	"langshift/internal/core/codec"
)

// Pair is the dispatch key of a rule
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (p Pair) String() string { return p.From + "->" + p.To }

// Kind tags how a registered pair is served
type Kind string

// Rule kinds
const (
	KindRule     Kind = "rule"
	KindCodec    Kind = "codec"
	KindFallback Kind = "fallback"
)

type entry struct {
	kind Kind
	rule Rule
}

// Registry is an exact-match table of rules keyed by Pair.
// It is filled once at startup and read concurrently afterwards.
type Registry struct {
	rules map[Pair]entry
	unit  int
}

// Option configures Default
type Option func(*Registry)

// WithIndentUnit sets the indentation width used by the block passes
func WithIndentUnit(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.unit = n
		}
	}
}

// NewRegistry returns an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{rules: map[Pair]entry{}, unit: DefaultIndentUnit}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Default returns a registry with every shipped rule and codec pair
func Default(opts ...Option) *Registry {
	r := NewRegistry(opts...)

	r.Register(Pair{"javascript", "typescript"}, jsToTS)
	r.Register(Pair{"typescript", "javascript"}, tsToJS)
	r.Register(Pair{"python", "javascript"}, pythonToJS(r.unit))
	r.Register(Pair{"javascript", "python"}, jsToPython(r.unit))

	r.Register(Pair{"java", "kotlin"}, javaToKotlin)
	r.Register(Pair{"java", "csharp"}, javaToCSharp)

	r.Register(Pair{"css", "scss"}, RuleFunc(cssToSCSS))
	r.Register(Pair{"scss", "css"}, RuleFunc(scssToCSS))

	r.Register(Pair{"html", "jsx"}, htmlToJSX)
	r.Register(Pair{"jsx", "html"}, jsxToHTML)

	r.Register(Pair{"sql", "json"}, RuleFunc(sqlToJSON))
	r.Register(Pair{"dockerfile", "bash"}, RuleFunc(dockerfileToBash))

	for _, from := range []string{codec.JSON, codec.YAML, codec.XML} {
		for _, to := range []string{codec.JSON, codec.YAML, codec.XML} {
			if from != to {
				r.registerCodec(Pair{from, to})
			}
		}
	}
	return r
}

// Register binds a rule to p, replacing any previous binding
func (r *Registry) Register(p Pair, rule Rule) {
	r.rules[p] = entry{kind: KindRule, rule: rule}
}

func (r *Registry) registerCodec(p Pair) {
	r.rules[p] = entry{kind: KindCodec, rule: codecRule(p)}
}

// Lookup returns the rule bound to p
func (r *Registry) Lookup(p Pair) (Rule, Kind, bool) {
	e, ok := r.rules[p]
	if !ok {
		return nil, KindFallback, false
	}
	return e.rule, e.kind, true
}

// IndentUnit returns the configured indentation width
func (r *Registry) IndentUnit() int { return r.unit }

// Pairs lists registered pairs sorted by source then target
func (r *Registry) Pairs() []Pair {
	out := make([]Pair, 0, len(r.rules))
	for p := range r.rules {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func codecRule(p Pair) Rule {
	return RuleFunc(func(text string) (string, error) {
		return codec.Convert(text, p.From, p.To)
	})
}
