package rewrite

import (
	"fmt"
	"strings"

	perr "langshift/internal/platform/errors"
)

// Namer resolves a tag to its display name
type Namer interface {
	Display(tag string) string
}

// Engine dispatches a pair to its rule, codec or the fallback banner
type Engine struct {
	reg   *Registry
	names Namer
}

// Result is a successful conversion
type Result struct {
	Text string
	Kind Kind
}

// NewEngine builds an engine; names may be nil, tags are then shown as is
func NewEngine(reg *Registry, names Namer) *Engine {
	if reg == nil {
		panic("rewrite.NewEngine: nil registry")
	}
	return &Engine{reg: reg, names: names}
}

// Convert rewrites text for p. On error no output is returned.
func (e *Engine) Convert(text string, p Pair) (Result, error) {
	p.From, p.To = strings.TrimSpace(p.From), strings.TrimSpace(p.To)
	if p.From == "" {
		return Result{}, perr.WithField(perr.Validationf("convert: source language is required"), "from")
	}
	if p.To == "" {
		return Result{}, perr.WithField(perr.Validationf("convert: target language is required"), "to")
	}

	rule, kind, ok := e.reg.Lookup(p)
	if !ok {
		return Result{Text: Fallback(text, e.display(p.From), e.display(p.To), p.To), Kind: KindFallback}, nil
	}

	out, err := run(rule, text, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: out, Kind: kind}, nil
}

func run(rule Rule, text string, p Pair) (out string, err error) {
	op := "rule:" + p.String()
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = perr.WithOp(perr.Conversionf("convert %s: %v", p, rec), op)
		}
	}()

	out, err = rule.Rewrite(text)
	if err == nil {
		return out, nil
	}
	if pe, ok := perr.As(err); ok && pe.Op() != "" {
		// codec errors already carry their decode/encode stage
		return "", err
	}
	if perr.IsCode(err, perr.ErrorCodeUnknown) {
		err = perr.Wrapf(err, perr.ErrorCodeConversion, "convert %s", p)
	}
	return "", perr.WithOp(err, op)
}

func (e *Engine) display(tag string) string {
	if e.names == nil {
		return tag
	}
	return e.names.Display(tag)
}

// Fallback wraps text untouched in a comment banner naming the pair.
// The comment syntax follows the target when it is known.
func Fallback(text, fromName, toName, target string) string {
	open, close := commentStyle(target)
	line := func(s string) string { return open + s + close }

	var b strings.Builder
	b.WriteString(line(fmt.Sprintf("Converted from %s to %s", fromName, toName)) + "\n")
	b.WriteString(line("Note: This is a basic conversion. Manual adjustments may be required.") + "\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(line("TODO: Review and adjust the converted code as needed") + "\n")
	b.WriteString(line("- Check syntax compatibility") + "\n")
	b.WriteString(line("- Update language-specific constructs") + "\n")
	b.WriteString(line("- Verify functionality"))
	return b.String()
}

func commentStyle(tag string) (string, string) {
	switch tag {
	case "python", "ruby", "bash", "yaml", "dockerfile":
		return "# ", ""
	case "sql":
		return "-- ", ""
	case "html", "xml":
		return "<!-- ", " -->"
	case "css", "scss":
		return "/* ", " */"
	}
	return "// ", ""
}
