// Command langshift-catalog validates a language catalog and optionally packs a YAML catalog into JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"langshift/internal/core/catalog"
	"langshift/internal/core/detector"
)

// mismatch is one catalog example that does not classify to its own language
type mismatch struct {
	Tag     string
	Example int
	Got     string
	Ranking []detector.Score
}

// problems collects everything wrong with a catalog
type problems struct {
	Mismatches []mismatch
	Unknown    []string // targets and links pointing at undeclared tags
	NoExamples []string
}

func (p problems) empty() bool {
	return len(p.Mismatches) == 0 && len(p.Unknown) == 0 && len(p.NoExamples) == 0
}

func check(c *catalog.Catalog) problems {
	var p problems
	d := detector.New(c)
	for _, l := range c.Languages {
		if len(l.Examples) == 0 {
			p.NoExamples = append(p.NoExamples, l.Tag)
		}
		for i, ex := range l.Examples {
			got, ok := d.Detect(ex)
			if !ok || got != l.Tag {
				p.Mismatches = append(p.Mismatches, mismatch{Tag: l.Tag, Example: i, Got: got, Ranking: d.Rank(ex)})
			}
		}
		for _, t := range l.Targets {
			if !c.Known(t) {
				p.Unknown = append(p.Unknown, l.Tag+" target "+t)
			}
		}
		for _, k := range l.Links {
			if !c.Known(k.To) {
				p.Unknown = append(p.Unknown, l.Tag+" link "+k.To)
			}
		}
	}
	return p
}

func report(w io.Writer, p problems) {
	for _, m := range p.Mismatches {
		got := m.Got
		if got == "" {
			got = "none"
		}
		_, _ = fmt.Fprintf(w, "mismatch: %s example %d classified as %s, ranking %v\n", m.Tag, m.Example, got, m.Ranking)
	}
	for _, u := range p.Unknown {
		_, _ = fmt.Fprintf(w, "unknown tag: %s\n", u)
	}
	for _, t := range p.NoExamples {
		_, _ = fmt.Fprintf(w, "warning: %s has no examples\n", t)
	}
}

// pack re-encodes a catalog file as indented JSON
func pack(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &doc)
	default:
		err = json.Unmarshal(b, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		in      = flag.String("in", "", "catalog file (.json, .yaml); empty checks the embedded catalog")
		out     = flag.String("out", "", "write the catalog as JSON to this path, '-' for stdout")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	var (
		c   *catalog.Catalog
		err error
	)
	if *in == "" {
		c, err = catalog.Load()
	} else {
		c, err = catalog.LoadFile(*in)
	}
	must(err)

	p := check(c)
	report(os.Stderr, p)
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "checked %d languages, %d mismatches\n", len(c.Languages), len(p.Mismatches))
	}
	if len(p.Mismatches) > 0 || len(p.Unknown) > 0 {
		os.Exit(1)
	}

	if *out == "" {
		return
	}
	if *in == "" {
		must(fmt.Errorf("-out needs -in"))
	}
	enc, err := pack(*in)
	must(err)

	if *out == "-" {
		_, err := os.Stdout.Write(append(enc, '\n'))
		must(err)
		return
	}
	must(os.MkdirAll(filepath.Dir(*out), 0o755))
	must(os.WriteFile(*out, append(enc, '\n'), 0o644))
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", *out, len(enc))
	}
}
