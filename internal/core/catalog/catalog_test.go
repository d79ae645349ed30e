package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if c.Version != 1 {
		t.Fatalf("version = %d, want 1", c.Version)
	}
	if len(c.Languages) != 23 {
		t.Fatalf("languages = %d, want 23", len(c.Languages))
	}
	for _, l := range c.Languages {
		if len(l.Patterns) == 0 {
			t.Fatalf("%s: empty pattern list", l.Tag)
		}
		if len(l.Patterns) != len(l.Sources) {
			t.Fatalf("%s: patterns/sources mismatch", l.Tag)
		}
		if len(l.Examples) == 0 {
			t.Fatalf("%s: no examples", l.Tag)
		}
		if l.Name == "" || l.Icon == "" {
			t.Fatalf("%s: missing display metadata", l.Tag)
		}
	}
}

func TestRegistrationOrder(t *testing.T) {
	c := MustLoad()
	tags := c.Tags()
	if tags[0] != "javascript" || tags[len(tags)-1] != "dockerfile" {
		t.Fatalf("unexpected order: first=%s last=%s", tags[0], tags[len(tags)-1])
	}
	pos := map[string]int{}
	for i, tag := range tags {
		pos[tag] = i
	}
	if pos["html"] > pos["xml"] {
		t.Fatalf("html must be registered before xml: %v", tags)
	}
	data := c.InCategory(Data)
	if strings.Join(data, ",") != "json,yaml,xml" {
		t.Fatalf("data family = %v", data)
	}
	style := c.InCategory(Style)
	if strings.Join(style, ",") != "css,scss" {
		t.Fatalf("style family = %v", style)
	}
}

func TestPatternsForAndDisplay(t *testing.T) {
	c := MustLoad()
	if got := c.PatternsFor("python"); len(got) == 0 {
		t.Fatalf("python has no patterns")
	}
	if got := c.PatternsFor("cobol"); got != nil {
		t.Fatalf("unknown tag returned patterns")
	}

	cases := map[string]string{
		"csharp": "C#",
		"cpp":    "C++",
		"json":   "JSON",
		"scala":  "Scala",
		"cobol":  "cobol",
	}
	for tag, want := range cases {
		if got := c.Display(tag); got != want {
			t.Errorf("Display(%q) = %q, want %q", tag, got, want)
		}
	}
	if !c.Known("scala") || c.Known("cobol") {
		t.Fatalf("Known mismatch")
	}
	if c.Icon("scala") == "" {
		t.Fatalf("scala icon missing")
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"version", `{"version":2,"languages":[{"tag":"a","patterns":["a"]}]}`, "unsupported version"},
		{"empty", `{"version":1,"languages":[]}`, "no languages"},
		{"no patterns", `{"version":1,"languages":[{"tag":"a","patterns":[]}]}`, "empty pattern list"},
		{"dup", `{"version":1,"languages":[{"tag":"a","patterns":["a"]},{"tag":"a","patterns":["b"]}]}`, "duplicate tag"},
		{"bad regex", `{"version":1,"languages":[{"tag":"a","patterns":["(unclosed"]}]}`, "compile"},
		{"shadow", `{"version":1,"languages":[{"tag":"a","patterns":["a"]}],"extras":[{"tag":"a","name":"A"}]}`, "shadows"},
		{"syntax", `{"version":1,`, "parse json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), FormatJSON)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	doc := `version: 1
languages:
  - tag: toy
    name: Toy
    category: programming
    patterns:
      - 'toy\s+\w+'
extras:
  - tag: other
    name: Other
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	l, ok := c.Lookup("toy")
	if !ok || l.Category != Programming {
		t.Fatalf("toy not loaded: %+v", l)
	}
	if !l.Patterns[0].MatchString("toy box") {
		t.Fatalf("pattern did not compile as expected")
	}
	if c.Display("other") != "Other" {
		t.Fatalf("extra not loaded")
	}

	if _, err := LoadFile(filepath.Join(dir, "x.toml")); err == nil {
		t.Fatalf("expected read error for missing file")
	}
	bad := filepath.Join(dir, "x.txt")
	_ = os.WriteFile(bad, []byte("x"), 0o600)
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), "extension") {
		t.Fatalf("expected extension error, got %v", err)
	}
}
