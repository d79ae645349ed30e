package shift

import (
	"strings"
	"testing"

	"langshift/internal/core/catalog"
	"langshift/internal/core/codec"
	"langshift/internal/core/planner"
	"langshift/internal/core/rewrite"
	perr "langshift/internal/platform/errors"
)

func newShift(t *testing.T) *Shift {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(cat)
}

func TestDetectSuggestConvert(t *testing.T) {
	s := newShift(t)
	in := "function add(a, b) { return a + b; }"

	tag, ok := s.Detect(in)
	if !ok || tag != "javascript" {
		t.Fatalf("Detect = %q ok=%v", tag, ok)
	}

	sugs := s.Suggest(tag, in)
	if len(sugs) == 0 || len(sugs) > planner.MaxSuggestions {
		t.Fatalf("Suggest returned %d items", len(sugs))
	}
	var ts planner.Suggestion
	for _, sg := range sugs {
		if sg.Target == "typescript" {
			ts = sg
		}
	}
	if ts.ID == "" {
		t.Fatalf("typescript not suggested: %+v", sugs)
	}

	res, err := s.Convert(in, ts)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(res.Text, "function add(a: any, b: any): any") {
		t.Fatalf("Convert = %q", res.Text)
	}
}

func TestEmptyInputs(t *testing.T) {
	s := newShift(t)
	if _, ok := s.Detect("   "); ok {
		t.Fatalf("whitespace detected as a language")
	}
	if got := s.Suggest("", "x"); len(got) != 0 {
		t.Fatalf("Suggest with no tag = %v", got)
	}
	if got := s.Suggest("python", ""); len(got) != 0 {
		t.Fatalf("Suggest with no text = %v", got)
	}
	_, err := s.Convert("x", planner.Suggestion{Target: "python"})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("Convert with no source: %v", err)
	}
}

func TestDecodeEncode(t *testing.T) {
	s := newShift(t)
	v, err := s.Decode(`{"a":[1,true,null]}`, codec.JSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, err := s.Encode(v, codec.YAML)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := s.Decode(out, codec.YAML)
	if err != nil {
		t.Fatalf("Decode yaml: %v\n%s", err, out)
	}
	if !codec.Equal(v, back) {
		t.Fatalf("round trip mismatch:\n%s", out)
	}

	if _, err := s.Decode("x", "toml"); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("unsupported format: %v", err)
	}
}

func TestConvertPairAndOptions(t *testing.T) {
	cat := catalog.MustLoad()
	s := New(cat, WithIndentUnit(2))
	res, err := s.ConvertPair("def f():\n  return 1", "python", "javascript")
	if err != nil {
		t.Fatalf("ConvertPair: %v", err)
	}
	if res.Text != "function f() {\n  return 1\n}" {
		t.Fatalf("got %q", res.Text)
	}
	if len(s.Pairs()) != 18 {
		t.Fatalf("pairs = %d", len(s.Pairs()))
	}
	if s.Catalog() != cat {
		t.Fatalf("catalog not retained")
	}
}

func TestKindOf(t *testing.T) {
	s := New(catalog.MustLoad())
	cases := map[[2]string]rewrite.Kind{
		{"javascript", "typescript"}: rewrite.KindRule,
		{"json", "xml"}:              rewrite.KindCodec,
		{"haskell", "cobol"}:         rewrite.KindFallback,
	}
	for p, want := range cases {
		if got := s.KindOf(p[0], p[1]); got != want {
			t.Errorf("KindOf(%s, %s) = %s, want %s", p[0], p[1], got, want)
		}
	}
}
