package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"*"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"https://langshift.dev"}, def); got[0] != "https://langshift.dev" {
		t.Fatalf("IfEmpty kept default: %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"convert":     "/convert",
		"/history/":   "/history",
		"  /stats  ":  "/stats",
		"//convert//": "/convert",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"", " / ", "///"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MustPrefix(%q) did not panic", bad)
				}
			}()
			MustPrefix(bad)
		}()
	}
}

func TestMustString(t *testing.T) {
	if MustString("convert", "name") != "convert" {
		t.Fatalf("MustString changed its input")
	}
	defer func() {
		if r := recover(); r != "module name is required" {
			t.Fatalf("panic = %v", r)
		}
	}()
	MustString("  ", "module name")
}
