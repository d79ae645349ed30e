package config

import (
	"reflect"
	"testing"
	"time"

	kit "langshift/internal/platform/testkit"
)

func TestPrefixNesting(t *testing.T) {
	c := New().Prefix("API_").Prefix("CORS_")
	if got := c.key("ORIGINS"); got != "API_CORS_ORIGINS" {
		t.Fatalf("key = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("PG_")
	t.Setenv("PG_DSN", " postgres://x ")
	t.Setenv("PG_RETRIES", " 5 ")
	t.Setenv("PG_BAD_INT", "five")
	t.Setenv("PG_DEBUG", "true")
	t.Setenv("PG_BAD_BOOL", "maybe")
	t.Setenv("PG_PING_TIMEOUT", "750ms")
	t.Setenv("PG_BAD_DUR", "soon")

	if got := c.MayString("DSN", ""); got != "postgres://x" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("RETRIES", 20); got != 5 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_INT", 20); got != 20 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
	if !c.MayBool("DEBUG", false) || !c.MayBool("BAD_BOOL", true) || c.MayBool("MISSING", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("PING_TIMEOUT", time.Second); got != 750*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_DUR", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("API_")
	def := []string{"*"}
	cases := []struct {
		val  string
		want []string
	}{
		{"", def},
		{" , ,", def},
		{"https://a.dev, https://b.dev ,", []string{"https://a.dev", "https://b.dev"}},
	}
	for _, tc := range cases {
		t.Setenv("API_CORS_ORIGINS", tc.val)
		if got := c.MayCSV("CORS_ORIGINS", def); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("MayCSV(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("HISTORY_")
	if got := c.MayEnum("BACKEND", "memory", "memory", "pg"); got != "memory" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("HISTORY_BACKEND", "PG")
	if got := c.MayEnum("BACKEND", "memory", "memory", "pg"); got != "PG" {
		t.Fatalf("case-folded = %q", got)
	}
	t.Setenv("HISTORY_BACKEND", "redis")
	kit.MustPanic(t, func() { _ = c.MayEnum("BACKEND", "memory", "memory", "pg") })
}
