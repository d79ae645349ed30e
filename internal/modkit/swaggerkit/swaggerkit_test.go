package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag/v2"

	phttp "langshift/internal/platform/net/http"
)

func TestBuild_EmbeddedDoc(t *testing.T) {
	raw, err := swag.ReadDoc(InstanceName)
	if err != nil || raw != string(baseDoc) {
		t.Fatalf("swag registry: err=%v", err)
	}
	spec, err := Build([]byte(raw), "/api/v1")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}

	comps := spec["components"].(map[string]any)
	if _, ok := comps["schemas"].(map[string]any)["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
	if _, ok := comps["responses"].(map[string]any)["Error"]; !ok {
		t.Fatalf("Error response missing")
	}

	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/convert/run", "/convert/codec", "/history", "/stats/pairs", "/meta/ready"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("path %s missing", p)
		}
	}
	run := paths["/convert/run"].(map[string]any)["post"].(map[string]any)
	resps := run["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "422", "429", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("/convert/run missing %s", code)
		}
	}
}

func TestBuild_LiftsSwagger2AndKeepsServers(t *testing.T) {
	raw := []byte(`{"swagger":"2.0","servers":[{"url":"/x"}],"paths":{"/a":{"get":{}}}}`)
	spec, err := Build(raw, "/api/v1")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("version not lifted: %v", spec)
	}
	if spec["servers"].([]any)[0].(map[string]any)["url"] != "/x" {
		t.Fatalf("existing servers replaced")
	}
	get := spec["paths"].(map[string]any)["/a"].(map[string]any)["get"].(map[string]any)
	if _, ok := get["responses"].(map[string]any)["500"]; !ok {
		t.Fatalf("default 500 not injected")
	}

	if _, err := Build([]byte("{"), "/"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMount(t *testing.T) {
	t.Setenv("API_DOCS_TITLE_SUFFIX", "(dev)")
	Register(func(spec map[string]any) { spec["x-mutated"] = true })
	t.Cleanup(func() { mutators = nil })

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["info"].(map[string]any)["title"] != "langshift API (dev)" {
		t.Fatalf("title = %v", spec["info"])
	}
	if spec["x-mutated"] != true {
		t.Fatalf("mutator not applied")
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled mount served %d", rec.Code)
	}
}
