package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"langshift/internal/core/catalog"
	"langshift/internal/core/normalize"
	"langshift/internal/core/shift"
	"langshift/internal/modkit/httpkit"
	phttp "langshift/internal/platform/net/http"
	svc "langshift/internal/services/api/convert/service"
	quotasvc "langshift/internal/services/quota/service"
)

func newRouter(t *testing.T, limit int) phttp.Router {
	t.Helper()
	if err := httpkit.RegisterTag("langtag", "{0} must be a valid language identifier", normalize.ValidTag); err != nil {
		t.Fatalf("register langtag: %v", err)
	}
	s := svc.New(shift.New(catalog.MustLoad()), svc.Options{
		Limiter: quotasvc.New(quotasvc.Config{Limit: limit}),
	})
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, s)
	return r
}

func do(r phttp.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body=%s", err, rr.Body.String())
	}
	return env
}

func TestRun_OK(t *testing.T) {
	r := newRouter(t, 10)
	rr := do(r, stdhttp.MethodPost, "/run", `{"text":"{\"a\":1}","from":"json","to":"yaml"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code=%d body=%s", rr.Code, rr.Body.String())
	}
	var out struct {
		Output    string `json:"output"`
		Kind      string `json:"kind"`
		Remaining int    `json:"remaining"`
	}
	if err := json.Unmarshal(decode(t, rr).Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Output != "a: 1" || out.Kind != "codec" || out.Remaining != 9 {
		t.Fatalf("out = %+v", out)
	}
}

func TestRun_StatusCodes(t *testing.T) {
	r := newRouter(t, 10)
	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing text", `{"from":"json","to":"yaml"}`, stdhttp.StatusBadRequest},
		{"bad tag", `{"text":"x","from":"js on","to":"yaml"}`, stdhttp.StatusBadRequest},
		{"blocked input", `{"text":"eval(1)","from":"javascript","to":"python"}`, stdhttp.StatusBadRequest},
		{"malformed json source", `{"text":"{\"a\":}","from":"json","to":"yaml"}`, stdhttp.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(r, stdhttp.MethodPost, "/run", tc.body)
			if rr.Code != tc.want {
				t.Fatalf("code=%d want %d body=%s", rr.Code, tc.want, rr.Body.String())
			}
			if decode(t, rr).Error == "" {
				t.Fatalf("missing error message: %s", rr.Body.String())
			}
		})
	}
}

func TestRun_RateLimited(t *testing.T) {
	r := newRouter(t, 1)
	body := `{"text":"a: 1","from":"yaml","to":"json"}`
	if rr := do(r, stdhttp.MethodPost, "/run", body); rr.Code != stdhttp.StatusOK {
		t.Fatalf("first call code=%d body=%s", rr.Code, rr.Body.String())
	}
	rr := do(r, stdhttp.MethodPost, "/run", body)
	if rr.Code != stdhttp.StatusTooManyRequests {
		t.Fatalf("second call code=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(decode(t, rr).Error, "rate limit exceeded") {
		t.Fatalf("body=%s", rr.Body.String())
	}
}

func TestDetectSuggestCodecLanguages(t *testing.T) {
	r := newRouter(t, 10)

	rr := do(r, stdhttp.MethodPost, "/detect", `{"text":"def hello():\n    print(1)"}`)
	if rr.Code != stdhttp.StatusOK || !strings.Contains(rr.Body.String(), `"language":"python"`) {
		t.Fatalf("detect code=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = do(r, stdhttp.MethodPost, "/suggest", `{"text":"a { color: red; }","language":"css"}`)
	if rr.Code != stdhttp.StatusOK || !strings.Contains(rr.Body.String(), `"id":"css-scss"`) {
		t.Fatalf("suggest code=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = do(r, stdhttp.MethodPost, "/codec", `{"text":"a: 1","from":"yaml","to":"toml"}`)
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("codec toml code=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = do(r, stdhttp.MethodGet, "/languages", "")
	if rr.Code != stdhttp.StatusOK || !strings.Contains(rr.Body.String(), `"tag":"dockerfile"`) {
		t.Fatalf("languages code=%d", rr.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	if got := clientIP(req); got != "10.1.2.3" {
		t.Fatalf("clientIP = %q", got)
	}
	req.RemoteAddr = "10.1.2.3"
	if got := clientIP(req); got != "10.1.2.3" {
		t.Fatalf("clientIP without port = %q", got)
	}
}
