package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"langshift/internal/platform/net"
	"langshift/internal/platform/net/middleware"
)

func TestSession_SetsContext(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = net.SessionID(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.SessionHeader, "  sess-1 ")
	rr := httptest.NewRecorder()
	middleware.Session()(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seen != "sess-1" {
		t.Fatalf("expected session sess-1 got %q", seen)
	}
}

func TestSession_MissingOrOversizedPassesThrough(t *testing.T) {
	for _, h := range []string{"", strings.Repeat("x", 129)} {
		var seen string
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			seen = net.SessionID(r.Context())
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if h != "" {
			req.Header.Set(middleware.SessionHeader, h)
		}
		middleware.Session()(next).ServeHTTP(httptest.NewRecorder(), req)
		if !called || seen != "" {
			t.Fatalf("header len %d: called=%v seen=%q", len(h), called, seen)
		}
	}
}

func TestRecover_WritesEnvelope(t *testing.T) {
	h := middleware.RequestID()(middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("rule table corrupted")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/convert", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var body struct {
		Code      int    `json:"code"`
		Error     string `json:"error"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != 1 || body.Error != "panic recovered" || body.RequestID == "" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	h := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatalf("ErrAbortHandler was swallowed")
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAccessLog_PassesThrough(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := middleware.AccessLog(middleware.AccessLogOptions{Slow: slow})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("ok"))
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
			t.Fatalf("slow=%v: %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://app.example"}})(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", middleware.SessionHeader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestAdapters_ServeRequests(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	stack := []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.NoCache(),
		middleware.Compress(5),
		middleware.StripSlashes(),
		middleware.Timeout(time.Second),
		middleware.Throttle(2, time.Second),
		middleware.Heartbeat("/ping"),
	}
	var h http.Handler = ok
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history/", nil))
	if rr.Code != http.StatusNoContent || rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("stack = %d %v", rr.Code, rr.Header())
	}
}
