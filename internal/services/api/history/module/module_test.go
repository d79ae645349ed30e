package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"langshift/internal/modkit"
	phttp "langshift/internal/platform/net/http"
	histdom "langshift/internal/services/history/domain"
	histrepo "langshift/internal/services/history/repo"
	histsvc "langshift/internal/services/history/service"
)

func TestModule_Routes(t *testing.T) {
	h := histsvc.New(histrepo.NewMemory(), histsvc.Config{})
	if _, err := h.Record(context.Background(), histdom.RecordInput{Session: "abc", Label: "Convert to YAML"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Query: h}))
	if m.Name() != "history-api" || m.Prefix() != "/history" {
		t.Fatalf("identity = %s %s", m.Name(), m.Prefix())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	do := func(method, target string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, target, nil))
		return rr
	}

	rr := do(http.MethodGet, "/history?session=abc")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"label":"Convert to YAML"`) {
		t.Fatalf("GET code=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = do(http.MethodGet, "/history")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("GET without session code=%d", rr.Code)
	}

	rr = do(http.MethodDelete, "/history?session=abc")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"cleared":1`) {
		t.Fatalf("DELETE code=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestNew_RequiresQueryPort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New(modkit.Deps{})
}
