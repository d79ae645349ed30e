// Package http provides http transport for conversion history
package http

import (
	stdhttp "net/http"

	"langshift/internal/modkit/httpkit"
	svc "langshift/internal/services/api/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)

	// DELETE carries no body, the session travels in the query
	r.Delete("/", httpkit.Call(h.clear))
}

type handlers struct{ svc svc.Service }

// swagger:route GET /history History historyList
// @Summary List a session's conversion history
// @Tags History
// @Produce json
// @Param session query string false "Session id"
// @Param X-Session-ID header string false "Session id when the query has none"
// @Success 200 {object} domain.ListOutput "ok"
// @Failure 400 {object} map[string]any "missing session"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), session(r))
}

// swagger:route DELETE /history History historyClear
// @Summary Clear a session's conversion history
// @Tags History
// @Produce json
// @Param session query string false "Session id"
// @Param X-Session-ID header string false "Session id when the query has none"
// @Success 200 {object} domain.ClearOutput "ok"
// @Failure 400 {object} map[string]any "missing session"
// @Router /history [delete]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	return h.svc.Clear(r.Context(), session(r))
}

func session(r *stdhttp.Request) string {
	return httpkit.Session(r, r.URL.Query().Get("session"))
}
