// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"langshift/internal/modkit/httpkit"
	"langshift/internal/services/api/stats/domain"
	svc "langshift/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// conversions per language pair
	httpkit.PostJSON[domain.ByPairInput](r, "/pairs", h.byPair)

	// event counts per day
	httpkit.PostJSON[domain.DailyInput](r, "/daily", h.daily)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/pairs Stats statsByPair
// @Summary Conversions by language pair
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ByPairInput true "Query"
// @Success 200 {array} domain.ByPairRow "ok"
// @Failure 503 {object} map[string]any "clickhouse unavailable"
// @Router /stats/pairs [post]
func (h *handlers) byPair(r *stdhttp.Request, in domain.ByPairInput) (any, error) {
	return h.svc.ByPair(r.Context(), in)
}

// swagger:route POST /stats/daily Stats statsDaily
// @Summary Event counts by day and kind
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.DailyInput true "Query"
// @Success 200 {array} domain.DailyRow "ok"
// @Failure 503 {object} map[string]any "clickhouse unavailable"
// @Router /stats/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.DailyInput) (any, error) {
	return h.svc.Daily(r.Context(), in)
}
