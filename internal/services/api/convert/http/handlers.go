// Package http provides http transport for conversions
package http

import (
	"net"
	stdhttp "net/http"

	"langshift/internal/modkit/httpkit"
	"langshift/internal/services/api/convert/domain"
	svc "langshift/internal/services/api/convert/service"
)

// Register mounts convert endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)
	httpkit.PostJSON[domain.SuggestInput](r, "/suggest", h.suggest)
	httpkit.PostJSON[domain.RunInput](r, "/run", h.run)
	httpkit.PostJSON[domain.CodecInput](r, "/codec", h.codec)
	httpkit.Get(r, "/languages", h.languages)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /convert/detect Convert convertDetect
// @Summary Detect the language of a snippet
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Snippet"
// @Success 200 {object} domain.DetectOutput "ok"
// @Failure 400 {object} map[string]any "validation error"
// @Router /convert/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /convert/suggest Convert convertSuggest
// @Summary Suggest conversion targets
// @Description Detects the language first when it is omitted
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.SuggestInput true "Snippet and optional language"
// @Success 200 {object} domain.SuggestOutput "ok"
// @Router /convert/suggest [post]
func (h *handlers) suggest(r *stdhttp.Request, in domain.SuggestInput) (any, error) {
	return h.svc.Suggest(r.Context(), in)
}

// swagger:route POST /convert/run Convert convertRun
// @Summary Convert a snippet between languages
// @Description Dedicated rule or codec when one exists, otherwise a commented passthrough
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.RunInput true "Conversion request"
// @Param X-Session-ID header string false "Session id, used when the body has none"
// @Success 200 {object} domain.RunOutput "ok"
// @Failure 400 {object} map[string]any "validation error"
// @Failure 422 {object} map[string]any "malformed structured input"
// @Failure 429 {object} map[string]any "rate limit exceeded"
// @Router /convert/run [post]
func (h *handlers) run(r *stdhttp.Request, in domain.RunInput) (any, error) {
	in.Session = httpkit.Session(r, in.Session)
	in.Client = clientIP(r)
	return h.svc.Run(r.Context(), in)
}

// swagger:route POST /convert/codec Convert convertCodec
// @Summary Re-encode JSON, YAML or XML
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.CodecInput true "Document"
// @Success 200 {object} domain.CodecOutput "ok"
// @Failure 422 {object} map[string]any "malformed structured input"
// @Router /convert/codec [post]
func (h *handlers) codec(r *stdhttp.Request, in domain.CodecInput) (any, error) {
	return h.svc.Codec(r.Context(), in)
}

// swagger:route GET /convert/languages Convert convertLanguages
// @Summary List supported languages and dedicated conversion pairs
// @Tags Convert
// @Produce json
// @Success 200 {object} domain.LanguagesOutput "ok"
// @Router /convert/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.Languages(r.Context())
}

// clientIP strips the port; RealIP middleware has already rewritten RemoteAddr
func clientIP(r *stdhttp.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
