// Package httpkit is the routing surface API modules build on;
// modules import it instead of the platform http package
package httpkit

import (
	"net/http"
	"strings"

	pnet "langshift/internal/platform/net"
	phttp "langshift/internal/platform/net/http"
	"langshift/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response is a return style handler result
	Response = phttp.Response
)

// Call adapts a body-less handler; a returned Response is written as is
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) { r.Delete(path, Call(h)) }

// PostJSON mounts h under POST; the body is decoded and validated into T before h runs
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// MountAPI mounts mount under /api/{version} behind mw
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// Session returns explicit when set, otherwise the X-Session-ID bound by the session middleware
func Session(r *http.Request, explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return pnet.SessionID(r.Context())
}

// RegisterTag adds a string validation tag usable in DTO `validate` tags;
// message is the english error text and {0} the json field name
func RegisterTag(tag, message string, ok func(string) bool) error {
	return bind.RegisterTagged(tag, message, func(fl bind.FieldLevel) bool {
		return ok(fl.Field().String())
	})
}
