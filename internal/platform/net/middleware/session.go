package middleware

import (
	"net/http"
	"strings"

	"langshift/internal/platform/logger"
	pnet "langshift/internal/platform/net"
)

// SessionHeader carries the client session id
const SessionHeader = "X-Session-ID"

// maxSessionLen matches the session validation of the history store
const maxSessionLen = 128

// Session copies the X-Session-ID header onto the request context for
// pnet.SessionID and hands the request and session ids to the request
// scoped logger. Oversized ids are ignored. Mount after RequestID.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := strings.TrimSpace(r.Header.Get(SessionHeader))
			if len(sid) > maxSessionLen {
				sid = ""
			}
			reqID := pnet.RequestID(r.Context())
			ctx := pnet.WithRequest(r.Context(), "", sid)
			ctx = logger.WithRequest(ctx, reqID, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
