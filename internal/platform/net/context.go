// Package net carries request scoped ids on the context
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// WithRequest stores the request id where chi's GetReqID finds it and
// the client session id next to it; empty values are skipped
func WithRequest(ctx context.Context, reqID, sessionID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if sessionID != "" {
		ctx = context.WithValue(ctx, ctxKey{}, sessionID)
	}
	return ctx
}

// RequestID returns the request id, empty when none was assigned
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// SessionID returns the X-Session-ID bound by the session middleware
func SessionID(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}
