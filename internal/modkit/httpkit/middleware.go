package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"langshift/internal/platform/config"
	"langshift/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	Slow        time.Duration
	MaxInFlight int
	Origins     []string
}

// StackFromConfig reads API_TIMEOUT, API_SLOW_MS, API_MAX_INFLIGHT and API_CORS_ORIGINS
func StackFromConfig(c config.Conf) StackOptions {
	return StackOptions{
		Timeout:     c.MayDuration("TIMEOUT", 30*time.Second),
		Slow:        time.Duration(c.MayInt("SLOW_MS", 750)) * time.Millisecond,
		MaxInFlight: c.MayInt("MAX_INFLIGHT", 64),
		Origins:     c.MayCSV("CORS_ORIGINS", nil),
	}
}

// CommonStack is the middleware every versioned API route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Session(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.Recover,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, 5*time.Second))
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
