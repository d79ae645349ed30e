// Package domain defines the conversion quota port
package domain

import "time"

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is how long until the next token, zero when allowed
	RetryAfter time.Duration
}

// LimiterPort gates how often a client may convert
type LimiterPort interface {
	Allow(key string) Decision
	Remaining(key string) int
	// Check is Allow reporting an exhausted bucket as a TooManyRequests error
	Check(key string) (Decision, error)
}
