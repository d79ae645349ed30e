// Package service implements a keyed token bucket limiter
package service

import (
	"math"
	"sync"
	"time"

	perr "langshift/internal/platform/errors"
	"langshift/internal/services/quota/domain"

	"golang.org/x/time/rate"
)

// Config for the limiter
type Config struct {
	// Limit is the number of conversions per Window; defaults to 100
	Limit int
	// Window defaults to 60s
	Window time.Duration
	// IdleTTL drops buckets untouched for this long; defaults to 2*Window
	IdleTTL time.Duration
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// Service implements domain.LimiterPort
type Service struct {
	cfg Config

	mu      sync.Mutex
	buckets map[string]*bucket
	sweptAt time.Time
	now     func() time.Time
}

var _ domain.LimiterPort = (*Service)(nil)

// New constructs a limiter
func New(cfg Config) *Service {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = 60 * time.Second
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 2 * cfg.Window
	}
	return &Service{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Config returns the effective configuration
func (s *Service) Config() Config { return s.cfg }

func (s *Service) get(key string, now time.Time) *bucket {
	b, ok := s.buckets[key]
	if !ok {
		every := s.cfg.Window / time.Duration(s.cfg.Limit)
		b = &bucket{lim: rate.NewLimiter(rate.Every(every), s.cfg.Limit)}
		s.buckets[key] = b
	}
	b.seen = now
	if now.Sub(s.sweptAt) > s.cfg.IdleTTL {
		s.sweep(now)
	}
	return b
}

func (s *Service) sweep(now time.Time) {
	for k, b := range s.buckets {
		if now.Sub(b.seen) > s.cfg.IdleTTL {
			delete(s.buckets, k)
		}
	}
	s.sweptAt = now
}

// Allow implements domain.LimiterPort and consumes one token when available
func (s *Service) Allow(key string) domain.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b := s.get(key, now)
	if b.lim.AllowN(now, 1) {
		return domain.Decision{Allowed: true, Remaining: floor(b.lim.TokensAt(now))}
	}
	r := b.lim.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return domain.Decision{RetryAfter: wait}
}

// Remaining implements domain.LimiterPort without consuming a token
func (s *Service) Remaining(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		return s.cfg.Limit
	}
	return floor(b.lim.TokensAt(now))
}

// Check is Allow mapped to an error: TooManyRequests when the bucket is empty
func (s *Service) Check(key string) (domain.Decision, error) {
	d := s.Allow(key)
	if d.Allowed {
		return d, nil
	}
	secs := int(math.Ceil(d.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return d, perr.TooManyf("rate limit exceeded: try again in %d seconds", secs)
}

func floor(t float64) int {
	if t < 0 {
		return 0
	}
	return int(math.Floor(t))
}
