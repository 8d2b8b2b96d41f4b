package ratelimiter

import (
	"fmt"
	"time"
)

// Result describes the bucket after a check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // negative when the request was denied
	ResetAt   time.Time // next refill
}

// Allowed reports whether the checked request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the wait until the next refill, or 0 when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket.
type Config struct {
	Capacity       int           `env:"LOGIN_RATE_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"LOGIN_RATE_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"LOGIN_RATE_INTERVAL" envDefault:"1m"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// refill returns the token count and refill mark after applying every full
// interval elapsed since last. Partial intervals carry over.
func (c Config) refill(tokens int, last, now time.Time) (int, time.Time) {
	if now.Before(last) {
		return tokens, last
	}
	// Capped so huge gaps cannot overflow.
	maxIntervals := int64(c.Capacity/c.RefillRate + 1)
	intervals := min(int64(now.Sub(last)/c.RefillInterval), maxIntervals)
	if intervals <= 0 {
		return tokens, last
	}
	tokens = min(tokens+int(intervals)*c.RefillRate, c.Capacity)
	if tokens == c.Capacity {
		return tokens, now
	}
	return tokens, last.Add(time.Duration(intervals) * c.RefillInterval)
}
