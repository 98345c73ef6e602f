package ratelimit

import "time"

// RateLimiter bounds how many requests a client key may make per window.
type RateLimiter interface {
	Allow(key string, limit int, window time.Duration) (bool, error)
}
