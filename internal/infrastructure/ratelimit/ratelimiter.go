package ratelimit

import "context"

// RateLimiter answers whether a caller identified by key may proceed within
// the configured fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
