// Package ratelimiter implements a token bucket used to throttle login
// attempts and, through Middleware, requests per client address.
//
// A Bucket holds Config and delegates state to a Store. MemoryStore keeps
// buckets in process and suits a single instance; RedisStore runs the same
// algorithm as a Lua script so several instances share one budget.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	res, err := limiter.Allow(ctx, "login:"+digits)
//	if !res.Allowed() {
//		// wait res.RetryAfter()
//	}
//
// Denied attempts do not consume tokens, so a client that keeps retrying is
// let through again as soon as the next refill happens.
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on 429 responses.
package ratelimiter
