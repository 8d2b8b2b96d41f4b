// Package redis connects to Redis with retries and exposes a readiness check.
//
// Redis is optional for the service: when REDIS_URL is empty the login
// limiter keeps its buckets in memory. When it is set, Connect parses the
// URL, pings the server up to RetryAttempts times and returns a ready
// *redis.Client that backs ratelimiter.RedisStore.
package redis
