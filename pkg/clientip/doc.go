// Package clientip resolves the address of the client that sent a request.
//
// Proxy headers are only consulted when listed in Config.TrustedHeaders, in
// that order; the first header holding a valid IP wins. For
// X-Forwarded-For the left-most valid entry is used. Without trusted
// headers, or when none holds a valid IP, the TCP peer address is used.
//
//	r.Use(clientip.New(cfg).Middleware)
//	r.Use(ratelimiter.Middleware(limiter, clientip.Key, log))
package clientip
