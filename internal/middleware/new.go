package middleware

import (
	"smart-task-manager/pkg/log"
)

// Middleware bundles the gin middlewares of the HTTP server.
type Middleware struct {
	l        log.Logger
	verifier TokenVerifier
	limiter  *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, verifier TokenVerifier, requestsPerMin, burst int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin, burst)
	}
	return Middleware{
		l:        l,
		verifier: verifier,
		limiter:  rl,
	}
}
