package middleware

import (
	pkgLog "collab-command-engine/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers of the HTTP server.
type Middleware struct {
	l        pkgLog.Logger
	limiters *clientLimiters
}

// New creates the middleware set. ratePerMin caps parse requests per
// client per minute; zero or negative disables the limiter.
func New(l pkgLog.Logger, ratePerMin int) Middleware {
	var limiters *clientLimiters
	if ratePerMin > 0 {
		limiters = newClientLimiters(ratePerMin)
	}
	return Middleware{
		l:        l,
		limiters: limiters,
	}
}
