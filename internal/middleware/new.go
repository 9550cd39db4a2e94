package middleware

import (
	"golang.org/x/time/rate"

	"daybalance/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerMin bounds coach requests; a
// zero or negative value disables the limiter.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
