package ratelimiter

import (
	"golang.org/x/time/rate"
)

// WebhookRateLimiter throttles inbound gateway callbacks so a retry storm
// cannot starve the rest of the API.
type WebhookRateLimiter struct {
	limiter *rate.Limiter
}

func NewWebhookRateLimiter(eventsPerSecond float64, burst int) *WebhookRateLimiter {
	return &WebhookRateLimiter{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
	}
}

func (l *WebhookRateLimiter) Allow() bool {
	return l.limiter.Allow()
}
