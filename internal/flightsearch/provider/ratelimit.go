package provider

import (
	"context"

	"golang.org/x/time/rate"
)

type throttledTransport struct {
	next    Transport
	limiter *rate.Limiter
}

// NewThrottledTransport caps the request rate against the provider.
// The constrained profile relies on this to respect the low-quota
// downstream API.
func NewThrottledTransport(next Transport, rps float64, burst int) Transport {
	if burst < 1 {
		burst = 1
	}
	return &throttledTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *throttledTransport) Search(ctx context.Context, payload SearchPayload) (*Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.next.Search(ctx, payload)
}
