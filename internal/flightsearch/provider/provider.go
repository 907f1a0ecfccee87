// Package provider speaks to the flight-offer provider: it builds the
// wire request, carries the response envelope and normalizes offers
// into the domain model.
package provider

import (
	"context"
	"errors"
)

// ErrTemporary marks transport failures worth retrying (throttling,
// upstream 5xx); everything else fails the call immediately.
var ErrTemporary = errors.New("temporary provider error")

// Transport executes one offer search. Implementations own auth, retry
// and wire-level timeouts; callers only consume the envelope.
type Transport interface {
	Search(ctx context.Context, payload SearchPayload) (*Response, error)
}
