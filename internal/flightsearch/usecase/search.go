package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
	"github.com/ejd6617/skybound/internal/flightsearch/provider"
)

// SearchOneWay queries the provider for a one-way trip. When the
// request allows flexible origin airports, one query runs per candidate
// under the fan-out policy and the branch results are concatenated.
func (u *Usecase) SearchOneWay(ctx context.Context, req entity.OneWayRequest, travelers []entity.Traveler) ([]entity.Flight, error) {
	payload := u.builder.OneWay(req, travelers)
	return u.search(ctx, payload, req.FlexibleAirports)
}

func (u *Usecase) SearchRoundTrip(ctx context.Context, req entity.RoundTripRequest, travelers []entity.Traveler) ([]entity.Flight, error) {
	payload := u.builder.RoundTrip(req, travelers)
	return u.search(ctx, payload, req.FlexibleAirports)
}

// SearchMultiCity issues exactly one query; multi-city trips have no
// flexible-airport fan-out.
func (u *Usecase) SearchMultiCity(ctx context.Context, req entity.MultiCityRequest, travelers []entity.Traveler) ([]entity.Flight, error) {
	if len(req.Legs) == 0 {
		return nil, fmt.Errorf("multi-city request has no legs")
	}
	payload := u.builder.MultiCity(req, travelers)
	return u.searchCached(ctx, payload, nil, func(ctx context.Context) ([]entity.Flight, error) {
		return u.single(ctx, payload)
	})
}

func (u *Usecase) search(ctx context.Context, payload provider.SearchPayload, flexibleAirports []string) ([]entity.Flight, error) {
	return u.searchCached(ctx, payload, flexibleAirports, func(ctx context.Context) ([]entity.Flight, error) {
		if len(flexibleAirports) == 0 {
			return u.single(ctx, payload)
		}
		return u.fanOutSearch(ctx, payload, flexibleAirports), nil
	})
}

// fanOutSearch runs one branch per candidate origin under the profile's
// concurrency width. A branch failure is classified, logged and yields
// an empty result; it never aborts the other branches. The join waits
// for every branch to settle, and the merged slice carries no
// cross-branch ordering guarantee. Duplicate offers across neighboring
// airports are surfaced as-is.
func (u *Usecase) fanOutSearch(ctx context.Context, payload provider.SearchPayload, candidates []string) []entity.Flight {
	if u.fanOut.MaxAirports > 0 && len(candidates) > u.fanOut.MaxAirports {
		candidates = candidates[:u.fanOut.MaxAirports]
	}

	results := make([][]entity.Flight, len(candidates))

	group := new(errgroup.Group)
	if u.fanOut.Concurrency > 0 {
		group.SetLimit(u.fanOut.Concurrency)
	}

	for i, code := range candidates {
		i, code := i, code
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					u.classifyFault(ctx, code, r)
				}
			}()

			flights, err := u.single(ctx, payload.WithOrigin(code))
			if err != nil {
				u.classifyFault(ctx, code, err)
				return nil
			}
			results[i] = flights
			return nil
		})
	}
	_ = group.Wait() // branches never return errors

	merged := make([]entity.Flight, 0)
	for _, branch := range results {
		merged = append(merged, branch...)
	}
	return merged
}

func (u *Usecase) single(ctx context.Context, payload provider.SearchPayload) ([]entity.Flight, error) {
	resp, err := u.transport.Search(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}

	flights, err := u.normalizer.Normalize(resp)
	if err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}
	return flights, nil
}

func (u *Usecase) searchCached(ctx context.Context, payload provider.SearchPayload, flexibleAirports []string, fetch func(context.Context) ([]entity.Flight, error)) ([]entity.Flight, error) {
	if u.cache == nil {
		return fetch(ctx)
	}

	key := cacheKey(payload, flexibleAirports)
	if flights, ok := u.cache.Get(key); ok {
		return flights, nil
	}

	flights, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	u.cache.Set(key, flights, u.cacheTTL)
	return flights, nil
}
