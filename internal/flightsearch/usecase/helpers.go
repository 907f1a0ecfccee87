package usecase

import (
	"encoding/json"
	"strings"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
	"github.com/ejd6617/skybound/internal/flightsearch/provider"
)

// cacheKey derives the result-cache key from the wire payload plus the
// flexible-airport list, so requests differing only in fan-out
// candidates never share an entry.
func cacheKey(payload provider.SearchPayload, flexibleAirports []string) string {
	encoded, err := json.Marshal(payload)
	if err != nil {
		// SearchPayload is plain data; Marshal cannot fail on it.
		return ""
	}

	codes := make([]string, 0, len(flexibleAirports))
	for _, code := range flexibleAirports {
		codes = append(codes, strings.ToUpper(strings.TrimSpace(code)))
	}

	return string(encoded) + "|" + strings.Join(codes, ",")
}

// CloneFlights is the cache's copy hook: cached slices must not alias
// what callers receive.
func CloneFlights(flights []entity.Flight) []entity.Flight {
	if flights == nil {
		return nil
	}
	clone := make([]entity.Flight, len(flights))
	copy(clone, flights)
	return clone
}
