package provider

import (
	"encoding/json"
	"strings"
)

// SearchPayload is the provider's request body shape.
type SearchPayload struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []OriginDestination `json:"originDestinations"`
	Travelers          []TravelerSpec      `json:"travelers"`
	Sources            []string            `json:"sources"`
}

type OriginDestination struct {
	ID                      string    `json:"id"`
	OriginLocationCode      string    `json:"originLocationCode"`
	DestinationLocationCode string    `json:"destinationLocationCode"`
	DepartureDateTimeRange  DateRange `json:"departureDateTimeRange"`
}

// DateRange carries the leg date and, when the caller asked for
// flexible dates, the provider's window marker. The marker only asks
// the provider to also consider nearby dates; the queried date itself
// is unchanged.
type DateRange struct {
	Date       string `json:"date"`
	DateWindow string `json:"dateWindow,omitempty"`
}

type TravelerSpec struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
	DateOfBirth  string `json:"dateOfBirth"`
	Nationality  string `json:"nationality,omitempty"`
}

// WithOrigin clones the payload with the first leg's origin replaced;
// for a round trip the return leg's destination moves with it. This is
// how the fan-out controller derives one query per candidate airport.
func (p SearchPayload) WithOrigin(code string) SearchPayload {
	clone := p
	clone.OriginDestinations = make([]OriginDestination, len(p.OriginDestinations))
	copy(clone.OriginDestinations, p.OriginDestinations)
	clone.Travelers = make([]TravelerSpec, len(p.Travelers))
	copy(clone.Travelers, p.Travelers)
	clone.Sources = make([]string, len(p.Sources))
	copy(clone.Sources, p.Sources)

	if len(clone.OriginDestinations) > 0 {
		clone.OriginDestinations[0].OriginLocationCode = code
	}
	if len(clone.OriginDestinations) == 2 {
		clone.OriginDestinations[1].DestinationLocationCode = code
	}
	return clone
}

// Response is the provider envelope: a status code, an offer payload
// kept raw until normalization, the per-response carrier dictionary and
// any structured errors. Keeping Data raw lets the normalizer reject a
// payload that is not an offer array instead of silently accepting it.
type Response struct {
	StatusCode   int             `json:"statusCode"`
	Data         json.RawMessage `json:"data"`
	Dictionaries Dictionaries    `json:"dictionaries"`
	Errors       []ProviderError `json:"errors"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type ProviderError struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
}

// ErrorDetails joins the provider-reported detail strings, one per
// line, for inclusion in error messages.
func (r *Response) ErrorDetails() string {
	details := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		details = append(details, e.Detail)
	}
	return strings.Join(details, "\n")
}

// Offer is one priced, bookable combination of itineraries.
type Offer struct {
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

// Itinerary is one directional journey; Duration is the provider's own
// whole-itinerary ISO-8601 string (PT#H#M).
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ID                  string       `json:"id"`
	Departure           Endpoint     `json:"departure"`
	Arrival             Endpoint     `json:"arrival"`
	CarrierCode         string       `json:"carrierCode"`
	Number              string       `json:"number"`
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID           string       `json:"segmentId"`
	Cabin               string       `json:"cabin"`
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

type CheckedBags struct {
	Quantity int `json:"quantity"`
}
