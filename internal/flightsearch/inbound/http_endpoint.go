package inbound

import (
	"context"
	"net/http"

	"github.com/ejd6617/skybound/internal/flightsearch/airports"
)

const autocompleteLimit = 10

type HTTPEndpoint struct {
	uc       uc
	airports *airports.Directory
}

func (h *HTTPEndpoint) OneWay(ctx context.Context, r *http.Request) (any, error) {
	req, travelers, err := parseOneWayInput(r)
	if err != nil {
		return nil, err
	}

	flights, err := h.uc.SearchOneWay(ctx, req, travelers)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{Flights: mapFlightResponses(flights)}, nil
}

func (h *HTTPEndpoint) RoundTrip(ctx context.Context, r *http.Request) (any, error) {
	req, travelers, err := parseRoundTripInput(r)
	if err != nil {
		return nil, err
	}

	flights, err := h.uc.SearchRoundTrip(ctx, req, travelers)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{Flights: mapFlightResponses(flights)}, nil
}

func (h *HTTPEndpoint) MultiCity(ctx context.Context, r *http.Request) (any, error) {
	req, travelers, err := parseMultiCityInput(r)
	if err != nil {
		return nil, err
	}

	flights, err := h.uc.SearchMultiCity(ctx, req, travelers)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{Flights: mapFlightResponses(flights)}, nil
}

func (h *HTTPEndpoint) Airports(_ context.Context, r *http.Request) (any, error) {
	query := r.URL.Query().Get("query")

	matches := h.airports.Search(query, autocompleteLimit)
	resp := make([]AirportResponse, 0, len(matches))
	for _, a := range matches {
		resp = append(resp, AirportResponse{
			IATA:    a.IATA,
			City:    a.City,
			Name:    a.Name,
			Country: a.Country,
		})
	}
	return AirportsResponse{Airports: resp}, nil
}
