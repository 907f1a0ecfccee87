package inbound

import (
	"context"

	"github.com/ejd6617/skybound/internal/flightsearch/airports"
	"github.com/ejd6617/skybound/internal/flightsearch/entity"
	"github.com/ejd6617/skybound/internal/pkg/pkgrouter"
)

type uc interface {
	SearchOneWay(ctx context.Context, req entity.OneWayRequest, travelers []entity.Traveler) ([]entity.Flight, error)
	SearchRoundTrip(ctx context.Context, req entity.RoundTripRequest, travelers []entity.Traveler) ([]entity.Flight, error)
	SearchMultiCity(ctx context.Context, req entity.MultiCityRequest, travelers []entity.Traveler) ([]entity.Flight, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, dir *airports.Directory) {
	end := &HTTPEndpoint{uc: uc, airports: dir}

	r.GET("/flights/oneway", end.OneWay)
	r.GET("/flights/roundtrip", end.RoundTrip)
	r.POST("/flights/multicity", end.MultiCity)
	r.GET("/airports", end.Airports)
}
