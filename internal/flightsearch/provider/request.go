package provider

import (
	"strconv"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

// Defaults for travelers the caller left unspecified. The birthdate is
// a fixed constant so the provider's pricing-class assumptions stay
// deterministic across runs and in tests.
const (
	DefaultTravelerType = "ADULT"
	DefaultNationality  = "US"
	DefaultDateOfBirth  = "1990-01-01"
)

// dateWindowFlexible asks the provider to also consider dates within
// three days either side of the requested one.
const dateWindowFlexible = "I3D"

// Builder turns domain search requests into provider payloads. Pure:
// no side effects, no network.
type Builder struct {
	Currency string
}

func NewBuilder(currency string) Builder {
	return Builder{Currency: currency}
}

func (b Builder) OneWay(req entity.OneWayRequest, travelers []entity.Traveler) SearchPayload {
	return SearchPayload{
		CurrencyCode: b.Currency,
		OriginDestinations: []OriginDestination{
			{
				ID:                      "1",
				OriginLocationCode:      req.Origin,
				DestinationLocationCode: req.Destination,
				DepartureDateTimeRange:  dateRange(req.Date, req.FlexibleDates),
			},
		},
		Travelers: buildTravelers(travelers),
		Sources:   []string{"GDS"},
	}
}

func (b Builder) RoundTrip(req entity.RoundTripRequest, travelers []entity.Traveler) SearchPayload {
	return SearchPayload{
		CurrencyCode: b.Currency,
		OriginDestinations: []OriginDestination{
			{
				ID:                      "1",
				OriginLocationCode:      req.Origin,
				DestinationLocationCode: req.Destination,
				DepartureDateTimeRange:  dateRange(req.StartDate, req.FlexibleDates),
			},
			{
				ID:                      "2",
				OriginLocationCode:      req.Destination,
				DestinationLocationCode: req.Origin,
				DepartureDateTimeRange:  dateRange(req.EndDate, req.FlexibleDates),
			},
		},
		Travelers: buildTravelers(travelers),
		Sources:   []string{"GDS"},
	}
}

// MultiCity maps legs 1:1 to origin-destination entries. Flexible
// airports and flexible dates are not supported for multi-city trips.
func (b Builder) MultiCity(req entity.MultiCityRequest, travelers []entity.Traveler) SearchPayload {
	ods := make([]OriginDestination, 0, len(req.Legs))
	for i, leg := range req.Legs {
		ods = append(ods, OriginDestination{
			ID:                      strconv.Itoa(i + 1),
			OriginLocationCode:      leg.Origin,
			DestinationLocationCode: leg.Destination,
			DepartureDateTimeRange:  dateRange(leg.Date, false),
		})
	}

	return SearchPayload{
		CurrencyCode:       b.Currency,
		OriginDestinations: ods,
		Travelers:          buildTravelers(travelers),
		Sources:            []string{"GDS"},
	}
}

func dateRange(d entity.Date, flexible bool) DateRange {
	dr := DateRange{Date: d.String()}
	if flexible {
		dr.DateWindow = dateWindowFlexible
	}
	return dr
}

// buildTravelers assigns sequential ids and fills missing fields from
// the defaults. An empty list becomes exactly one synthetic adult.
func buildTravelers(travelers []entity.Traveler) []TravelerSpec {
	if len(travelers) == 0 {
		return []TravelerSpec{
			{
				ID:           "1",
				TravelerType: DefaultTravelerType,
				DateOfBirth:  DefaultDateOfBirth,
				Nationality:  DefaultNationality,
			},
		}
	}

	specs := make([]TravelerSpec, 0, len(travelers))
	for i, t := range travelers {
		spec := TravelerSpec{
			ID:           strconv.Itoa(i + 1),
			TravelerType: t.Type,
			Nationality:  t.Nationality,
			DateOfBirth:  DefaultDateOfBirth,
		}
		if spec.TravelerType == "" {
			spec.TravelerType = DefaultTravelerType
		}
		if spec.Nationality == "" {
			spec.Nationality = DefaultNationality
		}
		if !t.DateOfBirth.IsZero() {
			spec.DateOfBirth = t.DateOfBirth.String()
		}
		specs = append(specs, spec)
	}
	return specs
}
