package entity

import "time"

// Airport identifies one airport from the static directory.
type Airport struct {
	IATA    string
	City    string
	Name    string
	Country string
}

// Airline may carry an empty Name when the response's carrier
// dictionary does not list the code; that is not an error.
type Airline struct {
	IATA string
	Name string
}

// FlightLeg is one physically-flown segment. Duration is the absolute
// difference between arrival and departure, in minutes.
type FlightLeg struct {
	From          Airport
	To            Airport
	Date          Date
	DepartureTime time.Time
	ArrivalTime   time.Time
	Terminal      string
	FlightNumber  string
	TravelClass   string
	Duration      int
}

// Flight is the normalized result unit handed to callers. Return is nil
// for a one-way offer and non-nil iff the offer carried a second
// itinerary; the itinerary-level durations come from the provider's own
// whole-itinerary duration, not from summing legs.
//
// FreeBaggage is a best-effort heuristic over the offer's fare details,
// not a guarantee.
type Flight struct {
	Price            float64
	CurrencyCode     string
	Airline          Airline
	FreeBaggage      bool
	Outbound         []FlightLeg
	OutboundDuration int
	Return           []FlightLeg
	ReturnDuration   int
}
