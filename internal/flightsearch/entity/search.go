package entity

// OneWayRequest searches a single directional trip. FlexibleAirports
// lists alternate origin IATA codes, in caller preference order; the
// active profile caps how many are actually queried.
type OneWayRequest struct {
	Origin           string
	Destination      string
	Date             Date
	FlexibleDates    bool
	FlexibleAirports []string
}

type RoundTripRequest struct {
	Origin           string
	Destination      string
	StartDate        Date
	EndDate          Date
	FlexibleDates    bool
	FlexibleAirports []string
}

// MultiCityRequest has no flexible-airport support; legs are queried
// exactly as given.
type MultiCityRequest struct {
	Legs []TripLeg
}

type TripLeg struct {
	Origin      string
	Destination string
	Date        Date
}

// Traveler describes one passenger. Zero-value fields fall back to the
// engine's defaults when the provider query is built.
type Traveler struct {
	DateOfBirth Date
	Type        string
	Nationality string
}
