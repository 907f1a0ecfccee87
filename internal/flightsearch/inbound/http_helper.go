package inbound

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
	"github.com/ejd6617/skybound/internal/pkg/pkgerror"
)

func parseOneWayInput(r *http.Request) (entity.OneWayRequest, []entity.Traveler, error) {
	q := r.URL.Query()

	origin, destination, err := parseRoute(q)
	if err != nil {
		return entity.OneWayRequest{}, nil, err
	}

	date, err := parseDateParam(q, "date")
	if err != nil {
		return entity.OneWayRequest{}, nil, err
	}

	travelers, err := parseTravelers(q.Get("travelers"))
	if err != nil {
		return entity.OneWayRequest{}, nil, err
	}

	return entity.OneWayRequest{
		Origin:           origin,
		Destination:      destination,
		Date:             date,
		FlexibleDates:    q.Get("flexibleDates") == "true",
		FlexibleAirports: parseAirportList(q.Get("flexibleAirports")),
	}, travelers, nil
}

func parseRoundTripInput(r *http.Request) (entity.RoundTripRequest, []entity.Traveler, error) {
	q := r.URL.Query()

	origin, destination, err := parseRoute(q)
	if err != nil {
		return entity.RoundTripRequest{}, nil, err
	}

	startDate, err := parseDateParam(q, "startDate")
	if err != nil {
		return entity.RoundTripRequest{}, nil, err
	}
	endDate, err := parseDateParam(q, "endDate")
	if err != nil {
		return entity.RoundTripRequest{}, nil, err
	}

	travelers, err := parseTravelers(q.Get("travelers"))
	if err != nil {
		return entity.RoundTripRequest{}, nil, err
	}

	return entity.RoundTripRequest{
		Origin:           origin,
		Destination:      destination,
		StartDate:        startDate,
		EndDate:          endDate,
		FlexibleDates:    q.Get("flexibleDates") == "true",
		FlexibleAirports: parseAirportList(q.Get("flexibleAirports")),
	}, travelers, nil
}

type multiCityBody struct {
	Legs []struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
		Date        string `json:"date"`
	} `json:"legs"`
	Travelers []travelerBody `json:"travelers"`
}

type travelerBody struct {
	DateOfBirth string `json:"dateOfBirth"`
	Type        string `json:"type"`
	Nationality string `json:"nationality"`
}

func parseMultiCityInput(r *http.Request) (entity.MultiCityRequest, []entity.Traveler, error) {
	var body multiCityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return entity.MultiCityRequest{}, nil, pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}
	if len(body.Legs) == 0 {
		return entity.MultiCityRequest{}, nil, pkgerror.NewBusiness("at least one leg is required", pkgerror.CodeInvalidInput)
	}

	legs := make([]entity.TripLeg, 0, len(body.Legs))
	for i, leg := range body.Legs {
		origin := normalizeCode(leg.Origin)
		destination := normalizeCode(leg.Destination)
		if origin == "" || destination == "" {
			return entity.MultiCityRequest{}, nil, pkgerror.NewBusiness(fmt.Sprintf("leg %d: origin and destination are required", i+1), pkgerror.CodeInvalidInput)
		}
		date, err := entity.ParseDate(leg.Date)
		if err != nil {
			return entity.MultiCityRequest{}, nil, pkgerror.NewBusiness(fmt.Sprintf("leg %d: invalid date", i+1), pkgerror.CodeInvalidInput)
		}
		legs = append(legs, entity.TripLeg{Origin: origin, Destination: destination, Date: date})
	}

	travelers, err := mapTravelerBodies(body.Travelers)
	if err != nil {
		return entity.MultiCityRequest{}, nil, err
	}

	return entity.MultiCityRequest{Legs: legs}, travelers, nil
}

func parseRoute(q url.Values) (string, string, error) {
	origin := normalizeCode(q.Get("origin"))
	destination := normalizeCode(q.Get("destination"))
	if origin == "" || destination == "" {
		return "", "", pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}
	return origin, destination, nil
}

func parseDateParam(q url.Values, key string) (entity.Date, error) {
	value := strings.TrimSpace(q.Get(key))
	if value == "" {
		return entity.Date{}, pkgerror.NewBusiness(key+" is required", pkgerror.CodeInvalidInput)
	}
	date, err := entity.ParseDate(value)
	if err != nil {
		return entity.Date{}, pkgerror.NewBusiness("invalid "+key, pkgerror.CodeInvalidInput)
	}
	return date, nil
}

func parseAirportList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := normalizeCode(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// parseTravelers reads the optional travelers query parameter, a JSON
// array of {dateOfBirth, type, nationality}. Absent means the engine's
// default adult applies.
func parseTravelers(value string) ([]entity.Traveler, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var bodies []travelerBody
	if err := json.Unmarshal([]byte(value), &bodies); err != nil {
		return nil, pkgerror.NewBusiness("invalid travelers", pkgerror.CodeInvalidInput)
	}
	return mapTravelerBodies(bodies)
}

func mapTravelerBodies(bodies []travelerBody) ([]entity.Traveler, error) {
	travelers := make([]entity.Traveler, 0, len(bodies))
	for i, b := range bodies {
		traveler := entity.Traveler{
			Type:        strings.ToUpper(strings.TrimSpace(b.Type)),
			Nationality: strings.ToUpper(strings.TrimSpace(b.Nationality)),
		}
		if b.DateOfBirth != "" {
			dob, err := entity.ParseDate(b.DateOfBirth)
			if err != nil {
				return nil, pkgerror.NewBusiness(fmt.Sprintf("traveler %d: invalid dateOfBirth", i+1), pkgerror.CodeInvalidInput)
			}
			traveler.DateOfBirth = dob
		}
		travelers = append(travelers, traveler)
	}
	return travelers, nil
}

func normalizeCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
