package provider

import (
	"reflect"
	"testing"
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

func TestBuildTravelersDefaultsToSingleAdult(t *testing.T) {
	specs := buildTravelers(nil)

	want := []TravelerSpec{
		{
			ID:           "1",
			TravelerType: "ADULT",
			DateOfBirth:  "1990-01-01",
			Nationality:  "US",
		},
	}
	if !reflect.DeepEqual(specs, want) {
		t.Fatalf("expected %+v, got %+v", want, specs)
	}
}

func TestBuildTravelersSequentialIDsAndFill(t *testing.T) {
	specs := buildTravelers([]entity.Traveler{
		{DateOfBirth: entity.NewDate(1984, time.June, 2), Type: "ADULT", Nationality: "FR"},
		{}, // everything missing
		{DateOfBirth: entity.NewDate(2019, time.November, 30), Type: "CHILD"},
	})

	if len(specs) != 3 {
		t.Fatalf("expected 3 travelers, got %d", len(specs))
	}
	for i, spec := range specs {
		wantID := []string{"1", "2", "3"}[i]
		if spec.ID != wantID {
			t.Fatalf("traveler %d: expected id %q, got %q", i, wantID, spec.ID)
		}
	}
	if specs[0].DateOfBirth != "1984-06-02" || specs[0].Nationality != "FR" {
		t.Fatalf("traveler 1 fields not preserved: %+v", specs[0])
	}
	if specs[1].TravelerType != "ADULT" || specs[1].Nationality != "US" || specs[1].DateOfBirth != "1990-01-01" {
		t.Fatalf("traveler 2 not defaulted: %+v", specs[1])
	}
	if specs[2].TravelerType != "CHILD" || specs[2].DateOfBirth != "2019-11-30" {
		t.Fatalf("traveler 3 fields wrong: %+v", specs[2])
	}
}

func TestOneWayPayload(t *testing.T) {
	b := NewBuilder("USD")
	payload := b.OneWay(entity.OneWayRequest{
		Origin:      "JFK",
		Destination: "LAX",
		Date:        entity.NewDate(2026, time.March, 10),
	}, nil)

	if payload.CurrencyCode != "USD" {
		t.Fatalf("expected USD, got %q", payload.CurrencyCode)
	}
	if len(payload.OriginDestinations) != 1 {
		t.Fatalf("expected 1 origin-destination, got %d", len(payload.OriginDestinations))
	}
	od := payload.OriginDestinations[0]
	if od.ID != "1" || od.OriginLocationCode != "JFK" || od.DestinationLocationCode != "LAX" {
		t.Fatalf("unexpected origin-destination: %+v", od)
	}
	if od.DepartureDateTimeRange.Date != "2026-03-10" {
		t.Fatalf("expected date 2026-03-10, got %q", od.DepartureDateTimeRange.Date)
	}
	if od.DepartureDateTimeRange.DateWindow != "" {
		t.Fatalf("expected no date window, got %q", od.DepartureDateTimeRange.DateWindow)
	}
}

func TestRoundTripFlexibleDatesMarkBothLegs(t *testing.T) {
	b := NewBuilder("USD")
	payload := b.RoundTrip(entity.RoundTripRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		StartDate:     entity.NewDate(2026, time.May, 1),
		EndDate:       entity.NewDate(2026, time.May, 15),
		FlexibleDates: true,
	}, nil)

	if len(payload.OriginDestinations) != 2 {
		t.Fatalf("expected 2 origin-destinations, got %d", len(payload.OriginDestinations))
	}
	for i, od := range payload.OriginDestinations {
		if od.DepartureDateTimeRange.DateWindow != "I3D" {
			t.Fatalf("leg %d: expected I3D window, got %q", i, od.DepartureDateTimeRange.DateWindow)
		}
	}
	ret := payload.OriginDestinations[1]
	if ret.OriginLocationCode != "LHR" || ret.DestinationLocationCode != "JFK" {
		t.Fatalf("return leg not reversed: %+v", ret)
	}
	if ret.DepartureDateTimeRange.Date != "2026-05-15" {
		t.Fatalf("expected return date 2026-05-15, got %q", ret.DepartureDateTimeRange.Date)
	}
}

func TestMultiCityPayloadSequentialLegIDs(t *testing.T) {
	b := NewBuilder("EUR")
	payload := b.MultiCity(entity.MultiCityRequest{
		Legs: []entity.TripLeg{
			{Origin: "JFK", Destination: "LHR", Date: entity.NewDate(2026, time.April, 1)},
			{Origin: "LHR", Destination: "CDG", Date: entity.NewDate(2026, time.April, 5)},
			{Origin: "CDG", Destination: "JFK", Date: entity.NewDate(2026, time.April, 9)},
		},
	}, nil)

	if len(payload.OriginDestinations) != 3 {
		t.Fatalf("expected 3 origin-destinations, got %d", len(payload.OriginDestinations))
	}
	for i, od := range payload.OriginDestinations {
		wantID := []string{"1", "2", "3"}[i]
		if od.ID != wantID {
			t.Fatalf("leg %d: expected id %q, got %q", i, wantID, od.ID)
		}
		if od.DepartureDateTimeRange.DateWindow != "" {
			t.Fatalf("leg %d: multi-city must not carry a date window", i)
		}
	}
}

func TestWithOriginOneWay(t *testing.T) {
	b := NewBuilder("USD")
	payload := b.OneWay(entity.OneWayRequest{
		Origin:      "JFK",
		Destination: "LAX",
		Date:        entity.NewDate(2026, time.March, 10),
	}, nil)

	swapped := payload.WithOrigin("EWR")
	if swapped.OriginDestinations[0].OriginLocationCode != "EWR" {
		t.Fatalf("expected EWR origin, got %q", swapped.OriginDestinations[0].OriginLocationCode)
	}
	if payload.OriginDestinations[0].OriginLocationCode != "JFK" {
		t.Fatal("WithOrigin mutated the base payload")
	}
}

func TestWithOriginRoundTripMovesReturnDestination(t *testing.T) {
	b := NewBuilder("USD")
	payload := b.RoundTrip(entity.RoundTripRequest{
		Origin:      "JFK",
		Destination: "LHR",
		StartDate:   entity.NewDate(2026, time.May, 1),
		EndDate:     entity.NewDate(2026, time.May, 15),
	}, nil)

	swapped := payload.WithOrigin("EWR")
	if swapped.OriginDestinations[0].OriginLocationCode != "EWR" {
		t.Fatalf("expected EWR outbound origin, got %q", swapped.OriginDestinations[0].OriginLocationCode)
	}
	if swapped.OriginDestinations[1].DestinationLocationCode != "EWR" {
		t.Fatalf("expected EWR return destination, got %q", swapped.OriginDestinations[1].DestinationLocationCode)
	}
	if swapped.OriginDestinations[1].OriginLocationCode != "LHR" {
		t.Fatalf("return origin must stay LHR, got %q", swapped.OriginDestinations[1].OriginLocationCode)
	}
}
