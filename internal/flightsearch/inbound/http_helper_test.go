package inbound

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

func TestParseOneWayInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/flights/oneway?origin=jfk&destination=lax&date=2026-03-10&flexibleDates=true&flexibleAirports=jfk,ewr", nil)

	req, travelers, err := parseOneWayInput(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Origin != "JFK" || req.Destination != "LAX" {
		t.Fatalf("codes not normalized: %+v", req)
	}
	if req.Date != entity.NewDate(2026, time.March, 10) {
		t.Fatalf("unexpected date: %+v", req.Date)
	}
	if !req.FlexibleDates {
		t.Fatal("flexibleDates not parsed")
	}
	if len(req.FlexibleAirports) != 2 || req.FlexibleAirports[0] != "JFK" || req.FlexibleAirports[1] != "EWR" {
		t.Fatalf("unexpected flexible airports: %v", req.FlexibleAirports)
	}
	if travelers != nil {
		t.Fatalf("expected no travelers, got %v", travelers)
	}
}

func TestParseOneWayInputValidation(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"missing origin", "/flights/oneway?destination=LAX&date=2026-03-10"},
		{"missing date", "/flights/oneway?origin=JFK&destination=LAX"},
		{"bad date", "/flights/oneway?origin=JFK&destination=LAX&date=tomorrow"},
		{"bad travelers", "/flights/oneway?origin=JFK&destination=LAX&date=2026-03-10&travelers=notjson"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			if _, _, err := parseOneWayInput(r); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseOneWayInputTravelers(t *testing.T) {
	travelersJSON := `[{"dateOfBirth":"1984-06-02","type":"adult","nationality":"fr"},{}]`
	r := httptest.NewRequest("GET", "/flights/oneway?origin=JFK&destination=LAX&date=2026-03-10&travelers="+strings.ReplaceAll(travelersJSON, " ", ""), nil)

	_, travelers, err := parseOneWayInput(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(travelers) != 2 {
		t.Fatalf("expected 2 travelers, got %d", len(travelers))
	}
	if travelers[0].Type != "ADULT" || travelers[0].Nationality != "FR" {
		t.Fatalf("traveler fields not normalized: %+v", travelers[0])
	}
	if travelers[0].DateOfBirth != entity.NewDate(1984, time.June, 2) {
		t.Fatalf("unexpected birthdate: %+v", travelers[0].DateOfBirth)
	}
	if !travelers[1].DateOfBirth.IsZero() {
		t.Fatal("empty traveler must keep zero birthdate")
	}
}

func TestParseRoundTripInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/flights/roundtrip?origin=JFK&destination=LHR&startDate=2026-05-01&endDate=2026-05-15", nil)

	req, _, err := parseRoundTripInput(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.StartDate.String() != "2026-05-01" || req.EndDate.String() != "2026-05-15" {
		t.Fatalf("unexpected dates: %+v", req)
	}
}

func TestParseMultiCityInput(t *testing.T) {
	body := `{
		"legs": [
			{"origin": "jfk", "destination": "lhr", "date": "2026-04-01"},
			{"origin": "lhr", "destination": "cdg", "date": "2026-04-05"}
		],
		"travelers": [{"type": "ADULT"}]
	}`
	r := httptest.NewRequest("POST", "/flights/multicity", strings.NewReader(body))

	req, travelers, err := parseMultiCityInput(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(req.Legs))
	}
	if req.Legs[0].Origin != "JFK" || req.Legs[1].Destination != "CDG" {
		t.Fatalf("legs not normalized: %+v", req.Legs)
	}
	if len(travelers) != 1 || travelers[0].Type != "ADULT" {
		t.Fatalf("unexpected travelers: %+v", travelers)
	}
}

func TestParseMultiCityInputValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"no legs", `{"legs":[]}`},
		{"missing codes", `{"legs":[{"origin":"","destination":"LHR","date":"2026-04-01"}]}`},
		{"bad date", `{"legs":[{"origin":"JFK","destination":"LHR","date":"soon"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/flights/multicity", strings.NewReader(tc.body))
			if _, _, err := parseMultiCityInput(r); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{45, "45m"},
		{120, "2h"},
		{375, "6h 15m"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.minutes); got != tc.want {
			t.Fatalf("formatDuration(%d): expected %q, got %q", tc.minutes, tc.want, got)
		}
	}
}
