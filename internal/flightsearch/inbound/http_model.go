package inbound

import (
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

type FlightsResponse struct {
	Flights []FlightResponse `json:"flights"`
}

type FlightResponse struct {
	Price            float64           `json:"price"`
	CurrencyCode     string            `json:"currency_code"`
	Airline          AirlineResponse   `json:"airline"`
	FreeBaggage      bool              `json:"free_baggage"`
	Outbound         []LegResponse     `json:"outbound"`
	OutboundDuration DurationResponse  `json:"outbound_duration"`
	Return           []LegResponse     `json:"return,omitempty"`
	ReturnDuration   *DurationResponse `json:"return_duration,omitempty"`
}

type AirlineResponse struct {
	IATA string `json:"iata"`
	Name string `json:"name,omitempty"`
}

type LegResponse struct {
	From          AirportResponse  `json:"from"`
	To            AirportResponse  `json:"to"`
	Date          string           `json:"date"`
	DepartureTime string           `json:"departure_time"`
	ArrivalTime   string           `json:"arrival_time"`
	Terminal      string           `json:"terminal,omitempty"`
	FlightNumber  string           `json:"flight_number"`
	TravelClass   string           `json:"travel_class"`
	Duration      DurationResponse `json:"duration"`
}

type DurationResponse struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type AirportResponse struct {
	IATA    string `json:"iata"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type AirportsResponse struct {
	Airports []AirportResponse `json:"airports"`
}

func mapFlightResponses(flights []entity.Flight) []FlightResponse {
	resp := make([]FlightResponse, 0, len(flights))
	for _, flight := range flights {
		fr := FlightResponse{
			Price:            flight.Price,
			CurrencyCode:     flight.CurrencyCode,
			Airline:          AirlineResponse{IATA: flight.Airline.IATA, Name: flight.Airline.Name},
			FreeBaggage:      flight.FreeBaggage,
			Outbound:         mapLegResponses(flight.Outbound),
			OutboundDuration: mapDuration(flight.OutboundDuration),
		}
		if flight.Return != nil {
			fr.Return = mapLegResponses(flight.Return)
			returnDuration := mapDuration(flight.ReturnDuration)
			fr.ReturnDuration = &returnDuration
		}
		resp = append(resp, fr)
	}
	return resp
}

func mapLegResponses(legs []entity.FlightLeg) []LegResponse {
	resp := make([]LegResponse, 0, len(legs))
	for _, leg := range legs {
		resp = append(resp, LegResponse{
			From:          mapAirport(leg.From),
			To:            mapAirport(leg.To),
			Date:          leg.Date.String(),
			DepartureTime: leg.DepartureTime.Format(time.RFC3339),
			ArrivalTime:   leg.ArrivalTime.Format(time.RFC3339),
			Terminal:      leg.Terminal,
			FlightNumber:  leg.FlightNumber,
			TravelClass:   leg.TravelClass,
			Duration:      mapDuration(leg.Duration),
		})
	}
	return resp
}

func mapAirport(a entity.Airport) AirportResponse {
	return AirportResponse{IATA: a.IATA, City: a.City, Name: a.Name, Country: a.Country}
}

func mapDuration(minutes int) DurationResponse {
	return DurationResponse{TotalMinutes: minutes, Formatted: formatDuration(minutes)}
}
