package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/ejd6617/skybound/internal/flightsearch/airports"
	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

// ResponseError is a provider-reported failure: a non-success envelope
// with its structured error list attached for the fault classifier.
type ResponseError struct {
	StatusCode int
	Errors     []ProviderError
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("provider returned status %d", e.StatusCode)
	details := (&Response{Errors: e.Errors}).ErrorDetails()
	if details != "" {
		msg += "\n" + details
	}
	return msg
}

// Normalizer turns one provider response into the domain Flight slice.
// It holds no per-call state; the carrier dictionary is read from each
// response and never cached across responses.
type Normalizer struct {
	airports *airports.Directory
}

func NewNormalizer(dir *airports.Directory) *Normalizer {
	return &Normalizer{airports: dir}
}

// Normalize rejects an absent response, a non-200 status and a payload
// that is not an offer array; each offer then maps to one Flight, in
// provider order. No sorting, filtering or de-duplication happens here.
func (n *Normalizer) Normalize(resp *Response) ([]entity.Flight, error) {
	offers, err := n.decodeOffers(resp)
	if err != nil {
		return nil, err
	}

	flights := make([]entity.Flight, 0, len(offers))
	for i, offer := range offers {
		flight, err := n.normalizeOffer(offer, resp.Dictionaries.Carriers)
		if err != nil {
			return nil, fmt.Errorf("offer %d: %w", i, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func (n *Normalizer) decodeOffers(resp *Response) ([]Offer, error) {
	if resp == nil {
		return nil, fmt.Errorf("provider returned no response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Errors: resp.Errors}
	}

	payload := bytes.TrimSpace(resp.Data)
	if len(payload) == 0 || payload[0] != '[' {
		return nil, fmt.Errorf("provider payload is not an offer array")
	}

	var offers []Offer
	if err := json.Unmarshal(payload, &offers); err != nil {
		return nil, fmt.Errorf("provider payload decode: %w", err)
	}
	return offers, nil
}

func (n *Normalizer) normalizeOffer(offer Offer, carriers map[string]string) (entity.Flight, error) {
	if len(offer.Itineraries) == 0 {
		return entity.Flight{}, fmt.Errorf("offer has no itineraries")
	}

	fares := fareBySegment(offer)

	outbound, err := n.normalizeLegs(offer.Itineraries[0].Segments, fares)
	if err != nil {
		return entity.Flight{}, err
	}

	price, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil || price <= 0 {
		return entity.Flight{}, fmt.Errorf("offer price %q is not a positive amount", offer.Price.Total)
	}

	flight := entity.Flight{
		Price:            price,
		CurrencyCode:     offer.Price.Currency,
		Airline:          resolveAirline(offer, carriers),
		FreeBaggage:      hasFreeBaggage(offer),
		Outbound:         outbound,
		OutboundDuration: parseISODuration(offer.Itineraries[0].Duration),
	}

	// One-way vs round-trip is decided by itinerary count alone, never
	// by the request type: some responses collapse a round trip into a
	// single itinerary.
	if len(offer.Itineraries) >= 2 {
		ret, err := n.normalizeLegs(offer.Itineraries[1].Segments, fares)
		if err != nil {
			return entity.Flight{}, err
		}
		flight.Return = ret
		flight.ReturnDuration = parseISODuration(offer.Itineraries[1].Duration)
	}

	return flight, nil
}

// fareBySegment indexes the first traveler-pricing entry's fare details
// by segment id. Segments absent from the map default to economy later
// rather than failing.
func fareBySegment(offer Offer) map[string]FareDetail {
	fares := make(map[string]FareDetail)
	if len(offer.TravelerPricings) == 0 {
		return fares
	}
	for _, fd := range offer.TravelerPricings[0].FareDetailsBySegment {
		fares[fd.SegmentID] = fd
	}
	return fares
}

func (n *Normalizer) normalizeLegs(segments []Segment, fares map[string]FareDetail) ([]entity.FlightLeg, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("itinerary has no segments")
	}

	legs := make([]entity.FlightLeg, 0, len(segments))
	for _, seg := range segments {
		leg, err := n.normalizeLeg(seg, fares)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

func (n *Normalizer) normalizeLeg(seg Segment, fares map[string]FareDetail) (entity.FlightLeg, error) {
	departAt, err := parseSegmentTime(seg.Departure.At)
	if err != nil {
		return entity.FlightLeg{}, fmt.Errorf("segment %s departure time: %w", seg.ID, err)
	}
	arriveAt, err := parseSegmentTime(seg.Arrival.At)
	if err != nil {
		return entity.FlightLeg{}, fmt.Errorf("segment %s arrival time: %w", seg.ID, err)
	}

	from, err := n.airports.Resolve(seg.Departure.IATACode)
	if err != nil {
		return entity.FlightLeg{}, err
	}
	to, err := n.airports.Resolve(seg.Arrival.IATACode)
	if err != nil {
		return entity.FlightLeg{}, err
	}

	travelClass := "ECONOMY"
	if fd, ok := fares[seg.ID]; ok && fd.Cabin != "" {
		travelClass = fd.Cabin
	}

	// Absolute difference from the parsed timestamps, not the
	// provider's per-leg duration field; the absolute value guards
	// against reversed timestamps in the raw data.
	duration := int(arriveAt.Sub(departAt).Minutes())
	if duration < 0 {
		duration = -duration
	}

	return entity.FlightLeg{
		From:          from,
		To:            to,
		Date:          entity.DateOf(departAt),
		DepartureTime: departAt,
		ArrivalTime:   arriveAt,
		Terminal:      seg.Departure.Terminal,
		FlightNumber:  seg.CarrierCode + seg.Number,
		TravelClass:   travelClass,
		Duration:      duration,
	}, nil
}

func parseSegmentTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", value)
}

// resolveAirline takes the offer's first validating airline code and
// resolves its display name from this response's carrier dictionary.
func resolveAirline(offer Offer, carriers map[string]string) entity.Airline {
	airline := entity.Airline{}
	if len(offer.ValidatingAirlineCodes) > 0 {
		airline.IATA = offer.ValidatingAirlineCodes[0]
		airline.Name = carriers[airline.IATA]
	}
	return airline
}

// hasFreeBaggage reports whether any fare detail, or failing that any
// segment, includes a checked bag. Best-effort; providers that omit
// baggage data normalize to false.
func hasFreeBaggage(offer Offer) bool {
	for _, tp := range offer.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.IncludedCheckedBags != nil && fd.IncludedCheckedBags.Quantity > 0 {
				return true
			}
		}
	}
	for _, it := range offer.Itineraries {
		for _, seg := range it.Segments {
			if seg.IncludedCheckedBags != nil && seg.IncludedCheckedBags.Quantity > 0 {
				return true
			}
		}
	}
	return false
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// parseISODuration reads the provider's PT#H#M itinerary duration into
// minutes; either group may be absent, and an unparseable or empty
// string is 0.
func parseISODuration(value string) int {
	matches := isoDurationRe.FindStringSubmatch(value)
	if matches == nil {
		return 0
	}
	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes
}
