package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meetingcost/meeting-location-search/internal/domain"
)

var (
	testStart = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

// createTestQuote creates a round-trip quote between two airports.
// stops adds connections to the outbound leg.
func createTestQuote(id, from, to, price string, carrier string, stops int) domain.FlightQuote {
	depart := testStart.Add(8 * time.Hour)

	outbound := domain.Itinerary{Duration: "PT3H"}
	point := from
	for i := 0; i <= stops; i++ {
		next := to
		if i < stops {
			next = "DEN"
		}
		outbound.Segments = append(outbound.Segments, domain.Segment{
			Departure:    domain.SegmentPoint{AirportCode: point, At: depart.Add(time.Duration(i) * 2 * time.Hour)},
			Arrival:      domain.SegmentPoint{AirportCode: next, At: depart.Add(time.Duration(i)*2*time.Hour + time.Hour)},
			CarrierCode:  carrier,
			FlightNumber: "10" + id,
		})
		point = next
	}

	ret := domain.Itinerary{
		Duration: "PT3H10M",
		Segments: []domain.Segment{{
			Departure:    domain.SegmentPoint{AirportCode: to, At: testStart.AddDate(0, 0, 3).Add(17 * time.Hour)},
			Arrival:      domain.SegmentPoint{AirportCode: from, At: testStart.AddDate(0, 0, 3).Add(20 * time.Hour)},
			CarrierCode:  carrier,
			FlightNumber: "20" + id,
		}},
	}

	return domain.FlightQuote{
		ID:          id,
		Price:       domain.Money{Amount: decimal.RequireFromString(price), Currency: "USD"},
		Itineraries: []domain.Itinerary{outbound, ret},
	}
}

// createTestMeeting creates a three-day meeting starting on testStart with one travel day either side.
func createTestMeeting(attendees []domain.Attendee, locations []domain.Location) *domain.Meeting {
	return &domain.Meeting{
		ID:               "m-1",
		Name:             "Offsite",
		StartDate:        testStart,
		NumberOfDays:     3,
		BufferDaysBefore: 1,
		BufferDaysAfter:  1,
		Attendees:        attendees,
		Locations:        locations,
	}
}

func attendee(name, airport string) domain.Attendee {
	return domain.Attendee{ID: name, Name: name, HomeAirport: airport}
}

func location(city, airport string) domain.Location {
	return domain.Location{City: city, AirportCode: airport, CountryCode: "US"}
}

func routeResult(origin string, quotes ...domain.FlightQuote) *domain.RouteResult {
	return &domain.RouteResult{Quotes: quotes, OriginalAirport: origin, UsedAirport: origin}
}
