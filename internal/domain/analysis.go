package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// LocationAnalysis aggregates the cheapest fares of all attendees to one candidate city.
type LocationAnalysis struct {
	// Location is the candidate city
	Location Location `json:"location"`

	// Results holds one entry per attendee that has a fare to this city
	Results []FlightSearchResult `json:"results"`

	// TotalCost is the sum of all result prices
	TotalCost decimal.Decimal `json:"totalCost"`

	// AverageCostPerPerson is TotalCost divided by the number of results, not attendees
	AverageCostPerPerson decimal.Decimal `json:"averageCostPerPerson"`

	// Currency is the currency of the aggregated prices
	Currency string `json:"currency"`

	// TotalAttendeesSearched is the number of attendees in the meeting
	TotalAttendeesSearched int `json:"totalAttendeesSearched"`
}

// AttendeeCount is the number of attendees with a fare to this city.
func (a LocationAnalysis) AttendeeCount() int {
	return len(a.Results)
}

// HasPartialResults reports whether some attendees have no fare to this city.
func (a LocationAnalysis) HasPartialResults() bool {
	return len(a.Results) < a.TotalAttendeesSearched
}

// MissingFlightCount is the number of attendees without a fare.
func (a LocationAnalysis) MissingFlightCount() int {
	missing := a.TotalAttendeesSearched - len(a.Results)
	if missing < 0 {
		return 0
	}
	return missing
}

// HasConnectionFlights reports whether any selected leg has a stop.
func (a LocationAnalysis) HasConnectionFlights() bool {
	for _, r := range a.Results {
		if r.Outbound.Stops > 0 || r.Return.Stops > 0 {
			return true
		}
	}
	return false
}

// BuildLocationAnalyses groups results by destination airport and ranks cities by total cost.
// Cities without any result are omitted. Ties on total cost are broken by city name.
// A result priced in a different currency than the first result for its city is
// left out, so totals never mix currencies.
func BuildLocationAnalyses(meeting *Meeting, results []FlightSearchResult) []LocationAnalysis {
	byAirport := make(map[string]*LocationAnalysis)
	var order []string

	for _, r := range results {
		key := NormalizeAirportCode(r.Destination.AirportCode)
		a, ok := byAirport[key]
		if !ok {
			a = &LocationAnalysis{
				Location:               r.Destination,
				Currency:               r.Currency,
				TotalAttendeesSearched: len(meeting.Attendees),
			}
			byAirport[key] = a
			order = append(order, key)
		}
		if !strings.EqualFold(r.Currency, a.Currency) {
			continue
		}
		a.Results = append(a.Results, r)
		a.TotalCost = a.TotalCost.Add(r.TotalPrice)
	}

	analyses := make([]LocationAnalysis, 0, len(order))
	for _, key := range order {
		a := byAirport[key]
		a.AverageCostPerPerson = a.TotalCost.Div(decimal.NewFromInt(int64(len(a.Results)))).Round(2)
		analyses = append(analyses, *a)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		if !analyses[i].TotalCost.Equal(analyses[j].TotalCost) {
			return analyses[i].TotalCost.LessThan(analyses[j].TotalCost)
		}
		return analyses[i].Location.City < analyses[j].Location.City
	})

	return analyses
}
