package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AirportGroup is the set of attendees sharing a home airport.
type AirportGroup struct {
	Airport       string   `json:"airport"`
	AttendeeNames []string `json:"attendeeNames"`
}

// AttendeeCount is the number of attendees in the group.
func (g AirportGroup) AttendeeCount() int {
	return len(g.AttendeeNames)
}

// Description renders "SFO: 2 attendees (Alice, Bob)".
func (g AirportGroup) Description() string {
	noun := "attendees"
	if len(g.AttendeeNames) == 1 {
		noun = "attendee"
	}
	return fmt.Sprintf("%s: %d %s (%s)", g.Airport, len(g.AttendeeNames), noun, strings.Join(g.AttendeeNames, ", "))
}

// OptimizationStats reports how many provider queries airport grouping avoids.
type OptimizationStats struct {
	TotalAttendees    int            `json:"totalAttendees"`
	UniqueAirports    int            `json:"uniqueAirports"`
	TotalLocations    int            `json:"totalLocations"`
	StandardAPICalls  int            `json:"standardApiCalls"`
	OptimizedAPICalls int            `json:"optimizedApiCalls"`
	APICallsSaved     int            `json:"apiCallsSaved"`
	EfficiencyPercent int            `json:"efficiencyPercentage"`
	AirportGroups     []AirportGroup `json:"airportGroups"`
}

// ComputeOptimizationStats derives the query savings of grouping attendees by home airport.
// Airports are compared after uppercasing. Groups are sorted by airport code.
func ComputeOptimizationStats(attendees []Attendee, locations []Location) OptimizationStats {
	groups := GroupByAirport(attendees)

	airportGroups := make([]AirportGroup, 0, len(groups))
	for airport, members := range groups {
		names := make([]string, len(members))
		for i, m := range members {
			names[i] = m.Name
		}
		airportGroups = append(airportGroups, AirportGroup{Airport: airport, AttendeeNames: names})
	}
	sort.Slice(airportGroups, func(i, j int) bool {
		return airportGroups[i].Airport < airportGroups[j].Airport
	})

	standard := len(attendees) * len(locations)
	optimized := len(groups) * len(locations)
	saved := standard - optimized

	efficiency := 0
	if saved > 0 {
		efficiency = int(math.Round(float64(saved) / float64(standard) * 100))
	}

	return OptimizationStats{
		TotalAttendees:    len(attendees),
		UniqueAirports:    len(groups),
		TotalLocations:    len(locations),
		StandardAPICalls:  standard,
		OptimizedAPICalls: optimized,
		APICallsSaved:     saved,
		EfficiencyPercent: efficiency,
		AirportGroups:     airportGroups,
	}
}

// Summary is a one-line human description of the savings.
func (s OptimizationStats) Summary() string {
	return fmt.Sprintf("%d attendees from %d airports to %d locations: %d API calls instead of %d (saved %d, %d%% more efficient)",
		s.TotalAttendees, s.UniqueAirports, s.TotalLocations,
		s.OptimizedAPICalls, s.StandardAPICalls, s.APICallsSaved, s.EfficiencyPercent)
}

// GroupByAirport groups attendees by uppercased home airport, preserving input order within a group.
func GroupByAirport(attendees []Attendee) map[string][]Attendee {
	groups := make(map[string][]Attendee)
	for _, a := range attendees {
		key := NormalizeAirportCode(a.HomeAirport)
		groups[key] = append(groups[key], a)
	}
	return groups
}
