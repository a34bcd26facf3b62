package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestComputeOptimizationStats(t *testing.T) {
	tests := []struct {
		name      string
		attendees []Attendee
		locations int
		want      OptimizationStats
	}{
		{
			name: "shared airports reduce calls",
			attendees: []Attendee{
				{Name: "A", HomeAirport: "SFO"},
				{Name: "B", HomeAirport: "sfo"},
				{Name: "C", HomeAirport: "SFO"},
				{Name: "D", HomeAirport: "JFK"},
				{Name: "E", HomeAirport: "ORD"},
			},
			locations: 4,
			want: OptimizationStats{
				TotalAttendees:    5,
				UniqueAirports:    3,
				TotalLocations:    4,
				StandardAPICalls:  20,
				OptimizedAPICalls: 12,
				APICallsSaved:     8,
				EfficiencyPercent: 40,
				AirportGroups: []AirportGroup{
					{Airport: "JFK", AttendeeNames: []string{"D"}},
					{Airport: "ORD", AttendeeNames: []string{"E"}},
					{Airport: "SFO", AttendeeNames: []string{"A", "B", "C"}},
				},
			},
		},
		{
			name:      "all distinct airports save nothing",
			attendees: []Attendee{{Name: "A", HomeAirport: "LAX"}, {Name: "B", HomeAirport: "ORD"}},
			locations: 2,
			want: OptimizationStats{
				TotalAttendees:    2,
				UniqueAirports:    2,
				TotalLocations:    2,
				StandardAPICalls:  4,
				OptimizedAPICalls: 4,
				APICallsSaved:     0,
				EfficiencyPercent: 0,
				AirportGroups: []AirportGroup{
					{Airport: "LAX", AttendeeNames: []string{"A"}},
					{Airport: "ORD", AttendeeNames: []string{"B"}},
				},
			},
		},
		{
			name:      "no locations gives zero efficiency",
			attendees: []Attendee{{Name: "A", HomeAirport: "LAX"}, {Name: "B", HomeAirport: "LAX"}},
			locations: 0,
			want: OptimizationStats{
				TotalAttendees: 2,
				UniqueAirports: 1,
				AirportGroups:  []AirportGroup{{Airport: "LAX", AttendeeNames: []string{"A", "B"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOptimizationStats(tt.attendees, make([]Location, tt.locations))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeOptimizationStats() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, got.StandardAPICalls-got.OptimizedAPICalls, got.APICallsSaved)
		})
	}
}

func TestAirportGroup_Description(t *testing.T) {
	assert.Equal(t, "SFO: 2 attendees (Ann, Bo)", AirportGroup{Airport: "SFO", AttendeeNames: []string{"Ann", "Bo"}}.Description())
	assert.Equal(t, "JFK: 1 attendee (Cy)", AirportGroup{Airport: "JFK", AttendeeNames: []string{"Cy"}}.Description())
}

func TestOptimizationStats_Summary(t *testing.T) {
	s := OptimizationStats{TotalAttendees: 5, UniqueAirports: 3, TotalLocations: 4, StandardAPICalls: 20, OptimizedAPICalls: 12, APICallsSaved: 8, EfficiencyPercent: 40}
	assert.Equal(t, "5 attendees from 3 airports to 4 locations: 12 API calls instead of 20 (saved 8, 40% more efficient)", s.Summary())
}
