package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeeting_TravelDates(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		days      int
		before    int
		after     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "single day without buffers",
			days:      1,
			wantStart: start,
			wantEnd:   start,
		},
		{
			name:      "three days with buffers",
			days:      3,
			before:    1,
			after:     2,
			wantStart: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "buffer crosses month boundary",
			days:      2,
			before:    12,
			wantStart: time.Date(2025, 5, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Meeting{StartDate: start, NumberOfDays: tt.days, BufferDaysBefore: tt.before, BufferDaysAfter: tt.after}

			assert.Equal(t, tt.wantStart, m.ActualStartDate())
			assert.Equal(t, tt.wantEnd, m.ActualEndDate())
			assert.False(t, m.ActualStartDate().After(m.ActualEndDate()))
		})
	}
}

func TestMeeting_Validate(t *testing.T) {
	validMeeting := func() *Meeting {
		return &Meeting{
			Name:         "Offsite",
			StartDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			NumberOfDays: 2,
			Locations:    []Location{{City: "San Francisco", AirportCode: "SFO", CountryCode: "US"}},
			Attendees:    []Attendee{{Name: "Alice", HomeAirport: "LAX"}},
		}
	}

	tests := []struct {
		name        string
		modify      func(*Meeting)
		wantErr     bool
		errContains string
	}{
		{name: "valid meeting passes", modify: func(m *Meeting) {}},
		{
			name:        "no attendees fails",
			modify:      func(m *Meeting) { m.Attendees = nil },
			wantErr:     true,
			errContains: "attendee",
		},
		{
			name:        "no locations fails",
			modify:      func(m *Meeting) { m.Locations = nil },
			wantErr:     true,
			errContains: "location",
		},
		{
			name:        "zero days fails",
			modify:      func(m *Meeting) { m.NumberOfDays = 0 },
			wantErr:     true,
			errContains: "numberOfDays",
		},
		{
			name:        "negative buffer fails",
			modify:      func(m *Meeting) { m.BufferDaysAfter = -1 },
			wantErr:     true,
			errContains: "buffer",
		},
		{
			name:   "malformed airport code is not a meeting error",
			modify: func(m *Meeting) { m.Attendees[0].HomeAirport = "XX" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeeting()
			tt.modify(m)

			err := m.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestMeeting_SearchReadiness(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ready := &Meeting{
		Name:         "Offsite",
		StartDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		NumberOfDays: 1,
		Locations:    []Location{{AirportCode: "SFO"}, {AirportCode: "JFK"}},
		Attendees:    []Attendee{{Name: "Alice", HomeAirport: "LAX"}},
	}
	assert.Empty(t, ready.SearchReadiness(now))

	notReady := &Meeting{
		StartDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		NumberOfDays: 1,
		Locations:    []Location{{AirportCode: "SFO"}},
	}
	assert.Len(t, notReady.SearchReadiness(now), 3)
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "San Francisco (SFO)", Location{City: "San Francisco", AirportCode: "SFO"}.DisplayName())
	assert.Equal(t, "Alice - LAX", Attendee{Name: "Alice", HomeAirport: "LAX"}.DisplayName())
}

func TestAirportCodeHelpers(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
		norm  string
	}{
		{code: "SFO", valid: true, norm: "SFO"},
		{code: " sfo ", valid: true, norm: "SFO"},
		{code: "SF", valid: false, norm: "SF"},
		{code: "SF0", valid: false, norm: "SF0"},
		{code: "", valid: false, norm: ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidAirportCode(tt.code))
			assert.Equal(t, tt.norm, NormalizeAirportCode(tt.code))
		})
	}
}
