package domain

import "time"

// RouteIssue records why a route produced no quotes.
type RouteIssue struct {
	Route  string `json:"route"`
	Reason string `json:"reason"`
}

// RunStats describes one combination search run.
type RunStats struct {
	// TotalRoutes is the number of unique, valid (airport, city) routes
	TotalRoutes int `json:"totalRoutes"`

	// SearchedRoutes is the number of routes that were sent to the provider
	SearchedRoutes int `json:"searchedRoutes"`

	// RoutesWithQuotes is the number of routes that returned at least one quote
	RoutesWithQuotes int `json:"routesWithQuotes"`

	// AlternativeRoutes is the number of routes served from a nearby airport
	AlternativeRoutes int `json:"alternativeRoutes"`

	// RateLimitRetries is the number of cooldown retries after throttling
	RateLimitRetries int `json:"rateLimitRetries"`

	// SkippedRoutes are routes whose origin equals the destination
	SkippedRoutes []string `json:"skippedRoutes,omitempty"`

	// FailedRoutes are routes cached empty after an error
	FailedRoutes []RouteIssue `json:"failedRoutes,omitempty"`

	// ValidationIssues are routes skipped because of malformed airport codes
	ValidationIssues []RouteIssue `json:"validationIssues,omitempty"`

	// AuthShortCircuited is set when repeated authentication failures stopped provider calls
	AuthShortCircuited bool `json:"authShortCircuited,omitempty"`

	// Cancelled is set when the run stopped early; results are partial
	Cancelled bool `json:"cancelled"`

	StartedAt  time.Time `json:"startedAt"`
	DurationMs int64     `json:"durationMs"`
}

// MeetingSearchResult is the ranked outcome of a meeting search.
type MeetingSearchResult struct {
	MeetingID    string             `json:"meetingId,omitempty"`
	MeetingName  string             `json:"meetingName"`
	Analyses     []LocationAnalysis `json:"analyses"`
	Optimization OptimizationStats  `json:"optimization"`
	Stats        RunStats           `json:"stats"`

	// Warnings are non-blocking remarks about the meeting set-up
	Warnings []string `json:"warnings,omitempty"`

	// Message is a user-facing note, set when no city has any fare
	Message string `json:"message,omitempty"`
}

// Cheapest returns the best-ranked analysis.
func (r *MeetingSearchResult) Cheapest() (LocationAnalysis, bool) {
	if r == nil || len(r.Analyses) == 0 {
		return LocationAnalysis{}, false
	}
	return r.Analyses[0], true
}
