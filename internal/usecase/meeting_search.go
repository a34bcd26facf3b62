package usecase

import (
	"context"
	"time"

	"github.com/meetingcost/meeting-location-search/internal/domain"
)

// DefaultRunTimeout bounds a whole meeting search.
const DefaultRunTimeout = 2 * time.Minute

// MeetingSearchUseCase defines the interface for meeting location search operations.
type MeetingSearchUseCase interface {
	// Search finds fares for every attendee and city and returns the ranked cities.
	// When the run times out the partial ranking is returned with Stats.Cancelled set.
	Search(ctx context.Context, meeting *domain.Meeting, opts SearchOptions) (*domain.MeetingSearchResult, error)

	// Optimization reports the route savings for a meeting without querying the provider.
	Optimization(meeting *domain.Meeting) (domain.OptimizationStats, error)
}

// meetingAnalyzer is implemented by CombinationSearchEngine.
type meetingAnalyzer interface {
	AnalyzeMeeting(ctx context.Context, meeting *domain.Meeting, onProgress ProgressFunc) (*domain.MeetingSearchResult, error)
}

// meetingSearchUseCase implements MeetingSearchUseCase on top of the combination engine.
type meetingSearchUseCase struct {
	engine     meetingAnalyzer
	runTimeout time.Duration
}

// Config contains configuration options for the use case.
type Config struct {
	RunTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{RunTimeout: DefaultRunTimeout}
}

// NewMeetingSearchUseCase creates a MeetingSearchUseCase.
// If config is nil, default values are used.
func NewMeetingSearchUseCase(engine *CombinationSearchEngine, config *Config) MeetingSearchUseCase {
	return newMeetingSearchUseCase(engine, config)
}

func newMeetingSearchUseCase(engine meetingAnalyzer, config *Config) *meetingSearchUseCase {
	cfg := DefaultConfig()
	if config != nil && config.RunTimeout > 0 {
		cfg.RunTimeout = config.RunTimeout
	}

	return &meetingSearchUseCase{
		engine:     engine,
		runTimeout: cfg.RunTimeout,
	}
}

// Search implements MeetingSearchUseCase.Search.
func (uc *meetingSearchUseCase) Search(ctx context.Context, meeting *domain.Meeting, opts SearchOptions) (*domain.MeetingSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.runTimeout)
	defer cancel()

	result, err := uc.engine.AnalyzeMeeting(ctx, meeting, opts.OnProgress)
	if err != nil {
		return nil, err
	}

	filtered := ApplyAnalysisFilters(result.Analyses, opts.Filters)
	result.Analyses = SortAnalyses(filtered, opts.SortBy)

	return result, nil
}

// Optimization implements MeetingSearchUseCase.Optimization.
func (uc *meetingSearchUseCase) Optimization(meeting *domain.Meeting) (domain.OptimizationStats, error) {
	if meeting == nil {
		return domain.OptimizationStats{}, domain.WrapInvalidRequest("meeting is required")
	}
	if len(meeting.Attendees) == 0 {
		return domain.OptimizationStats{}, domain.WrapInvalidRequest("at least one attendee is required")
	}
	if len(meeting.Locations) == 0 {
		return domain.OptimizationStats{}, domain.WrapInvalidRequest("at least one location is required")
	}
	return domain.ComputeOptimizationStats(meeting.Attendees, meeting.Locations), nil
}
