// Package service loads the medal dataset once, builds the per-season data
// contexts and answers the dashboard queries against them.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/preprocess"
	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// DataContext is the immutable view of one season that every query reads.
type DataContext struct {
	Season model.Season
	// Table is the preprocessed season table.
	Table model.MergedTable
	// Counted is Table with team duplicates removed when enabled; medal
	// aggregates are built from it.
	Counted    model.MergedTable
	Tally      tally.Table
	YearRegion tally.YearRegionTable
	MinYear    int
	MaxYear    int
	HasYears   bool
}

// Service implements the API dependencies for the medal dashboard.
type Service struct {
	mu sync.RWMutex

	// Inputs
	eventsPath  string
	regionsPath string
	preloaded   *dataset.Dataset

	// Configuration
	dedupeTeamEvents bool

	// State, read-only once started
	contexts  map[model.Season]*DataContext
	datasetID string
	loadedAt  time.Time
	startedAt time.Time
	rows      map[string]int
	started   bool

	clock  clockwork.Clock
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataPaths sets the events and regions files read by Start.
func WithDataPaths(eventsPath, regionsPath string) Option {
	return func(s *Service) {
		if eventsPath != "" {
			s.eventsPath = eventsPath
		}
		if regionsPath != "" {
			s.regionsPath = regionsPath
		}
	}
}

// WithDataset makes Start use ds instead of reading files.
func WithDataset(ds dataset.Dataset) Option {
	return func(s *Service) {
		s.preloaded = &ds
	}
}

// WithClock sets the clock used for start timestamps and load timing.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDedupeTeamEvents toggles counting a team medal once per team.
func WithDedupeTeamEvents(enabled bool) Option {
	return func(s *Service) {
		s.dedupeTeamEvents = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		eventsPath:       "data/athlete_events.csv",
		regionsPath:      "data/noc_regions.csv",
		dedupeTeamEvents: true,
		contexts:         make(map[model.Season]*DataContext),
		rows:             make(map[string]int),
		clock:            clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset and builds the season contexts. Schema and season
// errors are returned as is; the caller treats them as fatal.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	start := s.clock.Now()
	s.logger.Info(ctx, "loading medal dataset",
		logger.String("events", s.eventsPath),
		logger.String("regions", s.regionsPath),
	)

	ds, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	metrics.UpdateDatasetRowsLoaded("events", ds.Events.Len())
	metrics.UpdateDatasetRowsLoaded("regions", ds.Regions.Len())

	res, err := preprocess.Preprocess(ds.Events, ds.Regions)
	if err != nil {
		return fmt.Errorf("preprocess dataset: %w", err)
	}
	metrics.RecordDatasetRowsDropped("exact_duplicate", res.DuplicatesDropped)

	seasons := model.Seasons()
	built := make([]*DataContext, len(seasons))
	g, gctx := errgroup.WithContext(ctx)
	for i, season := range seasons {
		table, _ := res.Season(season)
		g.Go(func() error {
			dc, err := s.buildContext(gctx, season, table)
			if err != nil {
				return fmt.Errorf("build %s context: %w", season, err)
			}
			built[i] = dc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	contexts := make(map[model.Season]*DataContext, len(seasons))
	for _, dc := range built {
		contexts[dc.Season] = dc
	}

	s.contexts = contexts
	s.datasetID = ds.ID
	s.loadedAt = ds.LoadedAt
	s.rows = map[string]int{
		"events":            ds.Events.Len(),
		"regions":           ds.Regions.Len(),
		"duplicatesDropped": res.DuplicatesDropped,
	}
	s.startedAt = s.clock.Now()
	s.started = true

	elapsed := s.clock.Since(start)
	metrics.RecordDatasetLoadDuration(float64(elapsed.Milliseconds()))
	s.logger.Info(ctx, "medal dataset ready",
		logger.String("datasetID", ds.ID),
		logger.Int("events", ds.Events.Len()),
		logger.Int("regions", ds.Regions.Len()),
		logger.Int("duplicatesDropped", res.DuplicatesDropped),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}

func (s *Service) load(ctx context.Context) (dataset.Dataset, error) {
	if s.preloaded != nil {
		return *s.preloaded, nil
	}
	return dataset.LoadFiles(ctx, s.eventsPath, s.regionsPath)
}

func (s *Service) buildContext(ctx context.Context, season model.Season, table model.MergedTable) (*DataContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counted := table
	if s.dedupeTeamEvents {
		counted = dedupe.Dedupe(table)
		metrics.RecordDatasetRowsDropped("team_duplicate", table.Len()-counted.Len())
	}

	tt, err := tally.Tally(counted)
	if err != nil {
		return nil, err
	}
	yt, err := tally.YearRegion(counted)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := tally.YearBounds(table)

	metrics.UpdateSeasonRows(string(season), table.Len())
	metrics.UpdateTallyCountries(string(season), tt.Len())
	if !ok {
		s.logger.Warn(ctx, "season has no rows", logger.String("season", string(season)))
	}
	s.logger.Debug(ctx, "season context built",
		logger.String("season", string(season)),
		logger.Int("rows", table.Len()),
		logger.Int("countedRows", counted.Len()),
		logger.Int("countries", tt.Len()),
	)

	return &DataContext{
		Season:     season,
		Table:      table,
		Counted:    counted,
		Tally:      tt,
		YearRegion: yt,
		MinYear:    lo,
		MaxYear:    hi,
		HasYears:   ok,
	}, nil
}

// Stop marks the service stopped. Loaded data is released.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.contexts = make(map[model.Season]*DataContext)
	s.started = false
	s.logger.Info(context.Background(), "medal service stopped")
}

// Context returns the data context of season. The season name is matched
// case-insensitively; an empty name selects Summer.
func (s *Service) Context(season string) (*DataContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	name, err := normalizeSeason(season)
	if err != nil {
		return nil, err
	}
	return s.contexts[name], nil
}

func normalizeSeason(season string) (model.Season, error) {
	season = strings.TrimSpace(season)
	if season == "" {
		return model.SeasonSummer, nil
	}
	for _, known := range model.Seasons() {
		if strings.EqualFold(season, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeason, season)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"dedupeTeamEvents": s.dedupeTeamEvents,
	}
	if !s.started {
		return stats
	}

	stats["datasetID"] = s.datasetID
	stats["loadedAt"] = s.loadedAt.Format(time.RFC3339)
	stats["startedAt"] = s.startedAt.Format(time.RFC3339)
	for k, v := range s.rows {
		stats[k] = v
	}
	seasons := make(map[string]interface{}, len(s.contexts))
	for name, dc := range s.contexts {
		seasons[string(name)] = map[string]interface{}{
			"rows":        dc.Table.Len(),
			"countedRows": dc.Counted.Len(),
			"countries":   dc.Tally.Len(),
			"minYear":     dc.MinYear,
			"maxYear":     dc.MaxYear,
		}
	}
	stats["seasons"] = seasons
	return stats
}

// Ready reports whether the season contexts are built.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}
