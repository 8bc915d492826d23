package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Query kinds used for metrics labels.
const (
	queryLookup    = "lookup"
	queryBreakdown = "breakdown"
	queryTrend     = "trend"
	queryYears     = "years"
	queryTally     = "tally"
	queryRegions   = "regions"
)

// Query outcomes used for metrics labels.
const (
	outcomeHit      = "hit"
	outcomeNotFound = "not_found"
	outcomeNoData   = "no_data"
	outcomeError    = "error"
)

// LookupCountry returns the medal record of code in season. The code is
// trimmed and uppercased before the exact match.
func (s *Service) LookupCountry(ctx context.Context, season, code string) (types.CountryMedals, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryLookup, outcomeError, start)
		return types.CountryMedals{}, err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	details, ok := tally.LookupCountry(code, dc.Tally)
	if !ok {
		s.observe(queryLookup, outcomeNotFound, start)
		s.logger.Debug(ctx, "country not found", logger.String("noc", code), logger.String("season", string(dc.Season)))
		return types.CountryMedals{}, fmt.Errorf("no NOC %q exists: %w", code, ErrNotFound)
	}

	s.observe(queryLookup, outcomeHit, start)
	return types.CountryMedals{Season: string(dc.Season), NOC: code, MedalCounts: details}, nil
}

// Breakdown returns the medal counts of region at year. Region names match
// exactly; countries without a region row are addressed by their NOC.
func (s *Service) Breakdown(ctx context.Context, season string, year int, region string) (types.YearBreakdown, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryBreakdown, outcomeError, start)
		return types.YearBreakdown{}, err
	}

	region = strings.TrimSpace(region)
	counts, ok := tally.Breakdown(year, region, dc.YearRegion)
	if !ok {
		s.observe(queryBreakdown, outcomeNoData, start)
		s.logger.Debug(ctx, "no breakdown data",
			logger.String("region", region),
			logger.Int("year", year),
			logger.String("season", string(dc.Season)),
		)
		return types.YearBreakdown{}, fmt.Errorf("no data available for %s in %d: %w", region, year, ErrNoData)
	}

	s.observe(queryBreakdown, outcomeHit, start)
	return types.YearBreakdown{Season: string(dc.Season), Year: year, Region: region, MedalCounts: counts}, nil
}

// Trend returns the medal history of region. An unknown region yields an
// empty series, not an error.
func (s *Service) Trend(ctx context.Context, season, region string) (types.Trend, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryTrend, outcomeError, start)
		return types.Trend{}, err
	}

	region = strings.TrimSpace(region)
	points := tally.Trend(region, dc.YearRegion)
	outcome := outcomeHit
	if len(points) == 0 {
		outcome = outcomeNoData
	}
	s.observe(queryTrend, outcome, start)
	return types.Trend{Season: string(dc.Season), Region: region, Points: points}, nil
}

// YearRange returns the year bounds of season for the year selector.
func (s *Service) YearRange(ctx context.Context, season string) (types.YearRange, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryYears, outcomeError, start)
		return types.YearRange{}, err
	}
	if !dc.HasYears {
		s.observe(queryYears, outcomeNoData, start)
		return types.YearRange{}, fmt.Errorf("season %s has no rows: %w", dc.Season, ErrNoData)
	}
	s.observe(queryYears, outcomeHit, start)
	return types.YearRange{Season: string(dc.Season), Min: dc.MinYear, Max: dc.MaxYear}, nil
}

// MedalTable returns the ranked tally of season, at most limit rows when
// limit > 0.
func (s *Service) MedalTable(ctx context.Context, season string, limit int) (types.MedalTable, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryTally, outcomeError, start)
		return types.MedalTable{}, err
	}
	s.observe(queryTally, outcomeHit, start)
	return types.MedalTable{Season: string(dc.Season), Entries: tally.Ranked(dc.Tally, limit)}, nil
}

// Regions returns the region keys of season in ascending order.
func (s *Service) Regions(ctx context.Context, season string) ([]string, error) {
	start := time.Now()
	dc, err := s.Context(season)
	if err != nil {
		s.observe(queryRegions, outcomeError, start)
		return nil, err
	}
	s.observe(queryRegions, outcomeHit, start)
	return tally.Regions(dc.YearRegion), nil
}

func (s *Service) observe(kind, outcome string, start time.Time) {
	metrics.RecordQuery(kind, outcome)
	metrics.RecordQueryLatency(kind, float64(time.Since(start).Microseconds())/1000)
}
