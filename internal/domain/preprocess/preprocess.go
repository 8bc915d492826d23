// Package preprocess turns the raw event and region tables into the merged,
// per-season tables every query reads.
package preprocess

import (
	"fmt"
	"slices"

	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
)

// Result holds the preprocessed season tables.
type Result struct {
	Summer model.MergedTable
	Winter model.MergedTable
	// DuplicatesDropped counts exact-duplicate rows removed before the split.
	DuplicatesDropped int
}

// Season returns the table for s.
func (r Result) Season(s model.Season) (model.MergedTable, bool) {
	switch s {
	case model.SeasonSummer:
		return r.Summer, true
	case model.SeasonWinter:
		return r.Winter, true
	}
	return model.MergedTable{}, false
}

// Preprocess joins events to regions, drops exact duplicates, normalizes
// missing medals and splits the result by season.
//
// A row whose season is neither Summer nor Winter fails the whole call with
// ErrInvalidSeason. Inputs are not modified.
func Preprocess(events model.EventTable, regions model.RegionTable) (Result, error) {
	merged := Join(events, regions)
	merged, dropped := dedupe.DropExact(merged)
	merged = NormalizeMedals(merged)

	summer, winter, err := SplitSeasons(merged)
	if err != nil {
		return Result{}, err
	}
	return Result{Summer: summer, Winter: winter, DuplicatesDropped: dropped}, nil
}

// Join left-joins events to regions on NOC. Every event row is kept; rows
// whose NOC has no region get an empty Region. When the region table repeats
// a NOC the first row wins.
func Join(events model.EventTable, regions model.RegionTable) model.MergedTable {
	byNOC := make(map[string]model.RegionRecord, regions.Len())
	for i := 0; i < regions.Len(); i++ {
		r := regions.At(i)
		if _, ok := byNOC[r.NOC]; !ok {
			byNOC[r.NOC] = r
		}
	}

	rows := make([]model.MergedRecord, events.Len())
	for i := 0; i < events.Len(); i++ {
		e := events.At(i)
		r := byNOC[e.NOC]
		rows[i] = model.MergedRecord{EventRecord: e, Region: r.Region, Notes: r.Notes}
	}

	columns := events.Columns()
	for _, c := range regions.Columns() {
		if c != model.ColNOC && !slices.Contains(columns, c) {
			columns = append(columns, c)
		}
	}
	if !slices.Contains(columns, model.ColRegion) {
		columns = append(columns, model.ColRegion)
	}
	return model.NewTable(columns, rows)
}

// NormalizeMedals returns a copy of table where every missing medal is
// replaced by model.MedalNone.
func NormalizeMedals(table model.MergedTable) model.MergedTable {
	return table.Map(func(r model.MergedRecord) model.MergedRecord {
		if r.Medal == "" {
			r.Medal = model.MedalNone
		}
		return r
	})
}

// SplitSeasons partitions table by season, keeping row order.
func SplitSeasons(table model.MergedTable) (summer, winter model.MergedTable, err error) {
	var s, w []model.MergedRecord
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		season, ok := model.ParseSeason(r.Season)
		if !ok {
			return model.MergedTable{}, model.MergedTable{},
				fmt.Errorf("%w: row %d (ID=%q NOC=%q) has season %q", ErrInvalidSeason, i, r.ID, r.NOC, r.Season)
		}
		if season == model.SeasonSummer {
			s = append(s, r)
		} else {
			w = append(w, r)
		}
	}
	cols := table.Columns()
	return model.NewTable(cols, s), model.NewTable(cols, w), nil
}
