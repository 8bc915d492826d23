package tally

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

type yearRegion struct {
	year   int
	region string
}

// YearRegionTable holds medal counts keyed by (year, region key).
type YearRegionTable struct {
	cells map[yearRegion]model.MedalCounts
	years map[string][]int // region -> ascending years
}

// YearRegion groups rows by (Year, region key, Medal) and pivots the medals
// into columns. Any (year, region) pair with at least one row gets a cell,
// even when none of its rows won a medal.
func YearRegion(table model.MergedTable) (YearRegionTable, error) {
	if missing := table.Missing(model.ColYear, model.ColRegion, model.ColMedal); len(missing) > 0 {
		return YearRegionTable{}, fmt.Errorf("%w: year/region pivot needs columns %s", ErrSchema, strings.Join(missing, ", "))
	}

	yt := YearRegionTable{
		cells: make(map[yearRegion]model.MedalCounts),
		years: make(map[string][]int),
	}
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		k := yearRegion{year: r.Year, region: r.RegionKey()}
		c, ok := yt.cells[k]
		if !ok {
			yt.years[k.region] = append(yt.years[k.region], k.year)
		}
		c.Add(r.Medal)
		yt.cells[k] = c
	}
	for _, ys := range yt.years {
		sort.Ints(ys)
	}
	return yt, nil
}

// Breakdown returns the counts for exactly (year, region). It reports false
// when there is no such pair, e.g. the country did not compete that year or
// the name matches no region.
func Breakdown(year int, region string, yt YearRegionTable) (model.MedalCounts, bool) {
	c, ok := yt.cells[yearRegion{year: year, region: region}]
	return c, ok
}

// TrendPoint is one year of a region's medal history.
type TrendPoint struct {
	Year int `json:"year"`
	model.MedalCounts
}

// Trend returns every year present for region in ascending order. The result
// is empty, never nil, when the region is unknown.
func Trend(region string, yt YearRegionTable) []TrendPoint {
	years := yt.years[region]
	out := make([]TrendPoint, 0, len(years))
	for _, y := range years {
		out = append(out, TrendPoint{Year: y, MedalCounts: yt.cells[yearRegion{year: y, region: region}]})
	}
	return out
}

// Regions returns the region keys in ascending order.
func Regions(yt YearRegionTable) []string {
	out := make([]string, 0, len(yt.years))
	for r := range yt.years {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// YearBounds returns the smallest and largest Year in table. ok is false for
// an empty table.
func YearBounds(table model.MergedTable) (minYear, maxYear int, ok bool) {
	if table.Len() == 0 {
		return 0, 0, false
	}
	minYear, maxYear = table.At(0).Year, table.At(0).Year
	for i := 1; i < table.Len(); i++ {
		y := table.At(i).Year
		minYear = min(minYear, y)
		maxYear = max(maxYear, y)
	}
	return minYear, maxYear, true
}
