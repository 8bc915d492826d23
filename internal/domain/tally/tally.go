// Package tally aggregates medal counts per country and per (year, region)
// and answers the lookups built on those aggregates.
package tally

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

// MedalDetails is the medal record returned for one country.
type MedalDetails = model.MedalCounts

// Table is the per-country medal tally, keyed by NOC.
type Table struct {
	counts  map[string]model.MedalCounts
	regions map[string]string
	codes   []string // sorted
}

// Tally groups rows by (NOC, Medal) and pivots them into one row per NOC.
// Missing medal kinds count as zero and No_Medal rows are never counted, so a
// country that only has No_Medal rows appears with all zeros.
func Tally(table model.MergedTable) (Table, error) {
	if missing := table.Missing(model.ColNOC, model.ColMedal); len(missing) > 0 {
		return Table{}, fmt.Errorf("%w: tally needs columns %s", ErrSchema, strings.Join(missing, ", "))
	}

	t := Table{
		counts:  make(map[string]model.MedalCounts),
		regions: make(map[string]string),
	}
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		c, ok := t.counts[r.NOC]
		if !ok {
			t.codes = append(t.codes, r.NOC)
			t.regions[r.NOC] = r.Region
		}
		c.Add(r.Medal)
		t.counts[r.NOC] = c
	}
	sort.Strings(t.codes)
	return t, nil
}

// Len returns the number of countries in the tally.
func (t Table) Len() int { return len(t.codes) }

// Codes returns the NOCs in ascending order.
func (t Table) Codes() []string { return append([]string(nil), t.codes...) }

// LookupCountry returns the medal record for code. The match is exact and
// case-sensitive; an unknown code reports false.
func LookupCountry(code string, t Table) (MedalDetails, bool) {
	c, ok := t.counts[code]
	return c, ok
}

// Standing is one row of the ranked medal table.
type Standing struct {
	Rank   int    `json:"rank"`
	NOC    string `json:"noc"`
	Region string `json:"region,omitempty"`
	model.MedalCounts
}

// Ranked orders the tally by Total, then Gold, Silver, Bronze (all
// descending) and finally NOC. Rank is 1-based; limit <= 0 returns all rows.
func Ranked(t Table, limit int) []Standing {
	out := make([]Standing, 0, len(t.codes))
	for _, code := range t.codes {
		out = append(out, Standing{NOC: code, Region: t.regions[code], MedalCounts: t.counts[code]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Total != b.Total:
			return a.Total > b.Total
		case a.Gold != b.Gold:
			return a.Gold > b.Gold
		case a.Silver != b.Silver:
			return a.Silver > b.Silver
		case a.Bronze != b.Bronze:
			return a.Bronze > b.Bronze
		}
		return a.NOC < b.NOC
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
