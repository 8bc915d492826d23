// Package types contains the response shapes shared by the service and the
// HTTP API.
package types

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/tally"
)

// CountryMedals is the medal record of one NOC in one season.
type CountryMedals struct {
	Season string `json:"season"`
	NOC    string `json:"noc"`
	model.MedalCounts
}

// YearBreakdown is the medal record of one region at one Games year.
type YearBreakdown struct {
	Season string `json:"season"`
	Year   int    `json:"year"`
	Region string `json:"region"`
	model.MedalCounts
}

// Trend is the medal history of one region.
type Trend struct {
	Season string             `json:"season"`
	Region string             `json:"region"`
	Points []tally.TrendPoint `json:"points"`
}

// YearRange bounds the year selector of a season.
type YearRange struct {
	Season string `json:"season"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

// MedalTable is the ranked tally of a season.
type MedalTable struct {
	Season  string           `json:"season"`
	Entries []tally.Standing `json:"entries"`
}
