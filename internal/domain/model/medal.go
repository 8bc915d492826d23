package model

import "strconv"

// Medal values after preprocessing.
const (
	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"
	// MedalNone marks a row without a medal. Bookkeeping only.
	MedalNone = "No_Medal"
)

// Season partitions the dataset.
type Season string

// Known seasons.
const (
	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"
)

// Seasons lists the known seasons in display order.
func Seasons() []Season { return []Season{SeasonSummer, SeasonWinter} }

// ParseSeason matches s exactly against the known seasons.
func ParseSeason(s string) (Season, bool) {
	switch Season(s) {
	case SeasonSummer, SeasonWinter:
		return Season(s), true
	}
	return "", false
}

// MedalCounts holds per-medal counts. Total is always Gold+Silver+Bronze.
type MedalCounts struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Total  int `json:"total"`
}

// Add counts one occurrence of medal. No_Medal and unknown values are ignored.
func (c *MedalCounts) Add(medal string) {
	switch medal {
	case MedalGold:
		c.Gold++
	case MedalSilver:
		c.Silver++
	case MedalBronze:
		c.Bronze++
	default:
		return
	}
	c.Total = c.Gold + c.Silver + c.Bronze
}

func itoa(n int) string { return strconv.Itoa(n) }
