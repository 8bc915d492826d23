// Package model contains domain models passed between layers.
package model

import "strings"

// Column names as they appear in the input headers. They are part of the
// input contract and are matched verbatim.
const (
	ColID     = "ID"
	ColName   = "Name"
	ColSex    = "Sex"
	ColAge    = "Age"
	ColHeight = "Height"
	ColWeight = "Weight"
	ColTeam   = "Team"
	ColNOC    = "NOC"
	ColGames  = "Games"
	ColYear   = "Year"
	ColSeason = "Season"
	ColCity   = "City"
	ColSport  = "Sport"
	ColEvent  = "Event"
	ColMedal  = "Medal"
	ColRegion = "region"
	ColNotes  = "notes"
)

// keySep joins key parts; it cannot occur in CSV text fields we care about.
const keySep = "\x1f"

// EventRecord is one athlete entry in one event at one Games.
type EventRecord struct {
	ID     string // athlete id
	Name   string
	Sex    string
	Age    string // raw; "NA" is read as empty
	Height string
	Weight string
	Team   string
	NOC    string // country code, join key
	Games  string // e.g. "2000 Summer"
	Year   int
	Season string
	City   string
	Sport  string
	Event  string
	Medal  string // Gold, Silver, Bronze, empty when absent
}

// RegionRecord maps a NOC to its display name.
type RegionRecord struct {
	NOC    string
	Region string
	Notes  string
}

// MergedRecord is an EventRecord joined with its region.
type MergedRecord struct {
	EventRecord
	Region string // empty when the NOC has no region row
	Notes  string
}

// RegionKey returns the key used by region-keyed queries. Codes without a
// region row fall back to the NOC itself.
func (r MergedRecord) RegionKey() string {
	if r.Region != "" {
		return r.Region
	}
	return r.NOC
}

// TeamKey identifies one team outcome: every member of a relay team shares it.
func (r MergedRecord) TeamKey() string {
	return strings.Join([]string{
		r.Team, r.NOC, r.Games, itoa(r.Year), r.City, r.Sport, r.Event,
	}, keySep)
}

// RowKey covers every column of the merged row.
func (r MergedRecord) RowKey() string {
	return strings.Join([]string{
		r.ID, r.Name, r.Sex, r.Age, r.Height, r.Weight,
		r.Team, r.NOC, r.Games, itoa(r.Year), r.Season, r.City, r.Sport, r.Event, r.Medal,
		r.Region, r.Notes,
	}, keySep)
}
