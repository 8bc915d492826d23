// Package dataset reads the athlete events and NOC region tables from
// delimited text files.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okian/podium/internal/domain/model"
)

// contextCheckInterval is how often (in rows) the readers check for cancellation.
const contextCheckInterval = 1000

// Required header columns. Names are matched verbatim.
var (
	RequiredEventColumns = []string{
		model.ColTeam, model.ColNOC, model.ColGames, model.ColYear, model.ColSeason,
		model.ColCity, model.ColSport, model.ColEvent, model.ColMedal,
	}
	RequiredRegionColumns = []string{model.ColNOC, model.ColRegion}
)

// Dataset is one snapshot of both input tables.
type Dataset struct {
	ID       string
	LoadedAt time.Time
	Events   model.EventTable
	Regions  model.RegionTable
}

// LoadFiles reads both input files.
func LoadFiles(ctx context.Context, eventsPath, regionsPath string) (Dataset, error) {
	events, err := readFile(ctx, eventsPath, ReadEvents)
	if err != nil {
		return Dataset{}, err
	}
	regions, err := readFile(ctx, regionsPath, ReadRegions)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{
		ID:       uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Events:   events,
		Regions:  regions,
	}, nil
}

func readFile[T any](ctx context.Context, path string, read func(context.Context, io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	v, err := read(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadEvents parses the athlete events table.
func ReadEvents(ctx context.Context, r io.Reader) (model.EventTable, error) {
	header, rows, err := readAll(ctx, r, RequiredEventColumns)
	if err != nil {
		return model.EventTable{}, err
	}

	records := make([]model.EventRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(header.get(row, model.ColYear))
		if err != nil {
			return model.EventTable{}, fmt.Errorf("%w: line %d: Year %q", ErrParse, i+2, header.get(row, model.ColYear))
		}
		records = append(records, model.EventRecord{
			ID:     header.get(row, model.ColID),
			Name:   header.get(row, model.ColName),
			Sex:    header.get(row, model.ColSex),
			Age:    header.get(row, model.ColAge),
			Height: header.get(row, model.ColHeight),
			Weight: header.get(row, model.ColWeight),
			Team:   header.get(row, model.ColTeam),
			NOC:    header.get(row, model.ColNOC),
			Games:  header.get(row, model.ColGames),
			Year:   year,
			Season: header.get(row, model.ColSeason),
			City:   header.get(row, model.ColCity),
			Sport:  header.get(row, model.ColSport),
			Event:  header.get(row, model.ColEvent),
			Medal:  header.get(row, model.ColMedal),
		})
	}
	return model.NewTable(header.columns, records), nil
}

// ReadRegions parses the NOC region lookup table.
func ReadRegions(ctx context.Context, r io.Reader) (model.RegionTable, error) {
	header, rows, err := readAll(ctx, r, RequiredRegionColumns)
	if err != nil {
		return model.RegionTable{}, err
	}

	records := make([]model.RegionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.RegionRecord{
			NOC:    header.get(row, model.ColNOC),
			Region: header.get(row, model.ColRegion),
			Notes:  header.get(row, model.ColNotes),
		})
	}
	return model.NewTable(header.columns, records), nil
}

// headerIndex maps a column name to its position.
type headerIndex struct {
	columns []string
	pos     map[string]int
}

// get returns the cleaned cell for column, or "" when the column is absent.
func (h headerIndex) get(row []string, column string) string {
	i, ok := h.pos[column]
	if !ok || i >= len(row) {
		return ""
	}
	return cleanCell(row[i])
}

// cleanCell trims whitespace and reads the NA marker as missing.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ""
	}
	return s
}

func readAll(ctx context.Context, r io.Reader, required []string) (headerIndex, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	head, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return headerIndex{}, nil, fmt.Errorf("%w: empty input, missing columns %s", ErrSchema, strings.Join(required, ", "))
	}
	if err != nil {
		return headerIndex{}, nil, fmt.Errorf("%w: header: %w", ErrParse, err)
	}

	h := headerIndex{pos: make(map[string]int, len(head))}
	for i, c := range head {
		if i == 0 {
			c = strings.TrimPrefix(c, "\ufeff")
		}
		c = strings.TrimSpace(c)
		h.columns = append(h.columns, c)
		if _, dup := h.pos[c]; !dup {
			h.pos[c] = i
		}
	}

	var missing []string
	for _, c := range required {
		if _, ok := h.pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return headerIndex{}, nil, fmt.Errorf("%w: missing columns %s", ErrSchema, strings.Join(missing, ", "))
	}

	var rows [][]string
	for line := 2; ; line++ {
		if line%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return headerIndex{}, nil, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return headerIndex{}, nil, fmt.Errorf("%w: line %d: %w", ErrParse, line, err)
		}
		rows = append(rows, row)
	}
	return h, rows, nil
}
