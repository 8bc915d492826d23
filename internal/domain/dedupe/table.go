package dedupe

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// KeyFunc derives the identity of a row.
type KeyFunc func(model.MergedRecord) string

// Distinct keeps the first row for every key and drops the rest, preserving
// row order. It returns the new table and the number of rows dropped.
func Distinct(table model.MergedTable, key KeyFunc) (model.MergedTable, int) {
	ctx := context.Background()
	seen := NewInMemoryDeduper(WithMaxSize(0))
	out := table.Filter(func(r model.MergedRecord) bool {
		return !seen.SeenAndRecord(ctx, key(r))
	})
	return out, table.Len() - out.Len()
}

// Dedupe removes rows that repeat the team tuple (Team, NOC, Games, Year,
// City, Sport, Event), so a team event won by many athletes counts once.
// It is idempotent.
func Dedupe(table model.MergedTable) model.MergedTable {
	out, _ := Distinct(table, model.MergedRecord.TeamKey)
	return out
}

// DropExact removes rows that are identical across every column.
func DropExact(table model.MergedTable) (model.MergedTable, int) {
	return Distinct(table, model.MergedRecord.RowKey)
}
