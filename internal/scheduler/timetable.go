package scheduler

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/domain"
)

// TimedColumn is a column with the derived times of its whole subtree.
type TimedColumn struct {
	Column domain.Column
	Items  []TimedItem
}

// Row is one flattened line of a timetable, in document order.
type Row struct {
	ColumnID string
	ItemID   string
	ParentID string
	Title    string
	Speaker  string
	Notes    string
	Duration int
	Depth    int
	Start    string
	End      string
}

// Timetable derives the times of every sub-column of col. Items are always
// present; labels the engine could not derive are empty and each failure is
// reported, prefixed with the column title, in the joined error.
func Timetable(col domain.Column) (TimedColumn, error) {
	items, errs := deriveTree(col.StartTime, col.SubColumns)
	for i, err := range errs {
		errs[i] = fmt.Errorf("column %q: %w", col.Title, err)
	}
	return TimedColumn{Column: col, Items: items}, errors.Join(errs...)
}

// Flatten lists tc's items depth-first, parents before children.
func (tc TimedColumn) Flatten() []Row {
	var rows []Row
	var walk func(items []TimedItem)
	walk = func(items []TimedItem) {
		for _, it := range items {
			rows = append(rows, Row{
				ColumnID: tc.Column.ID,
				ItemID:   it.SubColumn.ID,
				ParentID: it.SubColumn.ParentID,
				Title:    it.SubColumn.Title,
				Speaker:  it.SubColumn.Speaker,
				Notes:    it.SubColumn.Notes,
				Duration: it.SubColumn.Duration,
				Depth:    it.Depth,
				Start:    it.Start,
				End:      it.End,
			})
			walk(it.Children)
		}
	}
	walk(tc.Items)
	return rows
}
