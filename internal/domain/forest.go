package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateID marks an ID that appears more than once in a schedule.
var ErrDuplicateID = errors.New("duplicate id")

// CheckForest reports structural invariant violations across tracks,
// columns and sub-columns. IDs must be unique across the whole forest.
// Cycles cannot occur because sub-columns are held by value.
func CheckForest(tracks []Track, columns []Column) error {
	seen := make(map[string]int)
	for _, t := range tracks {
		seen[t.ID]++
	}
	for i := range columns {
		seen[columns[i].ID]++
		WalkSubColumns(columns[i].SubColumns, func(s *SubColumn, _ int) bool {
			seen[s.ID]++
			return true
		})
	}

	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	sort.Strings(dups)

	errs := make([]error, 0, len(dups))
	for _, id := range dups {
		errs = append(errs, fmt.Errorf("%w: %q used %d times", ErrDuplicateID, id, seen[id]))
	}
	return errors.Join(errs...)
}
