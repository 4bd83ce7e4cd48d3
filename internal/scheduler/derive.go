package scheduler

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/domain"
)

// Slot is the derived wall-clock window of one item.
type Slot struct {
	Start string
	End   string
}

// DeriveTimes computes start and end labels for an ordered list of sibling
// durations anchored at anchor. The first item starts at anchor verbatim;
// item i starts at anchor plus the durations of items 0..i-1.
func DeriveTimes(anchor string, durations []int) ([]Slot, error) {
	if _, err := ParseClock(anchor); err != nil {
		return nil, err
	}

	slots := make([]Slot, len(durations))
	elapsed := 0
	for i, d := range durations {
		start := anchor
		if i > 0 {
			var err error
			start, err = AddMinutes(anchor, elapsed)
			if err != nil {
				return nil, fmt.Errorf("item %d start: %w", i, err)
			}
		}
		end, err := AddMinutes(start, d)
		if err != nil {
			return nil, fmt.Errorf("item %d end: %w", i, err)
		}
		slots[i] = Slot{Start: start, End: end}
		elapsed += d
	}
	return slots, nil
}

// TimedItem is a sub-column paired with its derived times.
type TimedItem struct {
	SubColumn domain.SubColumn
	Depth     int
	Start     string
	End       string
	Children  []TimedItem
}

// DeriveTree derives times for subs and, recursively, for their children.
// Each child list is anchored at its parent's derived start, never at the
// column start directly.
//
// The whole tree is always returned. A level whose times cannot be derived
// keeps empty labels, as do its descendants, and every such failure is
// reported in the joined error.
func DeriveTree(anchor string, subs []domain.SubColumn) ([]TimedItem, error) {
	items, errs := deriveTree(anchor, subs)
	return items, errors.Join(errs...)
}

func deriveTree(anchor string, subs []domain.SubColumn) ([]TimedItem, []error) {
	var errs []error
	if len(subs) == 0 {
		return nil, nil
	}
	slots, err := DeriveTimes(anchor, Durations(subs))
	if err != nil {
		errs = append(errs, err)
	}
	return deriveLevel(subs, slots, 0, &errs), errs
}

// deriveLevel pairs subs with slots, which is nil when the level failed.
func deriveLevel(subs []domain.SubColumn, slots []Slot, depth int, errs *[]error) []TimedItem {
	items := make([]TimedItem, len(subs))
	for i, s := range subs {
		items[i] = TimedItem{SubColumn: s, Depth: depth}
		if slots != nil {
			items[i].Start, items[i].End = slots[i].Start, slots[i].End
		}
		if !s.HasChildren() {
			continue
		}
		var childSlots []Slot
		if slots != nil {
			var err error
			childSlots, err = DeriveTimes(slots[i].Start, Durations(s.SubColumns))
			if err != nil {
				*errs = append(*errs, fmt.Errorf("children of %q: %w", s.Title, err))
			}
		}
		items[i].Children = deriveLevel(s.SubColumns, childSlots, depth+1, errs)
	}
	return items
}

// TotalMinutes sums the durations of one sibling level.
func TotalMinutes(subs []domain.SubColumn) int {
	total := 0
	for _, s := range subs {
		total += s.Duration
	}
	return total
}

// Durations lists the durations of one sibling level in order.
func Durations(subs []domain.SubColumn) []int {
	out := make([]int, len(subs))
	for i, s := range subs {
		out[i] = s.Duration
	}
	return out
}
