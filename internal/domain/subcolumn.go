package domain

// SubColumn is a duration-based child of a Column or of another SubColumn.
// Its start time is never stored; it is derived from the nearest ancestor's
// start plus the durations of preceding siblings.
type SubColumn struct {
	ID         string      `json:"id"`
	ParentID   string      `json:"parentId"`
	Speaker    string      `json:"speaker,omitempty"`
	Duration   int         `json:"duration"`
	Title      string      `json:"title"`
	Notes      string      `json:"notes,omitempty"`
	SubColumns []SubColumn `json:"subColumns,omitempty"`
}

// DefaultSubColumnDuration is the duration, in minutes, preselected for a
// new sub-section.
const DefaultSubColumnDuration = 30

// SubColumnFields carries the user-provided fields of a new SubColumn.
type SubColumnFields struct {
	Speaker  string
	Duration int
	Title    string
	Notes    string
}

// HasChildren reports whether s has nested sub-columns.
func (s SubColumn) HasChildren() bool {
	return len(s.SubColumns) > 0
}

// WalkSubColumns visits subs depth-first in document order. depth is 0 for
// the items of subs itself. Returning false from fn skips that item's
// children.
func WalkSubColumns(subs []SubColumn, fn func(s *SubColumn, depth int) bool) {
	walkSubColumns(subs, 0, fn)
}

func walkSubColumns(subs []SubColumn, depth int, fn func(s *SubColumn, depth int) bool) {
	for i := range subs {
		if fn(&subs[i], depth) {
			walkSubColumns(subs[i].SubColumns, depth+1, fn)
		}
	}
}

// CountSubColumns returns the number of sub-columns in subs at every depth.
func CountSubColumns(subs []SubColumn) int {
	n := 0
	WalkSubColumns(subs, func(*SubColumn, int) bool {
		n++
		return true
	})
	return n
}

// FindSubColumn returns the first sub-column with the given id in
// depth-first order, and its depth.
func FindSubColumn(subs []SubColumn, id string) (*SubColumn, int, bool) {
	var found *SubColumn
	foundDepth := 0
	WalkSubColumns(subs, func(s *SubColumn, depth int) bool {
		if found != nil {
			return false
		}
		if s.ID == id {
			found = s
			foundDepth = depth
			return false
		}
		return true
	})
	return found, foundDepth, found != nil
}
