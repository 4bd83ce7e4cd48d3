package store

import "github.com/alexanderramin/trackflow/internal/domain"

// Snapshot is an immutable view of the store at one Version. Version grows
// with every applied mutation, so two snapshots with the same Version hold
// the same state.
type Snapshot struct {
	Version  uint64
	Tracks   []domain.Track
	Columns  []domain.Column
	Selected *domain.Track
}

// Track returns the track with the given id.
func (s Snapshot) Track(id string) (domain.Track, bool) {
	return findTrack(s.Tracks, id)
}

// ColumnsFor returns the columns of trackID in insertion order.
func (s Snapshot) ColumnsFor(trackID string) []domain.Column {
	var out []domain.Column
	for _, c := range s.Columns {
		if c.TrackID == trackID {
			out = append(out, c)
		}
	}
	return out
}

// Column returns the column with the given id.
func (s Snapshot) Column(id string) (domain.Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Column{}, false
}

// Owner returns the column whose subtree holds the sub-column id, or the
// column itself when id names a column.
func (s Snapshot) Owner(id string) (domain.Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
		if _, _, ok := domain.FindSubColumn(c.SubColumns, id); ok {
			return c, true
		}
	}
	return domain.Column{}, false
}

// SelectedID returns the selected track id, or "" when none is selected.
func (s Snapshot) SelectedID() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.ID
}
