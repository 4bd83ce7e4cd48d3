// Package store owns the canonical schedule forest: tracks, the columns
// indexed by track, and each column's nested sub-columns.
//
// Every applied mutation replaces the affected slices instead of writing
// into them, so a Snapshot taken before a mutation never changes. Only the
// slices along the path to an insertion are copied; untouched subtrees keep
// their backing arrays.
package store

import (
	"sync"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/google/uuid"
)

// Default seed track, present in every new store unless WithoutSeed is used.
const (
	SeedTrackName        = "Main Track"
	SeedTrackStart       = "09:00"
	SeedTrackEnd         = "17:00"
	SeedTrackDescription = "Main conference track"
)

// Store holds the schedule state. Create one with New and pass it to the
// components that need it.
type Store struct {
	mu         sync.RWMutex
	newID      func() string
	tracks     []domain.Track
	columns    []domain.Column
	selectedID string
	version    uint64
}

// Option configures a Store.
type Option func(*storeConfig)

type storeConfig struct {
	newID func() string
	seed  bool
}

// WithIDGenerator replaces the UUID generator. IDs must stay unique.
func WithIDGenerator(fn func() string) Option {
	return func(c *storeConfig) {
		c.newID = fn
	}
}

// WithoutSeed starts the store with no tracks.
func WithoutSeed() Option {
	return func(c *storeConfig) {
		c.seed = false
	}
}

// New creates a Store seeded with the default track.
func New(opts ...Option) *Store {
	cfg := storeConfig{
		newID: func() string { return uuid.New().String() },
		seed:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{newID: cfg.newID}
	if cfg.seed {
		s.tracks = []domain.Track{{
			ID:          s.newID(),
			Name:        SeedTrackName,
			StartTime:   SeedTrackStart,
			EndTime:     SeedTrackEnd,
			Description: SeedTrackDescription,
		}}
	}
	return s
}

// Snapshot returns the current state. The returned slices are shared with
// the store and must not be modified.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version: s.version,
		Tracks:  s.tracks,
		Columns: s.columns,
	}
	if t, ok := findTrack(s.tracks, s.selectedID); ok {
		snap.Selected = &t
	}
	return snap
}

// AddTrack appends a new track with a fresh ID. It does not select it.
func (s *Store) AddTrack(f domain.TrackFields) domain.Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Track{ID: s.newID()}.WithFields(f)
	s.tracks = appendCopy(s.tracks, t)
	s.version++
	return t
}

// EditTrack replaces every editable field of the track with the given id.
// It reports false and changes nothing when no track matches.
func (s *Store) EditTrack(id string, f domain.TrackFields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tracks {
		if s.tracks[i].ID != id {
			continue
		}
		next := cloneSlice(s.tracks)
		next[i] = next[i].WithFields(f)
		s.tracks = next
		s.version++
		return true
	}
	return false
}

// SelectTrack makes the track with the given id the active one. When no
// track matches, the selection is cleared and false is returned.
func (s *Store) SelectTrack(id string) (domain.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := findTrack(s.tracks, id)
	prev := s.selectedID
	if ok {
		s.selectedID = t.ID
	} else {
		s.selectedID = ""
	}
	if prev != s.selectedID {
		s.version++
	}
	return t, ok
}

// AddColumn appends a column to trackID. The track is not required to exist.
func (s *Store) AddColumn(trackID string, f domain.ColumnFields) domain.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Column{
		ID:         s.newID(),
		TrackID:    trackID,
		Title:      f.Title,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		Type:       f.Type,
		SubColumns: []domain.SubColumn{},
	}
	s.columns = appendCopy(s.columns, c)
	s.version++
	return c
}

// AddSubColumn appends a new sub-column under parentID, which may name a
// column or a sub-column at any depth in any track. Columns are searched in
// order, each depth-first; the first match receives the new item. It
// reports false and leaves the forest unchanged when nothing matches.
//
// Exactly one item is inserted even when an ID appears more than once in
// the forest: the search stops at the first hit and later duplicates are
// left untouched. Do not change this to insert under every match; see
// TestAddSubColumn_FirstMatchOnly.
func (s *Store) AddSubColumn(parentID string, f domain.SubColumnFields) (domain.SubColumn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	child := domain.SubColumn{
		ParentID: parentID,
		Speaker:  f.Speaker,
		Duration: f.Duration,
		Title:    f.Title,
		Notes:    f.Notes,
	}

	for i := range s.columns {
		col := s.columns[i]
		var subs []domain.SubColumn
		if col.ID == parentID {
			child.ID = s.newID()
			subs = appendCopy(col.SubColumns, child)
		} else {
			idx, ok := locate(col.SubColumns, parentID)
			if !ok {
				continue
			}
			child.ID = s.newID()
			subs = insertAlong(col.SubColumns, idx, child)
		}

		next := cloneSlice(s.columns)
		next[i].SubColumns = subs
		s.columns = next
		s.version++
		return child, true
	}
	return domain.SubColumn{}, false
}

// Restore replaces the whole forest, e.g. with state loaded from storage.
// The selection is kept only if the selected track still exists.
func (s *Store) Restore(tracks []domain.Track, columns []domain.Column, selectedID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = cloneSlice(tracks)
	s.columns = cloneSlice(columns)
	s.selectedID = ""
	if _, ok := findTrack(s.tracks, selectedID); ok {
		s.selectedID = selectedID
	}
	s.version++
}

func findTrack(tracks []domain.Track, id string) (domain.Track, bool) {
	if id == "" {
		return domain.Track{}, false
	}
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Track{}, false
}
