package testutil

import (
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/google/uuid"
)

// Track options
type TrackOption func(*domain.Track)

func WithTrackID(id string) TrackOption {
	return func(t *domain.Track) {
		t.ID = id
	}
}

func WithTrackHours(start, end string) TrackOption {
	return func(t *domain.Track) {
		t.StartTime = start
		t.EndTime = end
	}
}

func WithDescription(d string) TrackOption {
	return func(t *domain.Track) {
		t.Description = d
	}
}

func NewTestTrack(name string, opts ...TrackOption) domain.Track {
	t := domain.Track{
		ID:        uuid.New().String(),
		Name:      name,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Column options
type ColumnOption func(*domain.Column)

func WithColumnID(id string) ColumnOption {
	return func(c *domain.Column) {
		c.ID = id
	}
}

func WithColumnHours(start, end string) ColumnOption {
	return func(c *domain.Column) {
		c.StartTime = start
		c.EndTime = end
	}
}

func WithColumnType(t domain.ColumnType) ColumnOption {
	return func(c *domain.Column) {
		c.Type = t
	}
}

// WithSubColumns attaches subs as the column's direct children and points
// their ParentID at the column.
func WithSubColumns(subs ...domain.SubColumn) ColumnOption {
	return func(c *domain.Column) {
		for i := range subs {
			subs[i].ParentID = c.ID
		}
		c.SubColumns = append(c.SubColumns, subs...)
	}
}

func NewTestColumn(trackID, title string, opts ...ColumnOption) domain.Column {
	c := domain.Column{
		ID:         uuid.New().String(),
		TrackID:    trackID,
		Title:      title,
		StartTime:  "09:00",
		EndTime:    "10:00",
		Type:       domain.DefaultColumnType,
		SubColumns: []domain.SubColumn{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SubColumn options
type SubColumnOption func(*domain.SubColumn)

func WithSubID(id string) SubColumnOption {
	return func(s *domain.SubColumn) {
		s.ID = id
	}
}

func WithSpeaker(name string) SubColumnOption {
	return func(s *domain.SubColumn) {
		s.Speaker = name
	}
}

func WithNotes(n string) SubColumnOption {
	return func(s *domain.SubColumn) {
		s.Notes = n
	}
}

// WithChildren nests children under the sub-column.
func WithChildren(children ...domain.SubColumn) SubColumnOption {
	return func(s *domain.SubColumn) {
		for i := range children {
			children[i].ParentID = s.ID
		}
		s.SubColumns = append(s.SubColumns, children...)
	}
}

func NewTestSubColumn(title string, duration int, opts ...SubColumnOption) domain.SubColumn {
	s := domain.SubColumn{
		ID:       uuid.New().String(),
		Title:    title,
		Duration: duration,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
