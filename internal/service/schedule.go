package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/importer"
	"github.com/alexanderramin/trackflow/internal/layout"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/alexanderramin/trackflow/internal/store"
)

var (
	// ErrNoTrack is returned by track-scoped reads when no track id is
	// given and none is selected.
	ErrNoTrack = errors.New("no track selected")
	// ErrTrackNotFound is returned by track-scoped reads for an unknown id.
	ErrTrackNotFound = errors.New("track not found")
	// ErrAmbiguousID is returned by ResolveID when a prefix matches more
	// than one id.
	ErrAmbiguousID = errors.New("ambiguous id")
	// ErrUnknownID is returned by ResolveID when nothing matches.
	ErrUnknownID = errors.New("unknown id")
)

// ScheduleService exposes the schedule's creation intents and read model.
// Mutations that find nothing to change report false instead of failing;
// errors come only from persistence or validation.
type ScheduleService interface {
	Load(ctx context.Context) (found bool, err error)

	CreateTrack(ctx context.Context, f domain.TrackFields) (domain.Track, error)
	EditTrack(ctx context.Context, id string, f domain.TrackFields) (bool, error)
	SelectTrack(ctx context.Context, id string) (domain.Track, bool, error)
	CreateColumn(ctx context.Context, trackID string, f domain.ColumnFields) (domain.Column, error)
	CreateSubColumn(ctx context.Context, parentID string, f domain.SubColumnFields) (domain.SubColumn, bool, error)
	Import(ctx context.Context, schema *importer.ImportSchema) (*importer.Result, error)

	Snapshot(ctx context.Context) store.Snapshot
	Graph(ctx context.Context, trackID string) (TrackGraph, error)
	Timetable(ctx context.Context, trackID string) (TrackTimetable, error)
	Check(ctx context.Context) error
	ResolveID(ctx context.Context, prefix string) (string, error)
}

// TrackGraph is the laid-out graph of one track. Warnings holds time
// derivation failures; the graph is complete regardless.
type TrackGraph struct {
	Track    domain.Track
	Graph    layout.Graph
	Warnings error
}

// TrackTimetable holds the derived times of every column of one track.
// Items whose times could not be derived keep empty labels and are
// reported in Warnings.
type TrackTimetable struct {
	Track    domain.Track
	Columns  []scheduler.TimedColumn
	Warnings error
}
