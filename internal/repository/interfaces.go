package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/trackflow/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ScheduleState is the persisted form of the whole schedule.
type ScheduleState struct {
	Tracks     []domain.Track
	Columns    []domain.Column
	SelectedID string
	// Initialized is false until the first Save, so callers can tell an
	// empty schedule from one that was never written.
	Initialized bool
}

type ScheduleRepo interface {
	Load(ctx context.Context) (ScheduleState, error)
	Save(ctx context.Context, s ScheduleState) error
	GetTrack(ctx context.Context, id string) (*domain.Track, error)
}
