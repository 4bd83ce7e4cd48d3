package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/trackflow/internal/db"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/importer"
	"github.com/alexanderramin/trackflow/internal/layout"
	"github.com/alexanderramin/trackflow/internal/repository"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/alexanderramin/trackflow/internal/store"
)

type scheduleService struct {
	mu       sync.Mutex
	store    *store.Store
	uow      db.UnitOfWork
	newRepo  func(db.DBTX) repository.ScheduleRepo
	observer UseCaseObserver
}

// NewScheduleService wraps st. When uow is nil the schedule lives only in
// memory; otherwise every applied mutation is saved in one transaction and
// undone in st if the save fails.
func NewScheduleService(
	st *store.Store,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		store: st,
		uow:   uow,
		newRepo: func(tx db.DBTX) repository.ScheduleRepo {
			return repository.NewSQLiteScheduleRepo(tx)
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *scheduleService) Load(ctx context.Context) (found bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		fields["found"] = found
		s.observe(ctx, "load-schedule", startedAt, fields, err)
	}()

	if s.uow == nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var state repository.ScheduleState
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var loadErr error
		state, loadErr = s.newRepo(tx).Load(ctx)
		return loadErr
	})
	if err != nil {
		return false, fmt.Errorf("loading schedule: %w", err)
	}

	if !state.Initialized {
		// Persist the seeded state so its ids survive the next run.
		if err = s.save(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	s.store.Restore(state.Tracks, state.Columns, state.SelectedID)
	fields["track_count"] = len(state.Tracks)
	fields["column_count"] = len(state.Columns)
	return true, nil
}

func (s *scheduleService) CreateTrack(ctx context.Context, f domain.TrackFields) (track domain.Track, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"name": f.Name}
	defer func() { s.observe(ctx, "create-track", startedAt, fields, err) }()

	err = s.mutate(ctx, func() (bool, error) {
		track = s.store.AddTrack(f)
		fields["track_id"] = track.ID
		return true, nil
	})
	if err != nil {
		return domain.Track{}, err
	}
	return track, nil
}

func (s *scheduleService) EditTrack(ctx context.Context, id string, f domain.TrackFields) (ok bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"track_id": id}
	defer func() {
		fields["applied"] = ok
		s.observe(ctx, "edit-track", startedAt, fields, err)
	}()

	err = s.mutate(ctx, func() (bool, error) {
		ok = s.store.EditTrack(id, f)
		return ok, nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *scheduleService) SelectTrack(ctx context.Context, id string) (track domain.Track, ok bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"track_id": id}
	defer func() {
		fields["applied"] = ok
		s.observe(ctx, "select-track", startedAt, fields, err)
	}()

	err = s.mutate(ctx, func() (bool, error) {
		track, ok = s.store.SelectTrack(id)
		return true, nil
	})
	if err != nil {
		return domain.Track{}, false, err
	}
	return track, ok, nil
}

func (s *scheduleService) CreateColumn(ctx context.Context, trackID string, f domain.ColumnFields) (col domain.Column, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"track_id": trackID, "title": f.Title}
	defer func() { s.observe(ctx, "create-column", startedAt, fields, err) }()

	err = s.mutate(ctx, func() (bool, error) {
		col = s.store.AddColumn(trackID, f)
		fields["column_id"] = col.ID
		return true, nil
	})
	if err != nil {
		return domain.Column{}, err
	}
	return col, nil
}

func (s *scheduleService) CreateSubColumn(ctx context.Context, parentID string, f domain.SubColumnFields) (sub domain.SubColumn, ok bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"parent_id": parentID, "title": f.Title, "duration": f.Duration}
	defer func() {
		fields["applied"] = ok
		s.observe(ctx, "create-sub-column", startedAt, fields, err)
	}()

	err = s.mutate(ctx, func() (bool, error) {
		sub, ok = s.store.AddSubColumn(parentID, f)
		return ok, nil
	})
	if err != nil {
		return domain.SubColumn{}, false, err
	}
	return sub, ok, nil
}

func (s *scheduleService) Import(ctx context.Context, schema *importer.ImportSchema) (res *importer.Result, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"track_count": len(schema.Tracks)}
	defer func() { s.observe(ctx, "import-schedule", startedAt, fields, err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	err = s.mutate(ctx, func() (bool, error) {
		var applyErr error
		res, applyErr = importer.Apply(schema, s.store)
		if applyErr != nil {
			return true, fmt.Errorf("applying import: %w", applyErr)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	fields["column_count"] = res.Columns
	fields["sub_column_count"] = res.SubColumns
	return res, nil
}

// mutate runs fn against the store and saves the result when fn reports a
// change. If fn or the save fails, the state from before fn is restored.
func (s *scheduleService) mutate(ctx context.Context, fn func() (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.store.Snapshot()
	changed, err := fn()
	if err != nil {
		s.restore(before)
		return err
	}
	if !changed || s.uow == nil || s.store.Snapshot().Version == before.Version {
		return nil
	}
	if err := s.save(ctx); err != nil {
		s.restore(before)
		return err
	}
	return nil
}

func (s *scheduleService) restore(snap store.Snapshot) {
	s.store.Restore(snap.Tracks, snap.Columns, snap.SelectedID())
}

func (s *scheduleService) save(ctx context.Context) error {
	snap := s.store.Snapshot()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.newRepo(tx).Save(ctx, repository.ScheduleState{
			Tracks:      snap.Tracks,
			Columns:     snap.Columns,
			SelectedID:  snap.SelectedID(),
			Initialized: true,
		})
	})
	if err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Snapshot(ctx context.Context) store.Snapshot {
	return s.store.Snapshot()
}

func (s *scheduleService) trackFor(snap store.Snapshot, trackID string) (domain.Track, error) {
	if trackID == "" {
		if snap.Selected == nil {
			return domain.Track{}, ErrNoTrack
		}
		return *snap.Selected, nil
	}
	t, ok := snap.Track(trackID)
	if !ok {
		return domain.Track{}, fmt.Errorf("track %s: %w", trackID, ErrTrackNotFound)
	}
	return t, nil
}

func (s *scheduleService) Graph(ctx context.Context, trackID string) (tg TrackGraph, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"track_id": trackID}
	defer func() { s.observe(ctx, "layout-track", startedAt, fields, err) }()

	snap := s.store.Snapshot()
	track, err := s.trackFor(snap, trackID)
	if err != nil {
		return TrackGraph{}, err
	}

	g, warnings := layout.LayoutTrack(snap.ColumnsFor(track.ID))
	fields["node_count"] = len(g.Nodes)
	fields["edge_count"] = len(g.Edges)
	fields["warnings"] = warnings != nil
	return TrackGraph{Track: track, Graph: g, Warnings: warnings}, nil
}

func (s *scheduleService) Timetable(ctx context.Context, trackID string) (TrackTimetable, error) {
	snap := s.store.Snapshot()
	track, err := s.trackFor(snap, trackID)
	if err != nil {
		return TrackTimetable{}, err
	}

	cols := snap.ColumnsFor(track.ID)
	out := TrackTimetable{Track: track, Columns: make([]scheduler.TimedColumn, 0, len(cols))}
	var errs []error
	for _, c := range cols {
		tc, err := scheduler.Timetable(c)
		if err != nil {
			errs = append(errs, err)
		}
		out.Columns = append(out.Columns, tc)
	}
	out.Warnings = errors.Join(errs...)
	return out, nil
}

func (s *scheduleService) Check(ctx context.Context) error {
	snap := s.store.Snapshot()
	return domain.CheckForest(snap.Tracks, snap.Columns)
}

// ResolveID expands prefix to the one track, column or sub-column id it
// starts. An exact match always wins.
func (s *scheduleService) ResolveID(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("empty id: %w", ErrUnknownID)
	}
	snap := s.store.Snapshot()

	seen := map[string]bool{}
	var matches []string
	consider := func(id string) bool {
		if id == prefix {
			return true
		}
		if strings.HasPrefix(id, prefix) && !seen[id] {
			seen[id] = true
			matches = append(matches, id)
		}
		return false
	}

	for _, t := range snap.Tracks {
		if consider(t.ID) {
			return t.ID, nil
		}
	}
	for _, c := range snap.Columns {
		if consider(c.ID) {
			return c.ID, nil
		}
		exact := false
		domain.WalkSubColumns(c.SubColumns, func(sub *domain.SubColumn, _ int) bool {
			if exact {
				return false
			}
			exact = consider(sub.ID)
			return !exact
		})
		if exact {
			return prefix, nil
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%q: %w", prefix, ErrUnknownID)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d ids: %w", prefix, len(matches), ErrAmbiguousID)
	}
}
