package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/db"
	"github.com/alexanderramin/trackflow/internal/domain"
)

const (
	metaSelectedTrack = "selected_track_id"
	metaInitialized   = "initialized"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// Save replaces every row, so it should run inside a transaction.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s ScheduleState) error {
	for _, table := range []string{"sub_columns", "columns", "tracks", "schedule_meta"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, t := range s.Tracks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO tracks (id, name, start_time, end_time, description, order_index)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Name, t.StartTime, t.EndTime, t.Description, i,
		)
		if err != nil {
			return fmt.Errorf("inserting track %q: %w", t.Name, err)
		}
	}

	for i, c := range s.Columns {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO columns (id, track_id, title, start_time, end_time, type, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.TrackID, c.Title, c.StartTime, c.EndTime, string(c.Type), i,
		)
		if err != nil {
			return fmt.Errorf("inserting column %q: %w", c.Title, err)
		}
		if err := r.insertSubColumns(ctx, c.ID, "", c.SubColumns); err != nil {
			return err
		}
	}

	if err := r.setMeta(ctx, metaInitialized, "1"); err != nil {
		return err
	}
	if s.SelectedID != "" {
		if err := r.setMeta(ctx, metaSelectedTrack, s.SelectedID); err != nil {
			return err
		}
	}
	return nil
}

// insertSubColumns writes subs parents first so parent_id references
// always resolve. Direct children of a column are stored with a NULL
// parent_id.
func (r *SQLiteScheduleRepo) insertSubColumns(ctx context.Context, columnID, parentID string, subs []domain.SubColumn) error {
	for i, s := range subs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sub_columns (id, column_id, parent_id, title, speaker, duration, notes, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, columnID, nullableString(parentID), s.Title, s.Speaker, s.Duration, s.Notes, i,
		)
		if err != nil {
			return fmt.Errorf("inserting sub-column %q: %w", s.Title, err)
		}
		if err := r.insertSubColumns(ctx, columnID, s.ID, s.SubColumns); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) setMeta(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schedule_meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Load(ctx context.Context) (ScheduleState, error) {
	var s ScheduleState

	meta, err := r.loadMeta(ctx)
	if err != nil {
		return s, err
	}
	s.Initialized = meta[metaInitialized] == "1"
	s.SelectedID = meta[metaSelectedTrack]

	if s.Tracks, err = r.loadTracks(ctx); err != nil {
		return s, err
	}
	if s.Columns, err = r.loadColumns(ctx); err != nil {
		return s, err
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) GetTrack(ctx context.Context, id string) (*domain.Track, error) {
	var t domain.Track
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, start_time, end_time, description FROM tracks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.StartTime, &t.EndTime, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("track: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning track: %w", err)
	}
	return &t, nil
}

func (r *SQLiteScheduleRepo) loadMeta(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM schedule_meta`)
	if err != nil {
		return nil, fmt.Errorf("listing schedule meta: %w", err)
	}
	defer rows.Close()

	meta := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning schedule meta row: %w", err)
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

func (r *SQLiteScheduleRepo) loadTracks(ctx context.Context) ([]domain.Track, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, start_time, end_time, description FROM tracks ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.Track
	for rows.Next() {
		var t domain.Track
		if err := rows.Scan(&t.ID, &t.Name, &t.StartTime, &t.EndTime, &t.Description); err != nil {
			return nil, fmt.Errorf("scanning track row: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func (r *SQLiteScheduleRepo) loadColumns(ctx context.Context) ([]domain.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, track_id, title, start_time, end_time, type FROM columns ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	var columns []domain.Column
	for rows.Next() {
		var c domain.Column
		var typ string
		if err := rows.Scan(&c.ID, &c.TrackID, &c.Title, &c.StartTime, &c.EndTime, &typ); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		c.Type = domain.ColumnType(typ)
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating columns: %w", err)
	}
	rows.Close()

	children, err := r.loadSubColumns(ctx)
	if err != nil {
		return nil, err
	}
	for i := range columns {
		columns[i].SubColumns = buildSubTree(children, columns[i].ID)
		if columns[i].SubColumns == nil {
			columns[i].SubColumns = []domain.SubColumn{}
		}
	}
	return columns, nil
}

// loadSubColumns returns every sub-column grouped by parent key, each group
// in order. Direct children of a column are keyed by the column id.
func (r *SQLiteScheduleRepo) loadSubColumns(ctx context.Context) (map[string][]domain.SubColumn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, column_id, parent_id, title, speaker, duration, notes
		FROM sub_columns ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing sub-columns: %w", err)
	}
	defer rows.Close()

	children := map[string][]domain.SubColumn{}
	for rows.Next() {
		var s domain.SubColumn
		var columnID string
		var parentID sql.NullString
		if err := rows.Scan(&s.ID, &columnID, &parentID, &s.Title, &s.Speaker, &s.Duration, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning sub-column row: %w", err)
		}
		key := stringFromNull(parentID)
		if key == "" {
			key = columnID
		}
		s.ParentID = key
		children[key] = append(children[key], s)
	}
	return children, rows.Err()
}

func buildSubTree(children map[string][]domain.SubColumn, parentID string) []domain.SubColumn {
	level := children[parentID]
	if len(level) == 0 {
		return nil
	}
	out := make([]domain.SubColumn, len(level))
	for i, s := range level {
		s.SubColumns = buildSubTree(children, s.ID)
		out[i] = s
	}
	return out
}
