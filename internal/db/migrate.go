package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateInitializedFlag(db); err != nil {
		return fmt.Errorf("backfilling initialized flag: %w", err)
	}
	return nil
}

// migrateInitializedFlag marks databases that already hold tracks as
// initialized, so the default track is not seeded on top of them.
func migrateInitializedFlag(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tracks`).Scan(&n); err != nil {
		return fmt.Errorf("counting tracks: %w", err)
	}
	if n == 0 {
		return nil
	}
	_, err := db.Exec(`INSERT OR IGNORE INTO schedule_meta (key, value) VALUES ('initialized', '1')`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tracks (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS columns (
		id          TEXT PRIMARY KEY,
		track_id    TEXT NOT NULL,
		title       TEXT NOT NULL,
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT 'session',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS sub_columns (
		id          TEXT PRIMARY KEY,
		column_id   TEXT NOT NULL REFERENCES columns(id) ON DELETE CASCADE,
		parent_id   TEXT REFERENCES sub_columns(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		speaker     TEXT NOT NULL DEFAULT '',
		duration    INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_columns_track ON columns(track_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_columns_column ON sub_columns(column_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_columns_parent ON sub_columns(parent_id)`,

	// Added after the first release.
	`ALTER TABLE tracks ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE sub_columns ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
