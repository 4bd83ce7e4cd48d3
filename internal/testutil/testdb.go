package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/trackflow/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory schedule database that is closed
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test schedule database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
