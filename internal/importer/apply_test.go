package importer

import (
	"testing"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Conference(t *testing.T) {
	schema, err := LoadImportSchema("testdata/conference.yaml")
	require.NoError(t, err)

	s := store.New(store.WithoutSeed())
	res, err := Apply(schema, s)
	require.NoError(t, err)

	assert.Len(t, res.Tracks, 2)
	assert.Equal(t, 3, res.Columns)
	assert.Equal(t, 5, res.SubColumns)

	snap := s.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "Workshops", snap.Selected.Name)
	assert.Equal(t, res.Selected, snap.Selected.ID)

	cols := snap.ColumnsFor(res.Tracks[0].ID)
	require.Len(t, cols, 2)
	assert.Equal(t, domain.ColumnSession, cols[0].Type)
	assert.Equal(t, domain.ColumnLunch, cols[1].Type)

	items := cols[0].SubColumns
	require.Len(t, items, 3)
	assert.Equal(t, cols[0].ID, items[0].ParentID)
	assert.Equal(t, "Program Chair", items[0].Speaker)
	assert.Equal(t, domain.DefaultSubColumnDuration, items[2].Duration)
	require.Len(t, items[1].SubColumns, 2)
	assert.Equal(t, items[1].ID, items[1].SubColumns[0].ParentID)

	workshop := snap.ColumnsFor(res.Tracks[1].ID)
	require.Len(t, workshop, 1)
	assert.Equal(t, domain.DefaultColumnType, workshop[0].Type)
}

func TestApply_DoesNotSelectWithoutSelect(t *testing.T) {
	s := store.New(store.WithoutSeed())
	res, err := Apply(validMinimalSchema(), s)
	require.NoError(t, err)

	assert.Empty(t, res.Selected)
	assert.Nil(t, s.Snapshot().Selected)
}

func TestApply_IDsAreFresh(t *testing.T) {
	s := store.New(store.WithoutSeed())
	_, err := Apply(validMinimalSchema(), s)
	require.NoError(t, err)
	_, err = Apply(validMinimalSchema(), s)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Tracks, 2)
	assert.NotEqual(t, snap.Tracks[0].ID, snap.Tracks[1].ID)
	assert.NoError(t, domain.CheckForest(snap.Tracks, snap.Columns))
}

type rejectingTarget struct {
	*store.Store
}

func (rejectingTarget) AddSubColumn(string, domain.SubColumnFields) (domain.SubColumn, bool) {
	return domain.SubColumn{}, false
}

func TestApply_ParentNotFound(t *testing.T) {
	_, err := Apply(validMinimalSchema(), rejectingTarget{store.New(store.WithoutSeed())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `item "Intro"`)
}
