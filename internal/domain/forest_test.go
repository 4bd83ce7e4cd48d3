package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []Column {
	return []Column{
		{
			ID: "c1",
			SubColumns: []SubColumn{
				{ID: "a", SubColumns: []SubColumn{
					{ID: "a1"},
					{ID: "a2", SubColumns: []SubColumn{{ID: "a2x"}}},
				}},
				{ID: "b"},
			},
		},
		{ID: "c2", SubColumns: []SubColumn{{ID: "z"}}},
	}
}

func TestWalkSubColumns_PreOrderWithDepth(t *testing.T) {
	cols := sampleForest()
	var ids []string
	var depths []int
	WalkSubColumns(cols[0].SubColumns, func(s *SubColumn, depth int) bool {
		ids = append(ids, s.ID)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"a", "a1", "a2", "a2x", "b"}, ids)
	assert.Equal(t, []int{0, 1, 1, 2, 0}, depths)
}

func TestWalkSubColumns_SkipChildren(t *testing.T) {
	cols := sampleForest()
	var ids []string
	WalkSubColumns(cols[0].SubColumns, func(s *SubColumn, _ int) bool {
		ids = append(ids, s.ID)
		return s.ID != "a"
	})
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestCountAndFindSubColumns(t *testing.T) {
	cols := sampleForest()
	assert.Equal(t, 5, CountSubColumns(cols[0].SubColumns))

	s, depth, ok := FindSubColumn(cols[0].SubColumns, "a2x")
	require.True(t, ok)
	assert.Equal(t, "a2x", s.ID)
	assert.Equal(t, 2, depth)

	_, _, ok = FindSubColumn(cols[0].SubColumns, "missing")
	assert.False(t, ok)
}

func TestCheckForest_Unique(t *testing.T) {
	tracks := []Track{{ID: "t1"}}
	assert.NoError(t, CheckForest(tracks, sampleForest()))
}

func TestCheckForest_ReportsDuplicates(t *testing.T) {
	cols := sampleForest()
	cols[1].SubColumns = append(cols[1].SubColumns, SubColumn{ID: "a1"})
	tracks := []Track{{ID: "c2"}}

	err := CheckForest(tracks, cols)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Contains(t, err.Error(), `"a1" used 2 times`)
	assert.Contains(t, err.Error(), `"c2" used 2 times`)
}
