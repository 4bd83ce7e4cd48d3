package scheduler

import (
	"testing"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetable_FlattenDocumentOrder(t *testing.T) {
	col := domain.Column{ID: "c1", Title: "Morning", StartTime: "09:00", SubColumns: nestedFixture()}
	tc, err := Timetable(col)
	require.NoError(t, err)

	rows := tc.Flatten()
	require.Len(t, rows, 5)

	var ids, startTimes []string
	var depths []int
	for _, r := range rows {
		ids = append(ids, r.ItemID)
		startTimes = append(startTimes, r.Start)
		depths = append(depths, r.Depth)
		assert.Equal(t, "c1", r.ColumnID)
	}
	assert.Equal(t, []string{"s0", "s1", "s1a", "s1b", "s2"}, ids)
	assert.Equal(t, []string{"09:00", "09:30", "09:30", "09:50", "10:15"}, startTimes)
	assert.Equal(t, []int{0, 0, 1, 1, 0}, depths)
}

func TestTimetable_MalformedColumnStart(t *testing.T) {
	col := domain.Column{ID: "c1", Title: "Broken", StartTime: "", SubColumns: nestedFixture()}
	tc, err := Timetable(col)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
	assert.Equal(t, "c1", tc.Column.ID)

	rows := tc.Flatten()
	require.Len(t, rows, 5, "every item is kept without labels")
	for _, r := range rows {
		assert.Empty(t, r.Start, r.ItemID)
		assert.Empty(t, r.End, r.ItemID)
	}
}

func TestTimetable_GrandchildFailureKeepsSiblings(t *testing.T) {
	col := domain.Column{ID: "c1", Title: "Late", StartTime: "00:10", SubColumns: []domain.SubColumn{
		{ID: "a", Title: "A", Duration: 20},
		{ID: "p", Title: "P", Duration: 5, SubColumns: []domain.SubColumn{
			{ID: "q", ParentID: "p", Title: "Q", Duration: -60},
		}},
		{ID: "b", Title: "B", Duration: 10},
	}}

	tc, err := Timetable(col)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTime)
	assert.Contains(t, err.Error(), `column "Late": children of "P"`)

	got := map[string]Slot{}
	for _, r := range tc.Flatten() {
		got[r.ItemID] = Slot{Start: r.Start, End: r.End}
	}
	assert.Equal(t, map[string]Slot{
		"a": {Start: "00:10", End: "00:30"},
		"p": {Start: "00:30", End: "00:35"},
		"q": {},
		"b": {Start: "00:35", End: "00:45"},
	}, got)
}
