package scheduler

import (
	"errors"
	"testing"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func ends(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.End
	}
	return out
}

func TestDeriveTimes_FlatSiblings(t *testing.T) {
	slots, err := DeriveTimes("09:00", []int{30, 45, 15})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:15"}, starts(slots))
	assert.Equal(t, []string{"09:30", "10:15", "10:30"}, ends(slots))
}

func TestDeriveTimes_Idempotent(t *testing.T) {
	durations := []int{30, 45, 15}
	first, err := DeriveTimes("09:00", durations)
	require.NoError(t, err)
	second, err := DeriveTimes("09:00", durations)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{30, 45, 15}, durations, "input must not be modified")
}

func TestDeriveTimes_FirstStartIsAnchorVerbatim(t *testing.T) {
	slots, err := DeriveTimes("9:00", []int{30, 30})
	require.NoError(t, err)
	assert.Equal(t, "9:00", slots[0].Start)
	assert.Equal(t, "09:30", slots[0].End)
	assert.Equal(t, "09:30", slots[1].Start)
}

func TestDeriveTimes_Overflow(t *testing.T) {
	slots, err := DeriveTimes("23:50", []int{30})
	require.NoError(t, err)
	assert.Equal(t, "24:20", slots[0].End)
}

func TestDeriveTimes_MalformedAnchor(t *testing.T) {
	_, err := DeriveTimes("nine", []int{30})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedTime))

	_, err = DeriveTimes("", nil)
	assert.True(t, errors.Is(err, ErrMalformedTime))
}

func nestedFixture() []domain.SubColumn {
	return []domain.SubColumn{
		{ID: "s0", Title: "Opening", Duration: 30},
		{ID: "s1", Title: "Panel", Duration: 45, SubColumns: []domain.SubColumn{
			{ID: "s1a", ParentID: "s1", Title: "Intro", Duration: 20},
			{ID: "s1b", ParentID: "s1", Title: "Q&A", Duration: 20},
		}},
		{ID: "s2", Title: "Wrap-up", Duration: 15},
	}
}

func TestDeriveTree_Nested(t *testing.T) {
	items, err := DeriveTree("09:00", nestedFixture())
	require.NoError(t, err)
	require.Len(t, items, 3)

	panel := items[1]
	assert.Equal(t, "09:30", panel.Start)
	assert.Equal(t, "10:15", panel.End)
	require.Len(t, panel.Children, 2)
	assert.Equal(t, "09:30", panel.Children[0].Start)
	assert.Equal(t, "09:50", panel.Children[1].Start)
	assert.Equal(t, "10:10", panel.Children[1].End, "children are independent of the parent's end")
	assert.Equal(t, 1, panel.Children[0].Depth)

	assert.Equal(t, "10:15", items[2].Start, "siblings after a subtree use only sibling durations")
}

func TestDeriveTree_MatchesFlatDerivation(t *testing.T) {
	subs := nestedFixture()
	items, err := DeriveTree("09:00", subs)
	require.NoError(t, err)
	slots, err := DeriveTimes("09:00", []int{30, 45, 15})
	require.NoError(t, err)
	for i := range slots {
		assert.Equal(t, slots[i].Start, items[i].Start)
		assert.Equal(t, slots[i].End, items[i].End)
	}
}

func TestDeriveTree_EmptyNeedsNoAnchor(t *testing.T) {
	items, err := DeriveTree("", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeriveTree_DeepOverflowAnchorsChildren(t *testing.T) {
	subs := []domain.SubColumn{
		{ID: "a", Duration: 30},
		{ID: "b", Duration: 30, SubColumns: []domain.SubColumn{{ID: "b1", Duration: 10}}},
	}
	items, err := DeriveTree("23:50", subs)
	require.NoError(t, err)
	assert.Equal(t, "24:20", items[1].Start)
	assert.Equal(t, "24:20", items[1].Children[0].Start)
	assert.Equal(t, "24:30", items[1].Children[0].End)
}

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 90, TotalMinutes(nestedFixture()))
	assert.Equal(t, 0, TotalMinutes(nil))
}
