package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnType_Valid(t *testing.T) {
	cases := map[string]ColumnType{
		"session":      ColumnSession,
		"BREAK":        ColumnBreak,
		" lunch ":      ColumnLunch,
		"Registration": ColumnRegistration,
		"other":        ColumnOther,
	}
	for in, want := range cases {
		got, err := ParseColumnType(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseColumnType_Invalid(t *testing.T) {
	_, err := ParseColumnType("keynote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keynote")
}

func TestColumnTypes_AllValid(t *testing.T) {
	for _, ct := range ColumnTypes {
		assert.True(t, ct.Valid(), "type %q", ct)
	}
	assert.Len(t, ColumnTypes, len(ValidColumnTypes))
	assert.False(t, ColumnType("").Valid())
}

func TestTrackWithFields_ReplacesAllEditableFields(t *testing.T) {
	tr := Track{ID: "t1", Name: "Old", StartTime: "09:00", EndTime: "17:00", Description: "desc"}
	got := tr.WithFields(TrackFields{Name: "New", StartTime: "10:00"})

	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Empty(t, got.EndTime)
	assert.Empty(t, got.Description)
	assert.Equal(t, "Old", tr.Name, "receiver must not change")
}
