package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImportSchema_YAML(t *testing.T) {
	schema, err := LoadImportSchema("testdata/conference.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Workshops", schema.Select)
	require.Len(t, schema.Tracks, 2)

	main := schema.Tracks[0]
	assert.Equal(t, "Main Track", main.Name)
	assert.Equal(t, "09:00", main.Start)
	require.Len(t, main.Columns, 2)

	keynote := main.Columns[0]
	require.Len(t, keynote.Items, 3)
	require.NotNil(t, keynote.Items[1].Duration)
	assert.Equal(t, 60, *keynote.Items[1].Duration)
	assert.Len(t, keynote.Items[1].Items, 2)
	assert.Nil(t, keynote.Items[2].Duration)
}

func TestParseImportSchema_JSON(t *testing.T) {
	data := []byte(`{"tracks":[{"name":"T","start":"08:00","end":"09:00",
		"columns":[{"title":"C","start":"08:00","end":"09:00","items":[{"title":"I","duration":5}]}]}]}`)

	schema, err := ParseImportSchema(data)
	require.NoError(t, err)
	require.Len(t, schema.Tracks, 1)
	assert.Equal(t, 5, *schema.Tracks[0].Columns[0].Items[0].Duration)
}

func TestParseImportSchema_UnknownField(t *testing.T) {
	_, err := ParseImportSchema([]byte("tracks:\n  - name: T\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParseImportSchema_Empty(t *testing.T) {
	_, err := ParseImportSchema(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
