package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a schedule import file. Files
// may be written in YAML or JSON.
type ImportSchema struct {
	Tracks []TrackImport `yaml:"tracks" json:"tracks"`
	// Select names the track to select after import.
	Select string `yaml:"select,omitempty" json:"select,omitempty"`
}

// TrackImport defines a track and its columns.
type TrackImport struct {
	Name        string         `yaml:"name" json:"name"`
	Start       string         `yaml:"start" json:"start"`
	End         string         `yaml:"end" json:"end"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Columns     []ColumnImport `yaml:"columns,omitempty" json:"columns,omitempty"`
}

// ColumnImport defines a column and its top-level items.
type ColumnImport struct {
	Title string       `yaml:"title" json:"title"`
	Start string       `yaml:"start" json:"start"`
	End   string       `yaml:"end" json:"end"`
	Type  string       `yaml:"type,omitempty" json:"type,omitempty"`
	Items []ItemImport `yaml:"items,omitempty" json:"items,omitempty"`
}

// ItemImport defines a sub-column. Duration defaults to
// domain.DefaultSubColumnDuration when omitted.
type ItemImport struct {
	Title    string       `yaml:"title" json:"title"`
	Speaker  string       `yaml:"speaker,omitempty" json:"speaker,omitempty"`
	Duration *int         `yaml:"duration,omitempty" json:"duration,omitempty"`
	Notes    string       `yaml:"notes,omitempty" json:"notes,omitempty"`
	Items    []ItemImport `yaml:"items,omitempty" json:"items,omitempty"`
}

// LoadImportSchema reads and parses a schedule import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses YAML or JSON import data. Unknown keys are
// rejected.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing import file: file is empty")
		}
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
