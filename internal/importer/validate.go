package importer

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
)

// ValidateImportSchema checks the import schema for errors before it is
// applied. Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Tracks) == 0 {
		errs = append(errs, fmt.Errorf("tracks: at least one track is required"))
	}

	names := make(map[string]bool, len(schema.Tracks))
	for i, t := range schema.Tracks {
		path := fmt.Sprintf("tracks[%d]", i)
		errs = append(errs, validateTrack(path, &t)...)
		names[t.Name] = true
	}

	if schema.Select != "" && !names[schema.Select] {
		errs = append(errs, fmt.Errorf("select: no track named %q", schema.Select))
	}

	return errs
}

func validateTrack(path string, t *TrackImport) []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	errs = append(errs, validateClock(path+".start", t.Start)...)
	errs = append(errs, validateClock(path+".end", t.End)...)

	for i, c := range t.Columns {
		errs = append(errs, validateColumn(fmt.Sprintf("%s.columns[%d]", path, i), &c)...)
	}
	return errs
}

func validateColumn(path string, c *ColumnImport) []error {
	var errs []error

	if c.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", path))
	}
	errs = append(errs, validateClock(path+".start", c.Start)...)
	errs = append(errs, validateClock(path+".end", c.End)...)
	if c.Type != "" {
		if _, err := domain.ParseColumnType(c.Type); err != nil {
			errs = append(errs, fmt.Errorf("%s.type: %w", path, err))
		}
	}

	errs = append(errs, validateItems(path, c.Items)...)
	return errs
}

func validateItems(parent string, items []ItemImport) []error {
	var errs []error
	for i, it := range items {
		path := fmt.Sprintf("%s.items[%d]", parent, i)
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", path))
		}
		if it.Duration != nil && *it.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be >= 0, got %d", path, *it.Duration))
		}
		errs = append(errs, validateItems(path, it.Items)...)
	}
	return errs
}

func validateClock(path, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", path)}
	}
	if _, err := scheduler.ParseClock(value); err != nil {
		return []error{fmt.Errorf("%s: %w", path, err)}
	}
	return nil
}
