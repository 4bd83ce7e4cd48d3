package domain

import (
	"fmt"
	"strings"
)

// ColumnType classifies a section within a track.
type ColumnType string

const (
	ColumnBreak        ColumnType = "break"
	ColumnSession      ColumnType = "session"
	ColumnLunch        ColumnType = "lunch"
	ColumnRegistration ColumnType = "registration"
	ColumnOther        ColumnType = "other"
)

// DefaultColumnType is the type preselected when creating a section.
const DefaultColumnType = ColumnSession

// ColumnTypes lists the accepted column types in display order.
var ColumnTypes = []ColumnType{
	ColumnSession,
	ColumnBreak,
	ColumnLunch,
	ColumnRegistration,
	ColumnOther,
}

// ValidColumnTypes is the canonical set of accepted column type strings.
var ValidColumnTypes = map[string]bool{
	"break": true, "session": true, "lunch": true,
	"registration": true, "other": true,
}

// Valid reports whether t is one of the known column types.
func (t ColumnType) Valid() bool {
	return ValidColumnTypes[string(t)]
}

// ParseColumnType converts user input into a ColumnType. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseColumnType(s string) (ColumnType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !ValidColumnTypes[v] {
		return "", fmt.Errorf("invalid column type %q (want break|session|lunch|registration|other)", s)
	}
	return ColumnType(v), nil
}
