package cli

import (
	"strings"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/viewstate"
	"github.com/spf13/pflag"
)

// columnTypeValue is a pflag.Value that accepts only known section types.
type columnTypeValue struct {
	target *domain.ColumnType
}

var _ pflag.Value = (*columnTypeValue)(nil)

func newColumnTypeValue(def domain.ColumnType, target *domain.ColumnType) *columnTypeValue {
	*target = def
	return &columnTypeValue{target: target}
}

func (v *columnTypeValue) String() string { return string(*v.target) }
func (v *columnTypeValue) Type() string   { return "type" }

func (v *columnTypeValue) Set(s string) error {
	t, err := domain.ParseColumnType(s)
	if err != nil {
		return err
	}
	*v.target = t
	return nil
}

func columnTypeNames() string {
	names := make([]string, len(domain.ColumnTypes))
	for i, t := range domain.ColumnTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

// modeValue is a pflag.Value for the track display mode.
type modeValue struct {
	target *viewstate.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func newModeValue(def viewstate.Mode, target *viewstate.Mode) *modeValue {
	*target = def
	return &modeValue{target: target}
}

func (v *modeValue) String() string { return string(*v.target) }
func (v *modeValue) Type() string   { return "mode" }

func (v *modeValue) Set(s string) error {
	m, err := viewstate.ParseMode(s)
	if err != nil {
		return err
	}
	*v.target = m
	return nil
}
