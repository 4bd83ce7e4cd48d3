// Package viewstate holds the UI-only selection state: which track, column
// and parent item are targeted, which dialogs are open, and how the active
// track is displayed. It never touches the schedule itself.
package viewstate

import (
	"fmt"
	"strings"
)

// Modal identifies a dialog. Several may be open at once.
type Modal uint8

const (
	ModalCreateTrack Modal = 1 << iota
	ModalEditTrack
	ModalColumn
	ModalSubColumn
)

func (m Modal) String() string {
	var names []string
	for _, f := range []struct {
		flag Modal
		name string
	}{
		{ModalCreateTrack, "create-track"},
		{ModalEditTrack, "edit-track"},
		{ModalColumn, "column"},
		{ModalSubColumn, "sub-column"},
	} {
		if m&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Mode is the display mode of the active track.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// Modes lists every display mode.
var Modes = []Mode{ModeGrid, ModeList}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeGrid, ModeList:
		return m, nil
	}
	return "", fmt.Errorf("invalid view mode %q (valid: grid, list)", s)
}

// State is the selection and dialog state of one UI session. The zero
// value is not ready for use; call New.
type State struct {
	ActiveTrackID  string
	ActiveColumnID string
	ActiveParentID string
	Modals         Modal
	Mode           Mode
}

// New returns a State in grid mode with nothing targeted.
func New() *State {
	return &State{Mode: ModeGrid}
}

// SetActiveTrack targets the track that column forms create into.
func (s *State) SetActiveTrack(id string) { s.ActiveTrackID = id }

// SetActiveColumn targets the section under the cursor.
func (s *State) SetActiveColumn(id string) { s.ActiveColumnID = id }

// SetActiveParent targets the section or sub-section that receives the next
// sub-section.
func (s *State) SetActiveParent(id string) { s.ActiveParentID = id }

// OpenModal opens the dialogs in m; others stay as they are.
func (s *State) OpenModal(m Modal) { s.Modals |= m }

// CloseModal closes the dialogs in m.
func (s *State) CloseModal(m Modal) { s.Modals &^= m }

// IsOpen reports whether every dialog in m is open.
func (s *State) IsOpen(m Modal) bool { return m != 0 && s.Modals&m == m }

// AnyOpen reports whether any dialog is open.
func (s *State) AnyOpen() bool { return s.Modals != 0 }

// SetMode sets the display mode.
func (s *State) SetMode(m Mode) { s.Mode = m }

// ToggleMode switches between grid and list and returns the new mode.
func (s *State) ToggleMode() Mode {
	if s.Mode == ModeList {
		s.Mode = ModeGrid
	} else {
		s.Mode = ModeList
	}
	return s.Mode
}

// BeginSubColumn targets parentID (a column or sub-column inside columnID)
// and opens the sub-column dialog.
func (s *State) BeginSubColumn(columnID, parentID string) {
	s.ActiveColumnID = columnID
	s.ActiveParentID = parentID
	s.OpenModal(ModalSubColumn)
}

// FinishSubColumn closes the sub-column dialog and clears the parent
// target. The column target stays set.
func (s *State) FinishSubColumn() {
	s.CloseModal(ModalSubColumn)
	s.ActiveParentID = ""
}
