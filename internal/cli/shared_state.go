package cli

import (
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/viewstate"
)

// SharedState holds context shared across all views via pointer. The
// embedded viewstate.State carries the active targets, open dialogs and
// display mode.
type SharedState struct {
	App *App
	*viewstate.State

	ActiveTrackName string

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{App: app, State: viewstate.New()}
}

// SetActiveTrackFrom targets t and clears the section and parent targets.
func (s *SharedState) SetActiveTrackFrom(t domain.Track) {
	s.SetActiveTrack(t.ID)
	s.SetActiveColumn("")
	s.SetActiveParent("")
	s.ActiveTrackName = t.Name
}

// ClearTrackContext resets every target.
func (s *SharedState) ClearTrackContext() {
	s.SetActiveTrack("")
	s.SetActiveColumn("")
	s.SetActiveParent("")
	s.ActiveTrackName = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
