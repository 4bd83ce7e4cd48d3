package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
	"github.com/alexanderramin/trackflow/internal/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trackflowHuhTheme returns a huh theme matching the formatter palette.
func trackflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// shellError formats err the way the shell prints failed commands.
func shellError(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}

func formErrorOutput(err error) tea.Msg {
	return cmdOutputMsg{output: shellError(err)}
}

func formSuccessOutput(msg string) tea.Msg {
	return cmdOutputMsg{output: msg}
}

// ── Validators ──────────────────────────────────────────────────────────────

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// validateClockInput accepts HH:MM.
func validateClockInput(s string) error {
	if _, err := scheduler.ParseClock(s); err != nil {
		return errors.New("enter a time as HH:MM")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

// parseDuration reads a validated duration field. Empty means the default.
func parseDuration(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return domain.DefaultSubColumnDuration
	}
	return v
}

// ── Form builders ───────────────────────────────────────────────────────────

func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(validateClockInput)
}

// trackForm collects every editable track field into f. Prefill f to edit.
func trackForm(f *domain.TrackFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name).Validate(validateRequired),
			clockInput("Start (HH:MM)", &f.StartTime),
			clockInput("End (HH:MM)", &f.EndTime),
			huh.NewInput().Title("Description (optional)").Value(&f.Description),
		),
	).WithTheme(trackflowHuhTheme()).WithShowHelp(false)
}

func columnForm(f *domain.ColumnFields) *huh.Form {
	if f.Type == "" {
		f.Type = domain.DefaultColumnType
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&f.Title).Validate(validateRequired),
			clockInput("Start (HH:MM)", &f.StartTime),
			clockInput("End (HH:MM)", &f.EndTime),
			huh.NewSelect[domain.ColumnType]().
				Title("Type").
				Options(huh.NewOptions(domain.ColumnTypes...)...).
				Value(&f.Type),
		),
	).WithTheme(trackflowHuhTheme()).WithShowHelp(false)
}

// subColumnInput holds the raw sub-section form values; the duration is
// text until submit.
type subColumnInput struct {
	Title    string
	Duration string
	Speaker  string
	Notes    string
}

func (in subColumnInput) fields() domain.SubColumnFields {
	return domain.SubColumnFields{
		Title:    strings.TrimSpace(in.Title),
		Duration: parseDuration(in.Duration),
		Speaker:  strings.TrimSpace(in.Speaker),
		Notes:    in.Notes,
	}
}

func subColumnForm(in *subColumnInput) *huh.Form {
	if in.Duration == "" {
		in.Duration = strconv.Itoa(domain.DefaultSubColumnDuration)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&in.Title).Validate(validateRequired),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder(strconv.Itoa(domain.DefaultSubColumnDuration)).
				Value(&in.Duration).
				Validate(validateNonNegativeInt),
			huh.NewInput().Title("Speaker (optional)").Value(&in.Speaker),
			huh.NewInput().Title("Notes (optional)").Value(&in.Notes),
		),
	).WithTheme(trackflowHuhTheme()).WithShowHelp(false)
}

// ── Apply functions ─────────────────────────────────────────────────────────
// Each runs one intent against the service and returns the message the
// shell shows afterwards.

func applyCreateTrack(ctx context.Context, state *SharedState, f domain.TrackFields) tea.Msg {
	t, err := state.App.Schedule.CreateTrack(ctx, f)
	if err != nil {
		return formErrorOutput(err)
	}
	return formSuccessOutput(formatter.FormatTrackCreated("Created", t))
}

func applyEditTrack(ctx context.Context, state *SharedState, id string, f domain.TrackFields) tea.Msg {
	ok, err := state.App.Schedule.EditTrack(ctx, id, f)
	if err != nil {
		return formErrorOutput(err)
	}
	if !ok {
		return formErrorOutput(fmt.Errorf("track %s not found", formatter.ShortID(id)))
	}
	t, _ := state.App.Schedule.Snapshot(ctx).Track(id)
	if state.ActiveTrackID == id {
		state.ActiveTrackName = t.Name
	}
	return formSuccessOutput(formatter.FormatTrackCreated("Updated", t))
}

func applyCreateColumn(ctx context.Context, state *SharedState, trackID string, f domain.ColumnFields) tea.Msg {
	if trackID == "" {
		return formErrorOutput(errors.New("no track targeted"))
	}
	c, err := state.App.Schedule.CreateColumn(ctx, trackID, f)
	if err != nil {
		return formErrorOutput(err)
	}
	state.SetActiveColumn(c.ID)
	return formSuccessOutput(formatter.FormatColumnCreated(c))
}

// applyCreateSubColumn appends under the targeted parent and ends the
// sub-section flow whatever the outcome.
func applyCreateSubColumn(ctx context.Context, state *SharedState, f domain.SubColumnFields) tea.Msg {
	parentID := state.ActiveParentID
	defer state.FinishSubColumn()

	if parentID == "" {
		return formErrorOutput(errors.New("no parent targeted"))
	}
	s, ok, err := state.App.Schedule.CreateSubColumn(ctx, parentID, f)
	if err != nil {
		return formErrorOutput(err)
	}
	if !ok {
		return formErrorOutput(fmt.Errorf("no section or sub-section %s", formatter.ShortID(parentID)))
	}
	return formSuccessOutput(formatter.FormatSubColumnCreated(s))
}

// ── Form views ──────────────────────────────────────────────────────────────

// newCreateTrackFormView opens the create-track dialog.
func newCreateTrackFormView(state *SharedState) View {
	var f domain.TrackFields
	state.OpenModal(viewstate.ModalCreateTrack)
	return newWizardView(state, "New track", trackForm(&f),
		func() tea.Cmd {
			msg := applyCreateTrack(context.Background(), state, f)
			return func() tea.Msg { return msg }
		},
		func() { state.CloseModal(viewstate.ModalCreateTrack) },
	)
}

// newEditTrackFormView opens the edit-track dialog prefilled with t.
func newEditTrackFormView(state *SharedState, t domain.Track) View {
	f := t.Fields()
	state.OpenModal(viewstate.ModalEditTrack)
	return newWizardView(state, "Edit "+t.Name, trackForm(&f),
		func() tea.Cmd {
			msg := applyEditTrack(context.Background(), state, t.ID, f)
			return func() tea.Msg { return msg }
		},
		func() { state.CloseModal(viewstate.ModalEditTrack) },
	)
}

// newColumnFormView opens the add-section dialog for the active track.
func newColumnFormView(state *SharedState) View {
	var f domain.ColumnFields
	trackID := state.ActiveTrackID
	state.OpenModal(viewstate.ModalColumn)
	return newWizardView(state, "New section", columnForm(&f),
		func() tea.Cmd {
			msg := applyCreateColumn(context.Background(), state, trackID, f)
			return func() tea.Msg { return msg }
		},
		func() { state.CloseModal(viewstate.ModalColumn) },
	)
}

// newSubColumnFormView targets parentID inside columnID and opens the
// add-sub-section dialog. Cancelling clears the parent target too.
func newSubColumnFormView(state *SharedState, columnID, parentID string) View {
	var in subColumnInput
	state.BeginSubColumn(columnID, parentID)
	return newWizardView(state, "New sub-section", subColumnForm(&in),
		func() tea.Cmd {
			msg := applyCreateSubColumn(context.Background(), state, in.fields())
			return func() tea.Msg { return msg }
		},
		func() {
			if state.IsOpen(viewstate.ModalSubColumn) {
				state.FinishSubColumn()
			}
		},
	)
}
