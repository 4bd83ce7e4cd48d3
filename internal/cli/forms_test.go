package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputOf(t *testing.T, msg any) string {
	t.Helper()
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok, "expected cmdOutputMsg, got %T", msg)
	return out.output
}

func TestValidators(t *testing.T) {
	assert.Error(t, validateRequired("  "))
	assert.NoError(t, validateRequired("Hall"))

	assert.NoError(t, validateClockInput("09:30"))
	assert.Error(t, validateClockInput("9.30"))
	assert.Error(t, validateClockInput(""))

	assert.NoError(t, validateNonNegativeInt(""))
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateNonNegativeInt("ten"))
}

func TestSubColumnInput_Fields(t *testing.T) {
	in := subColumnInput{Title: " Talk ", Duration: "", Speaker: " Ada ", Notes: "n"}
	assert.Equal(t, domain.SubColumnFields{
		Title: "Talk", Duration: domain.DefaultSubColumnDuration, Speaker: "Ada", Notes: "n",
	}, in.fields())

	in.Duration = "0"
	assert.Equal(t, 0, in.fields().Duration)
}

func TestApplyCreateTrack(t *testing.T) {
	app := testApp(t)
	state := newSharedState(app)

	out := outputOf(t, applyCreateTrack(context.Background(), state, domain.TrackFields{
		Name: "Hall B", StartTime: "10:00", EndTime: "16:00",
	}))
	assert.Contains(t, out, "Created track")
	assert.Len(t, app.Schedule.Snapshot(context.Background()).Tracks, 2)
}

func TestApplyEditTrack_UnknownTrack(t *testing.T) {
	app := testApp(t)
	state := newSharedState(app)

	out := outputOf(t, applyEditTrack(context.Background(), state, "missing", domain.TrackFields{Name: "X"}))
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "not found")
}

func TestApplyCreateColumn_NeedsTrack(t *testing.T) {
	app := testApp(t)
	state := newSharedState(app)

	out := outputOf(t, applyCreateColumn(context.Background(), state, "", domain.ColumnFields{Title: "X"}))
	assert.Contains(t, out, "no track targeted")
	assert.Empty(t, app.Schedule.Snapshot(context.Background()).Columns)
}

func TestApplyCreateSubColumn_FinishesFlow(t *testing.T) {
	app := testApp(t)
	seedOpening(t, app)
	state := newSharedState(app)
	state.BeginSubColumn(seqID(2), seqID(3))

	out := outputOf(t, applyCreateSubColumn(context.Background(), state, domain.SubColumnFields{
		Title: "Aside", Duration: 5,
	}))
	assert.Contains(t, out, "Created sub-section")
	assert.False(t, state.IsOpen(viewstate.ModalSubColumn))
	assert.Empty(t, state.ActiveParentID)
	assert.Equal(t, seqID(2), state.ActiveColumnID)

	col, _ := app.Schedule.Snapshot(context.Background()).Column(seqID(2))
	require.Len(t, col.SubColumns[0].SubColumns, 1)
	assert.Equal(t, "Aside", col.SubColumns[0].SubColumns[0].Title)
}

func TestApplyCreateSubColumn_UnknownParentStillFinishes(t *testing.T) {
	app := testApp(t)
	state := newSharedState(app)
	state.BeginSubColumn("col", "gone")

	out := outputOf(t, applyCreateSubColumn(context.Background(), state, domain.SubColumnFields{Title: "X"}))
	assert.Contains(t, out, "no section or sub-section")
	assert.False(t, state.AnyOpen())
	assert.Empty(t, state.ActiveParentID)
}

func TestSplitShellArgs(t *testing.T) {
	args, err := splitShellArgs(`track add --name "Hall \"B\"" --description 'a b'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"track", "add", "--name", `Hall "B"`, "--description", "a b"}, args)

	_, err = splitShellArgs(`--name "open`)
	assert.Error(t, err)
}

func TestPrepareShellCobraArgs(t *testing.T) {
	const id = "trk"
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"show"}, []string{"show", id}},
		{[]string{"show", "--mode", "list"}, []string{"show", "--mode", "list", id}},
		{[]string{"print", "--width=80"}, []string{"print", "--width=80", id}},
		{[]string{"graph", "other"}, []string{"graph", "other"}},
		{[]string{"column", "add", "--title", "X"}, []string{"column", "add", "--title", "X", "--track", id}},
		{[]string{"section", "add", "--track=t2"}, []string{"section", "add", "--track=t2"}},
		{[]string{"track", "list"}, []string{"track", "list"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, prepareShellCobraArgs(tc.in, id), "%v", tc.in)
	}
	assert.Equal(t, []string{"show"}, prepareShellCobraArgs([]string{"show"}, ""))
}

func TestCommandBar_Suggestions(t *testing.T) {
	app := testApp(t)
	bar := newCommandBar(newSharedState(app))

	assert.Equal(t, []string{"track"}, bar.suggest("tr"))
	assert.Contains(t, bar.suggest("q"), "quit")
	assert.ElementsMatch(t, []string{"track add", "track edit", "track list", "track select"}, bar.suggest("track "))
	assert.Equal(t, []string{"track select"}, bar.suggest("track s"))
	assert.Equal(t, []string{"section add"}, bar.suggest("section a"))
	assert.Nil(t, bar.suggest("track add --"))
	assert.NotContains(t, bar.suggest("s"), "shell")
}

func TestCommandHistory(t *testing.T) {
	var h commandHistory
	_, ok := h.prev()
	assert.False(t, ok)

	h.add("track list")
	h.add("show")
	h.add("show")
	assert.Equal(t, []string{"track list", "show"}, h.lines)

	line, ok := h.prev()
	require.True(t, ok)
	assert.Equal(t, "show", line)
	line, _ = h.prev()
	assert.Equal(t, "track list", line)
	_, ok = h.prev()
	assert.False(t, ok)

	assert.Equal(t, "show", h.next())
	assert.Equal(t, "", h.next())
	assert.Equal(t, 2, h.pos)
}
