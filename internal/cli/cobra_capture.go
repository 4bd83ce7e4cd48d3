package cli

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
)

// trackScopedCmds take an optional TRACK argument that defaults to the
// shell's open track.
var trackScopedCmds = []string{"show", "graph", "print"}

// valueFlags are the flags of track-scoped commands that consume the next
// argument.
var valueFlags = []string{"--mode", "--width"}

// captureCobraOutput runs one command line through the cobra tree and
// returns everything it printed. Failures are rendered like main renders
// them.
func captureCobraOutput(ctx context.Context, app *App, args []string, activeTrackID string) string {
	var buf bytes.Buffer

	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(prepareShellCobraArgs(args, activeTrackID))
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.ExecuteContext(ctx); err != nil {
		if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteString("\n")
		}
		buf.WriteString(shellError(err))
		if hint := hintForMissingFlag(err.Error(), activeTrackID); hint != "" {
			buf.WriteString("\n" + hint)
		}
	}

	return buf.String()
}

// prepareShellCobraArgs fills in the open track where a command would
// otherwise fall back to the selected one or require --track.
func prepareShellCobraArgs(args []string, activeTrackID string) []string {
	if activeTrackID == "" || len(args) == 0 {
		return args
	}
	out := slices.Clone(args)

	switch {
	case slices.Contains(trackScopedCmds, args[0]):
		if !hasPositional(args[1:]) {
			out = append(out, activeTrackID)
		}
	case (args[0] == "column" || args[0] == "section") && len(args) > 1 && args[1] == "add":
		if !hasFlag(args[2:], "--track") {
			out = append(out, "--track", activeTrackID)
		}
	}
	return out
}

func hasPositional(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			return true
		}
		if !strings.Contains(a, "=") && slices.Contains(valueFlags, a) {
			i++
		}
	}
	return false
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name || strings.HasPrefix(a, name+"=") {
			return true
		}
	}
	return false
}

// hintForMissingFlag suggests the open track when a command fails for lack
// of an ID flag.
func hintForMissingFlag(errMsg, activeTrackID string) string {
	if !strings.Contains(errMsg, "required flag") {
		return ""
	}
	if strings.Contains(errMsg, "parent") {
		return formatter.Dim("Hint: press s in the track view to add under the highlighted line")
	}
	if strings.Contains(errMsg, "track") && activeTrackID == "" {
		return formatter.Dim("Hint: open a track from the list, or pass --track ID")
	}
	return ""
}
