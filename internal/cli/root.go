package cli

import (
	"github.com/alexanderramin/trackflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Schedule service.ScheduleService

	// IsInteractive reports whether the process is attached to a terminal.
	// When it returns true, running with no arguments opens the shell.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "trackflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trackflow",
		Short: "Conference track schedule editor",
		Long: "Plan conference tracks made of timed sections and nested sub-sections.\n" +
			"Start times of sub-sections are derived from their section's start.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTrackCmd(app),
		newColumnCmd(app),
		newSubCmd(app),
		newShowCmd(app),
		newGraphCmd(app),
		newPrintCmd(app),
		newImportCmd(app),
		newCheckCmd(app),
		newShellCmd(app),
	)

	return root
}
