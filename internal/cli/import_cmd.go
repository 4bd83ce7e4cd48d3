package cli

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create tracks, sections and sub-sections from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			res, err := app.Schedule.Import(cmd.Context(), schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d track(s), %d section(s), %d sub-section(s)\n",
				len(res.Tracks), res.Columns, res.SubColumns)
			for _, t := range res.Tracks {
				fmt.Fprintf(out, "  %s %s\n", formatter.StyleGreen.Render(formatter.ShortID(t.ID)), t.Name)
			}
			if res.Selected != "" {
				fmt.Fprintf(out, "Selected %s\n", formatter.StyleGreen.Render(formatter.ShortID(res.Selected)))
			}
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify structural invariants and derived times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Schedule.Check(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap := app.Schedule.Snapshot(ctx)
			warnings := 0
			for _, t := range snap.Tracks {
				tt, err := app.Schedule.Timetable(ctx, t.ID)
				if err != nil {
					return err
				}
				if tt.Warnings != nil {
					warnings++
					fmt.Fprintf(out, "%s\n", formatter.Bold(t.Name))
					fmt.Fprint(out, formatter.FormatWarnings(tt.Warnings))
				}
			}
			if warnings > 0 {
				return fmt.Errorf("%d track(s) have times that cannot be derived", warnings)
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render("OK")+" "+formatter.Dim(
				fmt.Sprintf("%d track(s), %d section(s)", len(snap.Tracks), len(snap.Columns))))
			return nil
		},
	}
}
