package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/viewstate"
	"github.com/spf13/cobra"
)

const defaultRenderWidth = 120

func newShowCmd(app *App) *cobra.Command {
	var (
		mode  viewstate.Mode
		width int
	)

	cmd := &cobra.Command{
		Use:   "show [TRACK]",
		Short: "Show a track with derived times (defaults to the selected track)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			trackID, err := resolveTrackArg(ctx, app, args)
			if err != nil {
				return err
			}
			tt, err := app.Schedule.Timetable(ctx, trackID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackView(string(mode), tt.Track, tt.Columns, tt.Warnings, width))
			return nil
		},
	}

	cmd.Flags().Var(newModeValue(viewstate.ModeGrid, &mode), "mode", "Display mode (grid|list)")
	cmd.Flags().IntVar(&width, "width", defaultRenderWidth, "Wrap grid cards at this many columns (0 keeps one row)")
	return cmd
}

func newGraphCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "graph [TRACK]",
		Short: "Lay out a track as a node/edge graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			trackID, err := resolveTrackArg(ctx, app, args)
			if err != nil {
				return err
			}
			tg, err := app.Schedule.Graph(ctx, trackID)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(tg.Graph, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding graph: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				if tg.Warnings != nil {
					fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatWarnings(tg.Warnings))
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGraph(tg.Graph))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWarnings(tg.Warnings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the graph as JSON")
	return cmd
}

func newPrintCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "print [TRACK]",
		Short: "Render a print-ready schedule of a track",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			trackID, err := resolveTrackArg(ctx, app, args)
			if err != nil {
				return err
			}
			tt, err := app.Schedule.Timetable(ctx, trackID)
			if err != nil {
				return err
			}

			md := formatter.RenderPrintMarkdown(tt.Track, tt.Columns)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			rendered, err := formatter.RenderPrint(md, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 100, "Word-wrap width")
	return cmd
}
