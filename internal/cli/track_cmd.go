package cli

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/store"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Manage tracks",
	}

	cmd.AddCommand(
		newTrackAddCmd(app),
		newTrackEditCmd(app),
		newTrackListCmd(app),
		newTrackSelectCmd(app),
	)

	return cmd
}

// bindTrackFlags registers the editable track fields on cmd.
func bindTrackFlags(cmd *cobra.Command, f *domain.TrackFields) {
	cmd.Flags().StringVar(&f.Name, "name", "", "Track name")
	cmd.Flags().StringVar(&f.StartTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&f.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&f.Description, "description", "", "Track description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func validateTrackFields(f domain.TrackFields) error {
	if err := validateClock("start", f.StartTime); err != nil {
		return err
	}
	return validateClock("end", f.EndTime)
}

func newTrackAddCmd(app *App) *cobra.Command {
	var fields domain.TrackFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTrackFields(fields); err != nil {
				return err
			}
			t, err := app.Schedule.CreateTrack(cmd.Context(), fields)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackCreated("Created", t))
			return nil
		},
	}

	bindTrackFlags(cmd, &fields)
	return cmd
}

func newTrackEditCmd(app *App) *cobra.Command {
	var fields domain.TrackFields

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace every field of a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTrackID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := validateTrackFields(fields); err != nil {
				return err
			}
			ok, err := app.Schedule.EditTrack(ctx, id, fields)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("track %s not found", id)
			}
			t, _ := app.Schedule.Snapshot(ctx).Track(id)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackCreated("Updated", t))
			return nil
		},
	}

	bindTrackFlags(cmd, &fields)
	return cmd
}

func newTrackListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Schedule.Snapshot(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackList(snap.Tracks, snap.SelectedID(), sectionCounts(snap)))
			return nil
		},
	}
}

func newTrackSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select ID",
		Short: "Select the track shown by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTrackID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, ok, err := app.Schedule.SelectTrack(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("track %s not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected track %s %s\n",
				formatter.StyleGreen.Render(formatter.ShortID(t.ID)), formatter.Bold(t.Name))
			return nil
		},
	}
}

// sectionCounts maps each track ID to its number of sections.
func sectionCounts(snap store.Snapshot) map[string]int {
	counts := make(map[string]int, len(snap.Tracks))
	for _, c := range snap.Columns {
		counts[c.TrackID]++
	}
	return counts
}
