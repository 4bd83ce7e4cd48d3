package cli

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/spf13/cobra"
)

func newColumnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "column",
		Aliases: []string{"section"},
		Short:   "Manage the sections of a track",
	}

	cmd.AddCommand(newColumnAddCmd(app))
	return cmd
}

func newColumnAddCmd(app *App) *cobra.Command {
	var (
		trackRef string
		fields   domain.ColumnFields
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a section to a track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			trackID, err := resolveTrackID(ctx, app, trackRef)
			if err != nil {
				return err
			}
			if err := validateClock("start", fields.StartTime); err != nil {
				return err
			}
			if err := validateClock("end", fields.EndTime); err != nil {
				return err
			}

			c, err := app.Schedule.CreateColumn(ctx, trackID, fields)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatColumnCreated(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&trackRef, "track", "", "Track ID or unique prefix")
	cmd.Flags().StringVar(&fields.Title, "title", "", "Section title")
	cmd.Flags().StringVar(&fields.StartTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&fields.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().Var(newColumnTypeValue(domain.DefaultColumnType, &fields.Type), "type",
		"Section type ("+columnTypeNames()+")")
	_ = cmd.MarkFlagRequired("track")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
