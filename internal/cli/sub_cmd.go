package cli

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/spf13/cobra"
)

func newSubCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sub",
		Aliases: []string{"item"},
		Short:   "Manage nested sub-sections",
	}

	cmd.AddCommand(newSubAddCmd(app))
	return cmd
}

func newSubAddCmd(app *App) *cobra.Command {
	var (
		parentRef string
		fields    domain.SubColumnFields
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a sub-section to a section or another sub-section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fields.Duration < 0 {
				return fmt.Errorf("invalid --duration %d: must be >= 0", fields.Duration)
			}
			ctx := cmd.Context()
			parentID, err := resolveParentID(ctx, app, parentRef)
			if err != nil {
				return err
			}

			s, ok, err := app.Schedule.CreateSubColumn(ctx, parentID, fields)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no section or sub-section %s", parentID)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubColumnCreated(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&parentRef, "parent", "", "Section or sub-section ID (or unique prefix)")
	cmd.Flags().StringVar(&fields.Title, "title", "", "Sub-section title")
	cmd.Flags().IntVar(&fields.Duration, "duration", domain.DefaultSubColumnDuration, "Duration in minutes")
	cmd.Flags().StringVar(&fields.Speaker, "speaker", "", "Speaker name")
	cmd.Flags().StringVar(&fields.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
