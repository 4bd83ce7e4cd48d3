package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/scheduler"
)

// resolveTrackID expands a track ID or unique ID prefix to the full ID.
func resolveTrackID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("track ID is required")
	}
	id, err := app.Schedule.ResolveID(ctx, input)
	if err != nil {
		return "", fmt.Errorf("resolving track: %w", err)
	}
	if _, ok := app.Schedule.Snapshot(ctx).Track(id); !ok {
		return "", fmt.Errorf("%s is not a track", id)
	}
	return id, nil
}

// resolveTrackArg resolves an optional TRACK argument. With no argument the
// selected track is used, which the service reports when none is selected.
func resolveTrackArg(ctx context.Context, app *App, args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	return resolveTrackID(ctx, app, args[0])
}

// resolveParentID expands the ID of a section or sub-section.
func resolveParentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("parent ID is required")
	}
	id, err := app.Schedule.ResolveID(ctx, input)
	if err != nil {
		return "", fmt.Errorf("resolving parent: %w", err)
	}
	if _, ok := app.Schedule.Snapshot(ctx).Owner(id); !ok {
		return "", fmt.Errorf("%s is not a section or sub-section", id)
	}
	return id, nil
}

// validateClock checks an HH:MM flag value.
func validateClock(flag, value string) error {
	if _, err := scheduler.ParseClock(value); err != nil {
		return fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return nil
}
