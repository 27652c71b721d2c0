package focus

import (
	"context"
	"fmt"

	"github.com/yourusername/ews-cli/internal/client"
	"github.com/yourusername/ews-cli/internal/logging"
	"github.com/yourusername/ews-cli/internal/models"
	"github.com/yourusername/ews-cli/internal/snapshot"
	"github.com/yourusername/ews-cli/internal/types"
)

// FocusByDirection moves focus from the focused window to its closest
// neighbour in direction, wrapping across monitors.
// The snapshot must have been fetched WithFocus.
// Returns nil with no error when there is nothing to focus.
func FocusByDirection(
	ctx context.Context,
	c client.Client,
	snap *snapshot.Snapshot,
	direction types.Direction,
) (*Target, error) {
	byMonitor, err := IndexWindowsByMonitor(snap.Grid, snap.Windows)
	if err != nil {
		return nil, err
	}

	target, err := ClosestWindow(snap.Grid, byMonitor, snap.FocusedWindowID, direction)
	if err != nil {
		return nil, err
	}
	if target == nil {
		logging.Info().Str("cmd", "direction").Msg("no windows to focus")
		return nil, nil
	}

	logging.Info().
		Str("cmd", "direction").
		Str("direction", direction.String()).
		Str("from_window", snap.FocusedWindowID.Hex()).
		Int("from_monitor", int(target.From)).
		Str("window", target.Window.ID.Hex()).
		Int("monitor", int(target.Monitor)).
		Int("hops", target.Hops).
		Msg("resolved focus target")

	if err := c.FocusWindow(ctx, target.Window.ID); err != nil {
		return nil, fmt.Errorf("focus window %s: %w", target.Window.ID.Hex(), err)
	}
	return target, nil
}

// FocusByMonitorIndex focuses the leftmost window on a monitor.
// A monitor with no windows, or one that does not exist, is a no-op and
// returns nil with no error.
func FocusByMonitorIndex(
	ctx context.Context,
	c client.Client,
	snap *snapshot.Snapshot,
	index models.MonitorIndex,
) (*Target, error) {
	byMonitor, err := IndexWindowsByMonitor(snap.Grid, snap.Windows)
	if err != nil {
		return nil, err
	}

	w := FirstWindowOnMonitor(byMonitor, index)
	if w == nil {
		logging.Info().Str("cmd", "monitor").Int("monitor", int(index)).Msg("no windows on monitor")
		return nil, nil
	}

	logging.Info().
		Str("cmd", "monitor").
		Int("monitor", int(index)).
		Str("window", w.ID.Hex()).
		Msg("resolved focus target")

	if err := c.FocusWindow(ctx, w.ID); err != nil {
		return nil, fmt.Errorf("focus window %s: %w", w.ID.Hex(), err)
	}
	return &Target{Window: *w, From: index, Monitor: index}, nil
}
