package snapshot

import (
	"context"
	"fmt"
	"sort"

	"github.com/yourusername/ews-cli/internal/client"
	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/logging"
	"github.com/yourusername/ews-cli/internal/models"
)

// Options control how a snapshot is built
type Options struct {
	// Monitors is an explicit "WxH+X+Y" layout; when set the display server
	// is not asked for its monitors.
	Monitors []string
	// Decoration is the title-bar height compensated for when locating windows
	Decoration int
	// IgnoredClasses are never focusable; nil means models.DefaultIgnoredClasses
	IgnoredClasses []string
	// Unfiltered keeps every window, including other desktops and background surfaces
	Unfiltered bool
	// WithFocus also queries the focused window
	WithFocus bool
}

// Snapshot is a parsed, read-only view of the desktop at a point in time.
// It contains everything needed to resolve one focus request.
type Snapshot struct {
	Grid            *layout.MonitorGrid // Monitor arrangement
	Windows         []models.Window     // Focusable windows on the current workspace, left to right
	Total           int                 // Windows reported before filtering
	FocusedWindowID models.WindowID     // Zero unless Options.WithFocus
}

// Fetch queries the client once for each piece of state and builds a Snapshot
func Fetch(ctx context.Context, c client.Client, opts Options) (*Snapshot, error) {
	grid, err := fetchGrid(ctx, c, opts.Monitors)
	if err != nil {
		return nil, err
	}
	grid = grid.WithDecoration(opts.Decoration)

	windows, err := c.Windows(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Grid:    grid,
		Windows: windows,
		Total:   len(windows),
	}
	if !opts.Unfiltered {
		snap.Windows = filterWindows(grid, windows, opts.IgnoredClasses)
	}
	sort.SliceStable(snap.Windows, func(i, j int) bool {
		return snap.Windows[i].XOffset < snap.Windows[j].XOffset
	})

	if opts.WithFocus {
		snap.FocusedWindowID, err = c.FocusedWindow(ctx)
		if err != nil {
			return nil, err
		}
	}

	width, height := grid.WorkspaceSize()
	logging.Debug().
		Int("monitors", grid.MonitorCount()).
		Int("workspace_width", width).
		Int("workspace_height", height).
		Int("windows_total", snap.Total).
		Int("windows_visible", len(snap.Windows)).
		Str("focused", snap.FocusedWindowID.Hex()).
		Msg("snapshot")

	return snap, nil
}

func fetchGrid(ctx context.Context, c client.Client, monitors []string) (*layout.MonitorGrid, error) {
	if len(monitors) > 0 {
		grid, err := layout.ParseGeometryList(monitors)
		if err != nil {
			return nil, fmt.Errorf("configured monitors: %w", err)
		}
		return grid, nil
	}

	placements, err := c.Monitors(ctx)
	if err != nil {
		return nil, err
	}
	return layout.BuildGrid(placements)
}

// filterWindows keeps focusable windows whose offsets lie on the visible workspace
func filterWindows(grid *layout.MonitorGrid, windows []models.Window, ignoredClasses []string) []models.Window {
	filter := models.NewWindowFilter(ignoredClasses)

	var visible []models.Window
	for _, w := range filter.Apply(windows) {
		if grid.InCurrentWorkspace(w) {
			visible = append(visible, w)
		}
	}
	return visible
}

// Window returns the window with the given ID, if visible
func (s *Snapshot) Window(id models.WindowID) (models.Window, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return models.Window{}, false
}
