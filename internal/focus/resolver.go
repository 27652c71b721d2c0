package focus

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/models"
	"github.com/yourusername/ews-cli/internal/types"
)

// ErrInconsistentState means the window list, monitor layout and focused
// window disagree with each other, usually because the desktop changed
// between queries.
var ErrInconsistentState = errors.New("inconsistent window manager state")

// WindowsByMonitor maps each monitor to its windows, sorted left to right
type WindowsByMonitor map[models.MonitorIndex][]models.Window

// Count returns the number of windows across all monitors
func (m WindowsByMonitor) Count() int {
	n := 0
	for _, ws := range m {
		n += len(ws)
	}
	return n
}

// MonitorOf builds the reverse lookup from window ID to monitor
func (m WindowsByMonitor) MonitorOf() map[models.WindowID]models.MonitorIndex {
	out := make(map[models.WindowID]models.MonitorIndex, m.Count())
	for idx, ws := range m {
		for _, w := range ws {
			out[w.ID] = idx
		}
	}
	return out
}

// IndexWindowsByMonitor assigns every window to the monitor it sits on.
// Each monitor's list is sorted by x offset; windows sharing an offset keep
// their input order. A window that sits on no monitor fails the whole index.
func IndexWindowsByMonitor(grid *layout.MonitorGrid, windows []models.Window) (WindowsByMonitor, error) {
	byMonitor := make(WindowsByMonitor)
	for _, w := range windows {
		idx, err := grid.Locate(w)
		if err != nil {
			return nil, fmt.Errorf("window %s: %w", w.ID.Hex(), err)
		}
		byMonitor[idx] = append(byMonitor[idx], w)
	}

	for _, ws := range byMonitor {
		sort.SliceStable(ws, func(i, j int) bool {
			return ws[i].XOffset < ws[j].XOffset
		})
	}
	return byMonitor, nil
}

// Target is the outcome of a focus decision
type Target struct {
	Window  models.Window       `json:"window"`
	From    models.MonitorIndex `json:"from"`
	Monitor models.MonitorIndex `json:"monitor"`
	// Hops is the number of monitors stepped over; zero when the target
	// is a neighbour on the same monitor.
	Hops int `json:"hops"`
}

// ClosestWindow picks the window that should receive focus when moving from
// the focused window in a direction.
//
// The neighbour on the same monitor wins if there is one. Otherwise monitors
// are visited in the direction of travel, wrapping at both ends, and the first
// monitor with windows supplies its rightmost window (moving left) or its
// leftmost window (moving right). The origin monitor always has a window, so
// the walk ends after at most one full lap, possibly back where it started.
//
// Returns nil with no error when there are no windows at all.
func ClosestWindow(grid *layout.MonitorGrid, byMonitor WindowsByMonitor, focused models.WindowID, direction types.Direction) (*Target, error) {
	if byMonitor.Count() == 0 {
		return nil, nil
	}

	origin, ok := byMonitor.MonitorOf()[focused]
	if !ok {
		return nil, fmt.Errorf("%w: focused window %s is not on any monitor", ErrInconsistentState, focused.Hex())
	}

	windows := byMonitor[origin]
	position := FindWindowIndex(windows, focused)
	if position < 0 {
		return nil, fmt.Errorf("%w: focused window %s missing from monitor %d", ErrInconsistentState, focused.Hex(), origin)
	}

	if !AtEdge(position, len(windows), direction) {
		return &Target{
			Window:  windows[position+direction.Step()],
			From:    origin,
			Monitor: origin,
		}, nil
	}

	candidate := origin
	for hops := 1; hops <= grid.MonitorCount(); hops++ {
		candidate = grid.NextMonitor(candidate, direction)
		if w := EntryWindow(byMonitor[candidate], direction); w != nil {
			return &Target{Window: *w, From: origin, Monitor: candidate, Hops: hops}, nil
		}
	}

	// Only reachable if the origin monitor lies outside the grid.
	return nil, fmt.Errorf("%w: monitor %d is not part of a %d monitor grid", ErrInconsistentState, origin, grid.MonitorCount())
}

// FirstWindowOnMonitor returns the leftmost window on a monitor, or nil when
// the monitor has no windows or does not exist.
func FirstWindowOnMonitor(byMonitor WindowsByMonitor, index models.MonitorIndex) *models.Window {
	return FirstWindow(byMonitor[index])
}
