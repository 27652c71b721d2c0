package focus

import (
	"github.com/yourusername/ews-cli/internal/models"
	"github.com/yourusername/ews-cli/internal/types"
)

// FindWindowIndex finds the index of a window ID in a monitor's window list.
// Returns -1 if not found.
func FindWindowIndex(windows []models.Window, id models.WindowID) int {
	for i, w := range windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// AtEdge returns true if there is no window past position in the given direction.
// A lone window is always at the edge.
func AtEdge(position, total int, direction types.Direction) bool {
	if total <= 1 {
		return true
	}
	if direction == types.DirLeft {
		return position == 0
	}
	return position == total-1
}

// EntryWindow returns the window focused when arriving at a monitor from
// another one: the rightmost when moving left, the leftmost when moving right.
// Returns nil if the monitor has no windows.
func EntryWindow(windows []models.Window, direction types.Direction) *models.Window {
	if len(windows) == 0 {
		return nil
	}
	if direction == types.DirLeft {
		w := windows[len(windows)-1]
		return &w
	}
	w := windows[0]
	return &w
}

// FirstWindow returns the leftmost window of a monitor's list.
// Returns nil if the list is empty.
func FirstWindow(windows []models.Window) *models.Window {
	if len(windows) == 0 {
		return nil
	}
	w := windows[0]
	return &w
}
