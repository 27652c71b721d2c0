package models

// DefaultIgnoredClasses are surfaces that are never real application windows:
// the "not applicable" class reported for launchers/panels, and the desktop background.
var DefaultIgnoredClasses = []string{
	"N/A",
	"nemo-desktop.Nemo-desktop",
}

// WindowFilter drops windows that should never receive focus
type WindowFilter struct {
	ignored map[string]bool
}

// NewWindowFilter creates a filter for the given ignored classes.
// A nil slice falls back to DefaultIgnoredClasses.
func NewWindowFilter(ignoredClasses []string) WindowFilter {
	if ignoredClasses == nil {
		ignoredClasses = DefaultIgnoredClasses
	}
	ignored := make(map[string]bool, len(ignoredClasses))
	for _, c := range ignoredClasses {
		ignored[c] = true
	}
	return WindowFilter{ignored: ignored}
}

// Focusable reports whether a window is a real application window.
// Windows with a y offset of zero or less are virtual or background surfaces.
func (f WindowFilter) Focusable(w Window) bool {
	if f.ignored[w.WindowClass] {
		return false
	}
	return w.YOffset > 0
}

// Apply returns the focusable windows, preserving order
func (f WindowFilter) Apply(windows []Window) []Window {
	filtered := make([]Window, 0, len(windows))
	for _, w := range windows {
		if f.Focusable(w) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
