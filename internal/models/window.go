package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WindowDecoration is the title-bar height (pixels) the window manager adds
// above a window's content area without including it in reported offsets.
const WindowDecoration = 24

// minWindowFields is the id, desktop, x, y, width, height, class and hostname columns.
const minWindowFields = 8

// ErrMalformedWindow is returned when a window descriptor cannot be parsed
var ErrMalformedWindow = errors.New("malformed window descriptor")

// WindowID identifies a window for its lifetime; it is assigned by the window manager
type WindowID uint32

// String returns the decimal form of the ID
func (id WindowID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Hex returns the ID in the 0x-prefixed form window-manager tools print
func (id WindowID) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// ParseWindowID parses a hex window ID, optionally prefixed with "0x"
func ParseWindowID(s string) (WindowID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid window id %q: %v", ErrMalformedWindow, s, err)
	}
	return WindowID(v), nil
}

// Window is a snapshot of one on-screen window.
//
// Offsets are the top-left corner of the window's content area measured from the
// top-left of the whole multi-monitor plane. They may be negative or exceed the
// plane when the window lives on another virtual desktop.
type Window struct {
	ID          WindowID `json:"id"`
	XOffset     int      `json:"xOffset"`
	YOffset     int      `json:"yOffset"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	WindowClass string   `json:"windowClass"`
	Title       string   `json:"title"`
}

// ParseWindow parses one line of `wmctrl -l -G -x` output.
//
//	0x05000006  0 1920 24   1920 1056 gnome-terminal-server.Gnome-terminal  devin-Desktop Terminal
//
// Columns: id, desktop index (ignored), x, y, width, height, WM_CLASS,
// hostname (ignored), then the title which may contain spaces.
func ParseWindow(line string) (Window, error) {
	fields := strings.Fields(line)
	if len(fields) < minWindowFields {
		return Window{}, fmt.Errorf("%w: expected at least %d fields, got %d: %q",
			ErrMalformedWindow, minWindowFields, len(fields), line)
	}

	id, err := ParseWindowID(fields[0])
	if err != nil {
		return Window{}, err
	}

	var nums [4]int
	for i, name := range []string{"x offset", "y offset", "width", "height"} {
		n, err := strconv.Atoi(fields[2+i])
		if err != nil {
			return Window{}, fmt.Errorf("%w: invalid %s %q", ErrMalformedWindow, name, fields[2+i])
		}
		nums[i] = n
	}

	return Window{
		ID:          id,
		XOffset:     nums[0],
		YOffset:     nums[1],
		Width:       nums[2],
		Height:      nums[3],
		WindowClass: fields[6],
		Title:       strings.Join(fields[8:], " "),
	}, nil
}

// ParseWindowList parses newline-separated window descriptors, skipping blank lines.
// Any malformed line fails the whole list.
func ParseWindowList(output string) ([]Window, error) {
	var windows []Window
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := ParseWindow(line)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// FormatFrame returns a formatted string representation of the window frame
func (w Window) FormatFrame() string {
	return fmt.Sprintf("%dx%d @ (%d, %d)", w.Width, w.Height, w.XOffset, w.YOffset)
}

// String returns a multi-line description of the window
func (w Window) String() string {
	return fmt.Sprintf("ID: %s\nX Offset: %d\nY Offset: %d\nDimensions: %dx%d\nClass: %s\nTitle: %s",
		w.ID, w.XOffset, w.YOffset, w.Width, w.Height, w.WindowClass, w.Title)
}
