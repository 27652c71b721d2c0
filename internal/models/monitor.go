package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDimensions is returned when a "WxH" string cannot be parsed
var ErrMalformedDimensions = errors.New("malformed monitor dimensions")

// Monitor is one physical display's pixel dimensions
type Monitor struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// NewMonitor creates a monitor with the given dimensions
func NewMonitor(width, height int) Monitor {
	return Monitor{Width: width, Height: height}
}

// String returns the monitor resolution as "WxH"
func (m Monitor) String() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// ParseDimensions converts a "WxH" string (e.g. "1920x1080") into a Monitor
func ParseDimensions(s string) (Monitor, error) {
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) != 2 {
		return Monitor{}, fmt.Errorf("%w: %q", ErrMalformedDimensions, s)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return Monitor{}, fmt.Errorf("%w: invalid width in %q: %v", ErrMalformedDimensions, s, err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return Monitor{}, fmt.Errorf("%w: invalid height in %q: %v", ErrMalformedDimensions, s, err)
	}
	if width <= 0 || height <= 0 {
		return Monitor{}, fmt.Errorf("%w: non-positive size in %q", ErrMalformedDimensions, s)
	}

	return NewMonitor(width, height), nil
}

// MonitorIndex identifies a monitor by its position in a column-major,
// top-to-bottom traversal of the grid.
type MonitorIndex int
