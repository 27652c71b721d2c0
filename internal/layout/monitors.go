package layout

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/ews-cli/internal/models"
)

// ErrMalformedMonitor is returned when a monitor descriptor cannot be parsed
var ErrMalformedMonitor = errors.New("invalid monitor config")

// MonitorPlacement is one monitor as reported by the display server: its
// "WxH" dimensions and the offset of its top-left corner.
type MonitorPlacement struct {
	Dimensions string `json:"dimensions"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// ConnectedOutputs returns the lines of `xrandr` output describing connected outputs
func ConnectedOutputs(output string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.Contains(line, " connected ") {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseGeometry parses a "WxH+X+Y" geometry token
func ParseGeometry(token string) (MonitorPlacement, error) {
	parts := strings.Split(token, "+")
	if len(parts) != 3 {
		return MonitorPlacement{}, fmt.Errorf("%w: geometry %q is not WxH+X+Y", ErrMalformedMonitor, token)
	}

	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonitorPlacement{}, fmt.Errorf("%w: invalid x offset in %q", ErrMalformedMonitor, token)
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return MonitorPlacement{}, fmt.Errorf("%w: invalid y offset in %q", ErrMalformedMonitor, token)
	}

	return MonitorPlacement{Dimensions: parts[0], X: x, Y: y}, nil
}

// ParseMonitorDescriptor parses one connected-output line of `xrandr` output:
//
//	HDMI-A-0 connected primary 1920x1080+0+1080 (normal left inverted right x axis y axis) 527mm x 296mm
//
// The geometry token follows "connected", optionally after a "primary" marker.
func ParseMonitorDescriptor(line string) (MonitorPlacement, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return MonitorPlacement{}, fmt.Errorf("%w: %s", ErrMalformedMonitor, line)
	}

	geometryIndex := 2
	if fields[2] == "primary" {
		geometryIndex = 3
	}
	if geometryIndex >= len(fields) {
		return MonitorPlacement{}, fmt.Errorf("%w: %s", ErrMalformedMonitor, line)
	}

	placement, err := ParseGeometry(fields[geometryIndex])
	if err != nil {
		return MonitorPlacement{}, fmt.Errorf("%w (%s)", err, line)
	}
	return placement, nil
}

// BuildGrid arranges placements into a grid independent of the order they were
// reported in: one column per distinct x offset in ascending order, each column
// stacked top-to-bottom by y offset.
func BuildGrid(placements []MonitorPlacement) (*MonitorGrid, error) {
	sorted := append([]MonitorPlacement(nil), placements...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var columns [][]models.Monitor
	for i, p := range sorted {
		monitor, err := models.ParseDimensions(p.Dimensions)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMonitor, err)
		}
		if i == 0 || p.X != sorted[i-1].X {
			columns = append(columns, nil)
		}
		columns[len(columns)-1] = append(columns[len(columns)-1], monitor)
	}

	return NewMonitorGrid(columns)
}

// ParseMonitorDescriptors parses connected-output descriptors.
// A single bad descriptor fails the whole layout.
func ParseMonitorDescriptors(descriptors []string) ([]MonitorPlacement, error) {
	placements := make([]MonitorPlacement, 0, len(descriptors))
	for _, d := range descriptors {
		p, err := ParseMonitorDescriptor(d)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}

// ParseGeometryList builds a grid from bare "WxH+X+Y" geometry strings,
// as written in the configuration file.
func ParseGeometryList(geometries []string) (*MonitorGrid, error) {
	placements := make([]MonitorPlacement, 0, len(geometries))
	for _, g := range geometries {
		p, err := ParseGeometry(strings.TrimSpace(g))
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return BuildGrid(placements)
}
