package layout

import (
	"errors"
	"fmt"

	"github.com/yourusername/ews-cli/internal/models"
	"github.com/yourusername/ews-cli/internal/types"
)

// ErrWindowNotOnMonitor is returned when a window's offsets fall outside every monitor
var ErrWindowNotOnMonitor = errors.New("window is not on any monitor")

// MonitorGrid is the physical arrangement of monitors: columns ordered
// left-to-right, each holding its monitors top-to-bottom.
// A grid never changes after construction.
type MonitorGrid struct {
	columns    [][]models.Monitor
	decoration int
}

// NewMonitorGrid creates a grid from columns of monitors. Every column must hold
// at least one monitor. The decoration height defaults to models.WindowDecoration.
func NewMonitorGrid(columns [][]models.Monitor) (*MonitorGrid, error) {
	copied := make([][]models.Monitor, len(columns))
	for i, column := range columns {
		if len(column) == 0 {
			return nil, fmt.Errorf("column %d has no monitors", i)
		}
		copied[i] = append([]models.Monitor(nil), column...)
	}

	return &MonitorGrid{
		columns:    copied,
		decoration: models.WindowDecoration,
	}, nil
}

// WithDecoration returns a copy of the grid using a different title-bar height
func (g *MonitorGrid) WithDecoration(pixels int) *MonitorGrid {
	return &MonitorGrid{columns: g.columns, decoration: pixels}
}

// Decoration returns the title-bar height compensated for in Locate
func (g *MonitorGrid) Decoration() int {
	return g.decoration
}

// Columns returns a copy of the grid's columns
func (g *MonitorGrid) Columns() [][]models.Monitor {
	out := make([][]models.Monitor, len(g.columns))
	for i, column := range g.columns {
		out[i] = append([]models.Monitor(nil), column...)
	}
	return out
}

// MonitorCount returns the total number of monitors
func (g *MonitorGrid) MonitorCount() int {
	count := 0
	for _, column := range g.columns {
		count += len(column)
	}
	return count
}

// NextMonitor steps one monitor in the given direction, wrapping at both ends
func (g *MonitorGrid) NextMonitor(current models.MonitorIndex, direction types.Direction) models.MonitorIndex {
	n := g.MonitorCount()
	if n == 0 {
		return current
	}

	// Go's % keeps the sign of the dividend, so add n back before the final mod.
	return models.MonitorIndex(((int(current)+direction.Step())%n + n) % n)
}

// Locate determines which monitor a window sits on.
//
// Monitors are walked column by column, top to bottom, accumulating the
// rightmost x extent claimed so far (the widest monitor of each column) and the
// bottommost y extent within the current column. The y extent starts at minus
// the decoration height since reported offsets exclude the title bar. The first
// monitor whose extents contain the window's offsets wins. The "less than"
// checks are only valid because columns and rows are walked in increasing
// offset order.
func (g *MonitorGrid) Locate(w models.Window) (models.MonitorIndex, error) {
	index := 0
	xExtent := 0

	for _, column := range g.columns {
		yExtent := -g.decoration
		widest := 0
		baseX := xExtent

		for _, monitor := range column {
			yExtent += monitor.Height

			if monitor.Width > widest {
				widest = monitor.Width
				xExtent = baseX + widest
			}

			if w.XOffset < xExtent && w.YOffset < yExtent {
				return models.MonitorIndex(index), nil
			}
			index++
		}
	}

	return 0, fmt.Errorf("%w; position x %d, y %d", ErrWindowNotOnMonitor, w.XOffset, w.YOffset)
}

// WorkspaceSize returns the size of the visible plane: the sum of each column's
// widest monitor, and the tallest column's stacked height.
func (g *MonitorGrid) WorkspaceSize() (width, height int) {
	for _, column := range g.columns {
		columnHeight := 0
		columnWidth := 0
		for _, monitor := range column {
			columnHeight += monitor.Height
			if monitor.Width > columnWidth {
				columnWidth = monitor.Width
			}
		}
		if columnHeight > height {
			height = columnHeight
		}
		width += columnWidth
	}
	return width, height
}

// InCurrentWorkspace reports whether a window's offsets lie on the visible plane.
// Negative offsets, or offsets past the plane, belong to another virtual desktop.
func (g *MonitorGrid) InCurrentWorkspace(w models.Window) bool {
	width, height := g.WorkspaceSize()
	return w.XOffset >= 0 && w.XOffset < width &&
		w.YOffset >= 0 && w.YOffset < height
}

// MonitorBounds describes where a monitor sits on the plane
type MonitorBounds struct {
	Index   models.MonitorIndex `json:"index"`
	Column  int                 `json:"column"`
	Row     int                 `json:"row"`
	Monitor models.Monitor      `json:"monitor"`
	X       int                 `json:"x"`
	Y       int                 `json:"y"`
}

// Bounds returns every monitor with its reconstructed plane position, in index order.
// Columns start at the accumulated width of the columns before them and rows at
// the accumulated height of the monitors above them.
func (g *MonitorGrid) Bounds() []MonitorBounds {
	bounds := make([]MonitorBounds, 0, g.MonitorCount())
	index := 0
	x := 0

	for col, column := range g.columns {
		y := 0
		widest := 0
		for row, monitor := range column {
			bounds = append(bounds, MonitorBounds{
				Index:   models.MonitorIndex(index),
				Column:  col,
				Row:     row,
				Monitor: monitor,
				X:       x,
				Y:       y,
			})
			y += monitor.Height
			if monitor.Width > widest {
				widest = monitor.Width
			}
			index++
		}
		x += widest
	}

	return bounds
}
