package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/models"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	ShowIDs    bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		ShowIDs:    true,
		MaxWidth:   width,
		MaxHeight:  height,
	}
}

// VisualizeWorkspace draws the monitors of a grid and the windows on them,
// scaled to fit the terminal. The focused window gets a distinct border and
// is drawn last so it is never hidden.
func VisualizeWorkspace(grid *layout.MonitorGrid, windows []models.Window, focused models.WindowID, opts VisualizationOptions) string {
	if grid.MonitorCount() == 0 {
		return "No monitors found\n"
	}

	width, height := grid.WorkspaceSize()
	header := fmt.Sprintf("Workspace %dx%d: %d monitors, %d windows\n",
		width, height, grid.MonitorCount(), len(windows))

	// Reserve lines for header and footer
	sc := NewScalingContext(width, height, opts.MaxWidth, opts.MaxHeight-3)
	canvas := NewCanvas(sc.Used())
	palette := NewPalette(opts.UseUnicode)

	bounds := grid.Bounds()
	for _, b := range bounds {
		x, y := sc.PixelToTerminal(b.X, b.Y)
		w, h := sc.ScaleSize(b.Monitor.Width, b.Monitor.Height)
		x, y, w, h = sc.ClampToCanvas(x, y, w, h)
		canvas.DrawBox(x, y, w, h, palette.Monitor)
	}

	var focusedWindow *models.Window
	for i := range windows {
		if windows[i].ID == focused {
			focusedWindow = &windows[i]
			continue
		}
		drawWindow(canvas, sc, windows[i], palette.Window, opts.ShowIDs)
	}
	if focusedWindow != nil {
		drawWindow(canvas, sc, *focusedWindow, palette.Focused, opts.ShowIDs)
	}

	// Monitor labels go on top so windows touching a monitor's top edge cannot hide them
	for _, b := range bounds {
		x, y := sc.PixelToTerminal(b.X, b.Y)
		w, _ := sc.ScaleSize(b.Monitor.Width, b.Monitor.Height)
		canvas.DrawText(x+2, y, fmt.Sprintf(" %d: %s ", b.Index, b.Monitor), w-4)
	}

	return header + canvas.String() + "\n" + focusFooter(grid, focusedWindow)
}

func drawWindow(canvas *Canvas, sc *ScalingContext, win models.Window, style BoxStyle, showID bool) {
	x, y := sc.PixelToTerminal(win.XOffset, win.YOffset)
	w, h := sc.ScaleSize(win.Width, win.Height)
	x, y, w, h = sc.ClampToCanvas(x, y, w, h)

	// Skip if too small
	if w < 3 || h < 2 {
		return
	}

	canvas.DrawBox(x, y, w, h, style)
	if h > 2 {
		canvas.DrawText(x+1, y+1, createWindowLabel(win, showID), w-2)
	}
}

func focusFooter(grid *layout.MonitorGrid, focused *models.Window) string {
	if focused == nil {
		return "Focused: none on this workspace\n"
	}

	monitor := "?"
	if idx, err := grid.Locate(*focused); err == nil {
		monitor = fmt.Sprintf("%d", idx)
	}
	return fmt.Sprintf("Focused: %s %s on monitor %s\n", focused.ID.Hex(), appName(focused.WindowClass), monitor)
}

// createWindowLabel creates a label for a window
func createWindowLabel(win models.Window, showID bool) string {
	name := appName(win.WindowClass)
	if showID {
		return fmt.Sprintf("[%s] %s", win.ID.Hex(), name)
	}
	return name
}

// appName returns the class half of an "instance.Class" WM_CLASS
func appName(windowClass string) string {
	if windowClass == "" {
		return "Unknown"
	}
	if i := strings.LastIndex(windowClass, "."); i >= 0 && i < len(windowClass)-1 {
		return windowClass[i+1:]
	}
	return windowClass
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	// Check LANG and LC_ALL environment variables
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization prints a colored visualization to stdout
func PrintVisualization(grid *layout.MonitorGrid, windows []models.Window, focused models.WindowID, opts VisualizationOptions) {
	FprintVisualization(os.Stdout, grid, windows, focused, opts)
}

// FprintVisualization writes the visualization to w, in cyan unless color is disabled
func FprintVisualization(w io.Writer, grid *layout.MonitorGrid, windows []models.Window, focused models.WindowID, opts VisualizationOptions) {
	result := VisualizeWorkspace(grid, windows, focused, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprint(w, result)
}
