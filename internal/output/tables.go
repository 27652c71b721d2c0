package output

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/models"
)

// WindowRow is one line of the windows table
type WindowRow struct {
	Window models.Window `json:"window"`
	// Monitor is nil for windows that sit on no monitor
	Monitor *models.MonitorIndex `json:"monitor"`
	Focused bool                 `json:"focused"`
}

// PrintWindowsTable prints windows in a table format
func PrintWindowsTable(rows []WindowRow) {
	FprintWindowsTable(os.Stdout, rows)
}

// FprintWindowsTable writes the windows table to w
func FprintWindowsTable(w io.Writer, rows []WindowRow) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Monitor", "Class", "Title", "Frame", "Focused")

	for _, row := range rows {
		monitor := "-"
		if row.Monitor != nil {
			monitor = fmt.Sprintf("%d", *row.Monitor)
		}
		focused := ""
		if row.Focused {
			focused = "*"
		}

		table.Append(
			row.Window.ID.Hex(),
			monitor,
			truncate(row.Window.WindowClass, 30),
			truncate(row.Window.Title, 40),
			row.Window.FormatFrame(),
			focused,
		)
	}

	table.Render()
}

// PrintMonitorsTable prints the monitor grid in a table format
func PrintMonitorsTable(bounds []layout.MonitorBounds) {
	FprintMonitorsTable(os.Stdout, bounds)
}

// FprintMonitorsTable writes the monitor table to w
func FprintMonitorsTable(w io.Writer, bounds []layout.MonitorBounds) {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Column", "Row", "Size", "Position")

	for _, b := range bounds {
		table.Append(
			fmt.Sprintf("%d", b.Index),
			fmt.Sprintf("%d", b.Column),
			fmt.Sprintf("%d", b.Row),
			b.Monitor.String(),
			fmt.Sprintf("+%d+%d", b.X, b.Y),
		)
	}

	table.Render()
}

// PrintWindowDetail prints detailed information about a single window
func PrintWindowDetail(win models.Window, monitor *models.MonitorIndex) {
	fmt.Println(win.String())
	if monitor != nil {
		fmt.Printf("Monitor: %d\n", *monitor)
	} else {
		fmt.Println("Monitor: -")
	}
}

// Helper functions

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
