package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/ews-cli/internal/client"
	"github.com/yourusername/ews-cli/internal/config"
	"github.com/yourusername/ews-cli/internal/focus"
	"github.com/yourusername/ews-cli/internal/logging"
	"github.com/yourusername/ews-cli/internal/models"
	"github.com/yourusername/ews-cli/internal/output"
	"github.com/yourusername/ews-cli/internal/snapshot"
	"github.com/yourusername/ews-cli/internal/types"
)

var (
	configPath  string
	backendFlag string
	jsonOutput  bool
	noColor     bool
	debugMode   bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ews",
	Short: "Easy window switcher: move focus between windows across monitors",
	Long: `ews moves keyboard focus between windows on a multi-monitor X11 desktop.

Windows are ordered left to right on each monitor. Moving past the edge of a
monitor continues on the next monitor that has windows, wrapping around the
whole workspace.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// directionCmd focuses the neighbouring window
var directionCmd = &cobra.Command{
	Use:       "direction <left|right>",
	Short:     "Focus the next window to the left or right",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, ok := types.ParseDirection(args[0])
		if !ok {
			return fmt.Errorf("invalid direction %q (expected left or right)", args[0])
		}

		ctx := context.Background()
		cfg, c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		snap, err := snapshot.Fetch(ctx, c, snapshotOptions(cfg, true, false))
		if err != nil {
			return err
		}

		target, err := focus.FocusByDirection(ctx, c, snap, dir)
		if err != nil {
			return err
		}
		return printTarget(target)
	},
}

// monitorCmd focuses the leftmost window of a monitor
var monitorCmd = &cobra.Command{
	Use:   "monitor <index>",
	Short: "Focus the leftmost window on a monitor",
	Long: `Focuses the leftmost window on the monitor with the given index.

Monitors are numbered from 0, left to right and top to bottom within a column.
Use 'ews list monitors' to see the numbering.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 {
			return fmt.Errorf("invalid monitor index %q", args[0])
		}

		ctx := context.Background()
		cfg, c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		snap, err := snapshot.Fetch(ctx, c, snapshotOptions(cfg, false, false))
		if err != nil {
			return err
		}

		target, err := focus.FocusByMonitorIndex(ctx, c, snap, models.MonitorIndex(index))
		if err != nil {
			return err
		}
		return printTarget(target)
	},
}

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows or monitors",
}

// listWindowsCmd lists workspace windows
var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows on the current workspace",
	Long: `Lists windows with their IDs, monitor, class, title and frame.

By default docks, desktops and windows outside the current workspace are
filtered out. Use --all to show everything the window manager reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")
		details, _ := cmd.Flags().GetBool("details")

		ctx := context.Background()
		cfg, c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		snap, err := snapshot.Fetch(ctx, c, snapshotOptions(cfg, false, showAll))
		if err != nil {
			return err
		}
		focused := focusedWindow(ctx, c)

		rows := make([]output.WindowRow, 0, len(snap.Windows))
		for _, w := range snap.Windows {
			row := output.WindowRow{Window: w, Focused: w.ID == focused}
			if idx, err := snap.Grid.Locate(w); err == nil {
				row.Monitor = &idx
			}
			rows = append(rows, row)
		}

		if jsonOutput {
			return printJSON(rows)
		}

		if len(rows) == 0 {
			fmt.Println("No windows found")
			return nil
		}

		if details {
			for i, row := range rows {
				if i > 0 {
					fmt.Println()
				}
				output.PrintWindowDetail(row.Window, row.Monitor)
			}
		} else {
			output.PrintWindowsTable(rows)
		}
		fmt.Printf("\nTotal: %d windows", len(rows))
		if !showAll {
			fmt.Printf(" (filtered from %d, use --all to show all windows)", snap.Total)
		}
		fmt.Println()
		return nil
	},
}

// listMonitorsCmd lists the monitor grid
var listMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors in focus order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		snap, err := snapshot.Fetch(ctx, c, snapshotOptions(cfg, false, false))
		if err != nil {
			return err
		}

		bounds := snap.Grid.Bounds()
		if jsonOutput {
			return printJSON(bounds)
		}

		if len(bounds) == 0 {
			fmt.Println("No monitors found")
			return nil
		}

		output.PrintMonitorsTable(bounds)
		width, height := snap.Grid.WorkspaceSize()
		fmt.Printf("\nTotal: %d monitors, workspace %dx%d\n", len(bounds), width, height)
		return nil
	},
}

// Visualization flags
var (
	showASCII   bool
	showUnicode bool
	showNoIDs   bool
	showWidth   int
	showHeight  int
)

// showCmd draws the workspace
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw monitors and windows of the current workspace",
	Long: `Displays a spatial ASCII/Unicode drawing of the workspace.
Monitors are outlined, windows are shown as boxes with their ID and
application name, and the focused window is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		snap, err := snapshot.Fetch(ctx, c, snapshotOptions(cfg, false, false))
		if err != nil {
			return err
		}
		focused := focusedWindow(ctx, c)

		output.PrintVisualization(snap.Grid, snap.Windows, focused, getVisualizationOptions())
		return nil
	},
}

// checkCmd reports whether the backend is usable
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the required external tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Settings.Backend == client.BackendX11 {
			c, err := client.NewX11Client()
			if err != nil {
				return fmt.Errorf("X server not reachable: %w", err)
			}
			c.Close()
			successColor.Println("✓ X server reachable")
			return nil
		}

		ctx := context.Background()
		var missing error
		for _, tool := range client.ToolNames(cfg.Tools).All() {
			if err := client.CheckTools(ctx, nil, []string{tool}); err != nil {
				printError(err.Error())
				if missing == nil {
					missing = err
				}
				continue
			}
			successColor.Print("✓ ")
			fmt.Println(tool)
		}
		if missing != nil {
			return errors.New("required tools are missing")
		}
		return nil
	},
}

// configCmd is the parent command for configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for managing ews configuration.`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

// configValidateCmd validates a configuration file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		keyColor.Print("  Backend: ")
		fmt.Println(cfg.Settings.Backend)
		keyColor.Print("  Window decoration: ")
		fmt.Println(cfg.Settings.WindowDecoration)
		keyColor.Print("  Ignored classes: ")
		fmt.Println(len(cfg.Settings.IgnoredClasses))
		if len(cfg.Settings.Monitors) > 0 {
			keyColor.Print("  Monitors: ")
			fmt.Println(len(cfg.Settings.Monitors))
		}
		return nil
	},
}

// configInitCmd creates a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}
		if err := config.WriteDefault(path, force); err != nil {
			return err
		}

		successColor.Print("✓ Created config file: ")
		infoColor.Println(path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/ews/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Backend override: tools or x11")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Focus commands
	rootCmd.AddCommand(directionCmd)
	rootCmd.AddCommand(monitorCmd)

	// List commands
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listMonitorsCmd)
	listWindowsCmd.Flags().Bool("all", false, "Show all windows without filtering")
	listWindowsCmd.Flags().Bool("details", false, "Show one block per window instead of a table")

	// Show command
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII box characters")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode box characters")
	showCmd.Flags().BoolVar(&showNoIDs, "no-ids", false, "Hide window IDs")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	rootCmd.AddCommand(checkCmd)

	// Config commands
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging; without a log file the logger stays disabled
	if err := logging.Init(); err == nil {
		defer logging.Close()
	}

	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("command failed")
		printError(err.Error())
		if debugMode && logging.RunID() != "" {
			fmt.Fprintf(os.Stderr, "See %s (run %s)\n", logging.Path(), logging.RunID())
		}
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

// loadConfig reads the configuration and applies command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if backendFlag != "" {
		cfg.Settings.Backend = backendFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.Settings.Debug {
		logging.SetDebug(true)
	}
	return cfg, nil
}

// openClient loads the configuration and connects the selected backend.
// The tools backend checks its commands before the first query so a missing
// tool produces the install hint rather than a failed query.
func openClient(ctx context.Context) (*config.Config, client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	c, err := client.New(client.Options{
		Backend: cfg.Settings.Backend,
		Tools:   client.ToolNames(cfg.Tools),
	})
	if err != nil {
		return nil, nil, err
	}

	if tc, ok := c.(*client.ToolsClient); ok {
		if err := tc.Check(ctx); err != nil {
			c.Close()
			return nil, nil, err
		}
	}

	logging.Debug().
		Str("backend", cfg.Settings.Backend).
		Str("config", configPath).
		Msg("client ready")
	return cfg, c, nil
}

func snapshotOptions(cfg *config.Config, withFocus, unfiltered bool) snapshot.Options {
	return snapshot.Options{
		Monitors:       cfg.Settings.Monitors,
		Decoration:     cfg.Settings.WindowDecoration,
		IgnoredClasses: cfg.Settings.IgnoredClasses,
		Unfiltered:     unfiltered,
		WithFocus:      withFocus,
	}
}

// focusedWindow returns the focused window for display purposes; a failed
// query only loses the highlight
func focusedWindow(ctx context.Context, c client.Client) models.WindowID {
	id, err := c.FocusedWindow(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("focused window unavailable")
		return 0
	}
	return id
}

func printTarget(target *focus.Target) error {
	if jsonOutput {
		return printJSON(map[string]interface{}{"target": target})
	}
	if target == nil {
		infoColor.Println("No window to focus")
		return nil
	}

	successColor.Print("✓ Focused ")
	fmt.Printf("%s %s on monitor %d\n", target.Window.ID.Hex(), target.Window.WindowClass, target.Monitor)
	return nil
}

func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()
	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showNoIDs {
		opts.ShowIDs = false
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}
	return opts
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
