package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/logging"
	"github.com/yourusername/ews-cli/internal/models"
)

// ToolNames are the commands the tools backend shells out to
type ToolNames struct {
	Wmctrl  string `yaml:"wmctrl" json:"wmctrl"`
	Xrandr  string `yaml:"xrandr" json:"xrandr"`
	Xdotool string `yaml:"xdotool" json:"xdotool"`
}

// DefaultToolNames resolves each tool from PATH
func DefaultToolNames() ToolNames {
	return ToolNames{Wmctrl: "wmctrl", Xrandr: "xrandr", Xdotool: "xdotool"}
}

// All returns the tool commands in check order
func (t ToolNames) All() []string {
	return []string{t.Wmctrl, t.Xrandr, t.Xdotool}
}

func (t ToolNames) withDefaults() ToolNames {
	d := DefaultToolNames()
	if t.Wmctrl == "" {
		t.Wmctrl = d.Wmctrl
	}
	if t.Xrandr == "" {
		t.Xrandr = d.Xrandr
	}
	if t.Xdotool == "" {
		t.Xdotool = d.Xdotool
	}
	return t
}

// ToolsClient talks to the desktop through wmctrl, xrandr and xdotool
type ToolsClient struct {
	tools  ToolNames
	runner Runner
}

// NewToolsClient creates a tools backend. Empty tool names fall back to the
// defaults and a nil runner uses os/exec.
func NewToolsClient(tools ToolNames, runner Runner) *ToolsClient {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &ToolsClient{tools: tools.withDefaults(), runner: runner}
}

// Tools returns the resolved tool commands
func (c *ToolsClient) Tools() ToolNames {
	return c.tools
}

// Check verifies every tool can be started
func (c *ToolsClient) Check(ctx context.Context) error {
	return CheckTools(ctx, c.runner, c.tools.All())
}

// Monitors runs `xrandr` and parses its connected outputs
func (c *ToolsClient) Monitors(ctx context.Context) ([]layout.MonitorPlacement, error) {
	out, err := c.runner.Run(ctx, c.tools.Xrandr)
	if err != nil {
		return nil, fmt.Errorf("monitor query failed: %w", err)
	}

	placements, err := layout.ParseMonitorDescriptors(layout.ConnectedOutputs(string(out)))
	if err != nil {
		return nil, err
	}

	logging.Debug().Int("monitors", len(placements)).Msg("parsed monitor layout")
	return placements, nil
}

// Windows runs `wmctrl -l -G -x` and parses one window per line
func (c *ToolsClient) Windows(ctx context.Context) ([]models.Window, error) {
	out, err := c.runner.Run(ctx, c.tools.Wmctrl, "-l", "-G", "-x")
	if err != nil {
		return nil, fmt.Errorf("window query failed: %w", err)
	}

	windows, err := models.ParseWindowList(string(out))
	if err != nil {
		return nil, err
	}

	logging.Debug().Int("windows", len(windows)).Msg("parsed window list")
	return windows, nil
}

// FocusedWindow runs `xdotool getwindowfocus`, which prints a decimal ID
func (c *ToolsClient) FocusedWindow(ctx context.Context) (models.WindowID, error) {
	out, err := c.runner.Run(ctx, c.tools.Xdotool, "getwindowfocus")
	if err != nil {
		return 0, fmt.Errorf("focus query failed: %w", err)
	}

	raw := strings.TrimSpace(string(out))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid focused window id %q: %w", raw, err)
	}
	return models.WindowID(id), nil
}

// FocusWindow runs `wmctrl -i -a <id>`. A non-zero exit is logged and
// otherwise ignored; only a failure to start wmctrl is returned.
func (c *ToolsClient) FocusWindow(ctx context.Context, id models.WindowID) error {
	_, err := c.runner.Run(ctx, c.tools.Wmctrl, "-i", "-a", id.Hex())
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		logging.Warn().Str("window", id.Hex()).Err(err).Msg("focus command failed")
		return nil
	}
	return fmt.Errorf("focus command failed: %w", err)
}

// Close is a no-op; every query is its own process
func (c *ToolsClient) Close() error {
	return nil
}
