package client

import (
	"context"
	"fmt"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/models"
)

const (
	BackendTools = "tools"
	BackendX11   = "x11"
)

// Client answers the four questions the focus switcher asks of the desktop
type Client interface {
	// Monitors returns every connected monitor's geometry
	Monitors(ctx context.Context) ([]layout.MonitorPlacement, error)
	// Windows returns every managed window, unfiltered
	Windows(ctx context.Context) ([]models.Window, error)
	// FocusedWindow returns the ID of the window holding keyboard focus
	FocusedWindow(ctx context.Context) (models.WindowID, error)
	// FocusWindow raises and focuses a window
	FocusWindow(ctx context.Context, id models.WindowID) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend string
	Tools   ToolNames
	Runner  Runner
}

// New creates the client for the requested backend
func New(opts Options) (Client, error) {
	switch opts.Backend {
	case "", BackendTools:
		return NewToolsClient(opts.Tools, opts.Runner), nil
	case BackendX11:
		return NewX11Client()
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %s or %s)", opts.Backend, BackendTools, BackendX11)
	}
}
