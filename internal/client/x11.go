package client

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/logging"
	"github.com/yourusername/ews-cli/internal/models"
)

// allDesktops is the _NET_WM_DESKTOP value of sticky windows
const allDesktops = 0xFFFFFFFF

// X11Client answers the same queries as the tools backend by speaking
// EWMH and RandR to the X server directly.
type X11Client struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

// NewX11Client connects to $DISPLAY and initializes RandR
func NewX11Client() (*X11Client, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	return &X11Client{xu: xu, root: xu.RootWin()}, nil
}

// Monitors returns the geometry of every active CRTC
func (c *X11Client) Monitors(ctx context.Context) ([]layout.MonitorPlacement, error) {
	resources, err := randr.GetScreenResources(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var placements []layout.MonitorPlacement
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get crtc %d: %w", crtc, err)
		}

		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		placements = append(placements, layout.MonitorPlacement{
			Dimensions: fmt.Sprintf("%dx%d", info.Width, info.Height),
			X:          int(info.X),
			Y:          int(info.Y),
		})
	}

	logging.Debug().Int("monitors", len(placements)).Msg("queried randr")
	return placements, nil
}

// Windows returns every client on the current desktop with its frame
// position, WM_CLASS as "instance.class", and title. Windows that vanish
// mid-query are skipped.
func (c *X11Client) Windows(ctx context.Context) ([]models.Window, error) {
	clients, err := ewmh.ClientListGet(c.xu)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	currentDesktop, desktopErr := ewmh.CurrentDesktopGet(c.xu)

	windows := make([]models.Window, 0, len(clients))
	for _, win := range clients {
		if desktopErr == nil {
			desktop, err := ewmh.WmDesktopGet(c.xu, win)
			if err == nil && desktop != allDesktops && desktop != currentDesktop {
				continue
			}
		}

		w, ok := c.window(win)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}

	logging.Debug().Int("clients", len(clients)).Int("windows", len(windows)).Msg("queried client list")
	return windows, nil
}

func (c *X11Client) window(win xproto.Window) (models.Window, bool) {
	geom, err := xproto.GetGeometry(c.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return models.Window{}, false
	}

	translate, err := xproto.TranslateCoordinates(c.xu.Conn(), win, c.root, 0, 0).Reply()
	if err != nil {
		return models.Window{}, false
	}

	class := "N/A"
	if wmClass, err := icccm.WmClassGet(c.xu, win); err == nil {
		class = wmClass.Instance + "." + wmClass.Class
	}

	title, err := ewmh.WmNameGet(c.xu, win)
	if err != nil || title == "" {
		title, _ = icccm.WmNameGet(c.xu, win)
	}

	// Offsets exclude the window's own border, like wmctrl -G.
	return models.Window{
		ID:          models.WindowID(win),
		XOffset:     int(translate.DstX) - int(geom.X),
		YOffset:     int(translate.DstY) - int(geom.Y),
		Width:       int(geom.Width),
		Height:      int(geom.Height),
		WindowClass: class,
		Title:       title,
	}, true
}

// FocusedWindow returns _NET_ACTIVE_WINDOW
func (c *X11Client) FocusedWindow(ctx context.Context) (models.WindowID, error) {
	win, err := ewmh.ActiveWindowGet(c.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	return models.WindowID(win), nil
}

// FocusWindow activates and raises a window using _NET_ACTIVE_WINDOW.
// The client message is built by hand with a pager source indication so
// window managers honour it without focus-stealing checks.
func (c *X11Client) FocusWindow(ctx context.Context, id models.WindowID) error {
	atomReply, err := xproto.InternAtom(c.xu.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	err = xproto.SendEventChecked(
		c.xu.Conn(),
		false,
		c.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
	if err != nil {
		logging.Warn().Str("window", id.Hex()).Err(err).Msg("focus request failed")
	}
	return nil
}

// Close disconnects from the X server
func (c *X11Client) Close() error {
	c.xu.Conn().Close()
	return nil
}
