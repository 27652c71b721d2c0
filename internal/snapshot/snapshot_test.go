package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/ews-cli/internal/layout"
	"github.com/yourusername/ews-cli/internal/models"
)

type fakeClient struct {
	monitors    []layout.MonitorPlacement
	windows     []models.Window
	focused     models.WindowID
	focusErr    error
	monitorCall int
	focusCall   int
}

func (f *fakeClient) Monitors(ctx context.Context) ([]layout.MonitorPlacement, error) {
	f.monitorCall++
	return f.monitors, nil
}

func (f *fakeClient) Windows(ctx context.Context) ([]models.Window, error) {
	return append([]models.Window(nil), f.windows...), nil
}

func (f *fakeClient) FocusedWindow(ctx context.Context) (models.WindowID, error) {
	f.focusCall++
	return f.focused, f.focusErr
}

func (f *fakeClient) FocusWindow(ctx context.Context, id models.WindowID) error {
	return nil
}

func (f *fakeClient) Close() error {
	return nil
}

func dualClient() *fakeClient {
	return &fakeClient{
		monitors: []layout.MonitorPlacement{
			{Dimensions: "1920x1080", X: 1920, Y: 0},
			{Dimensions: "1920x1080", X: 0, Y: 0},
		},
		windows: []models.Window{
			{ID: 1, XOffset: 2000, YOffset: 24, WindowClass: "code.Code"},
			{ID: 2, XOffset: 10, YOffset: 24, WindowClass: "firefox.Firefox"},
			{ID: 3, XOffset: 0, YOffset: 0, WindowClass: "nemo-desktop.Nemo-desktop"},
			{ID: 4, XOffset: 100, YOffset: -1056, WindowClass: "code.Code"},
			{ID: 5, XOffset: 4000, YOffset: 24, WindowClass: "code.Code"},
			{ID: 6, XOffset: 500, YOffset: 24, WindowClass: "N/A"},
		},
		focused: 1,
	}
}

func TestFetch_Filters(t *testing.T) {
	c := dualClient()

	snap, err := Fetch(context.Background(), c, Options{Decoration: models.WindowDecoration})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if got := snap.Grid.MonitorCount(); got != 2 {
		t.Errorf("MonitorCount() = %d, want 2", got)
	}
	if snap.Total != 6 {
		t.Errorf("Total = %d, want 6", snap.Total)
	}
	if len(snap.Windows) != 2 {
		t.Fatalf("expected 2 visible windows, got %d: %+v", len(snap.Windows), snap.Windows)
	}
	// Sorted left to right
	if snap.Windows[0].ID != 2 || snap.Windows[1].ID != 1 {
		t.Errorf("windows = [%d %d], want [2 1]", snap.Windows[0].ID, snap.Windows[1].ID)
	}
	if snap.FocusedWindowID != 0 || c.focusCall != 0 {
		t.Errorf("focused window queried without WithFocus")
	}
}

func TestFetch_Unfiltered(t *testing.T) {
	snap, err := Fetch(context.Background(), dualClient(), Options{Unfiltered: true})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if len(snap.Windows) != 6 {
		t.Errorf("expected 6 windows, got %d", len(snap.Windows))
	}
	if snap.Windows[0].ID != 3 {
		t.Errorf("first window = %d, want 3 (x offset 0)", snap.Windows[0].ID)
	}
}

func TestFetch_WithFocus(t *testing.T) {
	c := dualClient()
	snap, err := Fetch(context.Background(), c, Options{WithFocus: true})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if snap.FocusedWindowID != 1 {
		t.Errorf("FocusedWindowID = %d, want 1", snap.FocusedWindowID)
	}

	w, ok := snap.Window(1)
	if !ok || w.XOffset != 2000 {
		t.Errorf("Window(1) = %+v, %v", w, ok)
	}
	if _, ok := snap.Window(4); ok {
		t.Error("Window(4) found, but it is on another desktop")
	}
}

func TestFetch_FocusError(t *testing.T) {
	c := dualClient()
	c.focusErr = errors.New("xdotool failed")

	if _, err := Fetch(context.Background(), c, Options{WithFocus: true}); err == nil {
		t.Error("expected error")
	}
}

func TestFetch_ConfiguredMonitors(t *testing.T) {
	c := dualClient()

	snap, err := Fetch(context.Background(), c, Options{
		Monitors:   []string{"2560x1440+0+0"},
		Decoration: 30,
	})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if c.monitorCall != 0 {
		t.Error("display server queried despite configured monitors")
	}
	if got := snap.Grid.MonitorCount(); got != 1 {
		t.Errorf("MonitorCount() = %d, want 1", got)
	}
	if got := snap.Grid.Decoration(); got != 30 {
		t.Errorf("Decoration() = %d, want 30", got)
	}
	// 2000 and 10 are on the plane, 4000 is not.
	if len(snap.Windows) != 2 {
		t.Errorf("expected 2 visible windows, got %d", len(snap.Windows))
	}
}

func TestFetch_BadConfiguredMonitors(t *testing.T) {
	_, err := Fetch(context.Background(), dualClient(), Options{Monitors: []string{"1920x1080"}})
	if !errors.Is(err, layout.ErrMalformedMonitor) {
		t.Errorf("error = %v, want ErrMalformedMonitor", err)
	}
}

func TestFetch_IgnoredClasses(t *testing.T) {
	snap, err := Fetch(context.Background(), dualClient(), Options{IgnoredClasses: []string{"code.Code"}})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	// Replacing the defaults lets the N/A window through and drops code.Code.
	ids := make(map[models.WindowID]bool)
	for _, w := range snap.Windows {
		ids[w.ID] = true
	}
	if !ids[2] || !ids[6] || ids[1] || len(ids) != 2 {
		t.Errorf("visible ids = %v, want {2, 6}", ids)
	}
}
