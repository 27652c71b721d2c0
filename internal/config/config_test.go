package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Settings.Backend != "tools" {
		t.Errorf("Backend = %q, want tools", cfg.Settings.Backend)
	}
	if cfg.Settings.WindowDecoration != 24 {
		t.Errorf("WindowDecoration = %d, want 24", cfg.Settings.WindowDecoration)
	}
	if len(cfg.Settings.IgnoredClasses) != 2 || cfg.Settings.IgnoredClasses[0] != "N/A" {
		t.Errorf("IgnoredClasses = %v", cfg.Settings.IgnoredClasses)
	}
	if cfg.Tools.Wmctrl != "wmctrl" || cfg.Tools.Xrandr != "xrandr" || cfg.Tools.Xdotool != "xdotool" {
		t.Errorf("Tools = %+v", cfg.Tools)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadConfigFromBytes_YAML(t *testing.T) {
	data := []byte(`
settings:
  backend: x11
  windowDecoration: 30
  monitors:
    - 1920x1080+0+0
    - 3440x1440+1920+0
tools:
  wmctrl: /opt/bin/wmctrl
`)

	cfg, err := LoadConfigFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() unexpected error: %v", err)
	}

	if cfg.Settings.Backend != "x11" {
		t.Errorf("Backend = %q, want x11", cfg.Settings.Backend)
	}
	if cfg.Settings.WindowDecoration != 30 {
		t.Errorf("WindowDecoration = %d, want 30", cfg.Settings.WindowDecoration)
	}
	if len(cfg.Settings.Monitors) != 2 {
		t.Errorf("Monitors = %v", cfg.Settings.Monitors)
	}
	if cfg.Tools.Wmctrl != "/opt/bin/wmctrl" {
		t.Errorf("Wmctrl = %q", cfg.Tools.Wmctrl)
	}
	// Unset keys keep their defaults
	if cfg.Tools.Xdotool != "xdotool" {
		t.Errorf("Xdotool = %q, want default", cfg.Tools.Xdotool)
	}
	if len(cfg.Settings.IgnoredClasses) != 2 {
		t.Errorf("IgnoredClasses = %v, want defaults", cfg.Settings.IgnoredClasses)
	}
}

func TestLoadConfigFromBytes_JSON(t *testing.T) {
	data := []byte(`{"settings": {"ignoredClasses": ["polybar.Polybar"], "windowDecoration": 0, "debug": true}}`)

	cfg, err := LoadConfigFromBytes(data, "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() unexpected error: %v", err)
	}
	if len(cfg.Settings.IgnoredClasses) != 1 || cfg.Settings.IgnoredClasses[0] != "polybar.Polybar" {
		t.Errorf("IgnoredClasses = %v", cfg.Settings.IgnoredClasses)
	}
	if cfg.Settings.WindowDecoration != 0 {
		t.Errorf("WindowDecoration = %d, want 0", cfg.Settings.WindowDecoration)
	}
	if !cfg.Settings.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Settings.Backend != "tools" {
		t.Errorf("Backend = %q, want default tools", cfg.Settings.Backend)
	}
}

func TestLoadConfigFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		want   string
	}{
		{"unknown backend", "settings:\n  backend: wayland\n", "yaml", "invalid backend"},
		{"negative decoration", "settings:\n  windowDecoration: -1\n", "yaml", "windowDecoration"},
		{"empty ignored class", "settings:\n  ignoredClasses: [\"\"]\n", "yaml", "ignoredClasses[0]"},
		{"bad monitor", "settings:\n  monitors: [1920x1080]\n", "yaml", "monitors"},
		{"zero-size monitor", "settings:\n  monitors: [0x1080+0+0]\n", "yaml", "monitors"},
		{"empty tool", "tools:\n  xrandr: \"\"\n", "yaml", "xrandr"},
		{"bad yaml", "settings: [", "yaml", "failed to parse YAML"},
		{"bad json", "{", "json", "failed to parse JSON"},
		{"unsupported format", "", "toml", "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromBytes([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ews.yml")
	if err := os.WriteFile(path, []byte("settings:\n  backend: x11\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Settings.Backend != "x11" {
		t.Errorf("Backend = %q, want x11", cfg.Settings.Backend)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(path, []byte(`{"settings": {"windowDecoration": 12}}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Settings.WindowDecoration != 12 {
		t.Errorf("WindowDecoration = %d, want 12", cfg.Settings.WindowDecoration)
	}
	if got := GetConfigPath(); got != path {
		t.Errorf("GetConfigPath() = %q, want %q", got, path)
	}
}

func TestLoadConfig_DefaultLocations(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")

	// Nothing on disk: built-in defaults
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Settings.WindowDecoration != 24 {
		t.Errorf("WindowDecoration = %d, want 24", cfg.Settings.WindowDecoration)
	}

	dir := filepath.Join(home, DefaultConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	// JSON is used when no YAML exists
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"settings": {"windowDecoration": 5}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Settings.WindowDecoration != 5 {
		t.Errorf("WindowDecoration = %d, want 5 from config.json", cfg.Settings.WindowDecoration)
	}

	// YAML wins over JSON
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("settings:\n  windowDecoration: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Settings.WindowDecoration != 7 {
		t.Errorf("WindowDecoration = %d, want 7 from config.yaml", cfg.Settings.WindowDecoration)
	}

	if got, want := GetConfigPath(), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() unexpected error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() of written default: %v", err)
	}
	if cfg.Settings.Backend != "tools" || cfg.Settings.WindowDecoration != 24 {
		t.Errorf("round-tripped default = %+v", cfg.Settings)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Error("expected error when file exists")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) unexpected error: %v", err)
	}
}
