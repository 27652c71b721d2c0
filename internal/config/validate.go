package config

import (
	"fmt"
	"strings"

	"github.com/yourusername/ews-cli/internal/layout"
)

var validBackends = map[string]bool{
	"tools": true,
	"x11":   true,
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	if err := validateTools(&c.Tools); err != nil {
		return fmt.Errorf("tools: %w", err)
	}

	return nil
}

func validateSettings(s *Settings) error {
	if !validBackends[s.Backend] {
		return fmt.Errorf("invalid backend: %q (must be tools or x11)", s.Backend)
	}

	if s.WindowDecoration < 0 {
		return fmt.Errorf("windowDecoration must be >= 0, got %d", s.WindowDecoration)
	}

	for i, class := range s.IgnoredClasses {
		if strings.TrimSpace(class) == "" {
			return fmt.Errorf("ignoredClasses[%d]: empty class", i)
		}
	}

	if len(s.Monitors) > 0 {
		if _, err := layout.ParseGeometryList(s.Monitors); err != nil {
			return fmt.Errorf("monitors: %w", err)
		}
	}

	return nil
}

func validateTools(t *Tools) error {
	tools := []struct {
		name, value string
	}{
		{"wmctrl", t.Wmctrl},
		{"xrandr", t.Xrandr},
		{"xdotool", t.Xdotool},
	}

	for _, tool := range tools {
		if strings.TrimSpace(tool.value) == "" {
			return fmt.Errorf("%s: command must not be empty", tool.name)
		}
	}
	return nil
}
