package config

// Config is the root configuration structure
type Config struct {
	Settings Settings `yaml:"settings" json:"settings"`
	Tools    Tools    `yaml:"tools" json:"tools"`
}

// Settings contains global application settings
type Settings struct {
	Backend          string   `yaml:"backend" json:"backend"`                       // "tools" or "x11"
	WindowDecoration int      `yaml:"windowDecoration" json:"windowDecoration"`     // Title-bar height in pixels
	IgnoredClasses   []string `yaml:"ignoredClasses" json:"ignoredClasses"`         // WM_CLASS values never focused
	Monitors         []string `yaml:"monitors,omitempty" json:"monitors,omitempty"` // Explicit "WxH+X+Y" layout
	Debug            bool     `yaml:"debug" json:"debug"`
}

// Tools names the commands used by the tools backend
type Tools struct {
	Wmctrl  string `yaml:"wmctrl" json:"wmctrl"`
	Xrandr  string `yaml:"xrandr" json:"xrandr"`
	Xdotool string `yaml:"xdotool" json:"xdotool"`
}
