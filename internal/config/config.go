// Package config loads the touchpad daemon's YAML configuration file
// into an internal/touchpad.Config, covering the option surface
// (scroll method, natural scrolling, DWT, tap, clickpad handedness,
// send_events, acceleration) documented in the project's spec.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"touchpad/internal/touchpad"
)

// File is the on-disk YAML shape. Apply overlays it onto a base
// touchpad.Config; see Apply for which fields keep the base value when
// left unset.
type File struct {
	Device struct {
		NameKeyword string `yaml:"name_keyword"`
		MustContain string `yaml:"must_contain"`
	} `yaml:"device"`

	ScrollMethod  string  `yaml:"scroll_method"` // "none" | "edge" | "two_finger"
	NaturalScroll bool    `yaml:"natural_scroll"`
	DWT           *bool   `yaml:"dwt"`
	Tap           bool    `yaml:"tap"`
	TapAndDrag    bool    `yaml:"tap_and_drag"`
	LeftHanded    bool    `yaml:"left_handed"`
	ClickMethod   string  `yaml:"click_method"` // "none" | "button_areas" | "finger"
	SendEvents    string  `yaml:"send_events"`  // "enabled" | "disabled" | "disabled_on_external_mouse"
	AccelSpeed    float64 `yaml:"accel_speed"`  // [-1.0, 1.0]
	AccelProfile  string  `yaml:"accel_profile"` // "touchpad" | "low_dpi_mouse" | "lenovo_x230"

	SwipeEnabled *bool `yaml:"swipe_enabled"`
	PinchEnabled *bool `yaml:"pinch_enabled"`

	MonitorTrackpoint *bool `yaml:"monitor_trackpoint"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// Apply overlays the file's settings onto base, leaving base's values
// for anything the file left unset, except the plain boolean options
// (natural_scroll, tap, tap_and_drag, left_handed): those always
// replace base's value, so an absent key sets them to false.
func (f File) Apply(base touchpad.Config) touchpad.Config {
	cfg := base

	switch f.ScrollMethod {
	case "edge":
		cfg.ScrollMethod = touchpad.ScrollEdge
	case "two_finger":
		cfg.ScrollMethod = touchpad.ScrollTwoFinger
	case "none":
		cfg.ScrollMethod = touchpad.ScrollNone
	}

	cfg.NaturalScroll = f.NaturalScroll
	if f.DWT != nil {
		cfg.DWTEnabled = *f.DWT
	}
	cfg.TapEnabled = f.Tap
	cfg.TapAndDrag = f.TapAndDrag
	cfg.LeftHanded = f.LeftHanded

	switch f.ClickMethod {
	case "button_areas":
		cfg.ClickMethod = touchpad.ClickButtonAreas
	case "finger":
		cfg.ClickMethod = touchpad.ClickFinger
	case "none":
		cfg.ClickMethod = touchpad.ClickNone
	}

	switch f.SendEvents {
	case "disabled":
		cfg.SendEvents = touchpad.SendEventsDisabled
	case "disabled_on_external_mouse":
		cfg.SendEvents = touchpad.SendEventsDisabledOnExternalMouse
	case "enabled":
		cfg.SendEvents = touchpad.SendEventsEnabled
	}

	if f.AccelSpeed != 0 {
		cfg.AccelSpeed = clamp(f.AccelSpeed, -1, 1)
	}
	switch f.AccelProfile {
	case "low_dpi_mouse":
		cfg.AccelProfile = touchpad.AccelProfileLowDPIMouse
	case "lenovo_x230":
		cfg.AccelProfile = touchpad.AccelProfileLenovoX230
	case "touchpad":
		cfg.AccelProfile = touchpad.AccelProfileTouchpad
	}

	if f.SwipeEnabled != nil {
		cfg.SwipeEnabled = *f.SwipeEnabled
	}
	if f.PinchEnabled != nil {
		cfg.PinchEnabled = *f.PinchEnabled
	}
	if f.MonitorTrackpoint != nil {
		cfg.MonitorTrackpoint = *f.MonitorTrackpoint
	}

	return cfg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
