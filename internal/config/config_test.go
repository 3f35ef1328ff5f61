package config

import (
	"os"
	"path/filepath"
	"testing"

	"touchpad/internal/touchpad"
)

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := []byte(`
scroll_method: edge
natural_scroll: true
tap: true
left_handed: true
accel_speed: 0.5
accel_profile: lenovo_x230
`)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := f.Apply(touchpad.DefaultConfig())
	if cfg.ScrollMethod != touchpad.ScrollEdge {
		t.Errorf("ScrollMethod = %v, want edge", cfg.ScrollMethod)
	}
	if !cfg.NaturalScroll {
		t.Error("NaturalScroll should be true")
	}
	if !cfg.TapEnabled {
		t.Error("TapEnabled should be true")
	}
	if !cfg.LeftHanded {
		t.Error("LeftHanded should be true")
	}
	if cfg.AccelSpeed != 0.5 {
		t.Errorf("AccelSpeed = %v, want 0.5", cfg.AccelSpeed)
	}
	if cfg.AccelProfile != touchpad.AccelProfileLenovoX230 {
		t.Errorf("AccelProfile = %v, want lenovo_x230", cfg.AccelProfile)
	}
}

func TestApplyLeavesUnsetFieldsAtDefault(t *testing.T) {
	base := touchpad.DefaultConfig()
	f := File{}
	cfg := f.Apply(base)
	if cfg.AccelProfile != base.AccelProfile {
		t.Error("unset accel_profile should leave the base default untouched")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected an error loading a nonexistent config file")
	}
}
