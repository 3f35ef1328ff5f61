package peers

import (
	"testing"

	"touchpad/internal/touchpad"
)

func TestButtonsSoftButtonArea(t *testing.T) {
	cfg := touchpad.DefaultConfig()
	sink := &fakeSink{}
	b := NewButtons(cfg, sink, 140, 80, 1800)

	if !b.IsClickpadSoftButtonArea(touchpad.Point{X: 0, Y: 1900}) {
		t.Error("point below the soft button line should be in the soft button area")
	}
	if b.IsClickpadSoftButtonArea(touchpad.Point{X: 0, Y: 100}) {
		t.Error("point near the top of the pad should not be in the soft button area")
	}
}

func TestButtonsZoneSplit(t *testing.T) {
	cfg := touchpad.DefaultConfig()
	cfg.ClickMethod = touchpad.ClickButtonAreas
	cfg.LeftEdge, cfg.RightEdge = 0, 3000
	sink := &fakeSink{}
	b := NewButtons(cfg, sink, 140, 80, 1800)

	if got := b.buttonForPoint(touchpad.Point{X: 2900}); got != btnRight {
		t.Errorf("right-edge click should map to right button, got %#x", got)
	}
	if got := b.buttonForPoint(touchpad.Point{X: 100}); got != btnLeft {
		t.Errorf("left-edge click should map to left button, got %#x", got)
	}
}

func TestButtonsLeftHandedSwapsZones(t *testing.T) {
	cfg := touchpad.DefaultConfig()
	cfg.ClickMethod = touchpad.ClickButtonAreas
	cfg.LeftHanded = true
	cfg.LeftEdge, cfg.RightEdge = 0, 3000
	sink := &fakeSink{}
	b := NewButtons(cfg, sink, 140, 80, 1800)

	if got := b.buttonForPoint(touchpad.Point{X: 2900}); got != btnLeft {
		t.Errorf("left-handed right-edge click should map to left button, got %#x", got)
	}
}
