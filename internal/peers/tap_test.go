package peers

import (
	"testing"

	"touchpad/internal/touchpad"
)

type fakeSink struct {
	buttons []struct {
		code    uint16
		isPress bool
	}
}

func (f *fakeSink) PointerMotion(dx, dy float64) {}
func (f *fakeSink) Button(code uint16, isPress bool) {
	f.buttons = append(f.buttons, struct {
		code    uint16
		isPress bool
	}{code, isPress})
}
func (f *fakeSink) Key(code uint16, isPress bool)                       {}
func (f *fakeSink) ScrollBegin()                                        {}
func (f *fakeSink) Scroll(dx, dy float64, source touchpad.ScrollSource) {}
func (f *fakeSink) ScrollStop()                                         {}
func (f *fakeSink) SwipeBegin(fingers int)                              {}
func (f *fakeSink) SwipeUpdate(dx, dy, dxUnaccel, dyUnaccel float64, fingers int) {}
func (f *fakeSink) SwipeEnd(cancelled bool)                                      {}
func (f *fakeSink) PinchBegin(fingers int)                                       {}
func (f *fakeSink) PinchUpdate(dx, dy, dxUnaccel, dyUnaccel, scale, angleDelta float64, fingers int) {
}
func (f *fakeSink) PinchEnd(cancelled bool) {}

func TestTapDoesNotFireWithoutTouches(t *testing.T) {
	cfg := touchpad.DefaultConfig()
	cfg.TapEnabled = true
	sink := &fakeSink{}
	tap := NewTap(cfg, sink)

	tap.HandleState(0, []*touchpad.Touch{})
	if len(sink.buttons) != 0 {
		t.Error("no touches yet, tap should not fire")
	}
}

func TestTapDisabledNeverFires(t *testing.T) {
	cfg := touchpad.DefaultConfig()
	cfg.TapEnabled = false
	sink := &fakeSink{}
	tap := NewTap(cfg, sink)
	claimed := tap.PostEvents(0)
	if claimed {
		t.Error("disabled tap should never claim a frame")
	}
	if len(sink.buttons) != 0 {
		t.Error("disabled tap should never emit a button event")
	}
}

var _ touchpad.Sink = (*fakeSink)(nil)
