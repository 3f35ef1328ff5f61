package touchpad

import "testing"

type fakeSink struct {
	motions [][2]float64
	buttons []uint16
}

func (f *fakeSink) PointerMotion(dx, dy float64) { f.motions = append(f.motions, [2]float64{dx, dy}) }
func (f *fakeSink) Button(code uint16, isPress bool) {
	if isPress {
		f.buttons = append(f.buttons, code)
	}
}
func (f *fakeSink) Key(code uint16, isPress bool)                         {}
func (f *fakeSink) ScrollBegin()                                          {}
func (f *fakeSink) Scroll(dx, dy float64, source ScrollSource)            {}
func (f *fakeSink) ScrollStop()                                           {}
func (f *fakeSink) SwipeBegin(fingers int) {}
func (f *fakeSink) SwipeUpdate(dx, dy, dxUnaccel, dyUnaccel float64, fingers int) {}
func (f *fakeSink) SwipeEnd(cancelled bool)                                      {}
func (f *fakeSink) PinchBegin(fingers int)                                       {}
func (f *fakeSink) PinchUpdate(dx, dy, dxUnaccel, dyUnaccel, scale, angleDelta float64, fingers int) {
}
func (f *fakeSink) PinchEnd(cancelled bool) {}

func newTestDevice(t *testing.T) (*Device, *fakeSink) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.NumSlots = 2
	cfg.HasMT = true
	cfg.XResolution = 40
	cfg.YResolution = 40
	cfg.XScaleCoeff = 1
	cfg.YScaleCoeff = 1
	cfg.LeftEdge, cfg.RightEdge = 0, 3000
	cfg.VertCenter = 2000
	cfg.ReportsDistance = true
	sink := &fakeSink{}
	d, err := NewDevice(cfg, sink, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	return d, sink
}

func TestNewDeviceRejectsNoSlots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumSlots = 0
	if _, err := NewDevice(cfg, &fakeSink{}, nil, nil, nil); err == nil {
		t.Error("expected NewDevice to reject a device with no touch slots")
	}
}

func TestSingleFingerMotionProducesPointerEvents(t *testing.T) {
	d, sink := newTestDevice(t)

	now := int64(0)
	feed := func(x, y int32) {
		d.ProcessAbsolute(now, absMTSlot, 0)
		d.ProcessAbsolute(now, absMTTrackingID, 1)
		d.ProcessAbsolute(now, absMTPositionX, x)
		d.ProcessAbsolute(now, absMTPositionY, y)
		d.HandleState(now)
		now += 10_000
	}

	for i := 0; i < 8; i++ {
		feed(int32(100+i*20), int32(200+i*5))
	}

	if len(sink.motions) == 0 {
		t.Error("expected pointer motion events after several frames of single-finger movement")
	}
}

func TestTouchEndStopsMotion(t *testing.T) {
	d, _ := newTestDevice(t)
	now := int64(0)
	d.ProcessAbsolute(now, absMTSlot, 0)
	d.ProcessAbsolute(now, absMTTrackingID, 1)
	d.ProcessAbsolute(now, absMTPositionX, 100)
	d.ProcessAbsolute(now, absMTPositionY, 100)
	d.HandleState(now)

	now += 10_000
	d.ProcessAbsolute(now, absMTTrackingID, -1)
	d.HandleState(now)

	if d.touches[0].State() != TouchNone && d.touches[0].State() != TouchHovering {
		t.Errorf("touch state after tracking-id release = %v, want none/hovering", d.touches[0].State())
	}
}

var _ Sink = (*fakeSink)(nil)
