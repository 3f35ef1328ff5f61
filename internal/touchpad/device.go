package touchpad

import "fmt"

// extraFakeSlots is how many synthetic touch slots back fake-finger
// reconciliation for devices that can't report more real MT slots than
// they have (spec.md §4.1's fake-touch handling needs headroom beyond
// NumSlots for 3/4/5-finger tool bits on a 1- or 2-slot pad).
const extraFakeSlots = 5

// Device is the top-level per-touchpad pipeline: slot bookkeeping,
// classifiers, gesture recognition, and pointer acceleration, wired to
// a Sink and optional button/tap/edge-scroll peers.
type Device struct {
	cfg Config

	touches      []*Touch
	currentSlot  int
	fake         fakeTouchState
	nfingersDown int
	oldFingerCount int

	suspended bool

	gesture gestureState
	accel   *accelFilter
	dwt     dwtState

	buttons    Buttons
	tap        Tap
	edgeScroll EdgeScroll
	sink       Sink
}

// NewDevice constructs a Device from validated configuration. Returns
// ErrMalformedDevice (wrapping the specific cause) if the geometry
// can't support the pipeline.
func NewDevice(cfg Config, sink Sink, buttons Buttons, tap Tap, edgeScroll EdgeScroll) (*Device, error) {
	if err := cfg.sanityCheck(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDevice, err)
	}
	initGesture(&cfg)

	total := cfg.NumSlots + extraFakeSlots
	touches := make([]*Touch, total)
	for i := range touches {
		touches[i] = &Touch{Slot: i}
	}

	d := &Device{
		cfg:        cfg,
		touches:    touches,
		sink:       sink,
		buttons:    buttons,
		tap:        tap,
		edgeScroll: edgeScroll,
		accel:      newAccelFilterForProfile(cfg.AccelProfile, 1.0),
		suspended:  cfg.SendEvents == SendEventsDisabled,
	}
	d.accel.setSpeed(cfg.AccelSpeed)
	return d, nil
}

// ProcessAbsolute mirrors tp_process_absolute: routes a single ABS_MT_*
// event to the addressed slot. Call HandleState once an EV_SYN frame
// boundary is reached.
func (d *Device) ProcessAbsolute(now int64, code uint16, value int32) {
	if !d.cfg.HasMT {
		d.processAbsoluteST(now, code, value)
		return
	}
	switch code {
	case absMTSlot:
		if int(value) >= 0 && int(value) < len(d.touches) {
			d.currentSlot = int(value)
		}
	case absMTPositionX:
		t := d.touches[d.currentSlot]
		t.point.X = value
		t.dirty = true
	case absMTPositionY:
		t := d.touches[d.currentSlot]
		t.point.Y = value
		t.dirty = true
	case absMTPressure:
		d.touches[d.currentSlot].pressure = value
	case absMTDistance:
		d.touches[d.currentSlot].distance = value
	case absMTTrackingID:
		t := d.touches[d.currentSlot]
		if value == -1 {
			endSequence(t, now)
		} else {
			newTouch(t, now)
		}
	}
}

func (d *Device) processAbsoluteST(now int64, code uint16, value int32) {
	t := d.touches[0]
	switch code {
	case absX:
		t.point.X = value
		t.dirty = true
	case absY:
		t.point.Y = value
		t.dirty = true
	case absPressure:
		t.pressure = value
	}
}

// ProcessKey mirrors tp_process_key: BTN_TOOL_*/BTN_TOUCH update the
// fake-touch bitmask; every other code (such as the clickpad's physical
// button) is ignored here. Keys from a separate keyboard device reach
// disable-while-typing through KeyboardEvent below.
func (d *Device) ProcessKey(now int64, code uint16, isPress bool) {
	d.fake.set(code, isPress)
}

// KeyboardEvent feeds a keypress from a separate keyboard device into
// disable-while-typing, mirroring how libinput correlates multiple
// devices through the shared seat.
func (d *Device) KeyboardEvent(now int64, code uint16, isPress bool) {
	d.dwt.keyboardEvent(&d.cfg, code, isPress, now, func() {
		d.stopAndCancel()
		if d.tap != nil {
			d.tap.Suspend()
		}
	})
}

// TrackpointEvent feeds trackpoint motion/buttons into suppression.
func (d *Device) TrackpointEvent(now int64) {
	d.dwt.trackpointEvent(&d.cfg, now, func() {
		d.stopAndCancel()
		if d.tap != nil {
			d.tap.Suspend()
		}
	})
}

func (d *Device) stopAndCancel() {
	if d.edgeScroll != nil {
		d.edgeScroll.Stop()
	}
	d.gesture.cancel(d.sink)
}

// Suspend/Resume implement spec.md §6's send_events option.
func (d *Device) Suspend() { d.suspended = true }
func (d *Device) Resume()  { d.suspended = false }
