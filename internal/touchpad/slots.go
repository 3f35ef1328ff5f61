package touchpad

const fakeFingerOverflow = 1 << 7

// fakeTouchState tracks the BTN_TOOL_* / BTN_TOUCH bits on devices that
// don't report real MT slots for every physical finger (semi-mt, or
// plain single-touch pads that still advertise a finger count).
type fakeTouchState uint32

func (f *fakeTouchState) set(code uint16, isDown bool) {
	var shift uint
	switch code {
	case codeBTNTouch:
		if !isDown {
			*f &^= fakeFingerOverflow
		}
		shift = 0
	case codeBTNToolFinger:
		shift = 1
	case codeBTNToolDoubleTap:
		shift = 2
	case codeBTNToolTripleTap:
		shift = 3
	case codeBTNToolQuadTap:
		shift = 4
	case codeBTNToolQuintTap:
		if isDown {
			*f |= fakeFingerOverflow
		}
		return
	default:
		return
	}
	if isDown {
		*f |= 1 << shift
	} else {
		*f &^= 1 << shift
	}
}

// count returns the fake finger count, or fakeFingerOverflow if the
// device reports more fingers than it can enumerate precisely.
func (f fakeTouchState) count() int {
	if f&fakeFingerOverflow != 0 {
		return fakeFingerOverflow
	}
	bits := uint32(f >> 1)
	if bits == 0 {
		return 0
	}
	// index of lowest set bit, 1-based, mirrors libinput's ffs().
	n := 1
	for bits&1 == 0 {
		bits >>= 1
		n++
	}
	return n
}

func (f fakeTouchState) isTouching() bool {
	return f&0x1 != 0
}

// newTouch begins bookkeeping for a touch entering the field, mirroring
// tp_new_touch: it's a no-op if the slot is already live.
func newTouch(t *Touch, now int64) {
	switch t.state {
	case TouchBegin, TouchUpdate, TouchHovering:
		return
	}
	t.history.reset()
	t.dirty = true
	t.hasEnded = false
	t.state = TouchHovering
	t.pinned.isPinned = false
	t.millis = now
}

// beginTouch promotes a hovering/new touch to BEGIN, mirroring tp_begin_touch.
func beginTouch(t *Touch, now int64) {
	t.dirty = true
	t.state = TouchBegin
	t.millis = now
	t.palm.time = now
	t.thumb.state = ThumbMaybe
	t.thumb.firstTouchTime = now
}

// endTouch mirrors tp_end_touch: only touches actually down can end.
func endTouch(t *Touch, now int64) {
	switch t.state {
	case TouchHovering:
		t.state = TouchNone
		return
	case TouchNone, TouchEnd:
		return
	}
	t.dirty = true
	t.palm.state = PalmNone
	t.state = TouchEnd
	t.pinned.isPinned = false
	t.millis = now
	t.palm.time = 0
}

// endSequence mirrors tp_end_sequence: a tracking-id release.
func endSequence(t *Touch, now int64) {
	t.hasEnded = true
	endTouch(t, now)
}

// processFakeTouches computes the current fake-touch count and reconciles it
// against the set of real per-slot touches, mirroring
// tp_process_fake_touches. touches must have length >= cfg.NumSlots, and
// entries beyond NumSlots (if any) hold the synthetic fake-touch slots.
func processFakeTouches(cfg *Config, touches []*Touch, fake fakeTouchState, now int64) {
	n := fake.count()
	if n == fakeFingerOverflow {
		return
	}
	start := 0
	if cfg.HasMT {
		start = cfg.NumSlots
	}
	for i := start; i < len(touches); i++ {
		if i-start < n-start {
			newTouch(touches[i], now)
		} else {
			endSequence(touches[i], now)
		}
	}
}

// restoreSynapticsTouches re-animates touch slots a Synaptics serial
// device silently dropped, per tp_restore_synaptics_touches. Only
// applies to devices carrying the ModelSynapticsSerial quirk.
func restoreSynapticsTouches(cfg *Config, touches []*Touch, nfingersDown int, now int64) {
	if !cfg.ModelFlags.has(ModelSynapticsSerial) {
		return
	}
	fc := 0
	for _, t := range touches[:cfg.NumSlots] {
		if t.state == TouchBegin || t.state == TouchUpdate {
			fc++
		}
	}
	if fc >= 3 && fc == nfingersDown {
		return
	}
	if fc < 3 {
		return
	}
	for _, t := range touches[:cfg.NumSlots] {
		if t.state == TouchEnd {
			newTouch(t, now)
			beginTouch(t, now)
			t.state = TouchUpdate
		}
	}
}

// topmostTouch finds the touch with the smallest Y among the real slots,
// used to position fake touches per tp_position_fake_touches. Returns
// false if no candidate slot is live.
func topmostTouch(touches []*Touch, numSlots int) (Point, bool) {
	var best Point
	found := false
	for _, t := range touches[:numSlots] {
		if t.state == TouchEnd || t.state == TouchNone {
			continue
		}
		if !found || t.point.Y < best.Y {
			best = t.point
			found = true
		}
	}
	return best, found
}

// positionFakeTouches mirrors tp_position_fake_touches: when the device
// reports more fingers than it has slots for, every touch beyond the
// real slots inherits the position of the topmost real touch.
func positionFakeTouches(cfg *Config, touches []*Touch, fake fakeTouchState, nfingersDown int) {
	fc := fake.count()
	if fc <= cfg.NumSlots || nfingersDown == 0 {
		return
	}
	top, ok := topmostTouch(touches, cfg.NumSlots)
	if !ok {
		return
	}
	start := cfg.NumSlots
	if !cfg.HasMT {
		start = 1
	}
	for i := start; i < len(touches); i++ {
		t := touches[i]
		t.point = top
		t.dirty = true
	}
}

// unhoverAbsDistance mirrors tp_unhover_abs_distance: on hardware that
// reports ABS_MT_DISTANCE, a touch actually making contact (distance 0)
// is promoted out of hovering, and lifting off again demotes it back.
func unhoverAbsDistance(t *Touch, now int64) {
	switch {
	case t.distance == 0 && t.state == TouchHovering:
		t.history.reset()
		beginTouch(t, now)
	case t.distance > 0 && t.state != TouchHovering && t.state != TouchNone && t.state != TouchEnd:
		endTouch(t, now)
	}
}

// unhoverFakeTouches mirrors tp_unhover_fake_touches: on hardware with
// no per-touch proximity signal, the fake-touch count (from BTN_TOOL_*
// bits) is the only way to know how many of the tracking-id-valid
// touches are actually in contact. Touches are promoted out of
// hovering front-to-back and demoted back-to-front to match that count.
func unhoverFakeTouches(cfg *Config, touches []*Touch, fake fakeTouchState, now int64) {
	n := fake.count()
	if n == fakeFingerOverflow {
		return
	}
	slots := touches
	if len(slots) > cfg.NumSlots {
		slots = slots[:cfg.NumSlots]
	}

	down := 0
	for _, t := range slots {
		if t.state == TouchBegin || t.state == TouchUpdate {
			down++
		}
	}

	if down < n {
		for _, t := range slots {
			if down >= n {
				break
			}
			if t.state == TouchHovering {
				beginTouch(t, now)
				down++
			}
		}
	} else if down > n {
		for i := len(slots) - 1; i >= 0; i-- {
			if down <= n {
				break
			}
			t := slots[i]
			if t.state == TouchBegin || t.state == TouchUpdate {
				endTouch(t, now)
				down--
			}
		}
	}
}

// unhoverTouches mirrors tp_unhover_touches: dispatches to whichever
// variant matches the hardware's reporting capability.
func unhoverTouches(cfg *Config, touches []*Touch, fake fakeTouchState, now int64) {
	if cfg.ReportsDistance {
		for _, t := range touches {
			if t.state == TouchNone {
				continue
			}
			unhoverAbsDistance(t, now)
		}
		return
	}
	unhoverFakeTouches(cfg, touches, fake, now)
}

// Raw BTN_* codes this package cares about, mirrored from linux/input-event-codes.h
// so slots.go doesn't need to depend on an evdev package.
const (
	codeBTNTouch          = 0x14a
	codeBTNToolFinger     = 0x145
	codeBTNToolDoubleTap  = 0x14d
	codeBTNToolTripleTap  = 0x14e
	codeBTNToolQuadTap    = 0x14f
	codeBTNToolQuintTap   = 0x148
)
