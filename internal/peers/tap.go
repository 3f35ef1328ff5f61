package peers

import "touchpad/internal/touchpad"

const (
	tapTimeoutMicros  = 200 * 1000
	tapMovementLimit  = 40.0 // device units, matches the teacher's TapMovementLimit
	dragTimeoutMicros = 300 * 1000
)

type tapTouch struct {
	begin     touchpad.Point
	beginTime int64
	moved     bool
}

// Tap implements touchpad.Tap: a touch that begins and ends within
// tapTimeoutMicros without moving more than tapMovementLimit is a tap;
// the peak concurrent finger count decides which button fires (one
// finger left, two right, three middle), mirroring the teacher's
// 2/3-finger tap handling. Tap-and-drag holds the button down for a
// fixed grace period (dragTimeoutMicros) after the tap, then releases
// it. A follow-up touch does not extend the hold, and while the hold
// lasts TouchActive reports every slot inactive, so touches during it
// produce no pointer motion.
type Tap struct {
	cfg  touchpad.Config
	sink touchpad.Sink

	suspended bool

	touches map[int]*tapTouch
	maxSeen int

	pendingTap bool
	tapButton  uint16

	dragging     bool
	dragButton   uint16
	dragDeadline int64
}

func NewTap(cfg touchpad.Config, sink touchpad.Sink) *Tap {
	return &Tap{cfg: cfg, sink: sink, touches: make(map[int]*tapTouch)}
}

func (t *Tap) TouchActive(slot int) bool {
	return !t.dragging
}

func (t *Tap) Suspend() { t.suspended = true }
func (t *Tap) Resume()  { t.suspended = false }

// HandleState tracks each slot's begin point and whether it moved past
// the tap limit, and notices when the last active slot ends: that's
// when a tap is judged against the accumulated timing/movement facts.
func (t *Tap) HandleState(now int64, touches []*touchpad.Touch) {
	if !t.cfg.TapEnabled || t.suspended {
		return
	}

	live := 0
	for _, tc := range touches {
		switch tc.State() {
		case touchpad.TouchBegin:
			t.touches[tc.Slot] = &tapTouch{begin: tc.Point(), beginTime: now}
			live++
			if len(t.touches) > t.maxSeen {
				t.maxSeen = len(t.touches)
			}
		case touchpad.TouchUpdate:
			live++
			if tt, ok := t.touches[tc.Slot]; ok {
				d := tc.Point()
				dx := float64(d.X - tt.begin.X)
				dy := float64(d.Y - tt.begin.Y)
				if dx*dx+dy*dy > tapMovementLimit*tapMovementLimit {
					tt.moved = true
				}
			}
		case touchpad.TouchEnd:
			live++ // still being processed this frame; finalized on next frame's absence
		}
	}

	if live == 0 && len(t.touches) > 0 {
		t.judgeTap(now)
	}
}

func (t *Tap) judgeTap(now int64) {
	ok := true
	var earliest int64 = -1
	for _, tt := range t.touches {
		if tt.moved {
			ok = false
		}
		if earliest == -1 || tt.beginTime < earliest {
			earliest = tt.beginTime
		}
	}
	if now-earliest > tapTimeoutMicros {
		ok = false
	}

	if ok {
		button := uint16(0x110) // BTN_LEFT
		switch t.maxSeen {
		case 2:
			button = 0x111 // BTN_RIGHT
		case 3:
			button = 0x112 // BTN_MIDDLE
		}
		t.pendingTap = true
		t.tapButton = button
	}

	t.touches = make(map[int]*tapTouch)
	t.maxSeen = 0
}

// PostEvents fires a judged tap's click, or extends/releases an
// in-progress tap-and-drag hold. Reports true while it claims the frame.
func (t *Tap) PostEvents(now int64) bool {
	if !t.cfg.TapEnabled || t.suspended {
		return false
	}

	if t.pendingTap {
		t.pendingTap = false
		t.sink.Button(t.tapButton, true)
		if t.cfg.TapAndDrag {
			t.dragging = true
			t.dragButton = t.tapButton
			t.dragDeadline = now + dragTimeoutMicros
			return true
		}
		t.sink.Button(t.tapButton, false)
		return false
	}

	if t.dragging {
		if now > t.dragDeadline {
			t.sink.Button(t.dragButton, false)
			t.dragging = false
			return false
		}
		return true
	}

	return false
}
