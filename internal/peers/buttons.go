// Package peers implements the button, tap-to-click, and edge-scroll
// collaborators the touchpad core dispatches to every frame. Each one
// is a narrow, self-contained state machine; the core never reaches
// into their internals, only the contract in touchpad.Buttons/Tap/
// EdgeScroll.
package peers

import "touchpad/internal/touchpad"

// Buttons implements touchpad.Buttons for a clickpad: a single physical
// switch under the whole surface, split into left/right/middle areas by
// position, with pressure-based press detection using hysteresis so a
// light resting touch never reads as a click.
type Buttons struct {
	cfg touchpad.Config
	sink touchpad.Sink

	pressThreshold   int32
	releaseThreshold int32

	pressed      bool
	activeButton uint16

	softButtonTopY int32
}

const (
	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
)

// NewButtons builds a clickpad button peer. pressThreshold/release
// mirror the teacher's PressThreshold/ReleaseThreshold pressure
// hysteresis; softButtonTopY marks where the software button strip
// begins from the bottom of the pad.
func NewButtons(cfg touchpad.Config, sink touchpad.Sink, pressThreshold, releaseThreshold, softButtonTopY int32) *Buttons {
	return &Buttons{
		cfg:              cfg,
		sink:             sink,
		pressThreshold:   pressThreshold,
		releaseThreshold: releaseThreshold,
		softButtonTopY:   softButtonTopY,
	}
}

func (b *Buttons) TouchActive(slot int) bool { return true }

func (b *Buttons) IsClickpadSoftButtonArea(p touchpad.Point) bool {
	return p.Y >= b.softButtonTopY
}

func (b *Buttons) ClickpadPressed() bool { return b.pressed }

// HandleState reads the maximum pressure across active touches and
// applies press/release hysteresis, then maps the touch position at
// press time to left/right/middle using thirds of the clickpad width,
// the way the teacher splits its click zones by X coordinate.
func (b *Buttons) HandleState(now int64, touches []*touchpad.Touch) {
	var maxPressure int32
	var pressPoint touchpad.Point
	var any bool
	for _, t := range touches {
		if t.State() != touchpad.TouchBegin && t.State() != touchpad.TouchUpdate {
			continue
		}
		if t.IsPalm() {
			continue
		}
		if t.Pressure() > maxPressure {
			maxPressure = t.Pressure()
			pressPoint = t.Point()
			any = true
		}
	}

	if !b.pressed && any && maxPressure >= b.pressThreshold {
		b.pressed = true
		b.activeButton = b.buttonForPoint(pressPoint)
		b.sink.Button(b.activeButton, true)
		return
	}
	if b.pressed && (!any || maxPressure <= b.releaseThreshold) {
		b.pressed = false
		b.sink.Button(b.activeButton, false)
	}
}

func (b *Buttons) buttonForPoint(p touchpad.Point) uint16 {
	if b.cfg.ClickMethod != touchpad.ClickButtonAreas {
		return btnLeft
	}
	third := (b.cfg.RightEdge - b.cfg.LeftEdge) / 3
	switch {
	case p.X > b.cfg.RightEdge-third:
		if b.cfg.LeftHanded {
			return btnLeft
		}
		return btnRight
	case p.X < b.cfg.LeftEdge+third:
		if b.cfg.LeftHanded {
			return btnRight
		}
		return btnLeft
	default:
		return btnMiddle
	}
}
