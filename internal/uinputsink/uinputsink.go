// Package uinputsink adapts internal/touchpad.Sink onto a virtual
// uinput mouse and keyboard, using github.com/bendahl/uinput's device
// API instead of the hand-rolled ioctl calls the teacher used — the
// teacher's go.mod already required this dependency but never imported
// it.
package uinputsink

import (
	"fmt"
	"math"

	"github.com/bendahl/uinput"

	"touchpad/internal/touchpad"
)

const (
	keyLeftAlt   = 56
	keyLeftShift = 42
	keyLeftMeta  = 125
	keyLeftCtrl  = 29
	keyTab       = 15
	keyD         = 32
)

// Sink implements touchpad.Sink over a virtual mouse and keyboard.
// Multi-finger gestures are mapped to desktop-navigation key chords the
// way the teacher's 3-finger swipe heuristic did (Alt+Tab / Alt+Shift+
// Tab / Meta / Meta+D), since most compositors have no native pinch/
// swipe input path; pinch is mapped to Ctrl+wheel zoom, the de facto
// standard gesture most desktop apps already bind.
type Sink struct {
	mouse    uinput.Mouse
	keyboard uinput.Keyboard

	swipeFingers int
	swipeAccumX  float64
	swipeAccumY  float64
	swipeFired   bool

	pinchAccumScale float64
}

// New creates the virtual devices. name is used for both; uinput
// requires distinct device names only when they'd otherwise collide on
// the same bus/vendor/product triple, which CreateMouse/CreateKeyboard
// already pick sane defaults for.
func New(name string) (*Sink, error) {
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte(name+"-mouse"))
	if err != nil {
		return nil, fmt.Errorf("create virtual mouse: %w", err)
	}
	keyboard, err := uinput.CreateKeyboard("/dev/uinput", []byte(name+"-keyboard"))
	if err != nil {
		mouse.Close()
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	return &Sink{mouse: mouse, keyboard: keyboard}, nil
}

func (s *Sink) Close() error {
	s.keyboard.Close()
	return s.mouse.Close()
}

func (s *Sink) PointerMotion(dx, dy float64) {
	moveAxis(dx, s.mouse.MoveRight, s.mouse.MoveLeft)
	moveAxis(dy, s.mouse.MoveDown, s.mouse.MoveUp)
}

func moveAxis(delta float64, positive, negative func(int32) error) {
	px := int32(math.Round(delta))
	if px == 0 {
		return
	}
	if px > 0 {
		positive(px)
	} else {
		negative(-px)
	}
}

func (s *Sink) Button(code uint16, isPress bool) {
	switch code {
	case 0x110: // BTN_LEFT
		if isPress {
			s.mouse.LeftPress()
		} else {
			s.mouse.LeftRelease()
		}
	case 0x111: // BTN_RIGHT
		if isPress {
			s.mouse.RightPress()
		} else {
			s.mouse.RightRelease()
		}
	case 0x112: // BTN_MIDDLE
		if isPress {
			s.mouse.MiddlePress()
		} else {
			s.mouse.MiddleRelease()
		}
	}
}

func (s *Sink) Key(code uint16, isPress bool) {
	if isPress {
		s.keyboard.KeyDown(int(code))
	} else {
		s.keyboard.KeyUp(int(code))
	}
}

func (s *Sink) ScrollBegin() {}

func (s *Sink) Scroll(dx, dy float64, source touchpad.ScrollSource) {
	if dy != 0 {
		s.mouse.Wheel(false, int32(math.Round(dy)))
	}
	if dx != 0 {
		s.mouse.Wheel(true, int32(math.Round(dx)))
	}
}

func (s *Sink) ScrollStop() {}

// SwipeBegin/Update/End fire one key chord per swipe, the first time
// either axis has accumulated swipeFireThreshold of distance: a 3-finger
// swipe sends Alt+Tab, or Alt+Shift+Tab when the horizontal distance is
// leftward (task switching); a 4-finger swipe sends Meta+D (show
// desktop) on mostly vertical motion and Meta (overview) otherwise,
// mirroring the teacher's gesture-to-macro thresholds.
func (s *Sink) SwipeBegin(fingers int) {
	s.swipeFingers = fingers
	s.swipeAccumX = 0
	s.swipeAccumY = 0
	s.swipeFired = false
}

const swipeFireThreshold = 100.0

func (s *Sink) SwipeUpdate(dx, dy, dxUnaccel, dyUnaccel float64, fingers int) {
	if s.swipeFired {
		return
	}
	s.swipeAccumX += dx
	s.swipeAccumY += dy
	if math.Abs(s.swipeAccumX) < swipeFireThreshold && math.Abs(s.swipeAccumY) < swipeFireThreshold {
		return
	}
	s.swipeFired = true

	if s.swipeFingers >= 4 {
		if math.Abs(s.swipeAccumY) >= math.Abs(s.swipeAccumX) {
			s.tapChord(keyLeftMeta, keyD)
		} else {
			s.keyboard.KeyPress(keyLeftMeta)
		}
		return
	}

	if s.swipeAccumX < 0 {
		s.tapChordShifted()
	} else {
		s.tapChord(keyLeftAlt, keyTab)
	}
}

func (s *Sink) tapChord(mod, key int) {
	s.keyboard.KeyDown(mod)
	s.keyboard.KeyPress(key)
	s.keyboard.KeyUp(mod)
}

func (s *Sink) tapChordShifted() {
	s.keyboard.KeyDown(keyLeftAlt)
	s.keyboard.KeyDown(keyLeftShift)
	s.keyboard.KeyPress(keyTab)
	s.keyboard.KeyUp(keyLeftShift)
	s.keyboard.KeyUp(keyLeftAlt)
}

func (s *Sink) SwipeEnd(cancelled bool) {}

func (s *Sink) PinchBegin(fingers int) {
	s.pinchAccumScale = 1.0
}

func (s *Sink) PinchUpdate(dx, dy, dxUnaccel, dyUnaccel, scale, angleDelta float64, fingers int) {
	s.pinchAccumScale = scale
	s.keyboard.KeyDown(keyLeftCtrl)
	ticks := int32(math.Round((scale - 1.0) * 10))
	if ticks != 0 {
		s.mouse.Wheel(false, ticks)
	}
	s.keyboard.KeyUp(keyLeftCtrl)
}

func (s *Sink) PinchEnd(cancelled bool) {}

var _ touchpad.Sink = (*Sink)(nil)
