package touchpad

// Sink receives the normalized event stream the dispatcher produces.
// Implementations translate these into whatever the output device needs
// (internal/uinputsink adapts them onto a virtual uinput mouse/keyboard).
type Sink interface {
	PointerMotion(dx, dy float64)
	Button(code uint16, isPress bool)
	Key(code uint16, isPress bool)

	ScrollBegin()
	Scroll(dx, dy float64, source ScrollSource)
	ScrollStop()

	SwipeBegin(fingers int)
	SwipeUpdate(dx, dy, dxUnaccel, dyUnaccel float64, fingers int)
	SwipeEnd(cancelled bool)

	PinchBegin(fingers int)
	PinchUpdate(dx, dy, dxUnaccel, dyUnaccel, scale, angleDelta float64, fingers int)
	PinchEnd(cancelled bool)
}

// ScrollSource distinguishes wheel-tick style scrolling from continuous
// finger scrolling, mirroring libinput's pointer event source field.
type ScrollSource int

const (
	ScrollSourceFinger ScrollSource = iota
	ScrollSourceWheel
)
