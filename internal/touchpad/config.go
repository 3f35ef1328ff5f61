package touchpad

// ScrollMethod selects the scroll pipeline (spec.md §6).
type ScrollMethod int

const (
	ScrollNone ScrollMethod = iota
	ScrollEdge
	ScrollTwoFinger
)

// ClickMethod selects how physical clicks are turned into button events.
// Delegated entirely to the buttons peer (spec.md §9); the core does
// not read it.
type ClickMethod int

const (
	ClickNone ClickMethod = iota
	ClickButtonAreas
	ClickFinger
)

// SendEventsMode gates the device's output. SendEventsDisabled starts
// the Device suspended (see Device.Suspend);
// SendEventsDisabledOnExternalMouse behaves like SendEventsEnabled, as
// no external mouse is tracked.
type SendEventsMode int

const (
	SendEventsEnabled SendEventsMode = iota
	SendEventsDisabled
	SendEventsDisabledOnExternalMouse
)

// AccelProfile selects one of the three documented acceleration curves
// (spec.md §4.5). Letting this be configured, rather than hardcoded to
// the plain touchpad profile, is one of this repo's SPEC_FULL additions:
// it makes the low-DPI-mouse and Lenovo-X230 variants reachable.
type AccelProfile int

const (
	AccelProfileTouchpad AccelProfile = iota
	AccelProfileLowDPIMouse
	AccelProfileLenovoX230
)

// ModelFlags records hardware-specific quirks the dispatcher consults.
// Mirrors libinput's evdev.h model_flags bitmask.
type ModelFlags uint32

const (
	ModelSemiMT ModelFlags = 1 << iota
	ModelElantech
	ModelJumpingSemiMT
	ModelSynapticsSerial
)

func (f ModelFlags) has(bit ModelFlags) bool { return f&bit != 0 }

// Config is the option surface of spec.md §6, plus the device geometry
// the dispatcher needs and that is normally derived from evdev absinfo
// at startup rather than hand-tuned.
type Config struct {
	// Device geometry, derived from ABS_X/ABS_Y/ABS_PRESSURE absinfo.
	NumSlots int
	HasMT    bool

	XResolution int32 // units per mm
	YResolution int32

	// x_scale_coeff / y_scale_coeff: device units -> 1/1000in.
	XScaleCoeff float64
	YScaleCoeff float64

	HysteresisMarginX int32
	HysteresisMarginY int32

	LeftEdge, RightEdge int32
	VertCenter          int32

	UpperThumbLine, LowerThumbLine int32
	ThumbPressureThreshold         int32
	DetectThumbs                   bool

	ReportsDistance bool

	ModelFlags ModelFlags

	// Option surface (spec.md §6).
	ScrollMethod   ScrollMethod
	NaturalScroll  bool
	DWTEnabled     bool
	TapEnabled     bool
	TapAndDrag     bool
	DragLock       bool
	LeftHanded     bool
	ClickMethod    ClickMethod
	SendEvents     SendEventsMode
	AccelSpeed     float64 // [-1.0, 1.0]
	AccelProfile   AccelProfile
	IsClickpad     bool
	MonitorTrackpoint bool

	// GestureDisabledForModel mirrors tp_init_gesture's jumping-semi-mt
	// check: some devices should never attempt multi-finger gestures.
	GestureDisabledForModel bool

	SwipeEnabled bool
	PinchEnabled bool
}

// DefaultConfig returns the libinput-equivalent defaults.
func DefaultConfig() Config {
	return Config{
		NumSlots:                1,
		HasMT:                   true,
		XResolution:             1,
		YResolution:             1,
		XScaleCoeff:             1,
		YScaleCoeff:             1,
		HysteresisMarginX:       0,
		HysteresisMarginY:       0,
		DetectThumbs:            false,
		ScrollMethod:            ScrollTwoFinger,
		NaturalScroll:           false,
		DWTEnabled:              true,
		TapEnabled:              false,
		LeftHanded:              false,
		ClickMethod:             ClickButtonAreas,
		SendEvents:              SendEventsEnabled,
		AccelSpeed:              0,
		AccelProfile:            AccelProfileTouchpad,
		MonitorTrackpoint:       true,
		SwipeEnabled:            true,
		PinchEnabled:            true,
	}
}

// sanityCheck rejects device geometry the core cannot reasonably operate
// on, per spec.md §7's "malformed device" error kind and the original's
// tp_sanity_check.
func (c Config) sanityCheck() error {
	if c.NumSlots < 1 {
		return ErrNoTouchSlots
	}
	if c.XResolution <= 0 || c.YResolution <= 0 {
		return ErrMissingAxis
	}
	return nil
}

func mmToNormalized(mm float64) float64 {
	// 1/1000in normalized units; 1in == 25.4mm.
	const dpiNormalized = 1000.0
	return mm / 25.4 * dpiNormalized
}
