package touchpad

import "errors"

// Sentinel errors for the init-time and runtime anomaly kinds described
// in spec.md §7. Only malformed-device conditions are fatal; everything
// else degrades to "no event this frame" and is logged, not returned.
var (
	// ErrMalformedDevice is returned from NewDevice when the device is
	// missing axes or tool signals the core cannot operate without.
	ErrMalformedDevice = errors.New("touchpad: malformed device")

	// ErrNoTouchSlots is a specific malformed-device cause: the device
	// advertises neither real MT slots nor fake-touch tool bits.
	ErrNoTouchSlots = errors.New("touchpad: device has no usable touch slots")

	// ErrMissingAxis is a specific malformed-device cause: a required
	// absolute axis has no reported resolution.
	ErrMissingAxis = errors.New("touchpad: device is missing a required axis")
)
