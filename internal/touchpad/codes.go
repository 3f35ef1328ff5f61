package touchpad

// Raw ABS_* codes this package cares about, mirrored from
// linux/input-event-codes.h so this package has no evdev dependency of
// its own; internal/inputdev translates kernel events into calls using
// these constants.
const (
	absX              = 0x00
	absY              = 0x01
	absPressure       = 0x18
	absMTSlot         = 0x2f
	absMTTouchMajor   = 0x30
	absMTPositionX    = 0x35
	absMTPositionY    = 0x36
	absMTToolType     = 0x37
	absMTTrackingID   = 0x39
	absMTPressure     = 0x3a
	absMTDistance     = 0x3b
)
