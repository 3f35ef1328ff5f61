package touchpad

const (
	dwtShortTimeoutMicros     = 200 * 1000
	dwtLongTimeoutMicros      = 500 * 1000
	trackpointActivityTimeout = 300 * 1000
)

// dwtState is disable-while-typing and trackpoint-suppression state,
// shared because both follow the same shape: an activity flag, a last
// event timestamp, and a timeout that re-arms on every new key/motion
// event and clears the flag once it fires.
type dwtState struct {
	keyboardActive    bool
	keyboardLastPress int64
	keyboardTimeout   deadline

	trackpointActive    bool
	trackpointLastEvent int64
	trackpointTimeout   deadline
}

// keyIgnoredForDWT mirrors tp_key_ignore_for_dwt's modifier allowlist:
// these keys don't count as "typing" because they're frequently chorded
// with touchpad use (e.g. holding Ctrl while scrolling).
func keyIgnoredForDWT(code uint16) bool {
	switch code {
	case keyLeftCtrl, keyRightCtrl,
		keyLeftAlt, keyRightAlt,
		keyLeftShift, keyRightShift,
		keyFN, keyCapslock, keyTab, keyCompose,
		keyLeftMeta, keyRightMeta:
		return true
	}
	return code >= keyF1
}

// keyboardEvent mirrors tp_keyboard_event: the first keypress after a
// quiet period cancels in-flight gestures/scroll and suspends tap, using
// a short timeout; subsequent presses just extend it with a longer one.
func (d *dwtState) keyboardEvent(cfg *Config, code uint16, isPress bool, now int64, stop func()) {
	if !cfg.DWTEnabled || !isPress || keyIgnoredForDWT(code) {
		return
	}
	if !d.keyboardActive {
		stop()
		d.keyboardActive = true
		d.keyboardTimeout.arm(now + dwtShortTimeoutMicros)
	} else {
		d.keyboardTimeout.arm(now + dwtLongTimeoutMicros)
	}
	d.keyboardLastPress = now
}

// keyboardTick mirrors tp_keyboard_timeout: checked once per frame.
func (d *dwtState) keyboardTick(now int64, resume func()) {
	if d.keyboardTimeout.expired(now) {
		d.keyboardActive = false
		resume()
	}
}

// trackpointEvent mirrors tp_trackpoint_event: any trackpoint activity
// (not just buttons) re-arms a 300ms suppression window.
func (d *dwtState) trackpointEvent(cfg *Config, now int64, stop func()) {
	if !cfg.MonitorTrackpoint {
		return
	}
	if !d.trackpointActive {
		stop()
		d.trackpointActive = true
	}
	d.trackpointLastEvent = now
	d.trackpointTimeout.arm(now + trackpointActivityTimeout)
}

func (d *dwtState) trackpointTick(now int64, resume func()) {
	if d.trackpointTimeout.expired(now) {
		d.trackpointActive = false
		resume()
	}
}

// Raw key codes this package cares about, mirrored from
// linux/input-event-codes.h.
const (
	keyLeftCtrl   = 29
	keyRightCtrl  = 97
	keyLeftAlt    = 56
	keyRightAlt   = 100
	keyLeftShift  = 42
	keyRightShift = 54
	keyCapslock   = 58
	keyTab        = 15
	keyCompose    = 127
	keyLeftMeta   = 125
	keyRightMeta  = 126
	keyFN         = 464
	keyF1         = 59
)
