// Package touchpad implements the per-frame touch classification and
// gesture recognition pipeline: slot bookkeeping, palm/thumb/pin
// classifiers, the scroll/swipe/pinch state machine, and the pointer
// acceleration filter. It consumes typed kernel events and emits a
// normalized pointer/gesture event stream through a Sink.
package touchpad

// Point is a device-coordinate position, as reported by the kernel.
type Point struct {
	X, Y int32
}

// FPoint is a floating-point device-coordinate position or delta, used
// where sub-unit precision matters (pinch center, accumulated deltas).
type FPoint struct {
	X, Y float64
}

func (p FPoint) isZero() bool {
	return p.X == 0 && p.Y == 0
}

func deviceDelta(a, b Point) FPoint {
	return FPoint{X: float64(a.X - b.X), Y: float64(a.Y - b.Y)}
}

func deviceAverage(a, b Point) FPoint {
	return FPoint{X: float64(a.X+b.X) / 2, Y: float64(a.Y+b.Y) / 2}
}

func fpointDelta(a, b FPoint) FPoint {
	return FPoint{X: a.X - b.X, Y: a.Y - b.Y}
}

func fpointAverage(a, b FPoint) FPoint {
	return FPoint{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// TouchState is the lifecycle state of a single touch slot.
type TouchState int

const (
	TouchNone TouchState = iota
	TouchHovering
	TouchBegin
	TouchUpdate
	TouchEnd
)

func (s TouchState) String() string {
	switch s {
	case TouchNone:
		return "none"
	case TouchHovering:
		return "hovering"
	case TouchBegin:
		return "begin"
	case TouchUpdate:
		return "update"
	case TouchEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PalmState classifies why a touch is being ignored as a palm, if at all.
type PalmState int

const (
	PalmNone PalmState = iota
	PalmEdge
	PalmTyping
	PalmTrackpoint
)

func (s PalmState) String() string {
	switch s {
	case PalmNone:
		return "none"
	case PalmEdge:
		return "edge"
	case PalmTyping:
		return "typing"
	case PalmTrackpoint:
		return "trackpoint"
	default:
		return "unknown"
	}
}

// ThumbState is the three-way outcome of thumb detection.
type ThumbState int

const (
	ThumbMaybe ThumbState = iota
	ThumbYes
	ThumbNo
)

func (s ThumbState) String() string {
	switch s {
	case ThumbMaybe:
		return "maybe"
	case ThumbYes:
		return "yes"
	case ThumbNo:
		return "no"
	default:
		return "unknown"
	}
}

// historyLength is the depth of the per-touch motion ring buffer (§4.2).
const historyLength = 4

// minSamples is the number of history samples required before a touch
// reports a delta.
const minSamples = 4

type motionHistory struct {
	samples [historyLength]Point
	index   int
	count   int
}

func (h *motionHistory) push(p Point) {
	h.index = (h.index + 1) % historyLength
	if h.count < historyLength {
		h.count++
	}
	h.samples[h.index] = p
}

func (h *motionHistory) reset() {
	h.count = 0
}

func (h *motionHistory) offset(n int) Point {
	idx := (h.index - n + historyLength) % historyLength
	return h.samples[idx]
}

type palmInfo struct {
	state PalmState
	first Point
	time  int64 // microseconds, monotonic
}

type thumbInfo struct {
	state          ThumbState
	initial        Point
	firstTouchTime int64
}

type pinnedInfo struct {
	isPinned bool
	center   Point
}

type gestureTouchInfo struct {
	initial Point
}

// Touch is the per-slot state described in spec.md §3.
type Touch struct {
	Slot int

	state     TouchState
	point     Point
	distance  int32
	pressure  int32
	dirty     bool
	hasEnded  bool
	millis    int64
	history   motionHistory
	hystCtr   Point
	hystValid bool

	palm    palmInfo
	thumb   thumbInfo
	pinned  pinnedInfo
	gesture gestureTouchInfo

	resetMotionHistory bool // quirk flag, §4.7 step 4
}

// State reports the touch's current lifecycle state.
func (t *Touch) State() TouchState { return t.state }

// Point reports the touch's current (hysteresis-filtered) position.
func (t *Touch) Point() Point { return t.point }

// Pressure reports the touch's last reported pressure value.
func (t *Touch) Pressure() int32 { return t.pressure }

// IsPalm reports whether the touch is currently excluded as a palm.
func (t *Touch) IsPalm() bool { return t.palm.state != PalmNone }

// IsThumb reports whether the touch has been classified as a resting thumb.
func (t *Touch) IsThumb() bool { return t.thumb.state == ThumbYes }

// IsPinned reports whether the touch is pinned by a clickpad button press.
func (t *Touch) IsPinned() bool { return t.pinned.isPinned }
