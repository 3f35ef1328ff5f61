package touchpad

import "math"

// GestureMode is the two-layer gesture state, mirroring libinput's
// GESTURE_STATE_* enum in evdev-mt-touchpad-gestures.c.
type GestureMode int

const (
	GestureNone GestureMode = iota
	GestureUnknown
	GestureScroll
	GestureSwipe
	GesturePinch
)

const (
	gestureTwofingerScrollTimeoutMicros = 500 * 1000
	gestureSwitchTimeoutMicros          = 100 * 1000
	gestureMoveThresholdMM              = 1.0
	gestureMoveThresholdSemiMTMM        = 4.0
	pinchVerticalSeparationMM           = 20.0
)

// gestureState holds the whole gesture subsystem's per-device state. It
// is held by Device and driven once per frame from dispatch.go.
type gestureState struct {
	mode GestureMode

	fingerCount        int
	fingerCountPending int
	pendingSwitchDue   int64
	switchTimerArmed   bool

	active      []*Touch // the leftmost/rightmost reference touches (at most 2)
	initialTime int64

	started   bool
	cancelled bool

	scrollBuildup FPoint

	pinchInitialDistance float64
	pinchAngle           float64
	pinchScale           float64
	pinchCenter          FPoint
}

// combinedTouchesDelta sums getDelta() over the active touch set.
func (g *gestureState) combinedTouchesDelta() FPoint {
	var sum FPoint
	for _, t := range g.active {
		d := getDelta(t)
		sum.X += d.X
		sum.Y += d.Y
	}
	return sum
}

// averageTouchesDelta mirrors tp_get_average_touches_delta.
func (g *gestureState) averageTouchesDelta() FPoint {
	if len(g.active) == 0 {
		return FPoint{}
	}
	d := g.combinedTouchesDelta()
	n := float64(len(g.active))
	return FPoint{X: d.X / n, Y: d.Y / n}
}

func (g *gestureState) start(now int64) {
	g.started = true
	g.cancelled = false
}

// getActiveTouches mirrors tp_gesture_get_active_touches: pick the
// leftmost and rightmost touch_active() slots for 2-finger gestures; for
// 3+ fingers, libinput "cheats" and still only tracks those same two
// extremes (matching the original's approach rather than tracking every
// slot, since swipe/pinch math only needs two reference points).
func getActiveTouches(cfg *Config, touches []*Touch, buttons Buttons, tap Tap) []*Touch {
	var active []*Touch
	for _, t := range touches {
		if touchActive(cfg, t, buttons, tap) {
			active = append(active, t)
		}
	}
	if len(active) < 2 {
		return active
	}
	leftmost, rightmost := active[0], active[0]
	for _, t := range active[1:] {
		if t.point.X < leftmost.point.X {
			leftmost = t
		}
		if t.point.X > rightmost.point.X {
			rightmost = t
		}
	}
	if leftmost == rightmost {
		return []*Touch{leftmost}
	}
	return []*Touch{leftmost, rightmost}
}

// touchActive mirrors tp_touch_active: the master predicate gating
// whether a touch contributes to pointer motion or gestures at all.
func touchActive(cfg *Config, t *Touch, buttons Buttons, tap Tap) bool {
	if t.state != TouchBegin && t.state != TouchUpdate {
		return false
	}
	if t.palm.state != PalmNone {
		return false
	}
	if t.pinned.isPinned {
		return false
	}
	if t.thumb.state == ThumbYes {
		return false
	}
	if buttons != nil && !buttons.TouchActive(t.Slot) {
		return false
	}
	if tap != nil && !tap.TouchActive(t.Slot) {
		return false
	}
	return true
}

func moveThreshold(cfg *Config) float64 {
	if cfg.ModelFlags.has(ModelSemiMT) && !cfg.ModelFlags.has(ModelElantech) {
		return mmToNormalized(gestureMoveThresholdSemiMTMM)
	}
	return mmToNormalized(gestureMoveThresholdMM)
}

// gestureDirection mirrors tp_gesture_get_direction: no direction until
// the touch has moved far enough to be more than device noise.
func gestureDirection(cfg *Config, d FPoint, scaled FPoint) Direction {
	if normalizedLength(scaled) < moveThreshold(cfg) {
		return UndefinedDirection
	}
	return getDirection(d)
}

// pinchInfo mirrors tp_gesture_get_pinch_info: distance, angle and
// center between the two active touches.
func pinchInfo(active []*Touch) (distance, angle float64, center FPoint) {
	if len(active) != 2 {
		return 0, 0, FPoint{}
	}
	a, b := active[0].point, active[1].point
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	distance = math.Hypot(dx, dy)
	angle = math.Atan2(dy, dx) * 180.0 / math.Pi
	center = deviceAverage(a, b)
	return
}

func (g *gestureState) setScrollBuildup(d FPoint) {
	g.scrollBuildup.X += d.X
	g.scrollBuildup.Y += d.Y
}

func wrapAngleDelta(delta float64) float64 {
	for delta > 180 {
		delta -= 360
	}
	for delta <= -180 {
		delta += 360
	}
	return delta
}

func (g *gestureState) initPinch(active []*Touch) {
	dist, angle, center := pinchInfo(active)
	g.pinchInitialDistance = dist
	if g.pinchInitialDistance == 0 {
		g.pinchInitialDistance = 1
	}
	g.pinchAngle = angle
	g.pinchCenter = center
	g.pinchScale = 1.0
}

// handleStateNone mirrors tp_gesture_handle_state_none: nothing happens
// below 2 active touches; otherwise the gesture enters UNKNOWN and each
// reference touch's starting position is snapshotted so handleStateUnknown
// can measure cumulative movement from it. started is left untouched here
// — it only flips true once a BEGIN event actually fires (tp_gesture_start),
// not when a gesture merely starts being tracked.
func (g *gestureState) handleStateNone(cfg *Config, active []*Touch, now int64) {
	if len(active) < 2 {
		return
	}
	g.active = active
	g.initialTime = now
	for _, t := range active {
		t.gesture.initial = t.point
	}
	g.mode = GestureUnknown
}

// handleStateUnknown mirrors tp_gesture_handle_state_unknown: decides
// between scroll/swipe/pinch once enough motion has accumulated or the
// 2-finger scroll timeout has elapsed.
func (g *gestureState) handleStateUnknown(cfg *Config, now int64) {
	if g.fingerCount == 2 && now-g.initialTime > gestureTwofingerScrollTimeoutMicros {
		g.mode = GestureScroll
		return
	}

	if len(g.active) == 2 && cfg.PinchEnabled {
		dist, _, _ := pinchInfo(g.active)
		vertSep := math.Abs(float64(g.active[0].point.Y-g.active[1].point.Y)) / float64(cfg.YResolution)
		if vertSep > pinchVerticalSeparationMM && dist > 0 {
			g.mode = GesturePinch
			g.initPinch(g.active)
			return
		}
	}

	d1 := deviceDelta(g.active[0].point, g.active[0].gesture.initial)
	var d2 FPoint
	if len(g.active) > 1 {
		d2 = deviceDelta(g.active[1].point, g.active[1].gesture.initial)
	}
	dir1 := gestureDirection(cfg, d1, FPoint{X: d1.X * cfg.XScaleCoeff, Y: d1.Y * cfg.YScaleCoeff})
	dir2 := gestureDirection(cfg, d2, FPoint{X: d2.X * cfg.XScaleCoeff, Y: d2.Y * cfg.YScaleCoeff})
	if dir1 == UndefinedDirection || dir2 == UndefinedDirection {
		return
	}

	if sameDirections(dir1, dir2) {
		if g.fingerCount == 2 {
			g.mode = GestureScroll
		} else if cfg.SwipeEnabled {
			g.mode = GestureSwipe
		}
		return
	}

	if cfg.PinchEnabled {
		g.mode = GesturePinch
		g.initPinch(g.active)
	}
}

func (g *gestureState) handleStateScroll(cfg *Config, sink Sink, now int64) {
	if cfg.ScrollMethod != ScrollTwoFinger {
		return
	}
	var d FPoint
	if cfg.ModelFlags.has(ModelSemiMT) {
		d = getDelta(g.active[0])
	} else {
		d = g.averageTouchesDelta()
	}
	if d.isZero() {
		return
	}
	if !g.started {
		sink.ScrollBegin()
		g.start(now)
	}
	dx, dy := d.X*cfg.XScaleCoeff, d.Y*cfg.YScaleCoeff
	if cfg.NaturalScroll {
		dx, dy = -dx, -dy
	}
	sink.Scroll(dx, dy, ScrollSourceFinger)
}

func (g *gestureState) handleStateSwipe(cfg *Config, sink Sink, accel *accelFilter, now int64) {
	d := g.averageTouchesDelta()
	unaccel := FPoint{X: d.X * cfg.XScaleCoeff, Y: d.Y * cfg.YScaleCoeff}
	accelerated := accel.filterMotion(unaccel, now)

	if accelerated.isZero() && unaccel.isZero() {
		return
	}
	if !g.started {
		sink.SwipeBegin(g.fingerCount)
		g.start(now)
	}
	sink.SwipeUpdate(accelerated.X, accelerated.Y, unaccel.X, unaccel.Y, g.fingerCount)
}

func (g *gestureState) handleStatePinch(cfg *Config, sink Sink, accel *accelFilter, now int64) {
	dist, angle, center := pinchInfo(g.active)
	scale := g.pinchInitialDistance
	if scale == 0 {
		scale = 1
	}
	newScale := dist / scale
	angleDelta := wrapAngleDelta(angle - g.pinchAngle)
	fdelta := fpointDelta(center, g.pinchCenter)
	unaccel := FPoint{X: fdelta.X * cfg.XScaleCoeff, Y: fdelta.Y * cfg.YScaleCoeff}
	accelerated := accel.filterMotion(unaccel, now)

	unchanged := accelerated.isZero() && unaccel.isZero() && newScale == g.pinchScale && angleDelta == 0
	if unchanged {
		return
	}
	if !g.started {
		sink.PinchBegin(g.fingerCount)
		g.start(now)
	}
	sink.PinchUpdate(accelerated.X, accelerated.Y, unaccel.X, unaccel.Y, newScale, angleDelta, g.fingerCount)
	g.pinchScale = newScale
	g.pinchAngle = angle
	g.pinchCenter = center
}

// postGesture mirrors tp_gesture_post_gesture's cascading dispatch.
func (g *gestureState) postGesture(cfg *Config, sink Sink, accel *accelFilter, now int64) {
	switch g.mode {
	case GestureNone:
		g.handleStateNone(cfg, g.active, now)
	case GestureUnknown:
		g.handleStateUnknown(cfg, now)
	case GestureScroll:
		g.handleStateScroll(cfg, sink, now)
	case GestureSwipe:
		g.handleStateSwipe(cfg, sink, accel, now)
	case GesturePinch:
		g.handleStatePinch(cfg, sink, accel, now)
	}
}

func (g *gestureState) stopTwofingerScroll(sink Sink) {
	if g.mode == GestureScroll && g.started {
		sink.ScrollStop()
	}
}

// end mirrors tp_gesture_end: emits the matching *End event if a
// gesture had actually begun, then resets to NONE.
func (g *gestureState) end(sink Sink, cancelled bool) {
	if g.started {
		switch g.mode {
		case GestureScroll:
			sink.ScrollStop()
		case GestureSwipe:
			sink.SwipeEnd(cancelled)
		case GesturePinch:
			sink.PinchEnd(cancelled)
		}
	}
	g.mode = GestureNone
	g.active = nil
	g.started = false
	g.cancelled = false
	g.scrollBuildup = FPoint{}
}

func (g *gestureState) cancel(sink Sink) { g.end(sink, true) }
func (g *gestureState) stop(sink Sink)   { g.end(sink, false) }

// postEvents mirrors tp_gesture_post_events: gestures only run while
// the active-touch count equals the settled (debounced) finger count,
// and are suppressed
// entirely while a tap-drag or clickpad press claims single-finger
// mode.
func (g *gestureState) postEvents(cfg *Config, sink Sink, accel *accelFilter, now int64, fingerCount int, forceOneFinger bool) {
	if fingerCount == 0 {
		return
	}
	if forceOneFinger {
		fingerCount = 1
	}
	if fingerCount != g.fingerCount {
		return
	}
	if fingerCount < 2 {
		g.cancel(sink)
		return
	}
	g.postGesture(cfg, sink, accel, now)
}

// handleState mirrors tp_gesture_handle_state: counts active touches
// and debounces finger-count transitions through a 100ms timer so a
// finger landing one frame after another doesn't look like a
// transient single-finger gesture.
func (g *gestureState) handleState(cfg *Config, sink Sink, touches []*Touch, buttons Buttons, tap Tap, now int64) {
	if cfg.GestureDisabledForModel {
		return
	}
	active := getActiveTouches(cfg, touches, buttons, tap)
	// Count every slot that's actually down; getActiveTouches narrows
	// to the two reference touches gesture math operates on, but the
	// finger count driving state transitions needs the real total.
	count := 0
	for _, t := range touches {
		if touchActive(cfg, t, buttons, tap) {
			count++
		}
	}

	if count == g.fingerCount {
		g.active = active
		g.fingerCountPending = 0
		g.switchTimerArmed = false
		return
	}

	switch {
	case count == 0:
		// All fingers lifted: end the gesture cleanly, not as a
		// cancellation — there's nothing left to cancel into.
		g.stop(sink)
		g.fingerCount = 0
		g.fingerCountPending = 0
		g.switchTimerArmed = false
	case !g.started:
		// No gesture has begun yet, so there's nothing to debounce:
		// switch immediately to avoid the 100ms of initial latency a
		// timer would otherwise add before the first BEGIN fires.
		g.fingerCount = count
		g.active = active
		g.fingerCountPending = 0
		g.switchTimerArmed = false
	default:
		g.fingerCountPending = count
		if !g.switchTimerArmed {
			g.switchTimerArmed = true
			g.pendingSwitchDue = now + gestureSwitchTimeoutMicros
		}
		if now >= g.pendingSwitchDue {
			g.cancel(sink)
			g.fingerCount = count
			g.active = active
			g.fingerCountPending = 0
			g.switchTimerArmed = false
		}
	}
}

// initGesture mirrors tp_init_gesture's model check: jumping semi-mt
// hardware can't be trusted to report finger positions accurately
// enough for multi-finger gestures.
func initGesture(cfg *Config) {
	if cfg.ModelFlags.has(ModelJumpingSemiMT) {
		cfg.GestureDisabledForModel = true
	}
}
