package touchpad

import "math"

const (
	numPointerTrackers = 16

	defaultThresholdUnitsPerUS = 0.4e-3 // v_ms2us(0.4)
	minimumThresholdUnitsPerUS = 0.2e-3 // v_ms2us(0.2)
	defaultAcceleration        = 2.0
	defaultIncline             = 1.1
	maxVelocityDiffMMperUS     = 1e-3 // v_ms2us(1): 1 unit/ms -> unit/us
	motionTimeoutMicros        = 1000 * 1000

	touchpadMagicSlowdown = 0.4
	lenovoX230MagicLowRes = 4.0
)

// accelProfileFunc computes the acceleration factor for a given
// velocity (units/us), mirroring libinput's accel_profile_func_t.
type accelProfileFunc func(a *accelFilter, velocity float64) float64

type pointerTracker struct {
	delta FPoint
	time  int64
	dir   Direction
}

// accelFilter mirrors struct pointer_accelerator: a ring of motion
// trackers feeding a velocity estimate through a 3-point Simpson
// average of a piecewise-linear acceleration profile.
type accelFilter struct {
	profile accelProfileFunc

	velocity     float64
	lastVelocity float64

	trackers   [numPointerTrackers]pointerTracker
	curTracker int

	threshold float64
	accel     float64
	incline   float64
	dpiFactor float64

	lastRestartTime int64
}

func newAccelFilter(profile accelProfileFunc, dpiFactor float64) *accelFilter {
	if dpiFactor <= 0 {
		dpiFactor = 1
	}
	return &accelFilter{
		profile:   profile,
		threshold: defaultThresholdUnitsPerUS,
		accel:     defaultAcceleration,
		incline:   defaultIncline,
		dpiFactor: dpiFactor,
	}
}

func (a *accelFilter) trackerByOffset(offset int) *pointerTracker {
	idx := ((a.curTracker - offset) % numPointerTrackers + numPointerTrackers) % numPointerTrackers
	return &a.trackers[idx]
}

// feedTrackers mirrors feed_trackers: every tracker accumulates the new
// delta, then the ring advances and the newly-current tracker is reset
// and stamped with this sample's direction.
func (a *accelFilter) feedTrackers(delta FPoint, time int64, dir Direction) {
	for i := range a.trackers {
		a.trackers[i].delta.X += delta.X
		a.trackers[i].delta.Y += delta.Y
	}
	a.curTracker = (a.curTracker + 1) % numPointerTrackers
	a.trackers[a.curTracker] = pointerTracker{delta: FPoint{}, time: time, dir: dir}
}

func trackerVelocity(t *pointerTracker, now int64) float64 {
	dt := now - t.time + 1
	return normalizedLength(t.delta) / float64(dt)
}

func (a *accelFilter) velocityAfterTimeout(t *pointerTracker) float64 {
	return normalizedLength(t.delta) / float64(motionTimeoutMicros)
}

// calculateVelocity mirrors calculate_velocity: walks the ring backward
// from the tracker before the current one, stopping at the first
// timeout, direction change, or jump away from the first accepted
// velocity.
func (a *accelFilter) calculateVelocity(now int64) float64 {
	dir := a.trackerByOffset(0).dir
	var velocity, initial float64

	for offset := 1; offset < numPointerTrackers; offset++ {
		tracker := a.trackerByOffset(offset)
		dir &= tracker.dir
		if dir == UndefinedDirection {
			break
		}
		if now-tracker.time > motionTimeoutMicros {
			if offset == 1 {
				velocity = a.velocityAfterTimeout(tracker)
			}
			break
		}
		v := trackerVelocity(tracker, now)
		if initial == 0 {
			initial = v
		} else if math.Abs(v-initial) > maxVelocityDiffMMperUS {
			break
		}
		velocity = v
	}
	return velocity
}

// calculateAcceleration mirrors calculate_acceleration: Simpson's rule
// over the profile evaluated at the old velocity, the new velocity, and
// their midpoint.
func (a *accelFilter) calculateAcceleration(velocity, lastVelocity float64) float64 {
	fv := a.profile(a, velocity)
	flv := a.profile(a, lastVelocity)
	fmid := a.profile(a, (lastVelocity+velocity)/2)
	return (fv + flv + 4*fmid) / 6
}

// calculateAccelerationFactor mirrors calculate_acceleration_factor: the
// per-event entry point that updates the tracker ring and returns the
// scalar to multiply the raw delta by.
func (a *accelFilter) calculateAccelerationFactor(delta FPoint, now int64) float64 {
	dir := getDirection(delta)
	a.feedTrackers(delta, now, dir)
	velocity := a.calculateVelocity(now)
	accel := a.calculateAcceleration(velocity, a.lastVelocity)
	a.lastVelocity = velocity
	return accel
}

// restart mirrors accelerator_restart: every tracker but the current one
// is zeroed; the current one is stamped so the next sample doesn't see
// a stale direction.
func (a *accelFilter) restart(now int64) {
	for i := range a.trackers {
		if i == a.curTracker {
			continue
		}
		a.trackers[i] = pointerTracker{}
	}
	a.trackers[a.curTracker] = pointerTracker{time: now, dir: UndefinedDirection}
	a.lastRestartTime = now
}

// setSpeed mirrors accelerator_set_speed: s in [-1, 1].
func (a *accelFilter) setSpeed(s float64) {
	a.threshold = defaultThresholdUnitsPerUS - 0.25e-3*s
	if a.threshold < minimumThresholdUnitsPerUS {
		a.threshold = minimumThresholdUnitsPerUS
	}
	a.accel = defaultAcceleration + 1.5*s
	a.incline = defaultIncline + 0.75*s
}

const maxAccelFactor = 5.0

// linearProfile mirrors pointer_accel_profile_linear's three-segment
// decel/neutral/accel curve.
func linearProfile(a *accelFilter, v float64) float64 {
	const decelBreakpoint = 0.07e-3 // 0.07 units/ms in units/us
	switch {
	case v < decelBreakpoint:
		factor := 10*v*1000 + 0.3
		if factor < 0.1 {
			factor = 0.1
		}
		return factor
	case v < a.threshold:
		return 1.0
	default:
		// v and threshold are units/us; incline's slope is tuned in
		// units/ms, so the difference is scaled back up before use.
		factor := a.incline*(v-a.threshold)*1000 + 1
		if factor > maxAccelFactor {
			return maxAccelFactor
		}
		return factor
	}
}

func lowDPIProfile(a *accelFilter, v float64) float64 {
	return linearProfile(a, v*a.dpiFactor)
}

// touchpadProfile mirrors touchpad_accel_profile_linear: the magic
// slowdown is applied both to the velocity fed into the linear curve
// and to its output, matching libinput exactly.
func touchpadProfile(a *accelFilter, v float64) float64 {
	return touchpadMagicSlowdown * linearProfile(a, touchpadMagicSlowdown*v)
}

// lenovoX230Profile mirrors touchpad_lenovo_x230_accel_profile's
// compressed two-branch min/max formula for the low-resolution X230
// trackpad hardware.
func lenovoX230Profile(a *accelFilter, v float64) float64 {
	scaled := v * lenovoX230MagicLowRes
	factor := linearProfile(a, scaled)
	if factor < 1 {
		return math.Max(factor, 0.3)
	}
	return math.Min(factor, maxAccelFactor)
}

func newAccelFilterForProfile(p AccelProfile, dpiFactor float64) *accelFilter {
	switch p {
	case AccelProfileLowDPIMouse:
		return newAccelFilter(lowDPIProfile, dpiFactor)
	case AccelProfileLenovoX230:
		return newAccelFilter(lenovoX230Profile, dpiFactor)
	default:
		return newAccelFilter(touchpadProfile, dpiFactor)
	}
}

// filterMotion mirrors tp_filter_motion/accelerator_filter: the
// accelerated path used for single-finger pointer motion and swipes.
func (a *accelFilter) filterMotion(delta FPoint, now int64) FPoint {
	if delta.isZero() {
		return delta
	}
	factor := a.calculateAccelerationFactor(delta, now)
	return FPoint{X: delta.X * factor, Y: delta.Y * factor}
}

// filterMotionUnaccelerated mirrors tp_filter_motion_unaccelerated: used
// for scroll deltas, which libinput deliberately never accelerates.
func filterMotionUnaccelerated(delta FPoint) FPoint {
	return delta
}
