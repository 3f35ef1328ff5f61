package touchpad

// hysteresis clamps in to within margin of center; if it falls outside
// that band the center itself shifts by the overflow. Mirrors
// tp_hysteresis exactly.
func hysteresis(in, center, margin int32) int32 {
	diff := in - center
	if diff < -margin {
		return in + margin
	}
	if diff > margin {
		return in - margin
	}
	return center
}

// applyMotionHysteresis mirrors tp_motion_hysteresis: the first sample
// anchors the hysteresis center, every subsequent sample is pulled
// toward it unless it moves far enough to drag the center along.
func applyMotionHysteresis(cfg *Config, t *Touch, p Point) Point {
	if !t.hystValid {
		t.hystCtr = p
		t.hystValid = true
		return p
	}
	hx := hysteresis(p.X, t.hystCtr.X, cfg.HysteresisMarginX)
	hy := hysteresis(p.Y, t.hystCtr.Y, cfg.HysteresisMarginY)
	t.hystCtr = Point{X: hx, Y: hy}
	return t.hystCtr
}

// estimateDelta mirrors tp_estimate_delta's four-sample estimator:
// (s0 + s1 - s2 - s3) / 4.
func estimateDelta(s0, s1, s2, s3 int32) float64 {
	return float64(s0+s1-s2-s3) / 4.0
}

// getDelta mirrors tp_get_delta: zero until the history ring has filled,
// then an average of two consecutive finite differences.
func getDelta(t *Touch) FPoint {
	if t.history.count < minSamples {
		return FPoint{}
	}
	s0 := t.history.offset(0)
	s1 := t.history.offset(1)
	s2 := t.history.offset(2)
	s3 := t.history.offset(3)
	return FPoint{
		X: estimateDelta(s0.X, s1.X, s2.X, s3.X),
		Y: estimateDelta(s0.Y, s1.Y, s2.Y, s3.Y),
	}
}

// unpinFinger mirrors tp_unpin_finger: a touch pinned in place by a
// clickpad button press is released once it moves far enough, scaled
// into device-independent units via the x/y scale coefficients.
func unpinFinger(cfg *Config, t *Touch) {
	if !t.pinned.isPinned {
		return
	}
	xdist := float64(t.point.X-t.pinned.center.X) * cfg.XScaleCoeff
	ydist := float64(t.point.Y-t.pinned.center.Y) * cfg.YScaleCoeff
	if normalizedLength(FPoint{X: xdist, Y: ydist}) >= 1.5 {
		t.pinned.isPinned = false
	}
}

// pinFingers mirrors tp_pin_fingers: freezes every touch at its
// current point, called while a clickpad button is held down.
func pinFingers(touches []*Touch) {
	for _, t := range touches {
		t.pinned.isPinned = true
		t.pinned.center = t.point
	}
}

// needMotionHistoryReset mirrors tp_need_motion_history_reset: finger
// count changes that cross the slot-count boundary, or any change at
// all on semi-mt devices, invalidate accumulated deltas.
func needMotionHistoryReset(cfg *Config, oldCount, newCount int) bool {
	if oldCount == newCount {
		return false
	}
	if cfg.ModelFlags.has(ModelSemiMT) {
		return true
	}
	crossedBoundary := (oldCount <= cfg.NumSlots) != (newCount <= cfg.NumSlots)
	return crossedBoundary
}
