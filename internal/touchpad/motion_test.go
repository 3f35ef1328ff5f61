package touchpad

import "testing"

func TestHysteresisWithinMargin(t *testing.T) {
	got := hysteresis(105, 100, 10)
	if got != 100 {
		t.Errorf("hysteresis(105, 100, 10) = %d, want 100 (within margin)", got)
	}
}

func TestHysteresisOutsideMargin(t *testing.T) {
	got := hysteresis(130, 100, 10)
	if got != 120 {
		t.Errorf("hysteresis(130, 100, 10) = %d, want 120", got)
	}
}

func TestMotionHysteresisFirstSampleAnchors(t *testing.T) {
	cfg := DefaultConfig()
	tc := &Touch{}
	p := applyMotionHysteresis(&cfg, tc, Point{X: 50, Y: 60})
	if p.X != 50 || p.Y != 60 {
		t.Errorf("first sample should pass through unchanged, got %v", p)
	}
	if !tc.hystValid {
		t.Error("hysteresis center should be marked valid after first sample")
	}
}

func TestGetDeltaRequiresMinSamples(t *testing.T) {
	tc := &Touch{}
	tc.history.push(Point{X: 0, Y: 0})
	tc.history.push(Point{X: 1, Y: 1})
	d := getDelta(tc)
	if !d.isZero() {
		t.Errorf("expected zero delta with fewer than minSamples history entries, got %v", d)
	}
}

func TestGetDeltaAfterFilling(t *testing.T) {
	tc := &Touch{}
	for _, p := range []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}} {
		tc.history.push(p)
	}
	d := getDelta(tc)
	if d.X == 0 && d.Y == 0 {
		t.Error("expected nonzero delta once history has filled with monotonic motion")
	}
}

func TestUnpinFingerReleasesOnLargeMove(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XScaleCoeff = 1
	cfg.YScaleCoeff = 1
	tc := &Touch{pinned: pinnedInfo{isPinned: true, center: Point{X: 0, Y: 0}}, point: Point{X: 100, Y: 0}}
	unpinFinger(&cfg, tc)
	if tc.pinned.isPinned {
		t.Error("touch should unpin after moving far from its pinned center")
	}
}

func TestUnpinFingerStaysPinnedOnSmallMove(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XScaleCoeff = 1
	cfg.YScaleCoeff = 1
	tc := &Touch{pinned: pinnedInfo{isPinned: true, center: Point{X: 0, Y: 0}}, point: Point{X: 1, Y: 0}}
	unpinFinger(&cfg, tc)
	if !tc.pinned.isPinned {
		t.Error("touch should stay pinned for sub-threshold movement")
	}
}
