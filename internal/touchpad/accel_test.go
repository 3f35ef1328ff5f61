package touchpad

import "testing"

func TestLinearProfileNeutralBand(t *testing.T) {
	a := newAccelFilter(linearProfile, 1.0)
	factor := linearProfile(a, a.threshold/2)
	if factor != 1.0 {
		t.Errorf("expected neutral factor 1.0 below threshold, got %v", factor)
	}
}

func TestLinearProfileAccelerates(t *testing.T) {
	a := newAccelFilter(linearProfile, 1.0)
	low := linearProfile(a, a.threshold+0.001)
	high := linearProfile(a, a.threshold+0.01)
	if !(high > low) {
		t.Errorf("acceleration factor should increase with velocity: low=%v high=%v", low, high)
	}
}

func TestLinearProfileCapped(t *testing.T) {
	a := newAccelFilter(linearProfile, 1.0)
	factor := linearProfile(a, 1000)
	if factor > maxAccelFactor {
		t.Errorf("acceleration factor %v exceeds cap %v", factor, maxAccelFactor)
	}
}

func TestTouchpadProfileAppliesSlowdown(t *testing.T) {
	a := newAccelFilterForProfile(AccelProfileTouchpad, 1.0)
	neutral := a.profile(a, 0.01)
	if neutral <= 0 {
		t.Errorf("touchpad profile should return a positive factor, got %v", neutral)
	}
	if plain := linearProfile(a, 0.01); neutral >= plain {
		t.Errorf("touchpad profile %v should be below the plain linear profile %v", neutral, plain)
	}
}

func TestAccelFilterZeroDeltaPassthrough(t *testing.T) {
	a := newAccelFilterForProfile(AccelProfileTouchpad, 1.0)
	out := a.filterMotion(FPoint{}, 0)
	if !out.isZero() {
		t.Errorf("zero delta should pass through unchanged, got %v", out)
	}
}

func TestCalculateVelocityWithinTimeout(t *testing.T) {
	a := newAccelFilter(linearProfile, 1.0)
	a.feedTrackers(FPoint{X: 10, Y: 0}, 1000, DirE)
	a.feedTrackers(FPoint{X: 10, Y: 0}, 2000, DirE)
	v := a.calculateVelocity(2000)
	if v <= 0 {
		t.Errorf("expected positive velocity, got %v", v)
	}
}

func TestRestartZeroesOldTrackers(t *testing.T) {
	a := newAccelFilter(linearProfile, 1.0)
	a.feedTrackers(FPoint{X: 10, Y: 0}, 1000, DirE)
	a.restart(2000)
	for i, tr := range a.trackers {
		if i == a.curTracker {
			continue
		}
		if !tr.delta.isZero() {
			t.Errorf("tracker %d not zeroed after restart: %v", i, tr.delta)
		}
	}
}
