package touchpad

import "testing"

func TestTouchActivePredicate(t *testing.T) {
	cfg := DefaultConfig()
	tc := &Touch{state: TouchUpdate}
	if !touchActive(&cfg, tc, nil, nil) {
		t.Error("plain active touch should be active")
	}
	tc.palm.state = PalmEdge
	if touchActive(&cfg, tc, nil, nil) {
		t.Error("palm-tagged touch should not be active")
	}
}

func TestTouchActiveExcludesThumb(t *testing.T) {
	cfg := DefaultConfig()
	tc := &Touch{state: TouchUpdate, thumb: thumbInfo{state: ThumbYes}}
	if touchActive(&cfg, tc, nil, nil) {
		t.Error("thumb-tagged touch should not be active")
	}
}

func TestTouchActiveExcludesPinned(t *testing.T) {
	cfg := DefaultConfig()
	tc := &Touch{state: TouchBegin, pinned: pinnedInfo{isPinned: true}}
	if touchActive(&cfg, tc, nil, nil) {
		t.Error("pinned touch should not be active")
	}
}

func TestGetActiveTouchesPicksExtremes(t *testing.T) {
	cfg := DefaultConfig()
	touches := []*Touch{
		{state: TouchUpdate, point: Point{X: 100}},
		{state: TouchUpdate, point: Point{X: 10}},
		{state: TouchUpdate, point: Point{X: 50}},
	}
	active := getActiveTouches(&cfg, touches, nil, nil)
	if len(active) != 2 {
		t.Fatalf("expected 2 active touches (leftmost/rightmost), got %d", len(active))
	}
	if active[0].point.X != 10 || active[1].point.X != 100 {
		t.Errorf("expected leftmost=10, rightmost=100, got %v, %v", active[0].point.X, active[1].point.X)
	}
}

func TestWrapAngleDelta(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{190, -170},
		{-190, 170},
		{90, 90},
		{180, 180},
	}
	for _, c := range cases {
		if got := wrapAngleDelta(c.in); got != c.want {
			t.Errorf("wrapAngleDelta(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPinchInfoRequiresTwoTouches(t *testing.T) {
	dist, _, _ := pinchInfo([]*Touch{{point: Point{X: 0, Y: 0}}})
	if dist != 0 {
		t.Errorf("pinchInfo with <2 touches should report 0 distance, got %v", dist)
	}
}

func TestGestureHandleStateNoneToUnknown(t *testing.T) {
	cfg := DefaultConfig()
	g := &gestureState{}
	active := []*Touch{
		{state: TouchUpdate, point: Point{X: 0}},
		{state: TouchUpdate, point: Point{X: 100}},
	}
	g.handleStateNone(&cfg, active, 1000)
	if g.mode != GestureUnknown {
		t.Errorf("mode = %v, want unknown after 2 touches arrive", g.mode)
	}
}

func TestGestureHandleStateNoneStaysWithOneTouch(t *testing.T) {
	cfg := DefaultConfig()
	g := &gestureState{}
	g.handleStateNone(&cfg, []*Touch{{state: TouchUpdate}}, 1000)
	if g.mode != GestureNone {
		t.Errorf("mode = %v, want none with a single touch", g.mode)
	}
}
