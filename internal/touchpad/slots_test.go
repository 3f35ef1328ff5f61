package touchpad

import "testing"

func TestFakeTouchCount(t *testing.T) {
	var f fakeTouchState
	f.set(codeBTNTouch, true)
	if !f.isTouching() {
		t.Error("expected isTouching after BTN_TOUCH down")
	}
	f.set(codeBTNToolDoubleTap, true)
	if got := f.count(); got != 2 {
		t.Errorf("count() = %d, want 2 after BTN_TOOL_DOUBLETAP", got)
	}
}

func TestFakeTouchQuintTapOverflow(t *testing.T) {
	var f fakeTouchState
	f.set(codeBTNToolQuintTap, true)
	if got := f.count(); got != fakeFingerOverflow {
		t.Errorf("count() = %d, want overflow sentinel %d", got, fakeFingerOverflow)
	}
}

func TestFakeTouchReleaseClearsOverflow(t *testing.T) {
	var f fakeTouchState
	f.set(codeBTNToolQuintTap, true)
	f.set(codeBTNTouch, false)
	if got := f.count(); got != 0 {
		t.Errorf("count() = %d, want 0 after BTN_TOUCH release clears overflow", got)
	}
}

func TestNewTouchIsNoOpWhenAlreadyDown(t *testing.T) {
	tc := &Touch{state: TouchUpdate, millis: 42}
	newTouch(tc, 99)
	if tc.millis != 42 {
		t.Error("newTouch should not reset an already-active touch")
	}
}

func TestBeginEndTouchLifecycle(t *testing.T) {
	tc := &Touch{}
	newTouch(tc, 1)
	if tc.state != TouchHovering {
		t.Fatalf("state = %v, want hovering", tc.state)
	}
	beginTouch(tc, 2)
	if tc.state != TouchBegin {
		t.Fatalf("state = %v, want begin", tc.state)
	}
	endTouch(tc, 3)
	if tc.state != TouchEnd {
		t.Fatalf("state = %v, want end", tc.state)
	}
}

func TestEndTouchIgnoredWhenAlreadyNone(t *testing.T) {
	tc := &Touch{state: TouchNone}
	endTouch(tc, 5)
	if tc.state != TouchNone {
		t.Error("ending an already-none touch should be a no-op")
	}
}

func TestTopmostTouchPicksSmallestY(t *testing.T) {
	touches := []*Touch{
		{state: TouchUpdate, point: Point{X: 0, Y: 200}},
		{state: TouchUpdate, point: Point{X: 0, Y: 50}},
		{state: TouchEnd, point: Point{X: 0, Y: 1}},
	}
	top, ok := topmostTouch(touches, 3)
	if !ok {
		t.Fatal("expected a topmost touch")
	}
	if top.Y != 50 {
		t.Errorf("topmost Y = %d, want 50", top.Y)
	}
}

func TestTopmostTouchNoneFound(t *testing.T) {
	touches := []*Touch{
		{state: TouchEnd},
		{state: TouchNone},
	}
	_, ok := topmostTouch(touches, 2)
	if ok {
		t.Error("expected no topmost touch when all slots are end/none")
	}
}
