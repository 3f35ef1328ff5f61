package touchpad

// Buttons is the physical/clickpad button peer (spec.md §9). The core
// never reaches into its internal state; it only asks whether a touch
// is usable for motion/gestures and hands it frame events to react to.
type Buttons interface {
	// TouchActive reports whether the given slot may contribute to
	// pointer motion and gestures; false excludes it because of a
	// clickpad button decision (e.g. pinned during a physical click with
	// button-areas clicking).
	TouchActive(slot int) bool
	// HandleState runs once per frame, before gesture/tap dispatch, with
	// the frame's touches so the peer can update its own click/pin state.
	HandleState(now int64, touches []*Touch)
	// IsClickpadSoftButtonArea reports whether a point falls inside the
	// clickpad's software button strip, used by palm detection to avoid
	// tagging an intentional click as a palm.
	IsClickpadSoftButtonArea(p Point) bool
	// ClickpadPressed reports whether a clickpad's single physical
	// button is currently held, which pins every active touch in place
	// and forces single-finger gesture mode for the frame.
	ClickpadPressed() bool
}

// Tap is the tap-to-click peer (spec.md §9).
type Tap interface {
	// TouchActive reports whether the given slot may contribute to
	// pointer motion; false excludes it, as for a touch consumed by an
	// in-progress tap/drag.
	TouchActive(slot int) bool
	HandleState(now int64, touches []*Touch)
	// PostEvents emits any button events the tap state machine produced
	// this frame and reports whether it claimed the frame (drag motion).
	PostEvents(now int64) (claimed bool)
	Suspend()
	Resume()
}

// EdgeScroll is the edge-scroll peer (spec.md §9), active only when
// Config.ScrollMethod is ScrollEdge.
type EdgeScroll interface {
	HandleState(now int64, touches []*Touch)
	PostEvents(now int64) (claimed bool)
	Stop()
}
