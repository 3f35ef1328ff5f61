package touchpad

// HandleState runs the fixed per-frame pipeline described in spec.md
// §4.7: process the frame's accumulated slot state, decide what to
// emit, then roll state forward for the next frame. Mirrors
// tp_handle_state's three-call shape exactly.
func (d *Device) HandleState(now int64) {
	d.dwt.keyboardTick(now, func() {
		if d.tap != nil {
			d.tap.Resume()
		}
	})
	d.dwt.trackpointTick(now, func() {
		if d.tap != nil {
			d.tap.Resume()
		}
	})

	d.processState(now)
	d.postEvents(now)
	d.postProcessState()
}

// processState mirrors tp_process_state: fake-touch reconciliation,
// unhover, classifiers, and peer HandleState calls, in the fixed order
// the original enforces so later steps see earlier ones' decisions.
func (d *Device) processState(now int64) {
	processFakeTouches(&d.cfg, d.touches, d.fake, now)
	restoreSynapticsTouches(&d.cfg, d.touches, d.nfingersDown, now)
	unhoverTouches(&d.cfg, d.touches, d.fake, now)

	// tp_position_fake_touches needs this frame's down-count, not the
	// value postProcessState snapshotted last frame: unhoverTouches just
	// above may have begun or ended touches, and positioning must see
	// that immediately rather than lag a frame behind.
	liveDown := 0
	for _, t := range d.touches[:d.cfg.NumSlots] {
		if t.state == TouchBegin || t.state == TouchUpdate {
			liveDown++
		}
	}
	positionFakeTouches(&d.cfg, d.touches, d.fake, liveDown)

	restartFilter := false

	for _, t := range d.touches {
		if t.state == TouchNone {
			continue
		}
		if t.resetMotionHistory {
			t.history.reset()
			t.resetMotionHistory = false
		}

		thumbDetect(&d.cfg, t, now)

		isSoftButton := d.buttons != nil && d.buttons.IsClickpadSoftButtonArea(t.point)
		palmDetect(&d.cfg, t, now,
			d.dwt.keyboardActive, d.dwt.keyboardLastPress,
			d.dwt.trackpointActive, d.dwt.trackpointLastEvent,
			isSoftButton)

		t.point = applyMotionHysteresis(&d.cfg, t, t.point)
		t.history.push(t.point)
		unpinFinger(&d.cfg, t)

		if t.state == TouchBegin {
			restartFilter = true
		}
	}

	if restartFilter {
		d.accel.restart(now)
	}

	if d.buttons != nil {
		d.buttons.HandleState(now, d.touches)
	}
	if d.edgeScroll != nil {
		d.edgeScroll.HandleState(now, d.touches)
	}
	if d.tap != nil {
		d.tap.HandleState(now, d.touches)
	}

	if d.buttons != nil && d.buttons.ClickpadPressed() {
		pinFingers(d.touches)
	}

	d.gesture.handleState(&d.cfg, d.sink, d.touches, d.buttons, d.tap, now)
}

// postEvents mirrors tp_post_events: suspended devices only ever emit
// button state; tap/button claiming the frame (a drag, or a clickpad
// press forcing single-finger mode) suppresses gestures and edge-scroll
// entirely for this frame.
func (d *Device) postEvents(now int64) {
	if d.suspended {
		return
	}

	tapClaimed := false
	if d.tap != nil {
		tapClaimed = d.tap.PostEvents(now)
	}

	clickpadPressed := d.buttons != nil && d.buttons.ClickpadPressed()
	forceOneFinger := tapClaimed || clickpadPressed

	if forceOneFinger || d.dwt.trackpointActive || d.dwt.keyboardActive {
		if d.edgeScroll != nil {
			d.edgeScroll.Stop()
		}
		d.gesture.cancel(d.sink)
		d.postPointerMotion(now)
		return
	}

	if d.edgeScroll != nil {
		if claimed := d.edgeScroll.PostEvents(now); claimed {
			return
		}
	}

	count := 0
	for _, t := range d.touches {
		if touchActive(&d.cfg, t, d.buttons, d.tap) {
			count++
		}
	}
	if count <= 1 {
		d.postPointerMotion(now)
		return
	}

	d.gesture.postEvents(&d.cfg, d.sink, d.accel, now, count, false)
}

// postPointerMotion mirrors tp_gesture_post_pointer_motion: the single-
// finger path, run through the accelerated filter.
func (d *Device) postPointerMotion(now int64) {
	var active *Touch
	for _, t := range d.touches {
		if touchActive(&d.cfg, t, d.buttons, d.tap) {
			active = t
			break
		}
	}
	if active == nil {
		return
	}
	delta := getDelta(active)
	if delta.isZero() {
		return
	}
	scaled := FPoint{X: delta.X * d.cfg.XScaleCoeff, Y: delta.Y * d.cfg.YScaleCoeff}
	out := d.accel.filterMotion(scaled, now)
	d.sink.PointerMotion(out.X, out.Y)
}

// postProcessState mirrors tp_post_process_state: rolls BEGIN->UPDATE
// and END->NONE/HOVERING, clears per-frame dirty flags, and snapshots
// finger-count bookkeeping for the next frame's transition checks.
func (d *Device) postProcessState() {
	oldCount := 0
	for _, t := range d.touches {
		if t.state == TouchBegin || t.state == TouchUpdate {
			oldCount++
		}
	}

	for _, t := range d.touches {
		switch t.state {
		case TouchEnd:
			if t.hasEnded {
				t.state = TouchNone
			} else {
				t.state = TouchHovering
			}
		case TouchBegin:
			t.state = TouchUpdate
		}
		t.dirty = false
	}

	if needMotionHistoryReset(&d.cfg, d.oldFingerCount, oldCount) {
		for _, t := range d.touches {
			t.resetMotionHistory = true
		}
	}
	d.oldFingerCount = oldCount
	d.nfingersDown = oldCount
}
