package touchpad

const palmTimeoutMicros = 200 * 1000

// palmTapIsPalm mirrors tp_palm_tap_is_palm: a tap that starts outside
// the side edges and in the northern half of the pad is a palm, not a
// tap, regardless of how light the contact was.
func palmTapIsPalm(cfg *Config, t *Touch) bool {
	if t.state != TouchBegin {
		return false
	}
	if t.point.X > cfg.LeftEdge && t.point.X < cfg.RightEdge {
		return false
	}
	return t.point.Y < cfg.VertCenter
}

// palmDetectDWT mirrors tp_palm_detect_dwt: while the keyboard is being
// used, a touch beginning anywhere is tagged palm-typing; it's released
// once the keyboard goes quiet, provided it began after the last
// keypress (or has no recorded begin time).
func palmDetectDWT(cfg *Config, t *Touch, keyboardActive bool, keyboardLastPress int64) {
	if !cfg.DWTEnabled {
		return
	}
	if keyboardActive {
		if t.state == TouchBegin {
			t.palm.state = PalmTyping
		}
		return
	}
	if t.state == TouchUpdate && t.palm.state == PalmTyping {
		if t.palm.time == 0 || t.palm.time > keyboardLastPress {
			t.palm.state = PalmNone
		}
	}
}

// palmDetectTrackpoint mirrors tp_palm_detect_trackpoint: same shape as
// the DWT check, gated on trackpoint activity instead of the keyboard.
func palmDetectTrackpoint(cfg *Config, t *Touch, trackpointActive bool, trackpointLastEvent int64) {
	if !cfg.MonitorTrackpoint {
		return
	}
	if trackpointActive {
		if t.state == TouchBegin {
			t.palm.state = PalmTrackpoint
		}
		return
	}
	if t.state == TouchUpdate && t.palm.state == PalmTrackpoint {
		if t.palm.time == 0 || t.palm.time > trackpointLastEvent {
			t.palm.state = PalmNone
		}
	}
}

// palmDetect mirrors tp_palm_detect: tries DWT, then trackpoint
// suppression, then falls back to the edge-exclusion-zone heuristic
// that tags and later releases a touch based on sideways motion.
func palmDetect(cfg *Config, t *Touch, now int64, keyboardActive bool, keyboardLastPress int64, trackpointActive bool, trackpointLastEvent int64, isClickpadSoftButton bool) {
	palmDetectDWT(cfg, t, keyboardActive, keyboardLastPress)
	if t.palm.state == PalmTyping {
		return
	}
	palmDetectTrackpoint(cfg, t, trackpointActive, trackpointLastEvent)
	if t.palm.state == PalmTrackpoint {
		return
	}

	insideEdges := t.point.X > cfg.LeftEdge && t.point.X < cfg.RightEdge

	if t.palm.state == PalmEdge {
		if now-t.palm.time < palmTimeoutMicros && insideEdges {
			dir := getDirection(deviceDelta(t.point, t.palm.first))
			if dir != UndefinedDirection && dir&sidewaysDirections == dir {
				t.palm.state = PalmNone
			}
		}
		return
	}

	if t.state != TouchBegin || insideEdges {
		return
	}
	if isClickpadSoftButton {
		return
	}
	if t.point.X >= cfg.RightEdge {
		return
	}
	t.palm.state = PalmEdge
	t.palm.first = t.point
	t.palm.time = now
}
