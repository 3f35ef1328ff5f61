package touchpad

// deadline is a one-shot, poll-based timer. The core is single-threaded
// and cooperative (no locking, per spec.md §5), so timers are plain
// deadlines compared against the current frame's timestamp rather than
// OS timers or goroutines.
type deadline struct {
	armed   bool
	dueTime int64
}

func (d *deadline) arm(at int64) {
	d.armed = true
	d.dueTime = at
}

func (d *deadline) disarm() {
	d.armed = false
}

// expired reports whether the deadline has passed as of now, and
// disarms it as a side effect so callers don't need to do it themselves.
func (d *deadline) expired(now int64) bool {
	if !d.armed {
		return false
	}
	if now < d.dueTime {
		return false
	}
	d.armed = false
	return true
}
