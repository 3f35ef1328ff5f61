package peers

import "touchpad/internal/touchpad"

// EdgeScroll implements touchpad.EdgeScroll: a single finger dragging
// along the right edge of the pad emits vertical scroll ticks, and
// along the bottom edge emits horizontal ticks, the classic pre-
// two-finger-scroll method. Only active when Config.ScrollMethod is
// touchpad.ScrollEdge.
type EdgeScroll struct {
	cfg  touchpad.Config
	sink touchpad.Sink

	edgeWidth int32

	active  bool
	started bool
	vert    bool
	last    touchpad.Point
}

func NewEdgeScroll(cfg touchpad.Config, sink touchpad.Sink, edgeWidth int32) *EdgeScroll {
	return &EdgeScroll{cfg: cfg, sink: sink, edgeWidth: edgeWidth}
}

func (e *EdgeScroll) inRightEdge(p touchpad.Point) bool {
	return p.X >= e.cfg.RightEdge-e.edgeWidth
}

func (e *EdgeScroll) inBottomEdge(p touchpad.Point) bool {
	return p.Y >= e.cfg.LowerThumbLine
}

// HandleState finds the sole active touch (edge scroll only ever looks
// at one finger) and emits a scroll tick for its motion since last
// frame, once it has been confirmed to have started inside an edge.
func (e *EdgeScroll) HandleState(now int64, touches []*touchpad.Touch) {
	if e.cfg.ScrollMethod != touchpad.ScrollEdge {
		return
	}

	var only *touchpad.Touch
	count := 0
	for _, t := range touches {
		if t.State() == touchpad.TouchBegin || t.State() == touchpad.TouchUpdate {
			count++
			only = t
		}
	}
	if count != 1 || only == nil {
		e.Stop()
		return
	}

	p := only.Point()
	if only.State() == touchpad.TouchBegin {
		e.vert = e.inRightEdge(p)
		e.started = e.vert || e.inBottomEdge(p)
		e.last = p
		e.active = false
		return
	}
	if !e.started {
		return
	}

	dx := float64(p.X - e.last.X)
	dy := float64(p.Y - e.last.Y)
	e.last = p
	if dx == 0 && dy == 0 {
		return
	}

	if !e.active {
		e.sink.ScrollBegin()
		e.active = true
	}
	if e.vert {
		e.sink.Scroll(0, dy*e.cfg.YScaleCoeff, touchpad.ScrollSourceFinger)
	} else {
		e.sink.Scroll(dx*e.cfg.XScaleCoeff, 0, touchpad.ScrollSourceFinger)
	}
}

// PostEvents reports whether edge scroll is claiming the frame; the
// actual scroll events are emitted from HandleState where the touch
// delta is available.
func (e *EdgeScroll) PostEvents(now int64) bool {
	return e.active
}

func (e *EdgeScroll) Stop() {
	if e.active {
		e.sink.ScrollStop()
	}
	e.active = false
	e.started = false
}
