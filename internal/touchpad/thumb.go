package touchpad

const thumbMoveTimeoutMicros = 300 * 1000

// thumbMoveLimit is TP_MM_TO_DPI_NORMALIZED(7): a thumb resting on the
// pad drifts very little; 7mm of movement rules it out.
const thumbMoveLimit = 7.0 * 1000.0 / 25.4

// thumbDetect mirrors tp_thumb_detect: a touch starts MAYBE and is only
// ever resolved once, the first time one of the YES/NO conditions
// fires. Runs only when Config.DetectThumbs is set; the scroll method
// only affects the lower-thumb-line rule.
func thumbDetect(cfg *Config, t *Touch, now int64) {
	if !cfg.DetectThumbs || t.thumb.state != ThumbMaybe {
		return
	}

	if t.point.Y < cfg.UpperThumbLine {
		t.thumb.state = ThumbNo
		return
	}

	switch t.state {
	case TouchBegin:
		t.thumb.initial = t.point
		return
	case TouchUpdate:
		moved := normalizedLength(FPoint{
			X: float64(t.point.X-t.thumb.initial.X) * cfg.XScaleCoeff,
			Y: float64(t.point.Y-t.thumb.initial.Y) * cfg.YScaleCoeff,
		})
		if moved > thumbMoveLimit {
			t.thumb.state = ThumbNo
			return
		}
		if t.pressure > cfg.ThumbPressureThreshold {
			t.thumb.state = ThumbYes
			return
		}
		if t.point.Y > cfg.LowerThumbLine &&
			cfg.ScrollMethod != ScrollEdge &&
			t.thumb.firstTouchTime+thumbMoveTimeoutMicros < now {
			t.thumb.state = ThumbYes
		}
	}
}
