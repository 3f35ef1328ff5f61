package touchpad

import "testing"

func TestPalmTapIsPalmOutsideEdgesNorthHalf(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftEdge, cfg.RightEdge = 100, 900
	cfg.VertCenter = 500
	tc := &Touch{state: TouchBegin, point: Point{X: 50, Y: 100}}
	if !palmTapIsPalm(&cfg, tc) {
		t.Error("tap outside edges and in the northern half should be a palm tap")
	}
}

func TestPalmTapIsPalmFalseNearEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftEdge, cfg.RightEdge = 100, 900
	cfg.VertCenter = 500
	tc := &Touch{state: TouchBegin, point: Point{X: 50, Y: 600}}
	if palmTapIsPalm(&cfg, tc) {
		t.Error("tap at the physical edge in the southern half should not be flagged a palm tap")
	}
}

func TestPalmDetectDWTTagsDuringTyping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DWTEnabled = true
	tc := &Touch{state: TouchBegin}
	palmDetectDWT(&cfg, tc, true, 100)
	if tc.palm.state != PalmTyping {
		t.Errorf("palm.state = %v, want typing while keyboard active", tc.palm.state)
	}
}

func TestPalmDetectDWTClearsAfterTyping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DWTEnabled = true
	tc := &Touch{state: TouchUpdate, palm: palmInfo{state: PalmTyping, time: 150}}
	palmDetectDWT(&cfg, tc, false, 100)
	if tc.palm.state != PalmNone {
		t.Errorf("palm.state = %v, want cleared once keyboard goes quiet", tc.palm.state)
	}
}

func TestThumbDetectAboveUpperLineIsNever(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetectThumbs = true
	cfg.UpperThumbLine = 500
	tc := &Touch{state: TouchBegin, point: Point{Y: 100}}
	thumbDetect(&cfg, tc, 0)
	if tc.thumb.state != ThumbNo {
		t.Errorf("thumb.state = %v, want no above upper thumb line", tc.thumb.state)
	}
}

func TestThumbDetectHighPressureIsYes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetectThumbs = true
	cfg.UpperThumbLine = 0
	cfg.ThumbPressureThreshold = 50
	cfg.XScaleCoeff, cfg.YScaleCoeff = 1, 1
	tc := &Touch{state: TouchBegin, point: Point{X: 0, Y: 1000}}
	thumbDetect(&cfg, tc, 0)
	tc.state = TouchUpdate
	tc.pressure = 60
	thumbDetect(&cfg, tc, 0)
	if tc.thumb.state != ThumbYes {
		t.Errorf("thumb.state = %v, want yes under high pressure", tc.thumb.state)
	}
}
