package touchpad

import "testing"

func TestGetDirection(t *testing.T) {
	cases := []struct {
		name string
		d    FPoint
		want Direction
	}{
		{"zero", FPoint{0, 0}, UndefinedDirection},
		{"north", FPoint{0, -10}, DirN},
		{"south", FPoint{0, 10}, DirS},
		{"east", FPoint{10, 0}, DirE},
		{"west", FPoint{-10, 0}, DirW},
		{"northeast", FPoint{10, -10}, DirNE},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := getDirection(c.d); got != c.want {
				t.Errorf("getDirection(%v) = %v, want %v", c.d, got, c.want)
			}
		})
	}
}

func TestSameDirectionsAdjacent(t *testing.T) {
	if !sameDirections(DirN, DirNE) {
		t.Error("N and NE should be considered the same direction")
	}
	if !sameDirections(DirNE, DirN) {
		t.Error("sameDirections should be symmetric")
	}
	if sameDirections(DirN, DirS) {
		t.Error("N and S should not be considered the same direction")
	}
}

func TestSameDirectionsWraparound(t *testing.T) {
	if !sameDirections(DirNW, DirN) {
		t.Error("NW and N should wrap around as adjacent")
	}
}
