package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Point
	}{
		{"up", DirUp, Pt(5, 4)},
		{"down", DirDown, Pt(5, 6)},
		{"left", DirLeft, Pt(4, 5)},
		{"right", DirRight, Pt(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Pt(5, 5).Add(tc.dir)
			if got != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		if !d.IsOpposite(want) {
			t.Errorf("%v.IsOpposite(%v) should be true", d, want)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(%v) should be false", d, d)
		}
	}

	// Perpendicular directions are never opposite
	if DirUp.IsOpposite(DirLeft) || DirRight.IsOpposite(DirDown) {
		t.Error("Perpendicular directions reported as opposite")
	}
}

func TestDirectionDeltaIsUnit(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		if Abs(dx)+Abs(dy) != 1 {
			t.Errorf("%v.Delta() = (%d,%d), expected a unit vector", d, dx, dy)
		}
	}

	if dx, dy := Direction(9).Delta(); dx != 0 || dy != 0 {
		t.Errorf("Invalid direction should have zero delta, got (%d,%d)", dx, dy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(5, 5), true},
		{"top-left corner", Pt(0, 0), true},
		{"bottom-right cell", Pt(9, 9), true},
		{"right edge (exclusive)", Pt(10, 5), false},
		{"bottom edge (exclusive)", Pt(5, 10), false},
		{"negative x", Pt(-1, 5), false},
		{"negative y", Pt(5, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectWrap(t *testing.T) {
	r := NewRect(0, 0, 10, 8)

	tests := []struct {
		in, expected Point
	}{
		{Pt(-1, 3), Pt(9, 3)},
		{Pt(10, 3), Pt(0, 3)},
		{Pt(4, -1), Pt(4, 7)},
		{Pt(4, 8), Pt(4, 0)},
		{Pt(3, 3), Pt(3, 3)},
	}

	for _, tc := range tests {
		if got := r.Wrap(tc.in); got != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestRectCenterAndArea(t *testing.T) {
	r := NewRect(0, 0, 40, 30)
	if c := r.Center(); c != Pt(20, 15) {
		t.Errorf("Center() = %v, expected (20,15)", c)
	}
	if a := r.Area(); a != 1200 {
		t.Errorf("Area() = %d, expected 1200", a)
	}
	if a := NewRect(0, 0, -1, 4).Area(); a != 0 {
		t.Errorf("Area() of degenerate rect = %d, expected 0", a)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
