package core

import (
	"math"
	"testing"
)

func TestCoordQuadrantAndSector(t *testing.T) {
	tests := []struct {
		name     string
		c        Coord
		quadrant Coord
		sector   Coord
	}{
		{"origin", NewCoord(0, 0), NewCoord(0, 0), NewCoord(0, 0)},
		{"last cell", NewCoord(63, 63), NewCoord(7, 7), NewCoord(7, 7)},
		{"quadrant boundary", NewCoord(8, 15), NewCoord(1, 1), NewCoord(0, 7)},
		{"mixed", NewCoord(21, 42), NewCoord(2, 5), NewCoord(5, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Quadrant(); got != tc.quadrant {
				t.Errorf("Quadrant() = %v, expected %v", got, tc.quadrant)
			}
			if got := tc.c.Sector(); got != tc.sector {
				t.Errorf("Sector() = %v, expected %v", got, tc.sector)
			}
			if got := tc.c.Quadrant().Origin().Add(tc.c.Sector()); got != tc.c {
				t.Errorf("Origin()+Sector() = %v, expected %v", got, tc.c)
			}
		})
	}
}

func TestCoordOutside(t *testing.T) {
	tests := []struct {
		c        Coord
		expected bool
	}{
		{NewCoord(0, 0), false},
		{NewCoord(63, 0), false},
		{NewCoord(0, 63), false},
		{NewCoord(-1, 0), true},
		{NewCoord(0, -1), true},
		{NewCoord(64, 10), true},
		{NewCoord(10, 64), true},
	}

	for _, tc := range tests {
		if got := tc.c.Outside(); got != tc.expected {
			t.Errorf("%v.Outside() = %v, expected %v", tc.c, got, tc.expected)
		}
	}
}

func TestCoordSameQuadrant(t *testing.T) {
	a := NewCoord(8, 8)
	if !a.SameQuadrant(NewCoord(15, 15)) {
		t.Error("(8,8) and (15,15) share quadrant (1,1)")
	}
	if a.SameQuadrant(NewCoord(16, 8)) {
		t.Error("(8,8) and (16,8) are in different quadrants")
	}
	// Go truncates toward zero, so -1/8 == 0; outside cells must never match.
	if NewCoord(0, 0).SameQuadrant(NewCoord(-1, 0)) {
		t.Error("a coordinate outside the galaxy must not share a quadrant")
	}
}

func TestCoordDistance(t *testing.T) {
	d := NewCoord(0, 0).Distance(NewCoord(3, 4))
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
	if NewCoord(2, 2).Distance(NewCoord(2, 2)) != 0 {
		t.Error("Distance to self should be 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestRollAndPick(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		spread int
		roll   int
		pick   int
	}{
		{"lowest", 0.0, 100, 1, 0},
		{"highest", 0.999999, 100, 100, 99},
		{"middle", 0.5, 8, 5, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := fixedSource(tc.value)
			if got := Roll(src, tc.spread); got != tc.roll {
				t.Errorf("Roll() = %d, expected %d", got, tc.roll)
			}
			if got := Pick(src, tc.spread); got != tc.pick {
				t.Errorf("Pick() = %d, expected %d", got, tc.pick)
			}
		})
	}
}

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		raw, expected string
	}{
		{"nav", "nav"},
		{"NAVIGATE", "nav"},
		{"  Srs\n", "srs"},
		{"xx", "xx"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeCommand(tc.raw); got != tc.expected {
			t.Errorf("NormalizeCommand(%q) = %q, expected %q", tc.raw, got, tc.expected)
		}
	}
}
