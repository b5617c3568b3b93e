package core

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"quarter turn", math.Pi / 2, math.Pi / 2},
		{"full turn wraps to zero", TwoPi, 0},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"more than one turn", TwoPi + 1, 1},
		{"several negative turns", -3*TwoPi - 1, TwoPi - 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeAngle(tc.in)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, result, tc.expected)
			}
			if result < 0 || result >= TwoPi {
				t.Errorf("NormalizeAngle(%f) = %f, out of [0, 2π)", tc.in, result)
			}
		})
	}
}

func TestVecAngle(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"east", Vec2{X: 1}, 0},
		{"north", Vec2{Y: 1}, math.Pi / 2},
		{"west", Vec2{X: -1}, math.Pi},
		{"south", Vec2{Y: -1}, 3 * math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Angle(); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Angle() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"overlapping", Circle{Vec2{0, 0}, 1}, Circle{Vec2{1, 0}, 1}, true},
		{"barely overlapping", Circle{Vec2{0, 0}, 0.5}, Circle{Vec2{0, 0.8}, 0.35}, true},
		{"apart", Circle{Vec2{0, 0}, 0.5}, Circle{Vec2{0, 2}, 0.35}, false},
		{"concentric", Circle{Vec2{3, 3}, 2}, Circle{Vec2{3, 3}, 0.1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	cx, cy := r.Center()
	if cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
