package cinder

import (
	"math"
	"testing"
)

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp = %f, want 5", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp above = %f, want 1", got)
	}
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp below = %f, want 0", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp inside = %f, want 0.3", got)
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(0.5, 0, 1, 10, 20); got != 15 {
		t.Errorf("MapRange = %f, want 15", got)
	}
	if got := MapRange(-1, -1, 1, 0, 100); got != 0 {
		t.Errorf("MapRange low end = %f, want 0", got)
	}
	// Degenerate input range maps to the output floor.
	if got := MapRange(5, 3, 3, 7, 9); got != 7 {
		t.Errorf("MapRange degenerate = %f, want 7", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Errorf("Distance = %f, want 5", got)
	}
}

func TestVectorOps(t *testing.T) {
	v := Point{3, 4}
	if got := v.Len(); got != 5 {
		t.Errorf("Len = %f, want 5", got)
	}
	n := v.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize length = %f, want 1", n.Len())
	}
	if z := (Point{}).Normalize(); z != (Point{}) {
		t.Errorf("Normalize zero vector = %v, want zero", z)
	}
	p := Point{1, 0}.Perp()
	if p != (Point{0, 1}) {
		t.Errorf("Perp = %v, want {0 1}", p)
	}
}

func TestShortestAngleRange(t *testing.T) {
	cases := []struct {
		from, to, want float64
	}{
		{0, 180, 180},
		{0, 190, -170},
		{350, 10, 20},
		{10, 350, -20},
		{90, 90, 0},
	}
	for _, c := range cases {
		got := ShortestAngle(c.from, c.to)
		if got != c.want {
			t.Errorf("ShortestAngle(%f, %f) = %f, want %f", c.from, c.to, got, c.want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("ShortestAngle(%f, %f) = %f outside (-180, 180]", c.from, c.to, got)
		}
	}
}

func TestLerpAngleTakesShortPath(t *testing.T) {
	// 350°→10° should pass through 0°, not 180°.
	if got := LerpAngle(350, 10, 0.5); got != 0 {
		t.Errorf("LerpAngle(350, 10, 0.5) = %f, want 0", got)
	}
	if got := LerpAngle(0, 90, 0.5); got != 45 {
		t.Errorf("LerpAngle(0, 90, 0.5) = %f, want 45", got)
	}
}

func TestBezierEndpoints(t *testing.T) {
	a, c, b := Point{0, 0}, Point{50, -80}, Point{100, 0}
	if got := QuadBezier(a, c, b, 0); got != a {
		t.Errorf("QuadBezier(0) = %v, want %v", got, a)
	}
	if got := QuadBezier(a, c, b, 1); got != b {
		t.Errorf("QuadBezier(1) = %v, want %v", got, b)
	}
	if got := CubicBezier(a, c, c, b, 0); got != a {
		t.Errorf("CubicBezier(0) = %v, want %v", got, a)
	}
	if got := CubicBezier(a, c, c, b, 1); got != b {
		t.Errorf("CubicBezier(1) = %v, want %v", got, b)
	}
	mid := QuadBezier(a, c, b, 0.5)
	if mid.Y >= 0 {
		t.Errorf("QuadBezier midpoint Y = %f, want above the baseline", mid.Y)
	}
}

func TestRangeLerpAndRandom(t *testing.T) {
	r := Range{Min: 2, Max: 6}
	if got := r.Lerp(0.5); got != 4 {
		t.Errorf("Range.Lerp = %f, want 4", got)
	}
	for i := 0; i < 100; i++ {
		v := r.Random()
		if v < 2 || v > 6 {
			t.Fatalf("Range.Random = %f outside [2, 6]", v)
		}
	}
	fixed := Range{Min: 3, Max: 3}
	if got := fixed.Random(); got != 3 {
		t.Errorf("Range.Random fixed = %f, want 3", got)
	}
}
