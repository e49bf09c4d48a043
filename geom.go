package cinder

import "math"

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two points by t.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange remaps v from [inLo, inHi] to [outLo, outHi] without clamping.
// A degenerate input range maps everything to outLo.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the vector length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length. The zero vector is returned
// unchanged.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Perp returns the counter-clockwise perpendicular of p.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the angle of the vector p in degrees.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ShortestAngle returns the signed shortest rotation from one angle to
// another, in degrees. The result is always in (-180, 180].
func ShortestAngle(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// LerpAngle interpolates between two angles along the shortest path.
// Wrapping is handled: LerpAngle(350, 10, 0.5) == 0.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + ShortestAngle(from, to)*t)
}

// QuadBezier evaluates a quadratic bezier at t for control points a, c, b.
func QuadBezier(a, c, b Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
	}
}

// CubicBezier evaluates a cubic bezier at t for control points a, c1, c2, b.
func CubicBezier(a, c1, c2, b Point, t float64) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	return Point{
		X: uu*u*a.X + 3*uu*t*c1.X + 3*u*tt*c2.X + tt*t*b.X,
		Y: uu*u*a.Y + 3*uu*t*c1.Y + 3*u*tt*c2.Y + tt*t*b.Y,
	}
}

// Random returns a uniformly distributed value in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rnd()*(r.Max-r.Min)
}

// Lerp interpolates across the range by t.
func (r Range) Lerp(t float64) float64 {
	return Lerp(r.Min, r.Max, t)
}
