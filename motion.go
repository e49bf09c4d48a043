package cinder

import "math"

// MotionFunc maps normalized progress in [0, 1] to a position. Motion
// functions are pure: the same progress always yields the same point, and no
// state is carried between calls. Progress outside [0, 1] is clamped.
type MotionFunc func(progress float64) Point

// LinearMotion interpolates directly between two points.
func LinearMotion(from, to Point) MotionFunc {
	return func(p float64) Point {
		return LerpPoint(from, to, Clamp(p, 0, 1))
	}
}

// QuadBezierMotion follows a quadratic bezier through one control point.
func QuadBezierMotion(from, control, to Point) MotionFunc {
	return func(p float64) Point {
		return QuadBezier(from, control, to, Clamp(p, 0, 1))
	}
}

// CubicBezierMotion follows a cubic bezier through two control points.
func CubicBezierMotion(from, c1, c2, to Point) MotionFunc {
	return func(p float64) Point {
		return CubicBezier(from, c1, c2, to, Clamp(p, 0, 1))
	}
}

// ArcMotion follows a quadratic bezier whose control point is the segment
// midpoint offset perpendicular by height. Positive height arcs to the left
// of travel (screen-space up when moving rightwards uses negative height).
func ArcMotion(from, to Point, height float64) MotionFunc {
	mid := LerpPoint(from, to, 0.5)
	control := mid.Add(to.Sub(from).Normalize().Perp().Scale(height))
	return QuadBezierMotion(from, control, to)
}

// OrbitMotion circles a center point from startDeg to endDeg. Angles are in
// degrees; clockwise reverses the sweep direction.
func OrbitMotion(center Point, radius, startDeg, endDeg float64, clockwise bool) MotionFunc {
	return EllipseMotion(center, radius, radius, startDeg, endDeg, clockwise)
}

// EllipseMotion sweeps an elliptical orbit with independent radii.
func EllipseMotion(center Point, radiusX, radiusY, startDeg, endDeg float64, clockwise bool) MotionFunc {
	sweep := endDeg - startDeg
	if clockwise {
		sweep = -sweep
	}
	return func(p float64) Point {
		a := (startDeg + sweep*Clamp(p, 0, 1)) * math.Pi / 180
		return Point{
			X: center.X + radiusX*math.Cos(a),
			Y: center.Y + radiusY*math.Sin(a),
		}
	}
}

// SpiralMotion sweeps around a center while linearly interpolating the radius
// across the given number of rotations.
func SpiralMotion(center Point, startRadius, endRadius, rotations, startDeg float64, clockwise bool) MotionFunc {
	sweep := rotations * 360
	if clockwise {
		sweep = -sweep
	}
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		r := Lerp(startRadius, endRadius, p)
		a := (startDeg + sweep*p) * math.Pi / 180
		return Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		}
	}
}

// DefaultBounceDecay is the geometric factor applied to successive bounce
// peaks when BounceMotion is given a zero decay.
const DefaultBounceDecay = 0.6

// BounceMotion travels from→to with parabolic hops. The path is divided into
// bounces+1 equal segments; each segment is a parabolic hump whose peak is
// height*decay^segment above the base line. Stylized, not rigid-body physics.
func BounceMotion(from, to Point, height float64, bounces int, decay float64) MotionFunc {
	if bounces < 0 {
		bounces = 0
	}
	if decay <= 0 {
		decay = DefaultBounceDecay
	}
	segments := float64(bounces + 1)
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		base := LerpPoint(from, to, p)
		seg := math.Min(math.Floor(p*segments), segments-1)
		local := p*segments - seg
		// Parabola peaking at 1 for local = 0.5.
		hump := 4 * local * (1 - local)
		peak := height * math.Pow(decay, seg)
		return Point{X: base.X, Y: base.Y - peak*hump}
	}
}

// GravityMotion drops from→to with quadratic easing on the vertical axis only.
// Horizontal motion stays linear, so the path reads as an accelerating fall.
func GravityMotion(from, to Point) MotionFunc {
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		return Point{
			X: Lerp(from.X, to.X, p),
			Y: Lerp(from.Y, to.Y, p*p),
		}
	}
}

// BallisticMotion composes linear horizontal travel with a closed-form
// vertical launch: upward initial velocity decelerated by gravity. A zero
// gravity defaults to 2*velocity, which brings the offset back to zero at
// progress 1 so the path lands exactly on the target.
func BallisticMotion(from, to Point, velocity, gravity float64) MotionFunc {
	if gravity == 0 {
		gravity = 2 * velocity
	}
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		base := LerpPoint(from, to, p)
		lift := velocity*p - 0.5*gravity*p*p
		return Point{X: base.X, Y: base.Y - lift}
	}
}

// WaveConfig parametrizes WaveMotion.
type WaveConfig struct {
	// Amplitude is the peak offset in map units.
	Amplitude float64
	// Frequency is the number of full oscillations over the path.
	Frequency float64
	// Phase shifts the oscillation, in radians.
	Phase float64
	// Form selects the oscillator shape. Defaults to WaveSine.
	Form WaveForm
	// Axis selects how the offset is applied. Defaults to WavePerpendicular.
	Axis WaveAxis
}

// WaveMotion oscillates around the straight from→to line.
func WaveMotion(from, to Point, cfg WaveConfig) MotionFunc {
	if cfg.Frequency == 0 {
		cfg.Frequency = 1
	}
	normal := to.Sub(from).Normalize().Perp()
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		base := LerpPoint(from, to, p)
		w := cfg.Amplitude * waveValue(cfg.Form, cfg.Frequency*p*2*math.Pi+cfg.Phase)
		switch cfg.Axis {
		case WavePerpendicular:
			return base.Add(normal.Scale(w))
		case WaveAxisX:
			return Point{X: base.X + w, Y: base.Y}
		case WaveAxisY:
			return Point{X: base.X, Y: base.Y + w}
		}
		return base
	}
}

// waveValue evaluates one oscillator at angle a (radians), returning [-1, 1].
func waveValue(form WaveForm, a float64) float64 {
	switch form {
	case WaveSine:
		return math.Sin(a)
	case WaveSquare:
		if math.Sin(a) >= 0 {
			return 1
		}
		return -1
	case WaveTriangle:
		// Triangle wave with the same zero crossings as sine.
		t := math.Mod(a/(2*math.Pi)+0.75, 1)
		if t < 0 {
			t++
		}
		return 4*math.Abs(t-0.5) - 1
	case WaveSawtooth:
		t := math.Mod(a/(2*math.Pi), 1)
		if t < 0 {
			t++
		}
		return 2*t - 1
	}
	return math.Sin(a)
}
