package cinder

// Point is a 2D position on the map surface. The coordinate system has its
// origin at the top-left, with Y increasing downward (screen convention).
// Points are plain values with no identity.
type Point struct {
	X, Y float64
}

// Range is a general-purpose min/max range. Used by the particle system and
// by templates that randomize sizes or lifetimes.
type Range struct {
	Min, Max float64
}

// Shape identifies the visual form of a projectile head. The set is closed;
// every switch over Shape in this package handles all values.
type Shape uint8

const (
	ShapeCircle    Shape = iota // filled circle (default)
	ShapeTriangle               // isoceles triangle pointing along travel
	ShapeRectangle              // axis-aligned rectangle
	ShapeStar                   // five-pointed star
	ShapeCustom                 // host-drawn; the engine only forwards it
)

// String returns the lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeStar:
		return "star"
	case ShapeCustom:
		return "custom"
	}
	return "unknown"
}

// ParseShape maps a shape name to its Shape value.
// Returns false for names outside the closed set.
func ParseShape(name string) (Shape, bool) {
	switch name {
	case "circle":
		return ShapeCircle, true
	case "triangle":
		return ShapeTriangle, true
	case "rectangle":
		return ShapeRectangle, true
	case "star":
		return ShapeStar, true
	case "custom":
		return ShapeCustom, true
	}
	return ShapeCircle, false
}

// WaveForm selects the oscillator used by WaveMotion.
type WaveForm uint8

const (
	WaveSine     WaveForm = iota // smooth sinusoid
	WaveSquare                   // hard ±1 toggle
	WaveTriangle                 // linear rise and fall
	WaveSawtooth                 // linear rise, instant reset
)

// WaveAxis selects how a wave offset is applied relative to the base path.
type WaveAxis uint8

const (
	WavePerpendicular WaveAxis = iota // offset normal to the from→to segment
	WaveAxisX                         // offset along world X only
	WaveAxisY                         // offset along world Y only
)

// CurveShape selects one of the seeded missile waveform formulas.
// All five are implemented and callable; MissileMotion defaults to
// CurveSCurve, which is the only shape the editor currently selects.
type CurveShape uint8

const (
	CurveSingleArc CurveShape = iota // one hump, sin(πp)
	CurveSCurve                      // two zero crossings, sin(2πp)
	CurveTripleWave                  // three humps, sin(3πp)
	CurveDoubleArc                   // asymmetric double arc
	CurveDecaying                    // half-wave with linear decay
)
