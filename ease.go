package cinder

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing combinators. All functions here produce or consume gween's
// ease.TweenFunc (Penner signature: t=current time, b=begin, c=change,
// d=duration), so results compose freely with the stock gween easings.
//
// The combinators operate on the normalized curve f(p) = fn(p, 0, 1, 1) and
// re-apply b/c afterwards, which keeps them correct for any begin/change pair.

// easeAt evaluates an easing function at normalized progress p in [0, 1].
func easeAt(fn ease.TweenFunc, p float32) float32 {
	return fn(p, 0, 1, 1)
}

// EaseReverse runs an easing curve backwards: an ease-in becomes an ease-out.
func EaseReverse(fn ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := t / d
		return b + c*(1-easeAt(fn, 1-p))
	}
}

// EaseMirror plays the curve forward over the first half of the duration and
// backward over the second half, returning to the start value. Useful for
// pulse-like effects that must end where they began.
func EaseMirror(fn ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := t / d
		if p < 0.5 {
			return b + c*easeAt(fn, p*2)
		}
		return b + c*easeAt(fn, 2-p*2)
	}
}

// EaseChain concatenates easing curves, giving each an equal share of the
// duration and of the output range. With no arguments it degrades to linear.
func EaseChain(fns ...ease.TweenFunc) ease.TweenFunc {
	if len(fns) == 0 {
		return ease.Linear
	}
	n := float32(len(fns))
	return func(t, b, c, d float32) float32 {
		p := t / d
		if p >= 1 {
			return b + c
		}
		if p < 0 {
			p = 0
		}
		i := int(p * n)
		if i >= len(fns) {
			i = len(fns) - 1
		}
		local := p*n - float32(i)
		return b + c*(float32(i)+easeAt(fns[i], local))/n
	}
}

// EaseScale multiplies the eased output by a constant factor. Factors other
// than 1 make the curve land away from the nominal end value; callers that
// need exact endpoints should not scale.
func EaseScale(fn ease.TweenFunc, factor float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*easeAt(fn, t/d)*factor
	}
}

// EaseStepped quantizes progress into the given number of discrete steps.
// steps < 1 is treated as 1.
func EaseStepped(steps int) ease.TweenFunc {
	if steps < 1 {
		steps = 1
	}
	n := float32(steps)
	return func(t, b, c, d float32) float32 {
		p := t / d
		if p >= 1 {
			return b + c
		}
		if p < 0 {
			p = 0
		}
		return b + c*float32(math.Floor(float64(p*n)))/n
	}
}

// EaseElastic returns a configurable elastic ease-out. amplitude controls the
// overshoot (values below 1 are clamped to 1) and period the oscillation
// wavelength as a fraction of the duration (default 0.3 when zero).
func EaseElastic(amplitude, period float64) ease.TweenFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	s := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return func(t, b, c, d float32) float32 {
		p := float64(t / d)
		if p <= 0 {
			return b
		}
		if p >= 1 {
			return b + c
		}
		v := amplitude*math.Pow(2, -10*p)*math.Sin((p-s)*(2*math.Pi)/period) + 1
		return b + c*float32(v)
	}
}

// EaseBezier returns a CSS-style cubic-bezier easing through control points
// (x1, y1) and (x2, y2). The x-for-t inversion uses Newton iteration with a
// bisection fallback for flat derivatives.
func EaseBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	x1 = Clamp(x1, 0, 1)
	x2 = Clamp(x2, 0, 1)
	sample := func(a, b, t float64) float64 {
		// Cubic bezier with implicit endpoints 0 and 1.
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	derivative := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
	}
	solveT := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			dx := sample(x1, x2, t) - x
			if math.Abs(dx) < 1e-6 {
				return t
			}
			dv := derivative(x1, x2, t)
			if math.Abs(dv) < 1e-6 {
				break
			}
			t -= dx / dv
		}
		// Bisection fallback.
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 32 && hi-lo > 1e-6; i++ {
			if sample(x1, x2, t) < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}
	return func(t, b, c, d float32) float32 {
		p := Clamp(float64(t/d), 0, 1)
		if p == 0 {
			return b
		}
		if p == 1 {
			return b + c
		}
		return b + c*float32(sample(y1, y2, solveT(p)))
	}
}
