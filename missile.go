package cinder

import "math"

// Seeded "missile" curves. A spell id string deterministically selects the
// direction and asymmetry of a wobble applied perpendicular to the straight
// from→to path, so the same spell always flies the same way on every client.

// SeedFromID folds a string into a deterministic seed in [0, 1) using a
// rolling 32-bit hash of the character codes, modulo 10000.
func SeedFromID(id string) float64 {
	var h int32
	for _, r := range id {
		h = h*31 + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return float64(h%10000) / 10000
}

// missileSeeds derives the three sub-seeds used by MissileMotion: travel
// direction, asymmetry, and waveform shape. The shape seed is derived but
// currently unused — the editor pins the S-curve (see MissileMotion).
func missileSeeds(id string) (dir, asym, shape float64) {
	return SeedFromID(id + "/dir"), SeedFromID(id + "/asym"), SeedFromID(id + "/shape")
}

// Curve waveforms. Each maps progress in [0, 1] to a lateral offset factor in
// [-1, 1] and is exactly zero at both endpoints, so seeded paths always start
// at from and end at to. asym skews the weighting along the path; 0 is
// symmetric.
//
// All five are live, tested code paths. MissileMotion only selects
// CurveSCurve today; that is a policy choice of the editor, not a constraint
// of the formulas.

// CurveValue evaluates one waveform at progress p with asymmetry asym.
func CurveValue(shape CurveShape, p, asym float64) float64 {
	p = Clamp(p, 0, 1)
	switch shape {
	case CurveSingleArc:
		return math.Sin(p*math.Pi) * skew(p, asym)
	case CurveSCurve:
		return math.Sin(p*2*math.Pi) * skew(p, asym)
	case CurveTripleWave:
		return math.Sin(p*3*math.Pi) * skew(p, asym)
	case CurveDoubleArc:
		// Two humps with the second scaled down by the asymmetry factor.
		v := math.Sin(p * 2 * math.Pi)
		if p > 0.5 {
			v *= 1 - 0.5*Clamp(asym, 0, 1)
		}
		return v
	case CurveDecaying:
		// Half-wave fading out linearly toward the target.
		return math.Sin(p*math.Pi) * (1 - p) * skew(p, asym)
	}
	return 0
}

// skew weights a waveform toward the start (asym < 0) or end (asym > 0) of
// the path without disturbing the zero endpoints.
func skew(p, asym float64) float64 {
	return 1 + asym*(p-0.5)
}

// missileAmplitude is the lateral wobble as a fraction of the from→to
// distance.
const missileAmplitude = 0.10

// MissileMotion builds the seeded curve path for a spell id. The id picks the
// wobble direction and asymmetry; the waveform is pinned to CurveSCurve,
// matching current editor behavior. Use MissileMotionShape to select another
// waveform explicitly.
func MissileMotion(from, to Point, spellID string) MotionFunc {
	return MissileMotionShape(from, to, spellID, CurveSCurve)
}

// MissileMotionShape is MissileMotion with an explicit waveform selector.
func MissileMotionShape(from, to Point, spellID string, shape CurveShape) MotionFunc {
	dirSeed, asymSeed, _ := missileSeeds(spellID)
	dir := 1.0
	if dirSeed < 0.5 {
		dir = -1
	}
	// Asymmetry in [-0.5, 0.5].
	asym := asymSeed - 0.5
	amp := Distance(from, to) * missileAmplitude * dir
	normal := to.Sub(from).Normalize().Perp()
	return func(p float64) Point {
		p = Clamp(p, 0, 1)
		base := LerpPoint(from, to, p)
		return base.Add(normal.Scale(amp * CurveValue(shape, p, asym)))
	}
}
