package ember

import "math/rand/v2"

// Vec2 is a 2D vector. Used by LerpVec2 and by host adapters that map a
// two-component binding to screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range.
// Used by Emitter for randomized lifetimes and by spawn callbacks.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 limits t to [0, 1].
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
