package shade

import "math"

const twoPi = 2 * math.Pi

// angleSnap is the tolerance within which a wrapped angle is snapped to 0,
// so that 0, 2π, 4π, ... all yield exactly the same angle.
const angleSnap = 1e-9

// WrapAngle reduces a (radians) into [0, 2π). Results within 1e-9 of 0 or
// 2π are returned as exactly 0. Non-finite input yields 0.
func WrapAngle(a float64) float64 {
	if !finite(a) {
		return 0
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a < angleSnap || twoPi-a < angleSnap {
		return 0
	}
	return a
}

// WrapUnit returns the fractional part of t in [0, 1). Non-finite input
// yields 0.
func WrapUnit(t float64) float64 {
	if !finite(t) {
		return 0
	}
	t -= math.Floor(t)
	if t >= 1 {
		return 0
	}
	return t
}

// clamp01 restricts t to [0, 1], mapping NaN to 0.
func clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
