package shade

import "math"

// Bin returns the index in [0, n) of the posterize band containing t.
// t is clamped to [0, 1] with NaN treated as 0. n must be at least 1.
func Bin(t float64, n int) int {
	return min(int(math.Floor(clamp01(t)*float64(n))), n-1)
}

// Level returns the representative progress value of band i out of n.
// Levels run evenly from 0 to 1 so the first and last bands hit the ramp
// endpoints; a single band sits at 0.5.
func Level(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Quantize snaps t to one of n evenly spaced levels.
func Quantize(t float64, n int) (float64, error) {
	if n < 1 {
		return 0, configErr("posterize", "level count must be at least 1")
	}
	return Level(Bin(t, n), n), nil
}
