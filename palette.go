package shade

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palettes are generated in HSV around a random base hue. Saturation and
// value vary slightly per color within [paletteMin, 1].
const (
	paletteMin      = 0.75
	paletteVarMax   = 0.1
	goldenConjugate = 0.6180339887498949
)

// Complementary returns two colors with opposite hues.
func Complementary(rng *rand.Rand) []RGBA {
	return hueSteps(rng, 2, 1.0/2)
}

// Triadic returns three colors with hues 120° apart.
func Triadic(rng *rand.Rand) []RGBA {
	return hueSteps(rng, 3, 1.0/3)
}

// Tetradic returns four colors with hues 90° apart.
func Tetradic(rng *rand.Rand) []RGBA {
	return hueSteps(rng, 4, 1.0/4)
}

// RandomColors returns n colors whose hues step by the golden ratio
// conjugate, which keeps successive hues well separated.
func RandomColors(n int, rng *rand.Rand) []RGBA {
	return hueSteps(rng, n, goldenConjugate)
}

// HappyColors returns n pastel colors spread over hue.
func HappyColors(n int, rng *rand.Rand) []RGBA {
	if n <= 0 {
		return nil
	}
	pal := colorful.FastHappyPaletteWithRand(n, rng)
	out := make([]RGBA, len(pal))
	for i, c := range pal {
		c = c.Clamped()
		out[i] = RGB(c.R, c.G, c.B)
	}
	return out
}

func hueSteps(rng *rand.Rand, n int, step float64) []RGBA {
	if n <= 0 {
		return nil
	}
	h := rng.Float64()
	s := paletteMin + rng.Float64()*(1-paletteMin)
	v := paletteMin + rng.Float64()*(1-paletteMin)

	out := make([]RGBA, n)
	for i := range out {
		si := min(max(s+jitter(rng), paletteMin), 1)
		vi := min(max(v+jitter(rng), paletteMin), 1)
		c := colorful.Hsv(h*360, si, vi).Clamped()
		out[i] = RGB(c.R, c.G, c.B)
		h = math.Mod(h+step, 1)
	}
	return out
}

func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * paletteVarMax
}
