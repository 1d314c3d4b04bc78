package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// source is a single octave of base noise with output in roughly [-1, 1].
type source interface {
	eval(x, y float64) float64
}

func newSource(t Type, seed int64) source {
	switch t {
	case Perlin:
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
	case Value:
		return valueSource{seed: uint32(seed) ^ uint32(seed>>32)}
	case Cellular:
		return cellularSource{seed: uint32(seed) ^ uint32(seed>>32)}
	default:
		return simplexSource{n: opensimplex.New(seed)}
	}
}

type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) eval(x, y float64) float64 {
	return clampUnit(s.n.Eval2(x, y))
}

// Single-iteration Perlin peaks near ±√2/2; scale to fill [-1, 1].
type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) eval(x, y float64) float64 {
	return clampUnit(s.p.Noise2D(x, y) * math.Sqrt2)
}

func clampUnit(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	case v != v:
		return 0
	}
	return v
}
