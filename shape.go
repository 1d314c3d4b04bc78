package shade

import (
	"fmt"
	"math"
)

// Shape describes the geometry of a gradient: how a pixel position maps to
// a progress value in [0, 1] along a ramp.
// This is a sealed interface - only types in this package implement it.
//
// Coordinates are region-local pixels: (0, 0) is the top-left corner of the
// region being rendered, not of the buffer, and pixel (x, y) is sampled at
// its center (x+0.5, y+0.5). Angles are radians measured
// from the +x axis toward +y (clockwise on screen).
//
// Supported shapes:
//   - Linear, LinearPoints: parallel bands
//   - Radial: concentric circles
//   - Conic, Spiral: sweeps around a center (periodic)
//   - Polygon: concentric regular polygons
//   - Cross, Diamond: axis-distance and Manhattan metrics
//   - Noise, FractalNoise, UniformNoise: procedural noise
//   - Spotlight, Beam: two-point falloff and cone light
//   - Hourglass: pinched bow shape
type Shape interface {
	// shapeMarker is an unexported method that seals this interface.
	shapeMarker()

	// Kind returns a short lower-case name of the shape family.
	Kind() string
}

// evaluator is a compiled shape. progress is pure and safe to call from
// many goroutines.
type evaluator struct {
	progress func(x, y float64) float64
	periodic bool
}

// at returns the progress at (x, y) normalized into [0, 1].
func (e *evaluator) at(x, y float64) float64 {
	return e.norm(e.progress(x, y))
}

// norm wraps periodic progress and clamps the rest.
func (e *evaluator) norm(t float64) float64 {
	if e.periodic {
		return WrapUnit(t)
	}
	return clamp01(t)
}

// compile validates s against a w×h region and builds its evaluator.
func compile(s Shape, w, h int) (*evaluator, error) {
	fw, fh := float64(w), float64(h)
	switch s := s.(type) {
	case Linear:
		return compileLinear(s, fw, fh)
	case LinearPoints:
		return compileLinearPoints(s)
	case Radial:
		return compileRadial(s)
	case Conic:
		return compileConic(s)
	case Spiral:
		return compileSpiral(s, fw, fh)
	case Polygon:
		return compilePolygon(s, fw, fh)
	case Cross:
		return compileAxial(s.Center, s.Angle, s.Radius, s.Repeat, fw, fh, crossMetric)
	case Diamond:
		return compileAxial(s.Center, s.Angle, s.Radius, s.Repeat, fw, fh, diamondMetric)
	case Noise:
		return compileNoise(s.NoiseParams, noiseSimplex)
	case FractalNoise:
		return compileNoise(s.NoiseParams, noiseFractal)
	case UniformNoise:
		return compileNoise(s.NoiseParams, noiseUniform)
	case Spotlight:
		return compileSpotlight(s)
	case Beam:
		return compileBeam(s)
	case Hourglass:
		return compileHourglass(s, fw, fh)
	case nil:
		return nil, configErr("shape", "nil shape")
	default:
		return nil, configErr("shape", fmt.Sprintf("unsupported shape %T", s))
	}
}

// checkFinite rejects NaN and infinite parameters.
func checkFinite(param string, vs ...float64) error {
	for _, v := range vs {
		if !finite(v) {
			return configErr(param, fmt.Sprintf("must be finite, got %v", v))
		}
	}
	return nil
}

func checkPoint(param string, p Point) error {
	if !p.finite() {
		return configErr(param, fmt.Sprintf("must be finite, got (%v, %v)", p.X, p.Y))
	}
	return nil
}

// radiusOr validates a radius and substitutes def for zero.
func radiusOr(param string, r, def float64) (float64, error) {
	if err := checkFinite(param, r); err != nil {
		return 0, err
	}
	if r < 0 {
		return 0, configErr(param, "must not be negative")
	}
	if r == 0 {
		return def, nil
	}
	return r, nil
}

func halfDiagonal(w, h float64) float64 {
	return math.Hypot(w, h) / 2
}
