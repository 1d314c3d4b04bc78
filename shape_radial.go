package shade

import "math"

// Radial is a gradient of concentric circles around Center. Progress is 0
// at distance Inner and 1 at distance Outer. Outer may be smaller than
// Inner to invert the ramp, but they must differ.
type Radial struct {
	Center       Point
	Inner, Outer float64
}

func (Radial) shapeMarker() {}

// Kind implements Shape.
func (Radial) Kind() string { return "radial" }

// RadialBetween returns the radial gradient centered on start whose ramp
// ends at end. Coincident points produce a degenerate Radial that fails to
// render.
func RadialBetween(start, end Point) Radial {
	return Radial{Center: start, Outer: start.Distance(end)}
}

func compileRadial(s Radial) (*evaluator, error) {
	if err := checkPoint("radial center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("radial radius", s.Inner, s.Outer); err != nil {
		return nil, err
	}
	if s.Inner < 0 || s.Outer < 0 {
		return nil, configErr("radial radius", "must not be negative")
	}
	if s.Outer == s.Inner {
		return nil, configErr("radial radius", "inner and outer radius coincide")
	}

	c := s.Center
	inner, span := s.Inner, s.Outer-s.Inner
	return &evaluator{progress: func(x, y float64) float64 {
		return (math.Hypot(x-c.X, y-c.Y) - inner) / span
	}}, nil
}
