package shade

import "math"

// Conic sweeps the ramp once around Center, starting (and seamed) at Angle.
type Conic struct {
	Center Point
	Angle  float64
}

func (Conic) shapeMarker() {}

// Kind implements Shape.
func (Conic) Kind() string { return "conic" }

// Spiral is a conic sweep whose phase advances with distance from Center.
// At distance Radius the phase has advanced by Windings full turns;
// Curviness bends the arms (1 is an Archimedean spiral). Windings may be
// fractional or negative.
//
// Zero Radius means half the region diagonal; zero Curviness means 1.
type Spiral struct {
	Center    Point
	Angle     float64
	Windings  float64
	Curviness float64
	Radius    float64
}

func (Spiral) shapeMarker() {}

// Kind implements Shape.
func (Spiral) Kind() string { return "spiral" }

func compileConic(s Conic) (*evaluator, error) {
	if err := checkPoint("conic center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("conic angle", s.Angle); err != nil {
		return nil, err
	}

	c, a := s.Center, WrapAngle(s.Angle)
	return &evaluator{periodic: true, progress: func(x, y float64) float64 {
		return (math.Atan2(y-c.Y, x-c.X) - a) / twoPi
	}}, nil
}

func compileSpiral(s Spiral, w, h float64) (*evaluator, error) {
	if err := checkPoint("spiral center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("spiral angle", s.Angle, s.Windings); err != nil {
		return nil, err
	}
	radius, err := radiusOr("spiral radius", s.Radius, halfDiagonal(w, h))
	if err != nil {
		return nil, err
	}
	curviness, err := radiusOr("spiral curviness", s.Curviness, 1)
	if err != nil {
		return nil, err
	}

	c, a := s.Center, WrapAngle(s.Angle)
	exp, windings := 1/curviness, s.Windings
	return &evaluator{periodic: true, progress: func(x, y float64) float64 {
		dx, dy := x-c.X, y-c.Y
		sweep := (math.Atan2(dy, dx) - a) / twoPi
		return sweep + math.Pow(math.Hypot(dx, dy)/radius, exp)*windings
	}}, nil
}
