package shade

import "math"

// Linear is a gradient of parallel bands perpendicular to Angle, centered
// on Center. With Length 1 the ramp spans the projection of the whole region
// onto the gradient direction, so angle 0 centered in a region of width w
// yields progress x/w at horizontal position x. Larger Length stretches the ramp.
type Linear struct {
	Center Point
	Angle  float64
	Length float64
}

func (Linear) shapeMarker() {}

// Kind implements Shape.
func (Linear) Kind() string { return "linear" }

// LinearPoints is a linear gradient running from Start (progress 0) to End
// (progress 1).
type LinearPoints struct {
	Start, End Point
}

func (LinearPoints) shapeMarker() {}

// Kind implements Shape.
func (LinearPoints) Kind() string { return "linear" }

func compileLinear(s Linear, w, h float64) (*evaluator, error) {
	if err := checkPoint("linear center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("linear angle", s.Angle); err != nil {
		return nil, err
	}
	if !(s.Length > 0) || math.IsInf(s.Length, 1) {
		return nil, configErr("linear length", "must be finite and positive")
	}

	sin, cos := math.Sincos(WrapAngle(s.Angle))
	span := s.Length * (math.Abs(w*cos) + math.Abs(h*sin))
	cx, cy := s.Center.X, s.Center.Y

	return &evaluator{progress: func(x, y float64) float64 {
		return 0.5 + ((x-cx)*cos+(y-cy)*sin)/span
	}}, nil
}

func compileLinearPoints(s LinearPoints) (*evaluator, error) {
	if err := checkPoint("linear start", s.Start); err != nil {
		return nil, err
	}
	if err := checkPoint("linear end", s.End); err != nil {
		return nil, err
	}
	d := s.End.Sub(s.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return nil, configErr("linear points", "start and end coincide")
	}
	start := s.Start

	return &evaluator{progress: func(x, y float64) float64 {
		return ((x-start.X)*d.X + (y-start.Y)*d.Y) / l2
	}}, nil
}
