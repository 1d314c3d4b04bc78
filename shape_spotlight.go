package shade

import "math"

// Spotlight blends two radial falloffs around A and B. Each falloff reaches
// 1 at its radius; the result weights each by the distance to the other
// point. Zero radii mean |A-B|.
type Spotlight struct {
	A, B             Point
	RadiusA, RadiusB float64
}

func (Spotlight) shapeMarker() {}

// Kind implements Shape.
func (Spotlight) Kind() string { return "spotlight" }

// Beam is a cone of light opening from Origin toward Angle with total
// angular width Spread (0 < Spread < π). Progress is 0 along the beam axis
// and 1 at the cone edge and behind the origin.
type Beam struct {
	Origin Point
	Angle  float64
	Spread float64
}

func (Beam) shapeMarker() {}

// Kind implements Shape.
func (Beam) Kind() string { return "beam" }

func compileSpotlight(s Spotlight) (*evaluator, error) {
	if err := checkPoint("spotlight a", s.A); err != nil {
		return nil, err
	}
	if err := checkPoint("spotlight b", s.B); err != nil {
		return nil, err
	}
	dist := s.A.Distance(s.B)
	if dist == 0 {
		return nil, configErr("spotlight", "points coincide")
	}
	ra, err := radiusOr("spotlight radius", s.RadiusA, dist)
	if err != nil {
		return nil, err
	}
	rb, err := radiusOr("spotlight radius", s.RadiusB, dist)
	if err != nil {
		return nil, err
	}

	a, b := s.A, s.B
	return &evaluator{progress: func(x, y float64) float64 {
		da := math.Hypot(x-a.X, y-a.Y)
		db := math.Hypot(x-b.X, y-b.Y)
		fa := clamp01(da / ra)
		fb := clamp01(db / rb)
		return (db*fa + da*fb) / (da + db)
	}}, nil
}

func compileBeam(s Beam) (*evaluator, error) {
	if err := checkPoint("beam origin", s.Origin); err != nil {
		return nil, err
	}
	if err := checkFinite("beam angle", s.Angle, s.Spread); err != nil {
		return nil, err
	}
	if s.Spread <= 0 || s.Spread >= math.Pi {
		return nil, configErr("beam spread", "must be in (0, π)")
	}

	f := newFrame(s.Origin, WrapAngle(s.Angle))
	slope := math.Tan(s.Spread / 2)
	return &evaluator{progress: func(x, y float64) float64 {
		forward, lateral := f.apply(x, y)
		if forward <= 0 {
			if forward == 0 && lateral == 0 {
				return 0
			}
			return 1
		}
		return math.Abs(lateral) / (forward * slope)
	}}, nil
}
