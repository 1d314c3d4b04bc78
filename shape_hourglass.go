package shade

import "math"

// Hourglass is a bow-tie gradient around Center. With Angle 0 the two lobes
// open upward and downward. Pinch widens the waist; Roundness softens the
// lobes (zero means 1). Zero Radius means half the larger region side.
type Hourglass struct {
	Center    Point
	Angle     float64
	Radius    float64
	Pinch     float64
	Roundness float64
}

func (Hourglass) shapeMarker() {}

// Kind implements Shape.
func (Hourglass) Kind() string { return "hourglass" }

func compileHourglass(s Hourglass, w, h float64) (*evaluator, error) {
	if err := checkPoint("hourglass center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("hourglass angle", s.Angle); err != nil {
		return nil, err
	}
	radius, err := radiusOr("hourglass radius", s.Radius, max(w, h)/2)
	if err != nil {
		return nil, err
	}
	pinch, err := radiusOr("hourglass pinch", s.Pinch, 0)
	if err != nil {
		return nil, err
	}
	round, err := radiusOr("hourglass roundness", s.Roundness, 1)
	if err != nil {
		return nil, err
	}

	// The u axis runs along the hourglass centerline.
	f := newFrame(s.Center, WrapAngle(s.Angle+math.Pi/2))
	p2 := pinch * pinch
	return &evaluator{progress: func(x, y float64) float64 {
		u, v := f.apply(x, y)
		m := math.Abs(u) + math.Abs(v)
		if u == 0 {
			if m == 0 && p2 == 0 {
				return 0
			}
			return 1
		}
		z := v / u
		return math.Sqrt((m*m+p2)*(z*z+round)) / radius
	}}, nil
}
