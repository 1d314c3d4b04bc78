package shade

import "math"

// Cross measures the smaller of the two axis offsets in the frame turned by
// Angle, producing a plus-shaped gradient. Radius scales the metric; zero
// means half the larger region side. A positive Repeat folds the metric into
// that many bands per Radius.
type Cross struct {
	Center Point
	Angle  float64
	Radius float64
	Repeat float64
}

func (Cross) shapeMarker() {}

// Kind implements Shape.
func (Cross) Kind() string { return "cross" }

// Diamond measures the Manhattan distance |u|+|v| in the frame turned by
// Angle. Radius and Repeat behave as for Cross.
type Diamond struct {
	Center Point
	Angle  float64
	Radius float64
	Repeat float64
}

func (Diamond) shapeMarker() {}

// Kind implements Shape.
func (Diamond) Kind() string { return "diamond" }

func crossMetric(u, v float64) float64 {
	return min(math.Abs(u), math.Abs(v))
}

func diamondMetric(u, v float64) float64 {
	return math.Abs(u) + math.Abs(v)
}

func compileAxial(center Point, angle, radius, repeat, w, h float64, metric func(u, v float64) float64) (*evaluator, error) {
	if err := checkPoint("center", center); err != nil {
		return nil, err
	}
	if err := checkFinite("angle", angle); err != nil {
		return nil, err
	}
	r, err := radiusOr("radius", radius, max(w, h)/2)
	if err != nil {
		return nil, err
	}
	if err := checkFinite("repeat", repeat); err != nil {
		return nil, err
	}
	if repeat < 0 {
		return nil, configErr("repeat", "must not be negative")
	}

	f := newFrame(center, WrapAngle(angle))
	scale := 1 / r
	periodic := repeat > 0
	if periodic {
		scale *= repeat
	}
	return &evaluator{periodic: periodic, progress: func(x, y float64) float64 {
		u, v := f.apply(x, y)
		return metric(u, v) * scale
	}}, nil
}
