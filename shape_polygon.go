package shade

import "math"

// Polygon is a gradient of concentric regular polygons around Center with
// one vertex at Angle. Progress is 1 on the boundary of the polygon with
// circumradius Radius. Zero Radius means half the larger region side.
type Polygon struct {
	Center Point
	Angle  float64
	Sides  int
	Radius float64
}

func (Polygon) shapeMarker() {}

// Kind implements Shape.
func (Polygon) Kind() string { return "polygon" }

func compilePolygon(s Polygon, w, h float64) (*evaluator, error) {
	if s.Sides < 3 {
		return nil, configErr("polygon sides", "need at least 3 sides")
	}
	if err := checkPoint("polygon center", s.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("polygon angle", s.Angle); err != nil {
		return nil, err
	}
	radius, err := radiusOr("polygon radius", s.Radius, max(w, h)/2)
	if err != nil {
		return nil, err
	}

	c, a := s.Center, WrapAngle(s.Angle)
	sector := twoPi / float64(s.Sides)
	half := sector / 2
	// Apothem over circumradius.
	apothem := radius * math.Cos(half)

	return &evaluator{progress: func(x, y float64) float64 {
		dx, dy := x-c.X, y-c.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			return 0
		}
		phi := math.Mod(math.Atan2(dy, dx)-a, sector)
		if phi < 0 {
			phi += sector
		}
		// Distance from the center to the edge along this direction.
		edge := apothem / math.Cos(phi-half)
		return d / edge
	}}, nil
}
