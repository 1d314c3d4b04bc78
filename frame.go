package shade

import (
	"math"

	"golang.org/x/image/math/f64"
)

// frame maps region pixel coordinates into a shape's local frame: the
// origin moves to a center point and the axes turn by an angle, so the
// local u axis points along the angle and v is perpendicular to it.
type frame f64.Aff3

func newFrame(center Point, angle float64) frame {
	sin, cos := math.Sincos(angle)
	return frame{
		cos, sin, -cos*center.X - sin*center.Y,
		-sin, cos, sin*center.X - cos*center.Y,
	}
}

func (f *frame) apply(x, y float64) (u, v float64) {
	return f[0]*x + f[1]*y + f[2], f[3]*x + f[4]*y + f[5]
}
