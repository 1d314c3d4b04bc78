package noise

import "math"

// Large primes used to decorrelate lattice axes before hashing.
const (
	primeX uint32 = 501125321
	primeY uint32 = 1136930381
)

func hash2(seed, xp, yp uint32) uint32 {
	return (seed ^ xp ^ yp) * 0x27d4eb2d
}

// unitHash maps a hash to [-1, 1].
func unitHash(h uint32) float64 {
	h *= h
	h ^= h << 19
	return float64(int32(h)) / 2147483648.0
}

func quintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// valueSource interpolates hashed lattice values with a quintic fade.
type valueSource struct {
	seed uint32
}

func (s valueSource) eval(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xs, ys := quintic(x-fx), quintic(y-fy)

	x0 := uint32(int32(fx)) * primeX
	y0 := uint32(int32(fy)) * primeY
	x1 := x0 + primeX
	y1 := y0 + primeY

	top := lerp(unitHash(hash2(s.seed, x0, y0)), unitHash(hash2(s.seed, x1, y0)), xs)
	bottom := lerp(unitHash(hash2(s.seed, x0, y1)), unitHash(hash2(s.seed, x1, y1)), xs)
	return lerp(top, bottom, ys)
}

// Feature points stay within this distance of their cell center so the
// 3x3 neighborhood always contains the two nearest points.
const cellJitter = 0.45

// cellularSource is Worley noise returning d1/d2 - 1 over squared
// distances to the two nearest feature points, in [-1, 0].
type cellularSource struct {
	seed uint32
}

func (s cellularSource) eval(x, y float64) float64 {
	cx, cy := math.Floor(x), math.Floor(y)
	d1, d2 := math.MaxFloat64, math.MaxFloat64

	for j := -1.0; j <= 1; j++ {
		for i := -1.0; i <= 1; i++ {
			gx, gy := cx+i, cy+j
			h := hash2(s.seed, uint32(int32(gx))*primeX, uint32(int32(gy))*primeY)
			jx := float64(h&0xffff)/0xffff*2 - 1
			jy := float64(h>>16)/0xffff*2 - 1

			dx := gx + 0.5 + jx*cellJitter - x
			dy := gy + 0.5 + jy*cellJitter - y
			d := dx*dx + dy*dy

			if d < d1 {
				d1, d2 = d, d1
			} else if d < d2 {
				d2 = d
			}
		}
	}

	if d2 == 0 {
		return -1
	}
	return d1/d2 - 1
}
