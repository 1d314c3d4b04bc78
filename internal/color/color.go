// Package color holds the packed pixel layout and the sRGB transfer tables
// shared by shade's ramps and pixel buffers.
package color

// Packed pixels are 0xAARRGGBB.
const (
	shiftA = 24
	shiftR = 16
	shiftG = 8
)

// Pack composes four 8-bit channels into a packed pixel.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<shiftA | uint32(r)<<shiftR | uint32(g)<<shiftG | uint32(b)
}

// Unpack splits a packed pixel into its 8-bit channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	//nolint:gosec // G115: each channel is masked to 8 bits
	return uint8(p >> shiftR), uint8(p >> shiftG), uint8(p), uint8(p >> shiftA)
}

// ToByte maps a [0,1] component to [0,255] with rounding.
// Out-of-range and NaN inputs are clamped.
func ToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// LerpLinear blends two sRGB-encoded channel bytes in linear light.
func LerpLinear(a, b uint8, t float64) uint8 {
	la := SRGBToLinearFast(a)
	lb := SRGBToLinearFast(b)
	return LinearToSRGBFast(la + float32(t)*(lb-la))
}
