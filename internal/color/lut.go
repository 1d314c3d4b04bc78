package color

import "math"

// Transfer tables for ramps that blend 8-bit stops in linear light.
// 256 entries cover the decode direction exactly; 4096 entries give 12-bit
// precision for the encode direction, enough for 8-bit output.
//
// Reference: https://www.w3.org/Graphics/Color/sRGB
var (
	decodeLUT [256]float32
	encodeLUT [4096]uint8
)

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = float32(decode(float64(i) / 255.0))
	}
	for i := range encodeLUT {
		encodeLUT[i] = ToByte(encode(float64(i) / 4095.0))
	}
}

// decode is the sRGB EOTF on [0,1].
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// encode is the inverse of decode on [0,1].
func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearFast converts an sRGB byte to linear light.
//
//	r := SRGBToLinearFast(128) // ~0.2159, not 0.5
func SRGBToLinearFast(s uint8) float32 {
	return decodeLUT[s]
}

// LinearToSRGBFast converts linear light to an sRGB byte.
// Input outside [0,1] is clamped.
//
//	s := LinearToSRGBFast(0.5) // 188, not 128
func LinearToSRGBFast(l float32) uint8 {
	if !(l > 0) {
		return encodeLUT[0]
	}
	if l >= 1 {
		return encodeLUT[4095]
	}
	return encodeLUT[int(l*4095.0+0.5)]
}
