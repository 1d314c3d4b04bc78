package color

import (
	"math"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       uint32
	}{
		{"opaque black", 0, 0, 0, 255, 0xFF000000},
		{"opaque white", 255, 255, 255, 255, 0xFFFFFFFF},
		{"red", 255, 0, 0, 255, 0xFFFF0000},
		{"half green", 0, 128, 0, 128, 0x80008000},
		{"transparent", 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Fatalf("Pack = %#08x, want %#08x", got, tt.want)
			}
			r, g, b, a := Unpack(got)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("Unpack(%#08x) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					got, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-3, 0},
		{7, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}
	for _, tt := range tests {
		if got := ToByte(tt.in); got != tt.want {
			t.Errorf("ToByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLerpLinearEndpoints(t *testing.T) {
	for _, c := range []uint8{0, 17, 128, 200, 255} {
		if got := LerpLinear(c, 255-c, 0); absDiff(got, c) > 1 {
			t.Errorf("LerpLinear(%d, %d, 0) = %d", c, 255-c, got)
		}
		if got := LerpLinear(c, 255-c, 1); absDiff(got, 255-c) > 1 {
			t.Errorf("LerpLinear(%d, %d, 1) = %d", c, 255-c, got)
		}
	}
	// Linear-light midpoint of black and white is ~188 in sRGB.
	if got := LerpLinear(0, 255, 0.5); absDiff(got, 188) > 1 {
		t.Errorf("LerpLinear(0, 255, 0.5) = %d, want ~188", got)
	}
}

func TestSRGBToLinearAccuracy(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := SRGBToLinearFast(uint8(i))
		slow := srgbToLinearRef(uint8(i))
		if d := math.Abs(float64(fast - slow)); d > 1e-4 {
			t.Errorf("sRGB %d: fast=%f slow=%f", i, fast, slow)
		}
	}
}

func TestLinearToSRGBAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		l := float32(i) / 1000
		if d := absDiff(LinearToSRGBFast(l), linearToSRGBRef(l)); d > 1 {
			t.Errorf("linear %f: fast=%d slow=%d", l, LinearToSRGBFast(l), linearToSRGBRef(l))
		}
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := uint8(i)
		if got := LinearToSRGBFast(SRGBToLinearFast(s)); absDiff(got, s) > 1 {
			t.Errorf("round trip %d -> %d", s, got)
		}
	}
}

func TestTablesMonotonic(t *testing.T) {
	if decodeLUT[0] != 0 || decodeLUT[255] < 0.99 {
		t.Errorf("decode table endpoints = %f, %f", decodeLUT[0], decodeLUT[255])
	}
	if encodeLUT[0] != 0 || encodeLUT[4095] != 255 {
		t.Errorf("encode table endpoints = %d, %d", encodeLUT[0], encodeLUT[4095])
	}
	for i := 1; i < len(decodeLUT); i++ {
		if decodeLUT[i] < decodeLUT[i-1] {
			t.Fatalf("decode table not monotonic at %d", i)
		}
	}
	for i := 1; i < len(encodeLUT); i++ {
		if encodeLUT[i] < encodeLUT[i-1] {
			t.Fatalf("encode table not monotonic at %d", i)
		}
	}
}

func TestLinearToSRGBClamp(t *testing.T) {
	if got := LinearToSRGBFast(-0.5); got != 0 {
		t.Errorf("LinearToSRGBFast(-0.5) = %d, want 0", got)
	}
	if got := LinearToSRGBFast(1.5); got != 255 {
		t.Errorf("LinearToSRGBFast(1.5) = %d, want 255", got)
	}
}

func BenchmarkLerpLinear(b *testing.B) {
	var out uint8
	for i := 0; b.Loop(); i++ {
		out = LerpLinear(uint8(i), uint8(255-i), 0.37)
	}
	_ = out
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// srgbToLinearRef is the math.Pow reference for SRGBToLinearFast.
func srgbToLinearRef(s uint8) float32 {
	return float32(decode(float64(s) / 255.0))
}

// linearToSRGBRef is the math.Pow reference for LinearToSRGBFast.
func linearToSRGBRef(l float32) uint8 {
	lf := min(max(float64(l), 0), 1)
	return ToByte(encode(lf))
}
