package shade

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// tolerance for floating point comparisons
const colorEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestPackUnpack(t *testing.T) {
	p := Pack(0x11, 0x22, 0x33, 0x44)
	if p != 0x44112233 {
		t.Fatalf("Pack = %#08x, want 0x44112233", uint32(p))
	}
	r, g, b, a := p.Unpack()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("Unpack = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"short", "#f00", Red},
		{"short alpha", "0f0f", Green},
		{"long", "#0000ff", Blue},
		{"long upper", "FFFFFF", White},
		{"long alpha", "00ff0080", NewRGBA(0, 1, 0, 128.0/255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q): %v", tt.in, err)
			}
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "12345", "#ggg", "12x456"} {
		if _, err := Hex(in); !errors.Is(err, ErrConfig) {
			t.Errorf("Hex(%q) error = %v, want ErrConfig", in, err)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex did not panic on malformed input")
		}
	}()
	MustHex("nope")
}

func TestRGBAPacked(t *testing.T) {
	tests := []struct {
		c    RGBA
		want Pixel
	}{
		{White, 0xffffffff},
		{Black, 0xff000000},
		{Transparent, 0},
		{NewRGBA(0.5, 0, 1, 1), 0xff8000ff},
		{NewRGBA(2, -1, math.NaN(), 1), 0xffff0000},
	}
	for _, tt := range tests {
		if got := tt.c.Packed(); got != tt.want {
			t.Errorf("%+v.Packed() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestPixelColorModel(t *testing.T) {
	r, g, b, a := Pack(255, 0, 0, 255).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}

	// Premultiplied per color.Color.
	r, _, _, a = Pack(255, 0, 0, 0).RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent RGBA() r=%#x a=%#x, want 0", r, a)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 51, A: 128})
	want := NewRGBA(1, 0, 0.2, 128.0/255)
	if !colorsEqual(c, want, 1e-9) {
		t.Errorf("FromColor = %+v, want %+v", c, want)
	}
	if got := c.Color().(color.NRGBA); got != (color.NRGBA{R: 255, G: 0, B: 51, A: 128}) {
		t.Errorf("Color() = %+v", got)
	}
}

func TestPixelFloat(t *testing.T) {
	if got := Pack(255, 0, 0, 255).Float(); !colorsEqual(got, Red, 1e-9) {
		t.Errorf("Float() = %+v, want red", got)
	}
	if got := Pixel(0xff102030).String(); got != "#ff102030" {
		t.Errorf("String() = %q", got)
	}
}

func TestRGBALerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	if !colorsEqual(got, RGB(0.25, 0.25, 0.25), 1e-12) {
		t.Errorf("Lerp = %+v", got)
	}
}
