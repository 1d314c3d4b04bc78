package shade

import (
	"fmt"
	"image/color"

	icolor "github.com/gogpu/shade/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: icolor.ToByte(c.R),
		G: icolor.ToByte(c.G),
		B: icolor.ToByte(c.B),
		A: icolor.ToByte(c.A),
	}
}

// Packed quantizes the color to a packed pixel.
func (c RGBA) Packed() Pixel {
	return Pack(icolor.ToByte(c.R), icolor.ToByte(c.G), icolor.ToByte(c.B), icolor.ToByte(c.A))
}

// Lerp performs per-component linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex parses a color from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, badHex(hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, badHex(hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, badHex(hex)
	}

	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for
// package-level color tables.
func MustHex(hex string) RGBA {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func badHex(s string) error {
	return configErr("color", fmt.Sprintf("malformed hex color %q", s))
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = NewRGBA(0, 0, 0, 0)
)

// Pixel is a packed 8-bit-per-channel color laid out as 0xAARRGGBB.
// Channels are not premultiplied.
type Pixel uint32

// Pack composes a Pixel from 8-bit channels.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(icolor.Pack(r, g, b, a))
}

// Unpack splits p into its 8-bit channels. It is the inverse of Pack.
func (p Pixel) Unpack() (r, g, b, a uint8) {
	return icolor.Unpack(uint32(p))
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// channels.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := p.Unpack()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Float converts p to a float color.
func (p Pixel) Float() RGBA {
	r, g, b, a := p.Unpack()
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func (p Pixel) String() string {
	return fmt.Sprintf("#%08x", uint32(p))
}
