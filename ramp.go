package shade

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Stop is a color at a position along a ramp.
type Stop struct {
	Pos   float64 // Position in the ramp, 0.0 to 1.0
	Color RGBA
}

// RampOption configures a Ramp during creation.
type RampOption func(*rampOptions)

type rampOptions struct {
	space  ColorSpace
	easing Easing
	offset float64
}

func defaultRampOptions() rampOptions {
	return rampOptions{space: SpaceRGB, easing: EaseLinear}
}

// WithColorSpace selects the space used to interpolate between stops.
// The default is SpaceRGB.
func WithColorSpace(s ColorSpace) RampOption {
	return func(o *rampOptions) {
		o.space = s
	}
}

// WithEasing reshapes the fraction between adjacent stops.
// The default is EaseLinear.
func WithEasing(e Easing) RampOption {
	return func(o *rampOptions) {
		o.easing = e
	}
}

// WithOffset shifts lookups cyclically: ColorAt(t) samples the ramp at
// WrapUnit(t+offset). Stepping the offset animates a ramp.
func WithOffset(offset float64) RampOption {
	return func(o *rampOptions) {
		o.offset = offset
	}
}

// Ramp maps a progress value in [0, 1] to a color by interpolating between
// sorted stops. A Ramp is immutable and safe for concurrent use.
type Ramp struct {
	stops []Stop
	opts  rampOptions
}

// NewRamp builds a ramp from stops given in any order. Stops sharing a
// position form a hard edge; among them the last one given wins at that
// exact position. Finite positions outside [0, 1] are clamped.
//
// With no stops the ramp runs from black to white; a single stop yields a
// constant ramp of that color.
func NewRamp(stops []Stop, opts ...RampOption) (*Ramp, error) {
	o := defaultRampOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.space.valid() {
		return nil, configErr("color space", fmt.Sprintf("unknown %v", o.space))
	}
	if !o.easing.valid() {
		return nil, configErr("easing", fmt.Sprintf("unknown %v", o.easing))
	}
	if !finite(o.offset) {
		return nil, configErr("offset", "must be finite")
	}

	sorted := make([]Stop, 0, max(len(stops), 2))
	for i, s := range stops {
		if !finite(s.Pos) {
			return nil, configErr("stop position", fmt.Sprintf("stop %d at %v", i, s.Pos))
		}
		s.Pos = min(max(s.Pos, 0), 1)
		sorted = append(sorted, s)
	}

	switch len(sorted) {
	case 0:
		sorted = append(sorted, Stop{Pos: 0, Color: Black}, Stop{Pos: 1, Color: White})
	case 1:
		c := sorted[0].Color
		sorted = append(sorted[:0], Stop{Pos: 0, Color: c}, Stop{Pos: 1, Color: c})
	default:
		slices.SortStableFunc(sorted, func(a, b Stop) int {
			return cmp.Compare(a.Pos, b.Pos)
		})
	}

	return &Ramp{stops: sorted, opts: o}, nil
}

// NewRampColors spaces colors evenly over [0, 1].
func NewRampColors(colors []RGBA, opts ...RampOption) (*Ramp, error) {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Pos: pos, Color: c}
	}
	return NewRamp(stops, opts...)
}

// Stops returns a copy of the ramp's sorted stops.
func (r *Ramp) Stops() []Stop {
	return slices.Clone(r.stops)
}

// ColorSpace returns the interpolation space.
func (r *Ramp) ColorSpace() ColorSpace { return r.opts.space }

// Easing returns the easing applied between stops.
func (r *Ramp) Easing() Easing { return r.opts.easing }

// Offset returns the cyclic lookup offset.
func (r *Ramp) Offset() float64 { return r.opts.offset }

// RGBAAt returns the color at t. t is clamped to [0, 1] with NaN treated
// as 0. A t equal to a stop position returns that stop's color unblended.
func (r *Ramp) RGBAAt(t float64) RGBA {
	t = clamp01(t)
	if r.opts.offset != 0 {
		t = WrapUnit(t + r.opts.offset)
	}

	stops := r.stops
	i := sort.Search(len(stops), func(i int) bool {
		return stops[i].Pos > t
	})
	if i == 0 {
		return stops[0].Color
	}

	prev := stops[i-1]
	if i == len(stops) || prev.Pos == t {
		return prev.Color
	}

	next := stops[i]
	f := (t - prev.Pos) / (next.Pos - prev.Pos)
	return blend(prev.Color, next.Color, r.opts.easing.Apply(f), r.opts.space)
}

// ColorAt returns the packed color at t. See RGBAAt.
func (r *Ramp) ColorAt(t float64) Pixel {
	return r.RGBAAt(t).Packed()
}

// Table samples the ramp at the n posterize levels Level(0, n) ..
// Level(n-1, n). It returns nil for n < 1.
func (r *Ramp) Table(n int) []Pixel {
	if n < 1 {
		return nil
	}
	table := make([]Pixel, n)
	for i := range table {
		table[i] = r.ColorAt(Level(i, n))
	}
	return table
}

// Reverse returns a ramp with the stops mirrored about 0.5.
func (r *Ramp) Reverse() *Ramp {
	n := len(r.stops)
	stops := make([]Stop, n)
	for i, s := range r.stops {
		stops[n-1-i] = Stop{Pos: 1 - s.Pos, Color: s.Color}
	}
	return &Ramp{stops: stops, opts: r.opts}
}

// WithOptions returns a copy of r with opts applied on top of its current
// settings.
func (r *Ramp) WithOptions(opts ...RampOption) (*Ramp, error) {
	base := []RampOption{
		WithColorSpace(r.opts.space),
		WithEasing(r.opts.easing),
		WithOffset(r.opts.offset),
	}
	return NewRamp(r.stops, append(base, opts...)...)
}
