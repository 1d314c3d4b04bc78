package shade

import (
	"fmt"
	"runtime"
)

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Defaults: whole buffer, automatic strips, continuous ramp
//	r, err := shade.NewRenderer()
//
//	// Four posterized bands in the top-left quarter of a 800x600 buffer
//	r, err := shade.NewRenderer(
//	    shade.WithRegion(shade.Region{Width: 400, Height: 300}),
//	    shade.WithPosterize(4),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds the renderer settings. A copy is taken at the start
// of every render.
type rendererOptions struct {
	region    Region
	strips    int
	posterize int
	levels    bool // posterize is in effect
	dither    float64
}

// defaultOptions returns the default renderer settings.
func defaultOptions() rendererOptions {
	return rendererOptions{strips: defaultStrips()}
}

// defaultStrips is three quarters of the usable CPUs, between 1 and 10.
func defaultStrips() int {
	n := runtime.GOMAXPROCS(0) * 3 / 4
	return min(max(n, 1), 10)
}

func (o *rendererOptions) validate() error {
	if o.strips <= 0 {
		return configErr("strips", fmt.Sprintf("need at least 1, got %d", o.strips))
	}
	if o.levels && o.posterize < 1 {
		return configErr("posterize", fmt.Sprintf("need at least 1 level, got %d", o.posterize))
	}
	return checkDither(o.dither)
}

func checkDither(d float64) error {
	if !finite(d) || d < 0 || d > 1 {
		return configErr("dither", fmt.Sprintf("strength must be in [0, 1], got %v", d))
	}
	return nil
}

// WithRegion restricts rendering to a sub-rectangle of the buffer.
// The zero Region (the default) renders the whole buffer.
func WithRegion(r Region) RendererOption {
	return func(o *rendererOptions) {
		o.region = r
	}
}

// WithStrips sets how many horizontal strips a render is split into.
// Strips run in parallel; the count is clamped to the region height.
func WithStrips(n int) RendererOption {
	return func(o *rendererOptions) {
		o.strips = n
	}
}

// WithPosterize quantizes progress into n flat color bands.
func WithPosterize(n int) RendererOption {
	return func(o *rendererOptions) {
		o.posterize = n
		o.levels = true
	}
}

// WithDither adds interleaved gradient noise of the given strength to
// progress before the color lookup, breaking up banding in smooth ramps.
// Dithering is ignored while posterizing.
func WithDither(strength float64) RendererOption {
	return func(o *rendererOptions) {
		o.dither = strength
	}
}
