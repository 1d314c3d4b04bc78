package shade

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/shade/internal/parallel"
	"github.com/gogpu/shade/noise"
)

// sharedPool runs strips for every Renderer in the process.
var sharedPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Renderer fills buffers with gradients. Its settings apply to subsequent
// renders; each render works from a snapshot taken when it starts, so a
// Renderer is safe for concurrent use.
type Renderer struct {
	mu   sync.Mutex
	opts rendererOptions
}

// NewRenderer creates a Renderer. Invalid options are reported as a
// *ConfigError.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: o}, nil
}

func (r *Renderer) snapshot() rendererOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetRegion restricts subsequent renders to reg. The zero Region renders
// the whole buffer. Bounds are checked against the buffer at render time.
func (r *Renderer) SetRegion(reg Region) {
	r.mu.Lock()
	r.opts.region = reg
	r.mu.Unlock()
}

// Region returns the configured region.
func (r *Renderer) Region() Region {
	return r.snapshot().region
}

// SetStrips sets the number of parallel strips.
func (r *Renderer) SetStrips(n int) error {
	if n <= 0 {
		return configErr("strips", "need at least 1")
	}
	r.mu.Lock()
	r.opts.strips = n
	r.mu.Unlock()
	return nil
}

// Strips returns the configured strip count.
func (r *Renderer) Strips() int {
	return r.snapshot().strips
}

// Posterize quantizes subsequent renders into n flat bands.
func (r *Renderer) Posterize(n int) error {
	if n < 1 {
		return configErr("posterize", "need at least 1 level")
	}
	r.mu.Lock()
	r.opts.posterize, r.opts.levels = n, true
	r.mu.Unlock()
	return nil
}

// ClearPosterize restores continuous ramps.
func (r *Renderer) ClearPosterize() {
	r.mu.Lock()
	r.opts.posterize, r.opts.levels = 0, false
	r.mu.Unlock()
}

// Levels returns the posterize level count, or 0 when disabled.
func (r *Renderer) Levels() int {
	o := r.snapshot()
	if !o.levels {
		return 0
	}
	return o.posterize
}

// SetDither sets the dither strength in [0, 1]; 0 disables dithering.
func (r *Renderer) SetDither(strength float64) error {
	if err := checkDither(strength); err != nil {
		return err
	}
	r.mu.Lock()
	r.opts.dither = strength
	r.mu.Unlock()
	return nil
}

// Dither returns the dither strength.
func (r *Renderer) Dither() float64 {
	return r.snapshot().dither
}

// Render fills the configured region of buf with ramp colors laid out by
// shape. Every parameter is validated before any pixel is written; pixels
// outside the region are never touched.
//
// Strips that have not started when ctx is done are skipped and Render
// returns ctx.Err(); strips already running finish.
func (r *Renderer) Render(ctx context.Context, buf Buffer, ramp *Ramp, shape Shape) error {
	return render(ctx, r.snapshot(), buf, ramp, shape)
}

// render draws with the options snapshot o. Entry points that derive shape
// defaults from the region pass the same snapshot they read it from.
func render(ctx context.Context, o rendererOptions, buf Buffer, ramp *Ramp, shape Shape) error {
	if buf == nil {
		return configErr("buffer", "nil buffer")
	}
	if ramp == nil {
		return configErr("ramp", "nil ramp")
	}

	w, h := buf.Width(), buf.Height()
	pix := buf.Pix()
	if w < 0 || h < 0 || len(pix) < w*h {
		return configErr("buffer", "pixel slice shorter than width*height")
	}
	reg, err := o.region.resolve(w, h)
	if err != nil {
		return err
	}
	if shape == nil {
		return configErr("shape", "nil shape")
	}
	if reg.Empty() {
		return nil
	}

	eval, err := compile(shape, reg.Width, reg.Height)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log := Logger()
	if o.strips > reg.Height {
		log.Warn("shade: strip count clamped to region height",
			"strips", o.strips, "height", reg.Height)
	}

	// Continuous ramps sample a dense table; posterized ones hold exactly
	// one entry per band.
	var (
		table  []Pixel
		index  func(t float64) int
		dither = o.dither
	)
	if o.levels {
		n := o.posterize
		table = ramp.Table(n)
		index = func(t float64) int { return Bin(t, n) }
		dither = 0
	} else {
		table = ramp.Table(3 * max(reg.Width, reg.Height))
		last := float64(len(table) - 1)
		index = func(t float64) int { return int(t*last + 0.5) }
	}

	strips := parallel.Strips(reg.Height, o.strips)
	var skipped atomic.Bool
	tasks := make([]func(), len(strips))
	for i, s := range strips {
		tasks[i] = func() {
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			for y := s.Y; y < s.Y+s.Rows; y++ {
				off := (reg.Y+y)*w + reg.X
				row := pix[off : off+reg.Width : off+reg.Width]
				// Sample at pixel centers.
				fy := float64(y) + 0.5
				for x := range row {
					t := eval.progress(float64(x)+0.5, fy)
					if dither != 0 {
						t += dither * interleavedGradient(reg.X+x, reg.Y+y)
					}
					row[x] = table[index(eval.norm(t))]
				}
			}
		}
	}

	start := time.Now()
	log.Debug("shade: render",
		"shape", shape.Kind(),
		"region", reg.Rect(),
		"strips", len(strips),
		"table", len(table))

	sharedPool().ExecuteAll(tasks)

	if skipped.Load() {
		log.Debug("shade: render cancelled", "shape", shape.Kind())
		return ctx.Err()
	}
	log.Debug("shade: render done", "shape", shape.Kind(), "elapsed", time.Since(start))
	return nil
}

// interleavedGradient is Jimenez's interleaved gradient noise in [-1, 1).
func interleavedGradient(x, y int) float64 {
	f := 0.06711056*float64(x) + 0.00583715*float64(y)
	f = 52.9829189 * (f - math.Floor(f))
	return (f-math.Floor(f))*2 - 1
}

// center returns the center of the region a render of buf with o would
// cover.
func (o rendererOptions) center(buf Buffer) Point {
	w, h := o.size(buf)
	return Pt(w/2, h/2)
}

// size returns the dimensions of the region a render of buf with o would
// cover.
func (o rendererOptions) size(buf Buffer) (w, h float64) {
	if o.region.IsZero() && buf != nil {
		return float64(buf.Width()), float64(buf.Height())
	}
	return float64(o.region.Width), float64(o.region.Height)
}

// Linear renders a linear gradient through the region center at angle,
// spanning the whole region.
func (r *Renderer) Linear(ctx context.Context, buf Buffer, ramp *Ramp, angle float64) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, Linear{Center: o.center(buf), Angle: angle, Length: 1})
}

// LinearBetween renders a linear gradient from start to end.
func (r *Renderer) LinearBetween(ctx context.Context, buf Buffer, ramp *Ramp, start, end Point) error {
	return r.Render(ctx, buf, ramp, LinearPoints{Start: start, End: end})
}

// Radial renders circles around center. The ramp ends at half the region
// diagonal times zoom.
func (r *Renderer) Radial(ctx context.Context, buf Buffer, ramp *Ramp, center Point, zoom float64) error {
	o := r.snapshot()
	w, h := o.size(buf)
	return render(ctx, o, buf, ramp, Radial{Center: center, Outer: halfDiagonal(w, h) * zoom})
}

// Conic renders a sweep around center starting at angle.
func (r *Renderer) Conic(ctx context.Context, buf Buffer, ramp *Ramp, center Point, angle float64) error {
	return r.Render(ctx, buf, ramp, Conic{Center: center, Angle: angle})
}

// Spiral renders a spiral around center. See Spiral for the parameters.
func (r *Renderer) Spiral(ctx context.Context, buf Buffer, ramp *Ramp, center Point, angle, windings, curviness float64) error {
	return r.Render(ctx, buf, ramp, Spiral{Center: center, Angle: angle, Windings: windings, Curviness: curviness})
}

// Polygon renders concentric regular polygons around center reaching the
// region edge.
func (r *Renderer) Polygon(ctx context.Context, buf Buffer, ramp *Ramp, center Point, angle float64, sides int) error {
	return r.Render(ctx, buf, ramp, Polygon{Center: center, Angle: angle, Sides: sides})
}

// Cross renders a plus-shaped gradient around the region center.
// A positive repeat produces that many bands.
func (r *Renderer) Cross(ctx context.Context, buf Buffer, ramp *Ramp, angle, repeat float64) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, Cross{Center: o.center(buf), Angle: angle, Repeat: repeat})
}

// Diamond renders a diamond-shaped gradient around the region center.
func (r *Renderer) Diamond(ctx context.Context, buf Buffer, ramp *Ramp, angle, repeat float64) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, Diamond{Center: o.center(buf), Angle: angle, Repeat: repeat})
}

// Noise renders single-octave OpenSimplex noise. scale is the sampling
// frequency in cycles per pixel.
func (r *Renderer) Noise(ctx context.Context, buf Buffer, ramp *Ramp, scale float64, seed int64) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, NewNoise(o.center(buf), 0, scale, scale, seed))
}

// FractalNoise renders the noise field described by cfg.
func (r *Renderer) FractalNoise(ctx context.Context, buf Buffer, ramp *Ramp, scale float64, cfg noise.Config) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, NewFractalNoise(o.center(buf), 0, scale, scale, cfg))
}

// UniformNoise renders the noise field described by cfg with equalized
// color coverage.
func (r *Renderer) UniformNoise(ctx context.Context, buf Buffer, ramp *Ramp, scale float64, cfg noise.Config) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, NewUniformNoise(o.center(buf), 0, scale, scale, cfg))
}

// Spotlight renders a two-point falloff between a and b.
func (r *Renderer) Spotlight(ctx context.Context, buf Buffer, ramp *Ramp, a, b Point) error {
	return r.Render(ctx, buf, ramp, Spotlight{A: a, B: b})
}

// Beam renders a cone of light from origin toward angle.
func (r *Renderer) Beam(ctx context.Context, buf Buffer, ramp *Ramp, origin Point, angle, spread float64) error {
	return r.Render(ctx, buf, ramp, Beam{Origin: origin, Angle: angle, Spread: spread})
}

// Hourglass renders an hourglass around the region center.
func (r *Renderer) Hourglass(ctx context.Context, buf Buffer, ramp *Ramp, angle, pinch, roundness float64) error {
	o := r.snapshot()
	return render(ctx, o, buf, ramp, Hourglass{Center: o.center(buf), Angle: angle, Pinch: pinch, Roundness: roundness})
}
