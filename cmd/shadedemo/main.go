// Command shadedemo renders a sheet with one tile per gradient family.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/noise"
)

const columns = 4

type tile struct {
	name string
	draw func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error
}

var tiles = []tile{
	{"linear", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		return r.Linear(ctx, pm, ramp, math.Pi/6)
	}},
	{"linear-between", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		c := reg.Center()
		d := shade.Pt(float64(reg.Width)/3, float64(reg.Height)/5)
		return r.LinearBetween(ctx, pm, ramp, c.Sub(d), c.Add(d))
	}},
	{"radial", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		return r.Radial(ctx, pm, ramp, reg.Center(), 0.8)
	}},
	{"conic", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		return r.Conic(ctx, pm, ramp, reg.Center(), 0)
	}},
	{"spiral", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		return r.Spiral(ctx, pm, ramp, reg.Center(), 0, 3, 1)
	}},
	{"polygon", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		return r.Polygon(ctx, pm, ramp, reg.Center(), 0, 6)
	}},
	{"cross", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		return r.Cross(ctx, pm, ramp, math.Pi/4, 0)
	}},
	{"diamond", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		return r.Diamond(ctx, pm, ramp, 0, 3)
	}},
	{"noise", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		return r.Noise(ctx, pm, ramp, 0.02, *seed)
	}},
	{"fractal-noise", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		cfg := noise.DefaultConfig()
		cfg.Fractal = noise.FractalFBM
		cfg.Octaves = 5
		cfg.Seed = *seed
		return r.FractalNoise(ctx, pm, ramp, 0.015, cfg)
	}},
	{"uniform-noise", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		cfg := noise.DefaultConfig()
		cfg.Type = noise.Cellular
		cfg.Seed = *seed
		return r.UniformNoise(ctx, pm, ramp, 0.03, cfg)
	}},
	{"spotlight", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		c := reg.Center()
		d := shade.Pt(float64(reg.Width)/4, 0)
		return r.Spotlight(ctx, pm, ramp, c.Sub(d), c.Add(d))
	}},
	{"beam", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, reg shade.Region) error {
		origin := shade.Pt(0, float64(reg.Height)/2)
		return r.Beam(ctx, pm, ramp, origin, 0, math.Pi/3)
	}},
	{"hourglass", func(ctx context.Context, r *shade.Renderer, pm *shade.Pixmap, ramp *shade.Ramp, _ shade.Region) error {
		return r.Hourglass(ctx, pm, ramp, 0, 0.5, 0.5)
	}},
}

var (
	size      = flag.Int("size", 256, "tile size in pixels")
	output    = flag.String("output", "shade.png", "output file")
	seed      = flag.Int64("seed", 1, "palette and noise seed")
	posterize = flag.Int("posterize", 0, "number of color levels, 0 for continuous")
	dither    = flag.Float64("dither", 0, "dither strength in [0,1]")
	space     = flag.String("space", "oklab", "ramp color space")
	verbose   = flag.Bool("v", false, "log render details")
)

func main() {
	flag.Parse()

	if *verbose {
		shade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cs, ok := parseSpace(*space)
	if !ok {
		log.Fatalf("unknown color space %q", *space)
	}

	rng := rand.New(rand.NewSource(*seed))
	ramp, err := shade.NewRampColors(shade.HappyColors(4, rng), shade.WithColorSpace(cs))
	if err != nil {
		log.Fatalf("ramp: %v", err)
	}

	opts := []shade.RendererOption{shade.WithDither(*dither)}
	if *posterize > 0 {
		opts = append(opts, shade.WithPosterize(*posterize))
	}
	r, err := shade.NewRenderer(opts...)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	rows := (len(tiles) + columns - 1) / columns
	pm := shade.NewPixmap(columns*(*size), rows*(*size))
	pm.Fill(shade.Black.Packed())

	ctx := context.Background()
	for i, t := range tiles {
		reg := shade.Region{X: i % columns * *size, Y: i / columns * *size, Width: *size, Height: *size}
		r.SetRegion(reg)
		if err := t.draw(ctx, r, pm, ramp, reg); err != nil {
			log.Fatalf("%s: %v", t.name, err)
		}
	}

	if err := save(*output, pm); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, pm.Width(), pm.Height())
}

func parseSpace(name string) (shade.ColorSpace, bool) {
	for cs := shade.SpaceRGB; cs <= shade.SpaceOkLch; cs++ {
		if strings.EqualFold(cs.String(), name) {
			return cs, true
		}
	}
	return 0, false
}

func save(path string, pm *shade.Pixmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pm.ToImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
