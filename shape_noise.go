package shade

import (
	"github.com/gogpu/shade/internal/cache"
	"github.com/gogpu/shade/noise"
)

// NoiseParams are shared by the noise shapes. The field is sampled at
// (u*ScaleX, v*ScaleY) where (u, v) is the pixel position relative to
// Center in the frame turned by Angle; small scales give large features.
type NoiseParams struct {
	Center         Point
	Angle          float64
	ScaleX, ScaleY float64
	Config         noise.Config
}

// Noise is smooth single-octave OpenSimplex noise. Only Config.Seed is
// consulted.
type Noise struct{ NoiseParams }

func (Noise) shapeMarker() {}

// Kind implements Shape.
func (Noise) Kind() string { return "noise" }

// FractalNoise samples the field described by Config, typically with
// several octaves.
type FractalNoise struct{ NoiseParams }

func (FractalNoise) shapeMarker() {}

// Kind implements Shape.
func (FractalNoise) Kind() string { return "fractal-noise" }

// UniformNoise is FractalNoise remapped through the field's empirical
// distribution, so every ramp color covers a similar share of the area.
type UniformNoise struct{ NoiseParams }

func (UniformNoise) shapeMarker() {}

// Kind implements Shape.
func (UniformNoise) Kind() string { return "uniform-noise" }

// NewNoise returns a Noise shape.
func NewNoise(center Point, angle, scaleX, scaleY float64, seed int64) Noise {
	cfg := noise.DefaultConfig()
	cfg.Seed = seed
	return Noise{NoiseParams{Center: center, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Config: cfg}}
}

// NewFractalNoise returns a FractalNoise shape.
func NewFractalNoise(center Point, angle, scaleX, scaleY float64, cfg noise.Config) FractalNoise {
	return FractalNoise{NoiseParams{Center: center, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Config: cfg}}
}

// NewUniformNoise returns a UniformNoise shape.
func NewUniformNoise(center Point, angle, scaleX, scaleY float64, cfg noise.Config) UniformNoise {
	return UniformNoise{NoiseParams{Center: center, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Config: cfg}}
}

type noiseMode int

const (
	noiseSimplex noiseMode = iota
	noiseFractal
	noiseUniform
)

func compileNoise(p NoiseParams, mode noiseMode) (*evaluator, error) {
	if err := checkPoint("noise center", p.Center); err != nil {
		return nil, err
	}
	if err := checkFinite("noise angle", p.Angle); err != nil {
		return nil, err
	}
	if err := checkFinite("noise scale", p.ScaleX, p.ScaleY); err != nil {
		return nil, err
	}
	if p.ScaleX == 0 || p.ScaleY == 0 {
		return nil, configErr("noise scale", "must not be zero")
	}

	cfg := p.Config
	if mode == noiseSimplex {
		cfg = noise.DefaultConfig()
		cfg.Seed = p.Config.Seed
	}
	field, err := noiseField(cfg)
	if err != nil {
		return nil, &ConfigError{Param: "noise config", Reason: "rejected by noise field", Err: err}
	}

	f := newFrame(p.Center, WrapAngle(p.Angle))
	sx, sy := p.ScaleX, p.ScaleY

	if mode == noiseUniform {
		eq := noiseEqualizer(cfg, field)
		return &evaluator{progress: func(x, y float64) float64 {
			u, v := f.apply(x, y)
			return eq.Map(field.Sample(u*sx, v*sy))
		}}, nil
	}

	lo, hi := field.Range()
	span := hi - lo
	return &evaluator{progress: func(x, y float64) float64 {
		u, v := f.apply(x, y)
		return (field.Sample(u*sx, v*sy) - lo) / span
	}}, nil
}

const noiseCacheLimit = 32

// Fields and equalization tables are immutable once built and depend only
// on the config, so renders with the same config share them.
var (
	fieldCache     = cache.New[noise.Config, *noise.Field](noiseCacheLimit)
	equalizerCache = cache.New[noise.Config, *noise.Equalizer](noiseCacheLimit)
)

func noiseField(cfg noise.Config) (*noise.Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f, ok := fieldCache.Get(cfg); ok {
		return f, nil
	}
	f, err := noise.New(cfg)
	if err != nil {
		return nil, err
	}
	fieldCache.Set(cfg, f)
	return f, nil
}

func noiseEqualizer(cfg noise.Config, f *noise.Field) *noise.Equalizer {
	return equalizerCache.GetOrCreate(cfg, func() *noise.Equalizer {
		return noise.NewEqualizer(f)
	})
}
