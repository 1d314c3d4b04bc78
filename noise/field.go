package noise

import "math"

// Field is a configured, immutable noise field.
type Field struct {
	cfg      Config
	octaves  []source
	bounding float64
}

// New validates cfg and builds a Field. Each octave is seeded with
// Seed+i so layers are decorrelated but reproducible.
func New(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := 1
	if cfg.Fractal != FractalNone {
		n = cfg.Octaves
	}

	f := &Field{cfg: cfg, octaves: make([]source, n)}
	amp, total := 1.0, 0.0
	for i := range n {
		f.octaves[i] = newSource(cfg.Type, cfg.Seed+int64(i))
		total += amp
		amp *= cfg.Gain
	}
	f.bounding = 1 / total

	return f, nil
}

// Config returns the configuration the field was built from.
func (f *Field) Config() Config {
	return f.cfg
}

// Range returns the closed interval Sample results lie in.
func (f *Field) Range() (lo, hi float64) {
	if f.cfg.Type == Cellular && (f.cfg.Fractal == FractalNone || f.cfg.Fractal == FractalFBM) {
		return -1, 0
	}
	return -1, 1
}

// Sample evaluates the field at (x, y).
func (f *Field) Sample(x, y float64) float64 {
	if f.cfg.Fractal == FractalNone {
		return f.octaves[0].eval(x, y)
	}

	var sum float64
	amp := 1.0
	for _, src := range f.octaves {
		n := src.eval(x, y)
		switch f.cfg.Fractal {
		case FractalRidged:
			n = 1 - 2*math.Abs(n)
		case FractalPingPong:
			n = (pingPong((n+1)*f.cfg.PingPongStrength) - 0.5) * 2
		}
		sum += n * amp

		x *= f.cfg.Lacunarity
		y *= f.cfg.Lacunarity
		amp *= f.cfg.Gain
	}

	lo, hi := f.Range()
	return min(max(sum*f.bounding, lo), hi)
}

// pingPong folds t into a triangle wave over [0, 1] with period 2.
func pingPong(t float64) float64 {
	t -= math.Trunc(t*0.5) * 2
	if t < 1 {
		return t
	}
	return 2 - t
}
