package noise

import (
	"fmt"
	"math"
)

// Type selects the base noise function.
type Type int

const (
	// OpenSimplex is smooth gradient noise without Perlin's axis artifacts.
	OpenSimplex Type = iota
	// Perlin is classic gradient noise.
	Perlin
	// Value interpolates random values on an integer lattice.
	Value
	// Cellular is Worley noise returning the ratio of the two nearest
	// feature-point distances; its native range is [-1, 0].
	Cellular
)

var typeNames = [...]string{"OpenSimplex", "Perlin", "Value", "Cellular"}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Fractal selects how octaves are combined.
type Fractal int

const (
	// FractalNone samples a single octave.
	FractalNone Fractal = iota
	// FractalFBM sums octaves (fractional Brownian motion).
	FractalFBM
	// FractalRidged sums octaves folded as 1-2|n|, producing sharp ridges.
	FractalRidged
	// FractalPingPong sums octaves folded through a triangle wave.
	FractalPingPong
)

var fractalNames = [...]string{"None", "FBM", "Ridged", "PingPong"}

func (f Fractal) String() string {
	if f >= 0 && int(f) < len(fractalNames) {
		return fractalNames[f]
	}
	return fmt.Sprintf("Fractal(%d)", int(f))
}

// Config describes a noise field. The zero value is not valid: Octaves must
// be at least 1 and Lacunarity positive. Start from DefaultConfig.
type Config struct {
	Type    Type
	Fractal Fractal

	// Octaves is the number of layers summed when Fractal != FractalNone.
	Octaves int
	// Lacunarity is the frequency multiplier between octaves.
	Lacunarity float64
	// Gain is the amplitude multiplier between octaves.
	Gain float64
	// PingPongStrength scales the input of the ping-pong fold.
	PingPongStrength float64

	Seed int64
}

// DefaultConfig returns a single-octave OpenSimplex configuration with
// conventional fractal parameters.
func DefaultConfig() Config {
	return Config{
		Type:             OpenSimplex,
		Fractal:          FractalNone,
		Octaves:          3,
		Lacunarity:       2,
		Gain:             0.5,
		PingPongStrength: 2,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	if c.Type < OpenSimplex || c.Type > Cellular {
		return &ConfigError{Field: "type", Value: c.Type, Reason: "unknown noise type"}
	}
	if c.Fractal < FractalNone || c.Fractal > FractalPingPong {
		return &ConfigError{Field: "fractal", Value: c.Fractal, Reason: "unknown fractal type"}
	}
	if c.Octaves < 1 {
		return &ConfigError{Field: "octaves", Value: c.Octaves, Reason: "must be at least 1"}
	}
	if !finite(c.Lacunarity) || c.Lacunarity <= 0 {
		return &ConfigError{Field: "lacunarity", Value: c.Lacunarity, Reason: "must be finite and positive"}
	}
	if !finite(c.Gain) || c.Gain < 0 {
		return &ConfigError{Field: "gain", Value: c.Gain, Reason: "must be finite and non-negative"}
	}
	if c.Fractal == FractalPingPong && (!finite(c.PingPongStrength) || c.PingPongStrength <= 0) {
		return &ConfigError{Field: "ping-pong strength", Value: c.PingPongStrength, Reason: "must be finite and positive"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
