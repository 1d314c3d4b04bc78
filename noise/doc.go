// Package noise provides deterministic 2D scalar noise fields with optional
// fractal layering, used by shade's noise gradients.
//
// A [Field] is built from a [Config] once and then sampled many times:
//
//	f, err := noise.New(noise.Config{
//	    Type:       noise.OpenSimplex,
//	    Fractal:    noise.FractalFBM,
//	    Octaves:    4,
//	    Lacunarity: 2,
//	    Gain:       0.5,
//	    Seed:       42,
//	})
//	if err != nil {
//	    return err
//	}
//	v := f.Sample(x*0.01, y*0.01) // in f.Range()
//
// Identical configs and coordinates always produce identical samples, and a
// Field is safe for concurrent use.
//
// OpenSimplex is backed by github.com/ojrac/opensimplex-go and Perlin by
// github.com/aquilax/go-perlin; Value and Cellular are hash-lattice noises
// implemented here.
package noise
