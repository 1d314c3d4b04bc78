// Package shade renders procedural gradients into pixel buffers.
//
// # Overview
//
// shade maps every pixel of a rectangular region to a progress value in
// [0, 1] using a geometric Shape, then looks that value up in a color Ramp.
// Rendering is split into horizontal strips that run in parallel on a
// shared worker pool.
//
// # Quick Start
//
//	import "github.com/gogpu/shade"
//
//	pm := shade.NewPixmap(512, 512)
//	ramp, _ := shade.NewRampColors([]shade.RGBA{shade.Red, shade.Yellow, shade.Blue})
//
//	r, _ := shade.NewRenderer()
//	if err := r.Conic(ctx, pm, ramp, shade.Pt(256, 256), 0); err != nil {
//	    return err
//	}
//	img := pm.ToImage() // *image.NRGBA
//
// # Shapes
//
// Linear, LinearPoints, Radial, Conic, Spiral, Polygon, Cross, Diamond,
// Noise, FractalNoise, UniformNoise, Spotlight, Beam and Hourglass. Each can
// be passed to Renderer.Render directly, or drawn through the Renderer method
// of the same name, which fills in region-relative defaults.
//
// # Ramps
//
// A Ramp interpolates between color stops in a selectable ColorSpace
// (sRGB, linear light, HSV, Lab, Luv, HCL, Oklab, ...) with an optional
// Easing between stops. Perceptual color spaces are provided by
// github.com/lucasb-eyer/go-colorful.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the render region
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +y
//
// # Errors
//
// Invalid parameters are reported as *ConfigError (matching ErrConfig) and
// regions that do not fit the buffer as *BoundsError (matching ErrBounds).
// Both are returned before any pixel is written.
package shade

// Version is the current version of the library.
const Version = "0.1.0"
