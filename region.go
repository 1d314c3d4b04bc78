package shade

import "image"

// Region is a rectangle of a buffer in pixels. The zero Region stands for
// the whole buffer.
type Region struct {
	X, Y          int
	Width, Height int
}

// RegionFromRect converts an image.Rectangle.
func RegionFromRect(r image.Rectangle) Region {
	return Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// IsZero reports whether r is the zero Region.
func (r Region) IsZero() bool {
	return r == Region{}
}

// Empty reports whether r covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the region-local center point.
func (r Region) Center() Point {
	return Pt(float64(r.Width)/2, float64(r.Height)/2)
}

// resolve returns the effective region for a w×h buffer: the whole buffer
// for the zero Region, otherwise r itself after a bounds check.
func (r Region) resolve(w, h int) (Region, error) {
	if r.IsZero() {
		return Region{Width: w, Height: h}, nil
	}
	// Compare without adding so huge offsets cannot overflow.
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 ||
		r.X > w || r.Y > h || r.Width > w-r.X || r.Height > h-r.Y {
		return Region{}, &BoundsError{Region: r, Width: w, Height: h}
	}
	return r, nil
}
