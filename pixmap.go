package shade

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Buffer is a row-major grid of packed pixels that a Renderer writes into.
// Pix must hold at least Width()*Height() pixels; pixel (x, y) lives at
// index y*Width()+x.
type Buffer interface {
	Width() int
	Height() int
	Pix() []Pixel
}

// Pixmap is the in-memory Buffer implementation. It also implements
// image.Image with non-premultiplied colors.
type Pixmap struct {
	width  int
	height int
	pix    []Pixel
}

var _ Buffer = (*Pixmap)(nil)

// NewPixmap creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the backing pixel slice.
func (p *Pixmap) Pix() []Pixel {
	return p.pix
}

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Pixel) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// Pixel returns a single pixel, or 0 (transparent) out of bounds.
func (p *Pixmap) Pixel(x, y int) Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Pixel) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		r, g, b, a := c.Unpack()
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = a
	}
	return img
}

// FromImage creates a pixmap holding a copy of img.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := range pm.height {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := range pm.width {
			s := row[x*4 : x*4+4 : x*4+4]
			pm.pix[y*pm.width+x] = Pack(s[0], s[1], s[2], s[3])
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.Pixel(x, y).Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
