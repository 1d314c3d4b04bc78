package shade

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 || len(pm.Pix()) != 12 {
		t.Fatalf("NewPixmap(4,3) = %dx%d with %d pixels", pm.Width(), pm.Height(), len(pm.Pix()))
	}
	for i, c := range pm.Pix() {
		if c != 0 {
			t.Fatalf("pixel %d = %v, want transparent", i, c)
		}
	}

	empty := NewPixmap(-1, 5)
	if empty.Width() != 0 || len(empty.Pix()) != 0 {
		t.Errorf("NewPixmap(-1,5) width = %d", empty.Width())
	}
}

func TestPixmapSetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, 0xff112233)

	if got := pm.Pix()[7*10+3]; got != 0xff112233 {
		t.Errorf("raw pixel = %v", got)
	}
	if got := pm.Pixel(3, 7); got != 0xff112233 {
		t.Errorf("Pixel(3,7) = %v", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Fill(0xff000000)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, 0xffff0000)
		if got := pm.Pixel(c.x, c.y); got != 0 {
			t.Errorf("Pixel(%d,%d) = %v, want 0", c.x, c.y, got)
		}
	}
	for i, c := range pm.Pix() {
		if c != 0xff000000 {
			t.Fatalf("pixel %d modified to %v", i, c)
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 0, Pack(255, 0, 0, 128))

	if got := pm.At(1, 0).(color.NRGBA); got != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("At(1,0) = %+v", got)
	}
	if pm.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}

	img := pm.ToImage()
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("ToImage pixel = %+v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d", pm.Width(), pm.Height())
	}
	if got := pm.Pixel(2, 1); got != Pack(10, 20, 30, 40) {
		t.Errorf("Pixel(2,1) = %v", got)
	}
}

func TestFromImageConverts(t *testing.T) {
	// Offset bounds and a non-NRGBA source go through draw.
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.SetRGBA(6, 5, color.RGBA{R: 0, G: 255, B: 0, A: 255})

	pm := FromImage(src)
	if pm.Width() != 2 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d", pm.Width(), pm.Height())
	}
	if got := pm.Pixel(1, 0); got != Pack(0, 255, 0, 255) {
		t.Errorf("Pixel(1,0) = %v, want opaque green", got)
	}
	if got := pm.Pixel(0, 0); got != 0 {
		t.Errorf("Pixel(0,0) = %v, want transparent", got)
	}
}

func TestPixmapRoundTrip(t *testing.T) {
	pm := NewPixmap(3, 3)
	for i := range pm.Pix() {
		pm.Pix()[i] = Pack(uint8(i*20), uint8(255-i*20), 7, 255)
	}
	back := FromImage(pm.ToImage())
	for i, c := range back.Pix() {
		if c != pm.Pix()[i] {
			t.Fatalf("pixel %d = %v, want %v", i, c, pm.Pix()[i])
		}
	}
}
