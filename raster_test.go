package fx

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRasterAt(t *testing.T) {
	r := NewRasterAt(-4, 7, 3, 2)

	if r.Width() != 3 || r.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", r.Width(), r.Height())
	}
	x, y := r.Origin()
	if x != -4 || y != 7 {
		t.Errorf("Origin() = (%d,%d), want (-4,7)", x, y)
	}
	if len(r.Data()) != 3*2*4 {
		t.Errorf("len(Data()) = %d, want 24", len(r.Data()))
	}
}

func TestNewRasterNegativeSize(t *testing.T) {
	r := NewRaster(-1, -1)
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", r.Width(), r.Height())
	}
}

func TestRasterPixelRoundTrip(t *testing.T) {
	r := NewRaster(2, 2)
	r.setPixel(1, 0, 10, 20, 30, 40)

	red, green, blue, alpha := r.Pixel(1, 0)
	if red != 10 || green != 20 || blue != 30 || alpha != 40 {
		t.Errorf("Pixel(1,0) = (%d,%d,%d,%d), want (10,20,30,40)", red, green, blue, alpha)
	}

	// Out of range reads return zeros, writes are ignored.
	if red, _, _, _ := r.Pixel(5, 5); red != 0 {
		t.Error("out-of-range Pixel should return zeros")
	}
	r.setPixel(5, 5, 1, 1, 1, 1)
}

func TestRasterFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	img.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(3, 4, color.NRGBA{R: 5, G: 6, B: 7, A: 8})

	r := FromImage(img, 2, 3)

	if red, green, blue, alpha := r.Pixel(0, 0); red != 1 || green != 2 || blue != 3 || alpha != 4 {
		t.Errorf("Pixel(0,0) = (%d,%d,%d,%d), want (1,2,3,4)", red, green, blue, alpha)
	}
	if red, _, _, _ := r.Pixel(1, 1); red != 5 {
		t.Errorf("Pixel(1,1) red = %d, want 5", red)
	}
}

func TestRasterFromImageGeneric(t *testing.T) {
	// Gray images exercise the slow per-pixel conversion path.
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 100})
	img.SetGray(1, 0, color.Gray{Y: 200})

	r := FromImage(img, 0, 0)

	red, green, blue, alpha := r.Pixel(0, 0)
	if red != 100 || green != 100 || blue != 100 || alpha != 255 {
		t.Errorf("Pixel(0,0) = (%d,%d,%d,%d), want (100,100,100,255)", red, green, blue, alpha)
	}
	if red, _, _, _ = r.Pixel(1, 0); red != 200 {
		t.Errorf("Pixel(1,0) red = %d, want 200", red)
	}
}

func TestRasterToImageRoundTrip(t *testing.T) {
	r := NewRaster(4, 3)
	for i := range r.Data() {
		r.Data()[i] = uint8(i * 7)
	}

	back := FromImage(r.ToImage(), 0, 0)
	if diff := cmp.Diff(r.Data(), back.Data()); diff != "" {
		t.Errorf("round trip differs (-orig +back):\n%s", diff)
	}
}

func TestRasterImageInterface(t *testing.T) {
	r := NewRasterAt(10, 20, 2, 2)
	r.setPixel(0, 0, 9, 8, 7, 6)

	bounds := r.Bounds()
	if bounds != image.Rect(10, 20, 12, 22) {
		t.Errorf("Bounds() = %v, want (10,20)-(12,22)", bounds)
	}

	// At uses logical-plane coordinates.
	got := r.At(10, 20).(color.NRGBA)
	want := color.NRGBA{R: 9, G: 8, B: 7, A: 6}
	if got != want {
		t.Errorf("At(10,20) = %v, want %v", got, want)
	}

	if r.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() should be NRGBA")
	}
}

func TestRasterClone(t *testing.T) {
	r := NewRasterAt(1, 2, 2, 2)
	r.setPixel(0, 0, 50, 60, 70, 80)

	c := r.Clone()
	if c == r {
		t.Fatal("Clone() should return a new instance")
	}
	if diff := cmp.Diff(r.Data(), c.Data()); diff != "" {
		t.Errorf("clone differs (-orig +clone):\n%s", diff)
	}

	x, y := c.Origin()
	if x != 1 || y != 2 {
		t.Errorf("clone Origin() = (%d,%d), want (1,2)", x, y)
	}

	// Buffers must not alias.
	c.Data()[0] = 99
	if r.Data()[0] == 99 {
		t.Error("clone should not share the pixel buffer")
	}
}

func TestRasterRect(t *testing.T) {
	r := NewRasterAt(-2, 3, 4, 5)
	got := r.Rect()
	want := NewRect(-2, 3, 4, 5)
	if got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
}
