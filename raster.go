package fx

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Raster is an immutable rendered result: a rectangular pixel buffer
// together with the position of its top-left corner in the logical
// coordinate plane of the graph.
//
// The buffer is row-major with four 8-bit channels per pixel in R, G,
// B, A order, straight (non-premultiplied) alpha. This layout is the
// bit-exact contract between nodes; it matches image.NRGBA with a
// packed stride.
//
// A Raster returned from Render is owned by the caller and never
// aliases node-internal state. Treat it as read-only; two renders of
// the same configuration return equal pixels but not necessarily the
// same instance.
type Raster struct {
	width  int
	height int
	ox     int
	oy     int
	data   []uint8
}

// NewRaster creates a raster with the given dimensions at origin (0,0).
func NewRaster(width, height int) *Raster {
	return NewRasterAt(0, 0, width, height)
}

// NewRasterAt creates a raster with the given dimensions whose top-left
// corner sits at (x, y) in the logical plane.
func NewRasterAt(x, y, width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		ox:     x,
		oy:     y,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the raster in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Origin returns the position of the top-left pixel in the logical plane.
func (r *Raster) Origin() (x, y int) {
	return r.ox, r.oy
}

// Data returns the raw pixel data (RGBA order, straight alpha).
func (r *Raster) Data() []uint8 {
	return r.data
}

// Pixel returns the four channel samples of the pixel at buffer
// coordinates (x, y). Out-of-range coordinates return zeros.
func (r *Raster) Pixel(x, y int) (red, green, blue, alpha uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0, 0, 0, 0
	}
	i := (y*r.width + x) * 4
	return r.data[i+0], r.data[i+1], r.data[i+2], r.data[i+3]
}

// setPixel writes the pixel at buffer coordinates (x, y).
// Only used while a raster is being built, before it is handed out.
func (r *Raster) setPixel(x, y int, red, green, blue, alpha uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.data[i+0] = red
	r.data[i+1] = green
	r.data[i+2] = blue
	r.data[i+3] = alpha
}

// FromImage creates a raster at origin (x, y) from an image.
// The image is converted to straight-alpha RGBA.
func FromImage(img image.Image, x, y int) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	r := NewRasterAt(x, y, width, height)

	if src, ok := img.(*image.NRGBA); ok {
		for row := 0; row < height; row++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+row)
			copy(r.data[row*width*4:(row+1)*width*4], src.Pix[si:si+width*4])
		}
		return r
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.NRGBA)
			r.setPixel(col, row, c.R, c.G, c.B, c.A)
		}
	}
	return r
}

// ToImage converts the raster to an image.NRGBA. The returned image
// is a copy; modifying it does not affect the raster.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.data)
	return img
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToImage())
}

// At implements the image.Image interface. Coordinates are in the
// logical plane, offset by the raster origin.
func (r *Raster) At(x, y int) color.Color {
	red, green, blue, alpha := r.Pixel(x-r.ox, y-r.oy)
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(r.ox, r.oy, r.ox+r.width, r.oy+r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}

// Rect returns the raster footprint as a logical-plane rectangle.
func (r *Raster) Rect() Rect {
	return NewRect(float64(r.ox), float64(r.oy), float64(r.width), float64(r.height))
}

// Clone returns a deep copy of the raster: same dimensions, origin,
// and pixel values, backed by a fresh buffer.
func (r *Raster) Clone() *Raster {
	out := NewRasterAt(r.ox, r.oy, r.width, r.height)
	copy(out.data, r.data)
	return out
}

// sizeBytes returns the memory footprint of the pixel buffer.
func (r *Raster) sizeBytes() int64 {
	return int64(len(r.data))
}
