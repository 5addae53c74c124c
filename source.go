package fx

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SourceNode is a graph leaf that serves a decoded image placed at a
// fixed position in the logical plane. It has no upstream sources.
//
// Render resamples the image against the context transform using the
// scaler selected by the context quality hint, so the same leaf can
// feed renders at any resolution.
type SourceNode struct {
	baseNode

	img  image.Image
	x, y int
}

// NewSource creates a leaf node serving img at the position given by
// the image's own bounds.
func NewSource(img image.Image) *SourceNode {
	x, y := 0, 0
	if img != nil {
		x = img.Bounds().Min.X
		y = img.Bounds().Min.Y
	}
	return NewSourceAt(img, x, y)
}

// NewSourceAt creates a leaf node serving img with its top-left pixel
// at (x, y) in the logical plane, regardless of the image's own bounds.
func NewSourceAt(img image.Image, x, y int) *SourceNode {
	return &SourceNode{img: img, x: x, y: y}
}

// Bounds returns the image footprint in the logical plane, before any
// context transform is applied.
func (s *SourceNode) Bounds() (Rect, bool) {
	if s.img == nil {
		return Rect{}, false
	}
	b := s.img.Bounds()
	return NewRect(float64(s.x), float64(s.y), float64(b.Dx()), float64(b.Dy())), true
}

// Render produces the image resampled into device space. Returns
// (nil, nil) when the node has no image or the transformed footprint
// is empty.
func (s *SourceNode) Render(ctx *Context) (*Raster, error) {
	if s.img == nil {
		return nil, nil
	}

	m := ctx.Transform()
	if m.IsIdentity() {
		return FromImage(s.img, s.x, s.y), nil
	}

	bounds, _ := s.Bounds()
	device := m.TransformRect(bounds)
	if region, ok := ctx.Region(); ok {
		device = device.Intersect(region)
	}
	if device.IsEmpty() {
		return nil, nil
	}

	minX := int(math.Floor(device.MinX))
	minY := int(math.Floor(device.MinY))
	maxX := int(math.Ceil(device.MaxX))
	maxY := int(math.Ceil(device.MaxY))
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	// Source pixel (0,0) sits at (s.x, s.y) in user space; destination
	// pixel (0,0) sits at (minX, minY) in device space.
	ib := s.img.Bounds()
	t := Translate(float64(-minX), float64(-minY)).
		Multiply(m).
		Multiply(Translate(float64(s.x-ib.Min.X), float64(s.y-ib.Min.Y)))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler(ctx.Quality()).Transform(dst,
		f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F},
		s.img, ib, xdraw.Src, nil)

	return FromImage(dst, minX, minY), nil
}

// scaler maps a quality hint to an x/image transformer.
func scaler(q Quality) xdraw.Transformer {
	switch q {
	case QualityFast:
		return xdraw.NearestNeighbor
	case QualityBest:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}
