// Command fxdemo demonstrates the fx filter graph.
//
// It loads a PNG (or synthesizes a gradient), runs it through a
// component transfer node, and writes the result.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/fx"
)

func main() {
	var (
		input     = flag.String("input", "", "input PNG (empty = synthesized gradient)")
		output    = flag.String("output", "out.png", "output file")
		width     = flag.Int("width", 512, "gradient width when no input is given")
		height    = flag.Int("height", 512, "gradient height when no input is given")
		gamma     = flag.Float64("gamma", 0, "gamma exponent for RGB (0 = off)")
		slope     = flag.Float64("slope", 1, "linear slope for RGB")
		intercept = flag.Float64("intercept", 0, "linear intercept for RGB, 0-255 range")
		scale     = flag.Float64("scale", 1, "render scale factor")
		rotate    = flag.Float64("rotate", 0, "render rotation in degrees")
	)
	flag.Parse()

	img, err := loadInput(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	var fn fx.Transfer
	switch {
	case *gamma > 0:
		fn = &fx.Gamma{Amplitude: 1, Exponent: *gamma}
	case *slope != 1 || *intercept != 0:
		fn = &fx.Linear{Slope: *slope, Intercept: *intercept}
	}

	src := fx.NewSource(img)
	node := fx.NewComponentTransfer(src, nil, fn, fn, fn)

	transform := fx.Scale(*scale, *scale)
	if *rotate != 0 {
		transform = fx.Rotate(*rotate * math.Pi / 180).Multiply(transform)
	}

	ctx := fx.NewContext(fx.WithTransform(transform))
	raster, err := node.Render(ctx)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	if raster == nil {
		log.Fatal("Nothing to draw")
	}

	if err := raster.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d)\n", *output, raster.Width(), raster.Height())
}

// loadInput reads a PNG or synthesizes a diagonal gradient.
func loadInput(path string, w, h int) (image.Image, error) {
	if path == "" {
		return gradient(w, h), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Decode(f)
}

// gradient builds an opaque diagonal RGB gradient.
func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(255 * x / max(w-1, 1))
			img.Pix[i+1] = uint8(255 * y / max(h-1, 1))
			img.Pix[i+2] = uint8(255 * (x + y) / max(w+h-2, 1))
			img.Pix[i+3] = 255
		}
	}
	return img
}
