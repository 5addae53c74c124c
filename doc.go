// Package fx provides a lazily-evaluated raster filter graph for Go.
//
// # Overview
//
// fx models image processing as a pull-based graph of filter nodes.
// Each Node holds zero or more upstream sources and produces a Raster
// on demand when Render is called with a Context. Nothing is computed
// until a caller at the bottom of the graph asks for pixels, and
// derived state (such as compiled lookup tables) is cached inside the
// nodes between renders.
//
// # Quick Start
//
//	import "github.com/gogpu/fx"
//
//	// Wrap a decoded image as a graph leaf.
//	src := fx.NewSource(img)
//
//	// Brighten the red channel: r' = 0.5*r + 64.
//	node := fx.NewComponentTransfer(src, nil, &fx.Linear{Slope: 0.5, Intercept: 64}, nil, nil)
//
//	// Pull a rendering.
//	raster, err := node.Render(fx.NewContext())
//
// # Architecture
//
// The library is organized into:
//   - Graph: Node, SourceNode, ComponentTransfer, CacheNode
//   - Transfer functions: Identity, Table, Discrete, Linear, Gamma
//   - Raster plumbing: Raster, Rect, Matrix, Context
//   - Internal: parallel (row-band scheduling)
//
// # Coordinate System
//
// Rasters live on an infinite integer plane: every Raster carries the
// origin of its buffer in that plane, and node bounds are expressed in
// the same coordinates. Origin (0,0) is top-left, X increases right,
// Y increases down.
//
// # Concurrency
//
// Render may be called from any number of goroutines against the same
// node, concurrently with configuration changes. See ComponentTransfer
// for the publication discipline that makes this safe.
package fx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
