package fx

import "sync"

// Node is a unit in the rendering graph: it holds zero or more upstream
// sources and produces a Raster on demand.
//
// Render pulls renderings from the node's sources, applies the node's
// own transform, and returns the result. A nil Raster with a nil error
// means "nothing to draw" for the given context; it is an expected
// outcome, not a failure. Errors are reserved for real faults (an
// upstream decode error, an unusable buffer) and propagate unchanged.
//
// Bounds returns the node's output region in the logical plane. The
// second result is false when the node has no defined bounds, e.g. a
// pass-through node whose source is unset.
//
// Node equality is identity: two nodes are the same node only if they
// are the same pointer.
type Node interface {
	// Sources returns the node's current upstream sources, ordered.
	// The returned slice is a copy; mutating it does not affect the node.
	Sources() []Node

	// Bounds returns the node's output bounding region.
	Bounds() (Rect, bool)

	// Render produces a raster for the given context, or (nil, nil)
	// if there is nothing to draw.
	Render(ctx *Context) (*Raster, error)
}

// baseNode provides the source bookkeeping shared by concrete nodes.
// The source list is mutable for the node's lifetime and guarded for
// concurrent Render/SetSource use.
type baseNode struct {
	mu   sync.RWMutex
	srcs []Node
}

// Sources returns a copy of the current source list.
func (b *baseNode) Sources() []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Node, len(b.srcs))
	copy(out, b.srcs)
	return out
}

// setSources replaces the whole source list.
func (b *baseNode) setSources(srcs []Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.srcs = make([]Node, len(srcs))
	copy(b.srcs, srcs)
}

// source returns the i-th source, or nil if unset.
func (b *baseNode) source(i int) Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.srcs) {
		return nil
	}
	return b.srcs[i]
}

// setSource replaces the i-th source, growing the list as needed.
func (b *baseNode) setSource(i int, n Node) {
	if i < 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.srcs) <= i {
		b.srcs = append(b.srcs, nil)
	}
	b.srcs[i] = n
}

// renderSource renders the i-th source against ctx.
// An unset source renders nothing.
func (b *baseNode) renderSource(i int, ctx *Context) (*Raster, error) {
	src := b.source(i)
	if src == nil {
		return nil, nil
	}
	return src.Render(ctx)
}

// sourceBounds returns the bounds of the i-th source.
func (b *baseNode) sourceBounds(i int) (Rect, bool) {
	src := b.source(i)
	if src == nil {
		return Rect{}, false
	}
	return src.Bounds()
}
