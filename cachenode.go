package fx

import (
	"hash/fnv"
	"math"
	"sync/atomic"
)

// cacheNodeSeq issues unique ids so nodes sharing a RasterCache never
// collide on keys.
var cacheNodeSeq atomic.Uint64

// CacheNode is a pass-through filter node that remembers renderings of
// its source, keyed by the rendering context. Repeated renders with an
// equivalent context are served from the cache instead of re-pulling
// the upstream graph.
//
// The cache is an optimization only: a hit returns pixels identical to
// what a fresh render would produce. Hits are returned as clones, so a
// cached buffer never aliases what a caller received.
//
// CacheNode does not observe upstream mutation. After reconfiguring
// anything above it (for example SetFunc on an upstream
// ComponentTransfer), call Invalidate to drop stale entries.
type CacheNode struct {
	baseNode

	id    uint64
	cache *RasterCache
}

// NewCacheNode creates a caching node over src with its own cache of
// the default size.
func NewCacheNode(src Node) *CacheNode {
	return NewCacheNodeWith(src, NewRasterCache(DefaultCacheSizeMB))
}

// NewCacheNodeWith creates a caching node over src backed by the given
// cache. Several nodes may share one cache to share its memory budget;
// keys include the node identity so entries never collide.
func NewCacheNodeWith(src Node, cache *RasterCache) *CacheNode {
	if cache == nil {
		cache = NewRasterCache(DefaultCacheSizeMB)
	}
	n := &CacheNode{id: cacheNodeSeq.Add(1), cache: cache}
	n.setSources([]Node{src})
	return n
}

// Source returns the node's upstream source, or nil if unset.
func (n *CacheNode) Source() Node {
	return n.source(0)
}

// SetSource replaces the node's upstream source and drops all cached
// renderings.
func (n *CacheNode) SetSource(src Node) {
	n.setSource(0, src)
	n.Invalidate()
}

// Invalidate drops all cached renderings. Call after mutating the
// upstream graph.
func (n *CacheNode) Invalidate() {
	n.cache.Clear()
}

// Stats returns the statistics of the backing cache.
func (n *CacheNode) Stats() CacheStats {
	return n.cache.Stats()
}

// Bounds returns the source's bounds.
func (n *CacheNode) Bounds() (Rect, bool) {
	return n.sourceBounds(0)
}

// Render serves the source's rendering for ctx, from cache when
// possible. Empty renders are not cached.
func (n *CacheNode) Render(ctx *Context) (*Raster, error) {
	key := n.renderKey(ctx)
	if cached, ok := n.cache.Get(key); ok {
		return cached.Clone(), nil
	}

	raster, err := n.renderSource(0, ctx)
	if err != nil || raster == nil {
		return raster, err
	}

	n.cache.Put(key, raster.Clone())
	return raster, nil
}

// renderKey fingerprints the node identity and the context parameters
// that influence the rendering.
func (n *CacheNode) renderKey(ctx *Context) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	write := func(v uint64) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		buf[4] = byte(v >> 32)
		buf[5] = byte(v >> 40)
		buf[6] = byte(v >> 48)
		buf[7] = byte(v >> 56)
		_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	}

	write(n.id)

	m := ctx.Transform()
	for _, f := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		write(math.Float64bits(f))
	}
	write(uint64(ctx.Quality()))
	if region, ok := ctx.Region(); ok {
		write(math.Float64bits(region.MinX))
		write(math.Float64bits(region.MinY))
		write(math.Float64bits(region.MaxX))
		write(math.Float64bits(region.MaxY))
	}
	return h.Sum64()
}
