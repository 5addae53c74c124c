package fx

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Default cache configuration constants.
const (
	// DefaultCacheSizeMB is the default maximum cache size in megabytes.
	DefaultCacheSizeMB = 64
	// bytesPerMB is the number of bytes in a megabyte.
	bytesPerMB = 1024 * 1024
)

// RasterCache provides an LRU cache for rendered rasters.
// It is thread-safe and uses atomic counters for statistics.
//
// The cache evicts least recently used entries when the memory limit
// is exceeded. Entries are keyed by a 64-bit hash; see CacheNode for
// how render keys are derived from a context.
type RasterCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry // hash -> entry
	lru     *list.List             // LRU order (front = most recent)
	size    int64                  // Current memory usage in bytes
	maxSize int64                  // Memory budget in bytes

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry holds a cached raster with its bookkeeping.
type cacheEntry struct {
	key     uint64
	raster  *Raster
	size    int64
	element *list.Element
}

// CacheStats contains cache statistics for monitoring.
type CacheStats struct {
	// Size is the current memory usage in bytes.
	Size int64
	// MaxSize is the memory budget in bytes.
	MaxSize int64
	// Entries is the number of cached entries.
	Entries int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
	// Evictions is the number of entries evicted.
	Evictions uint64
}

// NewRasterCache creates a raster cache with the specified maximum
// size in megabytes. Non-positive values use DefaultCacheSizeMB.
func NewRasterCache(maxSizeMB int) *RasterCache {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultCacheSizeMB
	}
	return &RasterCache{
		entries: make(map[uint64]*cacheEntry),
		lru:     list.New(),
		maxSize: int64(maxSizeMB) * bytesPerMB,
	}
}

// Get retrieves a cached raster by key.
// On a hit the entry is moved to the front of the LRU list.
func (c *RasterCache) Get(key uint64) (*Raster, bool) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(entry.element)
	raster := entry.raster
	c.mu.Unlock()

	c.hits.Add(1)
	return raster, true
}

// Put stores a raster in the cache. If the cache exceeds its memory
// budget, least recently used entries are evicted. An entry larger
// than the whole budget is not cached at all.
func (c *RasterCache) Put(key uint64, raster *Raster) {
	if raster == nil {
		return
	}

	entrySize := raster.sizeBytes()
	if entrySize <= 0 {
		return
	}
	if entrySize > c.maxSize {
		Logger().Warn("raster too large to cache",
			"bytes", entrySize, "budget", c.maxSize)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		c.size -= existing.size
		c.lru.Remove(existing.element)
	}

	c.evictUntilSize(c.maxSize - entrySize)

	entry := &cacheEntry{
		key:    key,
		raster: raster,
		size:   entrySize,
	}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry
	c.size += entrySize
}

// Remove drops an entry from the cache.
// Returns true if the entry was present.
func (c *RasterCache) Remove(key uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(entry.element)
	delete(c.entries, key)
	c.size -= entry.size
	return true
}

// Clear removes all entries from the cache.
func (c *RasterCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*cacheEntry)
	c.lru.Init()
	c.size = 0
}

// Len returns the number of cached entries.
func (c *RasterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns current cache statistics.
func (c *RasterCache) Stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	c.mu.Lock()
	size := c.size
	entries := len(c.entries)
	maxSize := c.maxSize
	c.mu.Unlock()

	return CacheStats{
		Size:      size,
		MaxSize:   maxSize,
		Entries:   entries,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// evictUntilSize evicts LRU entries until the cache size is at most
// target. Caller must hold the lock.
func (c *RasterCache) evictUntilSize(target int64) {
	for c.size > target {
		oldest := c.lru.Back()
		if oldest == nil {
			return
		}
		entry := oldest.Value.(*cacheEntry)
		c.lru.Remove(oldest)
		delete(c.entries, entry.key)
		c.size -= entry.size
		c.evictions.Add(1)
	}
}
