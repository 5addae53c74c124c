// Package parallel provides simple fork-join scheduling for
// CPU-bound per-row image work.
package parallel

import (
	"runtime"
	"sync"
)

// For splits the range [0, n) into contiguous bands of at least grain
// elements and runs fn(lo, hi) for each band, using up to GOMAXPROCS
// goroutines. It returns when all bands are done.
//
// Bands are disjoint and cover the range exactly once, so the result
// is deterministic regardless of how work is distributed. When the
// range fits in a single band the call runs inline with no goroutine
// overhead.
func For(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if grain < 1 {
		grain = 1
	}
	if n <= grain {
		fn(0, n)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	bands := (n + grain - 1) / grain
	if workers > bands {
		workers = bands
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	// Hand out bands from a shared counter so faster workers pick up
	// the slack from slower ones.
	var next int
	var mu sync.Mutex
	take := func() (int, int, bool) {
		mu.Lock()
		defer mu.Unlock()
		if next >= n {
			return 0, 0, false
		}
		lo := next
		hi := lo + grain
		if hi > n {
			hi = n
		}
		next = hi
		return lo, hi, true
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				lo, hi, ok := take()
				if !ok {
					return
				}
				fn(lo, hi)
			}
		}()
	}
	wg.Wait()
}
