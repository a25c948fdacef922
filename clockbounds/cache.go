package clockbounds

import "sync"

// Cache memoizes a local clock-bounds computation keyed by K (typically a
// discrete location tuple), sharded into a fixed number of independently
// mutexed buckets rather than protected by one global lock (spec.md §5
// "thread-safe via spin-lock-protected buckets"; Go's standard library has
// no portable spinlock, so each bucket uses a plain sync.Mutex, which under
// the cache's expected low contention is the idiomatic substitute).
type Cache[K comparable] struct {
	buckets []cacheBucket[K]
	mask    uint64
	hash    func(K) uint64
	compute func(K) LU
}

type cacheBucket[K comparable] struct {
	mu      sync.Mutex
	entries map[K]LU
}

// NewCache builds a Cache with numBuckets buckets (rounded up to the next
// power of two), hashing keys with hash and computing misses with compute.
func NewCache[K comparable](numBuckets int, hash func(K) uint64, compute func(K) LU) *Cache[K] {
	if numBuckets <= 0 {
		numBuckets = 1
	}
	n := 1
	for n < numBuckets {
		n <<= 1
	}
	c := &Cache[K]{
		buckets: make([]cacheBucket[K], n),
		mask:    uint64(n - 1),
		hash:    hash,
		compute: compute,
	}
	for i := range c.buckets {
		c.buckets[i].entries = make(map[K]LU)
	}
	return c
}

// Get returns the cached LU for key, computing and storing it on a miss.
func (c *Cache[K]) Get(key K) LU {
	b := &c.buckets[c.hash(key)&c.mask]
	b.mu.Lock()
	defer b.mu.Unlock()
	if lu, ok := b.entries[key]; ok {
		return lu
	}
	lu := c.compute(key)
	b.entries[key] = lu
	return lu
}

// Len reports the total number of cached entries across every bucket.
func (c *Cache[K]) Len() int {
	total := 0
	for i := range c.buckets {
		c.buckets[i].mu.Lock()
		total += len(c.buckets[i].entries)
		c.buckets[i].mu.Unlock()
	}
	return total
}
