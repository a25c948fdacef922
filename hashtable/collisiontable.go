package hashtable

import "sync"

// CollisionTable is a fixed-bucket-count table of Positioned entries,
// grouped by hash alone (no equality check): entries sharing a hash simply
// share a bucket. Every stored entry is stamped with its own Position so
// Remove runs in O(1) (original_source/utils/hashtable.hh).
type CollisionTable[T Positioned] struct {
	mu      sync.Mutex
	buckets [][]T
	hash    func(T) uint64
	size    int
}

// NewCollisionTable builds a table of tableSize buckets (minimum 1),
// hashing entries with hash.
func NewCollisionTable[T Positioned](tableSize int, hash func(T) uint64) *CollisionTable[T] {
	if tableSize <= 0 {
		tableSize = 1
	}
	return &CollisionTable[T]{buckets: make([][]T, tableSize), hash: hash}
}

// Len reports the total number of stored entries.
func (c *CollisionTable[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// BucketCount reports the fixed number of buckets, for callers that need
// to enumerate every stored entry via repeated Bucket calls.
func (c *CollisionTable[T]) BucketCount() int {
	return len(c.buckets)
}

// BucketIndex returns the bucket v would hash into.
func (c *CollisionTable[T]) BucketIndex(v T) int {
	return int(c.hash(v) % uint64(len(c.buckets)))
}

// Bucket returns a snapshot slice of the entries currently in bucket b.
// Callers that need to iterate while the table may be concurrently
// mutated should copy before releasing any lock they hold on the result.
func (c *CollisionTable[T]) Bucket(b int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.buckets[b]))
	copy(out, c.buckets[b])
	return out
}

// Insert adds v to its hash bucket and stamps v's Position.
func (c *CollisionTable[T]) Insert(v T) Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.BucketIndex(v)
	pos := Position{Bucket: b, Index: len(c.buckets[b])}
	c.buckets[b] = append(c.buckets[b], v)
	v.SetPosition(pos)
	c.size++
	return pos
}

// Remove deletes the entry at pos by swapping it with its bucket's last
// element and popping, restamping the moved element's Position (O(1); no
// other entry's Position changes). Returns ErrNotStored if pos does not
// name a live slot.
func (c *CollisionTable[T]) Remove(pos Position) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !pos.Stored() || pos.Bucket < 0 || pos.Bucket >= len(c.buckets) {
		return ErrNotStored
	}
	bucket := c.buckets[pos.Bucket]
	if pos.Index < 0 || pos.Index >= len(bucket) {
		return ErrNotStored
	}
	last := len(bucket) - 1
	removed := bucket[pos.Index]
	if pos.Index != last {
		moved := bucket[last]
		bucket[pos.Index] = moved
		moved.SetPosition(pos)
	}
	var zero T
	bucket[last] = zero
	c.buckets[pos.Bucket] = bucket[:last]
	removed.SetPosition(notStored)
	c.size--
	return nil
}

// Clear empties every bucket.
func (c *CollisionTable[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.buckets {
		for _, v := range c.buckets[i] {
			v.SetPosition(notStored)
		}
		c.buckets[i] = nil
	}
	c.size = 0
}
