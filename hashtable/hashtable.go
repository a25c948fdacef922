package hashtable

// Hashtable layers an equality predicate on top of a CollisionTable,
// serving both exact-entry lookup and sharing/interning: Find answers
// "is there already a stored entry equal to v", which Intern turns into
// "store v only if nothing equal is already present".
type Hashtable[T Positioned] struct {
	*CollisionTable[T]
	equal func(a, b T) bool
}

// NewHashtable builds a Hashtable of tableSize buckets, hashing with hash
// and comparing with equal.
func NewHashtable[T Positioned](tableSize int, hash func(T) uint64, equal func(a, b T) bool) *Hashtable[T] {
	return &Hashtable[T]{CollisionTable: NewCollisionTable[T](tableSize, hash), equal: equal}
}

// Find returns an entry equal to v already in the table, if any.
func (h *Hashtable[T]) Find(v T) (T, bool) {
	for _, e := range h.Bucket(h.BucketIndex(v)) {
		if h.equal(e, v) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Intern returns the canonical stored entry equal to v, inserting v itself
// if none exists yet (spec.md §4.5 "Sharing fast path": interning vlocs,
// intvals, and zones in a per-category cache keyed by structural
// equality). The bool result reports whether v itself was the one stored
// (true) or an existing entry was reused (false).
func (h *Hashtable[T]) Intern(v T) (T, bool) {
	if existing, ok := h.Find(v); ok {
		return existing, false
	}
	h.Insert(v)
	return v, true
}
