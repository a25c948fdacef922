package arena

import "sync"

// state is the three-state slot lifecycle of spec.md §4.5.
type state uint8

const (
	stateFree state = iota
	stateInUse
	stateCollectable
)

type slot[T any] struct {
	value    T
	state    state
	refcount int
}

// Pool is a generic pool allocator: slots are carved out of fixed-size
// blocks (spec.md §4.5 "allocates one [block], links it into the blocks
// list"), never reallocated once created, so a Handle's (block, offset)
// address stays valid for the Pool's whole lifetime.
type Pool[T any] struct {
	mu        sync.Mutex
	blockSize int
	destroy   func(*T)
	blocks    [][]slot[T]
	freeList  []int
	inUse     int
}

// NewPool builds a Pool allocating blockSize slots per block; destroy runs
// each time Sweep frees a collectable slot, so once per allocation of that
// slot (destroy may be nil for types needing no cleanup).
func NewPool[T any](blockSize int, destroy func(*T)) *Pool[T] {
	if blockSize <= 0 {
		blockSize = 64
	}
	return &Pool[T]{blockSize: blockSize, destroy: destroy}
}

// Handle owns one reference to a pool-allocated value. The zero Handle
// owns nothing and every method on it returns ErrBadHandle.
type Handle[T any] struct {
	pool *Pool[T]
	idx  int
}

func (p *Pool[T]) slotAt(idx int) *slot[T] {
	block, off := idx/p.blockSize, idx%p.blockSize
	return &p.blocks[block][off]
}

// growBlock appends one new block and pushes the flat indices of all its
// slots onto the free list, last slot first, so the block's first slot is
// the next one taken.
func (p *Pool[T]) growBlock() {
	base := len(p.blocks) * p.blockSize
	p.blocks = append(p.blocks, make([]slot[T], p.blockSize))
	for i := p.blockSize - 1; i >= 0; i-- {
		p.freeList = append(p.freeList, base+i)
	}
}

// Alloc takes a slot off the free list (growing a new block if none is
// free), initializes it with init, and returns a Handle owning the slot's
// first reference.
func (p *Pool[T]) Alloc(init func(*T)) Handle[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.freeList) == 0 {
		p.growBlock()
	}
	idx := p.freeList[len(p.freeList)-1]
	p.freeList = p.freeList[:len(p.freeList)-1]
	s := p.slotAt(idx)
	var zero T
	s.value = zero
	if init != nil {
		init(&s.value)
	}
	s.state = stateInUse
	s.refcount = 1
	p.inUse++
	return Handle[T]{pool: p, idx: idx}
}

// Valid reports whether h was returned by a Pool (false only for the zero
// Handle); it does not check whether the slot is still in use.
func (h Handle[T]) Valid() bool {
	return h.pool != nil
}

// Get returns the underlying value. The returned pointer must not be
// retained past the owning Handle's last Release.
func (h Handle[T]) Get() (*T, error) {
	if !h.Valid() {
		return nil, ErrBadHandle
	}
	h.pool.mu.Lock()
	defer h.pool.mu.Unlock()
	s := h.pool.slotAt(h.idx)
	if s.state != stateInUse {
		return nil, ErrUseAfterFree
	}
	return &s.value, nil
}

// Retain increments the slot's reference count and returns a new Handle to
// the same slot, representing the additional owned reference.
func (h Handle[T]) Retain() (Handle[T], error) {
	if !h.Valid() {
		return Handle[T]{}, ErrBadHandle
	}
	h.pool.mu.Lock()
	defer h.pool.mu.Unlock()
	s := h.pool.slotAt(h.idx)
	if s.state != stateInUse {
		return Handle[T]{}, ErrUseAfterFree
	}
	s.refcount++
	return Handle[T]{pool: h.pool, idx: h.idx}, nil
}

// Release drops the reference h owns. When the refcount reaches zero the
// slot moves to collectable; the destructor runs later, from Sweep, not
// inline here (spec.md §4.5).
func (h Handle[T]) Release() error {
	if !h.Valid() {
		return ErrBadHandle
	}
	h.pool.mu.Lock()
	defer h.pool.mu.Unlock()
	s := h.pool.slotAt(h.idx)
	if s.state != stateInUse {
		return ErrUseAfterFree
	}
	s.refcount--
	if s.refcount <= 0 {
		s.state = stateCollectable
		h.pool.inUse--
	}
	return nil
}

// Sweep runs the destructor of every collectable slot and pushes it onto
// the free list, returning the number of slots collected. This is the
// callback a GC round-robins across every enrolled pool (spec.md §4.5).
func (p *Pool[T]) Sweep() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	collected := 0
	for b := range p.blocks {
		for o := range p.blocks[b] {
			s := &p.blocks[b][o]
			if s.state != stateCollectable {
				continue
			}
			if p.destroy != nil {
				p.destroy(&s.value)
			}
			var zero T
			s.value = zero
			s.state = stateFree
			idx := b*p.blockSize + o
			p.freeList = append(p.freeList, idx)
			collected++
		}
	}
	return collected
}

// Len reports the number of currently in-use (live-referenced) slots.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}
