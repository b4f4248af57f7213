package twig

import "errors"

// ErrPoolTooSmall is returned by NewPool when the backing buffer cannot hold
// a single slot.
var ErrPoolTooSmall = errors.New("twig: pool buffer smaller than one slot")

// noSlot marks the end of the freelist.
const noSlot = -1

// Pool is a fixed-capacity allocator over a single backing buffer of equal
// slots. Free slots are threaded into a singly linked freelist; Alloc pops the
// head and Free appends to the tail, both in O(1). The pool never grows.
//
// Pool does not detect double frees: returning a slot that is already on the
// freelist corrupts it. Owners must track which slots they hold.
type Pool[T any] struct {
	buf       []T
	next      []int32
	firstFree int32
	lastFree  int32
	available int
}

// NewPool threads every slot of buf into the freelist in ascending order.
// buf is owned by the pool from then on.
func NewPool[T any](buf []T) (*Pool[T], error) {
	if len(buf) == 0 {
		return nil, ErrPoolTooSmall
	}
	p := &Pool[T]{
		buf:  buf,
		next: make([]int32, len(buf)),
	}
	p.Reset()
	return p, nil
}

// Reset returns every slot to the freelist. Slot contents are left as is.
func (p *Pool[T]) Reset() {
	for i := range p.next {
		p.next[i] = int32(i + 1)
	}
	p.next[len(p.next)-1] = noSlot
	p.firstFree = 0
	p.lastFree = int32(len(p.next) - 1)
	p.available = len(p.next)
}

// Alloc takes the first free slot and returns its index. It returns false
// when the pool is exhausted.
func (p *Pool[T]) Alloc() (int, bool) {
	if p.firstFree == noSlot {
		return noSlot, false
	}
	i := p.firstFree
	p.firstFree = p.next[i]
	if p.firstFree == noSlot {
		p.lastFree = noSlot
	}
	p.next[i] = noSlot
	p.available--
	return int(i), true
}

// Free appends slot i to the end of the freelist. Indices outside the buffer
// are rejected and leave the pool untouched.
func (p *Pool[T]) Free(i int) bool {
	if i < 0 || i >= len(p.buf) {
		return false
	}
	p.next[i] = noSlot
	if p.lastFree == noSlot {
		p.firstFree = int32(i)
	} else {
		p.next[p.lastFree] = int32(i)
	}
	p.lastFree = int32(i)
	p.available++
	return true
}

// Slot returns a pointer to slot i. The pointer stays valid for the life of
// the pool since the buffer never moves.
func (p *Pool[T]) Slot(i int) *T {
	return &p.buf[i]
}

// Cap returns the number of slots in the pool.
func (p *Pool[T]) Cap() int {
	return len(p.buf)
}

// Available returns the number of free slots.
func (p *Pool[T]) Available() int {
	return p.available
}
