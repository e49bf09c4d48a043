package cinder

import "log"

// Pool is a generic acquire/release object pool used to bound allocation
// churn on hot paths (particles, trail points). Released objects are reset
// and kept on a free list capped at a maximum size; beyond the cap they are
// dropped for the garbage collector and never referenced again.
//
// Pool is not safe for concurrent use; like the rest of the engine it
// assumes single-threaded frame ticking.
type Pool[T any] struct {
	free  []*T
	out   map[*T]struct{}
	max   int
	alloc func() *T
	reset func(*T)
}

// DefaultPoolSize caps the free list when NewPool is given a non-positive max.
const DefaultPoolSize = 256

// NewPool creates a pool. alloc may be nil (plain new(T)); reset may be nil,
// in which case released objects are zeroed.
func NewPool[T any](max int, alloc func() *T, reset func(*T)) *Pool[T] {
	if max <= 0 {
		max = DefaultPoolSize
	}
	if alloc == nil {
		alloc = func() *T { return new(T) }
	}
	if reset == nil {
		reset = func(item *T) {
			var zero T
			*item = zero
		}
	}
	return &Pool[T]{
		free:  make([]*T, 0, max),
		out:   make(map[*T]struct{}),
		max:   max,
		alloc: alloc,
		reset: reset,
	}
}

// Acquire returns a reset object, reusing a free one when available.
func (p *Pool[T]) Acquire() *T {
	var item *T
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		item = p.alloc()
	}
	p.out[item] = struct{}{}
	return item
}

// Release returns an object to the pool. The caller must not reference the
// object afterward. Releasing an object that was not acquired from this pool
// (or releasing one twice) is detected, logged, and ignored so the free list
// can never hold duplicates.
func (p *Pool[T]) Release(item *T) {
	if item == nil {
		return
	}
	if _, ok := p.out[item]; !ok {
		log.Printf("cinder: pool release of unowned object; ignored")
		return
	}
	delete(p.out, item)
	p.reset(item)
	if len(p.free) < p.max {
		p.free = append(p.free, item)
	}
	// Over the cap the object is simply dropped.
}

// FreeCount returns the number of objects on the free list.
func (p *Pool[T]) FreeCount() int { return len(p.free) }

// InUse returns the number of objects currently acquired.
func (p *Pool[T]) InUse() int { return len(p.out) }
