package calendar

import "sync/atomic"

// memo is a lock-free, write-once cell for values computed on first use.
// Concurrent first readers may both compute; the computation must be
// idempotent, and whichever store lands is equivalent to the other.
type memo[T any] struct {
	p atomic.Pointer[T]
}

func (m *memo[T]) get(compute func() T) T {
	if v := m.p.Load(); v != nil {
		return *v
	}
	v := compute()
	m.p.CompareAndSwap(nil, &v)
	return *m.p.Load()
}
