package repo

// Bounded is a fixed-capacity queue: Push adds at the front and drops
// whatever falls off the back
type Bounded[T any] struct {
	items []T
	cap   int
}

// NewBounded returns an empty queue holding at most capacity items
// capacity below 1 is treated as 1
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{items: make([]T, 0, capacity), cap: capacity}
}

// Push inserts v at the front and returns the evicted items, oldest last
func (b *Bounded[T]) Push(v T) []T {
	var evicted []T
	if len(b.items) == b.cap {
		evicted = append(evicted, b.items[len(b.items)-1])
		b.items = b.items[:len(b.items)-1]
	}
	b.items = append(b.items, v)
	copy(b.items[1:], b.items[:len(b.items)-1])
	b.items[0] = v
	return evicted
}

// Resize changes the capacity, truncating from the back when it shrinks
func (b *Bounded[T]) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	b.cap = capacity
	if len(b.items) > capacity {
		clear(b.items[capacity:])
		b.items = b.items[:capacity]
	}
}

// Items returns a copy, newest first
func (b *Bounded[T]) Items() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of stored items
func (b *Bounded[T]) Len() int { return len(b.items) }

// Cap returns the capacity
func (b *Bounded[T]) Cap() int { return b.cap }
