package model

import (
	"iter"

	"github.com/pkg/errors"
)

// Tunnel is a bounded stack: the most recent item is on top, and pushing
// onto a full tunnel drops the oldest item out of the bottom.
type Tunnel[T any] struct {
	capacity int
	items    []T // most recent first
}

// NewTunnel creates an empty tunnel holding at most capacity items
func NewTunnel[T any](capacity int) (*Tunnel[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "[NewTunnel] capacity: %d", capacity)
	}
	return &Tunnel[T]{
		capacity: capacity,
		items:    make([]T, 0, capacity),
	}, nil
}

// Push places item on top. When the tunnel was already full the oldest item
// is evicted and returned with ok set, so the caller can recycle it.
func (t *Tunnel[T]) Push(item T) (evicted T, ok bool) {
	if len(t.items) == t.capacity {
		evicted, ok = t.items[len(t.items)-1], true
		t.items = t.items[:len(t.items)-1]
	}
	t.items = append(t.items, item)
	copy(t.items[1:], t.items[:len(t.items)-1])
	t.items[0] = item
	return evicted, ok
}

// Peek returns the most recently pushed item. ok is false when the tunnel is empty.
func (t *Tunnel[T]) Peek() (item T, ok bool) {
	if len(t.items) == 0 {
		return item, false
	}
	return t.items[0], true
}

// All yields the stored items, most recent first. The sequence can be
// ranged over again and sees the same items until the next Push or Clear.
func (t *Tunnel[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range t.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of stored items
func (t *Tunnel[T]) Len() int { return len(t.items) }

// Cap returns the maximum number of stored items
func (t *Tunnel[T]) Cap() int { return t.capacity }

// Clear empties the tunnel and returns what it held, most recent first
func (t *Tunnel[T]) Clear() []T {
	dropped := make([]T, len(t.items))
	copy(dropped, t.items)
	clear(t.items)
	t.items = t.items[:0]
	return dropped
}
