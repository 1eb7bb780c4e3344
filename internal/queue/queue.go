// Package queue provides a small FIFO used to buffer operator commands
// between control-loop ticks.
package queue

// Queue is a slice-backed FIFO with an optional capacity bound.
//
// It is not safe for concurrent use; callers synchronize externally.
type Queue[T any] struct {
	items []T
	bound int
}

// New creates a Queue preallocated for prealloc items.
//
// If bound is positive the queue rejects items beyond that length,
// otherwise it grows without limit.
func New[T any](prealloc int, bound int) *Queue[T] {
	return &Queue[T]{
		items: make([]T, 0, prealloc),
		bound: bound,
	}
}

// Enqueue adds an item to the tail of the queue.
// It returns false if the queue is full.
func (q *Queue[T]) Enqueue(item T) bool {
	if q.bound > 0 && len(q.items) >= q.bound {
		return false
	}
	q.items = append(q.items, item)

	return true
}

// Dequeue removes and returns the item at the head of the queue.
// The second return value is false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	item := q.items[0]
	q.items[0] = zero // release the reference for the garbage collector
	q.items = q.items[1:]

	return item, true
}

// Peek returns the item at the head of the queue without removing it.
// The second return value is false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0], true
}

// Reset resets the queue to an empty state.
func (q *Queue[T]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Length returns the number of items in the queue.
func (q *Queue[T]) Length() int {
	return len(q.items)
}
