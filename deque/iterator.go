package deque

import "iter"

// Iterator walks a Deque front to back. It is not safe to mutate the Deque
// while an Iterator over it is in use.
type Iterator[T comparable] struct {
	node *Node[T]
}

// Next returns the next element, or false once the back has been passed.
func (it *Iterator[T]) Next() (T, bool) {
	if it.node == nil {
		var zero T
		return zero, false
	}
	v := it.node.value
	it.node = it.node.next
	return v, true
}

// Iter returns a fresh Iterator positioned at the front.
func (d *Deque[T]) Iter() *Iterator[T] {
	return &Iterator[T]{node: d.first}
}

// All yields the elements front to back. Every call starts again at the front.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.first; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front by following prior links.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.last; n != nil; n = n.prior {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a new slice.
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.quantity)
	for v := range d.All() {
		values = append(values, v)
	}
	return values
}
