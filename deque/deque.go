// Package deque provides a doubly linked double-ended queue with constant time
// pushes and pops at both ends and an optional length bound that evicts from
// the opposite end on overflow.
//
// A Deque is not safe for concurrent use; callers that share one between
// goroutines must guard it with their own lock.
package deque

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/kapetan-io/tackle/set"
	"github.com/samber/mo"

	"github.com/linkdeque/deque-go/internal/assert"
)

// ------------------------------------------------
// Deque
// ------------------------------------------------

// Deque is a doubly linked sequence. The zero value is an empty, unbounded Deque
// ready to use.
type Deque[T comparable] struct {
	first    *Node[T]
	last     *Node[T]
	quantity int
	maxLen   mo.Option[int]
	log      *slog.Logger
}

// New returns an unbounded Deque holding items in the given order.
func New[T comparable](items ...T) *Deque[T] {
	return NewWithOptions(DefaultOptions(), items...)
}

// NewBounded returns a Deque that never holds more than maxLen elements. Items
// beyond the bound evict from the front as they are pushed, so only the last
// maxLen items survive.
func NewBounded[T comparable](maxLen int, items ...T) *Deque[T] {
	return NewWithOptions(Options{MaxLen: mo.Some(maxLen)}, items...)
}

func NewWithOptions[T comparable](opts Options, items ...T) *Deque[T] {
	set.Default(&opts.Log, slog.Default())

	if err := opts.Validate(); err != nil {
		opts.Log.Warn("invalid deque options", "error", err)
		opts.MaxLen = mo.None[int]()
	}

	d := &Deque[T]{
		maxLen: opts.MaxLen,
		log:    opts.Log,
	}
	for _, item := range items {
		d.PushBack(item)
	}
	return d
}

// PushBack links item after the current back and returns it. On a full bounded
// Deque the front element is evicted.
func (d *Deque[T]) PushBack(item T) T {
	n := &Node[T]{value: item}
	if d.last == nil {
		d.first, d.last = n, n
	} else {
		n.prior = d.last
		d.last.next = n
		d.last = n
	}
	d.quantity++

	if d.overflowing() {
		evicted := d.PopFront()
		d.logger().Debug("evicted element from front", "element", evicted.MustGet(), "max_len", d.maxLen.MustGet())
	}
	return item
}

// PushFront links item before the current front and returns it. On a full bounded
// Deque the back element is evicted.
func (d *Deque[T]) PushFront(item T) T {
	n := &Node[T]{value: item}
	if d.first == nil {
		d.first, d.last = n, n
	} else {
		n.next = d.first
		d.first.prior = n
		d.first = n
	}
	d.quantity++

	if d.overflowing() {
		evicted := d.PopBack()
		d.logger().Debug("evicted element from back", "element", evicted.MustGet(), "max_len", d.maxLen.MustGet())
	}
	return item
}

// PopBack unlinks and returns the back element. An empty Deque yields None and
// is left unchanged.
func (d *Deque[T]) PopBack() mo.Option[T] {
	n := d.last
	if n == nil {
		return mo.None[T]()
	}

	d.last = n.prior
	if d.last != nil {
		d.last.next = nil
	} else {
		d.first = nil
	}
	n.prior = nil
	d.quantity--
	return mo.Some(n.value)
}

// PopFront unlinks and returns the front element. An empty Deque yields None and
// is left unchanged.
func (d *Deque[T]) PopFront() mo.Option[T] {
	n := d.first
	if n == nil {
		return mo.None[T]()
	}

	d.first = n.next
	if d.first != nil {
		d.first.prior = nil
	} else {
		d.last = nil
	}
	n.next = nil
	d.quantity--
	return mo.Some(n.value)
}

// Clear drops every element at once. Nodes obtained before the call must not be
// used afterwards.
func (d *Deque[T]) Clear() {
	d.first, d.last = nil, nil
	d.quantity = 0
}

// Copy returns an independent Deque with the same elements and bound. Elements
// themselves are copied by assignment, so pointers inside them are shared.
func (d *Deque[T]) Copy() *Deque[T] {
	c := NewWithOptions[T](Options{MaxLen: d.maxLen, Log: d.log})
	c.Extend(d.All())
	return c
}

// Count returns how many elements are equal to item.
func (d *Deque[T]) Count(item T) int {
	var count int
	for n := d.first; n != nil; n = n.next {
		if n.value == item {
			count++
		}
	}
	return count
}

// Extend pushes every value of seq onto the back in order. The bound is enforced
// after each push, so a long seq evicts from the front as it goes. seq must not
// be backed by d itself; pass d.Copy().All() to extend a Deque with itself.
func (d *Deque[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		d.PushBack(item)
	}
}

// ExtendFront pushes every value of seq onto the front in order, which leaves
// them reversed: extending an empty Deque with 1, 2, 3 gives 3, 2, 1.
func (d *Deque[T]) ExtendFront(seq iter.Seq[T]) {
	for item := range seq {
		d.PushFront(item)
	}
}

// Index returns the position of the first element equal to item.
func (d *Deque[T]) Index(item T) (int, error) {
	return d.IndexRange(item, 0, mo.None[int]())
}

// IndexRange returns the position of the first element equal to item whose
// position lies in [start, stop). An absent stop means the length of the Deque
// at the time of the call. Returns a *NotFoundError wrapping ErrNotFound on a miss.
func (d *Deque[T]) IndexRange(item T, start int, stop mo.Option[int]) (int, error) {
	end := stop.OrElse(d.quantity)

	idx := 0
	for n := d.first; n != nil && idx < end; n = n.next {
		if idx >= start && n.value == item {
			return idx, nil
		}
		idx++
	}
	return -1, &NotFoundError{Item: item, Start: start, Stop: end}
}

// Concat returns a new unbounded Deque holding the elements of d followed by
// those of other. Neither operand is modified.
func (d *Deque[T]) Concat(other *Deque[T]) *Deque[T] {
	c := NewWithOptions[T](Options{Log: d.log})
	c.Extend(d.All())
	c.Extend(other.All())
	return c
}

// First returns the front node, or nil when the Deque is empty.
func (d *Deque[T]) First() *Node[T] {
	return d.first
}

// Last returns the back node, or nil when the Deque is empty.
func (d *Deque[T]) Last() *Node[T] {
	return d.last
}

func (d *Deque[T]) Len() int {
	return d.quantity
}

func (d *Deque[T]) MaxLen() mo.Option[int] {
	return d.maxLen
}

// NonEmpty reports whether the Deque holds at least one element.
func (d *Deque[T]) NonEmpty() bool {
	return d.quantity != 0
}

func (d *Deque[T]) Empty() bool {
	return d.quantity == 0
}

// String renders the elements front to back, e.g. Deque(1, 2, "x"). The output is
// meant for diagnostics and is not parseable.
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteString("Deque(")
	for n := d.first; n != nil; n = n.next {
		if n != d.first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", n.value)
	}
	b.WriteString(")")
	return b.String()
}

func (d *Deque[T]) overflowing() bool {
	maxLen, ok := d.maxLen.Get()
	return ok && d.quantity > maxLen
}

func (d *Deque[T]) logger() *slog.Logger {
	if d.log == nil {
		return slog.Default()
	}
	return d.log
}

// checkInvariants walks the links in both directions and panics if the anchors,
// the neighbour links, the element count or the bound disagree.
func (d *Deque[T]) checkInvariants() {
	assert.True((d.quantity == 0) == (d.first == nil), "quantity %d with first %v", d.quantity, d.first)
	assert.True((d.first == nil) == (d.last == nil), "first %v but last %v", d.first, d.last)
	if d.quantity == 1 {
		assert.True(d.first == d.last, "single element deque has distinct anchors")
	}
	if d.first != nil {
		assert.True(d.first.prior == nil, "first node has a prior: %v", d.first)
		assert.True(d.last.next == nil, "last node has a next: %v", d.last)
	}

	forward := 0
	for n := d.first; n != nil; n = n.next {
		if n.next != nil {
			assert.True(n.next.prior == n, "broken back link at position %d", forward)
		} else {
			assert.True(n == d.last, "walk from first ended before last")
		}
		forward++
	}
	assert.True(forward == d.quantity, "walked %d nodes, quantity is %d", forward, d.quantity)

	backward := 0
	for n := d.last; n != nil; n = n.prior {
		backward++
	}
	assert.True(backward == d.quantity, "walked %d nodes backward, quantity is %d", backward, d.quantity)

	if maxLen, ok := d.maxLen.Get(); ok {
		assert.True(d.quantity <= maxLen, "quantity %d exceeds max length %d", d.quantity, maxLen)
	}
}
