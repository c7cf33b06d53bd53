package deque

import "fmt"

// Node is one link of a Deque. Nodes are created by the push operations and are
// only valid while they remain in the Deque that created them.
type Node[T comparable] struct {
	value T
	next  *Node[T]
	prior *Node[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the neighbour toward the back, or nil at the back.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prior returns the neighbour toward the front, or nil at the front.
func (n *Node[T]) Prior() *Node[T] {
	return n.prior
}

// String renders the node with its neighbours elided, e.g. Node(3, ..., <nil>).
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%#v, %s, %s)", n.value, elide(n.prior), elide(n.next))
}

func elide[T comparable](n *Node[T]) string {
	if n == nil {
		return "<nil>"
	}
	return "..."
}
