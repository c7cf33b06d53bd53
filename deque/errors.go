package deque

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("item not found in deque")
)

// NotFoundError is returned by Index and IndexRange when no element equal to Item
// sits in the half-open range [Start, Stop).
type NotFoundError struct {
	Item  any
	Start int
	Stop  int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%#v is not in deque between index %d and %d", e.Item, e.Start, e.Stop)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
