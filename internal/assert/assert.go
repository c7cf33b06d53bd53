package assert

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}

// Iterator is anything that hands out values one at a time until exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Next is a test helper to assert the next call to Next() returns the required value
func Next[T any](t *testing.T, it Iterator[T], want T) bool {
	t.Helper()
	got, ok := it.Next()
	if !assert2.True(t, ok, "expected %v, iterator is exhausted", want) {
		return false
	}
	return assert2.Equal(t, want, got)
}

// Done is a test helper to verify the iterator has nothing left
func Done[T any](t *testing.T, it Iterator[T]) bool {
	t.Helper()
	got, ok := it.Next()
	return assert2.False(t, ok, "expected exhausted iterator, got %v", got)
}
