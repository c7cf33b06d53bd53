package deque

import (
	"log/slog"

	"github.com/samber/mo"

	"github.com/linkdeque/deque-go/internal/types"
)

// Options Configuration for a Deque. Options are fixed once the Deque is constructed.
type Options struct {
	// MaxLen bounds the number of elements. When a push would exceed the bound the
	// element at the opposite end is evicted. Absent means unbounded.
	MaxLen mo.Option[int]

	// Log receives construction warnings and eviction events. Defaults to slog.Default().
	Log *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		MaxLen: mo.None[int](),
		Log:    slog.Default(),
	}
}

// Validate reports options that construction will have to correct. The returned
// error, if any, is a *types.ErrWarn.
func (o Options) Validate() error {
	var warn types.ErrWarn
	if n, ok := o.MaxLen.Get(); ok && n <= 0 {
		warn.Add("max length must be positive, got %d; deque will be unbounded", n)
	}
	return warn.If()
}
