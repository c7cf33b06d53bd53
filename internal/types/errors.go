package types

import (
	"fmt"
	"strings"
)

// ErrWarn collects non-fatal problems found while checking a configuration.
// The caller decides whether a warning is worth failing over.
type ErrWarn struct {
	Warnings []string
}

func (e *ErrWarn) Error() string {
	return strings.Join(e.Warnings, "\n")
}

func (e *ErrWarn) Is(target error) bool {
	_, ok := target.(*ErrWarn)
	return ok
}

func (e *ErrWarn) Add(s string, arg ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(s, arg...))
}

func (e *ErrWarn) Len() int {
	return len(e.Warnings)
}

// If returns nil when nothing was added, so callers can write `return warn.If()`.
func (e *ErrWarn) If() error {
	if len(e.Warnings) > 0 {
		return e
	}
	return nil
}
