package pipeline

import (
	"errors"
	"fmt"
)

// ErrSplitOutOfRange indicates a split point outside [0, len(items)].
var ErrSplitOutOfRange = errors.New("split point out of range")

// Split is the result of SplitAt: the first n items and the rest.
type Split[T any] struct {
	Prefix []T
	Suffix []T
}

// SplitAt returns the first n items as Prefix and the remaining items as
// Suffix, order preserved. Both slices alias items but are clipped, so
// appending to Prefix never overwrites Suffix.
func SplitAt[T any](n int, items []T) (Split[T], error) {
	if n < 0 || n > len(items) {
		return Split[T]{}, fmt.Errorf("%w: %d (length %d)", ErrSplitOutOfRange, n, len(items))
	}
	return Split[T]{
		Prefix: items[:n:n],
		Suffix: items[n:len(items):len(items)],
	}, nil
}
