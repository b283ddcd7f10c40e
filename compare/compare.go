// Package compare contains the comparers and equality functions used by the query operators when the
// caller does not supply one, together with a few ready-made comparers for common key types.
package compare

import (
	"cmp"
	"strings"
)

// Comparer is a three-way comparison. It returns a negative number when a sorts before b, zero when
// they are equal, and a positive number when a sorts after b.
type Comparer[T any] func(a, b T) int

// Ordered is the default comparer for all ordered types.
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Negate returns a comparer that reverses the order of c. The result of c is negated rather than the
// operands swapped, so ties reported by c remain ties.
func Negate[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		r := c(a, b)
		switch {
		case r < 0:
			return 1
		case r > 0:
			return -1
		}
		return 0
	}
}

// By returns a comparer for T that compares the keys produced by key using c.
func By[T, K any](key func(T) K, c Comparer[K]) Comparer[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Then returns a comparer that consults next only when first reports a tie.
func Then[T any](first, next Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		if r := first(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// FoldedStrings compares two strings under simple Unicode case folding.
func FoldedStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
