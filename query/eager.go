package query

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/compare"
	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/query/hash"
)

// Aggregate folds the elements of src using f, with the first element as the initial accumulator. It
// panics with QUERY_EMPTY_SOURCE if src is empty.
func Aggregate[T any](src Sequence[T], f func(T, T) T) T {
	assertSource(`Aggregate`, `source`, src)
	assertArgument(`Aggregate`, `func`, f)
	c := src.Cursor()
	result, ok := c.Next()
	if !ok {
		panic(emptySource(`Aggregate`))
	}
	return reduce(c, result, f)
}

// AggregateSeed folds the elements of src using f starting with seed. The seed is returned unchanged
// when src is empty.
func AggregateSeed[T, A any](src Sequence[T], seed A, f func(A, T) A) A {
	assertSource(`AggregateSeed`, `source`, src)
	assertArgument(`AggregateSeed`, `func`, f)
	return reduce(src.Cursor(), seed, f)
}

// AggregateResult is like AggregateSeed but returns the result of calling result with the final
// accumulator.
func AggregateResult[T, A, R any](src Sequence[T], seed A, f func(A, T) A, result func(A) R) R {
	assertSource(`AggregateResult`, `source`, src)
	assertArgument(`AggregateResult`, `func`, f)
	assertArgument(`AggregateResult`, `result`, result)
	return result(reduce(src.Cursor(), seed, f))
}

func reduce[T, A any](c Cursor[T], acc A, f func(A, T) A) A {
	for {
		v, ok := c.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// All returns true if predicate returns true for every element of src. The traversal stops at the first
// element for which it doesn't. An empty sequence yields true.
func All[T any](src Sequence[T], predicate func(T) bool) bool {
	assertSource(`All`, `source`, src)
	assertArgument(`All`, `predicate`, predicate)
	c := src.Cursor()
	for {
		v, ok := c.Next()
		if !ok {
			return true
		}
		if !predicate(v) {
			return false
		}
	}
}

// Any returns true if src has at least one element.
func Any[T any](src Sequence[T]) bool {
	assertSource(`Any`, `source`, src)
	_, ok := src.Cursor().Next()
	return ok
}

// AnyWhere returns true if predicate returns true for at least one element of src. The traversal stops
// at the first such element.
func AnyWhere[T any](src Sequence[T], predicate func(T) bool) bool {
	assertSource(`AnyWhere`, `source`, src)
	assertArgument(`AnyWhere`, `predicate`, predicate)
	_, found := find(src.Cursor(), predicate)
	return found
}

// Count returns the number of elements in src.
func Count[T any](src Sequence[T]) int {
	assertSource(`Count`, `source`, src)
	return count(src.Cursor())
}

// CountWhere returns the number of elements in src for which predicate returns true.
func CountWhere[T any](src Sequence[T], predicate func(T) bool) int {
	assertSource(`CountWhere`, `source`, src)
	assertArgument(`CountWhere`, `predicate`, predicate)
	return count(&predicateCursor[T]{src.Cursor(), predicate})
}

func count[T any](c Cursor[T]) (n int) {
	for {
		if _, ok := c.Next(); !ok {
			return
		}
		n++
	}
}

func find[T any](c Cursor[T], predicate func(T) bool) (v T, ok bool) {
	for {
		if v, ok = c.Next(); !ok || predicate(v) {
			return
		}
	}
}

func last[T any](c Cursor[T], predicate func(T) bool) (result T, found bool) {
	for {
		v, ok := c.Next()
		if !ok {
			return
		}
		if predicate == nil || predicate(v) {
			result = v
			found = true
		}
	}
}

// single returns the only element matching predicate. The found flag is false when no element matches.
// It panics with QUERY_AMBIGUOUS_MATCH if more than one element matches.
func single[T any](op string, c Cursor[T], predicate func(T) bool) (result T, found bool) {
	for {
		v, ok := c.Next()
		if !ok {
			return
		}
		if predicate == nil || predicate(v) {
			if found {
				panic(errors.Error(errors.AmbiguousMatch, issue.H{`operator`: op}))
			}
			result = v
			found = true
		}
	}
}

// First returns the first element of src. It panics with QUERY_EMPTY_SOURCE if src is empty.
func First[T any](src Sequence[T]) T {
	assertSource(`First`, `source`, src)
	v, ok := src.Cursor().Next()
	if !ok {
		panic(emptySource(`First`))
	}
	return v
}

// FirstWhere returns the first element of src for which predicate returns true. It panics with
// QUERY_NO_MATCH if there is no such element.
func FirstWhere[T any](src Sequence[T], predicate func(T) bool) T {
	assertSource(`FirstWhere`, `source`, src)
	assertArgument(`FirstWhere`, `predicate`, predicate)
	v, ok := find(src.Cursor(), predicate)
	if !ok {
		panic(noMatch(`FirstWhere`))
	}
	return v
}

// FirstOrDefault returns the first element of src or the default if src is empty.
func FirstOrDefault[T any](src Sequence[T], dflt Default[T]) T {
	assertSource(`FirstOrDefault`, `source`, src)
	if v, ok := src.Cursor().Next(); ok {
		return v
	}
	return dflt.Get()
}

// FirstWhereOrDefault returns the first element of src for which predicate returns true or the default
// if there is no such element.
func FirstWhereOrDefault[T any](src Sequence[T], predicate func(T) bool, dflt Default[T]) T {
	assertSource(`FirstWhereOrDefault`, `source`, src)
	assertArgument(`FirstWhereOrDefault`, `predicate`, predicate)
	if v, ok := find(src.Cursor(), predicate); ok {
		return v
	}
	return dflt.Get()
}

// Last returns the last element of src. It panics with QUERY_EMPTY_SOURCE if src is empty.
func Last[T any](src Sequence[T]) T {
	assertSource(`Last`, `source`, src)
	v, ok := last(src.Cursor(), nil)
	if !ok {
		panic(emptySource(`Last`))
	}
	return v
}

// LastWhere returns the last element of src for which predicate returns true. It panics with
// QUERY_NO_MATCH if there is no such element.
func LastWhere[T any](src Sequence[T], predicate func(T) bool) T {
	assertSource(`LastWhere`, `source`, src)
	assertArgument(`LastWhere`, `predicate`, predicate)
	v, ok := last(src.Cursor(), predicate)
	if !ok {
		panic(noMatch(`LastWhere`))
	}
	return v
}

// LastOrDefault returns the last element of src or the default if src is empty.
func LastOrDefault[T any](src Sequence[T], dflt Default[T]) T {
	assertSource(`LastOrDefault`, `source`, src)
	if v, ok := last(src.Cursor(), nil); ok {
		return v
	}
	return dflt.Get()
}

// LastWhereOrDefault returns the last element of src for which predicate returns true or the default if
// there is no such element.
func LastWhereOrDefault[T any](src Sequence[T], predicate func(T) bool, dflt Default[T]) T {
	assertSource(`LastWhereOrDefault`, `source`, src)
	assertArgument(`LastWhereOrDefault`, `predicate`, predicate)
	if v, ok := last(src.Cursor(), predicate); ok {
		return v
	}
	return dflt.Get()
}

// Single returns the only element of src. It panics with QUERY_EMPTY_SOURCE if src is empty and with
// QUERY_AMBIGUOUS_MATCH if src has more than one element.
func Single[T any](src Sequence[T]) T {
	assertSource(`Single`, `source`, src)
	v, ok := single(`Single`, src.Cursor(), nil)
	if !ok {
		panic(emptySource(`Single`))
	}
	return v
}

// SingleWhere returns the only element of src for which predicate returns true. It panics with
// QUERY_NO_MATCH if there is no such element and with QUERY_AMBIGUOUS_MATCH if there is more than one.
func SingleWhere[T any](src Sequence[T], predicate func(T) bool) T {
	assertSource(`SingleWhere`, `source`, src)
	assertArgument(`SingleWhere`, `predicate`, predicate)
	v, ok := single(`SingleWhere`, src.Cursor(), predicate)
	if !ok {
		panic(noMatch(`SingleWhere`))
	}
	return v
}

// SingleOrDefault returns the only element of src or the default if src is empty. It panics with
// QUERY_AMBIGUOUS_MATCH if src has more than one element.
func SingleOrDefault[T any](src Sequence[T], dflt Default[T]) T {
	assertSource(`SingleOrDefault`, `source`, src)
	if v, ok := single(`SingleOrDefault`, src.Cursor(), nil); ok {
		return v
	}
	return dflt.Get()
}

// SingleWhereOrDefault returns the only element of src for which predicate returns true or the default
// if there is no such element. It panics with QUERY_AMBIGUOUS_MATCH if there is more than one.
func SingleWhereOrDefault[T any](src Sequence[T], predicate func(T) bool, dflt Default[T]) T {
	assertSource(`SingleWhereOrDefault`, `source`, src)
	assertArgument(`SingleWhereOrDefault`, `predicate`, predicate)
	if v, ok := single(`SingleWhereOrDefault`, src.Cursor(), predicate); ok {
		return v
	}
	return dflt.Get()
}

// ElementAt returns the element at the given zero based index. It panics with QUERY_OUT_OF_RANGE if index
// is negative or if src has too few elements.
func ElementAt[T any](src Sequence[T], index int) T {
	assertSource(`ElementAt`, `source`, src)
	assertCount(`ElementAt`, `index`, index)
	v, ok := elementAt(src.Cursor(), index)
	if !ok {
		panic(errors.Error(errors.OutOfRange, issue.H{`operator`: `ElementAt`, `name`: `index`, `value`: index}))
	}
	return v
}

// ElementAtOrDefault returns the element at the given zero based index or the default if index is
// negative or src has too few elements.
func ElementAtOrDefault[T any](src Sequence[T], index int, dflt Default[T]) T {
	assertSource(`ElementAtOrDefault`, `source`, src)
	if index >= 0 {
		if v, ok := elementAt(src.Cursor(), index); ok {
			return v
		}
	}
	return dflt.Get()
}

func elementAt[T any](c Cursor[T], index int) (v T, ok bool) {
	for {
		if v, ok = c.Next(); !ok || index == 0 {
			return
		}
		index--
	}
}

// Contains returns true if src has an element that is equal to value according to compare.Equal.
func Contains[T any](src Sequence[T], value T) bool {
	assertSource(`Contains`, `source`, src)
	_, found := find(src.Cursor(), func(v T) bool { return compare.Equal(v, value) })
	return found
}

// ContainsFunc is like Contains but uses the given equality.
func ContainsFunc[T any](src Sequence[T], value T, eq compare.EqualityFunc[T]) bool {
	assertSource(`ContainsFunc`, `source`, src)
	assertArgument(`ContainsFunc`, `equality`, eq)
	_, found := find(src.Cursor(), func(v T) bool { return eq(v, value) })
	return found
}

// SequenceEqual returns true if first and second have the same length and their elements are pairwise
// equal according to compare.Equal.
func SequenceEqual[T any](first, second Sequence[T]) bool {
	assertSource(`SequenceEqual`, `first`, first)
	assertSource(`SequenceEqual`, `second`, second)
	return sequenceEqual(first.Cursor(), second.Cursor(), compare.Equal[T])
}

// SequenceEqualFunc is like SequenceEqual but uses the given equality.
func SequenceEqualFunc[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) bool {
	assertSource(`SequenceEqualFunc`, `first`, first)
	assertSource(`SequenceEqualFunc`, `second`, second)
	assertArgument(`SequenceEqualFunc`, `equality`, eq)
	return sequenceEqual(first.Cursor(), second.Cursor(), eq)
}

func sequenceEqual[T any](a, b Cursor[T], eq compare.EqualityFunc[T]) bool {
	for {
		av, aok := a.Next()
		bv, bok := b.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if !eq(av, bv) {
			return false
		}
	}
}

// ToSlice materializes src into a new slice owned by the caller. Duplicates and zero values are
// retained.
func ToSlice[T any](src Sequence[T]) []T {
	assertSource(`ToSlice`, `source`, src)
	return drain(src.Cursor())
}

// ToDictionary materializes src into an order preserving hash keyed by the result of calling key with
// each element. It panics with QUERY_DUPLICATE_KEY if two elements produce the same key.
func ToDictionary[T any, K comparable](src Sequence[T], key func(T) K) *hash.Ordered[K, T] {
	assertSource(`ToDictionary`, `source`, src)
	assertArgument(`ToDictionary`, `key`, key)
	return toDictionary(`ToDictionary`, src.Cursor(), key, func(v T) T { return v })
}

// ToDictionaryOf is like ToDictionary but stores the result of calling value with each element.
func ToDictionaryOf[T any, K comparable, V any](src Sequence[T], key func(T) K, value func(T) V) *hash.Ordered[K, V] {
	assertSource(`ToDictionaryOf`, `source`, src)
	assertArgument(`ToDictionaryOf`, `key`, key)
	assertArgument(`ToDictionaryOf`, `value`, value)
	return toDictionary(`ToDictionaryOf`, src.Cursor(), key, value)
}

func toDictionary[T any, K comparable, V any](op string, c Cursor[T], key func(T) K, value func(T) V) *hash.Ordered[K, V] {
	h := hash.NewOrdered[K, V](16)
	for {
		v, ok := c.Next()
		if !ok {
			return h
		}
		k := key(v)
		if !h.PutNew(k, value(v)) {
			panic(errors.Error(errors.DuplicateKey, issue.H{`operator`: op, `key`: k}))
		}
	}
}

// ForEach calls consumer once for each element of src.
func ForEach[T any](src Sequence[T], consumer func(T)) {
	assertSource(`ForEach`, `source`, src)
	assertArgument(`ForEach`, `consumer`, consumer)
	c := src.Cursor()
	for {
		v, ok := c.Next()
		if !ok {
			return
		}
		consumer(v)
	}
}
