// Package query is a lazy sequence-query engine. Operators either compute a result immediately by
// traversing their sources or return a new Query that does nothing until it is traversed. A Query holds
// a recipe that is re-run from scratch on every traversal; results are never cached between traversals.
//
// Failures are reported by panicking with an issue.Reported (see package errors). Argument failures
// happen when an operator is called. Failures that depend on the contents of a sequence happen when a
// traversal discovers them, i.e. during the call of an immediate operator or during a Next call on a
// cursor of a deferred one. Use errors.Catch to convert such a panic into an error.
package query

import (
	"iter"
	"math/rand/v2"

	"github.com/lyraproj/query/compare"
	"github.com/lyraproj/query/logging"
)

// Query is the deferred sequence. It satisfies Sequence and exposes all operators that don't change the
// element type as methods. Operators that change the element type are functions in this package.
type Query[T any] struct {
	recipe  func() Cursor[T]
	oneShot bool
}

func newQuery[T any](recipe func() Cursor[T], oneShot bool) Query[T] {
	return Query[T]{recipe, oneShot}
}

// Cursor runs the recipe of the query and returns the resulting cursor.
func (q Query[T]) Cursor() Cursor[T] {
	if q.recipe == nil {
		return emptyCursor[T]{}
	}
	return q.recipe()
}

// Restartable returns false if the query is built over a source that can only be traversed once.
func (q Query[T]) Restartable() bool {
	return !q.oneShot
}

// Seq returns the traversal as an iter.Seq so that the query can be used in a for range statement.
func (q Query[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := q.Cursor()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q Query[T]) Where(predicate func(T) bool) Query[T] {
	return Where[T](q, predicate)
}

func (q Query[T]) WhereIndexed(predicate func(T, int) bool) Query[T] {
	return WhereIndexed[T](q, predicate)
}

func (q Query[T]) Take(count int) Query[T] {
	return Take[T](q, count)
}

func (q Query[T]) TakeWhile(predicate func(T) bool) Query[T] {
	return TakeWhile[T](q, predicate)
}

func (q Query[T]) Skip(count int) Query[T] {
	return Skip[T](q, count)
}

func (q Query[T]) SkipWhile(predicate func(T) bool) Query[T] {
	return SkipWhile[T](q, predicate)
}

func (q Query[T]) Distinct() Query[T] {
	return Distinct[T](q)
}

func (q Query[T]) DistinctFunc(eq compare.EqualityFunc[T]) Query[T] {
	return DistinctFunc[T](q, eq)
}

func (q Query[T]) Concat(other Sequence[T]) Query[T] {
	return Concat[T](q, other)
}

func (q Query[T]) Union(other Sequence[T]) Query[T] {
	return Union[T](q, other)
}

func (q Query[T]) UnionFunc(other Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return UnionFunc[T](q, other, eq)
}

func (q Query[T]) Intersect(other Sequence[T]) Query[T] {
	return Intersect[T](q, other)
}

func (q Query[T]) IntersectFunc(other Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return IntersectFunc[T](q, other, eq)
}

func (q Query[T]) Except(other Sequence[T]) Query[T] {
	return Except[T](q, other)
}

func (q Query[T]) ExceptFunc(other Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return ExceptFunc[T](q, other, eq)
}

func (q Query[T]) Reverse() Query[T] {
	return Reverse[T](q)
}

func (q Query[T]) Shuffle() Query[T] {
	return Shuffle[T](q)
}

func (q Query[T]) ShuffleWith(rng *rand.Rand) Query[T] {
	return ShuffleWith[T](q, rng)
}

func (q Query[T]) Cycle() Query[T] {
	return Cycle[T](q)
}

func (q Query[T]) Random() Query[T] {
	return Random[T](q)
}

func (q Query[T]) RandomWith(rng *rand.Rand) Query[T] {
	return RandomWith[T](q, rng)
}

func (q Query[T]) DefaultIfEmpty(dflt Default[T]) Query[T] {
	return DefaultIfEmpty[T](q, dflt)
}

func (q Query[T]) Trace(logger logging.Logger, label string) Query[T] {
	return Trace[T](q, logger, label)
}

func (q Query[T]) OrderWith(c compare.Comparer[T]) *Ordered[T] {
	return OrderWith[T](q, c)
}

func (q Query[T]) OrderWithDescending(c compare.Comparer[T]) *Ordered[T] {
	return OrderWithDescending[T](q, c)
}

func (q Query[T]) Aggregate(f func(T, T) T) T {
	return Aggregate[T](q, f)
}

func (q Query[T]) All(predicate func(T) bool) bool {
	return All[T](q, predicate)
}

func (q Query[T]) Any() bool {
	return Any[T](q)
}

func (q Query[T]) AnyWhere(predicate func(T) bool) bool {
	return AnyWhere[T](q, predicate)
}

func (q Query[T]) Count() int {
	return Count[T](q)
}

func (q Query[T]) CountWhere(predicate func(T) bool) int {
	return CountWhere[T](q, predicate)
}

func (q Query[T]) First() T {
	return First[T](q)
}

func (q Query[T]) FirstWhere(predicate func(T) bool) T {
	return FirstWhere[T](q, predicate)
}

func (q Query[T]) FirstOrDefault(dflt Default[T]) T {
	return FirstOrDefault[T](q, dflt)
}

func (q Query[T]) FirstWhereOrDefault(predicate func(T) bool, dflt Default[T]) T {
	return FirstWhereOrDefault[T](q, predicate, dflt)
}

func (q Query[T]) Last() T {
	return Last[T](q)
}

func (q Query[T]) LastWhere(predicate func(T) bool) T {
	return LastWhere[T](q, predicate)
}

func (q Query[T]) LastOrDefault(dflt Default[T]) T {
	return LastOrDefault[T](q, dflt)
}

func (q Query[T]) LastWhereOrDefault(predicate func(T) bool, dflt Default[T]) T {
	return LastWhereOrDefault[T](q, predicate, dflt)
}

func (q Query[T]) Single() T {
	return Single[T](q)
}

func (q Query[T]) SingleWhere(predicate func(T) bool) T {
	return SingleWhere[T](q, predicate)
}

func (q Query[T]) SingleOrDefault(dflt Default[T]) T {
	return SingleOrDefault[T](q, dflt)
}

func (q Query[T]) SingleWhereOrDefault(predicate func(T) bool, dflt Default[T]) T {
	return SingleWhereOrDefault[T](q, predicate, dflt)
}

func (q Query[T]) ElementAt(index int) T {
	return ElementAt[T](q, index)
}

func (q Query[T]) ElementAtOrDefault(index int, dflt Default[T]) T {
	return ElementAtOrDefault[T](q, index, dflt)
}

func (q Query[T]) Contains(value T) bool {
	return Contains[T](q, value)
}

func (q Query[T]) ContainsFunc(value T, eq compare.EqualityFunc[T]) bool {
	return ContainsFunc[T](q, value, eq)
}

func (q Query[T]) SequenceEqual(other Sequence[T]) bool {
	return SequenceEqual[T](q, other)
}

func (q Query[T]) SequenceEqualFunc(other Sequence[T], eq compare.EqualityFunc[T]) bool {
	return SequenceEqualFunc[T](q, other, eq)
}

func (q Query[T]) ToSlice() []T {
	return ToSlice[T](q)
}

func (q Query[T]) ForEach(consumer func(T)) {
	ForEach[T](q, consumer)
}
