package query

import "github.com/lyraproj/query/compare"

type (
	// distinctCursor retains every element it has yielded and skips elements equal to one of them.
	distinctCursor[T any] struct {
		base Cursor[T]
		eq   compare.EqualityFunc[T]
		seen []T
	}

	concatCursor[T any] struct {
		first  Cursor[T]
		second Sequence[T]
		rest   Cursor[T]
	}

	// exceptCursor starts out with the elements of the excluded sequence as its seen list.
	exceptCursor[T any] struct {
		base     Cursor[T]
		excluded Sequence[T]
		eq       compare.EqualityFunc[T]
		seen     []T
		loaded   bool
	}

	intersectCursor[T any] struct {
		base   Cursor[T]
		other  Sequence[T]
		eq     compare.EqualityFunc[T]
		others []T
		seen   []T
		loaded bool
	}
)

// Distinct returns a query that yields the elements of src with duplicates removed using the default
// equality compare.Equal. The first occurrence of each element is retained.
func Distinct[T any](src Sequence[T]) Query[T] {
	assertSource(`Distinct`, `source`, src)
	return distinct(src, compare.Equal[T])
}

// DistinctFunc is like Distinct but uses the given equality.
func DistinctFunc[T any](src Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	assertSource(`DistinctFunc`, `source`, src)
	assertArgument(`DistinctFunc`, `equality`, eq)
	return distinct(src, eq)
}

func distinct[T any](src Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return newQuery(func() Cursor[T] { return &distinctCursor[T]{base: src.Cursor(), eq: eq} }, !IsRestartable(src))
}

// Concat returns a query that yields the elements of first followed by the elements of second.
func Concat[T any](first, second Sequence[T]) Query[T] {
	assertSource(`Concat`, `first`, first)
	assertSource(`Concat`, `second`, second)
	return newQuery(func() Cursor[T] { return &concatCursor[T]{first: first.Cursor(), second: second} }, oneShot(first, second))
}

// Union returns a query that yields the distinct elements of first followed by the distinct elements
// of second that were not found in first.
func Union[T any](first, second Sequence[T]) Query[T] {
	assertSource(`Union`, `first`, first)
	assertSource(`Union`, `second`, second)
	return union(first, second, compare.Equal[T])
}

// UnionFunc is like Union but uses the given equality.
func UnionFunc[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	assertSource(`UnionFunc`, `first`, first)
	assertSource(`UnionFunc`, `second`, second)
	assertArgument(`UnionFunc`, `equality`, eq)
	return union(first, second, eq)
}

func union[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return newQuery(func() Cursor[T] {
		return &distinctCursor[T]{base: &concatCursor[T]{first: first.Cursor(), second: second}, eq: eq}
	}, oneShot(first, second))
}

// Intersect returns a query that yields the distinct elements of first that are also found in second.
func Intersect[T any](first, second Sequence[T]) Query[T] {
	assertSource(`Intersect`, `first`, first)
	assertSource(`Intersect`, `second`, second)
	return intersect(first, second, compare.Equal[T])
}

// IntersectFunc is like Intersect but uses the given equality.
func IntersectFunc[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	assertSource(`IntersectFunc`, `first`, first)
	assertSource(`IntersectFunc`, `second`, second)
	assertArgument(`IntersectFunc`, `equality`, eq)
	return intersect(first, second, eq)
}

func intersect[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return newQuery(func() Cursor[T] {
		return &intersectCursor[T]{base: first.Cursor(), other: second, eq: eq}
	}, oneShot(first, second))
}

// Except returns a query that yields the distinct elements of first that are not found in second.
func Except[T any](first, second Sequence[T]) Query[T] {
	assertSource(`Except`, `first`, first)
	assertSource(`Except`, `second`, second)
	return except(first, second, compare.Equal[T])
}

// ExceptFunc is like Except but uses the given equality.
func ExceptFunc[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	assertSource(`ExceptFunc`, `first`, first)
	assertSource(`ExceptFunc`, `second`, second)
	assertArgument(`ExceptFunc`, `equality`, eq)
	return except(first, second, eq)
}

func except[T any](first, second Sequence[T], eq compare.EqualityFunc[T]) Query[T] {
	return newQuery(func() Cursor[T] {
		return &exceptCursor[T]{base: first.Cursor(), excluded: second, eq: eq}
	}, oneShot(first, second))
}

func oneShot[T any](first, second Sequence[T]) bool {
	return !(IsRestartable(first) && IsRestartable(second))
}

func (ai *distinctCursor[T]) Next() (v T, ok bool) {
	for {
		if v, ok = ai.base.Next(); !ok {
			return
		}
		if !compare.Includes(ai.seen, v, ai.eq) {
			ai.seen = append(ai.seen, v)
			return
		}
	}
}

func (ai *concatCursor[T]) Next() (v T, ok bool) {
	if ai.first != nil {
		if v, ok = ai.first.Next(); ok {
			return
		}
		ai.first = nil
		ai.rest = ai.second.Cursor()
	}
	return ai.rest.Next()
}

func (ai *exceptCursor[T]) Next() (v T, ok bool) {
	if !ai.loaded {
		ai.seen = drain(ai.excluded.Cursor())
		ai.loaded = true
	}
	for {
		if v, ok = ai.base.Next(); !ok {
			return
		}
		if !compare.Includes(ai.seen, v, ai.eq) {
			ai.seen = append(ai.seen, v)
			return
		}
	}
}

func (ai *intersectCursor[T]) Next() (v T, ok bool) {
	if !ai.loaded {
		ai.others = drain(ai.other.Cursor())
		ai.loaded = true
	}
	for {
		if v, ok = ai.base.Next(); !ok {
			return
		}
		if compare.Includes(ai.others, v, ai.eq) && !compare.Includes(ai.seen, v, ai.eq) {
			ai.seen = append(ai.seen, v)
			return
		}
	}
}
