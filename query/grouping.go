package query

import "github.com/lyraproj/query/compare"

type (
	// Grouping is a key together with the deferred sequence of the elements that share that key. The
	// elements are found by scanning the grouped source each time the grouping is traversed.
	Grouping[K, E any] struct {
		Query[E]
		key K
	}

	groupCursor[T, K, E any] struct {
		source  Sequence[T]
		base    Cursor[T]
		key     func(T) K
		element func(T) E
		eq      compare.EqualityFunc[K]
		keys    []K
	}
)

// Key returns the key shared by all elements of the grouping.
func (g *Grouping[K, E]) Key() K {
	return g.key
}

// GroupBy returns a query that yields one Grouping per distinct key produced by calling key with the
// elements of src. Keys are compared using compare.Equal and groupings are yielded in order of first
// key occurrence. The source must be restartable.
func GroupBy[T, K any](src Sequence[T], key func(T) K) Query[*Grouping[K, T]] {
	assertSource(`GroupBy`, `source`, src)
	assertArgument(`GroupBy`, `key`, key)
	assertRestartable(`GroupBy`, src)
	return groupBy(src, key, identity[T], compare.Equal[K])
}

// GroupByFunc is like GroupBy but compares keys using the given equality.
func GroupByFunc[T, K any](src Sequence[T], key func(T) K, eq compare.EqualityFunc[K]) Query[*Grouping[K, T]] {
	assertSource(`GroupByFunc`, `source`, src)
	assertArgument(`GroupByFunc`, `key`, key)
	assertArgument(`GroupByFunc`, `equality`, eq)
	assertRestartable(`GroupByFunc`, src)
	return groupBy(src, key, identity[T], eq)
}

// GroupByElement is like GroupByFunc but the groupings contain the result of calling element with each
// grouped element. A nil equality means compare.Equal.
func GroupByElement[T, K, E any](src Sequence[T], key func(T) K, element func(T) E, eq compare.EqualityFunc[K]) Query[*Grouping[K, E]] {
	assertSource(`GroupByElement`, `source`, src)
	assertArgument(`GroupByElement`, `key`, key)
	assertArgument(`GroupByElement`, `element`, element)
	assertRestartable(`GroupByElement`, src)
	return groupBy(src, key, element, compare.Or(eq))
}

func groupBy[T, K, E any](src Sequence[T], key func(T) K, element func(T) E, eq compare.EqualityFunc[K]) Query[*Grouping[K, E]] {
	return newQuery(func() Cursor[*Grouping[K, E]] {
		return &groupCursor[T, K, E]{source: src, base: src.Cursor(), key: key, element: element, eq: eq}
	}, false)
}

// Next discovers the next key that hasn't been seen before and yields its grouping.
func (gi *groupCursor[T, K, E]) Next() (*Grouping[K, E], bool) {
	for {
		v, ok := gi.base.Next()
		if !ok {
			return nil, false
		}
		k := gi.key(v)
		if !compare.Includes(gi.keys, k, gi.eq) {
			gi.keys = append(gi.keys, k)
			return newGrouping(gi.source, k, gi.key, gi.element, gi.eq), true
		}
	}
}

func newGrouping[T, K, E any](src Sequence[T], k K, key func(T) K, element func(T) E, eq compare.EqualityFunc[K]) *Grouping[K, E] {
	matches := func(v T) bool { return eq(k, key(v)) }
	return &Grouping[K, E]{
		Query: newQuery(func() Cursor[E] {
			return &mappingCursor[T, E]{&predicateCursor[T]{src.Cursor(), matches}, element}
		}, false),
		key: k,
	}
}

func identity[T any](v T) T {
	return v
}
