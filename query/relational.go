package query

import "github.com/lyraproj/query/compare"

type joinCursor[O, I, K, R any] struct {
	outer    Cursor[O]
	inner    Sequence[I]
	outerKey func(O) K
	innerKey func(I) K
	result   func(O, I) R
	eq       compare.EqualityFunc[K]

	current O
	key     K
	scan    Cursor[I]
}

// Join returns a query that performs an inner equi-join of outer and inner. For each element of outer,
// one result is yielded per matching element of inner, in the order of inner. Keys are compared using
// compare.Equal. The join is a nested loop that scans inner once per element of outer, so inner must be
// restartable.
func Join[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, I) R) Query[R] {
	assertJoin(`Join`, outer, inner, outerKey, innerKey, result)
	return join(outer, inner, outerKey, innerKey, result, compare.Equal[K])
}

// JoinFunc is like Join but compares keys using the given equality.
func JoinFunc[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, I) R, eq compare.EqualityFunc[K]) Query[R] {
	assertJoin(`JoinFunc`, outer, inner, outerKey, innerKey, result)
	assertArgument(`JoinFunc`, `equality`, eq)
	return join(outer, inner, outerKey, innerKey, result, eq)
}

func join[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, I) R, eq compare.EqualityFunc[K]) Query[R] {
	return newQuery(func() Cursor[R] {
		return &joinCursor[O, I, K, R]{outer: outer.Cursor(), inner: inner, outerKey: outerKey, innerKey: innerKey, result: result, eq: eq}
	}, !IsRestartable(outer))
}

// GroupJoin returns a query that yields exactly one result per element of outer. The result is produced
// by calling result with the outer element and a deferred query over the matching elements of inner.
// That query scans inner each time it is traversed, so inner must be restartable.
func GroupJoin[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, Query[I]) R) Query[R] {
	assertJoin(`GroupJoin`, outer, inner, outerKey, innerKey, result)
	return groupJoin(outer, inner, outerKey, innerKey, result, compare.Equal[K])
}

// GroupJoinFunc is like GroupJoin but compares keys using the given equality.
func GroupJoinFunc[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, Query[I]) R, eq compare.EqualityFunc[K]) Query[R] {
	assertJoin(`GroupJoinFunc`, outer, inner, outerKey, innerKey, result)
	assertArgument(`GroupJoinFunc`, `equality`, eq)
	return groupJoin(outer, inner, outerKey, innerKey, result, eq)
}

func groupJoin[O, I, K, R any](outer Sequence[O], inner Sequence[I], outerKey func(O) K, innerKey func(I) K, result func(O, Query[I]) R, eq compare.EqualityFunc[K]) Query[R] {
	pair := func(o O) R {
		k := outerKey(o)
		matches := func(i I) bool { return eq(k, innerKey(i)) }
		return result(o, newQuery(func() Cursor[I] { return &predicateCursor[I]{inner.Cursor(), matches} }, false))
	}
	return newQuery(func() Cursor[R] { return &mappingCursor[O, R]{outer.Cursor(), pair} }, !IsRestartable(outer))
}

func assertJoin[O, I any](op string, outer Sequence[O], inner Sequence[I], outerKey, innerKey, result interface{}) {
	assertSource(op, `outer`, outer)
	assertSource(op, `inner`, inner)
	assertArgument(op, `outerKey`, outerKey)
	assertArgument(op, `innerKey`, innerKey)
	assertArgument(op, `result`, result)
	assertRestartable(op, inner)
}

func (ji *joinCursor[O, I, K, R]) Next() (r R, ok bool) {
	for {
		if ji.scan != nil {
			for {
				i, iok := ji.scan.Next()
				if !iok {
					break
				}
				if ji.eq(ji.key, ji.innerKey(i)) {
					return ji.result(ji.current, i), true
				}
			}
			ji.scan = nil
		}
		o, ook := ji.outer.Next()
		if !ook {
			return
		}
		ji.current = o
		ji.key = ji.outerKey(o)
		ji.scan = ji.inner.Cursor()
	}
}
