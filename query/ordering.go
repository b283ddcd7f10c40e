package query

import (
	"cmp"
	"slices"

	"github.com/lyraproj/query/compare"
)

type (
	// Ordered is a query whose elements are sorted by one or more keys. Besides the flat traversal that
	// every query has, it can be traversed in partition mode where each yielded partition contains the
	// elements whose keys are equal at every level applied so far. A subsequent ThenBy sorts within the
	// partitions of its parent only.
	//
	// Sorting is stable: elements with equal keys at all levels retain their relative order.
	Ordered[T any] struct {
		Query[T]
		source Sequence[T]
		parent *Ordered[T]
		level  partitioner[T]
	}

	// partitioner sorts one partition by the key of one level and splits the result into runs of equal
	// keys.
	partitioner[T any] interface {
		partition(items []T) [][]T
	}

	keyLevel[T, K any] struct {
		key      func(T) K
		comparer compare.Comparer[K]
	}

	// materializingCursor yields the whole source as one partition.
	materializingCursor[T any] struct {
		source Sequence[T]
		done   bool
	}

	partitionCursor[T any] struct {
		base    Cursor[[]T]
		level   partitioner[T]
		pending [][]T
	}

	flattenCursor[T any] struct {
		base    Cursor[[]T]
		current []T
	}
)

// OrderBy returns a query that yields the elements of src sorted in ascending order of the keys produced
// by key.
func OrderBy[T any, K cmp.Ordered](src Sequence[T], key func(T) K) *Ordered[T] {
	assertSource(`OrderBy`, `source`, src)
	assertArgument(`OrderBy`, `key`, key)
	return newOrdered(src, nil, &keyLevel[T, K]{key, compare.Ordered[K]})
}

// OrderByDescending is like OrderBy but sorts in descending order.
func OrderByDescending[T any, K cmp.Ordered](src Sequence[T], key func(T) K) *Ordered[T] {
	assertSource(`OrderByDescending`, `source`, src)
	assertArgument(`OrderByDescending`, `key`, key)
	return newOrdered(src, nil, &keyLevel[T, K]{key, compare.Negate(compare.Ordered[K])})
}

// OrderByFunc is like OrderBy but compares the keys using the given comparer.
func OrderByFunc[T, K any](src Sequence[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	assertSource(`OrderByFunc`, `source`, src)
	assertArgument(`OrderByFunc`, `key`, key)
	assertArgument(`OrderByFunc`, `comparer`, c)
	return newOrdered(src, nil, &keyLevel[T, K]{key, c})
}

// OrderByDescendingFunc is like OrderByFunc but sorts in descending order. The result of the comparer
// is negated, so ties remain ties.
func OrderByDescendingFunc[T, K any](src Sequence[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	assertSource(`OrderByDescendingFunc`, `source`, src)
	assertArgument(`OrderByDescendingFunc`, `key`, key)
	assertArgument(`OrderByDescendingFunc`, `comparer`, c)
	return newOrdered(src, nil, &keyLevel[T, K]{key, compare.Negate(c)})
}

// OrderWith returns a query that yields the elements of src sorted using the given comparer.
func OrderWith[T any](src Sequence[T], c compare.Comparer[T]) *Ordered[T] {
	assertSource(`OrderWith`, `source`, src)
	assertArgument(`OrderWith`, `comparer`, c)
	return newOrdered(src, nil, &keyLevel[T, T]{identity[T], c})
}

// OrderWithDescending is like OrderWith but sorts in descending order.
func OrderWithDescending[T any](src Sequence[T], c compare.Comparer[T]) *Ordered[T] {
	assertSource(`OrderWithDescending`, `source`, src)
	assertArgument(`OrderWithDescending`, `comparer`, c)
	return newOrdered(src, nil, &keyLevel[T, T]{identity[T], compare.Negate(c)})
}

// ThenBy returns a query that sorts each partition of o in ascending order of the keys produced by key.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	assertArgument(`ThenBy`, `ordered`, o)
	assertArgument(`ThenBy`, `key`, key)
	return newOrdered(o.source, o, &keyLevel[T, K]{key, compare.Ordered[K]})
}

// ThenByDescending is like ThenBy but sorts in descending order.
func ThenByDescending[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	assertArgument(`ThenByDescending`, `ordered`, o)
	assertArgument(`ThenByDescending`, `key`, key)
	return newOrdered(o.source, o, &keyLevel[T, K]{key, compare.Negate(compare.Ordered[K])})
}

// ThenByFunc is like ThenBy but compares the keys using the given comparer.
func ThenByFunc[T, K any](o *Ordered[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	assertArgument(`ThenByFunc`, `ordered`, o)
	assertArgument(`ThenByFunc`, `key`, key)
	assertArgument(`ThenByFunc`, `comparer`, c)
	return newOrdered(o.source, o, &keyLevel[T, K]{key, c})
}

// ThenByDescendingFunc is like ThenByFunc but sorts in descending order.
func ThenByDescendingFunc[T, K any](o *Ordered[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	assertArgument(`ThenByDescendingFunc`, `ordered`, o)
	assertArgument(`ThenByDescendingFunc`, `key`, key)
	assertArgument(`ThenByDescendingFunc`, `comparer`, c)
	return newOrdered(o.source, o, &keyLevel[T, K]{key, compare.Negate(c)})
}

// ThenWith returns a query that sorts each partition of the receiver using the given comparer.
func (o *Ordered[T]) ThenWith(c compare.Comparer[T]) *Ordered[T] {
	assertArgument(`ThenWith`, `ordered`, o)
	assertArgument(`ThenWith`, `comparer`, c)
	return newOrdered(o.source, o, &keyLevel[T, T]{identity[T], c})
}

// ThenWithDescending is like ThenWith but sorts in descending order.
func (o *Ordered[T]) ThenWithDescending(c compare.Comparer[T]) *Ordered[T] {
	assertArgument(`ThenWithDescending`, `ordered`, o)
	assertArgument(`ThenWithDescending`, `comparer`, c)
	return newOrdered(o.source, o, &keyLevel[T, T]{identity[T], compare.Negate(c)})
}

// Partitions returns a query that yields one query per run of elements whose keys are equal at every
// level of the receiver. The runs are yielded in sorted order and each run retains the original
// relative order of its elements.
func (o *Ordered[T]) Partitions() Query[Query[T]] {
	return newQuery(func() Cursor[Query[T]] {
		return &mappingCursor[[]T, Query[T]]{o.partitions(), From[T]}
	}, o.oneShot)
}

func newOrdered[T any](src Sequence[T], parent *Ordered[T], level partitioner[T]) *Ordered[T] {
	o := &Ordered[T]{source: src, parent: parent, level: level}
	o.Query = newQuery(func() Cursor[T] { return &flattenCursor[T]{base: o.partitions()} }, !IsRestartable(src))
	return o
}

// partitions returns a cursor over the partitions of this level. The root level sorts the materialized
// source. Every other level pulls the partitions of its parent one at a time and sorts each of them.
func (o *Ordered[T]) partitions() Cursor[[]T] {
	var base Cursor[[]T]
	if o.parent == nil {
		base = &materializingCursor[T]{source: o.source}
	} else {
		base = o.parent.partitions()
	}
	return &partitionCursor[T]{base: base, level: o.level}
}

// partition computes the key of each item once, sorts the items stably by key, and returns the runs of
// items with equal keys.
func (l *keyLevel[T, K]) partition(items []T) [][]T {
	n := len(items)
	if n == 0 {
		return nil
	}
	keys := make([]K, n)
	order := make([]int, n)
	for i, item := range items {
		keys[i] = l.key(item)
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return l.comparer(keys[a], keys[b]) })

	runs := make([][]T, 0, 4)
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || l.comparer(keys[order[start]], keys[order[i]]) != 0 {
			run := make([]T, i-start)
			for j := start; j < i; j++ {
				run[j-start] = items[order[j]]
			}
			runs = append(runs, run)
			start = i
		}
	}
	return runs
}

func (mi *materializingCursor[T]) Next() ([]T, bool) {
	if mi.done {
		return nil, false
	}
	mi.done = true
	return drain(mi.source.Cursor()), true
}

func (pi *partitionCursor[T]) Next() ([]T, bool) {
	for len(pi.pending) == 0 {
		items, ok := pi.base.Next()
		if !ok {
			return nil, false
		}
		pi.pending = pi.level.partition(items)
	}
	run := pi.pending[0]
	pi.pending = pi.pending[1:]
	return run, true
}

func (fi *flattenCursor[T]) Next() (v T, ok bool) {
	for len(fi.current) == 0 {
		if fi.current, ok = fi.base.Next(); !ok {
			return
		}
	}
	v = fi.current[0]
	fi.current = fi.current[1:]
	return v, true
}
