package query

import (
	"math/rand/v2"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/query/logging"
)

type (
	mappingCursor[T, R any] struct {
		base    Cursor[T]
		mapFunc func(T) R
	}

	indexedMappingCursor[T, R any] struct {
		base    Cursor[T]
		mapFunc func(T, int) R
		index   int
	}

	flatteningCursor[T, R any] struct {
		base    Cursor[T]
		mapFunc func(T) Sequence[R]
		inner   Cursor[R]
	}

	predicateCursor[T any] struct {
		base      Cursor[T]
		predicate func(T) bool
	}

	indexedPredicateCursor[T any] struct {
		base      Cursor[T]
		predicate func(T, int) bool
		index     int
	}

	takeCursor[T any] struct {
		base      Cursor[T]
		remaining int
	}

	takeWhileCursor[T any] struct {
		base      Cursor[T]
		predicate func(T) bool
		done      bool
	}

	skipCursor[T any] struct {
		base      Cursor[T]
		remaining int
	}

	skipWhileCursor[T any] struct {
		base      Cursor[T]
		predicate func(T) bool
		skipping  bool
	}

	// bufferedCursor materializes its source on the first call to Next.
	bufferedCursor[T any] struct {
		source Sequence[T]
		items  []T
		loaded bool
	}

	reverseCursor[T any] struct {
		bufferedCursor[T]
		pos int
	}

	shuffleCursor[T any] struct {
		bufferedCursor[T]
		intN      func(int) int
		remaining int
	}

	randomCursor[T any] struct {
		bufferedCursor[T]
		intN func(int) int
	}

	cycleCursor[T any] struct {
		source  Sequence[T]
		current Cursor[T]
		yielded bool
		done    bool
	}

	defaultCursor[T any] struct {
		base    Cursor[T]
		dflt    Default[T]
		started bool
		done    bool
	}

	zipCursor[A, B, R any] struct {
		first   Cursor[A]
		second  Cursor[B]
		zipFunc func(A, B) R
		done    bool
	}

	traceCursor[T any] struct {
		base   Cursor[T]
		logger logging.Logger
		label  string
		index  int
		done   bool
	}
)

// Select returns a query that yields the result of calling selector with each element of src.
func Select[T, R any](src Sequence[T], selector func(T) R) Query[R] {
	assertSource(`Select`, `source`, src)
	assertArgument(`Select`, `selector`, selector)
	return newQuery(func() Cursor[R] { return &mappingCursor[T, R]{src.Cursor(), selector} }, !IsRestartable(src))
}

// SelectIndexed is like Select but also passes the zero based index of each element to the selector.
func SelectIndexed[T, R any](src Sequence[T], selector func(T, int) R) Query[R] {
	assertSource(`SelectIndexed`, `source`, src)
	assertArgument(`SelectIndexed`, `selector`, selector)
	return newQuery(func() Cursor[R] { return &indexedMappingCursor[T, R]{base: src.Cursor(), mapFunc: selector} }, !IsRestartable(src))
}

// SelectMany returns a query that yields the elements of each sequence returned by calling selector
// with the elements of src. A traversal panics with QUERY_INVALID_SHAPE if the selector returns nil.
func SelectMany[T, R any](src Sequence[T], selector func(T) Sequence[R]) Query[R] {
	assertSource(`SelectMany`, `source`, src)
	assertArgument(`SelectMany`, `selector`, selector)
	return newQuery(func() Cursor[R] { return &flatteningCursor[T, R]{base: src.Cursor(), mapFunc: selector} }, !IsRestartable(src))
}

// Where returns a query that yields the elements of src for which predicate returns true.
func Where[T any](src Sequence[T], predicate func(T) bool) Query[T] {
	assertSource(`Where`, `source`, src)
	assertArgument(`Where`, `predicate`, predicate)
	return newQuery(func() Cursor[T] { return &predicateCursor[T]{src.Cursor(), predicate} }, !IsRestartable(src))
}

// WhereIndexed is like Where but also passes the zero based index of each element to the predicate.
func WhereIndexed[T any](src Sequence[T], predicate func(T, int) bool) Query[T] {
	assertSource(`WhereIndexed`, `source`, src)
	assertArgument(`WhereIndexed`, `predicate`, predicate)
	return newQuery(func() Cursor[T] { return &indexedPredicateCursor[T]{base: src.Cursor(), predicate: predicate} }, !IsRestartable(src))
}

// Take returns a query that yields the first count elements of src.
func Take[T any](src Sequence[T], count int) Query[T] {
	assertSource(`Take`, `source`, src)
	assertCount(`Take`, `count`, count)
	return newQuery(func() Cursor[T] { return &takeCursor[T]{src.Cursor(), count} }, !IsRestartable(src))
}

// TakeWhile returns a query that yields the elements of src until predicate returns false.
func TakeWhile[T any](src Sequence[T], predicate func(T) bool) Query[T] {
	assertSource(`TakeWhile`, `source`, src)
	assertArgument(`TakeWhile`, `predicate`, predicate)
	return newQuery(func() Cursor[T] { return &takeWhileCursor[T]{base: src.Cursor(), predicate: predicate} }, !IsRestartable(src))
}

// Skip returns a query that yields all but the first count elements of src.
func Skip[T any](src Sequence[T], count int) Query[T] {
	assertSource(`Skip`, `source`, src)
	assertCount(`Skip`, `count`, count)
	return newQuery(func() Cursor[T] { return &skipCursor[T]{src.Cursor(), count} }, !IsRestartable(src))
}

// SkipWhile returns a query that bypasses the elements of src as long as predicate returns true and then
// yields the remaining elements.
func SkipWhile[T any](src Sequence[T], predicate func(T) bool) Query[T] {
	assertSource(`SkipWhile`, `source`, src)
	assertArgument(`SkipWhile`, `predicate`, predicate)
	return newQuery(func() Cursor[T] { return &skipWhileCursor[T]{src.Cursor(), predicate, true} }, !IsRestartable(src))
}

// Reverse returns a query that yields the elements of src in reverse order. The source is materialized
// when the first element is requested.
func Reverse[T any](src Sequence[T]) Query[T] {
	assertSource(`Reverse`, `source`, src)
	return newQuery(func() Cursor[T] { return &reverseCursor[T]{bufferedCursor: bufferedCursor[T]{source: src}} }, !IsRestartable(src))
}

// Shuffle returns a query that yields the elements of src in random order.
func Shuffle[T any](src Sequence[T]) Query[T] {
	assertSource(`Shuffle`, `source`, src)
	return shuffle(src, rand.IntN)
}

// ShuffleWith is like Shuffle but draws from the given random generator.
func ShuffleWith[T any](src Sequence[T], rng *rand.Rand) Query[T] {
	assertSource(`ShuffleWith`, `source`, src)
	assertArgument(`ShuffleWith`, `rng`, rng)
	return shuffle(src, rng.IntN)
}

func shuffle[T any](src Sequence[T], intN func(int) int) Query[T] {
	return newQuery(func() Cursor[T] {
		return &shuffleCursor[T]{bufferedCursor: bufferedCursor[T]{source: src}, intN: intN}
	}, !IsRestartable(src))
}

// Cycle returns a query that repeats the elements of src endlessly. Nothing is yielded when src is
// empty. The source must be restartable.
func Cycle[T any](src Sequence[T]) Query[T] {
	assertSource(`Cycle`, `source`, src)
	assertRestartable(`Cycle`, src)
	return newQuery(func() Cursor[T] { return &cycleCursor[T]{source: src} }, false)
}

// Random returns a query that endlessly yields elements drawn uniformly from src. The first call to
// Next panics with QUERY_EMPTY_SOURCE when src is empty.
func Random[T any](src Sequence[T]) Query[T] {
	assertSource(`Random`, `source`, src)
	return random(src, rand.IntN)
}

// RandomWith is like Random but draws from the given random generator.
func RandomWith[T any](src Sequence[T], rng *rand.Rand) Query[T] {
	assertSource(`RandomWith`, `source`, src)
	assertArgument(`RandomWith`, `rng`, rng)
	return random(src, rng.IntN)
}

func random[T any](src Sequence[T], intN func(int) int) Query[T] {
	return newQuery(func() Cursor[T] {
		return &randomCursor[T]{bufferedCursor: bufferedCursor[T]{source: src}, intN: intN}
	}, !IsRestartable(src))
}

// DefaultIfEmpty returns a query that yields the elements of src or, if src is empty, the default.
func DefaultIfEmpty[T any](src Sequence[T], dflt Default[T]) Query[T] {
	assertSource(`DefaultIfEmpty`, `source`, src)
	return newQuery(func() Cursor[T] { return &defaultCursor[T]{base: src.Cursor(), dflt: dflt} }, !IsRestartable(src))
}

// Zip returns a query that yields the result of calling zipFunc with the elements of first and second
// pairwise. It stops when either sequence is exhausted.
func Zip[A, B, R any](first Sequence[A], second Sequence[B], zipFunc func(A, B) R) Query[R] {
	assertSource(`Zip`, `first`, first)
	assertSource(`Zip`, `second`, second)
	assertArgument(`Zip`, `zipFunc`, zipFunc)
	return newQuery(func() Cursor[R] {
		return &zipCursor[A, B, R]{first: first.Cursor(), second: second.Cursor(), zipFunc: zipFunc}
	}, !(IsRestartable(first) && IsRestartable(second)))
}

// Trace returns a query that yields the elements of src unchanged and logs each of them at debug level
// using the given logger as they are pulled.
func Trace[T any](src Sequence[T], logger logging.Logger, label string) Query[T] {
	assertSource(`Trace`, `source`, src)
	assertArgument(`Trace`, `logger`, logger)
	return newQuery(func() Cursor[T] { return &traceCursor[T]{base: src.Cursor(), logger: logger, label: label} }, !IsRestartable(src))
}

func (ai *mappingCursor[T, R]) Next() (r R, ok bool) {
	var v T
	if v, ok = ai.base.Next(); ok {
		r = ai.mapFunc(v)
	}
	return
}

func (ai *indexedMappingCursor[T, R]) Next() (r R, ok bool) {
	var v T
	if v, ok = ai.base.Next(); ok {
		r = ai.mapFunc(v, ai.index)
		ai.index++
	}
	return
}

func (ai *flatteningCursor[T, R]) Next() (r R, ok bool) {
	for {
		if ai.inner != nil {
			if r, ok = ai.inner.Next(); ok {
				return
			}
			ai.inner = nil
		}
		var v T
		if v, ok = ai.base.Next(); !ok {
			return
		}
		s := ai.mapFunc(v)
		if isNil(s) {
			panic(errors.Error(errors.InvalidShape, issue.H{`operator`: `SelectMany`, `detail`: `selector did not return a sequence`}))
		}
		ai.inner = s.Cursor()
	}
}

func (ai *predicateCursor[T]) Next() (v T, ok bool) {
	for {
		if v, ok = ai.base.Next(); !ok || ai.predicate(v) {
			return
		}
	}
}

func (ai *indexedPredicateCursor[T]) Next() (v T, ok bool) {
	for {
		if v, ok = ai.base.Next(); !ok {
			return
		}
		idx := ai.index
		ai.index++
		if ai.predicate(v, idx) {
			return
		}
	}
}

func (ai *takeCursor[T]) Next() (v T, ok bool) {
	if ai.remaining <= 0 {
		return
	}
	if v, ok = ai.base.Next(); ok {
		ai.remaining--
	} else {
		ai.remaining = 0
	}
	return
}

func (ai *takeWhileCursor[T]) Next() (v T, ok bool) {
	if ai.done {
		return
	}
	if v, ok = ai.base.Next(); !ok || !ai.predicate(v) {
		var zero T
		ai.done = true
		return zero, false
	}
	return
}

func (ai *skipCursor[T]) Next() (v T, ok bool) {
	for ai.remaining > 0 {
		ai.remaining--
		if _, ok = ai.base.Next(); !ok {
			ai.remaining = 0
			return
		}
	}
	return ai.base.Next()
}

func (ai *skipWhileCursor[T]) Next() (v T, ok bool) {
	for {
		if v, ok = ai.base.Next(); !ok {
			return
		}
		if !ai.skipping || !ai.predicate(v) {
			ai.skipping = false
			return
		}
	}
}

func (ai *bufferedCursor[T]) load() {
	if !ai.loaded {
		ai.items = drain(ai.source.Cursor())
		ai.loaded = true
	}
}

func (ai *reverseCursor[T]) Next() (v T, ok bool) {
	if !ai.loaded {
		ai.load()
		ai.pos = len(ai.items)
	}
	if ai.pos > 0 {
		ai.pos--
		return ai.items[ai.pos], true
	}
	return
}

// Next performs one step of a Fisher-Yates shuffle, drawing the next element from the ones that
// remain.
func (ai *shuffleCursor[T]) Next() (v T, ok bool) {
	if !ai.loaded {
		ai.load()
		ai.remaining = len(ai.items)
	}
	if ai.remaining == 0 {
		return
	}
	j := ai.intN(ai.remaining)
	ai.remaining--
	ai.items[j], ai.items[ai.remaining] = ai.items[ai.remaining], ai.items[j]
	return ai.items[ai.remaining], true
}

func (ai *randomCursor[T]) Next() (T, bool) {
	if !ai.loaded {
		ai.load()
	}
	if len(ai.items) == 0 {
		panic(emptySource(`Random`))
	}
	return ai.items[ai.intN(len(ai.items))], true
}

func (ai *cycleCursor[T]) Next() (v T, ok bool) {
	for !ai.done {
		if ai.current == nil {
			ai.current = ai.source.Cursor()
			ai.yielded = false
		}
		if v, ok = ai.current.Next(); ok {
			ai.yielded = true
			return
		}
		ai.current = nil
		if !ai.yielded {
			ai.done = true
		}
	}
	return
}

func (ai *defaultCursor[T]) Next() (v T, ok bool) {
	if ai.done {
		return
	}
	if v, ok = ai.base.Next(); ok {
		ai.started = true
		return
	}
	ai.done = true
	if !ai.started {
		return ai.dflt.Get(), true
	}
	return
}

func (ai *zipCursor[A, B, R]) Next() (r R, ok bool) {
	if ai.done {
		return
	}
	a, aok := ai.first.Next()
	if aok {
		var b B
		if b, ok = ai.second.Next(); ok {
			return ai.zipFunc(a, b), true
		}
	}
	ai.done = true
	return
}

func (ai *traceCursor[T]) Next() (v T, ok bool) {
	if ai.done {
		return
	}
	if v, ok = ai.base.Next(); ok {
		logging.Debug(ai.logger, `%s[%d]: %v`, ai.label, ai.index, v)
		ai.index++
		return
	}
	ai.done = true
	logging.Debug(ai.logger, `%s: exhausted after %d elements`, ai.label, ai.index)
	return
}

// drain pulls all remaining elements from the given cursor into a new slice.
func drain[T any](c Cursor[T]) []T {
	el := make([]T, 0, 16)
	for {
		v, ok := c.Next()
		if !ok {
			return el
		}
		el = append(el, v)
	}
}
