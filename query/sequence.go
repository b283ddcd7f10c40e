package query

import (
	"unicode/utf8"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
)

type (
	// Cursor is the runtime form of a traversal. Next returns the next element and true, or the zero
	// value and false when the cursor is exhausted. An exhausted cursor never yields again.
	Cursor[T any] interface {
		Next() (T, bool)
	}

	// Sequence is anything that can produce a fresh cursor. Cursors produced by the same sequence are
	// independent of each other.
	Sequence[T any] interface {
		Cursor() Cursor[T]
	}

	// Restartable is implemented by sequences that know whether they can be traversed more than once.
	// A sequence that doesn't implement it is assumed to be restartable.
	Restartable interface {
		Restartable() bool
	}

	indexedCursor[T any] struct {
		pos     int
		indexed []T
	}

	stringCursor struct {
		pos int
		str string
	}

	emptyCursor[T any] struct{}

	onceSequence[T any] struct {
		cursor Cursor[T]
		used   bool
	}
)

// IsRestartable returns false if the given sequence declares that it can only be traversed once.
func IsRestartable[T any](s Sequence[T]) bool {
	if r, ok := s.(Restartable); ok {
		return r.Restartable()
	}
	return true
}

// From returns a query over the given slice. The slice is not copied, so changes made to it before
// the query is traversed will be visible in the traversal.
func From[T any](items []T) Query[T] {
	return newQuery(func() Cursor[T] { return &indexedCursor[T]{0, items} }, false)
}

// Of returns a query over the given values.
func Of[T any](items ...T) Query[T] {
	return From(items)
}

// FromString returns a query over the runes of the given string.
func FromString(s string) Query[rune] {
	return newQuery(func() Cursor[rune] { return &stringCursor{0, s} }, false)
}

// FromSequence returns a query over an arbitrary sequence. If the sequence already is a Query, it is
// returned as is.
func FromSequence[T any](s Sequence[T]) Query[T] {
	assertSource(`FromSequence`, `source`, s)
	return asQuery(s)
}

// Once returns a query over a strictly one-shot cursor. The first traversal consumes the cursor. Any
// attempt to traverse the query again panics with a QUERY_NOT_RESTARTABLE issue.
func Once[T any](c Cursor[T]) Query[T] {
	assertArgument(`Once`, `cursor`, c)
	os := &onceSequence[T]{cursor: c}
	return newQuery(os.Cursor, true)
}

// Empty returns a query that yields nothing.
func Empty[T any]() Query[T] {
	return newQuery(func() Cursor[T] { return emptyCursor[T]{} }, false)
}

func asQuery[T any](s Sequence[T]) Query[T] {
	if q, ok := s.(Query[T]); ok {
		return q
	}
	return newQuery(s.Cursor, !IsRestartable(s))
}

func (ai *indexedCursor[T]) Next() (v T, ok bool) {
	if ai.pos < len(ai.indexed) {
		v = ai.indexed[ai.pos]
		ai.pos++
		ok = true
	}
	return
}

func (si *stringCursor) Next() (rune, bool) {
	if si.pos < len(si.str) {
		r, n := utf8.DecodeRuneInString(si.str[si.pos:])
		si.pos += n
		return r, true
	}
	return 0, false
}

func (emptyCursor[T]) Next() (v T, ok bool) {
	return
}

func (os *onceSequence[T]) Cursor() Cursor[T] {
	if os.used {
		panic(errors.Error(errors.NotRestartable, issue.H{`operator`: `Once`}))
	}
	os.used = true
	return os.cursor
}

func (os *onceSequence[T]) Restartable() bool {
	return false
}
