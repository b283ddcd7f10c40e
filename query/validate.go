package query

import (
	"math"
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
)

// Argument guards. Every operator calls these before it does any work so that a bad argument fails at
// call time even when the operator itself is deferred.

func assertArgument(op, name string, v interface{}) {
	if isNil(v) {
		panic(errors.Error(errors.MissingArgument, issue.H{`operator`: op, `name`: name}))
	}
}

func assertSource[T any](op, name string, s Sequence[T]) {
	assertArgument(op, name, s)
}

func assertCount(op, name string, count int) {
	if count < 0 {
		panic(errors.Error(errors.OutOfRange, issue.H{`operator`: op, `name`: name, `value`: count}))
	}
}

// assertRangeEnd asserts that start+count, the exclusive end of the range, does not exceed math.MaxInt.
func assertRangeEnd(op string, start, count int) {
	assertCount(op, `count`, count)
	if count > 0 && start > math.MaxInt-count {
		panic(errors.Error(errors.OutOfRange, issue.H{`operator`: op, `name`: `count`, `value`: count}))
	}
}

// assertRestartable asserts that the given source can be traversed more than once. Operators that scan
// a source repeatedly during one traversal use this.
func assertRestartable[T any](op string, s Sequence[T]) {
	if !IsRestartable(s) {
		panic(errors.Error(errors.NotRestartable, issue.H{`operator`: op}))
	}
}

func emptySource(op string) issue.Reported {
	return errors.Error(errors.EmptySource, issue.H{`operator`: op})
}

func noMatch(op string) issue.Reported {
	return errors.Error(errors.NoMatch, issue.H{`operator`: op})
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
