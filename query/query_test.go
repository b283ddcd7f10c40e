package query_test

import (
	"testing"

	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/query/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// failure runs f and returns the issue code of the failure that it panics with.
func failure(f func()) string {
	return string(errors.CodeOf(errors.Catch(f)))
}

func oneToTen() query.Query[int] {
	return query.Range(1, 10)
}

func TestDeferredOperatorsDoNothingUntilTraversed(t *testing.T) {
	calls := 0
	q := query.Select(oneToTen(), func(v int) int { calls++; return v * 2 }).
		Where(func(v int) bool { calls++; return true })
	assert.Equal(t, 0, calls)

	assert.Equal(t, 2, q.First())
	assert.Equal(t, 2, calls)
}

func TestTraversalsAreIndependent(t *testing.T) {
	items := []int{1, 2, 3}
	q := query.From(items).Where(func(v int) bool { return v > 1 })
	assert.Equal(t, []int{2, 3}, q.ToSlice())

	items[0] = 5
	assert.Equal(t, []int{5, 2, 3}, query.From(items).ToSlice())
	assert.Equal(t, []int{5, 2, 3}, q.ToSlice())
	assert.Equal(t, q.ToSlice(), q.ToSlice())
}

func TestCursorsOfOneQueryDoNotShareState(t *testing.T) {
	q := oneToTen()
	a := q.Cursor()
	b := q.Cursor()
	a.Next()
	a.Next()
	v, ok := b.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, _ = a.Next()
	assert.Equal(t, 3, v)
}

func TestZeroQueryIsEmpty(t *testing.T) {
	var q query.Query[string]
	assert.Empty(t, q.ToSlice())
	assert.False(t, q.Any())
}

func TestArgumentsAreValidatedAtCallTime(t *testing.T) {
	tests := []struct {
		name string
		call func()
		code string
	}{
		{`Where`, func() { query.Where[int](oneToTen(), nil) }, errors.MissingArgument},
		{`Select`, func() { query.Select[int, int](nil, func(v int) int { return v }) }, errors.MissingArgument},
		{`Take`, func() { oneToTen().Take(-1) }, errors.OutOfRange},
		{`Skip`, func() { oneToTen().Skip(-1) }, errors.OutOfRange},
		{`Repeat`, func() { query.Repeat(`x`, -1) }, errors.OutOfRange},
		{`Range negative`, func() { query.Range(0, -1) }, errors.OutOfRange},
		{`Join`, func() {
			query.Join[int, int, int, int](oneToTen(), oneToTen(), nil, func(v int) int { return v }, func(a, b int) int { return a })
		}, errors.MissingArgument},
		{`Factory`, func() { query.Factory[int](nil) }, errors.MissingArgument},
		{`ThenBy`, func() { query.ThenBy[int, int](nil, func(v int) int { return v }) }, errors.MissingArgument},
		{`ShuffleWith`, func() { oneToTen().ShuffleWith(nil) }, errors.MissingArgument},
		{`Trace`, func() { oneToTen().Trace(nil, `x`) }, errors.MissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure(tt.call))
		})
	}
}

func TestContentFailuresSurfaceDuringTraversal(t *testing.T) {
	q := query.Random[int](query.Empty[int]())
	c := q.Cursor()
	assert.Equal(t, errors.EmptySource, failure(func() { c.Next() }))

	nested := query.SelectMany(query.Of(1, 2), func(v int) query.Sequence[int] {
		if v == 2 {
			return nil
		}
		return query.Repeat(v, 2)
	})
	nc := nested.Cursor()
	v, ok := nc.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	nc.Next()
	assert.Equal(t, errors.InvalidShape, failure(func() { nc.Next() }))
}

func TestOnceCanOnlyBeTraversedOnce(t *testing.T) {
	q := query.Once(query.Of(1, 2, 3).Cursor())
	assert.False(t, q.Restartable())
	assert.Equal(t, []int{1, 2, 3}, q.ToSlice())
	assert.Equal(t, errors.NotRestartable, failure(func() { q.ToSlice() }))
}

func TestOneShotPropagates(t *testing.T) {
	once := query.Once(query.Of(1, 2, 3).Cursor())
	assert.False(t, once.Where(func(int) bool { return true }).Restartable())
	assert.False(t, query.Select(once, func(v int) int { return v }).Restartable())
	assert.False(t, oneToTen().Concat(once).Restartable())
	assert.True(t, oneToTen().Concat(oneToTen()).Restartable())
}

func TestRepeatedScansRequireRestartableSources(t *testing.T) {
	key := func(v int) int { return v % 2 }
	once := func() query.Query[int] { return query.Once(query.Of(1, 2, 3).Cursor()) }

	assert.Equal(t, errors.NotRestartable, failure(func() { query.GroupBy(once(), key) }))
	assert.Equal(t, errors.NotRestartable, failure(func() { once().Cycle() }))
	assert.Equal(t, errors.NotRestartable, failure(func() {
		query.Join(oneToTen(), once(), key, key, func(a, b int) int { return a + b })
	}))

	// a one-shot outer source is scanned only once
	joined := query.Join(once(), oneToTen(), key, key, func(a, b int) int { return a * b })
	assert.Equal(t, 15, joined.Count())
}

func TestFromSequenceKeepsQuery(t *testing.T) {
	q := oneToTen()
	assert.Equal(t, q.ToSlice(), query.FromSequence[int](q).ToSlice())
	assert.Equal(t, errors.MissingArgument, failure(func() { query.FromSequence[int](nil) }))
}

func TestFromString(t *testing.T) {
	assert.Equal(t, []rune(`håll`), query.FromString(`håll`).ToSlice())
	assert.Equal(t, 4, query.FromString(`håll`).Count())
}

func TestSeqStopsEarly(t *testing.T) {
	var seen []int
	for v := range query.Cycle[int](oneToTen()).Seq() {
		if v > 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}
