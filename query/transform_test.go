package query_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/query/logging"
	"github.com/lyraproj/query/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMatchesMap(t *testing.T) {
	src := []int{4, 8, 15, 16, 23, 42}
	want := make([]string, len(src))
	for i, v := range src {
		want[i] = strconv.Itoa(v)
	}
	got := query.Select(query.From(src), strconv.Itoa).ToSlice()
	if diff := cmp.Diff(want, got); diff != `` {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexedVariants(t *testing.T) {
	words := query.Of(`a`, `b`, `c`, `d`)
	assert.Equal(t, []string{`0a`, `1b`, `2c`, `3d`}, query.SelectIndexed(words, func(s string, i int) string { return strconv.Itoa(i) + s }).ToSlice())
	assert.Equal(t, []string{`b`, `d`}, words.WhereIndexed(func(_ string, i int) bool { return i%2 == 1 }).ToSlice())
}

func TestTakeAndSkip(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, oneToTen().Take(4).ToSlice())
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, oneToTen().Skip(4).ToSlice())
	assert.Empty(t, oneToTen().Take(0).ToSlice())
	assert.Equal(t, oneToTen().ToSlice(), oneToTen().Take(20).ToSlice())
	assert.Empty(t, oneToTen().Skip(20).ToSlice())

	src := oneToTen().ToSlice()
	for i := 0; i <= 10; i++ {
		for n := 0; n <= 10-i; n++ {
			assert.Equal(t, src[i:i+n], oneToTen().Skip(i).Take(n).ToSlice(), `skip %d take %d`, i, n)
		}
	}
}

func TestTakeWhileAndSkipWhile(t *testing.T) {
	small := func(v int) bool { return v < 4 }
	assert.Equal(t, []int{1, 2, 3}, oneToTen().TakeWhile(small).ToSlice())
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, oneToTen().SkipWhile(small).ToSlice())

	// skipping stops for good at the first mismatch
	assert.Equal(t, []int{5, 1, 2}, query.Of(1, 5, 1, 2).SkipWhile(small).ToSlice())
	assert.Equal(t, []int{1}, query.Of(1, 5, 1, 2).TakeWhile(small).ToSlice())
}

func TestTakeIsLazyOnInfiniteSources(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 1, 2}, query.Of(1, 2, 3).Cycle().Take(5).ToSlice())
	assert.Equal(t, 3, query.Repeat(7, math.MaxInt).Take(3).Count())
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, oneToTen().Reverse().ToSlice())
	assert.Empty(t, query.Empty[int]().Reverse().ToSlice())
}

func TestShuffleIsAPermutation(t *testing.T) {
	shuffled := oneToTen().ShuffleWith(rand.New(rand.NewPCG(1, 2))).ToSlice()
	assert.Len(t, shuffled, 10)
	slices.Sort(shuffled)
	assert.Equal(t, oneToTen().ToSlice(), shuffled)

	assert.ElementsMatch(t, oneToTen().ToSlice(), oneToTen().Shuffle().ToSlice())
	assert.Empty(t, query.Empty[int]().Shuffle().ToSlice())
}

func TestShuffleWithSameSeedIsDeterministic(t *testing.T) {
	a := oneToTen().ShuffleWith(rand.New(rand.NewPCG(7, 11))).ToSlice()
	b := oneToTen().ShuffleWith(rand.New(rand.NewPCG(7, 11))).ToSlice()
	assert.Equal(t, a, b)
}

func TestRandomDrawsFromSource(t *testing.T) {
	draws := query.Of(`a`, `b`, `c`).RandomWith(rand.New(rand.NewPCG(3, 5))).Take(50).ToSlice()
	require.Len(t, draws, 50)
	for _, d := range draws {
		assert.Contains(t, []string{`a`, `b`, `c`}, d)
	}
	assert.Equal(t, errors.EmptySource, failure(func() { query.Empty[string]().Random().Take(1).ToSlice() }))
}

func TestCycle(t *testing.T) {
	assert.Empty(t, query.Empty[int]().Cycle().Take(5).ToSlice())
	assert.Equal(t, []string{`x`, `x`, `x`}, query.Of(`x`).Cycle().Take(3).ToSlice())
}

func TestDefaultIfEmpty(t *testing.T) {
	assert.Equal(t, []int{1, 2}, query.Of(1, 2).DefaultIfEmpty(query.Value(9)).ToSlice())
	assert.Equal(t, []int{9}, query.Empty[int]().DefaultIfEmpty(query.Value(9)).ToSlice())
	assert.Equal(t, []int{0}, query.Empty[int]().DefaultIfEmpty(query.Zero[int]()).ToSlice())
}

func TestZip(t *testing.T) {
	z := query.Zip(query.Of(1, 2, 3), query.Of(`a`, `b`), func(n int, s string) string { return s + strconv.Itoa(n) })
	assert.Equal(t, []string{`a1`, `b2`}, z.ToSlice())
}

func TestSelectMany(t *testing.T) {
	q := query.SelectMany(query.Of(0, 1, 2, 3), func(v int) query.Sequence[int] { return query.Repeat(v, v) })
	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, q.ToSlice())
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{-2, -1, 0}, query.Range(-2, 3).ToSlice())
	assert.Empty(t, query.Range(5, 0).ToSlice())
	assert.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1}, query.Range(math.MaxInt-2, 2).ToSlice())
	assert.Equal(t, errors.OutOfRange, failure(func() { query.Range(math.MaxInt, 1) }))
	assert.Equal(t, errors.OutOfRange, failure(func() { query.Range(math.MaxInt-1, 2) }))
	assert.Empty(t, query.Range(math.MaxInt, 0).ToSlice())
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{`a`, `a`, `a`}, query.Repeat(`a`, 3).ToSlice())
	assert.Empty(t, query.Repeat(`a`, 0).ToSlice())
}

func TestTraceLogsPulledElements(t *testing.T) {
	logger := logging.NewArrayLogger()
	q := oneToTen().Where(isEven).Trace(logger, `evens`).Take(2)
	assert.Empty(t, logger.Entries(logging.DEBUG))

	assert.Equal(t, []int{2, 4}, q.ToSlice())
	assert.Equal(t, []string{`evens[0]: 2`, `evens[1]: 4`}, logger.Entries(logging.DEBUG))

	query.Trace[int](query.Of(1), logger, `one`).ToSlice()
	assert.Equal(t, []string{`evens[0]: 2`, `evens[1]: 4`, `one[0]: 1`, `one: exhausted after 1 elements`}, logger.Entries(logging.DEBUG))
}
