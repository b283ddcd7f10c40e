package query

import (
	"cmp"
	"fmt"
	"math"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/compare"
	"github.com/lyraproj/query/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types that Sum and Average accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the elements of src. It panics with QUERY_EMPTY_SOURCE if src is empty and
// with QUERY_NUMERIC_OVERFLOW if the sum leaves the finite range of T.
func Sum[T Number](src Sequence[T]) T {
	assertSource(`Sum`, `source`, src)
	s, n := sum(`Sum`, src.Cursor())
	if n == 0 {
		panic(emptySource(`Sum`))
	}
	return s
}

// SumOf returns the sum of the numbers produced by calling selector with each element of src.
func SumOf[T any, N Number](src Sequence[T], selector func(T) N) N {
	assertSource(`SumOf`, `source`, src)
	assertArgument(`SumOf`, `selector`, selector)
	s, n := sum(`SumOf`, &mappingCursor[T, N]{src.Cursor(), selector})
	if n == 0 {
		panic(emptySource(`SumOf`))
	}
	return s
}

// Average returns the arithmetic mean of the elements of src. The elements are added up as float64, so
// the mean of small integer types does not overflow. It panics with QUERY_EMPTY_SOURCE if src is empty
// and with QUERY_NUMERIC_OVERFLOW if the sum becomes infinite.
func Average[T Number](src Sequence[T]) float64 {
	assertSource(`Average`, `source`, src)
	return average(`Average`, src.Cursor())
}

// AverageOf returns the arithmetic mean of the numbers produced by calling selector with each element
// of src.
func AverageOf[T any, N Number](src Sequence[T], selector func(T) N) float64 {
	assertSource(`AverageOf`, `source`, src)
	assertArgument(`AverageOf`, `selector`, selector)
	return average(`AverageOf`, &mappingCursor[T, N]{src.Cursor(), selector})
}

// sum adds up all elements and returns the total together with the number of elements added.
func sum[T Number](op string, c Cursor[T]) (total T, n int) {
	for {
		v, ok := c.Next()
		if !ok {
			return
		}
		s := total + v
		if v > 0 && s < total || v < 0 && s > total || math.IsInf(float64(s), 0) {
			panic(errors.Error(errors.NumericOverflow, issue.H{`operator`: op, `type`: fmt.Sprintf(`%T`, s)}))
		}
		total = s
		n++
	}
}

func average[T Number](op string, c Cursor[T]) float64 {
	total := 0.0
	n := 0
	for {
		v, ok := c.Next()
		if !ok {
			break
		}
		total += float64(v)
		if math.IsInf(total, 0) {
			panic(errors.Error(errors.NumericOverflow, issue.H{`operator`: op, `type`: `float64`}))
		}
		n++
	}
	if n == 0 {
		panic(emptySource(op))
	}
	return total / float64(n)
}

// Max returns the greatest element of src. It panics with QUERY_EMPTY_SOURCE if src is empty.
func Max[T cmp.Ordered](src Sequence[T]) T {
	assertSource(`Max`, `source`, src)
	return extreme(`Max`, src.Cursor(), compare.Ordered[T], 1)
}

// Min returns the smallest element of src. It panics with QUERY_EMPTY_SOURCE if src is empty.
func Min[T cmp.Ordered](src Sequence[T]) T {
	assertSource(`Min`, `source`, src)
	return extreme(`Min`, src.Cursor(), compare.Ordered[T], -1)
}

// MaxOf returns the greatest value produced by calling selector with each element of src.
func MaxOf[T any, K cmp.Ordered](src Sequence[T], selector func(T) K) K {
	assertSource(`MaxOf`, `source`, src)
	assertArgument(`MaxOf`, `selector`, selector)
	return extreme(`MaxOf`, &mappingCursor[T, K]{src.Cursor(), selector}, compare.Ordered[K], 1)
}

// MinOf returns the smallest value produced by calling selector with each element of src.
func MinOf[T any, K cmp.Ordered](src Sequence[T], selector func(T) K) K {
	assertSource(`MinOf`, `source`, src)
	assertArgument(`MinOf`, `selector`, selector)
	return extreme(`MinOf`, &mappingCursor[T, K]{src.Cursor(), selector}, compare.Ordered[K], -1)
}

// MaxFunc returns the first element of src that no other element is greater than according to c.
func MaxFunc[T any](src Sequence[T], c compare.Comparer[T]) T {
	assertSource(`MaxFunc`, `source`, src)
	assertArgument(`MaxFunc`, `comparer`, c)
	return extreme(`MaxFunc`, src.Cursor(), c, 1)
}

// MinFunc returns the first element of src that no other element is smaller than according to c.
func MinFunc[T any](src Sequence[T], c compare.Comparer[T]) T {
	assertSource(`MinFunc`, `source`, src)
	assertArgument(`MinFunc`, `comparer`, c)
	return extreme(`MinFunc`, src.Cursor(), c, -1)
}

// extreme returns the greatest (sign > 0) or smallest (sign < 0) element according to c. Ties are
// resolved in favor of the first element.
func extreme[T any](op string, cr Cursor[T], c compare.Comparer[T], sign int) T {
	result, ok := cr.Next()
	if !ok {
		panic(emptySource(op))
	}
	for {
		v, ok := cr.Next()
		if !ok {
			return result
		}
		if r := c(v, result); sign > 0 && r > 0 || sign < 0 && r < 0 {
			result = v
		}
	}
}
