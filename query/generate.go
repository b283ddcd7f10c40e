package query

type (
	rangeCursor struct {
		next      int
		remaining int
	}

	repeatCursor[T any] struct {
		value     T
		remaining int
	}
)

// Range returns a query that yields count consecutive integers starting with start. It panics with
// QUERY_OUT_OF_RANGE if count is negative or if start+count would exceed math.MaxInt.
func Range(start, count int) Query[int] {
	assertRangeEnd(`Range`, start, count)
	return newQuery(func() Cursor[int] { return &rangeCursor{start, count} }, false)
}

// Repeat returns a query that yields value count times.
func Repeat[T any](value T, count int) Query[T] {
	assertCount(`Repeat`, `count`, count)
	return newQuery(func() Cursor[T] { return &repeatCursor[T]{value, count} }, false)
}

func (ri *rangeCursor) Next() (int, bool) {
	if ri.remaining <= 0 {
		return 0, false
	}
	v := ri.next
	ri.remaining--
	if ri.remaining > 0 {
		ri.next++
	}
	return v, true
}

func (ri *repeatCursor[T]) Next() (v T, ok bool) {
	if ri.remaining > 0 {
		ri.remaining--
		return ri.value, true
	}
	return
}
