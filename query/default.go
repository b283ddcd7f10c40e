package query

// Default is the value substituted by the OrDefault operators and DefaultIfEmpty. It is either a literal
// value or a factory that is called each time a default is actually needed.
type Default[T any] struct {
	value   T
	factory func() T
}

// Value returns a Default holding the given literal value.
func Value[T any](v T) Default[T] {
	return Default[T]{value: v}
}

// Factory returns a Default that produces its value by calling f.
func Factory[T any](f func() T) Default[T] {
	assertArgument(`Factory`, `factory`, f)
	return Default[T]{factory: f}
}

// Zero returns a Default holding the zero value of T.
func Zero[T any]() Default[T] {
	return Default[T]{}
}

// Get resolves the default.
func (d Default[T]) Get() T {
	if d.factory != nil {
		return d.factory()
	}
	return d.value
}

// IsFactory returns true if the default is produced by a factory.
func (d Default[T]) IsFactory() bool {
	return d.factory != nil
}
