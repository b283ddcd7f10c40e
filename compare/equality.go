package compare

import (
	"reflect"
	"strings"
)

type (
	// Equality is implemented by values that know how to compare themselves with other values. Equal
	// will use it in favor of a reflective comparison.
	Equality interface {
		Equals(other interface{}) bool
	}

	// EqualityFunc reports whether two values should be considered equal.
	EqualityFunc[T any] func(a, b T) bool
)

// Equal is the default equality used by the query operators. Values implementing Equality decide for
// themselves, pointers, channels and functions compare by identity, and all other values are compared
// using reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	var av interface{} = a
	var bv interface{} = b
	switch at := av.(type) {
	case nil:
		return bv == nil
	case Equality:
		return at.Equals(bv)
	case string:
		bs, ok := bv.(string)
		return ok && at == bs
	case int:
		bi, ok := bv.(int)
		return ok && at == bi
	default:
		switch reflect.TypeOf(av).Kind() {
		case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
			return av == bv
		case reflect.Func:
			return false
		}
		return reflect.DeepEqual(av, bv)
	}
}

// Or returns the given equality or, when it is nil, the default equality Equal.
func Or[T any](eq EqualityFunc[T]) EqualityFunc[T] {
	if eq == nil {
		return Equal[T]
	}
	return eq
}

// IndexOf returns the index of the first element in a that is equal to b according to eq, or -1 when
// no such element exists.
func IndexOf[T any](a []T, b T, eq EqualityFunc[T]) int {
	for idx := range a {
		if eq(a[idx], b) {
			return idx
		}
	}
	return -1
}

// Includes returns true if a contains an element equal to b according to eq.
func Includes[T any](a []T, b T, eq EqualityFunc[T]) bool {
	return IndexOf(a, b, eq) >= 0
}

// FoldedEqual reports whether two strings are equal under Unicode case folding.
func FoldedEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
