package compare_test

import (
	"slices"
	"testing"

	"github.com/lyraproj/query/compare"
	"github.com/lyraproj/query/errors"
	"github.com/stretchr/testify/assert"
)

type caseless string

func (c caseless) Equals(other interface{}) bool {
	o, ok := other.(caseless)
	return ok && compare.FoldedEqual(string(c), string(o))
}

func TestEqual(t *testing.T) {
	assert.True(t, compare.Equal(1, 1))
	assert.False(t, compare.Equal(`a`, `b`))
	assert.True(t, compare.Equal([]int{1, 2}, []int{1, 2}))
	assert.True(t, compare.Equal(map[string]int{`a`: 1}, map[string]int{`a`: 1}))
	assert.True(t, compare.Equal(caseless(`Go`), caseless(`GO`)))

	var a, b interface{}
	assert.True(t, compare.Equal(a, b))
	assert.False(t, compare.Equal[interface{}](nil, 0))
}

func TestEqualUsesIdentityForPointers(t *testing.T) {
	x, y := 1, 1
	assert.True(t, compare.Equal(&x, &x))
	assert.False(t, compare.Equal(&x, &y))

	f := func() {}
	assert.False(t, compare.Equal(f, f))
}

func TestOr(t *testing.T) {
	assert.True(t, compare.Or[string](nil)(`a`, `a`))
	assert.True(t, compare.Or(compare.FoldedEqual)(`a`, `A`))
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, compare.IndexOf([]string{`a`, `B`}, `b`, compare.FoldedEqual))
	assert.Equal(t, -1, compare.IndexOf([]int{1, 2}, 3, compare.Equal[int]))
	assert.True(t, compare.Includes([]int{1, 2}, 2, compare.Equal[int]))
}

func TestNegateKeepsTies(t *testing.T) {
	desc := compare.Negate(compare.Ordered[int])
	assert.Equal(t, 1, desc(1, 2))
	assert.Equal(t, -1, desc(2, 1))
	assert.Equal(t, 0, desc(2, 2))
}

func TestByAndThen(t *testing.T) {
	byLen := compare.By(func(s string) int { return len(s) }, compare.Ordered[int])
	c := compare.Then(byLen, compare.FoldedStrings)
	words := []string{`bb`, `Ab`, `c`, `B`, `aa`}
	slices.SortStableFunc(words, c)
	assert.Equal(t, []string{`B`, `c`, `aa`, `Ab`, `bb`}, words)
}

func TestVersions(t *testing.T) {
	versions := []string{`1.10.0`, `1.2.0`, `1.2.0-rc.1`, `0.9.9`}
	slices.SortFunc(versions, compare.Versions)
	assert.Equal(t, []string{`0.9.9`, `1.2.0-rc.1`, `1.2.0`, `1.10.0`}, versions)

	assert.Equal(t, errors.ParseError, string(errors.CodeOf(errors.Catch(func() { compare.Versions(`1.x`, `1.0.0`) }))))
}

func TestInVersionRange(t *testing.T) {
	in := compare.InVersionRange(`>=1.2.0 <2.0.0`)
	assert.True(t, in(`1.2.0`))
	assert.True(t, in(`1.99.3`))
	assert.False(t, in(`2.0.0`))
	assert.False(t, in(`1.1.9`))

	assert.Equal(t, errors.ParseError, string(errors.CodeOf(errors.Catch(func() { compare.InVersionRange(`>=bogus`) }))))
}
