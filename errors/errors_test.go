package errors_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatch_reported(t *testing.T) {
	err := errors.Catch(func() {
		panic(errors.Error(errors.EmptySource, issue.H{`operator`: `first`}))
	})
	require.Error(t, err)
	assert.Equal(t, errors.EmptySource, string(errors.CodeOf(err)))
	assert.Contains(t, err.Error(), `first(): sequence contains no elements`)
}

func TestCatch_noPanic(t *testing.T) {
	assert.NoError(t, errors.Catch(func() {}))
}

func TestCatch_repanicsForeignValues(t *testing.T) {
	assert.PanicsWithValue(t, `boom`, func() {
		_ = errors.Catch(func() { panic(`boom`) })
	})
	assert.Panics(t, func() {
		_ = errors.Catch(func() { panic(io.EOF) })
	})
}

func TestWrap_keepsCause(t *testing.T) {
	err := errors.Catch(func() {
		panic(errors.Wrap(errors.ParseError, io.ErrUnexpectedEOF, issue.H{`language`: `YAML`, `detail`: `truncated`}))
	})
	require.Error(t, err)
	assert.Equal(t, errors.ParseError, string(errors.CodeOf(err)))
	c, ok := err.(*errors.Caused)
	require.True(t, ok)
	assert.Equal(t, io.ErrUnexpectedEOF, c.Unwrap())
}

func TestCodeOf_followsChain(t *testing.T) {
	inner := errors.Error(errors.NoMatch, issue.H{`operator`: `single`})
	outer := fmt.Errorf(`lookup: %w`, inner)
	assert.Equal(t, errors.NoMatch, string(errors.CodeOf(outer)))
	assert.Equal(t, ``, string(errors.CodeOf(io.EOF)))
	assert.Equal(t, ``, string(errors.CodeOf(nil)))
}
