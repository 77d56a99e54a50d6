// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"testing"

	"cogentcore.org/glmath/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertIndexPanic asserts that f panics with an [*IndexError]
// for the given index and length.
func assertIndexPanic(t *testing.T, index, length int, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
		var ie *IndexError
		if assert.True(t, errors.As(err, &ie)) {
			assert.Equal(t, index, ie.Index)
			assert.Equal(t, length, ie.Len)
		}
	}()
	f()
}

func TestIndexError(t *testing.T) {
	err := error(&IndexError{Index: 5, Len: 3})
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Equal(t, "math32: index out of bounds: index 5 with length 3", err.Error())

	wrapped := fmt.Errorf("reading uniform: %w", err)
	assert.ErrorIs(t, wrapped, ErrIndexOutOfBounds)
	assert.NotErrorIs(t, wrapped, ErrSingularMatrix)
}

func TestParseErrorUnwrap(t *testing.T) {
	err := error(&ParseError{Type: "Vector2", Text: "1", Err: ErrTooFewComponents})
	assert.ErrorIs(t, err, ErrTooFewComponents)
	assert.Equal(t, `parsing Vector2 from "1": math32: too few components`, err.Error())
}

func TestDimsOutOfRange(t *testing.T) {
	assertIndexPanic(t, 5, 3, func() { Vec3(1, 2, 3).Dim(5) })
	assertIndexPanic(t, 3, 3, func() { Vec3(1, 2, 3).Dim(W) })
	assertIndexPanic(t, 4, 4, func() { Vec4(1, 2, 3, 4).Dim(4) })
	assertIndexPanic(t, 3, 3, func() { Identity3().At(3, 0) })
	assertIndexPanic(t, 4, 4, func() { Identity4().Col(4) })
	assertIndexPanic(t, -1, 2, func() { Identity2().Row(-1) })
}
