// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)

	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("matrix is singular")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "matrix is singular")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 4, Log1(4, New("bad")))
	assert.Contains(t, buf.String(), "bad")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithError(t, "boom", func() { Must(New("boom")) })
	assert.Equal(t, 2, Must1(2, nil))
	assert.Panics(t, func() { Must1(2, New("boom")) })
}

func TestStdlib(t *testing.T) {
	base := New("base")
	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
	assert.Nil(t, Unwrap(base))
}
