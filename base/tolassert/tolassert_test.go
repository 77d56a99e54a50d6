// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.0000001, 1e-6))
	assert.True(t, EqualTol(t, 3.14, 3.1415, 0.01))

	mock := &mockT{}
	assert.False(t, EqualTol(mock, float32(1), 1.1, 1e-6))
	assert.True(t, mock.failed)
}

func TestEqualTolSlice(t *testing.T) {
	assert.True(t, EqualTolSlice(t, []float32{1, 2, 3}, []float32{1, 2.0000001, 3}, 1e-6))

	assert.False(t, EqualTolSlice(&mockT{}, []float32{1, 2}, []float32{1}, 1e-6))
	assert.False(t, EqualTolSlice(&mockT{}, []float32{1, 2}, []float32{1, 3}, 1e-6))
}
