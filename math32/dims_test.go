// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDims(t *testing.T) {
	for d := X; d < DimsN; d++ {
		var got Dims
		assert.NoError(t, got.SetString(d.String()))
		assert.Equal(t, d, got)
	}
	assert.Equal(t, "Dims(7)", Dims(7).String())

	var d Dims
	assert.NoError(t, d.SetString("z"))
	assert.Equal(t, Z, d)
	assert.Error(t, d.SetString("V"))
	assert.Equal(t, Z, d)

	assert.Equal(t, Y, OtherDim(X))
	assert.Equal(t, X, OtherDim(Y))
}
