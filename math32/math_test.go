// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/glmath/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func tolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTolSlice(t, vt.AppendFloats(nil), va.AppendFloats(nil), tol)
}

func tolAssertEqualVector4(t *testing.T, tol float32, vt, va Vector4) {
	t.Helper()
	tolassert.EqualTolSlice(t, vt.AppendFloats(nil), va.AppendFloats(nil), tol)
}

func tolAssertEqualMatrix[M Matrix2 | Matrix3 | Matrix4](t *testing.T, tol float32, mt, ma M) {
	t.Helper()
	tolassert.EqualTolSlice(t, matrixFloats(mt), matrixFloats(ma), tol)
}

func matrixFloats[M Matrix2 | Matrix3 | Matrix4](m M) []float32 {
	switch m := any(m).(type) {
	case Matrix2:
		return m[:]
	case Matrix3:
		return m[:]
	case Matrix4:
		return m[:]
	}
	return nil
}

func TestDegRad(t *testing.T) {
	tolassert.EqualTol(t, Pi/2, DegToRad(90), standardTol)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-4)
	tolassert.EqualTol(t, 45, RadToDeg(DegToRad(45)), 1e-5)
}

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(3), Abs(-3))
	assert.Equal(t, float32(3), Sqrt(9))
	assert.Equal(t, float32(2), Max(1, 2))
	assert.Equal(t, float32(1), Min(1, 2))
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, float32(-1), Clamp[float32](-3, -1, 1))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))

	s, c := Sincos(Pi / 2)
	tolassert.EqualTol(t, 1, s, standardTol)
	tolassert.EqualTol(t, 0, c, standardTol)
	tolassert.EqualTol(t, 1, Tan(Pi/4), 1e-5)

	assert.True(t, IsNaN(Float32frombits(0x7fc00000)))
	assert.True(t, IsInf(Infinity, 1))
	assert.Equal(t, uint32(0x3f800000), Float32bits(1))

	assert.True(t, IsEqualTol(1, 1.0000001, standardTol))
	assert.False(t, IsEqualTol(1, 1.1, standardTol))
}
