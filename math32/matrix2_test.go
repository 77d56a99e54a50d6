// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix2Layout(t *testing.T) {
	m := NewMatrix2(
		1, 2,
		3, 4,
	)
	// column-major: the first column is (1, 3)
	assert.Equal(t, Matrix2{1, 3, 2, 4}, m)
	assert.Equal(t, float32(2), m.At(0, 1))
	assert.Equal(t, float32(3), m.At(1, 0))
	assert.Equal(t, Vec2(1, 3), m.Col(0))
	assert.Equal(t, Vec2(1, 2), m.Row(0))
	assert.Equal(t, m, Matrix2FromCols(Vec2(1, 3), Vec2(2, 4)))
	assert.Equal(t, m, Matrix2FromRows(Vec2(1, 2), Vec2(3, 4)))
	assert.Equal(t, m, Matrix2FromArray(m.ToArray()))

	m.SetAt(1, 1, 9)
	assert.Equal(t, float32(9), m[3])
	m.SetCol(0, Vec2(5, 6))
	assert.Equal(t, Matrix2{5, 6, 2, 9}, m)
	m.SetRow(1, Vec2(0, 0))
	assert.Equal(t, Matrix2{5, 0, 2, 0}, m)

	assert.True(t, Identity2().IsIdentity())
	m.SetIdentity()
	assert.Equal(t, Identity2(), m)
	m.SetZero()
	assert.Equal(t, Matrix2{}, m)
}

func TestMatrix2Arithmetic(t *testing.T) {
	a := NewMatrix2(1, 2, 3, 4)
	b := NewMatrix2(5, 6, 7, 8)

	assert.Equal(t, NewMatrix2(6, 8, 10, 12), a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, NewMatrix2(-4, -4, -4, -4), a.Sub(b))
	assert.Equal(t, NewMatrix2(-1, -2, -3, -4), a.Negate())
	assert.Equal(t, NewMatrix2(2, 4, 6, 8), a.MulScalar(2))
	assert.Equal(t, NewMatrix2(0.5, 1, 1.5, 2), a.DivScalar(2))
	assert.Equal(t, Matrix2{}, a.DivScalar(0))
	assert.Equal(t, NewMatrix2(19, 22, 43, 50), a.Mul(b))
	assert.NotEqual(t, a.Mul(b), b.Mul(a))
	assert.Equal(t, a, a.Mul(Identity2()))
	assert.Equal(t, a, Identity2().Mul(a))
	assert.Equal(t, Vec2(5, 11), a.MulVector2(Vec2(1, 2)))

	c := a
	c.SetMul(b)
	assert.Equal(t, a.Mul(b), c)
	c.SetMulMatrices(b, a)
	assert.Equal(t, b.Mul(a), c)
	c = a
	c.SetAdd(b)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetMulScalar(0)
	assert.Equal(t, Matrix2{}, c)
}

func TestMatrix2Reference(t *testing.T) {
	a := NewMatrix2(
		5.1, 8.9,
		-3.6, 7.5,
	)
	b := NewMatrix2(
		-1.2, -4.2,
		6.0, 0.0,
	)
	want := NewMatrix2(
		47.28, -21.42,
		49.32, 15.12,
	)
	tolAssertEqualMatrix(t, 1e-3, want, a.Mul(b))
}

func TestMatrix2Inverse(t *testing.T) {
	m := NewMatrix2(4, 7, 2, 6)
	assert.Equal(t, float32(10), m.Determinant())
	assert.Equal(t, float32(10), m.Trace())
	assert.Equal(t, NewMatrix2(4, 2, 7, 6), m.Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())

	inv, err := m.Inverse()
	assert.NoError(t, err)
	tolAssertEqualMatrix(t, standardTol, NewMatrix2(0.6, -0.7, -0.2, 0.4), inv)
	tolAssertEqualMatrix(t, 1e-5, Identity2(), m.Mul(inv))
	tolAssertEqualMatrix(t, 1e-5, Identity2(), inv.Mul(m))
	assert.Equal(t, inv, m.InverseUnchecked())

	singular := NewMatrix2(1, 2, 2, 4)
	inv, err = singular.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)
	assert.Equal(t, Identity2(), inv)

	var s Matrix2
	assert.ErrorIs(t, s.SetInverse(singular), ErrSingularMatrix)
	assert.Equal(t, Identity2(), s)
	assert.NoError(t, s.SetInverse(Identity2().MulScalar(2)))
	assert.Equal(t, Identity2().MulScalar(0.5), s)
}

func TestMatrix2Rotation(t *testing.T) {
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	tolAssertEqualVector(t, standardTol, vy, Rotation2(DegToRad(90)).MulVector2(vx))  // left
	tolAssertEqualVector(t, standardTol, vx, Rotation2(DegToRad(-90)).MulVector2(vy)) // right
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotation2(DegToRad(45)).MulVector2(vx))
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotation2(DegToRad(-45)).MulVector2(vy))

	tolAssertEqualVector(t, standardTol, vy, Rotation2(DegToRad(-90)).InverseOrIdentity().MulVector2(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotation2(DegToRad(90)).InverseOrIdentity().MulVector2(vy))

	tolAssertEqualVector(t, standardTol, vxy, Rotation2(DegToRad(-45)).Mul(Rotation2(DegToRad(45))).MulVector2(vxy))

	// the inverse of a rotation is its transpose
	r := Rotation2(0.7)
	tolAssertEqualMatrix(t, standardTol, r.Transpose(), r.InverseOrIdentity())
	assert.InDelta(t, 1, r.Determinant(), 1e-6)
}

func TestMatrix2Conversion(t *testing.T) {
	m := NewMatrix2(1, 2, 3, 4)
	m3 := m.Matrix3()
	assert.Equal(t, NewMatrix3(1, 2, 0, 3, 4, 0, 0, 0, 1), m3)
	assert.Equal(t, m, m3.Matrix2())
	assert.Equal(t, Matrix3FromMatrix2(m), m3)

	buf := make([]float32, 6)
	m.ToSlice(buf, 2)
	assert.Equal(t, []float32{0, 0, 1, 3, 2, 4}, buf)
	var n Matrix2
	n.FromSlice(buf, 2)
	assert.Equal(t, m, n)
	assert.Equal(t, []float32{1, 3, 2, 4}, m.AppendFloats(nil))
	assert.True(t, m.IsEqualTol(m.Add(Matrix2{1e-7}), standardTol))
	assert.False(t, m.IsEqualTol(m.Add(Matrix2{0.1}), standardTol))
}
