// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/glmath/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector4(t *testing.T) {
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vec4(1, 2, 3, 4))
	assert.Equal(t, Vector4{2, 2, 2, 2}, Vector4Scalar(2))
	assert.Equal(t, Vector4{1, 2, 3, 1}, Vector4FromVector3(Vec3(1, 2, 3), 1))
	assert.Equal(t, Vector4{1, 2, 0, 1}, Vector4FromVector2(Vec2(1, 2), 0, 1))
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vector4FromArray([4]float32{1, 2, 3, 4}))

	v := Vec4(1, 2, 3, 4)
	for d := X; d < DimsN; d++ {
		assert.Equal(t, float32(d+1), v.Dim(d), d.String())
	}
	v.SetDim(W, 0)
	assert.Equal(t, Vec4(1, 2, 3, 0), v)

	// the zero vector has a zero W, unlike a point
	v.SetZero()
	assert.Equal(t, Vector4{}, v)
	assert.Equal(t, float32(0), v.W)

	v.SetFromVector3(Vec3(4, 5, 6), 1)
	assert.Equal(t, Vec4(4, 5, 6, 1), v)
	v.Set(1, 1, 1, 1)
	assert.Equal(t, Vector4Scalar(1), v)
}

func TestVector4Arithmetic(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(-1, 0, 2, 8)

	assert.Equal(t, Vec4(0, 2, 5, 12), a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(Vector4Scalar(1)), a.Add(b.Add(Vector4Scalar(1))))
	assert.Equal(t, Vec4(2, 2, 1, -4), a.Sub(b))
	assert.Equal(t, Vec4(-1, -2, -3, -4), a.Negate())
	assert.Equal(t, Vec4(3, 6, 9, 12), a.MulScalar(3))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector4{}, a.DivScalar(0))
	assert.Equal(t, Vec4(-1, 0, 6, 32), a.Mul(b))
	assert.Equal(t, float32(37), a.Dot(b))
	assert.Equal(t, float32(30), a.LengthSquared())

	c := a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetAddScalar(1)
	assert.Equal(t, Vec4(2, 3, 4, 5), c)
	c.SetSubScalar(1)
	assert.Equal(t, a, c)
	c.SetNegate()
	assert.Equal(t, a.Negate(), c)
}

func TestVector4Normal(t *testing.T) {
	v := Vec4(1, 1, 1, 1)
	tolAssertEqualVector4(t, standardTol, Vector4Scalar(0.5), v.Normal())
	tolassert.EqualTol(t, 1, v.Normal().Length(), standardTol)

	assert.Equal(t, Vector4{}, Vector4{}.Normal())
	_, err := Vector4{}.NormalTry()
	assert.ErrorIs(t, err, ErrDegenerateVector)

	for _, v := range []Vector4{Vec4(1e20, 0, 0, 0), Vec4(2e19, 2e19, 2e19, 2e19), Vec4(0, 0, 0, 1e-23)} {
		n, err := v.NormalTry()
		assert.NoError(t, err, "%v", v)
		tolassert.EqualTol(t, 1, n.Length(), 1e-6)
		assert.Equal(t, n, v.Normal())
	}
	tolAssertEqualVector4(t, standardTol, Vector4Scalar(0.5), Vec4(2e19, 2e19, 2e19, 2e19).Normal())
	tolAssertEqualVector4(t, standardTol, Vec4(0, 0, 0, 1), Vec4(0, 0, 0, 1e-23).Normal())

	assert.Equal(t, Vec4(0, 2, 0, 0), Vec4(1, 2, 3, 4).Project(Vec4(0, 1, 0, 0)))
	assert.Equal(t, Vec4(1, 0, 3, 4), Vec4(1, 2, 3, 4).Reject(Vec4(0, 1, 0, 0)))
}

func TestVector4Homogeneous(t *testing.T) {
	assert.Equal(t, Vec3(1, 2, 3), Vec4(2, 4, 6, 2).PerspDiv())
	assert.Equal(t, Vec3(1, 2, 3), Vec4(1, 2, 3, 9).Vector3())

	p := Vec4(1, 2, 3, 1)
	assert.Equal(t, p, Identity4().MulVector4(p))
	assert.Equal(t, p, p.MulMatrix4(Identity4()))
	assert.Equal(t, Vec4(2, 3, 4, 1), p.MulMatrix4(Translation4(Vec3(1, 1, 1))))
	// directions ignore translation
	assert.Equal(t, Vec4(1, 2, 3, 0), Vec4(1, 2, 3, 0).MulMatrix4(Translation4(Vec3(1, 1, 1))))
}
