// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Transform matrices follow the GL conventions: right-handed world
// coordinates, column vectors multiplied on the right, and clip space
// z in [-1, 1]. All angles are in radians except the vertical field
// of view passed to [Perspective], which is in degrees.

// Translation4 returns a [Matrix4] that translates points by v.
func Translation4(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scale4 returns a [Matrix4] that scales each axis by the
// corresponding component of v.
func Scale4(v Vector3) Matrix4 {
	m := Identity4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// RotationX4 returns a [Matrix4] that rotates by the given angle
// in radians around the X axis.
func RotationX4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return NewMatrix4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY4 returns a [Matrix4] that rotates by the given angle
// in radians around the Y axis.
func RotationY4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return NewMatrix4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ4 returns a [Matrix4] that rotates by the given angle
// in radians around the Z axis.
func RotationZ4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return NewMatrix4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotationEuler4 returns a [Matrix4] that rotates by the X, Y and Z
// angles of rot (in radians), composed as X * Y * Z, so that the
// Z rotation is applied first.
func RotationEuler4(rot Vector3) Matrix4 {
	return RotationX4(rot.X).Mul(RotationY4(rot.Y)).Mul(RotationZ4(rot.Z))
}

// RotationAxis4 returns a [Matrix4] that rotates by the given angle
// in radians around the given axis, which need not be normalized.
// A zero axis yields the identity.
func RotationAxis4(axis Vector3, angle float32) Matrix4 {
	a := axis.Normal()
	if a == (Vector3{}) {
		return Identity4()
	}
	s, c := Sincos(angle)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return NewMatrix4(
		c+x*x*t, x*y*t-z*s, x*z*t+y*s, 0,
		y*x*t+z*s, c+y*y*t, y*z*t-x*s, 0,
		z*x*t-y*s, z*y*t+x*s, c+z*z*t, 0,
		0, 0, 0, 1,
	)
}

// LookAt returns a view [Matrix4] for a camera at eye looking toward
// target, with the given up direction. The camera looks down its
// local -Z axis. If eye equals target, or up is parallel to the
// view direction, the rotation part degenerates to zero rows.
func LookAt(eye, target, up Vector3) Matrix4 {
	d := eye.Sub(target).Normal()
	r := up.Cross(d).Normal()
	u := d.Cross(r)
	rot := Matrix4FromRows(r.Vector4(0), u.Vector4(0), d.Vector4(0), Vec4(0, 0, 0, 1))
	return rot.Mul(Translation4(eye.Negate()))
}

// Perspective returns a GL perspective projection [Matrix4] with the
// given vertical field of view in degrees, viewport aspect ratio
// (width / height), and near and far clip distances, which must be positive.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(DegToRad(fovy)/2)
	nf := 1 / (near - far)
	var m Matrix4
	m[0] = safeRatio(f, aspect)
	m[5] = f
	m[10] = (far + near) * nf
	m[11] = -1
	m[14] = 2 * far * near * nf
	return m
}

// Orthographic returns a GL orthographic projection [Matrix4] for the
// given left, right, bottom, top, near and far clip planes.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	rl := safeRatio(1, right-left)
	tb := safeRatio(1, top-bottom)
	fn := safeRatio(1, far-near)
	return NewMatrix4(
		2*rl, 0, 0, -(right+left)*rl,
		0, 2*tb, 0, -(top+bottom)*tb,
		0, 0, -2*fn, -(far+near)*fn,
		0, 0, 0, 1,
	)
}

// Rotation2 returns a [Matrix2] that rotates 2D vectors
// counterclockwise by the given angle in radians.
func Rotation2(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return NewMatrix2(
		c, -s,
		s, c,
	)
}

// Rotation3 returns a 2D homogeneous [Matrix3] that rotates
// counterclockwise by the given angle in radians.
func Rotation3(angle float32) Matrix3 {
	return Rotation2(angle).Matrix3()
}

// Scale3 returns a 2D homogeneous [Matrix3] that scales by x and y.
func Scale3(x, y float32) Matrix3 {
	return NewMatrix3(
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	)
}

// Translation3 returns a 2D homogeneous [Matrix3] that translates by x and y.
func Translation3(x, y float32) Matrix3 {
	return NewMatrix3(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	)
}
