// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glinterop converts [math32] vectors and matrices to and from
// the types of other Go graphics math packages, so that values can
// cross API boundaries without hand-written element shuffling.
//
// The go-gl mgl32 types are column-major like math32, so matrices are
// copied element for element. The golang.org/x/image/math/f32 matrices
// are row-major, so matrix conversions to and from them transpose.
package glinterop

import (
	"cogentcore.org/glmath/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// ToMglVec2 returns v as an [mgl32.Vec2].
func ToMglVec2(v math32.Vector2) mgl32.Vec2 {
	return mgl32.Vec2(v.ToArray())
}

// FromMglVec2 returns v as a [math32.Vector2].
func FromMglVec2(v mgl32.Vec2) math32.Vector2 {
	return math32.Vector2FromArray(v)
}

// ToMglVec3 returns v as an [mgl32.Vec3].
func ToMglVec3(v math32.Vector3) mgl32.Vec3 {
	return mgl32.Vec3(v.ToArray())
}

// FromMglVec3 returns v as a [math32.Vector3].
func FromMglVec3(v mgl32.Vec3) math32.Vector3 {
	return math32.Vector3FromArray(v)
}

// ToMglVec4 returns v as an [mgl32.Vec4].
func ToMglVec4(v math32.Vector4) mgl32.Vec4 {
	return mgl32.Vec4(v.ToArray())
}

// FromMglVec4 returns v as a [math32.Vector4].
func FromMglVec4(v mgl32.Vec4) math32.Vector4 {
	return math32.Vector4FromArray(v)
}

// ToMglMat2 returns m as an [mgl32.Mat2].
func ToMglMat2(m math32.Matrix2) mgl32.Mat2 {
	return mgl32.Mat2(m)
}

// FromMglMat2 returns m as a [math32.Matrix2].
func FromMglMat2(m mgl32.Mat2) math32.Matrix2 {
	return math32.Matrix2(m)
}

// ToMglMat3 returns m as an [mgl32.Mat3].
func ToMglMat3(m math32.Matrix3) mgl32.Mat3 {
	return mgl32.Mat3(m)
}

// FromMglMat3 returns m as a [math32.Matrix3].
func FromMglMat3(m mgl32.Mat3) math32.Matrix3 {
	return math32.Matrix3(m)
}

// ToMglMat4 returns m as an [mgl32.Mat4].
func ToMglMat4(m math32.Matrix4) mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// FromMglMat4 returns m as a [math32.Matrix4].
func FromMglMat4(m mgl32.Mat4) math32.Matrix4 {
	return math32.Matrix4(m)
}

// ToF32Vec2 returns v as an [f32.Vec2].
func ToF32Vec2(v math32.Vector2) f32.Vec2 {
	return f32.Vec2(v.ToArray())
}

// FromF32Vec2 returns v as a [math32.Vector2].
func FromF32Vec2(v f32.Vec2) math32.Vector2 {
	return math32.Vector2FromArray(v)
}

// ToF32Vec3 returns v as an [f32.Vec3].
func ToF32Vec3(v math32.Vector3) f32.Vec3 {
	return f32.Vec3(v.ToArray())
}

// FromF32Vec3 returns v as a [math32.Vector3].
func FromF32Vec3(v f32.Vec3) math32.Vector3 {
	return math32.Vector3FromArray(v)
}

// ToF32Vec4 returns v as an [f32.Vec4].
func ToF32Vec4(v math32.Vector4) f32.Vec4 {
	return f32.Vec4(v.ToArray())
}

// FromF32Vec4 returns v as a [math32.Vector4].
func FromF32Vec4(v f32.Vec4) math32.Vector4 {
	return math32.Vector4FromArray(v)
}

// ToF32Mat3 returns m as a row-major [f32.Mat3].
func ToF32Mat3(m math32.Matrix3) f32.Mat3 {
	return f32.Mat3(m.Transpose())
}

// FromF32Mat3 returns the row-major m as a [math32.Matrix3].
func FromF32Mat3(m f32.Mat3) math32.Matrix3 {
	return math32.Matrix3(m).Transpose()
}

// ToF32Mat4 returns m as a row-major [f32.Mat4].
func ToF32Mat4(m math32.Matrix4) f32.Mat4 {
	return f32.Mat4(m.Transpose())
}

// FromF32Mat4 returns the row-major m as a [math32.Matrix4].
func FromF32Mat4(m f32.Mat4) math32.Matrix4 {
	return math32.Matrix4(m).Transpose()
}
