// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
// Use w = 1 for a position and w = 0 for a direction.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	nv := Vector4{}
	nv.SetFromVector3(v, w)
	return nv
}

// Vector4FromVector2 returns a new [Vector4] from the given [Vector2]
// and z and w components.
func Vector4FromVector2(v Vector2, z, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: z, W: w}
}

// Vector4FromArray returns a new [Vector4] from the given array of components.
func Vector4FromArray(a [4]float32) Vector4 {
	return Vector4{a[0], a[1], a[2], a[3]}
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
	v.W = scalar
}

// SetFromVector3 sets this vector from a Vector3 and W
func (v *Vector4) SetFromVector3(other Vector3, w float32) {
	v.X = other.X
	v.Y = other.Y
	v.Z = other.Z
	v.W = w
}

// SetDim sets this vector component value by dimension index.
// It panics with an [*IndexError] if dim is out of range.
func (v *Vector4) SetDim(dim Dims, value float32) {
	checkDim(dim, 4)
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	case W:
		v.W = value
	}
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is out of range.
func (v Vector4) Dim(dim Dims) float32 {
	checkDim(dim, 4)
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		return v.W
	}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// SetZero sets all of the vector's components to zero, including W.
func (v *Vector4) SetZero() {
	v.SetScalar(0)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// ToArray returns the components of this vector as an array.
func (v Vector4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// AppendFloats appends the components of this vector to dst.
func (v Vector4) AppendFloats(dst []float32) []float32 {
	return append(dst, v.X, v.Y, v.Z, v.W)
}

// AppendBytes appends the little-endian IEEE 754 bytes of the
// components of this vector to dst.
func (v Vector4) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, v.X, v.Y, v.Z, v.W)
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4) SetAdd(other Vector4) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4) SetSub(other Vector4) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector4) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
	v.W -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4) SetMul(other Vector4) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector4) DivScalar(scalar float32) Vector4 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector4{}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector4) SetDiv(other Vector4) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
}

// SetDivScalar sets this to division by scalar.
// If scalar is zero, sets this to zero.
func (v *Vector4) SetDivScalar(s float32) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// SetNegate negates each of this vector's components.
func (v *Vector4) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
}

// Min returns min of this vector components vs. other vector.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z), Min(v.W, other.W)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z), Max(v.W, other.W)}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector4) Abs() Vector4 {
	return Vector4{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normal returns this vector divided by its length (its unit vector).
// A zero vector returns the zero vector.
func (v Vector4) Normal() Vector4 {
	n, _ := v.NormalTry()
	return n
}

// NormalTry is like [Vector4.Normal], but returns [ErrDegenerateVector]
// for a zero vector. The vector is first scaled by its largest absolute
// component, so that very large or very small vectors normalize without
// the squared length overflowing or underflowing.
func (v Vector4) NormalTry() (Vector4, error) {
	m := max(Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W))
	if m == 0 {
		return Vector4{}, ErrDegenerateVector
	}
	s := Vector4{v.X / m, v.Y / m, v.Z / m, v.W / m}
	return s.DivScalar(s.Length()), nil
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector is left as zero.
func (v *Vector4) SetNormal() {
	*v = v.Normal()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha,
		v.W + (other.W-v.W)*alpha}
}

// Project returns the vector projection of this vector onto the other.
// Projecting onto a zero vector returns zero.
func (v Vector4) Project(onto Vector4) Vector4 {
	return onto.MulScalar(safeRatio(v.Dot(onto), onto.LengthSquared()))
}

// Reject returns the vector rejection of this vector from the other.
func (v Vector4) Reject(from Vector4) Vector4 {
	return v.Sub(v.Project(from))
}

// IsEqualTol returns whether each component of this vector is
// within tol of the corresponding other component.
func (v Vector4) IsEqualTol(other Vector4, tol float32) bool {
	return IsEqualTol(v.X, other.X, tol) && IsEqualTol(v.Y, other.Y, tol) &&
		IsEqualTol(v.Z, other.Z, tol) && IsEqualTol(v.W, other.W, tol)
}

// Conversions and matrix operations:

// Vector3 returns the X, Y and Z of this vector, dropping W.
func (v Vector4) Vector3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// MulMatrix4 returns vector multiplied by specified 4x4 matrix (m * v).
func (v Vector4) MulMatrix4(m Matrix4) Vector4 {
	return m.MulVector4(v)
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC) from given 4-vector
// By dividing by the 4th W component
func (v Vector4) PerspDiv() Vector3 {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}
