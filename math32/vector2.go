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

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

// Vector2FromArray returns a new [Vector2] from the given array of components.
func Vector2FromArray(a [2]float32) Vector2 {
	return Vector2{a[0], a[1]}
}

// Unit axis vectors.
var (
	Vector2X = Vec2(1, 0)
	Vector2Y = Vec2(0, 1)
)

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// SetFromVector3 sets this vector from the X and Y of the given [Vector3].
func (v *Vector2) SetFromVector3(other Vector3) {
	v.X = other.X
	v.Y = other.Y
}

// SetDim sets this vector component value by dimension index.
// It panics with an [*IndexError] if dim is not X or Y.
func (v *Vector2) SetDim(dim Dims, value float32) {
	checkDim(dim, 2)
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	}
}

// Dim returns this vector component by dimension index.
// It panics with an [*IndexError] if dim is not X or Y.
func (v Vector2) Dim(dim Dims) float32 {
	checkDim(dim, 2)
	if dim == X {
		return v.X
	}
	return v.Y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// SetZero sets all of the vector's components to zero.
func (v *Vector2) SetZero() {
	v.X = 0
	v.Y = 0
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// ToArray returns the components of this vector as an array.
func (v Vector2) ToArray() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// AppendFloats appends the components of this vector to dst.
func (v Vector2) AppendFloats(dst []float32) []float32 {
	return append(dst, v.X, v.Y)
}

// AppendBytes appends the little-endian IEEE 754 bytes of the
// components of this vector to dst.
func (v Vector2) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, v.X, v.Y)
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{v.X - s, v.Y - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector2) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2) SetMul(other Vector2) {
	v.X *= other.X
	v.Y *= other.Y
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector2) SetDiv(other Vector2) {
	v.X /= other.X
	v.Y /= other.Y
}

// SetDivScalar sets this to division by scalar.
// If scalar is zero, sets this to zero.
func (v *Vector2) SetDivScalar(s float32) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// SetNegate negates each of this vector's components.
func (v *Vector2) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vector2{Abs(v.X), Abs(v.Y)}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normal returns this vector divided by its length (its unit vector).
// A zero vector returns the zero vector.
func (v Vector2) Normal() Vector2 {
	n, _ := v.NormalTry()
	return n
}

// NormalTry is like [Vector2.Normal], but returns [ErrDegenerateVector]
// for a zero vector. The vector is first scaled by its largest absolute
// component, so that very large or very small vectors normalize without
// the squared length overflowing or underflowing.
func (v Vector2) NormalTry() (Vector2, error) {
	m := max(Abs(v.X), Abs(v.Y))
	if m == 0 {
		return Vector2{}, ErrDegenerateVector
	}
	s := Vector2{v.X / m, v.Y / m}
	return s.DivScalar(s.Length()), nil
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector is left as zero.
func (v *Vector2) SetNormal() {
	*v = v.Normal()
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance between these two vectors as points.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}

// Project returns the vector projection of this vector onto the other.
// Projecting onto a zero vector returns zero.
func (v Vector2) Project(onto Vector2) Vector2 {
	return onto.MulScalar(safeRatio(v.Dot(onto), onto.LengthSquared()))
}

// Reject returns the vector rejection of this vector from the other,
// which is perpendicular to from, in the direction of this vector.
func (v Vector2) Reject(from Vector2) Vector2 {
	return v.Sub(v.Project(from))
}

// IsEqualTol returns whether each component of this vector is
// within tol of the corresponding other component.
func (v Vector2) IsEqualTol(other Vector2, tol float32) bool {
	return IsEqualTol(v.X, other.X, tol) && IsEqualTol(v.Y, other.Y, tol)
}

// Conversions:

// Vector3 returns a [Vector3] with this vector's X and Y and the given z.
func (v Vector2) Vector3(z float32) Vector3 {
	return Vector3{v.X, v.Y, z}
}

// MulMatrix2 returns this vector transformed by the given matrix (m * v).
func (v Vector2) MulMatrix2(m Matrix2) Vector2 {
	return m.MulVector2(v)
}
