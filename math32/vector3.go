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

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2(v Vector2, z float32) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

// Vector3FromArray returns a new [Vector3] from the given array of components.
func Vector3FromArray(a [3]float32) Vector3 {
	return Vector3{a[0], a[1], a[2]}
}

// Unit axis vectors.
var (
	Vector3X = Vec3(1, 0, 0)
	Vector3Y = Vec3(0, 1, 0)
	Vector3Z = Vec3(0, 0, 1)
)

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector X, Y and Z components to same scalar value.
func (v *Vector3) SetScalar(s float32) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetFromVector2 sets this vector from a Vector2 and the given z.
func (v *Vector3) SetFromVector2(other Vector2, z float32) {
	v.X = other.X
	v.Y = other.Y
	v.Z = z
}

// SetFromVector4 sets this vector from the X, Y and Z of a Vector4,
// dropping W.
func (v *Vector3) SetFromVector4(other Vector4) {
	v.X = other.X
	v.Y = other.Y
	v.Z = other.Z
}

// SetDim sets this vector component value by dimension index.
// It panics with an [*IndexError] if dim is not X, Y or Z.
func (v *Vector3) SetDim(dim Dims, value float32) {
	checkDim(dim, 3)
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	}
}

// Dim returns this vector component by dimension index.
// It panics with an [*IndexError] if dim is not X, Y or Z.
func (v Vector3) Dim(dim Dims) float32 {
	checkDim(dim, 3)
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// SetZero sets this vector X, Y and Z components to be zero.
func (v *Vector3) SetZero() {
	v.SetScalar(0)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// ToArray returns the components of this vector as an array.
func (v Vector3) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// AppendFloats appends the components of this vector to dst.
func (v Vector3) AppendFloats(dst []float32) []float32 {
	return append(dst, v.X, v.Y, v.Z)
}

// AppendBytes appends the little-endian IEEE 754 bytes of the
// components of this vector to dst.
func (v Vector3) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, v.X, v.Y, v.Z)
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3) SetSub(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3) SetMul(other Vector3) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3) DivScalar(scalar float32) Vector3 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3{}
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector3) SetDiv(other Vector3) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
}

// SetDivScalar sets this to division by scalar.
// If scalar is zero, sets this to zero.
func (v *Vector3) SetDivScalar(s float32) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// Negate returns vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// SetNegate negates each of this vector's components.
func (v *Vector3) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// Min returns min of this vector components vs. other vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector3) Abs() Vector3 {
	return Vector3{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

///////////////////////////////////////////////////////////////////////
//  Distance, Norm

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns this vector divided by its length (its unit vector).
// A zero vector returns the zero vector.
func (v Vector3) Normal() Vector3 {
	n, _ := v.NormalTry()
	return n
}

// NormalTry is like [Vector3.Normal], but returns [ErrDegenerateVector]
// for a zero vector. The vector is first scaled by its largest absolute
// component, so that very large or very small vectors normalize without
// the squared length overflowing or underflowing.
func (v Vector3) NormalTry() (Vector3, error) {
	m := max(Abs(v.X), Abs(v.Y), Abs(v.Z))
	if m == 0 {
		return Vector3{}, ErrDegenerateVector
	}
	s := Vector3{v.X / m, v.Y / m, v.Z / m}
	return s.DivScalar(s.Length()), nil
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector is left as zero.
func (v *Vector3) SetNormal() {
	*v = v.Normal()
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vector3{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha}
}

// Cross returns the right-handed cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// SetCross sets this vector to the cross product of itself with other.
func (v *Vector3) SetCross(other Vector3) {
	*v = v.Cross(other)
}

// ScalarTriple returns the scalar triple product a × b ⋅ c,
// which is the signed volume of the parallelepiped spanned by
// the three vectors.
func ScalarTriple(a, b, c Vector3) float32 {
	return a.Cross(b).Dot(c)
}

// Project returns the vector projection of this vector onto the other.
// Projecting onto a zero vector returns zero.
func (v Vector3) Project(onto Vector3) Vector3 {
	return onto.MulScalar(safeRatio(v.Dot(onto), onto.LengthSquared()))
}

// Reject returns the vector rejection of this vector from the other,
// which is perpendicular to from, in the direction of this vector.
func (v Vector3) Reject(from Vector3) Vector3 {
	return v.Sub(v.Project(from))
}

// IsEqualTol returns whether each component of this vector is
// within tol of the corresponding other component.
func (v Vector3) IsEqualTol(other Vector3, tol float32) bool {
	return IsEqualTol(v.X, other.X, tol) && IsEqualTol(v.Y, other.Y, tol) &&
		IsEqualTol(v.Z, other.Z, tol)
}

///////////////////////////////////////////////////////////////////////
//  Conversions and matrix operations

// Vector2 returns the X and Y of this vector, dropping Z.
func (v Vector3) Vector2() Vector2 {
	return Vector2{v.X, v.Y}
}

// Vector4 returns a [Vector4] with this vector's X, Y and Z and the given w,
// which is typically 1 for a position and 0 for a direction.
func (v Vector3) Vector4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// MulMatrix3 returns this vector transformed by the given matrix (m * v).
func (v Vector3) MulMatrix3(m Matrix3) Vector3 {
	return m.MulVector3(v)
}

// MulMatrix4AsPoint returns this vector transformed by the given matrix
// as a point (w = 1), dropping the resulting w.
func (v Vector3) MulMatrix4AsPoint(m Matrix4) Vector3 {
	return m.MulVector3AsPoint(v)
}

// MulMatrix4AsVector returns this vector transformed by the given matrix
// as a direction (w = 0), so translation is ignored.
func (v Vector3) MulMatrix4AsVector(m Matrix4) Vector3 {
	return m.MulVector3AsVector(v)
}
