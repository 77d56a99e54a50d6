// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "cogentcore.org/glmath/base/errors"

// Matrix4 is a 4x4 matrix of float32 values, organized in
// column-major order: element (row r, column c) is at index c*4 + r.
// This is the layout expected for model, view and projection
// uniforms, so the array can be uploaded directly.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 returns a new [Matrix4] from elements given in row-major
// order, so that a matrix literal reads the way it is written on paper.
func NewMatrix4(n00, n01, n02, n03, n10, n11, n12, n13, n20, n21, n22, n23, n30, n31, n32, n33 float32) Matrix4 {
	return Matrix4{
		n00, n10, n20, n30,
		n01, n11, n21, n31,
		n02, n12, n22, n32,
		n03, n13, n23, n33,
	}
}

// Matrix4FromCols returns a new [Matrix4] with the given column vectors.
func Matrix4FromCols(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Matrix4FromRows returns a new [Matrix4] with the given row vectors.
func Matrix4FromRows(r0, r1, r2, r3 Vector4) Matrix4 {
	return Matrix4{
		r0.X, r1.X, r2.X, r3.X,
		r0.Y, r1.Y, r2.Y, r3.Y,
		r0.Z, r1.Z, r2.Z, r3.Z,
		r0.W, r1.W, r2.W, r3.W,
	}
}

// Matrix4FromArray returns a new [Matrix4] from the given column-major array.
func Matrix4FromArray(a [16]float32) Matrix4 {
	return Matrix4(a)
}

// Matrix4FromMatrix3 returns a new [Matrix4] with the given [Matrix3]
// in its upper-left 3x3 block, and identity values elsewhere.
// This promotes a 3x3 rotation into a 4x4 transform.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// SetZero sets this matrix to the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// IsIdentity returns whether this matrix is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// At returns the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m Matrix4) At(row, col int) float32 {
	checkIndex(row, 4)
	checkIndex(col, 4)
	return m[col*4+row]
}

// SetAt sets the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m *Matrix4) SetAt(row, col int, value float32) {
	checkIndex(row, 4)
	checkIndex(col, 4)
	m[col*4+row] = value
}

// Col returns the given column of this matrix.
func (m Matrix4) Col(col int) Vector4 {
	checkIndex(col, 4)
	i := col * 4
	return Vector4{m[i], m[i+1], m[i+2], m[i+3]}
}

// SetCol sets the given column of this matrix.
func (m *Matrix4) SetCol(col int, v Vector4) {
	checkIndex(col, 4)
	i := col * 4
	m[i] = v.X
	m[i+1] = v.Y
	m[i+2] = v.Z
	m[i+3] = v.W
}

// Row returns the given row of this matrix, gathered from its columns.
func (m Matrix4) Row(row int) Vector4 {
	checkIndex(row, 4)
	return Vector4{m[row], m[4+row], m[8+row], m[12+row]}
}

// SetRow sets the given row of this matrix.
func (m *Matrix4) SetRow(row int, v Vector4) {
	checkIndex(row, 4)
	m[row] = v.X
	m[4+row] = v.Y
	m[8+row] = v.Z
	m[12+row] = v.W
}

// FromSlice sets this matrix from the given column-major slice, starting at offset.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToSlice copies this matrix to the given slice in column-major order, starting at offset.
func (m Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:offset+16], m[:])
}

// ToArray returns this matrix as a column-major array.
func (m Matrix4) ToArray() [16]float32 {
	return [16]float32(m)
}

// AppendFloats appends the column-major elements of this matrix to dst.
func (m Matrix4) AppendFloats(dst []float32) []float32 {
	return append(dst, m[:]...)
}

// AppendBytes appends the little-endian column-major bytes of this matrix to dst.
func (m Matrix4) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, m[:]...)
}

// Bytes returns the little-endian column-major bytes of this matrix,
// ready for upload with glUniformMatrix4fv.
func (m Matrix4) Bytes() []byte {
	return m.AppendBytes(make([]byte, 0, 16*FloatBytes))
}

// Add returns the componentwise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// SetAdd sets this to addition with other matrix (i.e., += or plus-equals).
func (m *Matrix4) SetAdd(other Matrix4) {
	*m = m.Add(other)
}

// Sub returns the componentwise difference of this matrix and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SetSub sets this to subtraction with other matrix (i.e., -= or minus-equals).
func (m *Matrix4) SetSub(other Matrix4) {
	*m = m.Sub(other)
}

// Negate returns this matrix with each element negated.
func (m Matrix4) Negate() Matrix4 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// MulScalar returns this matrix with each element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// SetMulScalar multiplies each element of this matrix by s.
func (m *Matrix4) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix with each element divided by s.
// If s is zero, returns the zero matrix.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	if s == 0 {
		return Matrix4{}
	}
	return m.MulScalar(1 / s)
}

// Mul returns this matrix times other (m * other).
// Applied to a vector, other acts first, so a model matrix is
// built as translation.Mul(rotation).Mul(scale).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		oc := c * 4
		for row := 0; row < 4; row++ {
			r[oc+row] = m[row]*other[oc] + m[4+row]*other[oc+1] + m[8+row]*other[oc+2] + m[12+row]*other[oc+3]
		}
	}
	return r
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// SetMulMatrices sets this matrix to a * b.
func (m *Matrix4) SetMulMatrices(a, b Matrix4) {
	*m = a.Mul(b)
}

// MulVector4 returns the column vector v transformed by this matrix (m * v).
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVector3AsPoint returns the point v transformed by this matrix
// with w = 1, so translation applies. The resulting w is dropped
// without a perspective divide; use [Vector4.PerspDiv] on the
// result of [Matrix4.MulVector4] for projections.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).Vector3()
}

// MulVector3AsVector returns the direction v transformed by this matrix
// with w = 0, so translation is ignored.
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 0)).Vector3()
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Matrix4) Trace() float32 {
	return m[0] + m[5] + m[10] + m[15]
}

// Minor returns the 3x3 matrix left after removing the given row and column.
func (m Matrix4) Minor(row, col int) Matrix3 {
	checkIndex(row, 4)
	checkIndex(col, 4)
	var mn Matrix3
	i := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			mn[i] = m[c*4+r]
			i++
		}
	}
	return mn
}

// Cofactor returns the signed determinant of the given [Matrix4.Minor].
func (m Matrix4) Cofactor(row, col int) float32 {
	d := m.Minor(row, col).Determinant()
	if (row+col)%2 == 1 {
		return -d
	}
	return d
}

// Determinant returns the determinant of this matrix, computed by
// cofactor expansion along the first column.
func (m Matrix4) Determinant() float32 {
	var det float32
	for r := 0; r < 4; r++ {
		if m[r] == 0 {
			continue
		}
		det += m[r] * m.Cofactor(r, 0)
	}
	return det
}

// adjugate returns the transpose of the cofactor matrix.
func (m Matrix4) adjugate() Matrix4 {
	var adj Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// element (c, r) of the adjugate, stored column-major at r*4 + c
			adj[r*4+c] = m.Cofactor(r, c)
		}
	}
	return adj
}

// Inverse returns the inverse of this matrix, or [ErrSingularMatrix]
// and the identity matrix if the determinant is within [SingularTolerance] of zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if Abs(det) <= SingularTolerance {
		return Identity4(), ErrSingularMatrix
	}
	return m.adjugate().MulScalar(1 / det), nil
}

// InverseUnchecked returns the inverse of this matrix without checking
// whether it is invertible. It is only for callers that already know the
// matrix is non-singular; a singular matrix yields Inf and NaN elements.
func (m Matrix4) InverseUnchecked() Matrix4 {
	return m.adjugate().MulScalar(1 / m.Determinant())
}

// SetInverse sets this matrix to the inverse of src.
// If src is singular, this is set to the identity and an error is returned.
func (m *Matrix4) SetInverse(src Matrix4) error {
	var err error
	*m, err = src.Inverse()
	return err
}

// InverseOrIdentity returns the inverse of this matrix, or logs
// the error and returns the identity matrix if it is singular.
func (m Matrix4) InverseOrIdentity() Matrix4 {
	return errors.Log1(m.Inverse())
}

// NormalMatrix returns the matrix for transforming surface normals
// under this model (or model-view) matrix: the inverse transpose
// of its upper-left 3x3 block.
func (m Matrix4) NormalMatrix() (Matrix3, error) {
	inv, err := m.Matrix3().Inverse()
	if err != nil {
		return inv, err
	}
	return inv.Transpose(), nil
}

// IsEqualTol returns whether each element of this matrix is
// within tol of the corresponding element of other.
func (m Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if !IsEqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// Matrix3 returns the upper-left 3x3 block of this matrix,
// dropping the last row and column.
func (m Matrix4) Matrix3() Matrix3 {
	return Matrix3FromMatrix4(m)
}

func (m Matrix4) String() string {
	return formatFloats(m[:])
}
