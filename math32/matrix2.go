// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/glmath/base/errors"

// Matrix2 is a 2x2 matrix of float32 values, organized in
// column-major order: element (row r, column c) is at index c*2 + r.
// This is the layout expected by glUniformMatrix2fv with transpose false.
type Matrix2 [4]float32

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
	}
}

// NewMatrix2 returns a new [Matrix2] from elements given in row-major
// order, so that a matrix literal reads the way it is written on paper.
func NewMatrix2(n00, n01, n10, n11 float32) Matrix2 {
	return Matrix2{n00, n10, n01, n11}
}

// Matrix2FromCols returns a new [Matrix2] with the given column vectors.
func Matrix2FromCols(c0, c1 Vector2) Matrix2 {
	return Matrix2{c0.X, c0.Y, c1.X, c1.Y}
}

// Matrix2FromRows returns a new [Matrix2] with the given row vectors.
func Matrix2FromRows(r0, r1 Vector2) Matrix2 {
	return Matrix2{r0.X, r1.X, r0.Y, r1.Y}
}

// Matrix2FromArray returns a new [Matrix2] from the given column-major array.
func Matrix2FromArray(a [4]float32) Matrix2 {
	return Matrix2(a)
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix2) SetIdentity() {
	*m = Identity2()
}

// SetZero sets this matrix to the zero matrix.
func (m *Matrix2) SetZero() {
	*m = Matrix2{}
}

// IsIdentity returns whether this matrix is exactly the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// At returns the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m Matrix2) At(row, col int) float32 {
	checkIndex(row, 2)
	checkIndex(col, 2)
	return m[col*2+row]
}

// SetAt sets the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m *Matrix2) SetAt(row, col int, value float32) {
	checkIndex(row, 2)
	checkIndex(col, 2)
	m[col*2+row] = value
}

// Col returns the given column of this matrix.
func (m Matrix2) Col(col int) Vector2 {
	checkIndex(col, 2)
	return Vector2{m[col*2], m[col*2+1]}
}

// SetCol sets the given column of this matrix.
func (m *Matrix2) SetCol(col int, v Vector2) {
	checkIndex(col, 2)
	m[col*2] = v.X
	m[col*2+1] = v.Y
}

// Row returns the given row of this matrix, gathered from its columns.
func (m Matrix2) Row(row int) Vector2 {
	checkIndex(row, 2)
	return Vector2{m[row], m[2+row]}
}

// SetRow sets the given row of this matrix.
func (m *Matrix2) SetRow(row int, v Vector2) {
	checkIndex(row, 2)
	m[row] = v.X
	m[2+row] = v.Y
}

// FromSlice sets this matrix from the given column-major slice, starting at offset.
func (m *Matrix2) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+4])
}

// ToSlice copies this matrix to the given slice in column-major order, starting at offset.
func (m Matrix2) ToSlice(array []float32, offset int) {
	copy(array[offset:offset+4], m[:])
}

// ToArray returns this matrix as a column-major array.
func (m Matrix2) ToArray() [4]float32 {
	return [4]float32(m)
}

// AppendFloats appends the column-major elements of this matrix to dst.
func (m Matrix2) AppendFloats(dst []float32) []float32 {
	return append(dst, m[:]...)
}

// AppendBytes appends the little-endian column-major bytes of this matrix to dst.
func (m Matrix2) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, m[:]...)
}

// Bytes returns the little-endian column-major bytes of this matrix,
// ready for uniform upload.
func (m Matrix2) Bytes() []byte {
	return m.AppendBytes(make([]byte, 0, 4*FloatBytes))
}

// Add returns the componentwise sum of this matrix and other.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// SetAdd sets this to addition with other matrix (i.e., += or plus-equals).
func (m *Matrix2) SetAdd(other Matrix2) {
	*m = m.Add(other)
}

// Sub returns the componentwise difference of this matrix and other.
func (m Matrix2) Sub(other Matrix2) Matrix2 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SetSub sets this to subtraction with other matrix (i.e., -= or minus-equals).
func (m *Matrix2) SetSub(other Matrix2) {
	*m = m.Sub(other)
}

// Negate returns this matrix with each element negated.
func (m Matrix2) Negate() Matrix2 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// MulScalar returns this matrix with each element multiplied by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// SetMulScalar multiplies each element of this matrix by s.
func (m *Matrix2) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix with each element divided by s.
// If s is zero, returns the zero matrix.
func (m Matrix2) DivScalar(s float32) Matrix2 {
	if s == 0 {
		return Matrix2{}
	}
	return m.MulScalar(1 / s)
}

// Mul returns this matrix times other (m * other).
// Applied to a vector, other acts first.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
	}
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix2) SetMul(other Matrix2) {
	*m = m.Mul(other)
}

// SetMulMatrices sets this matrix to a * b.
func (m *Matrix2) SetMulMatrices(a, b Matrix2) {
	*m = a.Mul(b)
}

// MulVector2 returns the column vector v transformed by this matrix (m * v).
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return Vector2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transpose of this matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// Trace returns the sum of the diagonal elements.
func (m Matrix2) Trace() float32 {
	return m[0] + m[3]
}

// Determinant returns the determinant of this matrix.
func (m Matrix2) Determinant() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// adjugate returns the transpose of the cofactor matrix.
func (m Matrix2) adjugate() Matrix2 {
	return Matrix2{m[3], -m[1], -m[2], m[0]}
}

// Inverse returns the inverse of this matrix, or [ErrSingularMatrix]
// and the identity matrix if the determinant is within [SingularTolerance] of zero.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if Abs(det) <= SingularTolerance {
		return Identity2(), ErrSingularMatrix
	}
	return m.adjugate().MulScalar(1 / det), nil
}

// InverseUnchecked returns the inverse of this matrix without checking
// whether it is invertible. It is only for callers that already know the
// matrix is non-singular; a singular matrix yields Inf and NaN elements.
func (m Matrix2) InverseUnchecked() Matrix2 {
	return m.adjugate().MulScalar(1 / m.Determinant())
}

// SetInverse sets this matrix to the inverse of src.
// If src is singular, this is set to the identity and an error is returned.
func (m *Matrix2) SetInverse(src Matrix2) error {
	var err error
	*m, err = src.Inverse()
	return err
}

// InverseOrIdentity returns the inverse of this matrix, or logs
// the error and returns the identity matrix if it is singular.
func (m Matrix2) InverseOrIdentity() Matrix2 {
	return errors.Log1(m.Inverse())
}

// IsEqualTol returns whether each element of this matrix is
// within tol of the corresponding element of other.
func (m Matrix2) IsEqualTol(other Matrix2, tol float32) bool {
	for i := range m {
		if !IsEqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// Matrix3 returns this matrix embedded in the upper-left of a 3x3 identity.
func (m Matrix2) Matrix3() Matrix3 {
	return Matrix3FromMatrix2(m)
}

func (m Matrix2) String() string {
	return formatFloats(m[:])
}
