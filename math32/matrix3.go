// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/glmath/base/errors"

// Matrix3 is a 3x3 matrix of float32 values, organized in
// column-major order: element (row r, column c) is at index c*3 + r.
// It is used for rotations, normal matrices, and 2D homogeneous transforms.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMatrix3 returns a new [Matrix3] from elements given in row-major
// order, so that a matrix literal reads the way it is written on paper.
func NewMatrix3(n00, n01, n02, n10, n11, n12, n20, n21, n22 float32) Matrix3 {
	return Matrix3{
		n00, n10, n20,
		n01, n11, n21,
		n02, n12, n22,
	}
}

// Matrix3FromCols returns a new [Matrix3] with the given column vectors.
func Matrix3FromCols(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Matrix3FromRows returns a new [Matrix3] with the given row vectors.
func Matrix3FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// Matrix3FromArray returns a new [Matrix3] from the given column-major array.
func Matrix3FromArray(a [9]float32) Matrix3 {
	return Matrix3(a)
}

// Matrix3FromMatrix2 returns a new [Matrix3] with the given [Matrix2]
// in its upper-left 2x2 block, and identity values elsewhere.
func Matrix3FromMatrix2(m Matrix2) Matrix3 {
	return Matrix3{
		m[0], m[1], 0,
		m[2], m[3], 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix4 returns a new [Matrix3] from the upper-left
// 3x3 block of the given [Matrix4], dropping the last row and column.
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix3) SetIdentity() {
	*m = Identity3()
}

// SetZero sets this matrix to the zero matrix.
func (m *Matrix3) SetZero() {
	*m = Matrix3{}
}

// IsIdentity returns whether this matrix is exactly the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity3()
}

// At returns the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m Matrix3) At(row, col int) float32 {
	checkIndex(row, 3)
	checkIndex(col, 3)
	return m[col*3+row]
}

// SetAt sets the element at the given row and column.
// It panics with an [*IndexError] if either is out of range.
func (m *Matrix3) SetAt(row, col int, value float32) {
	checkIndex(row, 3)
	checkIndex(col, 3)
	m[col*3+row] = value
}

// Col returns the given column of this matrix.
func (m Matrix3) Col(col int) Vector3 {
	checkIndex(col, 3)
	i := col * 3
	return Vector3{m[i], m[i+1], m[i+2]}
}

// SetCol sets the given column of this matrix.
func (m *Matrix3) SetCol(col int, v Vector3) {
	checkIndex(col, 3)
	i := col * 3
	m[i] = v.X
	m[i+1] = v.Y
	m[i+2] = v.Z
}

// Row returns the given row of this matrix, gathered from its columns.
func (m Matrix3) Row(row int) Vector3 {
	checkIndex(row, 3)
	return Vector3{m[row], m[3+row], m[6+row]}
}

// SetRow sets the given row of this matrix.
func (m *Matrix3) SetRow(row int, v Vector3) {
	checkIndex(row, 3)
	m[row] = v.X
	m[3+row] = v.Y
	m[6+row] = v.Z
}

// FromSlice sets this matrix from the given column-major slice, starting at offset.
func (m *Matrix3) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+9])
}

// ToSlice copies this matrix to the given slice in column-major order, starting at offset.
func (m Matrix3) ToSlice(array []float32, offset int) {
	copy(array[offset:offset+9], m[:])
}

// ToArray returns this matrix as a column-major array.
func (m Matrix3) ToArray() [9]float32 {
	return [9]float32(m)
}

// ToStd140 returns this matrix in the std140 uniform block layout,
// where each column is padded out to four floats.
func (m Matrix3) ToStd140() [12]float32 {
	return [12]float32{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
	}
}

// AppendFloats appends the column-major elements of this matrix to dst.
func (m Matrix3) AppendFloats(dst []float32) []float32 {
	return append(dst, m[:]...)
}

// AppendBytes appends the little-endian column-major bytes of this matrix to dst.
func (m Matrix3) AppendBytes(dst []byte) []byte {
	return appendFloatBytes(dst, m[:]...)
}

// Bytes returns the little-endian column-major bytes of this matrix,
// ready for upload with glUniformMatrix3fv.
func (m Matrix3) Bytes() []byte {
	return m.AppendBytes(make([]byte, 0, 9*FloatBytes))
}

// Add returns the componentwise sum of this matrix and other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// SetAdd sets this to addition with other matrix (i.e., += or plus-equals).
func (m *Matrix3) SetAdd(other Matrix3) {
	*m = m.Add(other)
}

// Sub returns the componentwise difference of this matrix and other.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SetSub sets this to subtraction with other matrix (i.e., -= or minus-equals).
func (m *Matrix3) SetSub(other Matrix3) {
	*m = m.Sub(other)
}

// Negate returns this matrix with each element negated.
func (m Matrix3) Negate() Matrix3 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// MulScalar returns this matrix with each element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// SetMulScalar multiplies each element of this matrix by s.
func (m *Matrix3) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix with each element divided by s.
// If s is zero, returns the zero matrix.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	if s == 0 {
		return Matrix3{}
	}
	return m.MulScalar(1 / s)
}

// Mul returns this matrix times other (m * other).
// Applied to a vector, other acts first.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		oc := c * 3
		for row := 0; row < 3; row++ {
			r[oc+row] = m[row]*other[oc] + m[3+row]*other[oc+1] + m[6+row]*other[oc+2]
		}
	}
	return r
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix3) SetMul(other Matrix3) {
	*m = m.Mul(other)
}

// SetMulMatrices sets this matrix to a * b.
func (m *Matrix3) SetMulMatrices(a, b Matrix3) {
	*m = a.Mul(b)
}

// MulVector3 returns the column vector v transformed by this matrix (m * v).
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulVector2AsPoint returns the 2D point v transformed by this matrix
// as a 2D homogeneous transform (z = 1), so translation applies.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return m.MulVector3(Vector3FromVector2(v, 1)).Vector2()
}

// MulVector2AsVector returns the 2D direction v transformed by this matrix
// as a 2D homogeneous transform (z = 0), so translation is ignored.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return m.MulVector3(Vector3FromVector2(v, 0)).Vector2()
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal elements.
func (m Matrix3) Trace() float32 {
	return m[0] + m[4] + m[8]
}

// Determinant returns the determinant of this matrix, computed as the
// cofactor sum along the first column, which is the scalar triple
// product of the columns.
func (m Matrix3) Determinant() float32 {
	return ScalarTriple(m.Col(0), m.Col(1), m.Col(2))
}

// adjugate returns the transpose of the cofactor matrix.
// Its rows are the cross products of pairs of columns.
func (m Matrix3) adjugate() Matrix3 {
	a, b, c := m.Col(0), m.Col(1), m.Col(2)
	return Matrix3FromRows(b.Cross(c), c.Cross(a), a.Cross(b))
}

// Inverse returns the inverse of this matrix, or [ErrSingularMatrix]
// and the identity matrix if the determinant is within [SingularTolerance] of zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if Abs(det) <= SingularTolerance {
		return Identity3(), ErrSingularMatrix
	}
	return m.adjugate().MulScalar(1 / det), nil
}

// InverseUnchecked returns the inverse of this matrix without checking
// whether it is invertible. It is only for callers that already know the
// matrix is non-singular; a singular matrix yields Inf and NaN elements.
func (m Matrix3) InverseUnchecked() Matrix3 {
	return m.adjugate().MulScalar(1 / m.Determinant())
}

// SetInverse sets this matrix to the inverse of src.
// If src is singular, this is set to the identity and an error is returned.
func (m *Matrix3) SetInverse(src Matrix3) error {
	var err error
	*m, err = src.Inverse()
	return err
}

// InverseOrIdentity returns the inverse of this matrix, or logs
// the error and returns the identity matrix if it is singular.
func (m Matrix3) InverseOrIdentity() Matrix3 {
	return errors.Log1(m.Inverse())
}

// IsEqualTol returns whether each element of this matrix is
// within tol of the corresponding element of other.
func (m Matrix3) IsEqualTol(other Matrix3, tol float32) bool {
	for i := range m {
		if !IsEqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// Matrix2 returns the upper-left 2x2 block of this matrix,
// dropping the last row and column.
func (m Matrix3) Matrix2() Matrix2 {
	return Matrix2{m[0], m[1], m[3], m[4]}
}

// Matrix4 returns this matrix embedded in the upper-left of a 4x4 identity.
func (m Matrix3) Matrix4() Matrix4 {
	return Matrix4FromMatrix3(m)
}

func (m Matrix3) String() string {
	return formatFloats(m[:])
}
