// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// The text form of vectors and matrices is the list of their
// components, separated by commas and/or whitespace, optionally
// enclosed in parentheses or square brackets: "(1, 2, 3)", "1 2 3",
// and "[1,2,3]" are all the same [Vector3]. A comma must separate two
// components, so empty fields as in "1,,2,3" are rejected. Matrices
// list their elements in column-major order. Implementing
// encoding.TextMarshaler and encoding.TextUnmarshaler lets these types
// appear directly as values in JSON, YAML, and TOML documents.

// formatFloats returns fs in the parenthesized text form,
// using the shortest representation that round trips.
func formatFloats(fs []float32) string {
	b := make([]byte, 0, 2+len(fs)*8)
	b = append(b, '(')
	for i, f := range fs {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, float64(f), 'g', -1, 32)
	}
	b = append(b, ')')
	return string(b)
}

// parseFloats parses exactly len(dst) components from text into dst.
// typ names the type being decoded, for the returned [*ParseError].
func parseFloats(typ string, text []byte, dst []float32) error {
	perr := func(err error) error {
		return &ParseError{Type: typ, Text: string(text), Err: err}
	}
	fields, err := splitFields(string(text))
	if err != nil {
		return perr(err)
	}
	if len(fields) > len(dst) {
		return perr(fmt.Errorf("%w: want %d", ErrTooManyComponents, len(dst)))
	}
	if len(fields) < len(dst) {
		return perr(fmt.Errorf("%w: got %d of %d", ErrTooFewComponents, len(fields), len(dst)))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return perr(fmt.Errorf("%w %q at position %d", ErrInvalidComponent, f, i))
		}
		dst[i] = float32(v)
	}
	return nil
}

// splitFields returns the whitespace and comma separated fields of s,
// after removing any enclosing parentheses or brackets. Each comma must
// separate two non-empty fields, so "1,,2" and "1, 2," are invalid.
func splitFields(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if n := len(s); n >= 2 && (s[0] == '(' && s[n-1] == ')' || s[0] == '[' && s[n-1] == ']') {
		s = s[1 : n-1]
	}
	if !strings.Contains(s, ",") {
		return strings.Fields(s), nil
	}
	var fields []string
	for i, part := range strings.Split(s, ",") {
		fs := strings.Fields(part)
		if len(fs) == 0 {
			return nil, fmt.Errorf("%w: empty field %d", ErrInvalidComponent, i)
		}
		fields = append(fields, fs...)
	}
	return fields, nil
}

// MarshalText returns the text form of this vector.
func (v Vector2) MarshalText() ([]byte, error) {
	return []byte(formatFloats([]float32{v.X, v.Y})), nil
}

// UnmarshalText sets this vector from its text form.
// On error the vector is left unchanged.
func (v *Vector2) UnmarshalText(text []byte) error {
	var a [2]float32
	if err := parseFloats("Vector2", text, a[:]); err != nil {
		return err
	}
	*v = Vector2FromArray(a)
	return nil
}

// MarshalText returns the text form of this vector.
func (v Vector3) MarshalText() ([]byte, error) {
	return []byte(formatFloats([]float32{v.X, v.Y, v.Z})), nil
}

// UnmarshalText sets this vector from its text form.
// On error the vector is left unchanged.
func (v *Vector3) UnmarshalText(text []byte) error {
	var a [3]float32
	if err := parseFloats("Vector3", text, a[:]); err != nil {
		return err
	}
	*v = Vector3FromArray(a)
	return nil
}

// MarshalText returns the text form of this vector.
func (v Vector4) MarshalText() ([]byte, error) {
	return []byte(formatFloats([]float32{v.X, v.Y, v.Z, v.W})), nil
}

// UnmarshalText sets this vector from its text form.
// On error the vector is left unchanged.
func (v *Vector4) UnmarshalText(text []byte) error {
	var a [4]float32
	if err := parseFloats("Vector4", text, a[:]); err != nil {
		return err
	}
	*v = Vector4FromArray(a)
	return nil
}

// MarshalText returns the column-major text form of this matrix.
func (m Matrix2) MarshalText() ([]byte, error) {
	return []byte(formatFloats(m[:])), nil
}

// UnmarshalText sets this matrix from its column-major text form.
// On error the matrix is left unchanged.
func (m *Matrix2) UnmarshalText(text []byte) error {
	var a Matrix2
	if err := parseFloats("Matrix2", text, a[:]); err != nil {
		return err
	}
	*m = a
	return nil
}

// MarshalText returns the column-major text form of this matrix.
func (m Matrix3) MarshalText() ([]byte, error) {
	return []byte(formatFloats(m[:])), nil
}

// UnmarshalText sets this matrix from its column-major text form.
// On error the matrix is left unchanged.
func (m *Matrix3) UnmarshalText(text []byte) error {
	var a Matrix3
	if err := parseFloats("Matrix3", text, a[:]); err != nil {
		return err
	}
	*m = a
	return nil
}

// MarshalText returns the column-major text form of this matrix.
func (m Matrix4) MarshalText() ([]byte, error) {
	return []byte(formatFloats(m[:])), nil
}

// UnmarshalText sets this matrix from its column-major text form.
// On error the matrix is left unchanged.
func (m *Matrix4) UnmarshalText(text []byte) error {
	var a Matrix4
	if err := parseFloats("Matrix4", text, a[:]); err != nil {
		return err
	}
	*m = a
	return nil
}

// ParseVector2 returns the [Vector2] for the given text form.
func ParseVector2(s string) (Vector2, error) {
	var v Vector2
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseVector3 returns the [Vector3] for the given text form.
func ParseVector3(s string) (Vector3, error) {
	var v Vector3
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseVector4 returns the [Vector4] for the given text form.
func ParseVector4(s string) (Vector4, error) {
	var v Vector4
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseMatrix2 returns the [Matrix2] for the given column-major text form.
func ParseMatrix2(s string) (Matrix2, error) {
	var v Matrix2
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseMatrix3 returns the [Matrix3] for the given column-major text form.
func ParseMatrix3(s string) (Matrix3, error) {
	var v Matrix3
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseMatrix4 returns the [Matrix4] for the given column-major text form.
func ParseMatrix4(s string) (Matrix4, error) {
	var v Matrix4
	err := v.UnmarshalText([]byte(s))
	return v, err
}
