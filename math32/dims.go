// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Dims is a list of vector dimension (component) names.
// It doubles as the positional index of a vector component:
// X is index 0, Y index 1, and so on.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// DimsN is the highest valid value for type Dims, plus one.
const DimsN Dims = 4

var dimsNames = [DimsN]string{"X", "Y", "Z", "W"}

// String returns the string representation of this Dims value.
func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return fmt.Sprintf("Dims(%d)", int32(d))
	}
	return dimsNames[d]
}

// SetString sets the Dims value from its string representation,
// which is case insensitive ("x" and "X" both work), and
// returns an error if the string is invalid.
func (d *Dims) SetString(s string) error {
	switch s {
	case "x", "X":
		*d = X
	case "y", "Y":
		*d = Y
	case "z", "Z":
		*d = Z
	case "w", "W":
		*d = W
	default:
		return fmt.Errorf("%q is not a valid value for type Dims", s)
	}
	return nil
}

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}

// checkDim panics with an [*IndexError] if d is not a valid
// component index for a vector of length n.
func checkDim(d Dims, n int) {
	if d < 0 || int(d) >= n {
		panic(&IndexError{Index: int(d), Len: n})
	}
}

// checkIndex panics with an [*IndexError] if i is not
// a valid index for a row or column of length n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}
