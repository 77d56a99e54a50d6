// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"errors"
	"fmt"

	"cogentcore.org/glmath/math32"
)

func ExampleMatrix4_Mul() {
	// scale first, then translate
	model := math32.Translation4(math32.Vec3(1, 2, 3)).Mul(math32.Scale4(math32.Vec3(2, 2, 2)))
	fmt.Println(model.MulVector3AsPoint(math32.Vec3(1, 1, 1)))
	fmt.Println(model.MulVector3AsVector(math32.Vec3(1, 1, 1)))
	// Output:
	// (3, 4, 5)
	// (2, 2, 2)
}

func ExampleMatrix3_Inverse() {
	m := math32.NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	_, err := m.Inverse()
	fmt.Println(err, errors.Is(err, math32.ErrSingularMatrix))
	// Output: math32: singular matrix true
}

func ExampleMatrix2_ToArray() {
	m := math32.NewMatrix2(
		1, 2,
		3, 4,
	)
	fmt.Println(m.ToArray())
	// Output: [1 3 2 4]
}

func ExampleParseVector3() {
	v, err := math32.ParseVector3("0.5, 1 2")
	fmt.Println(v, err)
	_, err = math32.ParseVector3("0.5, 1")
	fmt.Println(err)
	// Output:
	// (0.5, 1, 2) <nil>
	// parsing Vector3 from "0.5, 1": math32: too few components: got 2 of 3
}
