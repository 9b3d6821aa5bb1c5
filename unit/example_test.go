// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"fmt"
	"os"

	"github.com/Rconybea/xo-unit-go/unit"
)

func ExampleQuantity_LogFormat() {
	q := unit.Kilograms(3)
	q.LogFormat(os.Stdout)

	// Output: 3kg
}

func ExampleQuantity_String() {
	speed := unit.MetersPerSecond(9.8)
	fmt.Println(speed)

	// Output: 9.8m.s^-1
}
