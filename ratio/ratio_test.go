// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Rconybea/xo-unit-go/ratio"
)

type R = ratio.Ratio[int64]

func TestReduce(t *testing.T) {
	cases := []struct {
		num, den int64
		want     R
	}{
		{2, 4, R{Num: 1, Den: 2}},
		{-2, 4, R{Num: -1, Den: 2}},
		{2, -4, R{Num: -1, Den: 2}},
		{-2, -4, R{Num: 1, Den: 2}},
		{0, 5, R{Num: 0, Den: 1}},
		{6, 3, R{Num: 2, Den: 1}},
	}
	for _, c := range cases {
		got := ratio.Reduce(c.num, c.den)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Reduce(%d, %d) mismatch (-want +got):\n%s", c.num, c.den, diff)
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	r := ratio.New[int64](18, 24)
	once := r.Reduce()
	twice := once.Reduce()
	assert.Equal(t, once, twice)
}

func TestArithmeticIdentities(t *testing.T) {
	x := ratio.New[int64](3, 7)
	y := ratio.New[int64](-5, 11)
	z := ratio.New[int64](2, 3)

	assert.True(t, ratio.Add(x, x.Neg()).IsZero())
	assert.True(t, ratio.Equal(ratio.Mul(x, x.Reciprocal()), ratio.Unity[int64]()))
	assert.True(t, ratio.Equal(ratio.Mul(x, y), ratio.Mul(y, x)))

	lhs := ratio.Add(ratio.Add(x, y), z)
	rhs := ratio.Add(x, ratio.Add(y, z))
	assert.True(t, ratio.Equal(lhs, rhs))
}

func TestPow(t *testing.T) {
	x := ratio.New[int64](3, 2)
	assert.True(t, ratio.Equal(ratio.Pow(x, 0), ratio.Unity[int64]()))
	assert.True(t, ratio.Equal(ratio.Pow(x, 1), x))

	a, b := 3, 2
	lhs := ratio.Pow(x, a+b)
	rhs := ratio.Mul(ratio.Pow(x, a), ratio.Pow(x, b))
	assert.True(t, ratio.Equal(lhs, rhs))

	assert.True(t, ratio.Equal(ratio.Pow(x, -1), x.Reciprocal()))
}

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, ratio.Cmp(ratio.New[int64](1, 2), ratio.New[int64](2, 4)))
	assert.Equal(t, -1, ratio.Cmp(ratio.New[int64](1, 3), ratio.New[int64](1, 2)))
	assert.Equal(t, 1, ratio.Cmp(ratio.New[int64](2, 3), ratio.New[int64](1, 2)))
	// Negative denominator still compares correctly after sign flip.
	assert.Equal(t, 0, ratio.Cmp(ratio.New[int64](1, -2), ratio.New[int64](-1, 2)))
}

func TestFloorCeilFrac(t *testing.T) {
	cases := []struct {
		r              R
		floor, ceil    int64
		fracNum, fracD int64
	}{
		{ratio.New[int64](3, 2), 1, 2, 1, 2},
		{ratio.New[int64](-3, 2), -2, -1, 1, 2},
		{ratio.New[int64](4, 2), 2, 2, 0, 1},
		{ratio.New[int64](-4, 2), -2, -2, 0, 1},
	}
	for _, c := range cases {
		gotFloor := c.r.Floor()
		assert.Equal(t, c.floor, gotFloor.Num, "floor(%v)", c.r)
		gotCeil := c.r.Ceil()
		assert.Equal(t, c.ceil, gotCeil.Num, "ceil(%v)", c.r)
		wantFrac := ratio.New[int64](c.fracNum, c.fracD)
		gotFrac := c.r.Frac()
		assert.True(t, ratio.Equal(wantFrac, gotFrac), "frac(%v) = %v, want %v", c.r, gotFrac, wantFrac)
	}
}

func TestConvertAndFloat64(t *testing.T) {
	r := ratio.New[int64](3, 4)
	r32 := ratio.Convert[int32](r)
	assert.Equal(t, int32(3), r32.Num)
	assert.Equal(t, int32(4), r32.Den)
	assert.InDelta(t, 0.75, r.Float64(), 1e-12)
}

func TestMulAvoidsOverflowViaGcdCancellation(t *testing.T) {
	// Large scale factors whose naive cross-product would overflow a
	// 32-bit nominal width, but which share large common factors with
	// the opposite denominator/numerator.
	x := ratio.New[int32](1_000_000, 3_000)
	y := ratio.New[int32](3_000, 1_000_000)
	got := ratio.Mul(x, y)
	assert.True(t, got.IsUnity())
}
