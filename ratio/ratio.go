// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratio implements exact rational arithmetic over a
// parameterizable signed integer type.
//
// A Ratio[I] need not be in lowest terms after construction, but every
// operation that can produce a reduced result does so opportunistically.
// Multiply and divide widen through math/big internally so that products
// of basis-unit scale factors do not overflow the nominal integer width
// for reasonable inputs; this mitigates overflow, it does not eliminate
// it (see Mul).
package ratio

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Int is the set of integer types a Ratio may be parameterized over.
type Int interface {
	constraints.Signed
}

// Ratio is an exact rational number num/den with den != 0 for any
// well-formed value. The zero value is not well-formed (den == 0);
// use New to construct a Ratio.
type Ratio[I Int] struct {
	Num I
	Den I
}

// New constructs a Ratio from a numerator and denominator without
// normalizing. den must be non-zero.
func New[I Int](num, den I) Ratio[I] {
	return Ratio[I]{Num: num, Den: den}
}

// Zero is the additive identity 0/1.
func Zero[I Int]() Ratio[I] {
	return Ratio[I]{Num: 0, Den: 1}
}

// Unity is the multiplicative identity 1/1.
func Unity[I Int]() Ratio[I] {
	return Ratio[I]{Num: 1, Den: 1}
}

// IsZero reports whether r is the value zero (num == 0).
func (r Ratio[I]) IsZero() bool {
	return r.Num == 0
}

// IsUnity reports whether r is the value one (num == den, both nonzero).
func (r Ratio[I]) IsUnity() bool {
	return r.Num == r.Den && r.Num != 0
}

// IsIntegral reports whether r has no fractional part, i.e. den == ±1.
func (r Ratio[I]) IsIntegral() bool {
	return r.Den == 1 || r.Den == -1
}

func gcd[I Int](a, b I) I {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce returns num/den in lowest terms, with the denominator made
// non-negative.
func Reduce[I Int](num, den I) Ratio[I] {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio[I]{Num: 0, Den: 1}
	}
	g := gcd(num, den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Ratio[I]{Num: num, Den: den}
}

// Reduce returns r in lowest terms. Reduce(Reduce(x)) == Reduce(x).
func (r Ratio[I]) Reduce() Ratio[I] {
	return Reduce(r.Num, r.Den)
}

// Neg returns -r.
func (r Ratio[I]) Neg() Ratio[I] {
	return Ratio[I]{Num: -r.Num, Den: r.Den}
}

// Reciprocal returns 1/r. The result is ill-formed if r is zero.
func (r Ratio[I]) Reciprocal() Ratio[I] {
	return Ratio[I]{Num: r.Den, Den: r.Num}
}

// Add returns x + y, opportunistically reduced.
func Add[I Int](x, y Ratio[I]) Ratio[I] {
	return Reduce(x.Num*y.Den+x.Den*y.Num, x.Den*y.Den)
}

// Sub returns x - y, opportunistically reduced.
func Sub[I Int](x, y Ratio[I]) Ratio[I] {
	return Add(x, y.Neg())
}

// Mul returns x * y. The gcd cancellation performed here before widening
// is required, not an optimization: per §4.1 it is what keeps products of
// basis scale factors from overflowing for reasonable inputs. The
// residual cross-products are then carried out in math/big and narrowed
// back to I. A result that does not fit in int64 panics (the
// "pathological input" case); for an I narrower than int64, a result
// that fits in int64 but not in I is truncated the way a Go numeric
// conversion truncates. Because every result is narrowed, the widening
// does not carry across chained operations: combining widely separated
// registered scales overflows int64 and panics, e.g. rescaling
// gigatonnes to picograms (a factor of 10^27) or AU^2 to square meters
// (about 2.2e22).
func Mul[I Int](x, y Ratio[I]) Ratio[I] {
	g1 := gcd(x.Num, y.Den)
	g2 := gcd(y.Num, x.Den)
	xn, xd, yn, yd := x.Num, x.Den, y.Num, y.Den
	if g1 > 1 {
		xn /= g1
		yd /= g1
	}
	if g2 > 1 {
		yn /= g2
		xd /= g2
	}

	num := bigMul(xn, yn)
	den := bigMul(xd, yd)
	return Reduce(narrow[I](num), narrow[I](den))
}

// Div returns x / y. See Mul for the overflow-mitigation discipline.
func Div[I Int](x, y Ratio[I]) Ratio[I] {
	return Mul(x, y.Reciprocal())
}

func bigMul[I Int](a, b I) *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
}

func narrow[I Int](z *big.Int) I {
	if !z.IsInt64() {
		panic("ratio: overflow narrowing intermediate result")
	}
	return I(z.Int64())
}

// Pow raises r to the integer power p in O(log|p|) via binary
// exponentiation. Pow(r, 0) is 1/1 for any r (including zero).
func Pow[I Int](r Ratio[I], p int) Ratio[I] {
	if p < 0 {
		return Pow(r.Reciprocal(), -p)
	}
	result := Unity[I]()
	base := r
	for p > 0 {
		if p&1 == 1 {
			result = Mul(result, base)
		}
		p >>= 1
		if p > 0 {
			base = Mul(base, base)
		}
	}
	return result
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than
// y. Denominators are sign-normalized before the cross-multiply compare,
// so a value constructed with a negative denominator still compares
// correctly.
func Cmp[I Int](x, y Ratio[I]) int {
	xn, xd := x.Num, x.Den
	yn, yd := y.Num, y.Den
	if xd < 0 {
		xn, xd = -xn, -xd
	}
	if yd < 0 {
		yn, yd = -yn, -yd
	}
	lhs := bigMul(xn, yd)
	rhs := bigMul(yn, xd)
	return lhs.Cmp(rhs)
}

// Equal reports whether x and y denote the same rational value (not
// necessarily the same representation).
func Equal[I Int](x, y Ratio[I]) bool {
	return Cmp(x, y) == 0
}

// Floor returns the largest integer <= r, as an integral Ratio: integer
// division of num/den when both carry the same sign, adjusted downward
// by one when the division is inexact and the signs differ.
func (r Ratio[I]) Floor() Ratio[I] {
	n, d := r.Num, r.Den
	if d < 0 {
		n, d = -n, -d
	}
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return Ratio[I]{Num: q, Den: 1}
}

// Ceil returns the smallest integer >= r, as an integral Ratio.
func (r Ratio[I]) Ceil() Ratio[I] {
	return r.Neg().Floor().Neg()
}

// Frac returns r - r.Floor(). Because Floor always rounds toward
// negative infinity, Frac's result always lies in [0, 1) regardless of
// the sign of r: e.g. Frac(-3/2) is 1/2, not -1/2 (the original C++
// source this package is ported from truncates toward zero instead and
// lets Frac carry the sign; this is a deliberate divergence, not an
// oversight — see DESIGN.md). This is the reading that keeps §4.3's BPU
// rescale decomposition (p = p0 + q, p0 integral, q the fractional
// part) internally consistent for negative exponents.
func (r Ratio[I]) Frac() Ratio[I] {
	return Sub(r, r.Floor())
}

// Float64 converts r to a float64 via num / den.
func (r Ratio[I]) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Convert converts r to a Ratio over a different signed integer type J.
// The conversion is exact if J can represent Num and Den; otherwise it
// truncates the same way a bare Go numeric conversion would.
func Convert[J Int, I Int](r Ratio[I]) Ratio[J] {
	return Ratio[J]{Num: J(r.Num), Den: J(r.Den)}
}
