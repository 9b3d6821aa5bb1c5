// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"math"

	"github.com/Rconybea/xo-unit-go/ratio"
)

// BasisUnit is a single basis dimension paired with a scale factor
// relative to that dimension's native unit: (time, 60/1) is "minute";
// (mass, 1/1000) is "milligram".
type BasisUnit struct {
	Dim   Dimension
	Scale R
}

// Equal reports componentwise equality.
func (b BasisUnit) Equal(other BasisUnit) bool {
	return b.Dim == other.Dim && ratio.Equal(b.Scale, other.Scale)
}

// BPU (basis-power-unit) denotes (Unit.Scale x native-unit-of-Unit.Dim)^Power.
type BPU struct {
	Unit  BasisUnit
	Power R
}

// Reciprocal returns the BPU with negated power: (b^p)^-1 = b^-p.
func (b BPU) Reciprocal() BPU {
	return BPU{Unit: b.Unit, Power: b.Power.Neg()}
}

// Rescale re-expresses b, whose basis unit has scale factor b.Unit.Scale,
// in terms of a basis unit of the same dimension with scale factor
// newScale, per §4.3:
//
//	m = oldScale / newScale
//	p = p0 + q,  p0 = floor(p) integral, q = frac(p)
//	b = m^p0 . m^q . (newScale.u)^p
//
// It returns the rescaled BPU together with the exact outer factor m^p0
// and the inexact outer factor accumulated as a square, (m^q)^2: this
// keeps the common integer-exponent case exact (inexactSq == 1.0) and
// lets the half-integer case carry m itself under the eventual square
// root, deferring the sqrt until a numeric payload is available (see
// Rescale). Exponents whose fractional part has a denominator
// other than 1 or 2 are accepted but produce inexactSq = NaN — this is
// documented behavior (§7 item 3), not a bug: a language with constexpr
// floating-point power could generalize this, Go cannot at compile time.
func (b BPU) Rescale(newScale R) (rescaled BPU, exact R, inexactSq float64) {
	m := ratio.Div(b.Unit.Scale, newScale)
	p0 := b.Power.Floor()
	q := b.Power.Frac()

	rescaled = BPU{Unit: BasisUnit{Dim: b.Unit.Dim, Scale: newScale}, Power: b.Power}

	exact = ratio.Pow(m, int(p0.Num))

	switch {
	case q.IsZero():
		inexactSq = 1.0
	case q.Num == 1 && q.Den == 2:
		// q == 1/2: (m^(1/2))^2 == m, exactly. q is always in [0, 1) (see
		// ratio.Ratio.Frac), so this is the only nonzero half-integer case
		// that can arise; there is no q == -1/2 to special-case.
		inexactSq = m.Float64()
	default:
		inexactSq = math.NaN()
	}
	return rescaled, exact, inexactSq
}

// Mul returns the product of two BPUs over the same dimension: the
// right operand is rescaled to the left operand's scale factor, the
// resulting BPU keeps that scale factor with power = sum of powers, and
// the rescale residuals are returned alongside.
//
// Mul panics if a and b are not over the same dimension; callers at L4
// only ever call this after confirming dimension equality.
func (a BPU) Mul(b BPU) (result BPU, exact R, inexactSq float64) {
	if a.Unit.Dim != b.Unit.Dim {
		panic("unit: BPU.Mul on mismatched dimensions")
	}
	rb, exact, inexactSq := b.Rescale(a.Unit.Scale)
	result = BPU{Unit: a.Unit, Power: ratio.Add(a.Power, rb.Power)}
	return result, exact, inexactSq
}

// Div returns the ratio of two BPUs over the same dimension: power =
// left minus right. The residuals emitted are the reciprocals of the
// ones Mul would emit for the same pair, since rescaling b contributes
// exact*sqrt(inexactSq) to b, and dividing by b divides by that factor.
func (a BPU) Div(b BPU) (result BPU, exact R, inexactSq float64) {
	if a.Unit.Dim != b.Unit.Dim {
		panic("unit: BPU.Div on mismatched dimensions")
	}
	rb, mulExact, mulInexactSq := b.Rescale(a.Unit.Scale)
	result = BPU{Unit: a.Unit, Power: ratio.Sub(a.Power, rb.Power)}
	return result, mulExact.Reciprocal(), 1.0 / mulInexactSq
}
