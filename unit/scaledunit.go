// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "github.com/Rconybea/xo-unit-go/ratio"

// ScaledUnit is a NaturalUnit together with two residual outer scale
// factors accumulated from combining units that disagreed on the scale
// of a shared dimension: an Exact rational factor, and an InexactSq
// float64 carrying the square of any fractional-exponent contribution.
// A ScaledUnit denotes Exact * sqrt(InexactSq) * Nat. User-facing unit
// constants always have Exact=1, InexactSq=1; non-trivial residuals only
// arise as rescale/product by-products.
type ScaledUnit struct {
	Nat       NaturalUnit
	Exact     R
	InexactSq float64
}

// NewScaledUnit wraps a NaturalUnit with trivial (1, 1.0) residuals.
func NewScaledUnit(n NaturalUnit) ScaledUnit {
	return ScaledUnit{Nat: n, Exact: ratio.Unity[int64](), InexactSq: 1.0}
}

// Mul returns the product of two ScaledUnits: the product of their
// NaturalUnits (which may itself emit a residual) times the product of
// their own outer residuals.
func (su ScaledUnit) Mul(other ScaledUnit) ScaledUnit {
	nat, exact, inexactSq := su.Nat.Mul(other.Nat)
	return ScaledUnit{
		Nat:       nat,
		Exact:     ratio.Mul(ratio.Mul(su.Exact, other.Exact), exact),
		InexactSq: su.InexactSq * other.InexactSq * inexactSq,
	}
}

// Div is analogous to Mul via NaturalUnit.Div.
func (su ScaledUnit) Div(other ScaledUnit) ScaledUnit {
	nat, exact, inexactSq := su.Nat.Div(other.Nat)
	return ScaledUnit{
		Nat:       nat,
		Exact:     ratio.Mul(ratio.Div(su.Exact, other.Exact), exact),
		InexactSq: su.InexactSq / other.InexactSq * inexactSq,
	}
}

// IsDimensionless reports whether su's NaturalUnit has cancelled
// entirely. The outer residuals do not affect dimensionality.
func (su ScaledUnit) IsDimensionless() bool {
	return su.Nat.IsDimensionless()
}

// Abbrev reports su's textual abbreviation, which is simply its
// NaturalUnit's — the outer residual factors are a bookkeeping device,
// not part of the displayed unit (a well-formed user-facing ScaledUnit
// always has trivial residuals by construction; see the type doc).
func (su ScaledUnit) Abbrev() string {
	return su.Nat.Abbrev()
}
