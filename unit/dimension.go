// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit implements a compile-time-checked quantity-and-units
// library: numeric code written in terms of physically meaningful
// quantities (3 kilograms, 5 meters per second squared) instead of bare
// numbers, with dimensional mismatches rejected as early as Go's type
// system allows.
//
// Go has no const generics, so a Quantity's unit is carried as a
// runtime-held value rather than a type parameter (see DESIGN.md for
// the rationale). The single-dimension types (Mass, Distance, Duration,
// Currency, Price) still get compile-time checking for free, because
// they are distinct Go types.
package unit

import (
	"github.com/Rconybea/xo-unit-go/ratio"
)

// Dimension is one of a closed enumeration of basis dimensions. The set
// is fixed at compile time; extending it is a source edit, not a
// runtime operation.
type Dimension int

const (
	InvalidDim Dimension = iota
	MassDim
	DistanceDim
	TimeDim
	CurrencyDim
	PriceDim

	dimensionCount = TimeDim + 1 + 2 // one slot per Dimension value: InvalidDim plus mass, distance, time, currency, price
)

// MaxDimensions bounds the number of BPU entries a NaturalUnit may hold:
// at most one per basis dimension.
const MaxDimensions = 5

var dimensionSymbols = [...]string{
	InvalidDim:  "?",
	MassDim:     "g",
	DistanceDim: "m",
	TimeDim:     "s",
	CurrencyDim: "ccy",
	PriceDim:    "px",
}

// String returns the native-unit abbreviation for d. It panics on an
// out-of-range Dimension, matching the teacher's Dimension.String.
func (d Dimension) String() string {
	if d <= InvalidDim || int(d) >= len(dimensionSymbols) {
		panic("unit: illegal dimension")
	}
	return dimensionSymbols[d]
}

// NativeUnit returns the BasisUnit denoting d's own native unit (scale
// factor 1/1).
func (d Dimension) NativeUnit() BasisUnit {
	return BasisUnit{Dim: d, Scale: R{Num: 1, Den: 1}}
}

// R is the Ratio instantiation used throughout this package: a 64-bit
// nominal width. See DESIGN.md for why the package fixes a single
// width here rather than re-exposing ratio.Ratio's generic parameter.
type R = ratio.Ratio[int64]

// RZero and RUnity are shorthand for the additive and multiplicative
// identities at the package's fixed width.
func RZero() R  { return ratio.Zero[int64]() }
func RUnity() R { return ratio.Unity[int64]() }
