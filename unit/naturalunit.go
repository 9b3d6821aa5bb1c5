// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"strings"

	"github.com/Rconybea/xo-unit-go/ratio"
)

// NaturalUnit is a bounded ordered sequence of BPUs over distinct
// dimensions. It never allocates: storage is a fixed MaxDimensions-sized
// array plus a length. Two NaturalUnits that differ only by the order
// their BPUs were inserted in denote the same unit; Equal and
// SameDimension compare per-dimension, not by position.
type NaturalUnit struct {
	bpus [MaxDimensions]BPU
	n    int
}

// NewNaturalUnit folds bpus into a NaturalUnit via repeated MulBPU,
// discarding the residuals (a fresh NaturalUnit built from distinct-
// dimension BPUs never produces any). It replaces the original C++
// source's variadic-template builder (§9): plain variadic Go function, folder
// loop, no compile-time significance beyond its result.
func NewNaturalUnit(bpus ...BPU) NaturalUnit {
	var nu NaturalUnit
	for _, b := range bpus {
		nu, _, _ = nu.MulBPU(b)
	}
	return nu
}

// Len returns the number of distinct dimensions present.
func (nu NaturalUnit) Len() int { return nu.n }

// BPUs returns the entries in their internal order, as a slice over a
// copy of nu's backing array: safe for the caller to range over, but
// mutating it has no effect on nu.
func (nu NaturalUnit) BPUs() []BPU {
	return nu.bpus[:nu.n]
}

// IsDimensionless reports whether nu has no entries.
func (nu NaturalUnit) IsDimensionless() bool {
	return nu.n == 0
}

func (nu *NaturalUnit) indexOf(d Dimension) int {
	for i := 0; i < nu.n; i++ {
		if nu.bpus[i].Unit.Dim == d {
			return i
		}
	}
	return -1
}

func (nu *NaturalUnit) removeAt(i int) {
	copy(nu.bpus[i:nu.n-1], nu.bpus[i+1:nu.n])
	nu.n--
}

// MulBPU returns the NaturalUnit obtained by folding b into nu's
// product: if nu already has an entry for b's dimension, §4.3's BPU
// product is applied to that entry (removing it if the resulting power
// is zero) and the rescale residuals are returned; otherwise b is
// appended unchanged and the residuals are (1, 1.0).
func (nu NaturalUnit) MulBPU(b BPU) (result NaturalUnit, exact R, inexactSq float64) {
	result = nu
	if i := result.indexOf(b.Unit.Dim); i >= 0 {
		merged, ex, inSq := result.bpus[i].Mul(b)
		if merged.Power.IsZero() {
			result.removeAt(i)
		} else {
			result.bpus[i] = merged
		}
		return result, ex, inSq
	}
	if result.n >= MaxDimensions {
		panic("unit: NaturalUnit capacity exceeded")
	}
	result.bpus[result.n] = b
	result.n++
	return result, ratio.Unity[int64](), 1.0
}

// DivBPU is symmetric with MulBPU: on a miss it appends the reciprocal
// of b.
func (nu NaturalUnit) DivBPU(b BPU) (result NaturalUnit, exact R, inexactSq float64) {
	result = nu
	if i := result.indexOf(b.Unit.Dim); i >= 0 {
		merged, ex, inSq := result.bpus[i].Div(b)
		if merged.Power.IsZero() {
			result.removeAt(i)
		} else {
			result.bpus[i] = merged
		}
		return result, ex, inSq
	}
	if result.n >= MaxDimensions {
		panic("unit: NaturalUnit capacity exceeded")
	}
	result.bpus[result.n] = b.Reciprocal()
	result.n++
	return result, ratio.Unity[int64](), 1.0
}

// Mul returns the product of nu and other, folding in each of other's
// BPUs in turn and accumulating residuals multiplicatively. Per §4.4
// this would conventionally be computed in a wider integer
// representation; here that widening is already performed internally by
// ratio.Ratio.Mul/Div (see DESIGN.md), so Mul operates directly at the
// package's nominal width throughout.
func (nu NaturalUnit) Mul(other NaturalUnit) (result NaturalUnit, exact R, inexactSq float64) {
	result = nu
	exact = ratio.Unity[int64]()
	inexactSq = 1.0
	for _, b := range other.BPUs() {
		var ex R
		var inSq float64
		result, ex, inSq = result.MulBPU(b)
		exact = ratio.Mul(exact, ex)
		inexactSq *= inSq
	}
	return result, exact, inexactSq
}

// Div is analogous to Mul via DivBPU.
func (nu NaturalUnit) Div(other NaturalUnit) (result NaturalUnit, exact R, inexactSq float64) {
	result = nu
	exact = ratio.Unity[int64]()
	inexactSq = 1.0
	for _, b := range other.BPUs() {
		var ex R
		var inSq float64
		result, ex, inSq = result.DivBPU(b)
		exact = ratio.Mul(exact, ex)
		inexactSq *= inSq
	}
	return result, exact, inexactSq
}

// powerOf looks up the exponent of dimension d (invariant 2 of §3 means
// there is at most one entry per dimension, so a lookup suffices), so
// that SameDimension can compare symmetrically without assuming both
// sides share entry order.
func (nu *NaturalUnit) powerOf(d Dimension) (R, bool) {
	if i := nu.indexOf(d); i >= 0 {
		return nu.bpus[i].Power, true
	}
	return R{}, false
}

// SameDimension reports whether nu and other denote the same dimension:
// for every basis dimension, the exponent present in nu (zero if
// absent) equals the exponent present in other.
func (nu NaturalUnit) SameDimension(other NaturalUnit) bool {
	a, b := nu, other
	for d := MassDim; d <= PriceDim; d++ {
		pa, okA := a.powerOf(d)
		pb, okB := b.powerOf(d)
		if !okA {
			pa = ratio.Zero[int64]()
		}
		if !okB {
			pb = ratio.Zero[int64]()
		}
		if !ratio.Equal(pa, pb) {
			return false
		}
	}
	return true
}

// Equal reports whether nu and other denote the same unit: same
// dimension, and matching scale factors for each present dimension.
func (nu NaturalUnit) Equal(other NaturalUnit) bool {
	if !nu.SameDimension(other) {
		return false
	}
	for d := MassDim; d <= PriceDim; d++ {
		ai := nu.indexOf(d)
		bi := other.indexOf(d)
		if ai < 0 && bi < 0 {
			continue
		}
		if ai < 0 || bi < 0 {
			return false
		}
		if !ratio.Equal(nu.bpus[ai].Unit.Scale, other.bpus[bi].Unit.Scale) {
			return false
		}
	}
	return true
}

// Abbrev assembles the NaturalUnit's textual abbreviation by joining the
// per-BPU abbreviations with "." in the sequence's internal order. An
// empty NaturalUnit has an empty abbreviation.
func (nu NaturalUnit) Abbrev() string {
	parts := make([]string, 0, nu.n)
	for i := 0; i < nu.n; i++ {
		parts = append(parts, abbrevBPU(nu.bpus[i]))
	}
	return strings.Join(parts, ".")
}
