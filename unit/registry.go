// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"sort"

	"github.com/Rconybea/xo-unit-go/ratio"
)

// registryCapacity bounds the number of registrations per dimension
// (§4.2: "per-dimension bounded capacity (default 25)").
const registryCapacity = 25

type registration struct {
	scale R
	text  string
}

type abbrevTable struct {
	entries []registration
}

// insert adds or replaces the registration for scale, keeping entries
// sorted by scale so lookup can binary-search.
func (t *abbrevTable) insert(scale R, text string) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return ratio.Cmp(t.entries[i].scale, scale) >= 0
	})
	if i < len(t.entries) && ratio.Equal(t.entries[i].scale, scale) {
		t.entries[i].text = text
		return
	}
	if len(t.entries) >= registryCapacity {
		panic("unit: abbreviation registry capacity exceeded")
	}
	t.entries = append(t.entries, registration{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = registration{scale: scale, text: text}
}

func (t *abbrevTable) lookup(scale R) (string, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return ratio.Cmp(t.entries[i].scale, scale) >= 0
	})
	if i < len(t.entries) && ratio.Equal(t.entries[i].scale, scale) {
		return t.entries[i].text, true
	}
	return "", false
}

var abbrevRegistry [dimensionCount]abbrevTable

func register(dim Dimension, scale R, text string) {
	abbrevRegistry[dim].insert(scale, text)
}

func s(n, d int64) R { return ratio.New[int64](n, d) }

func init() {
	// Mass: picogram through gigatonne, relative to the gram native unit.
	register(MassDim, s(1, 1_000_000_000_000), "pg")
	register(MassDim, s(1, 1_000_000_000), "ng")
	register(MassDim, s(1, 1_000_000), "ug")
	register(MassDim, s(1, 1_000), "mg")
	register(MassDim, s(1, 1), "g")
	register(MassDim, s(1_000, 1), "kg")
	register(MassDim, s(1_000_000, 1), "t")
	register(MassDim, s(1_000_000_000, 1), "kt")
	register(MassDim, s(1_000_000_000_000, 1), "Mt")
	register(MassDim, s(1_000_000_000_000_000, 1), "Gt")

	// Distance: picometer through gigameter, plus customary units.
	register(DistanceDim, s(1, 1_000_000_000_000), "pm")
	register(DistanceDim, s(1, 1_000_000_000), "nm")
	register(DistanceDim, s(1, 1_000_000), "um")
	register(DistanceDim, s(1, 1_000), "mm")
	register(DistanceDim, s(1, 100), "cm")
	register(DistanceDim, s(1, 1), "m")
	register(DistanceDim, s(1_000, 1), "km")
	register(DistanceDim, s(1_000_000, 1), "Mm")
	register(DistanceDim, s(1_000_000_000, 1), "Gm")
	register(DistanceDim, s(254, 10_000), "in")
	register(DistanceDim, s(3_048, 10_000), "ft")
	register(DistanceDim, s(9_144, 10_000), "yd")
	register(DistanceDim, s(1_609_344, 1_000), "mi")
	register(DistanceDim, s(299_792_458, 1), "ls")
	register(DistanceDim, s(149_597_870_700, 1), "AU")

	// Time: picosecond through year365, relative to the second.
	register(TimeDim, s(1, 1_000_000_000_000), "ps")
	register(TimeDim, s(1, 1_000_000_000), "ns")
	register(TimeDim, s(1, 1_000_000), "us")
	register(TimeDim, s(1, 1_000), "ms")
	register(TimeDim, s(1, 1), "s")
	register(TimeDim, s(60, 1), "min")
	register(TimeDim, s(3_600, 1), "h")
	register(TimeDim, s(86_400, 1), "day")
	register(TimeDim, s(604_800, 1), "wk")
	register(TimeDim, s(2_592_000, 1), "mo30")
	register(TimeDim, s(31_536_000, 1), "yr365")

	// Currency and price: single native-unit registrations; the
	// concrete conversion factors between currencies/instruments are a
	// runtime-data concern out of this library's scope (§1).
	register(CurrencyDim, s(1, 1), "ccy")
	register(PriceDim, s(1, 1), "px")
}

// Abbrev returns the short text form of b: a registered basis unit
// yields its short name; an unregistered one synthesizes
// "<ratio><native>" per the §6 grammar.
func Abbrev(b BasisUnit) string {
	if text, ok := abbrevRegistry[b.Dim].lookup(b.Scale); ok {
		return text
	}
	return formatScale(b.Scale) + b.Dim.String()
}

// formatScale renders a scale factor as "n" when the denominator is 1,
// otherwise "(n/d)" — with the sign placed ahead of the opening paren
// for negative values.
func formatScale(v R) string {
	red := v.Reduce()
	if red.IsIntegral() {
		den := int64(1)
		if red.Den < 0 {
			den = -1
		}
		return fmt.Sprintf("%d", red.Num*den)
	}
	if red.Num < 0 {
		return fmt.Sprintf("-(%d/%d)", -red.Num, red.Den)
	}
	return fmt.Sprintf("(%d/%d)", red.Num, red.Den)
}

// abbrevBPU appends the exponent suffix to a BPU's basis-unit
// abbreviation: empty for exponent 1, "^n" for integer n, "^(n/d)" for a
// fractional exponent, with the sign carried on the numerator.
func abbrevBPU(b BPU) string {
	base := Abbrev(b.Unit)
	p := b.Power.Reduce()
	switch {
	case p.Num == 1 && p.Den == 1:
		return base
	case p.IsIntegral():
		den := int64(1)
		if p.Den < 0 {
			den = -1
		}
		return fmt.Sprintf("%s^%d", base, p.Num*den)
	default:
		num, den := p.Num, p.Den
		if den < 0 {
			num, den = -num, -den
		}
		return fmt.Sprintf("%s^(%d/%d)", base, num, den)
	}
}
