// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"errors"
	"math"

	"github.com/Rconybea/xo-unit-go/ratio"
)

// bpu1 builds the single-BPU NaturalUnit for one basis dimension at the
// given scale factor and unit power 1 — the common case behind every
// factory function in this file.
func bpu1(dim Dimension, scale R) NaturalUnit {
	return NewNaturalUnit(BPU{Unit: BasisUnit{Dim: dim, Scale: scale}, Power: ratio.Unity[int64]()})
}

func nativeUnit(dim Dimension) NaturalUnit {
	return bpu1(dim, s(1, 1))
}

// ---- Mass -------------------------------------------------------------

// Mass represents a mass in grams, the dimension's native unit. Distinct
// Go types per basis dimension give the single-dimension case
// compile-time checking for free: Mass + Duration simply does not
// type-check, the same way the teacher's Length/Mass/Time types do not.
type Mass float64

const (
	Picogram  Mass = 1e-12
	Nanogram  Mass = 1e-9
	Microgram Mass = 1e-6
	Milligram Mass = 1e-3
	Gram      Mass = 1
	Kilogram  Mass = 1e3
	Tonne     Mass = 1e6
	Kilotonne Mass = 1e9
	Megatonne Mass = 1e12
	Gigatonne Mass = 1e15
)

// Quantity converts m to the general Quantity representation, always at
// the gram (native) scale.
func (m Mass) Quantity() Quantity[float64] {
	return NewQuantity(float64(m), nativeUnit(MassDim))
}

// From converts a Quantity to a Mass, mirroring the teacher's
// (*Mass).From(Uniter) error: NaN payload and a non-nil error on a
// dimension mismatch, nothing thrown.
func (m *Mass) From(q Quantity[float64]) error {
	if !q.Unit().SameDimension(nativeUnit(MassDim)) {
		*m = Mass(math.NaN())
		return errors.New("unit: dimension mismatch converting to Mass")
	}
	*m = Mass(Rescale(q, nativeUnit(MassDim)).Value)
	return nil
}

// Each factory below constructs a Quantity carrying its own BasisUnit
// scale, not the native gram/meter/second scale: unit.Kilometers(2) reads
// back as "2km", not silently rescaled to "2000m". There is one factory
// per registry.go registration (§4.2).
func Picograms(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(MassDim, s(1, 1_000_000_000_000)))
}
func Nanograms(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(MassDim, s(1, 1_000_000_000)))
}
func Micrograms(x float64) Quantity[float64] { return NewQuantity(x, bpu1(MassDim, s(1, 1_000_000))) }
func Milligrams(x float64) Quantity[float64] { return NewQuantity(x, bpu1(MassDim, s(1, 1_000))) }
func Grams(x float64) Quantity[float64]      { return NewQuantity(x, bpu1(MassDim, s(1, 1))) }
func Kilograms(x float64) Quantity[float64]  { return NewQuantity(x, bpu1(MassDim, s(1_000, 1))) }
func Tonnes(x float64) Quantity[float64]     { return NewQuantity(x, bpu1(MassDim, s(1_000_000, 1))) }
func Kilotonnes(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(MassDim, s(1_000_000_000, 1)))
}
func Megatonnes(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(MassDim, s(1_000_000_000_000, 1)))
}
func Gigatonnes(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(MassDim, s(1_000_000_000_000_000, 1)))
}

// ---- Distance -----------------------------------------------------------

// Distance represents a length in meters, the dimension's native unit.
type Distance float64

const (
	Picometer   Distance = 1e-12
	Nanometer   Distance = 1e-9
	Micrometer  Distance = 1e-6
	Millimeter  Distance = 1e-3
	Centimeter  Distance = 1e-2
	Meter       Distance = 1
	Kilometer   Distance = 1e3
	Megameter   Distance = 1e6
	Gigameter   Distance = 1e9
	Inch        Distance = 0.0254
	Foot        Distance = 0.3048
	Yard        Distance = 0.9144
	Mile        Distance = 1609.344
	LightSecond Distance = 299_792_458
	AU          Distance = 149_597_870_700
)

func (d Distance) Quantity() Quantity[float64] {
	return NewQuantity(float64(d), nativeUnit(DistanceDim))
}

func (d *Distance) From(q Quantity[float64]) error {
	if !q.Unit().SameDimension(nativeUnit(DistanceDim)) {
		*d = Distance(math.NaN())
		return errors.New("unit: dimension mismatch converting to Distance")
	}
	*d = Distance(Rescale(q, nativeUnit(DistanceDim)).Value)
	return nil
}

func Picometers(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1, 1_000_000_000_000)))
}
func Nanometers(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1, 1_000_000_000)))
}
func Micrometers(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1, 1_000_000)))
}
func Millimeters(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1, 1_000)))
}
func Centimeters(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1, 100)))
}
func Meters(x float64) Quantity[float64] { return NewQuantity(x, bpu1(DistanceDim, s(1, 1))) }
func Kilometers(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1_000, 1)))
}
func Megameters(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1_000_000, 1)))
}
func Gigameters(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1_000_000_000, 1)))
}
func Inches(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(254, 10_000)))
}
func Feet(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(3_048, 10_000)))
}
func Yards(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(9_144, 10_000)))
}
func Miles(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(1_609_344, 1_000)))
}
func LightSeconds(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(299_792_458, 1)))
}
func AstronomicalUnits(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(DistanceDim, s(149_597_870_700, 1)))
}

// ---- Duration (time) ------------------------------------------------------

// Duration represents a time in seconds, the dimension's native unit.
// Named Duration rather than Time to avoid colliding with the standard
// library's time.Duration while still reading naturally at call sites
// ("unit.Hours(3)").
type Duration float64

const (
	Picosecond  Duration = 1e-12
	Nanosecond  Duration = 1e-9
	Microsecond Duration = 1e-6
	Millisecond Duration = 1e-3
	Second      Duration = 1
	Minute      Duration = 60
	Hour        Duration = 3600
	Day         Duration = 86400
	Week        Duration = 604800
	Year365     Duration = 31_536_000
)

func (d Duration) Quantity() Quantity[float64] {
	return NewQuantity(float64(d), nativeUnit(TimeDim))
}

func (d *Duration) From(q Quantity[float64]) error {
	if !q.Unit().SameDimension(nativeUnit(TimeDim)) {
		*d = Duration(math.NaN())
		return errors.New("unit: dimension mismatch converting to Duration")
	}
	*d = Duration(Rescale(q, nativeUnit(TimeDim)).Value)
	return nil
}

func Picoseconds(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(TimeDim, s(1, 1_000_000_000_000)))
}
func Nanoseconds(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(TimeDim, s(1, 1_000_000_000)))
}
func Microseconds(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(TimeDim, s(1, 1_000_000)))
}
func Milliseconds(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(TimeDim, s(1, 1_000)))
}
func Seconds(x float64) Quantity[float64] { return NewQuantity(x, bpu1(TimeDim, s(1, 1))) }
func Minutes(x float64) Quantity[float64] { return NewQuantity(x, bpu1(TimeDim, s(60, 1))) }
func Hours(x float64) Quantity[float64]   { return NewQuantity(x, bpu1(TimeDim, s(3_600, 1))) }
func Days(x float64) Quantity[float64]    { return NewQuantity(x, bpu1(TimeDim, s(86_400, 1))) }
func Weeks(x float64) Quantity[float64]   { return NewQuantity(x, bpu1(TimeDim, s(604_800, 1))) }

// Months30 is the registry's "mo30" unit: a 30-day month, the one
// registered time scale with no single natural Go identifier of its own.
func Months30(x float64) Quantity[float64] {
	return NewQuantity(x, bpu1(TimeDim, s(2_592_000, 1)))
}
func Years(x float64) Quantity[float64] { return NewQuantity(x, bpu1(TimeDim, s(31_536_000, 1))) }

// ---- Currency & Price -----------------------------------------------------

// Currency represents a monetary amount in the native currency unit.
// Concrete FX conversion between currency denominations is out of scope
// (§1): this dimension exists so that "amount per share" style prices
// (see Price) compose correctly in the unit algebra.
type Currency float64

func (c Currency) Quantity() Quantity[float64] {
	return NewQuantity(float64(c), nativeUnit(CurrencyDim))
}

func Dollars(x float64) Quantity[float64] { return NewQuantity(x, bpu1(CurrencyDim, s(1, 1))) }

// Price represents a per-share/per-instrument price, the dimension
// named "price" in §3's closed dimension set — distinct from Currency
// because a price is denominated per-unit rather than a bare amount.
type Price float64

func (p Price) Quantity() Quantity[float64] {
	return NewQuantity(float64(p), nativeUnit(PriceDim))
}

func DollarsPerShare(x float64) Quantity[float64] { return NewQuantity(x, bpu1(PriceDim, s(1, 1))) }

// ---- Compound helpers -----------------------------------------------------

// MetersPerSecond constructs a velocity quantity (distance^1 . time^-1).
func MetersPerSecond(x float64) Quantity[float64] {
	nu := NewNaturalUnit(
		BPU{Unit: BasisUnit{Dim: DistanceDim, Scale: s(1, 1)}, Power: ratio.Unity[int64]()},
		BPU{Unit: BasisUnit{Dim: TimeDim, Scale: s(1, 1)}, Power: ratio.New[int64](-1, 1)},
	)
	return NewQuantity(x, nu)
}

// MetersPerSecondSquared constructs an acceleration quantity (distance^1 . time^-2).
func MetersPerSecondSquared(x float64) Quantity[float64] {
	nu := NewNaturalUnit(
		BPU{Unit: BasisUnit{Dim: DistanceDim, Scale: s(1, 1)}, Power: ratio.Unity[int64]()},
		BPU{Unit: BasisUnit{Dim: TimeDim, Scale: s(1, 1)}, Power: ratio.New[int64](-2, 1)},
	)
	return NewQuantity(x, nu)
}
