// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/Rconybea/xo-unit-go/ratio"
)

// Numeric is the set of payload types a Quantity may carry.
type Numeric interface {
	constraints.Float
}

// Quantity pairs a numeric payload with a unit. Go has no const
// generics, so — per the REDESIGN note in §9 of SPEC_FULL.md — the unit
// is held as a runtime field rather than a type parameter: arithmetic
// between incompatible units is caught at the first operation rather
// than at compile time, and yields a NaN payload (§7 item 2) instead of
// a compiler diagnostic. The zero Quantity[R] is a dimensionless zero.
type Quantity[T Numeric] struct {
	unit  ScaledUnit
	Value T
}

// NewQuantity constructs a Quantity from a payload and a NaturalUnit.
func NewQuantity[T Numeric](value T, n NaturalUnit) Quantity[T] {
	return Quantity[T]{unit: NewScaledUnit(n), Value: value}
}

// NewScaledQuantity constructs a Quantity from a payload and a
// ScaledUnit directly, for the rare case where the caller already holds
// accumulated residuals (e.g. after a rescale_ext chain).
func NewScaledQuantity[T Numeric](value T, su ScaledUnit) Quantity[T] {
	return Quantity[T]{unit: su, Value: value}
}

// Unit returns q's unit as a NaturalUnit, discarding any residual
// factors (which are always trivial on a well-formed, user-constructed
// Quantity).
func (q Quantity[T]) Unit() NaturalUnit {
	return q.unit.Nat
}

// Abbrev returns the short text form of q's unit.
func (q Quantity[T]) Abbrev() string {
	return q.unit.Abbrev()
}

// nanQuantity returns a Quantity holding math.NaN() in T, used for the runtime
// dimension-mismatch regime (§7 item 2): no exception, no panic, just a
// value the caller can test with IsNaN.
func nanQuantity[T Numeric](unit ScaledUnit) Quantity[T] {
	return Quantity[T]{unit: unit, Value: T(math.NaN())}
}

// IsNaN reports whether q's payload is NaN, the library's signal for a
// runtime unit mismatch.
func (q Quantity[T]) IsNaN() bool {
	return math.IsNaN(float64(q.Value))
}

// Rescale re-expresses q in terms of the NaturalUnit target, per §4.5.
// If target does not denote the same dimension as q, the result carries
// a NaN payload — this is the runtime-unit-mismatch regime, not a panic.
func Rescale[T Numeric](q Quantity[T], target NaturalUnit) Quantity[T] {
	ratioNat, exact, inexactSq := q.unit.Nat.Div(target)
	if !ratioNat.IsDimensionless() {
		return nanQuantity[T](NewScaledUnit(target))
	}
	combinedExact := ratio.Mul(q.unit.Exact, exact)
	combinedInexactSq := q.unit.InexactSq * inexactSq
	factor := combinedExact.Float64()
	if combinedInexactSq != 1.0 {
		factor *= math.Sqrt(combinedInexactSq)
	}
	return Quantity[T]{unit: NewScaledUnit(target), Value: T(float64(q.Value) * factor)}
}

// RescaleExt is Rescale's extended form: the target is itself a
// ScaledUnit, and its own outer residuals are divided out of the
// result rather than assumed trivial.
func RescaleExt[T Numeric](q Quantity[T], target ScaledUnit) Quantity[T] {
	out := Rescale(q, target.Nat)
	if out.IsNaN() {
		return out
	}
	factor := 1.0 / target.Exact.Float64()
	if target.InexactSq != 1.0 {
		factor /= math.Sqrt(target.InexactSq)
	}
	out.Value = T(float64(out.Value) * factor)
	out.unit = target
	return out
}

// Scalar extracts the bare numeric payload of a dimensionless Quantity.
// It is the explicit analogue of the library's implicit
// dimensionless-to-scalar conversion (§9): Go has no implicit
// conversions to abuse here, so the extraction is a method that can
// fail, rather than a silent cast.
func (q Quantity[T]) Scalar() (T, error) {
	if !q.unit.IsDimensionless() {
		return T(math.NaN()), fmt.Errorf("unit: %v is not dimensionless", q)
	}
	// The zero Quantity leaves its residuals unset (Exact 0/0); treat them
	// as trivial so that it reads back as zero.
	factor := 1.0
	if q.unit.Exact.Den != 0 {
		factor = q.unit.Exact.Float64() * math.Sqrt(q.unit.InexactSq)
	}
	return T(float64(q.Value) * factor), nil
}

// Mul returns the product of q and other: unit is the product of the
// operand units, payload is the product of the operand payloads scaled
// by the residual outer factors the unit product emits.
func (q Quantity[T]) Mul(other Quantity[T]) Quantity[T] {
	u := q.unit.Mul(other.unit)
	factor := u.Exact.Float64() * math.Sqrt(u.InexactSq)
	return Quantity[T]{
		unit:  NewScaledUnit(u.Nat),
		Value: T(float64(q.Value) * float64(other.Value) * factor),
	}
}

// Div returns the ratio of q and other, symmetric with Mul via unit
// ratio.
func (q Quantity[T]) Div(other Quantity[T]) Quantity[T] {
	u := q.unit.Div(other.unit)
	factor := u.Exact.Float64() * math.Sqrt(u.InexactSq)
	return Quantity[T]{
		unit:  NewScaledUnit(u.Nat),
		Value: T(float64(q.Value) / float64(other.Value) * factor),
	}
}

// Add returns q + other. Per §4.5 and the REDESIGN note, the *left*
// operand's unit wins: other is rescaled into q's unit (after confirming
// same-dimension agreement) before the payloads are summed, so the
// result reads in the unit q was written in. If q and other do not
// denote the same dimension, the result carries a NaN payload.
func (q Quantity[T]) Add(other Quantity[T]) Quantity[T] {
	if !q.unit.Nat.SameDimension(other.unit.Nat) {
		return nanQuantity[T](q.unit)
	}
	rescaledOther := Rescale(other, q.unit.Nat)
	return Quantity[T]{unit: q.unit, Value: q.Value + rescaledOther.Value}
}

// Sub is symmetric with Add.
func (q Quantity[T]) Sub(other Quantity[T]) Quantity[T] {
	if !q.unit.Nat.SameDimension(other.unit.Nat) {
		return nanQuantity[T](q.unit)
	}
	rescaledOther := Rescale(other, q.unit.Nat)
	return Quantity[T]{unit: q.unit, Value: q.Value - rescaledOther.Value}
}

// Cmp three-way compares q and other by rescaling other into q's unit
// (the same left-operand-wins asymmetry as Add) and then comparing
// payloads. It returns (0, false) if the units do not denote the same
// dimension.
func (q Quantity[T]) Cmp(other Quantity[T]) (result int, ok bool) {
	if !q.unit.Nat.SameDimension(other.unit.Nat) {
		return 0, false
	}
	rescaledOther := Rescale(other, q.unit.Nat)
	switch {
	case q.Value < rescaledOther.Value:
		return -1, true
	case q.Value > rescaledOther.Value:
		return 1, true
	default:
		return 0, true
	}
}

// Equal reports whether q and other are equal after rescaling other into
// q's unit, so that e.g. 1 km == 1000 m. It falls through to the same
// rescale-then-compare path as Cmp regardless of whether the two units
// share a scale factor.
func (q Quantity[T]) Equal(other Quantity[T]) bool {
	result, ok := q.Cmp(other)
	return ok && result == 0
}

// String implements fmt.Stringer, producing "<payload><abbreviation>"
// with no separator (e.g. "1.5kg", "2.3m.s^-1"), per §6.
func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v%s", q.Value, q.unit.Nat.Abbrev())
}

// Format implements fmt.Formatter the way the teacher's Length/Mass/Time
// types do, so %v, %g, %e etc. all render the payload followed by the
// unit abbreviation.
func (q Quantity[T]) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		w, wOk := fs.Width()
		verb := c
		if c == 'v' {
			verb = 'g'
		}
		switch {
		case pOk && wOk:
			fmt.Fprintf(fs, "%*.*"+string(verb), w, p, float64(q.Value))
		case pOk:
			fmt.Fprintf(fs, "%.*"+string(verb), p, float64(q.Value))
		case wOk:
			fmt.Fprintf(fs, "%*"+string(verb), w, float64(q.Value))
		default:
			fmt.Fprintf(fs, "%"+string(verb), float64(q.Value))
		}
		fmt.Fprint(fs, q.unit.Nat.Abbrev())
	default:
		fmt.Fprintf(fs, "%%!%c(unit.Quantity=%g%s)", c, float64(q.Value), q.unit.Nat.Abbrev())
	}
}

// LogFormat writes q to w in the same "<payload><abbreviation>" form as
// String, for callers that already hold a Writer (a log sink, a diagnostic
// dump) and would otherwise wrap String in a throwaway Fprint. The library
// performs no I/O of its own; this is the one optional write path, the
// Quantity-level analogue of the teacher's Format method rather than a
// logger of its own.
func (q Quantity[T]) LogFormat(w io.Writer) error {
	_, err := io.WriteString(w, q.String())
	return err
}
