// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rconybea/xo-unit-go/ratio"
	"github.com/Rconybea/xo-unit-go/unit"
)

func TestNaturalUnitEmptyIsDimensionless(t *testing.T) {
	var nu unit.NaturalUnit
	assert.True(t, nu.IsDimensionless())
	assert.Equal(t, 0, nu.Len())
	assert.Equal(t, "", nu.Abbrev())
}

func TestNaturalUnitMulCommutesUpToDimension(t *testing.T) {
	km := unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)}
	hr := unit.BPU{Unit: unit.BasisUnit{Dim: unit.TimeDim, Scale: r(3600, 1)}, Power: r(-1, 1)}

	kmPerHour := unit.NewNaturalUnit(km, hr)
	kmPerHourReordered := unit.NewNaturalUnit(hr, km)

	assert.Equal(t, 2, kmPerHour.Len())
	assert.Equal(t, 2, kmPerHourReordered.Len())
	assert.True(t, kmPerHour.Equal(kmPerHourReordered))
}

func TestNaturalUnitProductOfReciprocalsIsDimensionless(t *testing.T) {
	km := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)})
	perKm := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(-1, 1)})

	result, exact, inexactSq := km.Mul(perKm)
	assert.True(t, result.IsDimensionless())
	assert.True(t, ratio.Equal(exact, ratio.Unity[int64]()))
	assert.Equal(t, 1.0, inexactSq)
}

func TestNaturalUnitMulKilometerTimesKilometerAbbrev(t *testing.T) {
	km := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)})
	result, _, _ := km.Mul(km)
	assert.Equal(t, "km^2", result.Abbrev())
}

func TestNaturalUnitMeterTimesKilometerEmitsResidual(t *testing.T) {
	meter := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 1)}, Power: r(1, 1)})
	km := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)})

	result, exact, inexactSq := meter.Mul(km)
	assert.Equal(t, "m^2", result.Abbrev())
	assert.True(t, ratio.Equal(exact, r(1000, 1)))
	assert.Equal(t, 1.0, inexactSq)
}

func TestNaturalUnitSameDimensionIgnoresScale(t *testing.T) {
	meter := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 1)}, Power: r(1, 1)})
	km := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)})
	assert.True(t, meter.SameDimension(km))
	assert.False(t, meter.Equal(km))
}

func TestNaturalUnitCompoundAbbrevJoinsWithDot(t *testing.T) {
	m := unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 1)}, Power: r(1, 1)}
	perS := unit.BPU{Unit: unit.BasisUnit{Dim: unit.TimeDim, Scale: r(1, 1)}, Power: r(-1, 1)}
	nu := unit.NewNaturalUnit(m, perS)
	assert.Equal(t, "m.s^-1", nu.Abbrev())
}
