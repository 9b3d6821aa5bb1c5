// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rconybea/xo-unit-go/unit"
)

func TestAbbrevRegisteredBasisUnit(t *testing.T) {
	km := unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}
	assert.Equal(t, "km", unit.Abbrev(km))

	hr := unit.BasisUnit{Dim: unit.TimeDim, Scale: r(3600, 1)}
	assert.Equal(t, "h", unit.Abbrev(hr))

	ccy := unit.BasisUnit{Dim: unit.CurrencyDim, Scale: r(1, 1)}
	assert.Equal(t, "ccy", unit.Abbrev(ccy))
}

func TestAbbrevUnregisteredScaleSynthesizesName(t *testing.T) {
	weird := unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(7, 1)}
	assert.Equal(t, "7m", unit.Abbrev(weird))

	fractional := unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 3)}
	assert.Equal(t, "(1/3)m", unit.Abbrev(fractional))
}

func TestAbbrevIntegerExponentSuffix(t *testing.T) {
	km := unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(2, 1)}
	nu := unit.NewNaturalUnit(km)
	assert.Equal(t, "km^2", nu.Abbrev())
}

func TestAbbrevFractionalExponentSuffix(t *testing.T) {
	half := unit.BPU{Unit: unit.BasisUnit{Dim: unit.TimeDim, Scale: r(1, 1)}, Power: r(1, 2)}
	nu := unit.NewNaturalUnit(half)
	assert.Equal(t, "s^(1/2)", nu.Abbrev())
}

func TestAbbrevUnitExponentHasNoSuffix(t *testing.T) {
	meter := unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 1)}, Power: r(1, 1)}
	nu := unit.NewNaturalUnit(meter)
	assert.Equal(t, "m", nu.Abbrev())
}
