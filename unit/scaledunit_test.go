// Copyright ©2024 The xo-unit-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rconybea/xo-unit-go/ratio"
	"github.com/Rconybea/xo-unit-go/unit"
)

func TestScaledUnitTrivialResidualsOnConstruction(t *testing.T) {
	km := unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)})
	su := unit.NewScaledUnit(km)
	assert.True(t, ratio.Equal(su.Exact, ratio.Unity[int64]()))
	assert.Equal(t, 1.0, su.InexactSq)
	assert.Equal(t, "km", su.Abbrev())
}

func TestScaledUnitMulAccumulatesResidual(t *testing.T) {
	meter := unit.NewScaledUnit(unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1, 1)}, Power: r(1, 1)}))
	km := unit.NewScaledUnit(unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)}))

	product := meter.Mul(km)
	assert.Equal(t, "m^2", product.Abbrev())
	assert.True(t, ratio.Equal(product.Exact, r(1000, 1)))
	assert.Equal(t, 1.0, product.InexactSq)
}

func TestScaledUnitDivDimensionlessResult(t *testing.T) {
	km := unit.NewScaledUnit(unit.NewNaturalUnit(unit.BPU{Unit: unit.BasisUnit{Dim: unit.DistanceDim, Scale: r(1000, 1)}, Power: r(1, 1)}))

	ratioUnit := km.Div(km)
	assert.True(t, ratioUnit.IsDimensionless())
	combined := ratioUnit.Exact.Float64() * math.Sqrt(ratioUnit.InexactSq)
	assert.InDelta(t, 1.0, combined, 1e-12)
}
