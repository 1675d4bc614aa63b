/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPTHERMO project.
 *
 * HPTHERMO is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hpthermo/internal/refrigerant"
	"github.com/antst/hpthermo/internal/units"
)

func newCalc(t *testing.T, r refrigerant.Refrigerant, res refrigerant.Resolution) *Calculator {
	c, err := NewFor(r, res)
	require.NoError(t, err)
	return c
}

func TestRefrigerantName(t *testing.T) {
	for _, r := range refrigerant.All() {
		assert.Equal(t, r.String(), newCalc(t, r, refrigerant.Fine).RefrigerantName())
	}
	_, err := NewFor(refrigerant.Refrigerant(9), refrigerant.Fine)
	assert.Error(t, err)
}

func TestCalculatorsDoNotShareTables(t *testing.T) {
	a := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	b := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	before := b.PressureToTemperature(1000)

	a.Properties().Table.Temperature[0] = 999
	assert.Equal(t, before, b.PressureToTemperature(1000))
	assert.Equal(t, units.Temperature(-400), a.PressureToTemperature(1000))

	p := refrigerant.MustLookup(refrigerant.R410A, refrigerant.Fine)
	c := New(p)
	p.Table.Temperature[0] = 999
	assert.Equal(t, units.Temperature(-400), c.PressureToTemperature(1000))
}

func TestPressureToTemperatureR410A(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)

	assert.Equal(t, units.Temperature(-400), c.PressureToTemperature(1748))
	assert.Equal(t, units.Temperature(713), c.PressureToTemperature(49012))

	mid := c.PressureToTemperature(2000)
	assert.Greater(t, mid, units.Temperature(-400))
	assert.Less(t, mid, units.Temperature(-320))
	// -400 + (2000-1748)*80/(2469-1748)
	assert.Equal(t, units.Temperature(-373), mid)

	coarse := newCalc(t, refrigerant.R410A, refrigerant.Coarse)
	// -400 + (2000-1748)*124/(2967-1748)
	assert.Equal(t, units.Temperature(-375), coarse.PressureToTemperature(2000))
}

func TestBoundaryClamp(t *testing.T) {
	for _, r := range refrigerant.All() {
		for _, res := range []refrigerant.Resolution{refrigerant.Coarse, refrigerant.Fine} {
			c := newCalc(t, r, res)
			tab := c.Properties().Table
			last := tab.Len() - 1

			for _, p := range []units.Pressure{0, 1, tab.Pressure[0] - 1, tab.Pressure[0]} {
				assert.Equal(t, tab.Temperature[0], c.PressureToTemperature(p))
			}
			for _, p := range []units.Pressure{tab.Pressure[last], tab.Pressure[last] + 1, math.MaxUint16} {
				assert.Equal(t, tab.Temperature[last], c.PressureToTemperature(p))
			}
			assert.Equal(t, tab.Pressure[0], c.TemperatureToPressure(math.MinInt16))
			assert.Equal(t, tab.Pressure[last], c.TemperatureToPressure(math.MaxInt16))
			assert.Equal(t, tab.Density[0], c.GasDensity(-1000))
			assert.Equal(t, tab.Density[last], c.GasDensity(1500))
		}
	}
}

func TestMonotonicAndInverse(t *testing.T) {
	for _, r := range refrigerant.All() {
		for _, res := range []refrigerant.Resolution{refrigerant.Coarse, refrigerant.Fine} {
			c := newCalc(t, r, res)
			tab := c.Properties().Table

			prev := c.TemperatureToPressure(-500)
			for temp := units.Temperature(-499); temp <= 1000; temp++ {
				p := c.TemperatureToPressure(temp)
				require.GreaterOrEqual(t, p, prev, "%v %v at %v", r, res, temp)
				prev = p
			}

			maxStep := 0
			for i := 1; i < tab.Len(); i++ {
				maxStep = max(maxStep, int(tab.Pressure[i])-int(tab.Pressure[i-1]))
			}
			for _, p := range tab.Pressure {
				back := c.TemperatureToPressure(c.PressureToTemperature(p))
				assert.Equal(t, p, back, "table node %v", p)
			}
			for p := tab.Pressure[0]; p < tab.Pressure[tab.Len()-1]; p += 97 {
				back := c.TemperatureToPressure(c.PressureToTemperature(p))
				assert.LessOrEqual(t, absInt(int(back)-int(p)), maxStep)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestGasDensity(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	// 178 + 62*55/80
	assert.Equal(t, units.Density(220), c.GasDensity(-100))
	assert.Equal(t, units.Density(303), c.GasDensity(-2))
}

func TestEnthalpy(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	assert.Equal(t, units.Enthalpy(1516), c.EvaporationDH(-100, 400))
	assert.Equal(t, units.Enthalpy(2050), c.CondensationDH(-100, 400))
	assert.Equal(t, units.Enthalpy(535), c.CompressorDH(-100, 400))
}

func TestEnthalpySaturation(t *testing.T) {
	r410a := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	assert.Zero(t, r410a.EvaporationDH(0, math.MaxInt16))
	assert.Zero(t, r410a.CondensationDH(math.MaxInt16, math.MaxInt16))
	assert.Zero(t, r410a.CompressorDH(100, 0))
	assert.Equal(t, units.Enthalpy(math.MaxUint16), r410a.CompressorDH(math.MinInt16, math.MaxInt16))

	r290 := newCalc(t, refrigerant.R290, refrigerant.Fine)
	assert.Equal(t, units.Enthalpy(math.MaxUint16), r290.EvaporationDH(math.MaxInt16, math.MinInt16))
}

func TestMassRate(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	// 300*500/100 = 1500, 1500*220/1000
	assert.Equal(t, units.MassRate(330), c.MassRate(300, 500, -100))
	assert.Zero(t, c.MassRate(0, 500, -100))
	assert.Zero(t, c.MassRate(300, 0, -100))

	// volume rate saturates, mass rate does not: 65535*70/1000
	assert.Equal(t, units.MassRate(4587), c.MassRate(math.MaxUint16, math.MaxUint16, -400))
	assert.Equal(t, units.MassRate(math.MaxUint16), c.MassRate(math.MaxUint16, math.MaxUint16, 800))
}

func TestPowers(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	assert.Equal(t, units.Power(5002), c.EvaporationPower(300, 500, -100, 400))
	assert.Equal(t, units.Power(6765), c.CondensationPower(300, 500, -100, 400))
	assert.Equal(t, units.Power(1765), c.CompressorPower(300, 500, -100, 400))
	assert.Equal(t, units.Power(math.MaxUint16), c.CondensationPower(math.MaxUint16, math.MaxUint16, 800, 0))
}

func TestPowerComposition(t *testing.T) {
	for _, r := range refrigerant.All() {
		c := newCalc(t, r, refrigerant.Fine)
		for _, v := range []units.Volume{50, 148, 300, 1200} {
			for _, s := range []units.Speed{100, 450, 900, 1200} {
				for et := units.Temperature(-300); et <= 100; et += 55 {
					for ct := units.Temperature(150); ct <= 600; ct += 75 {
						m := uint64(c.MassRate(v, s, et))
						want := func(dH units.Enthalpy) units.Power {
							return units.Power(min(m*uint64(dH)/100, math.MaxUint16))
						}
						assert.Equal(t, want(c.EvaporationDH(et, ct)), c.EvaporationPower(v, s, et, ct))
						assert.Equal(t, want(c.CondensationDH(et, ct)), c.CondensationPower(v, s, et, ct))
						assert.Equal(t, want(c.CompressorDH(et, ct)), c.CompressorPower(v, s, et, ct))
					}
				}
			}
		}
	}
}

func TestDischargeTarget(t *testing.T) {
	c := newCalc(t, refrigerant.R410A, refrigerant.Fine)
	// 608 + 7700/100 + 61600/100
	assert.Equal(t, units.Temperature(1301), c.DischargeTarget(-100, 400))
	assert.Equal(t, units.Temperature(math.MaxInt16), c.DischargeTarget(math.MinInt16, math.MaxInt16))
	// negative targets are passed through
	assert.Equal(t, units.Temperature(-1702), c.DischargeTarget(1000, -1000))
	// and are not clamped below: -75084 narrows to -9548
	assert.Equal(t, units.Temperature(-9548), c.DischargeTarget(math.MaxInt16, math.MinInt16))
}

func TestUA(t *testing.T) {
	assert.Equal(t, units.Conductance(100), UA(1000, 400, 300))
	assert.Equal(t, units.Conductance(100), UA(1000, 300, 400))
	// zero and tiny differences use the 0.5 °C floor
	assert.Equal(t, units.Conductance(2000), UA(1000, 300, 300))
	assert.Equal(t, units.Conductance(2000), UA(1000, 300, 302))
	assert.Equal(t, units.Conductance(math.MaxUint16), UA(math.MaxUint16, 0, 1))
	assert.Zero(t, UA(1000, math.MinInt16, math.MaxInt16))
}

func TestGlycolMixtureCP(t *testing.T) {
	assert.Equal(t, units.HeatCapacity(4182), GlycolMixtureCP(0))
	assert.Equal(t, units.HeatCapacity(3663), GlycolMixtureCP(30))
	assert.Equal(t, units.HeatCapacity(2452), GlycolMixtureCP(100))
	assert.Equal(t, units.HeatCapacity(2450), GlycolMixtureCP(101))
	assert.Equal(t, units.HeatCapacity(2450), GlycolMixtureCP(math.MaxUint16))
	assert.Equal(t, GlycolMixtureCP(42), GlycolMixtureCP(42))
}

func TestAtmosphericPressure(t *testing.T) {
	assert.Equal(t, units.Pressure(1004), AtmosphericPressure(0))
	assert.Equal(t, units.Pressure(962), AtmosphericPressure(420))
	assert.Equal(t, units.Pressure(504), AtmosphericPressure(5000))
	assert.Equal(t, units.Pressure(500), AtmosphericPressure(5001))
	assert.Equal(t, units.Pressure(500), AtmosphericPressure(math.MaxUint16))
	assert.Equal(t, AtmosphericPressure(1234), AtmosphericPressure(1234))
}
