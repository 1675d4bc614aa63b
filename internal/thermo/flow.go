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

	"github.com/antst/hpthermo/internal/units"
)

// MassRate is the refrigerant mass flow through the compressor:
// volume*speed/100 saturated, times the suction gas density /1000, saturated.
func (c *Calculator) MassRate(volume units.Volume, speed units.Speed, evap units.Temperature) units.MassRate {
	volumeRate := min(int64(volume)*int64(speed)/100, math.MaxUint16)
	massRate := volumeRate * int64(c.GasDensity(evap)) / 1000
	return units.MassRate(units.ClampU16(massRate))
}

func (c *Calculator) power(
	volume units.Volume, speed units.Speed, evap, cond units.Temperature, dH EnthalpyFunc,
) units.Power {
	massRate := uint64(c.MassRate(volume, speed, evap))
	p := massRate * uint64(dH(evap, cond)) / 100
	return units.Power(min(p, math.MaxUint16))
}

// EvaporationPower is the heat taken up in the evaporator.
func (c *Calculator) EvaporationPower(volume units.Volume, speed units.Speed, evap, cond units.Temperature) units.Power {
	return c.power(volume, speed, evap, cond, c.EvaporationDH)
}

// CondensationPower is the heat released in the condenser.
func (c *Calculator) CondensationPower(volume units.Volume, speed units.Speed, evap, cond units.Temperature) units.Power {
	return c.power(volume, speed, evap, cond, c.CondensationDH)
}

// CompressorPower is the work done on the refrigerant by the compressor.
func (c *Calculator) CompressorPower(volume units.Volume, speed units.Speed, evap, cond units.Temperature) units.Power {
	return c.power(volume, speed, evap, cond, c.CompressorDH)
}

// DischargeTarget is the expected compressor discharge temperature. Only the
// upper side saturates.
func (c *Calculator) DischargeTarget(evap, cond units.Temperature) units.Temperature {
	return units.Temperature(units.ClampMaxI16(int64(c.coef.Discharge.Eval(evap, cond))))
}

// UA is the overall heat-transfer coefficient of an exchanger moving power
// between the refrigerant and a medium. The temperature difference is floored
// at units.MinDeltaT.
func UA(power units.Power, refrigerant, medium units.Temperature) units.Conductance {
	deltaT := max(int64(units.AbsDiff(refrigerant, medium)), units.MinDeltaT)
	return units.Conductance(units.ClampU16(int64(power) * 10 / deltaT))
}

