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

import "github.com/antst/hpthermo/internal/units"

// OperatingPoint is one set of circuit readings. Pressures are absolute.
// Medium and source temperatures are optional.
type OperatingPoint struct {
	CompressorVolume     units.Volume
	CompressorSpeed      units.Speed
	EvaporationPressure  units.Pressure
	CondensationPressure units.Pressure
	MediumInlet          *units.Temperature
	MediumOutlet         *units.Temperature
	SourceTemperature    *units.Temperature
	GlycolPercentage     units.Percentage
}

// Performance is the circuit state derived from an OperatingPoint.
type Performance struct {
	Refrigerant       string             `json:"refrigerant"`
	EvaporationTemp   units.Temperature  `json:"evaporation_temperature"`
	CondensationTemp  units.Temperature  `json:"condensation_temperature"`
	GasDensity        units.Density      `json:"gas_density"`
	MassRate          units.MassRate     `json:"mass_rate"`
	EvaporationDH     units.Enthalpy     `json:"evaporation_dh"`
	CondensationDH    units.Enthalpy     `json:"condensation_dh"`
	CompressorDH      units.Enthalpy     `json:"compressor_dh"`
	EvaporationPower  units.Power        `json:"evaporation_power"`
	CondensationPower units.Power        `json:"condensation_power"`
	CompressorPower   units.Power        `json:"compressor_power"`
	COP               uint16             `json:"cop"`
	DischargeTarget   units.Temperature  `json:"discharge_target"`
	MediumCP          units.HeatCapacity `json:"medium_cp"`
	CondenserUA       *units.Conductance `json:"condenser_ua,omitempty"`
	EvaporatorUA      *units.Conductance `json:"evaporator_ua,omitempty"`
	MediumMassRate    *units.MassRate    `json:"medium_mass_rate,omitempty"`
}

// COP is the heating coefficient of performance in 0.01 units. A stopped
// compressor yields 0.
func COP(heating, work units.Power) uint16 {
	if work == 0 {
		return 0
	}
	return units.ClampU16(int64(heating) * 100 / int64(work))
}

// MediumMassRate is the flow of a medium with specific heat cp that carries
// power across a temperature rise deltaT (0.1 °C), in 0.1 g/s.
func MediumMassRate(power units.Power, cp units.HeatCapacity, inlet, outlet units.Temperature) units.MassRate {
	deltaT := int64(units.AbsDiff(inlet, outlet))
	if deltaT == 0 || cp == 0 {
		return 0
	}
	return units.MassRate(units.ClampU16(int64(power) * 100000 / (int64(cp) * deltaT)))
}

// Evaluate derives the full circuit state for one operating point.
func (c *Calculator) Evaluate(op OperatingPoint) Performance {
	evap := c.PressureToTemperature(op.EvaporationPressure)
	cond := c.PressureToTemperature(op.CondensationPressure)
	vol, speed := op.CompressorVolume, op.CompressorSpeed

	res := Performance{
		Refrigerant:       c.RefrigerantName(),
		EvaporationTemp:   evap,
		CondensationTemp:  cond,
		GasDensity:        c.GasDensity(evap),
		MassRate:          c.MassRate(vol, speed, evap),
		EvaporationDH:     c.EvaporationDH(evap, cond),
		CondensationDH:    c.CondensationDH(evap, cond),
		CompressorDH:      c.CompressorDH(evap, cond),
		EvaporationPower:  c.EvaporationPower(vol, speed, evap, cond),
		CondensationPower: c.CondensationPower(vol, speed, evap, cond),
		CompressorPower:   c.CompressorPower(vol, speed, evap, cond),
		DischargeTarget:   c.DischargeTarget(evap, cond),
		MediumCP:          GlycolMixtureCP(op.GlycolPercentage),
	}
	res.COP = COP(res.CondensationPower, res.CompressorPower)

	if op.MediumOutlet != nil {
		ua := UA(res.CondensationPower, cond, *op.MediumOutlet)
		res.CondenserUA = &ua
		if op.MediumInlet != nil {
			flow := MediumMassRate(res.CondensationPower, res.MediumCP, *op.MediumInlet, *op.MediumOutlet)
			res.MediumMassRate = &flow
		}
	}
	if op.SourceTemperature != nil {
		ua := UA(res.EvaporationPower, evap, *op.SourceTemperature)
		res.EvaporatorUA = &ua
	}
	return res
}
