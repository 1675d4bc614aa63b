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

// Package units defines the scaled-integer quantities exchanged with the
// refrigerant calculator. Every quantity is a 16-bit integer with a fixed
// scale factor; intermediate arithmetic is done in wider types and saturated
// back with the helpers below.
package units

import (
	"fmt"
	"math"
)

// Temperature is a temperature in 0.1 °C.
type Temperature int16

// Pressure is an absolute pressure in mbar.
type Pressure uint16

// Density is a vapour density in 0.1 kg/m³.
type Density uint16

// Enthalpy is a specific enthalpy difference in 100 J per 0.1 g.
type Enthalpy uint16

// Volume is a compressor displacement in 0.1 cm³.
type Volume uint16

// Speed is a compressor speed in 0.1 Hz.
type Speed uint16

// MassRate is a refrigerant mass flow in 0.1 g/s.
type MassRate uint16

// Power is a thermal or mechanical power in W.
type Power uint16

// Conductance is an overall heat-transfer coefficient (UA) in W/°C.
type Conductance uint16

// HeatCapacity is a specific heat in J/kg·K.
type HeatCapacity uint16

// Percentage is a share in whole percent.
type Percentage uint16

// Altitude is a height above sea level in m.
type Altitude uint16

// Scaled is satisfied by every 16-bit scaled quantity.
type Scaled interface {
	~int16 | ~uint16
}

// MinDeltaT is the smallest temperature difference, in 0.1 °C, used as a divisor.
const MinDeltaT = 5

// ClampU16 saturates v into [0, 65535].
func ClampU16(v int64) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// ClampMaxI16 saturates v at 32767. The lower side is not clamped: values
// below -32768 narrow to int16 the same way the firmware arithmetic does.
func ClampMaxI16(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

// AbsDiff returns |a - b| in 0.1 °C without 16-bit overflow.
func AbsDiff(a, b Temperature) int32 {
	d := int32(a) - int32(b)
	if d < 0 {
		return -d
	}
	return d
}

func (t Temperature) String() string {
	sign := ""
	v := int32(t)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%d°C", sign, v/10, v%10)
}

func (p Pressure) String() string {
	return fmt.Sprintf("%dmbar", uint16(p))
}

func roundClamp(v, lo, hi float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < lo {
		return int64(lo)
	}
	if v > hi {
		return int64(hi)
	}
	return int64(v)
}

func unsigned(v float64) uint16 {
	return uint16(roundClamp(v, 0, math.MaxUint16))
}

// TemperatureFromCelsius converts a reading in °C.
func TemperatureFromCelsius(c float64) Temperature {
	return Temperature(roundClamp(c*10, math.MinInt16, math.MaxInt16))
}

// Celsius returns t in °C.
func (t Temperature) Celsius() float64 {
	return float64(t) / 10
}

// PressureFromMillibar converts a reading in mbar.
func PressureFromMillibar(mbar float64) Pressure {
	return Pressure(unsigned(mbar))
}

// SpeedFromHertz converts a compressor speed in Hz.
func SpeedFromHertz(hz float64) Speed {
	return Speed(unsigned(hz * 10))
}

// VolumeFromCubicCentimetres converts a displacement in cm³.
func VolumeFromCubicCentimetres(cc float64) Volume {
	return Volume(unsigned(cc * 10))
}

// PercentageFrom converts a share in percent.
func PercentageFrom(v float64) Percentage {
	return Percentage(unsigned(v))
}

// AltitudeFromMetres converts a height in m.
func AltitudeFromMetres(m float64) Altitude {
	return Altitude(unsigned(m))
}
