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

const (
	waterCP       = 4182
	glycolCPSlope = 173 // per 10 %
	pureGlycolCP  = 2450

	seaLevelPressure  = 1004
	maxAltitude       = 5000
	highAltitudeFloor = 500
)

// GlycolMixtureCP is the specific heat of a water/glycol mixture, ethylene or
// propylene. Shares above 100 % return the pure glycol value.
func GlycolMixtureCP(glycol units.Percentage) units.HeatCapacity {
	if glycol > 100 {
		return pureGlycolCP
	}
	return units.HeatCapacity(waterCP - glycolCPSlope*uint32(glycol)/10)
}

// AtmosphericPressure approximates the ambient pressure at an altitude.
// Altitudes above 5000 m return 500 mbar.
func AtmosphericPressure(altitude units.Altitude) units.Pressure {
	if altitude > maxAltitude {
		return highAltitudeFloor
	}
	return units.Pressure(seaLevelPressure - altitude/10)
}
