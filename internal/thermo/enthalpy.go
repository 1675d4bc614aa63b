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
	"github.com/antst/hpthermo/internal/refrigerant"
	"github.com/antst/hpthermo/internal/units"
)

// EnthalpyFunc is one of the enthalpy-difference regressions of a Calculator.
type EnthalpyFunc func(evap, cond units.Temperature) units.Enthalpy

func enthalpy(l refrigerant.Linear, evap, cond units.Temperature) units.Enthalpy {
	return units.Enthalpy(units.ClampU16(int64(l.Eval(evap, cond))))
}

// EvaporationDH is the enthalpy gained across the evaporator.
func (c *Calculator) EvaporationDH(evap, cond units.Temperature) units.Enthalpy {
	return enthalpy(c.coef.Evaporation, evap, cond)
}

// CondensationDH is the enthalpy released across the condenser.
func (c *Calculator) CondensationDH(evap, cond units.Temperature) units.Enthalpy {
	return enthalpy(c.coef.Condensation, evap, cond)
}

// CompressorDH is the enthalpy added by the compressor.
func (c *Calculator) CompressorDH(evap, cond units.Temperature) units.Enthalpy {
	return enthalpy(c.coef.Compressor, evap, cond)
}
