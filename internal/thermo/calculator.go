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

// Package thermo computes refrigerant-circuit quantities in fixed-point
// arithmetic. All inputs and results are scaled 16-bit integers from package
// units; out-of-range inputs clamp and overflowing results saturate.
package thermo

import (
	"github.com/antst/hpthermo/internal/interp"
	"github.com/antst/hpthermo/internal/refrigerant"
	"github.com/antst/hpthermo/internal/units"
)

// Calculator evaluates property formulas for the refrigerant it was built
// with. It owns a private copy of its tables, holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	props *refrigerant.Properties
	table *refrigerant.Table
	coef  *refrigerant.Coefficients
}

// New binds a calculator to a copy of a property bundle obtained from
// refrigerant.Lookup. Later changes to p do not affect the calculator.
func New(p *refrigerant.Properties) *Calculator {
	own := p.Clone()
	return &Calculator{props: own, table: &own.Table, coef: &own.Coefficients}
}

// NewFor looks up the refrigerant tables and binds a calculator to them.
func NewFor(r refrigerant.Refrigerant, res refrigerant.Resolution) (*Calculator, error) {
	p, err := refrigerant.Lookup(r, res)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Properties returns a copy of the bound property bundle.
func (c *Calculator) Properties() *refrigerant.Properties {
	return c.props.Clone()
}

// RefrigerantName returns the name of the active refrigerant.
func (c *Calculator) RefrigerantName() string {
	return c.props.Name()
}

// PressureToTemperature converts a saturation pressure to its temperature.
func (c *Calculator) PressureToTemperature(p units.Pressure) units.Temperature {
	return interp.Linear(c.table.Pressure, c.table.Temperature, p)
}

// TemperatureToPressure converts a saturation temperature to its pressure.
func (c *Calculator) TemperatureToPressure(t units.Temperature) units.Pressure {
	return interp.Linear(c.table.Temperature, c.table.Pressure, t)
}

// GasDensity returns the saturated vapour density at the evaporation
// temperature, assuming no superheat.
func (c *Calculator) GasDensity(evap units.Temperature) units.Density {
	return interp.Linear(c.table.Temperature, c.table.Density, evap)
}
