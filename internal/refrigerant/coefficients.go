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

package refrigerant

import (
	"github.com/pkg/errors"

	"github.com/antst/hpthermo/internal/units"
)

// Linear is a two-variable linear regression A + B*x/Scale + C*y/Scale. Each
// term is truncated separately.
type Linear struct {
	A     int32
	B     int32
	C     int32
	Scale int32
}

// Eval evaluates the regression in a signed 32-bit intermediate.
func (l Linear) Eval(x, y units.Temperature) int32 {
	return l.A + l.B*int32(x)/l.Scale + l.C*int32(y)/l.Scale
}

// Coefficients are the per-refrigerant regressions over evaporation and
// condensation temperature.
type Coefficients struct {
	// Enthalpy differences, 100 J per 0.1 g.
	Evaporation  Linear
	Condensation Linear
	Compressor   Linear
	// Discharge temperature target, 0.1 °C.
	Discharge Linear
}

func (c *Coefficients) validate() error {
	for _, l := range []Linear{c.Evaporation, c.Condensation, c.Compressor, c.Discharge} {
		if l.Scale <= 0 {
			return errors.Errorf("coefficient scale must be positive, got %d", l.Scale)
		}
	}
	return nil
}

const (
	enthalpyScale  = 1000
	dischargeScale = 100
)

var coefficients = map[Refrigerant]Coefficients{
	R410A: {
		Evaporation:  Linear{A: 2220, B: 222, C: -1705, Scale: enthalpyScale},
		Condensation: Linear{A: 2230, B: -941, C: -687, Scale: enthalpyScale},
		Compressor:   Linear{B: -1175, C: 1047, Scale: enthalpyScale},
		Discharge:    Linear{A: 608, B: -77, C: 154, Scale: dischargeScale},
	},
	R32: {
		Evaporation:  Linear{A: 3160, B: 48, C: -1993, Scale: enthalpyScale},
		Condensation: Linear{A: 3170, B: -1698, C: -468, Scale: enthalpyScale},
		Compressor:   Linear{B: -1755, C: 1548, Scale: enthalpyScale},
		Discharge:    Linear{A: 75, B: -139, C: 196, Scale: dischargeScale},
	},
	R290: {
		Evaporation:  Linear{A: 3808, B: 975, C: -2945, Scale: enthalpyScale},
		Condensation: Linear{A: 3874, B: -752, C: -1482, Scale: enthalpyScale},
		Compressor:   Linear{B: -1766, C: 1588, Scale: enthalpyScale},
		Discharge:    Linear{A: 64, B: -38, C: 119, Scale: dischargeScale},
	},
}
