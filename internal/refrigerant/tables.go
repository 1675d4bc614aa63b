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
	"slices"

	"github.com/pkg/errors"

	"github.com/antst/hpthermo/internal/units"
)

// Table is a saturation curve sampled at ascending temperatures. The three
// slices are index aligned.
type Table struct {
	Pressure    []units.Pressure
	Temperature []units.Temperature
	Density     []units.Density
}

// Len returns the number of points.
func (t *Table) Len() int {
	return len(t.Temperature)
}

// Clone returns a copy that shares no storage with t.
func (t *Table) Clone() Table {
	return Table{
		Pressure:    slices.Clone(t.Pressure),
		Temperature: slices.Clone(t.Temperature),
		Density:     slices.Clone(t.Density),
	}
}

// Validate checks that the table can be interpolated in both directions.
func (t *Table) Validate() error {
	n := len(t.Temperature)
	if n == 0 {
		return errors.New("empty table")
	}
	if len(t.Pressure) != n || len(t.Density) != n {
		return errors.Errorf(
			"misaligned table: %d pressures, %d temperatures, %d densities",
			len(t.Pressure), n, len(t.Density),
		)
	}
	for i := 1; i < n; i++ {
		if t.Temperature[i] <= t.Temperature[i-1] {
			return errors.Errorf("temperature not ascending at index %d: %v <= %v", i, t.Temperature[i], t.Temperature[i-1])
		}
		if t.Pressure[i] <= t.Pressure[i-1] {
			return errors.Errorf("pressure not ascending at index %d: %v <= %v", i, t.Pressure[i], t.Pressure[i-1])
		}
	}
	return nil
}

// Points from -40 °C up to just below the critical point. Coarse tables have
// 10 points, fine tables 15 points over the same range.
var tables = map[Refrigerant]map[Resolution]Table{
	R410A: {
		Coarse: {
			Pressure:    []units.Pressure{1748, 2967, 4756, 7272, 10684, 15182, 20974, 28307, 37490, 49012},
			Temperature: []units.Temperature{-400, -276, -153, -29, 95, 219, 342, 466, 590, 713},
			Density:     []units.Density{70, 116, 183, 278, 413, 600, 868, 1266, 1931, 4605},
		},
		Fine: {
			Pressure: []units.Pressure{
				1748, 2469, 3411, 4611, 6098, 7920, 10126, 12764, 15900, 19606, 23906, 28872, 34602, 41254, 49012,
			},
			Temperature: []units.Temperature{
				-400, -320, -241, -162, -82, -2, 77, 156, 236, 316, 395, 474, 554, 634, 713,
			},
			Density: []units.Density{
				70, 97, 133, 178, 233, 303, 390, 498, 631, 801, 1016, 1294, 1654, 2457, 4605,
			},
		},
	},
	R32: {
		Coarse: {
			Pressure:    []units.Pressure{1774, 3105, 5104, 7968, 11912, 17176, 24029, 32782, 43826, 57826},
			Temperature: []units.Temperature{-400, -269, -138, -6, 125, 256, 387, 519, 650, 781},
			Density:     []units.Density{51, 86, 139, 216, 326, 482, 706, 1043, 1610, 4240},
		},
		Fine: {
			Pressure: []units.Pressure{
				1774, 2563, 3604, 4943, 6621, 8705, 11268, 14363, 18059, 22431, 27526, 33454, 40373, 48436, 57826,
			},
			Temperature: []units.Temperature{
				-400, -316, -231, -147, -63, 22, 106, 190, 275, 359, 444, 528, 612, 697, 781,
			},
			Density: []units.Density{
				51, 72, 99, 135, 180, 236, 308, 397, 509, 651, 831, 1065, 1368, 2099, 4240,
			},
		},
	},
	R290: {
		Coarse: {
			Pressure:    []units.Pressure{1111, 2049, 3497, 5606, 8536, 12462, 17569, 24072, 32236, 42512},
			Temperature: []units.Temperature{-400, -248, -96, 56, 208, 360, 512, 664, 815, 967},
			Density:     []units.Density{26, 47, 77, 122, 185, 273, 398, 581, 885, 2205},
		},
		Fine: {
			Pressure: []units.Pressure{
				1111, 1662, 2403, 3371, 4607, 6153, 8051, 10350, 13097, 16342, 20138, 24560, 29703, 35654, 42512,
			},
			Temperature: []units.Temperature{
				-400, -302, -205, -107, -9, 88, 186, 283, 381, 479, 576, 674, 772, 869, 967,
			},
			Density: []units.Density{
				26, 39, 54, 74, 101, 134, 174, 225, 288, 367, 466, 593, 758, 1141, 2205,
			},
		},
	},
}
