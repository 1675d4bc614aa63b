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

// Package interp implements piecewise-linear lookup over fixed-point tables.
package interp

import "github.com/antst/hpthermo/internal/units"

// Linear maps x from the strictly ascending axis onto dep, which must have the
// same length. Inputs at or beyond either end of the axis return the matching
// end of dep. Between nodes the result is
//
//	dep[i-1] + (x - axis[i-1]) * (dep[i] - dep[i-1]) / (axis[i] - axis[i-1])
//
// with a 64-bit intermediate and division truncated toward zero.
func Linear[X, Y units.Scaled](axis []X, dep []Y, x X) Y {
	last := len(axis) - 1
	if x <= axis[0] {
		return dep[0]
	}
	if x >= axis[last] {
		return dep[last]
	}
	for i := 1; i <= last; i++ {
		if x < axis[i] {
			x0, x1 := int64(axis[i-1]), int64(axis[i])
			y0, y1 := int64(dep[i-1]), int64(dep[i])
			return Y(y0 + (int64(x)-x0)*(y1-y0)/(x1-x0))
		}
	}
	// only reachable with a non-ascending axis
	return dep[last]
}
