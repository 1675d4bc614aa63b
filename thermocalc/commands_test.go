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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"thermocalc"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"pressure_to_temperature", "1748"}, "Temperature: -400\n"},
		{[]string{"pressure_to_temperature", "49012"}, "Temperature: 713\n"},
		{[]string{"pressure_to_temperature", "2000"}, "Temperature: -373\n"},
		{[]string{"temperature_to_pressure", "-400"}, "Pressure: 1748\n"},
		{[]string{"gas_density", "-100"}, "Density: 220\n"},
		{[]string{"calculate_evaporation_power", "300", "500", "-100", "400"}, "Power: 5002\n"},
		{[]string{"calculate_discharge_target", "-100", "400"}, "Discharge target: 1301\n"},
		{[]string{"calculate_UA", "1000", "100", "100"}, "UA: 2000\n"},
		{[]string{"calculate_glycol_mixture_CP", "101"}, "CP: 2450\n"},
		{[]string{"calculate_glycol_mixture_CP", "0"}, "CP: 4182\n"},
		{[]string{"calculate_atmospheric_pressure", "0"}, "Pressure: 1004\n"},
		{[]string{"calculate_atmospheric_pressure", "5001"}, "Pressure: 500\n"},
		{[]string{"refrigerant"}, "Refrigerant: R410A\n"},
		{[]string{"-r", "r32", "refrigerant"}, "Refrigerant: R32\n"},
		{[]string{"--refrigerant=R-290", "--tables", "coarse", "refrigerant"}, "Refrigerant: R290\n"},
		// 65136 wraps to -400
		{[]string{"temperature_to_pressure", "65136"}, "Pressure: 1748\n"},
		{[]string{"pressure_to_temperature", "1748abc"}, "Temperature: -400\n"},
		{[]string{"calculate_UA", "1000", "x", "100"}, "UA: 100\n"},
	}
	for _, tt := range tests {
		code, out, errOut := runCLI(tt.args...)
		assert.Equal(t, 0, code, "%v: %s", tt.args, errOut)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestHumanOutput(t *testing.T) {
	code, out, _ := runCLI("-H", "pressure_to_temperature", "1748")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Temperature: -40.0°C\n", out)

	code, out, _ = runCLI("--human", "refrigerant")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Refrigerant: R410A\n", out)
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"no_such_function", "1"},
		{"evaporation_dH", "-100"},
		{"calculate_evaporation_power", "300", "500", "-100"},
		{"-r", "R22", "refrigerant"},
		{"-t", "medium", "refrigerant"},
		{"-x", "refrigerant"},
	}
	for _, args := range tests {
		code, out, errOut := runCLI(args...)
		assert.Equal(t, 1, code, "%v", args)
		assert.Empty(t, out, "%v", args)
		assert.NotEmpty(t, errOut, "%v", args)
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI("-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "calculate_atmospheric_pressure <altitude>")
	assert.Contains(t, out, "refrigerant")
}

func TestAtoi(t *testing.T) {
	assert.Equal(t, int64(42), atoi("42"))
	assert.Equal(t, int64(-17), atoi("  -17x"))
	assert.Equal(t, int64(5), atoi("+5"))
	assert.Equal(t, int64(0), atoi("abc"))
	assert.Equal(t, int64(0), atoi(""))
}
