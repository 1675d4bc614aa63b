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
	"fmt"
	"strconv"

	"github.com/antst/hpthermo/internal/thermo"
	"github.com/antst/hpthermo/internal/units"

	"github.com/dustin/go-humanize"
)

// result is one printed line. human replaces value with --human; text
// replaces both for non-numeric results.
type result struct {
	label string
	value int64
	human string
	text  string
}

func (r result) format(human bool) string {
	switch {
	case r.text != "":
		return r.text
	case human:
		return r.human
	default:
		return strconv.FormatInt(r.value, 10)
	}
}

type command struct {
	params []string
	eval   func(c *thermo.Calculator, a []int64) result
}

func i16(v int64) units.Temperature { return units.Temperature(int16(v)) }

func temperature(label string, t units.Temperature) result {
	return result{label: label, value: int64(t), human: t.String()}
}

func pressure(label string, p units.Pressure) result {
	return result{label: label, value: int64(p), human: humanize.SIWithDigits(float64(p)*100, 2, "Pa")}
}

func power(p units.Power) result {
	return result{label: "Power", value: int64(p), human: humanize.SIWithDigits(float64(p), 2, "W")}
}

func plain(label string, v int64) result {
	return result{label: label, value: v, human: humanize.Comma(v)}
}

var twoTemps = []string{"evap_temperature", "cond_temperature"}
var powerParams = []string{"compressor_volume", "compressor_speed", "evap_temperature", "cond_temperature"}

var commands = map[string]command{
	"pressure_to_temperature": {
		params: []string{"pressure"},
		eval: func(c *thermo.Calculator, a []int64) result {
			return temperature("Temperature", c.PressureToTemperature(units.Pressure(a[0])))
		},
	},
	"temperature_to_pressure": {
		params: []string{"temperature"},
		eval: func(c *thermo.Calculator, a []int64) result {
			return pressure("Pressure", c.TemperatureToPressure(i16(a[0])))
		},
	},
	"gas_density": {
		params: []string{"evap_temperature"},
		eval: func(c *thermo.Calculator, a []int64) result {
			d := c.GasDensity(i16(a[0]))
			return result{label: "Density", value: int64(d), human: fmt.Sprintf("%.1f kg/m³", float64(d)/10)}
		},
	},
	"evaporation_dH": {
		params: twoTemps,
		eval: func(c *thermo.Calculator, a []int64) result {
			return plain("Enthalpy difference", int64(c.EvaporationDH(i16(a[0]), i16(a[1]))))
		},
	},
	"condensation_dH": {
		params: twoTemps,
		eval: func(c *thermo.Calculator, a []int64) result {
			return plain("Enthalpy difference", int64(c.CondensationDH(i16(a[0]), i16(a[1]))))
		},
	},
	"compressor_dH": {
		params: twoTemps,
		eval: func(c *thermo.Calculator, a []int64) result {
			return plain("Enthalpy difference", int64(c.CompressorDH(i16(a[0]), i16(a[1]))))
		},
	},
	"calculate_mass_rate": {
		params: []string{"compressor_volume", "compressor_speed", "refrigerant_temperature"},
		eval: func(c *thermo.Calculator, a []int64) result {
			m := c.MassRate(units.Volume(a[0]), units.Speed(a[1]), i16(a[2]))
			return result{label: "Mass flow rate", value: int64(m), human: fmt.Sprintf("%.1f g/s", float64(m)/10)}
		},
	},
	"calculate_evaporation_power": {
		params: powerParams,
		eval: func(c *thermo.Calculator, a []int64) result {
			return power(c.EvaporationPower(units.Volume(a[0]), units.Speed(a[1]), i16(a[2]), i16(a[3])))
		},
	},
	"calculate_condensation_power": {
		params: powerParams,
		eval: func(c *thermo.Calculator, a []int64) result {
			return power(c.CondensationPower(units.Volume(a[0]), units.Speed(a[1]), i16(a[2]), i16(a[3])))
		},
	},
	"calculate_compressor_power": {
		params: powerParams,
		eval: func(c *thermo.Calculator, a []int64) result {
			return power(c.CompressorPower(units.Volume(a[0]), units.Speed(a[1]), i16(a[2]), i16(a[3])))
		},
	},
	"calculate_discharge_target": {
		params: twoTemps,
		eval: func(c *thermo.Calculator, a []int64) result {
			return temperature("Discharge target", c.DischargeTarget(i16(a[0]), i16(a[1])))
		},
	},
	"calculate_UA": {
		params: []string{"power", "refrigerant_temperature", "medium_temperature"},
		eval: func(_ *thermo.Calculator, a []int64) result {
			ua := thermo.UA(units.Power(a[0]), i16(a[1]), i16(a[2]))
			return result{label: "UA", value: int64(ua), human: humanize.SIWithDigits(float64(ua), 2, "W/K")}
		},
	},
	"calculate_glycol_mixture_CP": {
		params: []string{"glycol_percentage"},
		eval: func(_ *thermo.Calculator, a []int64) result {
			cp := thermo.GlycolMixtureCP(units.Percentage(a[0]))
			return result{label: "CP", value: int64(cp), human: humanize.Comma(int64(cp)) + " J/(kg·K)"}
		},
	},
	"calculate_atmospheric_pressure": {
		params: []string{"altitude"},
		eval: func(_ *thermo.Calculator, a []int64) result {
			return pressure("Pressure", thermo.AtmosphericPressure(units.Altitude(a[0])))
		},
	},
	"refrigerant": {
		eval: func(c *thermo.Calculator, _ []int64) result {
			return result{label: "Refrigerant", text: c.RefrigerantName()}
		},
	},
}

// atoi parses like C atoi: optional leading blanks and sign, then digits up
// to the first non-digit. Anything unparsable is 0.
func atoi(s string) int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\v' || s[i] == '\f') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int64(s[i]-'0')
	}
	if neg {
		return -v
	}
	return v
}
