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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/antst/hpthermo/internal/units"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]Refrigerant{
		"R410A": R410A,
		"r410a": R410A,
		"R-32":  R32,
		" r290": R290,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("R134a")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "R410A", R410A.String())
	assert.Equal(t, "R32", R32.String())
	assert.Equal(t, "R290", R290.String())
	assert.Equal(t, "unknown", Refrigerant(0).String())
}

func TestYAML(t *testing.T) {
	var cfg struct {
		Refrigerant Refrigerant `yaml:"refrigerant"`
		Resolution  Resolution  `yaml:"table_resolution"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("refrigerant: r32\ntable_resolution: 10\n"), &cfg))
	assert.Equal(t, R32, cfg.Refrigerant)
	assert.Equal(t, Coarse, cfg.Resolution)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "refrigerant: R32\ntable_resolution: coarse\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("refrigerant: R22\n"), &cfg))
	assert.Error(t, yaml.Unmarshal([]byte("table_resolution: 12\n"), &cfg))
}

func TestLookupAll(t *testing.T) {
	for _, r := range All() {
		for _, res := range []Resolution{Coarse, Fine} {
			p, err := Lookup(r, res)
			require.NoError(t, err)
			assert.Equal(t, int(res), p.Table.Len())
			assert.Equal(t, r.String(), p.Name())
			assert.Equal(t, units.Temperature(-400), p.Table.Temperature[0])
			assert.Zero(t, p.Coefficients.Compressor.A)
		}
	}
}

func TestResolutionsShareEndpoints(t *testing.T) {
	for _, r := range All() {
		c, f := MustLookup(r, Coarse).Table, MustLookup(r, Fine).Table
		assert.Equal(t, c.Pressure[0], f.Pressure[0])
		assert.Equal(t, c.Pressure[c.Len()-1], f.Pressure[f.Len()-1])
		assert.Equal(t, c.Temperature[c.Len()-1], f.Temperature[f.Len()-1])
		assert.Equal(t, c.Density[c.Len()-1], f.Density[f.Len()-1])
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(Refrigerant(42), Fine)
	assert.Error(t, err)
	_, err = Lookup(R32, Resolution(12))
	assert.Error(t, err)
	assert.Panics(t, func() { MustLookup(Refrigerant(0), Coarse) })
}

func TestTableValidate(t *testing.T) {
	assert.Error(t, (&Table{}).Validate())
	assert.Error(t, (&Table{
		Pressure:    []units.Pressure{1, 2},
		Temperature: []units.Temperature{1, 2},
		Density:     []units.Density{1},
	}).Validate())
	assert.Error(t, (&Table{
		Pressure:    []units.Pressure{1, 2},
		Temperature: []units.Temperature{2, 2},
		Density:     []units.Density{1, 2},
	}).Validate())
	assert.Error(t, (&Table{
		Pressure:    []units.Pressure{3, 2},
		Temperature: []units.Temperature{1, 2},
		Density:     []units.Density{1, 2},
	}).Validate())
	assert.NoError(t, (&Table{
		Pressure:    []units.Pressure{7},
		Temperature: []units.Temperature{7},
		Density:     []units.Density{7},
	}).Validate())
}

func TestLinearEval(t *testing.T) {
	l := Linear{A: 2220, B: 222, C: -1705, Scale: 1000}
	// 2220 + 222*(-100)/1000 + (-1705)*400/1000 = 2220 - 22 - 682
	assert.Equal(t, int32(1516), l.Eval(-100, 400))
	// each term truncates on its own: 222*-4/1000 = 0, -1705*1/1000 = -1
	assert.Equal(t, int32(2219), l.Eval(-4, 1))
}

func TestLookupReturnsPrivateCopy(t *testing.T) {
	a := MustLookup(R410A, Fine)
	a.Table.Temperature[0] = 999
	a.Table.Pressure[1] = 1
	a.Table.Density[2] = 0

	b := MustLookup(R410A, Fine)
	assert.Equal(t, units.Temperature(-400), b.Table.Temperature[0])
	assert.Equal(t, units.Pressure(2469), b.Table.Pressure[1])
	assert.Equal(t, units.Density(133), b.Table.Density[2])
	require.NoError(t, b.Validate())

	c := b.Clone()
	c.Table.Temperature[0] = 999
	assert.Equal(t, units.Temperature(-400), b.Table.Temperature[0])
}
