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
)

// Properties bundles the table and coefficients of one refrigerant. Every
// Lookup returns a private copy of the built-in data.
type Properties struct {
	Refrigerant  Refrigerant
	Resolution   Resolution
	Table        Table
	Coefficients Coefficients
}

// Name returns the refrigerant name, e.g. "R410A".
func (p *Properties) Name() string {
	return p.Refrigerant.String()
}

// Lookup resolves a refrigerant and table resolution into its property bundle.
func Lookup(r Refrigerant, res Resolution) (*Properties, error) {
	byRes, ok := tables[r]
	if !ok {
		return nil, errors.Errorf("unsupported refrigerant %v", r)
	}
	table, ok := byRes[res]
	if !ok {
		return nil, errors.Errorf("no %v table for %v", res, r)
	}
	p := &Properties{
		Refrigerant:  r,
		Resolution:   res,
		Table:        table.Clone(),
		Coefficients: coefficients[r],
	}
	if err := p.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "%v/%v", r, res)
	}
	return p, nil
}

// Clone returns a deep copy of p.
func (p *Properties) Clone() *Properties {
	c := *p
	c.Table = p.Table.Clone()
	return &c
}

// MustLookup is Lookup for statically known arguments.
func MustLookup(r Refrigerant, res Resolution) *Properties {
	p, err := Lookup(r, res)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks table shape and coefficient scales.
func (p *Properties) Validate() error {
	if err := p.Table.Validate(); err != nil {
		return err
	}
	return p.Coefficients.validate()
}
