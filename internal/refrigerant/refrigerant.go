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

// Package refrigerant holds the saturation tables and regression coefficients
// of the supported refrigerants.
package refrigerant

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Refrigerant identifies one of the supported refrigerants.
type Refrigerant int

const (
	R410A Refrigerant = iota + 1
	R32
	R290
)

var names = map[Refrigerant]string{
	R410A: "R410A",
	R32:   "R32",
	R290:  "R290",
}

// All lists the supported refrigerants in declaration order.
func All() []Refrigerant {
	return []Refrigerant{R410A, R32, R290}
}

func (r Refrigerant) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return "unknown"
}

// Parse accepts a refrigerant name, case-insensitively, with or without a dash ("r-32").
func Parse(s string) (Refrigerant, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for r, n := range names {
		if n == key {
			return r, nil
		}
	}
	return 0, errors.Errorf("unsupported refrigerant `%s`", s)
}

func (r Refrigerant) MarshalYAML() (interface{}, error) {
	if _, ok := names[r]; !ok {
		return nil, errors.Errorf("unsupported refrigerant %d", int(r))
	}
	return r.String(), nil
}

func (r *Refrigerant) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, "refrigerant must be a string")
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Resolution selects the number of points in the saturation tables.
type Resolution int

const (
	Coarse Resolution = 10
	Fine   Resolution = 15
)

// ParseResolution accepts "coarse", "fine", or the point count.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coarse", "10":
		return Coarse, nil
	case "fine", "15":
		return Fine, nil
	}
	return 0, errors.Errorf("unsupported table resolution `%s`", s)
}

func (r Resolution) String() string {
	switch r {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	}
	return "unknown"
}

func (r Resolution) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r *Resolution) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseResolution(node.Value)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
