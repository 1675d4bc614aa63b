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

package config

import (
	"github.com/pkg/errors"
)

// CircuitConfig describes the refrigerant circuit and where its readings come
// from. After scale and offset, pressures are in mbar, speeds in Hz,
// temperatures in °C.
type CircuitConfig struct {
	CompressorVolume     float64         `yaml:"compressor_volume"`
	GlycolPercentage     float64         `yaml:"glycol_percentage"`
	Altitude             float64         `yaml:"altitude"`
	GaugePressure        bool            `yaml:"gauge_pressure"`
	AverageType          string          `yaml:"average_type"`
	EvaporationPressure  []*SensorConfig `yaml:"evaporation_pressure"`
	CondensationPressure []*SensorConfig `yaml:"condensation_pressure"`
	CompressorSpeed      []*SensorConfig `yaml:"compressor_speed"`
	MediumInlet          []*SensorConfig `yaml:"medium_inlet,omitempty"`
	MediumOutlet         []*SensorConfig `yaml:"medium_outlet,omitempty"`
	SourceTemperature    []*SensorConfig `yaml:"source_temperature,omitempty"`
}

func NewCircuitConfig() *CircuitConfig {
	cfg := &CircuitConfig{}
	cfg.FillDefaults()
	return cfg
}

func (c *CircuitConfig) FillDefaults() {
	if c.AverageType == "" {
		c.AverageType = DefaultAverageType
	}
	for _, group := range c.Groups() {
		fillSensorDefaults(group)
	}
}

// Groups returns the sensor lists keyed by reading name.
func (c *CircuitConfig) Groups() map[string][]*SensorConfig {
	return map[string][]*SensorConfig{
		"evaporation_pressure":  c.EvaporationPressure,
		"condensation_pressure": c.CondensationPressure,
		"compressor_speed":      c.CompressorSpeed,
		"medium_inlet":          c.MediumInlet,
		"medium_outlet":         c.MediumOutlet,
		"source_temperature":    c.SourceTemperature,
	}
}

func (c *CircuitConfig) Validate() error {
	if c.CompressorVolume <= 0 {
		return errors.Errorf("compressor_volume must be positive, got %v", c.CompressorVolume)
	}
	if c.GlycolPercentage < 0 {
		return errors.Errorf("glycol_percentage must not be negative, got %v", c.GlycolPercentage)
	}
	for name, group := range map[string][]*SensorConfig{
		"evaporation_pressure":  c.EvaporationPressure,
		"condensation_pressure": c.CondensationPressure,
		"compressor_speed":      c.CompressorSpeed,
	} {
		if len(group) == 0 {
			return errors.Errorf("circuit.%s needs at least one sensor", name)
		}
		for i, s := range group {
			if s.Topic == "" {
				return errors.Errorf("circuit.%s[%d]: empty topic", name, i)
			}
		}
	}
	return nil
}
