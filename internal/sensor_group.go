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

package internal

import (
	"strconv"
	"sync"
	"time"

	"github.com/antst/hpthermo/internal/config"
	"github.com/antst/hpthermo/internal/db"
	"github.com/antst/hpthermo/internal/logger"
	"github.com/antst/hpthermo/internal/safe_mqtt"
)

type averageFunc func([]*SensorController) (float64, time.Time)

var averageFuncs = map[string]averageFunc{
	config.DefaultAverageType: sensorsMean,
}

// SensorGroup averages the sensors that measure one circuit quantity.
type SensorGroup struct {
	name        string
	mu          sync.RWMutex
	averageType *string
	sensors     []*SensorController
	averageFunc averageFunc
	value       float64
	timestamp   time.Time
	childChan   chan bool
	controlChan chan<- *SensorGroup
}

func newSensorGroup(
	_name string, _cfgs []*config.SensorConfig, _averageType *string, _controlTopic string,
	_mqtt safe_mqtt.MqttClient, _store *db.Store, _controlChan chan<- *SensorGroup,
) *SensorGroup {
	g := &SensorGroup{
		name:        _name,
		averageType: _averageType,
		timestamp:   zeroTS,
		controlChan: _controlChan,
		childChan:   make(chan bool, childChanBuffer),
	}
	g.LinkAverageFun()

	g.sensors = make([]*SensorController, len(_cfgs))
	for i, sensor := range _cfgs {
		sName := g.name + "-"
		if sensor.Name == "" {
			sName += strconv.Itoa(i + 1)
		} else {
			sName += sensor.Name
		}
		g.sensors[i] = NewSensorController(sName, sensor, _controlTopic, _mqtt, _store, g.childChan)
	}

	go g.childProcessor()
	g.updateAverage()
	return g
}

func (g *SensorGroup) LinkAverageFun() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := averageFuncs[*g.averageType]; ok {
		g.averageFunc = f
		return
	}
	logger.L().Errorf("Unknown average function type: %v", *g.averageType)
	logger.L().Error("Reverting to the `mean`")
	*g.averageType = config.DefaultAverageType
	g.averageFunc = sensorsMean
}

func (g *SensorGroup) childProcessor() {
	for range g.childChan {
		g.updateAverage()
	}
}

func (g *SensorGroup) updateAverage() {
	g.mu.RLock()
	f := g.averageFunc
	g.mu.RUnlock()

	v, t := f(g.sensors)
	if t.After(zeroTS) {
		g.mu.Lock()
		g.timestamp = t
		g.value = v
		g.mu.Unlock()
		g.controlChan <- g
	}
}

// get returns the averaged value and whether any sensor has reported.
func (g *SensorGroup) get() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value, g.timestamp.After(zeroTS)
}
