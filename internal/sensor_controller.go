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
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/antst/hpthermo/internal/config"
	"github.com/antst/hpthermo/internal/db"
	"github.com/antst/hpthermo/internal/logger"
	"github.com/antst/hpthermo/internal/safe_mqtt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	epsilon             = 1e-10
	sensorControlSuffix = "/sensors/"
)

type SensorController struct {
	name        string
	log         *zap.SugaredLogger
	lock        sync.RWMutex
	cfg         *config.SensorConfig
	store       *db.Store
	value       float64
	timestamp   time.Time
	controlChan chan<- bool
}

func NewSensorController(
	_name string, _cfg *config.SensorConfig, _controlTopic string, _mqtt safe_mqtt.MqttClient, _store *db.Store,
	_controlChan chan<- bool,
) *SensorController {
	s := &SensorController{
		name:        _name,
		log:         logger.Named("sensor").With("sensor", _name),
		cfg:         _cfg,
		store:       _store,
		timestamp:   zeroTS,
		controlChan: _controlChan,
	}

	if s.readState() {
		s.log.Debugf("Loaded previous state from DB: %v", s.value)
		s.timestamp = time.Now()
	}

	_mqtt.SafeSubscribe(_cfg.Topic, mqttQoS, s.ValueUpdateHandler)
	sensorGroup := _controlTopic + sensorControlSuffix + s.name + "/"
	_mqtt.SafeSubscribe(sensorGroup+"offset", mqttQoS, s.controlUpdateHandler)
	_mqtt.SafeSubscribe(sensorGroup+"weight", mqttQoS, s.controlUpdateHandler)
	_mqtt.SafeSubscribe(sensorGroup+"scale", mqttQoS, s.controlUpdateHandler)

	return s
}

func (s *SensorController) ValueUpdateHandler(client mqtt.Client, message mqtt.Message) {
	t0, err := extractF64PlainOrJson(message, s.cfg.JSONEntry)
	if err != nil {
		s.log.Error(err)
		return
	}
	s.lock.Lock()
	oldValue := s.value
	s.value = t0*(*s.cfg.Scale) + (*s.cfg.Offset)
	s.timestamp = time.Now()
	newValue := s.value
	s.lock.Unlock()
	if err := s.writeState(); err != nil {
		s.log.Error(err)
	}
	s.log.Debugf("Got value %f", newValue)
	if oldValue != newValue {
		s.controlChan <- true
	}
}

// Value returns the last scaled reading and when it arrived.
func (s *SensorController) Value() (float64, time.Time) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.value, s.timestamp
}

func (s *SensorController) writeState() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.store.UpsertSensorValue(
		context.Background(), db.UpsertSensorValueParams{SensorName: s.name, Value: s.value, UpdatedAt: s.timestamp},
	)
}

func (s *SensorController) readState() bool {
	val, err := s.store.GetSensorValue(context.Background(), s.name)
	if err != nil {
		return false
	}
	s.value = val
	return true
}

func (s *SensorController) controlUpdateHandler(client mqtt.Client, message mqtt.Message) {
	topic := lastTopicSegment(message.Topic())
	s.log.Infof("Got MQTT control request: %v : %v", topic, string(message.Payload()))

	value, err := strconv.ParseFloat(string(message.Payload()), 64)
	if err != nil {
		s.log.Error(err)
		return
	}

	s.lock.Lock()
	switch topic {
	case "weight":
		s.cfg.Weight = &value
	case "offset":
		s.cfg.Offset = &value
	case "scale":
		s.cfg.Scale = &value
	default:
		s.lock.Unlock()
		s.log.Errorf("Unknown control topic: %s", topic)
		return
	}
	s.lock.Unlock()

	s.log.Infof("Updated %s to %v", topic, value)
}

func sensorsMean(sensors []*SensorController) (float64, time.Time) {
	var v, wt float64
	latest := zeroTS

	for _, sensor := range sensors {
		sensor.lock.RLock()
		if sensor.timestamp.After(zeroTS) {
			weight := *sensor.cfg.Weight
			v += sensor.value * weight
			wt += weight
			if sensor.timestamp.After(latest) {
				latest = sensor.timestamp
			}
		}
		sensor.lock.RUnlock()
	}

	if wt < epsilon {
		return 0, zeroTS
	}

	return v / wt, latest
}
