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

	"github.com/antst/hpthermo/internal/config"
	"github.com/antst/hpthermo/internal/logger"
	"github.com/antst/hpthermo/internal/safe_mqtt"
	"github.com/antst/hpthermo/internal/thermo"
)

const performanceTopic = "/performance"

// PerformancePublisher pushes computed circuit state to the broker: the full
// JSON document plus plain per-value topics for dashboards.
type PerformancePublisher struct {
	lock sync.Mutex
	cfg  *config.MQTTConfig
	mqtt safe_mqtt.MqttClient
}

func NewPerformancePublisher(_cfg *config.MQTTConfig, _mqtt safe_mqtt.MqttClient) *PerformancePublisher {
	return &PerformancePublisher{cfg: _cfg, mqtt: _mqtt}
}

func (p *PerformancePublisher) Publish(perf *thermo.Performance) {
	p.lock.Lock()
	defer p.lock.Unlock()

	base := p.cfg.ControlTopic + performanceTopic
	if err := p.mqtt.SafePublishJSON(base, mqttQoS, true, perf); err != nil {
		logger.L().Error(err)
	}

	values := []struct {
		name  string
		value int
	}{
		{"evaporation_temperature", int(perf.EvaporationTemp)},
		{"condensation_temperature", int(perf.CondensationTemp)},
		{"evaporation_power", int(perf.EvaporationPower)},
		{"condensation_power", int(perf.CondensationPower)},
		{"compressor_power", int(perf.CompressorPower)},
		{"cop", int(perf.COP)},
		{"discharge_target", int(perf.DischargeTarget)},
	}
	for _, v := range values {
		if token := p.mqtt.SafePublish(
			base+"/"+v.name, mqttQoS, true, strconv.Itoa(v.value),
		); token.Wait() && token.Error() != nil {
			logger.L().Error(token.Error())
		}
	}
}
