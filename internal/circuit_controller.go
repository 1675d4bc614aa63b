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
	"strings"
	"sync"
	"time"

	"github.com/antst/hpthermo/internal/config"
	"github.com/antst/hpthermo/internal/db"
	"github.com/antst/hpthermo/internal/logger"
	"github.com/antst/hpthermo/internal/safe_mqtt"
	"github.com/antst/hpthermo/internal/thermo"
	"github.com/antst/hpthermo/internal/units"

	"github.com/dustin/go-humanize"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	timerDuration  = 50 * time.Millisecond
	tickerDuration = 30 * time.Second
	enabledKey     = "enabled"

	historyRetention = 30 * 24 * time.Hour

	groupEvaporationPressure  = "evaporation_pressure"
	groupCondensationPressure = "condensation_pressure"
	groupCompressorSpeed      = "compressor_speed"
	groupMediumInlet          = "medium_inlet"
	groupMediumOutlet         = "medium_outlet"
	groupSourceTemperature    = "source_temperature"
)

// CircuitController turns live circuit readings into performance figures.
type CircuitController struct {
	mu        sync.Mutex
	log       *zap.SugaredLogger
	cfg       *config.Config
	calc      *thermo.Calculator
	store     *db.Store
	mqtt      safe_mqtt.MqttClient
	publisher *PerformancePublisher
	groups    map[string]*SensorGroup
	groupChan chan *SensorGroup
	forceChan chan bool
	enabled   bool
	last      *thermo.Performance
}

func NewCircuitController() *CircuitController {
	cfg := config.Get()

	props, err := cfg.Properties()
	if err != nil {
		logger.L().Panic(err)
	}
	store, err := db.OpenDatabase(cfg.DBFile)
	if err != nil {
		logger.L().Panic(err)
	}
	client := safe_mqtt.InitMQTTClient(cfg.MQTTConfig.URL, safe_mqtt.ClientID("circuit"))

	return newCircuitController(cfg, thermo.New(props), store, client)
}

func newCircuitController(
	cfg *config.Config, calc *thermo.Calculator, store *db.Store, client safe_mqtt.MqttClient,
) *CircuitController {
	c := &CircuitController{
		log:       logger.Named("circuit"),
		cfg:       cfg,
		calc:      calc,
		store:     store,
		mqtt:      client,
		publisher: NewPerformancePublisher(cfg.MQTTConfig, client),
		groups:    make(map[string]*SensorGroup),
		groupChan: make(chan *SensorGroup, 100),
		forceChan: make(chan bool, 2),
	}

	c.log.Infof(
		"Refrigerant %s with %v tables (%d points)",
		calc.RefrigerantName(), calc.Properties().Resolution, calc.Properties().Table.Len(),
	)

	c.setupMQTTSubscriptions()
	c.initializeGroups()
	c.setEnabled(c.readValueWithDefault(enabledKey, "true"))
	return c
}

func (c *CircuitController) setupMQTTSubscriptions() {
	controlTopic := c.cfg.MQTTConfig.ControlTopic
	for _, name := range []string{
		"log_level", "enable", "glycol_percentage", "compressor_volume", "altitude", "average_type",
	} {
		c.mqtt.SafeSubscribe(controlTopic+"/"+name, mqttQoS, c.controlUpdateHandler)
	}
}

func (c *CircuitController) initializeGroups() {
	for name, sensors := range c.cfg.Circuit.Groups() {
		if len(sensors) == 0 {
			continue
		}
		c.groups[name] = newSensorGroup(
			name, sensors, &c.cfg.Circuit.AverageType, c.cfg.MQTTConfig.ControlTopic, c.mqtt, c.store, c.groupChan,
		)
	}
}

func (c *CircuitController) Run(ctx context.Context) {
	timer := time.NewTimer(timerDuration)
	ticker := time.NewTicker(tickerDuration)
	defer timer.Stop()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Circuit controller stopped")
			return
		case <-c.forceChan:
			c.resetTimer(timer)
		case <-c.groupChan:
			c.resetTimer(timer)
		case <-timer.C:
			c.update(ctx)
		case <-ticker.C:
			c.update(ctx)
			c.prune(ctx, time.Now().Add(-historyRetention))
		}
	}
}

func (c *CircuitController) resetTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(timerDuration)
}

func (c *CircuitController) force() {
	select {
	case c.forceChan <- true:
	default:
	}
}

func (c *CircuitController) isEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *CircuitController) update(ctx context.Context) {
	if !c.isEnabled() {
		return
	}

	op, ok := c.operatingPoint()
	if !ok {
		c.log.Debug("Waiting for pressure and compressor speed readings")
		return
	}

	perf := c.calc.Evaluate(op)
	c.log.Infof(
		"Circuit: Te=%.1f°C Tc=%.1f°C heating %s, cooling %s, compressor %s, COP %.2f",
		perf.EvaporationTemp.Celsius(), perf.CondensationTemp.Celsius(),
		humanize.SIWithDigits(float64(perf.CondensationPower), 2, "W"),
		humanize.SIWithDigits(float64(perf.EvaporationPower), 2, "W"),
		humanize.SIWithDigits(float64(perf.CompressorPower), 2, "W"),
		float64(perf.COP)/100,
	)

	c.publisher.Publish(&perf)
	if err := c.store.InsertPerformance(ctx, time.Now(), &perf); err != nil {
		c.log.Error(err)
	}

	c.mu.Lock()
	c.last = &perf
	c.mu.Unlock()
}

func (c *CircuitController) prune(ctx context.Context, before time.Time) {
	n, err := c.store.PrunePerformance(ctx, before)
	if err != nil {
		c.log.Error(err)
		return
	}
	if n > 0 {
		c.log.Debugf("Pruned %d performance records older than %s", n, humanize.Time(before))
	}
}

// Last returns the most recent performance snapshot, if any.
func (c *CircuitController) Last() (thermo.Performance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return thermo.Performance{}, false
	}
	return *c.last, true
}

func (c *CircuitController) operatingPoint() (thermo.OperatingPoint, bool) {
	evap, okE := c.reading(groupEvaporationPressure)
	cond, okC := c.reading(groupCondensationPressure)
	speed, okS := c.reading(groupCompressorSpeed)
	if !okE || !okC || !okS {
		return thermo.OperatingPoint{}, false
	}

	c.mu.Lock()
	circuit := *c.cfg.Circuit
	c.mu.Unlock()

	var ambient float64
	if circuit.GaugePressure {
		ambient = float64(thermo.AtmosphericPressure(units.AltitudeFromMetres(circuit.Altitude)))
	}

	return thermo.OperatingPoint{
		CompressorVolume:     units.VolumeFromCubicCentimetres(circuit.CompressorVolume),
		CompressorSpeed:      units.SpeedFromHertz(speed),
		EvaporationPressure:  units.PressureFromMillibar(evap + ambient),
		CondensationPressure: units.PressureFromMillibar(cond + ambient),
		MediumInlet:          c.temperature(groupMediumInlet),
		MediumOutlet:         c.temperature(groupMediumOutlet),
		SourceTemperature:    c.temperature(groupSourceTemperature),
		GlycolPercentage:     units.PercentageFrom(circuit.GlycolPercentage),
	}, true
}

func (c *CircuitController) reading(group string) (float64, bool) {
	g, ok := c.groups[group]
	if !ok {
		return 0, false
	}
	return g.get()
}

func (c *CircuitController) temperature(group string) *units.Temperature {
	v, ok := c.reading(group)
	if !ok {
		return nil
	}
	t := units.TemperatureFromCelsius(v)
	return &t
}

func (c *CircuitController) controlUpdateHandler(client mqtt.Client, message mqtt.Message) {
	topic := lastTopicSegment(message.Topic())
	payload := strings.TrimSpace(string(message.Payload()))
	c.log.Infof("Got MQTT control request: %v : %v", topic, payload)

	switch topic {
	case "log_level":
		if err := c.cfg.LogLevel.Set(payload); err != nil {
			c.log.Errorf("Wrong log level `%v`", payload)
			return
		}
		logger.SetLogLevel(c.cfg.LogLevel)
		c.log.Infof("Updated loglevel to `%v`", c.cfg.LogLevel.String())
	case "enable":
		c.setEnabled(payload)
	case "average_type":
		c.mu.Lock()
		c.cfg.Circuit.AverageType = payload
		for _, g := range c.groups {
			g.LinkAverageFun()
		}
		c.mu.Unlock()
		c.log.Infof("Updated sensors average type to `%v`", payload)
		c.force()
	case "glycol_percentage", "compressor_volume", "altitude":
		value, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			c.log.Error(err)
			return
		}
		if value < 0 || (topic == "compressor_volume" && value == 0) {
			c.log.Errorf("Invalid %s: %v", topic, value)
			return
		}
		c.mu.Lock()
		switch topic {
		case "glycol_percentage":
			c.cfg.Circuit.GlycolPercentage = value
		case "compressor_volume":
			c.cfg.Circuit.CompressorVolume = value
		case "altitude":
			c.cfg.Circuit.Altitude = value
		}
		c.mu.Unlock()
		c.log.Infof("Updated %s to %v", topic, value)
		c.force()
	default:
		c.log.Errorf("Unknown control topic: %s", topic)
	}
}

func (c *CircuitController) setEnabled(val string) {
	var enabled bool
	switch strings.ToLower(val) {
	case "true", "on", "1":
		enabled = true
	case "false", "off", "0":
		enabled = false
	default:
		c.log.Warnf("Invalid value for enable: %v", val)
		return
	}

	state := "OFF"
	if enabled {
		state = "ON"
	}
	c.mqtt.SafePublish(c.cfg.MQTTConfig.ControlTopic+"/active", mqttQoS, true, state)

	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()

	if err := c.writeValue(enabledKey, strconv.FormatBool(enabled)); err != nil {
		c.log.Error(err)
	}
	c.force()
}

func (c *CircuitController) writeValue(name, value string) error {
	return c.store.UpsertControllerValue(
		context.Background(),
		db.UpsertControllerValueParams{Name: name, Value: value},
	)
}

func (c *CircuitController) readValueWithDefault(name string, defValue string) string {
	val, err := c.store.GetControllerValue(context.Background(), name)
	if err != nil {
		val = defValue
	}
	return val
}

// Close releases the broker connection and the database.
func (c *CircuitController) Close() {
	c.mqtt.SafeDisconnect()
	if err := c.store.Close(); err != nil {
		c.log.Error(err)
	}
}
