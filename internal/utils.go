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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

const (
	mqttQoS         = 1
	childChanBuffer = 16
)

var zeroTS time.Time

func init() {
	zeroTS = time.UnixMicro(0)
}

func extractF64PlainOrJson(message mqtt.Message, JSONEntry *string) (float64, error) {
	payload := strings.TrimSpace(string(message.Payload()))
	if JSONEntry == nil {
		v, err := strconv.ParseFloat(payload, 64)
		return v, errors.Wrapf(err, "plain value in %v", message.Topic())
	}

	var valMap map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &valMap); err != nil {
		return 0, errors.Wrapf(err, "json unmarshal error with : %v : %v", message.Topic(), payload)
	}

	v, ok := valMap[*JSONEntry]
	if !ok {
		return 0, fmt.Errorf("not found: `%v` in `%v`: %v", *JSONEntry, message.Topic(), payload)
	}

	switch t0 := v.(type) {
	case float64:
		return t0, nil
	case string:
		f, err := strconv.ParseFloat(t0, 64)
		return f, errors.Wrapf(err, "`%v` in %v", *JSONEntry, message.Topic())
	}
	return 0, fmt.Errorf("cannot cast `%v` to float64 in : %v : %v", v, message.Topic(), payload)
}

func lastTopicSegment(topic string) string {
	return topic[strings.LastIndex(topic, "/")+1:]
}
