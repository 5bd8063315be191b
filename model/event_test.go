// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDeviceEventWireFormat(t *testing.T) {
	event := DeviceEvent{
		Type: DeviceEventCreated,
		Device: Device{
			ID:      "1",
			Nome:    "Lamp",
			Status:  "Ligado",
			Consumo: "10W",
		},
		Timestamp: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	data, err := msgpack.Marshal(event)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	var raw map[string]interface{}
	err = msgpack.Unmarshal(data, &raw)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, DeviceEventCreated, raw["type"])
	assert.Contains(t, raw, "ts")
	assert.Equal(t, map[string]interface{}{
		"id":      "1",
		"nome":    "Lamp",
		"status":  "Ligado",
		"consumo": "10W",
	}, raw["device"])
}
