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
	"strings"
	"time"
)

// Device event types
const (
	DeviceEventCreated       = "created"
	DeviceEventStatusChanged = "status_changed"
)

// DeviceEvent is published on the event bus after a device record has been
// written to the store
type DeviceEvent struct {
	Type      string    `json:"type" msgpack:"type"`
	Device    Device    `json:"device" msgpack:"device"`
	Timestamp time.Time `json:"ts" msgpack:"ts"`
}

const subjectPrefix = "devicepanel.devices"

// GetDeviceSubject returns the event bus subject for a device
func GetDeviceSubject(deviceID string) string {
	return strings.Join([]string{subjectPrefix, deviceID}, ".")
}

// GetDevicesWildcardSubject returns the subject matching every device
func GetDevicesWildcardSubject() string {
	return subjectPrefix + ".>"
}
