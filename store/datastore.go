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

package store

import (
	"context"
	"errors"

	"github.com/mendersoftware/devicepanel/model"
)

// DeviceRepository is the access to the device records. The devices list
// re-fetches the whole collection after every write, so implementations
// are expected to provide read-after-write consistency.
//
//go:generate ../utils/mockgen.sh
type DeviceRepository interface {
	// InsertDevice stores a new record and returns its generated ID
	InsertDevice(ctx context.Context, fields model.DeviceFields) (string, error)
	// ListDevices returns every record in store order
	ListDevices(ctx context.Context) ([]model.Device, error)
	// UpdateDeviceStatus sets the status field of an existing record
	UpdateDeviceStatus(ctx context.Context, deviceID, status string) error
}

// DataStore interface for DataStore services
//
//go:generate ../utils/mockgen.sh
type DataStore interface {
	DeviceRepository
	Ping(ctx context.Context) error
	Close() error
}

var (
	ErrDeviceNotFound = errors.New("store: device not found")
)
