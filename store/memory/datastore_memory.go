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

package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
)

// DataStoreMemory keeps the device records in process memory. Records are
// listed in insertion order.
type DataStoreMemory struct {
	mu      sync.RWMutex
	order   []string
	devices map[string]model.Device
}

// NewDataStore returns an empty in-memory data store
func NewDataStore() *DataStoreMemory {
	return &DataStoreMemory{
		devices: make(map[string]model.Device),
	}
}

// Ping always succeeds
func (db *DataStoreMemory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// InsertDevice stores a new device and returns its generated ID
func (db *DataStoreMemory) InsertDevice(
	ctx context.Context,
	fields model.DeviceFields,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()

	db.mu.Lock()
	defer db.mu.Unlock()
	db.devices[id] = model.Device{
		ID:      id,
		Nome:    fields.Nome,
		Status:  fields.Status,
		Consumo: fields.Consumo,
	}
	db.order = append(db.order, id)
	return id, nil
}

// ListDevices returns a copy of every device
func (db *DataStoreMemory) ListDevices(ctx context.Context) ([]model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()
	devices := make([]model.Device, 0, len(db.order))
	for _, id := range db.order {
		devices = append(devices, db.devices[id])
	}
	return devices, nil
}

// UpdateDeviceStatus sets the status of an existing device
func (db *DataStoreMemory) UpdateDeviceStatus(
	ctx context.Context,
	deviceID string,
	status string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	device, ok := db.devices[deviceID]
	if !ok {
		return store.ErrDeviceNotFound
	}
	device.Status = status
	db.devices[deviceID] = device
	return nil
}

// Close is a no-op
func (db *DataStoreMemory) Close() error {
	return nil
}
