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

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
)

// DeviceList is the devices list screen. It caches the records read from
// the store and replaces the whole cache every time the reload flag flips.
type DeviceList struct {
	repo    store.DeviceRepository
	alerts  Alerter
	events  EventPublisher
	devices []model.Device
	reload  bool
}

// NewDeviceList returns a list with no devices; call Mount to load them
func NewDeviceList(
	repo store.DeviceRepository,
	alerts Alerter,
	events EventPublisher,
) *DeviceList {
	return &DeviceList{
		repo:    repo,
		alerts:  alerts,
		events:  events,
		devices: []model.Device{},
	}
}

// Mount loads the devices for the first time
func (dl *DeviceList) Mount(ctx context.Context) {
	dl.fetch(ctx)
}

func (dl *DeviceList) setReload(ctx context.Context, reload bool) {
	if reload == dl.reload {
		return
	}
	dl.reload = reload
	dl.fetch(ctx)
}

func (dl *DeviceList) fetch(ctx context.Context) {
	l := log.FromContext(ctx)

	devices, err := dl.repo.ListDevices(ctx)
	if err != nil {
		l.Error(errors.Wrap(err, "failed to fetch the devices"))
		return
	}
	if devices == nil {
		devices = []model.Device{}
	}
	dl.devices = devices
}

// Devices returns a copy of the cached devices
func (dl *DeviceList) Devices() []model.Device {
	devices := make([]model.Device, len(dl.devices))
	copy(devices, dl.devices)
	return devices
}

// Find returns the cached copy of a device
func (dl *DeviceList) Find(deviceID string) (model.Device, bool) {
	for _, device := range dl.devices {
		if device.ID == deviceID {
			return device, true
		}
	}
	return model.Device{}, false
}

// Rows renders the cached devices
func (dl *DeviceList) Rows() []model.DeviceRow {
	rows := make([]model.DeviceRow, 0, len(dl.devices))
	for _, device := range dl.devices {
		rows = append(rows, device.Row())
	}
	return rows
}

// Toggle switches the status of the device as currently displayed. The
// cache is not patched: on success the reload flag flips and the list is
// fetched again.
func (dl *DeviceList) Toggle(ctx context.Context, device model.Device) error {
	l := log.FromContext(ctx)

	status := model.ToggledStatus(device.Status)
	err := dl.repo.UpdateDeviceStatus(ctx, device.ID, status)
	if err != nil {
		l.Error(errors.Wrap(err, "failed to update the device status"))
		return err
	}
	l.Infof("device %s status updated to %s", device.ID, status)

	dl.setReload(ctx, !dl.reload)
	dl.alerts.Alert(toggledAlert(device.Nome, status))

	device.Status = status
	dl.events.PublishDeviceEvent(ctx, model.DeviceEvent{
		Type:   model.DeviceEventStatusChanged,
		Device: device,
	})
	return nil
}

// toggledAlert is the confirmation shown after a toggle; the wording of the
// two messages differs on purpose and must be kept as is.
func toggledAlert(nome, status string) string {
	if status == model.DeviceStatusOn {
		return fmt.Sprintf(
			"O dispositivo chamado %s teve o status alterado ligado!", nome,
		)
	}
	return fmt.Sprintf(
		"O dispositivo chamado %s teve o status alterado para %s!",
		nome, strings.ToLower(status),
	)
}
