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

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
)

// DeviceForm holds the draft of a new device record
type DeviceForm struct {
	repo   store.DeviceRepository
	events EventPublisher
	draft  model.DeviceDraft
}

// NewDeviceForm returns an empty form
func NewDeviceForm(repo store.DeviceRepository, events EventPublisher) *DeviceForm {
	return &DeviceForm{
		repo:   repo,
		events: events,
	}
}

func (f *DeviceForm) SetNome(text string) {
	f.draft.Nome = text
}

func (f *DeviceForm) SetStatus(text string) {
	f.draft.Status = text
}

func (f *DeviceForm) SetConsumo(text string) {
	f.draft.Consumo = text
}

// Update sets the fields present in the update
func (f *DeviceForm) Update(update model.DraftUpdate) {
	if update.Nome != nil {
		f.SetNome(*update.Nome)
	}
	if update.Status != nil {
		f.SetStatus(*update.Status)
	}
	if update.Consumo != nil {
		f.SetConsumo(*update.Consumo)
	}
}

// Draft returns the current draft
func (f *DeviceForm) Draft() model.DeviceDraft {
	return f.draft
}

// Submit stores the draft as a new device record. The draft is cleared
// once the store call returns, whatever the outcome.
func (f *DeviceForm) Submit(ctx context.Context) error {
	l := log.FromContext(ctx)

	fields := f.draft.Fields()
	id, err := f.repo.InsertDevice(ctx, fields)
	f.draft = model.DeviceDraft{}
	if err != nil {
		l.Error(errors.Wrap(err, "failed to add the device"))
		return err
	}

	l.Infof("device %s added", id)
	f.events.PublishDeviceEvent(ctx, model.DeviceEvent{
		Type: model.DeviceEventCreated,
		Device: model.Device{
			ID:      id,
			Nome:    fields.Nome,
			Status:  fields.Status,
			Consumo: fields.Consumo,
		},
	})
	return nil
}
