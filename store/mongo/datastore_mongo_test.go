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

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/stretchr/testify/assert"

	dconfig "github.com/mendersoftware/devicepanel/config"
	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
)

func TestPing(t *testing.T) {
	requireDB(t)
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.Ping(ctx)
	assert.NoError(t, err)
}

func TestNewClient(t *testing.T) {
	requireDB(t)
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	client, err := NewClient(ctx, config.Config)
	if assert.NoError(t, err) {
		disconnectClient(ctx, client)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	prev := config.Config.GetString(dconfig.SettingMongo)
	defer config.Config.Set(dconfig.SettingMongo, prev)
	config.Config.Set(dconfig.SettingMongo, "mender-mongo:27017")

	client, err := NewClient(context.Background(), config.Config)
	assert.Nil(t, client)
	assert.EqualError(t, err,
		`Invalid mongoURL "mender-mongo:27017": missing schema.`)
}

func TestInsertAndListDevices(t *testing.T) {
	requireDB(t)
	db.Wipe()
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)

	devices, err := ds.ListDevices(ctx)
	assert.NoError(t, err)
	assert.Empty(t, devices)

	fields := model.DeviceFields{
		Nome:    "Lamp",
		Status:  model.DeviceStatusOn,
		Consumo: "10W",
	}
	id, err := ds.InsertDevice(ctx, fields)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	verbatim := model.DeviceFields{
		Nome:    "Fan",
		Status:  " ligado",
		Consumo: "",
	}
	otherID, err := ds.InsertDevice(ctx, verbatim)
	assert.NoError(t, err)
	assert.NotEqual(t, id, otherID)

	devices, err = ds.ListDevices(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.Device{
		{ID: id, Nome: "Lamp", Status: model.DeviceStatusOn, Consumo: "10W"},
		{ID: otherID, Nome: "Fan", Status: " ligado", Consumo: ""},
	}, devices)
}

func TestUpdateDeviceStatus(t *testing.T) {
	requireDB(t)
	db.Wipe()
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	id, err := ds.InsertDevice(ctx, model.DeviceFields{
		Nome:    "Lamp",
		Status:  model.DeviceStatusOn,
		Consumo: "10W",
	})
	assert.NoError(t, err)

	err = ds.UpdateDeviceStatus(ctx, id, model.DeviceStatusOff)
	assert.NoError(t, err)

	devices, err := ds.ListDevices(ctx)
	assert.NoError(t, err)
	if assert.Len(t, devices, 1) {
		assert.Equal(t, model.Device{
			ID:      id,
			Nome:    "Lamp",
			Status:  model.DeviceStatusOff,
			Consumo: "10W",
		}, devices[0])
	}

	err = ds.UpdateDeviceStatus(ctx, "does-not-exist", model.DeviceStatusOn)
	assert.Equal(t, store.ErrDeviceNotFound, err)
}

func TestListDevicesError(t *testing.T) {
	requireDB(t)
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	_, err := ds.ListDevices(ctx)
	assert.Error(t, err)
}
