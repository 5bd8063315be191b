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

// Values for the device status attribute
const (
	DeviceStatusOn  = "Ligado"
	DeviceStatusOff = "Desligado"
)

// Colors used to render the device status
const (
	StatusColorOn  = "green"
	StatusColorOff = "red"
)

// Device represents a device ("servico") record and its attributes
type Device struct {
	ID      string `json:"id" bson:"_id" msgpack:"id"`
	Nome    string `json:"nome" bson:"nome" msgpack:"nome"`
	Status  string `json:"status" bson:"status" msgpack:"status"`
	Consumo string `json:"consumo" bson:"consumo" msgpack:"consumo"`
}

// IsOn returns true when the status is exactly DeviceStatusOn
func (d Device) IsOn() bool {
	return d.Status == DeviceStatusOn
}

// ToggledStatus returns the status a toggle writes for a device currently
// in the given status. Anything that is not DeviceStatusOn, including
// non-canonical values typed in the form, toggles to DeviceStatusOn.
func ToggledStatus(status string) string {
	if status == DeviceStatusOn {
		return DeviceStatusOff
	}
	return DeviceStatusOn
}

// DeviceFields are the fields written when a device record is created
type DeviceFields struct {
	Nome    string `json:"nome" bson:"nome"`
	Status  string `json:"status" bson:"status"`
	Consumo string `json:"consumo" bson:"consumo"`
}

// DeviceRow is the rendering of a device in the devices list
type DeviceRow struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Consumo     string `json:"consumo"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`
}

// Row renders the device for the devices list
func (d Device) Row() DeviceRow {
	color := StatusColorOff
	if d.IsOn() {
		color = StatusColorOn
	}
	return DeviceRow{
		ID:          d.ID,
		Label:       "Dispositivo: " + d.Nome,
		Consumo:     "Consumo do Dispositivo: " + d.Consumo,
		Status:      d.Status,
		StatusColor: color,
	}
}
