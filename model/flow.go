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
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DeviceDraft holds the unsaved values of the device form
type DeviceDraft struct {
	Nome    string `json:"nome"`
	Status  string `json:"status"`
	Consumo string `json:"consumo"`
}

// Fields returns the record fields built from the draft, verbatim
func (d DeviceDraft) Fields() DeviceFields {
	return DeviceFields{
		Nome:    d.Nome,
		Status:  d.Status,
		Consumo: d.Consumo,
	}
}

// DraftUpdate carries the form fields that changed; nil fields are left
// untouched.
type DraftUpdate struct {
	Nome    *string `json:"nome"`
	Status  *string `json:"status"`
	Consumo *string `json:"consumo"`
}

// NavigateRequest is the payload of a user triggered navigation
type NavigateRequest struct {
	Screen Screen `json:"screen"`
}

// Validate validates the request
func (r NavigateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Screen),
	)
}

// ToggleRequest identifies the row the user tapped. Status, when set, is
// the status shown on that row and is what the toggle flips; otherwise the
// status in the displayed list is used.
type ToggleRequest struct {
	DeviceID string  `json:"-"`
	Status   *string `json:"status,omitempty"`
}

// FlowView is everything the presentation layer needs to render the
// current screen of a flow
type FlowView struct {
	ID      string       `json:"flow_id"`
	Screen  Screen       `json:"screen"`
	Draft   *DeviceDraft `json:"draft,omitempty"`
	Devices []DeviceRow  `json:"devices,omitempty"`
	Alerts  []string     `json:"alerts"`
}

// ValidateFlowID checks that a flow identifier is a UUID
func ValidateFlowID(flowID string) error {
	return validation.Validate(flowID, validation.Required, is.UUID)
}
