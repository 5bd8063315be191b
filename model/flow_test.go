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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateRequestValidation(t *testing.T) {
	testCases := []struct {
		Name    string
		Request NavigateRequest
		Error   error
	}{
		{
			Name:    "validation ok",
			Request: NavigateRequest{Screen: ScreenDevicesList},
		},
		{
			Name:    "validation failed, unknown screen",
			Request: NavigateRequest{Screen: "Settings"},
			Error:   errors.New("screen: must be a valid value."),
		},
		{
			Name:    "validation failed, empty screen",
			Request: NavigateRequest{},
			Error:   errors.New("screen: cannot be blank."),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Request.Validate()
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFlowID(t *testing.T) {
	assert.NoError(t, ValidateFlowID("c3f0f3f6-8a2e-4a5b-9a53-4c5a2f7e9d11"))
	assert.Error(t, ValidateFlowID("not-a-uuid"))
	assert.Error(t, ValidateFlowID(""))
}

func TestDraftFields(t *testing.T) {
	draft := DeviceDraft{Nome: "Lamp", Status: "ligado ", Consumo: "10W"}
	assert.Equal(t, DeviceFields{
		Nome:    "Lamp",
		Status:  "ligado ",
		Consumo: "10W",
	}, draft.Fields())
}

func TestDeviceSubject(t *testing.T) {
	assert.Equal(t, "devicepanel.devices.1234", GetDeviceSubject("1234"))
	assert.Equal(t, "devicepanel.devices.>", GetDevicesWildcardSubject())
}
