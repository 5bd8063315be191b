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
)

// Screen is a named navigation destination
type Screen string

// Navigation destinations
const (
	ScreenLogin       Screen = "Login"
	ScreenHome        Screen = "Home"
	ScreenDevicesList Screen = "DevicesList"
)

// Validate checks that the screen is one of the known destinations
func (s Screen) Validate() error {
	return validation.Validate(string(s),
		validation.Required,
		validation.In(
			string(ScreenLogin),
			string(ScreenHome),
			string(ScreenDevicesList),
		),
	)
}
