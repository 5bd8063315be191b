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
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/model"
)

var (
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// Navigator is the navigation stack of a flow. The bottom of the stack is
// always the login screen.
type Navigator struct {
	stack []model.Screen
}

// NewNavigator returns a navigator showing the login screen
func NewNavigator() *Navigator {
	return &Navigator{
		stack: []model.Screen{model.ScreenLogin},
	}
}

// Current returns the screen on top of the stack
func (n *Navigator) Current() model.Screen {
	return n.stack[len(n.stack)-1]
}

// Navigate performs a user triggered transition. The only one available
// is Home -> DevicesList; reaching Home requires a successful sign in.
func (n *Navigator) Navigate(to model.Screen) error {
	if n.Current() == model.ScreenHome && to == model.ScreenDevicesList {
		n.stack = append(n.stack, to)
		return nil
	}
	return errors.Wrapf(ErrInvalidTransition, "%s -> %s", n.Current(), to)
}

// Back pops the current screen
func (n *Navigator) Back() error {
	if len(n.stack) == 1 {
		return errors.Wrapf(ErrInvalidTransition, "%s -> back", n.Current())
	}
	n.stack = n.stack[:len(n.stack)-1]
	return nil
}

func (n *Navigator) signedIn() {
	if n.Current() == model.ScreenLogin {
		n.stack = append(n.stack, model.ScreenHome)
	}
}
