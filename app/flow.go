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
	"sync"
	"sync/atomic"
	"time"

	"github.com/mendersoftware/devicepanel/model"
)

// flow is the server side state of one client going through the screens.
// Operations on a flow are serialized by mu.
type flow struct {
	mu       sync.Mutex
	id       string
	lastSeen int64

	nav      *Navigator
	alerts   *alertQueue
	sessions *SessionFlow
	form     *DeviceForm
	list     *DeviceList
}

func (a *app) newFlow(id string) *flow {
	f := &flow{
		id:     id,
		nav:    NewNavigator(),
		alerts: &alertQueue{},
	}
	f.sessions = NewSessionFlow(a.identity, f.nav, f.alerts)
	f.form = NewDeviceForm(a.store, a.events)
	f.touch(a.clock.Now())
	return f
}

func (f *flow) touch(now time.Time) {
	atomic.StoreInt64(&f.lastSeen, now.UnixNano())
}

func (f *flow) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, atomic.LoadInt64(&f.lastSeen)))
}

func (f *flow) requireScreen(screen model.Screen) error {
	if f.nav.Current() != screen {
		return ErrWrongScreen
	}
	return nil
}

// enter mounts the screen that has just been pushed
func (f *flow) enter(ctx context.Context, a *app) {
	if f.nav.Current() == model.ScreenDevicesList {
		f.list = NewDeviceList(a.store, f.alerts, a.events)
		f.list.Mount(ctx)
	}
}

// leave unmounts a popped screen, dropping its state
func (f *flow) leave(screen model.Screen, a *app) {
	switch screen {
	case model.ScreenDevicesList:
		f.list = nil
	case model.ScreenHome:
		f.form = NewDeviceForm(a.store, a.events)
	}
}

func (f *flow) view() *model.FlowView {
	view := &model.FlowView{
		ID:     f.id,
		Screen: f.nav.Current(),
	}
	switch view.Screen {
	case model.ScreenHome:
		draft := f.form.Draft()
		view.Draft = &draft
	case model.ScreenDevicesList:
		if f.list != nil {
			view.Devices = f.list.Rows()
		}
	}
	view.Alerts = f.alerts.Drain()
	return view
}
