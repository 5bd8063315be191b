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

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/client/identity"
	"github.com/mendersoftware/devicepanel/client/nats"
	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
	"github.com/mendersoftware/devicepanel/utils"
)

// App errors
var (
	ErrFlowNotFound   = errors.New("flow not found")
	ErrWrongScreen    = errors.New("operation not available on the current screen")
	ErrDeviceNotFound = errors.New("device not found")
)

// DefaultFlowIdleTimeout is used when Config.FlowIdleTimeout is not set
const DefaultFlowIdleTimeout = 30 * time.Minute

// App interface describes app objects
//
//nolint:lll
//go:generate ../utils/mockgen.sh
type App interface {
	HealthCheck(ctx context.Context) error
	StartFlow(ctx context.Context) (*model.FlowView, error)
	GetFlow(ctx context.Context, flowID string) (*model.FlowView, error)
	CloseFlow(ctx context.Context, flowID string) error
	SignUp(ctx context.Context, flowID string, creds model.Credentials) (*model.FlowView, error)
	SignIn(ctx context.Context, flowID string, creds model.Credentials) (*model.FlowView, error)
	Navigate(ctx context.Context, flowID string, screen model.Screen) (*model.FlowView, error)
	Back(ctx context.Context, flowID string) (*model.FlowView, error)
	UpdateDraft(ctx context.Context, flowID string, update model.DraftUpdate) (*model.FlowView, error)
	SubmitDraft(ctx context.Context, flowID string) (*model.FlowView, error)
	ToggleDevice(ctx context.Context, flowID string, toggle model.ToggleRequest) (*model.FlowView, error)
	Shutdown(timeout time.Duration)
	ShutdownDone()
	RegisterShutdownCancel(context.CancelFunc) uint32
	UnregisterShutdownCancel(uint32)
}

// app is an app object
type app struct {
	store            store.DataStore
	identity         identity.Client
	events           EventPublisher
	clock            utils.Clock
	flows            map[string]*flow
	flowsM           *sync.Mutex
	shutdownCancels  map[uint32]context.CancelFunc
	shutdownCancelsM *sync.Mutex
	shutdownDone     chan struct{}
	Config
}

type Config struct {
	FlowIdleTimeout time.Duration
	Clock           utils.Clock
}

// New initializes a new devicepanel App. The data store, identity gateway
// and nats client are shared by every flow; nc may be nil to disable
// device events.
func New(ds store.DataStore, gw identity.Client, nc nats.Client, config ...Config) App {
	conf := Config{
		FlowIdleTimeout: DefaultFlowIdleTimeout,
		Clock:           utils.RealClock{},
	}
	for _, cfgIn := range config {
		if cfgIn.FlowIdleTimeout > 0 {
			conf.FlowIdleTimeout = cfgIn.FlowIdleTimeout
		}
		if cfgIn.Clock != nil {
			conf.Clock = cfgIn.Clock
		}
	}
	return &app{
		store:            ds,
		identity:         gw,
		events:           NewEventPublisher(nc, conf.Clock),
		clock:            conf.Clock,
		flows:            make(map[string]*flow),
		flowsM:           &sync.Mutex{},
		Config:           conf,
		shutdownCancels:  make(map[uint32]context.CancelFunc),
		shutdownCancelsM: &sync.Mutex{},
		shutdownDone:     make(chan struct{}),
	}
}

// HealthCheck performs a health check and returns an error if it fails
func (a *app) HealthCheck(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// StartFlow opens a new flow on the login screen
func (a *app) StartFlow(ctx context.Context) (*model.FlowView, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate flow ID")
	}
	f := a.newFlow(id.String())

	a.flowsM.Lock()
	a.pruneFlows(ctx)
	a.flows[f.id] = f
	a.flowsM.Unlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view(), nil
}

// pruneFlows drops the idle flows; flowsM must be held
func (a *app) pruneFlows(ctx context.Context) {
	now := a.clock.Now()
	for id, f := range a.flows {
		if f.idleSince(now) > a.FlowIdleTimeout {
			log.FromContext(ctx).Debugf("flow %s expired", id)
			delete(a.flows, id)
		}
	}
}

func (a *app) getFlow(flowID string) (*flow, error) {
	a.flowsM.Lock()
	defer a.flowsM.Unlock()
	f, ok := a.flows[flowID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return f, nil
}

// withFlow runs fn holding the flow lock and renders the resulting view
func (a *app) withFlow(
	flowID string,
	fn func(f *flow) error,
) (*model.FlowView, error) {
	f, err := a.getFlow(flowID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	// the flow may have been closed or pruned while waiting for the lock
	if current, err := a.getFlow(flowID); err != nil || current != f {
		return nil, ErrFlowNotFound
	}
	f.touch(a.clock.Now())
	if err := fn(f); err != nil {
		return nil, err
	}
	return f.view(), nil
}

// GetFlow renders the current screen of a flow
func (a *app) GetFlow(ctx context.Context, flowID string) (*model.FlowView, error) {
	return a.withFlow(flowID, func(*flow) error { return nil })
}

// CloseFlow discards a flow
func (a *app) CloseFlow(ctx context.Context, flowID string) error {
	a.flowsM.Lock()
	defer a.flowsM.Unlock()
	if _, ok := a.flows[flowID]; !ok {
		return ErrFlowNotFound
	}
	delete(a.flows, flowID)
	return nil
}

// SignUp creates an account from the login screen
func (a *app) SignUp(
	ctx context.Context,
	flowID string,
	creds model.Credentials,
) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.requireScreen(model.ScreenLogin); err != nil {
			return err
		}
		_, _ = f.sessions.SignUp(ctx, creds.Email, creds.Password)
		return nil
	})
}

// SignIn authenticates from the login screen
func (a *app) SignIn(
	ctx context.Context,
	flowID string,
	creds model.Credentials,
) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.requireScreen(model.ScreenLogin); err != nil {
			return err
		}
		_, _ = f.sessions.SignIn(ctx, creds.Email, creds.Password)
		return nil
	})
}

// Navigate performs a user triggered transition
func (a *app) Navigate(
	ctx context.Context,
	flowID string,
	screen model.Screen,
) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.nav.Navigate(screen); err != nil {
			return err
		}
		f.enter(ctx, a)
		return nil
	})
}

// Back returns to the previous screen
func (a *app) Back(ctx context.Context, flowID string) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		current := f.nav.Current()
		if err := f.nav.Back(); err != nil {
			return err
		}
		f.leave(current, a)
		return nil
	})
}

// UpdateDraft changes the fields of the device form
func (a *app) UpdateDraft(
	ctx context.Context,
	flowID string,
	update model.DraftUpdate,
) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.requireScreen(model.ScreenHome); err != nil {
			return err
		}
		f.form.Update(update)
		return nil
	})
}

// SubmitDraft stores the device form as a new record
func (a *app) SubmitDraft(ctx context.Context, flowID string) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.requireScreen(model.ScreenHome); err != nil {
			return err
		}
		_ = f.form.Submit(ctx)
		return nil
	})
}

// ToggleDevice switches the status of a device shown in the list. The new
// status is derived from the status the user saw on the row when the
// request carries it.
func (a *app) ToggleDevice(
	ctx context.Context,
	flowID string,
	toggle model.ToggleRequest,
) (*model.FlowView, error) {
	return a.withFlow(flowID, func(f *flow) error {
		if err := f.requireScreen(model.ScreenDevicesList); err != nil {
			return err
		}
		device, ok := f.list.Find(toggle.DeviceID)
		if !ok {
			return ErrDeviceNotFound
		}
		if toggle.Status != nil {
			device.Status = *toggle.Status
		}
		_ = f.list.Toggle(ctx, device)
		return nil
	})
}

func (a *app) Shutdown(timeout time.Duration) {
	a.shutdownCancelsM.Lock()
	defer a.shutdownCancelsM.Unlock()
	ticker := time.NewTicker(timeout / time.Duration(len(a.shutdownCancels)+1))
	defer ticker.Stop()
	for _, cancel := range a.shutdownCancels {
		cancel()
		<-ticker.C
	}
	<-ticker.C
	close(a.shutdownDone)
}

func (a *app) ShutdownDone() {
	<-a.shutdownDone
}

var shutdownID uint32

func (a *app) RegisterShutdownCancel(cancel context.CancelFunc) uint32 {
	a.shutdownCancelsM.Lock()
	defer a.shutdownCancelsM.Unlock()
	id := atomic.AddUint32(&shutdownID, 1)
	a.shutdownCancels[id] = cancel
	return id
}

func (a *app) UnregisterShutdownCancel(id uint32) {
	a.shutdownCancelsM.Lock()
	defer a.shutdownCancelsM.Unlock()
	delete(a.shutdownCancels, id)
}
