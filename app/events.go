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
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mendersoftware/devicepanel/client/nats"
	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/utils"
)

// EventPublisher notifies other parties about writes to the device
// records. Failures are logged and never reach the caller.
type EventPublisher interface {
	PublishDeviceEvent(ctx context.Context, event model.DeviceEvent)
}

// NewEventPublisher returns a publisher on the nats bus; with a nil
// client events are dropped.
func NewEventPublisher(nc nats.Client, clock utils.Clock) EventPublisher {
	if nc == nil {
		return nopPublisher{}
	}
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &natsPublisher{
		nats:  nc,
		clock: clock,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishDeviceEvent(context.Context, model.DeviceEvent) {}

type natsPublisher struct {
	nats  nats.Client
	clock utils.Clock
}

func (p *natsPublisher) PublishDeviceEvent(ctx context.Context, event model.DeviceEvent) {
	l := log.FromContext(ctx)
	if event.Timestamp.IsZero() {
		event.Timestamp = p.clock.Now()
	}
	data, err := msgpack.Marshal(event)
	if err != nil {
		l.Error(errors.Wrap(err, "failed to encode device event"))
		return
	}
	err = p.nats.Publish(model.GetDeviceSubject(event.Device.ID), data)
	if err != nil {
		l.Error(errors.Wrap(err, "failed to publish device event"))
	}
}
