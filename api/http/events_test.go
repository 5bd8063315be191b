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

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	natsio "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vmihailenco/msgpack/v5"

	app_mocks "github.com/mendersoftware/devicepanel/app/mocks"
	nats_mocks "github.com/mendersoftware/devicepanel/client/nats/mocks"
	"github.com/mendersoftware/devicepanel/model"
)

func TestEventsStream(t *testing.T) {
	event := model.DeviceEvent{
		Type: model.DeviceEventStatusChanged,
		Device: model.Device{
			ID:      "1",
			Nome:    "Lamp",
			Status:  "Desligado",
			Consumo: "10W",
		},
		Timestamp: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	data, err := msgpack.Marshal(event)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	devicePanelApp := &app_mocks.App{}
	devicePanelApp.On("RegisterShutdownCancel",
		mock.AnythingOfType("context.CancelFunc"),
	).Return(uint32(1))
	devicePanelApp.On("UnregisterShutdownCancel", uint32(1)).Return()

	nc := &nats_mocks.Client{}
	nc.On("ChanSubscribe",
		model.GetDevicesWildcardSubject(),
		mock.AnythingOfType("chan *nats.Msg"),
	).Run(func(args mock.Arguments) {
		msgChan := args.Get(1).(chan *natsio.Msg)
		msgChan <- &natsio.Msg{Data: []byte("garbage")}
		msgChan <- &natsio.Msg{Data: data}
	}).Return(&natsio.Subscription{}, nil)

	router, _ := NewRouter(devicePanelApp, nc, nil)
	s := httptest.NewServer(router)
	defer s.Close()

	url := "ws" + strings.TrimPrefix(s.URL, "http") + APIURLManagementDeviceEvents
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	msgType, body, err := conn.ReadMessage()
	if assert.NoError(t, err) {
		assert.Equal(t, websocket.TextMessage, msgType)
		var received model.DeviceEvent
		assert.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, event.Type, received.Type)
		assert.Equal(t, event.Device, received.Device)
		assert.True(t, event.Timestamp.Equal(received.Timestamp))
	}

	conn.Close()
	// wait for the server to release the subscription
	time.Sleep(100 * time.Millisecond)

	devicePanelApp.AssertExpectations(t)
	nc.AssertExpectations(t)
}

func TestEventsStreamFailures(t *testing.T) {
	testCases := []struct {
		Name string

		Nats   bool
		SubErr error

		HTTPStatus int
	}{{
		Name: "error, events disabled",

		HTTPStatus: http.StatusServiceUnavailable,
	}, {
		Name: "error, subscribe failure",

		Nats:   true,
		SubErr: errors.New("nats: connection closed"),

		HTTPStatus: http.StatusInternalServerError,
	}, {
		Name: "error, not a websocket request",

		Nats: true,

		HTTPStatus: http.StatusBadRequest,
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			devicePanelApp := &app_mocks.App{}
			var router http.Handler
			if tc.Nats {
				nc := &nats_mocks.Client{}
				var sub *natsio.Subscription
				if tc.SubErr == nil {
					sub = &natsio.Subscription{}
				}
				nc.On("ChanSubscribe",
					model.GetDevicesWildcardSubject(),
					mock.AnythingOfType("chan *nats.Msg"),
				).Return(sub, tc.SubErr)
				router, _ = NewRouter(devicePanelApp, nc, nil)
				defer nc.AssertExpectations(t)
			} else {
				router, _ = NewRouter(devicePanelApp, nil, nil)
			}

			req, _ := http.NewRequest(http.MethodGet,
				"http://localhost"+APIURLManagementDeviceEvents, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.HTTPStatus, w.Code)

			devicePanelApp.AssertExpectations(t)
		})
	}
}
