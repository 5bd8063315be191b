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

package nats

import (
	"errors"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsio "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

var natsPort int32 = 43069

func NewNATSTestServer(t *testing.T) (URI string) {
	port := atomic.AddInt32(&natsPort, 1)
	opts := &server.Options{
		Port: int(port),
	}
	srv, err := server.NewServer(opts)
	if err != nil {
		panic(err)
	}
	go srv.Start()
	t.Cleanup(srv.Shutdown)

	// Spinlock until go routine is listening
	for i := 0; srv.Addr() == nil && i < 1000; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.Addr() == nil {
		panic("failed to setup NATS test server")
	}
	uri, err := url.Parse("nats://" + srv.Addr().String())
	if err != nil {
		panic(err)
	}

	return uri.String()
}

func TestPublishSubscribe(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Name string

		URI      string
		SubTopic string
		PubTopic string
		Received bool

		ClientError error
		SubError    error
	}{{
		Name: "ok",

		SubTopic: "devicepanel.devices.>",
		PubTopic: "devicepanel.devices.1234",
		Received: true,
	}, {
		Name: "ok, not matching the subscription",

		SubTopic: "devicepanel.devices.1234",
		PubTopic: "devicepanel.devices.5678",
	}, {
		Name: "error invalid URI",

		URI:         "bats://localhost",
		ClientError: errors.New(""),
	}, {
		Name: "error bad topic",

		SubTopic: ".foo.bar",
		SubError: natsio.ErrBadSubject,
	}}
	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			uri := NewNATSTestServer(t)
			if tc.URI != "" {
				uri = tc.URI
			}
			conn, err := NewClient(uri)
			if tc.ClientError != nil {
				if assert.Error(t, err) {
					assert.Regexp(t, tc.ClientError.Error(), err.Error())
				}
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			defer conn.Close()

			ch := make(chan *natsio.Msg, 1)
			s, err := conn.ChanSubscribe(tc.SubTopic, ch)
			if err == nil {
				defer s.Unsubscribe()
			}
			if tc.SubError != nil {
				if assert.Error(t, err) {
					assert.Regexp(t, tc.SubError.Error(), err.Error())
				}
				return
			}
			if !assert.NoError(t, err) {
				return
			}

			err = conn.Publish(tc.PubTopic, []byte("payload"))
			assert.NoError(t, err)

			select {
			case msg := <-ch:
				if assert.True(t, tc.Received, "unexpected message") {
					assert.Equal(t, tc.PubTopic, msg.Subject)
					assert.Equal(t, []byte("payload"), msg.Data)
				}
			case <-time.After(time.Second):
				assert.False(t, tc.Received, "timeout waiting for message")
			}
		})
	}
}

func TestNewClientWithDefaults(t *testing.T) {
	uri := NewNATSTestServer(t)
	conn, err := NewClientWithDefaults(uri)
	if assert.NoError(t, err) {
		conn.Close()
	}
}
