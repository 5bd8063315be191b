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
	"context"
	"encoding/binary"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/rest.utils"
	natsio "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mendersoftware/devicepanel/app"
	"github.com/mendersoftware/devicepanel/client/nats"
	"github.com/mendersoftware/devicepanel/model"
)

const (
	HdrKeyOrigin = "Origin"

	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	channelSize = 25
)

// HTTP errors
var (
	ErrEventsDisabled = errors.New("device events are not enabled")
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     allowAllOrigins,
}

// EventsController streams the device events to websocket clients
type EventsController struct {
	app  app.App
	nats nats.Client
}

// NewEventsController returns a new EventsController
func NewEventsController(app app.App, nc nats.Client) *EventsController {
	return &EventsController{
		app:  app,
		nats: nc,
	}
}

// Stream responds to GET /devices/events
func (h EventsController) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.FromContext(ctx)

	if h.nats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": ErrEventsDisabled.Error(),
		})
		return
	}

	msgChan := make(chan *natsio.Msg, channelSize)
	sub, err := h.nats.ChanSubscribe(model.GetDevicesWildcardSubject(), msgChan)
	if err != nil {
		l.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to subscribe to the device events",
		})
		return
	}
	//nolint:errcheck
	defer sub.Unsubscribe()

	upgrader := wsUpgrader
	upgrader.Error = func(
		w http.ResponseWriter, r *http.Request, s int, e error) {
		rest.RenderError(c, s, e)
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		l.Error(errors.Wrap(err,
			"unable to upgrade the request to websocket protocol"))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cancelID := h.app.RegisterShutdownCancel(cancel)
	defer h.app.UnregisterShutdownCancel(cancelID)

	go func() {
		// Keep reading to process the control frames; the stream is
		// closed as soon as the client goes away.
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	//nolint:errcheck
	h.websocketWriter(ctx, conn, msgChan)
}

func websocketPing(conn *websocket.Conn) bool {
	pongWaitString := strconv.Itoa(int(pongWait.Seconds()))
	if err := conn.WriteControl(
		websocket.PingMessage,
		[]byte(pongWaitString),
		time.Now().Add(writeWait),
	); err != nil {
		return false
	}
	return true
}

func writerFinalizer(conn *websocket.Conn, e *error, l *log.Logger) {
	err := *e
	if err != nil {
		if !websocket.IsUnexpectedCloseError(errors.Cause(err)) {
			errMsg := err.Error()
			errBody := make([]byte, len(errMsg)+2)
			binary.BigEndian.PutUint16(errBody,
				websocket.CloseInternalServerErr)
			copy(errBody[2:], errMsg)
			errClose := conn.WriteControl(
				websocket.CloseMessage,
				errBody,
				time.Now().Add(writeWait),
			)
			if errClose != nil {
				err = errors.Wrapf(err,
					"error sending websocket close frame: %s",
					errClose.Error(),
				)
			}
		}
		l.Errorf("websocket closed with error: %s", err.Error())
	} else {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait),
		)
	}
	conn.Close()
}

// websocketWriter forwards the device events published on the bus to the
// websocket as JSON text frames and periodically pings the connection.
func (h EventsController) websocketWriter(
	ctx context.Context,
	conn *websocket.Conn,
	msgChan <-chan *natsio.Msg,
) (err error) {
	l := log.FromContext(ctx)
	defer writerFinalizer(conn, &err, l)

	err = conn.SetReadDeadline(time.Now().Add(pongWait))
	if err != nil {
		l.Error(err)
		return err
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	conn.SetPongHandler(func(string) error {
		ticker.Reset(pingPeriod)
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

Loop:
	for {
		select {
		case msg := <-msgChan:
			var event model.DeviceEvent
			if errDecode := msgpack.Unmarshal(msg.Data, &event); errDecode != nil {
				l.Warnf("dropping malformed device event: %s", errDecode.Error())
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err = conn.WriteJSON(event)
			if err != nil {
				l.Error(err)
				break Loop
			}
		case <-ctx.Done():
			break Loop
		case <-ticker.C:
			if !websocketPing(conn) {
				err = errors.New("connection timeout")
				break Loop
			}
		}
	}
	return err
}
