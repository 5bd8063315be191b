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

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	api "github.com/mendersoftware/devicepanel/api/http"
	"github.com/mendersoftware/devicepanel/app"
	"github.com/mendersoftware/devicepanel/client/identity"
	"github.com/mendersoftware/devicepanel/client/nats"
	dconfig "github.com/mendersoftware/devicepanel/config"
	"github.com/mendersoftware/devicepanel/store"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
)

const shutdownTimeout = 5 * time.Second

// NewIdentityClient builds the identity gateway client from the configuration
func NewIdentityClient(conf config.Reader) identity.Client {
	httpClient := &http.Client{}
	if timeout := conf.GetInt(dconfig.SettingIdentityTimeout); timeout > 0 {
		httpClient.Timeout = time.Duration(timeout) * time.Second
	}
	return identity.NewClient(
		conf.GetString(dconfig.SettingIdentityURL),
		identity.ClientOptions{
			Client: httpClient,
			APIKey: conf.GetString(dconfig.SettingIdentityAPIKey),
		},
	)
}

// NewNatsClient connects to the message bus; it returns a nil client when
// no bus is configured.
func NewNatsClient(conf config.Reader) (nats.Client, error) {
	natsURI := conf.GetString(dconfig.SettingNatsURI)
	if natsURI == "" {
		return nil, nil
	}
	nc, err := nats.NewClientWithDefaults(natsURI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to nats")
	}
	return nc, nil
}

// NewApp wires the application on top of the shared connections
func NewApp(
	conf config.Reader,
	dataStore store.DataStore,
	nc nats.Client,
) app.App {
	return app.New(dataStore, NewIdentityClient(conf), nc, app.Config{
		FlowIdleTimeout: time.Duration(
			conf.GetInt(dconfig.SettingFlowIdleTimeout),
		) * time.Second,
	})
}

// allowedOrigins reads the comma separated list of accepted origins
func allowedOrigins(conf config.Reader) []string {
	var origins []string
	for _, origin := range strings.Split(
		conf.GetString(dconfig.SettingAllowedOrigins), ",",
	) {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// InitAndRun initializes the server and runs it
func InitAndRun(conf config.Reader, dataStore store.DataStore) error {
	ctx := context.Background()

	log.Setup(conf.GetBool(dconfig.SettingDebugLog))
	l := log.FromContext(ctx)

	nc, err := NewNatsClient(conf)
	if err != nil {
		return err
	}
	var natsClient nats.Client
	if nc != nil {
		defer nc.Close()
		natsClient = nc
	} else {
		l.Warn("nats_uri is empty, device events are disabled")
	}

	devicePanelApp := NewApp(conf, dataStore, natsClient)

	var listen = conf.GetString(dconfig.SettingListen)
	router, err := api.NewRouter(devicePanelApp, natsClient, &api.RouterConfig{
		AllowedOrigins: allowedOrigins(conf),
	})
	if err != nil {
		l.Fatal(err)
	}
	srv := &http.Server{
		Addr:    listen,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, unix.SIGINT, unix.SIGTERM)
	<-quit

	l.Info("Shutdown Server ...")
	devicePanelApp.Shutdown(shutdownTimeout)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxWithTimeout); err != nil {
		l.Fatal("Server Shutdown: ", err)
	}
	devicePanelApp.ShutdownDone()

	return nil
}
