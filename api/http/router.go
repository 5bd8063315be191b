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
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/requestid"

	"github.com/mendersoftware/devicepanel/app"
	"github.com/mendersoftware/devicepanel/client/nats"
)

// API URL used by the HTTP router
const (
	APIURLInternal   = "/api/internal/v1/devicepanel"
	APIURLManagement = "/api/management/v1/devicepanel"

	APIURLInternalAlive  = APIURLInternal + "/alive"
	APIURLInternalHealth = APIURLInternal + "/health"

	APIURLManagementFlows       = APIURLManagement + "/flows"
	APIURLManagementFlow        = APIURLManagement + "/flows/:flowId"
	APIURLManagementFlowSignUp  = APIURLManagement + "/flows/:flowId/signup"
	APIURLManagementFlowSignIn  = APIURLManagement + "/flows/:flowId/signin"
	APIURLManagementFlowNav     = APIURLManagement + "/flows/:flowId/navigate"
	APIURLManagementFlowBack    = APIURLManagement + "/flows/:flowId/back"
	APIURLManagementFlowDraft   = APIURLManagement + "/flows/:flowId/draft"
	APIURLManagementFlowSubmit  = APIURLManagement + "/flows/:flowId/draft/submit"
	APIURLManagementFlowDevices = APIURLManagement + "/flows/:flowId/devices"
	APIURLManagementFlowToggle  = APIURLManagement +
		"/flows/:flowId/devices/:deviceId/toggle"

	APIURLManagementDeviceEvents = APIURLManagement + "/devices/events"
)

// RouterConfig holds the optional router settings
type RouterConfig struct {
	// AllowedOrigins restricts the CORS and websocket origins; empty
	// allows any origin.
	AllowedOrigins []string
}

// NewRouter returns the gin router
func NewRouter(
	app app.App,
	natsClient nats.Client,
	config *RouterConfig,
) (*gin.Engine, error) {
	if config == nil {
		config = &RouterConfig{}
	}
	gin.SetMode(gin.ReleaseMode)
	gin.DisableConsoleColor()

	SetAcceptedOrigins(config.AllowedOrigins)

	router := gin.New()
	router.Use(accesslog.Middleware())
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	corsConfig := cors.Config{
		AllowCredentials: true,
		AllowHeaders: []string{
			"Accept",
			"Allow",
			"Content-Type",
			"Origin",
			"Authorization",
			"Accept-Encoding",
			"Access-Control-Request-Headers",
			"Header-Access-Control-Request",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowWebSockets: true,
		ExposeHeaders: []string{
			"Location",
			"Link",
		},
		MaxAge: time.Hour * 12,
	}
	if len(config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	status := NewStatusController(app)
	router.GET(APIURLInternalAlive, status.Alive)
	router.GET(APIURLInternalHealth, status.Health)

	flows := NewFlowsController(app)
	router.POST(APIURLManagementFlows, flows.Start)
	router.GET(APIURLManagementFlow, flows.Get)
	router.DELETE(APIURLManagementFlow, flows.Close)
	router.POST(APIURLManagementFlowSignUp, flows.SignUp)
	router.POST(APIURLManagementFlowSignIn, flows.SignIn)
	router.POST(APIURLManagementFlowNav, flows.Navigate)
	router.POST(APIURLManagementFlowBack, flows.Back)
	router.PATCH(APIURLManagementFlowDraft, flows.UpdateDraft)
	router.POST(APIURLManagementFlowSubmit, flows.SubmitDraft)
	router.GET(APIURLManagementFlowDevices, flows.Get)
	router.POST(APIURLManagementFlowToggle, flows.ToggleDevice)

	events := NewEventsController(app, natsClient)
	router.GET(APIURLManagementDeviceEvents, events.Stream)

	return router, nil
}
