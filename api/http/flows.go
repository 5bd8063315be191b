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

	"github.com/gin-gonic/gin"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/app"
	"github.com/mendersoftware/devicepanel/model"
)

const (
	ParamFlowID   = "flowId"
	ParamDeviceID = "deviceId"
)

// FlowsController contains the end-points driving the screen flows
type FlowsController struct {
	app app.App
}

// NewFlowsController returns a new FlowsController
func NewFlowsController(app app.App) *FlowsController {
	return &FlowsController{app: app}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, app.ErrFlowNotFound),
		errors.Is(err, app.ErrDeviceNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrWrongScreen),
		errors.Is(err, app.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func renderError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.FromContext(c.Request.Context()).Error(err)
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

func renderView(c *gin.Context, view *model.FlowView, err error) {
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// flowID reads the flow id path parameter; it renders a 400 and returns
// false when the id is malformed
func flowID(c *gin.Context) (string, bool) {
	id := c.Param(ParamFlowID)
	if err := model.ValidateFlowID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid flow id").Error(),
		})
		return "", false
	}
	return id, true
}

// bind decodes the JSON body into v; it renders a 400 and returns false on
// failure
func bind(c *gin.Context, v interface{}) bool {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "bad request",
		})
		return false
	}
	if err = json.Unmarshal(rawData, v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return false
	}
	return true
}

// bindOptional is bind for requests where the body may be empty
func bindOptional(c *gin.Context, v interface{}) bool {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "bad request",
		})
		return false
	} else if len(rawData) == 0 {
		return true
	}
	if err = json.Unmarshal(rawData, v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return false
	}
	return true
}

// Start responds to POST /flows
func (h FlowsController) Start(c *gin.Context) {
	view, err := h.app.StartFlow(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.Header("Location", APIURLManagementFlows+"/"+view.ID)
	c.JSON(http.StatusCreated, view)
}

// Get responds to GET /flows/:flowId and GET /flows/:flowId/devices
func (h FlowsController) Get(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	view, err := h.app.GetFlow(c.Request.Context(), id)
	renderView(c, view, err)
}

// Close responds to DELETE /flows/:flowId
func (h FlowsController) Close(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	if err := h.app.CloseFlow(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusNoContent)
}

// SignUp responds to POST /flows/:flowId/signup
func (h FlowsController) SignUp(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	var creds model.Credentials
	if !bind(c, &creds) {
		return
	}
	view, err := h.app.SignUp(c.Request.Context(), id, creds)
	renderView(c, view, err)
}

// SignIn responds to POST /flows/:flowId/signin
func (h FlowsController) SignIn(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	var creds model.Credentials
	if !bind(c, &creds) {
		return
	}
	view, err := h.app.SignIn(c.Request.Context(), id, creds)
	renderView(c, view, err)
}

// Navigate responds to POST /flows/:flowId/navigate
func (h FlowsController) Navigate(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	var req model.NavigateRequest
	if !bind(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	view, err := h.app.Navigate(c.Request.Context(), id, req.Screen)
	renderView(c, view, err)
}

// Back responds to POST /flows/:flowId/back
func (h FlowsController) Back(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	view, err := h.app.Back(c.Request.Context(), id)
	renderView(c, view, err)
}

// UpdateDraft responds to PATCH /flows/:flowId/draft
func (h FlowsController) UpdateDraft(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	var update model.DraftUpdate
	if !bind(c, &update) {
		return
	}
	view, err := h.app.UpdateDraft(c.Request.Context(), id, update)
	renderView(c, view, err)
}

// SubmitDraft responds to POST /flows/:flowId/draft/submit
func (h FlowsController) SubmitDraft(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	view, err := h.app.SubmitDraft(c.Request.Context(), id)
	renderView(c, view, err)
}

// ToggleDevice responds to POST /flows/:flowId/devices/:deviceId/toggle
func (h FlowsController) ToggleDevice(c *gin.Context) {
	id, ok := flowID(c)
	if !ok {
		return
	}
	var toggle model.ToggleRequest
	if !bindOptional(c, &toggle) {
		return
	}
	toggle.DeviceID = c.Param(ParamDeviceID)
	view, err := h.app.ToggleDevice(c.Request.Context(), id, toggle)
	renderView(c, view, err)
}
