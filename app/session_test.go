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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mendersoftware/devicepanel/client/identity"
	identity_mocks "github.com/mendersoftware/devicepanel/client/identity/mocks"
	"github.com/mendersoftware/devicepanel/model"
)

func TestSessionFlowSignUp(t *testing.T) {
	creds := model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}
	testCases := []struct {
		Name string

		Session *model.Session
		Err     error

		Alerts []string
	}{{
		Name: "ok",

		Session: &model.Session{
			UserID: "uid",
			Email:  "user@example.com",
		},
		Alerts: []string{},
	}, {
		Name: "error, email in use",

		Err: &identity.AuthError{
			Code:    400,
			Message: "EMAIL_EXISTS",
		},
		Alerts: []string{"EMAIL_EXISTS"},
	}, {
		Name: "error, transport",

		Err:    errors.New("connection refused"),
		Alerts: []string{MsgSignUpFailed},
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			gw := identity_mocks.NewClient(t)
			gw.On("SignUp",
				mock.MatchedBy(func(context.Context) bool { return true }),
				creds,
			).Return(tc.Session, tc.Err)

			nav := NewNavigator()
			alerts := &alertQueue{}
			flow := NewSessionFlow(gw, nav, alerts)

			session, err := flow.SignUp(ctx, creds.Email, creds.Password)
			if tc.Err != nil {
				assert.Equal(t, tc.Err, err)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Session, session)
			}
			assert.Equal(t, model.ScreenLogin, nav.Current())
			assert.Equal(t, tc.Alerts, alerts.Drain())
		})
	}
}

func TestSessionFlowSignIn(t *testing.T) {
	creds := model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}
	testCases := []struct {
		Name string

		Session *model.Session
		Err     error

		Screen model.Screen
	}{{
		Name: "ok",

		Session: &model.Session{
			UserID: "uid",
			Email:  "user@example.com",
		},
		Screen: model.ScreenHome,
	}, {
		Name: "error, invalid password",

		Err: &identity.AuthError{
			Code:    400,
			Message: "INVALID_PASSWORD",
		},
		Screen: model.ScreenLogin,
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			gw := identity_mocks.NewClient(t)
			gw.On("SignIn",
				mock.MatchedBy(func(context.Context) bool { return true }),
				creds,
			).Return(tc.Session, tc.Err)

			nav := NewNavigator()
			alerts := &alertQueue{}
			flow := NewSessionFlow(gw, nav, alerts)

			session, err := flow.SignIn(ctx, creds.Email, creds.Password)
			if tc.Err != nil {
				assert.Equal(t, tc.Err, err)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Session, session)
			}
			assert.Equal(t, tc.Screen, nav.Current())
			assert.Empty(t, alerts.Drain())
		})
	}
}

func TestSessionFlowSignUpUnreachableGateway(t *testing.T) {
	const apiKey = "SECRET-API-KEY"

	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	gw := identity.NewClient(url, identity.ClientOptions{APIKey: apiKey})
	nav := NewNavigator()
	alerts := &alertQueue{}
	flow := NewSessionFlow(gw, nav, alerts)

	session, err := flow.SignUp(context.Background(), "user@example.com", "secret")
	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, model.ScreenLogin, nav.Current())

	messages := alerts.Drain()
	assert.Equal(t, []string{MsgSignUpFailed}, messages)
	for _, msg := range messages {
		assert.False(t, strings.Contains(msg, apiKey))
		assert.False(t, strings.Contains(msg, url))
	}
}
