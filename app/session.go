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

	"github.com/mendersoftware/devicepanel/client/identity"
	"github.com/mendersoftware/devicepanel/model"
)

// SessionFlow handles the login screen actions. Credentials are passed to
// the identity gateway as typed.
type SessionFlow struct {
	gateway identity.Client
	nav     *Navigator
	alerts  Alerter
}

// NewSessionFlow returns a new SessionFlow
func NewSessionFlow(gw identity.Client, nav *Navigator, alerts Alerter) *SessionFlow {
	return &SessionFlow{
		gateway: gw,
		nav:     nav,
		alerts:  alerts,
	}
}

// SignUp creates a new account. The user stays on the login screen; a
// failure is shown to the user with the gateway's message.
func (s *SessionFlow) SignUp(
	ctx context.Context,
	email string,
	password string,
) (*model.Session, error) {
	l := log.FromContext(ctx)

	session, err := s.gateway.SignUp(ctx, model.Credentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		l.Error(errors.Wrap(err, "failed to create the account"))
		s.alerts.Alert(authErrorMessage(err))
		return nil, err
	}
	l.Infof("account created for user %s (%s)", session.UserID, session.Email)
	return session, nil
}

// SignIn authenticates the user and moves to the home screen. A failure is
// only logged.
func (s *SessionFlow) SignIn(
	ctx context.Context,
	email string,
	password string,
) (*model.Session, error) {
	l := log.FromContext(ctx)

	session, err := s.gateway.SignIn(ctx, model.Credentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		l.Error(errors.Wrap(err, "failed to sign in"))
		return nil, err
	}
	l.Infof("user %s (%s) signed in", session.UserID, session.Email)
	s.nav.signedIn()
	return session, nil
}

// MsgSignUpFailed is shown when the gateway could not be reached or did not
// say why the account was refused; the details only go to the log.
const MsgSignUpFailed = "Não foi possível criar a conta. Tente novamente mais tarde."

func authErrorMessage(err error) string {
	var authErr *identity.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return MsgSignUpFailed
}
