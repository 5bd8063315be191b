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

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/devicepanel/model"
)

const (
	SignUpURI = "/v1/accounts:signUp"
	SignInURI = "/v1/accounts:signInWithPassword"

	paramAPIKey = "key"
)

// AuthError is a credential rejection reported by the identity gateway.
// Message is the human readable reason.
type AuthError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (err *AuthError) Error() string {
	return err.Message
}

// Client is the identity gateway client
//
//go:generate ../../utils/mockgen.sh
type Client interface {
	SignUp(ctx context.Context, creds model.Credentials) (*model.Session, error)
	SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error)
}

type ClientOptions struct {
	Client *http.Client
	APIKey string
}

// NewClient returns a new identity gateway client
func NewClient(uri string, opts ...ClientOptions) Client {
	var clientOpts = ClientOptions{
		Client: &http.Client{},
	}
	for _, opt := range opts {
		if opt.Client != nil {
			clientOpts.Client = opt.Client
		}
		if opt.APIKey != "" {
			clientOpts.APIKey = opt.APIKey
		}
	}

	return &client{
		uri:    strings.TrimSuffix(uri, "/"),
		apiKey: clientOpts.APIKey,
		client: clientOpts.Client,
	}
}

type client struct {
	uri    string
	apiKey string
	client *http.Client
}

type authRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type errorResponse struct {
	Error *AuthError `json:"error"`
}

// SignUp creates a new account
func (c *client) SignUp(
	ctx context.Context,
	creds model.Credentials,
) (*model.Session, error) {
	return c.authenticate(ctx, SignUpURI, creds)
}

// SignIn authenticates an existing account
func (c *client) SignIn(
	ctx context.Context,
	creds model.Credentials,
) (*model.Session, error) {
	return c.authenticate(ctx, SignInURI, creds)
}

func (c *client) authenticate(
	ctx context.Context,
	uri string,
	creds model.Credentials,
) (*model.Session, error) {
	l := log.FromContext(ctx)

	payload, _ := json.Marshal(authRequest{
		Email:             creds.Email,
		Password:          creds.Password,
		ReturnSecureToken: true,
	})
	reqURL := c.uri + uri
	if c.apiKey != "" {
		reqURL += "?" + url.Values{paramAPIKey: {c.apiKey}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		reqURL,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, errors.Wrap(err, "identity: error preparing HTTP request")
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity: failed to reach the identity gateway")
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= 300 {
		var apiErr errorResponse
		err = json.NewDecoder(rsp.Body).Decode(&apiErr)
		if err != nil || apiErr.Error == nil || apiErr.Error.Message == "" {
			return nil, errors.Errorf(
				"identity: unexpected HTTP status from identity gateway: %s",
				rsp.Status,
			)
		}
		if apiErr.Error.Code == 0 {
			apiErr.Error.Code = rsp.StatusCode
		}
		return nil, apiErr.Error
	}

	var auth authResponse
	if err := json.NewDecoder(rsp.Body).Decode(&auth); err != nil {
		return nil, errors.Wrap(err, "identity: error parsing the gateway response")
	}

	session := &model.Session{
		UserID:       auth.LocalID,
		Email:        auth.Email,
		IDToken:      auth.IDToken,
		RefreshToken: auth.RefreshToken,
	}
	expiresAt, err := tokenExpiration(auth.IDToken)
	if err != nil {
		l.Debugf("identity: cannot read the token expiration: %s", err)
		if secs, e := strconv.Atoi(auth.ExpiresIn); e == nil {
			expiresAt = time.Now().Add(time.Duration(secs) * time.Second)
		}
	}
	session.ExpiresAt = expiresAt
	return session, nil
}

// tokenExpiration reads the exp claim of the ID token. The token is
// issued by the gateway over TLS and only forwarded, so the signature is
// not verified here.
func tokenExpiration(idToken string) (time.Time, error) {
	if idToken == "" {
		return time.Time{}, errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(idToken, claims)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	} else if exp == nil {
		return time.Time{}, errors.New("missing exp claim")
	}
	return exp.Time, nil
}
