// Copyright (C) 2025 OnboardSec
//
// This file is part of AzGrant.
//
// AzGrant is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AzGrant is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/onboardsec/azgrant/client/config"
)

const imdsTokenUrl = "http://169.254.169.254/metadata/identity/oauth2/token"

// Authenticator acquires and caches an access token for one target API. The
// grant type follows from which credentials are configured: client secret,
// certificate assertion, refresh token or username/password; managed identity
// goes through IMDS instead of the authority.
type Authenticator struct {
	config    config.Config
	authority url.URL
	api       url.URL
	http      *http.Client

	mu    sync.Mutex
	token Token
}

func NewAuthenticator(config config.Config, authority url.URL, api url.URL, http *http.Client) *Authenticator {
	return &Authenticator{
		config:    config,
		authority: authority,
		api:       api,
		http:      http,
	}
}

// Token returns a valid access token, refreshing it when expired.
func (s *Authenticator) Token(ctx context.Context) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.token.IsExpired() {
		return s.token, nil
	}

	var (
		token Token
		err   error
	)
	if s.config.ManagedIdentity {
		token, err = s.imdsToken(ctx)
	} else {
		token, err = s.authorityToken(ctx)
	}
	if err != nil {
		return Token{}, err
	}

	s.token = token
	return s.token, nil
}

func (s *Authenticator) authorityToken(ctx context.Context) (Token, error) {
	endpoint := s.authority.ResolveReference(&url.URL{Path: fmt.Sprintf("/%s/oauth2/v2.0/token", s.config.Tenant)})

	body := url.Values{}
	body.Set("client_id", s.config.ApplicationId)
	body.Set("scope", fmt.Sprintf("%s/.default", &s.api))

	switch {
	case s.config.RefreshToken != "":
		body.Set("grant_type", "refresh_token")
		body.Set("refresh_token", s.config.RefreshToken)
	case s.config.ClientSecret != "":
		body.Set("grant_type", "client_credentials")
		body.Set("client_secret", s.config.ClientSecret)
	case s.config.ClientCert != "" && s.config.ClientKey != "":
		if assertion, err := NewClientAssertion(endpoint.String(), s.config.ApplicationId, s.config.ClientCert, s.config.ClientKey, s.config.ClientKeyPass); err != nil {
			return Token{}, err
		} else {
			body.Set("grant_type", "client_credentials")
			body.Set("client_assertion_type", "urn:ietf:params:oauth:client-assertion-type:jwt-bearer")
			body.Set("client_assertion", assertion)
		}
	case s.config.Username != "" && s.config.Password != "":
		body.Set("grant_type", "password")
		body.Set("username", s.config.Username)
		body.Set("password", s.config.Password)
	default:
		return Token{}, fmt.Errorf("no credentials configured; provide a client secret, certificate, refresh token or username/password")
	}

	return s.requestToken(ctx, http.MethodPost, endpoint, body, nil)
}

// imdsToken requests a token from the instance metadata service. Only
// available when running on an Azure host with a managed identity attached.
func (s *Authenticator) imdsToken(ctx context.Context) (Token, error) {
	endpoint, err := url.Parse(imdsTokenUrl)
	if err != nil {
		return Token{}, err
	}

	params := endpoint.Query()
	params.Set("api-version", "2018-02-01")
	params.Set("resource", s.api.String())
	if s.config.ApplicationId != "" {
		params.Set("client_id", s.config.ApplicationId)
	}
	endpoint.RawQuery = params.Encode()

	return s.requestToken(ctx, http.MethodGet, endpoint, nil, map[string]string{"Metadata": "true"})
}

func (s *Authenticator) requestToken(ctx context.Context, verb string, endpoint *url.URL, body interface{}, headers map[string]string) (Token, error) {
	var token Token

	if req, err := NewRequest(ctx, verb, endpoint, body, nil, headers); err != nil {
		return token, err
	} else if res, err := s.http.Do(req); err != nil {
		return token, fmt.Errorf("unable to request token from %s: %w", endpoint.Host, err)
	} else if res.StatusCode != http.StatusOK {
		var errRes map[string]interface{}
		if err := Decode(res.Body, &errRes); err != nil {
			return token, fmt.Errorf("token request to %s failed with status %d", endpoint.Host, res.StatusCode)
		}
		return token, fmt.Errorf("token request to %s failed: %v", endpoint.Host, errRes["error_description"])
	} else if err := Decode(res.Body, &token); err != nil {
		return token, fmt.Errorf("malformed token response: %w", err)
	} else {
		return token, nil
	}
}
