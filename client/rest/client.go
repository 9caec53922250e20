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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/onboardsec/azgrant/client/config"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . RestClient

type RestClient interface {
	Get(ctx context.Context, path string, params map[string]string, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error)
	Put(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error)
	Send(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// NewRestClient creates a client for the API at apiUrl, authenticating with
// the credentials in config. The bearer token is acquired lazily on the
// first request.
func NewRestClient(apiUrl string, config config.Config) (RestClient, error) {
	if authority, err := url.Parse(config.AuthorityUrl()); err != nil {
		return nil, err
	} else if api, err := url.Parse(apiUrl); err != nil {
		return nil, err
	} else if httpClient, err := NewHTTPClient(config.ProxyUrl); err != nil {
		return nil, err
	} else {
		return &restClient{
			api:           *api,
			http:          httpClient,
			retryDelay:    5,
			authenticator: NewAuthenticator(config, *authority, *api, httpClient),
		}, nil
	}
}

type restClient struct {
	api           url.URL
	http          *http.Client
	retryDelay    int
	authenticator *Authenticator
}

func (s *restClient) Get(ctx context.Context, path string, params map[string]string, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	if req, err := NewRequest(ctx, http.MethodGet, endpoint, nil, params, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Post(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	if req, err := NewRequest(ctx, http.MethodPost, endpoint, body, params, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Put(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	if req, err := NewRequest(ctx, http.MethodPut, endpoint, body, params, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Send(req *http.Request) (*http.Response, error) {
	if token, err := s.authenticator.Token(req.Context()); err != nil {
		return nil, err
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		return s.send(req)
	}
}

func (s *restClient) send(req *http.Request) (*http.Response, error) {
	// copy the bytes in case we need to retry the request
	if body, err := CopyBody(req); err != nil {
		return nil, err
	} else {
		var (
			res        *http.Response
			err        error
			maxRetries = 3
		)
		for retry := 0; retry < maxRetries; retry++ {

			// Reusing http.Request requires rewinding the request body
			// back to a working state
			if body != nil && retry > 0 {
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}

			if res, err = s.http.Do(req); err != nil {
				if IsClosedConnectionErr(err) || IsGoAwayErr(err) {
					fmt.Printf("connection dropped while requesting %s; attempt %d/%d; trying again\n", req.URL, retry+1, maxRetries)
					VariableExponentialBackoff(s.retryDelay, retry)
					continue
				}
				return nil, err
			} else if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
				// See https://learn.microsoft.com/en-us/azure/architecture/best-practices/retry-service-specific#retry-usage-guidance
				if res.StatusCode == http.StatusTooManyRequests {
					retryAfterHeader := res.Header.Get("Retry-After")
					if retryAfter, err := strconv.ParseInt(retryAfterHeader, 10, 64); err != nil {
						return nil, fmt.Errorf("attempting to handle 429 but unable to parse retry-after header: %w", err)
					} else {
						time.Sleep(time.Second * time.Duration(retryAfter))
						continue
					}
				} else if res.StatusCode >= http.StatusInternalServerError {
					VariableExponentialBackoff(s.retryDelay, retry)
					continue
				} else {
					return nil, NewHttpError(res)
				}
			} else {
				return res, nil
			}
		}
		return nil, fmt.Errorf("unable to complete the request after %d attempts: %w", maxRetries, err)
	}
}

func (s *restClient) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}
