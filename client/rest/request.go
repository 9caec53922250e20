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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/onboardsec/azgrant/constants"
)

// NewRequest builds a JSON request against the given endpoint. Form-encoded
// bodies are produced when body is url.Values (token requests).
func NewRequest(ctx context.Context, verb string, endpoint *url.URL, body interface{}, params map[string]string, headers map[string]string) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)

	switch data := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(data.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("unable to encode request body: %w", err)
		}
		reader = buf
		contentType = "application/json"
	}

	if len(params) > 0 {
		query := endpoint.Query()
		for key, value := range params {
			query.Set(key, value)
		}
		endpoint.RawQuery = query.Encode()
	}

	if req, err := http.NewRequestWithContext(ctx, verb, endpoint.String(), reader); err != nil {
		return nil, err
	} else {
		req.Header.Set("User-Agent", constants.UserAgent())
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req, nil
	}
}
