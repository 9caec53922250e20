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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// HttpError is a non-retryable error response from the API, carrying the
// status code and whatever error body the service returned.
type HttpError struct {
	StatusCode int
	Body       map[string]interface{}
}

func NewHttpError(res *http.Response) HttpError {
	httpError := HttpError{StatusCode: res.StatusCode}
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(&httpError.Body); err != nil {
		httpError.Body = nil
	}
	return httpError
}

func (s HttpError) Error() string {
	if len(s.Body) == 0 {
		return fmt.Sprintf("received status code %d", s.StatusCode)
	}
	return fmt.Sprintf("received status code %d: %v", s.StatusCode, s.Body)
}

// IsNotFound reports whether err is an HttpError with a 404 status.
func IsNotFound(err error) bool {
	var httpError HttpError
	return errors.As(err, &httpError) && httpError.StatusCode == http.StatusNotFound
}
