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
	"time"
)

// Token is an OAuth2 access token as returned by the Microsoft identity
// platform or the IMDS endpoint.
type Token struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    IntOrStringInt `json:"expires_in"`

	acquired time.Time
}

func (s Token) IsExpired() bool {
	if s.AccessToken == "" {
		return true
	}
	// refresh a minute ahead of actual expiry
	expires := s.acquired.Add(time.Duration(s.ExpiresIn) * time.Second)
	return time.Now().After(expires.Add(-1 * time.Minute))
}

func (s Token) String() string {
	return s.AccessToken
}

func (s *Token) UnmarshalJSON(data []byte) error {
	type token Token // avoid recursing back into this method
	var parsed token
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	parsed.acquired = time.Now()
	*s = Token(parsed)
	return nil
}
