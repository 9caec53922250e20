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

package config

import "fmt"

// Config holds the connection and credential settings for the Azure client.
type Config struct {
	ApplicationId   string // The client id of the application registration
	Authority       string // The identity platform base url, e.g. https://login.microsoftonline.com
	ClientSecret    string
	ClientCert      string // PEM encoded certificate for client assertion auth
	ClientKey       string // PEM encoded private key for client assertion auth
	ClientKeyPass   string
	Graph           string // The MS Graph base url
	Management      string // The ARM base url
	Password        string
	ProxyUrl        string
	RefreshToken    string
	SubscriptionId  string
	Tenant          string
	Username        string
	ManagedIdentity bool
}

// AuthorityUrl returns the tenant scoped authority endpoint.
func (s Config) AuthorityUrl() string {
	return fmt.Sprintf("%s/%s", s.Authority, s.Tenant)
}
