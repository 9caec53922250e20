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

package client

import (
	"context"
	"fmt"

	"github.com/onboardsec/azgrant/client/rest"
	"github.com/onboardsec/azgrant/constants"
	"github.com/onboardsec/azgrant/models/azure"
)

// ErrPrincipalNotFound indicates the user principal name does not exist in
// the tenant.
var ErrPrincipalNotFound = fmt.Errorf("principal not found")

// ResolveUser resolves a user principal name to its directory object via
// MS Graph. https://learn.microsoft.com/en-us/graph/api/user-get?view=graph-rest-1.0
func (s *azureClient) ResolveUser(ctx context.Context, userPrincipalName string) (azure.User, error) {
	var (
		user   azure.User
		path   = fmt.Sprintf("/%s/users/%s", constants.GraphApiVersion, userPrincipalName)
		params = map[string]string{"$select": "id,displayName,userPrincipalName"}
	)

	if res, err := s.msgraph.Get(ctx, path, params, nil); err != nil {
		if rest.IsNotFound(err) {
			return user, fmt.Errorf("%w: %s", ErrPrincipalNotFound, userPrincipalName)
		}
		return user, fmt.Errorf("unable to resolve user %s: %w", userPrincipalName, err)
	} else if err := rest.Decode(res.Body, &user); err != nil {
		return user, fmt.Errorf("malformed user response: %w", err)
	} else {
		return user, nil
	}
}
