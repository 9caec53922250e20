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

	"github.com/gofrs/uuid"

	"github.com/onboardsec/azgrant/client/rest"
	"github.com/onboardsec/azgrant/constants"
	"github.com/onboardsec/azgrant/models/azure"
)

// ErrRoleNotFound indicates no role definition carries the requested role
// name in the subscription.
var ErrRoleNotFound = fmt.Errorf("role definition not found")

// GetRoleDefinition looks up the role definition matching roleName at the
// subscription scope, the same translation the portal performs for a role
// name. https://learn.microsoft.com/en-us/rest/api/authorization/role-definitions/list
func (s *azureClient) GetRoleDefinition(ctx context.Context, subscriptionId string, roleName string) (azure.RoleDefinition, error) {
	var (
		list   azure.RoleDefinitionList
		path   = fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleDefinitions", subscriptionId)
		params = map[string]string{
			"api-version": constants.AuthorizationApiVersion,
			"$filter":     fmt.Sprintf("roleName eq '%s'", roleName),
		}
	)

	if res, err := s.resourceMgmt.Get(ctx, path, params, nil); err != nil {
		return azure.RoleDefinition{}, fmt.Errorf("unable to list role definitions: %w", err)
	} else if err := rest.Decode(res.Body, &list); err != nil {
		return azure.RoleDefinition{}, fmt.Errorf("malformed role definition response: %w", err)
	} else if len(list.Value) == 0 {
		return azure.RoleDefinition{}, fmt.Errorf("%w: %s", ErrRoleNotFound, roleName)
	} else {
		return list.Value[0], nil
	}
}

// CreateRoleAssignment assigns the role definition to the principal at the
// given scope. The assignment name is a fresh v4 UUID, as the API requires.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignments/create
func (s *azureClient) CreateRoleAssignment(ctx context.Context, scope string, roleDefinitionId string, principalId string) (azure.RoleAssignment, error) {
	name, err := uuid.NewV4()
	if err != nil {
		return azure.RoleAssignment{}, fmt.Errorf("unable to generate role assignment name: %w", err)
	}

	var (
		assignment azure.RoleAssignment
		path       = fmt.Sprintf("%s/providers/Microsoft.Authorization/roleAssignments/%s", scope, name)
		params     = map[string]string{"api-version": constants.AuthorizationApiVersion}
		body       = azure.RoleAssignmentCreate{
			Properties: azure.RoleAssignmentProperties{
				RoleDefinitionId: roleDefinitionId,
				PrincipalId:      principalId,
			},
		}
	)

	if res, err := s.resourceMgmt.Put(ctx, path, body, params, nil); err != nil {
		return assignment, fmt.Errorf("unable to create role assignment at %s: %w", scope, err)
	} else if err := rest.Decode(res.Body, &assignment); err != nil {
		return assignment, fmt.Errorf("malformed role assignment response: %w", err)
	} else {
		return assignment, nil
	}
}
