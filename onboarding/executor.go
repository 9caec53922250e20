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

package onboarding

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/onboardsec/azgrant/client"
	"github.com/onboardsec/azgrant/models"
	"github.com/onboardsec/azgrant/scope"
)

// executor applies a single grant request: resolve the scope, translate the
// role name to a role definition, create the assignment. Every failure mode
// is captured in the outcome rather than returned; a bad row must never
// block the rows after it.
type executor struct {
	azClient client.AzureClient
	log      logr.Logger
}

// execute performs at most one role assignment write. On any resolution
// failure no write is attempted.
func (s executor) execute(ctx context.Context, request models.GrantRequest, principalId string, subscriptionId string) models.GrantOutcome {
	outcome := models.GrantOutcome{Request: request}

	resolvedScope, err := scope.Resolve(request.Kind, subscriptionId, request.ResourceGroup, request.ResourceName)
	if err != nil {
		outcome.Status = models.GrantStatusFailed
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.Scope = resolvedScope

	role, err := s.azClient.GetRoleDefinition(ctx, subscriptionId, request.Role)
	if err != nil {
		outcome.Status = models.GrantStatusFailed
		outcome.Detail = err.Error()
		return outcome
	}

	if assignment, err := s.azClient.CreateRoleAssignment(ctx, resolvedScope, role.Id, principalId); err != nil {
		// surfaced verbatim; the API's own message covers duplicates,
		// throttling and permission problems
		outcome.Status = models.GrantStatusFailed
		outcome.Detail = err.Error()
	} else {
		s.log.V(1).Info("created role assignment", "id", assignment.Id, "role", request.Role, "scope", resolvedScope)
		outcome.Status = models.GrantStatusGranted
	}

	return outcome
}
