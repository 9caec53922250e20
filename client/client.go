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

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . AzureClient

import (
	"context"

	"github.com/onboardsec/azgrant/client/config"
	"github.com/onboardsec/azgrant/client/rest"
	"github.com/onboardsec/azgrant/models/azure"
)

// AzureClient defines the methods used to resolve identities via MS Graph
// and to create role assignments via the ARM authorization API.
type AzureClient interface {
	ResolveUser(ctx context.Context, userPrincipalName string) (azure.User, error)
	GetRoleDefinition(ctx context.Context, subscriptionId string, roleName string) (azure.RoleDefinition, error)
	CreateRoleAssignment(ctx context.Context, scope string, roleDefinitionId string, principalId string) (azure.RoleAssignment, error)
	CloseIdleConnections()
}

// NewClient creates clients for the Graph and ARM APIs sharing one set of
// credentials; tokens are acquired per audience.
func NewClient(config config.Config) (AzureClient, error) {
	if msgraph, err := rest.NewRestClient(config.Graph, config); err != nil {
		return nil, err
	} else if resourceMgmt, err := rest.NewRestClient(config.Management, config); err != nil {
		return nil, err
	} else {
		return &azureClient{
			msgraph:      msgraph,
			resourceMgmt: resourceMgmt,
		}, nil
	}
}

type azureClient struct {
	msgraph      rest.RestClient
	resourceMgmt rest.RestClient
}

func (s *azureClient) CloseIdleConnections() {
	s.msgraph.CloseIdleConnections()
	s.resourceMgmt.CloseIdleConnections()
}
