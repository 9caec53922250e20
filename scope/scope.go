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

// Package scope maps a manifest resource kind to the fully qualified ARM
// scope a role assignment applies to. Pure string construction; adding a new
// resource kind is one providerPaths entry.
package scope

import (
	"fmt"

	"github.com/onboardsec/azgrant/enums"
)

// UnsupportedKindError indicates a ResourceType tag outside the known set.
// Row-local: the caller reports it and moves on to the next row.
type UnsupportedKindError struct {
	Kind enums.ResourceKind
}

func (s UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported resource type: %s", s.Kind)
}

// providerPaths holds the provider-relative path fragment per resource kind.
// Each fragment takes the resource name as its single format argument.
var providerPaths = map[enums.ResourceKind]string{
	enums.KindStorageAccount:    "Microsoft.Storage/storageAccounts/%s",
	enums.KindVirtualMachine:    "Microsoft.Compute/virtualMachines/%s",
	enums.KindAppService:        "Microsoft.Web/sites/%s",
	enums.KindAzureFunction:     "Microsoft.Web/sites/%s/functions",
	enums.KindKeyVault:          "Microsoft.KeyVault/vaults/%s",
	enums.KindAzureSQLDatabase:  "Microsoft.Sql/servers/%s",
	enums.KindCosmosDB:          "Microsoft.DocumentDB/databaseAccounts/%s",
	enums.KindAKS:               "Microsoft.ContainerService/managedClusters/%s",
	enums.KindLogAnalytics:      "Microsoft.OperationalInsights/workspaces/%s",
	enums.KindAPIManagement:     "Microsoft.ApiManagement/service/%s",
	enums.KindServiceBus:        "Microsoft.ServiceBus/namespaces/%s",
	enums.KindSynapseAnalytics:  "Microsoft.Synapse/workspaces/%s",
	enums.KindDataFactory:       "Microsoft.DataFactory/factories/%s",
	enums.KindBastion:           "Microsoft.Network/bastionHosts/%s",
	enums.KindContainerRegistry: "Microsoft.ContainerRegistry/registries/%s",
	enums.KindNetwork:           "Microsoft.Network/virtualNetworks/%s",
}

// Resolve builds the ARM scope path for a manifest row. It performs no
// validation of the inputs beyond the kind lookup; an empty resource group
// yields a syntactically odd but deterministic path and is left for ARM to
// reject.
func Resolve(kind enums.ResourceKind, subscriptionId string, resourceGroup string, resourceName string) (string, error) {
	if kind == enums.KindResourceGroup {
		// Manifest authoring quirk kept for fidelity: ResourceGroup rows put
		// the group name in the ResourceName column and leave
		// ResourceGroupName empty, so the name is the group here.
		return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionId, resourceName), nil
	} else if fragment, ok := providerPaths[kind]; !ok {
		return "", UnsupportedKindError{Kind: kind}
	} else {
		return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s",
			subscriptionId, resourceGroup, fmt.Sprintf(fragment, resourceName)), nil
	}
}
