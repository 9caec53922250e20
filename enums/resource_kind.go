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

package enums

// ResourceKind is the resource type tag used in the ResourceType column of a
// permission manifest.
type ResourceKind string

const (
	KindResourceGroup     ResourceKind = "ResourceGroup"
	KindStorageAccount    ResourceKind = "StorageAccount"
	KindVirtualMachine    ResourceKind = "VirtualMachine"
	KindAppService        ResourceKind = "AppService"
	KindAzureFunction     ResourceKind = "AzureFunction"
	KindKeyVault          ResourceKind = "KeyVault"
	KindAzureSQLDatabase  ResourceKind = "AzureSQLDatabase"
	KindCosmosDB          ResourceKind = "CosmosDB"
	KindAKS               ResourceKind = "AKS"
	KindLogAnalytics      ResourceKind = "LogAnalytics"
	KindAPIManagement     ResourceKind = "APIManagement"
	KindServiceBus        ResourceKind = "ServiceBus"
	KindSynapseAnalytics  ResourceKind = "AzureSynapseAnalytics"
	KindDataFactory       ResourceKind = "DataFactory"
	KindBastion           ResourceKind = "AzureBastion"
	KindContainerRegistry ResourceKind = "ContainerRegistry"
	KindNetwork           ResourceKind = "Network"
)
