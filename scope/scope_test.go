package scope

import (
	"testing"

	"github.com/onboardsec/azgrant/enums"
	"github.com/stretchr/testify/require"
)

const subId = "00000000-0000-0000-0000-000000000000"

func TestResolve(t *testing.T) {
	t.Run("resource group scope uses the resource name as the group", func(t *testing.T) {
		scope, err := Resolve(enums.KindResourceGroup, subId, "ignored", "RG1")
		require.NoError(t, err)
		require.Equal(t, "/subscriptions/"+subId+"/resourceGroups/RG1", scope)
	})

	t.Run("provider scopes", func(t *testing.T) {
		cases := []struct {
			kind     enums.ResourceKind
			expected string
		}{
			{enums.KindStorageAccount, "/providers/Microsoft.Storage/storageAccounts/SA1"},
			{enums.KindVirtualMachine, "/providers/Microsoft.Compute/virtualMachines/SA1"},
			{enums.KindAppService, "/providers/Microsoft.Web/sites/SA1"},
			{enums.KindAzureFunction, "/providers/Microsoft.Web/sites/SA1/functions"},
			{enums.KindKeyVault, "/providers/Microsoft.KeyVault/vaults/SA1"},
			{enums.KindAzureSQLDatabase, "/providers/Microsoft.Sql/servers/SA1"},
			{enums.KindCosmosDB, "/providers/Microsoft.DocumentDB/databaseAccounts/SA1"},
			{enums.KindAKS, "/providers/Microsoft.ContainerService/managedClusters/SA1"},
			{enums.KindLogAnalytics, "/providers/Microsoft.OperationalInsights/workspaces/SA1"},
			{enums.KindAPIManagement, "/providers/Microsoft.ApiManagement/service/SA1"},
			{enums.KindServiceBus, "/providers/Microsoft.ServiceBus/namespaces/SA1"},
			{enums.KindSynapseAnalytics, "/providers/Microsoft.Synapse/workspaces/SA1"},
			{enums.KindDataFactory, "/providers/Microsoft.DataFactory/factories/SA1"},
			{enums.KindBastion, "/providers/Microsoft.Network/bastionHosts/SA1"},
			{enums.KindContainerRegistry, "/providers/Microsoft.ContainerRegistry/registries/SA1"},
			{enums.KindNetwork, "/providers/Microsoft.Network/virtualNetworks/SA1"},
		}

		prefix := "/subscriptions/" + subId + "/resourceGroups/RG1"
		for _, tc := range cases {
			scope, err := Resolve(tc.kind, subId, "RG1", "SA1")
			require.NoError(t, err, "kind %s", tc.kind)
			require.Equal(t, prefix+tc.expected, scope, "kind %s", tc.kind)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := Resolve(enums.KindKeyVault, subId, "RG1", "vault-a")
		require.NoError(t, err)
		second, err := Resolve(enums.KindKeyVault, subId, "RG1", "vault-a")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := Resolve(enums.ResourceKind("VM"), subId, "RG1", "VM1")
		require.Error(t, err)

		var unsupported UnsupportedKindError
		require.ErrorAs(t, err, &unsupported)
		require.Equal(t, enums.ResourceKind("VM"), unsupported.Kind)
	})

	t.Run("empty resource group is embedded, not rejected", func(t *testing.T) {
		scope, err := Resolve(enums.KindVirtualMachine, subId, "", "VM1")
		require.NoError(t, err)
		require.Equal(t, "/subscriptions/"+subId+"/resourceGroups//providers/Microsoft.Compute/virtualMachines/VM1", scope)
	})
}
