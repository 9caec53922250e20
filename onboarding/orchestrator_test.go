package onboarding

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onboardsec/azgrant/client/mocks"
	"github.com/onboardsec/azgrant/manifest"
	"github.com/onboardsec/azgrant/models"
	"github.com/onboardsec/azgrant/models/azure"
)

const subId = "00000000-0000-0000-0000-000000000000"

func testJob() models.OnboardingJob {
	return models.OnboardingJob{
		UserPrincipalName: "jane.doe@company.com",
		Position:          "Developer",
		Client:            "ClientA",
		SubscriptionId:    subId,
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ClientA-Developer-Permissions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir
}

func readerDefinition() azure.RoleDefinition {
	return azure.RoleDefinition{
		Id:         "/subscriptions/" + subId + "/providers/Microsoft.Authorization/roleDefinitions/D1",
		Properties: azure.RoleDefinitionProperties{RoleName: "Reader"},
	}
}

func TestOrchestrator_Run(t *testing.T) {
	t.Run("grants every row in manifest order", func(t *testing.T) {
		dir := writeManifest(t,
			"ResourceType,ResourceName,Role,ResourceGroupName\n"+
				"ResourceGroup,RG1,Contributor,\n"+
				"VirtualMachine,VM1,Reader,RG1\n"+
				"StorageAccount,SA1,Storage Blob Data Contributor,RG1\n")

		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		azClient.EXPECT().ResolveUser(gomock.Any(), "jane.doe@company.com").
			Return(azure.User{Id: "U1"}, nil)
		azClient.EXPECT().GetRoleDefinition(gomock.Any(), subId, gomock.Any()).
			Return(readerDefinition(), nil).Times(3)

		expectedScopes := []string{
			"/subscriptions/" + subId + "/resourceGroups/RG1",
			"/subscriptions/" + subId + "/resourceGroups/RG1/providers/Microsoft.Compute/virtualMachines/VM1",
			"/subscriptions/" + subId + "/resourceGroups/RG1/providers/Microsoft.Storage/storageAccounts/SA1",
		}
		for _, expected := range expectedScopes {
			azClient.EXPECT().CreateRoleAssignment(gomock.Any(), expected, gomock.Any(), "U1").
				Return(azure.RoleAssignment{Id: "A-" + expected}, nil)
		}

		report, err := NewOrchestrator(azClient, dir, logr.Discard()).Run(context.Background(), testJob())
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 3)
		require.Equal(t, 3, report.Granted)
		require.Equal(t, 0, report.Failed)

		for i, outcome := range report.Outcomes {
			require.Equal(t, models.GrantStatusGranted, outcome.Status)
			require.Equal(t, expectedScopes[i], outcome.Scope)
		}
	})

	t.Run("unsupported resource type fails only its row", func(t *testing.T) {
		dir := writeManifest(t,
			"ResourceType,ResourceName,Role,ResourceGroupName\n"+
				"ResourceGroup,RG1,Contributor,\n"+
				"VM,VM1,Reader,RG1\n"+
				"StorageAccount,SA1,Reader,RG1\n")

		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		azClient.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
			Return(azure.User{Id: "U1"}, nil)
		azClient.EXPECT().GetRoleDefinition(gomock.Any(), subId, gomock.Any()).
			Return(readerDefinition(), nil).Times(2)
		azClient.EXPECT().CreateRoleAssignment(gomock.Any(), gomock.Any(), gomock.Any(), "U1").
			Return(azure.RoleAssignment{}, nil).Times(2)

		report, err := NewOrchestrator(azClient, dir, logr.Discard()).Run(context.Background(), testJob())
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 3)

		require.Equal(t, models.GrantStatusGranted, report.Outcomes[0].Status)
		require.Equal(t, models.GrantStatusFailed, report.Outcomes[1].Status)
		require.Contains(t, report.Outcomes[1].Detail, "unsupported resource type")
		require.Equal(t, models.GrantStatusGranted, report.Outcomes[2].Status)
	})

	t.Run("unknown principal fails every row without any writes", func(t *testing.T) {
		dir := writeManifest(t,
			"ResourceType,ResourceName,Role,ResourceGroupName\n"+
				"ResourceGroup,RG1,Contributor,\n"+
				"VirtualMachine,VM1,Reader,RG1\n")

		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		azClient.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
			Return(azure.User{}, fmt.Errorf("principal not found: jane.doe@company.com"))
		azClient.EXPECT().GetRoleDefinition(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		azClient.EXPECT().CreateRoleAssignment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		report, err := NewOrchestrator(azClient, dir, logr.Discard()).Run(context.Background(), testJob())
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 2)
		require.Equal(t, 2, report.Failed)

		for _, outcome := range report.Outcomes {
			require.Equal(t, models.GrantStatusFailed, outcome.Status)
			require.Contains(t, outcome.Detail, "principal not found")
		}
	})

	t.Run("role assignment failure carries upstream detail", func(t *testing.T) {
		dir := writeManifest(t,
			"ResourceType,ResourceName,Role,ResourceGroupName\n"+
				"KeyVault,KV1,Reader,RG1\n")

		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		azClient.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
			Return(azure.User{Id: "U1"}, nil)
		azClient.EXPECT().GetRoleDefinition(gomock.Any(), subId, "Reader").
			Return(readerDefinition(), nil)
		azClient.EXPECT().CreateRoleAssignment(gomock.Any(), gomock.Any(), gomock.Any(), "U1").
			Return(azure.RoleAssignment{}, fmt.Errorf("received status code 409: role assignment already exists"))

		report, err := NewOrchestrator(azClient, dir, logr.Discard()).Run(context.Background(), testJob())
		require.NoError(t, err)
		require.Equal(t, 1, report.Failed)
		require.Contains(t, report.Outcomes[0].Detail, "409")
	})

	t.Run("malformed row fails its row and the rest proceed", func(t *testing.T) {
		dir := writeManifest(t,
			"ResourceType,ResourceName,Role,ResourceGroupName\n"+
				"VirtualMachine,VM1,,RG1\n"+
				"KeyVault,KV1,Reader,RG1\n")

		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		azClient.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
			Return(azure.User{Id: "U1"}, nil)
		azClient.EXPECT().GetRoleDefinition(gomock.Any(), subId, "Reader").
			Return(readerDefinition(), nil)
		azClient.EXPECT().CreateRoleAssignment(gomock.Any(), gomock.Any(), gomock.Any(), "U1").
			Return(azure.RoleAssignment{}, nil)

		report, err := NewOrchestrator(azClient, dir, logr.Discard()).Run(context.Background(), testJob())
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 2)
		require.Equal(t, models.GrantStatusFailed, report.Outcomes[0].Status)
		require.Contains(t, report.Outcomes[0].Detail, "malformed")
		require.Equal(t, models.GrantStatusGranted, report.Outcomes[1].Status)
	})

	t.Run("missing manifest aborts with zero outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)
		azClient.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewOrchestrator(azClient, t.TempDir(), logr.Discard()).Run(context.Background(), testJob())

		var notFound manifest.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("invalid job fails fast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		azClient := mocks.NewMockAzureClient(ctrl)

		job := testJob()
		job.SubscriptionId = ""

		_, err := NewOrchestrator(azClient, t.TempDir(), logr.Discard()).Run(context.Background(), job)

		var invalid InvalidJobError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "subscriptionId", invalid.Field)
	})
}
