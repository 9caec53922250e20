package sinks

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onboardsec/azgrant/enums"
	"github.com/onboardsec/azgrant/models"
)

func testReport() models.OnboardingReport {
	return models.OnboardingReport{
		Job: models.OnboardingJob{UserPrincipalName: "jane.doe@company.com"},
		Outcomes: []models.GrantOutcome{
			{
				Request: models.GrantRequest{Kind: enums.KindResourceGroup, ResourceName: "RG1", Role: "Contributor"},
				Status:  models.GrantStatusGranted,
				Scope:   "/subscriptions/S1/resourceGroups/RG1",
			},
			{
				Request: models.GrantRequest{Kind: enums.ResourceKind("VM"), ResourceName: "VM1", Role: "Reader"},
				Status:  models.GrantStatusFailed,
				Detail:  "unsupported resource type: VM",
			},
		},
		Granted: 1,
		Failed:  1,
	}
}

func TestWriteToConsole(t *testing.T) {
	var buf bytes.Buffer
	WriteToConsole(&buf, testReport())

	out := buf.String()
	require.Contains(t, out, "Granted ResourceGroup/RG1")
	require.Contains(t, out, "Failed  VM/VM1")
	require.Contains(t, out, "unsupported resource type")
	require.Contains(t, out, "1 granted, 1 failed")
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteToFile(path, testReport()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed models.OnboardingReport
	require.NoError(t, json.Unmarshal(content, &parsed))
	require.Len(t, parsed.Outcomes, 2)
	require.Equal(t, models.GrantStatusGranted, parsed.Outcomes[0].Status)
}
