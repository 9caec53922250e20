package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onboardsec/azgrant/client/rest"
)

// fakeRestClient satisfies rest.RestClient by delegating every verb to a
// single handler.
type fakeRestClient struct {
	handler func(verb string, path string, body interface{}, params map[string]string) (*http.Response, error)
}

func (s fakeRestClient) Get(ctx context.Context, path string, params map[string]string, headers map[string]string) (*http.Response, error) {
	return s.handler(http.MethodGet, path, nil, params)
}

func (s fakeRestClient) Post(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error) {
	return s.handler(http.MethodPost, path, body, params)
}

func (s fakeRestClient) Put(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error) {
	return s.handler(http.MethodPut, path, body, params)
}

func (s fakeRestClient) Send(req *http.Request) (*http.Response, error) {
	return s.handler(req.Method, req.URL.Path, nil, nil)
}

func (s fakeRestClient) CloseIdleConnections() {}

func jsonResponse(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func TestAzureClient_ResolveUser(t *testing.T) {
	t.Run("resolves the object id", func(t *testing.T) {
		azClient := &azureClient{msgraph: fakeRestClient{
			handler: func(verb, path string, body interface{}, params map[string]string) (*http.Response, error) {
				require.Equal(t, http.MethodGet, verb)
				require.Equal(t, "/v1.0/users/jane.doe@company.com", path)
				return jsonResponse(http.StatusOK, `{"id": "U1", "userPrincipalName": "jane.doe@company.com"}`)
			},
		}}

		user, err := azClient.ResolveUser(context.Background(), "jane.doe@company.com")
		require.NoError(t, err)
		require.Equal(t, "U1", user.Id)
	})

	t.Run("unknown principal", func(t *testing.T) {
		azClient := &azureClient{msgraph: fakeRestClient{
			handler: func(verb, path string, body interface{}, params map[string]string) (*http.Response, error) {
				return nil, rest.HttpError{StatusCode: http.StatusNotFound}
			},
		}}

		_, err := azClient.ResolveUser(context.Background(), "nobody@company.com")
		require.ErrorIs(t, err, ErrPrincipalNotFound)
	})
}

func TestAzureClient_GetRoleDefinition(t *testing.T) {
	t.Run("filters by role name", func(t *testing.T) {
		azClient := &azureClient{resourceMgmt: fakeRestClient{
			handler: func(verb, path string, body interface{}, params map[string]string) (*http.Response, error) {
				require.Equal(t, "/subscriptions/S1/providers/Microsoft.Authorization/roleDefinitions", path)
				require.Equal(t, "roleName eq 'Reader'", params["$filter"])
				return jsonResponse(http.StatusOK, `{"value": [{"id": "/subscriptions/S1/providers/Microsoft.Authorization/roleDefinitions/D1", "properties": {"roleName": "Reader"}}]}`)
			},
		}}

		role, err := azClient.GetRoleDefinition(context.Background(), "S1", "Reader")
		require.NoError(t, err)
		require.Equal(t, "Reader", role.Properties.RoleName)
	})

	t.Run("no matching role", func(t *testing.T) {
		azClient := &azureClient{resourceMgmt: fakeRestClient{
			handler: func(verb, path string, body interface{}, params map[string]string) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"value": []}`)
			},
		}}

		_, err := azClient.GetRoleDefinition(context.Background(), "S1", "No Such Role")
		require.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestAzureClient_CreateRoleAssignment(t *testing.T) {
	scope := "/subscriptions/S1/resourceGroups/RG1"

	azClient := &azureClient{resourceMgmt: fakeRestClient{
		handler: func(verb, path string, body interface{}, params map[string]string) (*http.Response, error) {
			require.Equal(t, http.MethodPut, verb)
			require.True(t, strings.HasPrefix(path, scope+"/providers/Microsoft.Authorization/roleAssignments/"))
			require.Equal(t, "2022-04-01", params["api-version"])
			return jsonResponse(http.StatusCreated, `{"id": "A1", "properties": {"roleDefinitionId": "D1", "principalId": "U1"}}`)
		},
	}}

	assignment, err := azClient.CreateRoleAssignment(context.Background(), scope, "D1", "U1")
	require.NoError(t, err)
	require.Equal(t, "A1", assignment.Id)
	require.Equal(t, "U1", assignment.Properties.PrincipalId)
}
