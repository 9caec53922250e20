package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onboardsec/azgrant/client/config"
)

func newTestAuthenticator(t *testing.T, authorityUrl string) *Authenticator {
	t.Helper()
	authority, err := url.Parse(authorityUrl)
	require.NoError(t, err)
	api, err := url.Parse("https://management.azure.com")
	require.NoError(t, err)

	cfg := config.Config{
		ApplicationId: "app-id",
		ClientSecret:  "hunter2",
		Tenant:        "tenant-id",
	}
	return NewAuthenticator(cfg, *authority, *api, http.DefaultClient)
}

func testClient(t *testing.T, serverUrl string) *restClient {
	t.Helper()
	api, err := url.Parse(serverUrl)
	require.NoError(t, err)

	return &restClient{
		api:        *api,
		http:       http.DefaultClient,
		retryDelay: 0,
	}
}

func TestRestClient_Send(t *testing.T) {
	t.Run("retry after server errors", func(t *testing.T) {
		requestCount := 0
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer testServer.Close()

		client := testClient(t, testServer.URL)
		req, _ := http.NewRequest("GET", testServer.URL, nil)
		_, err := client.send(req)

		require.Error(t, err)
		require.Equal(t, 3, requestCount)
	})

	t.Run("429 honors the retry-after header", func(t *testing.T) {
		requestCount := 0
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			if requestCount == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
			} else {
				w.WriteHeader(http.StatusOK)
			}
		}))
		defer testServer.Close()

		client := testClient(t, testServer.URL)
		req, _ := http.NewRequest("GET", testServer.URL, nil)
		res, err := client.send(req)

		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, 2, requestCount)
	})

	t.Run("client errors are typed and not retried", func(t *testing.T) {
		requestCount := 0
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": "ResourceNotFound"}}`))
		}))
		defer testServer.Close()

		client := testClient(t, testServer.URL)
		req, _ := http.NewRequest("GET", testServer.URL, nil)
		_, err := client.send(req)

		require.Error(t, err)
		require.True(t, IsNotFound(err))
		require.Equal(t, 1, requestCount)

		var httpError HttpError
		require.ErrorAs(t, err, &httpError)
		require.Equal(t, http.StatusNotFound, httpError.StatusCode)
		require.Contains(t, httpError.Error(), "404")
	})
}

func TestAuthenticator_Token(t *testing.T) {
	t.Run("client secret grant", func(t *testing.T) {
		tokenRequests := 0
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenRequests++
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.Form.Get("grant_type"))
			require.Equal(t, "app-id", r.Form.Get("client_id"))
			require.Equal(t, "hunter2", r.Form.Get("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token": "token-value", "token_type": "Bearer", "expires_in": "3599"}`))
		}))
		defer testServer.Close()

		authenticator := newTestAuthenticator(t, testServer.URL)
		token, err := authenticator.Token(context.Background())

		require.NoError(t, err)
		require.Equal(t, "token-value", token.String())
		require.False(t, token.IsExpired())

		// second call is served from cache
		_, err = authenticator.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, tokenRequests)
	})

	t.Run("no credentials configured", func(t *testing.T) {
		authenticator := newTestAuthenticator(t, "http://localhost")
		authenticator.config.ClientSecret = ""

		_, err := authenticator.Token(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "no credentials")
	})
}

func TestToken_IsExpired(t *testing.T) {
	require.True(t, Token{}.IsExpired())

	token := Token{AccessToken: "value", ExpiresIn: 3600, acquired: time.Now()}
	require.False(t, token.IsExpired())

	stale := Token{AccessToken: "value", ExpiresIn: 30, acquired: time.Now()}
	require.True(t, stale.IsExpired())
}
