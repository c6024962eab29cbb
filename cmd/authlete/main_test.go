package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-authlete/api/fakeprovider"
	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
	"github.com/jrsteele09/go-authlete/oauth2"
)

func setupFakeProvider(t *testing.T) *fakeprovider.Provider {
	t.Helper()
	provider, err := fakeprovider.New(
		fakeprovider.WithBasicCredentials("service-key", "service-secret"),
		fakeprovider.WithAccessToken("owner-token"),
	)
	require.NoError(t, err)
	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	t.Setenv("AUTHLETE_BASE_URL", server.URL)
	t.Setenv("AUTHLETE_API_VERSION", "V2")
	t.Setenv("AUTHLETE_SERVICE_APIKEY", "service-key")
	t.Setenv("AUTHLETE_SERVICE_APISECRET", "service-secret")
	t.Setenv("AUTHLETE_SERVICEOWNER_ACCESSTOKEN", "owner-token")
	t.Setenv("LOG_LEVEL", "error")
	return provider
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClientCommands(t *testing.T) {
	provider := setupFakeProvider(t)

	t.Run("get one", func(t *testing.T) {
		out, err := execute(t, "client", "get", "26888344961664")
		require.NoError(t, err)

		var client map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &client))
		require.Equal(t, float64(26888344961664), client["clientId"])
	})

	t.Run("get many", func(t *testing.T) {
		out, err := execute(t, "client", "get", "1", "2", "3", "4", "5", "6")
		require.NoError(t, err)

		var clients []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &clients))
		require.Len(t, clients, 6)
		for i, c := range clients {
			require.Equal(t, float64(i+1), c["clientId"])
		}
	})

	t.Run("get fails on any error", func(t *testing.T) {
		_, err := execute(t, "client", "get", "1", "not-a-number")
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := execute(t, "client", "delete", "7")
		require.NoError(t, err)

		requests := provider.Requests()
		last := requests[len(requests)-1]
		require.Equal(t, "ClientDelete", last.Endpoint)
		require.Equal(t, http.MethodDelete, last.Method)
	})

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, "client", "list", "--developer", "john", "--end", "10")
		require.NoError(t, err)
		require.Contains(t, out, `"totalCount": 0`)

		requests := provider.Requests()
		last := requests[len(requests)-1]
		require.Equal(t, "john", last.Query.Get("developer"))
		require.Equal(t, "10", last.Query.Get("end"))
	})
}

func TestServiceCommands(t *testing.T) {
	provider := setupFakeProvider(t)

	out, err := execute(t, "service", "get", "715948317")
	require.NoError(t, err)
	require.Contains(t, out, `"apiKey": 715948317`)

	requests := provider.Requests()
	require.Equal(t, "Bearer owner-token", requests[len(requests)-1].Header.Get("Authorization"))

	out, err = execute(t, "service", "config")
	require.NoError(t, err)
	require.Contains(t, out, `"issuer"`)

	out, err = execute(t, "service", "jwks")
	require.NoError(t, err)
	require.Contains(t, out, provider.Key().KeyID)

	_, err = execute(t, "service", "get", "abc")
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestTokenAndHskCommands(t *testing.T) {
	provider := setupFakeProvider(t)

	out, err := execute(t, "token", "introspect", "abc", "--scope", "openid", "--subject", "john")
	require.NoError(t, err)
	require.Contains(t, out, `"usable": true`)

	requests := provider.Requests()
	var body map[string]any
	require.NoError(t, json.Unmarshal(requests[len(requests)-1].Body, &body))
	require.Equal(t, "abc", body["token"])
	require.Equal(t, "john", body["subject"])

	_, err = execute(t, "token", "list", "--client", "26888344961664")
	require.NoError(t, err)

	_, err = execute(t, "token", "delete", "abc")
	require.NoError(t, err)

	out, err = execute(t, "hsk", "list")
	require.NoError(t, err)
	require.Contains(t, out, `"action": "SUCCESS"`)
}

func TestMissingCredentials(t *testing.T) {
	t.Setenv("AUTHLETE_SERVICE_APIKEY", "")
	t.Setenv("AUTHLETE_SERVICE_APISECRET", "")
	t.Setenv("AUTHLETE_SERVICE_ACCESSTOKEN", "")
	t.Setenv("AUTHLETE_SERVICEOWNER_APIKEY", "")
	t.Setenv("AUTHLETE_SERVICEOWNER_APISECRET", "")
	t.Setenv("AUTHLETE_SERVICEOWNER_ACCESSTOKEN", "")

	_, err := execute(t, "hsk", "list")
	require.ErrorIs(t, err, apperrors.ErrMissingCredentials)
}

func TestEnumCommand(t *testing.T) {
	out, err := execute(t, "enum")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	require.Equal(t, oauth2.KindNames(), names)

	out, err = execute(t, "enum", oauth2.GrantTypes().Kind())
	require.NoError(t, err)
	var table []oauth2.Constant
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Contains(t, table, oauth2.Constant{Ordinal: 1, Wire: "authorization_code", Name: "AUTHORIZATION_CODE"})

	_, err = execute(t, "enum", "Bogus")
	require.ErrorIs(t, err, apperrors.ErrUnknownKind)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "authlete dev")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "enum")
	require.ErrorIs(t, err, apperrors.ErrInvalidLogLevel)
}
