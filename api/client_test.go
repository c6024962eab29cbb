package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jrsteele09/go-authlete/api"
	"github.com/jrsteele09/go-authlete/api/mocks"
	"github.com/jrsteele09/go-authlete/internal/utils"
	"github.com/jrsteele09/go-authlete/oauth2"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

const (
	testServiceKey    = "12898884596863"
	testServiceSecret = "-olDIKD9BihRMB8O1Zvdh5O6s_0nqeIcbp1MCfXQ5Y0"
	testOwnerKey      = "7685684836"
	testOwnerSecret   = "q7Ev9ZeSbBbZzsXH8Kt8o0WHGkhCJ5bnPB1a-nGcU4o"

	tokenResponseBody = `{
		"resultCode": "A050001",
		"resultMessage": "[A050001] The token request (grant_type=authorization_code) was processed successfully.",
		"action": "OK",
		"responseContent": "{\"access_token\":\"Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q\",\"token_type\":\"Bearer\",\"expires_in\":86400,\"scope\":\"openid\"}",
		"accessToken": "Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q",
		"clientId": 26888344961664,
		"grantType": "authorization_code",
		"subject": "john"
	}`
)

func newMockClient(t *testing.T, settings api.Settings) (*api.Client, *mocks.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	if settings.Service == nil {
		settings.Service = api.BasicCredentials{Key: testServiceKey, Secret: testServiceSecret}
	}
	if settings.ServiceOwner == nil {
		settings.ServiceOwner = api.BasicCredentials{Key: testOwnerKey, Secret: testOwnerSecret}
	}
	client, err := api.New(settings, api.WithTransport(transport))
	require.NoError(t, err)
	return client, transport
}

func jsonResponse(status int, body string) *api.Response {
	return &api.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

func TestNew(t *testing.T) {
	t.Run("defaults to V2", func(t *testing.T) {
		client, err := api.New(api.Settings{BaseURL: "https://api.example.com"})
		require.NoError(t, err)
		require.Equal(t, api.V2, client.Version())
	})

	t.Run("V3 requires a service API key", func(t *testing.T) {
		_, err := api.New(api.Settings{BaseURL: "https://api.example.com", Version: api.V3})
		require.Error(t, err)
	})

	t.Run("rejects an unsupported version", func(t *testing.T) {
		_, err := api.New(api.Settings{BaseURL: "https://api.example.com", Version: 7})
		require.Error(t, err)
	})

	t.Run("rejects a relative base URL", func(t *testing.T) {
		_, err := api.New(api.Settings{BaseURL: "/api"})
		require.Error(t, err)
	})
}

func TestParseVersion(t *testing.T) {
	for _, s := range []string{"V3", "v3", "3"} {
		v, ok := api.ParseVersion(s)
		require.True(t, ok)
		require.Equal(t, api.V3, v)
	}
	_, ok := api.ParseVersion("V4")
	require.False(t, ok)
	require.Equal(t, "V2", api.V2.String())
}

func TestTokenCall(t *testing.T) {
	client, transport := newMockClient(t, api.Settings{})

	var sent *api.Request
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *api.Request) (*api.Response, error) {
		sent = req
		return jsonResponse(http.StatusOK, tokenResponseBody), nil
	})

	params := oauthmodel.TokenParameters{GrantType: oauth2.GrantTypeAuthorizationCode, Code: "Xv_su944auuBgc5mfUnxXayiiQU9Z4-T_Yae_UfExmo"}
	res, err := client.Token(context.Background(), &oauthmodel.TokenRequest{Parameters: params.Encode()})
	require.NoError(t, err)
	require.Equal(t, oauthmodel.TokenActionOK, res.Action)
	require.Equal(t, int64(26888344961664), res.ClientID)

	content, err := res.Content()
	require.NoError(t, err)
	require.Equal(t, "Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q", utils.Value(content.AccessToken))

	require.NotNil(t, sent)
	require.Equal(t, "Token", sent.Endpoint)
	require.Equal(t, http.MethodPost, sent.Method)
	require.Equal(t, "/api/auth/token", sent.Path)
	require.Equal(t, "application/json", sent.Header.Get("Content-Type"))

	key, secret, ok := (&http.Request{Header: sent.Header}).BasicAuth()
	require.True(t, ok)
	require.Equal(t, testServiceKey, key)
	require.Equal(t, testServiceSecret, secret)

	_, err = uuid.Parse(sent.Header.Get("X-Request-Id"))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(sent.Body, &body))
	require.Contains(t, body["parameters"], "code=Xv_su944auuBgc5mfUnxXayiiQU9Z4-T_Yae_UfExmo")
}

func TestCallErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("undeclared action is a deserialization error", func(t *testing.T) {
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(jsonResponse(http.StatusOK, `{"action":"TELEPORT"}`), nil)

		_, err := client.Introspection(ctx, &oauthmodel.IntrospectionRequest{Token: "abc"})
		require.ErrorIs(t, err, api.ErrDeserialization)

		var de *api.DeserializationError
		require.True(t, errors.As(err, &de))
		require.Equal(t, "Introspection", de.Endpoint)
		require.JSONEq(t, `{"action":"TELEPORT"}`, string(de.Body))
	})

	t.Run("unknown token action is a deserialization error", func(t *testing.T) {
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(jsonResponse(http.StatusOK, `{"action":"unknown_variant"}`), nil)

		res, err := client.Token(ctx, &oauthmodel.TokenRequest{Parameters: "grant_type=client_credentials"})
		require.Nil(t, res)
		require.ErrorIs(t, err, api.ErrDeserialization)

		var de *api.DeserializationError
		require.True(t, errors.As(err, &de))
		require.Equal(t, "Token", de.Endpoint)
	})

	t.Run("malformed body is a deserialization error", func(t *testing.T) {
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(jsonResponse(http.StatusOK, `not json`), nil)

		_, err := client.Revocation(ctx, &oauthmodel.RevocationRequest{Parameters: "token=abc"})
		require.ErrorIs(t, err, api.ErrDeserialization)
	})

	t.Run("error status keeps the raw body", func(t *testing.T) {
		body := `{"resultCode":"A001201","resultMessage":"[A001201] /auth/token, TLS must be used."}`
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(jsonResponse(http.StatusInternalServerError, body), nil)

		_, err := client.Token(ctx, &oauthmodel.TokenRequest{Parameters: "grant_type=client_credentials"})
		require.ErrorIs(t, err, api.ErrUnexpectedStatus)
		require.NotErrorIs(t, err, api.ErrTransport)

		var callErr *api.APICallError
		require.True(t, errors.As(err, &callErr))
		require.Equal(t, http.StatusInternalServerError, callErr.HTTPCode())
		require.Equal(t, body, string(callErr.Body))
	})

	t.Run("transport failure", func(t *testing.T) {
		dialErr := errors.New("dial tcp: connection refused")
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, dialErr)

		_, err := client.UserInfo(ctx, &oauthmodel.UserInfoRequest{Token: "abc"})
		require.ErrorIs(t, err, api.ErrTransport)
		require.ErrorIs(t, err, dialErr)

		var callErr *api.APICallError
		require.True(t, errors.As(err, &callErr))
		require.Zero(t, callErr.HTTPCode())
	})

	t.Run("invalid request is never sent", func(t *testing.T) {
		client, _ := newMockClient(t, api.Settings{})

		_, err := client.Token(ctx, &oauthmodel.TokenRequest{})
		require.ErrorIs(t, err, api.ErrInvalidRequest)
		require.ErrorIs(t, err, oauthmodel.ErrMissingField)

		_, err = client.GetClient(ctx, "")
		require.ErrorIs(t, err, api.ErrInvalidRequest)

		_, err = client.UpdateClient(ctx, &oauthmodel.Client{})
		require.ErrorIs(t, err, oauthmodel.ErrMissingField)

		_, err = client.GetClientList(ctx, &oauthmodel.ClientListRequest{Start: 10, End: 5})
		require.ErrorIs(t, err, oauthmodel.ErrInvalidField)

		for _, id := range []string{".", ".."} {
			_, err = client.GetClient(ctx, id)
			require.ErrorIs(t, err, api.ErrInvalidRequest)
			require.ErrorIs(t, err, oauthmodel.ErrInvalidField)

			err = client.DeleteClient(ctx, id)
			require.ErrorIs(t, err, api.ErrInvalidRequest)
		}
	})

	t.Run("missing owner credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client, err := api.New(api.Settings{Service: api.BasicCredentials{Key: testServiceKey, Secret: testServiceSecret}},
			api.WithTransport(mocks.NewMockTransport(ctrl)))
		require.NoError(t, err)

		_, err = client.GetServiceList(ctx, &oauthmodel.ServiceListRequest{})
		require.ErrorIs(t, err, api.ErrNoCredentials)
	})
}

func TestPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("V2 escapes path parameters", func(t *testing.T) {
		client, transport := newMockClient(t, api.Settings{})
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *api.Request) (*api.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "/api/client/get/my%2Falias", req.Path)
			require.Nil(t, req.Body)
			return jsonResponse(http.StatusOK, `{"clientId":57297408867,"clientIdAlias":"my/alias"}`), nil
		})

		c, err := client.GetClient(ctx, "my/alias")
		require.NoError(t, err)
		require.Equal(t, int64(57297408867), c.ClientID)
	})

	t.Run("V3 scopes service paths with bearer credentials", func(t *testing.T) {
		client, transport := newMockClient(t, api.Settings{
			Version:       api.V3,
			ServiceAPIKey: testServiceKey,
			Service:       api.NewBearerCredentials("service-token"),
			ServiceOwner:  api.NewBearerCredentials("owner-token"),
		})
		require.Equal(t, api.V3, client.Version())

		gomock.InOrder(
			transport.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *api.Request) (*api.Response, error) {
				require.Equal(t, "/api/"+testServiceKey+"/auth/token/delete/abc", req.Path)
				require.Equal(t, http.MethodDelete, req.Method)
				require.Equal(t, "Bearer service-token", req.Header.Get("Authorization"))
				return &api.Response{StatusCode: http.StatusNoContent}, nil
			}),
			transport.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *api.Request) (*api.Response, error) {
				require.Equal(t, "/api/service/get/list", req.Path)
				require.Equal(t, "5", req.Query.Get("end"))
				require.Equal(t, "Bearer owner-token", req.Header.Get("Authorization"))
				return jsonResponse(http.StatusOK, `{"start":0,"end":5,"totalCount":1,"services":[{"apiKey":12898884596863}]}`), nil
			}),
		)

		require.NoError(t, client.TokenDelete(ctx, "abc"))

		list, err := client.GetServiceList(ctx, &oauthmodel.ServiceListRequest{End: 5})
		require.NoError(t, err)
		require.Len(t, list.Services, 1)
		require.Equal(t, int64(12898884596863), list.Services[0].APIKey)
	})
}

func TestHTTPTransportKeepsEscapedPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	transport, err := api.NewHTTPTransport(server.URL+"/base/", nil)
	require.NoError(t, err)

	for _, path := range []string{"/api/client/get/my%2Falias", "/api/client/get/a..b"} {
		t.Run(path, func(t *testing.T) {
			res, err := transport.Send(context.Background(), &api.Request{Method: http.MethodGet, Path: path})
			require.NoError(t, err)
			require.Equal(t, http.StatusNoContent, res.StatusCode)
			require.Equal(t, "/base"+path, gotPath)
		})
	}

	_, err = transport.Send(context.Background(), &api.Request{Method: http.MethodGet, Path: "/api/%zz"})
	require.Error(t, err)
}
