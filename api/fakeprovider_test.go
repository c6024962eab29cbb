package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jrsteele09/go-authlete/api"
	"github.com/jrsteele09/go-authlete/api/fakeprovider"
	"github.com/jrsteele09/go-authlete/internal/utils"
	"github.com/jrsteele09/go-authlete/oauth2"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

type providerFixture struct {
	provider *fakeprovider.Provider
	server   *httptest.Server
	client   *api.Client
}

func setupProvider(t *testing.T, settings api.Settings) *providerFixture {
	t.Helper()

	provider, err := fakeprovider.New(
		fakeprovider.WithBasicCredentials(testServiceKey, testServiceSecret),
		fakeprovider.WithBasicCredentials(testOwnerKey, testOwnerSecret),
		fakeprovider.WithAccessToken("service-token"),
	)
	require.NoError(t, err)

	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	settings.BaseURL = server.URL
	settings.Timeout = 5 * time.Second
	if settings.Service == nil {
		settings.Service = api.BasicCredentials{Key: testServiceKey, Secret: testServiceSecret}
	}
	if settings.ServiceOwner == nil {
		settings.ServiceOwner = api.BasicCredentials{Key: testOwnerKey, Secret: testOwnerSecret}
	}
	client, err := api.New(settings)
	require.NoError(t, err)

	return &providerFixture{provider: provider, server: server, client: client}
}

func TestFakeProviderToken(t *testing.T) {
	f := setupProvider(t, api.Settings{})

	params := oauthmodel.TokenParameters{GrantType: oauth2.GrantTypeClientCredentials, Scope: "openid"}
	res, err := f.client.Token(context.Background(), &oauthmodel.TokenRequest{Parameters: params.Encode()})
	require.NoError(t, err)
	require.Equal(t, oauthmodel.TokenActionOK, res.Action)
	require.Equal(t, "A050001", res.ResultCode)

	grantType, ok := res.GrantType.Get()
	require.True(t, ok)
	require.Equal(t, oauth2.GrantTypeAuthorizationCode, grantType)

	claims, err := res.JwtAccessTokenClaims()
	require.NoError(t, err)
	require.Equal(t, "john", claims["sub"])
	require.Equal(t, utils.Value(res.AccessToken), claims["jti"])

	requests := f.provider.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, "Token", requests[0].Endpoint)
	require.Equal(t, "/api/auth/token", requests[0].Path)
	require.NotEmpty(t, requests[0].Header.Get("X-Request-Id"))
}

func TestFakeProviderRejectsBadCredentials(t *testing.T) {
	f := setupProvider(t, api.Settings{Service: api.BasicCredentials{Key: testServiceKey, Secret: "wrong"}})

	_, err := f.client.Introspection(context.Background(), &oauthmodel.IntrospectionRequest{Token: "abc"})
	require.ErrorIs(t, err, api.ErrUnexpectedStatus)

	var callErr *api.APICallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, http.StatusUnauthorized, callErr.HTTPCode())
	require.Contains(t, string(callErr.Body), "A001202")
}

func TestFakeProviderCannedResponses(t *testing.T) {
	f := setupProvider(t, api.Settings{})
	ctx := context.Background()

	f.provider.Handle("Authorization", http.StatusOK, `{
		"resultCode": "A004001",
		"action": "INTERACTION",
		"ticket": "hXoY87t_t23enrVHWxpXNP5FfVDhDypD3T6H6lt4IPA",
		"client": {"clientId": 26888344961664, "clientName": "My Client"},
		"display": "PAGE",
		"prompts": ["LOGIN", "CONSENT"],
		"scopes": [{"name": "openid", "defaultEntry": false}]
	}`)

	res, err := f.client.Authorization(ctx, &oauthmodel.AuthorizationRequest{Parameters: "response_type=code&client_id=26888344961664"})
	require.NoError(t, err)
	require.Equal(t, oauthmodel.AuthorizationActionInteraction, res.Action)
	require.Equal(t, "hXoY87t_t23enrVHWxpXNP5FfVDhDypD3T6H6lt4IPA", utils.Value(res.Ticket))

	f.provider.Handle("ClientGet", http.StatusNotFound, `{"resultCode":"A030201","resultMessage":"[A030201] No such client."}`)
	_, err = f.client.GetClient(ctx, "1")
	var callErr *api.APICallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, http.StatusNotFound, callErr.HTTPCode())
}

func TestFakeProviderManagement(t *testing.T) {
	f := setupProvider(t, api.Settings{})
	ctx := context.Background()

	t.Run("create assigns a client ID", func(t *testing.T) {
		created, err := f.client.CreateClient(ctx, &oauthmodel.Client{
			ClientName:   utils.Ptr("My Client"),
			RedirectURIs: []string{"https://client.example.org/cb"},
		})
		require.NoError(t, err)
		require.NotZero(t, created.ClientID)
		require.Equal(t, "My Client", utils.Value(created.ClientName))

		updated, err := f.client.UpdateClient(ctx, created)
		require.NoError(t, err)
		require.Equal(t, created.ClientID, updated.ClientID)

		require.NoError(t, f.client.DeleteClient(ctx, strconv.FormatInt(created.ClientID, 10)))
	})

	t.Run("concurrent gets", func(t *testing.T) {
		ids := []string{"101", "102", "103", "104", "105"}
		clients := make([]*oauthmodel.Client, len(ids))

		g, gctx := errgroup.WithContext(ctx)
		for i, id := range ids {
			g.Go(func() error {
				c, err := f.client.GetClient(gctx, id)
				if err != nil {
					return err
				}
				clients[i] = c
				return nil
			})
		}
		require.NoError(t, g.Wait())

		for i, id := range ids {
			require.Equal(t, id, strconv.FormatInt(clients[i].ClientID, 10))
			require.Equal(t, "client-"+id, utils.Value(clients[i].ClientName))
		}
	})

	t.Run("services use owner credentials", func(t *testing.T) {
		service, err := f.client.GetService(ctx, 715948317)
		require.NoError(t, err)
		require.Equal(t, int64(715948317), service.APIKey)

		list, err := f.client.GetServiceList(ctx, &oauthmodel.ServiceListRequest{Start: 0, End: 5})
		require.NoError(t, err)
		require.Equal(t, 5, list.End)
		require.Zero(t, list.TotalCount)

		require.NoError(t, f.client.DeleteService(ctx, 715948317))
	})

	t.Run("hsk", func(t *testing.T) {
		res, err := f.client.HskCreate(ctx, &oauthmodel.HskCreateRequest{Kty: "EC", HsmName: "google"})
		require.NoError(t, err)
		require.Equal(t, oauthmodel.HskActionSuccess, res.Action)

		list, err := f.client.HskGetList(ctx)
		require.NoError(t, err)
		require.Equal(t, oauthmodel.HskActionSuccess, list.Action)
	})
}

func TestFakeProviderServiceMetadata(t *testing.T) {
	f := setupProvider(t, api.Settings{})
	ctx := context.Background()

	doc, err := f.client.GetServiceConfiguration(ctx)
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
	require.Equal(t, f.server.URL, doc.IssuerURL)
	require.True(t, doc.SupportsGrantType(oauth2.GrantTypeCIBA))
	require.False(t, doc.SupportsGrantType(oauth2.GrantTypePassword))

	jwks, err := f.client.GetServiceJWKS(ctx)
	require.NoError(t, err)
	keys := jwks.Key(f.provider.Key().KeyID)
	require.Len(t, keys, 1)
	require.True(t, keys[0].IsPublic())
	require.Equal(t, "ES256", keys[0].Algorithm)
}

func TestFakeProviderV3(t *testing.T) {
	f := setupProvider(t, api.Settings{
		Version:       api.V3,
		ServiceAPIKey: testServiceKey,
		Service:       api.NewBearerCredentials("service-token"),
	})

	res, err := f.client.Revocation(context.Background(), &oauthmodel.RevocationRequest{Parameters: "token=abc"})
	require.NoError(t, err)
	require.Equal(t, oauthmodel.RevocationActionOK, res.Action)

	requests := f.provider.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, "/api/"+testServiceKey+"/auth/revocation", requests[0].Path)
	require.Equal(t, "Bearer service-token", requests[0].Header.Get("Authorization"))
}
