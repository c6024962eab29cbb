package fakeprovider_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-authlete/api/fakeprovider"
)

func serve(t *testing.T, p *fakeprovider.Provider, method, path, body string, auth func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != nil {
		auth(req)
	}
	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, req)
	return rec
}

func TestProviderCredentials(t *testing.T) {
	p, err := fakeprovider.New(
		fakeprovider.WithBasicCredentials("key", "secret"),
		fakeprovider.WithAccessToken("token"),
	)
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   func(*http.Request)
		status int
	}{
		{"no credentials", nil, http.StatusUnauthorized},
		{"basic", func(r *http.Request) { r.SetBasicAuth("key", "secret") }, http.StatusOK},
		{"wrong secret", func(r *http.Request) { r.SetBasicAuth("key", "nope") }, http.StatusUnauthorized},
		{"unknown key", func(r *http.Request) { r.SetBasicAuth("other", "secret") }, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer token") }, http.StatusOK},
		{"wrong bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer other") }, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, p, http.MethodPost, "/api/auth/revocation", `{"parameters":"token=abc"}`, tt.auth)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestProviderRoutes(t *testing.T) {
	p, err := fakeprovider.New()
	require.NoError(t, err)

	t.Run("service key prefix", func(t *testing.T) {
		rec := serve(t, p, http.MethodPost, "/api/715948317/auth/userinfo", `{"token":"abc"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"action":"OK"`)
	})

	t.Run("owner routes are not scoped", func(t *testing.T) {
		rec := serve(t, p, http.MethodGet, "/api/715948317/service/get/list", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown record", func(t *testing.T) {
		rec := serve(t, p, http.MethodGet, "/api/client/get/my-alias", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "A030201")
	})

	t.Run("delete has no body", func(t *testing.T) {
		rec := serve(t, p, http.MethodDelete, "/api/client/delete/1", "", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("canned response", func(t *testing.T) {
		p.Handle("DeviceVerification", http.StatusOK, `{"action":"EXPIRED"}`)
		rec := serve(t, p, http.MethodPost, "/api/device/verification", `{"userCode":"XWDKSL"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"action":"EXPIRED"}`, rec.Body.String())
	})

	requests := p.Requests()
	require.Len(t, requests, 4)
	require.Equal(t, "UserInfo", requests[0].Endpoint)
	require.JSONEq(t, `{"token":"abc"}`, string(requests[0].Body))
	require.Equal(t, "DeviceVerification", requests[3].Endpoint)
}

func TestProviderSignsWithPublishedKey(t *testing.T) {
	p, err := fakeprovider.New()
	require.NoError(t, err)

	rec := serve(t, p, http.MethodPost, "/api/auth/token", `{"parameters":"grant_type=client_credentials"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		JwtAccessToken string `json:"jwtAccessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	rec = serve(t, p, http.MethodGet, "/api/service/jwks/get", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), p.Key().KeyID)

	token, err := jwt.Parse(body.JwtAccessToken, func(token *jwt.Token) (any, error) {
		require.Equal(t, p.Key().KeyID, token.Header["kid"])
		return &p.Key().PrivateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	require.NoError(t, err)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, "john", sub)
}
