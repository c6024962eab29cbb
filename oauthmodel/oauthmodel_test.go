package oauthmodel_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/internal/utils"
	"github.com/jrsteele09/go-authlete/oauth2"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

const tokenFixture = `{
	"resultCode": "A050001",
	"resultMessage": "[A050001] The token request (grant_type=authorization_code) was processed successfully.",
	"action": "OK",
	"responseContent": "{\"access_token\":\"Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q\",\"token_type\":\"Bearer\",\"expires_in\":3600}",
	"accessToken": "Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q",
	"accessTokenExpiresAt": 1634191710000,
	"accessTokenDuration": 3600,
	"grantType": "authorization_code",
	"clientAuthMethod": "client_secret_basic",
	"clientId": 26888344961664,
	"subject": "john",
	"scopes": ["openid", "profile"],
	"subjectTokenType": "urn:example:not-declared"
}`

func TestTokenResponseFixture(t *testing.T) {
	t.Run("OK action and populated tokens", func(t *testing.T) {
		var resp oauthmodel.TokenResponse
		require.NoError(t, json.Unmarshal([]byte(tokenFixture), &resp))

		require.Equal(t, oauthmodel.TokenActionOK, resp.Action)
		require.Equal(t, "A050001", resp.ResultCode)
		require.Equal(t, "Z5a40U6dWvw2gMoCOAFbZcM85q4HC0Z--0YKD9-Nf6Q", utils.Value(resp.AccessToken))
		require.Equal(t, int64(26888344961664), resp.ClientID)
		require.Equal(t, []string{"openid", "profile"}, resp.Scopes)

		grant, ok := resp.GrantType.Get()
		require.True(t, ok)
		require.Equal(t, oauth2.GrantTypeAuthorizationCode, grant)

		method, ok := resp.ClientAuthMethod.Get()
		require.True(t, ok)
		require.True(t, method.IsSecretBased())

		require.False(t, resp.SubjectTokenType.IsSet(), "advisory enum degrades to unset")
		require.Equal(t, "urn:example:not-declared", resp.SubjectTokenType.Raw())

		content, err := resp.Content()
		require.NoError(t, err)
		require.Equal(t, "Bearer", content.TokenType)
		require.Equal(t, int64(3600), content.ExpiresIn)
	})

	t.Run("unknown action fails", func(t *testing.T) {
		var resp oauthmodel.TokenResponse
		err := json.Unmarshal([]byte(`{"action":"unknown_variant"}`), &resp)
		require.Error(t, err)
		require.True(t, errors.Is(err, enum.ErrNotFound))
	})
}

func TestActionOrdinalsFollowDeclarationOrder(t *testing.T) {
	require.Equal(t, 0, int(oauthmodel.TokenIssueActionInternalServerError))
	require.Equal(t, 1, int(oauthmodel.TokenIssueActionOK))
	require.Equal(t, 0, int(oauthmodel.PushedAuthReqActionCreated))
	require.Equal(t, 5, int(oauthmodel.PushedAuthReqActionInternalServerError))
	require.Equal(t, 0, int(oauthmodel.HskActionSuccess))

	action, err := oauthmodel.TokenActions().FromOrdinal(4)
	require.NoError(t, err)
	require.Equal(t, oauthmodel.TokenActionOK, action)
	require.Equal(t, "JWT_BEARER", oauthmodel.TokenActionJWTBearer.String())

	var a oauthmodel.DeviceVerificationAction
	require.NoError(t, json.Unmarshal([]byte(`"VALID"`), &a))
	require.Equal(t, oauthmodel.DeviceVerificationActionValid, a)
}

func TestBackchannelAuthenticationResponse(t *testing.T) {
	body := `{"action":"USER_IDENTIFICATION","ticket":"t-1","clientId":1234,"deliveryMode":"ping",
		"hintType":"login_hint","hint":"john@example.com","scopes":[{"name":"openid"}],"requestedExpiry":120}`

	var resp oauthmodel.BackchannelAuthenticationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Equal(t, oauthmodel.BackchannelAuthenticationActionUserIdentification, resp.Action)

	mode, ok := resp.DeliveryMode.Get()
	require.True(t, ok)
	require.Equal(t, oauth2.DeliveryModePing, mode)

	hint, ok := resp.HintType.Get()
	require.True(t, ok)
	require.Equal(t, oauth2.UserIdentificationHintTypeLoginHint, hint)
	require.Equal(t, "john@example.com", utils.Value(resp.Hint))
	require.Len(t, resp.Scopes, 1)
}

func TestRequestRoundTrip(t *testing.T) {
	t.Run("token request", func(t *testing.T) {
		req := oauthmodel.TokenRequest{
			Parameters: "grant_type=authorization_code&code=abc",
			ClientCredentials: oauthmodel.ClientCredentials{
				ClientID:     utils.Ptr("26888344961664"),
				ClientSecret: utils.Ptr("secret"),
			},
			DPoPProof: oauthmodel.DPoPProof{
				DPoP: utils.Ptr("eyJ0eXAiOiJkcG9wK2p3dCJ9.e30.sig"),
				HTM:  utils.Ptr("POST"),
				HTU:  utils.Ptr("https://as.example.com/token"),
			},
			Properties: []oauthmodel.Property{{Key: "k", Value: "v", Hidden: true}},
		}
		data, err := json.Marshal(req)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Equal(t, "26888344961664", raw["clientId"])
		require.Equal(t, "POST", raw["htm"])
		require.NotContains(t, raw, "clientCertificate")

		var back oauthmodel.TokenRequest
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, req, back)
	})

	t.Run("reason enums are sent by name", func(t *testing.T) {
		data, err := json.Marshal(oauthmodel.AuthorizationFailRequest{Ticket: "t", Reason: oauthmodel.AuthorizationFailReasonNotLoggedIn})
		require.NoError(t, err)
		require.JSONEq(t, `{"ticket":"t","reason":"NOT_LOGGED_IN"}`, string(data))
	})

	t.Run("client keeps advisory enums", func(t *testing.T) {
		client := oauthmodel.Client{
			ClientID:        42,
			ClientName:      utils.Ptr("demo"),
			ClientType:      enum.Some(oauth2.ClientTypeConfidential),
			GrantTypes:      enum.List[oauth2.GrantType]{oauth2.GrantTypeAuthorizationCode, oauth2.GrantTypeRefreshToken},
			TokenAuthMethod: enum.Some(oauth2.ClientAuthMethodPrivateKeyJWT),
			Extension:       &oauthmodel.ClientExtension{RequestableScopes: []string{"openid"}},
		}
		data, err := json.Marshal(client)
		require.NoError(t, err)
		require.JSONEq(t, `{"clientId":42,"clientName":"demo","clientType":"confidential",
			"grantTypes":["authorization_code","refresh_token"],"tokenAuthMethod":"private_key_jwt",
			"extension":{"requestableScopes":["openid"]}}`, string(data))

		var back oauthmodel.Client
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, client, back)
	})
}

func TestServiceLegacyOrdinals(t *testing.T) {
	var svc oauthmodel.Service
	require.NoError(t, json.Unmarshal([]byte(`{"apiKey":21653835348762,"supportedSnses":[1],
		"supportedDeveloperSnses":["FACEBOOK"],"supportedGrantTypes":["implicit","urn:example:custom"]}`), &svc))

	require.Equal(t, int64(21653835348762), svc.APIKey)
	require.Equal(t, []oauth2.Sns{oauth2.SnsFacebook}, svc.SupportedSnsValues())
	require.Equal(t, enum.List[oauth2.GrantType]{oauth2.GrantTypeImplicit}, svc.SupportedGrantTypes)

	data, err := json.Marshal(oauthmodel.Service{APIKey: 1, SupportedDeveloperSnses: svc.SupportedDeveloperSnses})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, []any{float64(1)}, raw["supportedDeveloperSnses"])
	require.NotContains(t, raw, "supportedSnses")

	t.Run("undeclared ordinals are dropped", func(t *testing.T) {
		var svc oauthmodel.Service
		require.NoError(t, json.Unmarshal([]byte(`{"apiKey":1,"supportedSnses":[1,7],
			"supportedDeveloperSnses":[7],"supportedGrantTypes":["authorization_code","urn:x:new"]}`), &svc))
		require.Equal(t, []oauth2.Sns{oauth2.SnsFacebook}, svc.SupportedSnsValues())
		require.Empty(t, svc.SupportedDeveloperSnses)
		require.Equal(t, enum.List[oauth2.GrantType]{oauth2.GrantTypeAuthorizationCode}, svc.SupportedGrantTypes)
		require.NoError(t, svc.Validate())
	})

	t.Run("outgoing undeclared ordinals are rejected", func(t *testing.T) {
		svc := oauthmodel.Service{APIKey: 1, SupportedDeveloperSnses: enum.OrdinalList[oauth2.Sns]{oauth2.Sns(7)}}
		require.ErrorIs(t, svc.Validate(), oauthmodel.ErrInvalidField)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr error
	}{
		{"authorization needs parameters", &oauthmodel.AuthorizationRequest{}, oauthmodel.ErrMissingField},
		{"authorization ok", &oauthmodel.AuthorizationRequest{Parameters: "response_type=code"}, nil},
		{"authorization fail rejects undeclared reason", &oauthmodel.AuthorizationFailRequest{Ticket: "t", Reason: 99}, oauthmodel.ErrInvalidField},
		{"authorization issue needs subject", &oauthmodel.AuthorizationIssueRequest{Ticket: "t"}, oauthmodel.ErrMissingField},
		{"token dpop needs htm and htu", &oauthmodel.TokenRequest{Parameters: "p", DPoPProof: oauthmodel.DPoPProof{DPoP: utils.Ptr("x")}}, oauthmodel.ErrInvalidField},
		{"token fail ok", &oauthmodel.TokenFailRequest{Ticket: "t", Reason: oauthmodel.TokenFailReasonInvalidTarget}, nil},
		{"token create needs client", &oauthmodel.TokenCreateRequest{GrantType: oauth2.GrantTypeClientCredentials}, oauthmodel.ErrMissingField},
		{"token create needs subject for user grants", &oauthmodel.TokenCreateRequest{GrantType: oauth2.GrantTypePassword, ClientID: 1}, oauthmodel.ErrMissingField},
		{"token update needs token", &oauthmodel.TokenUpdateRequest{}, oauthmodel.ErrMissingField},
		{"token list range", &oauthmodel.TokenListRequest{Start: 5, End: 2}, oauthmodel.ErrInvalidField},
		{"introspection needs token", &oauthmodel.IntrospectionRequest{}, oauthmodel.ErrMissingField},
		{"userinfo ok", &oauthmodel.UserInfoRequest{Token: "at"}, nil},
		{"backchannel complete needs result", &oauthmodel.BackchannelAuthenticationCompleteRequest{Ticket: "t", Subject: "s"}, oauthmodel.ErrMissingField},
		{"backchannel complete ok", &oauthmodel.BackchannelAuthenticationCompleteRequest{Ticket: "t", Subject: "s", Result: oauthmodel.BackchannelAuthenticationCompleteResultAuthorized}, nil},
		{"device verification needs user code", &oauthmodel.DeviceVerificationRequest{}, oauthmodel.ErrMissingField},
		{"device complete ok", &oauthmodel.DeviceCompleteRequest{UserCode: "XWDKLJQM", Subject: "s", Result: oauthmodel.DeviceCompleteResultAccessDenied}, nil},
		{"hsk kty", &oauthmodel.HskCreateRequest{Kty: "oct", HsmName: "google"}, oauthmodel.ErrInvalidField},
		{"client update needs id", &updateClient{}, oauthmodel.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			var fieldErr *oauthmodel.FieldError
			require.True(t, errors.As(err, &fieldErr))
			require.NotEmpty(t, fieldErr.Field)
		})
	}
}

type updateClient struct{ oauthmodel.Client }

func (c *updateClient) Validate() error { return c.ValidateForUpdate() }

func TestAuthorizationParameters(t *testing.T) {
	params := oauthmodel.AuthorizationParameters{
		ClientID:            "26888344961664",
		ResponseType:        oauth2.ResponseTypeCodeIDToken,
		RedirectURI:         "https://client.example.org/cb",
		Scope:               "openid profile",
		State:               "xyz",
		CodeChallenge:       "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM",
		CodeChallengeMethod: oauth2.CodeChallengeMethodS256,
		Prompt:              []oauth2.Prompt{oauth2.PromptLogin, oauth2.PromptConsent},
	}
	require.NoError(t, params.Validate())

	values, err := url.ParseQuery(params.Encode())
	require.NoError(t, err)
	require.Equal(t, "code id_token", values.Get("response_type"))
	require.Equal(t, "S256", values.Get("code_challenge_method"))
	require.Equal(t, "login consent", values.Get("prompt"))
	require.False(t, values.Has("response_mode"))
	require.False(t, values.Has("display"))

	client := &oauthmodel.Client{RedirectURIs: []string{"https://client.example.org/cb"}}
	require.NoError(t, params.ValidateForClient(client))

	params.RedirectURI = "https://evil.example.com/cb"
	require.ErrorIs(t, params.ValidateForClient(client), oauthmodel.ErrInvalidRedirectUri)

	params.CodeChallenge = "short"
	require.ErrorIs(t, params.Validate(), oauthmodel.ErrInvalidCodeChallenge)

	params.CodeChallenge = ""
	params.ResponseType = 0
	require.ErrorIs(t, params.Validate(), oauthmodel.ErrInvalidResponseType)
}

func TestTokenParameters(t *testing.T) {
	params := oauthmodel.TokenParameters{GrantType: oauth2.GrantTypeAuthorizationCode, Code: "abc", RedirectURI: "https://c/cb"}
	require.NoError(t, params.Validate())

	values, err := url.ParseQuery(params.Encode())
	require.NoError(t, err)
	require.Equal(t, "authorization_code", values.Get("grant_type"))
	require.Equal(t, "abc", values.Get("code"))
	require.False(t, values.Has("refresh_token"))

	require.ErrorIs(t, (&oauthmodel.TokenParameters{GrantType: oauth2.GrantTypePassword, Username: "u"}).Validate(), oauthmodel.ErrMissingField)
	require.ErrorIs(t, (&oauthmodel.TokenParameters{GrantType: oauth2.GrantTypeImplicit}).Validate(), oauthmodel.ErrInvalidGrantType)
	require.NoError(t, (&oauthmodel.TokenParameters{GrantType: oauth2.GrantTypeClientCredentials}).Validate())
}

func TestPeekClaims(t *testing.T) {
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{"sub": "john", "client_id": "42", "aud": []string{"api", "billing"}}).SignedString([]byte("not-verified"))
	require.NoError(t, err)

	resp := oauthmodel.TokenResponse{JwtAccessToken: &raw}
	claims, err := resp.JwtAccessTokenClaims()
	require.NoError(t, err)
	require.Equal(t, "john", claims["sub"])
	require.Equal(t, []string{"api", "billing"}, oauthmodel.ClaimStrings(claims, "aud"))
	require.Equal(t, []string{"john"}, oauthmodel.ClaimStrings(claims, "sub"))
	require.Nil(t, oauthmodel.ClaimStrings(claims, "scope"))

	_, err = oauthmodel.PeekClaims("not-a-jwt")
	require.Error(t, err)

	claims, err = (&oauthmodel.TokenResponse{}).JwtAccessTokenClaims()
	require.NoError(t, err)
	require.Nil(t, claims)
}

func TestAuthzDetailsOtherFields(t *testing.T) {
	el := oauthmodel.AuthzDetailsElement{Type: "payment_initiation", OtherFields: utils.Ptr(`{"instructedAmount":{"currency":"EUR","amount":"123.50"}}`)}
	fields, err := el.OtherFieldsMap()
	require.NoError(t, err)
	require.Contains(t, fields, "instructedAmount")

	fields, err = oauthmodel.AuthzDetailsElement{Type: "x"}.OtherFieldsMap()
	require.NoError(t, err)
	require.Nil(t, fields)
}
