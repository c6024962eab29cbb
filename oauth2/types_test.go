package oauth2_test

import (
	"crypto"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

type wireEnum interface {
	enum.Integer
	String() string
	Ordinal() int
}

func checkRoundTrip[T interface {
	enum.Member[T]
	wireEnum
}](t *testing.T) {
	t.Helper()
	var zero T
	set := zero.Enum()
	t.Run(set.Kind(), func(t *testing.T) {
		require.NotEmpty(t, set.Values())
		rapid.Check(t, func(rt *rapid.T) {
			c := rapid.SampledFrom(set.Values()).Draw(rt, "constant")

			byWire, err := set.FromString(c.String())
			if err != nil || byWire != c {
				rt.Fatalf("FromString(%q) = %v, %v", c.String(), byWire, err)
			}
			byOrdinal, err := set.FromOrdinal(c.Ordinal())
			if err != nil || byOrdinal != c {
				rt.Fatalf("FromOrdinal(%d) = %v, %v", c.Ordinal(), byOrdinal, err)
			}
		})
	})
}

func TestEveryKindRoundTrips(t *testing.T) {
	checkRoundTrip[oauth2.ApplicationType](t)
	checkRoundTrip[oauth2.ClaimType](t)
	checkRoundTrip[oauth2.ClientAuthMethod](t)
	checkRoundTrip[oauth2.ClientType](t)
	checkRoundTrip[oauth2.CodeChallengeMethod](t)
	checkRoundTrip[oauth2.DeliveryMode](t)
	checkRoundTrip[oauth2.Display](t)
	checkRoundTrip[oauth2.GrantType](t)
	checkRoundTrip[oauth2.HashAlg](t)
	checkRoundTrip[oauth2.JWEAlg](t)
	checkRoundTrip[oauth2.JWEEnc](t)
	checkRoundTrip[oauth2.JWSAlg](t)
	checkRoundTrip[oauth2.Prompt](t)
	checkRoundTrip[oauth2.ResponseMode](t)
	checkRoundTrip[oauth2.ResponseType](t)
	checkRoundTrip[oauth2.ServiceProfile](t)
	checkRoundTrip[oauth2.Sns](t)
	checkRoundTrip[oauth2.SubjectType](t)
	checkRoundTrip[oauth2.TokenType](t)
	checkRoundTrip[oauth2.UserCodeCharset](t)
	checkRoundTrip[oauth2.UserIdentificationHintType](t)
}

func TestKindsRegistry(t *testing.T) {
	kinds := oauth2.Kinds()
	require.Len(t, kinds, 21)
	require.Len(t, oauth2.KindNames(), 21)
	require.Equal(t, "ApplicationType", oauth2.KindNames()[0])

	methods := kinds["ClientAuthMethod"]
	require.Len(t, methods, 7)
	require.Equal(t, oauth2.Constant{Ordinal: 0, Wire: "none", Name: "NONE"}, methods[0])
	require.Equal(t, oauth2.Constant{Ordinal: 4, Wire: "private_key_jwt", Name: "PRIVATE_KEY_JWT"}, methods[4])
}

func TestUnknownValues(t *testing.T) {
	_, err := oauth2.ParseClientAuthMethod("bogus")
	require.ErrorIs(t, err, enum.ErrNotFound)

	_, err = oauth2.ClientAuthMethods().FromOrdinal(999)
	require.ErrorIs(t, err, enum.ErrNotFound)

	_, err = oauth2.ParseCodeChallengeMethod("s256")
	require.ErrorIs(t, err, enum.ErrNotFound, "wire strings are case sensitive")
}

func TestClientAuthMethodFlags(t *testing.T) {
	for _, m := range oauth2.ClientAuthMethods().Values() {
		if m == oauth2.ClientAuthMethodNone {
			require.Zero(t, m.Flags())
			continue
		}
		count := 0
		for _, has := range []bool{m.IsSecretBased(), m.IsJWTBased(), m.IsCertificateBased()} {
			if has {
				count++
			}
		}
		require.Equal(t, 1, count, m.String())
	}

	require.Equal(t, oauth2.ClientAuthMethodClientSecretBasic.Flags(), oauth2.ClientAuthMethodClientSecretPost.Flags())
	require.NotEqual(t, oauth2.ClientAuthMethodTLSClientAuth.Flags(), oauth2.ClientAuthMethodPrivateKeyJWT.Flags())
	require.True(t, oauth2.ClientAuthMethodClientSecretJWT.IsJWTBased())
	require.False(t, oauth2.ClientAuthMethodClientSecretJWT.IsSecretBased())
	require.True(t, oauth2.ClientAuthMethodSelfSignedTLSClientAuth.IsCertificateBased())
}

func TestTypeExtras(t *testing.T) {
	require.Equal(t, crypto.SHA384, oauth2.HashAlgSHA384.Hash())
	require.True(t, oauth2.JWSAlgHS512.IsSymmetric())
	require.False(t, oauth2.JWSAlgHS512.IsAsymmetric())
	require.True(t, oauth2.JWSAlgEdDSA.IsAsymmetric())
	require.False(t, oauth2.JWSAlgNone.IsSymmetric())
	require.False(t, oauth2.JWSAlgNone.IsAsymmetric())
	require.True(t, oauth2.ResponseModeFormPostJWT.IsJWT())
	require.False(t, oauth2.ResponseModeFormPost.IsJWT())
	require.Equal(t, "0123456789", oauth2.UserCodeCharsetNumeric.Characters())
	require.Equal(t, "code id_token token", oauth2.ResponseTypeCodeIDTokenToken.String())
	require.Equal(t, "CODE_ID_TOKEN_TOKEN", oauth2.ResponseTypeCodeIDTokenToken.Name())
}

func TestJSONForms(t *testing.T) {
	type doc struct {
		Grant oauth2.GrantType   `json:"grant"`
		Mode  oauth2.DeliveryMode `json:"mode"`
	}

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"grant":"urn:openid:params:grant-type:ciba","mode":2}`), &d))
	require.Equal(t, oauth2.GrantTypeCIBA, d.Grant)
	require.Equal(t, oauth2.DeliveryModePing, d.Mode)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"grant":"urn:openid:params:grant-type:ciba","mode":"ping"}`, string(data))
}

func TestParseTokenResponse(t *testing.T) {
	resp, err := oauth2.ParseTokenResponse(`{"access_token":"at","token_type":"Bearer","expires_in":3600,
		"issued_token_type":"urn:ietf:params:oauth:token-type:access_token","scope":"openid"}`)
	require.NoError(t, err)
	require.Equal(t, "at", *resp.AccessToken)
	require.Equal(t, int64(3600), resp.ExpiresIn)
	issued, ok := resp.IssuedTokenType.Get()
	require.True(t, ok)
	require.Equal(t, oauth2.TokenTypeAccessToken, issued)
	require.False(t, resp.IsError())

	resp, err = oauth2.ParseTokenResponse(`{"error":"invalid_grant"}`)
	require.NoError(t, err)
	require.True(t, resp.IsError())

	_, err = oauth2.ParseTokenResponse(`not json`)
	require.Error(t, err)
}
