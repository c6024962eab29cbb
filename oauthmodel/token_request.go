package oauthmodel

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-authlete/oauth2"
)

// TokenParameters holds the parameters of an OAuth2 token request.
// Encode renders them into TokenRequest.Parameters.
type TokenParameters struct {
	// GrantType selects the flow.
	// Required: Yes
	GrantType oauth2.GrantType

	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes (only for authorization_code grant)
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string

	// RedirectURI must repeat the redirect_uri of the authorization request when one was sent.
	RedirectURI string

	// CodeVerifier is the PKCE code verifier that matches the code_challenge.
	// Required: Yes (if PKCE was used in authorization request)
	CodeVerifier string

	// RefreshToken is used to obtain new access tokens without re-authentication.
	// Required: Yes (only for refresh_token grant)
	RefreshToken string

	// Username and Password are the resource owner credentials of the password grant.
	Username string
	Password string

	// DeviceCode is required for the device_code grant.
	DeviceCode string

	// AuthReqID is required for the CIBA grant.
	AuthReqID string

	// Scope optionally narrows the requested scopes.
	Scope string
}

// Encode renders the parameters as an application/x-www-form-urlencoded string.
func (p *TokenParameters) Encode() string {
	v := url.Values{}
	v.Set("grant_type", p.GrantType.String())
	for key, value := range map[string]string{
		"code":          p.Code,
		"redirect_uri":  p.RedirectURI,
		"code_verifier": p.CodeVerifier,
		"refresh_token": p.RefreshToken,
		"username":      p.Username,
		"password":      p.Password,
		"device_code":   p.DeviceCode,
		"auth_req_id":   p.AuthReqID,
		"scope":         p.Scope,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	return v.Encode()
}

// Validate checks that the parameters the grant type needs are present.
func (p *TokenParameters) Validate() error {
	const request = "TokenParameters"
	var required map[string]string
	switch p.GrantType {
	case oauth2.GrantTypeAuthorizationCode:
		required = map[string]string{"code": p.Code}
	case oauth2.GrantTypeRefreshToken:
		required = map[string]string{"refresh_token": p.RefreshToken}
	case oauth2.GrantTypePassword:
		required = map[string]string{"username": p.Username, "password": p.Password}
	case oauth2.GrantTypeDeviceCode:
		required = map[string]string{"device_code": p.DeviceCode}
	case oauth2.GrantTypeCIBA:
		required = map[string]string{"auth_req_id": p.AuthReqID}
	case oauth2.GrantTypeClientCredentials, oauth2.GrantTypeTokenExchange, oauth2.GrantTypeJWTBearer:
	default:
		return &FieldError{Request: request, Field: "grant_type", Reason: "not usable at the token endpoint", Err: ErrInvalidGrantType}
	}
	for _, field := range []string{"code", "refresh_token", "username", "password", "device_code", "auth_req_id"} {
		if value, ok := required[field]; ok && strings.TrimSpace(value) == "" {
			return requiredField(request, field)
		}
	}
	return nil
}
