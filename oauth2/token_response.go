package oauth2

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/go-authlete/enum"
)

// TokenResponse is the RFC 6749 §5.1 body the authorization server relays to the client.
// The provider hands it back preformatted in a token response's responseContent.
type TokenResponse struct {
	// AccessToken is the token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken *string `json:"access_token,omitempty"`

	// IdToken is the OpenID Connect ID token containing user identity information.
	// Only present: When "openid" scope was requested
	IdToken *string `json:"id_token,omitempty"`

	// TokenType indicates how to use the access token ("Bearer" or "DPoP").
	TokenType string `json:"token_type,omitempty"`

	// IssuedTokenType is set on token exchange responses (RFC 8693 §2.2.1).
	IssuedTokenType enum.Optional[TokenType] `json:"issued_token_type,omitzero"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Note: This is a hint - actual expiration may be in the token's "exp" claim
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// RefreshToken is used to obtain new access tokens.
	// Usage: Send to the token endpoint with grant_type=refresh_token
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope is the space-separated list of granted scopes.
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`

	// Error fields are populated when the relayed body is an error response (RFC 6749 §5.2).
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// ParseTokenResponse decodes a relayed token endpoint body.
func ParseTokenResponse(content string) (*TokenResponse, error) {
	var resp TokenResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("[ParseTokenResponse] invalid token response content: %w", err)
	}
	return &resp, nil
}

// IsError reports whether the body is an OAuth 2.0 error response.
func (r *TokenResponse) IsError() bool {
	return r.Error != ""
}
