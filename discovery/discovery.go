// Package discovery decodes the OpenID Provider metadata a service publishes through
// /service/configuration and turns it into a go-oidc provider for ID token verification.
package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

var (
	ErrMissingIssuer   = errors.New("issuer is missing")
	ErrMissingEndpoint = errors.New("required endpoint is missing")
)

// Document is the OpenID Provider metadata of a service. Supported-value lists are typed;
// values this library does not know are dropped.
type Document struct {
	oidc.ProviderConfig

	RegistrationEndpoint              string `json:"registration_endpoint,omitempty"`
	RevocationEndpoint                string `json:"revocation_endpoint,omitempty"`
	IntrospectionEndpoint             string `json:"introspection_endpoint,omitempty"`
	EndSessionEndpoint                string `json:"end_session_endpoint,omitempty"`
	PushedAuthorizationRequestURL     string `json:"pushed_authorization_request_endpoint,omitempty"`
	BackchannelAuthenticationEndpoint string `json:"backchannel_authentication_endpoint,omitempty"`

	ScopesSupported                        []string                              `json:"scopes_supported,omitempty"`
	ResponseTypesSupported                 enum.List[oauth2.ResponseType]        `json:"response_types_supported,omitempty"`
	ResponseModesSupported                 enum.List[oauth2.ResponseMode]        `json:"response_modes_supported,omitempty"`
	GrantTypesSupported                    enum.List[oauth2.GrantType]           `json:"grant_types_supported,omitempty"`
	SubjectTypesSupported                  enum.List[oauth2.SubjectType]         `json:"subject_types_supported,omitempty"`
	TokenEndpointAuthMethodsSupported      enum.List[oauth2.ClientAuthMethod]    `json:"token_endpoint_auth_methods_supported,omitempty"`
	DisplayValuesSupported                 enum.List[oauth2.Display]             `json:"display_values_supported,omitempty"`
	ClaimTypesSupported                    enum.List[oauth2.ClaimType]           `json:"claim_types_supported,omitempty"`
	ClaimsSupported                        []string                              `json:"claims_supported,omitempty"`
	CodeChallengeMethodsSupported          enum.List[oauth2.CodeChallengeMethod] `json:"code_challenge_methods_supported,omitempty"`
	BackchannelTokenDeliveryModesSupported enum.List[oauth2.DeliveryMode]        `json:"backchannel_token_delivery_modes_supported,omitempty"`
	PromptValuesSupported                  enum.List[oauth2.Prompt]              `json:"prompt_values_supported,omitempty"`
	UserInfoSigningAlgValuesSupported      enum.List[oauth2.JWSAlg]              `json:"userinfo_signing_alg_values_supported,omitempty"`
	RequestObjectSigningAlgValuesSupported enum.List[oauth2.JWSAlg]              `json:"request_object_signing_alg_values_supported,omitempty"`
	RequestParameterSupported              bool                                  `json:"request_parameter_supported,omitempty"`
	RequestURIParameterSupported           bool                                  `json:"request_uri_parameter_supported,omitempty"`
	RequirePushedAuthorizationRequests     bool                                  `json:"require_pushed_authorization_requests,omitempty"`
}

// Decode parses a /service/configuration body.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("[discovery Decode] failed to parse provider metadata: %w", err)
	}
	return &doc, nil
}

// Validate checks that the document names an issuer and the endpoints a relying party needs.
func (d *Document) Validate() error {
	if d.IssuerURL == "" {
		return ErrMissingIssuer
	}
	for _, endpoint := range []struct{ name, value string }{
		{"authorization_endpoint", d.AuthURL},
		{"token_endpoint", d.TokenURL},
		{"jwks_uri", d.JWKSURL},
	} {
		if endpoint.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingEndpoint, endpoint.name)
		}
	}
	return nil
}

// SupportsGrantType reports whether the service advertises grantType.
func (d *Document) SupportsGrantType(grantType oauth2.GrantType) bool {
	return d.GrantTypesSupported.Contains(grantType)
}

// Provider returns a go-oidc provider built from the document without another discovery
// round trip. Keys are fetched lazily from jwks_uri using the HTTP client in ctx, if any.
func (d *Document) Provider(ctx context.Context) (*oidc.Provider, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("[discovery Provider] %w", err)
	}
	return d.ProviderConfig.NewProvider(ctx), nil
}

// Verifier returns an ID token verifier for clientID.
func (d *Document) Verifier(ctx context.Context, clientID string) (*oidc.IDTokenVerifier, error) {
	provider, err := d.Provider(ctx)
	if err != nil {
		return nil, err
	}
	return provider.Verifier(&oidc.Config{ClientID: clientID}), nil
}
