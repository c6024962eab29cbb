package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// IntrospectionRequest asks the provider about an access token presented to a resource server.
type IntrospectionRequest struct {
	Token             string   `json:"token"`
	Scopes            []string `json:"scopes,omitempty"`
	Subject           *string  `json:"subject,omitempty"`
	ClientCertificate *string  `json:"clientCertificate,omitempty"`
	DPoPProof
	Resources []string `json:"resources,omitempty"`
	ACRValues []string `json:"acrValues,omitempty"`
	MaxAge    int64    `json:"maxAge,omitempty"`
}

func (r *IntrospectionRequest) Validate() error {
	if err := requireString("IntrospectionRequest", "token", r.Token); err != nil {
		return err
	}
	return r.DPoPProof.validate("IntrospectionRequest")
}

// IntrospectionResponse describes the token. Usable is false when the token does not exist,
// has expired or lacks the requested scopes or subject.
type IntrospectionResponse struct {
	ApiResult
	Action          IntrospectionAction `json:"action"`
	ResponseContent *string             `json:"responseContent,omitempty"`

	ClientID              int64                           `json:"clientId,omitempty"`
	ClientIDAlias         *string                         `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed     bool                            `json:"clientIdAliasUsed,omitempty"`
	ExpiresAt             int64                           `json:"expiresAt,omitempty"`
	Subject               *string                         `json:"subject,omitempty"`
	Scopes                []string                        `json:"scopes,omitempty"`
	Existent              bool                            `json:"existent"`
	Usable                bool                            `json:"usable"`
	Sufficient            bool                            `json:"sufficient"`
	Refreshable           bool                            `json:"refreshable"`
	Properties            []Property                      `json:"properties,omitempty"`
	CertificateThumbprint *string                         `json:"certificateThumbprint,omitempty"`
	Resources             []string                        `json:"resources,omitempty"`
	AccessTokenResources  []string                        `json:"accessTokenResources,omitempty"`
	AuthorizationDetails  *AuthzDetails                   `json:"authorizationDetails,omitempty"`
	ServiceAttributes     []Pair                          `json:"serviceAttributes,omitempty"`
	ClientAttributes      []Pair                          `json:"clientAttributes,omitempty"`
	GrantType             enum.Optional[oauth2.GrantType] `json:"grantType,omitzero"`
	ACR                   *string                         `json:"acr,omitempty"`
	AuthTime              int64                           `json:"authTime,omitempty"`
	ConsentedClaims       []string                        `json:"consentedClaims,omitempty"`
	DPoPNonce             *string                         `json:"dpopNonce,omitempty"`
}

// StandardIntrospectionRequest forwards an RFC 7662 introspection request body.
type StandardIntrospectionRequest struct {
	Parameters           string `json:"parameters"`
	WithHiddenProperties bool   `json:"withHiddenProperties,omitempty"`
}

func (r *StandardIntrospectionRequest) Validate() error {
	return requireString("StandardIntrospectionRequest", "parameters", r.Parameters)
}

type StandardIntrospectionResponse struct {
	ApiResult
	Action          StandardIntrospectionAction `json:"action"`
	ResponseContent *string                     `json:"responseContent,omitempty"`
}

// RevocationRequest forwards an RFC 7009 revocation request body.
type RevocationRequest struct {
	Parameters string `json:"parameters"`
	ClientCredentials
}

func (r *RevocationRequest) Validate() error {
	return requireString("RevocationRequest", "parameters", r.Parameters)
}

type RevocationResponse struct {
	ApiResult
	Action          RevocationAction `json:"action"`
	ResponseContent *string          `json:"responseContent,omitempty"`
}
