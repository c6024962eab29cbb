package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// DeviceAuthorizationRequest forwards an RFC 8628 device authorization request.
type DeviceAuthorizationRequest struct {
	Parameters string `json:"parameters"`
	ClientCredentials
}

func (r *DeviceAuthorizationRequest) Validate() error {
	return requireString("DeviceAuthorizationRequest", "parameters", r.Parameters)
}

type DeviceAuthorizationResponse struct {
	ApiResult
	Action          DeviceAuthorizationAction `json:"action"`
	ResponseContent *string                   `json:"responseContent,omitempty"`

	ClientID                int64                                  `json:"clientId,omitempty"`
	ClientIDAlias           *string                                `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed       bool                                   `json:"clientIdAliasUsed,omitempty"`
	ClientName              *string                                `json:"clientName,omitempty"`
	ClientAuthMethod        enum.Optional[oauth2.ClientAuthMethod] `json:"clientAuthMethod,omitzero"`
	Scopes                  []Scope                                `json:"scopes,omitempty"`
	DynamicScopes           []DynamicScope                         `json:"dynamicScopes,omitempty"`
	ClaimNames              []string                               `json:"claimNames,omitempty"`
	ACRs                    []string                               `json:"acrs,omitempty"`
	DeviceCode              *string                                `json:"deviceCode,omitempty"`
	UserCode                *string                                `json:"userCode,omitempty"`
	VerificationURI         *string                                `json:"verificationUri,omitempty"`
	VerificationURIComplete *string                                `json:"verificationUriComplete,omitempty"`
	ExpiresIn               int                                    `json:"expiresIn,omitempty"`
	Interval                int                                    `json:"interval,omitempty"`
	Resources               []string                               `json:"resources,omitempty"`
	AuthorizationDetails    *AuthzDetails                          `json:"authorizationDetails,omitempty"`
	Warnings                []string                               `json:"warnings,omitempty"`
	ServiceAttributes       []Pair                                 `json:"serviceAttributes,omitempty"`
	ClientAttributes        []Pair                                 `json:"clientAttributes,omitempty"`
}

// DeviceVerificationRequest looks up the user code the end-user typed on the verification page.
type DeviceVerificationRequest struct {
	UserCode string `json:"userCode"`
}

func (r *DeviceVerificationRequest) Validate() error {
	return requireString("DeviceVerificationRequest", "userCode", r.UserCode)
}

type DeviceVerificationResponse struct {
	ApiResult
	Action               DeviceVerificationAction `json:"action"`
	ClientID             int64                    `json:"clientId,omitempty"`
	ClientIDAlias        *string                  `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed    bool                     `json:"clientIdAliasUsed,omitempty"`
	ClientName           *string                  `json:"clientName,omitempty"`
	Scopes               []Scope                  `json:"scopes,omitempty"`
	DynamicScopes        []DynamicScope           `json:"dynamicScopes,omitempty"`
	ClaimNames           []string                 `json:"claimNames,omitempty"`
	ACRs                 []string                 `json:"acrs,omitempty"`
	ExpiresAt            int64                    `json:"expiresAt,omitempty"`
	Resources            []string                 `json:"resources,omitempty"`
	AuthorizationDetails *AuthzDetails            `json:"authorizationDetails,omitempty"`
	ServiceAttributes    []Pair                   `json:"serviceAttributes,omitempty"`
	ClientAttributes     []Pair                   `json:"clientAttributes,omitempty"`
}

// DeviceCompleteRequest reports the end-user's decision for a user code.
type DeviceCompleteRequest struct {
	UserCode         string               `json:"userCode"`
	Result           DeviceCompleteResult `json:"result"`
	Subject          string               `json:"subject"`
	Sub              *string              `json:"sub,omitempty"`
	AuthTime         int64                `json:"authTime,omitempty"`
	ACR              *string              `json:"acr,omitempty"`
	Claims           *string              `json:"claims,omitempty"`
	Properties       []Property           `json:"properties,omitempty"`
	Scopes           []string             `json:"scopes,omitempty"`
	IDTokenClaims    *string              `json:"idtokenClaims,omitempty"`
	ErrorDescription *string              `json:"errorDescription,omitempty"`
	ErrorURI         *string              `json:"errorUri,omitempty"`
	ConsentedClaims  []string             `json:"consentedClaims,omitempty"`
	JwtAtClaims      *string              `json:"jwtAtClaims,omitempty"`
}

func (r *DeviceCompleteRequest) Validate() error {
	if err := requireString("DeviceCompleteRequest", "userCode", r.UserCode); err != nil {
		return err
	}
	if !deviceCompleteResults.Contains(r.Result) {
		return requiredField("DeviceCompleteRequest", "result")
	}
	return requireString("DeviceCompleteRequest", "subject", r.Subject)
}

type DeviceCompleteResponse struct {
	ApiResult
	Action DeviceCompleteAction `json:"action"`
}
