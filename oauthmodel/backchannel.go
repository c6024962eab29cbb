package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// BackchannelAuthenticationRequest forwards a CIBA backchannel authentication request.
type BackchannelAuthenticationRequest struct {
	Parameters string `json:"parameters"`
	ClientCredentials
}

func (r *BackchannelAuthenticationRequest) Validate() error {
	return requireString("BackchannelAuthenticationRequest", "parameters", r.Parameters)
}

// BackchannelAuthenticationResponse carries the parsed request. For USER_IDENTIFICATION the
// caller identifies the user from Hint and then calls /backchannel/authentication/issue or /fail.
type BackchannelAuthenticationResponse struct {
	ApiResult
	Action          BackchannelAuthenticationAction `json:"action"`
	ResponseContent *string                         `json:"responseContent,omitempty"`
	Ticket          *string                         `json:"ticket,omitempty"`

	ClientID          int64                                  `json:"clientId,omitempty"`
	ClientIDAlias     *string                                `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed bool                                   `json:"clientIdAliasUsed,omitempty"`
	ClientName        *string                                `json:"clientName,omitempty"`
	ClientAuthMethod  enum.Optional[oauth2.ClientAuthMethod] `json:"clientAuthMethod,omitzero"`
	DeliveryMode      enum.Optional[oauth2.DeliveryMode]     `json:"deliveryMode,omitzero"`

	Scopes                  []Scope                                          `json:"scopes,omitempty"`
	DynamicScopes           []DynamicScope                                   `json:"dynamicScopes,omitempty"`
	ClaimNames              []string                                         `json:"claimNames,omitempty"`
	ClientNotificationToken *string                                          `json:"clientNotificationToken,omitempty"`
	ACRs                    []string                                         `json:"acrs,omitempty"`
	HintType                enum.Optional[oauth2.UserIdentificationHintType] `json:"hintType,omitzero"`
	Hint                    *string                                          `json:"hint,omitempty"`
	Sub                     *string                                          `json:"sub,omitempty"`
	BindingMessage          *string                                          `json:"bindingMessage,omitempty"`
	UserCode                *string                                          `json:"userCode,omitempty"`
	UserCodeRequired        bool                                             `json:"userCodeRequired,omitempty"`
	RequestedExpiry         int                                              `json:"requestedExpiry,omitempty"`
	RequestContext          *string                                          `json:"requestContext,omitempty"`
	Resources               []string                                         `json:"resources,omitempty"`
	AuthorizationDetails    *AuthzDetails                                    `json:"authorizationDetails,omitempty"`
	Warnings                []string                                         `json:"warnings,omitempty"`
	ServiceAttributes       []Pair                                           `json:"serviceAttributes,omitempty"`
	ClientAttributes        []Pair                                           `json:"clientAttributes,omitempty"`
}

// BackchannelAuthenticationIssueRequest issues the auth_req_id for an identified user.
type BackchannelAuthenticationIssueRequest struct {
	Ticket string `json:"ticket"`
}

func (r *BackchannelAuthenticationIssueRequest) Validate() error {
	return requireString("BackchannelAuthenticationIssueRequest", "ticket", r.Ticket)
}

type BackchannelAuthenticationIssueResponse struct {
	ApiResult
	Action          BackchannelAuthenticationIssueAction `json:"action"`
	ResponseContent *string                              `json:"responseContent,omitempty"`
	AuthReqID       *string                              `json:"authReqId,omitempty"`
	ExpiresIn       int                                  `json:"expiresIn,omitempty"`
	Interval        int                                  `json:"interval,omitempty"`
}

// BackchannelAuthenticationFailRequest rejects the backchannel authentication request.
type BackchannelAuthenticationFailRequest struct {
	Ticket           string                              `json:"ticket"`
	Reason           BackchannelAuthenticationFailReason `json:"reason"`
	ErrorDescription *string                             `json:"errorDescription,omitempty"`
	ErrorURI         *string                             `json:"errorUri,omitempty"`
}

func (r *BackchannelAuthenticationFailRequest) Validate() error {
	if err := requireString("BackchannelAuthenticationFailRequest", "ticket", r.Ticket); err != nil {
		return err
	}
	if !backchannelAuthenticationFailReasons.Contains(r.Reason) {
		return invalidField("BackchannelAuthenticationFailRequest", "reason", "undeclared reason")
	}
	return nil
}

type BackchannelAuthenticationFailResponse struct {
	ApiResult
	Action          BackchannelAuthenticationFailAction `json:"action"`
	ResponseContent *string                             `json:"responseContent,omitempty"`
}

// BackchannelAuthenticationCompleteRequest reports the end-user's decision.
type BackchannelAuthenticationCompleteRequest struct {
	Ticket           string                                  `json:"ticket"`
	Result           BackchannelAuthenticationCompleteResult `json:"result"`
	Subject          string                                  `json:"subject"`
	AuthTime         int64                                   `json:"authTime,omitempty"`
	ACR              *string                                 `json:"acr,omitempty"`
	Claims           *string                                 `json:"claims,omitempty"`
	Properties       []Property                              `json:"properties,omitempty"`
	Scopes           []string                                `json:"scopes,omitempty"`
	IDTokenClaims    *string                                 `json:"idtokenClaims,omitempty"`
	ErrorDescription *string                                 `json:"errorDescription,omitempty"`
	ErrorURI         *string                                 `json:"errorUri,omitempty"`
	AccessToken      *string                                 `json:"accessToken,omitempty"`
	ConsentedClaims  []string                                `json:"consentedClaims,omitempty"`
	JwtAtClaims      *string                                 `json:"jwtAtClaims,omitempty"`
}

func (r *BackchannelAuthenticationCompleteRequest) Validate() error {
	const request = "BackchannelAuthenticationCompleteRequest"
	if err := requireString(request, "ticket", r.Ticket); err != nil {
		return err
	}
	if !backchannelAuthenticationCompleteResults.Contains(r.Result) {
		return requiredField(request, "result")
	}
	return requireString(request, "subject", r.Subject)
}

// BackchannelAuthenticationCompleteResponse says whether to notify the client (ping and push
// modes) and carries the tokens for push mode.
type BackchannelAuthenticationCompleteResponse struct {
	ApiResult
	Action                     BackchannelAuthenticationCompleteAction `json:"action"`
	ResponseContent            *string                                 `json:"responseContent,omitempty"`
	ClientID                   int64                                   `json:"clientId,omitempty"`
	ClientIDAlias              *string                                 `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed          bool                                    `json:"clientIdAliasUsed,omitempty"`
	ClientName                 *string                                 `json:"clientName,omitempty"`
	DeliveryMode               enum.Optional[oauth2.DeliveryMode]      `json:"deliveryMode,omitzero"`
	ClientNotificationEndpoint *string                                 `json:"clientNotificationEndpoint,omitempty"`
	ClientNotificationToken    *string                                 `json:"clientNotificationToken,omitempty"`
	AuthReqID                  *string                                 `json:"authReqId,omitempty"`
	AccessToken                *string                                 `json:"accessToken,omitempty"`
	RefreshToken               *string                                 `json:"refreshToken,omitempty"`
	IDToken                    *string                                 `json:"idToken,omitempty"`
	AccessTokenDuration        int64                                   `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration       int64                                   `json:"refreshTokenDuration,omitempty"`
	IDTokenDuration            int64                                   `json:"idTokenDuration,omitempty"`
	JwtAccessToken             *string                                 `json:"jwtAccessToken,omitempty"`
	Resources                  []string                                `json:"resources,omitempty"`
	AuthorizationDetails       *AuthzDetails                           `json:"authorizationDetails,omitempty"`
	ServiceAttributes          []Pair                                  `json:"serviceAttributes,omitempty"`
	ClientAttributes           []Pair                                  `json:"clientAttributes,omitempty"`
}
