package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// AuthorizationRequest asks the provider to process the parameters the authorization endpoint
// received. Parameters is the query string or form body, as received (see
// AuthorizationParameters.Encode).
type AuthorizationRequest struct {
	Parameters string  `json:"parameters"`
	Context    *string `json:"context,omitempty"`
}

func (r *AuthorizationRequest) Validate() error {
	return requireString("AuthorizationRequest", "parameters", r.Parameters)
}

// AuthorizationResponse tells the authorization endpoint how to continue.
// When Action is INTERACTION the ticket must be passed to /auth/authorization/issue or /fail.
type AuthorizationResponse struct {
	ApiResult
	Action          AuthorizationAction `json:"action"`
	ResponseContent *string             `json:"responseContent,omitempty"`
	Ticket          *string             `json:"ticket,omitempty"`

	Client            *Client                       `json:"client,omitempty"`
	ClientIDAliasUsed bool                          `json:"clientIdAliasUsed,omitempty"`
	Display           enum.Optional[oauth2.Display] `json:"display,omitzero"`
	MaxAge            int64                         `json:"maxAge,omitempty"`
	Scopes            []Scope                       `json:"scopes,omitempty"`
	DynamicScopes     []DynamicScope                `json:"dynamicScopes,omitempty"`
	UILocales         []string                      `json:"uiLocales,omitempty"`
	ClaimsLocales     []string                      `json:"claimsLocales,omitempty"`
	Claims            []string                      `json:"claims,omitempty"`
	ACRs              []string                      `json:"acrs,omitempty"`
	ACREssential      bool                          `json:"acrEssential,omitempty"`
	Subject           *string                       `json:"subject,omitempty"`
	LoginHint         *string                       `json:"loginHint,omitempty"`
	Prompts           enum.List[oauth2.Prompt]      `json:"prompts,omitempty"`
	LowestPrompt      enum.Optional[oauth2.Prompt]  `json:"lowestPrompt,omitzero"`

	RequestObjectPayload *string       `json:"requestObjectPayload,omitempty"`
	IDTokenClaims        *string       `json:"idTokenClaims,omitempty"`
	UserInfoClaims       *string       `json:"userInfoClaims,omitempty"`
	Resources            []string      `json:"resources,omitempty"`
	AuthorizationDetails *AuthzDetails `json:"authorizationDetails,omitempty"`
	GMAction             *string       `json:"gmAction,omitempty"`
	GrantID              *string       `json:"grantId,omitempty"`
}

// AuthorizationFailRequest reports that the authorization request cannot be granted.
type AuthorizationFailRequest struct {
	Ticket      string                  `json:"ticket"`
	Reason      AuthorizationFailReason `json:"reason"`
	Description *string                 `json:"description,omitempty"`
}

func (r *AuthorizationFailRequest) Validate() error {
	if err := requireString("AuthorizationFailRequest", "ticket", r.Ticket); err != nil {
		return err
	}
	if !authorizationFailReasons.Contains(r.Reason) {
		return invalidField("AuthorizationFailRequest", "reason", "undeclared reason")
	}
	return nil
}

type AuthorizationFailResponse struct {
	ApiResult
	Action          AuthorizationFailAction `json:"action"`
	ResponseContent *string                 `json:"responseContent,omitempty"`
}

// AuthorizationIssueRequest grants the authorization request identified by Ticket.
type AuthorizationIssueRequest struct {
	Ticket               string        `json:"ticket"`
	Subject              string        `json:"subject"`
	AuthTime             int64         `json:"authTime,omitempty"`
	ACR                  *string       `json:"acr,omitempty"`
	Claims               *string       `json:"claims,omitempty"`
	Properties           []Property    `json:"properties,omitempty"`
	Scopes               []string      `json:"scopes,omitempty"`
	Sub                  *string       `json:"sub,omitempty"`
	IDTokenClaims        *string       `json:"idtokenClaims,omitempty"`
	AuthorizationDetails *AuthzDetails `json:"authorizationDetails,omitempty"`
	ConsentedClaims      []string      `json:"consentedClaims,omitempty"`
	JwtAtClaims          *string       `json:"jwtAtClaims,omitempty"`
}

func (r *AuthorizationIssueRequest) Validate() error {
	if err := requireString("AuthorizationIssueRequest", "ticket", r.Ticket); err != nil {
		return err
	}
	return requireString("AuthorizationIssueRequest", "subject", r.Subject)
}

type AuthorizationIssueResponse struct {
	ApiResult
	Action               AuthorizationIssueAction `json:"action"`
	ResponseContent      *string                  `json:"responseContent,omitempty"`
	AccessToken          *string                  `json:"accessToken,omitempty"`
	AccessTokenExpiresAt int64                    `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration  int64                    `json:"accessTokenDuration,omitempty"`
	IDToken              *string                  `json:"idToken,omitempty"`
	AuthorizationCode    *string                  `json:"authorizationCode,omitempty"`
	JwtAccessToken       *string                  `json:"jwtAccessToken,omitempty"`
}
