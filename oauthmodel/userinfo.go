package oauthmodel

// UserInfoRequest asks the provider to validate the access token presented to the UserInfo endpoint.
type UserInfoRequest struct {
	Token             string  `json:"token"`
	ClientCertificate *string `json:"clientCertificate,omitempty"`
	DPoPProof
}

func (r *UserInfoRequest) Validate() error {
	if err := requireString("UserInfoRequest", "token", r.Token); err != nil {
		return err
	}
	return r.DPoPProof.validate("UserInfoRequest")
}

// UserInfoResponse lists the claims the caller must collect before calling /auth/userinfo/issue.
type UserInfoResponse struct {
	ApiResult
	Action            UserInfoAction `json:"action"`
	ResponseContent   *string        `json:"responseContent,omitempty"`
	ClientID          int64          `json:"clientId,omitempty"`
	ClientIDAlias     *string        `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed bool           `json:"clientIdAliasUsed,omitempty"`
	Subject           *string        `json:"subject,omitempty"`
	Scopes            []string       `json:"scopes,omitempty"`
	Claims            []string       `json:"claims,omitempty"`
	Token             *string        `json:"token,omitempty"`
	Properties        []Property     `json:"properties,omitempty"`
	UserInfoClaims    *string        `json:"userInfoClaims,omitempty"`
	ServiceAttributes []Pair         `json:"serviceAttributes,omitempty"`
	ClientAttributes  []Pair         `json:"clientAttributes,omitempty"`
	ConsentedClaims   []string       `json:"consentedClaims,omitempty"`
	DPoPNonce         *string        `json:"dpopNonce,omitempty"`
}

// UserInfoIssueRequest hands the collected claims back for the UserInfo response.
// Claims is a JSON object of claim values.
type UserInfoIssueRequest struct {
	Token               string   `json:"token"`
	Claims              *string  `json:"claims,omitempty"`
	Sub                 *string  `json:"sub,omitempty"`
	ClaimsForTx         *string  `json:"claimsForTx,omitempty"`
	VerifiedClaimsForTx []string `json:"verifiedClaimsForTx,omitempty"`
	DPoPProof
}

func (r *UserInfoIssueRequest) Validate() error {
	if err := requireString("UserInfoIssueRequest", "token", r.Token); err != nil {
		return err
	}
	return r.DPoPProof.validate("UserInfoIssueRequest")
}

// UserInfoIssueResponse carries the UserInfo body, as plain JSON (JSON) or as a JWT (JWT).
type UserInfoIssueResponse struct {
	ApiResult
	Action          UserInfoIssueAction `json:"action"`
	ResponseContent *string             `json:"responseContent,omitempty"`
	DPoPNonce       *string             `json:"dpopNonce,omitempty"`
}
