package oauthmodel

import (
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// TokenRequest asks the provider to process a token endpoint request.
type TokenRequest struct {
	Parameters string `json:"parameters"`
	ClientCredentials
	DPoPProof
	Properties  []Property `json:"properties,omitempty"`
	JwtAtClaims *string    `json:"jwtAtClaims,omitempty"`
	AccessToken *string    `json:"accessToken,omitempty"`
}

func (r *TokenRequest) Validate() error {
	if err := requireString("TokenRequest", "parameters", r.Parameters); err != nil {
		return err
	}
	return r.DPoPProof.validate("TokenRequest")
}

// TokenResponse tells the token endpoint how to respond.
// For PASSWORD the caller validates Username/Password and then calls /auth/token/issue or
// /auth/token/fail with Ticket.
type TokenResponse struct {
	ApiResult
	Action          TokenAction `json:"action"`
	ResponseContent *string     `json:"responseContent,omitempty"`
	Username        *string     `json:"username,omitempty"`
	Password        *string     `json:"password,omitempty"`
	Ticket          *string     `json:"ticket,omitempty"`

	AccessToken           *string `json:"accessToken,omitempty"`
	AccessTokenExpiresAt  int64   `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration   int64   `json:"accessTokenDuration,omitempty"`
	RefreshToken          *string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt int64   `json:"refreshTokenExpiresAt,omitempty"`
	RefreshTokenDuration  int64   `json:"refreshTokenDuration,omitempty"`
	IDToken               *string `json:"idToken,omitempty"`
	JwtAccessToken        *string `json:"jwtAccessToken,omitempty"`

	GrantType            enum.Optional[oauth2.GrantType]        `json:"grantType,omitzero"`
	ClientAuthMethod     enum.Optional[oauth2.ClientAuthMethod] `json:"clientAuthMethod,omitzero"`
	ClientID             int64                                  `json:"clientId,omitempty"`
	ClientIDAlias        *string                                `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed    bool                                   `json:"clientIdAliasUsed,omitempty"`
	Subject              *string                                `json:"subject,omitempty"`
	Scopes               []string                               `json:"scopes,omitempty"`
	Properties           []Property                             `json:"properties,omitempty"`
	Resources            []string                               `json:"resources,omitempty"`
	AccessTokenResources []string                               `json:"accessTokenResources,omitempty"`
	AuthorizationDetails *AuthzDetails                          `json:"authorizationDetails,omitempty"`
	ServiceAttributes    []Pair                                 `json:"serviceAttributes,omitempty"`
	ClientAttributes     []Pair                                 `json:"clientAttributes,omitempty"`

	// Token exchange (RFC 8693) and JWT bearer (RFC 7523) inputs.
	SubjectToken       *string                         `json:"subjectToken,omitempty"`
	SubjectTokenType   enum.Optional[oauth2.TokenType] `json:"subjectTokenType,omitzero"`
	SubjectTokenInfo   *TokenInfo                      `json:"subjectTokenInfo,omitempty"`
	ActorToken         *string                         `json:"actorToken,omitempty"`
	ActorTokenType     enum.Optional[oauth2.TokenType] `json:"actorTokenType,omitzero"`
	ActorTokenInfo     *TokenInfo                      `json:"actorTokenInfo,omitempty"`
	RequestedTokenType enum.Optional[oauth2.TokenType] `json:"requestedTokenType,omitzero"`
	Assertion          *string                         `json:"assertion,omitempty"`

	PreviousRefreshTokenUsed bool    `json:"previousRefreshTokenUsed,omitempty"`
	DPoPNonce                *string `json:"dpopNonce,omitempty"`
}

// Content decodes ResponseContent as the body relayed to the client.
func (r *TokenResponse) Content() (*oauth2.TokenResponse, error) {
	if r.ResponseContent == nil {
		return &oauth2.TokenResponse{}, nil
	}
	return oauth2.ParseTokenResponse(*r.ResponseContent)
}

// JwtAccessTokenClaims returns the unverified claims of the JWT access token, if one was issued.
func (r *TokenResponse) JwtAccessTokenClaims() (jwtlib.MapClaims, error) {
	if r.JwtAccessToken == nil {
		return nil, nil
	}
	return PeekClaims(*r.JwtAccessToken)
}

// TokenFailRequest reports that a PASSWORD token request cannot be granted.
type TokenFailRequest struct {
	Ticket string          `json:"ticket"`
	Reason TokenFailReason `json:"reason"`
}

func (r *TokenFailRequest) Validate() error {
	if err := requireString("TokenFailRequest", "ticket", r.Ticket); err != nil {
		return err
	}
	if !tokenFailReasons.Contains(r.Reason) {
		return invalidField("TokenFailRequest", "reason", "undeclared reason")
	}
	return nil
}

type TokenFailResponse struct {
	ApiResult
	Action          TokenFailAction `json:"action"`
	ResponseContent *string         `json:"responseContent,omitempty"`
}

// TokenIssueRequest grants a PASSWORD token request after the resource owner was authenticated.
type TokenIssueRequest struct {
	Ticket      string     `json:"ticket"`
	Subject     string     `json:"subject"`
	Properties  []Property `json:"properties,omitempty"`
	JwtAtClaims *string    `json:"jwtAtClaims,omitempty"`
	AccessToken *string    `json:"accessToken,omitempty"`
}

func (r *TokenIssueRequest) Validate() error {
	if err := requireString("TokenIssueRequest", "ticket", r.Ticket); err != nil {
		return err
	}
	return requireString("TokenIssueRequest", "subject", r.Subject)
}

type TokenIssueResponse struct {
	ApiResult
	Action                TokenIssueAction `json:"action"`
	ResponseContent       *string          `json:"responseContent,omitempty"`
	AccessToken           *string          `json:"accessToken,omitempty"`
	AccessTokenExpiresAt  int64            `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration   int64            `json:"accessTokenDuration,omitempty"`
	RefreshToken          *string          `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt int64            `json:"refreshTokenExpiresAt,omitempty"`
	RefreshTokenDuration  int64            `json:"refreshTokenDuration,omitempty"`
	ClientID              int64            `json:"clientId,omitempty"`
	Subject               *string          `json:"subject,omitempty"`
	Scopes                []string         `json:"scopes,omitempty"`
	Properties            []Property       `json:"properties,omitempty"`
	JwtAccessToken        *string          `json:"jwtAccessToken,omitempty"`
}

// TokenCreateRequest mints an access token directly, without an authorization flow.
type TokenCreateRequest struct {
	GrantType             oauth2.GrantType `json:"grantType"`
	ClientID              int64            `json:"clientId"`
	Subject               *string          `json:"subject,omitempty"`
	Scopes                []string         `json:"scopes,omitempty"`
	AccessTokenDuration   int64            `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration  int64            `json:"refreshTokenDuration,omitempty"`
	Properties            []Property       `json:"properties,omitempty"`
	ClientIDAliasUsed     bool             `json:"clientIdAliasUsed,omitempty"`
	AccessToken           *string          `json:"accessToken,omitempty"`
	RefreshToken          *string          `json:"refreshToken,omitempty"`
	AccessTokenPersistent bool             `json:"accessTokenPersistent,omitempty"`
	CertificateThumbprint *string          `json:"certificateThumbprint,omitempty"`
	DPoPKeyThumbprint     *string          `json:"dpopKeyThumbprint,omitempty"`
	AuthorizationDetails  *AuthzDetails    `json:"authorizationDetails,omitempty"`
	Resources             []string         `json:"resources,omitempty"`
	JwtAtClaims           *string          `json:"jwtAtClaims,omitempty"`
}

func (r *TokenCreateRequest) Validate() error {
	if !oauth2.GrantTypes().Contains(r.GrantType) {
		return requiredField("TokenCreateRequest", "grantType")
	}
	if r.ClientID == 0 {
		return requiredField("TokenCreateRequest", "clientId")
	}
	if r.GrantType != oauth2.GrantTypeClientCredentials && (r.Subject == nil || *r.Subject == "") {
		return requiredField("TokenCreateRequest", "subject")
	}
	return nil
}

type TokenCreateResponse struct {
	ApiResult
	Action               TokenCreateAction               `json:"action"`
	GrantType            enum.Optional[oauth2.GrantType] `json:"grantType,omitzero"`
	ClientID             int64                           `json:"clientId,omitempty"`
	Subject              *string                         `json:"subject,omitempty"`
	Scopes               []string                        `json:"scopes,omitempty"`
	AccessToken          *string                         `json:"accessToken,omitempty"`
	TokenType            *string                         `json:"tokenType,omitempty"`
	ExpiresIn            int64                           `json:"expiresIn,omitempty"`
	ExpiresAt            int64                           `json:"expiresAt,omitempty"`
	RefreshToken         *string                         `json:"refreshToken,omitempty"`
	Properties           []Property                      `json:"properties,omitempty"`
	JwtAccessToken       *string                         `json:"jwtAccessToken,omitempty"`
	AuthorizationDetails *AuthzDetails                   `json:"authorizationDetails,omitempty"`
	TokenID              *string                         `json:"tokenId,omitempty"`
}

// TokenUpdateRequest changes the scopes, properties or expiry of an existing access token.
type TokenUpdateRequest struct {
	AccessToken                              string        `json:"accessToken"`
	AccessTokenExpiresAt                     int64         `json:"accessTokenExpiresAt,omitempty"`
	Scopes                                   []string      `json:"scopes,omitempty"`
	Properties                               []Property    `json:"properties,omitempty"`
	AccessTokenExpiresAtUpdatedOnScopeUpdate bool          `json:"accessTokenExpiresAtUpdatedOnScopeUpdate,omitempty"`
	AccessTokenPersistent                    bool          `json:"accessTokenPersistent,omitempty"`
	CertificateThumbprint                    *string       `json:"certificateThumbprint,omitempty"`
	DPoPKeyThumbprint                        *string       `json:"dpopKeyThumbprint,omitempty"`
	AuthorizationDetails                     *AuthzDetails `json:"authorizationDetails,omitempty"`
}

func (r *TokenUpdateRequest) Validate() error {
	return requireString("TokenUpdateRequest", "accessToken", r.AccessToken)
}

type TokenUpdateResponse struct {
	ApiResult
	Action               TokenUpdateAction `json:"action"`
	AccessToken          *string           `json:"accessToken,omitempty"`
	AccessTokenExpiresAt int64             `json:"accessTokenExpiresAt,omitempty"`
	Scopes               []string          `json:"scopes,omitempty"`
	Properties           []Property        `json:"properties,omitempty"`
	AuthorizationDetails *AuthzDetails     `json:"authorizationDetails,omitempty"`
	TokenType            *string           `json:"tokenType,omitempty"`
}

// AccessToken is one entry of a token list. Tokens are identified by hash only.
type AccessToken struct {
	AccessTokenHash       string                          `json:"accessTokenHash"`
	AccessTokenExpiresAt  int64                           `json:"accessTokenExpiresAt,omitempty"`
	RefreshTokenHash      *string                         `json:"refreshTokenHash,omitempty"`
	RefreshTokenExpiresAt int64                           `json:"refreshTokenExpiresAt,omitempty"`
	CreatedAt             int64                           `json:"createdAt,omitempty"`
	LastRefreshedAt       int64                           `json:"lastRefreshedAt,omitempty"`
	ClientID              int64                           `json:"clientId,omitempty"`
	Subject               *string                         `json:"subject,omitempty"`
	GrantType             enum.Optional[oauth2.GrantType] `json:"grantType,omitzero"`
	Scopes                []string                        `json:"scopes,omitempty"`
	Properties            []Property                      `json:"properties,omitempty"`
}

// TokenListRequest selects a page of access tokens, optionally for one client or subject.
type TokenListRequest struct {
	ClientIdentifier string
	Subject          string
	Start            int
	End              int
}

func (r *TokenListRequest) Validate() error {
	return validateRange("TokenListRequest", r.Start, r.End)
}

type TokenListResponse struct {
	Start        int           `json:"start"`
	End          int           `json:"end"`
	Client       *Client       `json:"client,omitempty"`
	Subject      *string       `json:"subject,omitempty"`
	TotalCount   int           `json:"totalCount"`
	AccessTokens []AccessToken `json:"accessTokens,omitempty"`
}
