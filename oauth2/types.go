// Package oauth2 declares the protocol constants exchanged with the authorization server.
//
// Every type is an extended enum: an integer ordinal with one canonical wire string. The
// provider accepts either form on input and emits the canonical string, except for a few
// legacy fields that carry ordinals (see enum.Ordinal).
package oauth2

import "github.com/jrsteele09/go-authlete/enum"

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType int16

const (
	// ResponseTypeNone requests no credential at all (OAuth 2.0 Multiple Response Types §4).
	ResponseTypeNone ResponseType = 1

	// ResponseTypeCode indicates the authorization code flow.
	// Used in: Authorization Code Flow (most secure, requires server-side client)
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	ResponseTypeCode ResponseType = 2

	// ResponseTypeToken indicates the implicit flow, returning an access token directly.
	ResponseTypeToken ResponseType = 3

	// ResponseTypeIDToken returns only an ID token (OpenID Connect implicit flow).
	ResponseTypeIDToken ResponseType = 4

	// The remaining types are the OpenID Connect hybrid combinations.
	ResponseTypeCodeToken        ResponseType = 5
	ResponseTypeCodeIDToken      ResponseType = 6
	ResponseTypeIDTokenToken     ResponseType = 7
	ResponseTypeCodeIDTokenToken ResponseType = 8
)

var responseTypes = enum.New("ResponseType",
	enum.Entry[ResponseType]{Value: ResponseTypeNone, Wire: "none", Name: "NONE"},
	enum.Entry[ResponseType]{Value: ResponseTypeCode, Wire: "code", Name: "CODE"},
	enum.Entry[ResponseType]{Value: ResponseTypeToken, Wire: "token", Name: "TOKEN"},
	enum.Entry[ResponseType]{Value: ResponseTypeIDToken, Wire: "id_token", Name: "ID_TOKEN"},
	enum.Entry[ResponseType]{Value: ResponseTypeCodeToken, Wire: "code token", Name: "CODE_TOKEN"},
	enum.Entry[ResponseType]{Value: ResponseTypeCodeIDToken, Wire: "code id_token", Name: "CODE_ID_TOKEN"},
	enum.Entry[ResponseType]{Value: ResponseTypeIDTokenToken, Wire: "id_token token", Name: "ID_TOKEN_TOKEN"},
	enum.Entry[ResponseType]{Value: ResponseTypeCodeIDTokenToken, Wire: "code id_token token", Name: "CODE_ID_TOKEN_TOKEN"},
)

// ResponseTypes returns the lookup table for ResponseType.
func ResponseTypes() *enum.Set[ResponseType] { return responseTypes }

// ParseResponseType resolves a canonical wire string.
func ParseResponseType(s string) (ResponseType, error) { return responseTypes.FromString(s) }

func (t ResponseType) Enum() *enum.Set[ResponseType]    { return responseTypes }
func (t ResponseType) Ordinal() int                     { return int(t) }
func (t ResponseType) String() string                   { return responseTypes.Wire(t) }
func (t ResponseType) Name() string                     { return responseTypes.Name(t) }
func (t ResponseType) MarshalJSON() ([]byte, error)     { return responseTypes.MarshalJSON(t) }
func (t *ResponseType) UnmarshalJSON(data []byte) error { return responseTypes.UnmarshalJSON(data, t) }

// ResponseMode denotes how the authorization response parameters are returned to the client.
// Determines the mechanism used to send the auth code/error back to the redirect_uri.
type ResponseMode int16

const (
	// ResponseModeQuery returns parameters in the URL query string.
	// Example: https://client.example.com/callback?code=ABC123&state=xyz
	ResponseModeQuery ResponseMode = 1

	// ResponseModeFragment returns parameters in the URL fragment (after #).
	// Security: Fragment not sent to server, only accessible via JavaScript
	ResponseModeFragment ResponseMode = 2

	// ResponseModeFormPost returns parameters via HTTP POST with auto-submitting HTML form.
	ResponseModeFormPost ResponseMode = 3

	// ResponseModeJWT and the *JWT variants wrap the response in a signed JWT (JARM).
	ResponseModeJWT         ResponseMode = 4
	ResponseModeQueryJWT    ResponseMode = 5
	ResponseModeFragmentJWT ResponseMode = 6
	ResponseModeFormPostJWT ResponseMode = 7
)

var responseModes = enum.New("ResponseMode",
	enum.Entry[ResponseMode]{Value: ResponseModeQuery, Wire: "query", Name: "QUERY"},
	enum.Entry[ResponseMode]{Value: ResponseModeFragment, Wire: "fragment", Name: "FRAGMENT"},
	enum.Entry[ResponseMode]{Value: ResponseModeFormPost, Wire: "form_post", Name: "FORM_POST"},
	enum.Entry[ResponseMode]{Value: ResponseModeJWT, Wire: "jwt", Name: "JWT"},
	enum.Entry[ResponseMode]{Value: ResponseModeQueryJWT, Wire: "query.jwt", Name: "QUERY_JWT"},
	enum.Entry[ResponseMode]{Value: ResponseModeFragmentJWT, Wire: "fragment.jwt", Name: "FRAGMENT_JWT"},
	enum.Entry[ResponseMode]{Value: ResponseModeFormPostJWT, Wire: "form_post.jwt", Name: "FORM_POST_JWT"},
)

// ResponseModes returns the lookup table for ResponseMode.
func ResponseModes() *enum.Set[ResponseMode] { return responseModes }

// ParseResponseMode resolves a canonical wire string.
func ParseResponseMode(s string) (ResponseMode, error) { return responseModes.FromString(s) }

func (m ResponseMode) Enum() *enum.Set[ResponseMode]    { return responseModes }
func (m ResponseMode) Ordinal() int                     { return int(m) }
func (m ResponseMode) String() string                   { return responseModes.Wire(m) }
func (m ResponseMode) Name() string                     { return responseModes.Name(m) }
func (m ResponseMode) MarshalJSON() ([]byte, error)     { return responseModes.MarshalJSON(m) }
func (m *ResponseMode) UnmarshalJSON(data []byte) error { return responseModes.UnmarshalJSON(data, m) }

// IsJWT reports whether the response is delivered as a JARM JWT.
func (m ResponseMode) IsJWT() bool {
	return m >= ResponseModeJWT && m <= ResponseModeFormPostJWT
}

// CodeChallengeMethod represents the PKCE (Proof Key for Code Exchange) challenge method.
// Used to prevent authorization code interception attacks (especially for public clients).
type CodeChallengeMethod int16

const (
	// CodeChallengeMethodPlain means no hashing, code_verifier sent directly.
	// Security: Weaker than S256, only protects against passive attacks
	CodeChallengeMethodPlain CodeChallengeMethod = 1

	// CodeChallengeMethodS256 indicates SHA-256 hashing is used for the code challenge.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	CodeChallengeMethodS256 CodeChallengeMethod = 2
)

var codeChallengeMethods = enum.New("CodeChallengeMethod",
	enum.Entry[CodeChallengeMethod]{Value: CodeChallengeMethodPlain, Wire: "plain", Name: "PLAIN"},
	enum.Entry[CodeChallengeMethod]{Value: CodeChallengeMethodS256, Wire: "S256", Name: "S256"},
)

// CodeChallengeMethods returns the lookup table for CodeChallengeMethod.
func CodeChallengeMethods() *enum.Set[CodeChallengeMethod] { return codeChallengeMethods }

// ParseCodeChallengeMethod resolves a canonical wire string.
func ParseCodeChallengeMethod(s string) (CodeChallengeMethod, error) {
	return codeChallengeMethods.FromString(s)
}

func (m CodeChallengeMethod) Enum() *enum.Set[CodeChallengeMethod] { return codeChallengeMethods }
func (m CodeChallengeMethod) Ordinal() int                         { return int(m) }
func (m CodeChallengeMethod) String() string                       { return codeChallengeMethods.Wire(m) }
func (m CodeChallengeMethod) Name() string                         { return codeChallengeMethods.Name(m) }
func (m CodeChallengeMethod) MarshalJSON() ([]byte, error)         { return codeChallengeMethods.MarshalJSON(m) }
func (m *CodeChallengeMethod) UnmarshalJSON(data []byte) error {
	return codeChallengeMethods.UnmarshalJSON(data, m)
}

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType int16

const (
	// GrantTypeAuthorizationCode exchanges an authorization code for tokens.
	// Token request includes: code, client_id, client_secret, redirect_uri, code_verifier (if PKCE)
	GrantTypeAuthorizationCode GrantType = 1

	// GrantTypeImplicit is not used at the token endpoint but appears in client metadata.
	GrantTypeImplicit GrantType = 2

	// GrantTypePassword is the resource owner password credentials grant.
	GrantTypePassword GrantType = 3

	// GrantTypeClientCredentials allows machine-to-machine authentication.
	// Returns: access_token (no refresh_token or id_token)
	GrantTypeClientCredentials GrantType = 4

	// GrantTypeRefreshToken exchanges a refresh token for new tokens.
	GrantTypeRefreshToken GrantType = 5

	// GrantTypeCIBA redeems a backchannel authentication request (auth_req_id).
	GrantTypeCIBA GrantType = 6

	// GrantTypeDeviceCode redeems a device authorization (RFC 8628).
	GrantTypeDeviceCode GrantType = 7

	// GrantTypeTokenExchange is RFC 8693 token exchange.
	GrantTypeTokenExchange GrantType = 8

	// GrantTypeJWTBearer is the RFC 7523 JWT authorization grant.
	GrantTypeJWTBearer GrantType = 9
)

var grantTypes = enum.New("GrantType",
	enum.Entry[GrantType]{Value: GrantTypeAuthorizationCode, Wire: "authorization_code", Name: "AUTHORIZATION_CODE"},
	enum.Entry[GrantType]{Value: GrantTypeImplicit, Wire: "implicit", Name: "IMPLICIT"},
	enum.Entry[GrantType]{Value: GrantTypePassword, Wire: "password", Name: "PASSWORD"},
	enum.Entry[GrantType]{Value: GrantTypeClientCredentials, Wire: "client_credentials", Name: "CLIENT_CREDENTIALS"},
	enum.Entry[GrantType]{Value: GrantTypeRefreshToken, Wire: "refresh_token", Name: "REFRESH_TOKEN"},
	enum.Entry[GrantType]{Value: GrantTypeCIBA, Wire: "urn:openid:params:grant-type:ciba", Name: "CIBA"},
	enum.Entry[GrantType]{Value: GrantTypeDeviceCode, Wire: "urn:ietf:params:oauth:grant-type:device_code", Name: "DEVICE_CODE"},
	enum.Entry[GrantType]{Value: GrantTypeTokenExchange, Wire: "urn:ietf:params:oauth:grant-type:token-exchange", Name: "TOKEN_EXCHANGE"},
	enum.Entry[GrantType]{Value: GrantTypeJWTBearer, Wire: "urn:ietf:params:oauth:grant-type:jwt-bearer", Name: "JWT_BEARER"},
)

// GrantTypes returns the lookup table for GrantType.
func GrantTypes() *enum.Set[GrantType] { return grantTypes }

// ParseGrantType resolves a canonical wire string.
func ParseGrantType(s string) (GrantType, error) { return grantTypes.FromString(s) }

func (g GrantType) Enum() *enum.Set[GrantType]    { return grantTypes }
func (g GrantType) Ordinal() int                  { return int(g) }
func (g GrantType) String() string                { return grantTypes.Wire(g) }
func (g GrantType) Name() string                  { return grantTypes.Name(g) }
func (g GrantType) MarshalJSON() ([]byte, error)  { return grantTypes.MarshalJSON(g) }
func (g *GrantType) UnmarshalJSON(b []byte) error { return grantTypes.UnmarshalJSON(b, g) }

// Prompt is a value of the OpenID Connect "prompt" request parameter.
type Prompt int16

const (
	PromptNone          Prompt = 0
	PromptLogin         Prompt = 1
	PromptConsent       Prompt = 2
	PromptSelectAccount Prompt = 3
	PromptCreate        Prompt = 4
)

var prompts = enum.New("Prompt",
	enum.Entry[Prompt]{Value: PromptNone, Wire: "none", Name: "NONE"},
	enum.Entry[Prompt]{Value: PromptLogin, Wire: "login", Name: "LOGIN"},
	enum.Entry[Prompt]{Value: PromptConsent, Wire: "consent", Name: "CONSENT"},
	enum.Entry[Prompt]{Value: PromptSelectAccount, Wire: "select_account", Name: "SELECT_ACCOUNT"},
	enum.Entry[Prompt]{Value: PromptCreate, Wire: "create", Name: "CREATE"},
)

// Prompts returns the lookup table for Prompt.
func Prompts() *enum.Set[Prompt] { return prompts }

// ParsePrompt resolves a canonical wire string.
func ParsePrompt(s string) (Prompt, error) { return prompts.FromString(s) }

func (p Prompt) Enum() *enum.Set[Prompt]      { return prompts }
func (p Prompt) Ordinal() int                 { return int(p) }
func (p Prompt) String() string               { return prompts.Wire(p) }
func (p Prompt) Name() string                 { return prompts.Name(p) }
func (p Prompt) MarshalJSON() ([]byte, error) { return prompts.MarshalJSON(p) }
func (p *Prompt) UnmarshalJSON(b []byte) error {
	return prompts.UnmarshalJSON(b, p)
}

// Display is a value of the OpenID Connect "display" request parameter.
type Display int16

const (
	DisplayPage  Display = 1
	DisplayPopup Display = 2
	DisplayTouch Display = 3
	DisplayWAP   Display = 4
)

var displays = enum.New("Display",
	enum.Entry[Display]{Value: DisplayPage, Wire: "page", Name: "PAGE"},
	enum.Entry[Display]{Value: DisplayPopup, Wire: "popup", Name: "POPUP"},
	enum.Entry[Display]{Value: DisplayTouch, Wire: "touch", Name: "TOUCH"},
	enum.Entry[Display]{Value: DisplayWAP, Wire: "wap", Name: "WAP"},
)

// Displays returns the lookup table for Display.
func Displays() *enum.Set[Display] { return displays }

// ParseDisplay resolves a canonical wire string.
func ParseDisplay(s string) (Display, error) { return displays.FromString(s) }

func (d Display) Enum() *enum.Set[Display]      { return displays }
func (d Display) Ordinal() int                  { return int(d) }
func (d Display) String() string                { return displays.Wire(d) }
func (d Display) Name() string                  { return displays.Name(d) }
func (d Display) MarshalJSON() ([]byte, error)  { return displays.MarshalJSON(d) }
func (d *Display) UnmarshalJSON(b []byte) error { return displays.UnmarshalJSON(b, d) }
