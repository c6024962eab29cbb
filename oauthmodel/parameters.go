package oauthmodel

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-authlete/oauth2"
)

// AuthorizationParameters holds the OAuth2 authorization request parameters.
// Encode renders them into AuthorizationRequest.Parameters for callers that assemble the
// request themselves instead of forwarding the query string they received.
type AuthorizationParameters struct {
	// ClientID identifies the application requesting authorization.
	// Required: Yes
	// Example: "57297408867"
	ClientID string

	// ResponseType specifies what the authorization endpoint should return.
	// Required: Yes
	// Example: oauth2.ResponseTypeCode
	ResponseType oauth2.ResponseType

	// RedirectURI is where the authorization response will be sent.
	// Required: Only when the client registered more than one
	// Security: Must exactly match a pre-registered URI to prevent open redirects
	RedirectURI string

	// ResponseMode controls how authorization response is returned. Zero means the default
	// for the response type.
	ResponseMode oauth2.ResponseMode

	// Scope specifies the permissions being requested.
	// Example: "openid profile email"
	Scope string

	// State is an opaque value used by the client to maintain state between request and callback.
	// Security: Client should validate this matches on callback to prevent CSRF attacks
	State string

	// CodeChallenge is the PKCE challenge derived from code_verifier.
	// Example: BASE64URL(SHA256(code_verifier))
	// Length: 43 to 128 characters
	CodeChallenge string

	// CodeChallengeMethod specifies how code_challenge was derived.
	// Zero means "plain" when a challenge is present.
	CodeChallengeMethod oauth2.CodeChallengeMethod

	// Nonce associates a client session with an ID token.
	// Token validation: Client must verify id_token.nonce matches this value
	Nonce string

	// Prompt lists the OpenID Connect prompt values, sent space separated.
	Prompt []oauth2.Prompt

	// Display is the OpenID Connect display value. Zero means unset.
	Display oauth2.Display

	// LoginHint pre-fills the username/email on the login page.
	// Security: Should not be trusted, only used for UI pre-population
	LoginHint string

	// UILocales lists preferred UI languages, e.g. "fr-CA fr en".
	UILocales string

	// MaxAge is the allowable elapsed time in seconds since the last authentication.
	MaxAge string

	// Request and RequestURI pass a request object by value or by reference (e.g. a PAR request_uri).
	Request    string
	RequestURI string
}

// Encode renders the parameters as an application/x-www-form-urlencoded string.
func (p *AuthorizationParameters) Encode() string {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("client_id", p.ClientID)
	set("response_type", p.ResponseType.String())
	set("redirect_uri", p.RedirectURI)
	set("response_mode", p.ResponseMode.String())
	set("scope", p.Scope)
	set("state", p.State)
	set("code_challenge", p.CodeChallenge)
	set("code_challenge_method", p.CodeChallengeMethod.String())
	set("nonce", p.Nonce)
	set("prompt", strings.Join(oauth2.Prompts().WireList(p.Prompt), " "))
	set("display", p.Display.String())
	set("login_hint", p.LoginHint)
	set("ui_locales", p.UILocales)
	set("max_age", p.MaxAge)
	set("request", p.Request)
	set("request_uri", p.RequestURI)
	return v.Encode()
}

// Validate checks the parameters that can be checked without the client's registration.
func (p *AuthorizationParameters) Validate() error {
	if strings.TrimSpace(p.ClientID) == "" && p.RequestURI == "" {
		return requiredField("AuthorizationParameters", "client_id")
	}
	if p.RequestURI == "" && !oauth2.ResponseTypes().Contains(p.ResponseType) {
		return &FieldError{Request: "AuthorizationParameters", Field: "response_type", Reason: "undeclared response type", Err: ErrInvalidResponseType}
	}
	if !codeChallengeValid(p.CodeChallenge) {
		return &FieldError{Request: "AuthorizationParameters", Field: "code_challenge", Reason: "must be 43 to 128 characters", Err: ErrInvalidCodeChallenge}
	}
	if !codeChallengeMethodValid(p.CodeChallenge, p.CodeChallengeMethod) {
		return &FieldError{Request: "AuthorizationParameters", Field: "code_challenge_method", Reason: "undeclared method", Err: ErrInvalidCodeChallengeMethod}
	}
	return nil
}

// ValidateForClient additionally checks the redirect URI against a client's registration.
func (p *AuthorizationParameters) ValidateForClient(client *Client) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !redirectValidForClient(p.RedirectURI, client) {
		return &FieldError{Request: "AuthorizationParameters", Field: "redirect_uri", Reason: "not registered for the client", Err: ErrInvalidRedirectUri}
	}
	return nil
}

func codeChallengeValid(codeChallenge string) bool {
	if strings.TrimSpace(codeChallenge) == "" {
		return true
	}
	return len(codeChallenge) >= 43 && len(codeChallenge) <= 128
}

func codeChallengeMethodValid(codeChallenge string, challengeMethod oauth2.CodeChallengeMethod) bool {
	if strings.TrimSpace(codeChallenge) == "" || challengeMethod == 0 {
		return true
	}
	return oauth2.CodeChallengeMethods().Contains(challengeMethod)
}

func redirectValidForClient(redirectUri string, client *Client) bool {
	// A client with a single registered URI may omit redirect_uri.
	if redirectUri == "" {
		return len(client.RedirectURIs) == 1
	}
	for _, uri := range client.RedirectURIs {
		if redirectUri == uri {
			return true
		}
	}
	return false
}
