// Package oauthmodel holds the request and response records exchanged with the authorization
// server's API. Wire names are lowerCamelCase; optional values that carry meaning when unset
// are pointers or enum.Optional.
package oauthmodel

import (
	"encoding/json"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// ApiResult is embedded in every response.
type ApiResult struct {
	// ResultCode identifies the outcome, e.g. "A004001".
	ResultCode    string `json:"resultCode,omitempty"`
	// ResultMessage is a human-readable description of the outcome.
	ResultMessage string `json:"resultMessage,omitempty"`
}

// Pair is a generic key/value pair.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TaggedValue is a value annotated with a BCP 47 language tag.
type TaggedValue struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Property is an extra key/value associated with an access token.
// Hidden properties are not returned from introspection or token responses.
type Property struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Address is the OpenID Connect "address" claim. Member names follow the claim, not the API.
type Address struct {
	Formatted     *string `json:"formatted,omitempty"`
	StreetAddress *string `json:"street_address,omitempty"`
	Locality      *string `json:"locality,omitempty"`
	Region        *string `json:"region,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Country       *string `json:"country,omitempty"`
}

// Scope is a scope registered with a service.
type Scope struct {
	Name         string        `json:"name"`
	DefaultEntry bool          `json:"defaultEntry,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Descriptions []TaggedValue `json:"descriptions,omitempty"`
	Attributes   []Pair        `json:"attributes,omitempty"`
}

// DynamicScope is a scope whose name carries a value, e.g. "payment:123".
type DynamicScope struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AuthzDetails holds RFC 9396 authorization_details.
type AuthzDetails struct {
	Elements []AuthzDetailsElement `json:"elements,omitempty"`
}

// AuthzDetailsElement is one authorization details object.
type AuthzDetailsElement struct {
	Type        string   `json:"type"`
	Locations   []string `json:"locations,omitempty"`
	Actions     []string `json:"actions,omitempty"`
	DataTypes   []string `json:"dataTypes,omitempty"`
	Identifier  *string  `json:"identifier,omitempty"`
	Privileges  []string `json:"privileges,omitempty"`
	// OtherFields is the JSON object of type-specific members.
	OtherFields *string  `json:"otherFields,omitempty"`
}

// OtherFieldsMap decodes OtherFields. A nil map is returned when none are present.
func (e AuthzDetailsElement) OtherFieldsMap() (map[string]any, error) {
	if e.OtherFields == nil || *e.OtherFields == "" {
		return nil, nil
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(*e.OtherFields), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// TokenInfo describes the token presented to token exchange.
type TokenInfo struct {
	Token                string                          `json:"token,omitempty"`
	TokenType            enum.Optional[oauth2.TokenType] `json:"tokenType,omitzero"`
	ClientID             int64                           `json:"clientId,omitempty"`
	ClientIDAlias        *string                         `json:"clientIdAlias,omitempty"`
	ClientIDAliasUsed    bool                            `json:"clientIdAliasUsed,omitempty"`
	Subject              *string                         `json:"subject,omitempty"`
	Scopes               []string                        `json:"scopes,omitempty"`
	ExpiresAt            int64                           `json:"expiresAt,omitempty"`
	IssuedAt             int64                           `json:"issuedAt,omitempty"`
	Issuer               *string                         `json:"issuer,omitempty"`
	Audiences            []string                        `json:"audiences,omitempty"`
	Resources            []string                        `json:"resources,omitempty"`
	AuthorizationDetails *AuthzDetails                   `json:"authorizationDetails,omitempty"`
	Properties           []Property                      `json:"properties,omitempty"`
}

// Hsk describes a key held in a hardware security module.
type Hsk struct {
	Kty       string  `json:"kty,omitempty"`
	Use       string  `json:"use,omitempty"`
	Alg       string  `json:"alg,omitempty"`
	Kid       string  `json:"kid,omitempty"`
	HsmName   string  `json:"hsmName,omitempty"`
	Handle    string  `json:"handle,omitempty"`
	PublicKey *string `json:"publicKey,omitempty"`
}

// ClientCredentials carries the client authentication the authorization server received,
// for endpoints where the provider authenticates the client.
type ClientCredentials struct {
	ClientID              *string  `json:"clientId,omitempty"`
	ClientSecret          *string  `json:"clientSecret,omitempty"`
	ClientCertificate     *string  `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string `json:"clientCertificatePath,omitempty"`
}

// DPoPProof carries an RFC 9449 DPoP proof with the request method and URL it is bound to.
type DPoPProof struct {
	DPoP *string `json:"dpop,omitempty"`
	HTM  *string `json:"htm,omitempty"`
	HTU  *string `json:"htu,omitempty"`
}

func (p DPoPProof) validate(request string) error {
	if p.DPoP != nil && (p.HTM == nil || p.HTU == nil) {
		return invalidField(request, "dpop", "htm and htu are required with a DPoP proof")
	}
	return nil
}
