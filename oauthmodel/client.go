package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// Client is a client application registered with a service.
// ClientID is assigned by the provider and is always present in responses.
type Client struct {
	ClientID             int64                                 `json:"clientId"`
	ClientIDAlias        *string                               `json:"clientIdAlias,omitempty"`
	ClientIDAliasEnabled bool                                  `json:"clientIdAliasEnabled,omitempty"`
	ClientSecret         *string                               `json:"clientSecret,omitempty"`
	Developer            *string                               `json:"developer,omitempty"`
	ServiceNumber        int64                                 `json:"serviceNumber,omitempty"`
	ClientType           enum.Optional[oauth2.ClientType]      `json:"clientType,omitzero"`
	ApplicationType      enum.Optional[oauth2.ApplicationType] `json:"applicationType,omitzero"`
	ClientName           *string                               `json:"clientName,omitempty"`
	ClientNames          []TaggedValue                         `json:"clientNames,omitempty"`
	Description          *string                               `json:"description,omitempty"`
	Descriptions         []TaggedValue                         `json:"descriptions,omitempty"`
	Contacts             []string                              `json:"contacts,omitempty"`
	RedirectURIs         []string                              `json:"redirectUris,omitempty"`
	ResponseTypes        enum.List[oauth2.ResponseType]        `json:"responseTypes,omitempty"`
	GrantTypes           enum.List[oauth2.GrantType]           `json:"grantTypes,omitempty"`
	LogoURI              *string                               `json:"logoUri,omitempty"`
	TosURI               *string                               `json:"tosUri,omitempty"`
	PolicyURI            *string                               `json:"policyUri,omitempty"`
	ClientURI            *string                               `json:"clientUri,omitempty"`
	JwksURI              *string                               `json:"jwksUri,omitempty"`
	Jwks                 *string                               `json:"jwks,omitempty"`
	SectorIdentifierURI  *string                               `json:"sectorIdentifierUri,omitempty"`
	SubjectType          enum.Optional[oauth2.SubjectType]     `json:"subjectType,omitzero"`

	IDTokenSignAlg             enum.Optional[oauth2.JWSAlg] `json:"idTokenSignAlg,omitzero"`
	IDTokenEncryptionAlg       enum.Optional[oauth2.JWEAlg] `json:"idTokenEncryptionAlg,omitzero"`
	IDTokenEncryptionEnc       enum.Optional[oauth2.JWEEnc] `json:"idTokenEncryptionEnc,omitzero"`
	UserInfoSignAlg            enum.Optional[oauth2.JWSAlg] `json:"userInfoSignAlg,omitzero"`
	UserInfoEncryptionAlg      enum.Optional[oauth2.JWEAlg] `json:"userInfoEncryptionAlg,omitzero"`
	UserInfoEncryptionEnc      enum.Optional[oauth2.JWEEnc] `json:"userInfoEncryptionEnc,omitzero"`
	RequestSignAlg             enum.Optional[oauth2.JWSAlg] `json:"requestSignAlg,omitzero"`
	RequestEncryptionAlg       enum.Optional[oauth2.JWEAlg] `json:"requestEncryptionAlg,omitzero"`
	RequestEncryptionEnc       enum.Optional[oauth2.JWEEnc] `json:"requestEncryptionEnc,omitzero"`
	AuthorizationSignAlg       enum.Optional[oauth2.JWSAlg] `json:"authorizationSignAlg,omitzero"`
	AuthorizationEncryptionAlg enum.Optional[oauth2.JWEAlg] `json:"authorizationEncryptionAlg,omitzero"`
	AuthorizationEncryptionEnc enum.Optional[oauth2.JWEEnc] `json:"authorizationEncryptionEnc,omitzero"`

	TokenAuthMethod  enum.Optional[oauth2.ClientAuthMethod] `json:"tokenAuthMethod,omitzero"`
	TokenAuthSignAlg enum.Optional[oauth2.JWSAlg]           `json:"tokenAuthSignAlg,omitzero"`

	DefaultMaxAge    int64    `json:"defaultMaxAge,omitempty"`
	DefaultACRs      []string `json:"defaultAcrs,omitempty"`
	AuthTimeRequired bool     `json:"authTimeRequired,omitempty"`
	LoginURI         *string  `json:"loginUri,omitempty"`
	RequestURIs      []string `json:"requestUris,omitempty"`

	TLSClientAuthSubjectDN                *string `json:"tlsClientAuthSubjectDn,omitempty"`
	TLSClientCertificateBoundAccessTokens bool    `json:"tlsClientCertificateBoundAccessTokens,omitempty"`
	SelfSignedCertificateKeyID            *string `json:"selfSignedCertificateKeyId,omitempty"`
	SoftwareID                            *string `json:"softwareId,omitempty"`
	SoftwareVersion                       *string `json:"softwareVersion,omitempty"`

	BcDeliveryMode         enum.Optional[oauth2.DeliveryMode] `json:"bcDeliveryMode,omitzero"`
	BcNotificationEndpoint *string                            `json:"bcNotificationEndpoint,omitempty"`
	BcRequestSignAlg       enum.Optional[oauth2.JWSAlg]       `json:"bcRequestSignAlg,omitzero"`
	BcUserCodeRequired     bool                               `json:"bcUserCodeRequired,omitempty"`

	DynamicallyRegistered     bool     `json:"dynamicallyRegistered,omitempty"`
	AuthorizationDetailsTypes []string `json:"authorizationDetailsTypes,omitempty"`
	ParRequired               bool     `json:"parRequired,omitempty"`
	RequestObjectRequired     bool     `json:"requestObjectRequired,omitempty"`
	DPoPRequired              bool     `json:"dpopRequired,omitempty"`
	Attributes                []Pair   `json:"attributes,omitempty"`
	CustomMetadata            *string  `json:"customMetadata,omitempty"`

	Extension  *ClientExtension `json:"extension,omitempty"`
	CreatedAt  int64            `json:"createdAt,omitempty"`
	ModifiedAt int64            `json:"modifiedAt,omitempty"`
}

// ClientExtension holds provider-specific client settings.
type ClientExtension struct {
	RequestableScopes        []string `json:"requestableScopes,omitempty"`
	RequestableScopesEnabled bool     `json:"requestableScopesEnabled,omitempty"`
	AccessTokenDuration      int64    `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration     int64    `json:"refreshTokenDuration,omitempty"`
	TokenExchangePermitted   bool     `json:"tokenExchangePermitted,omitempty"`
}

// ClientListRequest selects a page of clients. Developer limits the list to one developer.
type ClientListRequest struct {
	Developer string
	Start     int
	End       int
}

// Validate checks the page range.
func (r *ClientListRequest) Validate() error {
	return validateRange("ClientListRequest", r.Start, r.End)
}

// ClientListResponse is a page of clients.
type ClientListResponse struct {
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Developer  *string  `json:"developer,omitempty"`
	TotalCount int      `json:"totalCount"`
	Clients    []Client `json:"clients,omitempty"`
}

// ValidateForUpdate checks that the client identifies an existing registration.
func (c *Client) ValidateForUpdate() error {
	if c.ClientID == 0 {
		return requiredField("Client", "clientId")
	}
	return nil
}

// Validate checks the parts of a client that can be checked without the provider.
func (c *Client) Validate() error {
	for _, uri := range c.RedirectURIs {
		if uri == "" {
			return invalidField("Client", "redirectUris", "empty redirect URI")
		}
	}
	return nil
}
