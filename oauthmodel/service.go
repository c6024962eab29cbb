package oauthmodel

import (
	"fmt"

	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// Service is an authorization server instance hosted by the provider.
// APIKey is assigned by the provider and is always present in responses.
type Service struct {
	Number       int64   `json:"number,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	Issuer       *string `json:"issuer,omitempty"`
	Description  *string `json:"description,omitempty"`
	APIKey       int64   `json:"apiKey"`
	APISecret    *string `json:"apiSecret,omitempty"`
	ServiceOwner int64   `json:"serviceOwnerNumber,omitempty"`

	// SupportedSnses and SupportedDeveloperSnses are legacy fields carried as ordinals.
	SupportedSnses          enum.OrdinalList[oauth2.Sns] `json:"supportedSnses,omitempty"`
	SnsCredentials          []SnsCredentials             `json:"snsCredentials,omitempty"`
	SupportedDeveloperSnses enum.OrdinalList[oauth2.Sns] `json:"supportedDeveloperSnses,omitempty"`
	DeveloperSnsCredentials []SnsCredentials             `json:"developerSnsCredentials,omitempty"`
	ClientsPerDeveloper     int                          `json:"clientsPerDeveloper,omitempty"`

	AuthorizationEndpoint       *string `json:"authorizationEndpoint,omitempty"`
	TokenEndpoint               *string `json:"tokenEndpoint,omitempty"`
	RevocationEndpoint          *string `json:"revocationEndpoint,omitempty"`
	UserInfoEndpoint            *string `json:"userInfoEndpoint,omitempty"`
	IntrospectionEndpoint       *string `json:"introspectionEndpoint,omitempty"`
	RegistrationEndpoint        *string `json:"registrationEndpoint,omitempty"`
	EndSessionEndpoint          *string `json:"endSessionEndpoint,omitempty"`
	BackchannelAuthReqEndpoint  *string `json:"backchannelAuthenticationEndpoint,omitempty"`
	DeviceAuthorizationEndpoint *string `json:"deviceAuthorizationEndpoint,omitempty"`
	DeviceVerificationURI       *string `json:"deviceVerificationUri,omitempty"`
	PushedAuthReqEndpoint       *string `json:"pushedAuthReqEndpoint,omitempty"`
	JwksURI                     *string `json:"jwksUri,omitempty"`
	Jwks                        *string `json:"jwks,omitempty"`
	ServiceDocumentation        *string `json:"serviceDocumentation,omitempty"`
	PolicyURI                   *string `json:"policyUri,omitempty"`
	TosURI                      *string `json:"tosUri,omitempty"`

	SupportedScopes                        []Scope                               `json:"supportedScopes,omitempty"`
	SupportedResponseTypes                 enum.List[oauth2.ResponseType]        `json:"supportedResponseTypes,omitempty"`
	SupportedGrantTypes                    enum.List[oauth2.GrantType]           `json:"supportedGrantTypes,omitempty"`
	SupportedTokenAuthMethods              enum.List[oauth2.ClientAuthMethod]    `json:"supportedTokenAuthMethods,omitempty"`
	SupportedRevocationAuthMethods         enum.List[oauth2.ClientAuthMethod]    `json:"supportedRevocationAuthMethods,omitempty"`
	SupportedIntrospectionAuthMethods      enum.List[oauth2.ClientAuthMethod]    `json:"supportedIntrospectionAuthMethods,omitempty"`
	SupportedDisplays                      enum.List[oauth2.Display]             `json:"supportedDisplays,omitempty"`
	SupportedClaimTypes                    enum.List[oauth2.ClaimType]           `json:"supportedClaimTypes,omitempty"`
	SupportedClaims                        []string                              `json:"supportedClaims,omitempty"`
	SupportedClaimLocales                  []string                              `json:"supportedClaimLocales,omitempty"`
	SupportedUILocales                     []string                              `json:"supportedUiLocales,omitempty"`
	SupportedACRs                          []string                              `json:"supportedAcrs,omitempty"`
	SupportedServiceProfiles               enum.List[oauth2.ServiceProfile]      `json:"supportedServiceProfiles,omitempty"`
	SupportedBackchannelTokenDeliveryModes enum.List[oauth2.DeliveryMode]        `json:"supportedBackchannelTokenDeliveryModes,omitempty"`
	SupportedPromptValues                  enum.List[oauth2.Prompt]              `json:"supportedPromptValues,omitempty"`
	SupportedAuthorizationDetailsTypes     []string                              `json:"supportedAuthorizationDetailsTypes,omitempty"`
	UserCodeCharset                        enum.Optional[oauth2.UserCodeCharset] `json:"userCodeCharset,omitzero"`
	AccessTokenSignAlg                     enum.Optional[oauth2.JWSAlg]          `json:"accessTokenSignAlg,omitzero"`
	HashAlgorithm                          enum.Optional[oauth2.HashAlg]         `json:"hashAlgorithm,omitzero"`

	AccessTokenType               *string `json:"accessTokenType,omitempty"`
	AccessTokenDuration           int64   `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration          int64   `json:"refreshTokenDuration,omitempty"`
	IDTokenDuration               int64   `json:"idTokenDuration,omitempty"`
	AuthorizationResponseDuration int64   `json:"authorizationResponseDuration,omitempty"`
	PushedAuthReqDuration         int64   `json:"pushedAuthReqDuration,omitempty"`
	BackchannelAuthReqIDDuration  int     `json:"backchannelAuthReqIdDuration,omitempty"`
	BackchannelPollingInterval    int     `json:"backchannelPollingInterval,omitempty"`
	DeviceFlowCodeDuration        int     `json:"deviceFlowCodeDuration,omitempty"`
	DevicePollingInterval         int     `json:"devicePollingInterval,omitempty"`
	UserCodeLength                int     `json:"userCodeLength,omitempty"`

	DirectAuthorizationEndpointEnabled bool `json:"directAuthorizationEndpointEnabled,omitempty"`
	DirectTokenEndpointEnabled         bool `json:"directTokenEndpointEnabled,omitempty"`
	DirectRevocationEndpointEnabled    bool `json:"directRevocationEndpointEnabled,omitempty"`
	DirectUserInfoEndpointEnabled      bool `json:"directUserInfoEndpointEnabled,omitempty"`
	DirectJwksEndpointEnabled          bool `json:"directJwksEndpointEnabled,omitempty"`
	DirectIntrospectionEndpointEnabled bool `json:"directIntrospectionEndpointEnabled,omitempty"`

	SingleAccessTokenPerSubject           bool `json:"singleAccessTokenPerSubject,omitempty"`
	PkceRequired                          bool `json:"pkceRequired,omitempty"`
	PkceS256Required                      bool `json:"pkceS256Required,omitempty"`
	RefreshTokenKept                      bool `json:"refreshTokenKept,omitempty"`
	RefreshTokenDurationKept              bool `json:"refreshTokenDurationKept,omitempty"`
	ErrorDescriptionOmitted               bool `json:"errorDescriptionOmitted,omitempty"`
	ErrorURIOmitted                       bool `json:"errorUriOmitted,omitempty"`
	ClientIDAliasEnabled                  bool `json:"clientIdAliasEnabled,omitempty"`
	TLSClientCertificateBoundAccessTokens bool `json:"tlsClientCertificateBoundAccessTokens,omitempty"`
	DynamicRegistrationSupported          bool `json:"dynamicRegistrationSupported,omitempty"`
	BackchannelUserCodeParameterSupported bool `json:"backchannelUserCodeParameterSupported,omitempty"`
	ParRequired                           bool `json:"parRequired,omitempty"`
	RequestObjectRequired                 bool `json:"requestObjectRequired,omitempty"`
	ScopeRequired                         bool `json:"scopeRequired,omitempty"`
	HsmEnabled                            bool `json:"hsmEnabled,omitempty"`

	Hsks       []Hsk  `json:"hsks,omitempty"`
	Attributes []Pair `json:"attributes,omitempty"`
	Metadata   []Pair `json:"metadata,omitempty"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
	ModifiedAt int64  `json:"modifiedAt,omitempty"`
}

// SnsCredentials holds the API credentials of a social network service.
type SnsCredentials struct {
	Sns       enum.Optional[oauth2.Sns] `json:"sns,omitzero"`
	APIKey    *string                   `json:"apiKey,omitempty"`
	APISecret *string                   `json:"apiSecret,omitempty"`
}

// SupportedSnsValues returns the declared supportedSnses entries.
func (s *Service) SupportedSnsValues() []oauth2.Sns {
	return append([]oauth2.Sns{}, s.SupportedSnses...)
}

// ServiceListRequest selects a page of services.
type ServiceListRequest struct {
	Start int
	End   int
}

// Validate checks the page range.
func (r *ServiceListRequest) Validate() error {
	return validateRange("ServiceListRequest", r.Start, r.End)
}

// ServiceListResponse is a page of services.
type ServiceListResponse struct {
	Start      int       `json:"start"`
	End        int       `json:"end"`
	TotalCount int       `json:"totalCount"`
	Services   []Service `json:"services,omitempty"`
}

// ValidateForUpdate checks that the service identifies an existing instance.
func (s *Service) ValidateForUpdate() error {
	if s.APIKey == 0 {
		return requiredField("Service", "apiKey")
	}
	return nil
}

// Validate checks that the legacy SNS fields hold declared values.
func (s *Service) Validate() error {
	for field, values := range map[string]enum.OrdinalList[oauth2.Sns]{
		"supportedSnses":          s.SupportedSnses,
		"supportedDeveloperSnses": s.SupportedDeveloperSnses,
	} {
		for _, v := range values {
			if !oauth2.Snses().Contains(v) {
				return invalidField("Service", field, fmt.Sprintf("undeclared SNS %d", int(v)))
			}
		}
	}
	return nil
}
