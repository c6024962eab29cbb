package oauth2

import "github.com/jrsteele09/go-authlete/enum"

// TokenType is an RFC 8693 token type identifier.
type TokenType int16

const (
	TokenTypeJWT          TokenType = 1
	TokenTypeAccessToken  TokenType = 2
	TokenTypeRefreshToken TokenType = 3
	TokenTypeIDToken      TokenType = 4
	TokenTypeSAML1        TokenType = 5
	TokenTypeSAML2        TokenType = 6
	TokenTypeDeviceSecret TokenType = 7
)

var tokenTypes = enum.New("TokenType",
	enum.Entry[TokenType]{Value: TokenTypeJWT, Wire: "urn:ietf:params:oauth:token-type:jwt", Name: "JWT"},
	enum.Entry[TokenType]{Value: TokenTypeAccessToken, Wire: "urn:ietf:params:oauth:token-type:access_token", Name: "ACCESS_TOKEN"},
	enum.Entry[TokenType]{Value: TokenTypeRefreshToken, Wire: "urn:ietf:params:oauth:token-type:refresh_token", Name: "REFRESH_TOKEN"},
	enum.Entry[TokenType]{Value: TokenTypeIDToken, Wire: "urn:ietf:params:oauth:token-type:id_token", Name: "ID_TOKEN"},
	enum.Entry[TokenType]{Value: TokenTypeSAML1, Wire: "urn:ietf:params:oauth:token-type:saml1", Name: "SAML1"},
	enum.Entry[TokenType]{Value: TokenTypeSAML2, Wire: "urn:ietf:params:oauth:token-type:saml2", Name: "SAML2"},
	enum.Entry[TokenType]{Value: TokenTypeDeviceSecret, Wire: "urn:ietf:params:oauth:token-type:device-secret", Name: "DEVICE_SECRET"},
)

// TokenTypes returns the lookup table for TokenType.
func TokenTypes() *enum.Set[TokenType] { return tokenTypes }

// ParseTokenType resolves a canonical wire string.
func ParseTokenType(s string) (TokenType, error) { return tokenTypes.FromString(s) }

func (t TokenType) Enum() *enum.Set[TokenType]    { return tokenTypes }
func (t TokenType) Ordinal() int                  { return int(t) }
func (t TokenType) String() string                { return tokenTypes.Wire(t) }
func (t TokenType) Name() string                  { return tokenTypes.Name(t) }
func (t TokenType) MarshalJSON() ([]byte, error)  { return tokenTypes.MarshalJSON(t) }
func (t *TokenType) UnmarshalJSON(b []byte) error { return tokenTypes.UnmarshalJSON(b, t) }

// ClaimType is an OpenID Connect claim type (Core §5.6).
type ClaimType int16

const (
	ClaimTypeNormal      ClaimType = 1
	ClaimTypeAggregated  ClaimType = 2
	ClaimTypeDistributed ClaimType = 3
)

var claimTypes = enum.New("ClaimType",
	enum.Entry[ClaimType]{Value: ClaimTypeNormal, Wire: "normal", Name: "NORMAL"},
	enum.Entry[ClaimType]{Value: ClaimTypeAggregated, Wire: "aggregated", Name: "AGGREGATED"},
	enum.Entry[ClaimType]{Value: ClaimTypeDistributed, Wire: "distributed", Name: "DISTRIBUTED"},
)

// ClaimTypes returns the lookup table for ClaimType.
func ClaimTypes() *enum.Set[ClaimType] { return claimTypes }

// ParseClaimType resolves a canonical wire string.
func ParseClaimType(s string) (ClaimType, error) { return claimTypes.FromString(s) }

func (t ClaimType) Enum() *enum.Set[ClaimType]    { return claimTypes }
func (t ClaimType) Ordinal() int                  { return int(t) }
func (t ClaimType) String() string                { return claimTypes.Wire(t) }
func (t ClaimType) Name() string                  { return claimTypes.Name(t) }
func (t ClaimType) MarshalJSON() ([]byte, error)  { return claimTypes.MarshalJSON(t) }
func (t *ClaimType) UnmarshalJSON(b []byte) error { return claimTypes.UnmarshalJSON(b, t) }

// ServiceProfile is a conformance profile a service declares support for.
type ServiceProfile int16

const (
	ServiceProfileFAPI        ServiceProfile = 1
	ServiceProfileOpenBanking ServiceProfile = 2
)

var serviceProfiles = enum.New("ServiceProfile",
	enum.Entry[ServiceProfile]{Value: ServiceProfileFAPI, Wire: "fapi", Name: "FAPI"},
	enum.Entry[ServiceProfile]{Value: ServiceProfileOpenBanking, Wire: "openbanking", Name: "OPEN_BANKING"},
)

// ServiceProfiles returns the lookup table for ServiceProfile.
func ServiceProfiles() *enum.Set[ServiceProfile] { return serviceProfiles }

// ParseServiceProfile resolves a canonical wire string.
func ParseServiceProfile(s string) (ServiceProfile, error) { return serviceProfiles.FromString(s) }

func (p ServiceProfile) Enum() *enum.Set[ServiceProfile] { return serviceProfiles }
func (p ServiceProfile) Ordinal() int                    { return int(p) }
func (p ServiceProfile) String() string                  { return serviceProfiles.Wire(p) }
func (p ServiceProfile) Name() string                    { return serviceProfiles.Name(p) }
func (p ServiceProfile) MarshalJSON() ([]byte, error)    { return serviceProfiles.MarshalJSON(p) }
func (p *ServiceProfile) UnmarshalJSON(b []byte) error   { return serviceProfiles.UnmarshalJSON(b, p) }

// Sns is a social network service a service can federate with.
type Sns int16

const (
	SnsFacebook Sns = 1
)

var snses = enum.New("Sns",
	enum.Entry[Sns]{Value: SnsFacebook, Wire: "FACEBOOK"},
)

// Snses returns the lookup table for Sns.
func Snses() *enum.Set[Sns] { return snses }

// ParseSns resolves a canonical wire string.
func ParseSns(s string) (Sns, error) { return snses.FromString(s) }

func (s Sns) Enum() *enum.Set[Sns]          { return snses }
func (s Sns) Ordinal() int                  { return int(s) }
func (s Sns) String() string                { return snses.Wire(s) }
func (s Sns) Name() string                  { return snses.Name(s) }
func (s Sns) MarshalJSON() ([]byte, error)  { return snses.MarshalJSON(s) }
func (s *Sns) UnmarshalJSON(b []byte) error { return snses.UnmarshalJSON(b, s) }
