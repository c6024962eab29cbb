package oauth2

import "github.com/jrsteele09/go-authlete/enum"

// AuthFlag is a capability of a client authentication method.
type AuthFlag uint8

const (
	// FlagSecretBased marks methods where the client presents a shared secret.
	FlagSecretBased AuthFlag = 1 << iota
	// FlagJWTBased marks methods where the client presents a signed JWT assertion.
	FlagJWTBased
	// FlagCertificateBased marks mutual-TLS methods.
	FlagCertificateBased
)

// ClientAuthMethod is a token endpoint client authentication method
// (token_endpoint_auth_method in client metadata).
type ClientAuthMethod int16

const (
	// ClientAuthMethodNone is used by public clients. It carries no capability flag.
	ClientAuthMethodNone ClientAuthMethod = 0

	// ClientAuthMethodClientSecretBasic sends client_id:client_secret in the Authorization header.
	ClientAuthMethodClientSecretBasic ClientAuthMethod = 1

	// ClientAuthMethodClientSecretPost sends client_id and client_secret as form parameters.
	ClientAuthMethodClientSecretPost ClientAuthMethod = 2

	// ClientAuthMethodClientSecretJWT sends a JWT assertion MACed with the client secret.
	// It is classified as JWT-based only.
	ClientAuthMethodClientSecretJWT ClientAuthMethod = 3

	// ClientAuthMethodPrivateKeyJWT sends a JWT assertion signed with the client's private key.
	ClientAuthMethodPrivateKeyJWT ClientAuthMethod = 4

	// ClientAuthMethodTLSClientAuth authenticates with a PKI-issued client certificate (RFC 8705).
	ClientAuthMethodTLSClientAuth ClientAuthMethod = 5

	// ClientAuthMethodSelfSignedTLSClientAuth authenticates with a self-signed client certificate.
	ClientAuthMethodSelfSignedTLSClientAuth ClientAuthMethod = 6
)

var clientAuthMethods = enum.New("ClientAuthMethod",
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodNone, Wire: "none", Name: "NONE"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodClientSecretBasic, Wire: "client_secret_basic", Name: "CLIENT_SECRET_BASIC"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodClientSecretPost, Wire: "client_secret_post", Name: "CLIENT_SECRET_POST"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodClientSecretJWT, Wire: "client_secret_jwt", Name: "CLIENT_SECRET_JWT"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodPrivateKeyJWT, Wire: "private_key_jwt", Name: "PRIVATE_KEY_JWT"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodTLSClientAuth, Wire: "tls_client_auth", Name: "TLS_CLIENT_AUTH"},
	enum.Entry[ClientAuthMethod]{Value: ClientAuthMethodSelfSignedTLSClientAuth, Wire: "self_signed_tls_client_auth", Name: "SELF_SIGNED_TLS_CLIENT_AUTH"},
)

var clientAuthFlags = map[ClientAuthMethod]AuthFlag{
	ClientAuthMethodClientSecretBasic:       FlagSecretBased,
	ClientAuthMethodClientSecretPost:        FlagSecretBased,
	ClientAuthMethodClientSecretJWT:         FlagJWTBased,
	ClientAuthMethodPrivateKeyJWT:           FlagJWTBased,
	ClientAuthMethodTLSClientAuth:           FlagCertificateBased,
	ClientAuthMethodSelfSignedTLSClientAuth: FlagCertificateBased,
}

// ClientAuthMethods returns the lookup table for ClientAuthMethod.
func ClientAuthMethods() *enum.Set[ClientAuthMethod] { return clientAuthMethods }

// ParseClientAuthMethod resolves a canonical wire string.
func ParseClientAuthMethod(s string) (ClientAuthMethod, error) {
	return clientAuthMethods.FromString(s)
}

func (m ClientAuthMethod) Enum() *enum.Set[ClientAuthMethod] { return clientAuthMethods }
func (m ClientAuthMethod) Ordinal() int                      { return int(m) }
func (m ClientAuthMethod) String() string                    { return clientAuthMethods.Wire(m) }
func (m ClientAuthMethod) Name() string                      { return clientAuthMethods.Name(m) }
func (m ClientAuthMethod) MarshalJSON() ([]byte, error)      { return clientAuthMethods.MarshalJSON(m) }
func (m *ClientAuthMethod) UnmarshalJSON(data []byte) error  { return clientAuthMethods.UnmarshalJSON(data, m) }

// Flags returns the capability flags of the method. None and undeclared values return 0.
func (m ClientAuthMethod) Flags() AuthFlag {
	return clientAuthFlags[m]
}

func (m ClientAuthMethod) IsSecretBased() bool      { return m.Flags()&FlagSecretBased != 0 }
func (m ClientAuthMethod) IsJWTBased() bool         { return m.Flags()&FlagJWTBased != 0 }
func (m ClientAuthMethod) IsCertificateBased() bool { return m.Flags()&FlagCertificateBased != 0 }

// ClientType is the OAuth 2.0 client type (RFC 6749 §2.1).
type ClientType int16

const (
	// ClientTypePublic cannot keep credentials confidential (SPA, native app).
	ClientTypePublic       ClientType = 1
	// ClientTypeConfidential can authenticate securely with the authorization server.
	ClientTypeConfidential ClientType = 2
)

var clientTypes = enum.New("ClientType",
	enum.Entry[ClientType]{Value: ClientTypePublic, Wire: "public", Name: "PUBLIC"},
	enum.Entry[ClientType]{Value: ClientTypeConfidential, Wire: "confidential", Name: "CONFIDENTIAL"},
)

// ClientTypes returns the lookup table for ClientType.
func ClientTypes() *enum.Set[ClientType] { return clientTypes }

// ParseClientType resolves a canonical wire string.
func ParseClientType(s string) (ClientType, error) { return clientTypes.FromString(s) }

func (t ClientType) Enum() *enum.Set[ClientType]      { return clientTypes }
func (t ClientType) Ordinal() int                     { return int(t) }
func (t ClientType) String() string                   { return clientTypes.Wire(t) }
func (t ClientType) Name() string                     { return clientTypes.Name(t) }
func (t ClientType) MarshalJSON() ([]byte, error)     { return clientTypes.MarshalJSON(t) }
func (t *ClientType) UnmarshalJSON(data []byte) error { return clientTypes.UnmarshalJSON(data, t) }

// ApplicationType is the OpenID Connect Dynamic Client Registration application_type.
type ApplicationType int16

const (
	ApplicationTypeWeb    ApplicationType = 1
	ApplicationTypeNative ApplicationType = 2
)

var applicationTypes = enum.New("ApplicationType",
	enum.Entry[ApplicationType]{Value: ApplicationTypeWeb, Wire: "web", Name: "WEB"},
	enum.Entry[ApplicationType]{Value: ApplicationTypeNative, Wire: "native", Name: "NATIVE"},
)

// ApplicationTypes returns the lookup table for ApplicationType.
func ApplicationTypes() *enum.Set[ApplicationType] { return applicationTypes }

// ParseApplicationType resolves a canonical wire string.
func ParseApplicationType(s string) (ApplicationType, error) { return applicationTypes.FromString(s) }

func (t ApplicationType) Enum() *enum.Set[ApplicationType] { return applicationTypes }
func (t ApplicationType) Ordinal() int                     { return int(t) }
func (t ApplicationType) String() string                   { return applicationTypes.Wire(t) }
func (t ApplicationType) Name() string                     { return applicationTypes.Name(t) }
func (t ApplicationType) MarshalJSON() ([]byte, error)     { return applicationTypes.MarshalJSON(t) }
func (t *ApplicationType) UnmarshalJSON(data []byte) error {
	return applicationTypes.UnmarshalJSON(data, t)
}

// SubjectType controls how the "sub" claim is computed for a client.
type SubjectType int16

const (
	// SubjectTypePublic gives every client the same subject value for a user.
	SubjectTypePublic   SubjectType = 1
	// SubjectTypePairwise gives each sector identifier a different subject value.
	SubjectTypePairwise SubjectType = 2
)

var subjectTypes = enum.New("SubjectType",
	enum.Entry[SubjectType]{Value: SubjectTypePublic, Wire: "public", Name: "PUBLIC"},
	enum.Entry[SubjectType]{Value: SubjectTypePairwise, Wire: "pairwise", Name: "PAIRWISE"},
)

// SubjectTypes returns the lookup table for SubjectType.
func SubjectTypes() *enum.Set[SubjectType] { return subjectTypes }

// ParseSubjectType resolves a canonical wire string.
func ParseSubjectType(s string) (SubjectType, error) { return subjectTypes.FromString(s) }

func (t SubjectType) Enum() *enum.Set[SubjectType]     { return subjectTypes }
func (t SubjectType) Ordinal() int                     { return int(t) }
func (t SubjectType) String() string                   { return subjectTypes.Wire(t) }
func (t SubjectType) Name() string                     { return subjectTypes.Name(t) }
func (t SubjectType) MarshalJSON() ([]byte, error)     { return subjectTypes.MarshalJSON(t) }
func (t *SubjectType) UnmarshalJSON(data []byte) error { return subjectTypes.UnmarshalJSON(data, t) }
