package oauthmodel

import "github.com/jrsteele09/go-authlete/enum"

// AuthorizationFailReason is the reason passed to /auth/authorization/fail.
type AuthorizationFailReason int16

const (
	AuthorizationFailReasonUnknown                  AuthorizationFailReason = 0
	AuthorizationFailReasonNotLoggedIn              AuthorizationFailReason = 1
	AuthorizationFailReasonMaxAgeNotSupported       AuthorizationFailReason = 2
	AuthorizationFailReasonExceedsMaxAge            AuthorizationFailReason = 3
	AuthorizationFailReasonDifferentSubject         AuthorizationFailReason = 4
	AuthorizationFailReasonAcrNotSatisfied          AuthorizationFailReason = 5
	AuthorizationFailReasonDenied                   AuthorizationFailReason = 6
	AuthorizationFailReasonServerError              AuthorizationFailReason = 7
	AuthorizationFailReasonNotAuthenticated         AuthorizationFailReason = 8
	AuthorizationFailReasonAccountSelectionRequired AuthorizationFailReason = 9
	AuthorizationFailReasonConsentRequired          AuthorizationFailReason = 10
	AuthorizationFailReasonInteractionRequired      AuthorizationFailReason = 11
	AuthorizationFailReasonInvalidTarget            AuthorizationFailReason = 12
)

var authorizationFailReasons = enum.New("AuthorizationFailReason",
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonUnknown, Wire: "UNKNOWN"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonNotLoggedIn, Wire: "NOT_LOGGED_IN"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonMaxAgeNotSupported, Wire: "MAX_AGE_NOT_SUPPORTED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonExceedsMaxAge, Wire: "EXCEEDS_MAX_AGE"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonDifferentSubject, Wire: "DIFFERENT_SUBJECT"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonAcrNotSatisfied, Wire: "ACR_NOT_SATISFIED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonDenied, Wire: "DENIED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonServerError, Wire: "SERVER_ERROR"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonNotAuthenticated, Wire: "NOT_AUTHENTICATED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonAccountSelectionRequired, Wire: "ACCOUNT_SELECTION_REQUIRED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonConsentRequired, Wire: "CONSENT_REQUIRED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonInteractionRequired, Wire: "INTERACTION_REQUIRED"},
	enum.Entry[AuthorizationFailReason]{Value: AuthorizationFailReasonInvalidTarget, Wire: "INVALID_TARGET"},
)

// AuthorizationFailReasons returns the lookup table for AuthorizationFailReason.
func AuthorizationFailReasons() *enum.Set[AuthorizationFailReason] { return authorizationFailReasons }

func (r AuthorizationFailReason) Enum() *enum.Set[AuthorizationFailReason] { return authorizationFailReasons }
func (r AuthorizationFailReason) String() string                           { return authorizationFailReasons.Wire(r) }
func (r AuthorizationFailReason) MarshalJSON() ([]byte, error)             { return authorizationFailReasons.MarshalJSON(r) }
func (r *AuthorizationFailReason) UnmarshalJSON(data []byte) error {
	return authorizationFailReasons.UnmarshalJSON(data, r)
}

// TokenFailReason is the reason passed to /auth/token/fail.
type TokenFailReason int16

const (
	TokenFailReasonUnknown                         TokenFailReason = 0
	TokenFailReasonInvalidResourceOwnerCredentials TokenFailReason = 1
	TokenFailReasonInvalidTarget                   TokenFailReason = 2
)

var tokenFailReasons = enum.New("TokenFailReason",
	enum.Entry[TokenFailReason]{Value: TokenFailReasonUnknown, Wire: "UNKNOWN"},
	enum.Entry[TokenFailReason]{Value: TokenFailReasonInvalidResourceOwnerCredentials, Wire: "INVALID_RESOURCE_OWNER_CREDENTIALS"},
	enum.Entry[TokenFailReason]{Value: TokenFailReasonInvalidTarget, Wire: "INVALID_TARGET"},
)

// TokenFailReasons returns the lookup table for TokenFailReason.
func TokenFailReasons() *enum.Set[TokenFailReason] { return tokenFailReasons }

func (r TokenFailReason) Enum() *enum.Set[TokenFailReason] { return tokenFailReasons }
func (r TokenFailReason) String() string                   { return tokenFailReasons.Wire(r) }
func (r TokenFailReason) MarshalJSON() ([]byte, error)     { return tokenFailReasons.MarshalJSON(r) }
func (r *TokenFailReason) UnmarshalJSON(data []byte) error {
	return tokenFailReasons.UnmarshalJSON(data, r)
}

// BackchannelAuthenticationFailReason is the reason passed to /backchannel/authentication/fail.
type BackchannelAuthenticationFailReason int16

const (
	BackchannelAuthenticationFailReasonAccessDenied          BackchannelAuthenticationFailReason = 0
	BackchannelAuthenticationFailReasonExpiredLoginHintToken BackchannelAuthenticationFailReason = 1
	BackchannelAuthenticationFailReasonInvalidBindingMessage BackchannelAuthenticationFailReason = 2
	BackchannelAuthenticationFailReasonInvalidTarget         BackchannelAuthenticationFailReason = 3
	BackchannelAuthenticationFailReasonInvalidUserCode       BackchannelAuthenticationFailReason = 4
	BackchannelAuthenticationFailReasonMissingUserCode       BackchannelAuthenticationFailReason = 5
	BackchannelAuthenticationFailReasonServerError           BackchannelAuthenticationFailReason = 6
	BackchannelAuthenticationFailReasonUnauthorizedClient    BackchannelAuthenticationFailReason = 7
	BackchannelAuthenticationFailReasonUnknownUserId         BackchannelAuthenticationFailReason = 8
)

var backchannelAuthenticationFailReasons = enum.New("BackchannelAuthenticationFailReason",
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonAccessDenied, Wire: "ACCESS_DENIED"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonExpiredLoginHintToken, Wire: "EXPIRED_LOGIN_HINT_TOKEN"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonInvalidBindingMessage, Wire: "INVALID_BINDING_MESSAGE"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonInvalidTarget, Wire: "INVALID_TARGET"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonInvalidUserCode, Wire: "INVALID_USER_CODE"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonMissingUserCode, Wire: "MISSING_USER_CODE"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonServerError, Wire: "SERVER_ERROR"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonUnauthorizedClient, Wire: "UNAUTHORIZED_CLIENT"},
	enum.Entry[BackchannelAuthenticationFailReason]{Value: BackchannelAuthenticationFailReasonUnknownUserId, Wire: "UNKNOWN_USER_ID"},
)

// BackchannelAuthenticationFailReasons returns the lookup table for BackchannelAuthenticationFailReason.
func BackchannelAuthenticationFailReasons() *enum.Set[BackchannelAuthenticationFailReason] { return backchannelAuthenticationFailReasons }

func (r BackchannelAuthenticationFailReason) Enum() *enum.Set[BackchannelAuthenticationFailReason] { return backchannelAuthenticationFailReasons }
func (r BackchannelAuthenticationFailReason) String() string                                       { return backchannelAuthenticationFailReasons.Wire(r) }
func (r BackchannelAuthenticationFailReason) MarshalJSON() ([]byte, error)                         { return backchannelAuthenticationFailReasons.MarshalJSON(r) }
func (r *BackchannelAuthenticationFailReason) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationFailReasons.UnmarshalJSON(data, r)
}

// BackchannelAuthenticationCompleteResult is the outcome of end-user authentication reported to /backchannel/authentication/complete.
type BackchannelAuthenticationCompleteResult int16

const (
	BackchannelAuthenticationCompleteResultAuthorized        BackchannelAuthenticationCompleteResult = 1
	BackchannelAuthenticationCompleteResultAccessDenied      BackchannelAuthenticationCompleteResult = 2
	BackchannelAuthenticationCompleteResultTransactionFailed BackchannelAuthenticationCompleteResult = 3
)

var backchannelAuthenticationCompleteResults = enum.New("BackchannelAuthenticationCompleteResult",
	enum.Entry[BackchannelAuthenticationCompleteResult]{Value: BackchannelAuthenticationCompleteResultAuthorized, Wire: "AUTHORIZED"},
	enum.Entry[BackchannelAuthenticationCompleteResult]{Value: BackchannelAuthenticationCompleteResultAccessDenied, Wire: "ACCESS_DENIED"},
	enum.Entry[BackchannelAuthenticationCompleteResult]{Value: BackchannelAuthenticationCompleteResultTransactionFailed, Wire: "TRANSACTION_FAILED"},
)

// BackchannelAuthenticationCompleteResults returns the lookup table for BackchannelAuthenticationCompleteResult.
func BackchannelAuthenticationCompleteResults() *enum.Set[BackchannelAuthenticationCompleteResult] { return backchannelAuthenticationCompleteResults }

func (r BackchannelAuthenticationCompleteResult) Enum() *enum.Set[BackchannelAuthenticationCompleteResult] { return backchannelAuthenticationCompleteResults }
func (r BackchannelAuthenticationCompleteResult) String() string                                           { return backchannelAuthenticationCompleteResults.Wire(r) }
func (r BackchannelAuthenticationCompleteResult) MarshalJSON() ([]byte, error)                             { return backchannelAuthenticationCompleteResults.MarshalJSON(r) }
func (r *BackchannelAuthenticationCompleteResult) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationCompleteResults.UnmarshalJSON(data, r)
}

// DeviceCompleteResult is the outcome of end-user authentication reported to /device/complete.
type DeviceCompleteResult int16

const (
	DeviceCompleteResultAuthorized        DeviceCompleteResult = 1
	DeviceCompleteResultAccessDenied      DeviceCompleteResult = 2
	DeviceCompleteResultTransactionFailed DeviceCompleteResult = 3
)

var deviceCompleteResults = enum.New("DeviceCompleteResult",
	enum.Entry[DeviceCompleteResult]{Value: DeviceCompleteResultAuthorized, Wire: "AUTHORIZED"},
	enum.Entry[DeviceCompleteResult]{Value: DeviceCompleteResultAccessDenied, Wire: "ACCESS_DENIED"},
	enum.Entry[DeviceCompleteResult]{Value: DeviceCompleteResultTransactionFailed, Wire: "TRANSACTION_FAILED"},
)

// DeviceCompleteResults returns the lookup table for DeviceCompleteResult.
func DeviceCompleteResults() *enum.Set[DeviceCompleteResult] { return deviceCompleteResults }

func (r DeviceCompleteResult) Enum() *enum.Set[DeviceCompleteResult] { return deviceCompleteResults }
func (r DeviceCompleteResult) String() string                        { return deviceCompleteResults.Wire(r) }
func (r DeviceCompleteResult) MarshalJSON() ([]byte, error)          { return deviceCompleteResults.MarshalJSON(r) }
func (r *DeviceCompleteResult) UnmarshalJSON(data []byte) error {
	return deviceCompleteResults.UnmarshalJSON(data, r)
}
