package oauthmodel

import "github.com/jrsteele09/go-authlete/enum"

// The action of a response tells the authorization server what to do next. Each response type
// has its own closed set of actions and its own ordinal order; the wire value is the variant
// name. An action outside the set fails decoding.

// AuthorizationAction is the action of an /auth/authorization response.
type AuthorizationAction int16

const (
	AuthorizationActionInternalServerError AuthorizationAction = iota
	AuthorizationActionBadRequest
	AuthorizationActionLocation
	AuthorizationActionForm
	AuthorizationActionNoInteraction
	AuthorizationActionInteraction
)

var authorizationActions = enum.New("AuthorizationAction",
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionLocation, Wire: "LOCATION"},
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionForm, Wire: "FORM"},
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionNoInteraction, Wire: "NO_INTERACTION"},
	enum.Entry[AuthorizationAction]{Value: AuthorizationActionInteraction, Wire: "INTERACTION"},
)

// AuthorizationActions returns the lookup table for AuthorizationAction.
func AuthorizationActions() *enum.Set[AuthorizationAction] { return authorizationActions }

func (a AuthorizationAction) Enum() *enum.Set[AuthorizationAction] { return authorizationActions }
func (a AuthorizationAction) String() string                       { return authorizationActions.Wire(a) }
func (a AuthorizationAction) MarshalJSON() ([]byte, error)         { return authorizationActions.MarshalJSON(a) }
func (a *AuthorizationAction) UnmarshalJSON(data []byte) error {
	return authorizationActions.UnmarshalJSON(data, a)
}

// AuthorizationFailAction is the action of an /auth/authorization/fail response.
type AuthorizationFailAction int16

const (
	AuthorizationFailActionInternalServerError AuthorizationFailAction = iota
	AuthorizationFailActionBadRequest
	AuthorizationFailActionLocation
	AuthorizationFailActionForm
)

var authorizationFailActions = enum.New("AuthorizationFailAction",
	enum.Entry[AuthorizationFailAction]{Value: AuthorizationFailActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[AuthorizationFailAction]{Value: AuthorizationFailActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[AuthorizationFailAction]{Value: AuthorizationFailActionLocation, Wire: "LOCATION"},
	enum.Entry[AuthorizationFailAction]{Value: AuthorizationFailActionForm, Wire: "FORM"},
)

// AuthorizationFailActions returns the lookup table for AuthorizationFailAction.
func AuthorizationFailActions() *enum.Set[AuthorizationFailAction] { return authorizationFailActions }

func (a AuthorizationFailAction) Enum() *enum.Set[AuthorizationFailAction] { return authorizationFailActions }
func (a AuthorizationFailAction) String() string                           { return authorizationFailActions.Wire(a) }
func (a AuthorizationFailAction) MarshalJSON() ([]byte, error)             { return authorizationFailActions.MarshalJSON(a) }
func (a *AuthorizationFailAction) UnmarshalJSON(data []byte) error {
	return authorizationFailActions.UnmarshalJSON(data, a)
}

// AuthorizationIssueAction is the action of an /auth/authorization/issue response.
type AuthorizationIssueAction int16

const (
	AuthorizationIssueActionInternalServerError AuthorizationIssueAction = iota
	AuthorizationIssueActionBadRequest
	AuthorizationIssueActionLocation
	AuthorizationIssueActionForm
)

var authorizationIssueActions = enum.New("AuthorizationIssueAction",
	enum.Entry[AuthorizationIssueAction]{Value: AuthorizationIssueActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[AuthorizationIssueAction]{Value: AuthorizationIssueActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[AuthorizationIssueAction]{Value: AuthorizationIssueActionLocation, Wire: "LOCATION"},
	enum.Entry[AuthorizationIssueAction]{Value: AuthorizationIssueActionForm, Wire: "FORM"},
)

// AuthorizationIssueActions returns the lookup table for AuthorizationIssueAction.
func AuthorizationIssueActions() *enum.Set[AuthorizationIssueAction] { return authorizationIssueActions }

func (a AuthorizationIssueAction) Enum() *enum.Set[AuthorizationIssueAction] { return authorizationIssueActions }
func (a AuthorizationIssueAction) String() string                            { return authorizationIssueActions.Wire(a) }
func (a AuthorizationIssueAction) MarshalJSON() ([]byte, error)              { return authorizationIssueActions.MarshalJSON(a) }
func (a *AuthorizationIssueAction) UnmarshalJSON(data []byte) error {
	return authorizationIssueActions.UnmarshalJSON(data, a)
}

// TokenAction is the action of an /auth/token response.
type TokenAction int16

const (
	TokenActionInternalServerError TokenAction = iota
	TokenActionInvalidClient
	TokenActionBadRequest
	TokenActionPassword
	TokenActionOK
	TokenActionTokenExchange
	TokenActionJWTBearer
)

var tokenActions = enum.New("TokenAction",
	enum.Entry[TokenAction]{Value: TokenActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[TokenAction]{Value: TokenActionInvalidClient, Wire: "INVALID_CLIENT"},
	enum.Entry[TokenAction]{Value: TokenActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[TokenAction]{Value: TokenActionPassword, Wire: "PASSWORD"},
	enum.Entry[TokenAction]{Value: TokenActionOK, Wire: "OK"},
	enum.Entry[TokenAction]{Value: TokenActionTokenExchange, Wire: "TOKEN_EXCHANGE"},
	enum.Entry[TokenAction]{Value: TokenActionJWTBearer, Wire: "JWT_BEARER"},
)

// TokenActions returns the lookup table for TokenAction.
func TokenActions() *enum.Set[TokenAction] { return tokenActions }

func (a TokenAction) Enum() *enum.Set[TokenAction] { return tokenActions }
func (a TokenAction) String() string               { return tokenActions.Wire(a) }
func (a TokenAction) MarshalJSON() ([]byte, error) { return tokenActions.MarshalJSON(a) }
func (a *TokenAction) UnmarshalJSON(data []byte) error {
	return tokenActions.UnmarshalJSON(data, a)
}

type TokenFailAction int16

const (
	TokenFailActionInternalServerError TokenFailAction = iota
	TokenFailActionBadRequest
)

var tokenFailActions = enum.New("TokenFailAction",
	enum.Entry[TokenFailAction]{Value: TokenFailActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[TokenFailAction]{Value: TokenFailActionBadRequest, Wire: "BAD_REQUEST"},
)

// TokenFailActions returns the lookup table for TokenFailAction.
func TokenFailActions() *enum.Set[TokenFailAction] { return tokenFailActions }

func (a TokenFailAction) Enum() *enum.Set[TokenFailAction] { return tokenFailActions }
func (a TokenFailAction) String() string                   { return tokenFailActions.Wire(a) }
func (a TokenFailAction) MarshalJSON() ([]byte, error)     { return tokenFailActions.MarshalJSON(a) }
func (a *TokenFailAction) UnmarshalJSON(data []byte) error {
	return tokenFailActions.UnmarshalJSON(data, a)
}

type TokenIssueAction int16

const (
	TokenIssueActionInternalServerError TokenIssueAction = iota
	TokenIssueActionOK
)

var tokenIssueActions = enum.New("TokenIssueAction",
	enum.Entry[TokenIssueAction]{Value: TokenIssueActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[TokenIssueAction]{Value: TokenIssueActionOK, Wire: "OK"},
)

// TokenIssueActions returns the lookup table for TokenIssueAction.
func TokenIssueActions() *enum.Set[TokenIssueAction] { return tokenIssueActions }

func (a TokenIssueAction) Enum() *enum.Set[TokenIssueAction] { return tokenIssueActions }
func (a TokenIssueAction) String() string                    { return tokenIssueActions.Wire(a) }
func (a TokenIssueAction) MarshalJSON() ([]byte, error)      { return tokenIssueActions.MarshalJSON(a) }
func (a *TokenIssueAction) UnmarshalJSON(data []byte) error {
	return tokenIssueActions.UnmarshalJSON(data, a)
}

type TokenCreateAction int16

const (
	TokenCreateActionInternalServerError TokenCreateAction = iota
	TokenCreateActionBadRequest
	TokenCreateActionForbidden
	TokenCreateActionOK
)

var tokenCreateActions = enum.New("TokenCreateAction",
	enum.Entry[TokenCreateAction]{Value: TokenCreateActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[TokenCreateAction]{Value: TokenCreateActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[TokenCreateAction]{Value: TokenCreateActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[TokenCreateAction]{Value: TokenCreateActionOK, Wire: "OK"},
)

// TokenCreateActions returns the lookup table for TokenCreateAction.
func TokenCreateActions() *enum.Set[TokenCreateAction] { return tokenCreateActions }

func (a TokenCreateAction) Enum() *enum.Set[TokenCreateAction] { return tokenCreateActions }
func (a TokenCreateAction) String() string                     { return tokenCreateActions.Wire(a) }
func (a TokenCreateAction) MarshalJSON() ([]byte, error)       { return tokenCreateActions.MarshalJSON(a) }
func (a *TokenCreateAction) UnmarshalJSON(data []byte) error {
	return tokenCreateActions.UnmarshalJSON(data, a)
}

type TokenUpdateAction int16

const (
	TokenUpdateActionInternalServerError TokenUpdateAction = iota
	TokenUpdateActionBadRequest
	TokenUpdateActionForbidden
	TokenUpdateActionNotFound
	TokenUpdateActionOK
)

var tokenUpdateActions = enum.New("TokenUpdateAction",
	enum.Entry[TokenUpdateAction]{Value: TokenUpdateActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[TokenUpdateAction]{Value: TokenUpdateActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[TokenUpdateAction]{Value: TokenUpdateActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[TokenUpdateAction]{Value: TokenUpdateActionNotFound, Wire: "NOT_FOUND"},
	enum.Entry[TokenUpdateAction]{Value: TokenUpdateActionOK, Wire: "OK"},
)

// TokenUpdateActions returns the lookup table for TokenUpdateAction.
func TokenUpdateActions() *enum.Set[TokenUpdateAction] { return tokenUpdateActions }

func (a TokenUpdateAction) Enum() *enum.Set[TokenUpdateAction] { return tokenUpdateActions }
func (a TokenUpdateAction) String() string                     { return tokenUpdateActions.Wire(a) }
func (a TokenUpdateAction) MarshalJSON() ([]byte, error)       { return tokenUpdateActions.MarshalJSON(a) }
func (a *TokenUpdateAction) UnmarshalJSON(data []byte) error {
	return tokenUpdateActions.UnmarshalJSON(data, a)
}

// IntrospectionAction is the action of an /auth/introspection response.
type IntrospectionAction int16

const (
	IntrospectionActionInternalServerError IntrospectionAction = iota
	IntrospectionActionBadRequest
	IntrospectionActionUnauthorized
	IntrospectionActionForbidden
	IntrospectionActionOK
)

var introspectionActions = enum.New("IntrospectionAction",
	enum.Entry[IntrospectionAction]{Value: IntrospectionActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[IntrospectionAction]{Value: IntrospectionActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[IntrospectionAction]{Value: IntrospectionActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[IntrospectionAction]{Value: IntrospectionActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[IntrospectionAction]{Value: IntrospectionActionOK, Wire: "OK"},
)

// IntrospectionActions returns the lookup table for IntrospectionAction.
func IntrospectionActions() *enum.Set[IntrospectionAction] { return introspectionActions }

func (a IntrospectionAction) Enum() *enum.Set[IntrospectionAction] { return introspectionActions }
func (a IntrospectionAction) String() string                       { return introspectionActions.Wire(a) }
func (a IntrospectionAction) MarshalJSON() ([]byte, error)         { return introspectionActions.MarshalJSON(a) }
func (a *IntrospectionAction) UnmarshalJSON(data []byte) error {
	return introspectionActions.UnmarshalJSON(data, a)
}

type StandardIntrospectionAction int16

const (
	StandardIntrospectionActionInternalServerError StandardIntrospectionAction = iota
	StandardIntrospectionActionBadRequest
	StandardIntrospectionActionOK
)

var standardIntrospectionActions = enum.New("StandardIntrospectionAction",
	enum.Entry[StandardIntrospectionAction]{Value: StandardIntrospectionActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[StandardIntrospectionAction]{Value: StandardIntrospectionActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[StandardIntrospectionAction]{Value: StandardIntrospectionActionOK, Wire: "OK"},
)

// StandardIntrospectionActions returns the lookup table for StandardIntrospectionAction.
func StandardIntrospectionActions() *enum.Set[StandardIntrospectionAction] { return standardIntrospectionActions }

func (a StandardIntrospectionAction) Enum() *enum.Set[StandardIntrospectionAction] { return standardIntrospectionActions }
func (a StandardIntrospectionAction) String() string                               { return standardIntrospectionActions.Wire(a) }
func (a StandardIntrospectionAction) MarshalJSON() ([]byte, error)                 { return standardIntrospectionActions.MarshalJSON(a) }
func (a *StandardIntrospectionAction) UnmarshalJSON(data []byte) error {
	return standardIntrospectionActions.UnmarshalJSON(data, a)
}

type RevocationAction int16

const (
	RevocationActionInternalServerError RevocationAction = iota
	RevocationActionInvalidClient
	RevocationActionBadRequest
	RevocationActionOK
)

var revocationActions = enum.New("RevocationAction",
	enum.Entry[RevocationAction]{Value: RevocationActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[RevocationAction]{Value: RevocationActionInvalidClient, Wire: "INVALID_CLIENT"},
	enum.Entry[RevocationAction]{Value: RevocationActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[RevocationAction]{Value: RevocationActionOK, Wire: "OK"},
)

// RevocationActions returns the lookup table for RevocationAction.
func RevocationActions() *enum.Set[RevocationAction] { return revocationActions }

func (a RevocationAction) Enum() *enum.Set[RevocationAction] { return revocationActions }
func (a RevocationAction) String() string                    { return revocationActions.Wire(a) }
func (a RevocationAction) MarshalJSON() ([]byte, error)      { return revocationActions.MarshalJSON(a) }
func (a *RevocationAction) UnmarshalJSON(data []byte) error {
	return revocationActions.UnmarshalJSON(data, a)
}

type UserInfoAction int16

const (
	UserInfoActionInternalServerError UserInfoAction = iota
	UserInfoActionBadRequest
	UserInfoActionUnauthorized
	UserInfoActionForbidden
	UserInfoActionOK
)

var userInfoActions = enum.New("UserInfoAction",
	enum.Entry[UserInfoAction]{Value: UserInfoActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[UserInfoAction]{Value: UserInfoActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[UserInfoAction]{Value: UserInfoActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[UserInfoAction]{Value: UserInfoActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[UserInfoAction]{Value: UserInfoActionOK, Wire: "OK"},
)

// UserInfoActions returns the lookup table for UserInfoAction.
func UserInfoActions() *enum.Set[UserInfoAction] { return userInfoActions }

func (a UserInfoAction) Enum() *enum.Set[UserInfoAction] { return userInfoActions }
func (a UserInfoAction) String() string                  { return userInfoActions.Wire(a) }
func (a UserInfoAction) MarshalJSON() ([]byte, error)    { return userInfoActions.MarshalJSON(a) }
func (a *UserInfoAction) UnmarshalJSON(data []byte) error {
	return userInfoActions.UnmarshalJSON(data, a)
}

type UserInfoIssueAction int16

const (
	UserInfoIssueActionInternalServerError UserInfoIssueAction = iota
	UserInfoIssueActionBadRequest
	UserInfoIssueActionUnauthorized
	UserInfoIssueActionForbidden
	UserInfoIssueActionJSON
	UserInfoIssueActionJWT
)

var userInfoIssueActions = enum.New("UserInfoIssueAction",
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionJSON, Wire: "JSON"},
	enum.Entry[UserInfoIssueAction]{Value: UserInfoIssueActionJWT, Wire: "JWT"},
)

// UserInfoIssueActions returns the lookup table for UserInfoIssueAction.
func UserInfoIssueActions() *enum.Set[UserInfoIssueAction] { return userInfoIssueActions }

func (a UserInfoIssueAction) Enum() *enum.Set[UserInfoIssueAction] { return userInfoIssueActions }
func (a UserInfoIssueAction) String() string                       { return userInfoIssueActions.Wire(a) }
func (a UserInfoIssueAction) MarshalJSON() ([]byte, error)         { return userInfoIssueActions.MarshalJSON(a) }
func (a *UserInfoIssueAction) UnmarshalJSON(data []byte) error {
	return userInfoIssueActions.UnmarshalJSON(data, a)
}

// BackchannelAuthenticationAction is the action of a /backchannel/authentication response.
type BackchannelAuthenticationAction int16

const (
	BackchannelAuthenticationActionInternalServerError BackchannelAuthenticationAction = iota
	BackchannelAuthenticationActionUnauthorized
	BackchannelAuthenticationActionBadRequest
	BackchannelAuthenticationActionUserIdentification
)

var backchannelAuthenticationActions = enum.New("BackchannelAuthenticationAction",
	enum.Entry[BackchannelAuthenticationAction]{Value: BackchannelAuthenticationActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[BackchannelAuthenticationAction]{Value: BackchannelAuthenticationActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[BackchannelAuthenticationAction]{Value: BackchannelAuthenticationActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[BackchannelAuthenticationAction]{Value: BackchannelAuthenticationActionUserIdentification, Wire: "USER_IDENTIFICATION"},
)

// BackchannelAuthenticationActions returns the lookup table for BackchannelAuthenticationAction.
func BackchannelAuthenticationActions() *enum.Set[BackchannelAuthenticationAction] { return backchannelAuthenticationActions }

func (a BackchannelAuthenticationAction) Enum() *enum.Set[BackchannelAuthenticationAction] { return backchannelAuthenticationActions }
func (a BackchannelAuthenticationAction) String() string                                   { return backchannelAuthenticationActions.Wire(a) }
func (a BackchannelAuthenticationAction) MarshalJSON() ([]byte, error)                     { return backchannelAuthenticationActions.MarshalJSON(a) }
func (a *BackchannelAuthenticationAction) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationActions.UnmarshalJSON(data, a)
}

type BackchannelAuthenticationFailAction int16

const (
	BackchannelAuthenticationFailActionInternalServerError BackchannelAuthenticationFailAction = iota
	BackchannelAuthenticationFailActionForbidden
	BackchannelAuthenticationFailActionBadRequest
)

var backchannelAuthenticationFailActions = enum.New("BackchannelAuthenticationFailAction",
	enum.Entry[BackchannelAuthenticationFailAction]{Value: BackchannelAuthenticationFailActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[BackchannelAuthenticationFailAction]{Value: BackchannelAuthenticationFailActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[BackchannelAuthenticationFailAction]{Value: BackchannelAuthenticationFailActionBadRequest, Wire: "BAD_REQUEST"},
)

// BackchannelAuthenticationFailActions returns the lookup table for BackchannelAuthenticationFailAction.
func BackchannelAuthenticationFailActions() *enum.Set[BackchannelAuthenticationFailAction] { return backchannelAuthenticationFailActions }

func (a BackchannelAuthenticationFailAction) Enum() *enum.Set[BackchannelAuthenticationFailAction] { return backchannelAuthenticationFailActions }
func (a BackchannelAuthenticationFailAction) String() string                                       { return backchannelAuthenticationFailActions.Wire(a) }
func (a BackchannelAuthenticationFailAction) MarshalJSON() ([]byte, error)                         { return backchannelAuthenticationFailActions.MarshalJSON(a) }
func (a *BackchannelAuthenticationFailAction) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationFailActions.UnmarshalJSON(data, a)
}

type BackchannelAuthenticationIssueAction int16

const (
	BackchannelAuthenticationIssueActionInternalServerError BackchannelAuthenticationIssueAction = iota
	BackchannelAuthenticationIssueActionInvalidTicket
	BackchannelAuthenticationIssueActionOK
)

var backchannelAuthenticationIssueActions = enum.New("BackchannelAuthenticationIssueAction",
	enum.Entry[BackchannelAuthenticationIssueAction]{Value: BackchannelAuthenticationIssueActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[BackchannelAuthenticationIssueAction]{Value: BackchannelAuthenticationIssueActionInvalidTicket, Wire: "INVALID_TICKET"},
	enum.Entry[BackchannelAuthenticationIssueAction]{Value: BackchannelAuthenticationIssueActionOK, Wire: "OK"},
)

// BackchannelAuthenticationIssueActions returns the lookup table for BackchannelAuthenticationIssueAction.
func BackchannelAuthenticationIssueActions() *enum.Set[BackchannelAuthenticationIssueAction] { return backchannelAuthenticationIssueActions }

func (a BackchannelAuthenticationIssueAction) Enum() *enum.Set[BackchannelAuthenticationIssueAction] { return backchannelAuthenticationIssueActions }
func (a BackchannelAuthenticationIssueAction) String() string                                        { return backchannelAuthenticationIssueActions.Wire(a) }
func (a BackchannelAuthenticationIssueAction) MarshalJSON() ([]byte, error)                          { return backchannelAuthenticationIssueActions.MarshalJSON(a) }
func (a *BackchannelAuthenticationIssueAction) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationIssueActions.UnmarshalJSON(data, a)
}

type BackchannelAuthenticationCompleteAction int16

const (
	BackchannelAuthenticationCompleteActionServerError BackchannelAuthenticationCompleteAction = iota
	BackchannelAuthenticationCompleteActionNoAction
	BackchannelAuthenticationCompleteActionNotification
)

var backchannelAuthenticationCompleteActions = enum.New("BackchannelAuthenticationCompleteAction",
	enum.Entry[BackchannelAuthenticationCompleteAction]{Value: BackchannelAuthenticationCompleteActionServerError, Wire: "SERVER_ERROR"},
	enum.Entry[BackchannelAuthenticationCompleteAction]{Value: BackchannelAuthenticationCompleteActionNoAction, Wire: "NO_ACTION"},
	enum.Entry[BackchannelAuthenticationCompleteAction]{Value: BackchannelAuthenticationCompleteActionNotification, Wire: "NOTIFICATION"},
)

// BackchannelAuthenticationCompleteActions returns the lookup table for BackchannelAuthenticationCompleteAction.
func BackchannelAuthenticationCompleteActions() *enum.Set[BackchannelAuthenticationCompleteAction] { return backchannelAuthenticationCompleteActions }

func (a BackchannelAuthenticationCompleteAction) Enum() *enum.Set[BackchannelAuthenticationCompleteAction] { return backchannelAuthenticationCompleteActions }
func (a BackchannelAuthenticationCompleteAction) String() string                                           { return backchannelAuthenticationCompleteActions.Wire(a) }
func (a BackchannelAuthenticationCompleteAction) MarshalJSON() ([]byte, error)                             { return backchannelAuthenticationCompleteActions.MarshalJSON(a) }
func (a *BackchannelAuthenticationCompleteAction) UnmarshalJSON(data []byte) error {
	return backchannelAuthenticationCompleteActions.UnmarshalJSON(data, a)
}

type DeviceAuthorizationAction int16

const (
	DeviceAuthorizationActionInternalServerError DeviceAuthorizationAction = iota
	DeviceAuthorizationActionUnauthorized
	DeviceAuthorizationActionBadRequest
	DeviceAuthorizationActionOK
)

var deviceAuthorizationActions = enum.New("DeviceAuthorizationAction",
	enum.Entry[DeviceAuthorizationAction]{Value: DeviceAuthorizationActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
	enum.Entry[DeviceAuthorizationAction]{Value: DeviceAuthorizationActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[DeviceAuthorizationAction]{Value: DeviceAuthorizationActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[DeviceAuthorizationAction]{Value: DeviceAuthorizationActionOK, Wire: "OK"},
)

// DeviceAuthorizationActions returns the lookup table for DeviceAuthorizationAction.
func DeviceAuthorizationActions() *enum.Set[DeviceAuthorizationAction] { return deviceAuthorizationActions }

func (a DeviceAuthorizationAction) Enum() *enum.Set[DeviceAuthorizationAction] { return deviceAuthorizationActions }
func (a DeviceAuthorizationAction) String() string                             { return deviceAuthorizationActions.Wire(a) }
func (a DeviceAuthorizationAction) MarshalJSON() ([]byte, error)               { return deviceAuthorizationActions.MarshalJSON(a) }
func (a *DeviceAuthorizationAction) UnmarshalJSON(data []byte) error {
	return deviceAuthorizationActions.UnmarshalJSON(data, a)
}

type DeviceCompleteAction int16

const (
	DeviceCompleteActionServerError DeviceCompleteAction = iota
	DeviceCompleteActionUserCodeNotExist
	DeviceCompleteActionUserCodeExpired
	DeviceCompleteActionInvalidRequest
	DeviceCompleteActionSuccess
)

var deviceCompleteActions = enum.New("DeviceCompleteAction",
	enum.Entry[DeviceCompleteAction]{Value: DeviceCompleteActionServerError, Wire: "SERVER_ERROR"},
	enum.Entry[DeviceCompleteAction]{Value: DeviceCompleteActionUserCodeNotExist, Wire: "USER_CODE_NOT_EXIST"},
	enum.Entry[DeviceCompleteAction]{Value: DeviceCompleteActionUserCodeExpired, Wire: "USER_CODE_EXPIRED"},
	enum.Entry[DeviceCompleteAction]{Value: DeviceCompleteActionInvalidRequest, Wire: "INVALID_REQUEST"},
	enum.Entry[DeviceCompleteAction]{Value: DeviceCompleteActionSuccess, Wire: "SUCCESS"},
)

// DeviceCompleteActions returns the lookup table for DeviceCompleteAction.
func DeviceCompleteActions() *enum.Set[DeviceCompleteAction] { return deviceCompleteActions }

func (a DeviceCompleteAction) Enum() *enum.Set[DeviceCompleteAction] { return deviceCompleteActions }
func (a DeviceCompleteAction) String() string                        { return deviceCompleteActions.Wire(a) }
func (a DeviceCompleteAction) MarshalJSON() ([]byte, error)          { return deviceCompleteActions.MarshalJSON(a) }
func (a *DeviceCompleteAction) UnmarshalJSON(data []byte) error {
	return deviceCompleteActions.UnmarshalJSON(data, a)
}

type DeviceVerificationAction int16

const (
	DeviceVerificationActionServerError DeviceVerificationAction = iota
	DeviceVerificationActionNotExist
	DeviceVerificationActionExpired
	DeviceVerificationActionValid
)

var deviceVerificationActions = enum.New("DeviceVerificationAction",
	enum.Entry[DeviceVerificationAction]{Value: DeviceVerificationActionServerError, Wire: "SERVER_ERROR"},
	enum.Entry[DeviceVerificationAction]{Value: DeviceVerificationActionNotExist, Wire: "NOT_EXIST"},
	enum.Entry[DeviceVerificationAction]{Value: DeviceVerificationActionExpired, Wire: "EXPIRED"},
	enum.Entry[DeviceVerificationAction]{Value: DeviceVerificationActionValid, Wire: "VALID"},
)

// DeviceVerificationActions returns the lookup table for DeviceVerificationAction.
func DeviceVerificationActions() *enum.Set[DeviceVerificationAction] { return deviceVerificationActions }

func (a DeviceVerificationAction) Enum() *enum.Set[DeviceVerificationAction] { return deviceVerificationActions }
func (a DeviceVerificationAction) String() string                            { return deviceVerificationActions.Wire(a) }
func (a DeviceVerificationAction) MarshalJSON() ([]byte, error)              { return deviceVerificationActions.MarshalJSON(a) }
func (a *DeviceVerificationAction) UnmarshalJSON(data []byte) error {
	return deviceVerificationActions.UnmarshalJSON(data, a)
}

// PushedAuthReqAction is the action of a /pushed_auth_req response.
type PushedAuthReqAction int16

const (
	PushedAuthReqActionCreated PushedAuthReqAction = iota
	PushedAuthReqActionBadRequest
	PushedAuthReqActionUnauthorized
	PushedAuthReqActionForbidden
	PushedAuthReqActionPayloadTooLarge
	PushedAuthReqActionInternalServerError
)

var pushedAuthReqActions = enum.New("PushedAuthReqAction",
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionCreated, Wire: "CREATED"},
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionBadRequest, Wire: "BAD_REQUEST"},
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionUnauthorized, Wire: "UNAUTHORIZED"},
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionForbidden, Wire: "FORBIDDEN"},
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionPayloadTooLarge, Wire: "PAYLOAD_TOO_LARGE"},
	enum.Entry[PushedAuthReqAction]{Value: PushedAuthReqActionInternalServerError, Wire: "INTERNAL_SERVER_ERROR"},
)

// PushedAuthReqActions returns the lookup table for PushedAuthReqAction.
func PushedAuthReqActions() *enum.Set[PushedAuthReqAction] { return pushedAuthReqActions }

func (a PushedAuthReqAction) Enum() *enum.Set[PushedAuthReqAction] { return pushedAuthReqActions }
func (a PushedAuthReqAction) String() string                       { return pushedAuthReqActions.Wire(a) }
func (a PushedAuthReqAction) MarshalJSON() ([]byte, error)         { return pushedAuthReqActions.MarshalJSON(a) }
func (a *PushedAuthReqAction) UnmarshalJSON(data []byte) error {
	return pushedAuthReqActions.UnmarshalJSON(data, a)
}

// HskAction is the action of every /hsk/* response.
type HskAction int16

const (
	HskActionSuccess HskAction = iota
	HskActionInvalidRequest
	HskActionNotFound
	HskActionServerError
)

var hskActions = enum.New("HskAction",
	enum.Entry[HskAction]{Value: HskActionSuccess, Wire: "SUCCESS"},
	enum.Entry[HskAction]{Value: HskActionInvalidRequest, Wire: "INVALID_REQUEST"},
	enum.Entry[HskAction]{Value: HskActionNotFound, Wire: "NOT_FOUND"},
	enum.Entry[HskAction]{Value: HskActionServerError, Wire: "SERVER_ERROR"},
)

// HskActions returns the lookup table for HskAction.
func HskActions() *enum.Set[HskAction] { return hskActions }

func (a HskAction) Enum() *enum.Set[HskAction]   { return hskActions }
func (a HskAction) String() string               { return hskActions.Wire(a) }
func (a HskAction) MarshalJSON() ([]byte, error) { return hskActions.MarshalJSON(a) }
func (a *HskAction) UnmarshalJSON(data []byte) error {
	return hskActions.UnmarshalJSON(data, a)
}
