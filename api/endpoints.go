package api

import (
	"net/http"

	"github.com/jrsteele09/go-authlete/oauthmodel"
)

// Version selects the provider's API generation.
type Version int

const (
	// V2 paths live under /api and use API key/secret Basic authentication.
	V2 Version = 2
	// V3 scopes service paths under /api/{serviceApiKey} and uses bearer access tokens.
	V3 Version = 3
)

func (v Version) String() string {
	switch v {
	case V2:
		return "V2"
	case V3:
		return "V3"
	}
	return "Version(?)"
}

// ParseVersion accepts "V2", "V3", "2" or "3".
func ParseVersion(s string) (Version, bool) {
	switch s {
	case "V2", "v2", "2":
		return V2, true
	case "V3", "v3", "3":
		return V3, true
	}
	return 0, false
}

// endpoint describes one provider operation. Path may hold %s placeholders for path
// parameters; owner marks operations authorized by the service owner instead of the service.
type endpoint struct {
	name   string
	method string
	path   string
	owner  bool
	schema responseSchema
}

var (
	epAuthorization      = endpoint{"Authorization", http.MethodPost, "/auth/authorization", false, actionSchema(oauthmodel.AuthorizationActions())}
	epAuthorizationFail  = endpoint{"AuthorizationFail", http.MethodPost, "/auth/authorization/fail", false, actionSchema(oauthmodel.AuthorizationFailActions())}
	epAuthorizationIssue = endpoint{"AuthorizationIssue", http.MethodPost, "/auth/authorization/issue", false, actionSchema(oauthmodel.AuthorizationIssueActions())}

	epToken       = endpoint{"Token", http.MethodPost, "/auth/token", false, actionSchema(oauthmodel.TokenActions())}
	epTokenFail   = endpoint{"TokenFail", http.MethodPost, "/auth/token/fail", false, actionSchema(oauthmodel.TokenFailActions())}
	epTokenIssue  = endpoint{"TokenIssue", http.MethodPost, "/auth/token/issue", false, actionSchema(oauthmodel.TokenIssueActions())}
	epTokenCreate = endpoint{"TokenCreate", http.MethodPost, "/auth/token/create", false, actionSchema(oauthmodel.TokenCreateActions())}
	epTokenUpdate = endpoint{"TokenUpdate", http.MethodPost, "/auth/token/update", false, actionSchema(oauthmodel.TokenUpdateActions())}
	epTokenDelete = endpoint{"TokenDelete", http.MethodDelete, "/auth/token/delete/%s", false, responseSchema{}}
	epTokenList   = endpoint{"TokenList", http.MethodGet, "/auth/token/get/list", false, objectSchema()}

	epIntrospection         = endpoint{"Introspection", http.MethodPost, "/auth/introspection", false, actionSchema(oauthmodel.IntrospectionActions())}
	epStandardIntrospection = endpoint{"StandardIntrospection", http.MethodPost, "/auth/introspection/standard", false, actionSchema(oauthmodel.StandardIntrospectionActions())}
	epRevocation            = endpoint{"Revocation", http.MethodPost, "/auth/revocation", false, actionSchema(oauthmodel.RevocationActions())}
	epUserInfo              = endpoint{"UserInfo", http.MethodPost, "/auth/userinfo", false, actionSchema(oauthmodel.UserInfoActions())}
	epUserInfoIssue         = endpoint{"UserInfoIssue", http.MethodPost, "/auth/userinfo/issue", false, actionSchema(oauthmodel.UserInfoIssueActions())}

	epBackchannelAuthentication         = endpoint{"BackchannelAuthentication", http.MethodPost, "/backchannel/authentication", false, actionSchema(oauthmodel.BackchannelAuthenticationActions())}
	epBackchannelAuthenticationIssue    = endpoint{"BackchannelAuthenticationIssue", http.MethodPost, "/backchannel/authentication/issue", false, actionSchema(oauthmodel.BackchannelAuthenticationIssueActions())}
	epBackchannelAuthenticationFail     = endpoint{"BackchannelAuthenticationFail", http.MethodPost, "/backchannel/authentication/fail", false, actionSchema(oauthmodel.BackchannelAuthenticationFailActions())}
	epBackchannelAuthenticationComplete = endpoint{"BackchannelAuthenticationComplete", http.MethodPost, "/backchannel/authentication/complete", false, actionSchema(oauthmodel.BackchannelAuthenticationCompleteActions())}

	epDeviceAuthorization = endpoint{"DeviceAuthorization", http.MethodPost, "/device/authorization", false, actionSchema(oauthmodel.DeviceAuthorizationActions())}
	epDeviceComplete      = endpoint{"DeviceComplete", http.MethodPost, "/device/complete", false, actionSchema(oauthmodel.DeviceCompleteActions())}
	epDeviceVerification  = endpoint{"DeviceVerification", http.MethodPost, "/device/verification", false, actionSchema(oauthmodel.DeviceVerificationActions())}
	epPushedAuthReq       = endpoint{"PushedAuthReq", http.MethodPost, "/pushed_auth_req", false, actionSchema(oauthmodel.PushedAuthReqActions())}

	epClientCreate = endpoint{"ClientCreate", http.MethodPost, "/client/create", false, requiredIntegerSchema("clientId")}
	epClientGet    = endpoint{"ClientGet", http.MethodGet, "/client/get/%s", false, requiredIntegerSchema("clientId")}
	epClientUpdate = endpoint{"ClientUpdate", http.MethodPost, "/client/update/%s", false, requiredIntegerSchema("clientId")}
	epClientDelete = endpoint{"ClientDelete", http.MethodDelete, "/client/delete/%s", false, responseSchema{}}
	epClientList   = endpoint{"ClientList", http.MethodGet, "/client/get/list", false, objectSchema()}

	epServiceCreate = endpoint{"ServiceCreate", http.MethodPost, "/service/create", true, requiredIntegerSchema("apiKey")}
	epServiceGet    = endpoint{"ServiceGet", http.MethodGet, "/service/get/%s", true, requiredIntegerSchema("apiKey")}
	epServiceUpdate = endpoint{"ServiceUpdate", http.MethodPost, "/service/update/%s", true, requiredIntegerSchema("apiKey")}
	epServiceDelete = endpoint{"ServiceDelete", http.MethodDelete, "/service/delete/%s", true, responseSchema{}}
	epServiceList   = endpoint{"ServiceList", http.MethodGet, "/service/get/list", true, objectSchema()}

	epServiceConfiguration = endpoint{"ServiceConfiguration", http.MethodGet, "/service/configuration", false, objectSchema()}
	epServiceJWKS          = endpoint{"ServiceJWKS", http.MethodGet, "/service/jwks/get", false, objectSchema()}

	epHskCreate  = endpoint{"HskCreate", http.MethodPost, "/hsk/create", false, actionSchema(oauthmodel.HskActions())}
	epHskDelete  = endpoint{"HskDelete", http.MethodGet, "/hsk/delete/%s", false, actionSchema(oauthmodel.HskActions())}
	epHskGet     = endpoint{"HskGet", http.MethodGet, "/hsk/get/%s", false, actionSchema(oauthmodel.HskActions())}
	epHskGetList = endpoint{"HskGetList", http.MethodGet, "/hsk/get/list", false, actionSchema(oauthmodel.HskActions())}
)
