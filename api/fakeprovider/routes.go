package fakeprovider

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type route struct {
	name    string
	method  string
	pattern string
	handler func(p *Provider, w http.ResponseWriter, r *http.Request)
}

// serviceRoutes are served under /api and, for API v3, under /api/{serviceApiKey}.
var serviceRoutes = []route{
	{"Authorization", http.MethodPost, "/auth/authorization", action("A004001", "INTERACTION", withTicket)},
	{"AuthorizationFail", http.MethodPost, "/auth/authorization/fail", action("A004201", "LOCATION", nil)},
	{"AuthorizationIssue", http.MethodPost, "/auth/authorization/issue", action("A040001", "LOCATION", nil)},
	{"Token", http.MethodPost, "/auth/token", tokenOK},
	{"TokenFail", http.MethodPost, "/auth/token/fail", action("A067301", "BAD_REQUEST", nil)},
	{"TokenIssue", http.MethodPost, "/auth/token/issue", tokenOK},
	{"TokenCreate", http.MethodPost, "/auth/token/create", tokenOK},
	{"TokenUpdate", http.MethodPost, "/auth/token/update", action("A135001", "OK", nil)},
	{"TokenDelete", http.MethodDelete, "/auth/token/delete/{token}", noContent},
	{"TokenList", http.MethodGet, "/auth/token/get/list", emptyList("accessTokens")},
	{"Introspection", http.MethodPost, "/auth/introspection", introspectionOK},
	{"StandardIntrospection", http.MethodPost, "/auth/introspection/standard", action("A145001", "OK", nil)},
	{"Revocation", http.MethodPost, "/auth/revocation", action("A114001", "OK", nil)},
	{"UserInfo", http.MethodPost, "/auth/userinfo", action("A091001", "OK", nil)},
	{"UserInfoIssue", http.MethodPost, "/auth/userinfo/issue", action("A096001", "JSON", nil)},
	{"BackchannelAuthentication", http.MethodPost, "/backchannel/authentication", action("A179001", "USER_IDENTIFICATION", withTicket)},
	{"BackchannelAuthenticationIssue", http.MethodPost, "/backchannel/authentication/issue", action("A180001", "OK", nil)},
	{"BackchannelAuthenticationFail", http.MethodPost, "/backchannel/authentication/fail", action("A181001", "FORBIDDEN", nil)},
	{"BackchannelAuthenticationComplete", http.MethodPost, "/backchannel/authentication/complete", action("A182001", "NOTIFICATION", nil)},
	{"DeviceAuthorization", http.MethodPost, "/device/authorization", action("A209001", "OK", nil)},
	{"DeviceComplete", http.MethodPost, "/device/complete", action("A220001", "SUCCESS", nil)},
	{"DeviceVerification", http.MethodPost, "/device/verification", action("A210001", "VALID", nil)},
	{"PushedAuthReq", http.MethodPost, "/pushed_auth_req", action("A245001", "CREATED", nil)},
	{"ClientCreate", http.MethodPost, "/client/create", echoRecord("clientId")},
	{"ClientList", http.MethodGet, "/client/get/list", emptyList("clients")},
	{"ClientGet", http.MethodGet, "/client/get/{id}", getRecord("clientId", "clientName", "client-")},
	{"ClientUpdate", http.MethodPost, "/client/update/{id}", echoRecord("clientId")},
	{"ClientDelete", http.MethodDelete, "/client/delete/{id}", noContent},
	{"ServiceConfiguration", http.MethodGet, "/service/configuration", configuration},
	{"ServiceJWKS", http.MethodGet, "/service/jwks/get", jwks},
	{"HskCreate", http.MethodPost, "/hsk/create", action("A246001", "SUCCESS", nil)},
	{"HskDelete", http.MethodGet, "/hsk/delete/{handle}", action("A249001", "SUCCESS", nil)},
	{"HskGet", http.MethodGet, "/hsk/get/{handle}", action("A250001", "SUCCESS", nil)},
	{"HskGetList", http.MethodGet, "/hsk/get/list", action("A251001", "SUCCESS", nil)},
}

// ownerRoutes are authorized by the service owner and are never scoped by a service key.
var ownerRoutes = []route{
	{"ServiceCreate", http.MethodPost, "/service/create", echoRecord("apiKey")},
	{"ServiceList", http.MethodGet, "/service/get/list", emptyList("services")},
	{"ServiceGet", http.MethodGet, "/service/get/{id}", getRecord("apiKey", "serviceName", "service-")},
	{"ServiceUpdate", http.MethodPost, "/service/update/{id}", echoRecord("apiKey")},
	{"ServiceDelete", http.MethodDelete, "/service/delete/{id}", noContent},
}

func action(resultCode, name string, extra func(map[string]any)) func(*Provider, http.ResponseWriter, *http.Request) {
	return func(_ *Provider, w http.ResponseWriter, _ *http.Request) {
		body := map[string]any{
			"resultCode":    resultCode,
			"resultMessage": "[" + resultCode + "] processed by the fake provider.",
			"action":        name,
		}
		if extra != nil {
			extra(body)
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func withTicket(body map[string]any) {
	body["ticket"] = uuid.NewString()
}

func tokenOK(p *Provider, w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	accessToken := uuid.NewString()
	jwtAccessToken, err := p.key.Sign(jwt.MapClaims{
		"iss":       "http://" + r.Host,
		"sub":       "john",
		"client_id": "26888344961664",
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
		"jti":       accessToken,
	})
	if err != nil {
		writeResult(w, http.StatusInternalServerError, "A001901", err.Error())
		return
	}
	content, _ := json.Marshal(map[string]any{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   3600,
		"scope":        "openid",
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"resultCode":           "A050001",
		"resultMessage":        "[A050001] The token request was processed successfully.",
		"action":               "OK",
		"responseContent":      string(content),
		"accessToken":          accessToken,
		"accessTokenExpiresAt": now.Add(time.Hour).UnixMilli(),
		"accessTokenDuration":  3600,
		"jwtAccessToken":       jwtAccessToken,
		"grantType":            "authorization_code",
		"clientId":             26888344961664,
		"subject":              "john",
		"scopes":               []string{"openid"},
	})
}

func introspectionOK(_ *Provider, w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"resultCode":    "A056001",
		"resultMessage": "[A056001] The access token is valid.",
		"action":        "OK",
		"clientId":      26888344961664,
		"subject":       "john",
		"scopes":        []string{"openid"},
		"usable":        true,
		"existent":      true,
		"sufficient":    true,
		"expiresAt":     time.Now().Add(time.Hour).UnixMilli(),
	})
}

func noContent(_ *Provider, w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func emptyList(member string) func(*Provider, http.ResponseWriter, *http.Request) {
	return func(_ *Provider, w http.ResponseWriter, r *http.Request) {
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		end, _ := strconv.Atoi(r.URL.Query().Get("end"))
		writeJSON(w, http.StatusOK, map[string]any{
			"start":      start,
			"end":        end,
			"totalCount": 0,
			member:       []any{},
		})
	}
}

// getRecord answers with a minimal record whose ID is taken from the path.
func getRecord(idField, nameField, namePrefix string) func(*Provider, http.ResponseWriter, *http.Request) {
	return func(_ *Provider, w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			writeResult(w, http.StatusNotFound, "A030201", "No record has the identifier "+idParam+".")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			idField:   id,
			nameField: namePrefix + idParam,
		})
	}
}

// echoRecord returns the posted record, assigning idField when it is missing or zero.
func echoRecord(idField string) func(*Provider, http.ResponseWriter, *http.Request) {
	return func(p *Provider, w http.ResponseWriter, r *http.Request) {
		var record map[string]any
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			writeResult(w, http.StatusBadRequest, "A001101", "The request body is not a JSON object.")
			return
		}
		if id, ok := record[idField].(float64); !ok || id == 0 {
			record[idField] = p.nextID.Add(1)
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func configuration(_ *Provider, w http.ResponseWriter, r *http.Request) {
	issuer := "http://" + r.Host
	writeJSON(w, http.StatusOK, map[string]any{
		"issuer":                                     issuer,
		"authorization_endpoint":                     issuer + "/authorize",
		"token_endpoint":                             issuer + "/token",
		"userinfo_endpoint":                          issuer + "/userinfo",
		"jwks_uri":                                   issuer + "/api/service/jwks/get",
		"revocation_endpoint":                        issuer + "/revoke",
		"introspection_endpoint":                     issuer + "/introspect",
		"scopes_supported":                           []string{"openid", "profile", "email"},
		"response_types_supported":                   []string{"code", "code id_token"},
		"grant_types_supported":                      []string{"authorization_code", "refresh_token", "urn:openid:params:grant-type:ciba"},
		"subject_types_supported":                    []string{"public"},
		"id_token_signing_alg_values_supported":      []string{"ES256"},
		"token_endpoint_auth_methods_supported":      []string{"client_secret_basic", "private_key_jwt"},
		"code_challenge_methods_supported":           []string{"S256"},
		"backchannel_token_delivery_modes_supported": []string{"poll", "ping"},
	})
}

func jwks(p *Provider, w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, p.key.JWKS())
}

func writeResult(w http.ResponseWriter, status int, resultCode, message string) {
	writeJSON(w, status, map[string]any{
		"resultCode":    resultCode,
		"resultMessage": "[" + resultCode + "] " + message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
