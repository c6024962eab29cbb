// Package api is a client for the Authlete authorization server API. Each method validates
// its request, sends it through a Transport and decodes the response into the matching
// oauthmodel record. A response whose action is not one the record declares is rejected
// with a DeserializationError.
package api

import (
	"context"

	"github.com/go-jose/go-jose/v4"

	"github.com/jrsteele09/go-authlete/discovery"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

// API is the set of provider operations. *Client implements it; callers may substitute
// their own implementation in tests.
type API interface {
	Authorization(ctx context.Context, req *oauthmodel.AuthorizationRequest) (*oauthmodel.AuthorizationResponse, error)
	AuthorizationFail(ctx context.Context, req *oauthmodel.AuthorizationFailRequest) (*oauthmodel.AuthorizationFailResponse, error)
	AuthorizationIssue(ctx context.Context, req *oauthmodel.AuthorizationIssueRequest) (*oauthmodel.AuthorizationIssueResponse, error)

	Token(ctx context.Context, req *oauthmodel.TokenRequest) (*oauthmodel.TokenResponse, error)
	TokenFail(ctx context.Context, req *oauthmodel.TokenFailRequest) (*oauthmodel.TokenFailResponse, error)
	TokenIssue(ctx context.Context, req *oauthmodel.TokenIssueRequest) (*oauthmodel.TokenIssueResponse, error)
	TokenCreate(ctx context.Context, req *oauthmodel.TokenCreateRequest) (*oauthmodel.TokenCreateResponse, error)
	TokenUpdate(ctx context.Context, req *oauthmodel.TokenUpdateRequest) (*oauthmodel.TokenUpdateResponse, error)
	TokenDelete(ctx context.Context, token string) error
	GetTokenList(ctx context.Context, req *oauthmodel.TokenListRequest) (*oauthmodel.TokenListResponse, error)

	Introspection(ctx context.Context, req *oauthmodel.IntrospectionRequest) (*oauthmodel.IntrospectionResponse, error)
	StandardIntrospection(ctx context.Context, req *oauthmodel.StandardIntrospectionRequest) (*oauthmodel.StandardIntrospectionResponse, error)
	Revocation(ctx context.Context, req *oauthmodel.RevocationRequest) (*oauthmodel.RevocationResponse, error)
	UserInfo(ctx context.Context, req *oauthmodel.UserInfoRequest) (*oauthmodel.UserInfoResponse, error)
	UserInfoIssue(ctx context.Context, req *oauthmodel.UserInfoIssueRequest) (*oauthmodel.UserInfoIssueResponse, error)

	BackchannelAuthentication(ctx context.Context, req *oauthmodel.BackchannelAuthenticationRequest) (*oauthmodel.BackchannelAuthenticationResponse, error)
	BackchannelAuthenticationIssue(ctx context.Context, req *oauthmodel.BackchannelAuthenticationIssueRequest) (*oauthmodel.BackchannelAuthenticationIssueResponse, error)
	BackchannelAuthenticationFail(ctx context.Context, req *oauthmodel.BackchannelAuthenticationFailRequest) (*oauthmodel.BackchannelAuthenticationFailResponse, error)
	BackchannelAuthenticationComplete(ctx context.Context, req *oauthmodel.BackchannelAuthenticationCompleteRequest) (*oauthmodel.BackchannelAuthenticationCompleteResponse, error)

	DeviceAuthorization(ctx context.Context, req *oauthmodel.DeviceAuthorizationRequest) (*oauthmodel.DeviceAuthorizationResponse, error)
	DeviceComplete(ctx context.Context, req *oauthmodel.DeviceCompleteRequest) (*oauthmodel.DeviceCompleteResponse, error)
	DeviceVerification(ctx context.Context, req *oauthmodel.DeviceVerificationRequest) (*oauthmodel.DeviceVerificationResponse, error)
	PushAuthorizationRequest(ctx context.Context, req *oauthmodel.PushedAuthReqRequest) (*oauthmodel.PushedAuthReqResponse, error)

	CreateClient(ctx context.Context, client *oauthmodel.Client) (*oauthmodel.Client, error)
	GetClient(ctx context.Context, clientID string) (*oauthmodel.Client, error)
	UpdateClient(ctx context.Context, client *oauthmodel.Client) (*oauthmodel.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
	GetClientList(ctx context.Context, req *oauthmodel.ClientListRequest) (*oauthmodel.ClientListResponse, error)

	CreateService(ctx context.Context, service *oauthmodel.Service) (*oauthmodel.Service, error)
	GetService(ctx context.Context, apiKey int64) (*oauthmodel.Service, error)
	UpdateService(ctx context.Context, service *oauthmodel.Service) (*oauthmodel.Service, error)
	DeleteService(ctx context.Context, apiKey int64) error
	GetServiceList(ctx context.Context, req *oauthmodel.ServiceListRequest) (*oauthmodel.ServiceListResponse, error)
	GetServiceConfiguration(ctx context.Context) (*discovery.Document, error)
	GetServiceJWKS(ctx context.Context) (*jose.JSONWebKeySet, error)

	HskCreate(ctx context.Context, req *oauthmodel.HskCreateRequest) (*oauthmodel.HskResponse, error)
	HskDelete(ctx context.Context, handle string) (*oauthmodel.HskResponse, error)
	HskGet(ctx context.Context, handle string) (*oauthmodel.HskResponse, error)
	HskGetList(ctx context.Context) (*oauthmodel.HskListResponse, error)
}
