package api

import (
	"context"

	"github.com/jrsteele09/go-authlete/oauthmodel"
)

func (c *Client) Authorization(ctx context.Context, req *oauthmodel.AuthorizationRequest) (*oauthmodel.AuthorizationResponse, error) {
	return post[oauthmodel.AuthorizationResponse](ctx, c, epAuthorization, req)
}

func (c *Client) AuthorizationFail(ctx context.Context, req *oauthmodel.AuthorizationFailRequest) (*oauthmodel.AuthorizationFailResponse, error) {
	return post[oauthmodel.AuthorizationFailResponse](ctx, c, epAuthorizationFail, req)
}

func (c *Client) AuthorizationIssue(ctx context.Context, req *oauthmodel.AuthorizationIssueRequest) (*oauthmodel.AuthorizationIssueResponse, error) {
	return post[oauthmodel.AuthorizationIssueResponse](ctx, c, epAuthorizationIssue, req)
}

func (c *Client) Token(ctx context.Context, req *oauthmodel.TokenRequest) (*oauthmodel.TokenResponse, error) {
	return post[oauthmodel.TokenResponse](ctx, c, epToken, req)
}

func (c *Client) TokenFail(ctx context.Context, req *oauthmodel.TokenFailRequest) (*oauthmodel.TokenFailResponse, error) {
	return post[oauthmodel.TokenFailResponse](ctx, c, epTokenFail, req)
}

func (c *Client) TokenIssue(ctx context.Context, req *oauthmodel.TokenIssueRequest) (*oauthmodel.TokenIssueResponse, error) {
	return post[oauthmodel.TokenIssueResponse](ctx, c, epTokenIssue, req)
}

func (c *Client) TokenCreate(ctx context.Context, req *oauthmodel.TokenCreateRequest) (*oauthmodel.TokenCreateResponse, error) {
	return post[oauthmodel.TokenCreateResponse](ctx, c, epTokenCreate, req)
}

func (c *Client) TokenUpdate(ctx context.Context, req *oauthmodel.TokenUpdateRequest) (*oauthmodel.TokenUpdateResponse, error) {
	return post[oauthmodel.TokenUpdateResponse](ctx, c, epTokenUpdate, req)
}

// TokenDelete deletes an access token by its value or hash.
func (c *Client) TokenDelete(ctx context.Context, token string) error {
	_, err := c.do(ctx, epTokenDelete, nil, nil, token)
	return err
}

func (c *Client) GetTokenList(ctx context.Context, req *oauthmodel.TokenListRequest) (*oauthmodel.TokenListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestValidationError{Endpoint: epTokenList.name, Err: err}
	}
	query := rangeQuery(req.Start, req.End)
	if req.ClientIdentifier != "" {
		query.Set("clientIdentifier", req.ClientIdentifier)
	}
	if req.Subject != "" {
		query.Set("subject", req.Subject)
	}
	return get[oauthmodel.TokenListResponse](ctx, c, epTokenList, query)
}

func (c *Client) Introspection(ctx context.Context, req *oauthmodel.IntrospectionRequest) (*oauthmodel.IntrospectionResponse, error) {
	return post[oauthmodel.IntrospectionResponse](ctx, c, epIntrospection, req)
}

func (c *Client) StandardIntrospection(ctx context.Context, req *oauthmodel.StandardIntrospectionRequest) (*oauthmodel.StandardIntrospectionResponse, error) {
	return post[oauthmodel.StandardIntrospectionResponse](ctx, c, epStandardIntrospection, req)
}

func (c *Client) Revocation(ctx context.Context, req *oauthmodel.RevocationRequest) (*oauthmodel.RevocationResponse, error) {
	return post[oauthmodel.RevocationResponse](ctx, c, epRevocation, req)
}

func (c *Client) UserInfo(ctx context.Context, req *oauthmodel.UserInfoRequest) (*oauthmodel.UserInfoResponse, error) {
	return post[oauthmodel.UserInfoResponse](ctx, c, epUserInfo, req)
}

func (c *Client) UserInfoIssue(ctx context.Context, req *oauthmodel.UserInfoIssueRequest) (*oauthmodel.UserInfoIssueResponse, error) {
	return post[oauthmodel.UserInfoIssueResponse](ctx, c, epUserInfoIssue, req)
}

func (c *Client) PushAuthorizationRequest(ctx context.Context, req *oauthmodel.PushedAuthReqRequest) (*oauthmodel.PushedAuthReqResponse, error) {
	return post[oauthmodel.PushedAuthReqResponse](ctx, c, epPushedAuthReq, req)
}
