package api

import (
	"context"

	"github.com/jrsteele09/go-authlete/oauthmodel"
)

func (c *Client) BackchannelAuthentication(ctx context.Context, req *oauthmodel.BackchannelAuthenticationRequest) (*oauthmodel.BackchannelAuthenticationResponse, error) {
	return post[oauthmodel.BackchannelAuthenticationResponse](ctx, c, epBackchannelAuthentication, req)
}

func (c *Client) BackchannelAuthenticationIssue(ctx context.Context, req *oauthmodel.BackchannelAuthenticationIssueRequest) (*oauthmodel.BackchannelAuthenticationIssueResponse, error) {
	return post[oauthmodel.BackchannelAuthenticationIssueResponse](ctx, c, epBackchannelAuthenticationIssue, req)
}

func (c *Client) BackchannelAuthenticationFail(ctx context.Context, req *oauthmodel.BackchannelAuthenticationFailRequest) (*oauthmodel.BackchannelAuthenticationFailResponse, error) {
	return post[oauthmodel.BackchannelAuthenticationFailResponse](ctx, c, epBackchannelAuthenticationFail, req)
}

func (c *Client) BackchannelAuthenticationComplete(ctx context.Context, req *oauthmodel.BackchannelAuthenticationCompleteRequest) (*oauthmodel.BackchannelAuthenticationCompleteResponse, error) {
	return post[oauthmodel.BackchannelAuthenticationCompleteResponse](ctx, c, epBackchannelAuthenticationComplete, req)
}

func (c *Client) DeviceAuthorization(ctx context.Context, req *oauthmodel.DeviceAuthorizationRequest) (*oauthmodel.DeviceAuthorizationResponse, error) {
	return post[oauthmodel.DeviceAuthorizationResponse](ctx, c, epDeviceAuthorization, req)
}

func (c *Client) DeviceComplete(ctx context.Context, req *oauthmodel.DeviceCompleteRequest) (*oauthmodel.DeviceCompleteResponse, error) {
	return post[oauthmodel.DeviceCompleteResponse](ctx, c, epDeviceComplete, req)
}

func (c *Client) DeviceVerification(ctx context.Context, req *oauthmodel.DeviceVerificationRequest) (*oauthmodel.DeviceVerificationResponse, error) {
	return post[oauthmodel.DeviceVerificationResponse](ctx, c, epDeviceVerification, req)
}
