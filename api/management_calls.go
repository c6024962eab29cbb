package api

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-jose/go-jose/v4"

	"github.com/jrsteele09/go-authlete/discovery"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

func (c *Client) CreateClient(ctx context.Context, client *oauthmodel.Client) (*oauthmodel.Client, error) {
	return post[oauthmodel.Client](ctx, c, epClientCreate, client)
}

// GetClient fetches a client by its ID or alias.
func (c *Client) GetClient(ctx context.Context, clientID string) (*oauthmodel.Client, error) {
	return get[oauthmodel.Client](ctx, c, epClientGet, nil, clientID)
}

func (c *Client) UpdateClient(ctx context.Context, client *oauthmodel.Client) (*oauthmodel.Client, error) {
	if client == nil {
		return nil, &RequestValidationError{Endpoint: epClientUpdate.name, Err: oauthmodel.ErrMissingField}
	}
	return post[oauthmodel.Client](ctx, c, epClientUpdate, clientUpdate{client}, strconv.FormatInt(client.ClientID, 10))
}

func (c *Client) DeleteClient(ctx context.Context, clientID string) error {
	_, err := c.do(ctx, epClientDelete, nil, nil, clientID)
	return err
}

func (c *Client) GetClientList(ctx context.Context, req *oauthmodel.ClientListRequest) (*oauthmodel.ClientListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestValidationError{Endpoint: epClientList.name, Err: err}
	}
	query := rangeQuery(req.Start, req.End)
	if req.Developer != "" {
		query.Set("developer", req.Developer)
	}
	return get[oauthmodel.ClientListResponse](ctx, c, epClientList, query)
}

func (c *Client) CreateService(ctx context.Context, service *oauthmodel.Service) (*oauthmodel.Service, error) {
	return post[oauthmodel.Service](ctx, c, epServiceCreate, service)
}

func (c *Client) GetService(ctx context.Context, apiKey int64) (*oauthmodel.Service, error) {
	return get[oauthmodel.Service](ctx, c, epServiceGet, nil, apiKeyParam(apiKey))
}

func (c *Client) UpdateService(ctx context.Context, service *oauthmodel.Service) (*oauthmodel.Service, error) {
	if service == nil {
		return nil, &RequestValidationError{Endpoint: epServiceUpdate.name, Err: oauthmodel.ErrMissingField}
	}
	return post[oauthmodel.Service](ctx, c, epServiceUpdate, serviceUpdate{service}, apiKeyParam(service.APIKey))
}

func (c *Client) DeleteService(ctx context.Context, apiKey int64) error {
	_, err := c.do(ctx, epServiceDelete, nil, nil, apiKeyParam(apiKey))
	return err
}

func (c *Client) GetServiceList(ctx context.Context, req *oauthmodel.ServiceListRequest) (*oauthmodel.ServiceListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestValidationError{Endpoint: epServiceList.name, Err: err}
	}
	return get[oauthmodel.ServiceListResponse](ctx, c, epServiceList, rangeQuery(req.Start, req.End))
}

// GetServiceConfiguration returns the service's OpenID Provider metadata.
func (c *Client) GetServiceConfiguration(ctx context.Context) (*discovery.Document, error) {
	data, err := c.do(ctx, epServiceConfiguration, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := epServiceConfiguration.schema.validate(data); err != nil {
		return nil, &DeserializationError{Endpoint: epServiceConfiguration.name, Body: data, Err: err}
	}
	doc, err := discovery.Decode(data)
	if err != nil {
		return nil, &DeserializationError{Endpoint: epServiceConfiguration.name, Body: data, Err: err}
	}
	return doc, nil
}

// GetServiceJWKS returns the public keys the service signs with.
func (c *Client) GetServiceJWKS(ctx context.Context) (*jose.JSONWebKeySet, error) {
	data, err := c.do(ctx, epServiceJWKS, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := epServiceJWKS.schema.validate(data); err != nil {
		return nil, &DeserializationError{Endpoint: epServiceJWKS.name, Body: data, Err: err}
	}
	var jwks jose.JSONWebKeySet
	if err := json.Unmarshal(data, &jwks); err != nil {
		return nil, &DeserializationError{Endpoint: epServiceJWKS.name, Body: data, Err: err}
	}
	return &jwks, nil
}

func (c *Client) HskCreate(ctx context.Context, req *oauthmodel.HskCreateRequest) (*oauthmodel.HskResponse, error) {
	return post[oauthmodel.HskResponse](ctx, c, epHskCreate, req)
}

func (c *Client) HskDelete(ctx context.Context, handle string) (*oauthmodel.HskResponse, error) {
	return get[oauthmodel.HskResponse](ctx, c, epHskDelete, nil, handle)
}

func (c *Client) HskGet(ctx context.Context, handle string) (*oauthmodel.HskResponse, error) {
	return get[oauthmodel.HskResponse](ctx, c, epHskGet, nil, handle)
}

func (c *Client) HskGetList(ctx context.Context) (*oauthmodel.HskListResponse, error) {
	return get[oauthmodel.HskListResponse](ctx, c, epHskGetList, nil)
}

func apiKeyParam(apiKey int64) string {
	if apiKey == 0 {
		return ""
	}
	return strconv.FormatInt(apiKey, 10)
}
