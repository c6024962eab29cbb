package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-authlete/oauthmodel"
)

const requestIDHeader = "X-Request-Id"

// Settings configure a Client. They are read once by New.
type Settings struct {
	// BaseURL of the provider, e.g. "https://api.authlete.com". Ignored when a transport is injected.
	BaseURL       string
	Version       Version
	// ServiceAPIKey scopes service paths under V3.
	ServiceAPIKey string
	// Service authorizes service operations; ServiceOwner authorizes /service/* management.
	Service       Credentials
	ServiceOwner  Credentials
	// Timeout bounds each HTTP exchange of the default transport. Zero means no timeout.
	Timeout       time.Duration
}

// Client calls the provider's API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	version       Version
	serviceAPIKey string
	service       Credentials
	serviceOwner  Credentials
	transport     Transport
	httpClient    *http.Client
	logger        zerolog.Logger
}

var _ API = (*Client)(nil)

type Option func(*Client)

// WithLogger sets the logger used for per-call diagnostics. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport replaces the HTTP transport, e.g. with a mock or an instrumented wrapper.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithHTTPClient sets the HTTP client of the default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(settings Settings, options ...Option) (*Client, error) {
	c := &Client{
		version:       settings.Version,
		serviceAPIKey: settings.ServiceAPIKey,
		service:       settings.Service,
		serviceOwner:  settings.ServiceOwner,
		logger:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.version == 0 {
		c.version = V2
	}
	if c.version != V2 && c.version != V3 {
		return nil, fmt.Errorf("[api New] unsupported API version %d", int(c.version))
	}
	if c.version == V3 && c.serviceAPIKey == "" {
		return nil, fmt.Errorf("[api New] %v requires a service API key", c.version)
	}

	if c.transport == nil {
		if c.httpClient == nil {
			c.httpClient = &http.Client{Timeout: settings.Timeout}
		}
		transport, err := NewHTTPTransport(settings.BaseURL, c.httpClient)
		if err != nil {
			return nil, fmt.Errorf("[api New] %w", err)
		}
		c.transport = transport
	}
	return c, nil
}

// Version returns the API version the client speaks.
func (c *Client) Version() Version {
	return c.version
}

type validator interface {
	Validate() error
}

// clientUpdate and serviceUpdate send the record unchanged but validate it as an update.
type clientUpdate struct{ *oauthmodel.Client }

func (u clientUpdate) Validate() error { return u.ValidateForUpdate() }

type serviceUpdate struct{ *oauthmodel.Service }

func (u serviceUpdate) Validate() error {
	if err := u.ValidateForUpdate(); err != nil {
		return err
	}
	return u.Service.Validate()
}

// post validates req, sends it as the JSON body and decodes the response into Res.
func post[Res any](ctx context.Context, c *Client, ep endpoint, req validator, params ...string) (*Res, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestValidationError{Endpoint: ep.name, Err: err}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &RequestValidationError{Endpoint: ep.name, Err: err}
	}
	data, err := c.do(ctx, ep, body, nil, params...)
	if err != nil {
		return nil, err
	}
	return decode[Res](ep, data)
}

func get[Res any](ctx context.Context, c *Client, ep endpoint, query url.Values, params ...string) (*Res, error) {
	data, err := c.do(ctx, ep, nil, query, params...)
	if err != nil {
		return nil, err
	}
	return decode[Res](ep, data)
}

func decode[Res any](ep endpoint, data []byte) (*Res, error) {
	if err := ep.schema.validate(data); err != nil {
		return nil, &DeserializationError{Endpoint: ep.name, Body: data, Err: err}
	}
	var res Res
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, &DeserializationError{Endpoint: ep.name, Body: data, Err: err}
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, ep endpoint, body []byte, query url.Values, params ...string) ([]byte, error) {
	for _, p := range params {
		switch p {
		case "":
			return nil, &RequestValidationError{Endpoint: ep.name, Err: fmt.Errorf("path parameter is empty: %w", oauthmodel.ErrMissingField)}
		case ".", "..":
			return nil, &RequestValidationError{Endpoint: ep.name, Err: fmt.Errorf("path parameter %q is a dot segment: %w", p, oauthmodel.ErrInvalidField)}
		}
	}

	requestID := uuid.NewString()
	logger := c.logger.With().Str("endpoint", ep.name).Str("request_id", requestID).Logger()

	req := &Request{
		Endpoint: ep.name,
		Method:   ep.method,
		Path:     c.path(ep, params...),
		Query:    query,
		Header:   http.Header{},
		Body:     body,
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	credentials := c.service
	if ep.owner {
		credentials = c.serviceOwner
	}
	if credentials == nil {
		return nil, &APICallError{Endpoint: ep.name, Err: ErrNoCredentials}
	}
	if err := credentials.Authorize(ctx, req.Header); err != nil {
		logger.Err(err).Msg("Failed to authorize API call")
		return nil, &APICallError{Endpoint: ep.name, Err: err}
	}

	start := time.Now()
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		logger.Err(err).Dur("duration", time.Since(start)).Msg("API call failed")
		return nil, &APICallError{Endpoint: ep.name, Err: err}
	}
	logger.Debug().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Msg("API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Int("status", resp.StatusCode).Msg("API call returned an error status")
		return nil, &APICallError{Endpoint: ep.name, StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return resp.Body, nil
}

func (c *Client) path(ep endpoint, params ...string) string {
	p := ep.path
	if len(params) > 0 {
		escaped := make([]any, len(params))
		for i, param := range params {
			escaped[i] = url.PathEscape(param)
		}
		p = fmt.Sprintf(p, escaped...)
	}
	if c.version == V3 && !ep.owner {
		return "/api/" + url.PathEscape(c.serviceAPIKey) + p
	}
	return "/api" + p
}

func rangeQuery(start, end int) url.Values {
	q := url.Values{}
	if start > 0 {
		q.Set("start", fmt.Sprint(start))
	}
	if end > 0 {
		q.Set("end", fmt.Sprint(end))
	}
	return q
}
