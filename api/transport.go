package api

//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
)

// Request is a fully prepared API call. Path is relative to the API base URL and already
// escaped; Endpoint names the operation and is stable across API versions.
type Request struct {
	Endpoint string
	Method   string
	Path     string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

// Response is the raw outcome of a call. Transports never interpret StatusCode.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one request/response exchange with the provider.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}
