package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// HTTPTransport sends requests over HTTP to a base URL such as "https://api.authlete.com".
type HTTPTransport struct {
	baseURL *url.URL
	client  *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport returns a transport for baseURL. A nil client means http.DefaultClient.
func NewHTTPTransport(baseURL string, client *http.Client) (*HTTPTransport, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "[NewHTTPTransport] invalid base URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("[NewHTTPTransport] base URL %q must be an absolute http(s) URL", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{baseURL: u, client: client}, nil
}

func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	// req.Path is already escaped. It is appended without cleaning so dot segments stay put.
	path, err := url.PathUnescape(req.Path)
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPTransport Send] invalid request path")
	}
	u := *t.baseURL
	u.Path = t.baseURL.Path + path
	u.RawPath = t.baseURL.EscapedPath() + req.Path
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPTransport Send] failed to build request")
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = http.Header{}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPTransport Send] failed to read response body")
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}
