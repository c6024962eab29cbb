// Package fakeprovider is an in-process stand-in for the Authlete API. It serves every
// endpoint the api package calls with canned or generated JSON, checks credentials and
// records the requests it receives.
package fakeprovider

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// RecordedRequest is a request as the provider received it.
type RecordedRequest struct {
	Endpoint string
	Method   string
	Path     string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

type cannedResponse struct {
	status int
	body   string
}

// Provider implements http.Handler.
type Provider struct {
	router   *chi.Mux
	secrets  map[string][]byte
	tokens   map[string]bool
	key      *KeyPair
	logger   zerolog.Logger
	nextID   atomic.Int64
	mu       sync.Mutex
	canned   map[string]cannedResponse
	requests []RecordedRequest
}

type Option func(*Provider) error

// WithBasicCredentials accepts key and secret through HTTP Basic authentication.
func WithBasicCredentials(key, secret string) Option {
	return func(p *Provider) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
		if err != nil {
			return err
		}
		p.secrets[key] = hash
		return nil
	}
}

// WithAccessToken accepts token as a bearer access token.
func WithAccessToken(token string) Option {
	return func(p *Provider) error {
		p.tokens[token] = true
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) error {
		p.logger = logger
		return nil
	}
}

// New returns a provider. Without credential options every request is accepted.
func New(options ...Option) (*Provider, error) {
	key, err := GenerateKeyPair("fake-provider-1")
	if err != nil {
		return nil, err
	}
	p := &Provider{
		router:  chi.NewRouter(),
		secrets: make(map[string][]byte),
		tokens:  make(map[string]bool),
		key:     key,
		logger:  zerolog.Nop(),
		canned:  make(map[string]cannedResponse),
	}
	p.nextID.Store(1000)
	for _, opt := range options {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.initRoutes()
	return p, nil
}

func (p *Provider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.router.ServeHTTP(w, r)
}

// Key returns the signing key published by the JWKS endpoint.
func (p *Provider) Key() *KeyPair {
	return p.key
}

// Handle replaces the response of the named endpoint, e.g. "Token" or "ClientGet".
func (p *Provider) Handle(endpoint string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.canned[endpoint] = cannedResponse{status: status, body: body}
}

// Requests returns the requests received so far, oldest first.
func (p *Provider) Requests() []RecordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]RecordedRequest(nil), p.requests...)
}

func (p *Provider) initRoutes() {
	p.router.Use(middleware.Recoverer)

	p.router.Route("/api", func(r chi.Router) {
		for _, rt := range ownerRoutes {
			r.Method(rt.method, rt.pattern, p.serve(rt))
		}
		for _, rt := range serviceRoutes {
			r.Method(rt.method, rt.pattern, p.serve(rt))
		}
		r.Route("/{serviceApiKey}", func(r chi.Router) {
			for _, rt := range serviceRoutes {
				r.Method(rt.method, rt.pattern, p.serve(rt))
			}
		})
	})
}

func (p *Provider) serve(rt route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeResult(w, http.StatusBadRequest, "A001101", "failed to read request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		p.record(RecordedRequest{
			Endpoint: rt.name,
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    r.URL.Query(),
			Header:   r.Header.Clone(),
			Body:     body,
		})
		p.logger.Debug().Str("endpoint", rt.name).Str("path", r.URL.Path).Msg("fake provider request")

		if !p.authorized(r) {
			writeResult(w, http.StatusUnauthorized, "A001202", "Authorization failed.")
			return
		}

		p.mu.Lock()
		canned, ok := p.canned[rt.name]
		p.mu.Unlock()
		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			_, _ = io.WriteString(w, canned.body)
			return
		}
		rt.handler(p, w, r)
	}
}

func (p *Provider) record(req RecordedRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
}

func (p *Provider) authorized(r *http.Request) bool {
	if len(p.secrets) == 0 && len(p.tokens) == 0 {
		return true
	}
	if key, secret, ok := r.BasicAuth(); ok {
		hash, found := p.secrets[key]
		return found && bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return p.tokens[token]
	}
	return false
}
