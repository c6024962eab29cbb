package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Credentials authorize a request before it is sent.
type Credentials interface {
	Authorize(ctx context.Context, header http.Header) error
}

// BasicCredentials are an API key and secret sent with HTTP Basic authentication (API v2).
type BasicCredentials struct {
	Key    string
	Secret string
}

func (c BasicCredentials) Authorize(_ context.Context, header http.Header) error {
	if c.Key == "" || c.Secret == "" {
		return errors.New("[BasicCredentials] key and secret are required")
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.Key + ":" + c.Secret))
	header.Set("Authorization", "Basic "+token)
	return nil
}

// BearerCredentials send an access token from Source (API v3).
type BearerCredentials struct {
	Source oauth2.TokenSource
}

// NewBearerCredentials uses a fixed access token.
func NewBearerCredentials(accessToken string) BearerCredentials {
	return BearerCredentials{Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})}
}

// NewRefreshingBearerCredentials caches tokens from src until they expire.
func NewRefreshingBearerCredentials(src oauth2.TokenSource) BearerCredentials {
	return BearerCredentials{Source: oauth2.ReuseTokenSource(nil, src)}
}

func (c BearerCredentials) Authorize(_ context.Context, header http.Header) error {
	if c.Source == nil {
		return errors.New("[BearerCredentials] no token source")
	}
	token, err := c.Source.Token()
	if err != nil {
		return fmt.Errorf("[BearerCredentials] failed to obtain access token: %w", err)
	}
	if !token.Valid() {
		return errors.New("[BearerCredentials] access token is empty or expired")
	}
	header.Set("Authorization", token.Type()+" "+token.AccessToken)
	return nil
}
