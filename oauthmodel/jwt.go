package oauthmodel

import (
	"fmt"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/jrsteele09/go-authlete/internal/utils"
)

// PeekClaims decodes the claims of a JWT without verifying its signature.
// The result is for diagnostics only and must not be trusted.
func PeekClaims(raw string) (jwtlib.MapClaims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("[PeekClaims] empty token")
	}
	token, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("[PeekClaims] %w", err)
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, fmt.Errorf("[PeekClaims] unexpected claims type %T", token.Claims)
	}
	return claims, nil
}

// ClaimStrings returns a claim that may be a single string or an array, such as "aud".
func ClaimStrings(claims jwtlib.MapClaims, name string) []string {
	switch v := claims[name].(type) {
	case string:
		return []string{v}
	case []any:
		return utils.ToStringSlice(v)
	case []string:
		return v
	}
	return nil
}
