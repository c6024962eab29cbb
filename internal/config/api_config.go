package config

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
)

const defaultBaseURL = "https://api.authlete.com"

type APIConfig interface {
	GetBaseURL() string
	GetAPIVersion() string
	GetServiceOwnerCredentials() Credentials
	GetServiceCredentials() Credentials
	GetTimeout() (time.Duration, error)
	ValidateAPI() error
}

type API struct {
	file APISection
}

var _ APIConfig = API{}

func (a API) GetBaseURL() string {
	return GetEnv(baseURLVar, orDefault(a.file.BaseURL, defaultBaseURL))
}

// GetAPIVersion returns "V2" or "V3". Unrecognized values are returned unchanged so that
// ValidateAPI can report them.
func (a API) GetAPIVersion() string {
	v := strings.ToUpper(GetEnv(apiVersionVar, orDefault(a.file.APIVersion, "V2")))
	if v == "2" || v == "3" {
		v = "V" + v
	}
	return v
}

func (a API) GetServiceOwnerCredentials() Credentials {
	return Credentials{
		APIKey:      GetEnv(serviceOwnerKeyVar, a.file.ServiceOwner.APIKey),
		APISecret:   GetEnv(serviceOwnerSecretVar, a.file.ServiceOwner.APISecret),
		AccessToken: GetEnv(serviceOwnerTokenVar, a.file.ServiceOwner.AccessToken),
	}
}

func (a API) GetServiceCredentials() Credentials {
	return Credentials{
		APIKey:      GetEnv(serviceKeyVar, a.file.Service.APIKey),
		APISecret:   GetEnv(serviceSecretVar, a.file.Service.APISecret),
		AccessToken: GetEnv(serviceAccessTokenVar, a.file.Service.AccessToken),
	}
}

// GetTimeout accepts a Go duration ("30s") or a whole number of seconds. Unset means no timeout.
func (a API) GetTimeout() (time.Duration, error) {
	raw := GetEnv(timeoutVar, a.file.Timeout)
	if raw == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		raw = strconv.Itoa(seconds) + "s"
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidTimeout, "[config GetTimeout] %q", raw)
	}
	return d, nil
}

// ValidateAPI checks the values needed to call the service's API.
func (a API) ValidateAPI() error {
	if a.GetBaseURL() == "" {
		return apperrors.ErrMissingBaseURL
	}
	version := a.GetAPIVersion()
	if version != "V2" && version != "V3" {
		return apperrors.Wrapf(apperrors.ErrInvalidAPIVersion, "[config ValidateAPI] %q", version)
	}
	if _, err := a.GetTimeout(); err != nil {
		return err
	}
	if !a.GetServiceCredentials().IsSet() && !a.GetServiceOwnerCredentials().IsSet() {
		return apperrors.ErrMissingCredentials
	}
	return nil
}

// IsSet reports whether the credentials hold a key and secret or an access token.
func (c Credentials) IsSet() bool {
	return (c.APIKey != "" && c.APISecret != "") || c.AccessToken != ""
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
