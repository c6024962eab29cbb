package config

import (
	"os"
)

const (
	baseURLVar            = "AUTHLETE_BASE_URL"
	apiVersionVar         = "AUTHLETE_API_VERSION"
	serviceOwnerKeyVar    = "AUTHLETE_SERVICEOWNER_APIKEY"
	serviceOwnerSecretVar = "AUTHLETE_SERVICEOWNER_APISECRET"
	serviceOwnerTokenVar  = "AUTHLETE_SERVICEOWNER_ACCESSTOKEN"
	serviceKeyVar         = "AUTHLETE_SERVICE_APIKEY"
	serviceSecretVar      = "AUTHLETE_SERVICE_APISECRET"
	serviceAccessTokenVar = "AUTHLETE_SERVICE_ACCESSTOKEN"
	timeoutVar            = "AUTHLETE_TIMEOUT"
	logLevelVar           = "LOG_LEVEL"
	envVar                = "ENV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return "authlete"
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
