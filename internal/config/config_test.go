package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-authlete/internal/config"
	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
)

const sampleFile = `
api:
  baseUrl: https://jp.authlete.com
  apiVersion: v3
  service:
    apiKey: "715948317"
    accessToken: file-token
  timeout: 15
log:
  level: debug
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.New()

	require.Equal(t, "https://api.authlete.com", cfg.GetBaseURL())
	require.Equal(t, "V2", cfg.GetAPIVersion())
	require.Equal(t, "DEV", cfg.GetEnv())

	timeout, err := cfg.GetTimeout()
	require.NoError(t, err)
	require.Zero(t, timeout)

	level, err := cfg.GetLogLevel()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	require.ErrorIs(t, cfg.ValidateAPI(), apperrors.ErrMissingCredentials)
}

func TestLoad(t *testing.T) {
	t.Run("file values", func(t *testing.T) {
		cfg, err := config.Load(writeFile(t, "authlete.yaml", sampleFile))
		require.NoError(t, err)

		require.Equal(t, "https://jp.authlete.com", cfg.GetBaseURL())
		require.Equal(t, "V3", cfg.GetAPIVersion())
		require.Equal(t, config.Credentials{APIKey: "715948317", AccessToken: "file-token"}, cfg.GetServiceCredentials())
		require.False(t, cfg.GetServiceOwnerCredentials().IsSet())

		timeout, err := cfg.GetTimeout()
		require.NoError(t, err)
		require.Equal(t, 15*time.Second, timeout)

		level, err := cfg.GetLogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)

		require.NoError(t, cfg.ValidateAPI())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("AUTHLETE_SERVICE_ACCESSTOKEN", "env-token")
		t.Setenv("AUTHLETE_TIMEOUT", "1m30s")
		t.Setenv("LOG_LEVEL", "warn")

		cfg, err := config.Load(writeFile(t, "authlete.yaml", sampleFile))
		require.NoError(t, err)

		require.Equal(t, "env-token", cfg.GetServiceCredentials().AccessToken)
		timeout, err := cfg.GetTimeout()
		require.NoError(t, err)
		require.Equal(t, 90*time.Second, timeout)

		level, err := cfg.GetLogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.WarnLevel, level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "bad.yaml", "api: [unterminated"))
		require.Error(t, err)
	})
}

func TestValidateAPI(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name: "basic credentials",
			env:  map[string]string{"AUTHLETE_SERVICE_APIKEY": "k", "AUTHLETE_SERVICE_APISECRET": "s"},
		},
		{
			name:    "key without secret",
			env:     map[string]string{"AUTHLETE_SERVICE_APIKEY": "k"},
			wantErr: apperrors.ErrMissingCredentials,
		},
		{
			name:    "bad version",
			env:     map[string]string{"AUTHLETE_API_VERSION": "V9", "AUTHLETE_SERVICE_ACCESSTOKEN": "t"},
			wantErr: apperrors.ErrInvalidAPIVersion,
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"AUTHLETE_TIMEOUT": "soon", "AUTHLETE_SERVICE_ACCESSTOKEN": "t"},
			wantErr: apperrors.ErrInvalidTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			err := config.New().ValidateAPI()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	path := writeFile(t, ".env", "AUTHLETE_BASE_URL=https://br.authlete.com\nLOG_LEVEL=bogus\n")
	t.Setenv("AUTHLETE_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("AUTHLETE_BASE_URL")
	os.Unsetenv("LOG_LEVEL")

	require.NoError(t, config.LoadEnvFiles(path))
	cfg := config.New()
	require.Equal(t, "https://br.authlete.com", cfg.GetBaseURL())

	_, err := cfg.GetLogLevel()
	require.ErrorIs(t, err, apperrors.ErrInvalidLogLevel)

	require.Error(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, config.LoadEnvFiles())
}
