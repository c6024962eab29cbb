package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-authlete/api"
	"github.com/jrsteele09/go-authlete/internal/config"
	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
	"github.com/jrsteele09/go-authlete/metrics"
)

var version = "dev"

type app struct {
	out    io.Writer
	errOut io.Writer

	configFile  string
	logLevel    string
	envFile     string
	metricsAddr string

	cfg           config.Config
	logger        zerolog.Logger
	metrics       *metrics.Metrics
	metricsServer *http.Server
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "authlete",
		Short: "Call the Authlete API from the command line",
		Long: `authlete calls a service's Authlete API and prints the responses as JSON.

Credentials and the base URL come from the configuration file, a .env file or the
AUTHLETE_* environment variables.

Examples:
  authlete service config                 # OpenID Provider metadata of the service
  authlete client get 26888344961664      # one client
  authlete enum GrantType                 # constant table of a kind`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Configuration file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment variables from this .env file")
	rootCmd.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")

	rootCmd.AddCommand(
		a.newServiceCmd(),
		a.newClientCmd(),
		a.newTokenCmd(),
		a.newHskCmd(),
		a.newEnumCmd(),
		a.newFakeProviderCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnvFiles(a.envFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.GetLogLevel()
	if a.logLevel != "" {
		level, err = zerolog.ParseLevel(a.logLevel)
		if err != nil {
			err = apperrors.Wrapf(apperrors.ErrInvalidLogLevel, "--log-level %q", a.logLevel)
		}
	}
	if err != nil {
		return err
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	if a.metricsAddr != "" {
		return a.serveMetrics(cmd.Context())
	}
	return nil
}

func (a *app) serveMetrics(ctx context.Context) error {
	m, err := metrics.New("authlete", nil)
	if err != nil {
		return err
	}
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", a.metricsAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.metricsAddr, err)
	}
	a.metrics = m
	a.metricsServer = &http.Server{Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.metricsServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Err(err).Msg("Metrics server stopped")
		}
	}()
	a.logger.Info().Str("addr", listener.Addr().String()).Msg("Serving metrics")
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.metricsServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.metricsServer.Shutdown(ctx)
}

// client builds an API client from the loaded configuration.
func (a *app) client() (*api.Client, error) {
	if err := a.cfg.ValidateAPI(); err != nil {
		return nil, err
	}
	version, ok := api.ParseVersion(a.cfg.GetAPIVersion())
	if !ok {
		return nil, apperrors.ErrInvalidAPIVersion
	}
	timeout, err := a.cfg.GetTimeout()
	if err != nil {
		return nil, err
	}

	var transport api.Transport
	transport, err = api.NewHTTPTransport(a.cfg.GetBaseURL(), &http.Client{Timeout: timeout})
	if err != nil {
		return nil, err
	}
	if a.metrics != nil {
		transport = a.metrics.Instrument(transport)
	}

	service := a.cfg.GetServiceCredentials()
	return api.New(api.Settings{
		Version:       version,
		ServiceAPIKey: service.APIKey,
		Service:       credentials(service),
		ServiceOwner:  credentials(a.cfg.GetServiceOwnerCredentials()),
	}, api.WithTransport(transport), api.WithLogger(a.logger))
}

// credentials prefers an access token over a key and secret.
func credentials(c config.Credentials) api.Credentials {
	switch {
	case c.AccessToken != "":
		return api.NewBearerCredentials(c.AccessToken)
	case c.APIKey != "" && c.APISecret != "":
		return api.BasicCredentials{Key: c.APIKey, Secret: c.APISecret}
	}
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
