package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-authlete/api/fakeprovider"
)

func (a *app) newFakeProviderCmd() *cobra.Command {
	var addr, apiKey, apiSecret, accessToken string

	cmd := &cobra.Command{
		Use:   "fake-provider",
		Short: "Serve an in-process stand-in for the Authlete API",
		Long: `fake-provider serves every endpoint this tool calls with generated responses,
so the other commands can be tried without an account:

  authlete fake-provider --addr :8089 --api-key k --api-secret s &
  AUTHLETE_BASE_URL=http://localhost:8089 AUTHLETE_SERVICE_APIKEY=k \
    AUTHLETE_SERVICE_APISECRET=s authlete client get 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := []fakeprovider.Option{fakeprovider.WithLogger(a.logger)}
			if apiKey != "" {
				options = append(options, fakeprovider.WithBasicCredentials(apiKey, apiSecret))
			}
			if accessToken != "" {
				options = append(options, fakeprovider.WithAccessToken(accessToken))
			}
			provider, err := fakeprovider.New(options...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.listenAndServe(ctx, &http.Server{Addr: addr, Handler: provider, ReadHeaderTimeout: 5 * time.Second})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8089", "Listen address")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Accept this API key with --api-secret (Basic authentication)")
	cmd.Flags().StringVar(&apiSecret, "api-secret", "", "Secret of --api-key")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Accept this bearer access token")
	return cmd
}

// listenAndServe runs server until ctx is done, then shuts it down.
func (a *app) listenAndServe(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", server.Addr).Msg("Fake provider listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.logger.Info().Msg("Fake provider stopped")
	return nil
}
