package main

import (
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

func (a *app) newServiceCmd() *cobra.Command {
	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "Inspect services",
	}

	getCmd := &cobra.Command{
		Use:   "get <apiKey>",
		Short: "Get a service by its API key (service owner credentials)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return apperrors.Wrapf(apperrors.ErrInvalidArgument, "API key %q", args[0])
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			service, err := client.GetService(cmd.Context(), apiKey)
			if err != nil {
				return err
			}
			return a.printJSON(service)
		},
	}

	var start, end int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List services (service owner credentials)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			list, err := client.GetServiceList(cmd.Context(), &oauthmodel.ServiceListRequest{Start: start, End: end})
			if err != nil {
				return err
			}
			return a.printJSON(list)
		},
	}
	addRangeFlags(listCmd, &start, &end)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the OpenID Provider metadata of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			doc, err := client.GetServiceConfiguration(cmd.Context())
			if err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				a.logger.Warn().Err(err).Msg("Provider metadata is incomplete")
			}
			return a.printJSON(doc)
		},
	}

	jwksCmd := &cobra.Command{
		Use:   "jwks",
		Short: "Print the public keys of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			jwks, err := client.GetServiceJWKS(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(jwks)
		},
	}

	serviceCmd.AddCommand(getCmd, listCmd, configCmd, jwksCmd)
	return serviceCmd
}

func addRangeFlags(cmd *cobra.Command, start, end *int) {
	cmd.Flags().IntVar(start, "start", 0, "Start index of the page")
	cmd.Flags().IntVar(end, "end", 0, "End index of the page (exclusive)")
}
